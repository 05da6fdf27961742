package cmd

import (
	"github.com/spf13/cobra"

	"github.com/arefin-khan/loglens/internal/contacts"
)

var contactsCmd = &cobra.Command{
	Use:   "contacts",
	Short: "Start the interactive contact-book assistant",
	Long: `Start a line-oriented assistant that keeps name/phone pairs in memory
for the duration of the session.

Commands: hello, add <name> <phone>, change <name> <phone>, phone <name>,
all, close/exit.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return contacts.NewSession(cmd.InOrStdin(), cmd.OutOrStdout()).Run()
	},
}

func init() {
	rootCmd.AddCommand(contactsCmd)
}
