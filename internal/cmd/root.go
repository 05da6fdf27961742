package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile   string
	outputFmt string
	useColor  bool
	verbose   bool
)

// rootCmd doubles as the log summarizer: loglens <path> [level].
var rootCmd = &cobra.Command{
	Use:   "loglens <path> [level]",
	Short: "Loglens — log file summarizer",
	Long: `Loglens parses a loosely structured log file into records, prints a
per-severity count table, and optionally lists every entry for one level.

Examples:
  loglens /var/log/app.log
  loglens /var/log/app.log error
  loglens /var/log/app.log --output json`,
	Args:          cobra.RangeArgs(1, 2),
	RunE:          runReport,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command. Any error is reported once to stderr and
// the process exits non-zero.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (default: $HOME/.loglens.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug diagnostics on stderr")
	rootCmd.Flags().StringVarP(&outputFmt, "output", "o", "text", "output format: text, json")
	rootCmd.Flags().BoolVar(&useColor, "color", true, "colorize the report table")

	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	_ = viper.BindPFlag("output", rootCmd.Flags().Lookup("output"))
	_ = viper.BindPFlag("color", rootCmd.Flags().Lookup("color"))
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigName(".loglens")
		viper.SetConfigType("yaml")
	}

	viper.SetEnvPrefix("LOGLENS")
	viper.AutomaticEnv()
	_ = viper.ReadInConfig()
}
