package cmd

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/arefin-khan/loglens/internal/aggregator"
	"github.com/arefin-khan/loglens/internal/loader"
	"github.com/arefin-khan/loglens/internal/logging"
	"github.com/arefin-khan/loglens/internal/output"
)

func runReport(cmd *cobra.Command, args []string) error {
	log := logging.New(viper.GetBool("verbose"))
	defer func() { _ = log.Sync() }()

	// A file-access error is the only fatal case; no partial report.
	res, err := loader.LoadFile(args[0])
	if err != nil {
		return err
	}

	// Skipped lines are diagnostics, not report output: they go through
	// the stderr logger so stdout stays machine-parseable.
	for _, w := range res.Warnings {
		log.Warn("skipping malformed line",
			zap.String("reason", errors.Cause(w.Err).Error()),
			zap.String("line", w.Line),
		)
	}
	log.Debug("load complete",
		zap.Int("records", len(res.Records)),
		zap.Int("skipped", len(res.Warnings)),
	)

	summary := output.Summary{Counts: aggregator.CountByLevel(res.Records)}
	if len(args) == 2 {
		summary.Level = strings.ToUpper(args[1])
		summary.Entries = aggregator.FilterByLevel(res.Records, args[1])
	}

	var renderer output.Renderer
	switch strings.ToLower(viper.GetString("output")) {
	case "json":
		renderer = output.NewJSONRenderer(cmd.OutOrStdout())
	default:
		renderer = output.NewTextRenderer(cmd.OutOrStdout(), viper.GetBool("color"))
	}
	return renderer.Render(summary)
}
