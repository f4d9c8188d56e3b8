// Package cli provides the Cobra command structure for gmi2html.
package cli

import (
	"context"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/automaxprocs/maxprocs"

	"github.com/yaklabco/gmi2html/internal/logging"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// NewRootCommand creates the root gmi2html command with all subcommands.
// Run without a subcommand, it converts stdin to stdout.
func NewRootCommand(info BuildInfo) *cobra.Command {
	var debug bool
	var configPath string
	var color string
	var closeContainers bool

	rootCmd := &cobra.Command{
		Use:   "gmi2html",
		Short: "Convert Gemtext documents to HTML",
		Long: `gmi2html converts Gemtext documents to HTML, one line at a time.

Without a subcommand it reads Gemtext on stdin and writes HTML to stdout.
Use "gmi2html convert" to convert files and directories in place.`,
		Example: `  gmi2html < index.gmi > index.html
  gmi2html convert capsule/
  gmi2html convert --output-dir public --format summary .`,
		Args: cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			level := "info"
			if debug {
				level = "debug"
			}
			logger := logging.New(level)
			logging.SetDefault(logger)

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			cmd.SetContext(logging.WithLogger(ctx, logger))

			// Match GOMAXPROCS to the container CPU quota before worker pools are sized.
			if _, err := maxprocs.Set(maxprocs.Logger(logger.Debugf)); err != nil {
				logger.Debug("could not adjust GOMAXPROCS", logging.FieldError, err)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runStream(cmd)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config file")
	rootCmd.PersistentFlags().StringVar(&color, "color", "auto",
		"colorize output: auto, always, never")
	rootCmd.PersistentFlags().BoolVar(&closeContainers, "close-containers", false,
		"close a list, quote or preformatted block left open at end of input")

	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &UsageError{Err: err}
	})

	rootCmd.AddCommand(newConvertCommand())
	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newVersionCommand(info))

	helpFormatter := NewHelpFormatter(color, os.Stdout)
	helpFormatter.ApplyToCommand(rootCmd)

	return rootCmd
}
