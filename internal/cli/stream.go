package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/yaklabco/gmi2html/internal/configloader"
	"github.com/yaklabco/gmi2html/internal/logging"
	"github.com/yaklabco/gmi2html/pkg/config"
	"github.com/yaklabco/gmi2html/pkg/gemtext"
)

// runStream converts Gemtext on the command's stdin to HTML on its stdout.
func runStream(cmd *cobra.Command) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := loadConfig(ctx, cmd, nil)
	if err != nil {
		return err
	}

	in := cmd.InOrStdin()
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		logging.NewInteractive().Info("reading Gemtext from the terminal; press Ctrl-D to finish")
	}

	logging.FromContext(ctx).Debug("converting stream", logging.FieldCloseContainers, cfg.CloseContainers)

	if err := gemtext.Convert(ctx, in, cmd.OutOrStdout(), gemtext.WithCloseContainers(cfg.CloseContainers)); err != nil {
		return fmt.Errorf("convert stdin: %w", err)
	}
	return nil
}

// loadConfig resolves configuration for the working directory, applying
// overrides on top. The persistent --close-containers flag, when given, wins over
// every other source, including an explicit false.
func loadConfig(ctx context.Context, cmd *cobra.Command, overrides *config.Config) (*config.Config, error) {
	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, fmt.Errorf("get config flag: %w", err)
	}

	workDir, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("get working directory: %w", err)
	}

	result, err := configloader.Load(ctx, configloader.LoadOptions{
		WorkingDir:   workDir,
		ExplicitPath: configPath,
		CLIConfig:    overrides,
	})
	if err != nil {
		return nil, &ConfigError{Err: err}
	}

	logger := logging.FromContext(ctx)
	for _, warning := range result.Warnings {
		logger.Warn(warning)
	}
	if len(result.LoadedFrom) > 0 {
		logger.Debug("loaded configuration", logging.FieldPaths, result.LoadedFrom)
	}

	cfg := result.Config
	if cmd.Flags().Changed("close-containers") {
		cfg.CloseContainers, err = cmd.Flags().GetBool("close-containers")
		if err != nil {
			return nil, fmt.Errorf("get close-containers flag: %w", err)
		}
	}
	return cfg, nil
}
