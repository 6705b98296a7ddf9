package main

import (
	"os"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/TheBitDrifter/ecs"
	"github.com/TheBitDrifter/ecs/internal/gen"
)

const defaultSuffix = "_generated.go"

func newRootCmd(logger zerolog.Logger) *cobra.Command {
	var (
		suffix   string
		logLevel string
		dryRun   bool
	)
	cmd := &cobra.Command{
		Use:           "ecsgen [flags] file.go...",
		Short:         "Generate component managers for //ecs:component structs",
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := ecs.LoadConfig()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("log-level") {
				cfg.LogLevel = logLevel
			}
			level, err := zerolog.ParseLevel(cfg.LogLevel)
			if err != nil {
				return eris.Wrapf(err, "invalid log level %q", cfg.LogLevel)
			}
			logger = logger.Level(level)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, source := range args {
				target, err := generateFile(source, suffix, dryRun)
				if err != nil {
					logger.Error().Str("source", source).Msg(eris.ToString(err, false))
					return err
				}
				logger.Info().Str("source", source).Str("target", target).Bool("dry_run", dryRun).Msg("generated")
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&suffix, "suffix", defaultSuffix, "suffix replacing .go in the output file name")
	cmd.Flags().StringVar(&logLevel, "log-level", zerolog.InfoLevel.String(), "log level (overrides ECS_LOG_LEVEL)")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "render without writing")
	return cmd
}

// generateFile renders source and writes it next to it. It returns the
// output path.
func generateFile(source, suffix string, dryRun bool) (string, error) {
	if !strings.HasSuffix(source, ".go") {
		return "", eris.Errorf("%s is not a Go file", source)
	}
	if strings.HasSuffix(source, suffix) {
		return "", eris.Errorf("%s is a generated file", source)
	}
	file, err := gen.Parse(source, nil)
	if err != nil {
		return "", err
	}
	src, err := gen.Generate(file)
	if err != nil {
		return "", err
	}
	target := strings.TrimSuffix(source, ".go") + suffix
	if dryRun {
		return target, nil
	}
	if err := os.WriteFile(target, src, 0o644); err != nil {
		return "", eris.Wrapf(err, "failed to write %s", target)
	}
	return target, nil
}
