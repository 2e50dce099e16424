package main

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-pass-keeper-sync/internal/app"
	"github.com/MKhiriev/go-pass-keeper-sync/internal/config"
	"github.com/MKhiriev/go-pass-keeper-sync/internal/logger"
	"github.com/MKhiriev/go-pass-keeper-sync/models"
)

// cli carries the state shared by every subcommand.
type cli struct {
	flags    *config.Flags
	logLevel string

	// newApp is replaced in tests.
	newApp func(ctx context.Context, cfg *config.StructuredConfig, log *logger.Logger) (runtime, error)
}

// runtime is the part of *app.App the commands drive.
type runtime interface {
	ProcessOnce(ctx context.Context) (models.BatchReport, error)
	Watch(ctx context.Context) error
	PendingCount(ctx context.Context) (int, error)
	PendingList(ctx context.Context) ([]models.PendingChange, []models.QuarantinedChange, error)
	PendingClear(ctx context.Context) error
	Close() error
}

func newRootCmd(info models.AppBuildInfo) *cobra.Command {
	c := &cli{
		newApp: func(ctx context.Context, cfg *config.StructuredConfig, log *logger.Logger) (runtime, error) {
			return app.NewApp(ctx, cfg, log)
		},
	}
	return c.rootCmd(info)
}

func (c *cli) rootCmd(info models.AppBuildInfo) *cobra.Command {
	root := &cobra.Command{
		Use:   "offsync",
		Short: "offsync reconciles offline vault edits with the remote vault",
		Long: `offsync replays the queue of record edits made while offline against the
remote vault. Conflicting versions are never dropped: the losing side is
saved as a backup record before anything is overwritten or deleted.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       info.Version,
	}
	root.SetVersionTemplate(info.String())

	c.flags = config.NewFlags(root.PersistentFlags())
	root.PersistentFlags().StringVar(&c.logLevel, "log-level", zerolog.InfoLevel.String(), "Log level (debug, info, warn, error)")

	root.AddCommand(
		c.newProcessCmd(),
		c.newPendingCmd(),
		newVersionCmd(info),
	)
	return root
}

// withApp loads the configuration, builds the runtime and runs fn with it.
func (c *cli) withApp(cmd *cobra.Command, fn func(ctx context.Context, rt runtime) error) error {
	level, err := zerolog.ParseLevel(c.logLevel)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", c.logLevel, err)
	}
	log := logger.NewLogger("offsync", os.Stderr, level)

	cfg, err := config.GetStructuredConfig(c.flags)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	rt, err := c.newApp(cmd.Context(), cfg, log)
	if err != nil {
		return fmt.Errorf("init app: %w", err)
	}
	defer func() {
		if closeErr := rt.Close(); closeErr != nil {
			log.Err(closeErr).Msg("close app")
		}
	}()

	return fn(cmd.Context(), rt)
}

func newVersionCmd(info models.AppBuildInfo) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprint(cmd.OutOrStdout(), info.String())
		},
	}
}
