package main

import (
	"context"
	"errors"

	"github.com/spf13/cobra"
)

func (c *cli) newProcessCmd() *cobra.Command {
	var watch bool

	cmd := &cobra.Command{
		Use:   "process",
		Short: "Resolve every pending change of the user",
		Long: `Runs one resolution pass over the user's pending changes and prints a
report. With --watch a pass runs at start and then every --sync-interval
until interrupted.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.withApp(cmd, func(ctx context.Context, rt runtime) error {
				if watch {
					return rt.Watch(ctx)
				}

				report, err := rt.ProcessOnce(ctx)
				printReport(cmd.OutOrStdout(), report)
				if err != nil {
					return err
				}
				if report.Failed > 0 {
					return errors.New("some pending changes could not be resolved")
				}
				return nil
			})
		},
	}
	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "Keep running and resolve periodically")
	return cmd
}
