package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func (c *cli) newPendingCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pending",
		Short: "Inspect the queue of offline changes",
	}

	count := &cobra.Command{
		Use:   "count",
		Short: "Print the number of queued changes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.withApp(cmd, func(ctx context.Context, rt runtime) error {
				n, err := rt.PendingCount(ctx)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), n)
				return nil
			})
		},
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List queued changes oldest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.withApp(cmd, func(ctx context.Context, rt runtime) error {
				changes, quarantined, err := rt.PendingList(ctx)
				if err != nil {
					return err
				}
				printPending(cmd.OutOrStdout(), changes, quarantined)
				return nil
			})
		},
	}

	var yes bool
	clearCmd := &cobra.Command{
		Use:   "clear",
		Short: "Drop every queued change of the user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !yes {
				return fmt.Errorf("refusing to drop queued changes without --yes")
			}
			return c.withApp(cmd, func(ctx context.Context, rt runtime) error {
				return rt.PendingClear(ctx)
			})
		},
	}
	clearCmd.Flags().BoolVar(&yes, "yes", false, "Confirm that queued edits are discarded")

	cmd.AddCommand(count, list, clearCmd)
	return cmd
}
