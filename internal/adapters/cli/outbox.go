package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

func newOutboxCommand(rt *runtime) *cobra.Command {
	outboxCmd := &cobra.Command{
		Use:   "outbox",
		Short: "Inspect and drive the event outbox",
	}

	relayCmd := &cobra.Command{
		Use:   "relay",
		Short: "Publish one batch of pending events",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := rt.services()
			if err != nil {
				return err
			}
			if app.Relay == nil {
				return errors.New("relay is not configured")
			}
			published, err := app.Relay(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "published %d event(s)\n", published)
			return nil
		},
	}

	outboxCmd.AddCommand(relayCmd)
	return outboxCmd
}
