package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func newResetCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "reiniciar",
		Short: "Reset the visualization",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runReset(cmd, app)
		},
	}
}

func runReset(cmd *cobra.Command, app *app) error {
	client := app.brainAPI()
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "POST %s\n", client.Endpoint("/reset"))

	err := runWithSpinner(cmd, false, func(ctx context.Context) error {
		return client.Reset(ctx)
	})
	if err != nil {
		reportRemoteError(out, err)
		return nil
	}

	_, err = fmt.Fprintln(out, "\nVisualization reset")
	return err
}
