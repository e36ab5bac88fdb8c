package cmd

import (
	"context"
	"fmt"

	reportrender "github.com/nfdez/brainctl/internal/adapters/render/report"
	"github.com/nfdez/brainctl/internal/domain"
	"github.com/spf13/cobra"
)

func newStatusCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "estado",
		Short: "Show the currently active node set",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runStatus(cmd, app, asJSON)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the raw response JSON")

	return cmd
}

func runStatus(cmd *cobra.Command, app *app, asJSON bool) error {
	client := app.brainAPI()
	out := cmd.OutOrStdout()

	if !asJSON {
		fmt.Fprintf(out, "GET %s\n", client.Endpoint("/status"))
	}

	var result domain.StatusResult
	err := runWithSpinner(cmd, asJSON, func(ctx context.Context) error {
		var callErr error
		result, callErr = client.Status(ctx)
		return callErr
	})
	if err != nil {
		reportRemoteError(out, err)
		return nil
	}

	if asJSON {
		return writeRawJSON(out, result.Raw)
	}

	rendered, err := reportrender.RenderStatus(result.ActiveNodes)
	if err != nil {
		return fmt.Errorf("render status: %w", err)
	}

	if _, err := fmt.Fprintf(out, "\n%s\n", rendered); err != nil {
		return err
	}

	fmt.Fprintln(out, "\nFull response:")
	return writeRawJSON(out, result.Raw)
}
