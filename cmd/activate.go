package cmd

import (
	"context"
	"encoding/json"
	"fmt"

	reportrender "github.com/nfdez/brainctl/internal/adapters/render/report"
	"github.com/nfdez/brainctl/internal/application"
	"github.com/nfdez/brainctl/internal/domain"
	"github.com/spf13/cobra"
)

func newActivateCmd(app *app) *cobra.Command {
	var tokens []string
	var appendMode bool
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "activar",
		Short: "Activate specific nodes in the visualization",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runActivate(cmd, app, tokens, appendMode, asJSON)
		},
	}

	cmd.Flags().StringArrayVarP(&tokens, "nodes", "n", nil,
		"Nodes to activate as 'id:name' (e.g. '144:Visual')")
	cmd.Flags().BoolVarP(&appendMode, "append", "a", false,
		"Add to the active nodes instead of replacing them")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the raw response JSON")
	_ = cmd.MarkFlagRequired("nodes")

	return cmd
}

func runActivate(cmd *cobra.Command, app *app, tokens []string, appendMode, asJSON bool) error {
	nodes, err := domain.ParseNodeTokens(tokens)
	if err != nil {
		return fmt.Errorf("use 'id:name' (e.g. '144:Visual'): %w", err)
	}

	request := domain.ActivationRequest{Nodes: nodes, Append: appendMode}
	client := app.brainAPI()
	out := cmd.OutOrStdout()

	if !asJSON {
		payload, err := json.MarshalIndent(request, "", "  ")
		if err != nil {
			return fmt.Errorf("encode request payload: %w", err)
		}
		fmt.Fprintf(out, "POST %s\n%s\n", client.Endpoint("/activate"), payload)
	}

	var result domain.ActivateResult
	err = runWithSpinner(cmd, asJSON, func(ctx context.Context) error {
		var callErr error
		result, callErr = client.Activate(ctx, request)
		return callErr
	})
	if err != nil {
		reportRemoteError(out, err)
		return nil
	}

	if asJSON {
		return writeRawJSON(out, result.Raw)
	}

	rendered, err := reportrender.RenderActivation(application.BuildActivationReport(nodes, result.ActiveNodes))
	if err != nil {
		return fmt.Errorf("render activation report: %w", err)
	}

	_, err = fmt.Fprintf(out, "\n%s\n", rendered)
	return err
}
