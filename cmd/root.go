package cmd

import (
	"errors"

	"github.com/spf13/cobra"
)

var errNoCommand = errors.New("no command specified")

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "brainctl",
		Short:         "brainctl: control the Neo4j brain visualization server",
		Long:          "brainctl activates nodes on a remote brain visualization server, resets the view, and inspects the currently active node set from the terminal.",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_ = cmd.Help()
			return errNoCommand
		},
	}

	app, err := wireApp()
	if err != nil {
		rootCmd.RunE = func(_ *cobra.Command, _ []string) error {
			return err
		}
		return rootCmd
	}

	rootCmd.PersistentFlags().StringVarP(&app.serverURL, "server", "s", app.serverURL,
		"Base URL of the visualization server API")

	rootCmd.AddCommand(
		newVersionCmd(),
		newActivateCmd(app),
		newResetCmd(app),
		newStatusCmd(app),
		newConfigCmd(),
	)

	return rootCmd
}
