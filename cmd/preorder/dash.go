package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/slimcoreui/preorder-admin/internal/tui"
)

func dashCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dash",
		Short: "Open the interactive order dashboard",
		Long: `Open the interactive dashboard: a filterable card grid with live totals,
a per-mediator vision view and inline order editing. Edits apply locally at
once and sync to the remote store in the background.`,
		RunE: runDash,
	}

	cmd.Flags().Duration("load-timeout", 0, "how long the initial load may take before degrading to an empty set")
	cmd.Flags().Duration("keep-alive", 0, "interval between keep-alive pings")
	_ = viper.BindPFlag("dashboard.load_timeout", cmd.Flags().Lookup("load-timeout"))
	_ = viper.BindPFlag("dashboard.keep_alive", cmd.Flags().Lookup("keep-alive"))

	return cmd
}

func runDash(cmd *cobra.Command, _ []string) error {
	client, err := newGatewayClient()
	if err != nil {
		return err
	}

	opts := []tui.Option{tui.WithRemote(client)}
	if d := viper.GetDuration("dashboard.load_timeout"); d > 0 {
		opts = append(opts, tui.WithLoadTimeout(d))
	}
	if d := viper.GetDuration("dashboard.keep_alive"); d > 0 {
		opts = append(opts, tui.WithKeepAlive(d))
	}

	return tui.Run(cmd.Context(), opts...)
}
