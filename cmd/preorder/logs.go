package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func logsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logs",
		Short: "Show the recent remote edit history",
		RunE:  runLogs,
	}
}

func runLogs(cmd *cobra.Command, _ []string) error {
	client, err := newGatewayClient()
	if err != nil {
		return err
	}

	logs, err := client.RecentLogs(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to fetch edit history: %w", err)
	}
	if len(logs) == 0 {
		fmt.Println("No recent edits.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "TIME\tORDER\tDETAIL")
	for _, l := range logs {
		fmt.Fprintf(w, "%s\t%s\t%s\n", l.Time, l.OrderID, l.Detail)
	}
	return w.Flush()
}
