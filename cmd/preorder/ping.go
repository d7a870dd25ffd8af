package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

func pingCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ping",
		Short: "Check that the remote store is reachable",
		RunE:  runPing,
	}
}

func runPing(cmd *cobra.Command, _ []string) error {
	client, err := newGatewayClient()
	if err != nil {
		return err
	}

	start := time.Now()
	if err := client.Ping(cmd.Context()); err != nil {
		return fmt.Errorf("remote store unreachable: %w", err)
	}

	fmt.Printf("Remote store reachable (%s)\n", time.Since(start).Round(time.Millisecond))
	return nil
}
