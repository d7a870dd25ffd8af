package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
)

func exportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Download the order ledger as CSV",
		Long: `Download the server-rendered CSV export of the full order ledger and
write it to a file. The remote store renders the CSV; this command only
streams it to disk.`,
		RunE: runExport,
	}

	cmd.Flags().StringP("output", "o", "orders.csv", "output file path")

	return cmd
}

func runExport(cmd *cobra.Command, _ []string) error {
	client, err := newGatewayClient()
	if err != nil {
		return err
	}

	outPath, _ := cmd.Flags().GetString("output")

	slog.Info("Fetching CSV export from remote store")
	blob, err := client.FetchCSV(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to fetch export: %w", err)
	}
	if blob == "" {
		return fmt.Errorf("remote store returned an empty export")
	}

	out, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", outPath, err)
	}
	defer func() { _ = out.Close() }()

	bar := progressbar.NewOptions(len(blob),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionShowBytes(true),
		progressbar.OptionSetWidth(40),
		progressbar.OptionSetDescription("Writing CSV..."),
		progressbar.OptionOnCompletion(func() {
			if _, err := fmt.Fprintln(os.Stderr); err != nil {
				slog.Warn("Failed to write newline after progress bar", "error", err)
			}
		}),
	)

	if _, err := io.Copy(io.MultiWriter(out, bar), strings.NewReader(blob)); err != nil {
		return fmt.Errorf("failed to write %s: %w", outPath, err)
	}

	slog.Info("Export written", "path", outPath, "bytes", len(blob))
	return nil
}
