package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/trucred/trucred/internal/cli"
	"github.com/trucred/trucred/internal/model"
)

func reviewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "review",
		Short: "Review uploaded documents (reviewer workflow)",
		Long: `Reviewer actions against the verification ledger. The ledger is the
single source of truth for document status; score disclosure is gated
on every required document being verified here.`,
	}

	cmd.AddCommand(reviewListCmd())
	cmd.AddCommand(reviewMarkCmd("verify", model.StatusVerified))
	cmd.AddCommand(reviewMarkCmd("reject", model.StatusRejected))

	return cmd
}

func reviewListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List verification records awaiting review",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ledgerStore, _, err := initStores()
			if err != nil {
				return err
			}
			records, err := ledgerStore.Load()
			if err != nil {
				return err
			}
			keys, err := ledgerStore.Keys()
			if err != nil {
				return err
			}

			pending := 0
			for _, key := range keys {
				record := records[key]
				switch record.Status {
				case model.StatusPending:
					pending++
					cmd.Printf("%-60s %s\n", key, cli.WarningStyle.Render(string(record.Status)))
				case model.StatusVerified:
					cmd.Printf("%-60s %s\n", key, cli.SuccessStyle.Render(string(record.Status)))
				case model.StatusRejected:
					cmd.Printf("%-60s %s\n", key, cli.ErrorStyle.Render(string(record.Status)))
				}
			}

			slog.Info("Listed verification records",
				"total", len(keys),
				"pending", pending)
			return nil
		},
	}
}

func reviewMarkCmd(use string, status model.VerificationStatus) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <record-key>",
		Short: "Mark a document " + string(status),
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ledgerStore, _, err := initStores()
			if err != nil {
				return err
			}
			if err := ledgerStore.SetStatus(args[0], status); err != nil {
				return err
			}
			cmd.Println(cli.FormatSuccess(args[0] + " marked " + string(status)))
			return nil
		},
	}
}
