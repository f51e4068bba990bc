package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/trucred/trucred/internal/cli"
	"github.com/trucred/trucred/internal/common"
	"github.com/trucred/trucred/internal/model"
	"github.com/trucred/trucred/internal/verification"
)

func documentsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "documents",
		Short: "Manage uploaded proof documents",
	}

	cmd.AddCommand(documentsUploadCmd())
	cmd.AddCommand(documentsListCmd())
	cmd.AddCommand(documentsDeleteCmd())

	return cmd
}

func documentsUploadCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "upload <slot> <file>",
		Short: "Upload a proof document into a slot",
		Long: `Upload a proof document. Slots: recurring-payment (alias: rent),
mobile, utility. The document enters review as Pending.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			slot, ok := model.ParseDocumentSlot(args[0])
			if !ok {
				return fmt.Errorf("unknown document slot %q", args[0])
			}

			f, err := os.Open(args[1])
			if err != nil {
				return fmt.Errorf("failed to open document: %w", err)
			}
			defer f.Close()

			_, docs, err := initStores()
			if err != nil {
				return err
			}

			storedName, err := docs.Save(slot, args[1], f)
			if err != nil {
				return err
			}

			cmd.Println(cli.FormatSuccess(fmt.Sprintf("Uploaded %s to %s, pending review", storedName, slot.Label())))
			return nil
		},
	}
}

func documentsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List uploaded documents and their review status",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ledgerStore, docs, err := initStores()
			if err != nil {
				return err
			}
			records, err := ledgerStore.Load()
			if err != nil {
				return err
			}

			for _, slot := range model.AllSlots() {
				names, err := docs.List(slot)
				if err != nil {
					return err
				}
				cmd.Println(cli.FormatTitle(slot.Label()))
				if len(names) == 0 {
					cmd.Println(cli.SubtleStyle.Render("  no documents"))
					continue
				}
				for _, name := range names {
					record, ok := records[verification.Key(slot, name)]
					status := model.StatusPending
					if ok {
						status = record.Status
					}
					cmd.Printf("  %-40s %s\n", name, status)
				}
			}
			return nil
		},
	}
}

func documentsDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <slot> <stored-name>",
		Short: "Delete an uploaded document and its verification record",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			slot, ok := model.ParseDocumentSlot(args[0])
			if !ok {
				return fmt.Errorf("unknown document slot %q", args[0])
			}

			_, docs, err := initStores()
			if err != nil {
				return err
			}

			if err := docs.Delete(slot, args[1]); err != nil {
				var userErr *common.UserError
				if errors.As(err, &userErr) {
					// Non-fatal: the file is still there and so is its record.
					cmd.Println(cli.FormatWarning(userErr.Error()))
					return nil
				}
				return err
			}

			cmd.Println(cli.FormatSuccess("Deleted " + args[1]))
			return nil
		},
	}
}
