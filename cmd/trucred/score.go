package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/trucred/trucred/internal/classifier"
	"github.com/trucred/trucred/internal/cli"
	"github.com/trucred/trucred/internal/common"
	"github.com/trucred/trucred/internal/gate"
	"github.com/trucred/trucred/internal/ledger"
	"github.com/trucred/trucred/internal/model"
	"github.com/trucred/trucred/internal/report"
	"github.com/trucred/trucred/internal/scoring"
)

func scoreCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "score",
		Short: "Compute a trust score for one submission",
		Long: `Compute a trust score from self-reported financial behaviors and an
optional transaction ledger (CSV or OFX/QFX).

The score is only disclosed once every required proof document has been
verified by a reviewer; until then the command reports which document
slots are still outstanding.

Examples:
  trucred score --name "Asha Rao" --email asha@example.com \
    --rent-months 5 --mobile-recharge yes --utility-bill yes \
    --reference-feedback positive --ledger statements/upi.csv`,
		RunE: runScore,
	}

	cmd.Flags().String("name", "", "applicant full name")
	cmd.Flags().String("email", "", "applicant email address")
	cmd.Flags().String("phone", "", "applicant phone number")
	cmd.Flags().Int("rent-months", 0, "months of rent paid on time (0-12)")
	cmd.Flags().String("mobile-recharge", "", "regular mobile recharges? (yes/no)")
	cmd.Flags().String("utility-bill", "", "utility bill in applicant's name? (yes/no)")
	cmd.Flags().String("reference-name", "", "reference contact name")
	cmd.Flags().String("reference-relationship", "", "relationship to the reference")
	cmd.Flags().String("reference-feedback", "", "reference rating (positive/neutral/negative)")
	cmd.Flags().String("ledger", "", "transaction ledger file (CSV or OFX/QFX)")
	cmd.Flags().String("output", "", "write the rendered report to this file")

	return cmd
}

func runScore(cmd *cobra.Command, _ []string) error {
	sub, err := submissionFromFlags(cmd)
	if err != nil {
		return err
	}

	ledgerPath, _ := cmd.Flags().GetString("ledger")
	rows, hasLedger, err := loadLedger(cmd, ledgerPath)
	if err != nil {
		return err
	}
	sub.Input.HasLedger = hasLedger

	if err := sub.Input.Validate(); err != nil {
		return common.NewUserError("submission is incomplete", err)
	}

	consistency := classifier.NewDefault().Classify(rows)
	slog.Debug("Classified ledger",
		"rows", len(rows),
		"verdict", consistency)

	breakdown, err := scoring.Score(sub.Input, consistency.IsConsistent())
	if err != nil {
		return err
	}

	_, docs, err := initStores()
	if err != nil {
		return err
	}
	records, err := docs.Records()
	if err != nil {
		return err
	}
	decision := gate.Evaluate(sub.Input, records)

	if !decision.Allowed {
		printPending(cmd, decision)
		return nil
	}

	printScore(cmd, breakdown)

	if output, _ := cmd.Flags().GetString("output"); output != "" {
		body, err := report.NewTextRenderer().Render(sub, breakdown, decision)
		if err != nil {
			return err
		}
		if err := os.WriteFile(output, body, 0o600); err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}
		cmd.Println(cli.FormatSuccess("Report written to " + output))
	}

	return nil
}

func submissionFromFlags(cmd *cobra.Command) (model.Submission, error) {
	name, _ := cmd.Flags().GetString("name")
	email, _ := cmd.Flags().GetString("email")
	phone, _ := cmd.Flags().GetString("phone")
	rentMonths, _ := cmd.Flags().GetInt("rent-months")
	mobileRecharge, _ := cmd.Flags().GetString("mobile-recharge")
	utilityBill, _ := cmd.Flags().GetString("utility-bill")
	refName, _ := cmd.Flags().GetString("reference-name")
	refRelationship, _ := cmd.Flags().GetString("reference-relationship")
	refFeedback, _ := cmd.Flags().GetString("reference-feedback")

	feedback, err := model.ParseReferenceFeedback(refFeedback)
	if err != nil {
		return model.Submission{}, common.NewUserError("reference feedback must be positive, neutral or negative", err)
	}

	return model.Submission{
		Name:                  name,
		Email:                 email,
		Phone:                 phone,
		ReferenceName:         refName,
		ReferenceRelationship: refRelationship,
		Input: model.BehavioralInput{
			RentMonthsOnTime:      rentMonths,
			MobileRechargeRegular: model.ParseTriState(mobileRecharge),
			UtilityBillInName:     model.ParseTriState(utilityBill),
			ReferenceFeedback:     feedback,
		},
	}, nil
}

// loadLedger parses the ledger file if one was supplied. A ledger missing
// its required columns still counts as supplied; it just classifies as
// inconsistent downstream.
func loadLedger(cmd *cobra.Command, path string) ([]model.LedgerRow, bool, error) {
	if path == "" {
		return nil, false, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, false, fmt.Errorf("failed to open ledger: %w", err)
	}
	defer f.Close()

	var rows []model.LedgerRow
	switch strings.ToLower(filepath.Ext(path)) {
	case ".ofx", ".qfx":
		rows, err = ledger.NewOFXReader().Parse(cmd.Context(), f)
	default:
		rows, err = ledger.ParseCSV(f)
	}

	if errors.Is(err, common.ErrMissingColumns) {
		slog.Warn("Ledger missing required columns, treating as inconsistent",
			"file", filepath.Base(path))
		return nil, true, nil
	}
	if err != nil {
		return nil, false, err
	}

	return rows, true, nil
}

func printScore(cmd *cobra.Command, breakdown model.ScoreBreakdown) {
	var b strings.Builder
	for _, award := range breakdown.Awards {
		fmt.Fprintf(&b, "%-28s %d\n", award.Rule, award.Points)
	}
	fmt.Fprintf(&b, "\n%s", cli.BoldStyle.Render(
		fmt.Sprintf("Trust Score: %d/100 (Grade %s)", breakdown.Total, breakdown.Grade)))

	cmd.Println(cli.RenderBox("Trust Score", b.String()))
}

func printPending(cmd *cobra.Command, decision gate.Decision) {
	var outstanding []string
	for _, slot := range decision.Outstanding {
		outstanding = append(outstanding, fmt.Sprintf("%s (%s)", slot.Label(), decision.Slots[slot]))
	}
	cmd.Println(cli.FormatWarning("Score is pending document review"))
	cmd.Println(cli.SubtleStyle.Render("Outstanding: " + strings.Join(outstanding, ", ")))
}
