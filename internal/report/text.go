// Package report renders scored submissions into shareable artifacts.
package report

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/trucred/trucred/internal/gate"
	"github.com/trucred/trucred/internal/model"
	"github.com/trucred/trucred/internal/service"
)

// TextRenderer renders a plain-text financial profile report. It stands in
// for richer renderers (the production system attaches a PDF); the scoring
// core treats them identically.
type TextRenderer struct{}

var _ service.ReportRenderer = (*TextRenderer)(nil)

// NewTextRenderer creates a plain-text report renderer.
func NewTextRenderer() *TextRenderer {
	return &TextRenderer{}
}

// Render produces the report body for one scored submission.
func (r *TextRenderer) Render(sub model.Submission, breakdown model.ScoreBreakdown, decision gate.Decision) ([]byte, error) {
	var b strings.Builder

	b.WriteString("TruCred Verified Financial Profile\n")
	b.WriteString("==================================\n\n")

	fmt.Fprintf(&b, "Name:  %s\n", sub.Name)
	fmt.Fprintf(&b, "Email: %s\n", sub.Email)
	fmt.Fprintf(&b, "Phone: %s\n", sub.Phone)
	if sub.ReferenceName != "" {
		fmt.Fprintf(&b, "Reference: %s (%s)\n", sub.ReferenceName, sub.ReferenceRelationship)
	}
	b.WriteString("\n")

	tw := tabwriter.NewWriter(&b, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "Rule\tPoints")
	for _, award := range breakdown.Awards {
		fmt.Fprintf(tw, "%s\t%d\n", award.Rule, award.Points)
	}
	if err := tw.Flush(); err != nil {
		return nil, fmt.Errorf("failed to render score table: %w", err)
	}

	fmt.Fprintf(&b, "\nTrust Score: %d/100 (Grade %s)\n\n", breakdown.Total, breakdown.Grade)

	b.WriteString("Document verification\n")
	for _, slot := range model.AllSlots() {
		fmt.Fprintf(&b, "  %-24s %s\n", slot.Label()+":", decision.Slots[slot])
	}
	if !decision.Allowed {
		b.WriteString("\nThis profile is provisional until all required documents are verified.\n")
	}

	return []byte(b.String()), nil
}
