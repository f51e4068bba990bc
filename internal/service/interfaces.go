// Package service defines the interfaces for the application's external
// collaborators. The scoring core depends on these contracts, never on a
// concrete renderer or transport.
package service

import (
	"context"

	"github.com/trucred/trucred/internal/gate"
	"github.com/trucred/trucred/internal/model"
)

// ReportRenderer produces a document artifact from one scored submission.
// The core does not depend on the output format; a PDF renderer and the
// plain-text renderer are interchangeable here.
type ReportRenderer interface {
	Render(sub model.Submission, breakdown model.ScoreBreakdown, decision gate.Decision) ([]byte, error)
}

// MailTransport delivers a rendered report to the applicant.
type MailTransport interface {
	Send(ctx context.Context, recipient, subject, body string, attachment []byte) error
}
