// Package model defines the core domain models used throughout the application.
package model

import (
	"fmt"
	"strings"
)

// TriState represents an answer to a yes/no question that may not have been
// answered yet. The zero value is Unanswered so a forgotten field can never
// pass for a real answer.
type TriState int

// TriState values.
const (
	Unanswered TriState = iota
	Yes
	No
)

func (t TriState) String() string {
	switch t {
	case Yes:
		return "Yes"
	case No:
		return "No"
	default:
		return "Unanswered"
	}
}

// ParseTriState converts a form answer into a TriState. The legacy form layer
// used "Please select" as its placeholder option; that and the empty string
// map to Unanswered.
func ParseTriState(s string) TriState {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "yes":
		return Yes
	case "no":
		return No
	default:
		return Unanswered
	}
}

// ReferenceFeedback is a reference's rating of the applicant's financial behavior.
type ReferenceFeedback string

// Reference feedback values.
const (
	FeedbackPositive ReferenceFeedback = "positive"
	FeedbackNeutral  ReferenceFeedback = "neutral"
	FeedbackNegative ReferenceFeedback = "negative"
)

// ParseReferenceFeedback converts a form answer into a ReferenceFeedback.
func ParseReferenceFeedback(s string) (ReferenceFeedback, error) {
	switch ReferenceFeedback(strings.ToLower(strings.TrimSpace(s))) {
	case FeedbackPositive:
		return FeedbackPositive, nil
	case FeedbackNeutral:
		return FeedbackNeutral, nil
	case FeedbackNegative:
		return FeedbackNegative, nil
	default:
		return "", fmt.Errorf("invalid reference feedback %q", s)
	}
}

// BehavioralInput holds the self-reported financial signals for one scoring
// request. The engine reads these fields directly; range and completeness
// validation is the caller's job via Validate.
type BehavioralInput struct {
	MobileRechargeRegular TriState
	UtilityBillInName     TriState
	ReferenceFeedback     ReferenceFeedback
	RentMonthsOnTime      int
	HasLedger             bool
}

// Validate checks that every field is in range and every tri-state question
// was actually answered. Scoring must not be invoked on an input that fails
// validation.
func (b BehavioralInput) Validate() error {
	if b.RentMonthsOnTime < 0 || b.RentMonthsOnTime > 12 {
		return fmt.Errorf("rent months on time must be 0-12, got %d", b.RentMonthsOnTime)
	}
	if b.MobileRechargeRegular == Unanswered {
		return fmt.Errorf("mobile recharge question is unanswered")
	}
	if b.UtilityBillInName == Unanswered {
		return fmt.Errorf("utility bill question is unanswered")
	}
	switch b.ReferenceFeedback {
	case FeedbackPositive, FeedbackNeutral, FeedbackNegative:
	default:
		return fmt.Errorf("invalid reference feedback %q", b.ReferenceFeedback)
	}
	return nil
}

// Submission is one applicant's full scoring request: identity fields for the
// report, the reference contact, and the behavioral signals.
type Submission struct {
	Name                  string
	Email                 string
	Phone                 string
	ReferenceName         string
	ReferenceRelationship string
	Input                 BehavioralInput
}
