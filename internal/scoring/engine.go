// Package scoring implements the rule-based trust score engine and its
// grade banding.
package scoring

import (
	"fmt"

	"github.com/trucred/trucred/internal/common"
	"github.com/trucred/trucred/internal/model"
)

// MaxScore is the highest total the rule table can award. The score is
// presented on a nominal 0-100 scale but the table tops out at 90; existing
// records depend on that, so the table must not be renormalized.
const MaxScore = 90

// Rule names, used as breakdown keys.
const (
	RuleRecurringPayment    = "recurring-payment-history"
	RuleMobileRecharge      = "mobile-recharge-regularity"
	RuleLedgerSupplied      = "ledger-supplied"
	RuleReferenceFeedback   = "reference-feedback"
	RuleSpendingConsistency = "spending-consistency"
	RuleUtilityBill         = "utility-bill-ownership"
)

// rule is one row of the scoring table. Each rule reads a single signal and
// awards points independently of every other rule.
type rule struct {
	award     func(in model.BehavioralInput, spendingConsistent bool) int
	name      string
	maxPoints int
}

func ruleTable() []rule {
	return []rule{
		{
			name:      RuleRecurringPayment,
			maxPoints: 20,
			award: func(in model.BehavioralInput, _ bool) int {
				if in.RentMonthsOnTime >= 3 {
					return 20
				}
				return 0
			},
		},
		{
			name:      RuleMobileRecharge,
			maxPoints: 15,
			award: func(in model.BehavioralInput, _ bool) int {
				if in.MobileRechargeRegular == model.Yes {
					return 15
				}
				return 0
			},
		},
		{
			name:      RuleLedgerSupplied,
			maxPoints: 10,
			award: func(in model.BehavioralInput, _ bool) int {
				if in.HasLedger {
					return 10
				}
				return 0
			},
		},
		{
			name:      RuleReferenceFeedback,
			maxPoints: 20,
			award: func(in model.BehavioralInput, _ bool) int {
				switch in.ReferenceFeedback {
				case model.FeedbackPositive:
					return 20
				case model.FeedbackNeutral:
					return 10
				default:
					return 0
				}
			},
		},
		{
			name:      RuleSpendingConsistency,
			maxPoints: 15,
			award: func(_ model.BehavioralInput, spendingConsistent bool) int {
				if spendingConsistent {
					return 15
				}
				return 0
			},
		},
		{
			name:      RuleUtilityBill,
			maxPoints: 10,
			award: func(in model.BehavioralInput, _ bool) int {
				if in.UtilityBillInName == model.Yes {
					return 10
				}
				return 0
			},
		},
	}
}

// The bounded-total invariant lives at the table level: rule maximums must
// sum to exactly MaxScore so no clamp is ever needed on the total.
func init() {
	total := 0
	for _, r := range ruleTable() {
		total += r.maxPoints
	}
	if total != MaxScore {
		panic(fmt.Sprintf("scoring rule table awards up to %d points, want %d", total, MaxScore))
	}
}

// Score runs the rule table over one behavioral input. It is deterministic
// and has no side effects. Inputs with an unanswered tri-state field are a
// precondition violation; callers are expected to validate first, and the
// engine rejects them with common.ErrInvalidInput rather than score them.
func Score(in model.BehavioralInput, spendingConsistent bool) (model.ScoreBreakdown, error) {
	if in.MobileRechargeRegular == model.Unanswered || in.UtilityBillInName == model.Unanswered {
		return model.ScoreBreakdown{}, fmt.Errorf("%w: tri-state field unanswered", common.ErrInvalidInput)
	}

	table := ruleTable()
	breakdown := model.ScoreBreakdown{
		Awards: make([]model.RuleAward, 0, len(table)),
	}
	for _, r := range table {
		points := r.award(in, spendingConsistent)
		breakdown.Awards = append(breakdown.Awards, model.RuleAward{
			Rule:   r.name,
			Points: points,
		})
		breakdown.Total += points
	}
	breakdown.Grade = GradeFor(breakdown.Total)

	return breakdown, nil
}

// GradeFor converts a numeric trust score into its letter band. Boundary
// values belong to the higher band.
func GradeFor(total int) model.Grade {
	switch {
	case total >= 80:
		return model.GradeA
	case total >= 50:
		return model.GradeB
	default:
		return model.GradeC
	}
}
