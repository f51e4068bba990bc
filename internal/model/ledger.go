package model

import "time"

// LedgerRow is a single transaction from an uploaded ledger.
type LedgerRow struct {
	Date        time.Time
	Description string
	Amount      float64
}

// SpendingCategory is the bucket a ledger row falls into for spending
// consistency analysis.
type SpendingCategory string

// Spending categories.
const (
	CategoryRent    SpendingCategory = "rent"
	CategoryUtility SpendingCategory = "utility"
	CategoryMobile  SpendingCategory = "mobile"
	CategoryOther   SpendingCategory = "other"
)

// SpendingConsistency is the classifier's verdict on an uploaded ledger.
type SpendingConsistency string

// Spending consistency verdicts.
const (
	Consistent   SpendingConsistency = "consistent"
	Inconsistent SpendingConsistency = "inconsistent"
)

// IsConsistent reports whether the verdict counts toward the trust score.
func (s SpendingConsistency) IsConsistent() bool {
	return s == Consistent
}
