// Package classifier buckets ledger rows into spending categories and
// derives a spending consistency verdict from them.
package classifier

import "github.com/trucred/trucred/internal/model"

// KeywordRule assigns a category to any description containing one of its
// terms. Matching is case-insensitive substring.
type KeywordRule struct {
	Category model.SpendingCategory
	Terms    []string
}

// DefaultRules returns the ordered keyword rule list. Order matters: a
// description matching terms from two rules resolves to the earlier one, so
// Rent is checked before Utility before Mobile.
func DefaultRules() []KeywordRule {
	return []KeywordRule{
		{
			Category: model.CategoryRent,
			Terms:    []string{"rent", "landlord", "lease", "tenant"},
		},
		{
			Category: model.CategoryUtility,
			Terms: []string{
				"electricity", "bijli", "power bill", "water bill",
				"gas bill", "utility", "broadband", "dth",
			},
		},
		{
			Category: model.CategoryMobile,
			Terms: []string{
				"recharge", "top-up", "topup", "prepaid",
				"jio", "airtel", "vodafone", "bsnl", "mobile",
			},
		},
	}
}
