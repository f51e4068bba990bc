package classifier

import (
	"strings"

	"github.com/trucred/trucred/internal/model"
)

// consistentMonths is the number of distinct calendar months a single
// category must show positive spend in for the ledger to count as consistent.
const consistentMonths = 3

// Classifier derives spending consistency from a parsed ledger. It is a pure
// function of its input and safe to reuse across requests.
type Classifier struct {
	rules []KeywordRule
}

// New creates a classifier with the given keyword rules. Most callers want
// NewDefault.
func New(rules []KeywordRule) *Classifier {
	return &Classifier{rules: rules}
}

// NewDefault creates a classifier with the default rule list.
func NewDefault() *Classifier {
	return New(DefaultRules())
}

// Categorize buckets a single description. First matching rule wins;
// descriptions matching no rule fall through to Other.
func (c *Classifier) Categorize(description string) model.SpendingCategory {
	lower := strings.ToLower(description)
	for _, rule := range c.rules {
		for _, term := range rule.Terms {
			if strings.Contains(lower, term) {
				return rule.Category
			}
		}
	}
	return model.CategoryOther
}

type monthCategory struct {
	month    string // YYYY-MM
	category model.SpendingCategory
}

// Classify buckets every row, sums amounts per (calendar month, category)
// and reports Consistent when any of the rent, utility or mobile categories
// shows strictly positive spend in at least three distinct months. Rows with
// a zero date are ignored. A ledger with no usable rows is Inconsistent; the
// classifier never fails.
func (c *Classifier) Classify(rows []model.LedgerRow) model.SpendingConsistency {
	sums := make(map[monthCategory]float64)
	for _, row := range rows {
		if row.Date.IsZero() {
			continue
		}
		key := monthCategory{
			month:    row.Date.Format("2006-01"),
			category: c.Categorize(row.Description),
		}
		sums[key] += row.Amount
	}

	months := make(map[model.SpendingCategory]int)
	for key, sum := range sums {
		if sum > 0 {
			months[key.category]++
		}
	}

	for _, category := range []model.SpendingCategory{
		model.CategoryRent, model.CategoryUtility, model.CategoryMobile,
	} {
		if months[category] >= consistentMonths {
			return model.Consistent
		}
	}
	return model.Inconsistent
}
