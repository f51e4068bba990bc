package classifier

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trucred/trucred/internal/model"
)

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

func TestClassifier_Categorize(t *testing.T) {
	c := NewDefault()

	tests := []struct {
		name        string
		description string
		want        model.SpendingCategory
	}{
		{
			name:        "rent payment",
			description: "Paid rent to landlord",
			want:        model.CategoryRent,
		},
		{
			name:        "utility bill",
			description: "Electricity bijli bill",
			want:        model.CategoryUtility,
		},
		{
			name:        "mobile recharge",
			description: "Jio recharge",
			want:        model.CategoryMobile,
		},
		{
			name:        "unmatched",
			description: "Grocery store",
			want:        model.CategoryOther,
		},
		{
			name:        "case insensitive",
			description: "RENT TRANSFER VIA UPI",
			want:        model.CategoryRent,
		},
		{
			name:        "rent wins over mobile on ambiguous description",
			description: "rent paid via jio payments bank",
			want:        model.CategoryRent,
		},
		{
			name:        "utility wins over mobile",
			description: "electricity bill via airtel thanks",
			want:        model.CategoryUtility,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Categorize(tt.description))
		})
	}
}

func TestClassifier_Classify(t *testing.T) {
	tests := []struct {
		name string
		rows []model.LedgerRow
		want model.SpendingConsistency
	}{
		{
			name: "empty ledger is inconsistent",
			rows: nil,
			want: model.Inconsistent,
		},
		{
			name: "rent in three distinct months is consistent",
			rows: []model.LedgerRow{
				{Date: day(2024, time.January, 5), Description: "Rent to landlord", Amount: 8000},
				{Date: day(2024, time.February, 6), Description: "Rent to landlord", Amount: 8000},
				{Date: day(2024, time.March, 4), Description: "Rent to landlord", Amount: 8000},
			},
			want: model.Consistent,
		},
		{
			name: "rent in only two months is inconsistent",
			rows: []model.LedgerRow{
				{Date: day(2024, time.January, 5), Description: "Rent to landlord", Amount: 8000},
				{Date: day(2024, time.January, 20), Description: "Rent to landlord", Amount: 8000},
				{Date: day(2024, time.February, 6), Description: "Rent to landlord", Amount: 8000},
			},
			want: model.Inconsistent,
		},
		{
			name: "three months spread across categories is inconsistent",
			rows: []model.LedgerRow{
				{Date: day(2024, time.January, 5), Description: "Rent to landlord", Amount: 8000},
				{Date: day(2024, time.February, 6), Description: "Jio recharge", Amount: 299},
				{Date: day(2024, time.March, 4), Description: "Electricity bijli bill", Amount: 1200},
			},
			want: model.Inconsistent,
		},
		{
			name: "mobile recharges across three months is consistent",
			rows: []model.LedgerRow{
				{Date: day(2024, time.April, 1), Description: "Airtel recharge", Amount: 199},
				{Date: day(2024, time.May, 2), Description: "Airtel recharge", Amount: 199},
				{Date: day(2024, time.June, 3), Description: "Jio recharge", Amount: 299},
			},
			want: model.Consistent,
		},
		{
			name: "month with non-positive category sum does not count",
			rows: []model.LedgerRow{
				{Date: day(2024, time.January, 5), Description: "Rent to landlord", Amount: 8000},
				{Date: day(2024, time.February, 6), Description: "Rent to landlord", Amount: 8000},
				{Date: day(2024, time.March, 4), Description: "Rent to landlord", Amount: 8000},
				{Date: day(2024, time.March, 20), Description: "Rent refund from landlord", Amount: -8000},
			},
			want: model.Inconsistent,
		},
		{
			name: "other category never counts",
			rows: []model.LedgerRow{
				{Date: day(2024, time.January, 5), Description: "Grocery store", Amount: 500},
				{Date: day(2024, time.February, 6), Description: "Grocery store", Amount: 500},
				{Date: day(2024, time.March, 4), Description: "Grocery store", Amount: 500},
			},
			want: model.Inconsistent,
		},
		{
			name: "rows without dates are ignored",
			rows: []model.LedgerRow{
				{Description: "Rent to landlord", Amount: 8000},
				{Description: "Rent to landlord", Amount: 8000},
				{Description: "Rent to landlord", Amount: 8000},
			},
			want: model.Inconsistent,
		},
	}

	c := NewDefault()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Classify(tt.rows))
		})
	}
}

func TestClassifier_RowOrderInvariance(t *testing.T) {
	rows := []model.LedgerRow{
		{Date: day(2024, time.January, 5), Description: "Rent to landlord", Amount: 8000},
		{Date: day(2024, time.February, 6), Description: "Rent to landlord", Amount: 8000},
		{Date: day(2024, time.March, 4), Description: "Rent to landlord", Amount: 8000},
		{Date: day(2024, time.March, 10), Description: "Grocery store", Amount: 500},
		{Date: day(2024, time.March, 12), Description: "Jio recharge", Amount: 299},
	}

	c := NewDefault()
	want := c.Classify(rows)
	require.Equal(t, model.Consistent, want)

	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 20; i++ {
		shuffled := make([]model.LedgerRow, len(rows))
		copy(shuffled, rows)
		rng.Shuffle(len(shuffled), func(a, b int) {
			shuffled[a], shuffled[b] = shuffled[b], shuffled[a]
		})
		assert.Equal(t, want, c.Classify(shuffled))
	}
}

func TestClassifier_Idempotent(t *testing.T) {
	rows := []model.LedgerRow{
		{Date: day(2024, time.January, 5), Description: "Rent to landlord", Amount: 8000},
		{Date: day(2024, time.February, 6), Description: "Rent to landlord", Amount: 8000},
		{Date: day(2024, time.March, 4), Description: "Rent to landlord", Amount: 8000},
	}

	c := NewDefault()
	first := c.Classify(rows)
	second := c.Classify(rows)
	assert.Equal(t, first, second)
}
