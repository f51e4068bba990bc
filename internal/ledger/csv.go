// Package ledger parses uploaded transaction ledgers into rows the
// classifier can consume.
package ledger

import (
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/trucred/trucred/internal/common"
	"github.com/trucred/trucred/internal/model"
)

// Date layouts accepted in ledger exports, tried in order. UPI statement
// exports are inconsistent about this, so the list is permissive.
var dateLayouts = []string{
	"2006-01-02",
	"2006/01/02",
	"02-01-2006",
	"02/01/2006",
	"02 Jan 2006",
	"2 Jan 2006",
	"Jan 2, 2006",
	time.RFC3339,
}

// ParseCSV reads a tabular ledger with Date, Description and Amount columns.
// Header matching is case-insensitive. Rows whose date or amount cannot be
// parsed are dropped, not treated as errors; a ledger without the required
// columns returns common.ErrMissingColumns so the caller can degrade to an
// Inconsistent verdict.
func ParseCSV(r io.Reader) ([]model.LedgerRow, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrMissingColumns, err)
	}

	dateIdx, descIdx, amountIdx := -1, -1, -1
	for i, col := range header {
		switch strings.ToLower(strings.TrimSpace(col)) {
		case "date":
			dateIdx = i
		case "description", "narration", "details":
			descIdx = i
		case "amount":
			amountIdx = i
		}
	}
	if dateIdx < 0 || descIdx < 0 || amountIdx < 0 {
		return nil, fmt.Errorf("%w: need Date, Description and Amount", common.ErrMissingColumns)
	}

	var rows []model.LedgerRow
	var dropped int
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			dropped++
			continue
		}
		maxIdx := dateIdx
		if descIdx > maxIdx {
			maxIdx = descIdx
		}
		if amountIdx > maxIdx {
			maxIdx = amountIdx
		}
		if len(record) <= maxIdx {
			dropped++
			continue
		}

		date, ok := parseDate(record[dateIdx])
		if !ok {
			dropped++
			continue
		}
		amount, ok := parseAmount(record[amountIdx])
		if !ok {
			dropped++
			continue
		}

		rows = append(rows, model.LedgerRow{
			Date:        date,
			Description: strings.TrimSpace(record[descIdx]),
			Amount:      amount,
		})
	}

	if dropped > 0 {
		slog.Debug("Dropped unparseable ledger rows",
			"dropped", dropped,
			"kept", len(rows))
	}

	return rows, nil
}

func parseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func parseAmount(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "₹")
	s = strings.TrimPrefix(s, "$")
	s = strings.ReplaceAll(s, ",", "")
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	amount, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return amount, true
}
