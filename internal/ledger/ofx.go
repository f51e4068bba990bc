package ledger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"regexp"
	"strings"

	"github.com/aclindsa/ofxgo"

	"github.com/trucred/trucred/internal/model"
)

// OFXReader parses OFX/QFX bank exports as an alternative ledger source.
type OFXReader struct{}

// NewOFXReader creates a new OFX ledger reader.
func NewOFXReader() *OFXReader {
	return &OFXReader{}
}

// preprocess fixes common formatting issues in OFX files before parsing.
func (p *OFXReader) preprocess(content string) string {
	// Trim any leading whitespace or blank lines before the header
	content = strings.TrimLeft(content, " \t\r\n")

	// Fix mixed-case SEVERITY values (should be INFO, WARN, or ERROR)
	severityRegex := regexp.MustCompile(`(?i)<SEVERITY>(Info|Warn|Error)</SEVERITY>`)
	content = severityRegex.ReplaceAllStringFunc(content, strings.ToUpper)

	// Fix missing closing angle brackets in SGML-style OFX files
	tagFixRegex := regexp.MustCompile(`(?m)^(\s*<[A-Z][A-Z0-9._]*[A-Z0-9])$`)
	content = tagFixRegex.ReplaceAllString(content, "$1>")

	return content
}

// Parse reads an OFX/QFX export and returns its transactions as ledger rows.
// The amount sign is dropped; classification only cares about magnitude.
func (p *OFXReader) Parse(_ context.Context, reader io.Reader) ([]model.LedgerRow, error) {
	content, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to read OFX file: %w", err)
	}

	resp, err := ofxgo.ParseResponse(strings.NewReader(p.preprocess(string(content))))
	if err != nil {
		return nil, fmt.Errorf("failed to parse OFX file: %w", err)
	}

	var rows []model.LedgerRow

	for _, msg := range resp.Bank {
		if stmt, ok := msg.(*ofxgo.StatementResponse); ok && stmt.BankTranList != nil {
			for _, tx := range stmt.BankTranList.Transactions {
				rows = append(rows, convertTransaction(tx))
			}
		}
	}
	for _, msg := range resp.CreditCard {
		if stmt, ok := msg.(*ofxgo.CCStatementResponse); ok && stmt.BankTranList != nil {
			for _, tx := range stmt.BankTranList.Transactions {
				rows = append(rows, convertTransaction(tx))
			}
		}
	}

	slog.Info("Parsed OFX ledger", "rows", len(rows))

	return rows, nil
}

func convertTransaction(tx ofxgo.Transaction) model.LedgerRow {
	amount, _ := tx.TrnAmt.Float64()
	if amount < 0 {
		amount = -amount
	}

	description := strings.TrimSpace(string(tx.Name))
	if memo := strings.TrimSpace(string(tx.Memo)); memo != "" {
		if description == "" {
			description = memo
		} else {
			description = description + " " + memo
		}
	}

	return model.LedgerRow{
		Date:        tx.DtPosted.Time,
		Description: description,
		Amount:      amount,
	}
}
