// Package ofx parses OFX/QFX bank statements into expense drafts.
package ofx

import (
	"fmt"
	"io"
	"log/slog"
	"regexp"
	"strings"

	"github.com/aclindsa/ofxgo"

	"github.com/pennyflow/penny/internal/model"
)

// Parser implements OFX/QFX statement parsing.
type Parser struct{}

// NewParser creates a new OFX parser.
func NewParser() *Parser {
	return &Parser{}
}

var (
	severityRegex = regexp.MustCompile(`(?i)<SEVERITY>(Info|Warn|Error)</SEVERITY>`)
	openTagRegex  = regexp.MustCompile(`(?m)^(\s*<[A-Z][A-Z0-9._]*[A-Z0-9])$`)
)

// preprocess fixes common formatting issues seen in bank exports: leading
// blank lines, mixed-case SEVERITY values, and SGML tags missing their
// closing bracket.
func (p *Parser) preprocess(content string) string {
	content = strings.TrimLeft(content, " \t\r\n")
	content = severityRegex.ReplaceAllStringFunc(content, strings.ToUpper)
	return openTagRegex.ReplaceAllString(content, "$1>")
}

// ParseFile reads an OFX/QFX statement and returns the debit transactions
// as expense drafts. Credits (deposits, refunds) are skipped; this is an
// expense tracker, not a ledger.
func (p *Parser) ParseFile(reader io.Reader) ([]model.ExpenseDraft, error) {
	content, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to read OFX file: %w", err)
	}

	resp, err := ofxgo.ParseResponse(strings.NewReader(p.preprocess(string(content))))
	if err != nil {
		return nil, fmt.Errorf("failed to parse OFX file: %w", err)
	}

	var drafts []model.ExpenseDraft
	var skipped int

	for _, msg := range resp.Bank {
		if stmt, ok := msg.(*ofxgo.StatementResponse); ok && stmt.BankTranList != nil {
			for _, tx := range stmt.BankTranList.Transactions {
				if draft, ok := p.convert(tx); ok {
					drafts = append(drafts, draft)
				} else {
					skipped++
				}
			}
		}
	}
	for _, msg := range resp.CreditCard {
		if stmt, ok := msg.(*ofxgo.CCStatementResponse); ok && stmt.BankTranList != nil {
			for _, tx := range stmt.BankTranList.Transactions {
				if draft, ok := p.convert(tx); ok {
					drafts = append(drafts, draft)
				} else {
					skipped++
				}
			}
		}
	}

	slog.Info("parsed OFX statement",
		"expenses", len(drafts),
		"skipped_credits", skipped)
	return drafts, nil
}

// convert maps one OFX transaction to an expense draft. OFX uses negative
// amounts for debits; only those become expenses and the sign is flipped.
func (p *Parser) convert(tx ofxgo.Transaction) (model.ExpenseDraft, bool) {
	amount, _ := tx.TrnAmt.Float64()
	if amount >= 0 {
		return model.ExpenseDraft{}, false
	}

	return model.ExpenseDraft{
		Amount: -amount,
		Note:   p.note(tx),
		Date:   tx.DtPosted.Time,
	}, true
}

// note builds a readable note from the payee or name, with the memo as a
// fallback for generic names.
func (p *Parser) note(tx ofxgo.Transaction) string {
	if tx.Payee != nil && tx.Payee.Name != "" {
		return string(tx.Payee.Name)
	}
	name := strings.TrimSpace(string(tx.Name))
	memo := strings.TrimSpace(string(tx.Memo))
	if name == "" {
		return memo
	}
	if memo != "" && !strings.EqualFold(name, memo) && len(name) < 8 {
		return name + " " + memo
	}
	return name
}
