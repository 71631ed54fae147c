package ofx

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Sample OFX statement for testing.
const sampleBankOFX = `OFXHEADER:100
DATA:OFXSGML
VERSION:102
SECURITY:NONE
ENCODING:USASCII
CHARSET:1252
COMPRESSION:NONE
OLDFILEUID:NONE
NEWFILEUID:NONE

<OFX>
<SIGNONMSGSRSV1>
<SONRS>
<STATUS>
<CODE>0
<SEVERITY>INFO
</STATUS>
<DTSERVER>20240315120000[0:GMT]
<LANGUAGE>ENG
</SONRS>
</SIGNONMSGSRSV1>
<BANKMSGSRSV1>
<STMTTRNRS>
<TRNUID>1
<STATUS>
<CODE>0
<SEVERITY>INFO
</STATUS>
<STMTRS>
<CURDEF>USD
<BANKACCTFROM>
<BANKID>123456789
<ACCTID>1234567890
<ACCTTYPE>CHECKING
</BANKACCTFROM>
<BANKTRANLIST>
<DTSTART>20240101120000[0:GMT]
<DTEND>20240131120000[0:GMT]
<STMTTRN>
<TRNTYPE>DEBIT
<DTPOSTED>20240115120000[0:GMT]
<TRNAMT>-25.50
<FITID>2024011501
<NAME>STARBUCKS STORE #1234
</STMTTRN>
<STMTTRN>
<TRNTYPE>DEBIT
<DTPOSTED>20240120120000[0:GMT]
<TRNAMT>-125.00
<FITID>2024012001
<NAME>Whole Foods Market
</STMTTRN>
<STMTTRN>
<TRNTYPE>CREDIT
<DTPOSTED>20240125120000[0:GMT]
<TRNAMT>1500.00
<FITID>2024012501
<NAME>PAYROLL DEPOSIT
</STMTTRN>
</BANKTRANLIST>
<LEDGERBAL>
<BALAMT>1000.00
<DTASOF>20240131120000[0:GMT]
</LEDGERBAL>
</STMTRS>
</STMTTRNRS>
</BANKMSGSRSV1>
</OFX>`

func TestParseFile(t *testing.T) {
	parser := NewParser()

	drafts, err := parser.ParseFile(strings.NewReader(sampleBankOFX))
	require.NoError(t, err)

	// The payroll credit is skipped; only debits become expenses.
	require.Len(t, drafts, 2)

	assert.InDelta(t, 25.50, drafts[0].Amount, 1e-9)
	assert.Equal(t, "STARBUCKS STORE #1234", drafts[0].Note)
	assert.Equal(t, 2024, drafts[0].Date.Year())
	assert.Equal(t, 15, drafts[0].Date.Day())

	assert.InDelta(t, 125.00, drafts[1].Amount, 1e-9)
	assert.Equal(t, "Whole Foods Market", drafts[1].Note)

	for _, draft := range drafts {
		assert.Greater(t, draft.Amount, 0.0)
		assert.Empty(t, draft.CategoryID, "category is assigned by the import command")
	}
}

func TestParseFileInvalid(t *testing.T) {
	parser := NewParser()
	_, err := parser.ParseFile(strings.NewReader("this is not an OFX file"))
	assert.Error(t, err)
}

func TestPreprocess(t *testing.T) {
	parser := NewParser()

	t.Run("uppercases severity values", func(t *testing.T) {
		got := parser.preprocess("<SEVERITY>Info</SEVERITY>")
		assert.Equal(t, "<SEVERITY>INFO</SEVERITY>", got)
	})

	t.Run("closes dangling SGML tags", func(t *testing.T) {
		got := parser.preprocess("<STMTTRN\n")
		assert.Equal(t, "<STMTTRN>\n", got)
	})

	t.Run("trims leading blank lines", func(t *testing.T) {
		got := parser.preprocess("\n\n  OFXHEADER:100")
		assert.True(t, strings.HasPrefix(got, "OFXHEADER"))
	})
}
