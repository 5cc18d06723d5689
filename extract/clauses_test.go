package extract

import (
	"strings"
	"testing"

	"github.com/caralegal/cara/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClausesSingleMatch(t *testing.T) {
	clauses := Clauses("This agreement contains a non-compete obligation.")

	require.Len(t, clauses, 1)
	assert.Equal(t, "Non-Compete", clauses[0].Type)
	assert.Equal(t, core.RiskHigh, clauses[0].RiskLevel)
	assert.NotEmpty(t, clauses[0].Explanation)
}

func TestClausesNoDuplicatePerType(t *testing.T) {
	// Two trigger phrases of the same type must still yield one clause.
	clauses := Clauses("A non-compete covenant. The non compete survives termination of employment.")

	var nonCompete int
	for _, c := range clauses {
		if c.Type == "Non-Compete" {
			nonCompete++
		}
	}
	assert.Equal(t, 1, nonCompete)
}

func TestClausesCaseInsensitive(t *testing.T) {
	clauses := Clauses("FORCE MAJEURE shall excuse performance.")

	require.Len(t, clauses, 1)
	assert.Equal(t, "Force Majeure", clauses[0].Type)
	assert.Equal(t, core.RiskLow, clauses[0].RiskLevel)
}

func TestClausesTableOrder(t *testing.T) {
	// Text order is reversed relative to the catalog; output must follow
	// catalog order.
	clauses := Clauses("Payment of salary is monthly. All proprietary information stays confidential. No non-compete applies... wait, a non-compete DOES apply.")

	require.Len(t, clauses, 3)
	assert.Equal(t, "Non-Compete", clauses[0].Type)
	assert.Equal(t, "Confidentiality", clauses[1].Type)
	assert.Equal(t, "Payment Terms", clauses[2].Type)
}

func TestClausesRiskLevels(t *testing.T) {
	tests := []struct {
		phrase string
		typ    string
		risk   core.RiskLevel
	}{
		{"non-compete", "Non-Compete", core.RiskHigh},
		{"confidential", "Confidentiality", core.RiskLow},
		{"termination", "Termination", core.RiskMedium},
		{"indemnify", "Indemnification", core.RiskHigh},
		{"intellectual property", "Intellectual Property", core.RiskMedium},
		{"arbitration", "Arbitration", core.RiskMedium},
		{"force majeure", "Force Majeure", core.RiskLow},
		{"payment", "Payment Terms", core.RiskMedium},
		{"limitation of liability", "Liability Limitation", core.RiskHigh},
		{"auto-renewal", "Renewal / Lock-in", core.RiskHigh},
	}

	for _, tt := range tests {
		t.Run(tt.typ, func(t *testing.T) {
			clauses := Clauses("clause: " + tt.phrase)
			require.Len(t, clauses, 1)
			assert.Equal(t, tt.typ, clauses[0].Type)
			assert.Equal(t, tt.risk, clauses[0].RiskLevel)
		})
	}
}

func TestClausesEmptyText(t *testing.T) {
	assert.Empty(t, Clauses(""))
	assert.Empty(t, Clauses("nothing of legal interest here"))
}

func TestClausesScanLimit(t *testing.T) {
	// A trigger phrase past the 10k boundary must not match.
	text := strings.Repeat("x", clauseScanLimit) + " non-compete"
	assert.Empty(t, Clauses(text))

	// Inside the boundary it must.
	text = "non-compete " + strings.Repeat("x", clauseScanLimit)
	clauses := Clauses(text)
	require.Len(t, clauses, 1)
	assert.Equal(t, "Non-Compete", clauses[0].Type)
}
