package analysis

import (
	"context"
	"strings"
	"testing"

	"github.com/caralegal/cara/ai"
	"github.com/caralegal/cara/ai/mock"
	"github.com/caralegal/cara/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// routingCompleter answers each analysis variant with its own canned
// response, keyed off the system prompt.
func routingCompleter() *mock.MockCompleter {
	m := mock.NewMockCompleter()
	m.CompleteFunc = func(ctx context.Context, req ai.CompletionRequest) (*ai.Completion, error) {
		switch {
		case strings.Contains(req.System, "contract analysis"):
			return &ai.Completion{Content: `{"contract_type": "Employment Agreement", "parties": ["Employer: X"], "dates": [], "amounts": [], "clauses": [{"type": "Payment Terms", "risk_level": "Medium", "explanation": "Monthly salary."}]}`}, nil
		case strings.Contains(req.System, "risk assessment"):
			return &ai.Completion{Content: `{"overall_score": 40, "legal_risk": "Low", "financial_risk": "Medium", "compliance_risk": "Low", "detected_risks": {"penalty_clause": false}, "detailed_risks": [{"category": "Legal", "description": "Standard terms."}]}`}, nil
		case strings.Contains(req.System, "compliance checking"):
			return &ai.Completion{Content: `{"is_compliant": true, "applicable_laws": ["Indian Contract Act 1872"], "violations": [], "recommendations": []}`}, nil
		}
		return &ai.Completion{Content: "{}"}, nil
	}
	return m
}

func newTestRunner(t *testing.T, completer ai.Completer) *Runner {
	t.Helper()

	analyzer, err := NewAnalyzer(completer)
	require.NoError(t, err)
	scorer, err := NewRiskScorer(completer)
	require.NoError(t, err)
	checker, err := NewComplianceChecker(completer, nil)
	require.NoError(t, err)

	runner, err := NewRunner(analyzer, scorer, checker)
	require.NoError(t, err)
	t.Cleanup(runner.Release)
	return runner
}

func TestNewRunnerValidation(t *testing.T) {
	completer := mock.NewMockCompleter()
	analyzer, err := NewAnalyzer(completer)
	require.NoError(t, err)
	scorer, err := NewRiskScorer(completer)
	require.NoError(t, err)
	checker, err := NewComplianceChecker(completer, nil)
	require.NoError(t, err)

	_, err = NewRunner(nil, scorer, checker)
	assert.ErrorIs(t, err, ErrAnalyzerRequired)

	_, err = NewRunner(analyzer, nil, checker)
	assert.ErrorIs(t, err, ErrScorerRequired)

	_, err = NewRunner(analyzer, scorer, nil)
	assert.ErrorIs(t, err, ErrCheckerRequired)
}

func TestFullReport(t *testing.T) {
	completer := routingCompleter()
	runner := newTestRunner(t, completer)

	report, err := runner.FullReport(context.Background(), employmentContract, core.LanguageEnglish)
	require.NoError(t, err)

	require.NotNil(t, report.Analysis)
	assert.Equal(t, "Employment Agreement", report.Analysis.ContractType)

	require.NotNil(t, report.Risk)
	assert.Equal(t, 40, report.Risk.OverallScore)

	require.NotNil(t, report.Compliance)
	assert.True(t, report.Compliance.IsCompliant)

	// One call per variant
	assert.Equal(t, 3, completer.CallCount())
}

func TestFullReportDegradesPerVariant(t *testing.T) {
	// Garbage responses everywhere: each variant must still fill its slot
	// with its own fallback.
	runner := newTestRunner(t, completerReturning("garbage"))

	report, err := runner.FullReport(context.Background(), employmentContract, core.LanguageEnglish)
	require.NoError(t, err)

	require.NotNil(t, report.Analysis)
	assert.Equal(t, "Employment Agreement", report.Analysis.ContractType)

	require.NotNil(t, report.Risk)
	assert.Equal(t, 50, report.Risk.OverallScore)
	assert.NotEmpty(t, report.Risk.DetailedRisks)

	require.NotNil(t, report.Compliance)
	assert.False(t, report.Compliance.IsCompliant)
}

func TestFullReportEmptyText(t *testing.T) {
	runner := newTestRunner(t, mock.NewMockCompleter())

	_, err := runner.FullReport(context.Background(), "  ", core.LanguageEnglish)
	assert.ErrorIs(t, err, core.ErrEmptyText)
}

func TestFullReportSequentialUse(t *testing.T) {
	runner := newTestRunner(t, routingCompleter())

	for i := 0; i < 3; i++ {
		report, err := runner.FullReport(context.Background(), employmentContract, core.LanguageEnglish)
		require.NoError(t, err)
		require.NotNil(t, report.Analysis)
		require.NotNil(t, report.Risk)
		require.NotNil(t, report.Compliance)
	}
}
