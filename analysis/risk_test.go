package analysis

import (
	"context"
	"errors"
	"testing"

	"github.com/caralegal/cara/ai"
	"github.com/caralegal/cara/ai/mock"
	"github.com/caralegal/cara/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRiskScorer(t *testing.T) {
	_, err := NewRiskScorer(nil)
	assert.ErrorIs(t, err, ErrCompleterRequired)

	scorer, err := NewRiskScorer(mock.NewMockCompleter())
	require.NoError(t, err)
	assert.NotNil(t, scorer)
}

func TestAssessWellFormedResponse(t *testing.T) {
	response := `{
		"overall_score": 65,
		"legal_risk": "Medium",
		"financial_risk": "High",
		"compliance_risk": "Low",
		"detected_risks": {
			"penalty_clause": true,
			"indemnity_present": true,
			"unilateral_termination": false,
			"auto_renewal": false,
			"liability_cap_missing": true,
			"non_compete_present": true,
			"ip_transfer_present": false
		},
		"detailed_risks": [
			{"category": "Financial", "description": "Unlimited indemnity exposure."}
		]
	}`
	scorer, err := NewRiskScorer(completerReturning(response))
	require.NoError(t, err)

	result, err := scorer.Assess(context.Background(), employmentContract, core.LanguageEnglish)
	require.NoError(t, err)

	assert.Equal(t, 65, result.OverallScore)
	assert.Equal(t, core.RiskMedium, result.LegalRisk)
	assert.Equal(t, core.RiskHigh, result.FinancialRisk)
	assert.Equal(t, core.RiskLow, result.ComplianceRisk)
	assert.True(t, result.DetectedRisks["penalty_clause"])
	assert.False(t, result.DetectedRisks["auto_renewal"])
	require.Len(t, result.DetailedRisks, 1)
	assert.Equal(t, "Financial", result.DetailedRisks[0].Category)
}

func TestAssessUnparseableResponse(t *testing.T) {
	scorer, err := NewRiskScorer(completerReturning("complete garbage"))
	require.NoError(t, err)

	result, err := scorer.Assess(context.Background(), employmentContract, core.LanguageEnglish)
	require.NoError(t, err)

	// Neutral midpoint fallback
	assert.Equal(t, 50, result.OverallScore)
	assert.Equal(t, core.RiskMedium, result.LegalRisk)
	assert.Equal(t, core.RiskMedium, result.FinancialRisk)
	assert.Equal(t, core.RiskMedium, result.ComplianceRisk)
	assert.NotEmpty(t, result.DetailedRisks)
	assert.Equal(t, "Analysis Incomplete", result.DetailedRisks[0].Category)

	// All indicators reported absent, never omitted
	require.Len(t, result.DetectedRisks, len(riskFlags))
	for _, flag := range riskFlags {
		detected, ok := result.DetectedRisks[flag]
		assert.True(t, ok, flag)
		assert.False(t, detected, flag)
	}
}

func TestAssessModelError(t *testing.T) {
	m := mock.NewMockCompleter()
	m.CompleteFunc = func(ctx context.Context, req ai.CompletionRequest) (*ai.Completion, error) {
		return nil, errors.New("connection refused")
	}
	scorer, err := NewRiskScorer(m)
	require.NoError(t, err)

	result, err := scorer.Assess(context.Background(), employmentContract, core.LanguageEnglish)
	require.NoError(t, err)

	assert.Equal(t, 50, result.OverallScore)
	assert.Equal(t, core.RiskMedium, result.LegalRisk)
	assert.Equal(t, core.RiskMedium, result.FinancialRisk)
	assert.Equal(t, core.RiskMedium, result.ComplianceRisk)
	require.NotEmpty(t, result.DetailedRisks)
	assert.Equal(t, "Fallback", result.DetailedRisks[0].Category)
	assert.Len(t, result.DetectedRisks, len(riskFlags))
}

func TestAssessNormalization(t *testing.T) {
	t.Run("score clamped", func(t *testing.T) {
		scorer, err := NewRiskScorer(completerReturning(`{"overall_score": 250, "legal_risk": "High", "financial_risk": "Low", "compliance_risk": "Low", "detected_risks": {}, "detailed_risks": []}`))
		require.NoError(t, err)

		result, err := scorer.Assess(context.Background(), employmentContract, core.LanguageEnglish)
		require.NoError(t, err)
		assert.Equal(t, 100, result.OverallScore)
	})

	t.Run("unrecognized level becomes medium", func(t *testing.T) {
		scorer, err := NewRiskScorer(completerReturning(`{"overall_score": 40, "legal_risk": "Severe", "financial_risk": "low", "compliance_risk": "HIGH", "detected_risks": {}, "detailed_risks": []}`))
		require.NoError(t, err)

		result, err := scorer.Assess(context.Background(), employmentContract, core.LanguageEnglish)
		require.NoError(t, err)
		assert.Equal(t, core.RiskMedium, result.LegalRisk)
		assert.Equal(t, core.RiskLow, result.FinancialRisk)
		assert.Equal(t, core.RiskHigh, result.ComplianceRisk)
	})
}

func TestAssessEmptyText(t *testing.T) {
	scorer, err := NewRiskScorer(mock.NewMockCompleter())
	require.NoError(t, err)

	_, err = scorer.Assess(context.Background(), "", core.LanguageEnglish)
	assert.ErrorIs(t, err, core.ErrEmptyText)
}

func TestAssessPromptBudget(t *testing.T) {
	m := completerReturning("{}")
	scorer, err := NewRiskScorer(m)
	require.NoError(t, err)

	_, err = scorer.Assess(context.Background(), employmentContract, core.LanguageEnglish)
	require.NoError(t, err)

	req := m.LastRequest()
	assert.Equal(t, riskSystemPrompt, req.System)
	assert.Contains(t, req.User, "TechVision")
	assert.Equal(t, riskMaxTokens, req.MaxTokens)
}
