// Copyright 2025 Caralegal Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package analysis

import (
	"context"
	"log/slog"
	"strings"

	"github.com/caralegal/cara/ai"
	"github.com/caralegal/cara/core"
	"github.com/caralegal/cara/jsonrepair"
)

// riskFlags are the risk indicators the model is asked to detect. A failed
// assessment reports all of them as absent rather than omitting the map.
var riskFlags = []string{
	"penalty_clause",
	"indemnity_present",
	"unilateral_termination",
	"auto_renewal",
	"liability_cap_missing",
	"non_compete_present",
	"ip_transfer_present",
}

// RiskScorer scores contract risk using an LLM. A failed call degrades to a
// neutral midpoint assessment instead of an error.
type RiskScorer struct {
	completer ai.Completer
	logger    *slog.Logger
}

// NewRiskScorer creates a risk scorer backed by the given completer.
func NewRiskScorer(completer ai.Completer) (*RiskScorer, error) {
	if completer == nil {
		return nil, ErrCompleterRequired
	}
	return &RiskScorer{
		completer: completer,
		logger:    slog.Default().With("component", "risk-scorer"),
	}, nil
}

// Assess scores the contract 0-100 with per-dimension risk levels and a
// map of detected risk indicators. On model failure the neutral fallback
// assessment is returned; an error is returned only for invalid input.
func (s *RiskScorer) Assess(ctx context.Context, text string, lang core.Language) (*core.RiskAssessment, error) {
	if strings.TrimSpace(text) == "" {
		return nil, core.ErrEmptyText
	}

	completion, err := s.completer.Complete(ctx, ai.CompletionRequest{
		System:      riskSystemPrompt,
		User:        riskUserPrompt(text, lang),
		Temperature: riskTemperature,
		MaxTokens:   riskMaxTokens,
	})
	if err != nil {
		s.logger.Error("risk assessment call failed, using neutral fallback", "err", err)
		return failedAssessment(), nil
	}

	if completion.Truncated {
		s.logger.Warn("risk assessment response truncated, attempting repair")
	}

	parseFallback := map[string]any{
		"overall_score":   float64(50),
		"legal_risk":      "Medium",
		"financial_risk":  "Medium",
		"compliance_risk": "Medium",
		"detailed_risks": []any{
			map[string]any{
				"category":    "Analysis Incomplete",
				"description": "Response could not be parsed. Please try again.",
			},
		},
	}
	result := jsonrepair.Parse(completion.Content, parseFallback)

	detected := boolMapFromAny(result["detected_risks"])
	if detected == nil {
		detected = absentRiskFlags()
	}

	return &core.RiskAssessment{
		OverallScore:   core.ClampScore(getInt(result, "overall_score", 50)),
		LegalRisk:      riskLevelOrMedium(getString(result, "legal_risk", "Medium")),
		FinancialRisk:  riskLevelOrMedium(getString(result, "financial_risk", "Medium")),
		ComplianceRisk: riskLevelOrMedium(getString(result, "compliance_risk", "Medium")),
		DetectedRisks:  detected,
		DetailedRisks:  detailedRisksFromAny(result["detailed_risks"]),
	}, nil
}

// failedAssessment is the neutral midpoint result reported when the model
// call itself fails.
func failedAssessment() *core.RiskAssessment {
	return &core.RiskAssessment{
		OverallScore:   50,
		LegalRisk:      core.RiskMedium,
		FinancialRisk:  core.RiskMedium,
		ComplianceRisk: core.RiskMedium,
		DetectedRisks:  absentRiskFlags(),
		DetailedRisks: []core.DetailedRisk{
			{Category: "Fallback", Description: "Risk analysis failed and default values were used."},
		},
	}
}

func absentRiskFlags() map[string]bool {
	flags := make(map[string]bool, len(riskFlags))
	for _, f := range riskFlags {
		flags[f] = false
	}
	return flags
}

// riskLevelOrMedium normalizes a model-reported level. The prompt forbids
// "Unknown", so anything unrecognized is treated as Medium.
func riskLevelOrMedium(s string) core.RiskLevel {
	level := core.NormalizeRiskLevel(s)
	if level == core.RiskUnknown {
		return core.RiskMedium
	}
	return level
}
