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
	"fmt"
	"log/slog"
	"strings"

	"github.com/caralegal/cara/ai"
	"github.com/caralegal/cara/core"
	"github.com/caralegal/cara/jsonrepair"
	"github.com/caralegal/cara/storage"
)

// ComplianceChecker checks contracts against Indian law using an LLM,
// optionally enriched with a local reference dataset of acts. The acts
// repository may be nil; checking then relies on model knowledge alone.
type ComplianceChecker struct {
	completer ai.Completer
	acts      storage.ActRepository
	logger    *slog.Logger
}

// NewComplianceChecker creates a compliance checker backed by the given
// completer. acts is optional and may be nil.
func NewComplianceChecker(completer ai.Completer, acts storage.ActRepository) (*ComplianceChecker, error) {
	if completer == nil {
		return nil, ErrCompleterRequired
	}
	return &ComplianceChecker{
		completer: completer,
		acts:      acts,
		logger:    slog.Default().With("component", "compliance-checker"),
	}, nil
}

// Check reports applicable laws, violations, and recommendations for the
// contract. On model failure a conservative fallback result is returned;
// an error is returned only for invalid input.
func (c *ComplianceChecker) Check(ctx context.Context, text string, lang core.Language) (*core.ComplianceResult, error) {
	if strings.TrimSpace(text) == "" {
		return nil, core.ErrEmptyText
	}

	completion, err := c.completer.Complete(ctx, ai.CompletionRequest{
		System:      complianceSystemPrompt,
		User:        complianceUserPrompt(text, lang),
		Temperature: complianceTemperature,
		MaxTokens:   complianceMaxTokens,
	})
	if err != nil {
		c.logger.Error("compliance check call failed, using fallback", "err", err)
		return failedComplianceCheck(), nil
	}

	if completion.Truncated {
		c.logger.Warn("compliance response truncated, attempting repair")
	}

	parseFallback := map[string]any{
		"is_compliant":    false,
		"applicable_laws": []any{"Indian Contract Act 1872"},
		"violations": []any{
			map[string]any{
				"law":   "Analysis Incomplete",
				"issue": "Response could not be parsed. Please try again.",
			},
		},
		"recommendations": []any{"Re-run analysis or consult a legal professional"},
	}
	result := jsonrepair.Parse(completion.Content, parseFallback)

	checked := &core.ComplianceResult{
		IsCompliant:     getBool(result, "is_compliant", true),
		ApplicableLaws:  getStringSlice(result, "applicable_laws"),
		Violations:      violationsFromAny(result["violations"]),
		Recommendations: getStringSlice(result, "recommendations"),
	}

	if len(checked.ApplicableLaws) == 0 {
		checked.ApplicableLaws = c.lawsFromDataset(ctx)
	}

	return checked, nil
}

// lawsFromDataset pulls applicable law names from the local reference
// dataset when the model named none. Returns nil when no dataset is wired
// or the lookup fails.
func (c *ComplianceChecker) lawsFromDataset(ctx context.Context) []string {
	if c.acts == nil {
		return nil
	}

	acts, err := c.acts.SearchActs(ctx, "contract", 3)
	if err != nil {
		c.logger.Warn("reference dataset lookup failed", "err", err)
		return nil
	}

	laws := make([]string, 0, len(acts))
	for _, act := range acts {
		if act.Year > 0 {
			laws = append(laws, fmt.Sprintf("%s %d", act.Title, act.Year))
		} else {
			laws = append(laws, act.Title)
		}
	}
	return laws
}

// failedComplianceCheck is the conservative result reported when the model
// call itself fails.
func failedComplianceCheck() *core.ComplianceResult {
	return &core.ComplianceResult{
		IsCompliant:    false,
		ApplicableLaws: []string{"Indian Contract Act 1872", "Information Technology Act 2000"},
		Violations: []core.Violation{
			{
				Law:   "General Review Required",
				Issue: "Automated compliance check encountered an error. Manual legal review is recommended.",
			},
		},
		Recommendations: []string{
			"Have the contract reviewed by a qualified legal professional",
			"Verify all clauses comply with Indian Contract Act 1872",
			"Ensure compliance with applicable labor and industry-specific regulations",
		},
	}
}
