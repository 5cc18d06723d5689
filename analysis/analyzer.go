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
	"github.com/caralegal/cara/extract"
	"github.com/caralegal/cara/jsonrepair"
)

// Analyzer extracts structured contract information using an LLM, falling
// back to deterministic regex extraction when the model is unavailable or
// returns nothing usable. Analyze never fails because of the model; the
// result just degrades.
type Analyzer struct {
	completer ai.Completer
	logger    *slog.Logger
}

// NewAnalyzer creates a contract analyzer backed by the given completer.
func NewAnalyzer(completer ai.Completer) (*Analyzer, error) {
	if completer == nil {
		return nil, ErrCompleterRequired
	}
	return &Analyzer{
		completer: completer,
		logger:    slog.Default().With("component", "analyzer"),
	}, nil
}

// Analyze extracts contract type, parties, dates, amounts, and clauses from
// raw contract text. On any model failure the deterministic extraction
// result is returned instead; an error is returned only for invalid input.
func (a *Analyzer) Analyze(ctx context.Context, text string, lang core.Language) (*core.ContractAnalysis, error) {
	if strings.TrimSpace(text) == "" {
		return nil, core.ErrEmptyText
	}

	fallback := extract.Basic(text, lang)

	completion, err := a.completer.Complete(ctx, ai.CompletionRequest{
		System:      analyzeSystemPrompt,
		User:        analyzeUserPrompt(text, lang),
		Temperature: analyzeTemperature,
		MaxTokens:   analyzeMaxTokens,
	})
	if err != nil {
		a.logger.Error("contract analysis call failed, using fallback extraction", "err", err)
		return fallback, nil
	}

	if completion.Truncated {
		a.logger.Warn("contract analysis response truncated, attempting repair")
	}

	result := jsonrepair.Parse(completion.Content, analysisToMap(fallback))
	analysis := analysisFromMap(result)

	// A parse that succeeds but carries no clauses still gets the
	// rule-based clause catalog.
	if len(analysis.Clauses) == 0 {
		analysis.Clauses = extract.Clauses(text)
	}

	return analysis, nil
}

// DetailClause produces an in-depth explanation of a single clause within
// the context of the full contract. Like Analyze, model failures degrade to
// placeholder text rather than an error.
func (a *Analyzer) DetailClause(ctx context.Context, clause core.Clause, fullText string, lang core.Language) (*core.ClauseDetail, error) {
	if clause.Type == "" {
		clause.Type = "Unknown"
	}
	if clause.RiskLevel == "" {
		clause.RiskLevel = core.RiskUnknown
	}

	completion, err := a.completer.Complete(ctx, ai.CompletionRequest{
		System:      detailSystemPrompt,
		User:        detailUserPrompt(clause, fullText, lang),
		Temperature: detailTemperature,
		MaxTokens:   detailMaxTokens,
	})
	if err != nil {
		a.logger.Error("detailed clause analysis call failed", "clause", clause.Type, "err", err)
		return &core.ClauseDetail{
			Explanation:     "Unable to generate detailed analysis. Error: " + err.Error(),
			Issues:          "Analysis could not be completed at this time.",
			Recommendations: "Please try again or consult a legal professional.",
			ApplicableLaws:  "Not available due to analysis error.",
		}, nil
	}

	parseFallback := map[string]any{
		"explanation":     "Unable to generate detailed explanation at this time.",
		"issues":          "Analysis could not be completed. Please try again.",
		"recommendations": "Consult a legal professional for detailed review.",
		"applicable_laws": "Not available due to analysis error.",
	}
	result := jsonrepair.Parse(completion.Content, parseFallback)

	return &core.ClauseDetail{
		Explanation:     getString(result, "explanation", "Unable to generate detailed explanation"),
		Issues:          getString(result, "issues", "No specific issues identified"),
		Recommendations: getString(result, "recommendations", "No recommendations available"),
		ApplicableLaws:  getString(result, "applicable_laws", "No specific laws referenced"),
	}, nil
}
