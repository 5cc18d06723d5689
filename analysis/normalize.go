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

import "github.com/caralegal/cara/core"

// Helpers for lifting repaired model output (map[string]any from the JSON
// repair layer) into typed domain structs. Model output is adversarial:
// keys may be missing, hold the wrong type, or hold partial structures.
// Every helper degrades to a default instead of failing.

func getString(m map[string]any, key, def string) string {
	if v, ok := m[key].(string); ok && v != "" {
		return v
	}
	return def
}

func getInt(m map[string]any, key string, def int) int {
	switch v := m[key].(type) {
	case float64:
		return int(v)
	case int:
		return v
	}
	return def
}

func getBool(m map[string]any, key string, def bool) bool {
	if v, ok := m[key].(bool); ok {
		return v
	}
	return def
}

func getStringSlice(m map[string]any, key string) []string {
	raw, ok := m[key].([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(raw))
	for _, item := range raw {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

func clausesFromAny(raw any) []core.Clause {
	items, ok := raw.([]any)
	if !ok {
		return nil
	}
	out := make([]core.Clause, 0, len(items))
	for _, item := range items {
		m, ok := item.(map[string]any)
		if !ok {
			continue
		}
		out = append(out, core.Clause{
			Type:        getString(m, "type", "Unknown"),
			RiskLevel:   core.NormalizeRiskLevel(getString(m, "risk_level", "")),
			Explanation: getString(m, "explanation", ""),
		})
	}
	return out
}

func violationsFromAny(raw any) []core.Violation {
	items, ok := raw.([]any)
	if !ok {
		return nil
	}
	out := make([]core.Violation, 0, len(items))
	for _, item := range items {
		m, ok := item.(map[string]any)
		if !ok {
			continue
		}
		out = append(out, core.Violation{
			Law:   getString(m, "law", ""),
			Issue: getString(m, "issue", ""),
		})
	}
	return out
}

func detailedRisksFromAny(raw any) []core.DetailedRisk {
	items, ok := raw.([]any)
	if !ok {
		return nil
	}
	out := make([]core.DetailedRisk, 0, len(items))
	for _, item := range items {
		m, ok := item.(map[string]any)
		if !ok {
			continue
		}
		out = append(out, core.DetailedRisk{
			Category:    getString(m, "category", ""),
			Description: getString(m, "description", ""),
		})
	}
	return out
}

func boolMapFromAny(raw any) map[string]bool {
	m, ok := raw.(map[string]any)
	if !ok {
		return nil
	}
	out := make(map[string]bool, len(m))
	for k, v := range m {
		if b, ok := v.(bool); ok {
			out[k] = b
		}
	}
	return out
}

// analysisToMap converts a ContractAnalysis into the map shape the JSON
// repair layer expects as a fallback value.
func analysisToMap(a *core.ContractAnalysis) map[string]any {
	clauses := make([]any, 0, len(a.Clauses))
	for _, c := range a.Clauses {
		clauses = append(clauses, map[string]any{
			"type":        c.Type,
			"risk_level":  string(c.RiskLevel),
			"explanation": c.Explanation,
		})
	}
	return map[string]any{
		"contract_type": a.ContractType,
		"parties":       toAnySlice(a.Parties),
		"dates":         toAnySlice(a.Dates),
		"amounts":       toAnySlice(a.Amounts),
		"clauses":       clauses,
	}
}

// analysisFromMap lifts repaired model output into a ContractAnalysis.
func analysisFromMap(m map[string]any) *core.ContractAnalysis {
	return &core.ContractAnalysis{
		ContractType: getString(m, "contract_type", "Unknown"),
		Parties:      getStringSlice(m, "parties"),
		Dates:        getStringSlice(m, "dates"),
		Amounts:      getStringSlice(m, "amounts"),
		Clauses:      clausesFromAny(m["clauses"]),
	}
}

func toAnySlice(items []string) []any {
	out := make([]any, len(items))
	for i, item := range items {
		out[i] = item
	}
	return out
}
