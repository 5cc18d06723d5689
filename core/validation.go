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


package core

import (
	"fmt"
	"strings"
)

// ValidateAct validates an Act according to domain rules.
//
// Validation rules:
//   - Title must not be empty
//
// NOT validated:
//   - Text (acts may carry title-only metadata)
//   - ID (0 means "derive from title on insert")
func ValidateAct(act *Act) error {
	if act == nil {
		return fmt.Errorf("%w: act is nil", ErrInvalidAct)
	}

	if act.Title == "" {
		return fmt.Errorf("%w: %w", ErrInvalidAct, ErrEmptyActTitle)
	}

	return nil
}

// ValidateLanguage validates that a Language has a valid value.
func ValidateLanguage(lang Language) error {
	if lang != LanguageEnglish && lang != LanguageHindi {
		return fmt.Errorf("%w: value %d", ErrInvalidLanguage, lang)
	}
	return nil
}

// NormalizeRiskLevel maps a free-form risk string to a RiskLevel.
// Matching is case-insensitive; anything unrecognized becomes RiskUnknown.
func NormalizeRiskLevel(s string) RiskLevel {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "high":
		return RiskHigh
	case "medium":
		return RiskMedium
	case "low":
		return RiskLow
	default:
		return RiskUnknown
	}
}

// ClampScore bounds an overall risk score to the 0-100 range.
func ClampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
