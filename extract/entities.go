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


package extract

import (
	"regexp"
	"strings"

	"github.com/caralegal/cara/core"
)

const (
	// typeDetectLimit is how much of the document head is inspected for
	// contract type keywords.
	typeDetectLimit = 500

	// dateContextWindow is how far back from a date to look for context.
	dateContextWindow = 60

	maxAmounts = 5
	maxDates   = 5
	maxParties = 3
)

// partiesPlaceholder is emitted when no party could be identified.
const partiesPlaceholder = "Unable to identify parties"

var (
	// INR figure with optional rate qualifier, first with up to 30 chars of
	// surrounding context, then bare for the second pass.
	amountContextRe = regexp.MustCompile(`(?:[\w\s]{0,30})?INR\s*[\d,]+(?:\.\d+)?(?:\s*(?:per|/-|/)\s*\w+)?(?:[\w\s]{0,30})?`)
	amountRe        = regexp.MustCompile(`INR\s*[\d,]+(?:\.\d+)?(?:\s*(?:per|/-|/)\s*\w+)?`)

	dateRe = regexp.MustCompile(`(?:January|February|March|April|May|June|July|August|September|October|November|December)\s+\d{1,2},\s+\d{4}`)

	// Capitalized word runs ending in a corporate suffix.
	companyRe = regexp.MustCompile(`(?:[A-Z][A-Za-z&]+\s+)+(?:Private Limited|Pvt\.?\s*Ltd\.?|Limited|Ltd\.?)`)

	// Honorific followed by two or more capitalized words.
	personRe = regexp.MustCompile(`(?:Mr\.?|Ms\.?|Mrs\.?|Dr\.?)\s+([A-Z][a-z]+(?:\s+[A-Z][a-z]+)+)`)
)

// Basic reconstructs a minimal ContractAnalysis directly from raw text via
// pattern matching. It is the deterministic substitute used when the LLM
// path is unavailable or returns nothing usable. Pure function of its inputs.
func Basic(text string, lang core.Language) *core.ContractAnalysis {
	loc := localeFor(lang)
	kind := detectKind(text)

	amounts := extractAmounts(text)
	dates := extractDates(text)
	parties := extractParties(text, kind)

	if len(dates) == 0 {
		dates = []string{loc.noDates}
	}
	if len(amounts) == 0 {
		amounts = []string{loc.noAmounts}
	}

	clauses := Clauses(text)
	if len(clauses) == 0 {
		clauses = []core.Clause{{
			Type:        loc.genericClauseType,
			RiskLevel:   core.RiskMedium,
			Explanation: loc.genericClauseText,
		}}
	}

	return &core.ContractAnalysis{
		ContractType: loc.contractTypes[kind],
		Parties:      parties,
		Dates:        dates,
		Amounts:      amounts,
		Clauses:      clauses,
	}
}

// detectKind classifies the contract from keywords in the document head.
// First match in priority order wins.
func detectKind(text string) contractKind {
	head := text
	if len(head) > typeDetectLimit {
		head = head[:typeDetectLimit]
	}
	head = strings.ToUpper(head)

	switch {
	case strings.Contains(head, "EMPLOYMENT"):
		return kindEmployment
	case strings.Contains(head, "SERVICE"):
		return kindService
	case strings.Contains(head, "NON-DISCLOSURE"), strings.Contains(head, "NDA"):
		return kindNDA
	case strings.Contains(head, "SALE"), strings.Contains(head, "PURCHASE"):
		return kindSale
	default:
		return kindUnknown
	}
}

// extractAmounts finds INR figures, preferring matches that carry context.
func extractAmounts(text string) []string {
	var amounts []string
	for _, raw := range amountContextRe.FindAllString(text, -1) {
		if m := amountRe.FindString(strings.TrimSpace(raw)); m != "" {
			amounts = append(amounts, strings.TrimSpace(m))
		}
	}
	amounts = dedupe(amounts, maxAmounts)

	if len(amounts) == 0 {
		// Simpler fallback without the context window.
		amounts = dedupe(amountRe.FindAllString(text, -1), maxAmounts)
	}

	return amounts
}

// extractDates finds "<month> <day>, <year>" dates and annotates each with
// the trailing words that precede its first occurrence.
func extractDates(text string) []string {
	raw := dedupe(dateRe.FindAllString(text, -1), maxDates)

	var dates []string
	for _, d := range raw {
		idx := strings.Index(text, d)
		if idx > 0 {
			start := idx - dateContextWindow
			if start < 0 {
				start = 0
			}
			before := strings.TrimSpace(text[start:idx])

			// Keep the last few words as context.
			words := strings.Fields(before)
			if len(words) > 6 {
				words = words[len(words)-6:]
			}
			context := strings.Trim(strings.Join(words, " "), " .,;:")

			if context != "" && len(context) > 3 {
				dates = append(dates, d+" — "+context)
				continue
			}
		}
		dates = append(dates, d)
	}

	return dates
}

// extractParties finds company and person names and assigns each a role
// based on the detected contract kind.
func extractParties(text string, kind contractKind) []string {
	var companies []string
	for _, c := range companyRe.FindAllString(text, -1) {
		companies = append(companies, strings.TrimSpace(c))
	}
	companies = dedupe(companies, maxParties)

	var persons []string
	for _, m := range personRe.FindAllStringSubmatch(text, -1) {
		persons = append(persons, strings.TrimSpace(m[1]))
	}
	persons = dedupe(persons, maxParties)

	var parties []string
	switch kind {
	case kindEmployment:
		for _, c := range companies {
			parties = append(parties, "Employer: "+c)
		}
		for _, p := range persons {
			parties = append(parties, "Employee: "+p)
		}
	case kindService:
		for i, c := range companies {
			if i == 0 {
				parties = append(parties, "Client: "+c)
			} else {
				parties = append(parties, "Service Provider: "+c)
			}
		}
		for _, p := range persons {
			parties = append(parties, "Signatory: "+p)
		}
	case kindNDA:
		for i, c := range companies {
			if i == 0 {
				parties = append(parties, "Disclosing Party: "+c)
			} else {
				parties = append(parties, "Receiving Party: "+c)
			}
		}
		for _, p := range persons {
			parties = append(parties, "Signatory: "+p)
		}
	default:
		for _, c := range companies {
			parties = append(parties, "Party: "+c)
		}
		for _, p := range persons {
			parties = append(parties, "Individual: "+p)
		}
	}

	if len(parties) == 0 {
		parties = []string{partiesPlaceholder}
	}

	return parties
}

// dedupe removes duplicates preserving first-occurrence order, capped at limit.
func dedupe(items []string, limit int) []string {
	seen := make(map[string]bool, len(items))
	var out []string
	for _, item := range items {
		if seen[item] {
			continue
		}
		seen[item] = true
		out = append(out, item)
		if len(out) >= limit {
			break
		}
	}
	return out
}
