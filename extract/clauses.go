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
	"strings"

	"github.com/caralegal/cara/core"
)

// clauseScanLimit bounds clause scanning cost on arbitrarily long documents.
const clauseScanLimit = 10000

// clauseDef pairs a clause type with its trigger phrases and fixed rating.
type clauseDef struct {
	Type        string
	Patterns    []string
	RiskLevel   core.RiskLevel
	Explanation string
}

// clauseTable is the ordered catalog of recognized clause types.
// Output preserves this order, not the order phrases appear in the text.
var clauseTable = []clauseDef{
	{
		Type:        "Non-Compete",
		Patterns:    []string{"non-compete", "non compete", "restraint of trade", "competing business"},
		RiskLevel:   core.RiskHigh,
		Explanation: "Non-compete clause restricts future employment opportunities. May be unenforceable under Section 27 of the Indian Contract Act 1872.",
	},
	{
		Type:        "Confidentiality",
		Patterns:    []string{"confidential", "proprietary information", "trade secret"},
		RiskLevel:   core.RiskLow,
		Explanation: "Confidentiality obligations for protecting sensitive information. Standard in most contracts but review scope and duration.",
	},
	{
		Type:        "Termination",
		Patterns:    []string{"termination", "terminate this agreement", "notice period"},
		RiskLevel:   core.RiskMedium,
		Explanation: "Termination provisions define how either party can end the contract. Review notice period requirements and consequences of termination.",
	},
	{
		Type:        "Indemnification",
		Patterns:    []string{"indemnify", "indemnification", "hold harmless"},
		RiskLevel:   core.RiskHigh,
		Explanation: "Indemnification clause may expose one party to unlimited financial liability. Ensure liability caps and mutual indemnification exist.",
	},
	{
		Type:        "Intellectual Property",
		Patterns:    []string{"intellectual property", "ip rights", "patents", "copyrights"},
		RiskLevel:   core.RiskMedium,
		Explanation: "IP assignment clause transfers ownership of created work. Verify scope does not extend to personal or pre-existing IP.",
	},
	{
		Type:        "Arbitration",
		Patterns:    []string{"arbitration", "dispute resolution", "arbitrator"},
		RiskLevel:   core.RiskMedium,
		Explanation: "Dispute resolution through arbitration. Review jurisdiction, arbitrator selection process, and cost-sharing provisions.",
	},
	{
		Type:        "Force Majeure",
		Patterns:    []string{"force majeure", "act of god", "unforeseen circumstances"},
		RiskLevel:   core.RiskLow,
		Explanation: "Force majeure clause covers unforeseen events. Standard provision but verify what events are covered and notice requirements.",
	},
	{
		Type:        "Payment Terms",
		Patterns:    []string{"payment", "salary", "compensation", "remuneration", "wages"},
		RiskLevel:   core.RiskMedium,
		Explanation: "Payment and compensation terms. Verify payment frequency, deductions, and compliance with Payment of Wages Act.",
	},
	{
		Type:        "Liability Limitation",
		Patterns:    []string{"limitation of liability", "liability cap", "maximum liability", "aggregate liability"},
		RiskLevel:   core.RiskHigh,
		Explanation: "Liability limitation caps financial exposure. Verify caps are reasonable and do not unfairly disadvantage one party.",
	},
	{
		Type:        "Renewal / Lock-in",
		Patterns:    []string{"auto-renewal", "lock-in", "lock in", "minimum term", "auto renewal"},
		RiskLevel:   core.RiskHigh,
		Explanation: "Auto-renewal or lock-in period restricts ability to exit the contract. Review duration and opt-out provisions carefully.",
	},
}

// Clauses scans text for known legal clause patterns and classifies each
// into type, risk level, and explanation. Matching is case-insensitive and
// each clause type is emitted at most once, even when several of its
// trigger phrases match. Only the first 10,000 characters are considered.
func Clauses(text string) []core.Clause {
	if len(text) > clauseScanLimit {
		text = text[:clauseScanLimit]
	}
	lower := strings.ToLower(text)

	var clauses []core.Clause
	for _, def := range clauseTable {
		for _, pattern := range def.Patterns {
			if strings.Contains(lower, pattern) {
				clauses = append(clauses, core.Clause{
					Type:        def.Type,
					RiskLevel:   def.RiskLevel,
					Explanation: def.Explanation,
				})
				break // one clause per type
			}
		}
	}

	return clauses
}
