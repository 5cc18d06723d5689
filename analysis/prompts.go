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
	"fmt"

	"github.com/caralegal/cara/core"
)

// Per-call prompt budgets. Each orchestrator truncates the document to its
// own limit before sending, and bounds the response independently.
const (
	analyzeTextLimit    = 5000
	riskTextLimit       = 4000
	complianceTextLimit = 3000
	detailTextLimit     = 2000

	analyzeMaxTokens    = 3000
	riskMaxTokens       = 1500
	complianceMaxTokens = 1500
	detailMaxTokens     = 1500

	analyzeTemperature    = 0.1
	riskTemperature       = 0.1
	complianceTemperature = 0.1
	detailTemperature     = 0.2
)

const analyzeSystemPrompt = `You are a JSON API for contract analysis.

ABSOLUTE RULES:
1. Output ONLY raw JSON. No markdown. No ` + "```json" + ` blocks. No text before or after.
2. Each clause "explanation" must be under 25 words. One sentence only.
3. No case law. No court citations. No legal precedents.
4. Exactly 5-9 clauses with mix of High/Medium/Low risk levels.
5. Total response must be under 1500 tokens.
6. PARTIES: Every party string MUST start with their role (Employer/Employee/Client/Service Provider/Landlord/Tenant etc) followed by colon then name. Include ALL parties.
7. DATES: Every date string MUST have context after " — " (e.g. "Jan 1, 2024 — Contract Start Date"). Never bare dates.
8. AMOUNTS: Every amount MUST include frequency (per month/per year/one-time) AND purpose (salary/rent/penalty/deposit etc). Break down ALL monetary values separately — salary, overtime, bonuses, deductions, penalties, deposits.`

const analyzeExampleJSON = `
{
  "contract_type": "Service Agreement",
  "parties": [
    "Client (Pvt Ltd): Orion Retail Private Limited",
    "Service Provider (LLP): BlueWave Analytics LLP",
    "Signatory: Mr. Vikram Mehta, Director of Orion Retail"
  ],
  "dates": [
    "April 10, 2024 — Agreement Execution Date",
    "May 1, 2024 — Service Commencement Date",
    "April 30, 2025 — Initial Term End Date (1 year)",
    "March 1, 2024 — Proposal Submission Date"
  ],
  "amounts": [
    "INR 2,50,000/month — Service Fee (payable by 5th of each month)",
    "INR 15,000/month — Maintenance Charges",
    "INR 5,00,000 — Security Deposit (refundable on termination)",
    "18% per annum — Late Payment Interest",
    "INR 50,000 — Early Termination Penalty"
  ],
  "clauses": [
    {"type": "Non-Compete", "risk_level": "High", "explanation": "Restricts working with competitors for 1 year post-termination."},
    {"type": "Confidentiality", "risk_level": "Low", "explanation": "Standard NDA covering proprietary data during and after contract."},
    {"type": "Termination", "risk_level": "Medium", "explanation": "Either party can terminate with 30 days written notice."},
    {"type": "Indemnification", "risk_level": "High", "explanation": "Provider bears unlimited liability for third-party IP claims."},
    {"type": "Payment Terms", "risk_level": "Medium", "explanation": "Monthly invoicing with 15-day payment window and late fees."}
  ]
}`

const riskSystemPrompt = `You are a JSON API for contract risk assessment.

ABSOLUTE RULES:
1. Output ONLY raw JSON. No markdown. No ` + "```json" + ` blocks. No text before or after.
2. Every "description" must be under 25 words. One sentence only.
3. No case law names. No court citations. No legal precedents.
4. Maximum 5 entries in detailed_risks.
5. Risk levels: only "High", "Medium", or "Low". Never "Unknown".
6. Total response must be under 600 tokens.`

const riskExampleJSON = `
{
  "overall_score": 65,
  "legal_risk": "Medium",
  "financial_risk": "High",
  "compliance_risk": "Low",
  "detected_risks": {
    "penalty_clause": true,
    "indemnity_present": true,
    "unilateral_termination": true,
    "auto_renewal": false,
    "liability_cap_missing": true,
    "non_compete_present": true,
    "ip_transfer_present": true
  },
  "detailed_risks": [
    {"category": "...", "description": "..."}
  ]
}`

const complianceSystemPrompt = `You are a JSON API for Indian contract compliance checking.

ABSOLUTE RULES:
1. Output ONLY raw JSON. No markdown. No ` + "```json" + ` blocks. No text before or after.
2. Every string value must be under 30 words. No exceptions.
3. No case law names. No court citations. No legal precedents.
4. Maximum 3 applicable_laws, 4 violations, 4 recommendations.
5. "law" field: just act name and section (e.g. "Indian Contract Act 1872 - Section 27")
6. "issue" field: one short sentence only.
7. Total response must be under 800 tokens.`

const detailSystemPrompt = `You are a JSON API for detailed contract clause analysis.

ABSOLUTE RULES:
1. Output ONLY raw JSON. No markdown. No ` + "```json" + ` blocks. No text before or after.
2. "explanation": 3-5 sentences in plain language. Under 100 words.
3. "issues": 2-4 bullet points as a single string. Under 80 words total.
4. "recommendations": 2-4 actionable steps as a single string. Under 80 words total.
5. "applicable_laws": List relevant Indian act names and sections only. Under 60 words. No case law names.
6. Total response must be under 800 tokens.`

// truncate bounds the document text to a per-call prompt budget.
func truncate(text string, limit int) string {
	if len(text) > limit {
		return text[:limit]
	}
	return text
}

// Hindi output is requested inline; the exact wording differs per call
// because each prompt was tuned separately.

func analyzeLangInstruction(lang core.Language) string {
	if lang == core.LanguageHindi {
		return "Provide ALL explanations, descriptions, and text in Hindi (Devanagari script). Keep JSON keys in English but values in Hindi."
	}
	return ""
}

func valuesLangInstruction(lang core.Language) string {
	if lang == core.LanguageHindi {
		return "Write all JSON string values in Hindi (Devanagari script). Keys stay in English."
	}
	return ""
}

func detailLangInstruction(lang core.Language) string {
	if lang == core.LanguageHindi {
		return "Provide ALL responses in Hindi (Devanagari script). Keep JSON keys in English but all values in Hindi."
	}
	return ""
}

func analyzeUserPrompt(text string, lang core.Language) string {
	return analyzeLangInstruction(lang) +
		"\n\nContract text:\n" + truncate(text, analyzeTextLimit) +
		"\n\nReturn JSON exactly like this example (but with ACTUAL values from the contract above):" + analyzeExampleJSON +
		"\n\nIMPORTANT: Every party MUST have a role prefix (Employer/Employee/Client/Vendor etc). Every date MUST have context after an em dash. Every amount MUST have frequency and purpose. Extract ALL parties, ALL dates, and ALL monetary values from the contract."
}

func riskUserPrompt(text string, lang core.Language) string {
	return valuesLangInstruction(lang) +
		"\n\nContract text:\n" + truncate(text, riskTextLimit) +
		"\n\nReturn JSON:" + riskExampleJSON
}

func complianceUserPrompt(text string, lang core.Language) string {
	return valuesLangInstruction(lang) +
		"\n\nContract text:\n" + truncate(text, complianceTextLimit) +
		"\n\nReturn JSON:\n" +
		`{"is_compliant": false, "applicable_laws": ["..."], "violations": [{"law": "...", "issue": "..."}], "recommendations": ["..."]}`
}

func detailUserPrompt(clause core.Clause, fullText string, lang core.Language) string {
	return fmt.Sprintf(`%s

CLAUSE: %s | Risk: %s
SUMMARY: %s

CONTRACT CONTEXT:
%s

Return JSON:
{"explanation": "...", "issues": "...", "recommendations": "...", "applicable_laws": "..."}`,
		detailLangInstruction(lang),
		clause.Type, clause.RiskLevel, clause.Explanation,
		truncate(fullText, detailTextLimit))
}
