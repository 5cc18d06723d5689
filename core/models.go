package core

//go:generate go run ../cmd/musgen

import (
	"encoding/binary"
	"time"

	"github.com/go-crypt/x/blake2b"
)

// ID is a unique identifier for domain entities.
// It is generated using content-based hashing.
type ID uint64

// IDFromContent generates a deterministic ID from text content using BLAKE2b hashing.
// This ensures that identical content produces identical IDs.
func IDFromContent(text string) ID {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(text))
	sum := h.Sum(nil)
	return ID(binary.LittleEndian.Uint64(sum))
}

// Language selects the output language for user-facing strings.
// Every component that produces localizable text consumes this enum.
type Language int

const (
	// LanguageEnglish produces English output.
	LanguageEnglish Language = iota + 1
	// LanguageHindi produces Hindi (Devanagari script) output.
	LanguageHindi
)

// RiskLevel classifies how risky a contractual provision is.
type RiskLevel string

const (
	RiskHigh    RiskLevel = "High"
	RiskMedium  RiskLevel = "Medium"
	RiskLow     RiskLevel = "Low"
	RiskUnknown RiskLevel = "Unknown"
)

// Clause is one classified contractual provision.
type Clause struct {
	Type        string    `json:"type"`
	RiskLevel   RiskLevel `json:"risk_level"`
	Explanation string    `json:"explanation"`
}

// ContractAnalysis is the structured result of analyzing a contract.
// Parties are conventionally "Role: Name", dates "Date — Context",
// amounts "Amount — Purpose".
type ContractAnalysis struct {
	ContractType string   `json:"contract_type"`
	Parties      []string `json:"parties"`
	Dates        []string `json:"dates"`
	Amounts      []string `json:"amounts"`
	Clauses      []Clause `json:"clauses"`
}

// DetailedRisk is one categorized risk finding.
type DetailedRisk struct {
	Category    string `json:"category"`
	Description string `json:"description"`
}

// RiskAssessment is the structured result of scoring contract risk.
type RiskAssessment struct {
	OverallScore   int             `json:"overall_score"` // 0-100
	LegalRisk      RiskLevel       `json:"legal_risk"`
	FinancialRisk  RiskLevel       `json:"financial_risk"`
	ComplianceRisk RiskLevel       `json:"compliance_risk"`
	DetectedRisks  map[string]bool `json:"detected_risks"`
	DetailedRisks  []DetailedRisk  `json:"detailed_risks"`
}

// Violation is one detected conflict with an applicable law.
type Violation struct {
	Law   string `json:"law"`
	Issue string `json:"issue"`
}

// ComplianceResult is the structured result of a compliance check.
type ComplianceResult struct {
	IsCompliant     bool        `json:"is_compliant"`
	ApplicableLaws  []string    `json:"applicable_laws"`
	Violations      []Violation `json:"violations"`
	Recommendations []string    `json:"recommendations"`
}

// ClauseDetail is the in-depth analysis of a single clause.
type ClauseDetail struct {
	Explanation     string `json:"explanation"`
	Issues          string `json:"issues"`
	Recommendations string `json:"recommendations"`
	ApplicableLaws  string `json:"applicable_laws"`
}

// FullReport aggregates the three analysis variants for one document.
type FullReport struct {
	Analysis   *ContractAnalysis `json:"analysis"`
	Risk       *RiskAssessment   `json:"risk"`
	Compliance *ComplianceResult `json:"compliance"`
}

// Act is one statute from the reference legal dataset.
type Act struct {
	Id         ID
	Title      string
	Year       int
	Text       string
	SourceFile string
	InsertedAt time.Time
	UpdatedAt  time.Time
}
