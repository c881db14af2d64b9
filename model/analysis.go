package model

// ContractAnalysis is the result of an AI contract review
type ContractAnalysis struct {
	RiskScore       int      `json:"risk_score"`
	KeyTerms        []string `json:"key_terms"`
	PotentialIssues []string `json:"potential_issues"`
	Recommendations []string `json:"recommendations"`
	MissingClauses  []string `json:"missing_clauses"`
}

// RiskAssessment is the result of an AI legal risk assessment
type RiskAssessment struct {
	RiskLevel            string   `json:"risk_level"` // Low, Medium, High, Critical
	RiskScore            int      `json:"risk_score"`
	RiskFactors          []string `json:"risk_factors"`
	MitigationStrategies []string `json:"mitigation_strategies"`
	RecommendedActions   []string `json:"recommended_actions"`
}

// ResearchResult is the result of an AI legal research query
type ResearchResult struct {
	Summary               string   `json:"summary"`
	KeyPrinciples         []string `json:"key_principles"`
	PrecedentCases        []string `json:"precedent_cases"`
	PracticalImplications []string `json:"practical_implications"`
	Recommendations       []string `json:"recommendations"`
}

// Risk level constants
const (
	RiskLevelLow      = "Low"
	RiskLevelMedium   = "Medium"
	RiskLevelHigh     = "High"
	RiskLevelCritical = "Critical"
)
