package service

import (
	"encoding/json"
	"fmt"
	"strings"
)

// PromptSpec is a fully assembled model instruction for one task: the system
// persona, the user prompt, and the sampling temperature the task calls for.
type PromptSpec struct {
	Persona     string
	Prompt      string
	Temperature float64
}

// Caller-supplied text is interpolated verbatim into the templates below.
// Injection hardening (delimiters, escaping) would go here, behind this
// boundary, without touching callers.

// BuildAnalyzePrompt assembles the contract analysis instruction
func BuildAnalyzePrompt(contractText string) PromptSpec {
	prompt := fmt.Sprintf(`Analyze the following contract for potential risks and key terms:

Contract Text:
%s

Please provide:
1. Risk Assessment (score 1-10)
2. Key Terms Identified
3. Potential Issues
4. Recommendations
5. Missing Standard Clauses

Format response as JSON with the following structure:
{
    "risk_score": <number>,
    "key_terms": ["term1", "term2"],
    "potential_issues": ["issue1", "issue2"],
    "recommendations": ["rec1", "rec2"],
    "missing_clauses": ["clause1", "clause2"]
}`, contractText)

	return PromptSpec{
		Persona:     "You are a legal AI assistant specialized in contract analysis.",
		Prompt:      prompt,
		Temperature: 0.1,
	}
}

// BuildDraftPrompt assembles the contract drafting instruction
func BuildDraftPrompt(contractType string, parties []string, keyTerms map[string]any) PromptSpec {
	termsJSON, err := json.MarshalIndent(keyTerms, "", "  ")
	if err != nil {
		termsJSON = []byte("{}")
	}

	prompt := fmt.Sprintf(`Generate a professional %s contract draft with the following details:

Parties: %s
Key Terms: %s

Include standard clauses for:
- Definitions
- Scope of Work/Services
- Payment Terms
- Termination
- Confidentiality
- Governing Law
- Dispute Resolution

Format as a professional legal document.`, contractType, strings.Join(parties, ", "), termsJSON)

	return PromptSpec{
		Persona:     "You are a legal AI assistant specialized in contract drafting.",
		Prompt:      prompt,
		Temperature: 0.2,
	}
}

// BuildRiskPrompt assembles the legal risk assessment instruction
func BuildRiskPrompt(description string, riskContext map[string]any) PromptSpec {
	contextJSON, err := json.MarshalIndent(riskContext, "", "  ")
	if err != nil {
		contextJSON = []byte("{}")
	}

	prompt := fmt.Sprintf(`Assess the legal risk for the following situation:

Description: %s
Context: %s

Provide:
1. Risk Level (Low, Medium, High, Critical)
2. Risk Score (1-10)
3. Risk Factors
4. Mitigation Strategies
5. Recommended Actions

Format as JSON:
{
    "risk_level": "<level>",
    "risk_score": <number>,
    "risk_factors": ["factor1", "factor2"],
    "mitigation_strategies": ["strategy1", "strategy2"],
    "recommended_actions": ["action1", "action2"]
}`, description, contextJSON)

	return PromptSpec{
		Persona:     "You are a legal risk assessment AI assistant.",
		Prompt:      prompt,
		Temperature: 0.1,
	}
}

// BuildResearchPrompt assembles the legal research instruction
func BuildResearchPrompt(query string) PromptSpec {
	prompt := fmt.Sprintf(`Conduct legal research on the following query:

Query: %s

Provide:
1. Summary of relevant law
2. Key legal principles
3. Precedent cases (if applicable)
4. Practical implications
5. Recommendations

Format as JSON:
{
    "summary": "<summary>",
    "key_principles": ["principle1", "principle2"],
    "precedent_cases": ["case1", "case2"],
    "practical_implications": ["implication1", "implication2"],
    "recommendations": ["rec1", "rec2"]
}`, query)

	return PromptSpec{
		Persona:     "You are a legal research AI assistant.",
		Prompt:      prompt,
		Temperature: 0.1,
	}
}
