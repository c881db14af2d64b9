package service

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/Endawoke47/CounselFlow-Ultimate-Neo/backend/model"
	"github.com/Endawoke47/CounselFlow-Ultimate-Neo/backend/pkg/logger"
)

// AssistantService runs the AI-assisted legal tasks. Every task follows the
// same pipeline: build prompt, call the model, decode the completion. A failed
// call or decode never surfaces to the caller; the task's degraded default is
// returned instead, so responses always conform to the success schema.
type AssistantService struct {
	completer Completer
}

func NewAssistantService(completer Completer) *AssistantService {
	return &AssistantService{completer: completer}
}

// AnalyzeContract reviews contract text for risks and key terms
func (s *AssistantService) AnalyzeContract(ctx context.Context, contractText string) model.ContractAnalysis {
	spec := BuildAnalyzePrompt(contractText)

	raw, err := s.completer.Complete(ctx, spec.Persona, spec.Prompt, spec.Temperature)
	if err != nil {
		logger.Error(ctx, "contract analysis failed",
			"task", "analyze_contract", "error", err)
		return DefaultContractAnalysis()
	}

	var result model.ContractAnalysis
	if err := decodeCompletion(raw, &result); err != nil {
		logger.Error(ctx, "contract analysis returned unparseable completion",
			"task", "analyze_contract", "error", err, "raw", truncateRaw(raw))
		return DefaultContractAnalysis()
	}

	return result
}

// GenerateDraft produces a contract draft. The completion is a legal document,
// not JSON, and is returned verbatim.
func (s *AssistantService) GenerateDraft(ctx context.Context, contractType string, parties []string, keyTerms map[string]any) string {
	spec := BuildDraftPrompt(contractType, parties, keyTerms)

	raw, err := s.completer.Complete(ctx, spec.Persona, spec.Prompt, spec.Temperature)
	if err != nil {
		logger.Error(ctx, "contract draft generation failed",
			"task", "generate_contract_draft", "error", err)
		return fmt.Sprintf("Error generating contract draft: %v", err)
	}

	return raw
}

// AssessRisk evaluates the legal risk of a described situation
func (s *AssistantService) AssessRisk(ctx context.Context, description string, riskContext map[string]any) model.RiskAssessment {
	spec := BuildRiskPrompt(description, riskContext)

	raw, err := s.completer.Complete(ctx, spec.Persona, spec.Prompt, spec.Temperature)
	if err != nil {
		logger.Error(ctx, "risk assessment failed",
			"task", "assess_legal_risk", "error", err)
		return DefaultRiskAssessment()
	}

	var result model.RiskAssessment
	if err := decodeCompletion(raw, &result); err != nil {
		logger.Error(ctx, "risk assessment returned unparseable completion",
			"task", "assess_legal_risk", "error", err, "raw", truncateRaw(raw))
		return DefaultRiskAssessment()
	}

	return result
}

// Research answers a legal research query
func (s *AssistantService) Research(ctx context.Context, query string) model.ResearchResult {
	spec := BuildResearchPrompt(query)

	raw, err := s.completer.Complete(ctx, spec.Persona, spec.Prompt, spec.Temperature)
	if err != nil {
		logger.Error(ctx, "legal research failed",
			"task", "legal_research", "error", err)
		return DefaultResearchResult()
	}

	var result model.ResearchResult
	if err := decodeCompletion(raw, &result); err != nil {
		logger.Error(ctx, "legal research returned unparseable completion",
			"task", "legal_research", "error", err, "raw", truncateRaw(raw))
		return DefaultResearchResult()
	}

	return result
}

// DefaultContractAnalysis is the degraded fallback for contract analysis
func DefaultContractAnalysis() model.ContractAnalysis {
	return model.ContractAnalysis{
		RiskScore:       5,
		KeyTerms:        []string{},
		PotentialIssues: []string{"Analysis error occurred"},
		Recommendations: []string{"Manual review recommended"},
		MissingClauses:  []string{},
	}
}

// DefaultRiskAssessment is the degraded fallback for risk assessment
func DefaultRiskAssessment() model.RiskAssessment {
	return model.RiskAssessment{
		RiskLevel:            model.RiskLevelMedium,
		RiskScore:            5,
		RiskFactors:          []string{"Assessment error occurred"},
		MitigationStrategies: []string{"Manual review recommended"},
		RecommendedActions:   []string{"Consult legal expert"},
	}
}

// DefaultResearchResult is the degraded fallback for legal research
func DefaultResearchResult() model.ResearchResult {
	return model.ResearchResult{
		Summary:               "Research error occurred",
		KeyPrinciples:         []string{},
		PrecedentCases:        []string{},
		PracticalImplications: []string{},
		Recommendations:       []string{},
	}
}

var codeFenceRegex = regexp.MustCompile("```(?:json|JSON)?\\s*\\n?([\\s\\S]*?)\\n?```")

// decodeCompletion parses a model completion as JSON into v. Models often wrap
// JSON in markdown code fences; those are stripped before the strict parse.
// Prose that merely contains a JSON fragment still fails the parse.
func decodeCompletion(raw string, v any) error {
	content := strings.TrimSpace(raw)
	if matches := codeFenceRegex.FindStringSubmatch(content); len(matches) > 1 {
		content = strings.TrimSpace(matches[1])
	}

	return json.Unmarshal([]byte(content), v)
}

// truncateRaw bounds a raw completion for log output
func truncateRaw(raw string) string {
	const limit = 500
	if len(raw) <= limit {
		return raw
	}
	return raw[:limit] + "..."
}
