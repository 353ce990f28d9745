package services

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"alvindra/resume-match/internal/models"
)

// analysisResultSchema is the structural contract for model output. It
// checks shape only; score ranges are trusted as produced.
const analysisResultSchema = `{
	"type": "object",
	"required": ["overallScore", "summary", "breakdown", "keywordAnalysis"],
	"properties": {
		"overallScore": {"type": "integer"},
		"summary": {"type": "string"},
		"breakdown": {
			"type": "array",
			"items": {
				"type": "object",
				"required": ["criterion", "score", "feedback"],
				"properties": {
					"criterion": {"type": "string"},
					"score": {"type": "integer"},
					"feedback": {"type": "string"}
				}
			}
		},
		"keywordAnalysis": {
			"type": "object",
			"required": ["foundKeywords", "missingKeywords"],
			"properties": {
				"foundKeywords": {"type": "array", "items": {"type": "string"}},
				"missingKeywords": {"type": "array", "items": {"type": "string"}}
			}
		}
	}
}`

// ResponseParser turns raw model output into an AnalysisResult. Malformed
// output yields *models.ParseError carrying the raw text for diagnostics;
// no partial recovery is attempted.
type ResponseParser struct {
	schema *gojsonschema.Schema
}

func NewResponseParser() (*ResponseParser, error) {
	schema, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(analysisResultSchema))
	if err != nil {
		return nil, fmt.Errorf("failed to compile analysis result schema: %w", err)
	}

	return &ResponseParser{schema: schema}, nil
}

func (p *ResponseParser) Parse(raw string) (*models.AnalysisResult, error) {
	cleaned := stripCodeFences(raw)

	validation, err := p.schema.Validate(gojsonschema.NewStringLoader(cleaned))
	if err != nil {
		return nil, &models.ParseError{Raw: raw, Err: fmt.Errorf("invalid JSON: %w", err)}
	}

	if !validation.Valid() {
		var issues []string
		for _, desc := range validation.Errors() {
			issues = append(issues, fmt.Sprintf("%s: %s", desc.Field(), desc.Description()))
		}
		return nil, &models.ParseError{
			Raw: raw,
			Err: fmt.Errorf("response does not match expected shape: %s", strings.Join(issues, "; ")),
		}
	}

	var result models.AnalysisResult
	if err := json.Unmarshal([]byte(cleaned), &result); err != nil {
		return nil, &models.ParseError{Raw: raw, Err: fmt.Errorf("failed to unmarshal JSON: %w", err)}
	}

	return &result, nil
}

// stripCodeFences removes a wrapping markdown code fence when present. This
// is a best-effort textual unwrap, not a markdown parser: a leading
// "```json" (or bare "```") and a trailing "```" are trimmed, nothing else.
func stripCodeFences(text string) string {
	cleaned := strings.TrimSpace(text)

	if strings.HasPrefix(cleaned, "```json") {
		cleaned = strings.TrimPrefix(cleaned, "```json")
	} else if strings.HasPrefix(cleaned, "```") {
		cleaned = strings.TrimPrefix(cleaned, "```")
	}
	cleaned = strings.TrimLeft(cleaned, "\r\n")

	cleaned = strings.TrimSuffix(strings.TrimSpace(cleaned), "```")

	return strings.TrimSpace(cleaned)
}
