package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildMatchPrompt_EmbedsInputs(t *testing.T) {
	pb := NewPromptBuilder()

	prompt := pb.BuildMatchPrompt("Frontend Developer", "Seasoned React engineer with TypeScript.")

	assert.Contains(t, prompt, `"Frontend Developer"`)
	assert.Contains(t, prompt, "Seasoned React engineer with TypeScript.")
}

func TestBuildMatchPrompt_RequestsTheFixedCriteriaAndShape(t *testing.T) {
	pb := NewPromptBuilder()

	prompt := pb.BuildMatchPrompt("Backend Developer", "resume text")

	for _, criterion := range []string{
		"Current role requirements",
		"Skills alignment",
		"Education and certifications relevance",
		"Tools and frameworks knowledge",
		"Format and ATS-friendliness",
	} {
		assert.Contains(t, prompt, criterion)
	}

	// The parser has no fallback mapping, so the prompt must spell out the
	// exact field names.
	for _, field := range []string{
		`"overallScore"`, `"summary"`, `"breakdown"`,
		`"criterion"`, `"score"`, `"feedback"`,
		`"keywordAnalysis"`, `"foundKeywords"`, `"missingKeywords"`,
	} {
		assert.Contains(t, prompt, field)
	}

	assert.Contains(t, prompt, "10-15")
	assert.Contains(t, prompt, "Google Search")
}

func TestBuildMatchPrompt_IsDeterministic(t *testing.T) {
	pb := NewPromptBuilder()

	first := pb.BuildMatchPrompt("Data Scientist", "ten years of pandas")
	second := pb.BuildMatchPrompt("Data Scientist", "ten years of pandas")

	assert.Equal(t, first, second)
}
