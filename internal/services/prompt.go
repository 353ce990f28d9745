package services

import "fmt"

type PromptBuilder struct{}

func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{}
}

// BuildMatchPrompt creates the prompt for scoring a resume against a target
// job title. Both arguments must be non-empty; that precondition is
// enforced by the caller. The function is pure: identical inputs always
// produce the identical prompt.
func (pb *PromptBuilder) BuildMatchPrompt(jobTitle, resumeText string) string {
	return fmt.Sprintf(`You are an expert technical recruiter and ATS specialist.

First, use Google Search to establish a current, realistic benchmark job description for a "%s" position, based on present-day postings for that role.

Then evaluate the candidate's resume below against that benchmark.

CANDIDATE RESUME:
%s

Score the resume against these five criteria, each from 0 to 10:
1. Current role requirements
2. Skills alignment
3. Education and certifications relevance
4. Tools and frameworks knowledge
5. Format and ATS-friendliness

Also extract 10-15 of the most salient keywords from the benchmark job description and classify each one as either found in the resume or missing from it.

Respond with a single JSON object and nothing else: no surrounding prose, no markdown, no code fences. The object must have exactly this shape:
{
  "overallScore": <0-100>,
  "summary": "<2-4 sentence overall assessment>",
  "breakdown": [
    {"criterion": "<criterion name>", "score": <0-10>, "feedback": "<1-2 sentence justification>"}
  ],
  "keywordAnalysis": {
    "foundKeywords": ["<keyword>"],
    "missingKeywords": ["<keyword>"]
  }
}

The breakdown must list the five criteria above, in that order. Base your reasoning only on the resume text and the benchmark description.`,
		jobTitle, resumeText)
}
