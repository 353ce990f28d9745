package models

// AnalysisResult is the structured verdict produced by the model. Field
// names and nesting mirror the JSON shape the prompt demands; the parser
// has no fallback mapping, so these tags are the contract.
type AnalysisResult struct {
	OverallScore    int             `json:"overallScore"`
	Summary         string          `json:"summary"`
	Breakdown       []BreakdownItem `json:"breakdown"`
	KeywordAnalysis KeywordAnalysis `json:"keywordAnalysis"`
}

// BreakdownItem scores the resume against one of the five fixed criteria.
type BreakdownItem struct {
	Criterion string `json:"criterion"`
	Score     int    `json:"score"`
	Feedback  string `json:"feedback"`
}

type KeywordAnalysis struct {
	FoundKeywords   []string `json:"foundKeywords"`
	MissingKeywords []string `json:"missingKeywords"`
}
