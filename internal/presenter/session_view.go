package presenter

import (
	"alvindra/resume-match/internal/models"
	"alvindra/resume-match/internal/session"
)

// Display states. A session shows exactly one of: a loading indicator, the
// empty placeholder, or the result.
const (
	ViewLoading     = "loading"
	ViewPlaceholder = "placeholder"
	ViewResult      = "result"
)

// Severity bands and the thresholds that produce them. An overall score of
// 85 or above is "high", 60 or above "medium", anything else "low". Per
// criterion scores run 0-10 and are scaled by ten to share the thresholds.
const (
	BandHigh   = "high"
	BandMedium = "medium"
	BandLow    = "low"

	highThreshold   = 85
	mediumThreshold = 60
)

type SessionView struct {
	ID         string      `json:"id"`
	Job        JobView     `json:"job"`
	Resume     *ResumeView `json:"resume,omitempty"`
	View       string      `json:"view"`
	CanAnalyze bool        `json:"can_analyze"`
	Error      string      `json:"error,omitempty"`
	Result     *ResultView `json:"result,omitempty"`
}

type JobView struct {
	PredefinedTitle string `json:"predefined_title"`
	CustomTitle     string `json:"custom_title"`
	EffectiveTitle  string `json:"effective_title"`
}

type ResumeView struct {
	FileName string `json:"file_name"`
}

type ResultView struct {
	OverallScore    int                    `json:"overall_score"`
	ScoreBand       string                 `json:"score_band"`
	ScoreClass      string                 `json:"score_class"`
	Summary         string                 `json:"summary"`
	Breakdown       []BreakdownView        `json:"breakdown"`
	KeywordAnalysis models.KeywordAnalysis `json:"keyword_analysis"`
}

type BreakdownView struct {
	Criterion string `json:"criterion"`
	Score     int    `json:"score"`
	Feedback  string `json:"feedback"`
	ScoreBand string `json:"score_band"`
}

// NewSessionView renders a session snapshot for the client.
func NewSessionView(snap session.Snapshot) SessionView {
	view := SessionView{
		ID: snap.ID.String(),
		Job: JobView{
			PredefinedTitle: snap.Job.PredefinedTitle,
			CustomTitle:     snap.Job.CustomTitle,
			EffectiveTitle:  snap.Job.EffectiveTitle(),
		},
		View:  displayState(snap),
		Error: snap.LastError,
	}

	if snap.Resume.IsPresent() {
		view.Resume = &ResumeView{FileName: snap.Resume.FileName}
	}

	view.CanAnalyze = !snap.ParsingFile && !snap.Analyzing &&
		snap.Job.EffectiveTitle() != "" && snap.Resume.IsPresent()

	if snap.Result != nil {
		result := NewResultView(snap.Result)
		view.Result = &result
	}

	return view
}

func NewResultView(result *models.AnalysisResult) ResultView {
	view := ResultView{
		OverallScore:    result.OverallScore,
		ScoreBand:       ScoreBand(result.OverallScore),
		ScoreClass:      ScoreBand(result.OverallScore) + "-score",
		Summary:         result.Summary,
		KeywordAnalysis: result.KeywordAnalysis,
	}

	for _, item := range result.Breakdown {
		view.Breakdown = append(view.Breakdown, BreakdownView{
			Criterion: item.Criterion,
			Score:     item.Score,
			Feedback:  item.Feedback,
			ScoreBand: ScoreBand(item.Score * 10),
		})
	}

	return view
}

// ScoreBand maps a 0-100 score onto its severity band.
func ScoreBand(score int) string {
	switch {
	case score >= highThreshold:
		return BandHigh
	case score >= mediumThreshold:
		return BandMedium
	default:
		return BandLow
	}
}

func displayState(snap session.Snapshot) string {
	switch {
	case snap.ParsingFile || snap.Analyzing:
		return ViewLoading
	case snap.Result != nil:
		return ViewResult
	default:
		return ViewPlaceholder
	}
}
