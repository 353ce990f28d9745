package services

import (
	"context"
	"errors"
	"log"

	"alvindra/resume-match/internal/models"
	"alvindra/resume-match/internal/session"
)

// AnalyzerService runs one full analysis: build prompt, call the model,
// parse the response, drive the session transitions. One trigger maps to
// one logical transaction; failures move the session to AnalysisFailed
// with a user-facing message, the detail stays in the log.
type AnalyzerService interface {
	Analyze(ctx context.Context, sess *session.Session) (*models.AnalysisResult, error)
}

type analyzerService struct {
	client        AnalysisClient
	parser        *ResponseParser
	promptBuilder *PromptBuilder
}

func NewAnalyzerService(client AnalysisClient, parser *ResponseParser) AnalyzerService {
	return &analyzerService{
		client:        client,
		parser:        parser,
		promptBuilder: NewPromptBuilder(),
	}
}

// Analyze implements AnalyzerService.
func (a *analyzerService) Analyze(ctx context.Context, sess *session.Session) (*models.AnalysisResult, error) {
	if err := sess.BeginAnalysis(); err != nil {
		return nil, err
	}

	jobTitle := sess.EffectiveTitle()
	resumeText := sess.ResumeText()

	prompt := a.promptBuilder.BuildMatchPrompt(jobTitle, resumeText)
	log.Printf("🤖 Analyzing session %s for %q (prompt: %d characters)\n", sess.ID, jobTitle, len(prompt))

	raw, err := a.client.Submit(ctx, prompt)
	if err != nil {
		log.Printf("❌ Analysis service call failed for session %s: %v\n", sess.ID, err)
		sess.FailAnalysis(models.FailureService)
		return nil, err
	}

	result, err := a.parser.Parse(raw)
	if err != nil {
		var parseErr *models.ParseError
		if errors.As(err, &parseErr) {
			log.Printf("❌ Unparseable response for session %s: %v\nRaw response: %s\n", sess.ID, err, parseErr.Raw)
		} else {
			log.Printf("❌ Unparseable response for session %s: %v\n", sess.ID, err)
		}
		sess.FailAnalysis(models.FailureParse)
		return nil, err
	}

	sess.CompleteAnalysis(result)
	log.Printf("✅ Analysis completed for session %s (overall score: %d)\n", sess.ID, result.OverallScore)

	return result, nil
}
