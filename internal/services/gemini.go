package services

import (
	"context"
	"fmt"

	"google.golang.org/genai"

	"alvindra/resume-match/internal/models"
)

// AnalysisClient sends a prompt to the generative AI service and returns
// the raw response text verbatim. It performs no retries and no
// interpretation; every failure collapses into *models.ServiceError.
type AnalysisClient interface {
	Submit(ctx context.Context, prompt string) (string, error)
}

type geminiClient struct {
	client    *genai.Client
	modelName string
}

func NewGeminiClient(apiKey, modelName string) (AnalysisClient, error) {
	ctx := context.Background()

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return &geminiClient{
		client:    client,
		modelName: modelName,
	}, nil
}

// Submit implements AnalysisClient. Google Search grounding is enabled so
// the model can anchor its benchmark job description in current postings.
func (g *geminiClient) Submit(ctx context.Context, prompt string) (string, error) {
	config := &genai.GenerateContentConfig{
		Tools: []*genai.Tool{
			{GoogleSearch: &genai.GoogleSearch{}},
		},
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.modelName, genai.Text(prompt), config)
	if err != nil {
		return "", &models.ServiceError{Err: err}
	}

	if resp == nil {
		return "", &models.ServiceError{Err: fmt.Errorf("nil response from model")}
	}

	text := resp.Text()
	if text == "" {
		return "", &models.ServiceError{Err: fmt.Errorf("no text content in response")}
	}

	return text, nil
}
