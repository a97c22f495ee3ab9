// Package gemini implements the image analyzer and the goal advisor on Google's Gemini API.
package gemini

import (
	"context"
	"log/slog"

	"nutriledger/config"
	"nutriledger/internal/errors"

	"go.uber.org/fx"
	"google.golang.org/genai"
)

// ErrNotConfigured is returned by every call when no API key is configured.
var ErrNotConfigured = errors.New("gemini api key is not configured")

const jsonMIMEType = "application/json"

// Generator is the subset of genai.Models used by the analyzer and the advisor.
type Generator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// ClientParams defines the dependencies of NewGenerator.
type ClientParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// NewGenerator builds the shared Gemini client. Without an API key every call fails with ErrNotConfigured.
func NewGenerator(params ClientParams) (Generator, error) {
	cfg := params.Config.Gemini
	if cfg == nil || cfg.APIKey == "" {
		params.Logger.Warn("Gemini API key missing, analysis and goal suggestions are disabled")

		return unconfigured{}, nil
	}

	client, err := genai.NewClient(context.Background(), &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create Gemini client")
	}

	return client.Models, nil
}

type unconfigured struct{}

func (unconfigured) GenerateContent(context.Context, string, []*genai.Content, *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	return nil, ErrNotConfigured
}

// generateText runs a single-turn request and returns the concatenated text of the first candidate.
func generateText(ctx context.Context, gen Generator, model string, parts []*genai.Part, temperature float32) (string, error) {
	contents := []*genai.Content{genai.NewContentFromParts(parts, genai.RoleUser)}

	resp, err := gen.GenerateContent(ctx, model, contents, &genai.GenerateContentConfig{
		ResponseMIMEType: jsonMIMEType,
		Temperature:      genai.Ptr(temperature),
	})
	if err != nil {
		return "", errors.Wrap(err, "gemini generate content failed")
	}
	if resp == nil {
		return "", errors.New("gemini returned no response")
	}

	text := resp.Text()
	if text == "" {
		return "", errors.New("gemini returned an empty reply")
	}

	return text, nil
}
