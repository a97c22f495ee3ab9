package gemini

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"nutriledger/config"
	"nutriledger/internal/domain/service"
	"nutriledger/internal/errors"

	"go.uber.org/fx"
	"google.golang.org/genai"
)

const analysisPrompt = `Analyze this photo of a meal and estimate its nutritional content.
Keep the answer short. Reply ONLY with a JSON object of this shape:
{
  "ai_description": "short description of the plate",
  "ai_confidence": 0.85,
  "estimated_weight": 300,
  "food_items": [
    {
      "name": "Grilled chicken",
      "category": "protein",
      "estimated_quantity": 120,
      "quantity_unit": "grams",
      "calories": 198,
      "protein": 22.5,
      "carbs": 0,
      "fat": 11.2,
      "fiber": 0,
      "sugar": 0,
      "sodium": 65,
      "confidence": 0.9
    }
  ]
}
Calories are kcal, sodium is milligrams, every other nutrient is grams.
Confidence values are between 0 and 1. Return an empty food_items array if no food is visible.`

const analysisTemperature = 0.2

// AnalyzerParams defines the dependencies of the Gemini image analyzer.
type AnalyzerParams struct {
	fx.In

	Config    *config.Config
	Logger    *slog.Logger
	Generator Generator
}

type imageAnalyzer struct {
	gen    Generator
	model  string
	logger *slog.Logger
}

// NewImageAnalyzer creates an ImageAnalyzer backed by Gemini.
func NewImageAnalyzer(params AnalyzerParams) service.ImageAnalyzer {
	return &imageAnalyzer{
		gen:    params.Generator,
		model:  params.Config.Gemini.Model,
		logger: params.Logger,
	}
}

// Analyze sends the photo and the optional user description and decodes the structured reply.
func (a *imageAnalyzer) Analyze(ctx context.Context, req service.AnalysisRequest) (*service.AnalysisResult, error) {
	if len(req.Image) == 0 {
		return nil, errors.New("image is empty")
	}

	prompt := analysisPrompt
	if desc := strings.TrimSpace(req.Description); desc != "" {
		prompt += fmt.Sprintf("\n\nUser description: %s", desc)
	}

	parts := []*genai.Part{
		genai.NewPartFromText(prompt),
		genai.NewPartFromBytes(req.Image, req.MIMEType),
	}

	text, err := generateText(ctx, a.gen, a.model, parts, analysisTemperature)
	if err != nil {
		return nil, err
	}

	result, err := decodeAnalysis(text)
	if err != nil {
		a.logger.WarnContext(ctx, "Analyzer reply rejected",
			slog.String("model", a.model),
			slog.Int("replyLength", len(text)),
			slog.Any("error", err),
		)

		return nil, err
	}

	return result, nil
}
