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

const goalPrompt = `You are a nutritionist. Propose personalised daily nutrition goals for this user.
Reply ONLY with a JSON object:
{"calories": 2000, "protein": 150, "carbs": 250, "fat": 67, "water_ml": 2500, "advice": "one short sentence"}
calories in kcal, protein/carbs/fat in grams, water_ml in milliliters.
For water use body weight x 35ml, plus 300ml for moderate activity or 500ml for high activity.`

const goalTemperature = 0.4

// AdvisorParams defines the dependencies of the Gemini goal advisor.
type AdvisorParams struct {
	fx.In

	Config    *config.Config
	Logger    *slog.Logger
	Generator Generator
}

type goalAdvisor struct {
	gen    Generator
	model  string
	logger *slog.Logger
}

// NewGoalAdvisor creates a GoalAdvisor backed by Gemini.
func NewGoalAdvisor(params AdvisorParams) service.GoalAdvisor {
	return &goalAdvisor{
		gen:    params.Generator,
		model:  params.Config.Gemini.Model,
		logger: params.Logger,
	}
}

// SuggestGoals asks for structured goals. A reply that is not the goal object comes back as text only.
func (a *goalAdvisor) SuggestGoals(ctx context.Context, profile service.GoalProfile) (*service.GoalSuggestion, error) {
	var b strings.Builder
	b.WriteString(goalPrompt)
	if profile.AverageCaloriesPerDay != nil {
		fmt.Fprintf(&b, "\n\nAverage intake over the last days: %.0f kcal per day.", *profile.AverageCaloriesPerDay)
	}
	if msg := strings.TrimSpace(profile.Message); msg != "" {
		fmt.Fprintf(&b, "\n\nUser: %s", msg)
	}

	text, err := generateText(ctx, a.gen, a.model, []*genai.Part{genai.NewPartFromText(b.String())}, goalTemperature)
	if err != nil {
		return nil, errors.Wrap(err, "goal advisor call failed")
	}

	suggestion := decodeGoals(text)
	if suggestion.Values == nil {
		a.logger.InfoContext(ctx, "Goal advisor replied without structured goals", slog.String("model", a.model))
	}

	return suggestion, nil
}
