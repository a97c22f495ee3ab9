package usecase

import (
	"context"

	"nutriledger/internal/domain/entity"

	"github.com/google/uuid"
)

// GoalSuggestionOutput is a persisted AI suggestion.
type GoalSuggestionOutput struct {
	Goal       *entity.Goal `json:"goal"`
	Text       string       `json:"text"`
	Structured bool         `json:"structured"` // false when the free-text fallback was used
}

// GoalUsecase manages a user's daily goals.
type GoalUsecase interface {
	// GetGoal returns the stored goal, or an empty goal for users who never set one.
	GetGoal(ctx context.Context, userID uuid.UUID) (*entity.Goal, error)

	// SetGoal stores manual targets.
	SetGoal(ctx context.Context, userID uuid.UUID, values entity.GoalValues) (*entity.Goal, error)

	// ClearGoal removes the nutrition targets and keeps the water goal.
	ClearGoal(ctx context.Context, userID uuid.UUID) (*entity.Goal, error)

	// SuggestGoal asks the advisor for targets and stores them as ai-suggested.
	SuggestGoal(ctx context.Context, userID uuid.UUID, message string) (*GoalSuggestionOutput, error)

	// ApplyGoalText parses assistant text and stores the result as ai-suggested.
	ApplyGoalText(ctx context.Context, userID uuid.UUID, text string) (*entity.Goal, error)

	// SetWaterGoal stores a manual water target in milliliters.
	SetWaterGoal(ctx context.Context, userID uuid.UUID, milliliters int) (*entity.Goal, error)

	// ApplyWaterText parses a milliliter amount from text and stores it as ai-suggested.
	ApplyWaterText(ctx context.Context, userID uuid.UUID, text string) (*entity.Goal, error)
}
