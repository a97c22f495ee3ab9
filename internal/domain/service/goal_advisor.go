package service

import (
	"context"

	"nutriledger/internal/domain/entity"
)

// GoalProfile describes the user to the goal advisor.
type GoalProfile struct {
	Message               string   // free text: age, weight, activity, objective
	AverageCaloriesPerDay *float64 // recent intake, when known
}

// GoalSuggestion is the advisor's reply. Values is nil when the reply was not structured.
type GoalSuggestion struct {
	Values  *entity.GoalValues
	WaterML *int
	Text    string // raw reply, used by the free-text fallback
}

// GoalAdvisor asks a conversational model for daily targets.
type GoalAdvisor interface {
	SuggestGoals(ctx context.Context, profile GoalProfile) (*GoalSuggestion, error)
}
