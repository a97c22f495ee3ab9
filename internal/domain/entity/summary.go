package entity

import (
	"math"

	"cloud.google.com/go/civil"
	"github.com/google/uuid"
)

// DailyTotals is one day of a summary's breakdown.
type DailyTotals struct {
	Date   civil.Date     `json:"date"`
	Totals NutrientTotals `json:"totals"`
	Count  int            `json:"count"`
}

// GoalProgress compares consumption against a daily target.
type GoalProgress struct {
	Consumed   float64 `json:"consumed"`
	Goal       float64 `json:"goal"`
	Percentage int     `json:"percentage"` // unclamped, may exceed 100
}

// NewGoalProgress rounds consumed/goal to a whole percentage. goal must be positive.
func NewGoalProgress(consumed, goal float64) GoalProgress {
	return GoalProgress{
		Consumed:   consumed,
		Goal:       goal,
		Percentage: int(math.Round(consumed / goal * 100)),
	}
}

// DisplayPercentage clamps the percentage to [0, 100] for rendering.
func (p GoalProgress) DisplayPercentage() int {
	return min(max(p.Percentage, 0), 100)
}

// PeriodSummary is the aggregation of a user's completed registers over an inclusive date range.
type PeriodSummary struct {
	UserID                uuid.UUID                 `json:"user_id"`
	Start                 civil.Date                `json:"start"`
	End                   civil.Date                `json:"end"`
	Totals                NutrientTotals            `json:"totals"`
	Count                 int                       `json:"count"`
	DaysInPeriod          int                       `json:"days_in_period"`
	DaysWithRecords       int                       `json:"days_with_records"`
	Consistency           int                       `json:"consistency"`
	DailyBreakdown        []DailyTotals             `json:"daily_breakdown"`
	GoalsProgress         map[Nutrient]GoalProgress `json:"goals_progress,omitempty"`
	AverageCaloriesPerDay *float64                  `json:"average_calories_per_day,omitempty"`
}

// SingleDay reports whether the summary covers exactly one calendar day.
func (s *PeriodSummary) SingleDay() bool {
	return s.Start == s.End
}
