package entity

import (
	"math"
	"time"

	"github.com/google/uuid"
)

// GoalMethod records how a goal was set. It is kept for audit only.
type GoalMethod string

const (
	GoalMethodManual      GoalMethod = "manual"
	GoalMethodAISuggested GoalMethod = "ai-suggested"
)

// IsValid reports whether m is a known method.
func (m GoalMethod) IsValid() bool {
	return m == GoalMethodManual || m == GoalMethodAISuggested
}

// Goal holds a user's daily nutrient targets. A nil or non-positive target means no goal for that nutrient.
type Goal struct {
	UserID       uuid.UUID  `json:"user_id"`
	CaloriesGoal *float64   `json:"calories_goal,omitempty"`
	ProteinGoal  *float64   `json:"protein_goal,omitempty"`
	CarbsGoal    *float64   `json:"carbs_goal,omitempty"`
	FatGoal      *float64   `json:"fat_goal,omitempty"`
	Method       GoalMethod `json:"method,omitempty"`
	WaterGoalML  *int       `json:"water_goal_ml,omitempty"`
	WaterMethod  GoalMethod `json:"water_method,omitempty"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// GoalValues is a complete set of nutrition targets, as produced by manual entry or the goal text parser.
type GoalValues struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}

// Apply overwrites the nutrition targets of g.
func (g *Goal) Apply(v GoalValues, method GoalMethod, now time.Time) {
	g.CaloriesGoal = &v.Calories
	g.ProteinGoal = &v.Protein
	g.CarbsGoal = &v.Carbs
	g.FatGoal = &v.Fat
	g.Method = method
	g.UpdatedAt = now
}

// ClearNutrition removes the nutrition targets and keeps the water goal.
func (g *Goal) ClearNutrition(now time.Time) {
	g.CaloriesGoal = nil
	g.ProteinGoal = nil
	g.CarbsGoal = nil
	g.FatGoal = nil
	g.Method = ""
	g.UpdatedAt = now
}

// SetWater overwrites the daily water target.
func (g *Goal) SetWater(ml int, method GoalMethod, now time.Time) {
	g.WaterGoalML = &ml
	g.WaterMethod = method
	g.UpdatedAt = now
}

// Target returns the goal for a nutrient if one is set.
func (g *Goal) Target(n Nutrient) (float64, bool) {
	if g == nil {
		return 0, false
	}

	var v *float64
	switch n {
	case NutrientCalories:
		v = g.CaloriesGoal
	case NutrientProtein:
		v = g.ProteinGoal
	case NutrientCarbs:
		v = g.CarbsGoal
	case NutrientFat:
		v = g.FatGoal
	}
	if v == nil || *v <= 0 {
		return 0, false
	}

	return *v, true
}

// HasNutritionGoals reports whether at least one nutrient target is set.
func (g *Goal) HasNutritionGoals() bool {
	for _, n := range GoalNutrients {
		if _, ok := g.Target(n); ok {
			return true
		}
	}

	return false
}

// WaterGoalLiters is the water goal in liters rounded to one decimal.
func (g *Goal) WaterGoalLiters() (float64, bool) {
	if g == nil || g.WaterGoalML == nil || *g.WaterGoalML <= 0 {
		return 0, false
	}

	return math.Round(float64(*g.WaterGoalML)/100) / 10, true
}
