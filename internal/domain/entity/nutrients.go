// Package entity contains the core business objects of the project.
package entity

// Nutrient names a tracked nutrient. The values double as JSON keys in summaries.
type Nutrient string

const (
	NutrientCalories Nutrient = "calories"
	NutrientProtein  Nutrient = "protein"
	NutrientCarbs    Nutrient = "carbs"
	NutrientFat      Nutrient = "fat"
	NutrientFiber    Nutrient = "fiber"
	NutrientSugar    Nutrient = "sugar"
	NutrientSodium   Nutrient = "sodium"
)

// GoalNutrients lists the nutrients a daily goal can target, in display order.
var GoalNutrients = []Nutrient{NutrientCalories, NutrientProtein, NutrientCarbs, NutrientFat}

// Nutrients is a plain bag of macro and micro nutrient amounts.
type Nutrients struct {
	Calories float64 `json:"calories"` // kcal
	Protein  float64 `json:"protein"`  // grams
	Carbs    float64 `json:"carbs"`    // grams
	Fat      float64 `json:"fat"`      // grams
	Fiber    float64 `json:"fiber"`    // grams
	Sugar    float64 `json:"sugar"`    // grams
	Sodium   float64 `json:"sodium"`   // milligrams
}

// Add returns the element-wise sum of n and o.
func (n Nutrients) Add(o Nutrients) Nutrients {
	return Nutrients{
		Calories: n.Calories + o.Calories,
		Protein:  n.Protein + o.Protein,
		Carbs:    n.Carbs + o.Carbs,
		Fat:      n.Fat + o.Fat,
		Fiber:    n.Fiber + o.Fiber,
		Sugar:    n.Sugar + o.Sugar,
		Sodium:   n.Sodium + o.Sodium,
	}
}

// Value returns the amount for a single nutrient.
func (n Nutrients) Value(nutrient Nutrient) float64 {
	switch nutrient {
	case NutrientCalories:
		return n.Calories
	case NutrientProtein:
		return n.Protein
	case NutrientCarbs:
		return n.Carbs
	case NutrientFat:
		return n.Fat
	case NutrientFiber:
		return n.Fiber
	case NutrientSugar:
		return n.Sugar
	case NutrientSodium:
		return n.Sodium
	default:
		return 0
	}
}

// NutrientTotals is the cached sum over a register's food items, or over many registers in a summary.
type NutrientTotals struct {
	Nutrients
	EstimatedWeight float64  `json:"estimated_weight"`        // grams, only units convertible to grams contribute
	AIConfidence    *float64 `json:"ai_confidence,omitempty"` // mean item confidence; unset for summaries
}

// Plus sums nutrients and weight. Confidence is per-register and is not carried into sums.
func (t NutrientTotals) Plus(o NutrientTotals) NutrientTotals {
	return NutrientTotals{
		Nutrients:       t.Nutrients.Add(o.Nutrients),
		EstimatedWeight: t.EstimatedWeight + o.EstimatedWeight,
	}
}

// ComputeTotals derives register totals from its food items.
func ComputeTotals(items []FoodItem) NutrientTotals {
	var (
		totals        NutrientTotals
		confidenceSum float64
		confidenceN   int
	)

	for _, item := range items {
		totals.Nutrients = totals.Nutrients.Add(item.Nutrients())
		if grams, ok := item.WeightGrams(); ok {
			totals.EstimatedWeight += grams
		}
		if item.Confidence != nil {
			confidenceSum += *item.Confidence
			confidenceN++
		}
	}

	if confidenceN > 0 {
		mean := confidenceSum / float64(confidenceN)
		totals.AIConfidence = &mean
	}

	return totals
}
