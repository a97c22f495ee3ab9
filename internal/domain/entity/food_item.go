package entity

import (
	"math"
	"strings"
)

// gramsPerUnit converts recognised quantity units to grams. Volumes assume the density of water.
var gramsPerUnit = map[string]float64{
	"g":           1,
	"gr":          1,
	"gram":        1,
	"grams":       1,
	"gramo":       1,
	"gramos":      1,
	"kg":          1000,
	"kilogram":    1000,
	"kilograms":   1000,
	"kilogramos":  1000,
	"mg":          0.001,
	"ml":          1,
	"mililitros":  1,
	"milliliters": 1,
	"l":           1000,
	"litro":       1000,
	"litros":      1000,
	"liters":      1000,
	"oz":          28.3495,
	"lb":          453.592,
}

// FoodItem is one recognised food within a register.
type FoodItem struct {
	Name       string   `json:"name"`                 // Food name as reported by the analyzer.
	Category   string   `json:"category"`             // Free-form category (protein, vegetable, ...).
	Quantity   float64  `json:"estimated_quantity"`   // Estimated amount in Unit.
	Unit       string   `json:"quantity_unit"`        // Unit of Quantity (gramos, tazas, piezas, ...).
	Calories   float64  `json:"calories"`             // kcal
	Protein    float64  `json:"protein"`              // grams
	Carbs      float64  `json:"carbs"`                // grams
	Fat        float64  `json:"fat"`                  // grams
	Fiber      *float64 `json:"fiber,omitempty"`      // grams, optional
	Sugar      *float64 `json:"sugar,omitempty"`      // grams, optional
	Sodium     *float64 `json:"sodium,omitempty"`     // milligrams, optional
	Confidence *float64 `json:"confidence,omitempty"` // 0..1, optional
}

// Nutrients returns the item's amounts with absent optional values read as zero.
func (f FoodItem) Nutrients() Nutrients {
	return Nutrients{
		Calories: f.Calories,
		Protein:  f.Protein,
		Carbs:    f.Carbs,
		Fat:      f.Fat,
		Fiber:    valueOrZero(f.Fiber),
		Sugar:    valueOrZero(f.Sugar),
		Sodium:   valueOrZero(f.Sodium),
	}
}

// WeightGrams converts the quantity to grams. It reports false for units such as cups or pieces.
func (f FoodItem) WeightGrams() (float64, bool) {
	factor, ok := gramsPerUnit[strings.ToLower(strings.TrimSpace(f.Unit))]
	if !ok {
		return 0, false
	}

	return f.Quantity * factor, true
}

// CaloriesPer100g is only defined for positive quantities measured in grams.
func (f FoodItem) CaloriesPer100g() *float64 {
	grams, ok := f.WeightGrams()
	if !ok || grams <= 0 {
		return nil
	}
	v := math.Round(f.Calories/grams*100*10) / 10

	return &v
}

func valueOrZero(v *float64) float64 {
	if v == nil {
		return 0
	}

	return *v
}
