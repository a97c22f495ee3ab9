package entity

import (
	"math"
	"slices"
	"time"

	"nutriledger/internal/errors"

	"github.com/google/uuid"
)

// RegisterStatus is the analysis lifecycle state of a register.
type RegisterStatus string

const (
	RegisterStatusAnalyzing RegisterStatus = "analyzing"
	RegisterStatusReviewing RegisterStatus = "reviewing"
	RegisterStatusCompleted RegisterStatus = "completed"
	RegisterStatusFailed    RegisterStatus = "failed"
)

// IsValid reports whether s is one of the known statuses.
func (s RegisterStatus) IsValid() bool {
	switch s {
	case RegisterStatusAnalyzing, RegisterStatusReviewing, RegisterStatusCompleted, RegisterStatusFailed:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether no further transition can leave s.
func (s RegisterStatus) IsTerminal() bool {
	return s == RegisterStatusCompleted || s == RegisterStatusFailed
}

var (
	// ErrInvalidTransition is returned when a status change is not allowed from the current state.
	ErrInvalidTransition = errors.New("invalid register status transition")
	// ErrEmptyAnalysis is returned when completing a register without food items.
	ErrEmptyAnalysis = errors.New("analysis produced no food items")
)

// Register represents one photographed meal and its analysis record.
type Register struct {
	ID            uuid.UUID       `json:"id"`                       // Assigned at creation (UUIDv7).
	OwnerID       uuid.UUID       `json:"owner_id"`                 // The user who created the register.
	CreatedAt     time.Time       `json:"created_at"`               // Immutable; drives period bucketing.
	UpdatedAt     time.Time       `json:"updated_at"`               // Last status change.
	Status        RegisterStatus  `json:"status"`                   // Lifecycle state.
	Description   string          `json:"description"`              // Optional user text.
	ImageRef      string          `json:"image_ref"`                // Key of the image in the image store.
	AIDescription string          `json:"ai_description,omitempty"` // Analyzer's description of the plate.
	FailureReason string          `json:"failure_reason,omitempty"` // Why analysis failed or needs review.
	FoodItems     []FoodItem      `json:"food_items"`               // Non-empty iff completed.
	ReviewItems   []FoodItem      `json:"review_items,omitempty"`   // Candidates awaiting confirmation while reviewing.
	Totals        *NutrientTotals `json:"totals,omitempty"`         // Frozen at completion.
}

// NewRegister creates a register in the analyzing state.
func NewRegister(ownerID uuid.UUID, imageRef, description string, now time.Time) *Register {
	id, err := uuid.NewV7()
	if err != nil {
		id = uuid.New()
	}

	return &Register{
		ID:          id,
		OwnerID:     ownerID,
		CreatedAt:   now,
		UpdatedAt:   now,
		Status:      RegisterStatusAnalyzing,
		Description: description,
		ImageRef:    imageRef,
		FoodItems:   []FoodItem{},
	}
}

// Complete moves an analyzing or reviewing register to completed and freezes its totals.
func (r *Register) Complete(items []FoodItem, aiDescription string, now time.Time) error {
	if r.Status != RegisterStatusAnalyzing && r.Status != RegisterStatusReviewing {
		return errors.Wrapf(ErrInvalidTransition, "%s -> %s", r.Status, RegisterStatusCompleted)
	}
	if len(items) == 0 {
		return ErrEmptyAnalysis
	}

	totals := ComputeTotals(items)
	r.FoodItems = slices.Clone(items)
	r.ReviewItems = nil
	r.Totals = &totals
	r.FailureReason = ""
	if aiDescription != "" {
		r.AIDescription = aiDescription
	}
	r.Status = RegisterStatusCompleted
	r.UpdatedAt = now

	return nil
}

// Fail moves an analyzing or reviewing register to failed. No totals are produced.
func (r *Register) Fail(reason string, now time.Time) error {
	if r.Status != RegisterStatusAnalyzing && r.Status != RegisterStatusReviewing {
		return errors.Wrapf(ErrInvalidTransition, "%s -> %s", r.Status, RegisterStatusFailed)
	}

	r.FoodItems = []FoodItem{}
	r.ReviewItems = nil
	r.Totals = nil
	r.FailureReason = reason
	r.Status = RegisterStatusFailed
	r.UpdatedAt = now

	return nil
}

// MarkForReview parks low-confidence analyzer output until the user confirms it.
func (r *Register) MarkForReview(candidates []FoodItem, aiDescription, reason string, now time.Time) error {
	if r.Status != RegisterStatusAnalyzing {
		return errors.Wrapf(ErrInvalidTransition, "%s -> %s", r.Status, RegisterStatusReviewing)
	}
	if len(candidates) == 0 {
		return ErrEmptyAnalysis
	}

	r.ReviewItems = slices.Clone(candidates)
	r.AIDescription = aiDescription
	r.FailureReason = reason
	r.Status = RegisterStatusReviewing
	r.UpdatedAt = now

	return nil
}

// Contributes reports whether the register takes part in aggregation.
func (r *Register) Contributes() bool {
	return r.Status == RegisterStatusCompleted && r.Totals != nil
}

// MacroDistribution is the share of protein, carbs and fat grams, in percent with one decimal.
type MacroDistribution struct {
	ProteinPercent float64 `json:"protein_percent"`
	CarbsPercent   float64 `json:"carbs_percent"`
	FatPercent     float64 `json:"fat_percent"`
}

// NutritionDensity is grams of each macro per 100 kcal.
type NutritionDensity struct {
	ProteinPer100Kcal float64 `json:"protein_per_100kcal"`
	CarbsPer100Kcal   float64 `json:"carbs_per_100kcal"`
	FatPer100Kcal     float64 `json:"fat_per_100kcal"`
}

// MacroDistribution is zero when the register has no totals or no macros.
func (r *Register) MacroDistribution() MacroDistribution {
	if r.Totals == nil {
		return MacroDistribution{}
	}
	t := r.Totals
	sum := t.Protein + t.Carbs + t.Fat
	if sum <= 0 {
		return MacroDistribution{}
	}

	return MacroDistribution{
		ProteinPercent: round1(t.Protein / sum * 100),
		CarbsPercent:   round1(t.Carbs / sum * 100),
		FatPercent:     round1(t.Fat / sum * 100),
	}
}

// NutritionDensity is zero when the register has no calories.
func (r *Register) NutritionDensity() NutritionDensity {
	if r.Totals == nil || r.Totals.Calories <= 0 {
		return NutritionDensity{}
	}
	t := r.Totals

	return NutritionDensity{
		ProteinPer100Kcal: math.Round(t.Protein/t.Calories*100*100) / 100,
		CarbsPer100Kcal:   math.Round(t.Carbs/t.Calories*100*100) / 100,
		FatPer100Kcal:     math.Round(t.Fat/t.Calories*100*100) / 100,
	}
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
