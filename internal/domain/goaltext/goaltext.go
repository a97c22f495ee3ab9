// Package goaltext extracts numeric goals from free-form assistant text.
//
// It is a best-effort fallback for replies that do not follow the structured JSON contract.
// Extraction is all-or-nothing: a reply missing any nutrient yields ErrParseFailure.
package goaltext

import (
	"math"
	"regexp"
	"strconv"

	"nutriledger/internal/domain/entity"
	"nutriledger/internal/errors"
)

// ErrParseFailure is returned when the text does not contain every required value.
var ErrParseFailure = errors.New("goal text could not be parsed")

var (
	caloriesPattern = regexp.MustCompile(`(?i)(?:calor[ií]as|calories|kcal)\s*:\s*(\d+)`)
	proteinPattern  = regexp.MustCompile(`(?i)(?:prote[ií]nas?|proteins?)\s*:\s*(\d+)\s*g`)
	carbsPattern    = regexp.MustCompile(`(?i)(?:carbohidratos|carbohydrates|carbs)\s*:\s*(\d+)\s*g`)
	fatPattern      = regexp.MustCompile(`(?i)(?:grasas?|fats?)\s*:\s*(\d+)\s*g`)
	waterPattern    = regexp.MustCompile(`(?i)(\d{3,4})\s*ml`)
)

// ExtractGoals returns all four nutrition targets found in text.
func ExtractGoals(text string) (entity.GoalValues, error) {
	var (
		values  entity.GoalValues
		missing []string
	)

	for _, f := range []struct {
		name    string
		pattern *regexp.Regexp
		dst     *float64
	}{
		{"calories", caloriesPattern, &values.Calories},
		{"protein", proteinPattern, &values.Protein},
		{"carbs", carbsPattern, &values.Carbs},
		{"fat", fatPattern, &values.Fat},
	} {
		v, ok := firstNumber(f.pattern, text)
		if !ok {
			missing = append(missing, f.name)
			continue
		}
		*f.dst = v
	}

	if len(missing) > 0 {
		return entity.GoalValues{}, errors.Wrapf(ErrParseFailure, "missing %v", missing)
	}

	return values, nil
}

// WaterGoal is a daily water target extracted from text.
type WaterGoal struct {
	Milliliters int     `json:"milliliters"`
	Liters      float64 `json:"liters"` // rounded to one decimal
}

// ExtractWater returns the first three or four digit milliliter amount in text.
func ExtractWater(text string) (WaterGoal, error) {
	m := waterPattern.FindStringSubmatch(text)
	if m == nil {
		return WaterGoal{}, errors.Wrap(ErrParseFailure, "no milliliter amount")
	}

	ml, err := strconv.Atoi(m[1])
	if err != nil {
		return WaterGoal{}, errors.Wrap(ErrParseFailure, err.Error())
	}

	return WaterGoal{
		Milliliters: ml,
		Liters:      math.Round(float64(ml)/100) / 10,
	}, nil
}

func firstNumber(p *regexp.Regexp, text string) (float64, bool) {
	m := p.FindStringSubmatch(text)
	if m == nil {
		return 0, false
	}

	v, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0, false
	}

	return v, true
}
