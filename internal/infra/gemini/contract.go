package gemini

import (
	"encoding/json"
	"math"
	"strings"

	"nutriledger/internal/domain/entity"
	"nutriledger/internal/domain/service"
	"nutriledger/internal/errors"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// ErrMalformedReply is returned when the model reply is not the agreed JSON object.
var ErrMalformedReply = errors.New("malformed analyzer reply")

const analysisSchemaJSON = `{
  "type": "object",
  "required": ["ai_description", "food_items"],
  "properties": {
    "ai_description": {"type": "string"},
    "ai_confidence": {"type": ["number", "null"]},
    "estimated_weight": {"type": ["number", "null"]},
    "food_items": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["name", "calories", "protein", "carbs", "fat"],
        "properties": {
          "name": {"type": "string", "minLength": 1},
          "category": {"type": ["string", "null"]},
          "estimated_quantity": {"type": ["number", "null"]},
          "quantity_unit": {"type": ["string", "null"]},
          "calories": {"type": "number"},
          "protein": {"type": "number"},
          "carbs": {"type": "number"},
          "fat": {"type": "number"},
          "fiber": {"type": ["number", "null"]},
          "sugar": {"type": ["number", "null"]},
          "sodium": {"type": ["number", "null"]},
          "confidence": {"type": ["number", "null"]}
        }
      }
    }
  }
}`

const goalSchemaJSON = `{
  "type": "object",
  "required": ["calories", "protein", "carbs", "fat"],
  "properties": {
    "calories": {"type": "number", "exclusiveMinimum": 0},
    "protein": {"type": "number", "exclusiveMinimum": 0},
    "carbs": {"type": "number", "exclusiveMinimum": 0},
    "fat": {"type": "number", "exclusiveMinimum": 0},
    "water_ml": {"type": ["integer", "null"]},
    "advice": {"type": ["string", "null"]}
  }
}`

var (
	analysisSchema = jsonschema.MustCompileString("analysis.json", analysisSchemaJSON)
	goalSchema     = jsonschema.MustCompileString("goal.json", goalSchemaJSON)
)

// analysisReply is the object the analysis prompt asks for. Reply totals are ignored;
// register totals are always recomputed from items.
type analysisReply struct {
	AIDescription string            `json:"ai_description"`
	AIConfidence  *float64          `json:"ai_confidence"`
	FoodItems     []entity.FoodItem `json:"food_items"`
}

type goalReply struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
	WaterML  *int    `json:"water_ml"`
	Advice   string  `json:"advice"`
}

// decodeAnalysis strips code fences, validates the reply against the analysis schema and clamps the values.
func decodeAnalysis(text string) (*service.AnalysisResult, error) {
	raw := []byte(stripCodeFence(text))

	if err := validateJSON(analysisSchema, raw); err != nil {
		return nil, err
	}

	var reply analysisReply
	if err := json.Unmarshal(raw, &reply); err != nil {
		return nil, errors.Wrap(ErrMalformedReply, err.Error())
	}

	items := make([]entity.FoodItem, 0, len(reply.FoodItems))
	for _, item := range reply.FoodItems {
		items = append(items, clampItem(item))
	}

	return &service.AnalysisResult{
		Description: strings.TrimSpace(reply.AIDescription),
		Confidence:  clampConfidence(reply.AIConfidence),
		Items:       items,
	}, nil
}

// decodeGoals returns nil values when the reply is not the structured goal object or any target rounds below 1.
func decodeGoals(text string) *service.GoalSuggestion {
	suggestion := &service.GoalSuggestion{Text: text}
	raw := []byte(stripCodeFence(text))

	if err := validateJSON(goalSchema, raw); err != nil {
		return suggestion
	}

	var reply goalReply
	if err := json.Unmarshal(raw, &reply); err != nil {
		return suggestion
	}

	values := &entity.GoalValues{
		Calories: math.Round(reply.Calories),
		Protein:  math.Round(reply.Protein),
		Carbs:    math.Round(reply.Carbs),
		Fat:      math.Round(reply.Fat),
	}
	// A target that rounds to zero reads as unset, which would leave a partial goal set.
	for _, v := range []float64{values.Calories, values.Protein, values.Carbs, values.Fat} {
		if v < 1 {
			return suggestion
		}
	}
	suggestion.Values = values
	if reply.WaterML != nil && *reply.WaterML > 0 {
		suggestion.WaterML = reply.WaterML
	}
	if reply.Advice != "" {
		suggestion.Text = reply.Advice
	}

	return suggestion
}

func validateJSON(schema *jsonschema.Schema, raw []byte) error {
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return errors.Wrap(ErrMalformedReply, err.Error())
	}
	if err := schema.Validate(v); err != nil {
		return errors.Wrap(ErrMalformedReply, err.Error())
	}

	return nil
}

// stripCodeFence removes a surrounding ``` or ```json fence.
func stripCodeFence(text string) string {
	cleaned := strings.TrimSpace(text)
	if strings.HasPrefix(cleaned, "```") {
		cleaned = strings.TrimPrefix(cleaned, "```")
		cleaned = strings.TrimPrefix(cleaned, "json")
		cleaned = strings.TrimPrefix(cleaned, "JSON")
	}
	cleaned = strings.TrimSuffix(strings.TrimSpace(cleaned), "```")

	return strings.TrimSpace(cleaned)
}

func clampItem(item entity.FoodItem) entity.FoodItem {
	item.Name = strings.TrimSpace(item.Name)
	item.Quantity = nonNegative(item.Quantity)
	item.Calories = nonNegative(item.Calories)
	item.Protein = nonNegative(item.Protein)
	item.Carbs = nonNegative(item.Carbs)
	item.Fat = nonNegative(item.Fat)
	item.Fiber = nonNegativePtr(item.Fiber)
	item.Sugar = nonNegativePtr(item.Sugar)
	item.Sodium = nonNegativePtr(item.Sodium)
	item.Confidence = clampConfidence(item.Confidence)

	return item
}

func clampConfidence(v *float64) *float64 {
	if v == nil {
		return nil
	}
	c := math.Max(0, math.Min(1, *v))

	return &c
}

func nonNegative(v float64) float64 {
	if v < 0 || math.IsNaN(v) {
		return 0
	}

	return v
}

func nonNegativePtr(v *float64) *float64 {
	if v == nil {
		return nil
	}
	n := nonNegative(*v)

	return &n
}
