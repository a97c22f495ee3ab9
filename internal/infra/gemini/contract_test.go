package gemini

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleAnalysis = "```json\n" + `{
  "ai_description": "  Rice with grilled chicken ",
  "ai_confidence": 1.4,
  "estimated_weight": 270,
  "total_calories": 9999,
  "food_items": [
    {"name": "rice", "category": "grain", "estimated_quantity": 150, "quantity_unit": "gramos",
     "calories": 195, "protein": 4, "carbs": 42, "fat": 0.4, "confidence": 0.8},
    {"name": "chicken", "estimated_quantity": 120, "quantity_unit": "g",
     "calories": 198, "protein": 37, "carbs": -2, "fat": 4.3, "sodium": -5, "confidence": -0.1, "fiber": null}
  ]
}` + "\n```"

func TestStripCodeFence(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "json fence", in: "```json\n{\"a\":1}\n```", want: `{"a":1}`},
		{name: "bare fence", in: "```\n{\"a\":1}```", want: `{"a":1}`},
		{name: "no fence", in: "  {\"a\":1}  ", want: `{"a":1}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, stripCodeFence(tt.in))
		})
	}
}

func TestDecodeAnalysis_ClampsAndIgnoresTotals(t *testing.T) {
	result, err := decodeAnalysis(sampleAnalysis)
	require.NoError(t, err)

	assert.Equal(t, "Rice with grilled chicken", result.Description)
	require.NotNil(t, result.Confidence)
	assert.Equal(t, 1.0, *result.Confidence)
	require.Len(t, result.Items, 2)

	rice := result.Items[0]
	assert.Equal(t, "rice", rice.Name)
	assert.Equal(t, "gramos", rice.Unit)
	assert.Equal(t, 150.0, rice.Quantity)
	assert.Equal(t, 0.8, *rice.Confidence)

	chicken := result.Items[1]
	assert.Equal(t, 0.0, chicken.Carbs)
	assert.Equal(t, 0.0, *chicken.Sodium)
	assert.Equal(t, 0.0, *chicken.Confidence)
	assert.Nil(t, chicken.Fiber)
	assert.Nil(t, chicken.Sugar)
}

func TestDecodeAnalysis_EmptyItemsIsValid(t *testing.T) {
	result, err := decodeAnalysis(`{"ai_description": "an empty table", "food_items": []}`)
	require.NoError(t, err)
	assert.Empty(t, result.Items)
	assert.Nil(t, result.Confidence)
}

func TestDecodeAnalysis_Rejects(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{name: "not json", in: "I see a sandwich"},
		{name: "missing items", in: `{"ai_description": "x"}`},
		{name: "item without name", in: `{"ai_description": "x", "food_items": [{"calories": 1, "protein": 1, "carbs": 1, "fat": 1}]}`},
		{name: "string calories", in: `{"ai_description": "x", "food_items": [{"name": "a", "calories": "100", "protein": 1, "carbs": 1, "fat": 1}]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := decodeAnalysis(tt.in)
			assert.ErrorIs(t, err, ErrMalformedReply)
		})
	}
}

func TestDecodeGoals(t *testing.T) {
	t.Run("structured", func(t *testing.T) {
		s := decodeGoals("```json\n{\"calories\": 2100.4, \"protein\": 140, \"carbs\": 230, \"fat\": 70, \"water_ml\": 2600, \"advice\": \"Eat more fiber.\"}\n```")
		require.NotNil(t, s.Values)
		assert.Equal(t, 2100.0, s.Values.Calories)
		assert.Equal(t, 140.0, s.Values.Protein)
		require.NotNil(t, s.WaterML)
		assert.Equal(t, 2600, *s.WaterML)
		assert.Equal(t, "Eat more fiber.", s.Text)
	})

	t.Run("free text keeps reply", func(t *testing.T) {
		reply := "Calorías: 2000\nProteína: 150g\nCarbohidratos: 250g\nGrasa: 67g"
		s := decodeGoals(reply)
		assert.Nil(t, s.Values)
		assert.Nil(t, s.WaterML)
		assert.Equal(t, reply, s.Text)
	})

	t.Run("zero target is not structured", func(t *testing.T) {
		s := decodeGoals(`{"calories": 0, "protein": 1, "carbs": 1, "fat": 1}`)
		assert.Nil(t, s.Values)
	})

	t.Run("target rounding to zero is not structured", func(t *testing.T) {
		s := decodeGoals(`{"calories": 2000, "protein": 150, "carbs": 200, "fat": 0.3}`)
		assert.Nil(t, s.Values)
		assert.Nil(t, s.WaterML)
	})

	t.Run("target rounding up to one is kept", func(t *testing.T) {
		s := decodeGoals(`{"calories": 2000, "protein": 150, "carbs": 200, "fat": 0.5}`)
		require.NotNil(t, s.Values)
		assert.Equal(t, 1.0, s.Values.Fat)
	})
}
