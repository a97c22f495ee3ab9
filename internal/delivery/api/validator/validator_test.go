package validator

import (
	"testing"

	domainerrors "nutriledger/internal/domain/errors"
	"nutriledger/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type goalRequest struct {
	Calories float64 `json:"calories" validate:"gt=0"`
	Protein  float64 `json:"protein" validate:"gte=0"`
	Name     string  `json:"name,omitempty" validate:"required"`
}

func TestValidator(t *testing.T) {
	v := New()

	require.NoError(t, v.Validate(&goalRequest{Calories: 2000, Name: "x"}))

	err := v.Validate(&goalRequest{Calories: 0, Protein: -1})
	require.Error(t, err)

	var appErr *domainerrors.BaseError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
	assert.Equal(t, "calories must be greater than 0; protein must be at least 0; name is required", appErr.Details())
}
