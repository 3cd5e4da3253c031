package validation

import (
	"testing"

	domain "paygate/internal/errors"

	"github.com/stretchr/testify/assert"
)

type topupInput struct {
	Amount int64  `validate:"required,gt=0"`
	Method string `validate:"required,topup_method"`
}

func TestStruct_AcceptsValidInput(t *testing.T) {
	assert.NoError(t, Struct(&topupInput{Amount: 25000, Method: "gopay"}))
}

func TestStruct_RejectsUnknownMethod(t *testing.T) {
	err := Struct(&topupInput{Amount: 25000, Method: "cash"})

	var de *domain.DomainError
	assert.ErrorAs(t, err, &de)
	assert.Equal(t, "VALIDATION_ERROR", de.Code)
}

func TestStruct_RejectsNonPositiveAmount(t *testing.T) {
	err := Struct(&topupInput{Amount: -1, Method: "gopay"})

	var de *domain.DomainError
	assert.ErrorAs(t, err, &de)
	assert.Equal(t, "VALIDATION_ERROR", de.Code)
}

func TestIsValidTopupMethod_IsCaseInsensitive(t *testing.T) {
	assert.True(t, IsValidTopupMethod("GoPay"))
	assert.True(t, IsValidTopupMethod("mandiri"))
	assert.False(t, IsValidTopupMethod("wire"))
}
