package review

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/BruksfildServices01/hbnb/internal/httperr"
)

func TestValidateRating(t *testing.T) {
	for _, r := range []int{1, 3, 5} {
		assert.NoError(t, ValidateRating(&r))
	}
	for _, r := range []int{0, 6, -1} {
		assert.True(t, httperr.IsBusiness(ValidateRating(&r), httperr.KindInvalidInput), "rating %d", r)
	}
	assert.True(t, httperr.IsBusiness(ValidateRating(nil), httperr.KindInvalidInput))
}

func TestValidateText(t *testing.T) {
	assert.NoError(t, ValidateText("Great stay"))
	assert.True(t, httperr.IsBusiness(ValidateText("   "), httperr.KindInvalidInput))
}
