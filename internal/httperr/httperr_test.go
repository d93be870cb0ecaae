package httperr

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestKinds(t *testing.T) {
	cause := errors.New("disk on fire")
	err := fmt.Errorf("saving: %w", StorageFailure(cause))

	assert.True(t, IsBusiness(err, KindStorageFailure))
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, KindStorageFailure, KindOf(errors.New("plain")))
	assert.Equal(t, KindDuplicateEmail, KindOf(DuplicateEmail()))
	assert.False(t, IsBusiness(nil, KindNotFound))

	assert.Equal(t, "invalid_input (field=price): price cannot be negative",
		InvalidInput("price", "price cannot be negative").Error())
}

func TestStatusFor(t *testing.T) {
	tests := map[Kind]int{
		KindInvalidInput:       http.StatusBadRequest,
		KindNotFound:           http.StatusNotFound,
		KindDuplicateEmail:     http.StatusConflict,
		KindDuplicateName:      http.StatusConflict,
		KindForbidden:          http.StatusForbidden,
		KindConflict:           http.StatusConflict,
		KindInvalidCredentials: http.StatusUnauthorized,
		KindStorageFailure:     http.StatusInternalServerError,
	}
	for kind, status := range tests {
		assert.Equal(t, status, StatusFor(kind), string(kind))
	}
}

func TestFromError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	render := func(err error) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/x", nil)
		FromError(c, err)
		return w
	}

	w := render(InvalidInput("latitude", "latitude out of range (-90 to 90)"))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t,
		`{"error_code":"invalid_input","message":"latitude out of range (-90 to 90)","field":"latitude"}`,
		w.Body.String())

	w = render(StorageFailure(errors.New("connection refused")))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "connection refused")

	w = render(errors.New("unexpected"))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
