package usecase

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/BruksfildServices01/hbnb/internal/domain/store"
	"github.com/BruksfildServices01/hbnb/internal/httperr"
)

func TestStorage(t *testing.T) {
	assert.NoError(t, Storage(nil, nil))

	dup := fmt.Errorf("%w: unique constraint", store.ErrDuplicate)
	assert.True(t, httperr.IsBusiness(Storage(dup, httperr.DuplicateEmail), httperr.KindDuplicateEmail))
	assert.True(t, httperr.IsBusiness(Storage(dup, nil), httperr.KindStorageFailure))

	forbidden := httperr.Forbidden("no")
	assert.Equal(t, forbidden, Storage(forbidden, nil))

	cause := errors.New("connection reset")
	err := Storage(cause, httperr.DuplicateEmail)
	assert.True(t, httperr.IsBusiness(err, httperr.KindStorageFailure))
	assert.ErrorIs(t, err, cause)
}
