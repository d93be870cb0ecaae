package authz

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/BruksfildServices01/hbnb/internal/httperr"
	"github.com/BruksfildServices01/hbnb/internal/models"
)

var (
	anon  *Caller
	admin = &Caller{SubjectID: "admin", IsAdmin: true}
	u1    = &Caller{SubjectID: "u1"}
	u2    = &Caller{SubjectID: "u2"}
)

func assertForbidden(t *testing.T, err error) {
	t.Helper()
	assert.True(t, httperr.IsBusiness(err, httperr.KindForbidden), "want forbidden, got %v", err)
}

func TestCaller_NilSafe(t *testing.T) {
	assert.False(t, anon.Authenticated())
	assert.False(t, anon.Admin())
	assert.Equal(t, "", anon.ID())

	assert.False(t, (&Caller{IsAdmin: true}).Admin(), "admin flag without subject is not an identity")
	assert.True(t, Operator().Admin())
}

func TestCanCreateUser(t *testing.T) {
	tests := []struct {
		name   string
		caller *Caller
		path   CreationPath
		allow  bool
	}{
		{"admin provisions", admin, AdminProvisioning, true},
		{"user cannot provision", u1, AdminProvisioning, false},
		{"anonymous cannot provision", anon, AdminProvisioning, false},
		{"anonymous self-registers", anon, SelfRegistration, true},
		{"logged-in user cannot self-register", u1, SelfRegistration, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CanCreateUser(tt.caller, tt.path)
			if tt.allow {
				assert.NoError(t, err)
			} else {
				assertForbidden(t, err)
			}
		})
	}
}

func TestCanModifyUser(t *testing.T) {
	target := &models.User{ID: "u1"}

	assert.NoError(t, CanModifyUser(u1, target))
	assert.NoError(t, CanModifyUser(admin, target))
	assertForbidden(t, CanModifyUser(u2, target))
	assertForbidden(t, CanModifyUser(anon, target))

	assert.NoError(t, CanGrantAdmin(admin))
	assertForbidden(t, CanGrantAdmin(u1))
}

func TestCanManageAmenity(t *testing.T) {
	assert.NoError(t, CanManageAmenity(admin))
	assertForbidden(t, CanManageAmenity(u1))
	assertForbidden(t, CanManageAmenity(anon))
}

func TestResolvePlaceOwner(t *testing.T) {
	owner, err := ResolvePlaceOwner(u1, "")
	assert.NoError(t, err)
	assert.Equal(t, "u1", owner)

	owner, err = ResolvePlaceOwner(u1, "u1")
	assert.NoError(t, err)
	assert.Equal(t, "u1", owner)

	_, err = ResolvePlaceOwner(u1, "u2")
	assertForbidden(t, err)

	owner, err = ResolvePlaceOwner(admin, "u2")
	assert.NoError(t, err)
	assert.Equal(t, "u2", owner)

	_, err = ResolvePlaceOwner(anon, "")
	assertForbidden(t, err)
}

func TestPlaceModification(t *testing.T) {
	place := &models.Place{ID: "p1", OwnerID: "u2"}

	assertForbidden(t, CanModifyPlace(u1, place))
	assert.NoError(t, CanModifyPlace(u2, place))
	assert.NoError(t, CanModifyPlace(admin, place))

	assert.NoError(t, CanChangePlaceOwner(u2, place, "u2"), "same owner is not a transfer")
	assertForbidden(t, CanChangePlaceOwner(u2, place, "u1"))
	assert.NoError(t, CanChangePlaceOwner(admin, place, "u1"))

	assertForbidden(t, CanDetachAmenity(u1, place))
	assert.NoError(t, CanDetachAmenity(u2, place))
}

func TestCanCreateReview(t *testing.T) {
	place := &models.Place{ID: "p1", OwnerID: "u1"}

	assertForbidden(t, CanCreateReview(u1, place, nil))
	assertForbidden(t, CanCreateReview(anon, place, nil))
	assert.NoError(t, CanCreateReview(u2, place, nil))

	existing := &models.Review{ID: "r1", UserID: "u2", PlaceID: "p1"}
	err := CanCreateReview(u2, place, existing)
	assert.True(t, httperr.IsBusiness(err, httperr.KindConflict))
}

func TestCanModifyReview(t *testing.T) {
	review := &models.Review{ID: "r1", UserID: "u2"}

	assert.NoError(t, CanModifyReview(u2, review))
	assert.NoError(t, CanModifyReview(admin, review))
	assertForbidden(t, CanModifyReview(u1, review))
	assertForbidden(t, CanModifyReview(anon, review))
}

func TestCanReadAuditLog(t *testing.T) {
	assert.NoError(t, CanReadAuditLog(admin))
	assertForbidden(t, CanReadAuditLog(u1))
}
