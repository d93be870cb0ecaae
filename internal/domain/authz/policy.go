package authz

import (
	"github.com/BruksfildServices01/hbnb/internal/httperr"
	"github.com/BruksfildServices01/hbnb/internal/models"
)

// ===============================
// Users
// ===============================

type CreationPath int

const (
	AdminProvisioning CreationPath = iota
	SelfRegistration
)

// CanCreateUser allows admins on the provisioning path and anonymous
// callers on the self-registration path.
func CanCreateUser(caller *Caller, path CreationPath) error {
	switch path {
	case SelfRegistration:
		if caller.Authenticated() {
			return httperr.Forbidden("already authenticated")
		}
		return nil
	default:
		if !caller.Admin() {
			return httperr.Forbidden("admin privileges required")
		}
		return nil
	}
}

func CanModifyUser(caller *Caller, target *models.User) error {
	if caller.Admin() {
		return nil
	}
	if caller.Authenticated() && caller.SubjectID == target.ID {
		return nil
	}
	return httperr.Forbidden("you are not allowed to modify this user")
}

// CanGrantAdmin gates any write of the is_admin flag.
func CanGrantAdmin(caller *Caller) error {
	if !caller.Admin() {
		return httperr.Forbidden("admin privileges required")
	}
	return nil
}

// ===============================
// Amenities
// ===============================

func CanManageAmenity(caller *Caller) error {
	if !caller.Admin() {
		return httperr.Forbidden("admin privileges required")
	}
	return nil
}

// ===============================
// Places
// ===============================

// ResolvePlaceOwner returns the owner a new place gets. An empty request
// means the caller; only admins may name someone else.
func ResolvePlaceOwner(caller *Caller, requested string) (string, error) {
	if !caller.Authenticated() {
		return "", httperr.Forbidden("authentication required")
	}
	if requested == "" || requested == caller.SubjectID {
		return caller.SubjectID, nil
	}
	if !caller.IsAdmin {
		return "", httperr.Forbidden("you can only create places for yourself")
	}
	return requested, nil
}

func CanModifyPlace(caller *Caller, place *models.Place) error {
	if caller.Admin() {
		return nil
	}
	if caller.Authenticated() && caller.SubjectID == place.OwnerID {
		return nil
	}
	return httperr.Forbidden("only the owner or an admin can modify this place")
}

// CanChangePlaceOwner requires admin for any owner_id that differs from
// the current one, on top of CanModifyPlace.
func CanChangePlaceOwner(caller *Caller, place *models.Place, newOwner string) error {
	if err := CanModifyPlace(caller, place); err != nil {
		return err
	}
	if newOwner == place.OwnerID {
		return nil
	}
	if !caller.IsAdmin {
		return httperr.Forbidden("you cannot change the owner of this place")
	}
	return nil
}

// CanDetachAmenity follows the place modification rule.
func CanDetachAmenity(caller *Caller, place *models.Place) error {
	return CanModifyPlace(caller, place)
}

// ===============================
// Reviews
// ===============================

// CanCreateReview denies owners reviewing their own place and a second
// review for the same (user, place). existing is the caller's current
// review of place, or nil.
func CanCreateReview(caller *Caller, place *models.Place, existing *models.Review) error {
	if !caller.Authenticated() {
		return httperr.Forbidden("authentication required")
	}
	if caller.SubjectID == place.OwnerID {
		return httperr.Forbidden("you cannot review your own place")
	}
	if existing != nil {
		return httperr.Conflict("you have already reviewed this place")
	}
	return nil
}

func CanModifyReview(caller *Caller, review *models.Review) error {
	if caller.Admin() {
		return nil
	}
	if caller.Authenticated() && caller.SubjectID == review.UserID {
		return nil
	}
	return httperr.Forbidden("you can only modify your own reviews")
}

// ===============================
// Audit
// ===============================

func CanReadAuditLog(caller *Caller) error {
	if !caller.Admin() {
		return httperr.Forbidden("admin privileges required")
	}
	return nil
}
