// Package facade is the single entry point transports call. Every mutating
// method takes the caller identity explicitly and goes through the
// authorization policy inside its use case.
package facade

import (
	"context"

	"github.com/BruksfildServices01/hbnb/internal/audit"
	"github.com/BruksfildServices01/hbnb/internal/domain/authz"
	"github.com/BruksfildServices01/hbnb/internal/domain/store"
	"github.com/BruksfildServices01/hbnb/internal/dto"
	"github.com/BruksfildServices01/hbnb/internal/httperr"
	"github.com/BruksfildServices01/hbnb/internal/models"
	amenityuc "github.com/BruksfildServices01/hbnb/internal/usecase/amenity"
	placeuc "github.com/BruksfildServices01/hbnb/internal/usecase/place"
	reviewuc "github.com/BruksfildServices01/hbnb/internal/usecase/review"
	useruc "github.com/BruksfildServices01/hbnb/internal/usecase/user"
)

// AuditReader lists persisted audit entries, newest first.
type AuditReader interface {
	Recent(ctx context.Context, limit int) ([]models.AuditLog, error)
}

type Facade struct {
	createUser        *useruc.CreateUser
	updateUser        *useruc.UpdateUser
	getUser           *useruc.GetUser
	listUsers         *useruc.ListUsers
	verifyCredentials *useruc.VerifyCredentials
	ensureAdmin       *useruc.EnsureAdmin

	createAmenity *amenityuc.CreateAmenity
	updateAmenity *amenityuc.UpdateAmenity
	deleteAmenity *amenityuc.DeleteAmenity
	getAmenity    *amenityuc.GetAmenity
	listAmenities *amenityuc.ListAmenities

	createPlace        *placeuc.CreatePlace
	updatePlace        *placeuc.UpdatePlace
	deletePlace        *placeuc.DeletePlace
	removePlaceAmenity *placeuc.RemovePlaceAmenity
	getPlace           *placeuc.GetPlace
	listPlaces         *placeuc.ListPlaces

	createReview       *reviewuc.CreateReview
	updateReview       *reviewuc.UpdateReview
	deleteReview       *reviewuc.DeleteReview
	getReview          *reviewuc.GetReview
	listReviews        *reviewuc.ListReviews
	listReviewsByPlace *reviewuc.ListReviewsByPlace

	auditLog AuditReader
}

// New wires every use case against s. dispatcher and auditLog may be nil.
func New(
	s store.Store,
	hasher models.PasswordHasher,
	dispatcher *audit.Dispatcher,
	auditLog AuditReader,
) *Facade {

	createUser := useruc.NewCreateUser(s, hasher, dispatcher)

	return &Facade{
		createUser:        createUser,
		updateUser:        useruc.NewUpdateUser(s, hasher, dispatcher),
		getUser:           useruc.NewGetUser(s),
		listUsers:         useruc.NewListUsers(s),
		verifyCredentials: useruc.NewVerifyCredentials(s, hasher),
		ensureAdmin:       useruc.NewEnsureAdmin(s, createUser),

		createAmenity: amenityuc.NewCreateAmenity(s, dispatcher),
		updateAmenity: amenityuc.NewUpdateAmenity(s, dispatcher),
		deleteAmenity: amenityuc.NewDeleteAmenity(s, dispatcher),
		getAmenity:    amenityuc.NewGetAmenity(s),
		listAmenities: amenityuc.NewListAmenities(s),

		createPlace:        placeuc.NewCreatePlace(s, dispatcher),
		updatePlace:        placeuc.NewUpdatePlace(s, dispatcher),
		deletePlace:        placeuc.NewDeletePlace(s, dispatcher),
		removePlaceAmenity: placeuc.NewRemovePlaceAmenity(s, dispatcher),
		getPlace:           placeuc.NewGetPlace(s),
		listPlaces:         placeuc.NewListPlaces(s),

		createReview:       reviewuc.NewCreateReview(s, dispatcher),
		updateReview:       reviewuc.NewUpdateReview(s, dispatcher),
		deleteReview:       reviewuc.NewDeleteReview(s, dispatcher),
		getReview:          reviewuc.NewGetReview(s),
		listReviews:        reviewuc.NewListReviews(s),
		listReviewsByPlace: reviewuc.NewListReviewsByPlace(s),

		auditLog: auditLog,
	}
}

// ===============================
// Users
// ===============================

// RegisterUser is the anonymous self-registration path. It never grants
// admin.
func (f *Facade) RegisterUser(ctx context.Context, in useruc.CreateUserInput) (*models.User, error) {
	in.IsAdmin = false
	return f.createUser.Execute(ctx, nil, authz.SelfRegistration, in)
}

func (f *Facade) CreateUser(ctx context.Context, caller *authz.Caller, in useruc.CreateUserInput) (*models.User, error) {
	return f.createUser.Execute(ctx, caller, authz.AdminProvisioning, in)
}

func (f *Facade) GetUser(ctx context.Context, id string) (*models.User, error) {
	return f.getUser.Execute(ctx, id)
}

func (f *Facade) ListUsers(ctx context.Context) ([]models.User, error) {
	return f.listUsers.Execute(ctx)
}

func (f *Facade) UpdateUser(ctx context.Context, caller *authz.Caller, id string, in useruc.UpdateUserInput) (*models.User, error) {
	return f.updateUser.Execute(ctx, caller, id, in)
}

func (f *Facade) VerifyCredentials(ctx context.Context, email, password string) (*models.User, error) {
	return f.verifyCredentials.Execute(ctx, email, password)
}

func (f *Facade) EnsureAdmin(ctx context.Context, in useruc.CreateUserInput) (*models.User, bool, error) {
	return f.ensureAdmin.Execute(ctx, in)
}

// ===============================
// Amenities
// ===============================

func (f *Facade) CreateAmenity(ctx context.Context, caller *authz.Caller, in amenityuc.CreateAmenityInput) (*models.Amenity, error) {
	return f.createAmenity.Execute(ctx, caller, in)
}

func (f *Facade) GetAmenity(ctx context.Context, id string) (*models.Amenity, error) {
	return f.getAmenity.Execute(ctx, id)
}

func (f *Facade) ListAmenities(ctx context.Context) ([]models.Amenity, error) {
	return f.listAmenities.Execute(ctx)
}

func (f *Facade) UpdateAmenity(ctx context.Context, caller *authz.Caller, id string, in amenityuc.UpdateAmenityInput) (*models.Amenity, error) {
	return f.updateAmenity.Execute(ctx, caller, id, in)
}

func (f *Facade) DeleteAmenity(ctx context.Context, caller *authz.Caller, id string) error {
	return f.deleteAmenity.Execute(ctx, caller, id)
}

// ===============================
// Places
// ===============================

func (f *Facade) CreatePlace(ctx context.Context, caller *authz.Caller, in placeuc.CreatePlaceInput) (*dto.PlaceDetailDTO, error) {
	return f.createPlace.Execute(ctx, caller, in)
}

func (f *Facade) GetPlace(ctx context.Context, id string) (*dto.PlaceDetailDTO, error) {
	return f.getPlace.Execute(ctx, id)
}

func (f *Facade) ListPlaces(ctx context.Context) ([]dto.PlaceDetailDTO, error) {
	return f.listPlaces.Execute(ctx)
}

func (f *Facade) UpdatePlace(ctx context.Context, caller *authz.Caller, id string, in placeuc.UpdatePlaceInput) (*dto.PlaceDetailDTO, error) {
	return f.updatePlace.Execute(ctx, caller, id, in)
}

func (f *Facade) DeletePlace(ctx context.Context, caller *authz.Caller, id string) error {
	return f.deletePlace.Execute(ctx, caller, id)
}

func (f *Facade) RemovePlaceAmenity(ctx context.Context, caller *authz.Caller, placeID, amenityID string) (*dto.PlaceDetailDTO, error) {
	return f.removePlaceAmenity.Execute(ctx, caller, placeID, amenityID)
}

// ===============================
// Reviews
// ===============================

func (f *Facade) CreateReview(ctx context.Context, caller *authz.Caller, in reviewuc.CreateReviewInput) (*models.Review, error) {
	return f.createReview.Execute(ctx, caller, in)
}

func (f *Facade) GetReview(ctx context.Context, id string) (*models.Review, error) {
	return f.getReview.Execute(ctx, id)
}

func (f *Facade) ListReviews(ctx context.Context) ([]models.Review, error) {
	return f.listReviews.Execute(ctx)
}

func (f *Facade) ListReviewsByPlace(ctx context.Context, placeID string) ([]models.Review, error) {
	return f.listReviewsByPlace.Execute(ctx, placeID)
}

func (f *Facade) UpdateReview(ctx context.Context, caller *authz.Caller, id string, in reviewuc.UpdateReviewInput) (*models.Review, error) {
	return f.updateReview.Execute(ctx, caller, id, in)
}

func (f *Facade) DeleteReview(ctx context.Context, caller *authz.Caller, id string) error {
	return f.deleteReview.Execute(ctx, caller, id)
}

// ===============================
// Audit
// ===============================

func (f *Facade) RecentAuditLogs(ctx context.Context, caller *authz.Caller, limit int) ([]models.AuditLog, error) {
	if err := authz.CanReadAuditLog(caller); err != nil {
		return nil, err
	}
	if f.auditLog == nil {
		return []models.AuditLog{}, nil
	}
	logs, err := f.auditLog.Recent(ctx, limit)
	if err != nil {
		return nil, httperr.StorageFailure(err)
	}
	return logs, nil
}
