package user

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/BruksfildServices01/hbnb/internal/audit"
	"github.com/BruksfildServices01/hbnb/internal/domain/authz"
	"github.com/BruksfildServices01/hbnb/internal/domain/store"
	domain "github.com/BruksfildServices01/hbnb/internal/domain/user"
	"github.com/BruksfildServices01/hbnb/internal/httperr"
	"github.com/BruksfildServices01/hbnb/internal/models"
	"github.com/BruksfildServices01/hbnb/internal/usecase"
)

type UpdateUser struct {
	store  store.Store
	hasher models.PasswordHasher
	audit  *audit.Dispatcher
}

func NewUpdateUser(
	s store.Store,
	hasher models.PasswordHasher,
	audit *audit.Dispatcher,
) *UpdateUser {
	return &UpdateUser{
		store:  s,
		hasher: hasher,
		audit:  audit,
	}
}

func (uc *UpdateUser) Execute(
	ctx context.Context,
	caller *authz.Caller,
	id string,
	in UpdateUserInput,
) (*models.User, error) {

	u, err := usecase.Load(ctx, uc.store.Users(), "user", id)
	if err != nil {
		return nil, err
	}

	if err := authz.CanModifyUser(caller, u); err != nil {
		return nil, err
	}
	if in.IsAdmin != nil && *in.IsAdmin != u.IsAdmin {
		if err := authz.CanGrantAdmin(caller); err != nil {
			return nil, err
		}
	}

	fields := store.Fields{}

	if in.FirstName != nil {
		v := strings.TrimSpace(*in.FirstName)
		if err := domain.RequireText("first_name", v); err != nil {
			return nil, err
		}
		fields["first_name"] = v
	}
	if in.LastName != nil {
		v := strings.TrimSpace(*in.LastName)
		if err := domain.RequireText("last_name", v); err != nil {
			return nil, err
		}
		fields["last_name"] = v
	}

	if in.Email != nil {
		email := strings.TrimSpace(*in.Email)
		if err := domain.ValidateEmail(email); err != nil {
			return nil, err
		}
		if email != u.Email {
			other, err := usecase.Find(ctx, uc.store.Users(), "email", email)
			if err != nil {
				return nil, err
			}
			if other != nil && other.ID != u.ID {
				return nil, httperr.DuplicateEmail()
			}
		}
		fields["email"] = email
	}

	if in.Password != nil {
		if err := domain.ValidatePassword(*in.Password); err != nil {
			return nil, err
		}
		var hashed models.User
		if err := hashed.SetPassword(uc.hasher, *in.Password); err != nil {
			return nil, httperr.StorageFailure(err)
		}
		fields["password"] = hashed.PasswordHash
	}

	if in.IsAdmin != nil {
		fields["is_admin"] = *in.IsAdmin
	}

	fields["updated_at"] = time.Now().UTC()

	if err := uc.store.Users().Update(ctx, u.ID, fields); err != nil {
		return nil, usecase.Storage(err, httperr.DuplicateEmail)
	}

	updated, err := usecase.Load(ctx, uc.store.Users(), "user", u.ID)
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:  caller.ID(),
		Action:   "user_updated",
		Entity:   "user",
		EntityID: u.ID,
		Metadata: map[string]any{"fields": fieldNames(fields)},
	})

	return updated, nil
}

// fieldNames lists changed columns without their values; password hashes
// stay out of the audit trail.
func fieldNames(f store.Fields) []string {
	out := make([]string, 0, len(f))
	for k := range f {
		if k == "updated_at" {
			continue
		}
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
