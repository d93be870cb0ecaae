package httperr

import (
	"errors"
	"fmt"
)

// Kind classifies a BusinessError. The transport decides what each kind
// means on the wire.
type Kind string

const (
	KindInvalidInput       Kind = "invalid_input"
	KindNotFound           Kind = "not_found"
	KindDuplicateEmail     Kind = "duplicate_email"
	KindDuplicateName      Kind = "duplicate_name"
	KindForbidden          Kind = "forbidden"
	KindConflict           Kind = "conflict"
	KindInvalidCredentials Kind = "invalid_credentials"
	KindStorageFailure     Kind = "storage_failure"
)

type BusinessError struct {
	Kind    Kind
	Field   string
	Message string
	Err     error
}

func (e BusinessError) Error() string {
	msg := string(e.Kind)
	if e.Field != "" {
		msg += fmt.Sprintf(" (field=%s)", e.Field)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Err != nil {
		msg += fmt.Sprintf(": %v", e.Err)
	}
	return msg
}

func (e BusinessError) Unwrap() error {
	return e.Err
}

func ErrBusiness(kind Kind, message string) error {
	return BusinessError{Kind: kind, Message: message}
}

func InvalidInput(field, message string) error {
	return BusinessError{Kind: KindInvalidInput, Field: field, Message: message}
}

func NotFound(entity string) error {
	return BusinessError{Kind: KindNotFound, Message: entity + " not found"}
}

func Forbidden(message string) error {
	return BusinessError{Kind: KindForbidden, Message: message}
}

func Conflict(message string) error {
	return BusinessError{Kind: KindConflict, Message: message}
}

func DuplicateEmail() error {
	return BusinessError{Kind: KindDuplicateEmail, Field: "email", Message: "email already in use"}
}

func DuplicateName(name string) error {
	return BusinessError{Kind: KindDuplicateName, Field: "name", Message: fmt.Sprintf("%q already exists", name)}
}

func InvalidCredentials() error {
	return BusinessError{Kind: KindInvalidCredentials, Message: "invalid credentials"}
}

func StorageFailure(err error) error {
	return BusinessError{Kind: KindStorageFailure, Message: "storage failure", Err: err}
}

func IsBusiness(err error, kind Kind) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Kind == kind
	}
	return false
}

// KindOf returns the kind of err, or KindStorageFailure for anything that
// is not a BusinessError.
func KindOf(err error) Kind {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Kind
	}
	return KindStorageFailure
}
