package usecase

import "errors"

var (
	ErrValidation             = errors.New("validation failed")
	ErrNotFound               = errors.New("not found")
	ErrForbidden              = errors.New("forbidden")
	ErrInvalidCredentials     = errors.New("invalid credentials")
	ErrAccountInactive        = errors.New("account is deactivated")
	ErrAlreadyExists          = errors.New("already exists")
	ErrInvalidOTP             = errors.New("invalid or expired OTP")
	ErrDuplicateSubscription  = errors.New("duplicate subscription")
	ErrPersistence            = errors.New("persistence failure")
	ErrPartialMaterialization = errors.New("bookings could not be generated")
)

// serviceError carries a message fit for the client while matching its
// sentinel through errors.Is.
type serviceError struct {
	kind    error
	message string
	cause   error
}

func newError(kind error, message string) error {
	return &serviceError{kind: kind, message: message}
}

func wrapError(kind error, message string, cause error) error {
	return &serviceError{kind: kind, message: message, cause: cause}
}

func (e *serviceError) Error() string {
	return e.message
}

func (e *serviceError) Unwrap() []error {
	if e.cause == nil {
		return []error{e.kind}
	}
	return []error{e.kind, e.cause}
}
