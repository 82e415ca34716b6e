package domain

import "errors"

var (
	// ErrInvalidCredentials covers unknown email and wrong password alike, so
	// a login response never reveals which half was wrong.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrAlreadyExists is returned when a unique index (email, phone number)
	// rejects an insert.
	ErrAlreadyExists = errors.New("account already exists")

	// ErrNotFound is returned when a principal or café cannot be located.
	ErrNotFound = errors.New("not found")

	// ErrOwnerNotFound is returned when a café references a missing owner.
	ErrOwnerNotFound = errors.New("cafe owner does not exist")

	// ErrCafeNotFound is returned when an employee references a missing café.
	ErrCafeNotFound = errors.New("cafe does not exist")

	// ErrTooManyAttempts is returned when the login throttle window is full.
	ErrTooManyAttempts = errors.New("too many login attempts")

	// ErrMissingField is returned when a required signup/login field is empty.
	ErrMissingField = errors.New("missing required field")
)
