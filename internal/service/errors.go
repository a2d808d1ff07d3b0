package service

import "errors"

var (
	// ErrRecipeNotFound is returned when a recipe id has no row in the
	// recipes table.
	ErrRecipeNotFound = errors.New("recipe not found")

	// ErrUserNotFound is returned when a phone number has no registry entry.
	ErrUserNotFound = errors.New("user not found")

	// ErrNotConfigured is returned when a provider bridge has no usable API
	// key and refuses to call out.
	ErrNotConfigured = errors.New("provider not configured")

	// ErrNotApproved is returned when the verification provider rejects an
	// OTP code.
	ErrNotApproved = errors.New("verification not approved")
)
