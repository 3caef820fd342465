package domain

import "errors"

var (
	// ErrInvalidCredentials is returned for both unknown usernames and wrong
	// passwords so that sign-in failures cannot be used to enumerate accounts.
	ErrInvalidCredentials = errors.New("invalid username or password")

	ErrInvalidToken = errors.New("invalid token")
	ErrForbidden    = errors.New("access forbidden")

	ErrUserNotFound  = errors.New("user not found")
	ErrUsernameTaken = errors.New("username is already taken")
	ErrEmailTaken    = errors.New("email is already in use")
	ErrUnknownRole   = errors.New("role is not found")
	ErrRoleNotSeeded = errors.New("role store is missing a seeded role")

	ErrOrderNotFound = errors.New("order not found")
	ErrInvalidStatus = errors.New("invalid order status")
)
