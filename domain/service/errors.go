// domain/service/errors.go
package service

import "errors"

// Sentinel errors returned by services so handlers can distinguish validation,
// conflict, authorization, and not-found failures without string matching.
var (
	// Validation
	ErrInvalidInput = errors.New("invalid input")
	ErrSelfRequest  = errors.New("cannot send friend request to yourself")

	// Not found
	ErrUserNotFound    = errors.New("user not found")
	ErrRequestNotFound = errors.New("friend request not found")

	// Conflict
	ErrRequestExists    = errors.New("friend request already exists")
	ErrAlreadyFriends   = errors.New("users are already friends")
	ErrRequestProcessed = errors.New("friend request already processed")
	ErrEmailTaken       = errors.New("email already registered")

	// Authorization
	ErrNotAuthorized      = errors.New("not authorized")
	ErrInvalidCredentials = errors.New("invalid email or password")
)
