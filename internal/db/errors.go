package db

import "errors"

var (
	// ErrNotFound covers both records that do not exist and records owned by
	// another user. The two cases are deliberately indistinguishable so a
	// lookup never discloses that someone else's record exists.
	ErrNotFound = errors.New("record not found")

	// ErrProjectInUse is returned when deleting a project that still has work
	// sessions logged against it.
	ErrProjectInUse = errors.New("project has work sessions and cannot be deleted")

	ErrUsernameTaken      = errors.New("username is already taken")
	ErrInvalidCredentials = errors.New("invalid username or password")
)
