// Package common defines sentinel errors shared by the repositories and the
// operator-facing layers. Match them with errors.Is.
package common

import "errors"

var (
	// repository errors
	ErrNotFound = errors.New("not found")

	// session / navigation errors
	ErrNoActiveUser  = errors.New("no active user selected")
	ErrNoActiveBatch = errors.New("no active batch selected")
)
