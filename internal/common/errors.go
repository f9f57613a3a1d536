// Package common defines shared constants and sentinel errors used across
// ScanMark client layers. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Session errors.
	ErrNoSession      = errors.New("no active session")
	ErrSessionExpired = errors.New("session expired")

	// Upload validation errors.
	ErrFileTypeNotAllowed = errors.New("file type not allowed")
	ErrFileTooLarge       = errors.New("file too large")
	ErrNoFileSelected     = errors.New("no file selected")

	// Generic flow-control errors.
	ErrNotFound = errors.New("not found")
	ErrInternal = errors.New("internal error")
)
