// Package types defines the entity types, enumerations, sentinel errors,
// and configuration shared by the slotrack store, importer, and CLI.
package types

import "errors"

// Version is the slotrack release version.
const Version = "0.1.0"

// Standard errors returned by the store and data API.
var (
	ErrNotFound       = errors.New("entity not found")
	ErrInvalidID      = errors.New("invalid entity ID")
	ErrStoreClosed    = errors.New("store is closed")
	ErrStoreOpen      = errors.New("store is already open")
	ErrEmptyObjective = errors.New("objective text is empty or too short")
	ErrSubjectUnknown = errors.New("unknown subject code")
	ErrInvalidTerm    = errors.New("invalid term")
	ErrInvalidKind    = errors.New("invalid plan kind")
	ErrUsernameTaken  = errors.New("username already exists")
)
