// Package common defines shared constants and sentinel errors used across
// authgate components. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// ErrorNotFound signals that a record is absent. For credential and token
	// lookups this is an expected first-class outcome, not a failure.
	ErrorNotFound = errors.New("not found")

	// ErrorNotDeleted signals that a delete matched zero records. It is kept
	// distinct from driver errors so callers can tell "nothing there" apart
	// from "storage broke".
	ErrorNotDeleted = errors.New("not deleted")
)
