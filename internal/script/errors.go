package script

import (
	"errors"
	"fmt"
)

// UnknownScriptError is returned when a conversion names a script that was
// never registered. It is raised at the start of the call, before any lattice
// work, and is fatal to that call only.
type UnknownScriptError struct {
	// Name is the script name the caller asked for.
	Name string
}

// Error implements the error interface.
func (e *UnknownScriptError) Error() string {
	return fmt.Sprintf("unknown script %q", e.Name)
}

// IsUnknownScript returns true if the error is an UnknownScriptError.
// Uses errors.As to handle wrapped errors.
func IsUnknownScript(err error) bool {
	var ue *UnknownScriptError
	return errors.As(err, &ue)
}
