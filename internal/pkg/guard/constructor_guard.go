// Package guard provides the ConstructorGuard pattern used by domain value
// objects and entities to enforce construction through their factory functions.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when a nil validation
// error is supplied and the guarded object was not properly constructed.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard ensures value objects and entities are only created through
// their designated constructor functions. Embedding a ConstructorGuard in a
// struct makes the zero value detectable: only the constructor sets the
// internal flag, so any directly initialized or zero-value instance fails
// validation.
//
// This keeps domain objects from ever existing in an unvalidated state, which
// is the invariant the rest of the domain model relies on.
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard marking an object as properly
// constructed. Call it inside the constructor of the guarded type.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate reports whether the guarded object came from its constructor.
// Returns nil for properly constructed objects. For zero-value objects it
// returns validationError, or ErrDefaultConstructorGuard when validationError
// is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
