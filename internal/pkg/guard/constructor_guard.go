// Package guard provides the constructor guard pattern used across the domain model.
// Embedding a ConstructorGuard in an aggregate or value object makes zero-value
// instances detectable, so objects can only pass validation when created through
// their designated constructor functions.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific
// validation error is supplied and the object was not constructed properly.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks an object as created through its constructor.
// The zero value is invalid, which is the whole point.
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard marking the enclosing object as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil for a properly constructed object. For a zero-value
// guard it returns validationError, or ErrDefaultConstructorGuard when
// validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
