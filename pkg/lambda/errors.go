package lambda

import (
	"errors"
	"fmt"
)

var (
	// ErrCapture is returned by Substitute when the substituted name is bound
	// by an abstraction on the way down.
	ErrCapture = errors.New("substitution through a binder of the same name")

	// ErrUnboundName is returned by ToNameless for a name found in neither
	// the Free nor the Levels map.
	ErrUnboundName = errors.New("unbound name")

	// ErrMissingContextEntry is returned by ToNamed when a slot or level it
	// needs has no name in the context.
	ErrMissingContextEntry = errors.New("missing context entry")

	// ErrLevelOutOfScope is returned by ToNameless when a name's level does
	// not belong to an abstraction enclosing the occurrence.
	ErrLevelOutOfScope = errors.New("level out of scope")

	// ErrShadowedBinder is returned by BinderLevels when one name is bound
	// at two different levels.
	ErrShadowedBinder = errors.New("shadowed binder")
)

// CaptureError reports a named substitution that would have to pass through
// an abstraction binding the substituted name.
type CaptureError struct {
	Name string
}

func (e *CaptureError) Error() string {
	return fmt.Sprintf("%v: cannot substitute %q under \\%s", ErrCapture, e.Name, e.Name)
}

func (e *CaptureError) Unwrap() error { return ErrCapture }

// ContextError reports a conversion that could not resolve a variable or
// binder from its context. Map is "free" (Γ) or "levels" (Ψ), Key is the
// name, slot or level that was looked up and Depth the number of
// abstractions entered at that point.
type ContextError struct {
	Map   string
	Key   any
	Depth int
	Err   error
}

func (e *ContextError) Error() string {
	return fmt.Sprintf("%v: %s[%v] at depth %d", e.Err, e.Map, e.Key, e.Depth)
}

func (e *ContextError) Unwrap() error { return e.Err }
