package lambda

import "github.com/samber/lo"

// Context is the pair of tables a conversion consults. Free (Γ) covers the
// variables of the ambient free-variable frame and Levels (Ψ) the binders of
// the term, keyed or valued by level: the number of abstractions enclosing a
// binder, counted from the outermost abstraction of the whole term as 0.
//
// A Context is built by the caller for a single conversion and is never
// retained or modified by this package.
type Context[K, V comparable] struct {
	Free   map[K]V
	Levels map[K]V
}

// NameContext feeds ToNameless: Free maps a free name to its base slot and
// Levels maps a bound name to the level of its abstraction.
type NameContext = Context[string, int]

// IndexContext feeds ToNamed: Free maps a base slot to the name to render
// and Levels maps a level to the name given to the binder at that level.
type IndexContext = Context[int, string]

// Inverse swaps keys and values of both tables, turning the NameContext of a
// ToNameless call into the IndexContext that converts the result back, and
// vice versa. When several keys share a value only one of them survives, so
// the inverse is exact only for injective tables.
func (c Context[K, V]) Inverse() Context[V, K] {
	return Context[V, K]{
		Free:   lo.Invert(c.Free),
		Levels: lo.Invert(c.Levels),
	}
}
