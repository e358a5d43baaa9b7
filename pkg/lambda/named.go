// Package lambda models untyped lambda terms in two equivalent
// representations and the algorithms that relate them.
//
// The named representation identifies variables and binders by string:
//   - Const: a variable reference by name
//   - App: an application of one term to another
//   - Abs: an abstraction binding a name within a body
//
// The nameless representation replaces names with de Bruijn indices, where
// index 0 refers to the innermost enclosing binder:
//   - Index, NApp, NAbs mirror Const, App, Abs
//
// All terms are immutable. Every operation returns a new tree and may share
// sub-trees with its inputs, so terms are safe to reuse and to share between
// goroutines without synchronization.
package lambda

import (
	"fmt"
	"slices"

	"github.com/samber/lo"
)

// Term is a lambda term whose variables and binders carry names.
// The set of implementations is closed: *Const, *App and *Abs.
type Term interface {
	// String renders the term as \x->body, (f a) or a bare name.
	String() string

	// Equal reports structural equality. Terms that differ only in the
	// names of their binders are not Equal.
	Equal(other Term) bool

	named()
}

// Const is a variable occurrence identified by name.
type Const struct {
	name string
}

// NewConst creates a variable occurrence.
func NewConst(name string) *Const { return &Const{name: name} }

// Name returns the identifier of the variable.
func (c *Const) Name() string { return c.name }

func (c *Const) String() string { return c.name }

func (c *Const) Equal(other Term) bool {
	o, ok := other.(*Const)
	return ok && c.name == o.name
}

func (*Const) named() {}

// App is the application of fun to arg.
type App struct {
	fun Term
	arg Term
}

// NewApp creates an application term.
func NewApp(fun, arg Term) *App { return &App{fun: fun, arg: arg} }

// Fun returns the term in function position.
func (a *App) Fun() Term { return a.fun }

// Arg returns the term in argument position.
func (a *App) Arg() Term { return a.arg }

func (a *App) String() string {
	return fmt.Sprintf("(%s %s)", a.fun, a.arg)
}

func (a *App) Equal(other Term) bool {
	o, ok := other.(*App)
	return ok && a.fun.Equal(o.fun) && a.arg.Equal(o.arg)
}

func (*App) named() {}

// Abs binds binder within body. Semantics: Abs(x, b) corresponds to λx.b.
type Abs struct {
	binder string
	body   Term
}

// Lambda creates an abstraction binding binder within body.
func Lambda(binder string, body Term) *Abs {
	return &Abs{binder: binder, body: body}
}

// Binder returns the name bound by the abstraction.
func (a *Abs) Binder() string { return a.binder }

// Body returns the scope of the binder.
func (a *Abs) Body() Term { return a.body }

func (a *Abs) String() string {
	return fmt.Sprintf("\\%s->%s", a.binder, a.body)
}

func (a *Abs) Equal(other Term) bool {
	o, ok := other.(*Abs)
	return ok && a.binder == o.binder && a.body.Equal(o.body)
}

func (*Abs) named() {}

// Substitute replaces the free occurrences of name in term with replacement.
//
// The substitution is naive: it refuses to pass through an abstraction that
// binds name, returning a *CaptureError, and it performs no renaming. Free
// names of replacement that coincide with a binder inside term are captured.
// The nameless representation (see SubstituteIndex) has no such limitation.
func Substitute(term Term, name string, replacement Term) (Term, error) {
	switch t := term.(type) {
	case *Const:
		if t.name == name {
			return replacement, nil
		}
		return t, nil
	case *App:
		fun, err := Substitute(t.fun, name, replacement)
		if err != nil {
			return nil, err
		}
		arg, err := Substitute(t.arg, name, replacement)
		if err != nil {
			return nil, err
		}
		return &App{fun: fun, arg: arg}, nil
	case *Abs:
		if t.binder == name {
			return nil, &CaptureError{Name: name}
		}
		body, err := Substitute(t.body, name, replacement)
		if err != nil {
			return nil, err
		}
		return &Abs{binder: t.binder, body: body}, nil
	}
	panic("unreachable")
}

// FreeNames returns the names occurring free in term, sorted lexicographically.
func FreeNames(term Term) []string {
	set := map[string]struct{}{}
	freeNamesCollect(term, map[string]int{}, set)
	names := lo.Keys(set)
	slices.Sort(names)
	return names
}

// freeNamesCollect walks term; bound counts how many enclosing binders carry each name.
func freeNamesCollect(term Term, bound map[string]int, set map[string]struct{}) {
	switch t := term.(type) {
	case *Const:
		if bound[t.name] == 0 {
			set[t.name] = struct{}{}
		}
	case *App:
		freeNamesCollect(t.fun, bound, set)
		freeNamesCollect(t.arg, bound, set)
	case *Abs:
		bound[t.binder]++
		freeNamesCollect(t.body, bound, set)
		bound[t.binder]--
	default:
		panic("unreachable")
	}
}

// BinderLevels computes the level table for term: every binder name mapped to
// the number of abstractions that enclose its own abstraction, counting from
// the outermost abstraction as level 0. The result is suitable as the Levels
// map of a NameContext.
//
// A name bound at two different levels is ambiguous for ToNameless and is
// reported as ErrShadowedBinder. Binders of the same name at the same level,
// such as the two abstractions of (\x->x \x->x), are accepted.
func BinderLevels(term Term) (map[string]int, error) {
	levels := map[string]int{}
	if err := binderLevelsAt(term, 0, levels); err != nil {
		return nil, err
	}
	return levels, nil
}

func binderLevelsAt(term Term, level int, levels map[string]int) error {
	switch t := term.(type) {
	case *Const:
		return nil
	case *App:
		if err := binderLevelsAt(t.fun, level, levels); err != nil {
			return err
		}
		return binderLevelsAt(t.arg, level, levels)
	case *Abs:
		if prev, ok := levels[t.binder]; ok && prev != level {
			return fmt.Errorf("%w: %q at levels %d and %d", ErrShadowedBinder, t.binder, prev, level)
		}
		levels[t.binder] = level
		return binderLevelsAt(t.body, level+1, levels)
	}
	panic("unreachable")
}
