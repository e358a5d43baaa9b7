package lambda

import (
	"fmt"
	"slices"
	"strconv"

	"github.com/samber/lo"
)

// Nameless is a lambda term in de Bruijn form. The set of implementations is
// closed: *Index, *NApp and *NAbs.
//
// A nameless term is only meaningful relative to an ambient depth d: an
// Index below d refers to a binder inside the term, any other Index to a
// slot of the surrounding free-variable frame. The type does not check that
// the binder an index points at exists.
type Nameless interface {
	// String renders the term as \ body, (f a) or a bare index.
	String() string

	// Equal reports structural equality.
	Equal(other Nameless) bool

	nameless()
}

// Index is a variable occurrence counted in binders from the innermost one.
type Index struct {
	value int
}

// NewIndex creates a de Bruijn index.
func NewIndex(i int) *Index { return &Index{value: i} }

// Value returns the de Bruijn index.
func (i *Index) Value() int { return i.value }

func (i *Index) String() string { return strconv.Itoa(i.value) }

func (i *Index) Equal(other Nameless) bool {
	o, ok := other.(*Index)
	return ok && i.value == o.value
}

func (*Index) nameless() {}

// NApp is the application of fun to arg.
type NApp struct {
	fun Nameless
	arg Nameless
}

// NewNApp creates an application term.
func NewNApp(fun, arg Nameless) *NApp { return &NApp{fun: fun, arg: arg} }

// Fun returns the term in function position.
func (a *NApp) Fun() Nameless { return a.fun }

// Arg returns the term in argument position.
func (a *NApp) Arg() Nameless { return a.arg }

func (a *NApp) String() string {
	return fmt.Sprintf("(%s %s)", a.fun, a.arg)
}

func (a *NApp) Equal(other Nameless) bool {
	o, ok := other.(*NApp)
	return ok && a.fun.Equal(o.fun) && a.arg.Equal(o.arg)
}

func (*NApp) nameless() {}

// NAbs is an anonymous abstraction.
type NAbs struct {
	body Nameless
}

// NewNAbs creates an abstraction over body.
func NewNAbs(body Nameless) *NAbs { return &NAbs{body: body} }

// Body returns the scope of the abstraction.
func (a *NAbs) Body() Nameless { return a.body }

func (a *NAbs) String() string { return "\\ " + a.body.String() }

func (a *NAbs) Equal(other Nameless) bool {
	o, ok := other.(*NAbs)
	return ok && a.body.Equal(o.body)
}

func (*NAbs) nameless() {}

// Shift adds amount to every index of term that is free with respect to
// cutoff, leaving indices below cutoff untouched. Entering an abstraction
// raises the cutoff by one.
//
// Shift(t, k, 0) is what a term needs when it is moved under k additional
// binders.
func Shift(term Nameless, amount, cutoff int) Nameless {
	switch t := term.(type) {
	case *Index:
		if t.value < cutoff {
			return t
		}
		return &Index{value: t.value + amount}
	case *NApp:
		return &NApp{fun: Shift(t.fun, amount, cutoff), arg: Shift(t.arg, amount, cutoff)}
	case *NAbs:
		return &NAbs{body: Shift(t.body, amount, cutoff+1)}
	}
	panic("unreachable")
}

// SubstituteIndex replaces the occurrences of index target in term with
// replacement.
//
// Under an abstraction the target becomes target+1 and replacement is shifted
// by one at cutoff 0, so that its free indices keep pointing past the new
// binder. No variable of replacement can be captured.
func SubstituteIndex(term Nameless, target int, replacement Nameless) Nameless {
	switch t := term.(type) {
	case *Index:
		if t.value == target {
			return replacement
		}
		return t
	case *NApp:
		return &NApp{
			fun: SubstituteIndex(t.fun, target, replacement),
			arg: SubstituteIndex(t.arg, target, replacement),
		}
	case *NAbs:
		return &NAbs{body: SubstituteIndex(t.body, target+1, Shift(replacement, 1, 0))}
	}
	panic("unreachable")
}

// FreeIndices returns the free-frame slots referenced by term, sorted
// ascending. An Index i at depth d with i >= d refers to slot i-d; these are
// exactly the Free keys an IndexContext needs for ToNamed.
func FreeIndices(term Nameless) []int {
	set := map[int]struct{}{}
	freeIndicesAt(term, 0, set)
	slots := lo.Keys(set)
	slices.Sort(slots)
	return slots
}

func freeIndicesAt(term Nameless, depth int, set map[int]struct{}) {
	switch t := term.(type) {
	case *Index:
		if t.value >= depth {
			set[t.value-depth] = struct{}{}
		}
	case *NApp:
		freeIndicesAt(t.fun, depth, set)
		freeIndicesAt(t.arg, depth, set)
	case *NAbs:
		freeIndicesAt(t.body, depth+1, set)
	default:
		panic("unreachable")
	}
}
