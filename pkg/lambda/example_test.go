package lambda_test

import (
	"errors"
	"fmt"

	"github.com/gitrdm/gokanlambda/pkg/lambda"
)

// ExampleSubstitute replaces a free name in a named term.
func ExampleSubstitute() {
	x, y, z := lambda.NewConst("x"), lambda.NewConst("y"), lambda.NewConst("z")
	term := lambda.Lambda("x", lambda.NewApp(lambda.NewApp(x, z), lambda.Lambda("y", lambda.NewApp(lambda.NewApp(x, y), z))))

	out, err := lambda.Substitute(term, "z", lambda.NewConst("a"))
	fmt.Println(out, err)

	_, err = lambda.Substitute(term, "x", lambda.NewConst("a"))
	fmt.Println(errors.Is(err, lambda.ErrCapture))
	// Output:
	// \x->((x a) \y->((x y) a)) <nil>
	// true
}

// ExampleShift moves a term under one more binder.
func ExampleShift() {
	i := lambda.NewIndex
	term := lambda.NewNApp(i(0), lambda.NewNAbs(lambda.NewNApp(lambda.NewNApp(i(0), i(1)), lambda.NewNAbs(lambda.NewNApp(lambda.NewNApp(i(1), i(0)), i(2))))))
	fmt.Println(term)
	fmt.Println(lambda.Shift(term, 1, 0))
	// Output:
	// (0 \ ((0 1) \ ((1 0) 2)))
	// (1 \ ((0 2) \ ((1 0) 3)))
}

// ExampleSubstituteIndex shows that a bound index is never replaced.
func ExampleSubstituteIndex() {
	fmt.Println(lambda.SubstituteIndex(lambda.NewIndex(0), 0, lambda.NewIndex(1)))
	fmt.Println(lambda.SubstituteIndex(lambda.NewNAbs(lambda.NewIndex(0)), 0, lambda.NewIndex(1)))
	// Output:
	// 1
	// \ 0
}

// ExampleToNameless converts with a free-variable frame and a level table.
func ExampleToNameless() {
	x, y, z := lambda.NewConst("x"), lambda.NewConst("y"), lambda.NewConst("z")
	term := lambda.Lambda("x", lambda.NewApp(lambda.NewApp(x, z), lambda.Lambda("y", lambda.NewApp(lambda.NewApp(x, y), z))))

	ctx := lambda.NameContext{
		Free:   map[string]int{"z": 0},
		Levels: map[string]int{"x": 0, "y": 1},
	}
	out, err := lambda.ToNameless(term, ctx)
	fmt.Println(out, err)
	// Output: \ ((0 1) \ ((1 0) 2)) <nil>
}

// ExampleToNamed names the binders of a de Bruijn term by level.
func ExampleToNamed() {
	i := lambda.NewIndex
	term := lambda.NewNApp(i(0), lambda.NewNAbs(lambda.NewNApp(lambda.NewNApp(i(0), i(1)), lambda.NewNAbs(lambda.NewNApp(lambda.NewNApp(i(1), i(0)), i(2))))))

	ctx := lambda.IndexContext{
		Free:   map[int]string{0: "z"},
		Levels: map[int]string{0: "x", 1: "y"},
	}
	out, err := lambda.ToNamed(term, ctx)
	fmt.Println(out, err)
	// Output: (z \x->((x z) \y->((x y) z))) <nil>
}
