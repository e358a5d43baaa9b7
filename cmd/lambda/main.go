// Package main demonstrates the named and nameless lambda term operations.
//
// It builds \x->((x z) \y->((x y) z)) and (0 \ ((0 1) \ ((1 0) 2))), then
// substitutes, shifts and converts them, printing every step.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/gitrdm/gokanlambda/internal/contextfile"
	"github.com/gitrdm/gokanlambda/pkg/lambda"
)

type options struct {
	contexts lambda.NameContext
	names    lambda.IndexContext
	derive   bool
}

func main() {
	contextsPath := flag.String("contexts", "", "YAML file overriding the conversion contexts")
	derive := flag.Bool("derive", false, "compute the level table from the term's binders")
	flag.Parse()

	opts := options{
		contexts: lambda.NameContext{
			Free:   map[string]int{"z": 0},
			Levels: map[string]int{"x": 0, "y": 1},
		},
		names: lambda.IndexContext{
			Free:   map[int]string{0: "z"},
			Levels: map[int]string{0: "x", 1: "y"},
		},
		derive: *derive,
	}
	if *contextsPath != "" {
		f, err := contextfile.Load(*contextsPath)
		if err != nil {
			log.Fatalf("lambda: %v", err)
		}
		if f.Named != nil {
			opts.contexts = *f.Named
		}
		if f.Nameless != nil {
			opts.names = *f.Nameless
		}
	}

	if err := run(os.Stdout, opts); err != nil {
		log.Fatalf("lambda: %v", err)
	}
}

func run(w io.Writer, opts options) error {
	fmt.Fprintln(w, "=== Lambda Terms ===")
	fmt.Fprintln(w)

	if err := namedTerms(w, opts); err != nil {
		return err
	}
	return namelessTerms(w, opts)
}

// namedTerms substitutes into and converts the named demo term.
func namedTerms(w io.Writer, opts options) error {
	fmt.Fprintln(w, "1. Named Terms:")

	x, y, z := lambda.NewConst("x"), lambda.NewConst("y"), lambda.NewConst("z")
	term := lambda.Lambda("x", lambda.NewApp(lambda.NewApp(x, z), lambda.Lambda("y", lambda.NewApp(lambda.NewApp(x, y), z))))
	fmt.Fprintf(w, "   term          => %s\n", term)

	sub, err := lambda.Substitute(term, "z", lambda.NewConst("a"))
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "   [z := a]      => %s\n", sub)

	ctx := opts.contexts
	if opts.derive {
		levels, err := lambda.BinderLevels(term)
		if err != nil {
			return err
		}
		ctx = lambda.NameContext{Free: ctx.Free, Levels: levels}
	}
	nl, err := lambda.ToNameless(term, ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "   nameless      => %s\n", nl)
	fmt.Fprintln(w)
	return nil
}

// namelessTerms shifts, substitutes into and converts the nameless demo term.
func namelessTerms(w io.Writer, opts options) error {
	fmt.Fprintln(w, "2. Nameless Terms:")

	i := lambda.NewIndex
	term := lambda.NewNApp(i(0), lambda.NewNAbs(lambda.NewNApp(lambda.NewNApp(i(0), i(1)), lambda.NewNAbs(lambda.NewNApp(lambda.NewNApp(i(1), i(0)), i(2))))))
	fmt.Fprintf(w, "   term          => %s\n", term)
	fmt.Fprintf(w, "   shift 1 at 0  => %s\n", lambda.Shift(term, 1, 0))
	fmt.Fprintf(w, "   [0 := 1]      => %s\n", lambda.SubstituteIndex(term, 0, i(1)))

	named, err := lambda.ToNamed(term, opts.names)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "   named         => %s\n", named)
	fmt.Fprintln(w)
	return nil
}
