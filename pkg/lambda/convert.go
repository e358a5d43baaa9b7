package lambda

// ToNameless converts a named term to de Bruijn form.
//
// The traversal tracks the depth d, the number of abstractions entered so far:
//   - a name in ctx.Free becomes Index(Free[name] + d)
//   - otherwise a name in ctx.Levels becomes Index(d - 1 - Levels[name])
//   - an abstraction becomes NAbs of its body converted at d+1
//
// The binder names of term are never consulted; ctx.Levels must already map
// every bound name to the level of its abstraction (see BinderLevels). Free
// takes precedence over Levels for a name present in both.
func ToNameless(term Term, ctx NameContext) (Nameless, error) {
	return toNamelessAt(term, 0, ctx)
}

func toNamelessAt(term Term, depth int, ctx NameContext) (Nameless, error) {
	switch t := term.(type) {
	case *Const:
		if slot, ok := ctx.Free[t.name]; ok {
			tracef("free %s: slot %d at depth %d -> %d", t.name, slot, depth, slot+depth)
			return &Index{value: slot + depth}, nil
		}
		level, ok := ctx.Levels[t.name]
		if !ok {
			return nil, &ContextError{Map: "free", Key: t.name, Depth: depth, Err: ErrUnboundName}
		}
		if level < 0 || level >= depth {
			return nil, &ContextError{Map: "levels", Key: t.name, Depth: depth, Err: ErrLevelOutOfScope}
		}
		tracef("bound %s: level %d at depth %d -> %d", t.name, level, depth, depth-(1+level))
		return &Index{value: depth - (1 + level)}, nil
	case *App:
		fun, err := toNamelessAt(t.fun, depth, ctx)
		if err != nil {
			return nil, err
		}
		arg, err := toNamelessAt(t.arg, depth, ctx)
		if err != nil {
			return nil, err
		}
		return &NApp{fun: fun, arg: arg}, nil
	case *Abs:
		body, err := toNamelessAt(t.body, depth+1, ctx)
		if err != nil {
			return nil, err
		}
		return &NAbs{body: body}, nil
	}
	panic("unreachable")
}

// ToNamed converts a de Bruijn term to named form, the inverse of ToNameless.
//
// At depth d:
//   - Index(i) with i < d becomes Const(Levels[d - 1 - i])
//   - Index(i) with i >= d becomes Const(Free[i - d])
//   - an abstraction becomes Abs(Levels[d], body converted at d+1)
//
// Any lookup that misses fails with ErrMissingContextEntry; no default name
// is invented.
func ToNamed(term Nameless, ctx IndexContext) (Term, error) {
	return toNamedAt(term, 0, ctx)
}

func toNamedAt(term Nameless, depth int, ctx IndexContext) (Term, error) {
	switch t := term.(type) {
	case *Index:
		if t.value < depth {
			level := depth - (1 + t.value)
			name, ok := ctx.Levels[level]
			if !ok {
				return nil, &ContextError{Map: "levels", Key: level, Depth: depth, Err: ErrMissingContextEntry}
			}
			tracef("bound %d at depth %d: level %d -> %s", t.value, depth, level, name)
			return &Const{name: name}, nil
		}
		slot := t.value - depth
		name, ok := ctx.Free[slot]
		if !ok {
			return nil, &ContextError{Map: "free", Key: slot, Depth: depth, Err: ErrMissingContextEntry}
		}
		tracef("free %d at depth %d: slot %d -> %s", t.value, depth, slot, name)
		return &Const{name: name}, nil
	case *NApp:
		fun, err := toNamedAt(t.fun, depth, ctx)
		if err != nil {
			return nil, err
		}
		arg, err := toNamedAt(t.arg, depth, ctx)
		if err != nil {
			return nil, err
		}
		return &App{fun: fun, arg: arg}, nil
	case *NAbs:
		binder, ok := ctx.Levels[depth]
		if !ok {
			return nil, &ContextError{Map: "levels", Key: depth, Depth: depth, Err: ErrMissingContextEntry}
		}
		body, err := toNamedAt(t.body, depth+1, ctx)
		if err != nil {
			return nil, err
		}
		return &Abs{binder: binder, body: body}, nil
	}
	panic("unreachable")
}
