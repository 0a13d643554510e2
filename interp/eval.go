package interp

import (
	"github.com/dcastelo/scheme-engine/errors"
	"github.com/dcastelo/scheme-engine/scm"
)

var (
	symQuote   = scm.Intern("quote")
	symIf      = scm.Intern("if")
	symDefine  = scm.Intern("define")
	symSet     = scm.Intern("set!")
	symLambda  = scm.Intern("lambda")
	symLet     = scm.Intern("let")
	symLetStar = scm.Intern("let*")
	symLetrec  = scm.Intern("letrec")
	symBegin   = scm.Intern("begin")
	symAnd     = scm.Intern("and")
	symOr      = scm.Intern("or")
	symError   = scm.Intern("error")
)

var specialForms = map[*scm.Symbol]bool{
	symQuote:   true,
	symIf:      true,
	symDefine:  true,
	symSet:     true,
	symLambda:  true,
	symLet:     true,
	symLetStar: true,
	symLetrec:  true,
	symBegin:   true,
	symAnd:     true,
	symOr:      true,
	symError:   true,
}

// truthy returns whether v counts as true in a conditional. Only #f is false.
func truthy(v scm.Value) bool {
	return v != scm.False
}

// eval evaluates v in env. Tail positions (if branches, last body expression,
// last and/or operand) loop instead of recursing.
func (in *Interp) eval(v scm.Value, env *Env) (scm.Value, error) {
	for {
		if in.interrupted.Load() {
			return nil, ErrInterrupted
		}
		if sym, ok := v.(*scm.Symbol); ok {
			value, ok := env.Lookup(sym)
			if !ok {
				return nil, &UnboundError{Sym: sym}
			}
			return value, nil
		}
		p, ok := v.(*scm.Pair)
		if !ok {
			if v == scm.EmptyList {
				return nil, errors.New("cannot evaluate empty form ()")
			}
			// Numbers, strings, chars and booleans are self-evaluating.
			return v, nil
		}
		args, proper := scm.ProperSlice(p.Cdr)
		if !proper {
			return nil, errors.New("cannot evaluate improper form %v", p)
		}
		if head, ok := p.Car.(*scm.Symbol); ok && specialForms[head] {
			switch head {
			case symQuote:
				if len(args) != 1 {
					return nil, errors.New("quote: expected 1 arg, got %d", len(args))
				}
				return args[0], nil
			case symIf:
				if len(args) < 2 || len(args) > 3 {
					return nil, errors.New("if: expected 2 or 3 args, got %d", len(args))
				}
				cond, err := in.eval(args[0], env)
				if err != nil {
					return nil, err
				}
				if truthy(cond) {
					v = args[1]
					continue
				}
				if len(args) == 3 {
					v = args[2]
					continue
				}
				return scm.Unspecified, nil
			case symDefine:
				return in.evalDefine(args, env)
			case symSet:
				return in.evalSet(args, env)
			case symLambda:
				if len(args) < 2 {
					return nil, errors.New("lambda: expected params and body, got %d args", len(args))
				}
				return makeLambda("", args[0], args[1:], env)
			case symLet, symLetStar, symLetrec:
				child, body, err := in.bindLet(head, args, env)
				if err != nil {
					return nil, err
				}
				last, err := in.evalSeq(body, child)
				if err != nil {
					return nil, err
				}
				v, env = last, child
				continue
			case symBegin:
				if len(args) == 0 {
					return scm.Unspecified, nil
				}
				last, err := in.evalSeq(args, env)
				if err != nil {
					return nil, err
				}
				v = last
				continue
			case symAnd:
				if len(args) == 0 {
					return scm.True, nil
				}
				for _, expr := range args[:len(args)-1] {
					val, err := in.eval(expr, env)
					if err != nil {
						return nil, err
					}
					if !truthy(val) {
						return val, nil
					}
				}
				v = args[len(args)-1]
				continue
			case symOr:
				if len(args) == 0 {
					return scm.False, nil
				}
				for _, expr := range args[:len(args)-1] {
					val, err := in.eval(expr, env)
					if err != nil {
						return nil, err
					}
					if truthy(val) {
						return val, nil
					}
				}
				v = args[len(args)-1]
				continue
			case symError:
				vals, err := in.evalArgs(args, env)
				if err != nil {
					return nil, err
				}
				return nil, &RaisedError{Args: vals}
			}
		}
		// Application: evaluate operator and operands left to right.
		proc, err := in.eval(p.Car, env)
		if err != nil {
			return nil, err
		}
		argv, err := in.evalArgs(args, env)
		if err != nil {
			return nil, err
		}
		switch fn := proc.(type) {
		case *Builtin:
			if err := fn.checkArity(len(argv)); err != nil {
				return nil, err
			}
			return fn.Fn(argv)
		case *Lambda:
			child, err := fn.bind(argv)
			if err != nil {
				return nil, err
			}
			last, err := in.evalSeq(fn.Body, child)
			if err != nil {
				return nil, err
			}
			v, env = last, child
			continue
		default:
			return nil, &TypeError{Name: "application", Want: "procedure", Got: proc}
		}
	}
}

// evalSeq evaluates all but the last expression of a body, returning the last
// one for the caller's tail loop.
func (in *Interp) evalSeq(body []scm.Value, env *Env) (scm.Value, error) {
	for _, expr := range body[:len(body)-1] {
		if _, err := in.eval(expr, env); err != nil {
			return nil, err
		}
	}
	return body[len(body)-1], nil
}

func (in *Interp) evalArgs(args []scm.Value, env *Env) ([]scm.Value, error) {
	vals := make([]scm.Value, len(args))
	for i, arg := range args {
		val, err := in.eval(arg, env)
		if err != nil {
			return nil, err
		}
		vals[i] = val
	}
	return vals, nil
}

func (in *Interp) evalDefine(args []scm.Value, env *Env) (scm.Value, error) {
	if len(args) == 0 {
		return nil, errors.New("define: missing name")
	}
	switch target := args[0].(type) {
	case *scm.Symbol:
		if len(args) != 2 {
			return nil, errors.New("define: expected 2 args, got %d", len(args))
		}
		val, err := in.eval(args[1], env)
		if err != nil {
			return nil, err
		}
		if l, ok := val.(*Lambda); ok && l.Name == "" {
			l.Name = target.Name
		}
		env.Define(target, val)
		return scm.Unspecified, nil
	case *scm.Pair:
		// (define (name . params) body...)
		name, ok := target.Car.(*scm.Symbol)
		if !ok {
			return nil, &TypeError{Name: "define", Want: "symbol", Got: target.Car}
		}
		l, err := makeLambda(name.Name, target.Cdr, args[1:], env)
		if err != nil {
			return nil, err
		}
		env.Define(name, l)
		return scm.Unspecified, nil
	default:
		return nil, &TypeError{Name: "define", Want: "symbol or pair", Got: args[0]}
	}
}

func (in *Interp) evalSet(args []scm.Value, env *Env) (scm.Value, error) {
	if len(args) != 2 {
		return nil, errors.New("set!: expected 2 args, got %d", len(args))
	}
	sym, ok := args[0].(*scm.Symbol)
	if !ok {
		return nil, &TypeError{Name: "set!", Want: "symbol", Got: args[0]}
	}
	val, err := in.eval(args[1], env)
	if err != nil {
		return nil, err
	}
	if err := env.Set(sym, val); err != nil {
		return nil, err
	}
	return scm.Unspecified, nil
}

func makeLambda(name string, params scm.Value, body []scm.Value, env *Env) (*Lambda, error) {
	if len(body) == 0 {
		return nil, errors.New("lambda: empty body")
	}
	l := &Lambda{Body: body, Env: env, Name: name}
	if rest, ok := params.(*scm.Symbol); ok {
		l.Rest = rest
		return l, nil
	}
	elems, tail := scm.ListSlice(params)
	for _, e := range elems {
		sym, ok := e.(*scm.Symbol)
		if !ok {
			return nil, &TypeError{Name: "lambda", Want: "symbol", Got: e}
		}
		l.Params = append(l.Params, sym)
	}
	if rest, ok := tail.(*scm.Symbol); ok {
		l.Rest = rest
	} else if tail != scm.EmptyList {
		return nil, &TypeError{Name: "lambda", Want: "parameter list", Got: params}
	}
	return l, nil
}

// bindLet evaluates the bindings of a let, let* or letrec form and returns
// the extended environment along with the body.
func (in *Interp) bindLet(kind *scm.Symbol, args []scm.Value, env *Env) (*Env, []scm.Value, error) {
	if len(args) < 2 {
		return nil, nil, errors.New("%v: expected bindings and body, got %d args", kind, len(args))
	}
	bindings, ok := scm.ProperSlice(args[0])
	if !ok {
		return nil, nil, &TypeError{Name: kind.Name, Want: "binding list", Got: args[0]}
	}
	names := make([]*scm.Symbol, len(bindings))
	inits := make([]scm.Value, len(bindings))
	for i, b := range bindings {
		pair, ok := scm.ProperSlice(b)
		if !ok || len(pair) != 2 {
			return nil, nil, &TypeError{Name: kind.Name, Want: "(name init) binding", Got: b}
		}
		sym, ok := pair[0].(*scm.Symbol)
		if !ok {
			return nil, nil, &TypeError{Name: kind.Name, Want: "symbol", Got: pair[0]}
		}
		names[i], inits[i] = sym, pair[1]
	}
	child := NewEnv(env)
	switch kind {
	case symLet:
		// All inits see the outer environment.
		for i, init := range inits {
			val, err := in.eval(init, env)
			if err != nil {
				return nil, nil, err
			}
			child.Define(names[i], val)
		}
	case symLetStar:
		// Each init sees the bindings before it.
		for i, init := range inits {
			val, err := in.eval(init, child)
			if err != nil {
				return nil, nil, err
			}
			child.Define(names[i], val)
		}
	case symLetrec:
		// All names are in scope, unspecified until their init runs.
		for _, name := range names {
			child.Define(name, scm.Unspecified)
		}
		for i, init := range inits {
			val, err := in.eval(init, child)
			if err != nil {
				return nil, nil, err
			}
			child.Define(names[i], val)
		}
	}
	return child, args[1:], nil
}
