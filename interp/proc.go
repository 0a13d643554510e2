package interp

import (
	"github.com/dcastelo/scheme-engine/scm"
)

// Builtin is a procedure implemented in Go.
type Builtin struct {
	Name string
	// Arity is the number of required arguments. A variadic builtin accepts
	// Arity or more.
	Arity    int
	Variadic bool
	Fn       func(args []scm.Value) (scm.Value, error)
}

func (b *Builtin) String() string {
	return "#<builtin " + b.Name + ">"
}

func (b *Builtin) checkArity(n int) error {
	if n == b.Arity || (b.Variadic && n > b.Arity) {
		return nil
	}
	return &ArityError{Name: b.Name, Want: b.Arity, Variadic: b.Variadic, Got: n}
}

// Lambda is a procedure created by evaluating a lambda form. It closes over
// the environment where it was created.
type Lambda struct {
	// Params are the required parameters.
	Params []*scm.Symbol
	// Rest, if non-nil, is bound to a list of the remaining arguments.
	Rest *scm.Symbol
	// Body is the sequence of expressions evaluated on application.
	Body []scm.Value
	Env  *Env
	// Name is filled when the lambda is created by a define form, for
	// error messages and printing only.
	Name string
}

func (l *Lambda) String() string {
	if l.Name == "" {
		return "#<procedure>"
	}
	return "#<procedure " + l.Name + ">"
}

func (l *Lambda) bind(args []scm.Value) (*Env, error) {
	if len(args) < len(l.Params) || (l.Rest == nil && len(args) > len(l.Params)) {
		return nil, &ArityError{Name: l.Name, Want: len(l.Params), Variadic: l.Rest != nil, Got: len(args)}
	}
	env := NewEnv(l.Env)
	for i, param := range l.Params {
		env.Define(param, args[i])
	}
	if l.Rest != nil {
		env.Define(l.Rest, scm.NewList(args[len(l.Params):]...))
	}
	return env, nil
}
