package interp

import (
	"github.com/dcastelo/scheme-engine/scm"
)

// Env is a lexical environment frame. Lookups walk the parent chain;
// definitions always land in the innermost frame.
type Env struct {
	vars   map[*scm.Symbol]scm.Value
	parent *Env
}

// NewEnv creates an empty frame with the given parent. A nil parent makes a
// top frame.
func NewEnv(parent *Env) *Env {
	return &Env{vars: make(map[*scm.Symbol]scm.Value), parent: parent}
}

// Define binds sym in this frame, shadowing any outer binding.
func (e *Env) Define(sym *scm.Symbol, v scm.Value) {
	e.vars[sym] = v
}

// Lookup returns the innermost binding for sym.
func (e *Env) Lookup(sym *scm.Symbol) (scm.Value, bool) {
	for env := e; env != nil; env = env.parent {
		if v, ok := env.vars[sym]; ok {
			return v, true
		}
	}
	return nil, false
}

// Set overwrites the innermost binding for sym. Unlike Define, it is an error
// if sym is unbound.
func (e *Env) Set(sym *scm.Symbol, v scm.Value) error {
	for env := e; env != nil; env = env.parent {
		if _, ok := env.vars[sym]; ok {
			env.vars[sym] = v
			return nil
		}
	}
	return &UnboundError{Sym: sym}
}
