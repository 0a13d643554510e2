// Package interp implements the Scheme evaluator: lexical environments,
// special forms, builtin procedures and a Scheme-defined prelude.
//
// The evaluator is iterative in tail position, so loops written with
// tail-recursive procedures run in constant stack space.
package interp

import (
	"io"
	"sync/atomic"

	"github.com/dcastelo/scheme-engine/reader"
	"github.com/dcastelo/scheme-engine/scm"
)

// Interp is a Scheme interpreter. Each instance has its own global
// environment; the display, write and newline procedures print to the
// interpreter's output writer.
type Interp struct {
	// Global is the global environment, holding builtins, the prelude and
	// top-level defines.
	Global *Env

	out         io.Writer
	interrupted atomic.Bool
}

// New creates an interpreter with a fresh global environment printing to out.
func New(out io.Writer) *Interp {
	in := &Interp{out: out}
	in.Global = in.baseEnv()
	if err := in.loadPrelude(); err != nil {
		panic(err)
	}
	return in
}

// Interrupt makes the ongoing evaluation return ErrInterrupted at the next
// step. It is safe to call from another goroutine.
func (in *Interp) Interrupt() {
	in.interrupted.Store(true)
}

// Eval evaluates a single datum in the global environment.
func (in *Interp) Eval(v scm.Value) (scm.Value, error) {
	in.interrupted.Store(false)
	return in.eval(v, in.Global)
}

// Run reads all datums in the source text and evaluates them in order,
// returning the value of the last one.
func (in *Interp) Run(src string) (scm.Value, error) {
	values, err := reader.ReadAll(src)
	if err != nil {
		return nil, err
	}
	var last scm.Value = scm.Unspecified
	for _, v := range values {
		last, err = in.Eval(v)
		if err != nil {
			return nil, err
		}
	}
	return last, nil
}

func (in *Interp) loadPrelude() error {
	values, err := reader.ReadAll(prelude)
	if err != nil {
		return err
	}
	for _, v := range values {
		if _, err := in.eval(v, in.Global); err != nil {
			return err
		}
	}
	return nil
}
