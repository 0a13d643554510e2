package interp

import (
	"fmt"
	"strings"

	"github.com/dcastelo/scheme-engine/errors"
	"github.com/dcastelo/scheme-engine/scm"
)

// ErrInterrupted is returned by an evaluation cut short by Interrupt.
var ErrInterrupted = errors.New("interrupted")

// UnboundError contains data about a reference to an unbound variable.
type UnboundError struct {
	Sym *scm.Symbol
}

func (err *UnboundError) Error() string {
	return fmt.Sprintf("unbound variable: %v", err.Sym)
}

// TypeError contains data about a value of the wrong type passed to a
// procedure or special form.
type TypeError struct {
	// Name of the procedure or form that rejected the value.
	Name string
	// Want describes the expected type, e.g. "pair".
	Want string
	Got  scm.Value
}

func (err *TypeError) Error() string {
	return fmt.Sprintf("%s: expected %s, got %v", err.Name, err.Want, err.Got)
}

// ArityError contains data about a procedure called with the wrong number of
// arguments.
type ArityError struct {
	Name     string
	Want     int
	Variadic bool
	Got      int
}

func (err *ArityError) Error() string {
	name := err.Name
	if name == "" {
		name = "#<procedure>"
	}
	if err.Variadic {
		return fmt.Sprintf("%s: expected at least %d args, got %d", name, err.Want, err.Got)
	}
	return fmt.Sprintf("%s: expected %d args, got %d", name, err.Want, err.Got)
}

// RaisedError is produced by the error form. There is no handler mechanism:
// a raised error aborts evaluation.
type RaisedError struct {
	Args []scm.Value
}

func (err *RaisedError) Error() string {
	parts := make([]string, len(err.Args))
	for i, arg := range err.Args {
		parts[i] = scm.Display(arg)
	}
	return "error: " + strings.Join(parts, " ")
}
