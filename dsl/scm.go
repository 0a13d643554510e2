// Package dsl provides short constructors for Scheme datums, meant for tests
// and embedding programs in Go code.
package dsl

import (
	"github.com/dcastelo/scheme-engine/scm"
)

func Values(values ...scm.Value) []scm.Value {
	return values
}

func Sym(name string) *scm.Symbol {
	return scm.Intern(name)
}

func Num(i int64) scm.Number {
	return scm.NewNumber(i)
}

func Str(text string) *scm.String {
	return scm.NewString(text)
}

func Ch(r rune) scm.Char {
	return scm.NewChar(r)
}

func Bool(b bool) scm.Boolean {
	return scm.Boolean(b)
}

// ----

func List(values ...scm.Value) scm.Value {
	return scm.NewList(values...)
}

func IList(values ...scm.Value) scm.Value {
	n := len(values)
	butlast, last := values[:n-1], values[n-1]
	return scm.NewImproperList(butlast, last)
}

// Quote wraps a datum as (quote v).
func Quote(v scm.Value) scm.Value {
	return scm.NewList(Sym("quote"), v)
}
