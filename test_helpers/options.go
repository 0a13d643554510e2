package test_helpers

import (
	"github.com/dcastelo/scheme-engine/scm"

	"github.com/google/go-cmp/cmp"
)

var (
	// DatumOptions compares Scheme values structurally: strings by contents,
	// numbers by numeric value. Everything else compares naturally, since
	// symbols are interned.
	DatumOptions = cmp.Options{
		cmp.Comparer(func(a, b *scm.String) bool { return a.Text() == b.Text() }),
		cmp.Comparer(func(a, b scm.Number) bool { return a.Value.Cmp(b.Value) == 0 }),
	}
)
