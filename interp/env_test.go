package interp_test

import (
	"testing"

	"github.com/dcastelo/scheme-engine/interp"
	"github.com/dcastelo/scheme-engine/scm"
)

func TestEnv(t *testing.T) {
	x := scm.Intern("x")
	outer := interp.NewEnv(nil)
	outer.Define(x, num(1))
	inner := interp.NewEnv(outer)

	if v, ok := inner.Lookup(x); !ok || !scm.Eqv(v, num(1)) {
		t.Errorf("Lookup(x) = %v, %t", v, ok)
	}

	inner.Define(x, num(2))
	if v, _ := inner.Lookup(x); !scm.Eqv(v, num(2)) {
		t.Errorf("Lookup(x) after shadowing = %v", v)
	}
	if v, _ := outer.Lookup(x); !scm.Eqv(v, num(1)) {
		t.Errorf("outer Lookup(x) = %v, shadow leaked", v)
	}

	if err := inner.Set(x, num(3)); err != nil {
		t.Fatalf("Set(x): got err: %v", err)
	}
	if v, _ := inner.Lookup(x); !scm.Eqv(v, num(3)) {
		t.Errorf("Lookup(x) after Set = %v", v)
	}

	y := scm.Intern("y")
	if err := inner.Set(y, num(4)); err == nil {
		t.Errorf("Set(y) on unbound: want err, got nil")
	}
}
