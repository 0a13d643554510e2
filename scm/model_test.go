package scm_test

import (
	"testing"

	"github.com/dcastelo/scheme-engine/dsl"
	"github.com/dcastelo/scheme-engine/scm"
)

var (
	sym   = dsl.Sym
	num   = dsl.Num
	str   = dsl.Str
	ch    = dsl.Ch
	list  = dsl.List
	ilist = dsl.IList
	quote = dsl.Quote
)

func TestWrite(t *testing.T) {
	tests := []struct {
		value scm.Value
		want  string
	}{
		{scm.True, "#t"},
		{scm.False, "#f"},
		{ch('A'), `#\A`},
		{ch('\n'), `#\newline`},
		{ch(' '), `#\space`},
		{num(0), "0"},
		{num(-42), "-42"},
		{num(8747835), "8747835"},
		{sym("foo"), "foo"},
		{sym("set!"), "set!"},
		{str("Hello World"), `"Hello World"`},
		{str("a\"b\\c\nd"), `"a\"b\\c\nd"`},
		{scm.EmptyList, "()"},
		{list(sym("a"), num(1), str("b")), `(a 1 "b")`},
		{list(list(sym("Nesting"))), "((Nesting))"},
		{ilist(sym("Improper"), sym("List")), "(Improper . List)"},
		{ilist(num(1), num(2), num(3)), "(1 2 . 3)"},
		{quote(quote(sym("Test"))), "(quote (quote Test))"},
	}
	for _, test := range tests {
		got := scm.Write(test.value)
		if got != test.want {
			t.Errorf("Write(%#v) = %q (!= %q)", test.value, got, test.want)
		}
	}
}

func TestDisplay(t *testing.T) {
	tests := []struct {
		value scm.Value
		want  string
	}{
		{ch('A'), "A"},
		{ch('\n'), "\n"},
		{str("Hello World"), "Hello World"},
		{str("a\"b"), `a"b`},
		{scm.False, "#f"},
		{scm.EmptyList, "()"},
		{list(sym("Hello"), sym("World"), num(9)), "(Hello World 9)"},
		{list(str("a"), ch('b')), `(a b)`},
		{ilist(sym("Improper"), sym("List")), "(Improper . List)"},
		{quote(quote(sym("Test"))), "(quote (quote Test))"},
	}
	for _, test := range tests {
		got := scm.Display(test.value)
		if got != test.want {
			t.Errorf("Display(%v) = %q (!= %q)", test.value, got, test.want)
		}
	}
}

func TestEqv(t *testing.T) {
	tests := []struct {
		x, y scm.Value
		want bool
	}{
		{sym("a"), sym("a"), true},
		{sym("a"), sym("b"), false},
		{num(1), num(1), true},
		{num(1), num(2), false},
		{num(1), sym("a"), false},
		{scm.True, scm.True, true},
		{scm.True, scm.False, false},
		{ch('x'), ch('x'), true},
		{scm.EmptyList, scm.EmptyList, true},
		{scm.EmptyList, scm.False, false},
		{str("a"), str("a"), false},
		{list(num(1)), list(num(1)), false},
	}
	for _, test := range tests {
		if got := scm.Eqv(test.x, test.y); got != test.want {
			t.Errorf("Eqv(%v, %v) = %t (!= %t)", test.x, test.y, got, test.want)
		}
	}
}

func TestEqual(t *testing.T) {
	tests := []struct {
		x, y scm.Value
		want bool
	}{
		{str("a"), str("a"), true},
		{str("a"), str("b"), false},
		{list(num(1), list(num(2))), list(num(1), list(num(2))), true},
		{list(num(1)), list(num(2)), false},
		{ilist(num(1), num(2)), ilist(num(1), num(2)), true},
		{ilist(num(1), num(2)), list(num(1), num(2)), false},
	}
	for _, test := range tests {
		if got := scm.Equal(test.x, test.y); got != test.want {
			t.Errorf("Equal(%v, %v) = %t (!= %t)", test.x, test.y, got, test.want)
		}
	}
}

func TestIntern(t *testing.T) {
	if scm.Intern("foo") != scm.Intern("foo") {
		t.Errorf("same-named symbols are not identical")
	}
	if scm.Intern("foo") == scm.Intern("bar") {
		t.Errorf("different symbols are identical")
	}
}

func TestListSlice(t *testing.T) {
	values, tail := scm.ListSlice(ilist(num(1), num(2), num(3)))
	if len(values) != 2 || !scm.Eqv(tail, num(3)) {
		t.Errorf("ListSlice: got %v values, tail %v", values, tail)
	}
	if _, ok := scm.ProperSlice(list(num(1), num(2))); !ok {
		t.Errorf("ProperSlice: proper list not recognized")
	}
	if _, ok := scm.ProperSlice(ilist(num(1), num(2))); ok {
		t.Errorf("ProperSlice: improper list recognized as proper")
	}
}

func TestStringMutation(t *testing.T) {
	s := str("abc")
	if err := s.Set(1, 'x'); err != nil {
		t.Fatalf("Set: got err: %v", err)
	}
	if s.Text() != "axc" {
		t.Errorf("Text() = %q (!= %q)", s.Text(), "axc")
	}
	if err := s.Set(3, 'y'); err == nil {
		t.Errorf("Set out of range: want err, got nil")
	}
	r, err := s.At(2)
	if err != nil || r != 'c' {
		t.Errorf("At(2) = %c, %v", r, err)
	}
}
