package interp_test

import (
	"io"
	"strings"
	"testing"

	"github.com/dcastelo/scheme-engine/interp"
	"github.com/dcastelo/scheme-engine/scm"
	"github.com/dcastelo/scheme-engine/test_helpers"

	"github.com/google/go-cmp/cmp"
)

func TestPredicates(t *testing.T) {
	tests := []struct {
		src  string
		want bool
	}{
		{"(pair? '(1))", true},
		{"(pair? '())", false},
		{"(pair? '(1 . 2))", true},
		{"(symbol? 'a)", true},
		{"(symbol? \"a\")", false},
		{"(string? \"a\")", true},
		{"(string? 'a)", false},
		{`(char? #\a)`, true},
		{"(char? 97)", false},
		{"(number? 1)", true},
		{"(number? #t)", false},
		{"(procedure? car)", true},
		{"(procedure? (lambda (x) x))", true},
		{"(procedure? 'car)", false},
		{"(boolean? #f)", true},
		{"(boolean? 0)", false},
		{"(null? '())", true},
		{"(null? '(1))", false},
		{"(zero? 0)", true},
		{"(zero? 1)", false},
		{"(positive? 3)", true},
		{"(negative? -3)", true},
		{"(not #f)", true},
		{"(not 0)", false},
	}
	for _, test := range tests {
		in := interp.New(io.Discard)
		got, err := in.Run(test.src)
		if err != nil {
			t.Fatalf("Run(%q): got err: %v", test.src, err)
		}
		if got != scm.Boolean(test.want) {
			t.Errorf("Run(%q) = %v (!= %t)", test.src, got, test.want)
		}
	}
}

func TestDerivedProcedures(t *testing.T) {
	tests := []struct {
		src  string
		want scm.Value
	}{
		{"(abs -5)", num(5)},
		{"(abs 5)", num(5)},
		{"(list 1 2 3)", list(num(1), num(2), num(3))},
		{"(list)", scm.EmptyList},
		{"(cadr '(1 2 3))", num(2)},
		{"(caddr '(1 2 3))", num(3)},
		{"(length '(a b c))", num(3)},
		{"(length '())", num(0)},
		{"(append '(1 2) '(3))", list(num(1), num(2), num(3))},
		{"(append '() '(1))", list(num(1))},
		{"(reverse '(1 2 3))", list(num(3), num(2), num(1))},
		{"(map (lambda (x) (* x x)) '(1 2 3))", list(num(1), num(4), num(9))},
	}
	for _, test := range tests {
		in := interp.New(io.Discard)
		got, err := in.Run(test.src)
		if err != nil {
			t.Fatalf("Run(%q): got err: %v", test.src, err)
		}
		if diff := cmp.Diff(test.want, got, test_helpers.DatumOptions); diff != "" {
			t.Errorf("Run(%q): (-want, +got)%s", test.src, diff)
		}
	}
}

func TestStrings(t *testing.T) {
	tests := []struct {
		src  string
		want scm.Value
	}{
		{`(string-length "hello")`, num(5)},
		{`(string-length "")`, num(0)},
		{`(string-ref "abc" 1)`, ch('b')},
	}
	for _, test := range tests {
		in := interp.New(io.Discard)
		got, err := in.Run(test.src)
		if err != nil {
			t.Fatalf("Run(%q): got err: %v", test.src, err)
		}
		if diff := cmp.Diff(test.want, got, test_helpers.DatumOptions); diff != "" {
			t.Errorf("Run(%q): (-want, +got)%s", test.src, diff)
		}
	}
}

func TestOutput(t *testing.T) {
	tests := []struct {
		src  string
		want string
	}{
		{`(display "Hello World")`, "Hello World"},
		{`(write "Hello World")`, `"Hello World"`},
		{`(display #\A)`, "A"},
		{`(write #\A)`, `#\A`},
		{"(newline)", "\n"},
		{"(display '(a . b)) (newline) (display '''Test)", "(a . b)\n(quote (quote Test))"},
		{"(for-each display '(1 2 3))", "123"},
	}
	for _, test := range tests {
		var b strings.Builder
		in := interp.New(&b)
		if _, err := in.Run(test.src); err != nil {
			t.Fatalf("Run(%q): got err: %v", test.src, err)
		}
		if b.String() != test.want {
			t.Errorf("Run(%q): output = %q (!= %q)", test.src, b.String(), test.want)
		}
	}
}

func TestBigArithmetic(t *testing.T) {
	in := interp.New(io.Discard)
	got, err := in.Run(`
		(define (fact n) (if (zero? n) 1 (* n (fact (- n 1)))))
		(fact 25)`)
	if err != nil {
		t.Fatalf("Run: got err: %v", err)
	}
	want := "15511210043330985984000000"
	if text := scm.Write(got); text != want {
		t.Errorf("(fact 25) = %s (!= %s)", text, want)
	}
}
