package interp_test

import (
	"os"
	"strings"
	"testing"

	"github.com/dcastelo/scheme-engine/interp"
	"github.com/dcastelo/scheme-engine/test_helpers"
)

var wantDemoOutput = test_helpers.Dedent(`
    A
    0
    8747835
    Hello World
    ()
    (Hello World 9)
    ((Nesting))
    (Improper . List)
    #f
    (quote (quote Test))
    #f`) + "\n"

// The demo script prints one literal of each kind, one per line.
func TestDemoScript(t *testing.T) {
	program := test_helpers.Dedent(`
        (display #\A) (newline)
        (display 0) (newline)
        (display 8747835) (newline)
        (display "Hello World") (newline)
        (display '()) (newline)
        (display '(Hello World 9)) (newline)
        (display '((Nesting))) (newline)
        (display '(Improper . List)) (newline)
        (display #f) (newline)
        (display '''Test) (newline)
        (display (eq? 'Hello 'World)) (newline)`)
	var b strings.Builder
	in := interp.New(&b)
	if _, err := in.Run(program); err != nil {
		t.Fatalf("Run: got err: %v", err)
	}
	if b.String() != wantDemoOutput {
		t.Errorf("output = %q (!= %q)", b.String(), wantDemoOutput)
	}
}

func TestDemoScriptFile(t *testing.T) {
	bs, err := os.ReadFile("../examples/display.scm")
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	var b strings.Builder
	in := interp.New(&b)
	if _, err := in.Run(string(bs)); err != nil {
		t.Fatalf("Run: got err: %v", err)
	}
	if b.String() != wantDemoOutput {
		t.Errorf("output = %q (!= %q)", b.String(), wantDemoOutput)
	}
}
