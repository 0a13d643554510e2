package interp

import (
	"io"
	"math"
	"math/big"

	"github.com/dcastelo/scheme-engine/errors"
	"github.com/dcastelo/scheme-engine/scm"

	"github.com/nukata/goarith"
)

// baseEnv builds the top frame with all builtin procedures.
func (in *Interp) baseEnv() *Env {
	env := NewEnv(nil)
	def := func(name string, arity int, variadic bool, fn func([]scm.Value) (scm.Value, error)) {
		env.Define(scm.Intern(name), &Builtin{Name: name, Arity: arity, Variadic: variadic, Fn: fn})
	}
	defPred := func(name string, pred func(scm.Value) bool) {
		def(name, 1, false, func(args []scm.Value) (scm.Value, error) {
			return scm.Boolean(pred(args[0])), nil
		})
	}

	// Arithmetic.
	def("+", 0, true, func(args []scm.Value) (scm.Value, error) {
		acc := goarith.AsNumber(int64(0))
		for _, arg := range args {
			n, err := asNumber("+", arg)
			if err != nil {
				return nil, err
			}
			acc = acc.Add(n)
		}
		return scm.Number{Value: acc}, nil
	})
	def("-", 1, true, func(args []scm.Value) (scm.Value, error) {
		first, err := asNumber("-", args[0])
		if err != nil {
			return nil, err
		}
		if len(args) == 1 {
			return scm.Number{Value: goarith.AsNumber(int64(0)).Sub(first)}, nil
		}
		acc := first
		for _, arg := range args[1:] {
			n, err := asNumber("-", arg)
			if err != nil {
				return nil, err
			}
			acc = acc.Sub(n)
		}
		return scm.Number{Value: acc}, nil
	})
	def("*", 0, true, func(args []scm.Value) (scm.Value, error) {
		acc := goarith.AsNumber(int64(1))
		for _, arg := range args {
			n, err := asNumber("*", arg)
			if err != nil {
				return nil, err
			}
			acc = acc.Mul(n)
		}
		return scm.Number{Value: acc}, nil
	})
	defCompare := func(name string, holds func(c int) bool) {
		def(name, 2, true, func(args []scm.Value) (scm.Value, error) {
			prev, err := asNumber(name, args[0])
			if err != nil {
				return nil, err
			}
			for _, arg := range args[1:] {
				next, err := asNumber(name, arg)
				if err != nil {
					return nil, err
				}
				if !holds(prev.Cmp(next)) {
					return scm.False, nil
				}
				prev = next
			}
			return scm.True, nil
		})
	}
	defCompare("=", func(c int) bool { return c == 0 })
	defCompare("<", func(c int) bool { return c < 0 })
	defCompare("<=", func(c int) bool { return c <= 0 })
	defCompare(">", func(c int) bool { return c > 0 })
	defCompare(">=", func(c int) bool { return c >= 0 })
	defIntDiv := func(name string, div func(z, x, y *big.Int) *big.Int) {
		def(name, 2, false, func(args []scm.Value) (scm.Value, error) {
			x, err := asInteger(name, args[0])
			if err != nil {
				return nil, err
			}
			y, err := asInteger(name, args[1])
			if err != nil {
				return nil, err
			}
			if y.Sign() == 0 {
				return nil, errors.New("%s: division by zero", name)
			}
			return scm.Number{Value: goarith.AsNumber(div(new(big.Int), x, y))}, nil
		})
	}
	defIntDiv("quotient", (*big.Int).Quo)
	defIntDiv("remainder", (*big.Int).Rem)

	// Pairs.
	def("car", 1, false, func(args []scm.Value) (scm.Value, error) {
		p, err := asPair("car", args[0])
		if err != nil {
			return nil, err
		}
		return p.Car, nil
	})
	def("cdr", 1, false, func(args []scm.Value) (scm.Value, error) {
		p, err := asPair("cdr", args[0])
		if err != nil {
			return nil, err
		}
		return p.Cdr, nil
	})
	def("cons", 2, false, func(args []scm.Value) (scm.Value, error) {
		return scm.Cons(args[0], args[1]), nil
	})
	def("set-car!", 2, false, func(args []scm.Value) (scm.Value, error) {
		p, err := asPair("set-car!", args[0])
		if err != nil {
			return nil, err
		}
		p.Car = args[1]
		return scm.Unspecified, nil
	})
	def("set-cdr!", 2, false, func(args []scm.Value) (scm.Value, error) {
		p, err := asPair("set-cdr!", args[0])
		if err != nil {
			return nil, err
		}
		p.Cdr = args[1]
		return scm.Unspecified, nil
	})

	// Equivalence.
	def("eqv?", 2, false, func(args []scm.Value) (scm.Value, error) {
		return scm.Boolean(scm.Eqv(args[0], args[1])), nil
	})
	def("equal?", 2, false, func(args []scm.Value) (scm.Value, error) {
		return scm.Boolean(scm.Equal(args[0], args[1])), nil
	})

	// Type predicates.
	defPred("pair?", func(v scm.Value) bool { _, ok := v.(*scm.Pair); return ok })
	defPred("symbol?", func(v scm.Value) bool { _, ok := v.(*scm.Symbol); return ok })
	defPred("string?", func(v scm.Value) bool { _, ok := v.(*scm.String); return ok })
	defPred("char?", func(v scm.Value) bool { _, ok := v.(scm.Char); return ok })
	defPred("number?", func(v scm.Value) bool { _, ok := v.(scm.Number); return ok })
	defPred("procedure?", func(v scm.Value) bool {
		switch v.(type) {
		case *Builtin, *Lambda:
			return true
		}
		return false
	})

	// Strings.
	def("string-length", 1, false, func(args []scm.Value) (scm.Value, error) {
		s, err := asString("string-length", args[0])
		if err != nil {
			return nil, err
		}
		return scm.NewNumber(int64(s.Len())), nil
	})
	def("string-ref", 2, false, func(args []scm.Value) (scm.Value, error) {
		s, err := asString("string-ref", args[0])
		if err != nil {
			return nil, err
		}
		i, err := asIndex("string-ref", args[1])
		if err != nil {
			return nil, err
		}
		r, err := s.At(i)
		if err != nil {
			return nil, err
		}
		return scm.NewChar(r), nil
	})
	def("string-set!", 3, false, func(args []scm.Value) (scm.Value, error) {
		s, err := asString("string-set!", args[0])
		if err != nil {
			return nil, err
		}
		i, err := asIndex("string-set!", args[1])
		if err != nil {
			return nil, err
		}
		ch, ok := args[2].(scm.Char)
		if !ok {
			return nil, &TypeError{Name: "string-set!", Want: "char", Got: args[2]}
		}
		if err := s.Set(i, ch.Value); err != nil {
			return nil, err
		}
		return scm.Unspecified, nil
	})

	// Output.
	def("display", 1, false, func(args []scm.Value) (scm.Value, error) {
		return in.print(scm.Display(args[0]))
	})
	def("write", 1, false, func(args []scm.Value) (scm.Value, error) {
		return in.print(scm.Write(args[0]))
	})
	def("newline", 0, false, func(args []scm.Value) (scm.Value, error) {
		return in.print("\n")
	})

	return env
}

func (in *Interp) print(text string) (scm.Value, error) {
	if _, err := io.WriteString(in.out, text); err != nil {
		return nil, errors.New("output: %v", err)
	}
	return scm.Unspecified, nil
}

// ---- argument conversions

func asNumber(name string, v scm.Value) (goarith.Number, error) {
	n, ok := v.(scm.Number)
	if !ok {
		return nil, &TypeError{Name: name, Want: "number", Got: v}
	}
	return n.Value, nil
}

func asPair(name string, v scm.Value) (*scm.Pair, error) {
	p, ok := v.(*scm.Pair)
	if !ok {
		return nil, &TypeError{Name: name, Want: "pair", Got: v}
	}
	return p, nil
}

func asString(name string, v scm.Value) (*scm.String, error) {
	s, ok := v.(*scm.String)
	if !ok {
		return nil, &TypeError{Name: name, Want: "string", Got: v}
	}
	return s, nil
}

// asInteger converts a numeric argument to a big.Int.
func asInteger(name string, v scm.Value) (*big.Int, error) {
	n, err := asNumber(name, v)
	if err != nil {
		return nil, err
	}
	switch x := n.(type) {
	case goarith.Int32:
		return big.NewInt(int64(x)), nil
	case goarith.Int64:
		return big.NewInt(int64(x)), nil
	case *goarith.BigInt:
		return (*big.Int)(x), nil
	default:
		return nil, &TypeError{Name: name, Want: "integer", Got: v}
	}
}

// asIndex converts a numeric argument to a non-negative int.
func asIndex(name string, v scm.Value) (int, error) {
	z, err := asInteger(name, v)
	if err != nil {
		return 0, err
	}
	if !z.IsInt64() || z.Sign() < 0 || z.Int64() > math.MaxInt {
		return 0, &TypeError{Name: name, Want: "index", Got: v}
	}
	return int(z.Int64()), nil
}
