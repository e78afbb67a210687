package calc_test

import (
	"errors"
	"math"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/zephyrtronium/calc"
)

func TestEval(t *testing.T) {
	cases := []struct {
		name string
		src  string
		r    float64
	}{
		{"num", "1", 1},
		{"decimal", "12.111", 12.111},
		{"neg", "-5", -5},
		{"add", "1 + 2", 3},
		{"add-chain", "4+5+6", 4 + 5 + 6},
		{"sub", "4-5-6", 4 - 5 - 6},
		{"mul", "4*5*6", 4 * 5 * 6},
		{"div", "8/4/2", 1},
		{"quarter", "1/4", 0.25},
		{"precedence", "2+4*3", 14},
		{"mul-div", "4*5/2", 10},
		{"group", "(4-2)*3.5", 7},
		{"negatives", "-5+-8+11*2", 9},
		{"deep", "((( 0 )))", 0},
		{"double-neg", "1--2", 3},
		{"triple-neg", "1---2", -1},
		{"neg-product", "-1*-2-4", -2},
		{"sub-group", "(3)-(1)", 2},
		{"decimals", "1.5 + 2.25", 3.75},
		{"nested", "(25-10*(5/-2.5))", 45},
		{"spaces-in-number", "1 000 * 2", 2000},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r, err := calc.EvalString(c.src)
			if err != nil {
				t.Fatalf("%q: unexpected error: %v", c.src, err)
			}
			if r != c.r {
				t.Errorf("%q: wrong result: want %g, got %g", c.src, c.r, r)
			}
		})
	}
}

func TestEvalInexact(t *testing.T) {
	// Results with rounding error in float64 arithmetic, computed one
	// operation at a time.
	sub := func(a, b float64) float64 { return a - b }
	div := func(a, b float64) float64 { return a / b }
	mul := func(a, b float64) float64 { return a * b }
	cases := []struct {
		src string
		r   float64
	}{
		{"-1/5--3", div(-1, 5) + 3},
		{"-24.5/-65.102*(12.1-10.2)", mul(div(-24.5, -65.102), sub(12.1, 10.2))},
		{"(1.24+(-24.89/(1-3.4)))", 1.24 + div(-24.89, sub(1, 3.4))},
		{"0.1+0.2", 0.30000000000000004},
	}
	for _, c := range cases {
		r, err := calc.EvalString(c.src)
		if err != nil {
			t.Errorf("%q: unexpected error: %v", c.src, err)
			continue
		}
		if r != c.r {
			t.Errorf("%q: wrong result: want %v, got %v", c.src, c.r, r)
		}
	}
}

func TestEvalErrors(t *testing.T) {
	big := strconv.FormatFloat(math.MaxFloat64, 'f', -1, 64)
	cases := []struct {
		name string
		src  string
		err  interface{}
		col  int
	}{
		{"div-zero", "5/0", new(*calc.DivisionByZeroError), 2},
		{"div-zero-zero", "0/0", new(*calc.DivisionByZeroError), 2},
		{"div-neg-zero", "5/-0", new(*calc.DivisionByZeroError), 2},
		{"div-zero-decimal", "2.6 / 0.0", new(*calc.DivisionByZeroError), 5},
		{"div-zero-expr", "5/(1-1)", new(*calc.DivisionByZeroError), 2},
		{"invalid", "1+x", new(*calc.InvalidCharacterError), 3},
		{"leading", "+1/78", new(*calc.SyntaxError), 1},
		{"trailing", "48 /", new(*calc.SyntaxError), 4},
		{"unbalanced", "(1+2", new(*calc.SyntaxError), 1},
		{"empty", "", new(*calc.SyntaxError), 1},
		{"empty-group", "( )", new(*calc.SyntaxError), 1},
		{"juxtaposed", "2(3)", new(*calc.SyntaxError), 3},
		{"open-op", "(+1)", new(*calc.SyntaxError), 2},
		{"overflow-mul", big + "*10", new(*calc.OverflowError), len(big) + 1},
		{"overflow-add", big + "+" + big, new(*calc.OverflowError), len(big) + 1},
		{"overflow-div", big + "/0.5", new(*calc.OverflowError), len(big) + 1},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r, err := calc.EvalString(c.src)
			if err == nil {
				t.Fatalf("%q: expected error, got %g", c.src, r)
			}
			if !errors.As(err, c.err) {
				t.Errorf("%q: wrong error type %T: %v", c.src, err, err)
			}
			var ie calc.InputError
			if !errors.As(err, &ie) {
				t.Fatalf("%q: %v is not an InputError", c.src, err)
			}
			if ie.Pos() != c.col {
				t.Errorf("%q: wrong position: want %d, got %d", c.src, c.col, ie.Pos())
			}
		})
	}
}

func TestEvaluate(t *testing.T) {
	n := func(v float64, pos int) calc.Token { return calc.Token{Kind: calc.TokenNum, Num: v, Pos: pos} }
	o := func(op calc.Op, pos int) calc.Token { return calc.Token{Kind: calc.TokenOp, Op: op, Pos: pos} }
	cases := []struct {
		name    string
		postfix []calc.Token
		r       float64
		prob    calc.Problem
		col     int
	}{
		{name: "add", postfix: []calc.Token{n(1, 1), n(2, 3), o(calc.OpAdd, 2)}, r: 3},
		{name: "order", postfix: []calc.Token{n(10, 1), n(4, 4), o(calc.OpSub, 3)}, r: 6},
		{name: "div-order", postfix: []calc.Token{n(1, 1), n(4, 3), o(calc.OpDiv, 2)}, r: 0.25},
		{name: "single", postfix: []calc.Token{n(12.111, 1)}, r: 12.111},
		{name: "empty", postfix: nil, prob: calc.ProblemEmpty, col: 1},
		{name: "lone-op", postfix: []calc.Token{o(calc.OpAdd, 1)}, prob: calc.ProblemMissingOperand, col: 1},
		{name: "one-operand", postfix: []calc.Token{n(1, 2), o(calc.OpMul, 1)}, prob: calc.ProblemMissingOperand, col: 1},
		{name: "extra", postfix: []calc.Token{n(1, 1), n(2, 5)}, prob: calc.ProblemExtraOperand, col: 5},
		{name: "paren", postfix: []calc.Token{n(1, 2), {Kind: calc.TokenOpen, Pos: 1}}, prob: calc.ProblemUnclosedParen, col: 1},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r, err := calc.Evaluate(c.postfix)
			if c.prob == 0 {
				require.NoError(t, err)
				require.Equal(t, c.r, r)
				return
			}
			var se *calc.SyntaxError
			require.ErrorAs(t, err, &se)
			require.Equal(t, c.prob, se.Problem)
			require.Equal(t, c.col, se.Col)
		})
	}
}

func TestScenarios(t *testing.T) {
	r, err := calc.EvalString("1 + 2")
	require.NoError(t, err)
	require.Equal(t, 3.0, r)

	e, err := calc.Compile(strings.NewReader("2+4*3"))
	require.NoError(t, err)
	require.Equal(t, "2 4 3 * +", e.String())
	r, err = e.Eval()
	require.NoError(t, err)
	require.Equal(t, 14.0, r)

	_, err = calc.EvalString("+1/78")
	var se *calc.SyntaxError
	require.ErrorAs(t, err, &se)
	require.Equal(t, calc.ProblemLeadingOperator, se.Problem)

	r, err = calc.EvalString("5/0")
	var dz *calc.DivisionByZeroError
	require.ErrorAs(t, err, &dz)
	require.False(t, math.IsInf(r, 0))
	require.EqualError(t, err, "2: invalid division by zero")
}

func TestEvalLines(t *testing.T) {
	src := strings.NewReader("1+2\n(4-2)*3.5\n5/0\n")
	want := []float64{3, 7}
	for _, w := range want {
		r, err := calc.Eval(src, calc.StopOn('\n'))
		require.NoError(t, err)
		require.Equal(t, w, r)
	}
	_, err := calc.Eval(src, calc.StopOn('\n'))
	require.ErrorAs(t, err, new(*calc.DivisionByZeroError))
}

func TestEvalConcurrent(t *testing.T) {
	e, err := calc.Compile(strings.NewReader("-5+-8+11*2"))
	require.NoError(t, err)
	var g errgroup.Group
	for i := 0; i < 16; i++ {
		i := i
		g.Go(func() error {
			r, err := e.Eval()
			if err != nil {
				return err
			}
			if r != 9 {
				return errors.New("wrong shared result " + strconv.FormatFloat(r, 'g', -1, 64))
			}
			src := strconv.Itoa(i) + "*2"
			r, err = calc.EvalString(src)
			if err != nil {
				return err
			}
			if r != float64(i*2) {
				return errors.New("wrong result for " + src)
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())
}
