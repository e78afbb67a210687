package calc

import (
	"io"
	"math"
	"strings"
)

// operand is a value on the evaluation stack, with the position of the token
// that produced it.
type operand struct {
	v   float64
	pos int
}

// Evaluate computes the value of a postfix token sequence. Exactly one value
// must remain after all operators are applied.
func Evaluate(postfix []Token) (float64, error) {
	stack := make([]operand, 0, len(postfix)/2+1)
	for _, tok := range postfix {
		switch tok.Kind {
		case TokenNum:
			stack = append(stack, operand{tok.Num, tok.Pos})
		case TokenOp:
			if len(stack) < 2 {
				return 0, &SyntaxError{Col: tok.Pos, Problem: ProblemMissingOperand}
			}
			r := stack[len(stack)-1]
			l := &stack[len(stack)-2]
			stack = stack[:len(stack)-1]
			v, err := apply(tok, l.v, r.v)
			if err != nil {
				return 0, err
			}
			l.v = v
		case TokenOpen:
			return 0, &SyntaxError{Col: tok.Pos, Problem: ProblemUnclosedParen}
		case TokenClose:
			return 0, &SyntaxError{Col: tok.Pos, Problem: ProblemUnopenedParen}
		default:
			panic("calc: unknown token: " + tok.String())
		}
	}
	switch len(stack) {
	case 0:
		return 0, &SyntaxError{Col: 1, Problem: ProblemEmpty}
	case 1:
		return stack[0].v, nil
	default:
		return 0, &SyntaxError{Col: stack[1].pos, Problem: ProblemExtraOperand}
	}
}

// apply computes l op r for an operator token.
func apply(tok Token, l, r float64) (float64, error) {
	var v float64
	switch tok.Op {
	case OpAdd:
		v = l + r
	case OpSub:
		v = l - r
	case OpMul:
		v = l * r
	case OpDiv:
		if r == 0 {
			return 0, &DivisionByZeroError{Col: tok.Pos}
		}
		v = l / r
	default:
		panic("calc: invalid operator " + tok.Op.String())
	}
	// Operands are finite, so anything else is overflow.
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, &OverflowError{Col: tok.Pos, Op: tok.Op}
	}
	return v, nil
}

// Eval is a shortcut to tokenize, convert, and evaluate an expression.
func Eval(src io.RuneScanner, opts ...TokenizeOption) (float64, error) {
	e, err := Compile(src, opts...)
	if err != nil {
		return 0, err
	}
	return e.Eval()
}

// EvalString is a shortcut to evaluate a string expression.
func EvalString(src string) (float64, error) {
	return Eval(strings.NewReader(src))
}
