package calc

import (
	"io"
	"strings"
)

// ToPostfix reorders an infix token sequence into postfix order using the
// shunting-yard algorithm. Parentheses are removed from the result. Operators
// of equal precedence group left to right.
func ToPostfix(tokens []Token) ([]Token, error) {
	out := make([]Token, 0, len(tokens))
	// ops holds only operator and open parenthesis tokens.
	var ops []Token
	for _, tok := range tokens {
		switch tok.Kind {
		case TokenNum:
			out = append(out, tok)
		case TokenOpen:
			ops = append(ops, tok)
		case TokenClose:
			for {
				if len(ops) == 0 {
					return nil, &SyntaxError{Col: tok.Pos, Problem: ProblemUnopenedParen}
				}
				top := ops[len(ops)-1]
				ops = ops[:len(ops)-1]
				if top.Kind == TokenOpen {
					break
				}
				out = append(out, top)
			}
		case TokenOp:
			p := tok.Op.prec()
			for len(ops) > 0 {
				top := ops[len(ops)-1]
				if top.Kind != TokenOp || top.Op.prec() < p {
					break
				}
				out = append(out, top)
				ops = ops[:len(ops)-1]
			}
			ops = append(ops, tok)
		default:
			panic("calc: unknown token: " + tok.String())
		}
	}
	for len(ops) > 0 {
		top := ops[len(ops)-1]
		ops = ops[:len(ops)-1]
		if top.Kind == TokenOpen {
			return nil, &SyntaxError{Col: top.Pos, Problem: ProblemUnclosedParen}
		}
		out = append(out, top)
	}
	return out, nil
}

// Expr is an expression converted to postfix order, ready to be evaluated.
// An Expr is immutable and safe for concurrent use.
type Expr struct {
	postfix []Token
}

// Compile tokenizes an infix expression and converts it to postfix order.
// Structural errors other than a wrong number of operands are reported here;
// those are reported by Eval.
func Compile(src io.RuneScanner, opts ...TokenizeOption) (*Expr, error) {
	toks, err := Tokenize(src, opts...)
	if err != nil {
		return nil, err
	}
	postfix, err := ToPostfix(toks)
	if err != nil {
		return nil, err
	}
	return &Expr{postfix: postfix}, nil
}

// Eval evaluates the expression.
func (e *Expr) Eval() (float64, error) {
	return Evaluate(e.postfix)
}

// Postfix returns a copy of the expression's tokens in postfix order.
func (e *Expr) Postfix() []Token {
	return append([]Token(nil), e.postfix...)
}

// String formats the expression in postfix order with tokens separated by
// spaces, e.g. "2 4 3 * +".
func (e *Expr) String() string {
	var b strings.Builder
	fmtTokens(&b, e.postfix)
	return b.String()
}
