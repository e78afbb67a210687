package calc

import (
	"strconv"
	"strings"
)

// Token is a single element of an infix or postfix expression.
type Token struct {
	// Kind selects which of the other fields are meaningful.
	Kind TokenKind
	// Op is the operator of a TokenOp token.
	Op Op
	// Num is the value of a TokenNum token. It is always finite.
	Num float64
	// Pos is the position of the token as the number of runes up to and
	// including its first rune.
	Pos int
}

func (t Token) String() string {
	switch t.Kind {
	case TokenNum:
		return strconv.FormatFloat(t.Num, 'g', -1, 64)
	case TokenOp:
		return t.Op.String()
	case TokenOpen:
		return "("
	case TokenClose:
		return ")"
	default:
		return "<" + t.Kind.String() + "@" + strconv.Itoa(t.Pos) + ">"
	}
}

// TokenKind is the variant of a token.
type TokenKind int8

const (
	tokenNone TokenKind = iota
	// TokenNum is a number, including its sign.
	TokenNum
	// TokenOp is a binary operator.
	TokenOp
	// TokenOpen is an open parenthesis.
	TokenOpen
	// TokenClose is a close parenthesis.
	TokenClose
)

func (k TokenKind) String() string {
	switch k {
	case tokenNone:
		return "None"
	case TokenNum:
		return "Num"
	case TokenOp:
		return "Op"
	case TokenOpen:
		return "Open"
	case TokenClose:
		return "Close"
	default:
		return "TokenKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Op is a binary arithmetic operator.
type Op int8

const (
	opNone Op = iota
	OpAdd
	OpSub
	OpMul
	OpDiv
)

func (op Op) String() string {
	switch op {
	case OpAdd:
		return "+"
	case OpSub:
		return "-"
	case OpMul:
		return "*"
	case OpDiv:
		return "/"
	default:
		return "Op(" + strconv.Itoa(int(op)) + ")"
	}
}

// prec is the precedence of the operator. Higher is more binding. All
// operators are left-associative.
func (op Op) prec() int8 {
	switch op {
	case OpAdd, OpSub:
		return 1
	case OpMul, OpDiv:
		return 2
	default:
		return 0
	}
}

// opFor gets the operator for a rune. If there is no such operator, the result
// is opNone.
func opFor(r rune) Op {
	switch r {
	case '+':
		return OpAdd
	case '-':
		return OpSub
	case '*':
		return OpMul
	case '/':
		return OpDiv
	default:
		return opNone
	}
}

// fmtTokens writes tokens separated by single spaces.
func fmtTokens(b *strings.Builder, toks []Token) {
	for i, tok := range toks {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(tok.String())
	}
}
