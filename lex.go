package calc

import (
	"errors"
	"io"
	"strconv"
	"strings"
	"unicode"
)

// Operators contains the runes which are considered to be binary operators.
const Operators = "+-*/"

type lexer struct {
	src  io.RuneScanner
	buf  strings.Builder
	rune int
	// prev is the kind of the last token scanned, or tokenNone at the start
	// of the expression.
	prev TokenKind
	// stop is a string containing the runes that end the expression.
	stop string
	eof  bool
}

func lex(src io.RuneScanner, opts ...TokenizeOption) *lexer {
	l := lexer{src: src}
	for _, opt := range opts {
		opt.tokenizeOption(&l)
	}
	return &l
}

// readRune reads the next non-whitespace rune from the src and updates the
// lexer's position info. Whitespace runes which end the expression are
// returned like any other.
func (l *lexer) readRune() (rune, error) {
	for {
		r, sz, err := l.src.ReadRune()
		if sz > 0 {
			l.rune++
		}
		if err != nil {
			return r, err
		}
		if unicode.IsSpace(r) && !strings.ContainsRune(l.stop, r) {
			continue
		}
		return r, nil
	}
}

// unreadRune unreads a rune from the src and updates the lexer's position
// info. Panics if unreading returns an error.
func (l *lexer) unreadRune() {
	if err := l.src.UnreadRune(); err != nil {
		panic(err)
	}
	l.rune--
}

// peek returns the next non-whitespace rune and its column without consuming
// it. At the end of the expression, the rune is -1.
func (l *lexer) peek() (rune, int, error) {
	r, err := l.readRune()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return -1, l.rune, nil
		}
		return -1, l.rune, err
	}
	col := l.rune
	l.unreadRune()
	if strings.ContainsRune(l.stop, r) {
		return -1, col, nil
	}
	return r, col, nil
}

// next scans the next token from the input. At the end of the expression,
// whether from EOF or a stop rune, the result is an empty token with io.EOF.
func (l *lexer) next() (Token, error) {
	if l.eof {
		return Token{}, io.EOF
	}
	r, err := l.readRune()
	if err != nil {
		if errors.Is(err, io.EOF) {
			l.eof = true
		}
		return Token{}, err
	}
	tok := Token{Pos: l.rune}
	switch {
	case strings.ContainsRune(l.stop, r):
		l.eof = true
		return Token{}, io.EOF
	case isDigit(r), r == '.':
		l.unreadRune()
		return l.number(tok, false)
	case r == '(':
		tok.Kind = TokenOpen
	case r == ')':
		tok.Kind = TokenClose
	default:
		op := opFor(r)
		if op == opNone {
			return tok, &InvalidCharacterError{Col: tok.Pos, Char: r}
		}
		return l.operator(tok, op)
	}
	l.prev = tok.Kind
	return tok, nil
}

// operator finishes scanning a token that starts with an operator rune. A
// minus sign may instead become part of a negative number, and two minus
// signs in a row become addition.
func (l *lexer) operator(tok Token, op Op) (Token, error) {
	if op == OpSub {
		r, col, err := l.peek()
		if err != nil {
			return tok, err
		}
		switch {
		case r == '-':
			l.readRune()
			op = OpAdd
		case l.prev != TokenNum && l.prev != TokenClose:
			// Unary minus belongs to the number that follows it.
			switch {
			case isDigit(r), r == '.':
				return l.number(tok, true)
			case r == -1:
				return tok, &SyntaxError{Col: tok.Pos, Problem: ProblemTrailingOperator}
			case opFor(r) != opNone:
				return tok, &SyntaxError{Col: col, Problem: ProblemDoubleOperator}
			case r == '(', r == ')':
				return tok, &SyntaxError{Col: tok.Pos, Problem: ProblemDanglingMinus}
			default:
				return tok, &InvalidCharacterError{Col: col, Char: r}
			}
		}
	}
	if l.prev == TokenOp {
		return tok, &SyntaxError{Col: tok.Pos, Problem: ProblemDoubleOperator}
	}
	tok.Kind = TokenOp
	tok.Op = op
	l.prev = TokenOp
	return tok, nil
}

// number scans a run of digits with at most one decimal point. If neg is
// true, the minus sign has already been consumed.
func (l *lexer) number(tok Token, neg bool) (Token, error) {
	defer l.buf.Reset()
	if neg {
		l.buf.WriteByte('-')
	}
	dot := false
	for {
		r, err := l.readRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return tok, err
		}
		if r == '.' {
			if dot {
				return tok, &SyntaxError{Col: l.rune, Problem: ProblemDoubleDecimal}
			}
			dot = true
		} else if !isDigit(r) {
			l.unreadRune()
			break
		}
		l.buf.WriteRune(r)
	}
	v, err := strconv.ParseFloat(l.buf.String(), 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return tok, &SyntaxError{Col: tok.Pos, Problem: ProblemNumberRange}
		}
		return tok, &SyntaxError{Col: tok.Pos, Problem: ProblemNumber}
	}
	tok.Kind = TokenNum
	tok.Num = v
	l.prev = TokenNum
	return tok, nil
}

func isDigit(r rune) bool {
	return '0' <= r && r <= '9'
}

// Tokenize scans an infix expression into tokens. Whitespace is ignored
// everywhere, including within numbers, unless StopOn selects it to end the
// expression. The result never begins or ends with an operator.
func Tokenize(src io.RuneScanner, opts ...TokenizeOption) ([]Token, error) {
	scan := lex(src, opts...)
	var toks []Token
	for {
		tok, err := scan.next()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, err
		}
		toks = append(toks, tok)
	}
	if len(toks) == 0 {
		return nil, nil
	}
	if first := toks[0]; first.Kind == TokenOp {
		return nil, &SyntaxError{Col: first.Pos, Problem: ProblemLeadingOperator}
	}
	if last := toks[len(toks)-1]; last.Kind == TokenOp {
		return nil, &SyntaxError{Col: last.Pos, Problem: ProblemTrailingOperator}
	}
	return toks, nil
}

// TokenizeString is a shortcut to tokenize a string expression.
func TokenizeString(src string) ([]Token, error) {
	return Tokenize(strings.NewReader(src))
}
