package calc

import "strconv"

// InvalidCharacterError is an error indicating a character that cannot appear
// in an expression. It implements InputError.
type InvalidCharacterError struct {
	// Col is the position of the character.
	Col int
	// Char is the character that was not understood.
	Char rune
}

func (err *InvalidCharacterError) Error() string {
	return errpos(err.Col, strconv.QuoteRune(err.Char)+" is invalid")
}

func (err *InvalidCharacterError) Pos() int {
	return err.Col
}

// SyntaxError is an error indicating a structural problem with an expression.
// It implements InputError.
type SyntaxError struct {
	// Col is the position of the token where the problem was detected.
	Col int
	// Problem describes what is wrong.
	Problem Problem
}

func (err *SyntaxError) Error() string {
	return errpos(err.Col, "syntax error: "+err.Problem.String())
}

func (err *SyntaxError) Pos() int {
	return err.Col
}

// Problem is a kind of syntax error.
type Problem int8

const (
	problemNone Problem = iota
	// ProblemEmpty is an expression with no numbers, including ().
	ProblemEmpty
	// ProblemLeadingOperator is an expression that begins with a binary
	// operator, e.g. +1.
	ProblemLeadingOperator
	// ProblemTrailingOperator is an expression that ends with an operator.
	ProblemTrailingOperator
	// ProblemDoubleOperator is two operators in a row, other than -- or an
	// operator followed by a negative number.
	ProblemDoubleOperator
	// ProblemDoubleDecimal is a number with two decimal points.
	ProblemDoubleDecimal
	// ProblemDanglingMinus is a unary minus that is not followed by a number,
	// e.g. -(1).
	ProblemDanglingMinus
	// ProblemNumber is a malformed number, e.g. a lone decimal point.
	ProblemNumber
	// ProblemNumberRange is a number too large to represent.
	ProblemNumberRange
	// ProblemUnclosedParen is an open parenthesis with no close parenthesis.
	ProblemUnclosedParen
	// ProblemUnopenedParen is a close parenthesis with no open parenthesis.
	ProblemUnopenedParen
	// ProblemMissingOperand is an operator without two operands.
	ProblemMissingOperand
	// ProblemExtraOperand is an operand without an operator, e.g. 2(3).
	ProblemExtraOperand
)

func (p Problem) String() string {
	switch p {
	case ProblemEmpty:
		return "no expression"
	case ProblemLeadingOperator:
		return "expression cannot start with an operator"
	case ProblemTrailingOperator:
		return "expression cannot end with an operator"
	case ProblemDoubleOperator:
		return "two operators in a row"
	case ProblemDoubleDecimal:
		return "number with two decimal points"
	case ProblemDanglingMinus:
		return "minus sign must be followed by a number"
	case ProblemNumber:
		return "malformed number"
	case ProblemNumberRange:
		return "number out of range"
	case ProblemUnclosedParen:
		return "open parenthesis with no close parenthesis"
	case ProblemUnopenedParen:
		return "close parenthesis with no open parenthesis"
	case ProblemMissingOperand:
		return "operator is missing an operand"
	case ProblemExtraOperand:
		return "operand is missing an operator"
	default:
		return "Problem(" + strconv.Itoa(int(p)) + ")"
	}
}

// DivisionByZeroError is an error indicating division by exactly zero.
// It implements InputError.
type DivisionByZeroError struct {
	// Col is the position of the division operator.
	Col int
}

func (err *DivisionByZeroError) Error() string {
	return errpos(err.Col, "invalid division by zero")
}

func (err *DivisionByZeroError) Pos() int {
	return err.Col
}

// OverflowError is an error indicating an operation whose result is too large
// to represent. It implements InputError.
type OverflowError struct {
	// Col is the position of the operator.
	Col int
	// Op is the operator that overflowed.
	Op Op
}

func (err *OverflowError) Error() string {
	return errpos(err.Col, "result of "+strconv.Quote(err.Op.String())+" out of range")
}

func (err *OverflowError) Pos() int {
	return err.Col
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

// InputError is an error with position information. Every error resulting from
// invalid input implements InputError.
type InputError interface {
	error
	// Pos returns the position of the error as the number of runes up to and
	// including the start of the token that caused the error.
	Pos() int
}

var (
	_ InputError = (*InvalidCharacterError)(nil)
	_ InputError = (*SyntaxError)(nil)
	_ InputError = (*DivisionByZeroError)(nil)
	_ InputError = (*OverflowError)(nil)
)
