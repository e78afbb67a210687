// Package calc implements a double-precision calculator for infix arithmetic.
//
// Expressions contain decimal numbers, the operators + - * /, and parentheses.
// "*" and "/" bind tighter than "+" and "-", and operators of equal precedence
// group left to right. Whitespace is ignored everywhere, even inside numbers.
// A minus sign at the start of an expression, after "(", or after another
// operator is part of the number that follows it, so "5*-4" is valid but
// "-(4)" is not; "--" is the same as "+".
//
// Evaluation happens in three stages, each available on its own: Tokenize
// scans the input, ToPostfix reorders the tokens into reverse Polish notation,
// and Evaluate computes the result on a stack. Every error from invalid input
// implements InputError. Division by zero is an error rather than infinity.
package calc
