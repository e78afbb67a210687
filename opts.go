package calc

import (
	"strconv"
	"unicode"
)

// TokenizeOption is an option for tokenizing.
type TokenizeOption interface {
	tokenizeOption(*lexer)
}

type stopopt string

// StopOn tells the tokenizer to treat a list of characters as ending the
// expression. Each rune must be a comma, semicolon, or whitespace codepoint.
// Whitespace selected this way is no longer ignored, so e.g. StopOn('\n')
// evaluates each line of a multi-line input separately.
//
// StopOn overrides the effect of any previous StopOn in the options. With no
// arguments, StopOn produces the default termination behavior, which is to
// tokenize to EOF.
func StopOn(chars ...rune) TokenizeOption {
	v := make([]rune, 0, len(chars))
	have := func(r rune) bool {
		for _, c := range v {
			if r == c {
				return true
			}
		}
		return false
	}
	for _, r := range chars {
		switch {
		case r == ',', r == ';', unicode.IsSpace(r):
			if have(r) {
				continue
			}
			v = append(v, r)
		default:
			panic("calc: cannot stop on " + strconv.QuoteRune(r))
		}
	}
	return stopopt(v)
}

func (o stopopt) tokenizeOption(l *lexer) {
	l.stop = string(o)
}
