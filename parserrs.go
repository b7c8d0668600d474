package clicalc

import "strconv"

// ParseError indicates a token at a position where it cannot appear, or a
// required token that is missing. It implements InputError.
type ParseError struct {
	// Col is the position of the offending token.
	Col int
	// Msg describes what the parser found or was missing.
	Msg string
}

func (err *ParseError) Error() string {
	return errpos(err.Col, err.Msg)
}

func (err *ParseError) Pos() int {
	return err.Col
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

// InputError is an error with position information. Every error resulting
// from invalid input text implements InputError; evaluation errors do not,
// because the syntax tree no longer carries source positions.
type InputError interface {
	error
	// Pos returns the position of the error as the number of runes up to
	// and including the start of the token that caused the error.
	Pos() int
}

var (
	_ InputError = (*LexError)(nil)
	_ InputError = (*ParseError)(nil)
)
