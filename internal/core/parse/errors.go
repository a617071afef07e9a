package parse

import (
	"errors"
	"fmt"
)

// ErrValueParse marks a literal token that could not be converted to its
// target primitive type, e.g. an integer outside the 32-bit range.
var ErrValueParse = errors.New("value parse error")

// Error is a grammar violation, carrying the rule that failed and the source
// position of the offending token.
type Error struct {
	Pos  Pos
	Rule string
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s: %s", e.Pos, e.Rule, e.Msg)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func errAt(pos Pos, rule, format string, args ...any) *Error {
	return &Error{Pos: pos, Rule: rule, Msg: fmt.Sprintf(format, args...)}
}

func errValue(pos Pos, rule, format string, args ...any) *Error {
	return &Error{Pos: pos, Rule: rule, Msg: fmt.Sprintf(format, args...), Err: ErrValueParse}
}
