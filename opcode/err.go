package opcode

import (
	"errors"

	"opgen/translate"
)

var f = translate.From

var (
	// Amendment errors
	ErrAmendSyntax     = errors.New(f("amendment syntax"))
	ErrEquateSyntax    = errors.New(f(".equ syntax"))
	ErrEquateDuplicate = errors.New(f(".equ duplicated"))
)

type ErrDirectiveInvalid string

func (err ErrDirectiveInvalid) Error() string {
	return f("directive %v invalid", string(err))
}

type ErrParseNumber string

func (err ErrParseNumber) Error() string {
	return f("'%v' is not a number", string(err))
}

type ErrParseExpression string

func (err ErrParseExpression) Error() string {
	return f("$(%v) is not a valid expression", string(err))
}

type ErrValueRange string

func (err ErrValueRange) Error() string {
	return f("'%v' does not fit in u8", string(err))
}

// ErrSyntax wraps an amendment error with the offending line.
type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err ErrSyntax) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err ErrSyntax) Unwrap() error {
	return err.Err
}
