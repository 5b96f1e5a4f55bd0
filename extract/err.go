package extract

import (
	"errors"

	"opgen/translate"
)

var f = translate.From

var (
	// Document errors
	ErrNoText = errors.New(f("no extractable text"))
)

// ErrDocumentRead indicates the reference document could not be opened or
// decoded.
type ErrDocumentRead struct {
	Err error
}

func (err *ErrDocumentRead) Error() string {
	return f("document unreadable: %v", err.Err)
}

func (err *ErrDocumentRead) Unwrap() error {
	return err.Err
}

// ErrPage indicates the location of a page decode error.
type ErrPage struct {
	PageNo int
	Err    error
}

func (err *ErrPage) Error() string {
	return f("page %d %v", err.PageNo, err.Err)
}

func (err *ErrPage) Unwrap() error {
	return err.Err
}
