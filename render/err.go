package render

import (
	"opgen/translate"
)

var f = translate.From

type ErrFormatInvalid string

func (err ErrFormatInvalid) Error() string {
	return f("format %v unknown", string(err))
}

// ErrFileWrite indicates the output file could not be created or written.
type ErrFileWrite struct {
	Path string
	Err  error
}

func (err *ErrFileWrite) Error() string {
	return f("write %v: %v", err.Path, err.Err)
}

func (err *ErrFileWrite) Unwrap() error {
	return err.Err
}
