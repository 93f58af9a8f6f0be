package cimerr

import "fmt"

// Option is an Error option function
type Option func(*Error)

func WithMessage(msg string) Option { return func(e *Error) { e.Message = msg } }
func WithElement(elem string) Option { return func(e *Error) { e.Element = elem } }

// WithMessagef sets a formatted message
func WithMessagef(format string, args ...interface{}) Option {
	return func(e *Error) { e.Message = fmt.Sprintf(format, args...) }
}
