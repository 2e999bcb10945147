package util

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
)

// error

// Fields carries structured context (vertex ids, counts, limits) attached to an Error.
type Fields map[string]interface{}

type Error struct {
	orig   error
	msg    string
	code   error
	fields Fields
}

func (e *Error) Error() string {
	if len(e.fields) == 0 {
		return e.msg
	}

	keys := make([]string, 0, len(e.fields))
	for k := range e.fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var sb strings.Builder
	sb.WriteString(e.msg)
	sb.WriteString(" (")
	for i, k := range keys {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%s=%v", k, e.fields[k])
	}
	sb.WriteString(")")
	return sb.String()
}

func (e *Error) Unwrap() error {
	return e.orig
}

// Is reports whether target is the error code of e, so errors.Is(err, ErrMalformedInput) works
// without the code being part of the unwrap chain.
func (e *Error) Is(target error) bool {
	return e.code != nil && target == e.code
}

func (e *Error) Code() error {
	return e.code
}

func (e *Error) Fields() Fields {
	return e.fields
}

func WrapErrorf(orig error, code error, format string, a ...interface{}) error {
	return &Error{
		code: code,
		orig: orig,
		msg:  fmt.Sprintf(format, a...),
	}
}

// NewErrorf builds a tagged error with structured context.
func NewErrorf(code error, fields Fields, format string, a ...interface{}) *Error {
	return &Error{
		code:   code,
		msg:    fmt.Sprintf(format, a...),
		fields: fields,
	}
}

var (
	// ErrConfiguration: the request cannot be served as configured (e.g. fewer than 2 vertices
	// for a cut, zero trials).
	ErrConfiguration = errors.New("configuration error")
	// ErrMalformedInput: the input graph references vertices that do not exist or is otherwise
	// inconsistent.
	ErrMalformedInput = errors.New("malformed input")
	// ErrInvariantViolation: an internal correctness guarantee was broken. Never a caller error.
	ErrInvariantViolation = errors.New("invariant violation")
)

var MessageInternalServerError string = "internal server error"

// CodeOf returns the tagged code of err, or nil when err carries none.
func CodeOf(err error) error {
	var e *Error
	if errors.As(err, &e) {
		return e.code
	}
	return nil
}

func StopConcurrentOperation(ctx context.Context) bool {
	select {
	case <-ctx.Done():
		return true
	default:
		return false
	}
}

// AssertInvariant panics with an ErrInvariantViolation tagged error when cond is false.
func AssertInvariant(cond bool, fields Fields, format string, a ...interface{}) {
	if !cond {
		panic(NewErrorf(ErrInvariantViolation, fields, format, a...))
	}
}

// CatchInvariant runs f and returns the error of an AssertInvariant panic raised inside it. Other
// panics propagate. Worker goroutines use it so a broken invariant reaches the caller as an error.
func CatchInvariant(f func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			e, ok := r.(*Error)
			if !ok || !errors.Is(e, ErrInvariantViolation) {
				panic(r)
			}
			err = e
		}
	}()
	return f()
}

func MinInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func MaxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
