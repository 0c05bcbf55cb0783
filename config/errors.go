package config

import (
	"errors"
	"fmt"
)

// Kind classifies a fatal failure.
type Kind int

const (
	// Generic covers every failure not named below.
	Generic Kind = iota
	// Usage is a wrong argument count or an unknown option value.
	Usage
	// NotFound means the config path does not name a readable file.
	NotFound
	// Parse means the file content is not valid structured data.
	Parse
)

func (k Kind) String() string {
	switch k {
	case Usage:
		return "usage"
	case NotFound:
		return "not-found"
	case Parse:
		return "parse"
	default:
		return "generic"
	}
}

// ErrEmpty is returned when the document parses but holds nothing.
// Callers treat it as a warning.
var ErrEmpty = errors.New("config file is empty")

// Error is a classified config or command failure.
type Error struct {
	Kind Kind
	Path string
	Err  error
}

func (e *Error) Error() string {
	if e.Path == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("%s: %v", e.Path, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// NewError wraps err with a kind. A nil err yields nil.
func NewError(kind Kind, path string, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Kind: kind, Path: path, Err: err}
}

// KindOf reports the kind of err, Generic when it carries none.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return Generic
}
