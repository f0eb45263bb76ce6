package idgen

import (
	"io"

	"github.com/google/uuid"
)

// NewFunc returns a new globally unique identifier as string. Override in tests.
var NewFunc = func() string { return uuid.New().String() }

// New returns a new identifier.
func New() string { return NewFunc() }

// FromReader returns a version 4 identifier built from the supplied entropy
// source, so that a seeded source yields a reproducible sequence. It falls back
// to New when the reader fails or is nil.
func FromReader(r io.Reader) string {
	if r == nil {
		return New()
	}
	id, err := uuid.NewRandomFromReader(r)
	if err != nil {
		return New()
	}
	return id.String()
}
