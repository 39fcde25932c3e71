package chord

import (
	"errors"
	"fmt"
)

var (
	ErrDegreeSyntax        = errors.New("degree syntax error")
	ErrInvalidRoot         = errors.New("invalid root")
	ErrUnrecognizedQuality = errors.New("quality or alteration unrecognized")
	ErrInvalidAlteration   = errors.New("invalid alteration")
	ErrConflictingMacro    = errors.New("conflicting macro")
)

var errorKinds = map[error]string{
	ErrDegreeSyntax:        "degree_syntax",
	ErrInvalidRoot:         "invalid_root",
	ErrUnrecognizedQuality: "unrecognized_quality",
	ErrInvalidAlteration:   "invalid_alteration",
	ErrConflictingMacro:    "conflicting_macro",
}

// ParseError reports a chord symbol that could not be parsed. Fragment is the
// part of the cleaned symbol the failure is anchored at.
type ParseError struct {
	Symbol   string
	Fragment string
	Err      error
}

func (e *ParseError) Error() string {
	if e.Fragment == "" {
		return fmt.Sprintf("chord %q: %v", e.Symbol, e.Err)
	}
	return fmt.Sprintf("chord %q: %v at %q", e.Symbol, e.Err, e.Fragment)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Kind returns a stable identifier for the error class, used in API
// responses and metrics.
func (e *ParseError) Kind() string {
	for sentinel, kind := range errorKinds {
		if errors.Is(e.Err, sentinel) {
			return kind
		}
	}
	return "unknown"
}

// InvariantError is raised with panic when the grammar contradicts itself.
// It marks a defect in the parser, never bad input.
type InvariantError struct {
	Symbol string
	Detail string
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("chord parser invariant violated for %q: %s", e.Symbol, e.Detail)
}
