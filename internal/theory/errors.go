package theory

import "errors"

var (
	ErrInvalidAccidental     = errors.New("invalid accidental")
	ErrInvalidNote           = errors.New("invalid note name")
	ErrInvalidInterval       = errors.New("invalid interval")
	ErrInvalidAccidentalMode = errors.New("invalid accidental mode")
)
