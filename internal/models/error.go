package models

import "errors"

// Error taxonomy per §7. No package currently returns or wraps these
// sentinels; read and context-parse failures surface as the underlying
// errors wrapped with fmt.Errorf.
var (
	// ErrInputUnavailable covers a Source Unit whose bytes could not be read.
	ErrInputUnavailable = errors.New("input unavailable")

	// ErrMalformedContext covers C8 context input that failed to parse.
	ErrMalformedContext = errors.New("malformed context input")
)
