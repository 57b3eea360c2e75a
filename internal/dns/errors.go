package dns

import "errors"

var (
	// ErrDNSError is a sentinel error for DNS wire-format violations.
	// Wrap this with fmt.Errorf("context: %w", ErrDNSError) to add context.
	ErrDNSError = errors.New("dns wire error")

	// ErrInvalidFieldValue reports a header field whose numeric value does
	// not fit its wire field, e.g. an opcode above 15. Raised synchronously
	// at encode time and surfaced to the immediate caller; never retried.
	ErrInvalidFieldValue = errors.New("invalid header field value")
)
