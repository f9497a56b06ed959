package ipcalc

import "errors"

var (
	ErrInvalidFormat = errors.New("invalid IP address format")
	ErrInvalidCIDR   = errors.New("invalid CIDR notation")
)

// ParseError reports a rejected address or CIDR token. Input always holds the
// text exactly as the caller supplied it.
type ParseError struct {
	// Kind is ErrInvalidFormat or ErrInvalidCIDR.
	Kind   error
	Input  string
	Reason string
	Err    error
}

func (e *ParseError) Error() string {
	msg := e.Kind.Error() + ": " + e.Input
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *ParseError) Is(target error) bool {
	return target == e.Kind
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

func formatError(input, reason string) error {
	return &ParseError{Kind: ErrInvalidFormat, Input: input, Reason: reason}
}

func cidrError(input, reason string, cause error) error {
	return &ParseError{Kind: ErrInvalidCIDR, Input: input, Reason: reason, Err: cause}
}
