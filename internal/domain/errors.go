// Package domain defines the error kinds shared by every launcher
// component. Each invocation ends in exactly one of three outcomes:
// an instance was spawned, a handshake completed, or one specific
// error kind was reported. The entry point maps the kind to the
// process exit code and the diagnostic line.
package domain

import (
	"errors"
	"fmt"
)

// Kind names a terminal failure category. The string value is the
// diagnostic name printed to the error stream, so it is part of the
// CLI surface and must stay stable.
type Kind string

const (
	// KindMissingEnvironment means a required home/profile variable
	// was absent, so the socket path could not be resolved.
	KindMissingEnvironment Kind = "MissingEnvironment"

	// KindSpawnFailed means the instance executable could not be
	// started (missing file, exec permission, resource limits).
	KindSpawnFailed Kind = "SpawnFailed"

	// KindUnknownReady means the peer's first handshake reply was not
	// byte-identical to the READY literal.
	KindUnknownReady Kind = "UnknownReady"

	// KindUnknownOk means the peer's second handshake reply was not
	// byte-identical to the OK literal.
	KindUnknownOk Kind = "UnknownOk"

	// KindMalformedPayload means a line did not decode as an args
	// payload.
	KindMalformedPayload Kind = "MalformedPayload"

	// KindMessageTooLarge means a wire line exceeded the fixed size
	// bound. The line is rejected whole, never truncated.
	KindMessageTooLarge Kind = "MessageTooLarge"

	// KindChannelIO means the socket failed mid-handshake while
	// writing (broken pipe and friends). Distinct from the mismatch
	// kinds: a write failure says nothing about what the peer sent.
	KindChannelIO Kind = "ChannelIo"

	// KindTimeout means a handshake read deadline expired before the
	// peer replied.
	KindTimeout Kind = "Timeout"
)

// Error carries a Kind plus an optional underlying cause. It supports
// errors.Is against the sentinel values below, matching on Kind alone.
type Error struct {
	Kind Kind
	Err  error
}

// Sentinels for errors.Is checks. Comparison is by Kind, so wrapped
// instances produced by New and Wrap match these.
var (
	ErrMissingEnvironment = &Error{Kind: KindMissingEnvironment}
	ErrSpawnFailed        = &Error{Kind: KindSpawnFailed}
	ErrUnknownReady       = &Error{Kind: KindUnknownReady}
	ErrUnknownOk          = &Error{Kind: KindUnknownOk}
	ErrMalformedPayload   = &Error{Kind: KindMalformedPayload}
	ErrMessageTooLarge    = &Error{Kind: KindMessageTooLarge}
	ErrChannelIO          = &Error{Kind: KindChannelIO}
	ErrTimeout            = &Error{Kind: KindTimeout}
)

// New returns an Error of the given kind with a formatted message.
func New(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Err: fmt.Errorf(format, args...)}
}

// Wrap attaches a kind to an underlying error. A nil cause yields an
// Error carrying the kind alone.
func Wrap(kind Kind, err error) *Error {
	return &Error{Kind: kind, Err: err}
}

func (e *Error) Error() string {
	if e.Err == nil {
		return string(e.Kind)
	}
	return fmt.Sprintf("%s: %v", e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches any *Error with the same Kind, so sentinel comparison
// ignores the wrapped cause.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

// KindOf extracts the Kind from an error chain. The second return is
// false when no *Error is present in the chain.
func KindOf(err error) (Kind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return "", false
}
