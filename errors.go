package siv

import "fmt"

// Kind classifies a SIV error so callers can log, alert, or branch on the
// failure category without parsing error strings.
type Kind int

const (
	// KindConfiguration marks a SivContext construction failure, e.g. a
	// block-cipher factory whose block size is not 16 bytes. Never
	// recoverable: construct a new SivContext with a valid factory.
	KindConfiguration Kind = iota

	// KindInvalidKey marks a key rejected by the block cipher or CMAC
	// engine (wrong length for the underlying cipher).
	KindInvalidKey

	// KindInvalidInput marks oversized plaintext or an associated-data
	// vector longer than S2V supports.
	KindInvalidInput

	// KindInvalidLength marks an Open call whose input is shorter than
	// the tag size.
	KindInvalidLength

	// KindUnauthentic marks a failed constant-time tag comparison.
	KindUnauthentic
)

func (k Kind) String() string {
	switch k {
	case KindConfiguration:
		return "configuration"
	case KindInvalidKey:
		return "invalid-key"
	case KindInvalidInput:
		return "invalid-input"
	case KindInvalidLength:
		return "invalid-length"
	case KindUnauthentic:
		return "unauthentic"
	default:
		return "unknown"
	}
}

// Error is the error type returned by every exported SivContext method.
// Its Error() string is stable and intentionally generic for the
// open-failure kinds (see KindInvalidLength / KindUnauthentic above): it
// never encodes the Kind in the message, because the message is the part
// of the contract an attacker watching a network channel can observe.
// Kind() is an in-process call and is where callers should branch.
type Error struct {
	kind Kind
	msg  string
	err  error
}

func newError(kind Kind, msg string) *Error {
	return &Error{kind: kind, msg: msg}
}

func wrapError(kind Kind, msg string, err error) *Error {
	return &Error{kind: kind, msg: msg, err: err}
}

func (e *Error) Error() string { return e.msg }

func (e *Error) Unwrap() error { return e.err }

// Kind reports the error category.
func (e *Error) Kind() Kind { return e.kind }

var (
	// errInvalidBlockSize is returned by New when the factory's block
	// size is not 16 bytes.
	errInvalidBlockSize = newError(KindConfiguration, "siv: block cipher must have a 16-byte block size")

	// errOpenFailedMsg is the single message shared by KindInvalidLength and
	// KindUnauthentic so that a caller forwarding Open's error text to a
	// remote peer cannot distinguish "too short" from "tampered" — the
	// distinction is only visible to in-process code via Kind().
	errOpenFailedMsg = "siv: open: authentication failed"
)

// invalidKeyError wraps an underlying key-rejection error from the block
// cipher or CMAC engine with KindInvalidKey.
func invalidKeyError(err error) *Error {
	return wrapError(KindInvalidKey, fmt.Sprintf("siv: invalid key: %v", err), err)
}

// invalidInputError marks oversized input or an oversized AD vector.
func invalidInputError(msg string) *Error {
	return newError(KindInvalidInput, msg)
}

func shortCiphertextError() *Error {
	return newError(KindInvalidLength, errOpenFailedMsg)
}

func unauthenticError() *Error {
	return newError(KindUnauthentic, errOpenFailedMsg)
}
