package srd

import "fmt"

// ErrorCode categorizes an SRD failure. All SRD errors are fatal: once
// Authenticate returns a non-nil error the Session must be discarded.
type ErrorCode uint8

const (
	_ ErrorCode = iota
	// ErrInvalidSignature means the packet header signature did not match wire.Signature.
	ErrInvalidSignature
	// ErrBadSequence means the seq_num field did not match the expected value,
	// or Authenticate was called after the session reached its terminal state.
	ErrBadSequence
	// ErrInvalidKeySize means the proposed key_size was not one of 256/512/1024.
	ErrInvalidKeySize
	// ErrInvalidCert means CBT presence did not match the receiving peer's cert_data state.
	ErrInvalidCert
	// ErrInvalidCbt means a present CBT did not byte-equal the receiver's recomputation.
	ErrInvalidCbt
	// ErrInvalidMac means the transcript HMAC did not verify.
	ErrInvalidMac
	// ErrMissingBlob means the client reached state 2 without calling SetBlob.
	ErrMissingBlob
	// ErrCrypto means an underlying HMAC/AES/RNG operation failed.
	ErrCrypto
	// ErrIo means the input buffer was short or truncated.
	ErrIo
	// ErrInvalidBlob means the decrypted blob could not be deserialized.
	ErrInvalidBlob
)

func (c ErrorCode) String() string {
	switch c {
	case ErrInvalidSignature:
		return "InvalidSignature"
	case ErrBadSequence:
		return "BadSequence"
	case ErrInvalidKeySize:
		return "InvalidKeySize"
	case ErrInvalidCert:
		return "InvalidCert"
	case ErrInvalidCbt:
		return "InvalidCbt"
	case ErrInvalidMac:
		return "InvalidMac"
	case ErrMissingBlob:
		return "MissingBlob"
	case ErrCrypto:
		return "Crypto"
	case ErrIo:
		return "Io"
	case ErrInvalidBlob:
		return "InvalidBlob"
	default:
		return fmt.Sprintf("ErrorCode(%d)", uint8(c))
	}
}

// SrdError is the concrete error type returned by Session.Authenticate and
// friends. The Message field carries free-form context; it is never part of
// the category comparison, so callers should match on Code.
type SrdError struct {
	Code    ErrorCode
	Message string
}

func (e *SrdError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("srd: %s: %s", e.Code, e.Message)
	}
	return fmt.Sprintf("srd: %s", e.Code)
}

// newErr builds an SrdError from a code and an optionally-formatted message.
func newErr(code ErrorCode, format string, a ...interface{}) *SrdError {
	return &SrdError{Code: code, Message: fmt.Sprintf(format, a...)}
}

// Is matches by category: errors.Is(err, &SrdError{Code: ErrInvalidMac})
// holds for any *SrdError with that Code, whatever its Message. A bare
// ErrorCode is not an error value and cannot be used as the target.
func (e *SrdError) Is(target error) bool {
	t, ok := target.(*SrdError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}
