package srd

import "github.com/wayk/srd/wire"

// wireDecodeErr classifies a wire package decode error into the matching
// SrdError category.
func wireDecodeErr(err error) error {
	switch {
	case wire.ErrInvalidSignature(err):
		return newErr(ErrInvalidSignature, "%v", err)
	case wire.ErrShortBuffer(err):
		return newErr(ErrIo, "%v", err)
	default:
		// Any other decode failure (wrong packet type for this point in the
		// exchange) is a sequencing violation: the peer sent a message this
		// session wasn't expecting next.
		return newErr(ErrBadSequence, "%v", err)
	}
}
