// Package wire implements the SRD on-the-wire packet codec: the fixed
// 8-byte header shared by every packet type, length-prefixed big-endian
// byte strings for large integers, and one struct per packet type with a
// uniform Encode/Decode pair.
//
// Every multi-byte integer in the header and fixed fields is little-endian;
// only the DH parameters and public keys are big-endian, as is conventional
// for arbitrary-precision integers, and are length-prefixed since their size
// varies with the negotiated key size.
package wire

import (
	"encoding/binary"
	"errors"
	"fmt"
)

// Signature is the fixed 4-byte magic ("SRD\0") that opens every packet.
const Signature uint32 = 0x00445253

// Packet type identifiers. The header's packet_type field carries one of these.
const (
	TypeInitiate uint8 = 1
	TypeOffer    uint8 = 2
	TypeAccept   uint8 = 3
	TypeConfirm  uint8 = 4
	TypeDelegate uint8 = 5
)

// HeaderLen is the size in bytes of the fixed packet header.
const HeaderLen = 8

// Header is the 8-byte prefix common to every SRD packet.
type Header struct {
	Signature  uint32
	PacketType uint8
	SeqNum     uint8
	Flags      uint16
}

// Encode appends the header's wire bytes to buf and returns the result.
func (h Header) Encode(buf []byte) []byte {
	var b [HeaderLen]byte
	binary.LittleEndian.PutUint32(b[0:4], h.Signature)
	b[4] = h.PacketType
	b[5] = h.SeqNum
	binary.LittleEndian.PutUint16(b[6:8], h.Flags)
	return append(buf, b[:]...)
}

// DecodeHeader reads the fixed header from the front of b.
func DecodeHeader(b []byte) (Header, error) {
	if len(b) < HeaderLen {
		return Header{}, fmt.Errorf("%w: need %d header bytes, have %d", errShort, HeaderLen, len(b))
	}
	h := Header{
		Signature:  binary.LittleEndian.Uint32(b[0:4]),
		PacketType: b[4],
		SeqNum:     b[5],
		Flags:      binary.LittleEndian.Uint16(b[6:8]),
	}
	return h, nil
}

// reader walks a byte slice left to right, tracking offsets so callers don't
// have to index into the buffer by hand.
type reader struct {
	b   []byte
	off int
}

func newReader(b []byte) *reader { return &reader{b: b} }

func (r *reader) remaining() int { return len(r.b) - r.off }

func (r *reader) u8() (uint8, error) {
	if r.remaining() < 1 {
		return 0, errShort
	}
	v := r.b[r.off]
	r.off++
	return v, nil
}

func (r *reader) u16() (uint16, error) {
	if r.remaining() < 2 {
		return 0, errShort
	}
	v := binary.LittleEndian.Uint16(r.b[r.off : r.off+2])
	r.off += 2
	return v, nil
}

func (r *reader) bytes(n int) ([]byte, error) {
	if n < 0 || r.remaining() < n {
		return nil, errShort
	}
	v := r.b[r.off : r.off+n]
	r.off += n
	return v, nil
}

// lenPrefixed reads a u16-length-prefixed big-endian byte string.
func (r *reader) lenPrefixed() ([]byte, error) {
	n, err := r.u16()
	if err != nil {
		return nil, err
	}
	return r.bytes(int(n))
}

var errShort = fmt.Errorf("wire: truncated packet")

// ErrShort returns the sentinel that decoders return (possibly wrapped)
// whenever a packet is too short to decode.
func ErrShort() error { return errShort }

// errInvalidSignature is returned when a decoded header's Signature field
// does not equal Signature.
var errInvalidSignature = fmt.Errorf("wire: invalid signature")

// ErrInvalidSignature reports whether err is (or wraps) the sentinel
// returned when a packet's signature field is wrong.
func ErrInvalidSignature(err error) bool { return errors.Is(err, errInvalidSignature) }

// ErrShortBuffer reports whether err is (or wraps) the sentinel returned
// when a packet is too short to decode.
func ErrShortBuffer(err error) bool { return errors.Is(err, errShort) }

func errWrongType(want, got uint8) error {
	return fmt.Errorf("wire: unexpected packet type %d, want %d", got, want)
}

type writer struct {
	b []byte
}

func (w *writer) u8(v uint8)   { w.b = append(w.b, v) }
func (w *writer) u16(v uint16) { var b [2]byte; binary.LittleEndian.PutUint16(b[:], v); w.b = append(w.b, b[:]...) }
func (w *writer) raw(v []byte) { w.b = append(w.b, v...) }

// lenPrefixed writes a u16 big-endian-content length prefix followed by v.
// The length prefix itself is little-endian like every other fixed-width
// field; only the integer payload v is big-endian.
func (w *writer) lenPrefixed(v []byte) {
	w.u16(uint16(len(v)))
	w.raw(v)
}
