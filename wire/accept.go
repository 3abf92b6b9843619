package wire

// MacLen is the fixed size of the transcript HMAC carried on ACCEPT,
// CONFIRM and DELEGATE.
const MacLen = 32

// CbtLen is the fixed size of a channel-binding token.
const CbtLen = 32

// Accept is the client's response to Offer: its own public key and nonce,
// an optional channel-binding token, and the first transcript MAC.
type Accept struct {
	SeqNum          uint8
	KeySize         uint16
	ClientPublicKey []byte
	ClientNonce     [NonceLen]byte
	HasCbt          bool
	Cbt             [CbtLen]byte
	Mac             [MacLen]byte
}

func (p Accept) header() Header {
	return Header{Signature: Signature, PacketType: TypeAccept, SeqNum: p.SeqNum}
}

// bodyForMAC returns the wire encoding of everything in this message except
// the trailing MAC field — exactly what the transcript MAC covers for the
// message currently being produced or verified.
func (p Accept) bodyForMAC() []byte {
	buf := p.header().Encode(make([]byte, 0, HeaderLen+64))
	w := &writer{b: buf}
	w.u16(p.KeySize)
	w.lenPrefixed(p.ClientPublicKey)
	w.raw(p.ClientNonce[:])
	if p.HasCbt {
		w.u8(1)
		w.raw(p.Cbt[:])
	} else {
		w.u8(0)
	}
	return w.b
}

// BodyForMAC exposes bodyForMAC to other packages in this module.
func (p Accept) BodyForMAC() []byte { return p.bodyForMAC() }

// Encode serializes the full packet, MAC included.
func (p Accept) Encode() []byte {
	w := &writer{b: p.bodyForMAC()}
	w.raw(p.Mac[:])
	return w.b
}

// DecodeAccept parses an Accept packet.
func DecodeAccept(b []byte) (Accept, error) {
	h, err := DecodeHeader(b)
	if err != nil {
		return Accept{}, err
	}
	if h.Signature != Signature {
		return Accept{}, errInvalidSignature
	}
	if h.PacketType != TypeAccept {
		return Accept{}, errWrongType(TypeAccept, h.PacketType)
	}
	r := newReader(b[HeaderLen:])
	keySize, err := r.u16()
	if err != nil {
		return Accept{}, err
	}
	pub, err := r.lenPrefixed()
	if err != nil {
		return Accept{}, err
	}
	nonce, err := r.bytes(NonceLen)
	if err != nil {
		return Accept{}, err
	}
	cbtFlag, err := r.u8()
	if err != nil {
		return Accept{}, err
	}
	a := Accept{
		SeqNum:          h.SeqNum,
		KeySize:         keySize,
		ClientPublicKey: append([]byte{}, pub...),
		HasCbt:          cbtFlag != 0,
	}
	copy(a.ClientNonce[:], nonce)
	if a.HasCbt {
		cbt, err := r.bytes(CbtLen)
		if err != nil {
			return Accept{}, err
		}
		copy(a.Cbt[:], cbt)
	}
	mac, err := r.bytes(MacLen)
	if err != nil {
		return Accept{}, err
	}
	copy(a.Mac[:], mac)
	return a, nil
}
