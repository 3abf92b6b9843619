package wire

// Delegate carries the encrypted credential blob and the final transcript
// MAC, which covers the ciphertext (encrypt-then-MAC).
type Delegate struct {
	SeqNum        uint8
	EncryptedBlob []byte
	Mac           [MacLen]byte
}

func (p Delegate) header() Header {
	return Header{Signature: Signature, PacketType: TypeDelegate, SeqNum: p.SeqNum}
}

func (p Delegate) bodyForMAC() []byte {
	buf := p.header().Encode(make([]byte, 0, HeaderLen+len(p.EncryptedBlob)+2))
	w := &writer{b: buf}
	w.lenPrefixed(p.EncryptedBlob)
	return w.b
}

// BodyForMAC exposes bodyForMAC to other packages in this module.
func (p Delegate) BodyForMAC() []byte { return p.bodyForMAC() }

// Encode serializes the full packet, MAC included.
func (p Delegate) Encode() []byte {
	w := &writer{b: p.bodyForMAC()}
	w.raw(p.Mac[:])
	return w.b
}

// DecodeDelegate parses a Delegate packet.
func DecodeDelegate(b []byte) (Delegate, error) {
	h, err := DecodeHeader(b)
	if err != nil {
		return Delegate{}, err
	}
	if h.Signature != Signature {
		return Delegate{}, errInvalidSignature
	}
	if h.PacketType != TypeDelegate {
		return Delegate{}, errWrongType(TypeDelegate, h.PacketType)
	}
	r := newReader(b[HeaderLen:])
	blob, err := r.lenPrefixed()
	if err != nil {
		return Delegate{}, err
	}
	mac, err := r.bytes(MacLen)
	if err != nil {
		return Delegate{}, err
	}
	d := Delegate{SeqNum: h.SeqNum, EncryptedBlob: append([]byte{}, blob...)}
	copy(d.Mac[:], mac)
	return d, nil
}
