package wire

// Confirm is the server's response to Accept: an optional channel-binding
// token and the transcript MAC.
type Confirm struct {
	SeqNum uint8
	HasCbt bool
	Cbt    [CbtLen]byte
	Mac    [MacLen]byte
}

func (p Confirm) header() Header {
	return Header{Signature: Signature, PacketType: TypeConfirm, SeqNum: p.SeqNum}
}

func (p Confirm) bodyForMAC() []byte {
	buf := p.header().Encode(make([]byte, 0, HeaderLen+34))
	w := &writer{b: buf}
	if p.HasCbt {
		w.u8(1)
		w.raw(p.Cbt[:])
	} else {
		w.u8(0)
	}
	return w.b
}

// BodyForMAC exposes bodyForMAC to other packages in this module.
func (p Confirm) BodyForMAC() []byte { return p.bodyForMAC() }

// Encode serializes the full packet, MAC included.
func (p Confirm) Encode() []byte {
	w := &writer{b: p.bodyForMAC()}
	w.raw(p.Mac[:])
	return w.b
}

// DecodeConfirm parses a Confirm packet.
func DecodeConfirm(b []byte) (Confirm, error) {
	h, err := DecodeHeader(b)
	if err != nil {
		return Confirm{}, err
	}
	if h.Signature != Signature {
		return Confirm{}, errInvalidSignature
	}
	if h.PacketType != TypeConfirm {
		return Confirm{}, errWrongType(TypeConfirm, h.PacketType)
	}
	r := newReader(b[HeaderLen:])
	cbtFlag, err := r.u8()
	if err != nil {
		return Confirm{}, err
	}
	c := Confirm{SeqNum: h.SeqNum, HasCbt: cbtFlag != 0}
	if c.HasCbt {
		cbt, err := r.bytes(CbtLen)
		if err != nil {
			return Confirm{}, err
		}
		copy(c.Cbt[:], cbt)
	}
	mac, err := r.bytes(MacLen)
	if err != nil {
		return Confirm{}, err
	}
	copy(c.Mac[:], mac)
	return c, nil
}
