package wire

// NonceLen is the fixed size of both client_nonce and server_nonce.
const NonceLen = 32

// Offer is the server's response to Initiate: it supplies the DH group
// (generator, prime), the server's public key, and a fresh server nonce.
// No MAC yet — the integrity key does not exist until the client has also
// contributed its nonce and public key.
type Offer struct {
	SeqNum          uint8
	KeySize         uint16
	Generator       []byte
	Prime           []byte
	ServerPublicKey []byte
	ServerNonce     [NonceLen]byte
}

func (p Offer) header() Header {
	return Header{Signature: Signature, PacketType: TypeOffer, SeqNum: p.SeqNum}
}

// Encode serializes the packet to wire bytes.
func (p Offer) Encode() []byte {
	buf := p.header().Encode(make([]byte, 0, HeaderLen+64))
	w := &writer{b: buf}
	w.u16(p.KeySize)
	w.lenPrefixed(p.Generator)
	w.lenPrefixed(p.Prime)
	w.lenPrefixed(p.ServerPublicKey)
	w.raw(p.ServerNonce[:])
	return w.b
}

// DecodeOffer parses an Offer packet.
func DecodeOffer(b []byte) (Offer, error) {
	h, err := DecodeHeader(b)
	if err != nil {
		return Offer{}, err
	}
	if h.Signature != Signature {
		return Offer{}, errInvalidSignature
	}
	if h.PacketType != TypeOffer {
		return Offer{}, errWrongType(TypeOffer, h.PacketType)
	}
	r := newReader(b[HeaderLen:])
	keySize, err := r.u16()
	if err != nil {
		return Offer{}, err
	}
	gen, err := r.lenPrefixed()
	if err != nil {
		return Offer{}, err
	}
	prime, err := r.lenPrefixed()
	if err != nil {
		return Offer{}, err
	}
	pub, err := r.lenPrefixed()
	if err != nil {
		return Offer{}, err
	}
	nonce, err := r.bytes(NonceLen)
	if err != nil {
		return Offer{}, err
	}
	o := Offer{
		SeqNum:          h.SeqNum,
		KeySize:         keySize,
		Generator:       append([]byte{}, gen...),
		Prime:           append([]byte{}, prime...),
		ServerPublicKey: append([]byte{}, pub...),
	}
	copy(o.ServerNonce[:], nonce)
	return o, nil
}
