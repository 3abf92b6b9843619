package srd

import (
	"math/big"

	"github.com/wayk/srd/dhparams"
	"github.com/wayk/srd/wire"
)

// clientStep dispatches to the per-state client transition function. s.seqNum
// is the state about to run (0, 1 or 2).
func (s *Session) clientStep(input []byte, output *[]byte) (bool, error) {
	switch s.seqNum {
	case 0:
		return false, s.clientState0(output)
	case 1:
		return false, s.clientState1(input, output)
	case 2:
		return true, s.clientState2(input, output)
	default:
		return false, newErr(ErrBadSequence, "client: unexpected state %d", s.seqNum)
	}
}

// clientState0 emits INITIATE(key_size).
func (s *Session) clientState0(output *[]byte) error {
	p := wire.NewInitiate(0, s.keySize)
	b := p.Encode()
	s.appendTranscript(b)
	*output = b
	return nil
}

// clientState1 reads OFFER, completes the DH exchange and nonce adoption,
// derives keys, and emits ACCEPT.
func (s *Session) clientState1(input []byte, output *[]byte) error {
	offer, err := wire.DecodeOffer(input)
	if err != nil {
		return wireDecodeErr(err)
	}
	if offer.SeqNum != 0 {
		return newErr(ErrBadSequence, "OFFER: unexpected seq_num %d", offer.SeqNum)
	}
	if offer.KeySize != s.keySize {
		return newErr(ErrInvalidKeySize, "OFFER: server proposed key_size %d, expected %d", offer.KeySize, s.keySize)
	}
	group, ok := dhparams.Lookup(offer.KeySize)
	if !ok {
		return newErr(ErrInvalidKeySize, "OFFER: unsupported key_size %d", offer.KeySize)
	}
	if new(big.Int).SetBytes(offer.Generator).Cmp(group.Generator) != 0 ||
		new(big.Int).SetBytes(offer.Prime).Cmp(group.Prime) != 0 {
		return newErr(ErrInvalidKeySize, "OFFER: group parameters do not match the fixed table for key_size %d", offer.KeySize)
	}
	s.appendTranscript(offer.Encode())

	s.group = group
	privateKey, err := s.group.PrivateKey(s.random)
	if err != nil {
		return newErr(ErrCrypto, "%v", err)
	}
	s.privateKey = privateKey
	s.publicKey = s.group.PublicKey(privateKey)

	nonce, err := sampleNonce(s.random)
	if err != nil {
		return err
	}
	s.clientNonce = nonce
	s.serverNonce = offer.ServerNonce

	serverPublic := new(big.Int).SetBytes(offer.ServerPublicKey)
	s.sharedSecret = s.group.SharedSecret(serverPublic, s.privateKey).Bytes()
	s.deriveKeys()

	accept := wire.Accept{
		SeqNum:          1,
		KeySize:         s.keySize,
		ClientPublicKey: s.publicKey.Bytes(),
		ClientNonce:     s.clientNonce,
	}
	if s.certData != nil {
		accept.HasCbt = true
		accept.Cbt = clientCBT(s.keys.integrityKey, s.clientNonce, s.certData)
	}
	body := accept.BodyForMAC()
	accept.Mac = transcriptMAC(s.keys.integrityKey, s.transcript, body)

	b := accept.Encode()
	s.appendTranscript(b)
	*output = b
	return nil
}

// clientState2 reads CONFIRM, verifies its MAC and the server's CBT,
// encrypts the pending blob, and emits DELEGATE.
func (s *Session) clientState2(input []byte, output *[]byte) error {
	confirm, err := wire.DecodeConfirm(input)
	if err != nil {
		return wireDecodeErr(err)
	}
	if confirm.SeqNum != 1 {
		return newErr(ErrBadSequence, "CONFIRM: unexpected seq_num %d", confirm.SeqNum)
	}
	body := confirm.BodyForMAC()
	if err := verifyMAC(s.keys.integrityKey, s.transcript, body, confirm.Mac); err != nil {
		return err
	}
	if err := verifyCBT(s.certData != nil, s.certData, s.keys.integrityKey, s.serverNonce, confirm.HasCbt, confirm.Cbt); err != nil {
		return err
	}
	s.appendTranscript(confirm.Encode())

	if s.outgoingBlob == nil {
		return newErr(ErrMissingBlob, "client reached state 2 without a blob")
	}
	ciphertext, err := encryptBlob(s.keys.delegationKey, s.keys.iv, *s.outgoingBlob)
	if err != nil {
		return err
	}

	delegate := wire.Delegate{SeqNum: 2, EncryptedBlob: ciphertext}
	dbody := delegate.BodyForMAC()
	delegate.Mac = transcriptMAC(s.keys.integrityKey, s.transcript, dbody)

	b := delegate.Encode()
	s.appendTranscript(b)
	*output = b
	return nil
}
