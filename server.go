package srd

import (
	"math/big"

	"github.com/wayk/srd/dhparams"
	"github.com/wayk/srd/wire"
)

// serverStep dispatches to the per-state server transition function. s.seqNum
// is the state about to run (0, 1 or 2).
func (s *Session) serverStep(input []byte, output *[]byte) (bool, error) {
	switch s.seqNum {
	case 0:
		return false, s.serverState0(input, output)
	case 1:
		return false, s.serverState1(input, output)
	case 2:
		return true, s.serverState2(input, output)
	default:
		return false, newErr(ErrBadSequence, "server: unexpected state %d", s.seqNum)
	}
}

// serverState0 reads INITIATE, validates key_size, samples its own DH
// keypair and nonce, and emits OFFER.
func (s *Session) serverState0(input []byte, output *[]byte) error {
	initiate, err := wire.DecodeInitiate(input)
	if err != nil {
		return wireDecodeErr(err)
	}
	if initiate.SeqNum != 0 {
		return newErr(ErrBadSequence, "INITIATE: unexpected seq_num %d", initiate.SeqNum)
	}
	group, ok := dhparams.Lookup(initiate.KeySize)
	if !ok {
		return newErr(ErrInvalidKeySize, "unsupported key_size %d", initiate.KeySize)
	}
	s.keySize = initiate.KeySize
	s.group = group
	s.appendTranscript(initiate.Encode())

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
	s.serverNonce = nonce

	offer := wire.Offer{
		SeqNum:          0,
		KeySize:         s.keySize,
		Generator:       s.group.GeneratorBytes(),
		Prime:           s.group.PrimeBytes(),
		ServerPublicKey: s.publicKey.Bytes(),
		ServerNonce:     s.serverNonce,
	}
	b := offer.Encode()
	s.appendTranscript(b)
	*output = b
	return nil
}

// serverState1 reads ACCEPT, completes the DH exchange, derives keys,
// verifies the transcript MAC and client CBT, and emits CONFIRM.
func (s *Session) serverState1(input []byte, output *[]byte) error {
	accept, err := wire.DecodeAccept(input)
	if err != nil {
		return wireDecodeErr(err)
	}
	if accept.SeqNum != 1 {
		return newErr(ErrBadSequence, "ACCEPT: unexpected seq_num %d", accept.SeqNum)
	}
	if accept.KeySize != s.keySize {
		return newErr(ErrInvalidKeySize, "ACCEPT: client key_size %d does not match negotiated %d", accept.KeySize, s.keySize)
	}

	transcriptBefore := append([]byte{}, s.transcript...)

	s.clientNonce = accept.ClientNonce
	clientPublic := new(big.Int).SetBytes(accept.ClientPublicKey)
	s.sharedSecret = s.group.SharedSecret(clientPublic, s.privateKey).Bytes()
	s.deriveKeys()

	body := accept.BodyForMAC()
	if err := verifyMAC(s.keys.integrityKey, transcriptBefore, body, accept.Mac); err != nil {
		return err
	}
	if err := verifyCBT(s.certData != nil, s.certData, s.keys.integrityKey, s.clientNonce, accept.HasCbt, accept.Cbt); err != nil {
		return err
	}
	s.appendTranscript(accept.Encode())

	confirm := wire.Confirm{SeqNum: 1}
	if s.certData != nil {
		confirm.HasCbt = true
		confirm.Cbt = serverCBT(s.keys.integrityKey, s.serverNonce, s.certData)
	}
	cbody := confirm.BodyForMAC()
	confirm.Mac = transcriptMAC(s.keys.integrityKey, s.transcript, cbody)

	b := confirm.Encode()
	s.appendTranscript(b)
	*output = b
	return nil
}

// serverState2 reads DELEGATE, verifies its MAC, decrypts the blob and
// stores it for the caller to retrieve via Blob().
func (s *Session) serverState2(input []byte, output *[]byte) error {
	delegate, err := wire.DecodeDelegate(input)
	if err != nil {
		return wireDecodeErr(err)
	}
	if delegate.SeqNum != 2 {
		return newErr(ErrBadSequence, "DELEGATE: unexpected seq_num %d", delegate.SeqNum)
	}
	transcriptBefore := append([]byte{}, s.transcript...)
	body := delegate.BodyForMAC()
	if err := verifyMAC(s.keys.integrityKey, transcriptBefore, body, delegate.Mac); err != nil {
		return err
	}
	s.appendTranscript(delegate.Encode())

	blob, err := decryptBlob(s.keys.delegationKey, s.keys.iv, delegate.EncryptedBlob)
	if err != nil {
		return err
	}
	s.incomingBlob = &blob
	*output = nil
	return nil
}
