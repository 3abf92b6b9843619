package srd

import (
	"crypto/hmac"
	"crypto/sha256"
)

// keyMaterial holds the three values derived once both nonces and the
// shared secret are known. Nothing here is re-derivable from the wire; it
// exists only in memory for the lifetime of the session.
type keyMaterial struct {
	delegationKey [32]byte
	integrityKey  [32]byte
	iv            [16]byte
}

// deriveKeys implements the key schedule: two independent SHA-256 hashes
// keyed by swapping which nonce goes first, and an IV taken from a third,
// unrelated hash. No HKDF, no salt — both peers must compute byte-identical
// values from the same (Nc, Ns, Z) triple.
func deriveKeys(clientNonce, serverNonce [32]byte, sharedSecret []byte) keyMaterial {
	var km keyMaterial

	dk := sha256.New()
	dk.Write(clientNonce[:])
	dk.Write(sharedSecret)
	dk.Write(serverNonce[:])
	copy(km.delegationKey[:], dk.Sum(nil))

	ik := sha256.New()
	ik.Write(serverNonce[:])
	ik.Write(sharedSecret)
	ik.Write(clientNonce[:])
	copy(km.integrityKey[:], ik.Sum(nil))

	iv := sha256.New()
	iv.Write(clientNonce[:])
	iv.Write(serverNonce[:])
	copy(km.iv[:], iv.Sum(nil)[:16])

	return km
}

// transcriptMAC computes HMAC-SHA256(integrityKey, transcript || body), the
// MAC carried on ACCEPT, CONFIRM and DELEGATE. transcript is the
// concatenation of every packet's wire bytes appended so far, in exchange
// order; body is the current message's own bytes minus its trailing MAC
// field.
func transcriptMAC(integrityKey [32]byte, transcript, body []byte) [32]byte {
	mac := hmac.New(sha256.New, integrityKey[:])
	mac.Write(transcript)
	mac.Write(body)
	var out [32]byte
	copy(out[:], mac.Sum(nil))
	return out
}

// verifyMAC recomputes and compares in constant time, returning ErrInvalidMac
// on mismatch.
func verifyMAC(integrityKey [32]byte, transcript, body []byte, want [32]byte) error {
	got := transcriptMAC(integrityKey, transcript, body)
	if !hmac.Equal(got[:], want[:]) {
		return newErr(ErrInvalidMac, "transcript MAC mismatch")
	}
	return nil
}

// clientCBT computes the channel-binding token a client includes on ACCEPT
// when it has cert_data: bound to its own (the sender's) nonce.
func clientCBT(integrityKey [32]byte, clientNonce [32]byte, certData []byte) [32]byte {
	return bindCBT(integrityKey, clientNonce, certData)
}

// serverCBT computes the channel-binding token a server includes on CONFIRM
// when it has cert_data: bound to its own (the sender's) nonce.
func serverCBT(integrityKey [32]byte, serverNonce [32]byte, certData []byte) [32]byte {
	return bindCBT(integrityKey, serverNonce, certData)
}

func bindCBT(integrityKey [32]byte, nonce [32]byte, certData []byte) [32]byte {
	mac := hmac.New(sha256.New, integrityKey[:])
	mac.Write(nonce[:])
	mac.Write(certData)
	var out [32]byte
	copy(out[:], mac.Sum(nil))
	return out
}

// verifyCBT enforces a strict XOR presence contract: the receiver's own
// cert_data state dictates whether a CBT must be present,
// and if present it must byte-equal the receiver's recomputation bound to
// the sender's nonce.
func verifyCBT(receiverHasCert bool, receiverCertData []byte, integrityKey [32]byte, senderNonce [32]byte, present bool, got [32]byte) error {
	if receiverHasCert && !present {
		return newErr(ErrInvalidCert, "expected channel-binding token, none present")
	}
	if !receiverHasCert && present {
		return newErr(ErrInvalidCert, "unexpected channel-binding token present")
	}
	if !receiverHasCert {
		return nil
	}
	want := bindCBT(integrityKey, senderNonce, receiverCertData)
	if !hmac.Equal(want[:], got[:]) {
		return newErr(ErrInvalidCbt, "channel-binding token mismatch")
	}
	return nil
}
