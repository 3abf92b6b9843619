package srd

import (
	"math/big"
	"testing"

	"github.com/wayk/srd/wire"
)

// cloneSession deep-copies s so a test can replay several independent
// Authenticate calls against the exact same keyed, exact same transcript
// state without the first call's mutation (or terminal-on-error transition)
// affecting the rest.
func cloneSession(s *Session) *Session {
	cp := *s
	if s.privateKey != nil {
		cp.privateKey = new(big.Int).Set(s.privateKey)
	}
	if s.publicKey != nil {
		cp.publicKey = new(big.Int).Set(s.publicKey)
	}
	cp.sharedSecret = append([]byte{}, s.sharedSecret...)
	cp.certData = append([]byte{}, s.certData...)
	cp.transcript = append([]byte{}, s.transcript...)
	if s.outgoingBlob != nil {
		b := Blob{BlobType: s.outgoingBlob.BlobType, Data: append([]byte{}, s.outgoingBlob.Data...)}
		cp.outgoingBlob = &b
	}
	if s.incomingBlob != nil {
		b := Blob{BlobType: s.incomingBlob.BlobType, Data: append([]byte{}, s.incomingBlob.Data...)}
		cp.incomingBlob = &b
	}
	return &cp
}

// flip returns a copy of b with a single bit flipped at byte offset i.
func flip(b []byte, i int) []byte {
	cp := append([]byte{}, b...)
	cp[i] ^= 0x01
	return cp
}

// isHeaderFlagsByte reports whether offset i falls inside the 8-byte
// header's 2-byte flags field, the one part of the header every packet
// struct in wire/ decodes and then discards.
func isHeaderFlagsByte(i int) bool { return i == 6 || i == 7 }

// Property: any single-bit flip anywhere in ACCEPT after emission (other than
// the header flags) causes the server to reject it. A flip in the public
// key, nonce or MAC surfaces as InvalidMac, since the transcript MAC covers
// the entire body; a flip in the KeySize field is caught earlier as
// InvalidKeySize, and header flips surface as decode or sequencing errors.
// The receiving server is cloned from a single
// real pairing's pre-ACCEPT state, so an unflipped replay is checked to
// succeed first — otherwise the loop below would prove nothing about the
// flip itself.
func TestBitFlipInAcceptIsRejected(t *testing.T) {
	client := New(RoleClient)
	server := New(RoleServer)
	client.SetBlob(Blob{BlobType: 1, Data: []byte("payload")})

	var out []byte
	if _, err := client.Authenticate(nil, &out); err != nil {
		t.Fatalf("INITIATE: %v", err)
	}
	initiate := append([]byte{}, out...)
	if _, err := server.Authenticate(initiate, &out); err != nil {
		t.Fatalf("OFFER: %v", err)
	}
	offer := append([]byte{}, out...)
	if _, err := client.Authenticate(offer, &out); err != nil {
		t.Fatalf("ACCEPT: %v", err)
	}
	accept := append([]byte{}, out...)

	presnapshot := cloneSession(server)

	control := cloneSession(presnapshot)
	if _, err := control.Authenticate(accept, &out); err != nil {
		t.Fatalf("unflipped ACCEPT should succeed against its matching server state: %v", err)
	}

	for i := range accept {
		if isHeaderFlagsByte(i) {
			// The header's flags field is carried on the wire but not part
			// of the decoded Accept struct or its MAC body, so corrupting
			// it alone is invisible to this receiver; skip it rather than
			// assert a property the wire format does not make true.
			continue
		}
		trial := cloneSession(presnapshot)
		_, err := trial.Authenticate(flip(accept, i), &out)
		if err == nil {
			t.Fatalf("byte %d: expected an error, handshake succeeded", i)
		}
		se, ok := err.(*SrdError)
		if !ok {
			t.Fatalf("byte %d: expected *SrdError, got %T", i, err)
		}
		switch se.Code {
		case ErrInvalidMac, ErrBadSequence, ErrInvalidKeySize, ErrInvalidSignature, ErrIo:
			// A flip inside a length-prefix field can misframe everything
			// after it, surfacing as a truncated-buffer decode failure
			// rather than a MAC mismatch; both are fatal rejections of the
			// corrupted packet, which is the property under test.
		default:
			t.Fatalf("byte %d: expected a decode- or MAC-level rejection, got %s", i, se.Code)
		}
	}
}

// Property: any single-bit flip in CONFIRM causes the client to fail. As
// above, the receiving client is cloned from a single real pairing's
// pre-CONFIRM state so the control (unflipped) replay is known to succeed.
func TestBitFlipInConfirmIsRejected(t *testing.T) {
	client := New(RoleClient)
	server := New(RoleServer)
	client.SetBlob(Blob{BlobType: 1, Data: []byte("payload")})

	var out []byte
	if _, err := client.Authenticate(nil, &out); err != nil {
		t.Fatalf("INITIATE: %v", err)
	}
	initiate := append([]byte{}, out...)
	if _, err := server.Authenticate(initiate, &out); err != nil {
		t.Fatalf("OFFER: %v", err)
	}
	offer := append([]byte{}, out...)
	if _, err := client.Authenticate(offer, &out); err != nil {
		t.Fatalf("ACCEPT: %v", err)
	}
	accept := append([]byte{}, out...)
	if _, err := server.Authenticate(accept, &out); err != nil {
		t.Fatalf("CONFIRM: %v", err)
	}
	confirm := append([]byte{}, out...)

	presnapshot := cloneSession(client)

	control := cloneSession(presnapshot)
	if _, err := control.Authenticate(confirm, &out); err != nil {
		t.Fatalf("unflipped CONFIRM should succeed against its matching client state: %v", err)
	}

	for i := range confirm {
		if isHeaderFlagsByte(i) {
			continue
		}
		trial := cloneSession(presnapshot)
		_, err := trial.Authenticate(flip(confirm, i), &out)
		if err == nil {
			t.Fatalf("byte %d: expected an error, handshake succeeded", i)
		}
	}
}

// Property: a single-bit flip in DELEGATE's encrypted blob causes the
// server to fail with InvalidMac, since the MAC covers the ciphertext
// (encrypt-then-MAC) and is checked before decryption.
func TestBitFlipInDelegateCiphertextCausesInvalidMac(t *testing.T) {
	client := New(RoleClient)
	server := New(RoleServer)
	client.SetBlob(Blob{BlobType: 1, Data: []byte("payload")})

	var out []byte
	if _, err := client.Authenticate(nil, &out); err != nil {
		t.Fatalf("INITIATE: %v", err)
	}
	initiate := append([]byte{}, out...)
	if _, err := server.Authenticate(initiate, &out); err != nil {
		t.Fatalf("OFFER: %v", err)
	}
	offer := append([]byte{}, out...)
	if _, err := client.Authenticate(offer, &out); err != nil {
		t.Fatalf("ACCEPT: %v", err)
	}
	accept := append([]byte{}, out...)
	if _, err := server.Authenticate(accept, &out); err != nil {
		t.Fatalf("CONFIRM: %v", err)
	}
	confirm := append([]byte{}, out...)
	if _, err := client.Authenticate(confirm, &out); err != nil {
		t.Fatalf("DELEGATE: %v", err)
	}
	delegate := append([]byte{}, out...)

	decoded, err := wire.DecodeDelegate(delegate)
	if err != nil {
		t.Fatalf("decode DELEGATE: %v", err)
	}
	if len(decoded.EncryptedBlob) == 0 {
		t.Fatalf("DELEGATE has no ciphertext to flip")
	}

	presnapshot := cloneSession(server)

	control := cloneSession(presnapshot)
	if _, err := control.Authenticate(delegate, &out); err != nil {
		t.Fatalf("unflipped DELEGATE should succeed against its matching server state: %v", err)
	}
	if got, ok := control.Blob(); !ok || string(got.Data) != "payload" {
		t.Fatalf("control server did not recover the delegated blob: %+v, %v", got, ok)
	}

	trial := cloneSession(presnapshot)
	corrupted := flip(delegate, wire.HeaderLen+2) // first ciphertext byte
	_, err = trial.Authenticate(corrupted, &out)
	if err == nil {
		t.Fatalf("expected an error after corrupting the ciphertext")
	}
	se, ok := err.(*SrdError)
	if !ok || se.Code != ErrInvalidMac {
		t.Fatalf("expected InvalidMac, got %v", err)
	}
}

// transcriptMAC itself: flipping any transcript or body byte must change
// the output, and verifyMAC must reject the recomputation.
func TestTranscriptMACSensitivity(t *testing.T) {
	var key [32]byte
	copy(key[:], "0123456789abcdef0123456789abcdeZ")
	transcript := []byte("the-transcript-so-far")
	body := []byte("this-messages-body")

	want := transcriptMAC(key, transcript, body)
	if err := verifyMAC(key, transcript, body, want); err != nil {
		t.Fatalf("verifyMAC rejected a correct MAC: %v", err)
	}

	for i := range transcript {
		got := transcriptMAC(key, flip(transcript, i), body)
		if got == want {
			t.Fatalf("transcript byte %d: MAC did not change", i)
		}
	}
	for i := range body {
		got := transcriptMAC(key, transcript, flip(body, i))
		if got == want {
			t.Fatalf("body byte %d: MAC did not change", i)
		}
	}

	corrupt := want
	corrupt[0] ^= 0x01
	if err := verifyMAC(key, transcript, body, corrupt); err == nil {
		t.Fatalf("verifyMAC accepted a corrupted MAC")
	} else {
		assertErrCode(t, err, ErrInvalidMac)
	}
}
