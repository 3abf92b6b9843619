package srd

import "testing"

// run drives one full client/server handshake to completion (or to the
// first error on either side) by alternating Authenticate calls through the
// five-message exchange: INITIATE, OFFER, ACCEPT, CONFIRM, DELEGATE.
func run(t *testing.T, client, server *Session) error {
	t.Helper()

	var out []byte

	// 1: client state 0 -> INITIATE
	if _, err := client.Authenticate(nil, &out); err != nil {
		return err
	}
	initiate := out

	// 2: server state 0 -> OFFER
	if _, err := server.Authenticate(initiate, &out); err != nil {
		return err
	}
	offer := out

	// 3: client state 1 -> ACCEPT
	if _, err := client.Authenticate(offer, &out); err != nil {
		return err
	}
	accept := out

	// 4: server state 1 -> CONFIRM
	if _, err := server.Authenticate(accept, &out); err != nil {
		return err
	}
	confirm := out

	// 5: client state 2 -> DELEGATE, reports handshake complete
	done, err := client.Authenticate(confirm, &out)
	if err != nil {
		return err
	}
	if !done {
		t.Fatalf("client Authenticate on state 2 did not report completion")
	}
	delegate := out

	// 6: server state 2, reports handshake complete
	done, err = server.Authenticate(delegate, &out)
	if err != nil {
		return err
	}
	if !done {
		t.Fatalf("server Authenticate on state 2 did not report completion")
	}
	return nil
}

// Scenario 1: happy path, 256-bit, no CBT.
func TestHappyPath256NoCbt(t *testing.T) {
	client := New(RoleClient)
	server := New(RoleServer)

	blob := Blob{BlobType: 0x01, Data: []byte("hello")}
	client.SetBlob(blob)

	if err := run(t, client, server); err != nil {
		t.Fatalf("handshake failed: %v", err)
	}

	got, ok := server.Blob()
	if !ok {
		t.Fatalf("server did not receive a blob")
	}
	if got.BlobType != blob.BlobType || string(got.Data) != string(blob.Data) {
		t.Fatalf("blob mismatch: got %+v, want %+v", got, blob)
	}

	if client.DelegationKey() != server.DelegationKey() {
		t.Fatalf("delegation keys differ")
	}
	if client.IntegrityKey() != server.IntegrityKey() {
		t.Fatalf("integrity keys differ")
	}
	if client.IV() != server.IV() {
		t.Fatalf("IVs differ")
	}
}

// Scenario 2: happy path, 1024-bit, with matching CBT.
func TestHappyPath1024MatchingCbt(t *testing.T) {
	client := New(RoleClient)
	server := New(RoleServer)

	if err := client.SetKeySize(1024); err != nil {
		t.Fatalf("SetKeySize: %v", err)
	}
	client.SetCertData([]byte("CERT"))
	server.SetCertData([]byte("CERT"))

	data := make([]byte, 512)
	for i := range data {
		data[i] = byte(i)
	}
	blob := Blob{BlobType: 0x02, Data: data}
	client.SetBlob(blob)

	if err := run(t, client, server); err != nil {
		t.Fatalf("handshake failed: %v", err)
	}

	got, ok := server.Blob()
	if !ok || string(got.Data) != string(blob.Data) || got.BlobType != blob.BlobType {
		t.Fatalf("server blob does not match client blob")
	}
}

// Scenario 5: key-size rejection.
func TestKeySizeRejection(t *testing.T) {
	client := New(RoleClient)
	server := New(RoleServer)

	if err := client.SetKeySize(384); err == nil {
		t.Fatalf("expected SetKeySize(384) on client to fail fast")
	} else {
		assertErrCode(t, err, ErrInvalidKeySize)
	}

	// A client that bypasses SetKeySize's validation (e.g. a hostile peer)
	// can still put an invalid key_size on the wire; the server must reject
	// it independently.
	client.keySize = 384
	var out []byte
	if _, err := client.Authenticate(nil, &out); err != nil {
		t.Fatalf("client state 0 should not itself validate key_size: %v", err)
	}
	_, err := server.Authenticate(out, &out)
	assertErrCode(t, err, ErrInvalidKeySize)
}

// Scenario 6: missing blob — client reaches state 2 without SetBlob.
func TestMissingBlob(t *testing.T) {
	client := New(RoleClient)
	server := New(RoleServer)

	var out []byte
	if _, err := client.Authenticate(nil, &out); err != nil {
		t.Fatalf("INITIATE: %v", err)
	}
	if _, err := server.Authenticate(out, &out); err != nil {
		t.Fatalf("OFFER: %v", err)
	}
	offer := out
	if _, err := client.Authenticate(offer, &out); err != nil {
		t.Fatalf("ACCEPT: %v", err)
	}
	accept := out
	if _, err := server.Authenticate(accept, &out); err != nil {
		t.Fatalf("CONFIRM: %v", err)
	}
	confirm := out

	var delegateOut []byte
	_, err := client.Authenticate(confirm, &delegateOut)
	assertErrCode(t, err, ErrMissingBlob)
	if delegateOut != nil {
		t.Fatalf("no DELEGATE should have been emitted, got %d bytes", len(delegateOut))
	}
}

// Terminal-state invariant: no call succeeds past the handshake's end.
func TestTerminalStateRejectsFurtherCalls(t *testing.T) {
	client := New(RoleClient)
	server := New(RoleServer)
	client.SetBlob(Blob{BlobType: 1, Data: []byte("x")})
	if err := run(t, client, server); err != nil {
		t.Fatalf("handshake failed: %v", err)
	}

	var out []byte
	if _, err := client.Authenticate(nil, &out); err == nil {
		t.Fatalf("expected BadSequence after terminal state")
	} else {
		assertErrCode(t, err, ErrBadSequence)
	}
	if _, err := server.Authenticate(nil, &out); err == nil {
		t.Fatalf("expected BadSequence after terminal state")
	} else {
		assertErrCode(t, err, ErrBadSequence)
	}
}

func assertErrCode(t *testing.T, err error, want ErrorCode) {
	t.Helper()
	se, ok := err.(*SrdError)
	if !ok || se == nil {
		t.Fatalf("expected *SrdError with code %s, got %v", want, err)
	}
	if se.Code != want {
		t.Fatalf("expected error code %s, got %s (%v)", want, se.Code, err)
	}
}
