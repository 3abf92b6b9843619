package srd

import "testing"

// Scenario 3: CBT mismatch — both sides set cert_data but to different
// values, so the server's ACCEPT-time CBT check fails.
func TestCbtMismatch(t *testing.T) {
	client := New(RoleClient)
	server := New(RoleServer)
	client.SetCertData([]byte("A"))
	server.SetCertData([]byte("B"))
	client.SetBlob(Blob{BlobType: 1, Data: []byte("x")})

	err := run(t, client, server)
	assertErrCode(t, err, ErrInvalidCbt)
}

// Scenario 4: asymmetric CBT — client sets cert_data, server does not, so
// the server sees an unexpected CBT on ACCEPT.
func TestCbtAsymmetric(t *testing.T) {
	client := New(RoleClient)
	server := New(RoleServer)
	client.SetCertData([]byte("CERT"))
	client.SetBlob(Blob{BlobType: 1, Data: []byte("x")})

	err := run(t, client, server)
	assertErrCode(t, err, ErrInvalidCert)
}

// The reverse asymmetry: server has cert_data, client does not. The server
// expects a CBT on ACCEPT but the client sends none, so the server fails
// before it ever emits CONFIRM.
func TestCbtAsymmetricServerOnly(t *testing.T) {
	client := New(RoleClient)
	server := New(RoleServer)
	server.SetCertData([]byte("CERT"))
	client.SetBlob(Blob{BlobType: 1, Data: []byte("x")})

	err := run(t, client, server)
	assertErrCode(t, err, ErrInvalidCert)
}

// clientCBT/serverCBT must bind the sender's own nonce, not the receiver's.
// A same-value client/server nonce pair would mask this bug, so use
// distinct nonces and check the two tokens differ even for identical
// cert_data and integrity key.
func TestCbtBindsSendersOwnNonce(t *testing.T) {
	var key [32]byte
	copy(key[:], "integrity-key-for-this-test-only")
	var cn, sn [32]byte
	copy(cn[:], "client-nonce-aaaaaaaaaaaaaaaaaaaZ")
	copy(sn[:], "server-nonce-bbbbbbbbbbbbbbbbbbbZ")
	cert := []byte("CERT")

	c := clientCBT(key, cn, cert)
	s := serverCBT(key, sn, cert)
	if c == s {
		t.Fatalf("client and server CBTs must differ when nonces differ")
	}
	if c != bindCBT(key, cn, cert) {
		t.Fatalf("clientCBT must bind client_nonce")
	}
	if s != bindCBT(key, sn, cert) {
		t.Fatalf("serverCBT must bind server_nonce")
	}
}
