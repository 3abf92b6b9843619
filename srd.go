// Package srd implements the core of the Secure Remote Delegation (SRD)
// handshake: a four-message, Diffie-Hellman-backed exchange between a client
// and a server that ends with both sides holding a shared delegation key,
// integrity key and IV, and with an opaque credential blob delivered from
// client to server under confidentiality and authenticity.
//
// A Session is role-scoped (RoleClient or RoleServer) and drives the
// handshake one message at a time through Authenticate: the caller owns the
// transport (net.Conn, net.Pipe, or anything else that moves byte buffers)
// and feeds Session the bytes it reads, forwarding the bytes Session wants
// written. Session performs no I/O itself.
//
//	c := srd.New(srd.RoleClient)
//	c.SetBlob(srd.Blob{BlobType: 1, Data: credential})
//	var out []byte
//	done, err := c.Authenticate(nil, &out)
//	// ... send out to the peer, read its reply into in ...
//	done, err = c.Authenticate(in, &out)
//
// See client.go and server.go for the exact per-role state tables, wire/ for
// the packet codec, dhparams/ for the fixed Diffie-Hellman groups, and
// keyschedule.go for key derivation and channel binding.
package srd
