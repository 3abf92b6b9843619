package srd

import (
	"crypto/rand"
	"io"
	"math/big"

	kitlog "github.com/go-kit/kit/log"

	"github.com/wayk/srd/dhparams"
	"github.com/wayk/srd/internal/seclog"
)

// Role distinguishes the two sides of an SRD handshake.
type Role uint8

const (
	RoleClient Role = iota
	RoleServer
)

func (r Role) String() string {
	if r == RoleServer {
		return "server"
	}
	return "client"
}

// Session drives one handshake attempt. It is not safe for concurrent
// Authenticate calls — exactly one goroutine may own a Session at a time,
// matching the reference implementation's lack of internal locking.
type Session struct {
	role Role

	keySize uint16
	group   *dhparams.Group

	seqNum uint8 // call/state counter: 0, 1, 2, then 3 == terminal

	privateKey *big.Int
	publicKey  *big.Int

	clientNonce [32]byte
	serverNonce [32]byte

	sharedSecret []byte
	keys         keyMaterial

	certData []byte

	outgoingBlob *Blob // client's blob, set via SetBlob before state 2
	incomingBlob *Blob // server's blob, populated on terminal success

	transcript []byte

	random io.Reader

	cryptoLog kitlog.Logger
}

const terminalSeq = 3

// New creates a Session for the given role. Its DH group defaults to the
// 256-byte MODP group; clients may change it with SetKeySize before the
// first Authenticate call.
func New(role Role) *Session {
	return &Session{
		role:      role,
		keySize:   256,
		group:     dhparams.MODP256,
		random:    rand.Reader,
		cryptoLog: seclog.NewCryptoLogger(nil),
	}
}

// SetCryptoLogger installs a go-kit leveled logger for crypto-operation
// debug tracing; nil restores the no-op logger.
func (s *Session) SetCryptoLogger(l kitlog.Logger) {
	s.cryptoLog = seclog.NewCryptoLogger(l)
}

// SetKeySize proposes a DH group by its byte length. Only meaningful on the
// client, which must call it (if at all) before the first Authenticate call.
func (s *Session) SetKeySize(keySize uint16) error {
	if s.role != RoleClient {
		return newErr(ErrBadSequence, "SetKeySize only applies to the client role")
	}
	g, ok := dhparams.Lookup(keySize)
	if !ok {
		return newErr(ErrInvalidKeySize, "unsupported key_size %d", keySize)
	}
	s.keySize = keySize
	s.group = g
	return nil
}

// SetCertData enables channel binding on this peer.
func (s *Session) SetCertData(cert []byte) {
	s.certData = append([]byte{}, cert...)
}

// SetBlob sets the credential payload the client delivers on DELEGATE. Must
// be called before the client's state-2 Authenticate call.
func (s *Session) SetBlob(b Blob) {
	cp := Blob{BlobType: b.BlobType, Data: append([]byte{}, b.Data...)}
	s.outgoingBlob = &cp
}

// Blob returns the blob the server received after a successful handshake.
func (s *Session) Blob() (Blob, bool) {
	if s.incomingBlob == nil {
		return Blob{}, false
	}
	return *s.incomingBlob, true
}

// Terminal reports whether the session has completed its handshake (or
// failed fatally partway, leaving no further calls possible).
func (s *Session) Terminal() bool { return s.seqNum >= terminalSeq }

// Role reports which side of the handshake this session plays.
func (s *Session) Role() Role { return s.role }

// DelegationKey, IntegrityKey and IV are only meaningful once the handshake
// has derived keys (client state 1 onward, server state 1 onward).
func (s *Session) DelegationKey() [32]byte { return s.keys.delegationKey }
func (s *Session) IntegrityKey() [32]byte  { return s.keys.integrityKey }
func (s *Session) IV() [16]byte            { return s.keys.iv }

// Authenticate consumes one inbound message (absent for the client's first
// call) and produces at most one outbound message, advancing the session by
// exactly one state. It returns true exactly when this call completed the
// handshake.
func (s *Session) Authenticate(input []byte, output *[]byte) (bool, error) {
	if s.Terminal() {
		return false, newErr(ErrBadSequence, "session already in terminal state")
	}
	var (
		done bool
		err  error
	)
	switch s.role {
	case RoleClient:
		done, err = s.clientStep(input, output)
	case RoleServer:
		done, err = s.serverStep(input, output)
	default:
		err = newErr(ErrBadSequence, "unknown role")
	}
	if err != nil {
		// All errors are fatal: force the session into terminal state so a
		// caller that ignores the error still can't make further progress.
		s.seqNum = terminalSeq
		return false, err
	}
	s.seqNum++
	if done {
		seclog.Infof("srd: %s handshake complete", s.role)
	}
	return done, nil
}

func (s *Session) appendTranscript(b []byte) {
	s.transcript = append(s.transcript, b...)
}

func (s *Session) deriveKeys() {
	s.keys = deriveKeys(s.clientNonce, s.serverNonce, s.sharedSecret)
	seclog.Debug(s.cryptoLog, "msg", "derived keys", "key_size", s.keySize)
}

func sampleNonce(random io.Reader) ([32]byte, error) {
	var n [32]byte
	if _, err := io.ReadFull(random, n[:]); err != nil {
		return n, newErr(ErrCrypto, "%v", err)
	}
	return n, nil
}
