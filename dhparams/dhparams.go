// Package dhparams holds the three fixed Diffie-Hellman groups SRD
// negotiates by key_size, and the modular-exponentiation helpers built on
// them. The groups themselves are immutable package-level values; nothing
// here is safe to mutate and nothing needs to be, since every exchange
// samples its own private exponent.
package dhparams

import (
	"crypto/rand"
	"io"
	"math/big"
)

// Group is an immutable (generator, prime) pair together with the byte
// length private keys and shared secrets are expected to occupy.
type Group struct {
	KeySize   uint16
	Generator *big.Int
	Prime     *big.Int
}

// MODP256, MODP512 and MODP1024 are the three fixed groups, named by
// resulting byte length rather than bit length, matching how SRD's key_size
// is expressed on the wire.
var (
	MODP256  = mustGroup(256, 2, prime256)
	MODP512  = mustGroup(512, 2, prime512)
	MODP1024 = mustGroup(1024, 2, prime1024)

	groups = map[uint16]*Group{
		256:  MODP256,
		512:  MODP512,
		1024: MODP1024,
	}
)

func mustGroup(keySize uint16, gen int64, primeHex string) *Group {
	p, ok := new(big.Int).SetString(primeHex, 16)
	if !ok {
		panic("dhparams: malformed embedded prime")
	}
	return &Group{
		KeySize:   keySize,
		Generator: big.NewInt(gen),
		Prime:     p,
	}
}

// Lookup returns the fixed group for the given key_size (in bytes: 256,
// 512 or 1024), or false if key_size names no known group.
func Lookup(keySize uint16) (*Group, bool) {
	g, ok := groups[keySize]
	return g, ok
}

// GeneratorBytes returns the group generator as a big-endian byte string,
// the form carried on the wire.
func (g *Group) GeneratorBytes() []byte { return g.Generator.Bytes() }

// PrimeBytes returns the group prime as a big-endian byte string.
func (g *Group) PrimeBytes() []byte { return g.Prime.Bytes() }

// PrivateKey samples a uniform private exponent of exactly KeySize bytes.
// The convention of sizing the exponent to the prime's byte length, rather
// than to a conservative fixed bit count, is a local choice: it does not
// affect wire interop since the exponent is never transmitted, only the
// resulting public value is.
func (g *Group) PrivateKey(random io.Reader) (*big.Int, error) {
	b := make([]byte, g.KeySize)
	if _, err := io.ReadFull(random, b); err != nil {
		return nil, err
	}
	// Force the top bit so the exponent always occupies the full byte
	// length; an all-zero top byte would silently shrink it.
	b[0] |= 0x80
	return new(big.Int).SetBytes(b), nil
}

// PublicKey computes g^priv mod p.
func (g *Group) PublicKey(priv *big.Int) *big.Int {
	return new(big.Int).Exp(g.Generator, priv, g.Prime)
}

// SharedSecret computes peerPublic^priv mod p, the raw modpow output with
// no leading-zero trimming beyond what big.Int.Bytes already does.
func (g *Group) SharedSecret(peerPublic, priv *big.Int) *big.Int {
	return new(big.Int).Exp(peerPublic, priv, g.Prime)
}

// DefaultRandom is crypto/rand.Reader, a ready-made source to pass to
// PrivateKey. Group methods never fall back to it: PrivateKey reads only
// from the reader it is given.
var DefaultRandom = rand.Reader
