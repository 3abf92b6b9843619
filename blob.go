package srd

import (
	"crypto/aes"
	"crypto/cipher"
	"encoding/binary"
)

// Blob is the opaque, typed credential payload carried by DELEGATE. SRD
// only interprets BlobType and the length of Data; their meaning is entirely
// up to the caller.
type Blob struct {
	BlobType uint32
	Data     []byte
}

// serializeBlob encodes a Blob to the plaintext bytes that get
// AES-256-CBC-encrypted under the delegation key.
func serializeBlob(b Blob) []byte {
	out := make([]byte, 4+4+len(b.Data))
	binary.LittleEndian.PutUint32(out[0:4], b.BlobType)
	binary.LittleEndian.PutUint32(out[4:8], uint32(len(b.Data)))
	copy(out[8:], b.Data)
	return out
}

// deserializeBlob is serializeBlob's inverse. It fails with ErrInvalidBlob
// on any malformed or truncated input.
func deserializeBlob(b []byte) (Blob, error) {
	if len(b) < 8 {
		return Blob{}, newErr(ErrInvalidBlob, "blob header truncated")
	}
	blobType := binary.LittleEndian.Uint32(b[0:4])
	n := binary.LittleEndian.Uint32(b[4:8])
	rest := b[8:]
	if uint64(n) != uint64(len(rest)) {
		return Blob{}, newErr(ErrInvalidBlob, "blob length field %d does not match %d remaining bytes", n, len(rest))
	}
	return Blob{BlobType: blobType, Data: append([]byte{}, rest...)}, nil
}

// pkcs7Pad pads b to a whole number of AES blocks: the pad byte value equals
// the pad length, and at least one pad byte is always added (so the
// unpadded length is always recoverable even when b is already
// block-aligned).
func pkcs7Pad(b []byte) []byte {
	padLen := aes.BlockSize - len(b)%aes.BlockSize
	pad := make([]byte, padLen)
	for i := range pad {
		pad[i] = byte(padLen)
	}
	return append(append([]byte{}, b...), pad...)
}

// pkcs7Unpad validates and strips PKCS#7 padding, failing with ErrCrypto on
// any inconsistency rather than trusting the last byte blindly.
func pkcs7Unpad(b []byte) ([]byte, error) {
	if len(b) == 0 || len(b)%aes.BlockSize != 0 {
		return nil, newErr(ErrCrypto, "ciphertext is not a multiple of the block size")
	}
	padLen := int(b[len(b)-1])
	if padLen == 0 || padLen > aes.BlockSize || padLen > len(b) {
		return nil, newErr(ErrCrypto, "invalid PKCS#7 padding length %d", padLen)
	}
	for _, v := range b[len(b)-padLen:] {
		if int(v) != padLen {
			return nil, newErr(ErrCrypto, "invalid PKCS#7 padding bytes")
		}
	}
	return b[:len(b)-padLen], nil
}

// encryptBlob serializes and AES-256-CBC-encrypts a Blob under the
// delegation key and session IV. The MAC covering this ciphertext is
// computed separately by the caller, per the encrypt-then-MAC ordering.
func encryptBlob(delegationKey [32]byte, iv [16]byte, b Blob) ([]byte, error) {
	block, err := aes.NewCipher(delegationKey[:])
	if err != nil {
		return nil, newErr(ErrCrypto, "%v", err)
	}
	plain := pkcs7Pad(serializeBlob(b))
	ct := make([]byte, len(plain))
	cipher.NewCBCEncrypter(block, iv[:]).CryptBlocks(ct, plain)
	return ct, nil
}

// decryptBlob reverses encryptBlob. Callers must verify the transcript MAC
// over the ciphertext before calling this, per the encrypt-then-MAC
// contract — decryptBlob itself performs no authentication.
func decryptBlob(delegationKey [32]byte, iv [16]byte, ct []byte) (Blob, error) {
	block, err := aes.NewCipher(delegationKey[:])
	if err != nil {
		return Blob{}, newErr(ErrCrypto, "%v", err)
	}
	if len(ct) == 0 || len(ct)%aes.BlockSize != 0 {
		return Blob{}, newErr(ErrCrypto, "ciphertext is not a multiple of the block size")
	}
	plain := make([]byte, len(ct))
	cipher.NewCBCDecrypter(block, iv[:]).CryptBlocks(plain, ct)
	unpadded, err := pkcs7Unpad(plain)
	if err != nil {
		return Blob{}, err
	}
	return deserializeBlob(unpadded)
}
