package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"encoding/binary"
	"fmt"

	"golang.org/x/crypto/chacha20poly1305"
)

// AEADKeySize is the fixed key size for every supported cipher. Noise
// derives 32-byte cipher keys regardless of the hash output length.
const AEADKeySize = 32

// AEADFunc bundles an AEAD construction with its Noise nonce encoding.
// Both supported ciphers use 96-bit nonces carrying a 64-bit counter.
type AEADFunc struct {
	Name        string
	New         func(key []byte) (cipher.AEAD, error)
	EncodeNonce func(n uint64) [12]byte
}

var (
	// AEADChaChaPoly is ChaCha20-Poly1305 with the counter encoded
	// little-endian in the last eight nonce bytes.
	AEADChaChaPoly = AEADFunc{
		Name: "ChaChaPoly",
		New: func(key []byte) (cipher.AEAD, error) {
			if len(key) != AEADKeySize {
				return nil, fmt.Errorf("chacha20poly1305 key must be %d bytes, got %d", AEADKeySize, len(key))
			}
			return chacha20poly1305.New(key)
		},
		EncodeNonce: func(n uint64) [12]byte {
			var nonce [12]byte
			binary.LittleEndian.PutUint64(nonce[4:], n)
			return nonce
		},
	}

	// AEADAESGCM is AES-256-GCM with the counter encoded big-endian in
	// the last eight nonce bytes.
	AEADAESGCM = AEADFunc{
		Name: "AESGCM",
		New: func(key []byte) (cipher.AEAD, error) {
			if len(key) != AEADKeySize {
				return nil, fmt.Errorf("aes-gcm key must be %d bytes, got %d", AEADKeySize, len(key))
			}
			block, err := aes.NewCipher(key)
			if err != nil {
				return nil, fmt.Errorf("aes cipher init: %w", err)
			}
			return cipher.NewGCM(block)
		},
		EncodeNonce: func(n uint64) [12]byte {
			var nonce [12]byte
			binary.BigEndian.PutUint64(nonce[4:], n)
			return nonce
		},
	}
)

// LookupAEAD resolves a cipher name from a cipher suite string to its
// primitive bundle.
func LookupAEAD(name string) (AEADFunc, error) {
	switch name {
	case "ChaChaPoly":
		return AEADChaChaPoly, nil
	case "AESGCM":
		return AEADAESGCM, nil
	default:
		return AEADFunc{}, fmt.Errorf("unsupported cipher: %s", name)
	}
}
