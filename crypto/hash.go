package crypto

import (
	"crypto/sha256"
	"crypto/sha512"
	"fmt"
	"hash"

	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/blake2s"
)

// HashFunc bundles a hash primitive with its fixed output and block sizes.
// Len determines the chaining key and transcript hash sizes of every
// symmetric state built on this function.
type HashFunc struct {
	Name     string
	Len      int
	BlockLen int
	New      func() hash.Hash
}

// Sum computes a one-shot digest of data.
func (h HashFunc) Sum(data []byte) []byte {
	hasher := h.New()
	hasher.Write(data)
	return hasher.Sum(nil)
}

// Supported hash functions, keyed by their Noise protocol name component.
var (
	HashSHA256 = HashFunc{
		Name:     "SHA256",
		Len:      sha256.Size,
		BlockLen: sha256.BlockSize,
		New:      sha256.New,
	}

	HashSHA512 = HashFunc{
		Name:     "SHA512",
		Len:      sha512.Size,
		BlockLen: sha512.BlockSize,
		New:      sha512.New,
	}

	HashBLAKE2s = HashFunc{
		Name:     "BLAKE2s",
		Len:      blake2s.Size,
		BlockLen: blake2s.BlockSize,
		New: func() hash.Hash {
			h, err := blake2s.New256(nil)
			if err != nil {
				// Unkeyed construction cannot fail
				panic(fmt.Sprintf("blake2s init: %v", err))
			}
			return h
		},
	}

	HashBLAKE2b = HashFunc{
		Name:     "BLAKE2b",
		Len:      blake2b.Size,
		BlockLen: blake2b.BlockSize,
		New: func() hash.Hash {
			h, err := blake2b.New512(nil)
			if err != nil {
				panic(fmt.Sprintf("blake2b init: %v", err))
			}
			return h
		},
	}
)

// LookupHash resolves a hash name from a cipher suite string to its
// primitive bundle.
func LookupHash(name string) (HashFunc, error) {
	switch name {
	case "SHA256":
		return HashSHA256, nil
	case "SHA512":
		return HashSHA512, nil
	case "BLAKE2s":
		return HashBLAKE2s, nil
	case "BLAKE2b":
		return HashBLAKE2b, nil
	default:
		return HashFunc{}, fmt.Errorf("unsupported hash algorithm: %s", name)
	}
}
