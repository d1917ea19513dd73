package crypto

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/hkdf"
)

// DerivedKeys holds the outputs of an extract-and-expand derivation.
// Each output is exactly one hash length. Third is nil for two-output
// derivations. Callers must Wipe once the secrets have been consumed.
type DerivedKeys struct {
	First  []byte
	Second []byte
	Third  []byte
}

// Wipe securely erases all derived outputs. Safe to call more than once.
func (dk *DerivedKeys) Wipe() {
	ZeroAll(dk.First, dk.Second, dk.Third)
}

// DeriveKeys runs HKDF over the chaining key and new input key material,
// expanding into outputCount independent secrets of h.Len bytes each.
// The chaining key acts as the extraction salt; no expansion info is
// used. This matches the Noise HMAC derivation chain exactly.
func DeriveKeys(h HashFunc, chainingKey, inputKeyMaterial []byte, outputCount int) (*DerivedKeys, error) {
	if outputCount != 2 && outputCount != 3 {
		return nil, fmt.Errorf("output count must be 2 or 3, got %d", outputCount)
	}
	if len(chainingKey) != h.Len {
		return nil, fmt.Errorf("chaining key must be %d bytes, got %d", h.Len, len(chainingKey))
	}

	logrus.WithFields(logrus.Fields{
		"function":     "DeriveKeys",
		"hash":         h.Name,
		"output_count": outputCount,
		"ikm_size":     len(inputKeyMaterial),
	}).Debug("Deriving keys from chaining key")

	reader := hkdf.New(h.New, inputKeyMaterial, chainingKey, nil)

	out := make([]byte, outputCount*h.Len)
	if _, err := io.ReadFull(reader, out); err != nil {
		ZeroBytes(out)
		return nil, fmt.Errorf("key derivation failed: %w", err)
	}

	dk := &DerivedKeys{
		First:  out[:h.Len:h.Len],
		Second: out[h.Len : 2*h.Len : 2*h.Len],
	}
	if outputCount == 3 {
		dk.Third = out[2*h.Len:]
	}
	return dk, nil
}
