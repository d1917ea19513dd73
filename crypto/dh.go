package crypto

import (
	"crypto/rand"
	"fmt"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/curve25519"
)

// KeyPair represents a Diffie-Hellman key pair.
type KeyPair struct {
	Private []byte
	Public  []byte
}

// Wipe securely erases the private half of the key pair.
func (kp *KeyPair) Wipe() {
	if kp != nil {
		ZeroBytes(kp.Private)
	}
}

// DHFunc bundles a Diffie-Hellman function with its shared-secret length.
// DHLen defines one of the accepted input-key-material lengths for key
// mixing, alongside 0 and 32.
type DHFunc struct {
	Name     string
	DHLen    int
	Generate func() (*KeyPair, error)
	DH       func(private, public []byte) ([]byte, error)
}

// DH25519 is Curve25519 ECDH, the only curve currently supported.
var DH25519 = DHFunc{
	Name:  "25519",
	DHLen: 32,

	Generate: func() (*KeyPair, error) {
		private := make([]byte, curve25519.ScalarSize)
		if _, err := rand.Read(private); err != nil {
			return nil, fmt.Errorf("failed to generate private key: %w", err)
		}

		public, err := curve25519.X25519(private, curve25519.Basepoint)
		if err != nil {
			ZeroBytes(private)
			return nil, fmt.Errorf("failed to derive public key: %w", err)
		}

		return &KeyPair{Private: private, Public: public}, nil
	},

	DH: func(private, public []byte) ([]byte, error) {
		logrus.WithFields(logrus.Fields{
			"function": "DH25519.DH",
		}).WithFields(SecureFieldHash(public, "peer_key")).Debug("Computing shared secret using ECDH")

		// Work on copies to prevent modification of caller buffers
		privateCopy := make([]byte, len(private))
		publicCopy := make([]byte, len(public))
		copy(privateCopy, private)
		copy(publicCopy, public)

		shared, err := curve25519.X25519(privateCopy, publicCopy)
		ZeroBytes(privateCopy)
		if err != nil {
			return nil, fmt.Errorf("failed to compute shared secret: %w", err)
		}

		if len(shared) != curve25519.PointSize {
			ZeroBytes(shared)
			return nil, fmt.Errorf("shared secret must be %d bytes, got %d", curve25519.PointSize, len(shared))
		}

		return shared, nil
	},
}

// LookupDH resolves a DH name from a cipher suite string to its
// primitive bundle.
func LookupDH(name string) (DHFunc, error) {
	switch name {
	case "25519":
		return DH25519, nil
	default:
		return DHFunc{}, fmt.Errorf("unsupported DH algorithm: %s", name)
	}
}
