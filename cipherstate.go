package noisetranscript

import (
	"crypto/cipher"
	"fmt"
	"math"

	"github.com/sirupsen/logrus"

	"github.com/opd-ai/noisetranscript/crypto"
)

// maxNonce is reserved and never used for encryption; reaching it means
// the key has been used for 2^64-1 messages and must be retired.
const maxNonce = math.MaxUint64

// CipherState holds a cipher key and nonce counter for authenticated
// encryption. Inside a handshake it is owned by a SymmetricState; after
// Split each party holds one CipherState per traffic direction.
//
// Without an installed key, Encrypt and Decrypt degrade to identity
// transforms. This is a valid state used for handshake payloads sent
// before any key material has been mixed.
type CipherState struct {
	aeadFn   crypto.AEADFunc
	aead     cipher.AEAD
	key      []byte
	n        uint64
	hasKey   bool
	disposed bool
}

// NewCipherState creates a keyless cipher state for the given AEAD
// construction.
func NewCipherState(aeadFn crypto.AEADFunc) *CipherState {
	return &CipherState{aeadFn: aeadFn}
}

// InitializeKey installs a 32-byte cipher key and resets the nonce to
// zero. Any previously installed key is securely erased.
func (cs *CipherState) InitializeKey(key []byte) error {
	if cs.disposed {
		return ErrStateDisposed
	}
	if len(key) != crypto.AEADKeySize {
		return fmt.Errorf("%w: cipher key must be %d bytes, got %d", ErrInvalidKeyMaterial, crypto.AEADKeySize, len(key))
	}

	keyCopy := make([]byte, crypto.AEADKeySize)
	copy(keyCopy, key)

	aead, err := cs.aeadFn.New(keyCopy)
	if err != nil {
		crypto.ZeroBytes(keyCopy)
		return fmt.Errorf("failed to initialize cipher: %w", err)
	}

	crypto.ZeroBytes(cs.key)
	cs.key = keyCopy
	cs.aead = aead
	cs.n = 0
	cs.hasKey = true

	logrus.WithFields(logrus.Fields{
		"function": "CipherState.InitializeKey",
		"cipher":   cs.aeadFn.Name,
	}).Debug("Cipher key installed")
	return nil
}

// HasKey reports whether a cipher key is currently installed.
func (cs *CipherState) HasKey() bool {
	return cs.hasKey && !cs.disposed
}

// Nonce returns the current nonce counter value.
func (cs *CipherState) Nonce() uint64 {
	return cs.n
}

// SetNonce overrides the nonce counter. Used by transports that handle
// out-of-order delivery with explicit nonces.
func (cs *CipherState) SetNonce(n uint64) {
	cs.n = n
}

// EncryptWithAD encrypts plaintext bound to the given associated data
// and advances the nonce. Without an installed key the plaintext is
// returned unchanged and no tag is produced.
func (cs *CipherState) EncryptWithAD(ad, plaintext []byte) ([]byte, error) {
	if cs.disposed {
		return nil, ErrStateDisposed
	}
	if !cs.hasKey {
		return plaintext, nil
	}
	if cs.n == maxNonce {
		return nil, ErrNonceExhausted
	}

	nonce := cs.aeadFn.EncodeNonce(cs.n)
	ciphertext := cs.aead.Seal(nil, nonce[:], plaintext, ad)
	cs.n++
	return ciphertext, nil
}

// DecryptWithAD authenticates and decrypts ciphertext bound to the
// given associated data. The nonce advances only on success, so a
// failed decryption leaves the state exactly as it was. Without an
// installed key the ciphertext is returned unchanged.
func (cs *CipherState) DecryptWithAD(ad, ciphertext []byte) ([]byte, error) {
	if cs.disposed {
		return nil, ErrStateDisposed
	}
	if !cs.hasKey {
		return ciphertext, nil
	}
	if cs.n == maxNonce {
		return nil, ErrNonceExhausted
	}

	nonce := cs.aeadFn.EncodeNonce(cs.n)
	plaintext, err := cs.aead.Open(nil, nonce[:], ciphertext, ad)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAuthenticationFailure, err)
	}
	cs.n++
	return plaintext, nil
}

// Rekey replaces the cipher key with ENCRYPT(k, maxnonce, "", zeros[32])
// truncated to 32 bytes, as defined by the Noise specification. The
// nonce counter is preserved.
func (cs *CipherState) Rekey() error {
	if cs.disposed {
		return ErrStateDisposed
	}
	if !cs.hasKey {
		return ErrKeyNotInitialized
	}

	nonce := cs.aeadFn.EncodeNonce(maxNonce)
	zeros := make([]byte, crypto.AEADKeySize)
	stream := cs.aead.Seal(nil, nonce[:], zeros, nil)

	aead, err := cs.aeadFn.New(stream[:crypto.AEADKeySize])
	if err != nil {
		crypto.ZeroBytes(stream)
		return fmt.Errorf("failed to rekey cipher: %w", err)
	}

	crypto.ZeroBytes(cs.key)
	copy(cs.key, stream[:crypto.AEADKeySize])
	cs.aead = aead
	crypto.ZeroBytes(stream)

	logrus.WithFields(logrus.Fields{
		"function": "CipherState.Rekey",
		"cipher":   cs.aeadFn.Name,
	}).Debug("Cipher key rotated")
	return nil
}

// Wipe securely erases the cipher key and marks the state disposed.
// Calling Wipe more than once is a no-op.
func (cs *CipherState) Wipe() {
	if cs == nil || cs.disposed {
		return
	}
	crypto.ZeroBytes(cs.key)
	cs.aead = nil
	cs.hasKey = false
	cs.disposed = true
}
