package noisetranscript

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/opd-ai/noisetranscript/crypto"
)

// SymmetricState owns the transcript of a Noise handshake: the secret
// chaining key that all session keys derive from, the running hash that
// binds every handshake message, and a nested CipherState for handshake
// payload encryption.
//
// A SymmetricState is driven by exactly one handshake goroutine in the
// order fixed by the handshake pattern; it performs no locking. The
// lifecycle is construction, interleaved mix/encrypt/decrypt calls, one
// terminal Split, then Wipe.
type SymmetricState struct {
	suite  *crypto.Suite
	cipher *CipherState
	ck     []byte
	h      []byte

	spent    bool
	disposed bool
}

// NewSymmetricState constructs a transcript state for the given suite
// and protocol identifier. Identifiers no longer than the hash length
// become the initial transcript hash zero-padded; longer identifiers
// are hashed down. The chaining key starts as a copy of the transcript
// hash.
func NewSymmetricState(suite *crypto.Suite, protocolName []byte) (*SymmetricState, error) {
	if suite == nil {
		return nil, fmt.Errorf("%w: suite", ErrInvalidArgument)
	}
	if protocolName == nil {
		return nil, fmt.Errorf("%w: protocol name", ErrInvalidArgument)
	}

	hashLen := suite.Hash.Len
	h := make([]byte, hashLen)
	if len(protocolName) <= hashLen {
		copy(h, protocolName)
	} else {
		h = suite.Hash.Sum(protocolName)
	}

	ck := make([]byte, hashLen)
	copy(ck, h)

	logrus.WithFields(logrus.Fields{
		"function": "NewSymmetricState",
		"suite":    suite.Name,
		"protocol": string(protocolName),
	}).Debug("Symmetric state initialized")

	return &SymmetricState{
		suite:  suite,
		cipher: NewCipherState(suite.Cipher),
		ck:     ck,
		h:      h,
	}, nil
}

// NewSymmetricStateFromName resolves a full Noise protocol identifier
// such as "Noise_XX_25519_ChaChaPoly_SHA256" and constructs a state
// bound to that identifier.
func NewSymmetricStateFromName(protocolName string) (*SymmetricState, error) {
	if protocolName == "" {
		return nil, fmt.Errorf("%w: protocol name", ErrInvalidArgument)
	}
	suite, err := crypto.ResolveSuiteName(protocolName)
	if err != nil {
		return nil, err
	}
	return NewSymmetricState(suite, []byte(protocolName))
}

// usable rejects calls on spent or disposed states.
func (ss *SymmetricState) usable() error {
	if ss.disposed {
		return ErrStateDisposed
	}
	if ss.spent {
		return ErrStateSpent
	}
	return nil
}

// validateKeyMaterial enforces the accepted input-key-material lengths:
// empty, a 32-byte key, or a DH shared secret.
func (ss *SymmetricState) validateKeyMaterial(ikm []byte) error {
	switch len(ikm) {
	case 0, 32, ss.suite.DH.DHLen:
		return nil
	default:
		return fmt.Errorf("%w: got %d bytes (DHLen=%d)", ErrInvalidKeyMaterial, len(ikm), ss.suite.DH.DHLen)
	}
}

// MixHash absorbs data into the running transcript hash:
// h = HASH(h || data). Key material is untouched.
func (ss *SymmetricState) MixHash(data []byte) error {
	if err := ss.usable(); err != nil {
		return err
	}
	hasher := ss.suite.Hash.New()
	hasher.Write(ss.h)
	hasher.Write(data)
	ss.h = hasher.Sum(ss.h[:0])
	return nil
}

// MixKey ratchets the chaining key forward with new input key material
// and installs a fresh handshake cipher key. The old chaining key and
// all intermediate derivation outputs are securely erased.
func (ss *SymmetricState) MixKey(inputKeyMaterial []byte) error {
	if err := ss.usable(); err != nil {
		return err
	}
	if err := ss.validateKeyMaterial(inputKeyMaterial); err != nil {
		return err
	}

	dk, err := crypto.DeriveKeys(ss.suite.Hash, ss.ck, inputKeyMaterial, 2)
	if err != nil {
		return err
	}
	defer dk.Wipe()

	ss.adoptChainingKey(dk.First)
	return ss.installCipherKey(dk.Second)
}

// MixKeyAndHash ratchets the chaining key, binds a derived value into
// the transcript hash, and installs a fresh cipher key. Used where the
// input key material itself must be bound into the transcript, such as
// pre-shared keys.
func (ss *SymmetricState) MixKeyAndHash(inputKeyMaterial []byte) error {
	if err := ss.usable(); err != nil {
		return err
	}
	if err := ss.validateKeyMaterial(inputKeyMaterial); err != nil {
		return err
	}

	dk, err := crypto.DeriveKeys(ss.suite.Hash, ss.ck, inputKeyMaterial, 3)
	if err != nil {
		return err
	}
	defer dk.Wipe()

	ss.adoptChainingKey(dk.First)
	if err := ss.MixHash(dk.Second); err != nil {
		return err
	}
	return ss.installCipherKey(dk.Third)
}

// adoptChainingKey replaces the chaining key in place, erasing the old
// value first.
func (ss *SymmetricState) adoptChainingKey(newCK []byte) {
	crypto.ZeroBytes(ss.ck)
	copy(ss.ck, newCK)
}

// installCipherKey truncates a derived secret to the 32-byte cipher key
// size and installs it in the nested cipher. The discarded tail is
// erased by the caller's DerivedKeys.Wipe.
func (ss *SymmetricState) installCipherKey(tempKey []byte) error {
	return ss.cipher.InitializeKey(tempKey[:crypto.AEADKeySize])
}

// EncryptAndHash encrypts plaintext with the current transcript hash as
// associated data, then absorbs the ciphertext into the transcript so
// both parties hash exactly the bytes on the wire. Before any key has
// been mixed the ciphertext equals the plaintext.
func (ss *SymmetricState) EncryptAndHash(plaintext []byte) ([]byte, error) {
	if err := ss.usable(); err != nil {
		return nil, err
	}

	ciphertext, err := ss.cipher.EncryptWithAD(ss.h, plaintext)
	if err != nil {
		return nil, err
	}
	if err := ss.MixHash(ciphertext); err != nil {
		return nil, err
	}
	return ciphertext, nil
}

// DecryptAndHash authenticates and decrypts ciphertext with the current
// transcript hash as associated data, then absorbs the ciphertext into
// the transcript. On authentication failure the transcript hash and
// cipher nonce are left unmodified so the caller can abort cleanly.
func (ss *SymmetricState) DecryptAndHash(ciphertext []byte) ([]byte, error) {
	if err := ss.usable(); err != nil {
		return nil, err
	}

	plaintext, err := ss.cipher.DecryptWithAD(ss.h, ciphertext)
	if err != nil {
		return nil, err
	}
	if err := ss.MixHash(ciphertext); err != nil {
		return nil, err
	}
	return plaintext, nil
}

// GetHandshakeHash returns a copy of the current transcript hash. After
// Split it is the channel-binding value both parties must agree on.
func (ss *SymmetricState) GetHandshakeHash() []byte {
	h := make([]byte, len(ss.h))
	copy(h, ss.h)
	return h
}

// HasKey reports whether a handshake cipher key is installed. It is a
// pure query with no side effects.
func (ss *SymmetricState) HasKey() bool {
	return !ss.disposed && ss.cipher.HasKey()
}

// Split derives the two transport cipher states from the final chaining
// key, one per traffic direction. The first state encrypts initiator-to-
// responder traffic, the second responder-to-initiator. The chaining
// key is spent: it is erased here, along with the handshake cipher key,
// and every later mixing or cipher call fails with ErrStateSpent. Only
// GetHandshakeHash and Wipe remain valid.
func (ss *SymmetricState) Split() (*CipherState, *CipherState, error) {
	if err := ss.usable(); err != nil {
		return nil, nil, err
	}

	dk, err := crypto.DeriveKeys(ss.suite.Hash, ss.ck, nil, 2)
	if err != nil {
		return nil, nil, err
	}
	defer dk.Wipe()

	c1 := NewCipherState(ss.suite.Cipher)
	if err := c1.InitializeKey(dk.First[:crypto.AEADKeySize]); err != nil {
		return nil, nil, err
	}
	c2 := NewCipherState(ss.suite.Cipher)
	if err := c2.InitializeKey(dk.Second[:crypto.AEADKeySize]); err != nil {
		c1.Wipe()
		return nil, nil, err
	}

	crypto.ZeroBytes(ss.ck)
	ss.cipher.Wipe()
	ss.spent = true

	logrus.WithFields(logrus.Fields{
		"function": "SymmetricState.Split",
		"suite":    ss.suite.Name,
	}).Debug("Transport cipher states derived, chaining key spent")

	return c1, c2, nil
}

// Wipe erases the chaining key, transcript hash, and nested cipher key,
// and marks the state disposed. It must run on every exit path,
// including aborts; calling it more than once is a no-op.
func (ss *SymmetricState) Wipe() {
	if ss == nil || ss.disposed {
		return
	}
	crypto.ZeroAll(ss.ck, ss.h)
	ss.cipher.Wipe()
	ss.disposed = true
}
