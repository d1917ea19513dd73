// Package noisetranscript implements the symmetric transcript state of
// a Noise protocol handshake.
//
// The SymmetricState owns the two values every Noise handshake revolves
// around: the secret chaining key that all session keys are derived
// from, and the running transcript hash that binds every handshake
// message and authenticates handshake payloads. A handshake driver
// calls its mix, encrypt, and decrypt operations in the order dictated
// by the handshake pattern; pattern execution, transport, and key
// storage live outside this module.
//
// # Getting Started
//
// Construct a state from a full Noise protocol identifier and drive it:
//
//	ss, err := noisetranscript.NewSymmetricStateFromName("Noise_XX_25519_ChaChaPoly_SHA256")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer ss.Wipe()
//
//	ss.MixHash(ephemeralPublicKey)
//	if err := ss.MixKey(sharedSecret); err != nil {
//	    log.Fatal(err)
//	}
//	ciphertext, err := ss.EncryptAndHash(payload)
//
// When the pattern completes, Split derives one transport cipher per
// traffic direction and spends the state:
//
//	sendCipher, recvCipher, err := ss.Split()
//	binding := ss.GetHandshakeHash()
//
// # Security Properties
//
// Every key-mixing operation erases the previous chaining key, and all
// intermediate derivation outputs are wiped before the operation
// returns. Derived cipher keys are exactly 32 bytes even for 64-byte
// hash functions; the truncated remainder is erased. Wipe zeroes all
// remaining secrets and must be called on every exit path.
//
// A failed DecryptAndHash leaves the transcript hash and cipher nonce
// untouched, so an aborted handshake never diverges state. A nil
// protocol identifier, key material of an unsupported length, a
// tampered ciphertext, and an exhausted nonce counter surface as
// ErrInvalidArgument, ErrInvalidKeyMaterial, ErrAuthenticationFailure,
// and ErrNonceExhausted respectively.
//
// # Concurrency
//
// A SymmetricState is owned by exactly one handshake goroutine and
// performs no locking. Callers that share an instance across
// goroutines must serialize access externally.
package noisetranscript
