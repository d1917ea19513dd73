// Package crypto implements the cryptographic primitives behind the
// noisetranscript symmetric state.
//
// This package provides the primitive layer the transcript state is
// built on: cipher suite resolution, hash and AEAD registries, X25519
// key exchange, HKDF-based key derivation, and memory-safe handling of
// secret buffers.
//
// # Cipher Suites
//
// Suites are named with standard Noise protocol identifiers and
// resolved to concrete primitive bundles:
//
//	suite, err := crypto.ResolveSuiteName("Noise_XX_25519_ChaChaPoly_SHA256")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Supported primitives are Curve25519 for key exchange, ChaCha20-
// Poly1305 and AES-256-GCM for authenticated encryption, and SHA-256,
// SHA-512, BLAKE2s and BLAKE2b for hashing. The 64-byte hash functions
// exercise the Noise rule that derived cipher keys are truncated to
// 32 bytes.
//
// # Key Derivation
//
// DeriveKeys implements the Noise extract-and-expand chain over HKDF,
// producing two or three independent secrets from a chaining key and
// fresh input key material:
//
//	dk, err := crypto.DeriveKeys(suite.Hash, chainingKey, sharedSecret, 2)
//	defer dk.Wipe()
//
// # Secure Memory
//
// SecureWipe and ZeroBytes erase secret buffers using a pattern
// resistant to dead-store elimination. Every function in this package
// that copies or derives secret material wipes its intermediates
// before returning.
package crypto
