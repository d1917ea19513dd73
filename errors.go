package noisetranscript

import "errors"

var (
	// ErrInvalidArgument indicates a required input was nil or absent.
	ErrInvalidArgument = errors.New("missing required argument")
	// ErrInvalidKeyMaterial indicates input key material of an
	// unsupported length was passed to a key-mixing operation.
	ErrInvalidKeyMaterial = errors.New("input key material must be 0, 32, or DHLen bytes")
	// ErrAuthenticationFailure indicates AEAD tag verification failed
	// during decryption. The handshake must be aborted.
	ErrAuthenticationFailure = errors.New("message authentication failed")
	// ErrNonceExhausted indicates the cipher nonce counter reached its
	// reserved maximum value. Not recoverable.
	ErrNonceExhausted = errors.New("cipher nonce exhausted")
	// ErrKeyNotInitialized indicates an operation that requires an
	// installed cipher key was called without one.
	ErrKeyNotInitialized = errors.New("cipher key not initialized")
	// ErrStateSpent indicates the symmetric state was already consumed
	// by Split and no further mixing or cipher calls are valid.
	ErrStateSpent = errors.New("symmetric state already split")
	// ErrStateDisposed indicates the state was wiped and can no longer
	// be used.
	ErrStateDisposed = errors.New("state disposed")
)
