package crypto

import (
	"fmt"
	"strings"
)

// CipherSuite names a complete cryptographic suite for a Noise protocol,
// as carried in protocol identifiers like "Noise_XX_25519_AESGCM_SHA256".
// The pattern component is opaque to this module: pattern token
// sequencing is the caller's concern, and the transcript layer binds
// whatever identifier it is given.
type CipherSuite struct {
	Pattern string // "XX", "IK", "NN", ...
	DH      string // "25519"
	Cipher  string // "ChaChaPoly", "AESGCM"
	Hash    string // "SHA256", "SHA512", "BLAKE2s", "BLAKE2b"
	Name    string // Full cipher suite name
}

// Predefined cipher suites in order of preference (most secure first)
var (
	DefaultCipherSuite = CipherSuite{
		Pattern: "XX",
		DH:      "25519",
		Cipher:  "ChaChaPoly",
		Hash:    "SHA256",
		Name:    "Noise_XX_25519_ChaChaPoly_SHA256",
	}

	AlternateCipherSuite = CipherSuite{
		Pattern: "XX",
		DH:      "25519",
		Cipher:  "AESGCM",
		Hash:    "SHA256",
		Name:    "Noise_XX_25519_AESGCM_SHA256",
	}

	WideHashCipherSuite = CipherSuite{
		Pattern: "XX",
		DH:      "25519",
		Cipher:  "ChaChaPoly",
		Hash:    "BLAKE2b",
		Name:    "Noise_XX_25519_ChaChaPoly_BLAKE2b",
	}
)

// SupportedCipherSuites lists suites this module resolves out of the box.
var SupportedCipherSuites = []CipherSuite{
	DefaultCipherSuite,
	AlternateCipherSuite,
	WideHashCipherSuite,
}

// CipherSuitesEqual checks if two cipher suites are equivalent. The
// pattern component is deliberately excluded: two suites that agree on
// primitives derive identical keys regardless of pattern.
func CipherSuitesEqual(a, b CipherSuite) bool {
	return a.DH == b.DH && a.Cipher == b.Cipher && a.Hash == b.Hash
}

// ParseCipherSuiteName parses a cipher suite name into components.
func ParseCipherSuiteName(name string) (*CipherSuite, error) {
	// Expected format: "Noise_XX_25519_ChaChaPoly_SHA256"
	parts := strings.Split(name, "_")
	if len(parts) != 5 {
		return nil, fmt.Errorf("invalid cipher suite name format: %s", name)
	}

	if parts[0] != "Noise" {
		return nil, fmt.Errorf("unsupported protocol prefix: %s", parts[0])
	}
	if parts[1] == "" {
		return nil, fmt.Errorf("missing handshake pattern in suite name: %s", name)
	}

	return &CipherSuite{
		Pattern: parts[1],
		DH:      parts[2],
		Cipher:  parts[3],
		Hash:    parts[4],
		Name:    name,
	}, nil
}

// SerializeCipherSuite converts a cipher suite to wire format.
func SerializeCipherSuite(suite CipherSuite) []byte {
	return []byte(suite.Name)
}

// ValidateCipherSuite checks if a cipher suite is supported.
func ValidateCipherSuite(suite CipherSuite) error {
	if _, err := LookupDH(suite.DH); err != nil {
		return err
	}
	if _, err := LookupAEAD(suite.Cipher); err != nil {
		return err
	}
	if _, err := LookupHash(suite.Hash); err != nil {
		return err
	}
	return nil
}

// Suite is a cipher suite resolved to concrete primitive bundles. All
// symmetric-state operations dispatch through these.
type Suite struct {
	Name   string
	DH     DHFunc
	Cipher AEADFunc
	Hash   HashFunc
}

// Resolve looks up the concrete primitives named by the suite.
func (cs CipherSuite) Resolve() (*Suite, error) {
	log := NewLogger("CipherSuite.Resolve").WithField("suite", cs.Name)

	dh, err := LookupDH(cs.DH)
	if err != nil {
		return nil, fmt.Errorf("cannot resolve suite %q: %w", cs.Name, err)
	}
	aead, err := LookupAEAD(cs.Cipher)
	if err != nil {
		return nil, fmt.Errorf("cannot resolve suite %q: %w", cs.Name, err)
	}
	h, err := LookupHash(cs.Hash)
	if err != nil {
		return nil, fmt.Errorf("cannot resolve suite %q: %w", cs.Name, err)
	}

	log.Debug("Cipher suite resolved")
	return &Suite{Name: cs.Name, DH: dh, Cipher: aead, Hash: h}, nil
}

// ResolveSuiteName parses and resolves a full protocol identifier in
// one step.
func ResolveSuiteName(name string) (*Suite, error) {
	cs, err := ParseCipherSuiteName(name)
	if err != nil {
		return nil, err
	}
	return cs.Resolve()
}
