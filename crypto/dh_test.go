package crypto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDH25519SharedSecretAgreement(t *testing.T) {
	alice, err := DH25519.Generate()
	require.NoError(t, err)
	bob, err := DH25519.Generate()
	require.NoError(t, err)

	ab, err := DH25519.DH(alice.Private, bob.Public)
	require.NoError(t, err)
	ba, err := DH25519.DH(bob.Private, alice.Public)
	require.NoError(t, err)

	assert.Equal(t, ab, ba, "both sides must derive the same shared secret")
	assert.Len(t, ab, DH25519.DHLen)
}

func TestDH25519DoesNotMutateInputs(t *testing.T) {
	alice, err := DH25519.Generate()
	require.NoError(t, err)
	bob, err := DH25519.Generate()
	require.NoError(t, err)

	privBefore := append([]byte(nil), alice.Private...)
	pubBefore := append([]byte(nil), bob.Public...)

	_, err = DH25519.DH(alice.Private, bob.Public)
	require.NoError(t, err)

	assert.Equal(t, privBefore, alice.Private)
	assert.Equal(t, pubBefore, bob.Public)
}

func TestDH25519RejectsLowOrderPoint(t *testing.T) {
	alice, err := DH25519.Generate()
	require.NoError(t, err)

	// The all-zero point is low order; X25519 rejects it.
	_, err = DH25519.DH(alice.Private, make([]byte, 32))
	assert.Error(t, err)
}

func TestLookupDH(t *testing.T) {
	dh, err := LookupDH("25519")
	require.NoError(t, err)
	assert.Equal(t, 32, dh.DHLen)

	_, err = LookupDH("448")
	assert.Error(t, err)
}
