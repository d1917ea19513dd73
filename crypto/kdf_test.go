package crypto

import (
	"bytes"
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// noiseHMACChain is a direct transcription of the Noise specification's
// HKDF definition, used to cross-check the x/crypto/hkdf-based adapter.
func noiseHMACChain(chainingKey, ikm []byte, outputs int) [][]byte {
	mac := hmac.New(sha256.New, chainingKey)
	mac.Write(ikm)
	tempKey := mac.Sum(nil)

	sum := func(data []byte) []byte {
		m := hmac.New(sha256.New, tempKey)
		m.Write(data)
		return m.Sum(nil)
	}

	out1 := sum([]byte{0x01})
	out2 := sum(append(append([]byte{}, out1...), 0x02))
	if outputs == 2 {
		return [][]byte{out1, out2}
	}
	out3 := sum(append(append([]byte{}, out2...), 0x03))
	return [][]byte{out1, out2, out3}
}

func TestDeriveKeysMatchesNoiseChain(t *testing.T) {
	ck := make([]byte, HashSHA256.Len)
	ikm := make([]byte, 32)
	_, err := rand.Read(ck)
	require.NoError(t, err)
	_, err = rand.Read(ikm)
	require.NoError(t, err)

	dk2, err := DeriveKeys(HashSHA256, ck, ikm, 2)
	require.NoError(t, err)
	want2 := noiseHMACChain(ck, ikm, 2)
	assert.Equal(t, want2[0], dk2.First)
	assert.Equal(t, want2[1], dk2.Second)
	assert.Nil(t, dk2.Third)

	dk3, err := DeriveKeys(HashSHA256, ck, ikm, 3)
	require.NoError(t, err)
	want3 := noiseHMACChain(ck, ikm, 3)
	assert.Equal(t, want3[0], dk3.First)
	assert.Equal(t, want3[1], dk3.Second)
	assert.Equal(t, want3[2], dk3.Third)
}

func TestDeriveKeysEmptyInputKeyMaterial(t *testing.T) {
	ck := make([]byte, HashSHA256.Len)
	_, err := rand.Read(ck)
	require.NoError(t, err)

	dk, err := DeriveKeys(HashSHA256, ck, nil, 2)
	require.NoError(t, err)
	want := noiseHMACChain(ck, nil, 2)
	assert.Equal(t, want[0], dk.First)
	assert.Equal(t, want[1], dk.Second)
}

func TestDeriveKeysOutputsAreIndependent(t *testing.T) {
	ck := make([]byte, HashSHA512.Len)
	_, err := rand.Read(ck)
	require.NoError(t, err)

	dk, err := DeriveKeys(HashSHA512, ck, nil, 3)
	require.NoError(t, err)
	assert.Len(t, dk.First, HashSHA512.Len)
	assert.Len(t, dk.Second, HashSHA512.Len)
	assert.Len(t, dk.Third, HashSHA512.Len)
	assert.False(t, bytes.Equal(dk.First, dk.Second))
	assert.False(t, bytes.Equal(dk.Second, dk.Third))
}

func TestDeriveKeysRejectsBadArguments(t *testing.T) {
	ck := make([]byte, HashSHA256.Len)

	_, err := DeriveKeys(HashSHA256, ck, nil, 1)
	assert.Error(t, err)

	_, err = DeriveKeys(HashSHA256, ck, nil, 4)
	assert.Error(t, err)

	_, err = DeriveKeys(HashSHA256, ck[:16], nil, 2)
	assert.Error(t, err)
}

func TestDerivedKeysWipe(t *testing.T) {
	ck := make([]byte, HashSHA256.Len)
	_, err := rand.Read(ck)
	require.NoError(t, err)

	dk, err := DeriveKeys(HashSHA256, ck, nil, 3)
	require.NoError(t, err)

	dk.Wipe()
	assert.True(t, IsZero(dk.First), "first output not wiped")
	assert.True(t, IsZero(dk.Second), "second output not wiped")
	assert.True(t, IsZero(dk.Third), "third output not wiped")

	// Wipe must be idempotent
	dk.Wipe()
}
