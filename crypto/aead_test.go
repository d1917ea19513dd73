package crypto

import (
	"crypto/rand"
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAEADRoundTrip(t *testing.T) {
	for _, aeadFn := range []AEADFunc{AEADChaChaPoly, AEADAESGCM} {
		t.Run(aeadFn.Name, func(t *testing.T) {
			key := make([]byte, AEADKeySize)
			_, err := rand.Read(key)
			require.NoError(t, err)

			aead, err := aeadFn.New(key)
			require.NoError(t, err)

			nonce := aeadFn.EncodeNonce(7)
			ad := []byte("transcript hash stand-in")
			plaintext := []byte("handshake payload")

			ciphertext := aead.Seal(nil, nonce[:], plaintext, ad)
			got, err := aead.Open(nil, nonce[:], ciphertext, ad)
			require.NoError(t, err)
			assert.Equal(t, plaintext, got)

			// Wrong associated data must not authenticate
			_, err = aead.Open(nil, nonce[:], ciphertext, []byte("other ad"))
			assert.Error(t, err)
		})
	}
}

func TestAEADRejectsBadKeySize(t *testing.T) {
	for _, aeadFn := range []AEADFunc{AEADChaChaPoly, AEADAESGCM} {
		_, err := aeadFn.New(make([]byte, 16))
		assert.Error(t, err, aeadFn.Name)
	}
}

func TestNonceEncodings(t *testing.T) {
	const n = uint64(0x0102030405060708)

	chacha := AEADChaChaPoly.EncodeNonce(n)
	assert.True(t, IsZero(chacha[:4]))
	assert.Equal(t, n, binary.LittleEndian.Uint64(chacha[4:]))

	gcm := AEADAESGCM.EncodeNonce(n)
	assert.True(t, IsZero(gcm[:4]))
	assert.Equal(t, n, binary.BigEndian.Uint64(gcm[4:]))
}

func TestLookupAEAD(t *testing.T) {
	for _, name := range []string{"ChaChaPoly", "AESGCM"} {
		aeadFn, err := LookupAEAD(name)
		require.NoError(t, err)
		assert.Equal(t, name, aeadFn.Name)
	}

	_, err := LookupAEAD("AESCCM")
	assert.Error(t, err)
}
