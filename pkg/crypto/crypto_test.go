package crypto

import (
	"encoding/hex"
	"testing"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/gaze-network/bodydfi-ledger/common/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	privateKeyStr = "ce9c2fd75623e82a83ed743518ec7749f6f355f7301dd432400b087717fed2f2"
	pubKeyStr     = "0251e2dfcdeea17cc9726e4be0855cd0bae19e64f3e247b10760cd76851e7df47e"
)

func TestSignVerify(t *testing.T) {
	message := []byte(`{"user_id":"alice-watch"}`)
	invalidSignature := "3044022066504a82e2bc23167214e05497a1ca957add9cacc078aa69f5417079a4d56f0002206b215920b046c779d4a58d4029c26dbadcaf6d3c884b3463f44e70ef9146c1cd"

	privClient, err := New(privateKeyStr)
	require.NoError(t, err)
	assert.Equal(t, pubKeyStr, hex.EncodeToString(privClient.PublicKey().SerializeCompressed()))

	pubClient, err := New("")
	require.NoError(t, err)
	assert.Nil(t, pubClient.PublicKey())

	signature, err := privClient.Sign(message)
	require.NoError(t, err)

	verified, err := pubClient.Verify(message, signature, privClient.PublicKey())
	require.NoError(t, err)
	assert.True(t, verified)

	verified, err = pubClient.Verify([]byte("tampered"), signature, privClient.PublicKey())
	require.NoError(t, err)
	assert.False(t, verified)

	verified, err = pubClient.Verify(message, invalidSignature, privClient.PublicKey())
	require.NoError(t, err)
	assert.False(t, verified)

	_, err = pubClient.Verify(message, "zz", privClient.PublicKey())
	assert.Error(t, err)
}

func TestNew(t *testing.T) {
	_, err := New("abcd")
	assert.ErrorIs(t, err, errs.InvalidArgument)

	_, err = New("not-hex")
	assert.Error(t, err)

	_, err = (&Client{}).Sign([]byte("x"))
	assert.ErrorIs(t, err, errs.InvalidArgument)
}

func TestGenerate(t *testing.T) {
	c, err := Generate()
	require.NoError(t, err)

	restored, err := New(c.PrivateKeyHex())
	require.NoError(t, err)
	assert.True(t, c.PublicKey().IsEqual(restored.PublicKey()))
	assert.Len(t, c.PublicKey().SerializeCompressed(), btcec.PubKeyBytesLenCompressed)
}
