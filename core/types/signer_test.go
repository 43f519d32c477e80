package types

import (
	"testing"

	"github.com/gagliardetto/solana-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeypairSigner_SignaturesVerify(t *testing.T) {
	wallet := solana.NewWallet()
	signer, err := NewKeypairSigner(wallet.PrivateKey)
	require.NoError(t, err)

	assert.Equal(t, wallet.PublicKey(), signer.PublicKey())

	message := []byte("payload")
	signature, err := signer.Sign(message)
	require.NoError(t, err)
	assert.True(t, signer.PublicKey().Verify(message, signature))
	assert.False(t, signer.PublicKey().Verify([]byte("tampered"), signature))
}

func TestNewKeypairSigner_EmptyKey(t *testing.T) {
	_, err := NewKeypairSigner(nil)
	require.Error(t, err)
}

func TestNewKeypairSignerFromBase58(t *testing.T) {
	wallet := solana.NewWallet()

	signer, err := NewKeypairSignerFromBase58(wallet.PrivateKey.String())
	require.NoError(t, err)
	assert.Equal(t, wallet.PublicKey(), signer.PublicKey())

	_, err = NewKeypairSignerFromBase58("not-base58-!!!")
	require.Error(t, err)
}
