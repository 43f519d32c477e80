package protocolapi

import (
	"context"
	"testing"
	"time"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/monaco-protocol/client-go/core/types"
)

func testSigner(t *testing.T) types.Signer {
	t.Helper()
	signer, err := types.NewKeypairSigner(solana.NewWallet().PrivateKey)
	require.NoError(t, err)
	return signer
}

func TestSubmitTransaction_SignsWithFeePayer(t *testing.T) {
	ledger := newFakeLedger()
	protocol := newTestProtocol(t, ledger)
	signer := testSigner(t)

	instruction := solana.NewInstruction(protocol.programID, solana.AccountMetaSlice{
		solana.Meta(signer.PublicKey()).WRITE().SIGNER(),
	}, []byte{1, 2, 3})

	signature, err := protocol.submitTransaction(context.Background(), signer, instruction)
	require.NoError(t, err)
	assert.False(t, signature.IsZero())

	require.Len(t, ledger.sent, 1)
	tx := ledger.sent[0]
	require.NotEmpty(t, tx.Message.AccountKeys)
	assert.Equal(t, signer.PublicKey(), tx.Message.AccountKeys[0])
	require.Len(t, tx.Signatures, 1)

	message, err := tx.Message.MarshalBinary()
	require.NoError(t, err)
	assert.True(t, signer.PublicKey().Verify(message, tx.Signatures[0]))
}

func TestWaitForTransaction_ResolvesOnConfirmed(t *testing.T) {
	ledger := newFakeLedger()
	protocol := newTestProtocol(t, ledger)
	ledger.statuses = []*rpc.SignatureStatusesResult{
		{ConfirmationStatus: rpc.ConfirmationStatusConfirmed},
	}

	err := protocol.WaitForTransaction(context.Background(), solana.Signature{1}, time.Millisecond)
	require.NoError(t, err)
}

func TestWaitForTransaction_FailedTransactionSurfacesError(t *testing.T) {
	ledger := newFakeLedger()
	protocol := newTestProtocol(t, ledger)
	ledger.statuses = []*rpc.SignatureStatusesResult{
		{
			ConfirmationStatus: rpc.ConfirmationStatusConfirmed,
			Err:                map[string]interface{}{"InstructionError": []interface{}{0, "Custom"}},
		},
	}

	err := protocol.WaitForTransaction(context.Background(), solana.Signature{1}, time.Millisecond)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed")
}

func TestWaitForTransaction_ContextCancelStopsPolling(t *testing.T) {
	ledger := newFakeLedger()
	protocol := newTestProtocol(t, ledger)
	// unknown signature: statuses stay nil forever

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	err := protocol.WaitForTransaction(ctx, solana.Signature{1}, time.Millisecond)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
