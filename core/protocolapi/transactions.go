package protocolapi

import (
	"context"
	"time"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/monaco-protocol/client-go/core/types"
)

// submitTransaction assembles, signs, and submits a single-instruction-set
// transaction with the signer as fee payer. No retry at this layer; retry
// policy belongs to the caller or transport.
func (p *Protocol) submitTransaction(ctx context.Context, signer types.Signer, instructions ...solana.Instruction) (solana.Signature, error) {
	blockhash, err := p._client.GetLatestBlockhash(ctx, p.commitment)
	if err != nil {
		return solana.Signature{}, errors.Wrap(err, "failed to fetch latest blockhash")
	}

	tx, err := solana.NewTransaction(
		instructions,
		blockhash.Value.Blockhash,
		solana.TransactionPayer(signer.PublicKey()),
	)
	if err != nil {
		return solana.Signature{}, errors.Wrap(err, "failed to assemble transaction")
	}

	message, err := tx.Message.MarshalBinary()
	if err != nil {
		return solana.Signature{}, errors.Wrap(err, "failed to serialize transaction message")
	}
	signature, err := signer.Sign(message)
	if err != nil {
		return solana.Signature{}, errors.Wrap(err, "signer refused transaction")
	}
	tx.Signatures = []solana.Signature{signature}

	SubmissionsTotal.Inc()
	sent, err := p._client.SendTransactionWithOpts(ctx, tx, rpc.TransactionOpts{
		PreflightCommitment: p.commitment,
	})
	if err != nil {
		SubmissionFailuresTotal.Inc()
		return solana.Signature{}, errors.Wrap(err, "transaction submission failed")
	}

	p.logger.Debug("transaction submitted", zap.Stringer("signature", sent))
	return sent, nil
}

// commitmentRank orders commitment levels for confirmation comparison.
func commitmentRank(status rpc.ConfirmationStatusType) int {
	switch status {
	case rpc.ConfirmationStatusProcessed:
		return 1
	case rpc.ConfirmationStatusConfirmed:
		return 2
	case rpc.ConfirmationStatusFinalized:
		return 3
	default:
		return 0
	}
}

func requiredRank(commitment rpc.CommitmentType) int {
	switch commitment {
	case rpc.CommitmentProcessed:
		return 1
	case rpc.CommitmentFinalized:
		return 3
	default:
		return 2
	}
}

// WaitForTransaction polls the signature's status until it reaches the
// Protocol's commitment level, the transaction fails, or ctx is done.
func (p *Protocol) WaitForTransaction(ctx context.Context, signature solana.Signature, interval time.Duration) error {
	if interval <= 0 {
		interval = 500 * time.Millisecond
	}
	want := requiredRank(p.commitment)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		statuses, err := p._client.GetSignatureStatuses(ctx, true, signature)
		if err != nil {
			return errors.Wrap(err, "failed to query signature status")
		}
		if statuses != nil && len(statuses.Value) > 0 && statuses.Value[0] != nil {
			status := statuses.Value[0]
			if status.Err != nil {
				return errors.Errorf("transaction %s failed: %v", signature, status.Err)
			}
			if commitmentRank(status.ConfirmationStatus) >= want {
				return nil
			}
		}

		select {
		case <-ctx.Done():
			return errors.Wrapf(ctx.Err(), "gave up waiting for transaction %s", signature)
		case <-ticker.C:
		}
	}
}
