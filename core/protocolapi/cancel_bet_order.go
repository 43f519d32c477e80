package protocolapi

import (
	"context"

	"github.com/gagliardetto/solana-go"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/monaco-protocol/client-go/core/types"
)

// CancelBetOrder cancels the unmatched remainder of one bet order. Matched
// stake is untouched; the program rejects orders with nothing left to
// release, and this client pre-checks the same condition.
//
// The returned result always carries the target order's address, so callers
// can correlate a submission failure with its order.
func (p *Protocol) CancelBetOrder(ctx context.Context, signer types.Signer, betOrder solana.PublicKey) (*types.CancelBetOrderResult, error) {
	result := &types.CancelBetOrderResult{BetOrder: betOrder}

	order, err := getAccount(ctx, p, betOrder, types.DecodeBetOrder)
	if err != nil {
		return result, err
	}
	if purchaser := signer.PublicKey(); order.Account.Purchaser != purchaser {
		return result, errors.Wrapf(ErrSignerNotPurchaser,
			"order %s belongs to %s, signer is %s", betOrder, order.Account.Purchaser, purchaser)
	}
	if !order.Account.Cancellable() {
		return result, errors.Wrapf(ErrOrderNotCancellable,
			"order %s is %s with no unmatched stake", betOrder, order.Account.OrderStatus)
	}

	market, err := p.GetMarket(ctx, order.Account.Market)
	if err != nil {
		return result, err
	}

	matchingPool, err := FindMarketMatchingPoolPda(
		p.programID, order.Account.Market, order.Account.MarketOutcomeIndex,
		order.Account.ExpectedOdds, order.Account.Backing)
	if err != nil {
		return result, err
	}
	marketPosition, err := FindMarketPositionPda(p.programID, order.Account.Market, order.Account.Purchaser)
	if err != nil {
		return result, err
	}
	escrow, err := FindEscrowPda(p.programID, order.Account.Market)
	if err != nil {
		return result, err
	}
	purchaserToken, _, err := solana.FindAssociatedTokenAddress(
		order.Account.Purchaser, market.Account.MintAccount)
	if err != nil {
		return result, errors.Wrap(err, "failed to resolve purchaser token account")
	}

	data, err := encodeInstructionData(cancelBetOrderInstruction, nil)
	if err != nil {
		return result, err
	}

	instruction := solana.NewInstruction(p.programID, solana.AccountMetaSlice{
		solana.Meta(betOrder).WRITE(),
		solana.Meta(marketPosition).WRITE(),
		solana.Meta(order.Account.Purchaser).WRITE().SIGNER(),
		solana.Meta(order.Account.Market).WRITE(),
		solana.Meta(matchingPool).WRITE(),
		solana.Meta(purchaserToken).WRITE(),
		solana.Meta(escrow).WRITE(),
		solana.Meta(solana.TokenProgramID),
	}, data)

	signature, err := p.submitTransaction(ctx, signer, instruction)
	if err != nil {
		return result, err
	}

	p.logger.Info("bet order cancelled",
		zap.Stringer("bet_order", betOrder),
		zap.Uint64("stake_released", order.Account.StakeUnmatched))

	result.TransactionSignature = signature
	return result, nil
}

// CancelAllBetOrders cancels every order with unmatched stake the signer
// holds in a market. Returns ErrNoCancellableOrders without any submission
// when the cancellable set is empty; otherwise each cancellation is
// attempted independently and the outcomes are partitioned — a per-order
// failure never aborts its siblings.
func (p *Protocol) CancelAllBetOrders(ctx context.Context, signer types.Signer, market solana.PublicKey) (*types.CancelAllResult, error) {
	orders, err := p.GetCancellableBetOrders(ctx, market, signer.PublicKey())
	if err != nil {
		return nil, err
	}
	if len(orders) == 0 {
		return nil, errors.Wrapf(ErrNoCancellableOrders, "market %s", market)
	}

	signatures := make([]solana.Signature, len(orders))
	failures := make([]error, len(orders))

	var g errgroup.Group
	g.SetLimit(8)
	for i, order := range orders {
		i, orderKey := i, order.PublicKey
		g.Go(func() error {
			res, err := p.CancelBetOrder(ctx, signer, orderKey)
			if err != nil {
				failures[i] = err
				return nil
			}
			signatures[i] = res.TransactionSignature
			return nil
		})
	}
	_ = g.Wait()

	result := &types.CancelAllResult{}
	for i, order := range orders {
		if failures[i] != nil {
			result.Failures = append(result.Failures, types.CancelFailure{
				BetOrder: order.PublicKey,
				Err:      failures[i],
			})
			continue
		}
		result.Signatures = append(result.Signatures, signatures[i])
	}
	return result, nil
}
