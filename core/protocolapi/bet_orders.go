package protocolapi

import (
	"context"

	"github.com/gagliardetto/solana-go"
	"github.com/pkg/errors"

	"github.com/monaco-protocol/client-go/core/types"
)

// GetBetOrders scans for bet orders matching the input filters, in scan
// order.
func (p *Protocol) GetBetOrders(ctx context.Context, input types.GetBetOrdersInput) ([]types.Keyed[types.BetOrder], error) {
	if err := input.Validate(); err != nil {
		return nil, errors.WithStack(err)
	}

	builder := NewFilterBuilder(p.schema.BetOrder)
	if input.Purchaser != nil {
		builder.ByPublicKey(FieldPurchaser, *input.Purchaser)
	}
	if input.Market != nil {
		builder.ByPublicKey(FieldMarket, *input.Market)
	}
	if input.Status != nil {
		builder.ByByte(FieldStatus, byte(*input.Status))
	}
	filters, err := builder.Build()
	if err != nil {
		return nil, err
	}

	return queryAccounts(ctx, p, filters, types.DecodeBetOrder)
}

// GetCancellableBetOrders returns the purchaser's orders in a market that
// still carry unmatched stake. The scan is status-independent; the
// unmatched-stake cut happens client-side so both fully-open and
// partially-matched orders are captured.
func (p *Protocol) GetCancellableBetOrders(ctx context.Context, market solana.PublicKey, purchaser solana.PublicKey) ([]types.Keyed[types.BetOrder], error) {
	orders, err := p.GetBetOrders(ctx, types.GetBetOrdersInput{
		Market:    &market,
		Purchaser: &purchaser,
	})
	if err != nil {
		return nil, err
	}

	cancellable := orders[:0]
	for _, order := range orders {
		if order.Account.Cancellable() {
			cancellable = append(cancellable, order)
		}
	}
	return cancellable, nil
}
