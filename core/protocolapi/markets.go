package protocolapi

import (
	"context"

	"github.com/gagliardetto/solana-go"
	"github.com/pkg/errors"

	"github.com/monaco-protocol/client-go/core/types"
)

// GetMarket fetches and decodes a single market account.
func (p *Protocol) GetMarket(ctx context.Context, market solana.PublicKey) (*types.Keyed[types.Market], error) {
	return getAccount(ctx, p, market, types.DecodeMarket)
}

// GetMarkets scans for markets matching the input filters. With a zero
// input every market owned by the program is returned, in scan order.
func (p *Protocol) GetMarkets(ctx context.Context, input types.GetMarketsInput) ([]types.Keyed[types.Market], error) {
	if err := input.Validate(); err != nil {
		return nil, errors.WithStack(err)
	}

	builder := NewFilterBuilder(p.schema.Market)
	if input.Event != nil {
		builder.ByPublicKey(FieldEvent, *input.Event)
	}
	if input.Status != nil {
		builder.ByByte(FieldStatus, byte(*input.Status))
	}
	filters, err := builder.Build()
	if err != nil {
		return nil, err
	}

	return queryAccounts(ctx, p, filters, types.DecodeMarket)
}
