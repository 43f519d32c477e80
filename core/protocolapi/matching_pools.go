package protocolapi

import (
	"context"

	"github.com/pkg/errors"

	"github.com/monaco-protocol/client-go/core/types"
)

// GetMarketMatchingPool derives and fetches the pool account for one
// (market, outcome, odds, side) price point. Returns a wrapped
// ErrAccountNotFound when the program has not yet created the pool.
func (p *Protocol) GetMarketMatchingPool(ctx context.Context, locator types.MatchingPoolLocator) (*types.Keyed[types.MarketMatchingPool], error) {
	if err := locator.Validate(); err != nil {
		return nil, errors.WithStack(err)
	}

	address, err := FindMarketMatchingPoolPda(
		p.programID, locator.Market, locator.MarketOutcomeIndex, locator.Odds, locator.Backing)
	if err != nil {
		return nil, err
	}

	return getAccount(ctx, p, address, types.DecodeMarketMatchingPool)
}
