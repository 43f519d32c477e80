package protocolapi

import (
	"context"

	"github.com/gagliardetto/solana-go"
	"github.com/pkg/errors"
	"go.uber.org/multierr"
	"golang.org/x/sync/errgroup"

	"github.com/monaco-protocol/client-go/core/types"
)

// GetMarketPosition rebuilds a purchaser's title→amount exposure mapping by
// zipping the market's outcome-title sequence with the position's parallel
// sums by index. A length mismatch means program/client version skew and
// fails the whole aggregation rather than truncating silently.
func (p *Protocol) GetMarketPosition(ctx context.Context, market solana.PublicKey, purchaser solana.PublicKey) (*types.MarketPositionSummary, error) {
	positionAddress, err := FindMarketPositionPda(p.programID, market, purchaser)
	if err != nil {
		return nil, err
	}

	var (
		titles   []string
		position *types.Keyed[types.MarketPosition]
	)
	upstreamErrs := make([]error, 2)

	var g errgroup.Group
	g.Go(func() error {
		var err error
		titles, err = p.GetMarketOutcomeTitles(ctx, market)
		upstreamErrs[0] = err
		return nil
	})
	g.Go(func() error {
		var err error
		position, err = getAccount(ctx, p, positionAddress, types.DecodeMarketPosition)
		upstreamErrs[1] = err
		return nil
	})
	_ = g.Wait()
	if err := multierr.Combine(upstreamErrs...); err != nil {
		return nil, errors.Wrapf(err, "failed to assemble position for market %s", market)
	}

	sums := position.Account.OutcomeSums
	if len(titles) != len(sums) {
		return nil, errors.Wrapf(ErrPositionOutcomeMismatch,
			"market %s has %d outcomes, position %s carries %d sums",
			market, len(titles), positionAddress, len(sums))
	}

	outcomePositions := make(map[string]int64, len(titles))
	for i, title := range titles {
		outcomePositions[title] = sums[i]
	}

	return &types.MarketPositionSummary{
		Market:           market,
		Purchaser:        purchaser,
		Paid:             position.Account.Paid,
		OutcomePositions: outcomePositions,
	}, nil
}
