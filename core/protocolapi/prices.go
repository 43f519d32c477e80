package protocolapi

import (
	"context"

	"github.com/gagliardetto/solana-go"
	"github.com/pkg/errors"
	"go.uber.org/multierr"
	"golang.org/x/sync/errgroup"

	"github.com/monaco-protocol/client-go/core/types"
)

// pricePoint keys the distinct-triple set by value equality, so two orders
// at the same (outcome, odds, side) collapse to one price point.
type pricePoint struct {
	outcomeIndex uint64
	odds         float64
	backing      bool
}

// GetMarketPrices assembles the read view over a market's open liquidity:
// the union of fully-open and partially-matched bet orders reduced to
// distinct (outcome, odds, side) triples, each with its matching pool
// derived, fetched, and attached by address.
//
// Upstream failures short-circuit with their errors aggregated; no partial
// summary is returned.
func (p *Protocol) GetMarketPrices(ctx context.Context, market solana.PublicKey) (*types.MarketPricesSummary, error) {
	statusOpen := types.OrderStatusOpen
	statusMatched := types.OrderStatusMatched

	var (
		marketAccount *types.Keyed[types.Market]
		titles        []string
		openOrders    []types.Keyed[types.BetOrder]
		matchedOrders []types.Keyed[types.BetOrder]
	)
	upstreamErrs := make([]error, 4)

	var g errgroup.Group
	g.Go(func() error {
		var err error
		marketAccount, err = p.GetMarket(ctx, market)
		upstreamErrs[0] = err
		return nil
	})
	g.Go(func() error {
		var err error
		titles, err = p.GetMarketOutcomeTitles(ctx, market)
		upstreamErrs[1] = err
		return nil
	})
	g.Go(func() error {
		var err error
		openOrders, err = p.GetBetOrders(ctx, types.GetBetOrdersInput{Market: &market, Status: &statusOpen})
		upstreamErrs[2] = err
		return nil
	})
	g.Go(func() error {
		var err error
		matchedOrders, err = p.GetBetOrders(ctx, types.GetBetOrdersInput{Market: &market, Status: &statusMatched})
		upstreamErrs[3] = err
		return nil
	})
	_ = g.Wait()
	if err := multierr.Combine(upstreamErrs...); err != nil {
		return nil, errors.Wrapf(err, "failed to assemble prices for market %s", market)
	}

	pending := make([]types.Keyed[types.BetOrder], 0, len(openOrders)+len(matchedOrders))
	pending = append(pending, openOrders...)
	for _, order := range matchedOrders {
		if order.Account.StakeUnmatched > 0 {
			pending = append(pending, order)
		}
	}

	seen := make(map[pricePoint]struct{}, len(pending))
	points := make([]pricePoint, 0, len(pending))
	for _, order := range pending {
		key := pricePoint{
			outcomeIndex: order.Account.MarketOutcomeIndex,
			odds:         order.Account.ExpectedOdds,
			backing:      order.Account.Backing,
		}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		points = append(points, key)
	}

	prices := make([]types.MarketPrice, len(points))
	poolErrs := make([]error, len(points))
	var pools errgroup.Group
	pools.SetLimit(8)
	for i, point := range points {
		i, point := i, point
		pools.Go(func() error {
			price := types.MarketPrice{
				MarketOutcomeIndex: point.outcomeIndex,
				Odds:               point.odds,
				Backing:            point.backing,
			}
			if point.outcomeIndex < uint64(len(titles)) {
				price.MarketOutcomeTitle = titles[point.outcomeIndex]
			}

			address, err := FindMarketMatchingPoolPda(
				p.programID, market, point.outcomeIndex, point.odds, point.backing)
			if err != nil {
				poolErrs[i] = err
				prices[i] = price
				return nil
			}
			price.MatchingPoolAddress = address

			pool, err := getAccount(ctx, p, address, types.DecodeMarketMatchingPool)
			switch {
			case err == nil:
				price.MatchingPool = &pool.Account
			case errors.Is(err, ErrAccountNotFound):
				// pool not yet created by the program; the price point still
				// stands on its pending orders
			default:
				poolErrs[i] = err
			}
			prices[i] = price
			return nil
		})
	}
	_ = pools.Wait()
	if err := multierr.Combine(poolErrs...); err != nil {
		return nil, errors.Wrapf(err, "failed to fetch matching pools for market %s", market)
	}

	return &types.MarketPricesSummary{
		Market:        *marketAccount,
		MarketPrices:  prices,
		PendingOrders: pending,
	}, nil
}
