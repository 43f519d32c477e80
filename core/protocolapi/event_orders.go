package protocolapi

import (
	"context"
	"sync"

	"github.com/gagliardetto/solana-go"
	"golang.org/x/sync/errgroup"

	"github.com/monaco-protocol/client-go/core/types"
)

// GetEventBetOrders unions the purchaser's bet orders across every market of
// an event. Each market is queried independently; a failing market is
// recorded in Failures while its siblings' orders are still returned.
// Finding the market list itself is sequential and fails fast.
func (p *Protocol) GetEventBetOrders(ctx context.Context, event solana.PublicKey, purchaser solana.PublicKey) (*types.EventBetOrdersResult, error) {
	markets, err := p.GetMarkets(ctx, types.GetMarketsInput{Event: &event})
	if err != nil {
		return nil, err
	}

	result := &types.EventBetOrdersResult{}
	var mu sync.Mutex

	var g errgroup.Group
	g.SetLimit(8)
	for _, market := range markets {
		marketKey := market.PublicKey
		g.Go(func() error {
			orders, err := p.GetBetOrders(ctx, types.GetBetOrdersInput{
				Market:    &marketKey,
				Purchaser: &purchaser,
			})

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				result.Failures = append(result.Failures, types.MarketFailure{
					Market: marketKey,
					Err:    err,
				})
				return nil
			}
			result.Orders = append(result.Orders, orders...)
			return nil
		})
	}
	_ = g.Wait()

	return result, nil
}
