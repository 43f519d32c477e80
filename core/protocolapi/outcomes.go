package protocolapi

import (
	"context"
	"sort"

	"github.com/gagliardetto/solana-go"
	"github.com/pkg/errors"

	"github.com/monaco-protocol/client-go/core/types"
)

// GetMarketOutcomes returns a market's outcome accounts ordered by each
// outcome's own Index field. Scan order carries no meaning and is never
// relied on.
func (p *Protocol) GetMarketOutcomes(ctx context.Context, market solana.PublicKey) ([]types.Keyed[types.MarketOutcome], error) {
	filters, err := NewFilterBuilder(p.schema.MarketOutcome).
		ByPublicKey(FieldMarket, market).
		Build()
	if err != nil {
		return nil, err
	}

	outcomes, err := queryAccounts(ctx, p, filters, types.DecodeMarketOutcome)
	if err != nil {
		return nil, err
	}

	sort.Slice(outcomes, func(i, j int) bool {
		return outcomes[i].Account.Index < outcomes[j].Account.Index
	})
	return outcomes, nil
}

// GetMarketOutcomeTitles reassembles the index-addressed outcome title
// sequence. A gap or duplicate in the index sequence indicates scan results
// out of step with the market and fails loudly.
func (p *Protocol) GetMarketOutcomeTitles(ctx context.Context, market solana.PublicKey) ([]string, error) {
	outcomes, err := p.GetMarketOutcomes(ctx, market)
	if err != nil {
		return nil, err
	}

	titles := make([]string, len(outcomes))
	for i, outcome := range outcomes {
		if int(outcome.Account.Index) != i {
			return nil, errors.Errorf(
				"market %s outcome indexes are not contiguous: want %d, got %d",
				market, i, outcome.Account.Index)
		}
		titles[i] = outcome.Account.Title
	}
	return titles, nil
}
