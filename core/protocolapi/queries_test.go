package protocolapi

import (
	"context"
	"testing"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/monaco-protocol/client-go/core/types"
)

func storeBetOrder(t *testing.T, ledger *fakeLedger, order types.BetOrder) solana.PublicKey {
	t.Helper()
	address := solana.NewWallet().PublicKey()
	ledger.put(address, encodeAccount(t, types.BetOrderAccountName, order))
	return address
}

func TestGetBetOrders_FiltersByMarketAndPurchaser(t *testing.T) {
	ledger := newFakeLedger()
	protocol := newTestProtocol(t, ledger)
	ctx := context.Background()

	market := solana.NewWallet().PublicKey()
	purchaser := solana.NewWallet().PublicKey()

	mine := storeBetOrder(t, ledger, types.BetOrder{
		Purchaser: purchaser, Market: market, Stake: 10, StakeUnmatched: 10, ExpectedOdds: 2.0,
	})
	// same market, different purchaser
	storeBetOrder(t, ledger, types.BetOrder{
		Purchaser: solana.NewWallet().PublicKey(), Market: market, Stake: 5,
	})
	// same purchaser, different market
	storeBetOrder(t, ledger, types.BetOrder{
		Purchaser: purchaser, Market: solana.NewWallet().PublicKey(), Stake: 5,
	})

	orders, err := protocol.GetBetOrders(ctx, types.GetBetOrdersInput{
		Market:    &market,
		Purchaser: &purchaser,
	})
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, mine, orders[0].PublicKey)
	assert.Equal(t, uint64(10), orders[0].Account.Stake)
}

func TestGetBetOrders_RequiresAScope(t *testing.T) {
	protocol := newTestProtocol(t, newFakeLedger())

	_, err := protocol.GetBetOrders(context.Background(), types.GetBetOrdersInput{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "at least one of market or purchaser")
}

func TestQuery_PrunesAccountsClosedBetweenPhases(t *testing.T) {
	ledger := newFakeLedger()
	protocol := newTestProtocol(t, ledger)
	ctx := context.Background()

	market := solana.NewWallet().PublicKey()
	purchaser := solana.NewWallet().PublicKey()

	kept := storeBetOrder(t, ledger, types.BetOrder{Purchaser: purchaser, Market: market, Stake: 1})
	doomed := storeBetOrder(t, ledger, types.BetOrder{Purchaser: purchaser, Market: market, Stake: 2})

	// simulate the account closing between scan and fetch: the scan sees
	// both, the batch fetch returns nil for the closed one
	addresses, err := protocol.scanAddresses(ctx, mustFilters(t, market, purchaser))
	require.NoError(t, err)
	require.Len(t, addresses, 2)

	ledger.delete(doomed)

	fetched, err := protocol.fetchAccounts(ctx, addresses)
	require.NoError(t, err)
	require.Len(t, fetched, 1)
	assert.Equal(t, kept, fetched[0].PublicKey)
	assert.LessOrEqual(t, len(fetched), len(addresses))
}

func mustFilters(t *testing.T, market, purchaser solana.PublicKey) []rpc.RPCFilter {
	t.Helper()
	filters, err := NewFilterBuilder(SchemaV1.BetOrder).
		ByPublicKey(FieldPurchaser, purchaser).
		ByPublicKey(FieldMarket, market).
		Build()
	require.NoError(t, err)
	return filters
}

func TestGetMarketOutcomes_OrderedByIndexNotScanOrder(t *testing.T) {
	ledger := newFakeLedger()
	protocol := newTestProtocol(t, ledger)
	ctx := context.Background()

	market := solana.NewWallet().PublicKey()
	for _, outcome := range []types.MarketOutcome{
		{Market: market, Index: 2, Title: "C"},
		{Market: market, Index: 0, Title: "A"},
		{Market: market, Index: 1, Title: "B"},
	} {
		ledger.put(solana.NewWallet().PublicKey(), encodeAccount(t, types.MarketOutcomeAccountName, outcome))
	}

	titles, err := protocol.GetMarketOutcomeTitles(ctx, market)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, titles)
}

func TestGetMarketOutcomeTitles_NonContiguousIndexesFail(t *testing.T) {
	ledger := newFakeLedger()
	protocol := newTestProtocol(t, ledger)

	market := solana.NewWallet().PublicKey()
	ledger.put(solana.NewWallet().PublicKey(),
		encodeAccount(t, types.MarketOutcomeAccountName, types.MarketOutcome{Market: market, Index: 0, Title: "A"}))
	ledger.put(solana.NewWallet().PublicKey(),
		encodeAccount(t, types.MarketOutcomeAccountName, types.MarketOutcome{Market: market, Index: 2, Title: "C"}))

	_, err := protocol.GetMarketOutcomeTitles(context.Background(), market)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not contiguous")
}

func TestGetMarket_NotFound(t *testing.T) {
	protocol := newTestProtocol(t, newFakeLedger())

	_, err := protocol.GetMarket(context.Background(), solana.NewWallet().PublicKey())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrAccountNotFound)
}

func TestGetMarkets_StatusFilter(t *testing.T) {
	ledger := newFakeLedger()
	protocol := newTestProtocol(t, ledger)
	ctx := context.Background()

	event := solana.NewWallet().PublicKey()
	open := solana.NewWallet().PublicKey()
	ledger.put(open, encodeAccount(t, types.MarketAccountName, types.Market{
		Event: event, MarketStatus: types.MarketStatusOpen, Title: "open",
	}))
	ledger.put(solana.NewWallet().PublicKey(), encodeAccount(t, types.MarketAccountName, types.Market{
		Event: event, MarketStatus: types.MarketStatusSettled, Title: "settled",
	}))

	status := types.MarketStatusOpen
	markets, err := protocol.GetMarkets(ctx, types.GetMarketsInput{Event: &event, Status: &status})
	require.NoError(t, err)
	require.Len(t, markets, 1)
	assert.Equal(t, open, markets[0].PublicKey)
	assert.Equal(t, "open", markets[0].Account.Title)
}
