package types

import (
	"context"
	"time"

	"github.com/gagliardetto/solana-go"
)

// ProtocolAPI is the full operation surface against the deployed program.
// Query results come back in scan order; callers needing a stable order must
// sort explicitly.
type ProtocolAPI interface {
	// GetMarket fetches and decodes a single market account
	GetMarket(ctx context.Context, market solana.PublicKey) (*Keyed[Market], error)
	// GetMarkets scans for markets matching the input filters
	GetMarkets(ctx context.Context, input GetMarketsInput) ([]Keyed[Market], error)
	// GetMarketOutcomes returns a market's outcomes ordered by their own
	// Index field, never by scan order
	GetMarketOutcomes(ctx context.Context, market solana.PublicKey) ([]Keyed[MarketOutcome], error)
	// GetMarketOutcomeTitles returns the index-addressed outcome title sequence
	GetMarketOutcomeTitles(ctx context.Context, market solana.PublicKey) ([]string, error)
	// GetBetOrders scans for bet orders matching the input filters
	GetBetOrders(ctx context.Context, input GetBetOrdersInput) ([]Keyed[BetOrder], error)
	// GetCancellableBetOrders returns the purchaser's orders for a market
	// that still carry unmatched stake
	GetCancellableBetOrders(ctx context.Context, market solana.PublicKey, purchaser solana.PublicKey) ([]Keyed[BetOrder], error)
	// GetMarketMatchingPool fetches the pool for one price point
	GetMarketMatchingPool(ctx context.Context, locator MatchingPoolLocator) (*Keyed[MarketMatchingPool], error)

	// GetMarketPrices assembles the distinct (outcome, odds, side) price
	// points backed by unmatched stake, with matching pools attached
	GetMarketPrices(ctx context.Context, market solana.PublicKey) (*MarketPricesSummary, error)
	// GetMarketPosition zips the market's outcome titles with the
	// purchaser's positional sums
	GetMarketPosition(ctx context.Context, market solana.PublicKey, purchaser solana.PublicKey) (*MarketPositionSummary, error)
	// GetEventBetOrders unions the purchaser's orders across every market of
	// an event, collecting per-market failures
	GetEventBetOrders(ctx context.Context, event solana.PublicKey, purchaser solana.PublicKey) (*EventBetOrdersResult, error)

	// CreateBetOrder derives a fresh order address and submits the placement
	CreateBetOrder(ctx context.Context, signer Signer, input CreateBetOrderInput) (*CreateBetOrderResult, error)
	// CancelBetOrder cancels the unmatched remainder of one order
	CancelBetOrder(ctx context.Context, signer Signer, betOrder solana.PublicKey) (*CancelBetOrderResult, error)
	// CancelAllBetOrders cancels every cancellable order the signer holds in
	// a market, partitioning successes from failures
	CancelAllBetOrders(ctx context.Context, signer Signer, market solana.PublicKey) (*CancelAllResult, error)
}

// Client is the top-level SDK handle: the protocol's operation surface bound
// to a signer, so mutations and purchaser-scoped reads use the client's own
// identity.
type Client interface {
	// GetMarket fetches and decodes a single market account
	GetMarket(ctx context.Context, market solana.PublicKey) (*Keyed[Market], error)
	// GetMarkets scans for markets matching the input filters
	GetMarkets(ctx context.Context, input GetMarketsInput) ([]Keyed[Market], error)
	// GetMarketOutcomes returns a market's outcomes ordered by index
	GetMarketOutcomes(ctx context.Context, market solana.PublicKey) ([]Keyed[MarketOutcome], error)
	// GetBetOrders scans for bet orders matching the input filters
	GetBetOrders(ctx context.Context, input GetBetOrdersInput) ([]Keyed[BetOrder], error)
	// GetMarketMatchingPool fetches the pool for one price point
	GetMarketMatchingPool(ctx context.Context, locator MatchingPoolLocator) (*Keyed[MarketMatchingPool], error)
	// GetMarketPrices assembles the market's open price points
	GetMarketPrices(ctx context.Context, market solana.PublicKey) (*MarketPricesSummary, error)
	// GetMarketPosition returns the client identity's position in a market
	GetMarketPosition(ctx context.Context, market solana.PublicKey) (*MarketPositionSummary, error)
	// GetCancellableBetOrders returns the client identity's cancellable
	// orders in a market
	GetCancellableBetOrders(ctx context.Context, market solana.PublicKey) ([]Keyed[BetOrder], error)
	// GetEventBetOrders unions the client identity's orders across an event
	GetEventBetOrders(ctx context.Context, event solana.PublicKey) (*EventBetOrdersResult, error)

	// CreateBetOrder places an order signed by the client's signer
	CreateBetOrder(ctx context.Context, input CreateBetOrderInput) (*CreateBetOrderResult, error)
	// CancelBetOrder cancels the unmatched remainder of one order
	CancelBetOrder(ctx context.Context, betOrder solana.PublicKey) (*CancelBetOrderResult, error)
	// CancelAllBetOrders cancels every cancellable order the client holds in
	// a market
	CancelAllBetOrders(ctx context.Context, market solana.PublicKey) (*CancelAllResult, error)

	// Address of the signer used by the client
	Address() solana.PublicKey
	// WaitForTransaction polls the signature's status until it reaches the
	// client's commitment level or ctx is done
	WaitForTransaction(ctx context.Context, signature solana.Signature, interval time.Duration) error
}
