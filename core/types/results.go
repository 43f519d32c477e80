package types

import (
	"github.com/gagliardetto/solana-go"
)

// MarketPrice is one distinct (outcome, odds, side) price point with its
// matching pool attached, when the pool account exists on chain.
type MarketPrice struct {
	MarketOutcomeIndex  uint64
	MarketOutcomeTitle  string
	Odds                float64
	Backing             bool
	MatchingPoolAddress solana.PublicKey
	MatchingPool        *MarketMatchingPool // nil if the pool account is not yet created
}

// MarketPricesSummary is the assembled read view over a market's open
// liquidity.
type MarketPricesSummary struct {
	Market        Keyed[Market]
	MarketPrices  []MarketPrice
	PendingOrders []Keyed[BetOrder] // orders contributing unmatched stake
}

// MarketPositionSummary maps outcome titles to a purchaser's positional sums
// for one market.
type MarketPositionSummary struct {
	Market           solana.PublicKey
	Purchaser        solana.PublicKey
	Paid             bool
	OutcomePositions map[string]int64
}

// CreateBetOrderResult reports the addresses and signature produced by a
// successful order placement.
type CreateBetOrderResult struct {
	BetOrder             solana.PublicKey
	DistinctSeed         string
	TransactionSignature solana.Signature
}

// CancelBetOrderResult carries the cancelled order's address so callers can
// correlate a submission failure with its target.
type CancelBetOrderResult struct {
	BetOrder             solana.PublicKey
	TransactionSignature solana.Signature
}

// CancelFailure records one order whose cancellation did not go through,
// together with the cause.
type CancelFailure struct {
	BetOrder solana.PublicKey
	Err      error
}

// CancelAllResult partitions a batch cancellation into submitted transaction
// signatures and per-order failures. A per-item failure never aborts
// siblings.
type CancelAllResult struct {
	Signatures []solana.Signature
	Failures   []CancelFailure
}

// MarketFailure records one market whose sub-query failed during an
// event-wide fan-out.
type MarketFailure struct {
	Market solana.PublicKey
	Err    error
}

// EventBetOrdersResult is the union of per-market bet-order queries across an
// event. Orders from markets that responded are returned even when sibling
// markets failed.
type EventBetOrdersResult struct {
	Orders   []Keyed[BetOrder]
	Failures []MarketFailure
}
