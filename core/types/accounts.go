package types

import (
	"crypto/sha256"

	bin "github.com/gagliardetto/binary"
	"github.com/gagliardetto/solana-go"
	"github.com/pkg/errors"

	"github.com/monaco-protocol/client-go/core/util"
)

// AccountDiscriminatorSize is the length of the Anchor account discriminator
// prefixing every program account's data.
const AccountDiscriminatorSize = 8

// Account type names as declared by the protocol program. The discriminator
// of each account kind is derived from these.
const (
	MarketAccountName         = "Market"
	BetOrderAccountName       = "BetOrder"
	MarketOutcomeAccountName  = "MarketOutcome"
	MatchingPoolAccountName   = "MarketMatchingPool"
	MarketPositionAccountName = "MarketPosition"
)

// AccountDiscriminator returns the 8-byte Anchor discriminator for the named
// account type: sha256("account:<name>")[:8].
func AccountDiscriminator(name string) [AccountDiscriminatorSize]byte {
	h := sha256.Sum256([]byte("account:" + name))
	var d [AccountDiscriminatorSize]byte
	copy(d[:], h[:AccountDiscriminatorSize])
	return d
}

// ═══════════════════════════════════════════════════════════════
// STATUS ENUMS
// ═══════════════════════════════════════════════════════════════

// MarketStatus is the lifecycle state of a market, driven entirely by the
// on-chain program.
type MarketStatus uint8

const (
	MarketStatusOpen MarketStatus = iota
	MarketStatusLocked
	MarketStatusReadyForSettlement
	MarketStatusSettled
	MarketStatusComplete
)

func (s MarketStatus) String() string {
	switch s {
	case MarketStatusOpen:
		return "open"
	case MarketStatusLocked:
		return "locked"
	case MarketStatusReadyForSettlement:
		return "readyForSettlement"
	case MarketStatusSettled:
		return "settled"
	case MarketStatusComplete:
		return "complete"
	default:
		return "unknown"
	}
}

// OrderStatus is the lifecycle state of a bet order. Transitions are
// monotonic: Open→Matched→Settled*, or →Cancelled while unmatched stake
// remains.
type OrderStatus uint8

const (
	OrderStatusOpen OrderStatus = iota
	OrderStatusMatched
	OrderStatusSettledWin
	OrderStatusSettledLose
	OrderStatusCancelled
)

func (s OrderStatus) String() string {
	switch s {
	case OrderStatusOpen:
		return "open"
	case OrderStatusMatched:
		return "matched"
	case OrderStatusSettledWin:
		return "settledWin"
	case OrderStatusSettledLose:
		return "settledLose"
	case OrderStatusCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// ═══════════════════════════════════════════════════════════════
// ACCOUNT STRUCTS (Borsh layout, field order is the wire contract)
// ═══════════════════════════════════════════════════════════════

// Market is the on-chain market record. Created and mutated exclusively by
// the program; this library only reads it.
type Market struct {
	Authority             solana.PublicKey
	Event                 solana.PublicKey
	MintAccount           solana.PublicKey
	MarketStatus          MarketStatus
	DecimalLimit          uint8
	MarketLockTimestamp   int64
	MarketSettleTimestamp int64
	WinningOutcomeIndex   *uint64 `bin:"optional"`
	MarketOutcomesCount   uint16
	Title                 string
}

// BetOrderMatch is one fill against a bet order.
type BetOrderMatch struct {
	Odds  float64
	Stake uint64
}

// BetOrder is the on-chain record of a single back or lay order.
// Invariant (program-enforced): StakeUnmatched <= Stake.
type BetOrder struct {
	Purchaser          solana.PublicKey
	Market             solana.PublicKey
	MarketOutcomeIndex uint64
	Backing            bool
	OrderStatus        OrderStatus
	Stake              uint64
	StakeUnmatched     uint64
	ExpectedOdds       float64
	CreationTimestamp  int64
	Payout             uint64
	Matches            []BetOrderMatch
}

// Cancellable reports whether the order still carries unmatched stake that a
// cancellation would release.
func (b *BetOrder) Cancellable() bool {
	return b.StakeUnmatched > 0
}

// MarketOutcome is one outcome of a market. Index order is semantically
// meaningful: it maps outcome titles to position sums.
type MarketOutcome struct {
	Market            solana.PublicKey
	Index             uint16
	MatchedTotal      uint64
	LatestMatchedOdds float64
	Title             string
	OddsLadder        []float64
}

// OddsOnLadder reports whether odds sit on this outcome's price ladder.
// Comparison happens on the canonical 3-decimal text so float representation
// drift cannot produce false negatives. An empty ladder accepts any odds.
func (o *MarketOutcome) OddsOnLadder(odds float64) bool {
	if len(o.OddsLadder) == 0 {
		return true
	}
	want := util.FormatOdds(odds)
	for _, rung := range o.OddsLadder {
		if util.FormatOdds(rung) == want {
			return true
		}
	}
	return false
}

// PoolOrders is the bounded ring of pending bet-order references held by a
// matching pool.
type PoolOrders struct {
	Front uint32
	Len   uint32
	Items []solana.PublicKey
}

// MarketMatchingPool is the order-book bucket for one
// (market, outcome, odds, side) price point.
type MarketMatchingPool struct {
	Market             solana.PublicKey
	MarketOutcomeIndex uint64
	Odds               float64
	Backing            bool
	LiquidityAmount    uint64
	MatchedAmount      uint64
	Orders             PoolOrders
}

// MarketPosition is a purchaser's aggregate exposure across a market's
// outcomes. OutcomeSums is parallel to the market's outcome index order.
type MarketPosition struct {
	Purchaser          solana.PublicKey
	Market             solana.PublicKey
	Paid               bool
	OutcomeSums        []int64
	OutcomeMaxExposure []uint64
}

// Keyed pairs decoded account data with the address it was fetched from.
type Keyed[T any] struct {
	PublicKey solana.PublicKey
	Account   T
}

// ═══════════════════════════════════════════════════════════════
// DECODING
// ═══════════════════════════════════════════════════════════════

func decodeAccount(name string, data []byte, out interface{}) error {
	if len(data) < AccountDiscriminatorSize {
		return errors.Errorf("%s account data too short: %d bytes", name, len(data))
	}
	want := AccountDiscriminator(name)
	var got [AccountDiscriminatorSize]byte
	copy(got[:], data[:AccountDiscriminatorSize])
	if got != want {
		return errors.Errorf("data is not a %s account: discriminator mismatch", name)
	}
	if err := bin.NewBorshDecoder(data[AccountDiscriminatorSize:]).Decode(out); err != nil {
		return errors.Wrapf(err, "failed to decode %s account", name)
	}
	return nil
}

// DecodeMarket decodes raw account data into a Market, verifying the
// discriminator first.
func DecodeMarket(data []byte) (*Market, error) {
	var m Market
	if err := decodeAccount(MarketAccountName, data, &m); err != nil {
		return nil, err
	}
	return &m, nil
}

// DecodeBetOrder decodes raw account data into a BetOrder.
func DecodeBetOrder(data []byte) (*BetOrder, error) {
	var b BetOrder
	if err := decodeAccount(BetOrderAccountName, data, &b); err != nil {
		return nil, err
	}
	return &b, nil
}

// DecodeMarketOutcome decodes raw account data into a MarketOutcome.
func DecodeMarketOutcome(data []byte) (*MarketOutcome, error) {
	var o MarketOutcome
	if err := decodeAccount(MarketOutcomeAccountName, data, &o); err != nil {
		return nil, err
	}
	return &o, nil
}

// DecodeMarketMatchingPool decodes raw account data into a MarketMatchingPool.
func DecodeMarketMatchingPool(data []byte) (*MarketMatchingPool, error) {
	var p MarketMatchingPool
	if err := decodeAccount(MatchingPoolAccountName, data, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// DecodeMarketPosition decodes raw account data into a MarketPosition.
func DecodeMarketPosition(data []byte) (*MarketPosition, error) {
	var p MarketPosition
	if err := decodeAccount(MarketPositionAccountName, data, &p); err != nil {
		return nil, err
	}
	return &p, nil
}
