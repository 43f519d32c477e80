package types

import (
	"fmt"

	"github.com/gagliardetto/solana-go"
)

// minOdds is the smallest decimal price the protocol's odds ladder carries.
const minOdds = 1.001

// GetMarketsInput narrows a market scan. All fields are optional; zero input
// returns every market owned by the program.
type GetMarketsInput struct {
	Event  *solana.PublicKey // markets grouped under one event account
	Status *MarketStatus     // lifecycle filter, matched server-side
}

// Validate checks if GetMarketsInput is valid.
func (g *GetMarketsInput) Validate() error {
	if g.Event != nil && g.Event.IsZero() {
		return fmt.Errorf("event must not be the zero address")
	}
	if g.Status != nil && *g.Status > MarketStatusComplete {
		return fmt.Errorf("invalid market status %d", *g.Status)
	}
	return nil
}

// GetBetOrdersInput narrows a bet-order scan. At least one of Market or
// Purchaser is required: an unscoped scan would walk every order the program
// has ever created.
type GetBetOrdersInput struct {
	Market    *solana.PublicKey
	Purchaser *solana.PublicKey
	Status    *OrderStatus
}

// Validate checks if GetBetOrdersInput is valid.
func (g *GetBetOrdersInput) Validate() error {
	if g.Market == nil && g.Purchaser == nil {
		return fmt.Errorf("at least one of market or purchaser is required")
	}
	if g.Market != nil && g.Market.IsZero() {
		return fmt.Errorf("market must not be the zero address")
	}
	if g.Purchaser != nil && g.Purchaser.IsZero() {
		return fmt.Errorf("purchaser must not be the zero address")
	}
	if g.Status != nil && *g.Status > OrderStatusCancelled {
		return fmt.Errorf("invalid order status %d", *g.Status)
	}
	return nil
}

// MatchingPoolLocator identifies one matching pool: the order-book bucket for
// a single (market, outcome, odds, side) price point.
type MatchingPoolLocator struct {
	Market             solana.PublicKey
	MarketOutcomeIndex uint64
	Odds               float64
	Backing            bool
}

// Validate checks if MatchingPoolLocator is valid.
func (m *MatchingPoolLocator) Validate() error {
	if m.Market.IsZero() {
		return fmt.Errorf("market is required")
	}
	if m.Odds < minOdds {
		return fmt.Errorf("odds must be at least %.3f, got %v", minOdds, m.Odds)
	}
	return nil
}

// CreateBetOrderInput contains parameters for placing a bet order.
//
// Exactly one of Stake (human-scale decimal string, converted using the
// market mint's decimals) or RawStake (integer token amount) must be set.
type CreateBetOrderInput struct {
	Market             solana.PublicKey
	MarketOutcomeIndex uint64
	Backing            bool
	Odds               float64
	Stake              string
	RawStake           uint64
}

// Validate checks if CreateBetOrderInput is valid.
func (c *CreateBetOrderInput) Validate() error {
	if c.Market.IsZero() {
		return fmt.Errorf("market is required")
	}
	if c.Odds < minOdds {
		return fmt.Errorf("odds must be at least %.3f, got %v", minOdds, c.Odds)
	}
	if c.Stake == "" && c.RawStake == 0 {
		return fmt.Errorf("one of stake or raw_stake is required")
	}
	if c.Stake != "" && c.RawStake != 0 {
		return fmt.Errorf("stake and raw_stake are mutually exclusive")
	}
	return nil
}
