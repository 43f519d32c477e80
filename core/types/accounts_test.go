package types

import (
	"bytes"
	"testing"

	bin "github.com/gagliardetto/binary"
	"github.com/gagliardetto/solana-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func accountBytes(t *testing.T, name string, account interface{}) []byte {
	t.Helper()
	disc := AccountDiscriminator(name)
	buf := bytes.NewBuffer(disc[:])
	require.NoError(t, bin.NewBorshEncoder(buf).Encode(account))
	return buf.Bytes()
}

func TestAccountDiscriminator_AnchorConvention(t *testing.T) {
	// sha256("account:Market")[:8]
	assert.Equal(t,
		[AccountDiscriminatorSize]byte{0xdb, 0xbe, 0xd5, 0x37, 0x00, 0xe3, 0xc6, 0x9a},
		AccountDiscriminator(MarketAccountName))
	// sha256("account:BetOrder")[:8]
	assert.Equal(t,
		[AccountDiscriminatorSize]byte{0x9f, 0xfd, 0x9c, 0x3d, 0xca, 0x44, 0xf2, 0x72},
		AccountDiscriminator(BetOrderAccountName))
}

func TestDecodeMarket_RoundTrip(t *testing.T) {
	winner := uint64(1)
	market := Market{
		Authority:             solana.NewWallet().PublicKey(),
		Event:                 solana.NewWallet().PublicKey(),
		MintAccount:           solana.NewWallet().PublicKey(),
		MarketStatus:          MarketStatusSettled,
		DecimalLimit:          3,
		MarketLockTimestamp:   1700000000,
		MarketSettleTimestamp: 1700003600,
		WinningOutcomeIndex:   &winner,
		MarketOutcomesCount:   2,
		Title:                 "match winner",
	}

	decoded, err := DecodeMarket(accountBytes(t, MarketAccountName, market))
	require.NoError(t, err)
	assert.Equal(t, market, *decoded)
}

func TestDecodeMarket_NoWinnerYet(t *testing.T) {
	decoded, err := DecodeMarket(accountBytes(t, MarketAccountName, Market{
		MarketStatus: MarketStatusOpen,
		Title:        "open market",
	}))
	require.NoError(t, err)
	assert.Nil(t, decoded.WinningOutcomeIndex)
}

func TestDecodeBetOrder_RoundTrip(t *testing.T) {
	order := BetOrder{
		Purchaser:          solana.NewWallet().PublicKey(),
		Market:             solana.NewWallet().PublicKey(),
		MarketOutcomeIndex: 1,
		Backing:            true,
		OrderStatus:        OrderStatusMatched,
		Stake:              100,
		StakeUnmatched:     40,
		ExpectedOdds:       2.5,
		CreationTimestamp:  1700000000,
		Payout:             250,
		Matches: []BetOrderMatch{
			{Odds: 2.5, Stake: 60},
		},
	}

	decoded, err := DecodeBetOrder(accountBytes(t, BetOrderAccountName, order))
	require.NoError(t, err)
	assert.Equal(t, order, *decoded)
}

func TestDecode_DiscriminatorMismatch(t *testing.T) {
	data := accountBytes(t, MarketAccountName, Market{Title: "m"})

	_, err := DecodeBetOrder(data)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "discriminator mismatch")
}

func TestDecode_TruncatedData(t *testing.T) {
	_, err := DecodeMarket([]byte{1, 2, 3})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "too short")
}

func TestBetOrderCancellable(t *testing.T) {
	assert.True(t, (&BetOrder{OrderStatus: OrderStatusOpen, StakeUnmatched: 10}).Cancellable())
	assert.True(t, (&BetOrder{OrderStatus: OrderStatusMatched, StakeUnmatched: 1}).Cancellable())
	assert.False(t, (&BetOrder{OrderStatus: OrderStatusMatched, StakeUnmatched: 0}).Cancellable())
	assert.False(t, (&BetOrder{OrderStatus: OrderStatusCancelled, StakeUnmatched: 0}).Cancellable())
}

func TestMarketOutcomeOddsOnLadder(t *testing.T) {
	outcome := &MarketOutcome{OddsLadder: []float64{1.5, 2.0, 2.5, 3.0}}

	assert.True(t, outcome.OddsOnLadder(1.5))
	assert.True(t, outcome.OddsOnLadder(1.500))
	assert.True(t, outcome.OddsOnLadder(3.0))
	assert.False(t, outcome.OddsOnLadder(1.75))
	assert.False(t, outcome.OddsOnLadder(2.001))

	// an empty ladder places no restriction
	unrestricted := &MarketOutcome{}
	assert.True(t, unrestricted.OddsOnLadder(7.25))
}

func TestStatusStrings(t *testing.T) {
	assert.Equal(t, "open", MarketStatusOpen.String())
	assert.Equal(t, "settled", MarketStatusSettled.String())
	assert.Equal(t, "open", OrderStatusOpen.String())
	assert.Equal(t, "cancelled", OrderStatusCancelled.String())
}
