package protocolapi

import (
	"strconv"
	"time"

	"github.com/gagliardetto/solana-go"
	"github.com/pkg/errors"

	"github.com/monaco-protocol/client-go/core/util"
)

// Seed literals fixed by the program. Seed byte order is part of the
// contract: market bytes first, then purchaser/outcome bytes, then any
// auxiliary seed. Reordering derives a wrong, likely non-existent, address.
const (
	escrowSeed  = "escrow"
	backingSeed = "backing"
	layingSeed  = "laying"
)

func sideSeed(backing bool) string {
	if backing {
		return backingSeed
	}
	return layingSeed
}

// BetOrderPda is a derived bet-order address together with the
// disambiguating seed that produced it. The seed must be kept by callers
// that want to re-derive the address.
type BetOrderPda struct {
	PublicKey    solana.PublicKey
	DistinctSeed string
}

// FindBetOrderPda derives a fresh bet-order address for a purchaser in a
// market. The distinct seed is the current unix-millisecond time rendered as
// decimal text, so repeated placements by the same purchaser never collide.
func FindBetOrderPda(programID, market, purchaser solana.PublicKey) (*BetOrderPda, error) {
	return FindBetOrderPdaWithSeed(programID, market, purchaser, strconv.FormatInt(time.Now().UnixMilli(), 10))
}

// FindBetOrderPdaWithSeed re-derives a bet-order address from a known
// distinct seed.
func FindBetOrderPdaWithSeed(programID, market, purchaser solana.PublicKey, distinctSeed string) (*BetOrderPda, error) {
	addr, _, err := solana.FindProgramAddress(
		[][]byte{
			market.Bytes(),
			purchaser.Bytes(),
			[]byte(distinctSeed),
		},
		programID,
	)
	if err != nil {
		return nil, errors.Wrap(err, "failed to derive bet order address")
	}
	return &BetOrderPda{PublicKey: addr, DistinctSeed: distinctSeed}, nil
}

// FindMarketMatchingPoolPda derives the matching-pool address for one
// (market, outcome, odds, side) price point. Odds are serialized as fixed
// 3-decimal-place text before hashing.
func FindMarketMatchingPoolPda(programID, market solana.PublicKey, marketOutcomeIndex uint64, odds float64, backing bool) (solana.PublicKey, error) {
	addr, _, err := solana.FindProgramAddress(
		[][]byte{
			market.Bytes(),
			[]byte(strconv.FormatUint(marketOutcomeIndex, 10)),
			[]byte(util.FormatOdds(odds)),
			[]byte(sideSeed(backing)),
		},
		programID,
	)
	if err != nil {
		return solana.PublicKey{}, errors.Wrap(err, "failed to derive matching pool address")
	}
	return addr, nil
}

// FindMarketOutcomePda derives the address of one market outcome by index.
func FindMarketOutcomePda(programID, market solana.PublicKey, outcomeIndex uint16) (solana.PublicKey, error) {
	addr, _, err := solana.FindProgramAddress(
		[][]byte{
			market.Bytes(),
			[]byte(strconv.FormatUint(uint64(outcomeIndex), 10)),
		},
		programID,
	)
	if err != nil {
		return solana.PublicKey{}, errors.Wrap(err, "failed to derive market outcome address")
	}
	return addr, nil
}

// FindMarketPositionPda derives a purchaser's position address in a market.
func FindMarketPositionPda(programID, market, purchaser solana.PublicKey) (solana.PublicKey, error) {
	addr, _, err := solana.FindProgramAddress(
		[][]byte{
			market.Bytes(),
			purchaser.Bytes(),
		},
		programID,
	)
	if err != nil {
		return solana.PublicKey{}, errors.Wrap(err, "failed to derive market position address")
	}
	return addr, nil
}

// FindEscrowPda derives a market's settlement-token escrow address.
func FindEscrowPda(programID, market solana.PublicKey) (solana.PublicKey, error) {
	addr, _, err := solana.FindProgramAddress(
		[][]byte{
			[]byte(escrowSeed),
			market.Bytes(),
		},
		programID,
	)
	if err != nil {
		return solana.PublicKey{}, errors.Wrap(err, "failed to derive escrow address")
	}
	return addr, nil
}
