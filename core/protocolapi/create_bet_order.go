package protocolapi

import (
	"context"

	"github.com/gagliardetto/solana-go"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/monaco-protocol/client-go/core/types"
	"github.com/monaco-protocol/client-go/core/util"
)

// CreateBetOrder derives a fresh order address and submits the placement
// instruction. A new time-based distinct seed is drawn on every call, so
// repeated placements with identical parameters never collide.
func (p *Protocol) CreateBetOrder(ctx context.Context, signer types.Signer, input types.CreateBetOrderInput) (*types.CreateBetOrderResult, error) {
	if err := input.Validate(); err != nil {
		return nil, errors.WithStack(err)
	}

	market, err := p.GetMarket(ctx, input.Market)
	if err != nil {
		return nil, err
	}

	stake := input.RawStake
	if input.Stake != "" {
		decimals, err := p.getMintDecimals(ctx, market.Account.MintAccount)
		if err != nil {
			return nil, err
		}
		stake, err = util.StakeToRaw(input.Stake, decimals)
		if err != nil {
			return nil, errors.WithStack(err)
		}
	}

	purchaser := signer.PublicKey()
	betOrder, err := FindBetOrderPda(p.programID, input.Market, purchaser)
	if err != nil {
		return nil, err
	}
	if input.MarketOutcomeIndex > uint64(^uint16(0)) {
		return nil, errors.Errorf("market outcome index %d out of range", input.MarketOutcomeIndex)
	}
	marketOutcome, err := FindMarketOutcomePda(p.programID, input.Market, uint16(input.MarketOutcomeIndex))
	if err != nil {
		return nil, err
	}
	outcome, err := getAccount(ctx, p, marketOutcome, types.DecodeMarketOutcome)
	if err != nil {
		return nil, err
	}
	if !outcome.Account.OddsOnLadder(input.Odds) {
		return nil, errors.Wrapf(ErrOddsNotOnLadder,
			"odds %s are not on outcome %q ladder", util.FormatOdds(input.Odds), outcome.Account.Title)
	}
	matchingPool, err := FindMarketMatchingPoolPda(
		p.programID, input.Market, input.MarketOutcomeIndex, input.Odds, input.Backing)
	if err != nil {
		return nil, err
	}
	marketPosition, err := FindMarketPositionPda(p.programID, input.Market, purchaser)
	if err != nil {
		return nil, err
	}
	escrow, err := FindEscrowPda(p.programID, input.Market)
	if err != nil {
		return nil, err
	}
	purchaserToken, _, err := solana.FindAssociatedTokenAddress(purchaser, market.Account.MintAccount)
	if err != nil {
		return nil, errors.Wrap(err, "failed to resolve purchaser token account")
	}

	data, err := encodeInstructionData(createBetOrderInstruction, createBetOrderArgs{
		MarketOutcomeIndex: input.MarketOutcomeIndex,
		Backing:            input.Backing,
		Stake:              stake,
		Odds:               input.Odds,
	})
	if err != nil {
		return nil, err
	}

	instruction := solana.NewInstruction(p.programID, solana.AccountMetaSlice{
		solana.Meta(betOrder.PublicKey).WRITE(),
		solana.Meta(marketPosition).WRITE(),
		solana.Meta(purchaser).WRITE().SIGNER(),
		solana.Meta(input.Market).WRITE(),
		solana.Meta(marketOutcome),
		solana.Meta(matchingPool).WRITE(),
		solana.Meta(purchaserToken).WRITE(),
		solana.Meta(escrow).WRITE(),
		solana.Meta(solana.TokenProgramID),
		solana.Meta(solana.SystemProgramID),
	}, data)

	signature, err := p.submitTransaction(ctx, signer, instruction)
	if err != nil {
		return nil, err
	}

	p.logger.Info("bet order created",
		zap.Stringer("bet_order", betOrder.PublicKey),
		zap.Stringer("market", input.Market),
		zap.Uint64("outcome", input.MarketOutcomeIndex),
		zap.Float64("odds", input.Odds),
		zap.Bool("backing", input.Backing),
		zap.Uint64("stake", stake))

	return &types.CreateBetOrderResult{
		BetOrder:             betOrder.PublicKey,
		DistinctSeed:         betOrder.DistinctSeed,
		TransactionSignature: signature,
	}, nil
}
