package protocolapi

import (
	"context"
	"time"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/monaco-protocol/client-go/core/types"
)

// getMultipleAccountsBatchSize is the ledger's per-call ceiling for batched
// account fetches.
const getMultipleAccountsBatchSize = 100

// scanAddresses runs phase one of a query: a filtered scan returning only
// matching addresses. DataSlice of length zero keeps account bodies off the
// wire.
func (p *Protocol) scanAddresses(ctx context.Context, filters []rpc.RPCFilter) ([]solana.PublicKey, error) {
	zero := uint64(0)
	started := time.Now()
	result, err := p._client.GetProgramAccountsWithOpts(ctx, p.programID, &rpc.GetProgramAccountsOpts{
		Commitment: p.commitment,
		Encoding:   solana.EncodingBase64,
		DataSlice:  &rpc.DataSlice{Offset: &zero, Length: &zero},
		Filters:    filters,
	})
	ScansTotal.Inc()
	ScanDurationSeconds.Observe(time.Since(started).Seconds())
	if err != nil {
		return nil, errors.Wrap(err, "account scan failed")
	}

	addresses := make([]solana.PublicKey, 0, len(result))
	for _, keyed := range result {
		addresses = append(addresses, keyed.Pubkey)
	}
	p.logger.Debug("account scan complete",
		zap.Int("matches", len(addresses)),
		zap.Duration("took", time.Since(started)))
	return addresses, nil
}

// fetchAccounts runs phase two: batch-fetching full bodies for scanned
// addresses at the same commitment as the scan. Addresses whose account
// vanished between phases come back nil and are pruned, never surfaced as
// zero-value records. The result is never longer than the input.
func (p *Protocol) fetchAccounts(ctx context.Context, addresses []solana.PublicKey) ([]types.Keyed[[]byte], error) {
	out := make([]types.Keyed[[]byte], 0, len(addresses))
	for start := 0; start < len(addresses); start += getMultipleAccountsBatchSize {
		end := start + getMultipleAccountsBatchSize
		if end > len(addresses) {
			end = len(addresses)
		}
		batch := addresses[start:end]

		result, err := p._client.GetMultipleAccountsWithOpts(ctx, batch, &rpc.GetMultipleAccountsOpts{
			Commitment: p.commitment,
			Encoding:   solana.EncodingBase64,
		})
		AccountFetchesTotal.Add(float64(len(batch)))
		if err != nil {
			return nil, errors.Wrap(err, "batch account fetch failed")
		}
		if result == nil || len(result.Value) != len(batch) {
			return nil, errors.Errorf("batch account fetch returned %d entries for %d addresses",
				resultLen(result), len(batch))
		}

		for i, account := range result.Value {
			if account == nil || account.Data == nil {
				// closed between scan and fetch
				AccountsPrunedTotal.Inc()
				p.logger.Debug("pruning closed account", zap.Stringer("address", batch[i]))
				continue
			}
			out = append(out, types.Keyed[[]byte]{
				PublicKey: batch[i],
				Account:   account.Data.GetBinary(),
			})
		}
	}
	return out, nil
}

func resultLen(r *rpc.GetMultipleAccountsResult) int {
	if r == nil {
		return 0
	}
	return len(r.Value)
}

// getAccountData fetches and returns one account's raw data.
func (p *Protocol) getAccountData(ctx context.Context, address solana.PublicKey) ([]byte, error) {
	result, err := p._client.GetAccountInfoWithOpts(ctx, address, &rpc.GetAccountInfoOpts{
		Commitment: p.commitment,
		Encoding:   solana.EncodingBase64,
	})
	if err != nil {
		if errors.Is(err, rpc.ErrNotFound) {
			return nil, errors.Wrapf(ErrAccountNotFound, "%s", address)
		}
		return nil, errors.Wrapf(err, "failed to fetch account %s", address)
	}
	if result == nil || result.Value == nil || result.Value.Data == nil {
		return nil, errors.Wrapf(ErrAccountNotFound, "%s", address)
	}
	return result.Value.Data.GetBinary(), nil
}

// queryAccounts composes both phases and decodes survivors. Result order is
// whatever the scan returned; callers needing stable order sort explicitly.
func queryAccounts[T any](ctx context.Context, p *Protocol, filters []rpc.RPCFilter, decode func([]byte) (*T, error)) ([]types.Keyed[T], error) {
	addresses, err := p.scanAddresses(ctx, filters)
	if err != nil {
		return nil, err
	}
	if len(addresses) == 0 {
		return nil, nil
	}

	raw, err := p.fetchAccounts(ctx, addresses)
	if err != nil {
		return nil, err
	}

	out := make([]types.Keyed[T], 0, len(raw))
	for _, keyed := range raw {
		decoded, err := decode(keyed.Account)
		if err != nil {
			return nil, errors.Wrapf(err, "account %s", keyed.PublicKey)
		}
		out = append(out, types.Keyed[T]{PublicKey: keyed.PublicKey, Account: *decoded})
	}
	return out, nil
}

// getAccount fetches and decodes a single account.
func getAccount[T any](ctx context.Context, p *Protocol, address solana.PublicKey, decode func([]byte) (*T, error)) (*types.Keyed[T], error) {
	data, err := p.getAccountData(ctx, address)
	if err != nil {
		return nil, err
	}
	decoded, err := decode(data)
	if err != nil {
		return nil, errors.Wrapf(err, "account %s", address)
	}
	return &types.Keyed[T]{PublicKey: address, Account: *decoded}, nil
}
