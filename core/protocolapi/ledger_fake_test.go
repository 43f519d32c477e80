package protocolapi

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"sync"
	"testing"

	bin "github.com/gagliardetto/binary"
	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
	"github.com/stretchr/testify/require"

	"github.com/monaco-protocol/client-go/core/types"
)

// fakeLedger stores account bytes keyed by address and answers scans by
// applying memcmp filters against the stored bytes, so filter offsets are
// exercised for real.
type fakeLedger struct {
	mu       sync.Mutex
	accounts map[solana.PublicKey][]byte

	scanErr  error
	fetchErr error

	// sendFn decides the outcome of a submission; nil accepts everything.
	sendFn    func(tx *solana.Transaction) (solana.Signature, error)
	sent      []*solana.Transaction
	statuses  []*rpc.SignatureStatusesResult
	nextSigID byte
}

func newFakeLedger() *fakeLedger {
	return &fakeLedger{accounts: map[solana.PublicKey][]byte{}}
}

func (f *fakeLedger) put(address solana.PublicKey, data []byte) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.accounts[address] = data
}

func (f *fakeLedger) delete(address solana.PublicKey) {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.accounts, address)
}

func matchesFilters(data []byte, filters []rpc.RPCFilter) bool {
	for _, filter := range filters {
		if filter.Memcmp == nil {
			continue
		}
		offset := int(filter.Memcmp.Offset)
		want := []byte(filter.Memcmp.Bytes)
		if offset+len(want) > len(data) {
			return false
		}
		if !bytes.Equal(data[offset:offset+len(want)], want) {
			return false
		}
	}
	return true
}

func (f *fakeLedger) GetProgramAccountsWithOpts(_ context.Context, _ solana.PublicKey, opts *rpc.GetProgramAccountsOpts) (rpc.GetProgramAccountsResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.scanErr != nil {
		return nil, f.scanErr
	}
	var out rpc.GetProgramAccountsResult
	for address, data := range f.accounts {
		if matchesFilters(data, opts.Filters) {
			out = append(out, &rpc.KeyedAccount{Pubkey: address})
		}
	}
	return out, nil
}

func (f *fakeLedger) GetMultipleAccountsWithOpts(_ context.Context, addresses []solana.PublicKey, _ *rpc.GetMultipleAccountsOpts) (*rpc.GetMultipleAccountsResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fetchErr != nil {
		return nil, f.fetchErr
	}
	result := &rpc.GetMultipleAccountsResult{}
	for _, address := range addresses {
		data, ok := f.accounts[address]
		if !ok {
			result.Value = append(result.Value, nil)
			continue
		}
		result.Value = append(result.Value, &rpc.Account{Data: dataBytes(data)})
	}
	return result, nil
}

func (f *fakeLedger) GetAccountInfoWithOpts(_ context.Context, address solana.PublicKey, _ *rpc.GetAccountInfoOpts) (*rpc.GetAccountInfoResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	data, ok := f.accounts[address]
	if !ok {
		return nil, rpc.ErrNotFound
	}
	return &rpc.GetAccountInfoResult{Value: &rpc.Account{Data: dataBytes(data)}}, nil
}

func (f *fakeLedger) GetLatestBlockhash(_ context.Context, _ rpc.CommitmentType) (*rpc.GetLatestBlockhashResult, error) {
	return &rpc.GetLatestBlockhashResult{
		Value: &rpc.LatestBlockhashResult{Blockhash: solana.Hash{1}},
	}, nil
}

func (f *fakeLedger) SendTransactionWithOpts(_ context.Context, tx *solana.Transaction, _ rpc.TransactionOpts) (solana.Signature, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, tx)
	if f.sendFn != nil {
		return f.sendFn(tx)
	}
	f.nextSigID++
	return solana.Signature{f.nextSigID}, nil
}

func (f *fakeLedger) GetSignatureStatuses(_ context.Context, _ bool, _ ...solana.Signature) (*rpc.GetSignatureStatusesResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return &rpc.GetSignatureStatusesResult{Value: f.statuses}, nil
}

// dataBytes builds the RPC data wrapper from raw bytes by round-tripping the
// wire form, since the wrapper's fields are unexported.
func dataBytes(data []byte) *rpc.DataBytesOrJSON {
	raw, err := json.Marshal([]interface{}{base64.StdEncoding.EncodeToString(data), "base64"})
	if err != nil {
		panic(err)
	}
	var out rpc.DataBytesOrJSON
	if err := json.Unmarshal(raw, &out); err != nil {
		panic(err)
	}
	return &out
}

// encodeAccount renders discriminator-prefixed Borsh account bytes.
func encodeAccount(t *testing.T, name string, account interface{}) []byte {
	t.Helper()
	disc := types.AccountDiscriminator(name)
	buf := bytes.NewBuffer(disc[:])
	require.NoError(t, bin.NewBorshEncoder(buf).Encode(account))
	return buf.Bytes()
}

func newTestProtocol(t *testing.T, ledger *fakeLedger) *Protocol {
	t.Helper()
	protocol, err := LoadProtocol(NewProtocolOptions{Client: ledger})
	require.NoError(t, err)
	return protocol
}
