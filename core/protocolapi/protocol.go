// Package protocolapi implements the operation surface of the Monaco
// Protocol program: address derivation, filtered account scans, read-side
// aggregation, and instruction submission.
//
// All business logic (matching, settlement, escrow accounting) runs in the
// deployed program; this package only derives addresses, decodes the
// program's account layout, and composes its instructions.
package protocolapi

import (
	"context"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/monaco-protocol/client-go/core/cache"
	"github.com/monaco-protocol/client-go/core/types"
)

// DefaultProgramID is the mainnet deployment of the protocol program.
var DefaultProgramID = solana.MustPublicKeyFromBase58("monacoUXKtUi6vKsQwaLyxmXKSievfNWEcYXTgkbCih")

// Sentinel errors surfaced by the operations below.
var (
	// ErrAccountNotFound marks an address with no live account at the
	// requested commitment.
	ErrAccountNotFound = errors.New("account not found")
	// ErrNoCancellableOrders is returned by CancelAllBetOrders when the
	// purchaser holds no order with unmatched stake in the market.
	ErrNoCancellableOrders = errors.New("no cancellable bet orders found")
	// ErrOrderNotCancellable is returned when a targeted order has no
	// unmatched remainder to release.
	ErrOrderNotCancellable = errors.New("bet order is not cancellable")
	// ErrSignerNotPurchaser is returned when a cancellation targets an order
	// owned by a different purchaser. The program would reject the
	// transaction anyway; failing here keeps the cause legible.
	ErrSignerNotPurchaser = errors.New("signer is not the order's purchaser")
	// ErrOddsNotOnLadder is returned by CreateBetOrder when the requested
	// odds are not a rung of the outcome's price ladder.
	ErrOddsNotOnLadder = errors.New("odds are not on the outcome's price ladder")
	// ErrPositionOutcomeMismatch signals version skew between the market's
	// outcome list and a position's sums; the aggregation fails loudly
	// rather than zip-truncate.
	ErrPositionOutcomeMismatch = errors.New("market outcome count does not match position sums")
)

// Ledger is the remote ledger surface this package depends on: filtered
// account scans, batched fetches, and transaction submission. *rpc.Client
// satisfies it; tests substitute a recording fake.
type Ledger interface {
	GetProgramAccountsWithOpts(ctx context.Context, publicKey solana.PublicKey, opts *rpc.GetProgramAccountsOpts) (rpc.GetProgramAccountsResult, error)
	GetMultipleAccountsWithOpts(ctx context.Context, accounts []solana.PublicKey, opts *rpc.GetMultipleAccountsOpts) (*rpc.GetMultipleAccountsResult, error)
	GetAccountInfoWithOpts(ctx context.Context, account solana.PublicKey, opts *rpc.GetAccountInfoOpts) (*rpc.GetAccountInfoResult, error)
	GetLatestBlockhash(ctx context.Context, commitment rpc.CommitmentType) (*rpc.GetLatestBlockhashResult, error)
	SendTransactionWithOpts(ctx context.Context, transaction *solana.Transaction, opts rpc.TransactionOpts) (solana.Signature, error)
	GetSignatureStatuses(ctx context.Context, searchTransactionHistory bool, transactionSignatures ...solana.Signature) (*rpc.GetSignatureStatusesResult, error)
}

var _ Ledger = (*rpc.Client)(nil)

// Protocol executes operations against one program deployment. Each call
// builds its own filter and result state; no mutable state is shared across
// operations.
type Protocol struct {
	_client    Ledger
	programID  solana.PublicKey
	schema     Schema
	commitment rpc.CommitmentType
	cache      cache.Cache
	logger     *zap.Logger
}

// Compile-time check that Protocol implements the full operation surface.
var _ types.ProtocolAPI = (*Protocol)(nil)

// NewProtocolOptions contains options for creating a Protocol instance.
type NewProtocolOptions struct {
	Client     Ledger
	ProgramID  solana.PublicKey   // defaults to DefaultProgramID
	Schema     *Schema            // defaults to SchemaV1
	Commitment rpc.CommitmentType // defaults to confirmed; one level per Protocol keeps scan and fetch phases consistent
	Cache      cache.Cache        // optional, used for immutable lookups
	Logger     *zap.Logger        // optional
}

// LoadProtocol creates a new Protocol instance with the given options.
func LoadProtocol(options NewProtocolOptions) (*Protocol, error) {
	if options.Client == nil {
		return nil, errors.New("ledger client is required")
	}
	p := &Protocol{
		_client:    options.Client,
		programID:  options.ProgramID,
		schema:     SchemaV1,
		commitment: options.Commitment,
		cache:      options.Cache,
		logger:     options.Logger,
	}
	if p.programID.IsZero() {
		p.programID = DefaultProgramID
	}
	if options.Schema != nil {
		p.schema = *options.Schema
	}
	if p.commitment == "" {
		p.commitment = rpc.CommitmentConfirmed
	}
	if p.logger == nil {
		p.logger = zap.NewNop()
	}
	return p, nil
}

// ProgramID returns the program this Protocol targets.
func (p *Protocol) ProgramID() solana.PublicKey {
	return p.programID
}

// Commitment returns the consistency level used by every read and
// submission.
func (p *Protocol) Commitment() rpc.CommitmentType {
	return p.commitment
}
