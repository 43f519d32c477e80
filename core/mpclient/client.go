// Package mpclient provides the top-level client: a signer-bound handle over
// the protocol operation surface.
package mpclient

import (
	"context"
	"time"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/monaco-protocol/client-go/core/cache"
	"github.com/monaco-protocol/client-go/core/logging"
	"github.com/monaco-protocol/client-go/core/protocolapi"
	"github.com/monaco-protocol/client-go/core/types"
)

// Client binds a signer to a program deployment reachable through one RPC
// endpoint. All reads and submissions use a single commitment level so the
// two phases of every query observe consistent state.
type Client struct {
	Signer types.Signer `validate:"required"`

	protocol   *protocolapi.Protocol
	logger     *zap.Logger
	programID  solana.PublicKey
	commitment rpc.CommitmentType
	cache      cache.Cache
	schema     *protocolapi.Schema
}

var _ types.Client = (*Client)(nil)

// Option configures a Client before validation.
type Option func(*Client)

// NewClient connects to the given RPC endpoint and verifies it is healthy
// before returning a usable client.
func NewClient(ctx context.Context, endpoint string, options ...Option) (*Client, error) {
	rpcClient := rpc.New(endpoint)
	if _, err := rpcClient.GetHealth(ctx); err != nil {
		return nil, errors.Wrapf(err, "rpc endpoint %s is not healthy", endpoint)
	}
	return NewClientWithLedger(rpcClient, options...)
}

// NewClientWithLedger builds a client over a caller-supplied ledger
// transport. Useful for custom transports and tests.
func NewClientWithLedger(ledger protocolapi.Ledger, options ...Option) (*Client, error) {
	c := &Client{}
	for _, option := range options {
		option(c)
	}
	if c.logger == nil {
		c.logger = logging.Logger
	}

	protocol, err := protocolapi.LoadProtocol(protocolapi.NewProtocolOptions{
		Client:     ledger,
		ProgramID:  c.programID,
		Schema:     c.schema,
		Commitment: c.commitment,
		Cache:      c.cache,
		Logger:     c.logger,
	})
	if err != nil {
		return nil, errors.WithStack(err)
	}
	c.protocol = protocol

	if err := c.Validate(); err != nil {
		return nil, errors.WithStack(err)
	}
	return c, nil
}

// Validate checks the assembled client.
func (c *Client) Validate() error {
	validate := validator.New()
	return validate.Struct(c)
}

// WithSigner sets the identity used for mutations and purchaser-scoped
// reads.
func WithSigner(signer types.Signer) Option {
	return func(c *Client) {
		c.Signer = signer
	}
}

// WithLogger replaces the SDK-global logger for this client.
func WithLogger(logger *zap.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithProgramID overrides the program deployment this client targets.
func WithProgramID(programID solana.PublicKey) Option {
	return func(c *Client) {
		c.programID = programID
	}
}

// WithCommitment sets the consistency level for all reads and submissions.
func WithCommitment(commitment rpc.CommitmentType) Option {
	return func(c *Client) {
		c.commitment = commitment
	}
}

// WithCache enables caching of immutable chain lookups such as mint
// decimals.
func WithCache(cache cache.Cache) Option {
	return func(c *Client) {
		c.cache = cache
	}
}

// WithSchema overrides the account-layout descriptor, for targeting a
// program build whose layout differs from the bundled schema.
func WithSchema(schema protocolapi.Schema) Option {
	return func(c *Client) {
		c.schema = &schema
	}
}

// Protocol exposes the underlying operation surface for callers that manage
// signers themselves.
func (c *Client) Protocol() *protocolapi.Protocol {
	return c.protocol
}

// Address of the signer used by the client.
func (c *Client) Address() solana.PublicKey {
	return c.Signer.PublicKey()
}

// WaitForTransaction polls the signature's status until it reaches the
// client's commitment level or ctx is done.
func (c *Client) WaitForTransaction(ctx context.Context, signature solana.Signature, interval time.Duration) error {
	return c.protocol.WaitForTransaction(ctx, signature, interval)
}

func (c *Client) GetMarket(ctx context.Context, market solana.PublicKey) (*types.Keyed[types.Market], error) {
	return c.protocol.GetMarket(ctx, market)
}

func (c *Client) GetMarkets(ctx context.Context, input types.GetMarketsInput) ([]types.Keyed[types.Market], error) {
	return c.protocol.GetMarkets(ctx, input)
}

func (c *Client) GetMarketOutcomes(ctx context.Context, market solana.PublicKey) ([]types.Keyed[types.MarketOutcome], error) {
	return c.protocol.GetMarketOutcomes(ctx, market)
}

func (c *Client) GetBetOrders(ctx context.Context, input types.GetBetOrdersInput) ([]types.Keyed[types.BetOrder], error) {
	return c.protocol.GetBetOrders(ctx, input)
}

func (c *Client) GetMarketMatchingPool(ctx context.Context, locator types.MatchingPoolLocator) (*types.Keyed[types.MarketMatchingPool], error) {
	return c.protocol.GetMarketMatchingPool(ctx, locator)
}

func (c *Client) GetMarketPrices(ctx context.Context, market solana.PublicKey) (*types.MarketPricesSummary, error) {
	return c.protocol.GetMarketPrices(ctx, market)
}

// GetMarketPosition returns the client identity's position in a market.
func (c *Client) GetMarketPosition(ctx context.Context, market solana.PublicKey) (*types.MarketPositionSummary, error) {
	return c.protocol.GetMarketPosition(ctx, market, c.Address())
}

// GetCancellableBetOrders returns the client identity's cancellable orders
// in a market.
func (c *Client) GetCancellableBetOrders(ctx context.Context, market solana.PublicKey) ([]types.Keyed[types.BetOrder], error) {
	return c.protocol.GetCancellableBetOrders(ctx, market, c.Address())
}

// GetEventBetOrders unions the client identity's orders across an event.
func (c *Client) GetEventBetOrders(ctx context.Context, event solana.PublicKey) (*types.EventBetOrdersResult, error) {
	return c.protocol.GetEventBetOrders(ctx, event, c.Address())
}

func (c *Client) CreateBetOrder(ctx context.Context, input types.CreateBetOrderInput) (*types.CreateBetOrderResult, error) {
	return c.protocol.CreateBetOrder(ctx, c.Signer, input)
}

func (c *Client) CancelBetOrder(ctx context.Context, betOrder solana.PublicKey) (*types.CancelBetOrderResult, error) {
	return c.protocol.CancelBetOrder(ctx, c.Signer, betOrder)
}

func (c *Client) CancelAllBetOrders(ctx context.Context, market solana.PublicKey) (*types.CancelAllResult, error) {
	return c.protocol.CancelAllBetOrders(ctx, c.Signer, market)
}
