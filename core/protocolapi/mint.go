package protocolapi

import (
	"context"
	"time"

	bin "github.com/gagliardetto/binary"
	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/programs/token"
	"github.com/pkg/errors"
)

// mintDecimalsTTL bounds cache residency for mint lookups. Decimals are
// immutable on chain; the TTL only caps memory held for abandoned mints.
const mintDecimalsTTL = 24 * time.Hour

// getMintDecimals returns the decimal count of an SPL mint, consulting the
// cache first when one is configured.
func (p *Protocol) getMintDecimals(ctx context.Context, mint solana.PublicKey) (uint8, error) {
	cacheKey := "mint-decimals:" + mint.String()
	if p.cache != nil {
		if cached, ok := p.cache.Get(cacheKey); ok {
			if decimals, ok := cached.(uint8); ok {
				return decimals, nil
			}
		}
	}

	data, err := p.getAccountData(ctx, mint)
	if err != nil {
		return 0, errors.Wrapf(err, "failed to fetch mint %s", mint)
	}

	var mintAccount token.Mint
	if err := bin.NewBinDecoder(data).Decode(&mintAccount); err != nil {
		return 0, errors.Wrapf(err, "failed to decode mint %s", mint)
	}

	if p.cache != nil {
		p.cache.Set(cacheKey, mintAccount.Decimals, mintDecimalsTTL)
	}
	return mintAccount.Decimals, nil
}
