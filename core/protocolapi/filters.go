package protocolapi

import (
	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
	"github.com/pkg/errors"
)

// FilterBuilder assembles the ordered (offset, bytes) equality constraints
// for a server-side program-account scan. The remote scan ANDs them. The
// first constraint is always the account-type discriminator at offset 0.
//
// The builder is sticky on error: the first bad field is reported by Build
// and later calls are no-ops.
type FilterBuilder struct {
	schema  AccountSchema
	filters []rpc.RPCFilter
	err     error
}

// NewFilterBuilder starts a filter list for one account type, seeded with
// its discriminator constraint.
func NewFilterBuilder(schema AccountSchema) *FilterBuilder {
	return &FilterBuilder{
		schema: schema,
		filters: []rpc.RPCFilter{{
			Memcmp: &rpc.RPCFilterMemcmp{
				Offset: 0,
				Bytes:  solana.Base58(schema.Discriminator[:]),
			},
		}},
	}
}

// ByPublicKey appends an equality constraint on a 32-byte key field.
func (b *FilterBuilder) ByPublicKey(field string, key solana.PublicKey) *FilterBuilder {
	return b.append(field, key.Bytes())
}

// ByByte appends an equality constraint on a single-byte field such as a
// status discriminant.
func (b *FilterBuilder) ByByte(field string, value byte) *FilterBuilder {
	return b.append(field, []byte{value})
}

func (b *FilterBuilder) append(field string, data []byte) *FilterBuilder {
	if b.err != nil {
		return b
	}
	offset, err := b.schema.Offset(field)
	if err != nil {
		b.err = err
		return b
	}
	b.filters = append(b.filters, rpc.RPCFilter{
		Memcmp: &rpc.RPCFilterMemcmp{
			Offset: offset,
			Bytes:  solana.Base58(data),
		},
	})
	return b
}

// Build returns the accumulated filters, or the first schema error hit.
func (b *FilterBuilder) Build() ([]rpc.RPCFilter, error) {
	if b.err != nil {
		return nil, errors.WithStack(b.err)
	}
	return b.filters, nil
}
