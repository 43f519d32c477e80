package protocolapi

import (
	"github.com/pkg/errors"

	"github.com/monaco-protocol/client-go/core/types"
)

// Field names addressable in scan filters. Offsets live in the schema
// descriptor, never inline at call sites, so program layout drift is a
// single-point change.
const (
	FieldPurchaser = "purchaser"
	FieldAuthority = "authority"
	FieldMarket    = "market"
	FieldEvent     = "event"
	FieldMint      = "mint"
	FieldStatus    = "status"
	FieldIndex     = "index"
)

// AccountSchema describes one account type's binary layout as far as filters
// need it: the discriminator and the byte offsets of filterable fields.
//
// Offsets are a fixed contract with the deployed program. They must be
// validated against the program's published IDL when a new program version
// ships; a stale offset produces silently empty or wrong scan results, not
// errors.
type AccountSchema struct {
	Name          string
	Discriminator [types.AccountDiscriminatorSize]byte
	FieldOffsets  map[string]uint64
}

// Offset returns the byte offset of a filterable field.
func (s AccountSchema) Offset(field string) (uint64, error) {
	off, ok := s.FieldOffsets[field]
	if !ok {
		return 0, errors.Errorf("account %s has no filterable field %q", s.Name, field)
	}
	return off, nil
}

// Schema is a versioned descriptor of every account layout the client scans.
type Schema struct {
	Version        string
	Market         AccountSchema
	BetOrder       AccountSchema
	MarketOutcome  AccountSchema
	MatchingPool   AccountSchema
	MarketPosition AccountSchema
}

// SchemaV1 matches the program's current account layout.
var SchemaV1 = Schema{
	Version: "v1",
	Market: AccountSchema{
		Name:          types.MarketAccountName,
		Discriminator: types.AccountDiscriminator(types.MarketAccountName),
		FieldOffsets: map[string]uint64{
			FieldAuthority: 8,
			FieldEvent:     40,
			FieldMint:      72,
			FieldStatus:    104,
		},
	},
	BetOrder: AccountSchema{
		Name:          types.BetOrderAccountName,
		Discriminator: types.AccountDiscriminator(types.BetOrderAccountName),
		FieldOffsets: map[string]uint64{
			FieldPurchaser: 8,
			FieldMarket:    40,
			FieldIndex:     72,
			FieldStatus:    81,
		},
	},
	MarketOutcome: AccountSchema{
		Name:          types.MarketOutcomeAccountName,
		Discriminator: types.AccountDiscriminator(types.MarketOutcomeAccountName),
		FieldOffsets: map[string]uint64{
			FieldMarket: 8,
			FieldIndex:  40,
		},
	},
	MatchingPool: AccountSchema{
		Name:          types.MatchingPoolAccountName,
		Discriminator: types.AccountDiscriminator(types.MatchingPoolAccountName),
		FieldOffsets: map[string]uint64{
			FieldMarket: 8,
		},
	},
	MarketPosition: AccountSchema{
		Name:          types.MarketPositionAccountName,
		Discriminator: types.AccountDiscriminator(types.MarketPositionAccountName),
		FieldOffsets: map[string]uint64{
			FieldPurchaser: 8,
			FieldMarket:    40,
		},
	},
}
