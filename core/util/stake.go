package util

import (
	"github.com/cockroachdb/apd/v3"
	"github.com/pkg/errors"
)

var stakeCtx = apd.BaseContext.WithPrecision(50)

// StakeToRaw converts a human-scale stake (decimal string, e.g. "10.5") into
// the raw integer token amount for a mint with the given decimal count.
//
// The conversion is exact: a stake carrying more precision than the mint
// supports is rejected rather than rounded.
func StakeToRaw(stake string, decimals uint8) (uint64, error) {
	d, _, err := apd.NewFromString(stake)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid stake %q", stake)
	}
	if d.Negative || d.IsZero() {
		return 0, errors.Errorf("stake must be positive, got %q", stake)
	}

	// shift by the mint's decimals, then require an integral result
	d.Exponent += int32(decimals)

	var raw apd.Decimal
	res, err := stakeCtx.RoundToIntegralExact(&raw, d)
	if err != nil {
		return 0, errors.Wrapf(err, "failed to convert stake %q", stake)
	}
	if res.Inexact() {
		return 0, errors.Errorf("stake %q exceeds the mint's %d decimal places", stake, decimals)
	}

	i, err := raw.Int64()
	if err != nil {
		return 0, errors.Wrapf(err, "stake %q does not fit a token amount", stake)
	}
	return uint64(i), nil
}

// RawToStake renders a raw integer token amount as a human-scale decimal
// string for a mint with the given decimal count.
func RawToStake(raw uint64, decimals uint8) string {
	var bi apd.BigInt
	bi.SetUint64(raw)
	d := apd.NewWithBigInt(&bi, -int32(decimals))
	return d.Text('f')
}
