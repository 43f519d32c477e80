package protocolapi

import (
	"bytes"
	"crypto/sha256"

	bin "github.com/gagliardetto/binary"
	"github.com/pkg/errors"
)

// Instruction names as declared by the program.
const (
	createBetOrderInstruction = "create_bet_order"
	cancelBetOrderInstruction = "cancel_bet_order"
)

// instructionDiscriminator returns the 8-byte Anchor instruction
// discriminator: sha256("global:<name>")[:8].
func instructionDiscriminator(name string) []byte {
	h := sha256.Sum256([]byte("global:" + name))
	return h[:8]
}

// createBetOrderArgs is the Borsh argument layout of create_bet_order.
// Field order is the wire contract.
type createBetOrderArgs struct {
	MarketOutcomeIndex uint64
	Backing            bool
	Stake              uint64
	Odds               float64
}

// encodeInstructionData renders discriminator-prefixed Borsh instruction
// data. A nil args value encodes an argument-less instruction.
func encodeInstructionData(name string, args interface{}) ([]byte, error) {
	buf := new(bytes.Buffer)
	buf.Write(instructionDiscriminator(name))
	if args != nil {
		if err := bin.NewBorshEncoder(buf).Encode(args); err != nil {
			return nil, errors.Wrapf(err, "failed to encode %s args", name)
		}
	}
	return buf.Bytes(), nil
}
