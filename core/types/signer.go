package types

import (
	"github.com/gagliardetto/solana-go"
	"github.com/pkg/errors"
)

// Signer supplies a public address and signing capability. The library never
// touches private key material beyond this interface.
type Signer interface {
	PublicKey() solana.PublicKey
	Sign(message []byte) (solana.Signature, error)
}

// KeypairSigner adapts a local ed25519 keypair to the Signer interface.
type KeypairSigner struct {
	key solana.PrivateKey
}

// NewKeypairSigner wraps a private key. Errors if the key is empty.
func NewKeypairSigner(key solana.PrivateKey) (*KeypairSigner, error) {
	if len(key) == 0 {
		return nil, errors.New("private key is required")
	}
	return &KeypairSigner{key: key}, nil
}

// NewKeypairSignerFromBase58 parses a base58-encoded private key.
func NewKeypairSignerFromBase58(encoded string) (*KeypairSigner, error) {
	key, err := solana.PrivateKeyFromBase58(encoded)
	if err != nil {
		return nil, errors.Wrap(err, "invalid base58 private key")
	}
	return &KeypairSigner{key: key}, nil
}

func (s *KeypairSigner) PublicKey() solana.PublicKey {
	return s.key.PublicKey()
}

func (s *KeypairSigner) Sign(message []byte) (solana.Signature, error) {
	sig, err := s.key.Sign(message)
	if err != nil {
		return solana.Signature{}, errors.WithStack(err)
	}
	return sig, nil
}
