// Package auth validates the account identifiers that authorize handshake
// messages and derives bech32 account addresses from public keys.
package auth

import (
	"crypto/sha256"
	"fmt"

	"github.com/btcsuite/btcd/btcutil/bech32"
	"github.com/go-playground/validator/v10"
	"golang.org/x/crypto/ripemd160" //nolint:staticcheck // address derivation requires it
)

var ErrInvalidAccount = fmt.Errorf("invalid account address")

var validate = validator.New()

// Signer is a bech32 account address that authorized a message.
// A non-zero Signer has passed ParseSigner and needs no re-validation.
type Signer string

func (s Signer) String() string { return string(s) }

// ParseSigner validates s as a bech32 account address.
func ParseSigner(s string) (Signer, error) {
	if err := validate.Var(s, "required,min=8,max=90,printascii"); err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidAccount, err)
	}
	if _, _, err := bech32.Decode(s); err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidAccount, err)
	}
	return Signer(s), nil
}

// AccountAddress derives the bech32 account address of pubKey under hrp,
// using the usual sha256 then ripemd160 construction.
func AccountAddress(hrp string, pubKey []byte) (Signer, error) {
	if hrp == "" {
		return "", fmt.Errorf("%w: empty address prefix", ErrInvalidAccount)
	}
	sum := sha256.Sum256(pubKey)
	hasher := ripemd160.New()
	hasher.Write(sum[:])
	groups, err := bech32.ConvertBits(hasher.Sum(nil), 8, 5, true)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidAccount, err)
	}
	addr, err := bech32.Encode(hrp, groups)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidAccount, err)
	}
	return Signer(addr), nil
}
