package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseSigner(t *testing.T) {
	derived, err := AccountAddress("cosmos", []byte("dummy-ed25519-public-key"))
	require.NoError(t, err)

	tests := []struct {
		description string
		input       string
		wantErr     bool
	}{
		{
			"Should accept a derived account address",
			derived.String(),
			false,
		},
		{
			"Should accept a reference bech32 string",
			"bc1qw508d6qejxtdg4y5r3zarvary0c5xw7kv8f3t4",
			false,
		},
		{
			"Should reject an empty signer",
			"",
			true,
		},
		{
			"Should reject a corrupted checksum",
			derived.String() + "q",
			true,
		},
		{
			"Should reject mixed case",
			"Bc1qw508d6qejxtdg4y5r3zarvary0c5xw7kv8f3t4",
			true,
		},
		{
			"Should reject a missing separator",
			"cosmosqqqqqqqqqqqq",
			true,
		},
		{
			"Should reject an oversized address",
			"bc1" + strings.Repeat("q", 100),
			true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.description, func(t *testing.T) {
			req := require.New(t)
			signer, err := ParseSigner(tt.input)
			if tt.wantErr {
				req.ErrorIs(err, ErrInvalidAccount)
				req.Empty(signer)
				return
			}
			req.NoError(err)
			req.Equal(tt.input, signer.String())
		})
	}
}

func TestAccountAddress(t *testing.T) {
	req := require.New(t)

	addr, err := AccountAddress("cosmos", []byte{0x01, 0x02, 0x03})
	req.NoError(err)
	req.True(strings.HasPrefix(addr.String(), "cosmos1"))

	// Derivation is deterministic.
	again, err := AccountAddress("cosmos", []byte{0x01, 0x02, 0x03})
	req.NoError(err)
	req.Equal(addr, again)

	_, err = AccountAddress("", []byte{0x01})
	req.ErrorIs(err, ErrInvalidAccount)
}
