// Package host implements the identifier grammar shared by every handshake
// message: length-bounded, charset-restricted names for clients and
// connections. Identifiers are validated on construction, so a non-zero
// ClientID or ConnectionID is always grammatically valid.
package host

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Grammar bounds for each identifier kind.
const (
	ClientIDMinLength = 9
	ClientIDMaxLength = 64

	ConnectionIDMinLength = 10
	ConnectionIDMaxLength = 64
)

// identifierSymbols are the non-alphanumeric runes the grammar allows.
const identifierSymbols = "._+-#[]<>"

var (
	ErrInvalidLength  = fmt.Errorf("identifier length out of bounds")
	ErrInvalidCharset = fmt.Errorf("identifier contains a forbidden character")
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	if err := v.RegisterValidation("idcharset", hasValidCharset); err != nil {
		panic(err)
	}
	return v
}

// hasValidCharset reports whether every rune is alphanumeric or one of the
// allowed symbols. Tags cover presence and length, this rule covers the rest.
func hasValidCharset(fl validator.FieldLevel) bool {
	for _, r := range fl.Field().String() {
		switch {
		case r >= 'a' && r <= 'z':
		case r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
		case strings.ContainsRune(identifierSymbols, r):
		default:
			return false
		}
	}
	return true
}

// ClientID names a light client hosted on a chain.
type ClientID string

func (c ClientID) String() string { return string(c) }

// ParseClientID validates s against the client identifier grammar.
func ParseClientID(s string) (ClientID, error) {
	if err := validateIdentifier(s, ClientIDMinLength, ClientIDMaxLength); err != nil {
		return "", fmt.Errorf("client identifier %q: %w", s, err)
	}
	return ClientID(s), nil
}

// ConnectionID names a connection end hosted on a chain.
type ConnectionID string

func (c ConnectionID) String() string { return string(c) }

// ParseConnectionID validates s against the connection identifier grammar.
func ParseConnectionID(s string) (ConnectionID, error) {
	if err := validateIdentifier(s, ConnectionIDMinLength, ConnectionIDMaxLength); err != nil {
		return "", fmt.Errorf("connection identifier %q: %w", s, err)
	}
	return ConnectionID(s), nil
}

func validateIdentifier(s string, min, max int) error {
	if len(s) < min || len(s) > max {
		return fmt.Errorf("%w: got %d, want %d..%d", ErrInvalidLength, len(s), min, max)
	}
	if err := validate.Var(s, "required,excludes=/,idcharset"); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidCharset, err)
	}
	return nil
}
