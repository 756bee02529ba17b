package internal

import "fmt"

const (
	EncodingHex    = "hex"
	EncodingBase64 = "base64"
)

type Config struct {
	LogLevel      string `env:"LOG_LEVEL,required=true"`
	InputEncoding string `env:"INPUT_ENCODING"`
}

// Encoding resolves the configured envelope encoding, defaulting to hex.
func (c Config) Encoding() (string, error) {
	switch c.InputEncoding {
	case "", EncodingHex:
		return EncodingHex, nil
	case EncodingBase64:
		return EncodingBase64, nil
	default:
		return "", fmt.Errorf(
			"INPUT_ENCODING must be %q or %q, got %q",
			EncodingHex, EncodingBase64, c.InputEncoding,
		)
	}
}
