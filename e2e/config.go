package e2e

import (
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	// E2E_ADDRESS_PREFIX sets the bech32 prefix used for generated signers
	AddressPrefix string `envconfig:"E2E_ADDRESS_PREFIX" default:"cosmos"`
	// E2E_DELAY_PERIOD_NS sets the delay period stamped on generated messages
	DelayPeriodNs uint64 `envconfig:"E2E_DELAY_PERIOD_NS" default:"0"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	return cfg, err
}
