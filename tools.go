//go:build tools

// Pins go-run tooling (mockgen, used by `go generate` in contract/) in
// go.mod so a fresh checkout can regenerate mocks without extra installs.
package ibc_lab

import (
	_ "go.uber.org/mock/mockgen"
)
