package connection

import "fmt"

// Decode failure kinds. Each carries its cause in the wrapped message, so
// callers match the kind with errors.Is and still see the grammar violation.
var (
	ErrInvalidIdentifier   = fmt.Errorf("invalid identifier")
	ErrMissingCounterparty = fmt.Errorf("missing counterparty")
	ErrInvalidCounterparty = fmt.Errorf("invalid counterparty")
	ErrInvalidVersion      = fmt.Errorf("invalid version")
	ErrInvalidDelayPeriod  = fmt.Errorf("invalid delay period")
	ErrInvalidSigner       = fmt.Errorf("invalid signer")

	ErrEmptyPrefix            = fmt.Errorf("empty commitment prefix")
	ErrEmptyVersionIdentifier = fmt.Errorf("empty version identifier")
	ErrEmptyVersionFeature    = fmt.Errorf("empty version feature")
)
