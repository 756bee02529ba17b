package errors

import "fmt"

var (
	ErrUnregisteredTypeURL = fmt.Errorf("no codec registered for type url")
	ErrDuplicateTypeURL    = fmt.Errorf("type url already registered")
	ErrEmptyEnvelope       = fmt.Errorf("envelope carries no payload")
)
