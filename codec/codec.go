// Package codec routes transaction-envelope payloads to the message codec
// matching their type url and exposes the decode/encode pair for each
// message kind. Codecs are stateless and safe for concurrent use.
package codec

import (
	"fmt"
	"sync"

	"ibc-lab/errors"
)

// Msg is a decoded, fully validated domain message.
type Msg interface {
	// Type returns the envelope routing identity of the message.
	Type() string
}

// Codec translates one message kind between envelope bytes and its domain
// form. Decode performs full semantic validation; Encode is total for
// messages produced by the matching Decode.
type Codec interface {
	TypeURL() string
	Decode(bin []byte) (Msg, error)
	Encode(msg Msg) ([]byte, error)
}

// Registry is the dispatch table from type url to codec.
type Registry struct {
	mu     sync.RWMutex
	codecs map[string]Codec
}

func NewRegistry() *Registry {
	return &Registry{codecs: make(map[string]Codec)}
}

// Register adds a codec under its type url. Registering the same url twice
// is a wiring bug and is rejected.
func (r *Registry) Register(c Codec) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.codecs[c.TypeURL()]; ok {
		return fmt.Errorf("%w: %s", errors.ErrDuplicateTypeURL, c.TypeURL())
	}
	r.codecs[c.TypeURL()] = c
	return nil
}

// Lookup returns the codec registered under typeURL.
func (r *Registry) Lookup(typeURL string) (Codec, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.codecs[typeURL]
	if !ok {
		return nil, fmt.Errorf("%w: %s", errors.ErrUnregisteredTypeURL, typeURL)
	}
	return c, nil
}

// Decode dispatches bin to the codec registered under typeURL.
func (r *Registry) Decode(typeURL string, bin []byte) (Msg, error) {
	c, err := r.Lookup(typeURL)
	if err != nil {
		return nil, err
	}
	return c.Decode(bin)
}
