package connection

import (
	"fmt"

	"ibc-lab/domain/host"
	pb "ibc-lab/proto/connection"
)

// MerklePrefix is the opaque byte prefix under which the counterparty
// commits its state.
type MerklePrefix struct {
	KeyPrefix []byte
}

// Counterparty describes the remote chain's identifiers and commitment
// prefix as known locally.
type Counterparty struct {
	ClientID host.ClientID
	// ConnectionID is empty while the connection is not yet paired.
	ConnectionID host.ConnectionID
	Prefix       MerklePrefix
}

// DecodeCounterparty validates a wire counterparty into its domain form.
func DecodeCounterparty(raw *pb.RawCounterparty) (Counterparty, error) {
	clientID, err := host.ParseClientID(raw.ClientID)
	if err != nil {
		return Counterparty{}, fmt.Errorf("%w: %v", ErrInvalidIdentifier, err)
	}

	var connectionID host.ConnectionID
	if raw.ConnectionID != "" {
		connectionID, err = host.ParseConnectionID(raw.ConnectionID)
		if err != nil {
			return Counterparty{}, fmt.Errorf("%w: %v", ErrInvalidIdentifier, err)
		}
	}

	if raw.Prefix == nil || len(raw.Prefix.KeyPrefix) == 0 {
		return Counterparty{}, ErrEmptyPrefix
	}

	return Counterparty{
		ClientID:     clientID,
		ConnectionID: connectionID,
		Prefix:       MerklePrefix{KeyPrefix: append([]byte(nil), raw.Prefix.KeyPrefix...)},
	}, nil
}

// ToRaw renders the counterparty back to wire form.
func (c Counterparty) ToRaw() *pb.RawCounterparty {
	return &pb.RawCounterparty{
		ClientID:     c.ClientID.String(),
		ConnectionID: c.ConnectionID.String(),
		Prefix:       &pb.RawMerklePrefix{KeyPrefix: append([]byte(nil), c.Prefix.KeyPrefix...)},
	}
}
