package connection

import (
	"fmt"
	"math"
	"time"

	"github.com/samber/lo"

	"ibc-lab/auth"
	"ibc-lab/domain/host"
	pb "ibc-lab/proto/connection"
)

// TypeURL routes MsgConnectionOpenInit inside transaction envelopes.
const TypeURL = "/ibc.core.connection.v1.MsgConnectionOpenInit"

// MsgConnectionOpenInit is the validated form of the handshake INIT
// message, sent to chain A to open a connection towards chain B.
// Values only exist fully validated: every field has passed its grammar
// at decode time, so downstream handlers never re-check them.
type MsgConnectionOpenInit struct {
	// ClientIDOnA names the light client of chain B hosted on chain A.
	ClientIDOnA  host.ClientID
	Counterparty Counterparty
	// Version is nil when any supported version is acceptable.
	Version     *Version
	DelayPeriod time.Duration
	Signer      auth.Signer
}

// Type returns the envelope routing identity of the message.
func (MsgConnectionOpenInit) Type() string { return TypeURL }

// DecodeMsgConnectionOpenInit validates a wire INIT message into its
// domain form. Each field is validated independently; the first failure is
// returned and no partially built message escapes.
func DecodeMsgConnectionOpenInit(raw *pb.RawMsgConnectionOpenInit) (MsgConnectionOpenInit, error) {
	clientID, err := host.ParseClientID(raw.ClientID)
	if err != nil {
		return MsgConnectionOpenInit{}, fmt.Errorf("%w: %v", ErrInvalidIdentifier, err)
	}

	if raw.Counterparty == nil {
		return MsgConnectionOpenInit{}, ErrMissingCounterparty
	}
	counterparty, err := DecodeCounterparty(raw.Counterparty)
	if err != nil {
		return MsgConnectionOpenInit{}, fmt.Errorf("%w: %v", ErrInvalidCounterparty, err)
	}

	var version *Version
	if raw.Version != nil {
		decoded, err := DecodeVersion(raw.Version)
		if err != nil {
			return MsgConnectionOpenInit{}, fmt.Errorf("%w: %v", ErrInvalidVersion, err)
		}
		version = lo.ToPtr(decoded)
	}

	// time.Duration is int64-based, so the upper half of the unsigned wire
	// range would wrap to a negative duration.
	if raw.DelayPeriod > math.MaxInt64 {
		return MsgConnectionOpenInit{}, fmt.Errorf(
			"%w: %d nanoseconds overflows a duration", ErrInvalidDelayPeriod, raw.DelayPeriod)
	}

	signer, err := auth.ParseSigner(raw.Signer)
	if err != nil {
		return MsgConnectionOpenInit{}, fmt.Errorf("%w: %v", ErrInvalidSigner, err)
	}

	return MsgConnectionOpenInit{
		ClientIDOnA:  clientID,
		Counterparty: counterparty,
		Version:      version,
		DelayPeriod:  time.Duration(raw.DelayPeriod),
		Signer:       signer,
	}, nil
}

// ToRaw renders the message back to wire form. The counterparty connection
// id is always cleared: an INIT message advertises a connection that is not
// yet paired, so no counterparty connection can exist for it.
func (m MsgConnectionOpenInit) ToRaw() *pb.RawMsgConnectionOpenInit {
	counterparty := m.Counterparty.ToRaw()
	counterparty.ConnectionID = ""

	var version *pb.RawVersion
	if m.Version != nil {
		version = m.Version.ToRaw()
	}

	return &pb.RawMsgConnectionOpenInit{
		ClientID:     m.ClientIDOnA.String(),
		Counterparty: counterparty,
		Version:      version,
		DelayPeriod:  uint64(m.DelayPeriod),
		Signer:       m.Signer.String(),
	}
}
