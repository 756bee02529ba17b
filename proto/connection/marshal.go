package connection

import (
	"google.golang.org/protobuf/encoding/protowire"
)

// Field numbers from connection.proto. Kept explicit so marshal and
// unmarshal cannot drift apart silently.
const (
	msgFieldClientID     = 1
	msgFieldCounterparty = 2
	msgFieldVersion      = 3
	msgFieldDelayPeriod  = 4
	msgFieldSigner       = 5

	cptyFieldClientID     = 1
	cptyFieldConnectionID = 2
	cptyFieldPrefix       = 3

	prefixFieldKeyPrefix = 1

	versionFieldIdentifier = 1
	versionFieldFeatures   = 2
)

// Marshal renders the message as canonical proto3 bytes.
// Zero-valued scalar fields are omitted, absent sub-messages stay absent.
func (m *RawMsgConnectionOpenInit) Marshal() []byte {
	var b []byte
	if m.ClientID != "" {
		b = protowire.AppendTag(b, msgFieldClientID, protowire.BytesType)
		b = protowire.AppendString(b, m.ClientID)
	}
	if m.Counterparty != nil {
		b = protowire.AppendTag(b, msgFieldCounterparty, protowire.BytesType)
		b = protowire.AppendBytes(b, m.Counterparty.Marshal())
	}
	if m.Version != nil {
		b = protowire.AppendTag(b, msgFieldVersion, protowire.BytesType)
		b = protowire.AppendBytes(b, m.Version.Marshal())
	}
	if m.DelayPeriod != 0 {
		b = protowire.AppendTag(b, msgFieldDelayPeriod, protowire.VarintType)
		b = protowire.AppendVarint(b, m.DelayPeriod)
	}
	if m.Signer != "" {
		b = protowire.AppendTag(b, msgFieldSigner, protowire.BytesType)
		b = protowire.AppendString(b, m.Signer)
	}
	return b
}

func (c *RawCounterparty) Marshal() []byte {
	var b []byte
	if c.ClientID != "" {
		b = protowire.AppendTag(b, cptyFieldClientID, protowire.BytesType)
		b = protowire.AppendString(b, c.ClientID)
	}
	if c.ConnectionID != "" {
		b = protowire.AppendTag(b, cptyFieldConnectionID, protowire.BytesType)
		b = protowire.AppendString(b, c.ConnectionID)
	}
	if c.Prefix != nil {
		b = protowire.AppendTag(b, cptyFieldPrefix, protowire.BytesType)
		b = protowire.AppendBytes(b, c.Prefix.Marshal())
	}
	return b
}

func (p *RawMerklePrefix) Marshal() []byte {
	var b []byte
	if len(p.KeyPrefix) > 0 {
		b = protowire.AppendTag(b, prefixFieldKeyPrefix, protowire.BytesType)
		b = protowire.AppendBytes(b, p.KeyPrefix)
	}
	return b
}

func (v *RawVersion) Marshal() []byte {
	var b []byte
	if v.Identifier != "" {
		b = protowire.AppendTag(b, versionFieldIdentifier, protowire.BytesType)
		b = protowire.AppendString(b, v.Identifier)
	}
	for _, feature := range v.Features {
		b = protowire.AppendTag(b, versionFieldFeatures, protowire.BytesType)
		b = protowire.AppendString(b, feature)
	}
	return b
}
