// Package connection holds the wire representation of the connection
// handshake messages (ibc.core.connection.v1). The types here mirror
// connection.proto field-for-field and carry no validation: they are the
// untyped side of the codec and accept whatever the wire delivers.
package connection

// RawMsgConnectionOpenInit is the wire form of the handshake INIT message.
type RawMsgConnectionOpenInit struct {
	ClientID     string
	Counterparty *RawCounterparty
	Version      *RawVersion
	DelayPeriod  uint64
	Signer       string
}

// RawCounterparty is the wire form of the counterparty descriptor.
type RawCounterparty struct {
	ClientID     string
	ConnectionID string
	Prefix       *RawMerklePrefix
}

// RawMerklePrefix carries the opaque commitment prefix bytes.
type RawMerklePrefix struct {
	KeyPrefix []byte
}

// RawVersion is the wire form of a proposed protocol version.
type RawVersion struct {
	Identifier string
	Features   []string
}
