package connection

import (
	"math"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"ibc-lab/auth"
	pb "ibc-lab/proto/connection"
)

// Wire fixtures shared by the decode tests. They model the smallest
// well-formed INIT message a relayer would submit.

func dummyRawCounterparty(connectionID string) *pb.RawCounterparty {
	return &pb.RawCounterparty{
		ClientID:     "07-tendermint-0",
		ConnectionID: connectionID,
		Prefix:       &pb.RawMerklePrefix{KeyPrefix: []byte("ibc")},
	}
}

func dummyBech32Account(t *testing.T) string {
	t.Helper()
	signer, err := auth.AccountAddress("cosmos", []byte("conn-open-init-test-key"))
	require.NoError(t, err)
	return signer.String()
}

func dummyRawMsgConnOpenInit(t *testing.T) *pb.RawMsgConnectionOpenInit {
	t.Helper()
	return &pb.RawMsgConnectionOpenInit{
		ClientID:     "07-tendermint-0",
		Counterparty: dummyRawCounterparty(""),
		Version:      DefaultVersion().ToRaw(),
		DelayPeriod:  0,
		Signer:       dummyBech32Account(t),
	}
}

func TestDecodeMsgConnectionOpenInit(t *testing.T) {
	tests := []struct {
		description string
		modify      func(raw *pb.RawMsgConnectionOpenInit)
		wantErr     error
	}{
		{
			"Should succeed with good parameters",
			func(raw *pb.RawMsgConnectionOpenInit) {},
			nil,
		},
		{
			"Should succeed with a counterparty connection id",
			func(raw *pb.RawMsgConnectionOpenInit) {
				raw.Counterparty = dummyRawCounterparty("connection-5")
			},
			nil,
		},
		{
			"Should succeed without a version",
			func(raw *pb.RawMsgConnectionOpenInit) { raw.Version = nil },
			nil,
		},
		{
			"Should succeed with a non-zero delay period",
			func(raw *pb.RawMsgConnectionOpenInit) { raw.DelayPeriod = 5_000_000_000 },
			nil,
		},
		{
			"Should succeed at the delay period upper bound",
			func(raw *pb.RawMsgConnectionOpenInit) { raw.DelayPeriod = math.MaxInt64 },
			nil,
		},
		{
			"Should fail if the delay period overflows a duration",
			func(raw *pb.RawMsgConnectionOpenInit) { raw.DelayPeriod = math.MaxUint64 },
			ErrInvalidDelayPeriod,
		},
		{
			"Should fail if the client id is too short",
			func(raw *pb.RawMsgConnectionOpenInit) { raw.ClientID = "client" },
			ErrInvalidIdentifier,
		},
		{
			"Should fail if the counterparty is absent",
			func(raw *pb.RawMsgConnectionOpenInit) { raw.Counterparty = nil },
			ErrMissingCounterparty,
		},
		{
			"Should fail if the counterparty connection id is too long",
			func(raw *pb.RawMsgConnectionOpenInit) {
				raw.Counterparty = dummyRawCounterparty(strings.Repeat("x", 65))
			},
			ErrInvalidCounterparty,
		},
		{
			"Should fail if the commitment prefix is empty",
			func(raw *pb.RawMsgConnectionOpenInit) {
				raw.Counterparty.Prefix = &pb.RawMerklePrefix{}
			},
			ErrInvalidCounterparty,
		},
		{
			"Should fail if the version identifier is blank",
			func(raw *pb.RawMsgConnectionOpenInit) {
				raw.Version = &pb.RawVersion{Identifier: "  "}
			},
			ErrInvalidVersion,
		},
		{
			"Should fail if a version feature is blank",
			func(raw *pb.RawMsgConnectionOpenInit) {
				raw.Version = &pb.RawVersion{Identifier: "1", Features: []string{"ORDER_ORDERED", ""}}
			},
			ErrInvalidVersion,
		},
		{
			"Should fail if the signer is not bech32",
			func(raw *pb.RawMsgConnectionOpenInit) { raw.Signer = "not-an-account" },
			ErrInvalidSigner,
		},
	}

	for _, tt := range tests {
		t.Run(tt.description, func(t *testing.T) {
			req := require.New(t)
			raw := dummyRawMsgConnOpenInit(t)
			tt.modify(raw)

			msg, err := DecodeMsgConnectionOpenInit(raw)
			if tt.wantErr != nil {
				req.ErrorIs(err, tt.wantErr)
				return
			}
			req.NoError(err)
			req.Equal(raw.ClientID, msg.ClientIDOnA.String())
			req.Equal(raw.Signer, msg.Signer.String())
			req.Equal(time.Duration(raw.DelayPeriod), msg.DelayPeriod)
			req.GreaterOrEqual(msg.DelayPeriod, time.Duration(0))
		})
	}
}

func TestMsgConnectionOpenInit_RoundTrip(t *testing.T) {
	req := require.New(t)

	raw := dummyRawMsgConnOpenInit(t)
	raw.DelayPeriod = 10_000_000_000

	msg, err := DecodeMsgConnectionOpenInit(raw)
	req.NoError(err)
	req.Equal(10*time.Second, msg.DelayPeriod)

	back := msg.ToRaw()
	req.Equal(raw, back)

	// Re-decoding the re-encoded message is a fixed point.
	again, err := DecodeMsgConnectionOpenInit(back)
	req.NoError(err)
	req.Equal(msg, again)
}

func TestMsgConnectionOpenInit_EncodeClearsCounterpartyConnectionID(t *testing.T) {
	req := require.New(t)

	raw := dummyRawMsgConnOpenInit(t)
	raw.Counterparty = dummyRawCounterparty("connection-5")

	msg, err := DecodeMsgConnectionOpenInit(raw)
	req.NoError(err)
	req.Equal("connection-5", msg.Counterparty.ConnectionID.String())

	// INIT means not-yet-paired: the encoder drops the id even though the
	// domain value held one.
	back := msg.ToRaw()
	req.Empty(back.Counterparty.ConnectionID)
	req.Equal(raw.Counterparty.ClientID, back.Counterparty.ClientID)
	req.Equal(raw.Counterparty.Prefix, back.Counterparty.Prefix)

	// The cleared form is canonical: decoding it again is stable.
	normalized, err := DecodeMsgConnectionOpenInit(back)
	req.NoError(err)
	req.Empty(normalized.Counterparty.ConnectionID)
	req.Equal(normalized.ToRaw(), back)
}

func TestMsgConnectionOpenInit_VersionAbsencePreserved(t *testing.T) {
	req := require.New(t)

	raw := dummyRawMsgConnOpenInit(t)
	raw.Version = nil

	msg, err := DecodeMsgConnectionOpenInit(raw)
	req.NoError(err)
	req.Nil(msg.Version)
	req.Nil(msg.ToRaw().Version)
}

func TestMsgConnectionOpenInit_Type(t *testing.T) {
	require.Equal(t, "/ibc.core.connection.v1.MsgConnectionOpenInit", MsgConnectionOpenInit{}.Type())
}
