package codec

import (
	"fmt"

	"ibc-lab/domain/connection"
	pb "ibc-lab/proto/connection"
)

// ConnectionOpenInitCodec translates MsgConnectionOpenInit between proto3
// envelope bytes and its validated domain form.
type ConnectionOpenInitCodec struct{}

func (ConnectionOpenInitCodec) TypeURL() string { return connection.TypeURL }

func (ConnectionOpenInitCodec) Decode(bin []byte) (Msg, error) {
	raw := new(pb.RawMsgConnectionOpenInit)
	if err := raw.Unmarshal(bin); err != nil {
		return nil, fmt.Errorf("unmarshal %s: %w", connection.TypeURL, err)
	}
	msg, err := connection.DecodeMsgConnectionOpenInit(raw)
	if err != nil {
		return nil, err
	}
	return msg, nil
}

func (ConnectionOpenInitCodec) Encode(msg Msg) ([]byte, error) {
	m, ok := msg.(connection.MsgConnectionOpenInit)
	if !ok {
		return nil, fmt.Errorf("expected %s, got %T", connection.TypeURL, msg)
	}
	return m.ToRaw().Marshal(), nil
}
