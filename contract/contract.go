//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"context"

	"ibc-lab/domain/connection"
	"ibc-lab/domain/host"
)

// IHandshakeProcessor drives the connection handshake state machine.
// It only ever receives fully validated messages and must not re-validate
// them.
type IHandshakeProcessor interface {
	// OpenInit records a new connection end in INIT state and returns the
	// identifier assigned to it.
	OpenInit(ctx context.Context, msg connection.MsgConnectionOpenInit) (host.ConnectionID, error)
}
