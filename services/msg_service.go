package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"ibc-lab/codec"
	"ibc-lab/contract"
	"ibc-lab/domain/connection"
	"ibc-lab/domain/host"
	"ibc-lab/errors"
)

type IMsgService interface {
	Submit(ctx context.Context, typeURL string, bin []byte) (host.ConnectionID, error)
}

// MsgService is the entry point for transaction-envelope payloads: it
// selects the codec for the envelope's type url, decodes the payload and
// hands the validated message to the handshake processor. Decode failures
// are returned untouched so the caller can reject the whole transaction.
type MsgService struct {
	log       *slog.Logger
	registry  *codec.Registry
	processor contract.IHandshakeProcessor
}

func NewMsgService(log *slog.Logger, registry *codec.Registry,
	processor contract.IHandshakeProcessor) IMsgService {
	return &MsgService{log: log, registry: registry, processor: processor}
}

func (s *MsgService) Submit(ctx context.Context, typeURL string, bin []byte) (host.ConnectionID, error) {
	// Correlates every log line of one envelope across the pipeline.
	envelopeID := uuid.NewString()

	if len(bin) == 0 {
		return "", errors.ErrEmptyEnvelope
	}

	// 1. Select the codec for this message kind.
	c, err := s.registry.Lookup(typeURL)
	if err != nil {
		return "", err
	}

	// 2. Decode and validate; nothing is logged about the payload itself
	// before it has passed validation.
	msg, err := c.Decode(bin)
	if err != nil {
		s.log.Warn("rejected envelope",
			"envelope_id", envelopeID,
			"type_url", typeURL,
			"error", err)
		return "", err
	}

	// 3. Dispatch to the handler owning this message kind.
	switch m := msg.(type) {
	case connection.MsgConnectionOpenInit:
		connectionID, err := s.processor.OpenInit(ctx, m)
		if err != nil {
			return "", fmt.Errorf("open init: %w", err)
		}
		s.log.Info("connection handshake initiated",
			"envelope_id", envelopeID,
			"client_id", m.ClientIDOnA,
			"connection_id", connectionID)
		return connectionID, nil
	default:
		return "", fmt.Errorf("%w: no handler for %s", errors.ErrUnregisteredTypeURL, msg.Type())
	}
}
