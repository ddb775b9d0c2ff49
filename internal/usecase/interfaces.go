package usecase

import (
	"context"

	"github.com/xavierca1/ligue-voice/internal/entity"
	"github.com/xavierca1/ligue-voice/internal/infra/integration/vogent"
)

// VoiceDialer dispara uma ligação de voz no provedor externo.
type VoiceDialer interface {
	CreateDial(ctx context.Context, input vogent.CreateDialInput) (*vogent.CreateDialOutput, error)
}

// WebhookForwarder repassa o payload simplificado para o endpoint de
// automação. Nunca retorna erro: falha vira uma string JSON {"error": ...}.
type WebhookForwarder interface {
	Forward(ctx context.Context, payload entity.RelayPayload) string
}
