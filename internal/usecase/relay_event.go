package usecase

import (
	"context"
	"log"

	"github.com/xavierca1/ligue-voice/internal/entity"
)

// ExtractorEvent é o único tipo de evento que dispara o repasse ao N8N:
// carrega o resultado estruturado extraído pela IA ao fim da ligação.
const ExtractorEvent = "dial.extractor"

type RelayEventUseCase struct {
	Forwarder WebhookForwarder
}

func NewRelayEventUseCase(forwarder WebhookForwarder) *RelayEventUseCase {
	return &RelayEventUseCase{Forwarder: forwarder}
}

// Execute filtra o evento e repassa só o dial.extractor. Falha no repasse
// não sobe: a Vogent sempre recebe {"success": true} (não é problema dela).
func (uc *RelayEventUseCase) Execute(ctx context.Context, event entity.WebhookEvent) {
	leadID := event.Metadata.LeadID
	batchID := event.Metadata.BatchID

	if strVal(leadID) != "" || strVal(batchID) != "" {
		log.Printf("🎯 Metadata no webhook - leadId: %s, batchId: %s", strVal(leadID), strVal(batchID))
	}

	if event.Event != ExtractorEvent {
		log.Printf("📌 Evento %s do dial %s - só registrado, sem repasse", event.Event, strVal(event.Payload.DialID))
		return
	}

	log.Printf("🤖 Extração de IA recebida para o dial %s", strVal(event.Payload.DialID))

	data := "{}"
	if len(event.Payload.AIResult) > 0 {
		data = string(event.Payload.AIResult)
	}

	response := uc.Forwarder.Forward(ctx, entity.RelayPayload{
		Data:    data,
		LeadID:  leadID,
		BatchID: batchID,
		DialID:  event.Payload.DialID,
	})
	log.Printf("   N8N response: %s", response)
}

func strVal(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
