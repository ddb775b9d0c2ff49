package handlers

import (
	"encoding/json"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/xavierca1/ligue-voice/internal/entity"
	"github.com/xavierca1/ligue-voice/internal/infra/http/middleware"
	"github.com/xavierca1/ligue-voice/internal/infra/integration/vogent"
	"github.com/xavierca1/ligue-voice/internal/usecase"
)

const signatureHeader = "X-Elto-Signature"

type WebhookHandler struct {
	Secret  string
	RelayUC *usecase.RelayEventUseCase
}

func NewWebhookHandler(secret string, relayUC *usecase.RelayEventUseCase) *WebhookHandler {
	return &WebhookHandler{Secret: secret, RelayUC: relayUC}
}

// Handle trata POST /vogent-webhook. Ordem importa: corpo bruto → assinatura
// → só então JSON. A Vogent sempre recebe {"success": true} quando o evento
// foi aceito, mesmo que o repasse ao N8N tenha falhado.
func (h *WebhookHandler) Handle(w http.ResponseWriter, r *http.Request) {
	log.Println("===== 📥 VOGENT WEBHOOK RECEIVED =====")
	log.Printf("Timestamp: %s", time.Now().Format(time.RFC3339))

	rawBody, err := io.ReadAll(r.Body)
	if err != nil {
		writeError(w, http.StatusOK, "failed to read body: "+err.Error())
		return
	}

	signature := r.Header.Get(signatureHeader)
	if signature == "" {
		log.Printf("❌ Header %s ausente", signatureHeader)
		writeError(w, http.StatusUnauthorized, "Missing signature header")
		return
	}

	if !vogent.VerifySignature(rawBody, signature, h.Secret) {
		log.Println("❌ Assinatura de webhook inválida")
		writeError(w, http.StatusUnauthorized, "Invalid signature")
		return
	}

	log.Println("✅ Assinatura de webhook verificada")

	var event entity.WebhookEvent
	if err := json.Unmarshal(rawBody, &event); err != nil {
		writeError(w, http.StatusOK, "invalid JSON body: "+err.Error())
		return
	}

	log.Printf("Event type: %s", event.Event)
	middleware.RecordWebhookEvent(event.Event)

	h.RelayUC.Execute(r.Context(), event)

	log.Println("===== END WEBHOOK PROCESSING =====")
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}
