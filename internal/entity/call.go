package entity

import "encoding/json"

// WebhookEvent é o envelope que a Vogent envia nos callbacks de chamada.
// O metadata fica no nível superior do envelope, NÃO dentro do payload.
type WebhookEvent struct {
	Event    string          `json:"event"`
	Payload  WebhookPayload  `json:"payload"`
	Metadata WebhookMetadata `json:"metadata"`
}

type WebhookPayload struct {
	DialID   *string         `json:"dial_id"`
	AIResult json.RawMessage `json:"ai_result"`
}

type WebhookMetadata struct {
	LeadID  *string `json:"leadId"`
	BatchID *string `json:"batchId"`
}

// RelayPayload é o único dado repassado para o webhook do N8N:
// o resultado da extração serializado + os ids de correlação.
// Ids ausentes no evento seguem como null no JSON, não como "".
type RelayPayload struct {
	Data    string  `json:"data"`
	LeadID  *string `json:"leadId"`
	BatchID *string `json:"batchId"`
	DialID  *string `json:"dialId"`
}
