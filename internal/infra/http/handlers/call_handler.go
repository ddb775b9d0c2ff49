package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/xavierca1/ligue-voice/internal/infra/http/middleware"
	"github.com/xavierca1/ligue-voice/internal/usecase"
)

type CallHandler struct {
	InitiateCallUC *usecase.InitiateCallUseCase
}

func NewCallHandler(uc *usecase.InitiateCallUseCase) *CallHandler {
	return &CallHandler{InitiateCallUC: uc}
}

type initiateCallResponse struct {
	Success bool   `json:"success"`
	CallID  string `json:"callId"`
}

type degradedCallResponse struct {
	LeadID  string `json:"leadId"`
	BatchID string `json:"batchId"`
}

// Handle trata POST /outgoing-call. Erros de validação voltam como
// {"error": ...} com status 200, contrato que o chamador upstream espera.
func (h *CallHandler) Handle(w http.ResponseWriter, r *http.Request) {
	var input usecase.InitiateCallInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusOK, "invalid JSON body: "+err.Error())
		return
	}

	output, err := h.InitiateCallUC.Execute(r.Context(), input)
	if err != nil {
		// Erros de domínio (validação) são esperados; o resto merece log
		if !usecase.IsDomainError(err) {
			log.Printf("❌ Erro inesperado ao iniciar chamada: %v", err)
		}
		writeError(w, http.StatusOK, err.Error())
		return
	}

	if output.Degraded {
		// Falha na Vogent vira 200 só com os ids: o chamador upstream
		// não pode quebrar por instabilidade do provedor.
		middleware.RecordDial("degraded")
		writeJSON(w, http.StatusOK, degradedCallResponse{
			LeadID:  output.LeadID,
			BatchID: output.BatchID,
		})
		return
	}

	middleware.RecordDial("success")
	writeJSON(w, http.StatusOK, initiateCallResponse{
		Success: true,
		CallID:  output.CallID,
	})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
