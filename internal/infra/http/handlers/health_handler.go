package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/xavierca1/ligue-voice/internal/config"
)

type HealthHandler struct {
	Config    *config.Config
	StartTime time.Time
}

type HealthResponse struct {
	Status       string            `json:"status"`
	Version      string            `json:"version"`
	Uptime       string            `json:"uptime"`
	Dependencies map[string]string `json:"dependencies"`
}

func NewHealthHandler(cfg *config.Config) *HealthHandler {
	return &HealthHandler{
		Config:    cfg,
		StartTime: time.Now(),
	}
}

// HandleRoot é o liveness check que o provedor usa para validar a URL.
func (h *HealthHandler) HandleRoot(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"message": "Vogent Integration Server is running!",
	})
}

func (h *HealthHandler) Handle(w http.ResponseWriter, r *http.Request) {
	deps := make(map[string]string)

	if h.Config.VogentAPIKey != "" {
		deps["vogent"] = "configured"
	} else {
		deps["vogent"] = "not configured"
	}

	if h.Config.N8NWebhookURL != "" {
		deps["n8n"] = "configured"
	} else {
		deps["n8n"] = "not configured"
	}

	// Sem N8N o relay continua de pé, mas os eventos de extração
	// não chegam a lugar nenhum
	status := "healthy"
	if h.Config.N8NWebhookURL == "" {
		status = "degraded"
	}

	response := HealthResponse{
		Status:       status,
		Version:      "1.0.0",
		Uptime:       time.Since(h.StartTime).Round(time.Second).String(),
		Dependencies: deps,
	}

	w.Header().Set("Content-Type", "application/json")
	if status == "degraded" {
		w.WriteHeader(http.StatusServiceUnavailable)
	} else {
		w.WriteHeader(http.StatusOK)
	}

	json.NewEncoder(w).Encode(response)
}
