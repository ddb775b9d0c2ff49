package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/xavierca1/ligue-voice/internal/config"
	"github.com/xavierca1/ligue-voice/internal/infra/http/handlers"
	"github.com/xavierca1/ligue-voice/internal/infra/http/middleware"
	"github.com/xavierca1/ligue-voice/internal/infra/integration/n8n"
	"github.com/xavierca1/ligue-voice/internal/infra/integration/vogent"
	"github.com/xavierca1/ligue-voice/internal/usecase"
)

func main() {
	godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	// 1. Integrações
	dialer := vogent.NewClient(
		cfg.VogentAPIURL,
		cfg.VogentAPIKey,
		cfg.VogentAgentID,
		cfg.VogentPhoneNumberID,
		cfg.VogentVoiceID,
	)
	forwarder := n8n.NewClient(cfg.N8NWebhookURL)

	// 2. UseCases
	initiateCallUC := usecase.NewInitiateCallUseCase(dialer)
	relayEventUC := usecase.NewRelayEventUseCase(forwarder)

	// 3. Handlers
	healthHandler := handlers.NewHealthHandler(cfg)
	callHandler := handlers.NewCallHandler(initiateCallUC)
	webhookHandler := handlers.NewWebhookHandler(cfg.VogentWebhookSecret, relayEventUC)

	// 4. Router
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.Logger)
	r.Use(middleware.Recover)
	r.Use(middleware.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
	}))

	r.Get("/", healthHandler.HandleRoot)
	r.Get("/health", healthHandler.Handle)
	r.Handle("/metrics", promhttp.Handler())
	r.Post("/outgoing-call", callHandler.Handle)
	r.Post("/vogent-webhook", webhookHandler.Handle)

	addr := fmt.Sprintf(":%d", cfg.Port)
	log.Printf("🔥 Vogent Integration Server rodando na porta %s", addr)
	if err := http.ListenAndServe(addr, r); err != nil {
		log.Fatal(err)
	}
}
