package config

import (
	"errors"
	"os"
	"strconv"
)

// Config carrega toda a configuração do processo uma única vez no boot.
// Nada de os.Getenv espalhado pelos handlers.
type Config struct {
	VogentAPIKey        string
	VogentAPIURL        string
	VogentAgentID       string
	VogentPhoneNumberID string
	VogentVoiceID       string
	VogentWebhookSecret string

	N8NWebhookURL string

	Port int
}

const defaultVogentAPIURL = "https://api.vogent.ai"

func Load() (*Config, error) {
	cfg := &Config{
		VogentAPIKey:        os.Getenv("VOGENT_API_KEY"),
		VogentAPIURL:        os.Getenv("VOGENT_API_URL"),
		VogentAgentID:       os.Getenv("VOGENT_AGENT_ID"),
		VogentPhoneNumberID: os.Getenv("VOGENT_PHONE_NUMBER_ID"),
		VogentVoiceID:       os.Getenv("VOGENT_VOICE_ID"),
		VogentWebhookSecret: os.Getenv("VOGENT_WEBHOOK_SECRET"),
		N8NWebhookURL:       os.Getenv("N8N_WEBHOOK_URL"),
		Port:                8000,
	}

	if cfg.VogentAPIURL == "" {
		cfg.VogentAPIURL = defaultVogentAPIURL
	}

	// Segredo de webhook sem default: um valor padrão compartilhado
	// seria o mesmo que não ter assinatura.
	if cfg.VogentWebhookSecret == "" {
		return nil, errors.New("VOGENT_WEBHOOK_SECRET é obrigatório")
	}

	if portStr := os.Getenv("PORT"); portStr != "" {
		port, err := strconv.Atoi(portStr)
		if err != nil {
			return nil, errors.New("PORT inválida: " + portStr)
		}
		cfg.Port = port
	}

	return cfg, nil
}
