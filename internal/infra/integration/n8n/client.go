package n8n

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net"
	"net/http"
	"time"

	"github.com/xavierca1/ligue-voice/internal/entity"
	"github.com/xavierca1/ligue-voice/internal/infra/http/middleware"
)

type Client struct {
	webhookURL string
	http       *http.Client
}

func NewClient(webhookURL string) *Client {
	return &Client{
		webhookURL: webhookURL,
		http: &http.Client{
			// 30s total / 10s de connect
			Timeout: 30 * time.Second,
			Transport: &http.Transport{
				DialContext: (&net.Dialer{Timeout: 10 * time.Second}).DialContext,
			},
		},
	}
}

// Forward envia o payload simplificado para o webhook do N8N. Nunca retorna
// erro: qualquer falha vira uma string JSON {"error": ...} para o chamador
// logar. Sucesso devolve o corpo da resposta sem nenhum corte.
func (c *Client) Forward(ctx context.Context, payload entity.RelayPayload) string {
	if c.webhookURL == "" {
		log.Println("❌ N8N: N8N_WEBHOOK_URL não configurada")
		return errorJSON("N8N_WEBHOOK_URL not configured")
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return errorJSON("failed to encode payload: " + err.Error())
	}

	log.Printf("Enviando para o webhook N8N: %s", c.webhookURL)
	log.Printf("Payload: %s", string(body))

	req, err := http.NewRequestWithContext(ctx, "POST", c.webhookURL, bytes.NewReader(body))
	if err != nil {
		return errorJSON("failed to build request: " + err.Error())
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		middleware.RecordIntegrationError("n8n")
		var netErr net.Error
		msg := "Request error sending data to N8N webhook: " + err.Error()
		if errors.As(err, &netErr) && netErr.Timeout() {
			msg = "Timeout sending data to N8N webhook: " + err.Error()
		}
		log.Printf("❌ %s", msg)
		return errorJSON(msg)
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)
	respText := string(respBody)

	if resp.StatusCode != http.StatusOK {
		middleware.RecordIntegrationError("n8n")
		log.Printf("⚠️ N8N retornou status %d", resp.StatusCode)
		log.Printf("Response: %s", respText)
		return errorJSON(fmt.Sprintf("N8N webhook returned status %d", resp.StatusCode))
	}

	// Trunca só no log; o retorno vai inteiro
	if len(respText) > 500 {
		log.Printf("N8N response (truncated): %s... [truncated]", respText[:500])
	} else {
		log.Printf("N8N response: %s", respText)
	}

	return respText
}

func errorJSON(msg string) string {
	out, _ := json.Marshal(map[string]string{"error": msg})
	return string(out)
}
