package vogent

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/xavierca1/ligue-voice/internal/infra/http/middleware"
)

var (
	ErrTimeout       = errors.New("vogent: timeout")
	ErrTransport     = errors.New("vogent: erro de rede")
	ErrMalformedBody = errors.New("vogent: resposta ilegível")
)

// APIError: a Vogent respondeu, mas com status fora de 2xx.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("vogent: status %d: %s", e.StatusCode, e.Body)
}

type Client struct {
	baseURL       string
	apiKey        string
	agentID       string
	phoneNumberID string
	voiceID       string
	http          *http.Client
}

func NewClient(baseURL, apiKey, agentID, phoneNumberID, voiceID string) *Client {
	return &Client{
		baseURL:       baseURL,
		apiKey:        apiKey,
		agentID:       agentID,
		phoneNumberID: phoneNumberID,
		voiceID:       voiceID,
		http: &http.Client{
			// 60s total / 15s de connect, igual ao resto das integrações
			Timeout: 60 * time.Second,
			Transport: &http.Transport{
				DialContext: (&net.Dialer{Timeout: 15 * time.Second}).DialContext,
			},
		},
	}
}

// CreateDial dispara a ligação no endpoint /api/dials da Vogent.
func (c *Client) CreateDial(ctx context.Context, input CreateDialInput) (*CreateDialOutput, error) {
	payload := createDialRequest{
		CallAgentID:    c.agentID,
		AIVoiceID:      c.voiceID,
		ToNumber:       input.ToNumber,
		FromNumberID:   c.phoneNumberID,
		BrowserCall:    false,
		TimeoutMinutes: 10,
	}

	if input.LeadID != "" || input.BatchID != "" {
		payload.CallAgentInput = &callAgentInput{
			LeadID:    input.LeadID,
			BatchID:   input.BatchID,
			ResumeURL: input.ResumeURL,
		}
		payload.Metadata = &dialMetadata{
			LeadID:  input.LeadID,
			BatchID: input.BatchID,
		}
	}

	jsonBody, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("erro ao marshal dial: %w", err)
	}

	url := fmt.Sprintf("%s/api/dials", c.baseURL)
	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(jsonBody))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		middleware.RecordIntegrationError("vogent")
		var netErr net.Error
		if errors.As(err, &netErr) && netErr.Timeout() {
			return nil, fmt.Errorf("%w: %v", ErrTimeout, err)
		}
		return nil, fmt.Errorf("%w: %v", ErrTransport, err)
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		middleware.RecordIntegrationError("vogent")
		return nil, &APIError{StatusCode: resp.StatusCode, Body: string(respBody)}
	}

	var out CreateDialOutput
	if err := json.Unmarshal(respBody, &out); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedBody, err)
	}

	return &out, nil
}
