package n8n

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xavierca1/ligue-voice/internal/entity"
)

func ptr(s string) *string { return &s }

var samplePayload = entity.RelayPayload{
	Data:    `{"x":1}`,
	LeadID:  ptr("L1"),
	BatchID: ptr("B1"),
	DialID:  ptr("D1"),
}

func TestForward_NotConfigured(t *testing.T) {
	client := NewClient("")

	response := client.Forward(context.Background(), samplePayload)

	var parsed map[string]string
	require.NoError(t, json.Unmarshal([]byte(response), &parsed))
	assert.Equal(t, "N8N_WEBHOOK_URL not configured", parsed["error"])
}

func TestForward_Success(t *testing.T) {
	var captured entity.RelayPayload
	var contentType string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		contentType = r.Header.Get("Content-Type")
		body, _ := io.ReadAll(r.Body)
		json.Unmarshal(body, &captured)
		w.Write([]byte(`{"received":true}`))
	}))
	defer server.Close()

	response := NewClient(server.URL).Forward(context.Background(), samplePayload)

	assert.Equal(t, `{"received":true}`, response)
	assert.Equal(t, "application/json", contentType)
	assert.Equal(t, samplePayload, captured)
}

// Ids ausentes seguem como null no JSON, não como string vazia.
func TestForward_AbsentIDsSerializeAsNull(t *testing.T) {
	var rawBody []byte
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rawBody, _ = io.ReadAll(r.Body)
		w.Write([]byte(`ok`))
	}))
	defer server.Close()

	NewClient(server.URL).Forward(context.Background(), entity.RelayPayload{
		Data:   `{}`,
		DialID: ptr("D1"),
	})

	assert.Contains(t, string(rawBody), `"leadId":null`)
	assert.Contains(t, string(rawBody), `"batchId":null`)
	assert.Contains(t, string(rawBody), `"dialId":"D1"`)
}

// A resposta volta inteira mesmo acima de 500 caracteres; o corte é só no log.
func TestForward_LongResponseNotTruncated(t *testing.T) {
	long := strings.Repeat("a", 2000)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(long))
	}))
	defer server.Close()

	response := NewClient(server.URL).Forward(context.Background(), samplePayload)
	assert.Equal(t, long, response)
}

func TestForward_Non200(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	response := NewClient(server.URL).Forward(context.Background(), samplePayload)

	var parsed map[string]string
	require.NoError(t, json.Unmarshal([]byte(response), &parsed))
	assert.Equal(t, "N8N webhook returned status 502", parsed["error"])
}

func TestForward_TransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	response := NewClient(server.URL).Forward(context.Background(), samplePayload)

	var parsed map[string]string
	require.NoError(t, json.Unmarshal([]byte(response), &parsed))
	assert.Contains(t, parsed["error"], "N8N webhook")
}
