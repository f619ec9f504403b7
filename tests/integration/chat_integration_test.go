// README: End-to-end chat API test against a running server.
package integration

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"os"
	"strings"
	"testing"
	"time"
)

// TestChatEndpoint drives the full request path of a running server: health
// check, a greeting round-trip, and input validation. It skips unless
// ACTIVABOT_API_BASE_URL points at a live instance.
func TestChatEndpoint(t *testing.T) {
	baseURL := strings.TrimRight(os.Getenv("ACTIVABOT_API_BASE_URL"), "/")
	if baseURL == "" {
		t.Skip("ACTIVABOT_API_BASE_URL not set; skipping live API tests")
	}

	client := &http.Client{Timeout: 30 * time.Second}
	waitForAPIReady(t, client, baseURL)

	status, body := postChat(t, client, baseURL, `{"message":"hello"}`)
	if status != http.StatusOK {
		t.Fatalf("chat: expected 200, got %d, body=%s", status, string(body))
	}
	var resp struct {
		Reply string `json:"reply"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		t.Fatalf("unmarshal reply: %v, raw=%s", err, string(body))
	}
	if strings.TrimSpace(resp.Reply) == "" {
		t.Fatalf("expected non-empty reply, raw=%s", string(body))
	}

	status, body = postChat(t, client, baseURL, `{"message":""}`)
	if status != http.StatusBadRequest {
		t.Fatalf("empty message: expected 400, got %d, body=%s", status, string(body))
	}

	status, body = postChat(t, client, baseURL, `not json`)
	if status != http.StatusBadRequest {
		t.Fatalf("invalid json: expected 400, got %d, body=%s", status, string(body))
	}
}

func postChat(t *testing.T, client *http.Client, baseURL, payload string) (int, []byte) {
	t.Helper()

	req, err := http.NewRequest(http.MethodPost, baseURL+"/api/chat", bytes.NewReader([]byte(payload)))
	if err != nil {
		t.Fatalf("build request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		t.Fatalf("call /api/chat: %v", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read response: %v", err)
	}
	return resp.StatusCode, body
}

func waitForAPIReady(t *testing.T, client *http.Client, baseURL string) {
	t.Helper()

	deadline := time.Now().Add(20 * time.Second)
	for time.Now().Before(deadline) {
		req, err := http.NewRequest(http.MethodGet, baseURL+"/health", nil)
		if err == nil {
			resp, err := client.Do(req)
			if err == nil {
				_ = resp.Body.Close()
				if resp.StatusCode == http.StatusOK {
					return
				}
			}
		}
		time.Sleep(500 * time.Millisecond)
	}
	t.Fatalf("api not ready: GET %s/health did not return 200 in time", baseURL)
}
