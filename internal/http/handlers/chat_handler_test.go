// README: Chat handler tests.
package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"activabot/internal/bot"
	"activabot/internal/personality"
)

func testRouter() http.Handler {
	log := logrus.New()
	log.SetOutput(io.Discard)

	pack := &personality.Pack{
		BotName:          "Activabot",
		GreetingKeywords: []string{"hi"},
		Greetings:        []string{"Hello from {bot_name}!"},
	}
	// No adapters are wired; the greeting path never reaches one.
	botSvc := bot.NewService(pack, bot.Deps{}, nil, time.Second, log)

	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewChatHandler(botSvc)
	r.POST("/api/chat", h.Chat)
	return r
}

func postChat(t *testing.T, router http.Handler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/chat", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestChat(t *testing.T) {
	rec := postChat(t, testRouter(), `{"message":"hi"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Reply string `json:"reply"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Reply != "Hello from Activabot!" {
		t.Fatalf("reply = %q", resp.Reply)
	}
}

func TestChatRejectsBadInput(t *testing.T) {
	router := testRouter()

	cases := []struct {
		name string
		body string
	}{
		{"invalid json", `{`},
		{"missing message", `{}`},
		{"blank message", `{"message":"   "}`},
		{"oversized message", `{"message":"` + strings.Repeat("a", maxMessageLen+1) + `"}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if rec := postChat(t, router, tc.body); rec.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400", rec.Code)
			}
		})
	}
}
