// README: Trivia adapter tests.
package trivia

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/sirupsen/logrus"

	"activabot/internal/infra"
)

func testAPI() *infra.APIClient {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return infra.NewAPIClient("trivia-test", 2*time.Second, log)
}

func TestRandomJoke(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !r.URL.Query().Has("safe-mode") {
			t.Error("safe-mode must always be requested")
		}
		io.WriteString(w, `{"joke":"I would tell you a UDP joke, but you might not get it."}`)
	}))
	defer srv.Close()

	svc := NewService(testAPI())
	svc.jokeBaseURL = srv.URL

	got, err := svc.RandomJoke(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if got != "I would tell you a UDP joke, but you might not get it." {
		t.Fatalf("got %q", got)
	}
}

func TestFactSentences(t *testing.T) {
	var path string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		io.WriteString(w, `{"extract":"Austin is the capital of Texas. It is known for live music! Is it hot? Yes."}`)
	}))
	defer srv.Close()

	svc := NewService(testAPI())
	svc.wikiBaseURL = srv.URL

	got, err := svc.FactSentences(context.Background(), "austin texas")
	if err != nil {
		t.Fatal(err)
	}
	want := []string{
		"Austin is the capital of Texas.",
		"It is known for live music!",
		"Is it hot?",
		"Yes.",
	}
	if len(got) != len(want) {
		t.Fatalf("got %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("sentence %d = %q, want %q", i, got[i], want[i])
		}
	}
	if path != "/page/summary/austin_texas" {
		t.Errorf("path = %q", path)
	}
}

func TestFactSentencesEmptyTopic(t *testing.T) {
	svc := NewService(testAPI())
	got, err := svc.FactSentences(context.Background(), "  ")
	if err != nil || got != nil {
		t.Fatalf("got (%v, %v), want (nil, nil)", got, err)
	}
}
