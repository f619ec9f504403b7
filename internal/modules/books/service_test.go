// README: Book aggregation tests against stub upstreams.
package books

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
	return infra.NewAPIClient("books-test", 2*time.Second, log)
}

func TestSearchConcatenatesGoogleFirst(t *testing.T) {
	google := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("q"); got != "subject:science" {
			t.Errorf("google q = %q", got)
		}
		io.WriteString(w, `{"items":[{"volumeInfo":{"title":"Cosmos","authors":["Carl Sagan"],"infoLink":"https://books.example/cosmos"}}]}`)
	}))
	defer google.Close()

	openLib := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("subject"); got != "science" {
			t.Errorf("open library subject = %q", got)
		}
		io.WriteString(w, `{"docs":[{"title":"A Brief History of Time","author_name":["Stephen Hawking"],"first_publish_year":1988,"key":"/works/OL1W"}]}`)
	}))
	defer openLib.Close()

	svc := NewService(testAPI())
	svc.googleBaseURL = google.URL
	svc.openLibBaseURL = openLib.URL

	got, err := svc.Search(context.Background(), Query{Value: "science"})
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if got[0].Source != "Google Books" || got[0].Title != "Cosmos" {
		t.Errorf("first = %+v, want the Google Books hit", got[0])
	}
	if got[1].Source != "Open Library" || got[1].Year != "1988" {
		t.Errorf("second = %+v, want the Open Library hit", got[1])
	}
	if got[1].URL != openLib.URL+"/works/OL1W" {
		t.Errorf("open library url = %q", got[1].URL)
	}
}

func TestSearchAuthorMode(t *testing.T) {
	google := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("q"); got != "inauthor:stephen king" {
			t.Errorf("google q = %q", got)
		}
		io.WriteString(w, `{"items":[]}`)
	}))
	defer google.Close()

	openLib := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("author"); got != "stephen king" {
			t.Errorf("open library author = %q", got)
		}
		io.WriteString(w, `{"docs":[]}`)
	}))
	defer openLib.Close()

	svc := NewService(testAPI())
	svc.googleBaseURL = google.URL
	svc.openLibBaseURL = openLib.URL

	if _, err := svc.Search(context.Background(), Query{Value: "stephen king", Author: true}); err != nil {
		t.Fatal(err)
	}
}

func TestSearchFailedSourceContributesNothing(t *testing.T) {
	google := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer google.Close()

	openLib := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{"docs":[{"title":"Dune","author_name":["Frank Herbert"],"first_publish_year":1965}]}`)
	}))
	defer openLib.Close()

	svc := NewService(testAPI())
	svc.googleBaseURL = google.URL
	svc.openLibBaseURL = openLib.URL

	got, err := svc.Search(context.Background(), Query{Value: "sand"})
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got[0].Title != "Dune" {
		t.Fatalf("got %+v, want only the Open Library hit", got)
	}
}
