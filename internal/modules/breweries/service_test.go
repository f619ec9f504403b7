// README: Open Brewery DB adapter tests.
package breweries

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
	return infra.NewAPIClient("breweries-test", 2*time.Second, log)
}

func TestSearch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("by_city"); got != "austin" {
			t.Errorf("by_city = %q", got)
		}
		io.WriteString(w, `[
			{"name":"Hop House","address_1":"500 Brew St"},
			{"name":"No Address Brewing","address_1":""},
			{"name":"","address_1":"1 Ghost Rd"}
		]`)
	}))
	defer srv.Close()

	svc := NewService(testAPI())
	svc.baseURL = srv.URL

	got, err := svc.Search(context.Background(), "austin")
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 {
		t.Fatalf("got %+v, want incomplete records dropped", got)
	}
	if got[0].Name != "Hop House" || got[0].Address != "500 Brew St" {
		t.Fatalf("got %+v", got[0])
	}
}
