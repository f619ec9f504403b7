// README: Ticketmaster Discovery adapter.
package events

import (
	"context"
	"net/url"
	"strconv"

	"activabot/internal/infra"
)

const defaultBaseURL = "https://app.ticketmaster.com/discovery/v2"

// Event is one upcoming event in upstream relevance order.
type Event struct {
	Name string
	Date string
	URL  string
}

// Service queries the Ticketmaster Discovery API.
type Service struct {
	api     *infra.APIClient
	apiKey  string
	baseURL string
	size    int
}

func NewService(apiKey string, api *infra.APIClient) *Service {
	return &Service{api: api, apiKey: apiKey, baseURL: defaultBaseURL, size: 12}
}

type eventsResponse struct {
	Embedded struct {
		Events []struct {
			Name  string `json:"name"`
			URL   string `json:"url"`
			Dates struct {
				Start struct {
					LocalDate string `json:"localDate"`
				} `json:"start"`
			} `json:"dates"`
		} `json:"events"`
	} `json:"_embedded"`
}

// Search returns upcoming events in the given city. Upstream failures
// degrade to an empty list plus the error for the caller's logging.
func (s *Service) Search(ctx context.Context, city string) ([]Event, error) {
	q := url.Values{}
	q.Set("apikey", s.apiKey)
	q.Set("city", city)
	q.Set("size", strconv.Itoa(s.size))

	var resp eventsResponse
	if err := s.api.GetJSON(ctx, s.baseURL+"/events.json", q, &resp); err != nil {
		return nil, err
	}

	var out []Event
	for _, e := range resp.Embedded.Events {
		if e.Name == "" || e.URL == "" {
			continue
		}
		out = append(out, Event{Name: e.Name, Date: e.Dates.Start.LocalDate, URL: e.URL})
	}
	return out, nil
}
