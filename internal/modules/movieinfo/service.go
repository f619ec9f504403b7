// README: OMDb adapter: single-movie detail lookup by title.
package movieinfo

import (
	"context"
	"errors"
	"net/url"

	"activabot/internal/infra"
)

const defaultBaseURL = "https://www.omdbapi.com/"

// ErrNotFound is returned when OMDb has no record for the title.
var ErrNotFound = errors.New("movie not found")

// Movie is the OMDb detail record for one title.
type Movie struct {
	Title      string `json:"Title"`
	Year       string `json:"Year"`
	Released   string `json:"Released"`
	Runtime    string `json:"Runtime"`
	Genre      string `json:"Genre"`
	Director   string `json:"Director"`
	Writer     string `json:"Writer"`
	Actors     string `json:"Actors"`
	Plot       string `json:"Plot"`
	Language   string `json:"Language"`
	Country    string `json:"Country"`
	Awards     string `json:"Awards"`
	BoxOffice  string `json:"BoxOffice"`
	Production string `json:"Production"`
	IMDBRating string `json:"imdbRating"`

	Response string `json:"Response"`
}

// Field is one labelled secondary metadata value.
type Field struct {
	Label string
	Value string
}

// SecondaryFields returns the decoration-candidate fields in their fixed scan
// order. Plot is deliberately absent; it is always part of the main response.
func (m *Movie) SecondaryFields() []Field {
	return []Field{
		{"Awards", m.Awards},
		{"BoxOffice", m.BoxOffice},
		{"Production", m.Production},
		{"Genre", m.Genre},
		{"Director", m.Director},
		{"Actors", m.Actors},
		{"Writer", m.Writer},
		{"Country", m.Country},
		{"Language", m.Language},
		{"Released", m.Released},
		{"Runtime", m.Runtime},
	}
}

// Service queries the OMDb API.
type Service struct {
	api     *infra.APIClient
	apiKey  string
	baseURL string
}

func NewService(apiKey string, api *infra.APIClient) *Service {
	return &Service{api: api, apiKey: apiKey, baseURL: defaultBaseURL}
}

// Lookup fetches the detail record for a title, optionally narrowed by year.
// Returns ErrNotFound when OMDb reports no match.
func (s *Service) Lookup(ctx context.Context, title, year string) (*Movie, error) {
	q := url.Values{}
	q.Set("apikey", s.apiKey)
	q.Set("t", title)
	if year != "" {
		q.Set("y", year)
	}

	var m Movie
	if err := s.api.GetJSON(ctx, s.baseURL, q, &m); err != nil {
		return nil, err
	}
	if m.Response != "True" {
		return nil, ErrNotFound
	}
	return &m, nil
}
