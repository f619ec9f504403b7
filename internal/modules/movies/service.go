// README: TMDb adapter: discovery by genre/year, popular list, and title search.
package movies

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"activabot/internal/infra"
)

const defaultBaseURL = "https://api.themoviedb.org/3"

const maxListed = 15

// Movie is one discovery result in upstream popularity order.
type Movie struct {
	Title string
	URL   string
}

// Ref points at a single searched-for movie, used to decorate detail
// responses with a link.
type Ref struct {
	Title string
	Year  string
	URL   string
}

// Service queries The Movie Database.
type Service struct {
	api     *infra.APIClient
	apiKey  string
	baseURL string
}

func NewService(apiKey string, api *infra.APIClient) *Service {
	return &Service{api: api, apiKey: apiKey, baseURL: defaultBaseURL}
}

type discoverResponse struct {
	Results []struct {
		ID          int    `json:"id"`
		Title       string `json:"title"`
		ReleaseDate string `json:"release_date"`
	} `json:"results"`
}

func (s *Service) movieURL(id int) string {
	return fmt.Sprintf("https://www.themoviedb.org/movie/%d", id)
}

// Discover lists movies filtered by genre name and/or release year, ordered
// by popularity. Either filter may be empty.
func (s *Service) Discover(ctx context.Context, genre, year string) ([]Movie, error) {
	q := url.Values{}
	q.Set("api_key", s.apiKey)
	q.Set("sort_by", "popularity.desc")
	q.Set("page", "1")
	if id, ok := genreIDs[genre]; ok {
		q.Set("with_genres", strconv.Itoa(id))
	}
	if year != "" {
		q.Set("primary_release_year", year)
	}
	return s.list(ctx, s.baseURL+"/discover/movie", q)
}

// DiscoverPage lists one discovery page for a specific release year; the
// caller samples one entry from it for random-movie requests.
func (s *Service) DiscoverPage(ctx context.Context, year string, page int) ([]Movie, error) {
	q := url.Values{}
	q.Set("api_key", s.apiKey)
	q.Set("sort_by", "popularity.desc")
	q.Set("page", strconv.Itoa(page))
	q.Set("primary_release_year", year)
	return s.list(ctx, s.baseURL+"/discover/movie", q)
}

// Popular lists currently popular movies.
func (s *Service) Popular(ctx context.Context) ([]Movie, error) {
	q := url.Values{}
	q.Set("api_key", s.apiKey)
	return s.list(ctx, s.baseURL+"/movie/popular", q)
}

func (s *Service) list(ctx context.Context, endpoint string, q url.Values) ([]Movie, error) {
	var resp discoverResponse
	if err := s.api.GetJSON(ctx, endpoint, q, &resp); err != nil {
		return nil, err
	}
	var out []Movie
	for _, m := range resp.Results {
		if m.Title == "" {
			continue
		}
		out = append(out, Movie{Title: m.Title, URL: s.movieURL(m.ID)})
		if len(out) >= maxListed {
			break
		}
	}
	return out, nil
}

// SearchTitle resolves a title (optionally narrowed by year) to a linkable
// record. An exact case-insensitive title match is preferred; among matches
// the most recent release wins. Returns nil when nothing matches.
func (s *Service) SearchTitle(ctx context.Context, title, year string) (*Ref, error) {
	q := url.Values{}
	q.Set("api_key", s.apiKey)
	q.Set("query", title)
	if year != "" {
		q.Set("year", year)
	}

	var resp discoverResponse
	if err := s.api.GetJSON(ctx, s.baseURL+"/search/movie", q, &resp); err != nil {
		return nil, err
	}
	if len(resp.Results) == 0 {
		return nil, nil
	}

	best := -1
	exact := -1
	for i, m := range resp.Results {
		if strings.EqualFold(m.Title, title) {
			if exact < 0 || m.ReleaseDate > resp.Results[exact].ReleaseDate {
				exact = i
			}
		}
		if best < 0 || m.ReleaseDate > resp.Results[best].ReleaseDate {
			best = i
		}
	}
	pick := best
	if exact >= 0 {
		pick = exact
	}

	m := resp.Results[pick]
	ref := &Ref{Title: m.Title, URL: s.movieURL(m.ID)}
	if len(m.ReleaseDate) >= 4 {
		ref.Year = m.ReleaseDate[:4]
	}
	return ref, nil
}
