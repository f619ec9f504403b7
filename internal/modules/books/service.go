// README: Book search adapter combining Google Books and Open Library.
package books

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"golang.org/x/sync/errgroup"

	"activabot/internal/infra"
)

const (
	defaultGoogleBaseURL      = "https://www.googleapis.com/books/v1"
	defaultOpenLibraryBaseURL = "https://openlibrary.org"

	perSource = 5
)

// Book is one catalog hit. Source names the contributing catalog.
type Book struct {
	Title   string
	Authors string
	Year    string
	URL     string
	Source  string
}

// Query selects between subject search and author search.
type Query struct {
	Value  string
	Author bool
}

// Service queries both catalogs for every book request. This is aggregation,
// not fallback: the two lookups are independent and their results are
// concatenated unconditionally, Google Books first.
type Service struct {
	api            *infra.APIClient
	googleBaseURL  string
	openLibBaseURL string
}

func NewService(api *infra.APIClient) *Service {
	return &Service{
		api:            api,
		googleBaseURL:  defaultGoogleBaseURL,
		openLibBaseURL: defaultOpenLibraryBaseURL,
	}
}

// Search runs both catalog lookups concurrently and concatenates whatever
// each returned. A source that fails or finds nothing contributes zero items.
func (s *Service) Search(ctx context.Context, query Query) ([]Book, error) {
	var google, openLib []Book

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		google = s.searchGoogle(gctx, query)
		return nil
	})
	g.Go(func() error {
		openLib = s.searchOpenLibrary(gctx, query)
		return nil
	})
	_ = g.Wait()

	return append(google, openLib...), nil
}

type googleResponse struct {
	Items []struct {
		VolumeInfo struct {
			Title    string   `json:"title"`
			Authors  []string `json:"authors"`
			InfoLink string   `json:"infoLink"`
		} `json:"volumeInfo"`
	} `json:"items"`
}

func (s *Service) searchGoogle(ctx context.Context, query Query) []Book {
	q := url.Values{}
	if query.Author {
		q.Set("q", "inauthor:"+query.Value)
	} else {
		q.Set("q", "subject:"+query.Value)
	}
	q.Set("maxResults", fmt.Sprint(perSource))

	var resp googleResponse
	if err := s.api.GetJSON(ctx, s.googleBaseURL+"/volumes", q, &resp); err != nil {
		return nil
	}

	var out []Book
	for _, item := range resp.Items {
		info := item.VolumeInfo
		if info.Title == "" {
			continue
		}
		authors := "Unknown Author"
		if len(info.Authors) > 0 {
			authors = strings.Join(info.Authors, ", ")
		}
		out = append(out, Book{
			Title:   info.Title,
			Authors: authors,
			URL:     info.InfoLink,
			Source:  "Google Books",
		})
	}
	return out
}

type openLibraryResponse struct {
	Docs []struct {
		Title            string   `json:"title"`
		AuthorName       []string `json:"author_name"`
		FirstPublishYear int      `json:"first_publish_year"`
		Key              string   `json:"key"`
	} `json:"docs"`
}

func (s *Service) searchOpenLibrary(ctx context.Context, query Query) []Book {
	q := url.Values{}
	if query.Author {
		q.Set("author", query.Value)
	} else {
		q.Set("subject", query.Value)
	}
	q.Set("limit", fmt.Sprint(perSource))

	var resp openLibraryResponse
	if err := s.api.GetJSON(ctx, s.openLibBaseURL+"/search.json", q, &resp); err != nil {
		return nil
	}

	var out []Book
	for _, doc := range resp.Docs {
		if doc.Title == "" {
			continue
		}
		authors := "Unknown author"
		if len(doc.AuthorName) > 0 {
			authors = strings.Join(doc.AuthorName, ", ")
		}
		year := "N/A"
		if doc.FirstPublishYear > 0 {
			year = fmt.Sprint(doc.FirstPublishYear)
		}
		link := ""
		if doc.Key != "" {
			link = s.openLibBaseURL + doc.Key
		}
		out = append(out, Book{
			Title:   doc.Title,
			Authors: authors,
			Year:    year,
			URL:     link,
			Source:  "Open Library",
		})
	}
	return out
}
