// README: Open Brewery DB adapter.
package breweries

import (
	"context"
	"net/url"
	"strconv"

	"activabot/internal/infra"
)

const defaultBaseURL = "https://api.openbrewerydb.org/v1"

// Brewery is one brewery in upstream order.
type Brewery struct {
	Name    string
	Address string
}

// Service queries the Open Brewery DB.
type Service struct {
	api     *infra.APIClient
	baseURL string
	perPage int
}

func NewService(api *infra.APIClient) *Service {
	return &Service{api: api, baseURL: defaultBaseURL, perPage: 15}
}

type breweryRecord struct {
	Name    string `json:"name"`
	Address string `json:"address_1"`
}

// Search lists breweries in the given city.
func (s *Service) Search(ctx context.Context, city string) ([]Brewery, error) {
	q := url.Values{}
	q.Set("by_city", city)
	q.Set("per_page", strconv.Itoa(s.perPage))

	var records []breweryRecord
	if err := s.api.GetJSON(ctx, s.baseURL+"/breweries", q, &records); err != nil {
		return nil, err
	}

	var out []Brewery
	for _, b := range records {
		if b.Name == "" || b.Address == "" {
			continue
		}
		out = append(out, Brewery{Name: b.Name, Address: b.Address})
	}
	return out, nil
}
