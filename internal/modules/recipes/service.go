// README: TheMealDB adapter with ingredient-filter to name-search fallback.
package recipes

import (
	"context"
	"fmt"
	"net/url"

	"activabot/internal/infra"
)

const defaultBaseURL = "https://www.themealdb.com/api/json/v1/1"

const maxListed = 15

// Recipe is one meal in upstream order.
type Recipe struct {
	Name string
	URL  string
}

// Service queries TheMealDB.
type Service struct {
	api     *infra.APIClient
	baseURL string
}

func NewService(api *infra.APIClient) *Service {
	return &Service{api: api, baseURL: defaultBaseURL}
}

type mealsResponse struct {
	Meals []struct {
		Name string `json:"strMeal"`
		ID   string `json:"idMeal"`
	} `json:"meals"`
}

// Search filters by ingredient first; when that yields nothing it falls back
// to a name search on the same input. Both empty means an empty list.
func (s *Service) Search(ctx context.Context, ingredient string) ([]Recipe, error) {
	out, err := s.query(ctx, "/filter.php", "i", ingredient)
	if err != nil {
		return nil, err
	}
	if len(out) > 0 {
		return out, nil
	}
	return s.query(ctx, "/search.php", "s", ingredient)
}

func (s *Service) query(ctx context.Context, path, param, value string) ([]Recipe, error) {
	q := url.Values{}
	q.Set(param, value)

	var resp mealsResponse
	if err := s.api.GetJSON(ctx, s.baseURL+path, q, &resp); err != nil {
		return nil, err
	}

	var out []Recipe
	for _, m := range resp.Meals {
		if m.Name == "" {
			continue
		}
		out = append(out, Recipe{
			Name: m.Name,
			URL:  fmt.Sprintf("https://www.themealdb.com/meal/%s", m.ID),
		})
		if len(out) >= maxListed {
			break
		}
	}
	return out, nil
}
