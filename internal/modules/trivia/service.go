// README: Decorative content adapters: JokeAPI one-liners and Wikipedia summary facts.
package trivia

import (
	"context"
	"net/url"
	"regexp"
	"strings"

	"activabot/internal/infra"
)

const (
	defaultJokeBaseURL = "https://v2.jokeapi.dev"
	defaultWikiBaseURL = "https://en.wikipedia.org/api/rest_v1"
)

// RE2 has no lookbehind, so sentences are matched rather than split on.
var sentencePattern = regexp.MustCompile(`[^.!?]+[.!?]?`)

// Service fetches jokes and trivia snippets for response decoration.
type Service struct {
	api         *infra.APIClient
	jokeBaseURL string
	wikiBaseURL string
}

func NewService(api *infra.APIClient) *Service {
	return &Service{api: api, jokeBaseURL: defaultJokeBaseURL, wikiBaseURL: defaultWikiBaseURL}
}

type jokeResponse struct {
	Joke string `json:"joke"`
}

// RandomJoke fetches one safe single-line joke.
func (s *Service) RandomJoke(ctx context.Context) (string, error) {
	q := url.Values{}
	q.Set("type", "single")
	q.Set("safe-mode", "")

	var resp jokeResponse
	if err := s.api.GetJSON(ctx, s.jokeBaseURL+"/joke/Misc,Pun", q, &resp); err != nil {
		return "", err
	}
	return resp.Joke, nil
}

type summaryResponse struct {
	Extract string `json:"extract"`
}

// FactSentences returns the sentences of the Wikipedia summary for a topic.
// The caller picks one at random; an unknown topic yields an empty slice.
func (s *Service) FactSentences(ctx context.Context, topic string) ([]string, error) {
	topic = strings.TrimSpace(topic)
	if topic == "" {
		return nil, nil
	}
	page := url.PathEscape(strings.ReplaceAll(topic, " ", "_"))

	var resp summaryResponse
	if err := s.api.GetJSON(ctx, s.wikiBaseURL+"/page/summary/"+page, nil, &resp); err != nil {
		return nil, err
	}
	if resp.Extract == "" {
		return nil, nil
	}

	var out []string
	for _, sentence := range sentencePattern.FindAllString(resp.Extract, -1) {
		if t := strings.TrimSpace(sentence); t != "" {
			out = append(out, t)
		}
	}
	return out, nil
}
