// README: PersonalityPack loader; immutable tone content loaded once at startup.
package personality

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// Pack is the static bundle of response templates, keyword lists, and tone
// content. It is loaded once at process start and never mutated afterwards;
// request handling only reads from it.
type Pack struct {
	BotName string `json:"bot_name"`

	GreetingKeywords []string `json:"greeting_keywords"`
	ThanksKeywords   []string `json:"thanks_keywords"`
	GoodbyeKeywords  []string `json:"goodbye_keywords"`

	Greetings []string `json:"greetings"`
	Goodbyes  []string `json:"goodbyes"`
	Thanks    []string `json:"thanks"`
	Fallbacks []string `json:"fallbacks"`

	RestaurantIntros []string `json:"restaurant_intros"`
	EventIntros      []string `json:"event_intros"`
	SightIntros      []string `json:"sight_intros"`
	BreweryIntros    []string `json:"brewery_intros"`
	RecipeIntros     []string `json:"recipe_intros"`
	BookIntros       []string `json:"book_intros"`
	MovieIntros      []string `json:"movie_response_intros"`
	JokeIntros       []string `json:"joke_intros"`

	// FactIntros is keyed by topic, with a "default" key merged in for every topic.
	FactIntros     map[string][]string `json:"fact_intros"`
	MovieFacts     map[string][]string `json:"movie_facts"`
	MovieOpinions  map[string][]string `json:"movie_opinions"`
	MovieFallbacks []string            `json:"movie_fallbacks"`
	OMDbFactIntros map[string][]string `json:"omdb_fact_intros"`
	CustomFacts    map[string][]string `json:"custom_facts"`

	// Jokes holds topic-tagged joke lists used before falling back to JokeAPI.
	Jokes map[string][]string `json:"jokes"`
}

// Load reads and decodes a pack from the given JSON file.
func Load(path string) (*Pack, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("personality: read %s: %w", path, err)
	}
	var p Pack
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, fmt.Errorf("personality: decode %s: %w", path, err)
	}
	if p.BotName == "" {
		p.BotName = "Activabot"
	}
	return &p, nil
}

// FactIntrosFor returns the intro lines for a topic plus the default ones.
// The topic key is matched lowercased with underscores treated as spaces.
func (p *Pack) FactIntrosFor(topic string) []string {
	key := strings.ReplaceAll(strings.ToLower(topic), "_", " ")
	var out []string
	out = append(out, p.FactIntros[key]...)
	out = append(out, p.FactIntros["default"]...)
	return out
}

// TopicJokes returns the pack's jokes for a topic, or nil when none exist.
func (p *Pack) TopicJokes(topic string) []string {
	if topic == "" {
		return nil
	}
	return p.Jokes[strings.ToLower(topic)]
}
