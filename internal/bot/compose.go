// README: Response composer: intros, item links, jokes, facts, and movie extras.
package bot

import (
	"context"
	"fmt"
	"strings"

	"activabot/internal/modules/movieinfo"
)

// Fixed literal defaults keep the composer from ever producing no text when a
// pack category is absent or empty.
const (
	defaultRestaurantIntro = "Here are some places to eat:"
	defaultEventIntro      = "Here are some upcoming events:"
	defaultSightIntro      = "Here are some sights to see:"
	defaultBreweryIntro    = "Here are some breweries:"
	defaultRecipeIntro     = "Here are some recipes:"
	defaultBookIntro       = "Here are some books you might like:"
	defaultMovieIntro      = "Oh, I love movies! Here's what I found:"
	defaultJokeIntro       = "Here's a joke:"
	defaultFactIntro       = "Here's a fun fact:"
	defaultJoke            = "Sorry, my joke generator is on vacation!"
)

const sectionSep = "<br>"

// choice picks one template uniformly, falling back to def on an empty set.
// Every call is a fresh draw with no memory of prior selections.
func (s *Service) choice(list []string, def string) string {
	if len(list) == 0 {
		return def
	}
	return list[s.rng.Intn(len(list))]
}

// mapsSearchLink builds an external map-search URL for a named place; used
// when the upstream item carries no URL of its own. Only the part before the
// first " - " (the display name) goes into the query.
func mapsSearchLink(name, location string) string {
	q := name
	if i := strings.Index(q, " - "); i >= 0 {
		q = q[:i]
	}
	q = strings.ReplaceAll(q, " ", "+") + "+" + strings.ReplaceAll(location, " ", "+")
	return "https://www.google.com/maps/search/" + q
}

func link(label, href string) string {
	return fmt.Sprintf(`<a href="%s" target="_blank">%s</a>`, href, label)
}

func boldLink(label, href string) string {
	return fmt.Sprintf(`<a href="%s" target="_blank"><strong>%s</strong></a>`, href, label)
}

// header opens a multi-section reply with the bot's name.
func (s *Service) header() string {
	return "<strong>" + s.pack.BotName + ":</strong>" + sectionSep
}

// jokeBlock composes the italic joke section. Topic-tagged pack jokes win;
// otherwise one is fetched from the joke adapter, and the apology line keeps
// the block non-empty when that fails too.
func (s *Service) jokeBlock(ctx context.Context, topic string) string {
	intro := s.choice(s.pack.JokeIntros, defaultJokeIntro)

	joke := ""
	if packJokes := s.pack.TopicJokes(topic); len(packJokes) > 0 {
		joke = s.choice(packJokes, "")
	}
	if joke == "" {
		fetched, err := s.deps.Trivia.RandomJoke(ctx)
		if err != nil || fetched == "" {
			fetched = defaultJoke
		}
		joke = fetched
	}
	return fmt.Sprintf("<i>%s %s</i>", intro, joke)
}

// factBlock composes a trivia snippet, trying each key in order: first the
// fact adapter, then the pack's custom facts. Unresolvable keys yield "".
func (s *Service) factBlock(ctx context.Context, keys ...string) string {
	for _, key := range keys {
		if key == "" {
			continue
		}
		intro := s.choice(s.pack.FactIntrosFor(key), defaultFactIntro)

		sentences, err := s.deps.Trivia.FactSentences(ctx, key)
		if err == nil && len(sentences) > 0 {
			return intro + " " + sentences[s.rng.Intn(len(sentences))]
		}
		if custom := s.pack.CustomFacts[strings.ToLower(key)]; len(custom) > 0 {
			return intro + " " + s.choice(custom, "")
		}
	}
	return ""
}

// movieNote decorates one listed movie with a pack fact or opinion. No
// upstream call happens here; unknown titles yield "".
func (s *Service) movieNote(title string) string {
	key := strings.ToLower(title)
	var options []string
	for _, fact := range s.pack.MovieFacts[key] {
		intro := s.choice(s.pack.FactIntrosFor("movie"), defaultFactIntro)
		options = append(options, intro+" "+fact)
	}
	for _, op := range s.pack.MovieOpinions[key] {
		options = append(options, "My take: "+op)
	}
	if len(options) == 0 {
		return ""
	}
	return options[s.rng.Intn(len(options))]
}

// movieExtra assembles the candidate set for a movie-detail response: pack
// facts, pack opinions, and the record's secondary metadata fields in their
// fixed scan order, skipping missing, "N/A", and duplicate values. One
// candidate is drawn uniformly from the whole set, not greedily by field
// order; with no candidates a pack fallback line is used.
func (s *Service) movieExtra(m *movieinfo.Movie) string {
	key := strings.ToLower(m.Title)
	var options []string
	for _, fact := range s.pack.MovieFacts[key] {
		intro := s.choice(s.pack.FactIntrosFor("movie"), defaultFactIntro)
		options = append(options, intro+" "+fact)
	}
	for _, op := range s.pack.MovieOpinions[key] {
		options = append(options, "My take: "+op)
	}

	seen := map[string]bool{}
	for _, f := range m.SecondaryFields() {
		if f.Value == "" || f.Value == "N/A" || seen[f.Value] {
			continue
		}
		seen[f.Value] = true
		intros := s.pack.OMDbFactIntros[f.Label]
		if len(intros) == 0 {
			intros = s.pack.FactIntrosFor("movie")
		}
		intro := s.choice(intros, defaultFactIntro)
		if !strings.HasSuffix(intro, ":") {
			intro += ":"
		}
		options = append(options, intro+" "+f.Value)
	}

	if len(options) == 0 {
		if len(s.pack.MovieFallbacks) == 0 {
			return ""
		}
		return s.choice(s.pack.MovieFallbacks, "")
	}
	return options[s.rng.Intn(len(options))]
}
