// README: Ordered intent rules; first match wins.
package bot

import (
	"strconv"
	"strings"
)

// rule pairs a match predicate with the intent it selects. Rules are
// evaluated strictly in slice order and the first hit short-circuits, so the
// ordering below is load-bearing: "movie info" phrasing must come before the
// generic "movie" substring rule or the generic rule would shadow it.
type rule struct {
	name   string
	intent Intent
	match  func(s *Service, text string) (Params, bool)
}

var restaurantTriggers = []string{
	"where can i eat", "places to eat", "good food",
	"restaurants near", "restaurants in", "restaurant in", "food in",
}

var rules = []rule{
	{"goodbye", IntentGoodbye, func(s *Service, text string) (Params, bool) {
		return Params{}, containsAny(text, s.pack.GoodbyeKeywords)
	}},
	{"thanks", IntentThanks, func(s *Service, text string) (Params, bool) {
		return Params{}, containsWord(text, s.pack.ThanksKeywords)
	}},
	{"greeting", IntentGreeting, func(s *Service, text string) (Params, bool) {
		return Params{}, containsWord(text, s.pack.GreetingKeywords)
	}},
	{"help", IntentHelp, func(s *Service, text string) (Params, bool) {
		return Params{}, strings.Contains(text, "help") || strings.Contains(text, "directions")
	}},
	{"movie_detail", IntentMovieDetail, func(s *Service, text string) (Params, bool) {
		if m := movieDetailRe.FindStringSubmatch(text); m != nil {
			return Params{Title: trimTitle(m[1])}, true
		}
		return Params{}, false
	}},
	{"movie_director", IntentMovieDirector, func(s *Service, text string) (Params, bool) {
		if m := movieDirectorRe.FindStringSubmatch(text); m != nil {
			return Params{Title: trimTitle(m[1])}, true
		}
		return Params{}, false
	}},
	{"movie_stars", IntentMovieStars, func(s *Service, text string) (Params, bool) {
		if m := movieStarsRe.FindStringSubmatch(text); m != nil {
			return Params{Title: trimTitle(m[1])}, true
		}
		return Params{}, false
	}},
	{"restaurants", IntentRestaurantSearch, func(s *Service, text string) (Params, bool) {
		if !containsAny(text, restaurantTriggers) {
			return Params{}, false
		}
		// A missing location still selects this intent; the handler answers
		// with syntax guidance instead of a search.
		return Params{Location: extractLocation(text)}, true
	}},
	{"events", IntentEventSearch, func(s *Service, text string) (Params, bool) {
		if !strings.Contains(text, "events in") {
			return Params{}, false
		}
		return Params{Location: extractLocation(text)}, true
	}},
	{"sights", IntentSightSearch, func(s *Service, text string) (Params, bool) {
		if !strings.Contains(text, "sights") && !strings.Contains(text, "tourist") {
			return Params{}, false
		}
		return Params{Location: extractLocation(text)}, true
	}},
	{"breweries", IntentBrewerySearch, func(s *Service, text string) (Params, bool) {
		if !strings.Contains(text, "breweries in") {
			return Params{}, false
		}
		return Params{Location: extractLocation(text)}, true
	}},
	{"recipes", IntentRecipeSearch, func(s *Service, text string) (Params, bool) {
		if !strings.Contains(text, "recipes for") && !strings.Contains(text, "recipes with") &&
			!strings.Contains(text, "recipes using") {
			return Params{}, false
		}
		var p Params
		if m := recipeRe.FindStringSubmatch(text); m != nil {
			p.Ingredient = strings.TrimSpace(m[1])
		}
		return p, true
	}},
	{"movies_and_theaters", IntentMoviesInCity, func(s *Service, text string) (Params, bool) {
		if !strings.Contains(text, "movies in") && !strings.Contains(text, "movies near") {
			return Params{}, false
		}
		return Params{Location: extractLocation(text)}, true
	}},
	{"movies_generic", IntentMovieByGenreYear, func(s *Service, text string) (Params, bool) {
		if !strings.Contains(text, "movie") {
			return Params{}, false
		}
		if strings.Contains(text, "random") {
			// Random request: sample a year from the fixed historical range
			// and a discovery page; genre/year extraction is skipped.
			return Params{
				Year: sampleRandomYear(s.rng),
				Page: 1 + s.rng.Intn(randomPageRange),
			}, true
		}
		return Params{
			Genre: extractGenre(text),
			Year:  extractYear(text, s.rng),
		}, true
	}},
	{"theaters", IntentTheaterSearch, func(s *Service, text string) (Params, bool) {
		if !strings.Contains(text, "theaters") && !strings.Contains(text, "cinemas") {
			return Params{}, false
		}
		return Params{Location: extractLocation(text)}, true
	}},
	{"books", IntentBookSearch, func(s *Service, text string) (Params, bool) {
		if !strings.Contains(text, "book") && !strings.Contains(text, "read") &&
			!strings.Contains(text, "novel") {
			return Params{}, false
		}
		subject, author := extractBookQuery(text)
		return Params{Subject: subject, Author: author}, true
	}},
	{"bare_greeting", IntentGreeting, func(s *Service, text string) (Params, bool) {
		return Params{}, strings.Contains(text, "hello")
	}},
}

const (
	randomYearMin   = 1950
	randomYearMax   = 2025
	randomPageRange = 10
)

func sampleRandomYear(rng Rand) string {
	y := randomYearMin + rng.Intn(randomYearMax-randomYearMin+1)
	return strconv.Itoa(y)
}

// classify selects the first matching rule's intent. Selection is total:
// when no rule matches, IntentFallback is returned.
func (s *Service) classify(text string) (Intent, Params) {
	for _, r := range rules {
		if p, ok := r.match(s, text); ok {
			intent := r.intent
			if intent == IntentMovieByGenreYear && strings.Contains(text, "random") {
				intent = IntentRandomMovie
			}
			return intent, p
		}
	}
	return IntentFallback, Params{}
}
