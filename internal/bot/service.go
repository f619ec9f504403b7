// README: Engine service: safety gate -> rule classifier -> adapters -> composer.
package bot

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"activabot/internal/modules/books"
	"activabot/internal/modules/breweries"
	"activabot/internal/modules/events"
	"activabot/internal/modules/movieinfo"
	"activabot/internal/modules/movies"
	"activabot/internal/modules/places"
	"activabot/internal/modules/recipes"
	"activabot/internal/personality"
)

// Adapter contracts. Each adapter is a pure function of its parameters at a
// point in time; results are never cached or reused across requests.

type PlaceFinder interface {
	Search(ctx context.Context, location string, cat places.Category) ([]places.Place, error)
}

type EventFinder interface {
	Search(ctx context.Context, city string) ([]events.Event, error)
}

type MovieCatalog interface {
	Discover(ctx context.Context, genre, year string) ([]movies.Movie, error)
	DiscoverPage(ctx context.Context, year string, page int) ([]movies.Movie, error)
	Popular(ctx context.Context) ([]movies.Movie, error)
	SearchTitle(ctx context.Context, title, year string) (*movies.Ref, error)
}

type MovieDetailer interface {
	Lookup(ctx context.Context, title, year string) (*movieinfo.Movie, error)
}

type BookFinder interface {
	Search(ctx context.Context, q books.Query) ([]books.Book, error)
}

type RecipeFinder interface {
	Search(ctx context.Context, ingredient string) ([]recipes.Recipe, error)
}

type BreweryFinder interface {
	Search(ctx context.Context, city string) ([]breweries.Brewery, error)
}

type TriviaSource interface {
	RandomJoke(ctx context.Context) (string, error)
	FactSentences(ctx context.Context, topic string) ([]string, error)
}

// Chatter produces a free-form reply for requests no rule matched.
type Chatter interface {
	Reply(ctx context.Context, message string) (string, error)
}

type Deps struct {
	Places    PlaceFinder
	Events    EventFinder
	Movies    MovieCatalog
	MovieInfo MovieDetailer
	Books     BookFinder
	Recipes   RecipeFinder
	Breweries BreweryFinder
	Trivia    TriviaSource
	// SmallTalk is optional; nil routes the fallback intent to pack templates.
	SmallTalk Chatter
}

// Service resolves intents and aggregates adapter results into one reply.
// It holds no mutable state beyond the random source; requests are
// independent and may run concurrently.
type Service struct {
	pack    *personality.Pack
	deps    Deps
	rng     Rand
	timeout time.Duration
	log     *logrus.Logger
}

// NewService wires the engine. rng may be nil (a time-seeded source is used)
// and timeout may be zero (a default bound is applied); every outbound
// adapter call gets a deadline derived from it.
func NewService(pack *personality.Pack, deps Deps, rng Rand, timeout time.Duration, log *logrus.Logger) *Service {
	if rng == nil {
		rng = newLockedRand()
	}
	if timeout <= 0 {
		timeout = 8 * time.Second
	}
	return &Service{pack: pack, deps: deps, rng: rng, timeout: timeout, log: log}
}

// Respond turns one free-text request into one composed reply. It never
// returns an error: upstream failures degrade to "nothing found" messages.
func (s *Service) Respond(ctx context.Context, text string) string {
	text = strings.ToLower(strings.TrimSpace(text))

	if blocked(text) {
		s.log.WithField("intent", IntentDangerBlocked).Info("request deflected by safety gate")
		return deflectionMessage
	}

	intent, p := s.classify(text)
	s.log.WithFields(logrus.Fields{"intent": intent}).Debug("intent classified")

	switch intent {
	case IntentGreeting:
		return s.handleGreeting()
	case IntentThanks:
		return s.choice(s.pack.Thanks, "You're welcome!")
	case IntentGoodbye:
		return s.choice(s.pack.Goodbyes, "Goodbye!")
	case IntentHelp:
		return s.handleHelp()
	case IntentMovieDetail:
		return s.handleMovieDetail(ctx, p)
	case IntentMovieDirector:
		return s.handleMovieDirector(ctx, p)
	case IntentMovieStars:
		return s.handleMovieStars(ctx, p)
	case IntentRestaurantSearch:
		return s.handlePlaceSearch(ctx, p, placeSearchOpts{
			category: places.CategoryRestaurant,
			noun:     "restaurants",
			guidance: "Please specify a city, state, country, or zipcode, e.g., 'restaurants in Dallas' or 'places to eat near 75001'.",
			intros:   s.pack.RestaurantIntros,
			intro:    defaultRestaurantIntro,
			joke:     "restaurant",
			factKey:  "restaurant",
		})
	case IntentSightSearch:
		return s.handlePlaceSearch(ctx, p, placeSearchOpts{
			category: places.CategorySight,
			noun:     "sights",
			guidance: "Please specify a city, state, country, or zipcode, e.g., 'sights in Paris' or 'tourist near 75001'.",
			intros:   s.pack.SightIntros,
			intro:    defaultSightIntro,
			joke:     "sightseeing",
			factKey:  "tourism",
		})
	case IntentTheaterSearch:
		return s.handleTheaters(ctx, p)
	case IntentEventSearch:
		return s.handleEvents(ctx, p)
	case IntentBrewerySearch:
		return s.handleBreweries(ctx, p)
	case IntentRecipeSearch:
		return s.handleRecipes(ctx, p)
	case IntentMoviesInCity:
		return s.handleMoviesInCity(ctx, p)
	case IntentRandomMovie:
		return s.handleRandomMovie(ctx, p)
	case IntentMovieByGenreYear:
		return s.handleMoviesByGenreYear(ctx, p)
	case IntentBookSearch:
		return s.handleBooks(ctx, p)
	default:
		return s.handleFallback(ctx, text)
	}
}

// adapterCtx bounds one outbound adapter call.
func (s *Service) adapterCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.timeout)
}

func (s *Service) handleGreeting() string {
	greeting := s.choice(s.pack.Greetings, "Hello! How can I help you today?")
	return strings.ReplaceAll(greeting, "{bot_name}", s.pack.BotName)
}

func (s *Service) handleHelp() string {
	name := s.pack.BotName
	return fmt.Sprintf("<strong>Welcome to %s!</strong><br><em>Your fun-seeking, pun-loving activity sidekick!</em><br><br>"+
		"I can help you find <b>events</b>, <b>restaurants</b>, <b>breweries</b>, <b>sights</b>, <b>theaters</b>, <b>movies</b>, <b>recipes</b>, and <b>books</b>.<br><br>"+
		"<b>How to use me:</b><ul>"+
		"<li>events in Dallas</li>"+
		"<li>restaurants near 73019</li>"+
		"<li>breweries in Austin</li>"+
		"<li>sights in Paris, France</li>"+
		"<li>theaters in Miami, OK</li>"+
		"<li>movies in Houston</li>"+
		"<li>action movies from 1995</li>"+
		"<li>random movie</li>"+
		"<li>recipes for chicken</li>"+
		"<li>book about science</li>"+
		"</ul>"+
		"You can use <b>in</b> or <b>near</b> for city, state, country, or zipcode. If nothing is found, I'll automatically expand the search area!", name)
}

// placeSearchOpts parameterizes the three places-family intents.
type placeSearchOpts struct {
	category places.Category
	noun     string
	guidance string
	intros   []string
	intro    string
	joke     string
	factKey  string
}

func (s *Service) handlePlaceSearch(ctx context.Context, p Params, opts placeSearchOpts) string {
	if p.Location == "" {
		return opts.guidance
	}

	actx, cancel := s.adapterCtx(ctx)
	defer cancel()
	found, err := s.deps.Places.Search(actx, p.Location, opts.category)
	if err != nil || len(found) == 0 {
		return fmt.Sprintf("No %s found near %s.", opts.noun, p.Location)
	}

	var links []string
	for _, pl := range found {
		label := pl.Name
		if pl.Address != "" {
			label += " - " + pl.Address
		}
		links = append(links, link(label, mapsSearchLink(label, p.Location)))
	}

	reply := s.header() + s.choice(opts.intros, opts.intro) + sectionSep + strings.Join(links, sectionSep)
	reply += sectionSep + sectionSep + s.jokeBlock(ctx, opts.joke)
	if fact := s.factBlock(ctx, p.Location, opts.factKey); fact != "" {
		reply += sectionSep + sectionSep + fact
	}
	return reply
}

func (s *Service) handleTheaters(ctx context.Context, p Params) string {
	if p.Location == "" {
		return "Please specify a city, state, country, or zipcode, e.g., 'theaters in Dallas' or 'cinemas near 75001'."
	}

	actx, cancel := s.adapterCtx(ctx)
	defer cancel()
	found, err := s.deps.Places.Search(actx, p.Location, places.CategoryTheater)
	if err != nil || len(found) == 0 {
		return fmt.Sprintf("No theaters found near %s.", p.Location)
	}

	var links []string
	for _, pl := range found {
		label := pl.Name
		if pl.Address != "" {
			label += " - " + pl.Address
		}
		links = append(links, link(label, mapsSearchLink(label, p.Location)))
	}
	return fmt.Sprintf("Here are some movie theaters near %s:%s%s", p.Location, sectionSep, strings.Join(links, sectionSep))
}

func (s *Service) handleEvents(ctx context.Context, p Params) string {
	if p.Location == "" {
		return "Please specify a city, e.g., 'events in Dallas'."
	}

	actx, cancel := s.adapterCtx(ctx)
	defer cancel()
	found, err := s.deps.Events.Search(actx, p.Location)
	if err != nil || len(found) == 0 {
		return fmt.Sprintf("No events found in %s.", p.Location)
	}

	var links []string
	for _, e := range found {
		label := e.Name
		if e.Date != "" {
			label = fmt.Sprintf("%s on %s", e.Name, e.Date)
		}
		links = append(links, link(label, e.URL))
	}

	reply := s.header() + s.choice(s.pack.EventIntros, defaultEventIntro) + sectionSep + strings.Join(links, sectionSep)
	reply += sectionSep + sectionSep + s.jokeBlock(ctx, "event")
	if fact := s.factBlock(ctx, p.Location, "event"); fact != "" {
		reply += sectionSep + sectionSep + fact
	}
	return reply
}

func (s *Service) handleBreweries(ctx context.Context, p Params) string {
	if p.Location == "" {
		return "Please specify a city, e.g., 'breweries in Austin'."
	}

	actx, cancel := s.adapterCtx(ctx)
	defer cancel()
	found, err := s.deps.Breweries.Search(actx, p.Location)
	if err != nil || len(found) == 0 {
		return fmt.Sprintf("No breweries found in %s.", p.Location)
	}

	var links []string
	for _, b := range found {
		label := b.Name + " - " + b.Address
		links = append(links, link(label, mapsSearchLink(label, p.Location)))
	}

	reply := s.header() + s.choice(s.pack.BreweryIntros, defaultBreweryIntro) + sectionSep + strings.Join(links, sectionSep)
	reply += sectionSep + sectionSep + s.jokeBlock(ctx, "brewery")
	if fact := s.factBlock(ctx, p.Location, "brewery"); fact != "" {
		reply += sectionSep + sectionSep + fact
	}
	return reply
}

func (s *Service) handleRecipes(ctx context.Context, p Params) string {
	if p.Ingredient == "" {
		return "Please specify an ingredient, e.g., 'recipes with chicken'."
	}

	actx, cancel := s.adapterCtx(ctx)
	defer cancel()
	found, err := s.deps.Recipes.Search(actx, p.Ingredient)
	if err != nil || len(found) == 0 {
		return fmt.Sprintf("No recipes found with %s.", p.Ingredient)
	}

	var links []string
	for _, r := range found {
		links = append(links, link(r.Name, r.URL))
	}

	reply := s.header() + s.choice(s.pack.RecipeIntros, defaultRecipeIntro) + sectionSep + strings.Join(links, sectionSep)
	reply += sectionSep + sectionSep + s.jokeBlock(ctx, "recipe")
	if fact := s.factBlock(ctx, p.Ingredient, "recipe"); fact != "" {
		reply += sectionSep + sectionSep + fact
	}
	return reply
}

func (s *Service) handleMovieDetail(ctx context.Context, p Params) string {
	actx, cancel := s.adapterCtx(ctx)
	defer cancel()
	m, err := s.deps.MovieInfo.Lookup(actx, p.Title, p.Year)
	if err != nil {
		if !errors.Is(err, movieinfo.ErrNotFound) {
			s.log.WithError(err).Warn("movie detail lookup failed")
		}
		return fmt.Sprintf("Sorry, I couldn't find info about %s.", p.Title)
	}

	// Secondary lookup only decorates the title with a link; its failure
	// degrades to an unlinked title, never the whole response.
	titleBlock := fmt.Sprintf("<b>%s</b> (%s)", m.Title, m.Year)
	lctx, lcancel := s.adapterCtx(ctx)
	defer lcancel()
	if ref, err := s.deps.Movies.SearchTitle(lctx, m.Title, m.Year); err == nil && ref != nil {
		titleBlock = fmt.Sprintf("%s (%s)", boldLink(m.Title, ref.URL), m.Year)
	}

	reply := s.choice(s.pack.MovieIntros, defaultMovieIntro) + sectionSep + titleBlock + sectionSep
	reply += fmt.Sprintf("IMDB Rating: %s%s", m.IMDBRating, sectionSep)
	reply += fmt.Sprintf("Plot: %s%s", m.Plot, sectionSep)
	if extra := s.movieExtra(m); extra != "" {
		reply += sectionSep + "<i>" + extra + "</i>"
	}
	return reply
}

func (s *Service) handleMovieDirector(ctx context.Context, p Params) string {
	actx, cancel := s.adapterCtx(ctx)
	defer cancel()
	m, err := s.deps.MovieInfo.Lookup(actx, p.Title, "")
	if err != nil || m.Director == "" || m.Director == "N/A" {
		return fmt.Sprintf("Sorry, I couldn't find the director for %s.", p.Title)
	}
	return fmt.Sprintf("The director of <b>%s</b> is %s.", m.Title, m.Director)
}

func (s *Service) handleMovieStars(ctx context.Context, p Params) string {
	actx, cancel := s.adapterCtx(ctx)
	defer cancel()
	m, err := s.deps.MovieInfo.Lookup(actx, p.Title, "")
	if err != nil || m.Actors == "" || m.Actors == "N/A" {
		return fmt.Sprintf("Sorry, I couldn't find the stars for %s.", p.Title)
	}
	return fmt.Sprintf("The stars of <b>%s</b> are %s.", m.Title, m.Actors)
}

// handleMoviesInCity fans out to the movie catalog and the theater search
// concurrently; the composer waits for both before building the reply.
func (s *Service) handleMoviesInCity(ctx context.Context, p Params) string {
	if p.Location == "" {
		return "Please specify a city, e.g., 'movies in Houston'."
	}

	var (
		popular  []movies.Movie
		theaters []places.Place
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		actx, cancel := s.adapterCtx(gctx)
		defer cancel()
		popular, _ = s.deps.Movies.Popular(actx)
		return nil
	})
	g.Go(func() error {
		actx, cancel := s.adapterCtx(gctx)
		defer cancel()
		theaters, _ = s.deps.Places.Search(actx, p.Location, places.CategoryTheater)
		return nil
	})
	_ = g.Wait()

	var movieBlocks []string
	for _, m := range popular {
		block := boldLink(m.Title, m.URL)
		if note := s.movieNote(m.Title); note != "" {
			block += sectionSep + "<i>" + note + "</i>"
		}
		movieBlocks = append(movieBlocks, block)
	}

	reply := s.header() + s.choice(s.pack.MovieIntros, defaultMovieIntro) + sectionSep
	reply += strings.Join(movieBlocks, sectionSep+sectionSep)

	if len(theaters) > 0 {
		var links []string
		for _, t := range theaters {
			label := t.Name
			if t.Address != "" {
				label += " - " + t.Address
			}
			links = append(links, link(label, mapsSearchLink(label, p.Location)))
		}
		reply += sectionSep + sectionSep + fmt.Sprintf("Here are some theaters in %s:", p.Location) + sectionSep
		reply += strings.Join(links, sectionSep)
	}

	reply += sectionSep + sectionSep + s.jokeBlock(ctx, "movie")
	if fact := s.factBlock(ctx, p.Location, "movie"); fact != "" {
		reply += sectionSep + sectionSep + fact
	}
	return reply
}

func (s *Service) handleRandomMovie(ctx context.Context, p Params) string {
	actx, cancel := s.adapterCtx(ctx)
	defer cancel()
	page, err := s.deps.Movies.DiscoverPage(actx, p.Year, p.Page)
	if err != nil || len(page) == 0 {
		return "Couldn't find a random movie right now."
	}
	m := page[s.rng.Intn(len(page))]
	return fmt.Sprintf("Here is a random movie from %s:%s%s", p.Year, sectionSep, link(m.Title, m.URL))
}

func (s *Service) handleMoviesByGenreYear(ctx context.Context, p Params) string {
	actx, cancel := s.adapterCtx(ctx)
	defer cancel()
	found, err := s.deps.Movies.Discover(actx, p.Genre, p.Year)
	if err != nil || len(found) == 0 {
		return "No movies found for your request."
	}

	var blocks []string
	for _, m := range found {
		block := boldLink(m.Title, m.URL)
		if note := s.movieNote(m.Title); note != "" {
			block += sectionSep + "<i>" + note + "</i>"
		}
		blocks = append(blocks, block)
	}

	intro := s.choice(s.pack.MovieIntros, defaultMovieIntro)
	var header string
	switch {
	case p.Genre != "" && p.Year != "":
		header = fmt.Sprintf("%s Here are some %s movies from %s:", intro, titleCase(p.Genre), p.Year)
	case p.Genre != "":
		header = fmt.Sprintf("%s Here are some %s movies:", intro, titleCase(p.Genre))
	case p.Year != "":
		header = fmt.Sprintf("%s Here are some movies from %s:", intro, p.Year)
	default:
		header = fmt.Sprintf("%s Here are some popular movies right now:", intro)
	}

	reply := header + sectionSep + strings.Join(blocks, sectionSep+sectionSep)
	reply += sectionSep + sectionSep + s.jokeBlock(ctx, "movie")
	factKey := p.Year
	if factKey == "" {
		factKey = "movie"
	}
	if fact := s.factBlock(ctx, factKey, "movie"); fact != "" {
		reply += sectionSep + sectionSep + fact
	}
	return reply
}

func (s *Service) handleBooks(ctx context.Context, p Params) string {
	query := books.Query{Value: p.Subject}
	searchValue := p.Subject
	if p.Author != "" {
		query = books.Query{Value: p.Author, Author: true}
		searchValue = p.Author
	}

	actx, cancel := s.adapterCtx(ctx)
	defer cancel()
	found, err := s.deps.Books.Search(actx, query)
	if err != nil || len(found) == 0 {
		return fmt.Sprintf("No books found for %s.", searchValue)
	}

	var lines []string
	for _, b := range found {
		line := "<strong>" + b.Title + "</strong>"
		if b.URL != "" {
			line = boldLink(b.Title, b.URL)
		}
		line += " by " + b.Authors
		if b.Year != "" {
			line += fmt.Sprintf(" (%s)", b.Year)
		}
		line += fmt.Sprintf(` <span style="color:#888">(%s)</span>`, b.Source)
		lines = append(lines, line)
	}

	reply := s.header() + s.choice(s.pack.BookIntros, defaultBookIntro) + sectionSep + strings.Join(lines, sectionSep)
	reply += sectionSep + sectionSep + s.jokeBlock(ctx, "book")
	if fact := s.factBlock(ctx, searchValue, "book"); fact != "" {
		reply += sectionSep + sectionSep + fact
	}
	return reply
}

func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// handleFallback prefers the small-talk provider when one is configured;
// otherwise (or on any provider failure) a pack fallback line plus a joke
// keeps the reply in character.
func (s *Service) handleFallback(ctx context.Context, text string) string {
	if s.deps.SmallTalk != nil {
		actx, cancel := s.adapterCtx(ctx)
		defer cancel()
		if reply, err := s.deps.SmallTalk.Reply(actx, text); err == nil && reply != "" {
			return reply
		} else if err != nil {
			s.log.WithError(err).Debug("small-talk provider unavailable")
		}
	}

	fallback := s.choice(s.pack.Fallbacks, "Hmm, I didn't catch that. Try 'help' to see what I can do!")
	fallback = strings.ReplaceAll(fallback, "{bot_name}", s.pack.BotName)
	return fallback + sectionSep + sectionSep + s.jokeBlock(ctx, "")
}
