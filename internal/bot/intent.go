// README: Intent enumeration and extracted request parameters.
package bot

// Intent is the classified purpose of a request. Exactly one intent is
// selected per request; IntentFallback always matches, so selection is total.
type Intent string

const (
	IntentGreeting         Intent = "greeting"
	IntentThanks           Intent = "thanks"
	IntentGoodbye          Intent = "goodbye"
	IntentHelp             Intent = "help"
	IntentMovieDetail      Intent = "movie_detail"
	IntentMovieDirector    Intent = "movie_director"
	IntentMovieStars       Intent = "movie_stars"
	IntentRestaurantSearch Intent = "restaurant_search"
	IntentEventSearch      Intent = "event_search"
	IntentSightSearch      Intent = "sight_search"
	IntentBrewerySearch    Intent = "brewery_search"
	IntentRecipeSearch     Intent = "recipe_search"
	IntentMovieByGenreYear Intent = "movie_by_genre_year"
	IntentRandomMovie      Intent = "random_movie"
	IntentMoviesInCity     Intent = "movies_in_city"
	IntentTheaterSearch    Intent = "theater_search"
	IntentBookSearch       Intent = "book_search"
	IntentDangerBlocked    Intent = "danger_blocked"
	IntentFallback         Intent = "fallback"
)

// Params holds the entities extracted for an intent. Which fields are set
// depends on the intent; absence triggers intent-specific defaults.
type Params struct {
	Location   string
	Title      string
	Year       string
	Genre      string
	Ingredient string
	Subject    string
	Author     string

	// Page is the sampled discovery page for random-movie requests.
	Page int
}
