// README: TMDb genre-name table used by discovery and by the entity extractor.
package movies

// GenreOrder lists the recognised genre names in matching priority order; the
// extractor scans it front to back and the first name found in the text wins.
var GenreOrder = []string{
	"action",
	"adventure",
	"animation",
	"comedy",
	"crime",
	"documentary",
	"drama",
	"family",
	"fantasy",
	"history",
	"horror",
	"music",
	"mystery",
	"romance",
	"science fiction",
	"sci-fi",
	"tv movie",
	"thriller",
	"war",
	"western",
}

// genreIDs maps genre names to TMDb numeric genre IDs.
var genreIDs = map[string]int{
	"action":          28,
	"adventure":       12,
	"animation":       16,
	"comedy":          35,
	"crime":           80,
	"documentary":     99,
	"drama":           18,
	"family":          10751,
	"fantasy":         14,
	"history":         36,
	"horror":          27,
	"music":           10402,
	"mystery":         9648,
	"romance":         10749,
	"science fiction": 878,
	"sci-fi":          878,
	"tv movie":        10770,
	"thriller":        53,
	"war":             10752,
	"western":         37,
}

// KnownGenre reports whether name is in the genre table.
func KnownGenre(name string) bool {
	_, ok := genreIDs[name]
	return ok
}
