// README: Entity extraction helpers shared by the intent rules.
package bot

import (
	"regexp"
	"strconv"
	"strings"

	"activabot/internal/modules/movies"
)

var (
	prepositionRe   = regexp.MustCompile(`\b(?:in|near)\s+`)
	locationCharsRe = regexp.MustCompile(`^[a-zA-Z0-9 ,]+`)

	yearRe   = regexp.MustCompile(`\b(19\d{2}|20\d{2})\b`)
	decadeRe = regexp.MustCompile(`\b(19\d0|20\d0)s\b`)

	movieDetailRe   = regexp.MustCompile(`(?:get info (?:about|for|on)|tell me about|movie info|info (?:about|for|on)|what is|who is)\s+(.+?)(?:[.?!]|$)`)
	movieDirectorRe = regexp.MustCompile(`(?:who directed|who is the director of|director(?: of| for| in)?)\s+(.+?)(?:[.?!]|$)`)
	movieStarsRe    = regexp.MustCompile(`(?:who starred in|who are the stars of|stars in|star(?: of| in)?)\s+(.+?)(?:[.?!]|$)`)
	recipeRe        = regexp.MustCompile(`recipes? (?:for|with|using)\s+([a-zA-Z0-9 \-]+)`)

	bookAuthorRe  = regexp.MustCompile(`(?:author|by)\s+([a-zA-Z0-9 ,.'\-]+)`)
	bookGenreRe   = regexp.MustCompile(`(?:genre|type|kind of|category)\s+([a-zA-Z0-9 ,.'\-]+)`)
	bookSubjectRe = regexp.MustCompile(`(?:about|on|for|regarding|concerning|related to|subject)\s+([a-zA-Z0-9 ,.'\-]+)`)
	bookTrailRe   = regexp.MustCompile(`(?:books?|novels?|read)\s*(?:about|on|for)?\s*([a-zA-Z0-9 ,.'\-]+)`)
)

// extractLocation returns the text after the LAST "in"/"near", up to
// punctuation. With multiple prepositions the last one determines the split,
// so "restaurants near the mall in austin" yields "austin". No validation
// happens here; city, state, country, and postal codes are all accepted.
func extractLocation(text string) string {
	spans := prepositionRe.FindAllStringIndex(text, -1)
	if len(spans) == 0 {
		return ""
	}
	rest := text[spans[len(spans)-1][1]:]
	loc := locationCharsRe.FindString(rest)
	return strings.TrimSpace(strings.Trim(loc, " ,"))
}

// extractGenre scans the fixed genre table in order; the first name found
// anywhere in the text wins.
func extractGenre(text string) string {
	for _, g := range movies.GenreOrder {
		if strings.Contains(text, g) {
			return g
		}
	}
	return ""
}

// extractYear returns an explicit 4-digit year, or a year sampled uniformly
// from a decade phrasing like "1980s". A decade form wins when both appear.
func extractYear(text string, rng Rand) string {
	year := ""
	if m := yearRe.FindStringSubmatch(text); m != nil {
		year = m[1]
	}
	if m := decadeRe.FindStringSubmatch(text); m != nil {
		start, _ := strconv.Atoi(m[1])
		year = strconv.Itoa(start + rng.Intn(10))
	}
	return year
}

// trimTitle strips trailing punctuation from a captured title.
func trimTitle(s string) string {
	return strings.Trim(strings.TrimSpace(s), " .?!,")
}

// extractBookQuery resolves the book search mode: an explicit author marker
// wins over a genre/subject marker, which wins over a generic "about/on/for"
// marker, which wins over a trailing word, defaulting to "fiction".
func extractBookQuery(text string) (subject, author string) {
	if m := bookAuthorRe.FindStringSubmatch(text); m != nil {
		return "", strings.TrimSpace(m[1])
	}
	if m := bookGenreRe.FindStringSubmatch(text); m != nil {
		return strings.TrimSpace(m[1]), ""
	}
	if m := bookSubjectRe.FindStringSubmatch(text); m != nil {
		return strings.TrimSpace(m[1]), ""
	}
	if m := bookTrailRe.FindStringSubmatch(text); m != nil && strings.TrimSpace(m[1]) != "" {
		return strings.TrimSpace(m[1]), ""
	}
	return "fiction", ""
}

// containsAny reports a plain substring hit for any needle.
func containsAny(text string, needles []string) bool {
	for _, n := range needles {
		if n != "" && strings.Contains(text, n) {
			return true
		}
	}
	return false
}

// containsWord reports a whole-word hit for any needle, so the greeting
// keyword "hi" does not match inside "history" or "chic".
func containsWord(text string, needles []string) bool {
	for _, n := range needles {
		if n == "" {
			continue
		}
		re := regexp.MustCompile(`\b` + regexp.QuoteMeta(n) + `\b`)
		if re.MatchString(text) {
			return true
		}
	}
	return false
}
