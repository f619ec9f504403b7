// README: Safety gate: benign-context markers override danger patterns.
package bot

import (
	"regexp"
	"strings"
)

// deflectionMessage is the single fixed reply for blocked requests.
const deflectionMessage = "Whoa there! I'm all about fun and good vibes, not felonies or foul play. " +
	"How about a recipe for chocolate cake instead?"

// benignMarkers indicate a media or information query. Any hit means the
// request is never blocked, regardless of what else the text contains; the
// policy prefers false negatives over blocking legitimate lookups.
var benignMarkers = []string{
	"book", "novel", "read", "movie", "film", "show", "series", "documentary",
	"who is", "what is", "tell me about", "info about", "information about",
}

var dangerPatterns = []*regexp.Regexp{
	regexp.MustCompile(`how to (make|build|create|cook|synthesize|prepare) (a )?(bomb|poison|explosive|weapon|drug|meth|overdose)`),
	regexp.MustCompile(`recipe for (poison|explosive|bomb|meth|drugs|overdose)`),
	regexp.MustCompile(`best way to (kill|murder|harm|hurt)`),
	regexp.MustCompile(`where to buy (bomb|poison|drugs|weapon|explosive)`),
	regexp.MustCompile(`how can i (kill|murder|harm|hurt|overdose)`),
}

// blocked reports whether the lowercased text trips the gate. Benign context
// is checked first and always wins.
func blocked(text string) bool {
	for _, marker := range benignMarkers {
		if strings.Contains(text, marker) {
			return false
		}
	}
	for _, pattern := range dangerPatterns {
		if pattern.MatchString(text) {
			return true
		}
	}
	return false
}
