// README: Entity extraction tests.
package bot

import "testing"

func TestExtractLocation(t *testing.T) {
	cases := []struct {
		text string
		want string
	}{
		{"restaurants in dallas", "dallas"},
		{"restaurants near 75001", "75001"},
		{"restaurants in dallas?", "dallas"},
		{"sights in paris, france", "paris, france"},
		// The last preposition determines the split.
		{"restaurants near the mall in austin", "austin"},
		{"events in the park near tulsa", "tulsa"},
		{"places to eat", ""},
	}
	for _, tc := range cases {
		if got := extractLocation(tc.text); got != tc.want {
			t.Errorf("extractLocation(%q) = %q, want %q", tc.text, got, tc.want)
		}
	}
}

func TestExtractGenreUsesTableOrder(t *testing.T) {
	// "action" precedes "thriller" in the table, so it wins regardless of
	// position in the text.
	if got := extractGenre("thriller and action movies"); got != "action" {
		t.Fatalf("got %q, want action", got)
	}
	if got := extractGenre("just movies"); got != "" {
		t.Fatalf("got %q, want empty", got)
	}
}

func TestExtractYear(t *testing.T) {
	if got := extractYear("movies from 2003", fixedRand(0)); got != "2003" {
		t.Errorf("got %q", got)
	}
	if got := extractYear("movies", fixedRand(0)); got != "" {
		t.Errorf("got %q", got)
	}
	// A decade phrase wins over an explicit year.
	if got := extractYear("1995 movies from the 1980s", fixedRand(4)); got != "1984" {
		t.Errorf("got %q", got)
	}
}

func TestExtractBookQuery(t *testing.T) {
	cases := []struct {
		text        string
		wantSubject string
		wantAuthor  string
	}{
		{"books by stephen king", "", "stephen king"},
		{"book author agatha christie", "", "agatha christie"},
		{"books about space travel", "space travel", ""},
		{"book genre mystery", "mystery", ""},
		{"read something on gardening", "gardening", ""},
		{"novel recommendations", "recommendations", ""},
		{"books", "fiction", ""},
	}
	for _, tc := range cases {
		subject, author := extractBookQuery(tc.text)
		if subject != tc.wantSubject || author != tc.wantAuthor {
			t.Errorf("extractBookQuery(%q) = (%q, %q), want (%q, %q)",
				tc.text, subject, author, tc.wantSubject, tc.wantAuthor)
		}
	}
}

func TestTrimTitle(t *testing.T) {
	if got := trimTitle(" inception? "); got != "inception" {
		t.Errorf("got %q", got)
	}
}
