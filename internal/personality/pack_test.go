// README: Personality pack loader tests.
package personality

import (
	"os"
	"path/filepath"
	"testing"
)

func writePack(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "pack.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writePack(t, `{
		"bot_name": "Testbot",
		"greeting_keywords": ["hi", "hey"],
		"greetings": ["Hello from {bot_name}!"],
		"fact_intros": {"default": ["Fun fact:"], "austin": ["Austin lore:"]},
		"jokes": {"restaurant": ["A pun."]}
	}`)

	p, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if p.BotName != "Testbot" {
		t.Errorf("bot name = %q", p.BotName)
	}
	if len(p.GreetingKeywords) != 2 || p.GreetingKeywords[0] != "hi" {
		t.Errorf("greeting keywords = %v", p.GreetingKeywords)
	}
}

func TestLoadDefaultsBotName(t *testing.T) {
	p, err := Load(writePack(t, `{}`))
	if err != nil {
		t.Fatal(err)
	}
	if p.BotName != "Activabot" {
		t.Errorf("bot name = %q", p.BotName)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load("/does/not/exist.json"); err == nil {
		t.Fatal("expected error")
	}
}

func TestFactIntrosForMergesDefault(t *testing.T) {
	p := &Pack{FactIntros: map[string][]string{
		"default": {"Fun fact:"},
		"austin":  {"Austin lore:"},
	}}

	got := p.FactIntrosFor("Austin")
	if len(got) != 2 || got[0] != "Austin lore:" || got[1] != "Fun fact:" {
		t.Fatalf("got %v", got)
	}

	// Unknown topics still get the default intros.
	if got := p.FactIntrosFor("tulsa"); len(got) != 1 || got[0] != "Fun fact:" {
		t.Fatalf("got %v", got)
	}
}

func TestTopicJokes(t *testing.T) {
	p := &Pack{Jokes: map[string][]string{"restaurant": {"A pun."}}}
	if got := p.TopicJokes("Restaurant"); len(got) != 1 {
		t.Fatalf("got %v", got)
	}
	if got := p.TopicJokes(""); got != nil {
		t.Fatalf("got %v, want nil for empty topic", got)
	}
}
