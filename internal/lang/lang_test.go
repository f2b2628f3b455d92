package lang

import "testing"

func TestT(t *testing.T) {
	if got := T(English, "common.score"); got != "Score" {
		t.Errorf("T(en, common.score) = %q", got)
	}
	if got := T(Hindi, "common.score"); got != "अंक" {
		t.Errorf("T(hi, common.score) = %q", got)
	}
}

func TestT_FallsBackToEnglishThenKey(t *testing.T) {
	if got := T(Language("fr"), "common.score"); got != "Score" {
		t.Errorf("unknown language should fall back to English, got %q", got)
	}
	if got := T(English, "no.such.key"); got != "no.such.key" {
		t.Errorf("unknown key should echo the key, got %q", got)
	}
}

func TestParse(t *testing.T) {
	if Parse("hi") != Hindi {
		t.Error("expected hi to parse as Hindi")
	}
	if Parse("en") != English || Parse("") != English || Parse("de") != English {
		t.Error("everything else should default to English")
	}
}

func TestEveryEnglishKeyHasHindi(t *testing.T) {
	for key := range uiStrings[English] {
		if _, ok := uiStrings[Hindi][key]; !ok {
			t.Errorf("key %q missing Hindi translation", key)
		}
	}
	for id := range gameNames[English] {
		if _, ok := gameNames[Hindi][id]; !ok {
			t.Errorf("game %q missing Hindi name", id)
		}
	}
}

func TestGameName(t *testing.T) {
	if got := GameName(Hindi, "quiz-battle"); got != "क्विज युद्ध" {
		t.Errorf("GameName(hi, quiz-battle) = %q", got)
	}
	if got := GameName(English, "unknown-id"); got != "unknown-id" {
		t.Errorf("unknown game should echo the id, got %q", got)
	}
}
