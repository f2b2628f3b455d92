package content

import (
	"math/rand"
	"testing"
)

func TestLoad(t *testing.T) {
	tables, err := Load()
	if err != nil {
		t.Fatalf("load tables: %v", err)
	}

	if len(tables.ParallelSentences) == 0 {
		t.Error("expected parallel sentences")
	}
	if len(tables.Stories) == 0 {
		t.Error("expected stories")
	}
	if tables.MaxDay() < 7 {
		t.Errorf("expected at least a week of content, got MaxDay=%d", tables.MaxDay())
	}
}

func TestTableIntegrity(t *testing.T) {
	tables, err := Load()
	if err != nil {
		t.Fatalf("load tables: %v", err)
	}

	for _, c := range tables.Concepts {
		if c.CorrectAnswer >= len(c.Options) {
			t.Errorf("day %d step %d: correctAnswer %d out of range (%d options)", c.Day, c.Step, c.CorrectAnswer, len(c.Options))
		}
	}
	for _, q := range tables.QuizQuestions {
		if q.CorrectAnswer >= len(q.Options) {
			t.Errorf("quiz day %d: correctAnswer %d out of range", q.Day, q.CorrectAnswer)
		}
	}
	for _, v := range tables.VisualWords {
		found := false
		for _, o := range v.Options {
			if o == v.CorrectWord {
				found = true
			}
		}
		if !found {
			t.Errorf("visual day %d: correct word %q not among options", v.Day, v.CorrectWord)
		}
	}
	for _, q := range tables.TimeTravel {
		if q.CorrectAnswer >= len(q.Options) {
			t.Errorf("time-travel day %d: correctAnswer %d out of range", q.Day, q.CorrectAnswer)
		}
	}
}

func TestValidateTable_RejectsMalformed(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"not json", `{`},
		{"empty table", `[]`},
		{"missing field", `[{"day": 1, "english": "a"}]`},
		{"unknown field", `[{"day": 1, "english": "a", "parallel": "b", "difficulty": 1, "bogus": true}]`},
		{"bad day", `[{"day": 0, "english": "a", "parallel": "b", "difficulty": 1}]`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if err := validateTable("parallel_sentences", []byte(tc.raw)); err == nil {
				t.Errorf("expected validation failure for %s", tc.name)
			}
		})
	}
}

func TestPerDayAccessors(t *testing.T) {
	tables, err := Load()
	if err != nil {
		t.Fatalf("load tables: %v", err)
	}

	p, ok := tables.ParallelForDay(1)
	if !ok || p.Day != 1 {
		t.Errorf("expected day-1 parallel sentence, got %+v ok=%v", p, ok)
	}
	if _, ok := tables.ParallelForDay(9999); ok {
		t.Error("expected no sentence for day 9999")
	}

	ladder := tables.ConceptsForDay(1)
	for i := 1; i < len(ladder); i++ {
		if ladder[i].Step < ladder[i-1].Step {
			t.Errorf("ladder steps out of order: %v", ladder)
		}
	}
}

func TestDayForLevel(t *testing.T) {
	tables, err := Load()
	if err != nil {
		t.Fatalf("load tables: %v", err)
	}

	days := tables.Days(GameVisualWord)
	if days != 10 {
		t.Errorf("expected 10 visual-word days, got %d", days)
	}

	if got := tables.DayForLevel(GameVisualWord, 1); got != 1 {
		t.Errorf("level 1 should map to day 1, got %d", got)
	}
	if got := tables.DayForLevel(GameVisualWord, days+1); got != 1 {
		t.Errorf("level past the table should wrap to day 1, got %d", got)
	}
	if got := tables.DayForLevel(GameVisualWord, 0); got != 1 {
		t.Errorf("level 0 should clamp to day 1, got %d", got)
	}
	if got := tables.DayForLevel("no-such-game", 3); got != 0 {
		t.Errorf("unknown game should report day 0, got %d", got)
	}
}

func TestShuffle_DeterministicWithSeed(t *testing.T) {
	items := []string{"a", "b", "c", "d", "e", "f"}

	first := Shuffle(items, rand.New(rand.NewSource(7)))
	second := Shuffle(items, rand.New(rand.NewSource(7)))

	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("same seed produced different orders: %v vs %v", first, second)
		}
	}

	// Input must not be mutated.
	if items[0] != "a" || items[5] != "f" {
		t.Errorf("input mutated: %v", items)
	}
}

func TestGameRegistry(t *testing.T) {
	games := Games()
	if len(games) != 8 {
		t.Fatalf("expected 8 games, got %d", len(games))
	}
	seen := make(map[string]bool)
	for _, g := range games {
		if seen[g.ID] {
			t.Errorf("duplicate game id %q", g.ID)
		}
		seen[g.ID] = true
		if g.UnlockLevel < 1 {
			t.Errorf("game %q has invalid unlock level %d", g.ID, g.UnlockLevel)
		}
	}

	if _, ok := GameByID(GameQuizBattle); !ok {
		t.Error("expected quiz-battle in registry")
	}
	if _, ok := GameByID("no-such-game"); ok {
		t.Error("unexpected registry hit")
	}
}
