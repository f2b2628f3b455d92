package game

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/verbora/verbora/internal/content"
	"github.com/verbora/verbora/internal/match"
	"github.com/verbora/verbora/internal/progress"
)

func loadTables(t *testing.T) *content.Tables {
	t.Helper()
	tables, err := content.Load()
	if err != nil {
		t.Fatalf("load tables: %v", err)
	}
	return tables
}

func newRNG() *rand.Rand {
	return rand.New(rand.NewSource(42))
}

func TestNew_AllGamesConstruct(t *testing.T) {
	tables := loadTables(t)
	for _, g := range content.Games() {
		e, err := New(g.ID, tables, 1, newRNG(), match.DefaultThreshold)
		if err != nil {
			t.Errorf("game %s: %v", g.ID, err)
			continue
		}
		if e.GameID() != g.ID {
			t.Errorf("game %s: GameID reported %s", g.ID, e.GameID())
		}
		if e.Phase() != PhaseAnswering {
			t.Errorf("game %s: fresh engine in phase %d", g.ID, e.Phase())
		}
	}
}

func TestNew_UnknownGame(t *testing.T) {
	tables := loadTables(t)
	if _, err := New("no-such-game", tables, 1, newRNG(), match.DefaultThreshold); err == nil {
		t.Fatal("expected error for unknown game")
	}
}

func TestNew_NoContentForDay(t *testing.T) {
	tables := loadTables(t)
	_, err := New(content.GameStoryBuilder, tables, 9999, newRNG(), match.DefaultThreshold)
	if !errors.Is(err, ErrNoContent) {
		t.Fatalf("expected ErrNoContent, got %v", err)
	}
}

func TestParallelSentence_ExactEarnsBonus(t *testing.T) {
	tables := loadTables(t)
	e, err := NewParallelSentence(tables, 1, newRNG(), match.DefaultThreshold)
	if err != nil {
		t.Fatal(err)
	}

	q := e.Question()
	if q.Context != "The sun rises in the east." {
		t.Errorf("unexpected context %q", q.Context)
	}
	if len(q.WordBank) != 8 {
		t.Errorf("expected 8 word-bank entries, got %d", len(q.WordBank))
	}

	fb, err := e.Submit(Answer{Text: "The sun comes up in the eastern sky."})
	if err != nil {
		t.Fatal(err)
	}
	if !fb.Correct || !fb.Exact {
		t.Errorf("expected exact match, got %+v", fb)
	}
	if fb.ScoreDelta != 15 || fb.SkillDelta != 3 {
		t.Errorf("expected exact bonus 15/+3, got %d/%d", fb.ScoreDelta, fb.SkillDelta)
	}
	if fb.Skill != progress.SkillVocabulary {
		t.Errorf("expected vocabulary skill, got %s", fb.Skill)
	}

	e.Acknowledge()
	if e.Phase() != PhaseComplete {
		t.Errorf("expected complete after single question, got phase %d", e.Phase())
	}
	out := e.Outcome()
	if out.Score != 15 || !out.Perfect() || !out.AllExact {
		t.Errorf("unexpected outcome %+v", out)
	}
}

func TestParallelSentence_FuzzyScoresBase(t *testing.T) {
	tables := loadTables(t)
	e, err := NewParallelSentence(tables, 1, newRNG(), match.DefaultThreshold)
	if err != nil {
		t.Fatal(err)
	}

	fb, err := e.Submit(Answer{Text: "The sun comes up in the estern sky"})
	if err != nil {
		t.Fatal(err)
	}
	if !fb.Correct || fb.Exact {
		t.Errorf("expected fuzzy match, got %+v", fb)
	}
	if fb.ScoreDelta != 10 || fb.SkillDelta != 2 {
		t.Errorf("expected base 10/+2, got %d/%d", fb.ScoreDelta, fb.SkillDelta)
	}
	if fb.BestMatch != "the sun comes up in the eastern sky." {
		t.Errorf("unexpected best match %q", fb.BestMatch)
	}

	e.Acknowledge()
	if e.Outcome().AllExact {
		t.Error("fuzzy run should not count as all-exact")
	}
}

func TestParallelSentence_PhaseGuards(t *testing.T) {
	tables := loadTables(t)
	e, err := NewParallelSentence(tables, 1, newRNG(), match.DefaultThreshold)
	if err != nil {
		t.Fatal(err)
	}

	// Acknowledge before any answer is a no-op.
	e.Acknowledge()
	if e.Phase() != PhaseAnswering {
		t.Errorf("acknowledge while answering changed phase to %d", e.Phase())
	}

	if _, err := e.Submit(Answer{Text: "anything"}); err != nil {
		t.Fatal(err)
	}
	if _, err := e.Submit(Answer{Text: "again"}); err == nil {
		t.Error("expected error submitting during feedback")
	}
}

func TestConceptLadder_FullClimb(t *testing.T) {
	tables := loadTables(t)
	e, err := NewConceptLadder(tables, 1, newRNG(), match.DefaultThreshold)
	if err != nil {
		t.Fatal(err)
	}

	answers := []string{"Sunlight", "Leaves", "Oxygen"}
	for i, a := range answers {
		q := e.Question()
		if len(q.Options) != 4 {
			t.Fatalf("rung %d: expected 4 options, got %v", i, q.Options)
		}
		fb, err := e.Submit(Answer{Text: a})
		if err != nil {
			t.Fatal(err)
		}
		if !fb.Correct {
			t.Errorf("rung %d: %q judged wrong", i, a)
		}
		if fb.ScoreDelta != 10 || fb.Skill != progress.SkillLogic || fb.SkillDelta != 2 {
			t.Errorf("rung %d: unexpected reward %+v", i, fb)
		}
		if fb.Explanation == "" {
			t.Errorf("rung %d: missing explanation", i)
		}
		e.Acknowledge()
	}

	if e.Phase() != PhaseComplete {
		t.Fatalf("expected complete, got phase %d", e.Phase())
	}
	out := e.Outcome()
	if out.Score != 30 || out.Questions != 3 || !out.Perfect() {
		t.Errorf("unexpected outcome %+v", out)
	}
}

func TestConceptLadder_WrongOption(t *testing.T) {
	tables := loadTables(t)
	e, err := NewConceptLadder(tables, 1, newRNG(), match.DefaultThreshold)
	if err != nil {
		t.Fatal(err)
	}

	fb, err := e.Submit(Answer{Text: "Darkness"})
	if err != nil {
		t.Fatal(err)
	}
	if fb.Correct || fb.ScoreDelta != 0 || fb.SkillDelta != 0 {
		t.Errorf("wrong option rewarded: %+v", fb)
	}
	if fb.Explanation == "" {
		t.Error("wrong answer should still carry the explanation")
	}
}

func TestVisualWord(t *testing.T) {
	tables := loadTables(t)
	e, err := NewVisualWord(tables, 1, newRNG(), match.DefaultThreshold)
	if err != nil {
		t.Fatal(err)
	}

	q := e.Question()
	if q.Context != "🌞" {
		t.Errorf("unexpected clue %q", q.Context)
	}
	found := false
	for _, o := range q.Options {
		if o == "sun" {
			found = true
		}
	}
	if !found {
		t.Fatalf("correct word missing from options %v", q.Options)
	}

	fb, err := e.Submit(Answer{Text: "sun"})
	if err != nil {
		t.Fatal(err)
	}
	if !fb.Correct || fb.ScoreDelta != 10 || fb.Skill != progress.SkillVocabulary {
		t.Errorf("unexpected feedback %+v", fb)
	}
	e.Acknowledge()
	if e.Phase() != PhaseComplete {
		t.Errorf("expected complete, got phase %d", e.Phase())
	}
}

func TestQuizBattle_TimeBonus(t *testing.T) {
	tables := loadTables(t)
	e, err := NewQuizBattle(tables, 1, newRNG(), match.DefaultThreshold)
	if err != nil {
		t.Fatal(err)
	}

	answers := []string{"Jupiter", "8", "42"}
	fb, err := e.Submit(Answer{Text: answers[0], Remaining: 7})
	if err != nil {
		t.Fatal(err)
	}
	if fb.ScoreDelta != 17 {
		t.Errorf("expected 10 + 7 time bonus, got %d", fb.ScoreDelta)
	}
	if fb.Skill != progress.SkillSpeed || fb.SkillDelta != 2 {
		t.Errorf("unexpected skill reward %+v", fb)
	}
	e.Acknowledge()

	// No seconds left: base score only.
	fb, err = e.Submit(Answer{Text: answers[1], Remaining: 0})
	if err != nil {
		t.Fatal(err)
	}
	if fb.ScoreDelta != 10 {
		t.Errorf("expected base 10 with no time left, got %d", fb.ScoreDelta)
	}
	e.Acknowledge()

	if _, err := e.Submit(Answer{Text: answers[2], Remaining: 3}); err != nil {
		t.Fatal(err)
	}
	e.Acknowledge()

	out := e.Outcome()
	if out.Score != 17+10+13 {
		t.Errorf("unexpected total %d", out.Score)
	}
	if out.Questions != 3 || !out.Perfect() {
		t.Errorf("unexpected outcome %+v", out)
	}
}

func TestQuizBattle_RivalDeterministicPerSeed(t *testing.T) {
	tables := loadTables(t)

	run := func() int {
		e, err := NewQuizBattle(tables, 1, rand.New(rand.NewSource(99)), match.DefaultThreshold)
		if err != nil {
			t.Fatal(err)
		}
		for e.Phase() != PhaseComplete {
			if _, err := e.Submit(Answer{Text: e.Question().Options[0]}); err != nil {
				t.Fatal(err)
			}
			e.Acknowledge()
		}
		return e.Outcome().RivalScore
	}

	first := run()
	second := run()
	if first != second {
		t.Errorf("same seed gave rival scores %d and %d", first, second)
	}
	if first < 0 {
		t.Errorf("negative rival score %d", first)
	}
}

func TestTimeTravel_ChainsThroughEras(t *testing.T) {
	tables := loadTables(t)
	e, err := NewTimeTravel(tables, 1, newRNG(), match.DefaultThreshold)
	if err != nil {
		t.Fatal(err)
	}

	answers := []string{
		"A rope with knots",
		"12",
		"The printing press",
		"The stars",
		"Steam",
		"Yuri Gagarin",
	}
	eras := []string{
		"Ancient Egypt",
		"Ancient Rome",
		"The Middle Ages",
		"The Age of Sail",
		"The Industrial Age",
		"The Space Age",
	}
	difficulties := []int{1, 1, 2, 2, 3, 3}

	for i, a := range answers {
		q := e.Question()
		if q.Context != eras[i] {
			t.Fatalf("step %d: expected era %q, got %q", i, eras[i], q.Context)
		}
		fb, err := e.Submit(Answer{Text: a})
		if err != nil {
			t.Fatal(err)
		}
		if !fb.Correct {
			t.Errorf("step %d: %q judged wrong", i, a)
		}
		if fb.ScoreDelta != 10*difficulties[i] || fb.SkillDelta != difficulties[i] {
			t.Errorf("step %d: expected reward scaled by difficulty %d, got %+v", i, difficulties[i], fb)
		}
		if fb.Skill != progress.SkillLogic {
			t.Errorf("step %d: expected logic skill, got %s", i, fb.Skill)
		}
		e.Acknowledge()
	}

	if e.Phase() != PhaseComplete {
		t.Fatalf("expected complete after the era chain, got phase %d", e.Phase())
	}
	out := e.Outcome()
	if out.Questions != 6 || out.Score != 120 || !out.Perfect() {
		t.Errorf("unexpected outcome %+v", out)
	}
}

func TestStoryBuilder_RebuildsInOrder(t *testing.T) {
	tables := loadTables(t)
	e, err := NewStoryBuilder(tables, 1, newRNG(), match.DefaultThreshold)
	if err != nil {
		t.Fatal(err)
	}

	story, _ := tables.StoryForDay(1)
	for i, sentence := range story.Sentences {
		q := e.Question()
		if len(q.Options) != len(story.Sentences)-i {
			t.Fatalf("step %d: expected %d options, got %d", i, len(story.Sentences)-i, len(q.Options))
		}
		fb, err := e.Submit(Answer{Text: sentence})
		if err != nil {
			t.Fatal(err)
		}
		if !fb.Correct {
			t.Errorf("step %d: correct sentence judged wrong", i)
		}
		if fb.ScoreDelta != 10 || fb.Skill != progress.SkillCreativity || fb.SkillDelta != 2 {
			t.Errorf("step %d: unexpected reward %+v", i, fb)
		}
		e.Acknowledge()
	}

	if e.Phase() != PhaseComplete {
		t.Fatalf("expected complete, got phase %d", e.Phase())
	}
	out := e.Outcome()
	if out.Score != 60 || out.Questions != 6 || !out.Perfect() {
		t.Errorf("unexpected outcome %+v", out)
	}
}

func TestStoryBuilder_WrongPickStillAdvances(t *testing.T) {
	tables := loadTables(t)
	e, err := NewStoryBuilder(tables, 1, newRNG(), match.DefaultThreshold)
	if err != nil {
		t.Fatal(err)
	}

	story, _ := tables.StoryForDay(1)
	fb, err := e.Submit(Answer{Text: story.Sentences[3]})
	if err != nil {
		t.Fatal(err)
	}
	if fb.Correct {
		t.Error("out-of-order sentence judged correct")
	}
	e.Acknowledge()

	// The story continues from the true next sentence.
	q := e.Question()
	if q.Context != story.Sentences[0] {
		t.Errorf("expected story to carry the correct opening, got %q", q.Context)
	}
	if len(q.Options) != 5 {
		t.Errorf("expected 5 remaining options, got %d", len(q.Options))
	}
}

func TestErrorDetective(t *testing.T) {
	tables := loadTables(t)
	e, err := NewErrorDetective(tables, 1, newRNG(), match.DefaultThreshold)
	if err != nil {
		t.Fatal(err)
	}

	q := e.Question()
	if q.Context != "She go to school every day." {
		t.Errorf("unexpected sentence %q", q.Context)
	}

	fb, err := e.Submit(Answer{Text: "she goes to school every day."})
	if err != nil {
		t.Fatal(err)
	}
	if !fb.Correct || !fb.Exact {
		t.Errorf("case-only difference should be exact, got %+v", fb)
	}
	if fb.ScoreDelta != 15 || fb.Skill != progress.SkillLogic || fb.SkillDelta != 3 {
		t.Errorf("unexpected reward %+v", fb)
	}
	if fb.Explanation == "" {
		t.Error("expected the grammar explanation")
	}
}

func TestErrorDetective_NearMissAndMiss(t *testing.T) {
	tables := loadTables(t)

	e, err := NewErrorDetective(tables, 1, newRNG(), match.DefaultThreshold)
	if err != nil {
		t.Fatal(err)
	}
	fb, err := e.Submit(Answer{Text: "She goes to school evry day."})
	if err != nil {
		t.Fatal(err)
	}
	if !fb.Correct || fb.Exact {
		t.Errorf("typo answer should fuzzy-match, got %+v", fb)
	}

	e, err = NewErrorDetective(tables, 1, newRNG(), match.DefaultThreshold)
	if err != nil {
		t.Fatal(err)
	}
	fb, err = e.Submit(Answer{Text: "bananas are yellow"})
	if err != nil {
		t.Fatal(err)
	}
	if fb.Correct || fb.ScoreDelta != 0 {
		t.Errorf("unrelated answer rewarded: %+v", fb)
	}
}

func TestMatchMeaning(t *testing.T) {
	tables := loadTables(t)
	e, err := NewMatchMeaning(tables, 1, newRNG(), match.DefaultThreshold)
	if err != nil {
		t.Fatal(err)
	}

	answers := map[string]string{
		`What does "enormous" mean?`: "very large",
		`What does "rapid" mean?`:    "very fast",
	}
	for i := 0; i < 2; i++ {
		q := e.Question()
		want, ok := answers[q.Prompt]
		if !ok {
			t.Fatalf("unexpected prompt %q", q.Prompt)
		}
		fb, err := e.Submit(Answer{Text: want})
		if err != nil {
			t.Fatal(err)
		}
		if !fb.Correct || fb.ScoreDelta != 10 || fb.Skill != progress.SkillVocabulary {
			t.Errorf("question %d: unexpected feedback %+v", i, fb)
		}
		e.Acknowledge()
	}

	out := e.Outcome()
	if out.Score != 20 || out.Questions != 2 || !out.Perfect() {
		t.Errorf("unexpected outcome %+v", out)
	}
}

func TestOptionShuffleKeepsCorrectIndex(t *testing.T) {
	options := []string{"a", "b", "c", "d"}
	for seed := int64(0); seed < 20; seed++ {
		shuffled, idx := shuffledOptions(options, 2, rand.New(rand.NewSource(seed)))
		if shuffled[idx] != "c" {
			t.Fatalf("seed %d: correct index points at %q", seed, shuffled[idx])
		}
		if len(shuffled) != 4 {
			t.Fatalf("seed %d: option count changed", seed)
		}
	}
	if options[2] != "c" {
		t.Error("input options mutated")
	}
}

func TestThreshold_Configurable(t *testing.T) {
	tables := loadTables(t)

	// A near-miss that clears the default cutoff fails a stricter one.
	e, err := NewErrorDetective(tables, 1, newRNG(), 0.99)
	if err != nil {
		t.Fatal(err)
	}
	fb, err := e.Submit(Answer{Text: "She goes to school evry day."})
	if err != nil {
		t.Fatal(err)
	}
	if fb.Correct {
		t.Errorf("typo answer should fail at threshold 0.99, got %+v", fb)
	}

	// Out-of-range values fall back to the default cutoff.
	e, err = NewErrorDetective(tables, 1, newRNG(), 0)
	if err != nil {
		t.Fatal(err)
	}
	fb, err = e.Submit(Answer{Text: "She goes to school evry day."})
	if err != nil {
		t.Fatal(err)
	}
	if !fb.Correct {
		t.Errorf("zero threshold should fall back to the default, got %+v", fb)
	}
}
