package content

import (
	"embed"
	"encoding/json"
	"fmt"
	"sort"
)

//go:embed data/*.json
var dataFS embed.FS

// Tables holds every loaded content table.
type Tables struct {
	ParallelSentences []ParallelSentence
	Stories           []Story
	Concepts          []ConceptQuestion
	VisualWords       []VisualWordItem
	QuizQuestions     []QuizQuestion
	ErrorItems        []ErrorItem
	MeaningPairs      []MeaningPair
	TimeTravel        []TimeTravelQuestion
}

// Load reads and validates all embedded tables.
func Load() (*Tables, error) {
	t := &Tables{}
	if err := loadTable("parallel_sentences", &t.ParallelSentences); err != nil {
		return nil, err
	}
	if err := loadTable("stories", &t.Stories); err != nil {
		return nil, err
	}
	if err := loadTable("concepts", &t.Concepts); err != nil {
		return nil, err
	}
	if err := loadTable("visual_words", &t.VisualWords); err != nil {
		return nil, err
	}
	if err := loadTable("quiz_questions", &t.QuizQuestions); err != nil {
		return nil, err
	}
	if err := loadTable("error_items", &t.ErrorItems); err != nil {
		return nil, err
	}
	if err := loadTable("meaning_pairs", &t.MeaningPairs); err != nil {
		return nil, err
	}
	if err := loadTable("time_travel", &t.TimeTravel); err != nil {
		return nil, err
	}
	return t, nil
}

// loadTable reads data/<name>.json, validates it, and decodes into dst.
func loadTable(name string, dst any) error {
	raw, err := dataFS.ReadFile("data/" + name + ".json")
	if err != nil {
		return fmt.Errorf("read table %s: %w", name, err)
	}
	if err := validateTable(name, raw); err != nil {
		return fmt.Errorf("table %s: %w", name, err)
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("decode table %s: %w", name, err)
	}
	return nil
}

// MaxDay returns the highest day present in the parallel-sentence table,
// which paces the day counter for the whole app.
func (t *Tables) MaxDay() int {
	maxDay := 0
	for _, p := range t.ParallelSentences {
		if p.Day > maxDay {
			maxDay = p.Day
		}
	}
	return maxDay
}

// Days returns the highest day present in the table backing the given
// game, so callers can wrap a level counter onto available content.
func (t *Tables) Days(gameID string) int {
	maxDay := 0
	bump := func(day int) {
		if day > maxDay {
			maxDay = day
		}
	}
	switch gameID {
	case GameParallelSentence:
		for _, r := range t.ParallelSentences {
			bump(r.Day)
		}
	case GameStoryBuilder:
		for _, r := range t.Stories {
			bump(r.Day)
		}
	case GameConceptLadder:
		for _, r := range t.Concepts {
			bump(r.Day)
		}
	case GameVisualWord:
		for _, r := range t.VisualWords {
			bump(r.Day)
		}
	case GameQuizBattle:
		for _, r := range t.QuizQuestions {
			bump(r.Day)
		}
	case GameErrorDetective:
		for _, r := range t.ErrorItems {
			bump(r.Day)
		}
	case GameMatchMeaning:
		for _, r := range t.MeaningPairs {
			bump(r.Day)
		}
	case GameTimeTravel:
		for _, r := range t.TimeTravel {
			bump(r.Day)
		}
	}
	return maxDay
}

// DayForLevel wraps a 1-based level onto the game's available days.
func (t *Tables) DayForLevel(gameID string, level int) int {
	days := t.Days(gameID)
	if days == 0 {
		return 0
	}
	if level < 1 {
		level = 1
	}
	return (level-1)%days + 1
}

// ParallelForDay returns the sentence pair for the day.
func (t *Tables) ParallelForDay(day int) (ParallelSentence, bool) {
	for _, p := range t.ParallelSentences {
		if p.Day == day {
			return p, true
		}
	}
	return ParallelSentence{}, false
}

// StoryForDay returns the story for the day.
func (t *Tables) StoryForDay(day int) (Story, bool) {
	for _, s := range t.Stories {
		if s.Day == day {
			return s, true
		}
	}
	return Story{}, false
}

// ConceptsForDay returns the day's ladder questions ordered by step.
func (t *Tables) ConceptsForDay(day int) []ConceptQuestion {
	var out []ConceptQuestion
	for _, c := range t.Concepts {
		if c.Day == day {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Step < out[j].Step })
	return out
}

// VisualForDay returns the visual-word item for the day.
func (t *Tables) VisualForDay(day int) (VisualWordItem, bool) {
	for _, v := range t.VisualWords {
		if v.Day == day {
			return v, true
		}
	}
	return VisualWordItem{}, false
}

// QuizForDay returns the day's quiz-battle questions.
func (t *Tables) QuizForDay(day int) []QuizQuestion {
	var out []QuizQuestion
	for _, q := range t.QuizQuestions {
		if q.Day == day {
			out = append(out, q)
		}
	}
	return out
}

// ErrorForDay returns the error-detective item for the day.
func (t *Tables) ErrorForDay(day int) (ErrorItem, bool) {
	for _, e := range t.ErrorItems {
		if e.Day == day {
			return e, true
		}
	}
	return ErrorItem{}, false
}

// MeaningsForDay returns the day's word-meaning pairs.
func (t *Tables) MeaningsForDay(day int) []MeaningPair {
	var out []MeaningPair
	for _, m := range t.MeaningPairs {
		if m.Day == day {
			out = append(out, m)
		}
	}
	return out
}

// TimeTravelForDay returns the time-travel question for the day.
func (t *Tables) TimeTravelForDay(day int) (TimeTravelQuestion, bool) {
	for _, q := range t.TimeTravel {
		if q.Day == day {
			return q, true
		}
	}
	return TimeTravelQuestion{}, false
}
