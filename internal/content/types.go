// Package content holds the static, read-only game content: per-day
// question tables for each mini-game, the game registry, and badge
// definitions. Tables ship as embedded JSON and are validated against a
// JSON schema at load; a malformed table fails that load, not the app.
package content

// ParallelSentence pairs a sentence with an equivalent phrasing the
// learner reconstructs from a word bank or free text.
type ParallelSentence struct {
	Day        int      `json:"day"`
	English    string   `json:"english"`
	Parallel   string   `json:"parallel"`
	Words      []string `json:"words"`
	Difficulty int      `json:"difficulty"`
}

// Story is an ordered set of sentences the learner rebuilds.
type Story struct {
	Day        int      `json:"day"`
	Title      string   `json:"title"`
	Sentences  []string `json:"sentences"`
	Theme      string   `json:"theme"`
	Difficulty int      `json:"difficulty"`
}

// ConceptQuestion is one rung of the concept ladder.
type ConceptQuestion struct {
	Day           int      `json:"day"`
	Subject       string   `json:"subject"`
	Step          int      `json:"step"`
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer int      `json:"correctAnswer"`
	Explanation   string   `json:"explanation"`
}

// VisualWordItem shows a pictorial clue and asks for the matching word.
type VisualWordItem struct {
	Day         int      `json:"day"`
	Clue        string   `json:"clue"`
	CorrectWord string   `json:"correctWord"`
	Options     []string `json:"options"`
	Difficulty  int      `json:"difficulty"`
}

// QuizQuestion is a timed quiz-battle question.
type QuizQuestion struct {
	Day           int      `json:"day"`
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer int      `json:"correctAnswer"`
	Subject       string   `json:"subject"`
	Difficulty    int      `json:"difficulty"`
}

// ErrorItem is a sentence with a planted mistake plus its correction.
type ErrorItem struct {
	Day               int    `json:"day"`
	IncorrectSentence string `json:"incorrectSentence"`
	CorrectSentence   string `json:"correctSentence"`
	ErrorType         string `json:"errorType"`
	Explanation       string `json:"explanation"`
}

// MeaningPair links a word to its meaning, with distractors.
type MeaningPair struct {
	Day         int      `json:"day"`
	Word        string   `json:"word"`
	Meaning     string   `json:"meaning"`
	Distractors []string `json:"distractors"`
}

// TimeTravelQuestion is a branching question whose choice selects the
// next era visited.
type TimeTravelQuestion struct {
	Day           int      `json:"day"`
	Era           string   `json:"era"`
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer int      `json:"correctAnswer"`
	NextEra       []string `json:"nextEra"`
	Difficulty    int      `json:"difficulty"`
}
