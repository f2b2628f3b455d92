// Package classroom backs the teacher panel: a class overview computed
// from the learner's record and a mixed quiz room where simulated
// classmates compete on a live scoreboard. The room runs entirely
// offline; peers answer from a seeded rng, so runs are reproducible.
package classroom

import (
	"math/rand"
	"sort"

	"github.com/verbora/verbora/internal/content"
	"github.com/verbora/verbora/internal/progress"
	"github.com/verbora/verbora/internal/store"
)

const questionPoints = 10

// peerSkill is the chance (percent) a simulated classmate answers
// correctly.
const peerSkill = 60

// Quiz is a teacher-built mixed quiz.
type Quiz struct {
	Title     string
	Questions []Question
}

// Question is one quiz-room question.
type Question struct {
	Prompt     string
	Options    []string
	CorrectIdx int
}

// BuildQuiz draws up to n questions from the quiz table across all
// days, in rng order.
func BuildQuiz(tables *content.Tables, title string, n int, rng *rand.Rand) Quiz {
	pool := content.Shuffle(tables.QuizQuestions, rng)
	if n > len(pool) {
		n = len(pool)
	}
	qs := make([]Question, 0, n)
	for _, q := range pool[:n] {
		qs = append(qs, Question{Prompt: q.Question, Options: q.Options, CorrectIdx: q.CorrectAnswer})
	}
	return Quiz{Title: title, Questions: qs}
}

// DefaultPeers returns the simulated classmate names.
func DefaultPeers() []string {
	return []string{"Meena", "Arjun", "Kavya", "Ravi"}
}

// Entry is one scoreboard row.
type Entry struct {
	Student string
	Score   int
}

// Room runs a quiz for the learner plus simulated peers.
type Room struct {
	quiz    Quiz
	learner string
	peers   []string
	rng     *rand.Rand
	scores  map[string]int
	idx     int
}

// NewRoom starts the quiz with everyone at zero.
func NewRoom(quiz Quiz, learner string, peers []string, rng *rand.Rand) *Room {
	scores := map[string]int{learner: 0}
	for _, p := range peers {
		scores[p] = 0
	}
	return &Room{quiz: quiz, learner: learner, peers: peers, rng: rng, scores: scores}
}

// Current returns the active question, or false when the quiz is over.
func (r *Room) Current() (Question, bool) {
	if r.idx >= len(r.quiz.Questions) {
		return Question{}, false
	}
	return r.quiz.Questions[r.idx], true
}

// Submit records the learner's option pick, lets the peers answer, and
// advances to the next question.
func (r *Room) Submit(optionIdx int) (correct bool) {
	q, ok := r.Current()
	if !ok {
		return false
	}
	correct = optionIdx == q.CorrectIdx
	if correct {
		r.scores[r.learner] += questionPoints
	}
	for _, p := range r.peers {
		if r.rng.Intn(100) < peerSkill {
			r.scores[p] += questionPoints
		}
	}
	r.idx++
	return correct
}

// Done reports whether every question has been played.
func (r *Room) Done() bool {
	return r.idx >= len(r.quiz.Questions)
}

// Scoreboard returns the standings, highest score first, names
// breaking ties.
func (r *Room) Scoreboard() []Entry {
	out := make([]Entry, 0, len(r.scores))
	for student, score := range r.scores {
		out = append(out, Entry{Student: student, Score: score})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			return out[i].Score > out[j].Score
		}
		return out[i].Student < out[j].Student
	})
	return out
}

// GameReport is one row of the teacher's per-game table.
type GameReport struct {
	GameID    string
	Level     int
	HighScore int
	Accuracy  float64
}

// Overview is the teacher panel's class summary. With one learner per
// device the class of record has a single student; averages are theirs.
type Overview struct {
	Students     int
	AverageLevel int
	TotalScore   int
	BadgesEarned int
	DailyStreak  int
	Skills       progress.Skills
	PerGame      []GameReport
}

// BuildOverview assembles the overview from the profile and the
// per-game answer statistics.
func BuildOverview(p *progress.Profile, stats []store.GameStats) Overview {
	accuracy := make(map[string]float64, len(stats))
	for _, s := range stats {
		accuracy[s.GameID] = s.Accuracy()
	}

	var perGame []GameReport
	for _, g := range content.Games() {
		gp, ok := p.GamesProgress[g.ID]
		if !ok {
			continue
		}
		perGame = append(perGame, GameReport{
			GameID:    g.ID,
			Level:     gp.CurrentLevel,
			HighScore: gp.HighScore,
			Accuracy:  accuracy[g.ID],
		})
	}

	return Overview{
		Students:     1,
		AverageLevel: p.Level,
		TotalScore:   p.TotalScore,
		BadgesEarned: len(p.Badges),
		DailyStreak:  p.DailyStreak,
		Skills:       p.Skills,
		PerGame:      perGame,
	}
}
