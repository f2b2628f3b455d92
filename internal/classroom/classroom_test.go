package classroom

import (
	"math/rand"
	"testing"

	"github.com/verbora/verbora/internal/content"
	"github.com/verbora/verbora/internal/progress"
	"github.com/verbora/verbora/internal/store"
)

func loadTables(t *testing.T) *content.Tables {
	t.Helper()
	tables, err := content.Load()
	if err != nil {
		t.Fatalf("load tables: %v", err)
	}
	return tables
}

func TestBuildQuiz(t *testing.T) {
	tables := loadTables(t)
	quiz := BuildQuiz(tables, "Friday Quiz", 5, rand.New(rand.NewSource(1)))

	if quiz.Title != "Friday Quiz" {
		t.Errorf("unexpected title %q", quiz.Title)
	}
	if len(quiz.Questions) != 5 {
		t.Fatalf("expected 5 questions, got %d", len(quiz.Questions))
	}
	for i, q := range quiz.Questions {
		if q.CorrectIdx >= len(q.Options) {
			t.Errorf("question %d: correct index %d out of range", i, q.CorrectIdx)
		}
	}
}

func TestBuildQuiz_CapsAtPoolSize(t *testing.T) {
	tables := loadTables(t)
	quiz := BuildQuiz(tables, "All of it", 10000, rand.New(rand.NewSource(1)))
	if len(quiz.Questions) != len(tables.QuizQuestions) {
		t.Errorf("expected the whole pool, got %d of %d", len(quiz.Questions), len(tables.QuizQuestions))
	}
}

func TestRoomScoring(t *testing.T) {
	quiz := Quiz{Title: "t", Questions: []Question{
		{Prompt: "1+1?", Options: []string{"1", "2"}, CorrectIdx: 1},
		{Prompt: "2+2?", Options: []string{"4", "5"}, CorrectIdx: 0},
	}}
	room := NewRoom(quiz, "Asha", DefaultPeers(), rand.New(rand.NewSource(3)))

	if _, ok := room.Current(); !ok {
		t.Fatal("expected a first question")
	}
	if !room.Submit(1) {
		t.Error("correct pick judged wrong")
	}
	if room.Submit(1) {
		t.Error("wrong pick judged correct")
	}
	if !room.Done() {
		t.Error("expected room done after both questions")
	}
	if _, ok := room.Current(); ok {
		t.Error("no question should remain")
	}

	board := room.Scoreboard()
	if len(board) != 5 {
		t.Fatalf("expected learner plus 4 peers, got %d rows", len(board))
	}
	var asha *Entry
	for i := range board {
		if board[i].Student == "Asha" {
			asha = &board[i]
		}
	}
	if asha == nil || asha.Score != 10 {
		t.Errorf("expected Asha with 10 points, got %+v", asha)
	}
	for i := 1; i < len(board); i++ {
		if board[i].Score > board[i-1].Score {
			t.Errorf("scoreboard out of order at %d: %+v", i, board)
		}
	}
}

func TestRoomPeersDeterministicPerSeed(t *testing.T) {
	quiz := Quiz{Questions: []Question{{Options: []string{"a", "b"}, CorrectIdx: 0}}}

	run := func() []Entry {
		room := NewRoom(quiz, "Asha", DefaultPeers(), rand.New(rand.NewSource(11)))
		room.Submit(0)
		return room.Scoreboard()
	}

	first, second := run(), run()
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("same seed gave different boards: %v vs %v", first, second)
		}
	}
}

func TestBuildOverview(t *testing.T) {
	p := progress.NewProfile("Asha")
	p.Skills = progress.Skills{Vocabulary: 40, Logic: 30, Creativity: 20, Speed: 10}
	p.Level = 3
	p.TotalScore = 420
	p.DailyStreak = 6
	p.Badges = []string{"word-wizard", "streak-keeper"}
	p.Game(content.GameQuizBattle).CurrentLevel = 4
	p.Game(content.GameQuizBattle).HighScore = 150

	stats := []store.GameStats{
		{GameID: content.GameQuizBattle, Answered: 10, Correct: 8, Exact: 8},
	}

	ov := BuildOverview(p, stats)
	if ov.Students != 1 || ov.AverageLevel != 3 || ov.BadgesEarned != 2 {
		t.Errorf("unexpected overview %+v", ov)
	}
	if ov.TotalScore != 420 || ov.DailyStreak != 6 {
		t.Errorf("unexpected totals %+v", ov)
	}
	if len(ov.PerGame) != 1 {
		t.Fatalf("expected one per-game row, got %d", len(ov.PerGame))
	}
	row := ov.PerGame[0]
	if row.GameID != content.GameQuizBattle || row.Level != 4 || row.HighScore != 150 {
		t.Errorf("unexpected row %+v", row)
	}
	if row.Accuracy != 0.8 {
		t.Errorf("expected accuracy 0.8, got %v", row.Accuracy)
	}
}
