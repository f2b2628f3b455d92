// Package progress holds the learner profile: skills, level, streak,
// badges and per-game progress, plus the merge/clamp policy for every
// mutation. Persistence lives behind the Repo interface so the backend
// can be swapped without touching game logic.
package progress

import (
	"time"

	"github.com/google/uuid"
)

const (
	// MaxSkill caps each skill track.
	MaxSkill = 100

	// LevelDivisor converts summed skill points into a level:
	// level = sum/LevelDivisor + 1.
	LevelDivisor = 50

	// AvatarCount is the number of configured avatars (1-based index).
	AvatarCount = 6

	// DateFormat is the calendar-day format used for streak bookkeeping.
	DateFormat = "2006-01-02"
)

// Skill identifies one of the four proficiency tracks.
type Skill string

const (
	SkillVocabulary Skill = "vocabulary"
	SkillLogic      Skill = "logic"
	SkillCreativity Skill = "creativity"
	SkillSpeed      Skill = "speed"
)

// AllSkills returns the skills in display order.
func AllSkills() []Skill {
	return []Skill{SkillVocabulary, SkillLogic, SkillCreativity, SkillSpeed}
}

// DisplayName returns a human-readable label for the skill.
func (s Skill) DisplayName() string {
	switch s {
	case SkillVocabulary:
		return "Vocabulary"
	case SkillLogic:
		return "Logic"
	case SkillCreativity:
		return "Creativity"
	case SkillSpeed:
		return "Speed"
	default:
		return string(s)
	}
}

// Skills holds the four proficiency tracks, each 0..MaxSkill.
type Skills struct {
	Vocabulary int `json:"vocabulary"`
	Logic      int `json:"logic"`
	Creativity int `json:"creativity"`
	Speed      int `json:"speed"`
}

// Get returns the value of the named skill.
func (s Skills) Get(skill Skill) int {
	switch skill {
	case SkillVocabulary:
		return s.Vocabulary
	case SkillLogic:
		return s.Logic
	case SkillCreativity:
		return s.Creativity
	case SkillSpeed:
		return s.Speed
	}
	return 0
}

func (s *Skills) set(skill Skill, v int) {
	switch skill {
	case SkillVocabulary:
		s.Vocabulary = v
	case SkillLogic:
		s.Logic = v
	case SkillCreativity:
		s.Creativity = v
	case SkillSpeed:
		s.Speed = v
	}
}

// Sum returns the total skill points across all tracks.
func (s Skills) Sum() int {
	return s.Vocabulary + s.Logic + s.Creativity + s.Speed
}

// GameProgress tracks one game's state inside the profile.
type GameProgress struct {
	CurrentLevel int    `json:"currentLevel"`
	HighScore    int    `json:"highScore"`
	Completed    bool   `json:"completed"`
	LastPlayed   string `json:"lastPlayed"`
}

// Profile is the single persisted learner record.
type Profile struct {
	UserID        string                   `json:"userId"`
	Name          string                   `json:"name"`
	Avatar        int                      `json:"avatar"`
	DailyStreak   int                      `json:"dailyStreak"`
	LastLoginDate string                   `json:"lastLoginDate"`
	TotalScore    int                      `json:"totalScore"`
	Level         int                      `json:"level"`
	Skills        Skills                   `json:"skills"`
	Badges        []string                 `json:"badges"`
	GamesProgress map[string]*GameProgress `json:"gamesProgress"`
	CompletedDays []int                    `json:"completedDays"`
}

// NewProfile creates a fresh default profile.
func NewProfile(name string) *Profile {
	if name == "" {
		name = "Student"
	}
	return &Profile{
		UserID:        uuid.NewString(),
		Name:          name,
		Avatar:        1,
		Level:         1,
		Badges:        []string{},
		GamesProgress: make(map[string]*GameProgress),
		CompletedDays: []int{},
	}
}

// Sanitize repairs a loaded profile in place: nil collections are
// initialized, skills clamp to [0,MaxSkill], a malformed avatar index
// clamps to a valid default, and the level is recomputed. Never fatal.
func (p *Profile) Sanitize() {
	if p.UserID == "" {
		p.UserID = uuid.NewString()
	}
	if p.Name == "" {
		p.Name = "Student"
	}
	if p.Avatar < 1 || p.Avatar > AvatarCount {
		p.Avatar = 1
	}
	for _, sk := range AllSkills() {
		p.Skills.set(sk, clamp(p.Skills.Get(sk), 0, MaxSkill))
	}
	if p.Badges == nil {
		p.Badges = []string{}
	}
	if p.GamesProgress == nil {
		p.GamesProgress = make(map[string]*GameProgress)
	}
	if p.CompletedDays == nil {
		p.CompletedDays = []int{}
	}
	p.Level = p.Skills.Sum()/LevelDivisor + 1
}

// HasBadge reports whether the badge is already earned.
func (p *Profile) HasBadge(id string) bool {
	for _, b := range p.Badges {
		if b == id {
			return true
		}
	}
	return false
}

// DayCompleted reports whether the day is already marked.
func (p *Profile) DayCompleted(day int) bool {
	for _, d := range p.CompletedDays {
		if d == day {
			return true
		}
	}
	return false
}

// Game returns the progress entry for gameID, creating it on first use.
func (p *Profile) Game(gameID string) *GameProgress {
	gp, ok := p.GamesProgress[gameID]
	if !ok {
		gp = &GameProgress{CurrentLevel: 1}
		p.GamesProgress[gameID] = gp
	}
	return gp
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func day(t time.Time) string {
	return t.Format(DateFormat)
}
