// Package lang provides the static English/Hindi UI strings. Lookups
// fall back to English, then to the key itself, so a missing
// translation never blanks the UI.
package lang

// Language selects the UI string set.
type Language string

const (
	English Language = "en"
	Hindi   Language = "hi"
)

// Parse returns the language for a config value, defaulting to English.
func Parse(s string) Language {
	if Language(s) == Hindi {
		return Hindi
	}
	return English
}

// Languages returns the supported languages in settings order.
func Languages() []Language {
	return []Language{English, Hindi}
}

// DisplayName is the language's own name, shown in settings.
func (l Language) DisplayName() string {
	if l == Hindi {
		return "हिन्दी"
	}
	return "English"
}

// T returns the translated string for the key.
func T(l Language, key string) string {
	if s, ok := uiStrings[l][key]; ok {
		return s
	}
	if s, ok := uiStrings[English][key]; ok {
		return s
	}
	return key
}

var uiStrings = map[Language]map[string]string{
	English: {
		"nav.home":     "Home",
		"nav.games":    "Games",
		"nav.progress": "Progress",
		"nav.teacher":  "Teacher",
		"nav.settings": "Settings",

		"home.welcome":      "Welcome Back!",
		"home.subtitle":     "Continue your learning journey",
		"home.daily_streak": "Daily Streak",
		"home.days":         "days",
		"home.start":        "Start Learning",
		"home.continue":     "Continue Quest",

		"common.level":     "Level",
		"common.score":     "Score",
		"common.start":     "Start",
		"common.next":      "Next",
		"common.submit":    "Submit",
		"common.correct":   "Correct!",
		"common.incorrect": "Incorrect",
		"common.try_again": "Try Again",
		"common.completed": "Completed",
		"common.locked":    "Locked",
		"common.play":      "Play",
		"common.back":      "Back",
	},
	Hindi: {
		"nav.home":     "होम",
		"nav.games":    "खेल",
		"nav.progress": "प्रगति",
		"nav.teacher":  "शिक्षक",
		"nav.settings": "सेटिंग्स",

		"home.welcome":      "वापसी पर स्वागत है!",
		"home.subtitle":     "अपनी सीखने की यात्रा जारी रखें",
		"home.daily_streak": "दैनिक श्रृंखला",
		"home.days":         "दिन",
		"home.start":        "सीखना शुरू करें",
		"home.continue":     "खोज जारी रखें",

		"common.level":     "स्तर",
		"common.score":     "अंक",
		"common.start":     "शुरू करें",
		"common.next":      "अगला",
		"common.submit":    "जमा करें",
		"common.correct":   "सही!",
		"common.incorrect": "गलत",
		"common.try_again": "पुनः प्रयास करें",
		"common.completed": "पूर्ण",
		"common.locked":    "बंद",
		"common.play":      "खेलें",
		"common.back":      "वापस",
	},
}

// GameName returns the localized display name for a game ID.
func GameName(l Language, gameID string) string {
	if s, ok := gameNames[l][gameID]; ok {
		return s
	}
	if s, ok := gameNames[English][gameID]; ok {
		return s
	}
	return gameID
}

var gameNames = map[Language]map[string]string{
	English: {
		"parallel-sentence": "Parallel Sentence",
		"story-builder":     "Story Builder",
		"concept-ladder":    "Concept Ladder",
		"visual-word":       "Visual to Word",
		"quiz-battle":       "Quiz Battle",
		"error-detective":   "Error Detective",
		"match-meaning":     "Match Meaning",
		"time-travel":       "Time Travel",
	},
	Hindi: {
		"parallel-sentence": "समानांतर वाक्य",
		"story-builder":     "कहानी निर्माता",
		"concept-ladder":    "अवधारणा सीढ़ी",
		"visual-word":       "चित्र से शब्द",
		"quiz-battle":       "क्विज युद्ध",
		"error-detective":   "त्रुटि जासूस",
		"match-meaning":     "अर्थ मिलान",
		"time-travel":       "समय यात्रा",
	},
}
