// Package match implements the answer-validation engine shared by every
// mini-game. It decides whether a learner's free-text or multiple-choice
// answer counts as exact, close enough, or wrong, and which alternative
// answers to surface as hints.
package match

import (
	"errors"
	"sort"
	"strings"
)

// DefaultThreshold is the minimum similarity score for a non-exact answer
// to be accepted.
const DefaultThreshold = 0.7

// ErrNoAcceptable is returned when the acceptable-answer set is empty.
// A question without a correct answer is a content-authoring bug; callers
// should fail the question load, not the session.
var ErrNoAcceptable = errors.New("match: empty acceptable answer set")

// Verdict is the result of a single validation call. It is constructed
// fresh per call and never persisted.
type Verdict struct {
	// IsMatch reports whether the candidate is accepted, exactly or fuzzily.
	IsMatch bool

	// IsExact reports whether the normalized candidate equals a normalized
	// acceptable answer verbatim. IsExact implies IsMatch.
	IsExact bool

	// BestMatch is the normalized acceptable answer judged closest
	// (the candidate itself when exact).
	BestMatch string

	// Suggestions holds the other acceptable answers whose similarity also
	// clears the threshold, in descending similarity order. Never contains
	// BestMatch.
	Suggestions []string
}

// Validate compares the candidate against the acceptable answers.
//
// Normalization rules:
//   - Leading/trailing whitespace is trimmed
//   - Comparison is case-insensitive
//
// An exact match against any acceptable entry short-circuits fuzzy scoring.
// Otherwise the entry with the highest similarity wins (ties: first entry
// in original order), and IsMatch holds when that score reaches threshold.
// Validate is pure and safe for concurrent use.
func Validate(candidate string, acceptable []string, threshold float64) (Verdict, error) {
	if len(acceptable) == 0 {
		return Verdict{}, ErrNoAcceptable
	}

	cleaned := normalize(candidate)
	normalized := make([]string, len(acceptable))
	for i, a := range acceptable {
		normalized[i] = normalize(a)
	}

	for _, n := range normalized {
		if cleaned == n {
			return Verdict{IsMatch: true, IsExact: true, BestMatch: cleaned, Suggestions: []string{}}, nil
		}
	}

	scores := make([]float64, len(normalized))
	best := 0
	for i, n := range normalized {
		scores[i] = Similarity(cleaned, n)
		if scores[i] > scores[best] {
			best = i
		}
	}

	var suggestions []string
	type rated struct {
		entry string
		score float64
	}
	var alsoClose []rated
	for i, n := range normalized {
		if i != best && scores[i] >= threshold {
			alsoClose = append(alsoClose, rated{entry: n, score: scores[i]})
		}
	}
	sort.SliceStable(alsoClose, func(i, j int) bool {
		return alsoClose[i].score > alsoClose[j].score
	})
	suggestions = make([]string, len(alsoClose))
	for i, r := range alsoClose {
		suggestions[i] = r.entry
	}

	return Verdict{
		IsMatch:     scores[best] >= threshold,
		IsExact:     false,
		BestMatch:   normalized[best],
		Suggestions: suggestions,
	}, nil
}

// Similarity returns the Sørensen–Dice coefficient over character bigrams
// of the two strings, in [0,1]. All whitespace is stripped before pairing,
// so spacing never contributes to the score and small typos cost little.
// The function is deterministic and symmetric.
func Similarity(a, b string) float64 {
	a = stripSpace(a)
	b = stripSpace(b)

	if a == b {
		return 1
	}

	ra, rb := []rune(a), []rune(b)
	if len(ra) < 2 || len(rb) < 2 {
		return 0
	}

	counts := make(map[[2]rune]int, len(ra)-1)
	for i := 0; i < len(ra)-1; i++ {
		counts[[2]rune{ra[i], ra[i+1]}]++
	}

	overlap := 0
	for i := 0; i < len(rb)-1; i++ {
		pair := [2]rune{rb[i], rb[i+1]}
		if counts[pair] > 0 {
			counts[pair]--
			overlap++
		}
	}

	return 2 * float64(overlap) / float64(len(ra)+len(rb)-2)
}

// normalize applies the comparison normalization: trim and lowercase.
func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// stripSpace removes all whitespace so word boundaries never enter the
// bigram set.
func stripSpace(s string) string {
	return strings.Join(strings.Fields(s), "")
}
