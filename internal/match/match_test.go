package match

import (
	"errors"
	"math"
	"testing"
)

func TestValidate_ExactMatch(t *testing.T) {
	v, err := Validate("Paris", []string{"Paris", "Lutetia"}, DefaultThreshold)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !v.IsMatch || !v.IsExact {
		t.Errorf("expected exact match, got %+v", v)
	}
	if v.BestMatch != "paris" {
		t.Errorf("expected best match 'paris', got %q", v.BestMatch)
	}
	if len(v.Suggestions) != 0 {
		t.Errorf("exact match must carry no suggestions, got %v", v.Suggestions)
	}
}

func TestValidate_ExactnessPrecedence(t *testing.T) {
	// The verbatim entry wins even when another entry would score high.
	v, err := Validate("paris", []string{"pariss", "paris"}, DefaultThreshold)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !v.IsExact {
		t.Errorf("expected IsExact=true, got %+v", v)
	}
	if len(v.Suggestions) != 0 {
		t.Errorf("expected no suggestions on exact match, got %v", v.Suggestions)
	}
}

func TestValidate_CaseWhitespaceInvariance(t *testing.T) {
	a, err := Validate("  Paris ", []string{"paris"}, DefaultThreshold)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := Validate("paris", []string{"paris"}, DefaultThreshold)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a.IsMatch != b.IsMatch || a.IsExact != b.IsExact || a.BestMatch != b.BestMatch {
		t.Errorf("verdicts differ: %+v vs %+v", a, b)
	}
}

func TestValidate_FuzzyMatch(t *testing.T) {
	tests := []struct {
		name       string
		candidate  string
		acceptable []string
		wantMatch  bool
		wantBest   string
	}{
		{"small typo", "Pari", []string{"Paris"}, true, "paris"},
		{"unrelated", "banana", []string{"Paris"}, false, "paris"},
		{"empty candidate", "", []string{"Paris", "Lutetia"}, false, "paris"},
		{"dropped letter", "helo", []string{"hello"}, true, "hello"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			v, err := Validate(tc.candidate, tc.acceptable, DefaultThreshold)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if v.IsMatch != tc.wantMatch {
				t.Errorf("IsMatch = %v, want %v", v.IsMatch, tc.wantMatch)
			}
			if v.IsExact {
				t.Error("fuzzy path must never report IsExact")
			}
			if v.BestMatch != tc.wantBest {
				t.Errorf("BestMatch = %q, want %q", v.BestMatch, tc.wantBest)
			}
		})
	}
}

func TestValidate_Suggestions(t *testing.T) {
	// With whitespace stripped, "teh dog runs" scores 0.75 against
	// "a dog runs" and 12/18 against "the dog runs".
	v, err := Validate("teh dog runs", []string{"the dog runs", "a dog runs"}, DefaultThreshold)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !v.IsMatch || v.IsExact {
		t.Fatalf("expected a fuzzy match, got %+v", v)
	}
	if v.BestMatch != "a dog runs" {
		t.Errorf("BestMatch = %q, want %q", v.BestMatch, "a dog runs")
	}
	// The runner-up sits below 0.7, so nothing is suggested.
	if len(v.Suggestions) != 0 {
		t.Errorf("expected no suggestions at the default threshold, got %v", v.Suggestions)
	}

	// Lowering the threshold pulls the runner-up into suggestions.
	v, err = Validate("teh dog runs", []string{"the dog runs", "a dog runs"}, 0.6)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.BestMatch != "a dog runs" {
		t.Errorf("BestMatch = %q, want %q", v.BestMatch, "a dog runs")
	}
	if len(v.Suggestions) != 1 || v.Suggestions[0] != "the dog runs" {
		t.Errorf("expected [\"the dog runs\"] as suggestions, got %v", v.Suggestions)
	}
}

func TestValidate_SuggestionOrdering(t *testing.T) {
	// All entries clear the threshold; suggestions come back in
	// descending similarity order, best excluded.
	candidate := "the cat sleeps"
	acceptable := []string{"the cat sleep", "the cat sleeps!", "a cat sleeps"}
	v, err := Validate(candidate, acceptable, 0.5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(v.Suggestions) != 2 {
		t.Fatalf("expected two suggestions, got %v", v.Suggestions)
	}
	s0 := Similarity(candidate, v.Suggestions[0])
	s1 := Similarity(candidate, v.Suggestions[1])
	if s0 < s1 {
		t.Errorf("suggestions out of order: %v (%.3f < %.3f)", v.Suggestions, s0, s1)
	}
}

func TestValidate_ThresholdMonotonicity(t *testing.T) {
	thresholds := []float64{0.3, 0.5, 0.7, 0.9, 1.0}
	prev := true
	for _, th := range thresholds {
		v, err := Validate("Pari", []string{"Paris"}, th)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if v.IsMatch && !prev {
			t.Errorf("raising threshold to %.1f turned a miss back into a match", th)
		}
		prev = v.IsMatch
	}
}

func TestValidate_EmptyAcceptable(t *testing.T) {
	_, err := Validate("anything", nil, DefaultThreshold)
	if !errors.Is(err, ErrNoAcceptable) {
		t.Errorf("expected ErrNoAcceptable, got %v", err)
	}
}

func TestValidate_TieBreakFirstEntry(t *testing.T) {
	// "hello" and "helol" share the same bigram overlap with "helo";
	// the first entry wins and the other drops to suggestions.
	v, err := Validate("helo", []string{"hello", "helol"}, DefaultThreshold)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.BestMatch != "hello" {
		t.Errorf("expected first entry to win the tie, got %q", v.BestMatch)
	}
	if len(v.Suggestions) != 1 || v.Suggestions[0] != "helol" {
		t.Errorf("expected tied entry as suggestion, got %v", v.Suggestions)
	}
}

func TestSimilarity(t *testing.T) {
	tests := []struct {
		a, b string
		want float64
	}{
		{"paris", "paris", 1},
		{"pari", "paris", 6.0 / 7.0},
		{"banana", "paris", 0},
		{"a", "b", 0},
		{"", "paris", 0},
		{"night", "nacht", 2.0 / 8.0},
	}

	for _, tc := range tests {
		got := Similarity(tc.a, tc.b)
		if math.Abs(got-tc.want) > 1e-9 {
			t.Errorf("Similarity(%q, %q) = %.4f, want %.4f", tc.a, tc.b, got, tc.want)
		}
	}
}

func TestSimilarity_Symmetric(t *testing.T) {
	pairs := [][2]string{
		{"pari", "paris"},
		{"teh dog runs", "the dog runs"},
		{"", "x"},
		{"sun rises", "rises sun"},
	}
	for _, p := range pairs {
		if Similarity(p[0], p[1]) != Similarity(p[1], p[0]) {
			t.Errorf("Similarity(%q, %q) not symmetric", p[0], p[1])
		}
	}
}
