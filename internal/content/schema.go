package content

// Table schemas. Every table is an array of records; each record schema
// rejects unknown fields so content-authoring typos surface at load.

func arraySchema(item map[string]any) map[string]any {
	return map[string]any{
		"type":     "array",
		"minItems": 1,
		"items":    item,
	}
}

func record(required []string, props map[string]any) map[string]any {
	return map[string]any{
		"type":                 "object",
		"properties":           props,
		"required":             required,
		"additionalProperties": false,
	}
}

var (
	str     = map[string]any{"type": "string"}
	strList = map[string]any{"type": "array", "items": map[string]any{"type": "string"}}
	dayNum  = map[string]any{"type": "integer", "minimum": 1}
	diff    = map[string]any{"type": "integer", "minimum": 1, "maximum": 5}
	optIdx  = map[string]any{"type": "integer", "minimum": 0}
)

var tableSchemas = map[string]map[string]any{
	"parallel_sentences": arraySchema(record(
		[]string{"day", "english", "parallel", "difficulty"},
		map[string]any{"day": dayNum, "english": str, "parallel": str, "words": strList, "difficulty": diff},
	)),
	"stories": arraySchema(record(
		[]string{"day", "title", "sentences", "difficulty"},
		map[string]any{"day": dayNum, "title": str, "sentences": map[string]any{"type": "array", "minItems": 3, "items": map[string]any{"type": "string"}}, "theme": str, "difficulty": diff},
	)),
	"concepts": arraySchema(record(
		[]string{"day", "subject", "step", "question", "options", "correctAnswer"},
		map[string]any{"day": dayNum, "subject": map[string]any{"enum": []any{"science", "math"}}, "step": optIdx, "question": str, "options": strList, "correctAnswer": optIdx, "explanation": str},
	)),
	"visual_words": arraySchema(record(
		[]string{"day", "clue", "correctWord", "options", "difficulty"},
		map[string]any{"day": dayNum, "clue": str, "correctWord": str, "options": strList, "difficulty": diff},
	)),
	"quiz_questions": arraySchema(record(
		[]string{"day", "question", "options", "correctAnswer", "subject", "difficulty"},
		map[string]any{"day": dayNum, "question": str, "options": strList, "correctAnswer": optIdx, "subject": str, "difficulty": diff},
	)),
	"error_items": arraySchema(record(
		[]string{"day", "incorrectSentence", "correctSentence", "errorType"},
		map[string]any{"day": dayNum, "incorrectSentence": str, "correctSentence": str, "errorType": str, "explanation": str},
	)),
	"meaning_pairs": arraySchema(record(
		[]string{"day", "word", "meaning", "distractors"},
		map[string]any{"day": dayNum, "word": str, "meaning": str, "distractors": strList},
	)),
	"time_travel": arraySchema(record(
		[]string{"day", "era", "question", "options", "correctAnswer", "difficulty"},
		map[string]any{"day": dayNum, "era": str, "question": str, "options": strList, "correctAnswer": optIdx, "nextEra": strList, "difficulty": diff},
	)),
}
