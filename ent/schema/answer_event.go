package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AnswerEvent records one validated answer inside a game session.
type AnswerEvent struct {
	ent.Schema
}

func (AnswerEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (AnswerEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("Links to SessionEvent"),
		field.String("game_id").
			NotEmpty().
			Comment("Mini-game the question belongs to"),
		field.Int("day").
			Comment("Content-table day the question came from"),
		field.String("prompt").
			NotEmpty().
			Comment("The question shown"),
		field.String("learner_answer").
			Comment("What the learner entered (may be empty)"),
		field.String("best_match").
			Comment("Closest acceptable answer per the validator"),
		field.Bool("correct").
			Comment("Whether the verdict accepted the answer"),
		field.Bool("exact").
			Comment("Whether the answer was letter-perfect"),
		field.Int("score_delta").
			Comment("Score awarded for this answer"),
		field.String("skill").
			Comment("Skill track credited (vocabulary, logic, creativity, speed)"),
	}
}

func (AnswerEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("game_id"),
		index.Fields("correct"),
	}
}
