package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// QuizAnswerEvent records a single answered comprehension question.
type QuizAnswerEvent struct {
	ent.Schema
}

func (QuizAnswerEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (QuizAnswerEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("conversation_id").
			NotEmpty().
			Comment("Owning conversation"),
		field.String("artifact_id").
			NotEmpty().
			Comment("Artifact version the quiz was about"),
		field.String("quiz_id").
			NotEmpty().
			Comment("Quiz the answer was submitted against"),
		field.String("question").
			NotEmpty().
			Comment("The question shown"),
		field.String("user_answer").
			NotEmpty().
			Comment("What the learner submitted"),
		field.Bool("correct").
			Comment("Whether the answer passed the gate"),
		field.Int("gate_level").
			Comment("Gate the quiz guarded (0-based)"),
		field.Int("turn").
			Default(0).
			Comment("Conversation turn the answer was given at"),
		field.Bool("fallback").
			Default(false).
			Comment("Whether the quiz was locally synthesized"),
	}
}

func (QuizAnswerEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("conversation_id"),
		index.Fields("artifact_id"),
		index.Fields("correct"),
	}
}
