package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SessionEvent records one completed practice session: the raw counts
// plus the score that was computed for it. Rows are append-only; the
// session history and day-streak queries read from here.
type SessionEvent struct {
	ent.Schema
}

func (SessionEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (SessionEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("UUID assigned when the session completes"),
		field.String("user_id").
			NotEmpty(),
		field.String("path_id").
			NotEmpty(),
		field.String("content_id").
			NotEmpty(),
		field.Int("question_count").
			Default(0),
		field.Int("ftc_count").
			Default(0).
			Comment("Questions answered correctly on the first try"),
		field.Int("ec_count").
			Default(0).
			Comment("Questions answered correctly after retries"),
		field.Int("incorrect_count").
			Default(0),
		field.Int("duration_ms").
			Default(0),
		field.Int("base_points").
			Default(0),
		field.Float("bonus_multiplier").
			Default(1),
		field.Int("total_points").
			Default(0),
		field.Int("evolution").
			Default(0),
		field.Float("mastery_after").
			Default(0).
			Comment("Item mastery level once this session was folded in"),
		field.Int("day_streak").
			Default(0).
			Comment("Consecutive practice days including this session"),
	}
}

func (SessionEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("user_id"),
		index.Fields("user_id", "timestamp"),
	}
}
