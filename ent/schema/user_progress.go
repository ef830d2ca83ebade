package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// UserProgress is the account-level aggregate: one row per learner,
// created on initialize and rewritten on every recorded session.
type UserProgress struct {
	ent.Schema
}

func (UserProgress) Fields() []ent.Field {
	return []ent.Field{
		field.String("user_id").
			Unique().
			NotEmpty(),
		field.Float("overall_completion").
			Default(0).
			Comment("Weight-normalized average of per-path completions"),
		field.JSON("per_path_completion", map[string]float64{}).
			Comment("Completion fraction keyed by path id"),
		field.Int("mastered_item_count").
			Default(0),
		field.Int("total_item_count").
			Default(0),
		field.Time("last_update"),
	}
}

func (UserProgress) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id"),
	}
}
