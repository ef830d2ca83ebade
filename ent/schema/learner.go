package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Learner is a registered account. Progress rows reference learners by
// user_id; a learner row without progress is registered but not yet
// initialized.
type Learner struct {
	ent.Schema
}

func (Learner) Fields() []ent.Field {
	return []ent.Field{
		field.String("user_id").
			Unique().
			NotEmpty().
			Immutable(),
		field.String("display_name").
			Optional(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

func (Learner) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id"),
	}
}
