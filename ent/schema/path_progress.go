package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ItemStateData is the serialized per-item slice of a path progress row.
type ItemStateData struct {
	MasteryLevel float64 `json:"mastery_level"`
	AttemptCount int     `json:"attempt_count"`
	Position     int     `json:"position"`
}

// PathProgress is the per-path aggregate for one learner, rewritten on
// every recorded session that touches the path.
type PathProgress struct {
	ent.Schema
}

func (PathProgress) Fields() []ent.Field {
	return []ent.Field{
		field.String("user_id").
			NotEmpty(),
		field.String("path_id").
			NotEmpty(),
		field.Float("completion").
			Default(0).
			Comment("Mastered items over total items in the path"),
		field.JSON("per_item_state", map[string]ItemStateData{}).
			Comment("Item state keyed by content id"),
		field.Int("mastered_count").
			Default(0),
		field.Time("last_update").
			Optional().
			Comment("Latest attempt time across the path"),
	}
}

func (PathProgress) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "path_id").
			Unique(),
	}
}
