package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ContentMastery is one (learner, content item) mastery row: the decayed
// skill level plus its review schedule.
type ContentMastery struct {
	ent.Schema
}

func (ContentMastery) Fields() []ent.Field {
	return []ent.Field{
		field.String("user_id").
			NotEmpty(),
		field.String("content_id").
			NotEmpty(),
		field.Float("mastery_level").
			Default(0).
			Comment("Current level in [0,1] after decay and blending"),
		field.Int("attempt_count").
			Default(0),
		field.Time("last_attempt_time").
			Optional().
			Comment("Zero until the first attempt"),
		field.Time("next_review_time").
			Optional().
			Comment("Zero until the first attempt"),
	}
}

func (ContentMastery) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "content_id").
			Unique(),
		index.Fields("user_id", "next_review_time"),
	}
}
