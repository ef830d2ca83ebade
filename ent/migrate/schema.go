// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ContentMasteriesColumns holds the columns for the "content_masteries" table.
	ContentMasteriesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "content_id", Type: field.TypeString},
		{Name: "mastery_level", Type: field.TypeFloat64, Default: 0},
		{Name: "attempt_count", Type: field.TypeInt, Default: 0},
		{Name: "last_attempt_time", Type: field.TypeTime, Nullable: true},
		{Name: "next_review_time", Type: field.TypeTime, Nullable: true},
	}
	// ContentMasteriesTable holds the schema information for the "content_masteries" table.
	ContentMasteriesTable = &schema.Table{
		Name:       "content_masteries",
		Columns:    ContentMasteriesColumns,
		PrimaryKey: []*schema.Column{ContentMasteriesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "contentmastery_user_id_content_id",
				Unique:  true,
				Columns: []*schema.Column{ContentMasteriesColumns[1], ContentMasteriesColumns[2]},
			},
			{
				Name:    "contentmastery_user_id_next_review_time",
				Unique:  false,
				Columns: []*schema.Column{ContentMasteriesColumns[1], ContentMasteriesColumns[6]},
			},
		},
	}
	// LearnersColumns holds the columns for the "learners" table.
	LearnersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "user_id", Type: field.TypeString, Unique: true},
		{Name: "display_name", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// LearnersTable holds the schema information for the "learners" table.
	LearnersTable = &schema.Table{
		Name:       "learners",
		Columns:    LearnersColumns,
		PrimaryKey: []*schema.Column{LearnersColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "learner_user_id",
				Unique:  false,
				Columns: []*schema.Column{LearnersColumns[1]},
			},
		},
	}
	// MasteryEventsColumns holds the columns for the "mastery_events" table.
	MasteryEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "user_id", Type: field.TypeString},
		{Name: "content_id", Type: field.TypeString},
		{Name: "path_id", Type: field.TypeString},
		{Name: "from_band", Type: field.TypeString},
		{Name: "to_band", Type: field.TypeString},
		{Name: "mastery_level", Type: field.TypeFloat64},
		{Name: "session_id", Type: field.TypeString, Nullable: true},
	}
	// MasteryEventsTable holds the schema information for the "mastery_events" table.
	MasteryEventsTable = &schema.Table{
		Name:       "mastery_events",
		Columns:    MasteryEventsColumns,
		PrimaryKey: []*schema.Column{MasteryEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "masteryevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{MasteryEventsColumns[1]},
			},
			{
				Name:    "masteryevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{MasteryEventsColumns[2]},
			},
			{
				Name:    "masteryevent_user_id",
				Unique:  false,
				Columns: []*schema.Column{MasteryEventsColumns[3]},
			},
			{
				Name:    "masteryevent_content_id",
				Unique:  false,
				Columns: []*schema.Column{MasteryEventsColumns[4]},
			},
		},
	}
	// PathProgressesColumns holds the columns for the "path_progresses" table.
	PathProgressesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "path_id", Type: field.TypeString},
		{Name: "completion", Type: field.TypeFloat64, Default: 0},
		{Name: "per_item_state", Type: field.TypeJSON},
		{Name: "mastered_count", Type: field.TypeInt, Default: 0},
		{Name: "last_update", Type: field.TypeTime, Nullable: true},
	}
	// PathProgressesTable holds the schema information for the "path_progresses" table.
	PathProgressesTable = &schema.Table{
		Name:       "path_progresses",
		Columns:    PathProgressesColumns,
		PrimaryKey: []*schema.Column{PathProgressesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "pathprogress_user_id_path_id",
				Unique:  true,
				Columns: []*schema.Column{PathProgressesColumns[1], PathProgressesColumns[2]},
			},
		},
	}
	// SessionEventsColumns holds the columns for the "session_events" table.
	SessionEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
		{Name: "user_id", Type: field.TypeString},
		{Name: "path_id", Type: field.TypeString},
		{Name: "content_id", Type: field.TypeString},
		{Name: "question_count", Type: field.TypeInt, Default: 0},
		{Name: "ftc_count", Type: field.TypeInt, Default: 0},
		{Name: "ec_count", Type: field.TypeInt, Default: 0},
		{Name: "incorrect_count", Type: field.TypeInt, Default: 0},
		{Name: "duration_ms", Type: field.TypeInt, Default: 0},
		{Name: "base_points", Type: field.TypeInt, Default: 0},
		{Name: "bonus_multiplier", Type: field.TypeFloat64, Default: 1},
		{Name: "total_points", Type: field.TypeInt, Default: 0},
		{Name: "evolution", Type: field.TypeInt, Default: 0},
		{Name: "mastery_after", Type: field.TypeFloat64, Default: 0},
		{Name: "day_streak", Type: field.TypeInt, Default: 0},
	}
	// SessionEventsTable holds the schema information for the "session_events" table.
	SessionEventsTable = &schema.Table{
		Name:       "session_events",
		Columns:    SessionEventsColumns,
		PrimaryKey: []*schema.Column{SessionEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "sessionevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[1]},
			},
			{
				Name:    "sessionevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[2]},
			},
			{
				Name:    "sessionevent_session_id",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[3]},
			},
			{
				Name:    "sessionevent_user_id",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[4]},
			},
			{
				Name:    "sessionevent_user_id_timestamp",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[4], SessionEventsColumns[2]},
			},
		},
	}
	// UserProgressesColumns holds the columns for the "user_progresses" table.
	UserProgressesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "user_id", Type: field.TypeString, Unique: true},
		{Name: "overall_completion", Type: field.TypeFloat64, Default: 0},
		{Name: "per_path_completion", Type: field.TypeJSON},
		{Name: "mastered_item_count", Type: field.TypeInt, Default: 0},
		{Name: "total_item_count", Type: field.TypeInt, Default: 0},
		{Name: "last_update", Type: field.TypeTime},
	}
	// UserProgressesTable holds the schema information for the "user_progresses" table.
	UserProgressesTable = &schema.Table{
		Name:       "user_progresses",
		Columns:    UserProgressesColumns,
		PrimaryKey: []*schema.Column{UserProgressesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "userprogress_user_id",
				Unique:  false,
				Columns: []*schema.Column{UserProgressesColumns[1]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ContentMasteriesTable,
		LearnersTable,
		MasteryEventsTable,
		PathProgressesTable,
		SessionEventsTable,
		UserProgressesTable,
	}
)

func init() {
}
