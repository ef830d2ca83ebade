// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// ContentMastery is the predicate function for contentmastery builders.
type ContentMastery func(*sql.Selector)

// Learner is the predicate function for learner builders.
type Learner func(*sql.Selector)

// MasteryEvent is the predicate function for masteryevent builders.
type MasteryEvent func(*sql.Selector)

// PathProgress is the predicate function for pathprogress builders.
type PathProgress func(*sql.Selector)

// SessionEvent is the predicate function for sessionevent builders.
type SessionEvent func(*sql.Selector)

// UserProgress is the predicate function for userprogress builders.
type UserProgress func(*sql.Selector)
