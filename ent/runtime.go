// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/oselot/stitchpath/ent/contentmastery"
	"github.com/oselot/stitchpath/ent/learner"
	"github.com/oselot/stitchpath/ent/masteryevent"
	"github.com/oselot/stitchpath/ent/pathprogress"
	"github.com/oselot/stitchpath/ent/schema"
	"github.com/oselot/stitchpath/ent/sessionevent"
	"github.com/oselot/stitchpath/ent/userprogress"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	contentmasteryFields := schema.ContentMastery{}.Fields()
	_ = contentmasteryFields
	// contentmasteryDescUserID is the schema descriptor for user_id field.
	contentmasteryDescUserID := contentmasteryFields[0].Descriptor()
	// contentmastery.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	contentmastery.UserIDValidator = contentmasteryDescUserID.Validators[0].(func(string) error)
	// contentmasteryDescContentID is the schema descriptor for content_id field.
	contentmasteryDescContentID := contentmasteryFields[1].Descriptor()
	// contentmastery.ContentIDValidator is a validator for the "content_id" field. It is called by the builders before save.
	contentmastery.ContentIDValidator = contentmasteryDescContentID.Validators[0].(func(string) error)
	// contentmasteryDescMasteryLevel is the schema descriptor for mastery_level field.
	contentmasteryDescMasteryLevel := contentmasteryFields[2].Descriptor()
	// contentmastery.DefaultMasteryLevel holds the default value on creation for the mastery_level field.
	contentmastery.DefaultMasteryLevel = contentmasteryDescMasteryLevel.Default.(float64)
	// contentmasteryDescAttemptCount is the schema descriptor for attempt_count field.
	contentmasteryDescAttemptCount := contentmasteryFields[3].Descriptor()
	// contentmastery.DefaultAttemptCount holds the default value on creation for the attempt_count field.
	contentmastery.DefaultAttemptCount = contentmasteryDescAttemptCount.Default.(int)
	learnerFields := schema.Learner{}.Fields()
	_ = learnerFields
	// learnerDescUserID is the schema descriptor for user_id field.
	learnerDescUserID := learnerFields[0].Descriptor()
	// learner.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	learner.UserIDValidator = learnerDescUserID.Validators[0].(func(string) error)
	// learnerDescCreatedAt is the schema descriptor for created_at field.
	learnerDescCreatedAt := learnerFields[2].Descriptor()
	// learner.DefaultCreatedAt holds the default value on creation for the created_at field.
	learner.DefaultCreatedAt = learnerDescCreatedAt.Default.(func() time.Time)
	masteryeventMixin := schema.MasteryEvent{}.Mixin()
	masteryeventMixinFields0 := masteryeventMixin[0].Fields()
	_ = masteryeventMixinFields0
	masteryeventFields := schema.MasteryEvent{}.Fields()
	_ = masteryeventFields
	// masteryeventDescTimestamp is the schema descriptor for timestamp field.
	masteryeventDescTimestamp := masteryeventMixinFields0[1].Descriptor()
	// masteryevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	masteryevent.DefaultTimestamp = masteryeventDescTimestamp.Default.(func() time.Time)
	// masteryeventDescUserID is the schema descriptor for user_id field.
	masteryeventDescUserID := masteryeventFields[0].Descriptor()
	// masteryevent.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	masteryevent.UserIDValidator = masteryeventDescUserID.Validators[0].(func(string) error)
	// masteryeventDescContentID is the schema descriptor for content_id field.
	masteryeventDescContentID := masteryeventFields[1].Descriptor()
	// masteryevent.ContentIDValidator is a validator for the "content_id" field. It is called by the builders before save.
	masteryevent.ContentIDValidator = masteryeventDescContentID.Validators[0].(func(string) error)
	// masteryeventDescPathID is the schema descriptor for path_id field.
	masteryeventDescPathID := masteryeventFields[2].Descriptor()
	// masteryevent.PathIDValidator is a validator for the "path_id" field. It is called by the builders before save.
	masteryevent.PathIDValidator = masteryeventDescPathID.Validators[0].(func(string) error)
	// masteryeventDescFromBand is the schema descriptor for from_band field.
	masteryeventDescFromBand := masteryeventFields[3].Descriptor()
	// masteryevent.FromBandValidator is a validator for the "from_band" field. It is called by the builders before save.
	masteryevent.FromBandValidator = masteryeventDescFromBand.Validators[0].(func(string) error)
	// masteryeventDescToBand is the schema descriptor for to_band field.
	masteryeventDescToBand := masteryeventFields[4].Descriptor()
	// masteryevent.ToBandValidator is a validator for the "to_band" field. It is called by the builders before save.
	masteryevent.ToBandValidator = masteryeventDescToBand.Validators[0].(func(string) error)
	pathprogressFields := schema.PathProgress{}.Fields()
	_ = pathprogressFields
	// pathprogressDescUserID is the schema descriptor for user_id field.
	pathprogressDescUserID := pathprogressFields[0].Descriptor()
	// pathprogress.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	pathprogress.UserIDValidator = pathprogressDescUserID.Validators[0].(func(string) error)
	// pathprogressDescPathID is the schema descriptor for path_id field.
	pathprogressDescPathID := pathprogressFields[1].Descriptor()
	// pathprogress.PathIDValidator is a validator for the "path_id" field. It is called by the builders before save.
	pathprogress.PathIDValidator = pathprogressDescPathID.Validators[0].(func(string) error)
	// pathprogressDescCompletion is the schema descriptor for completion field.
	pathprogressDescCompletion := pathprogressFields[2].Descriptor()
	// pathprogress.DefaultCompletion holds the default value on creation for the completion field.
	pathprogress.DefaultCompletion = pathprogressDescCompletion.Default.(float64)
	// pathprogressDescMasteredCount is the schema descriptor for mastered_count field.
	pathprogressDescMasteredCount := pathprogressFields[4].Descriptor()
	// pathprogress.DefaultMasteredCount holds the default value on creation for the mastered_count field.
	pathprogress.DefaultMasteredCount = pathprogressDescMasteredCount.Default.(int)
	sessioneventMixin := schema.SessionEvent{}.Mixin()
	sessioneventMixinFields0 := sessioneventMixin[0].Fields()
	_ = sessioneventMixinFields0
	sessioneventFields := schema.SessionEvent{}.Fields()
	_ = sessioneventFields
	// sessioneventDescTimestamp is the schema descriptor for timestamp field.
	sessioneventDescTimestamp := sessioneventMixinFields0[1].Descriptor()
	// sessionevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	sessionevent.DefaultTimestamp = sessioneventDescTimestamp.Default.(func() time.Time)
	// sessioneventDescSessionID is the schema descriptor for session_id field.
	sessioneventDescSessionID := sessioneventFields[0].Descriptor()
	// sessionevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	sessionevent.SessionIDValidator = sessioneventDescSessionID.Validators[0].(func(string) error)
	// sessioneventDescUserID is the schema descriptor for user_id field.
	sessioneventDescUserID := sessioneventFields[1].Descriptor()
	// sessionevent.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	sessionevent.UserIDValidator = sessioneventDescUserID.Validators[0].(func(string) error)
	// sessioneventDescPathID is the schema descriptor for path_id field.
	sessioneventDescPathID := sessioneventFields[2].Descriptor()
	// sessionevent.PathIDValidator is a validator for the "path_id" field. It is called by the builders before save.
	sessionevent.PathIDValidator = sessioneventDescPathID.Validators[0].(func(string) error)
	// sessioneventDescContentID is the schema descriptor for content_id field.
	sessioneventDescContentID := sessioneventFields[3].Descriptor()
	// sessionevent.ContentIDValidator is a validator for the "content_id" field. It is called by the builders before save.
	sessionevent.ContentIDValidator = sessioneventDescContentID.Validators[0].(func(string) error)
	// sessioneventDescQuestionCount is the schema descriptor for question_count field.
	sessioneventDescQuestionCount := sessioneventFields[4].Descriptor()
	// sessionevent.DefaultQuestionCount holds the default value on creation for the question_count field.
	sessionevent.DefaultQuestionCount = sessioneventDescQuestionCount.Default.(int)
	// sessioneventDescFtcCount is the schema descriptor for ftc_count field.
	sessioneventDescFtcCount := sessioneventFields[5].Descriptor()
	// sessionevent.DefaultFtcCount holds the default value on creation for the ftc_count field.
	sessionevent.DefaultFtcCount = sessioneventDescFtcCount.Default.(int)
	// sessioneventDescEcCount is the schema descriptor for ec_count field.
	sessioneventDescEcCount := sessioneventFields[6].Descriptor()
	// sessionevent.DefaultEcCount holds the default value on creation for the ec_count field.
	sessionevent.DefaultEcCount = sessioneventDescEcCount.Default.(int)
	// sessioneventDescIncorrectCount is the schema descriptor for incorrect_count field.
	sessioneventDescIncorrectCount := sessioneventFields[7].Descriptor()
	// sessionevent.DefaultIncorrectCount holds the default value on creation for the incorrect_count field.
	sessionevent.DefaultIncorrectCount = sessioneventDescIncorrectCount.Default.(int)
	// sessioneventDescDurationMs is the schema descriptor for duration_ms field.
	sessioneventDescDurationMs := sessioneventFields[8].Descriptor()
	// sessionevent.DefaultDurationMs holds the default value on creation for the duration_ms field.
	sessionevent.DefaultDurationMs = sessioneventDescDurationMs.Default.(int)
	// sessioneventDescBasePoints is the schema descriptor for base_points field.
	sessioneventDescBasePoints := sessioneventFields[9].Descriptor()
	// sessionevent.DefaultBasePoints holds the default value on creation for the base_points field.
	sessionevent.DefaultBasePoints = sessioneventDescBasePoints.Default.(int)
	// sessioneventDescBonusMultiplier is the schema descriptor for bonus_multiplier field.
	sessioneventDescBonusMultiplier := sessioneventFields[10].Descriptor()
	// sessionevent.DefaultBonusMultiplier holds the default value on creation for the bonus_multiplier field.
	sessionevent.DefaultBonusMultiplier = sessioneventDescBonusMultiplier.Default.(float64)
	// sessioneventDescTotalPoints is the schema descriptor for total_points field.
	sessioneventDescTotalPoints := sessioneventFields[11].Descriptor()
	// sessionevent.DefaultTotalPoints holds the default value on creation for the total_points field.
	sessionevent.DefaultTotalPoints = sessioneventDescTotalPoints.Default.(int)
	// sessioneventDescEvolution is the schema descriptor for evolution field.
	sessioneventDescEvolution := sessioneventFields[12].Descriptor()
	// sessionevent.DefaultEvolution holds the default value on creation for the evolution field.
	sessionevent.DefaultEvolution = sessioneventDescEvolution.Default.(int)
	// sessioneventDescMasteryAfter is the schema descriptor for mastery_after field.
	sessioneventDescMasteryAfter := sessioneventFields[13].Descriptor()
	// sessionevent.DefaultMasteryAfter holds the default value on creation for the mastery_after field.
	sessionevent.DefaultMasteryAfter = sessioneventDescMasteryAfter.Default.(float64)
	// sessioneventDescDayStreak is the schema descriptor for day_streak field.
	sessioneventDescDayStreak := sessioneventFields[14].Descriptor()
	// sessionevent.DefaultDayStreak holds the default value on creation for the day_streak field.
	sessionevent.DefaultDayStreak = sessioneventDescDayStreak.Default.(int)
	userprogressFields := schema.UserProgress{}.Fields()
	_ = userprogressFields
	// userprogressDescUserID is the schema descriptor for user_id field.
	userprogressDescUserID := userprogressFields[0].Descriptor()
	// userprogress.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	userprogress.UserIDValidator = userprogressDescUserID.Validators[0].(func(string) error)
	// userprogressDescOverallCompletion is the schema descriptor for overall_completion field.
	userprogressDescOverallCompletion := userprogressFields[1].Descriptor()
	// userprogress.DefaultOverallCompletion holds the default value on creation for the overall_completion field.
	userprogress.DefaultOverallCompletion = userprogressDescOverallCompletion.Default.(float64)
	// userprogressDescMasteredItemCount is the schema descriptor for mastered_item_count field.
	userprogressDescMasteredItemCount := userprogressFields[3].Descriptor()
	// userprogress.DefaultMasteredItemCount holds the default value on creation for the mastered_item_count field.
	userprogress.DefaultMasteredItemCount = userprogressDescMasteredItemCount.Default.(int)
	// userprogressDescTotalItemCount is the schema descriptor for total_item_count field.
	userprogressDescTotalItemCount := userprogressFields[4].Descriptor()
	// userprogress.DefaultTotalItemCount holds the default value on creation for the total_item_count field.
	userprogress.DefaultTotalItemCount = userprogressDescTotalItemCount.Default.(int)
}
