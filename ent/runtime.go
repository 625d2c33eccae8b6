// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/ayinesh/studycoach/ent/adaptationevent"
	"github.com/ayinesh/studycoach/ent/learnermetrics"
	"github.com/ayinesh/studycoach/ent/llmrequestevent"
	"github.com/ayinesh/studycoach/ent/reviewitem"
	"github.com/ayinesh/studycoach/ent/schema"
	"github.com/ayinesh/studycoach/ent/session"
	"github.com/ayinesh/studycoach/ent/sessionactivity"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	adaptationeventMixin := schema.AdaptationEvent{}.Mixin()
	adaptationeventMixinFields0 := adaptationeventMixin[0].Fields()
	_ = adaptationeventMixinFields0
	adaptationeventFields := schema.AdaptationEvent{}.Fields()
	_ = adaptationeventFields
	// adaptationeventDescTimestamp is the schema descriptor for timestamp field.
	adaptationeventDescTimestamp := adaptationeventMixinFields0[1].Descriptor()
	// adaptationevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	adaptationevent.DefaultTimestamp = adaptationeventDescTimestamp.Default.(func() time.Time)
	// adaptationeventDescEventID is the schema descriptor for event_id field.
	adaptationeventDescEventID := adaptationeventFields[0].Descriptor()
	// adaptationevent.EventIDValidator is a validator for the "event_id" field. It is called by the builders before save.
	adaptationevent.EventIDValidator = adaptationeventDescEventID.Validators[0].(func(string) error)
	// adaptationeventDescUserID is the schema descriptor for user_id field.
	adaptationeventDescUserID := adaptationeventFields[1].Descriptor()
	// adaptationevent.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	adaptationevent.UserIDValidator = adaptationeventDescUserID.Validators[0].(func(string) error)
	// adaptationeventDescReason is the schema descriptor for reason field.
	adaptationeventDescReason := adaptationeventFields[3].Descriptor()
	// adaptationevent.DefaultReason holds the default value on creation for the reason field.
	adaptationevent.DefaultReason = adaptationeventDescReason.Default.(string)
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventMixinFields0[1].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[7].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	learnermetricsFields := schema.LearnerMetrics{}.Fields()
	_ = learnermetricsFields
	// learnermetricsDescUserID is the schema descriptor for user_id field.
	learnermetricsDescUserID := learnermetricsFields[0].Descriptor()
	// learnermetrics.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	learnermetrics.UserIDValidator = learnermetricsDescUserID.Validators[0].(func(string) error)
	// learnermetricsDescAvgQuizScore is the schema descriptor for avg_quiz_score field.
	learnermetricsDescAvgQuizScore := learnermetricsFields[3].Descriptor()
	// learnermetrics.DefaultAvgQuizScore holds the default value on creation for the avg_quiz_score field.
	learnermetrics.DefaultAvgQuizScore = learnermetricsDescAvgQuizScore.Default.(float64)
	// learnermetricsDescAvgDialogueScore is the schema descriptor for avg_dialogue_score field.
	learnermetricsDescAvgDialogueScore := learnermetricsFields[4].Descriptor()
	// learnermetrics.DefaultAvgDialogueScore holds the default value on creation for the avg_dialogue_score field.
	learnermetrics.DefaultAvgDialogueScore = learnermetricsDescAvgDialogueScore.Default.(float64)
	// learnermetricsDescSessionsLast7Days is the schema descriptor for sessions_last_7_days field.
	learnermetricsDescSessionsLast7Days := learnermetricsFields[5].Descriptor()
	// learnermetrics.DefaultSessionsLast7Days holds the default value on creation for the sessions_last_7_days field.
	learnermetrics.DefaultSessionsLast7Days = learnermetricsDescSessionsLast7Days.Default.(int)
	// learnermetricsDescSessionsLast30Days is the schema descriptor for sessions_last_30_days field.
	learnermetricsDescSessionsLast30Days := learnermetricsFields[6].Descriptor()
	// learnermetrics.DefaultSessionsLast30Days holds the default value on creation for the sessions_last_30_days field.
	learnermetrics.DefaultSessionsLast30Days = learnermetricsDescSessionsLast30Days.Default.(int)
	// learnermetricsDescAvgSessionMinutes is the schema descriptor for avg_session_minutes field.
	learnermetricsDescAvgSessionMinutes := learnermetricsFields[7].Descriptor()
	// learnermetrics.DefaultAvgSessionMinutes holds the default value on creation for the avg_session_minutes field.
	learnermetrics.DefaultAvgSessionMinutes = learnermetricsDescAvgSessionMinutes.Default.(int)
	// learnermetricsDescSessionsStarted is the schema descriptor for sessions_started field.
	learnermetricsDescSessionsStarted := learnermetricsFields[8].Descriptor()
	// learnermetrics.DefaultSessionsStarted holds the default value on creation for the sessions_started field.
	learnermetrics.DefaultSessionsStarted = learnermetricsDescSessionsStarted.Default.(int)
	// learnermetricsDescSessionsCompleted is the schema descriptor for sessions_completed field.
	learnermetricsDescSessionsCompleted := learnermetricsFields[9].Descriptor()
	// learnermetrics.DefaultSessionsCompleted holds the default value on creation for the sessions_completed field.
	learnermetrics.DefaultSessionsCompleted = learnermetricsDescSessionsCompleted.Default.(int)
	// learnermetricsDescPace is the schema descriptor for pace field.
	learnermetricsDescPace := learnermetricsFields[10].Descriptor()
	// learnermetrics.DefaultPace holds the default value on creation for the pace field.
	learnermetrics.DefaultPace = learnermetricsDescPace.Default.(string)
	// learnermetricsDescDifficultyLevel is the schema descriptor for difficulty_level field.
	learnermetricsDescDifficultyLevel := learnermetricsFields[11].Descriptor()
	// learnermetrics.DefaultDifficultyLevel holds the default value on creation for the difficulty_level field.
	learnermetrics.DefaultDifficultyLevel = learnermetricsDescDifficultyLevel.Default.(int)
	// learnermetricsDescConsecutiveMissedDays is the schema descriptor for consecutive_missed_days field.
	learnermetricsDescConsecutiveMissedDays := learnermetricsFields[13].Descriptor()
	// learnermetrics.DefaultConsecutiveMissedDays holds the default value on creation for the consecutive_missed_days field.
	learnermetrics.DefaultConsecutiveMissedDays = learnermetricsDescConsecutiveMissedDays.Default.(int)
	// learnermetricsDescCurrentStreak is the schema descriptor for current_streak field.
	learnermetricsDescCurrentStreak := learnermetricsFields[14].Descriptor()
	// learnermetrics.DefaultCurrentStreak holds the default value on creation for the current_streak field.
	learnermetrics.DefaultCurrentStreak = learnermetricsDescCurrentStreak.Default.(int)
	// learnermetricsDescLongestStreak is the schema descriptor for longest_streak field.
	learnermetricsDescLongestStreak := learnermetricsFields[15].Descriptor()
	// learnermetrics.DefaultLongestStreak holds the default value on creation for the longest_streak field.
	learnermetrics.DefaultLongestStreak = learnermetricsDescLongestStreak.Default.(int)
	// learnermetricsDescTotalSessions is the schema descriptor for total_sessions field.
	learnermetricsDescTotalSessions := learnermetricsFields[16].Descriptor()
	// learnermetrics.DefaultTotalSessions holds the default value on creation for the total_sessions field.
	learnermetrics.DefaultTotalSessions = learnermetricsDescTotalSessions.Default.(int)
	reviewitemFields := schema.ReviewItem{}.Fields()
	_ = reviewitemFields
	// reviewitemDescUserID is the schema descriptor for user_id field.
	reviewitemDescUserID := reviewitemFields[0].Descriptor()
	// reviewitem.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	reviewitem.UserIDValidator = reviewitemDescUserID.Validators[0].(func(string) error)
	// reviewitemDescTopicID is the schema descriptor for topic_id field.
	reviewitemDescTopicID := reviewitemFields[1].Descriptor()
	// reviewitem.TopicIDValidator is a validator for the "topic_id" field. It is called by the builders before save.
	reviewitem.TopicIDValidator = reviewitemDescTopicID.Validators[0].(func(string) error)
	// reviewitemDescIntervalDays is the schema descriptor for interval_days field.
	reviewitemDescIntervalDays := reviewitemFields[4].Descriptor()
	// reviewitem.DefaultIntervalDays holds the default value on creation for the interval_days field.
	reviewitem.DefaultIntervalDays = reviewitemDescIntervalDays.Default.(int)
	// reviewitemDescEaseFactor is the schema descriptor for ease_factor field.
	reviewitemDescEaseFactor := reviewitemFields[5].Descriptor()
	// reviewitem.DefaultEaseFactor holds the default value on creation for the ease_factor field.
	reviewitem.DefaultEaseFactor = reviewitemDescEaseFactor.Default.(float64)
	// reviewitemDescReviewCount is the schema descriptor for review_count field.
	reviewitemDescReviewCount := reviewitemFields[6].Descriptor()
	// reviewitem.DefaultReviewCount holds the default value on creation for the review_count field.
	reviewitem.DefaultReviewCount = reviewitemDescReviewCount.Default.(int)
	// reviewitemDescProficiency is the schema descriptor for proficiency field.
	reviewitemDescProficiency := reviewitemFields[7].Descriptor()
	// reviewitem.DefaultProficiency holds the default value on creation for the proficiency field.
	reviewitem.DefaultProficiency = reviewitemDescProficiency.Default.(float64)
	sessionFields := schema.Session{}.Fields()
	_ = sessionFields
	// sessionDescSessionID is the schema descriptor for session_id field.
	sessionDescSessionID := sessionFields[0].Descriptor()
	// session.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	session.SessionIDValidator = sessionDescSessionID.Validators[0].(func(string) error)
	// sessionDescUserID is the schema descriptor for user_id field.
	sessionDescUserID := sessionFields[1].Descriptor()
	// session.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	session.UserIDValidator = sessionDescUserID.Validators[0].(func(string) error)
	// sessionDescPlannedMinutes is the schema descriptor for planned_minutes field.
	sessionDescPlannedMinutes := sessionFields[4].Descriptor()
	// session.DefaultPlannedMinutes holds the default value on creation for the planned_minutes field.
	session.DefaultPlannedMinutes = sessionDescPlannedMinutes.Default.(int)
	// sessionDescActualMinutes is the schema descriptor for actual_minutes field.
	sessionDescActualMinutes := sessionFields[5].Descriptor()
	// session.DefaultActualMinutes holds the default value on creation for the actual_minutes field.
	session.DefaultActualMinutes = sessionDescActualMinutes.Default.(int)
	// sessionDescAbandonReason is the schema descriptor for abandon_reason field.
	sessionDescAbandonReason := sessionFields[8].Descriptor()
	// session.DefaultAbandonReason holds the default value on creation for the abandon_reason field.
	session.DefaultAbandonReason = sessionDescAbandonReason.Default.(string)
	sessionactivityFields := schema.SessionActivity{}.Fields()
	_ = sessionactivityFields
	// sessionactivityDescActivityID is the schema descriptor for activity_id field.
	sessionactivityDescActivityID := sessionactivityFields[0].Descriptor()
	// sessionactivity.ActivityIDValidator is a validator for the "activity_id" field. It is called by the builders before save.
	sessionactivity.ActivityIDValidator = sessionactivityDescActivityID.Validators[0].(func(string) error)
	// sessionactivityDescSessionID is the schema descriptor for session_id field.
	sessionactivityDescSessionID := sessionactivityFields[1].Descriptor()
	// sessionactivity.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	sessionactivity.SessionIDValidator = sessionactivityDescSessionID.Validators[0].(func(string) error)
	// sessionactivityDescTopicID is the schema descriptor for topic_id field.
	sessionactivityDescTopicID := sessionactivityFields[3].Descriptor()
	// sessionactivity.DefaultTopicID holds the default value on creation for the topic_id field.
	sessionactivity.DefaultTopicID = sessionactivityDescTopicID.Default.(string)
	// sessionactivityDescContentID is the schema descriptor for content_id field.
	sessionactivityDescContentID := sessionactivityFields[4].Descriptor()
	// sessionactivity.DefaultContentID holds the default value on creation for the content_id field.
	sessionactivity.DefaultContentID = sessionactivityDescContentID.Default.(string)
}
