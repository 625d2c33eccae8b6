// Code generated by ent, DO NOT EDIT.

package learnermetrics

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/ayinesh/studycoach/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.LearnerMetrics {
	return predicate.LearnerMetrics(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.LearnerMetrics {
	return predicate.LearnerMetrics(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.LearnerMetrics {
	return predicate.LearnerMetrics(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.LearnerMetrics {
	return predicate.LearnerMetrics(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.LearnerMetrics {
	return predicate.LearnerMetrics(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.LearnerMetrics {
	return predicate.LearnerMetrics(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.LearnerMetrics {
	return predicate.LearnerMetrics(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.LearnerMetrics {
	return predicate.LearnerMetrics(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.LearnerMetrics {
	return predicate.LearnerMetrics(sql.FieldLTE(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.LearnerMetrics {
	return predicate.LearnerMetrics(sql.FieldEQ(FieldUserID, v))
}

// AvgQuizScore applies equality check predicate on the "avg_quiz_score" field. It's identical to AvgQuizScoreEQ.
func AvgQuizScore(v float64) predicate.LearnerMetrics {
	return predicate.LearnerMetrics(sql.FieldEQ(FieldAvgQuizScore, v))
}

// AvgDialogueScore applies equality check predicate on the "avg_dialogue_score" field. It's identical to AvgDialogueScoreEQ.
func AvgDialogueScore(v float64) predicate.LearnerMetrics {
	return predicate.LearnerMetrics(sql.FieldEQ(FieldAvgDialogueScore, v))
}

// SessionsLast7Days applies equality check predicate on the "sessions_last_7_days" field. It's identical to SessionsLast7DaysEQ.
func SessionsLast7Days(v int) predicate.LearnerMetrics {
	return predicate.LearnerMetrics(sql.FieldEQ(FieldSessionsLast7Days, v))
}

// SessionsLast30Days applies equality check predicate on the "sessions_last_30_days" field. It's identical to SessionsLast30DaysEQ.
func SessionsLast30Days(v int) predicate.LearnerMetrics {
	return predicate.LearnerMetrics(sql.FieldEQ(FieldSessionsLast30Days, v))
}

// AvgSessionMinutes applies equality check predicate on the "avg_session_minutes" field. It's identical to AvgSessionMinutesEQ.
func AvgSessionMinutes(v int) predicate.LearnerMetrics {
	return predicate.LearnerMetrics(sql.FieldEQ(FieldAvgSessionMinutes, v))
}

// SessionsStarted applies equality check predicate on the "sessions_started" field. It's identical to SessionsStartedEQ.
func SessionsStarted(v int) predicate.LearnerMetrics {
	return predicate.LearnerMetrics(sql.FieldEQ(FieldSessionsStarted, v))
}

// SessionsCompleted applies equality check predicate on the "sessions_completed" field. It's identical to SessionsCompletedEQ.
func SessionsCompleted(v int) predicate.LearnerMetrics {
	return predicate.LearnerMetrics(sql.FieldEQ(FieldSessionsCompleted, v))
}

// Pace applies equality check predicate on the "pace" field. It's identical to PaceEQ.
func Pace(v string) predicate.LearnerMetrics {
	return predicate.LearnerMetrics(sql.FieldEQ(FieldPace, v))
}

// DifficultyLevel applies equality check predicate on the "difficulty_level" field. It's identical to DifficultyLevelEQ.
func DifficultyLevel(v int) predicate.LearnerMetrics {
	return predicate.LearnerMetrics(sql.FieldEQ(FieldDifficultyLevel, v))
}

// LastSessionDate applies equality check predicate on the "last_session_date" field. It's identical to LastSessionDateEQ.
func LastSessionDate(v time.Time) predicate.LearnerMetrics {
	return predicate.LearnerMetrics(sql.FieldEQ(FieldLastSessionDate, v))
}

// ConsecutiveMissedDays applies equality check predicate on the "consecutive_missed_days" field. It's identical to ConsecutiveMissedDaysEQ.
func ConsecutiveMissedDays(v int) predicate.LearnerMetrics {
	return predicate.LearnerMetrics(sql.FieldEQ(FieldConsecutiveMissedDays, v))
}

// CurrentStreak applies equality check predicate on the "current_streak" field. It's identical to CurrentStreakEQ.
func CurrentStreak(v int) predicate.LearnerMetrics {
	return predicate.LearnerMetrics(sql.FieldEQ(FieldCurrentStreak, v))
}

// LongestStreak applies equality check predicate on the "longest_streak" field. It's identical to LongestStreakEQ.
func LongestStreak(v int) predicate.LearnerMetrics {
	return predicate.LearnerMetrics(sql.FieldEQ(FieldLongestStreak, v))
}

// TotalSessions applies equality check predicate on the "total_sessions" field. It's identical to TotalSessionsEQ.
func TotalSessions(v int) predicate.LearnerMetrics {
	return predicate.LearnerMetrics(sql.FieldEQ(FieldTotalSessions, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.LearnerMetrics {
	return predicate.LearnerMetrics(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.LearnerMetrics {
	return predicate.LearnerMetrics(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.LearnerMetrics {
	return predicate.LearnerMetrics(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.LearnerMetrics {
	return predicate.LearnerMetrics(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.LearnerMetrics {
	return predicate.LearnerMetrics(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.LearnerMetrics {
	return predicate.LearnerMetrics(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.LearnerMetrics {
	return predicate.LearnerMetrics(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.LearnerMetrics {
	return predicate.LearnerMetrics(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.LearnerMetrics {
	return predicate.LearnerMetrics(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.LearnerMetrics {
	return predicate.LearnerMetrics(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.LearnerMetrics {
	return predicate.LearnerMetrics(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.LearnerMetrics {
	return predicate.LearnerMetrics(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.LearnerMetrics {
	return predicate.LearnerMetrics(sql.FieldContainsFold(FieldUserID, v))
}

// QuizScoresIsNil applies the IsNil predicate on the "quiz_scores" field.
func QuizScoresIsNil() predicate.LearnerMetrics {
	return predicate.LearnerMetrics(sql.FieldIsNull(FieldQuizScores))
}

// QuizScoresNotNil applies the NotNil predicate on the "quiz_scores" field.
func QuizScoresNotNil() predicate.LearnerMetrics {
	return predicate.LearnerMetrics(sql.FieldNotNull(FieldQuizScores))
}

// DialogueScoresIsNil applies the IsNil predicate on the "dialogue_scores" field.
func DialogueScoresIsNil() predicate.LearnerMetrics {
	return predicate.LearnerMetrics(sql.FieldIsNull(FieldDialogueScores))
}

// DialogueScoresNotNil applies the NotNil predicate on the "dialogue_scores" field.
func DialogueScoresNotNil() predicate.LearnerMetrics {
	return predicate.LearnerMetrics(sql.FieldNotNull(FieldDialogueScores))
}

// AvgQuizScoreEQ applies the EQ predicate on the "avg_quiz_score" field.
func AvgQuizScoreEQ(v float64) predicate.LearnerMetrics {
	return predicate.LearnerMetrics(sql.FieldEQ(FieldAvgQuizScore, v))
}

// AvgQuizScoreNEQ applies the NEQ predicate on the "avg_quiz_score" field.
func AvgQuizScoreNEQ(v float64) predicate.LearnerMetrics {
	return predicate.LearnerMetrics(sql.FieldNEQ(FieldAvgQuizScore, v))
}

// AvgQuizScoreIn applies the In predicate on the "avg_quiz_score" field.
func AvgQuizScoreIn(vs ...float64) predicate.LearnerMetrics {
	return predicate.LearnerMetrics(sql.FieldIn(FieldAvgQuizScore, vs...))
}

// AvgQuizScoreNotIn applies the NotIn predicate on the "avg_quiz_score" field.
func AvgQuizScoreNotIn(vs ...float64) predicate.LearnerMetrics {
	return predicate.LearnerMetrics(sql.FieldNotIn(FieldAvgQuizScore, vs...))
}

// AvgQuizScoreGT applies the GT predicate on the "avg_quiz_score" field.
func AvgQuizScoreGT(v float64) predicate.LearnerMetrics {
	return predicate.LearnerMetrics(sql.FieldGT(FieldAvgQuizScore, v))
}

// AvgQuizScoreGTE applies the GTE predicate on the "avg_quiz_score" field.
func AvgQuizScoreGTE(v float64) predicate.LearnerMetrics {
	return predicate.LearnerMetrics(sql.FieldGTE(FieldAvgQuizScore, v))
}

// AvgQuizScoreLT applies the LT predicate on the "avg_quiz_score" field.
func AvgQuizScoreLT(v float64) predicate.LearnerMetrics {
	return predicate.LearnerMetrics(sql.FieldLT(FieldAvgQuizScore, v))
}

// AvgQuizScoreLTE applies the LTE predicate on the "avg_quiz_score" field.
func AvgQuizScoreLTE(v float64) predicate.LearnerMetrics {
	return predicate.LearnerMetrics(sql.FieldLTE(FieldAvgQuizScore, v))
}

// AvgDialogueScoreEQ applies the EQ predicate on the "avg_dialogue_score" field.
func AvgDialogueScoreEQ(v float64) predicate.LearnerMetrics {
	return predicate.LearnerMetrics(sql.FieldEQ(FieldAvgDialogueScore, v))
}

// AvgDialogueScoreNEQ applies the NEQ predicate on the "avg_dialogue_score" field.
func AvgDialogueScoreNEQ(v float64) predicate.LearnerMetrics {
	return predicate.LearnerMetrics(sql.FieldNEQ(FieldAvgDialogueScore, v))
}

// AvgDialogueScoreIn applies the In predicate on the "avg_dialogue_score" field.
func AvgDialogueScoreIn(vs ...float64) predicate.LearnerMetrics {
	return predicate.LearnerMetrics(sql.FieldIn(FieldAvgDialogueScore, vs...))
}

// AvgDialogueScoreNotIn applies the NotIn predicate on the "avg_dialogue_score" field.
func AvgDialogueScoreNotIn(vs ...float64) predicate.LearnerMetrics {
	return predicate.LearnerMetrics(sql.FieldNotIn(FieldAvgDialogueScore, vs...))
}

// AvgDialogueScoreGT applies the GT predicate on the "avg_dialogue_score" field.
func AvgDialogueScoreGT(v float64) predicate.LearnerMetrics {
	return predicate.LearnerMetrics(sql.FieldGT(FieldAvgDialogueScore, v))
}

// AvgDialogueScoreGTE applies the GTE predicate on the "avg_dialogue_score" field.
func AvgDialogueScoreGTE(v float64) predicate.LearnerMetrics {
	return predicate.LearnerMetrics(sql.FieldGTE(FieldAvgDialogueScore, v))
}

// AvgDialogueScoreLT applies the LT predicate on the "avg_dialogue_score" field.
func AvgDialogueScoreLT(v float64) predicate.LearnerMetrics {
	return predicate.LearnerMetrics(sql.FieldLT(FieldAvgDialogueScore, v))
}

// AvgDialogueScoreLTE applies the LTE predicate on the "avg_dialogue_score" field.
func AvgDialogueScoreLTE(v float64) predicate.LearnerMetrics {
	return predicate.LearnerMetrics(sql.FieldLTE(FieldAvgDialogueScore, v))
}

// SessionsLast7DaysEQ applies the EQ predicate on the "sessions_last_7_days" field.
func SessionsLast7DaysEQ(v int) predicate.LearnerMetrics {
	return predicate.LearnerMetrics(sql.FieldEQ(FieldSessionsLast7Days, v))
}

// SessionsLast7DaysNEQ applies the NEQ predicate on the "sessions_last_7_days" field.
func SessionsLast7DaysNEQ(v int) predicate.LearnerMetrics {
	return predicate.LearnerMetrics(sql.FieldNEQ(FieldSessionsLast7Days, v))
}

// SessionsLast7DaysIn applies the In predicate on the "sessions_last_7_days" field.
func SessionsLast7DaysIn(vs ...int) predicate.LearnerMetrics {
	return predicate.LearnerMetrics(sql.FieldIn(FieldSessionsLast7Days, vs...))
}

// SessionsLast7DaysNotIn applies the NotIn predicate on the "sessions_last_7_days" field.
func SessionsLast7DaysNotIn(vs ...int) predicate.LearnerMetrics {
	return predicate.LearnerMetrics(sql.FieldNotIn(FieldSessionsLast7Days, vs...))
}

// SessionsLast7DaysGT applies the GT predicate on the "sessions_last_7_days" field.
func SessionsLast7DaysGT(v int) predicate.LearnerMetrics {
	return predicate.LearnerMetrics(sql.FieldGT(FieldSessionsLast7Days, v))
}

// SessionsLast7DaysGTE applies the GTE predicate on the "sessions_last_7_days" field.
func SessionsLast7DaysGTE(v int) predicate.LearnerMetrics {
	return predicate.LearnerMetrics(sql.FieldGTE(FieldSessionsLast7Days, v))
}

// SessionsLast7DaysLT applies the LT predicate on the "sessions_last_7_days" field.
func SessionsLast7DaysLT(v int) predicate.LearnerMetrics {
	return predicate.LearnerMetrics(sql.FieldLT(FieldSessionsLast7Days, v))
}

// SessionsLast7DaysLTE applies the LTE predicate on the "sessions_last_7_days" field.
func SessionsLast7DaysLTE(v int) predicate.LearnerMetrics {
	return predicate.LearnerMetrics(sql.FieldLTE(FieldSessionsLast7Days, v))
}

// SessionsLast30DaysEQ applies the EQ predicate on the "sessions_last_30_days" field.
func SessionsLast30DaysEQ(v int) predicate.LearnerMetrics {
	return predicate.LearnerMetrics(sql.FieldEQ(FieldSessionsLast30Days, v))
}

// SessionsLast30DaysNEQ applies the NEQ predicate on the "sessions_last_30_days" field.
func SessionsLast30DaysNEQ(v int) predicate.LearnerMetrics {
	return predicate.LearnerMetrics(sql.FieldNEQ(FieldSessionsLast30Days, v))
}

// SessionsLast30DaysIn applies the In predicate on the "sessions_last_30_days" field.
func SessionsLast30DaysIn(vs ...int) predicate.LearnerMetrics {
	return predicate.LearnerMetrics(sql.FieldIn(FieldSessionsLast30Days, vs...))
}

// SessionsLast30DaysNotIn applies the NotIn predicate on the "sessions_last_30_days" field.
func SessionsLast30DaysNotIn(vs ...int) predicate.LearnerMetrics {
	return predicate.LearnerMetrics(sql.FieldNotIn(FieldSessionsLast30Days, vs...))
}

// SessionsLast30DaysGT applies the GT predicate on the "sessions_last_30_days" field.
func SessionsLast30DaysGT(v int) predicate.LearnerMetrics {
	return predicate.LearnerMetrics(sql.FieldGT(FieldSessionsLast30Days, v))
}

// SessionsLast30DaysGTE applies the GTE predicate on the "sessions_last_30_days" field.
func SessionsLast30DaysGTE(v int) predicate.LearnerMetrics {
	return predicate.LearnerMetrics(sql.FieldGTE(FieldSessionsLast30Days, v))
}

// SessionsLast30DaysLT applies the LT predicate on the "sessions_last_30_days" field.
func SessionsLast30DaysLT(v int) predicate.LearnerMetrics {
	return predicate.LearnerMetrics(sql.FieldLT(FieldSessionsLast30Days, v))
}

// SessionsLast30DaysLTE applies the LTE predicate on the "sessions_last_30_days" field.
func SessionsLast30DaysLTE(v int) predicate.LearnerMetrics {
	return predicate.LearnerMetrics(sql.FieldLTE(FieldSessionsLast30Days, v))
}

// AvgSessionMinutesEQ applies the EQ predicate on the "avg_session_minutes" field.
func AvgSessionMinutesEQ(v int) predicate.LearnerMetrics {
	return predicate.LearnerMetrics(sql.FieldEQ(FieldAvgSessionMinutes, v))
}

// AvgSessionMinutesNEQ applies the NEQ predicate on the "avg_session_minutes" field.
func AvgSessionMinutesNEQ(v int) predicate.LearnerMetrics {
	return predicate.LearnerMetrics(sql.FieldNEQ(FieldAvgSessionMinutes, v))
}

// AvgSessionMinutesIn applies the In predicate on the "avg_session_minutes" field.
func AvgSessionMinutesIn(vs ...int) predicate.LearnerMetrics {
	return predicate.LearnerMetrics(sql.FieldIn(FieldAvgSessionMinutes, vs...))
}

// AvgSessionMinutesNotIn applies the NotIn predicate on the "avg_session_minutes" field.
func AvgSessionMinutesNotIn(vs ...int) predicate.LearnerMetrics {
	return predicate.LearnerMetrics(sql.FieldNotIn(FieldAvgSessionMinutes, vs...))
}

// AvgSessionMinutesGT applies the GT predicate on the "avg_session_minutes" field.
func AvgSessionMinutesGT(v int) predicate.LearnerMetrics {
	return predicate.LearnerMetrics(sql.FieldGT(FieldAvgSessionMinutes, v))
}

// AvgSessionMinutesGTE applies the GTE predicate on the "avg_session_minutes" field.
func AvgSessionMinutesGTE(v int) predicate.LearnerMetrics {
	return predicate.LearnerMetrics(sql.FieldGTE(FieldAvgSessionMinutes, v))
}

// AvgSessionMinutesLT applies the LT predicate on the "avg_session_minutes" field.
func AvgSessionMinutesLT(v int) predicate.LearnerMetrics {
	return predicate.LearnerMetrics(sql.FieldLT(FieldAvgSessionMinutes, v))
}

// AvgSessionMinutesLTE applies the LTE predicate on the "avg_session_minutes" field.
func AvgSessionMinutesLTE(v int) predicate.LearnerMetrics {
	return predicate.LearnerMetrics(sql.FieldLTE(FieldAvgSessionMinutes, v))
}

// SessionsStartedEQ applies the EQ predicate on the "sessions_started" field.
func SessionsStartedEQ(v int) predicate.LearnerMetrics {
	return predicate.LearnerMetrics(sql.FieldEQ(FieldSessionsStarted, v))
}

// SessionsStartedNEQ applies the NEQ predicate on the "sessions_started" field.
func SessionsStartedNEQ(v int) predicate.LearnerMetrics {
	return predicate.LearnerMetrics(sql.FieldNEQ(FieldSessionsStarted, v))
}

// SessionsStartedIn applies the In predicate on the "sessions_started" field.
func SessionsStartedIn(vs ...int) predicate.LearnerMetrics {
	return predicate.LearnerMetrics(sql.FieldIn(FieldSessionsStarted, vs...))
}

// SessionsStartedNotIn applies the NotIn predicate on the "sessions_started" field.
func SessionsStartedNotIn(vs ...int) predicate.LearnerMetrics {
	return predicate.LearnerMetrics(sql.FieldNotIn(FieldSessionsStarted, vs...))
}

// SessionsStartedGT applies the GT predicate on the "sessions_started" field.
func SessionsStartedGT(v int) predicate.LearnerMetrics {
	return predicate.LearnerMetrics(sql.FieldGT(FieldSessionsStarted, v))
}

// SessionsStartedGTE applies the GTE predicate on the "sessions_started" field.
func SessionsStartedGTE(v int) predicate.LearnerMetrics {
	return predicate.LearnerMetrics(sql.FieldGTE(FieldSessionsStarted, v))
}

// SessionsStartedLT applies the LT predicate on the "sessions_started" field.
func SessionsStartedLT(v int) predicate.LearnerMetrics {
	return predicate.LearnerMetrics(sql.FieldLT(FieldSessionsStarted, v))
}

// SessionsStartedLTE applies the LTE predicate on the "sessions_started" field.
func SessionsStartedLTE(v int) predicate.LearnerMetrics {
	return predicate.LearnerMetrics(sql.FieldLTE(FieldSessionsStarted, v))
}

// SessionsCompletedEQ applies the EQ predicate on the "sessions_completed" field.
func SessionsCompletedEQ(v int) predicate.LearnerMetrics {
	return predicate.LearnerMetrics(sql.FieldEQ(FieldSessionsCompleted, v))
}

// SessionsCompletedNEQ applies the NEQ predicate on the "sessions_completed" field.
func SessionsCompletedNEQ(v int) predicate.LearnerMetrics {
	return predicate.LearnerMetrics(sql.FieldNEQ(FieldSessionsCompleted, v))
}

// SessionsCompletedIn applies the In predicate on the "sessions_completed" field.
func SessionsCompletedIn(vs ...int) predicate.LearnerMetrics {
	return predicate.LearnerMetrics(sql.FieldIn(FieldSessionsCompleted, vs...))
}

// SessionsCompletedNotIn applies the NotIn predicate on the "sessions_completed" field.
func SessionsCompletedNotIn(vs ...int) predicate.LearnerMetrics {
	return predicate.LearnerMetrics(sql.FieldNotIn(FieldSessionsCompleted, vs...))
}

// SessionsCompletedGT applies the GT predicate on the "sessions_completed" field.
func SessionsCompletedGT(v int) predicate.LearnerMetrics {
	return predicate.LearnerMetrics(sql.FieldGT(FieldSessionsCompleted, v))
}

// SessionsCompletedGTE applies the GTE predicate on the "sessions_completed" field.
func SessionsCompletedGTE(v int) predicate.LearnerMetrics {
	return predicate.LearnerMetrics(sql.FieldGTE(FieldSessionsCompleted, v))
}

// SessionsCompletedLT applies the LT predicate on the "sessions_completed" field.
func SessionsCompletedLT(v int) predicate.LearnerMetrics {
	return predicate.LearnerMetrics(sql.FieldLT(FieldSessionsCompleted, v))
}

// SessionsCompletedLTE applies the LTE predicate on the "sessions_completed" field.
func SessionsCompletedLTE(v int) predicate.LearnerMetrics {
	return predicate.LearnerMetrics(sql.FieldLTE(FieldSessionsCompleted, v))
}

// PaceEQ applies the EQ predicate on the "pace" field.
func PaceEQ(v string) predicate.LearnerMetrics {
	return predicate.LearnerMetrics(sql.FieldEQ(FieldPace, v))
}

// PaceNEQ applies the NEQ predicate on the "pace" field.
func PaceNEQ(v string) predicate.LearnerMetrics {
	return predicate.LearnerMetrics(sql.FieldNEQ(FieldPace, v))
}

// PaceIn applies the In predicate on the "pace" field.
func PaceIn(vs ...string) predicate.LearnerMetrics {
	return predicate.LearnerMetrics(sql.FieldIn(FieldPace, vs...))
}

// PaceNotIn applies the NotIn predicate on the "pace" field.
func PaceNotIn(vs ...string) predicate.LearnerMetrics {
	return predicate.LearnerMetrics(sql.FieldNotIn(FieldPace, vs...))
}

// PaceGT applies the GT predicate on the "pace" field.
func PaceGT(v string) predicate.LearnerMetrics {
	return predicate.LearnerMetrics(sql.FieldGT(FieldPace, v))
}

// PaceGTE applies the GTE predicate on the "pace" field.
func PaceGTE(v string) predicate.LearnerMetrics {
	return predicate.LearnerMetrics(sql.FieldGTE(FieldPace, v))
}

// PaceLT applies the LT predicate on the "pace" field.
func PaceLT(v string) predicate.LearnerMetrics {
	return predicate.LearnerMetrics(sql.FieldLT(FieldPace, v))
}

// PaceLTE applies the LTE predicate on the "pace" field.
func PaceLTE(v string) predicate.LearnerMetrics {
	return predicate.LearnerMetrics(sql.FieldLTE(FieldPace, v))
}

// PaceContains applies the Contains predicate on the "pace" field.
func PaceContains(v string) predicate.LearnerMetrics {
	return predicate.LearnerMetrics(sql.FieldContains(FieldPace, v))
}

// PaceHasPrefix applies the HasPrefix predicate on the "pace" field.
func PaceHasPrefix(v string) predicate.LearnerMetrics {
	return predicate.LearnerMetrics(sql.FieldHasPrefix(FieldPace, v))
}

// PaceHasSuffix applies the HasSuffix predicate on the "pace" field.
func PaceHasSuffix(v string) predicate.LearnerMetrics {
	return predicate.LearnerMetrics(sql.FieldHasSuffix(FieldPace, v))
}

// PaceEqualFold applies the EqualFold predicate on the "pace" field.
func PaceEqualFold(v string) predicate.LearnerMetrics {
	return predicate.LearnerMetrics(sql.FieldEqualFold(FieldPace, v))
}

// PaceContainsFold applies the ContainsFold predicate on the "pace" field.
func PaceContainsFold(v string) predicate.LearnerMetrics {
	return predicate.LearnerMetrics(sql.FieldContainsFold(FieldPace, v))
}

// DifficultyLevelEQ applies the EQ predicate on the "difficulty_level" field.
func DifficultyLevelEQ(v int) predicate.LearnerMetrics {
	return predicate.LearnerMetrics(sql.FieldEQ(FieldDifficultyLevel, v))
}

// DifficultyLevelNEQ applies the NEQ predicate on the "difficulty_level" field.
func DifficultyLevelNEQ(v int) predicate.LearnerMetrics {
	return predicate.LearnerMetrics(sql.FieldNEQ(FieldDifficultyLevel, v))
}

// DifficultyLevelIn applies the In predicate on the "difficulty_level" field.
func DifficultyLevelIn(vs ...int) predicate.LearnerMetrics {
	return predicate.LearnerMetrics(sql.FieldIn(FieldDifficultyLevel, vs...))
}

// DifficultyLevelNotIn applies the NotIn predicate on the "difficulty_level" field.
func DifficultyLevelNotIn(vs ...int) predicate.LearnerMetrics {
	return predicate.LearnerMetrics(sql.FieldNotIn(FieldDifficultyLevel, vs...))
}

// DifficultyLevelGT applies the GT predicate on the "difficulty_level" field.
func DifficultyLevelGT(v int) predicate.LearnerMetrics {
	return predicate.LearnerMetrics(sql.FieldGT(FieldDifficultyLevel, v))
}

// DifficultyLevelGTE applies the GTE predicate on the "difficulty_level" field.
func DifficultyLevelGTE(v int) predicate.LearnerMetrics {
	return predicate.LearnerMetrics(sql.FieldGTE(FieldDifficultyLevel, v))
}

// DifficultyLevelLT applies the LT predicate on the "difficulty_level" field.
func DifficultyLevelLT(v int) predicate.LearnerMetrics {
	return predicate.LearnerMetrics(sql.FieldLT(FieldDifficultyLevel, v))
}

// DifficultyLevelLTE applies the LTE predicate on the "difficulty_level" field.
func DifficultyLevelLTE(v int) predicate.LearnerMetrics {
	return predicate.LearnerMetrics(sql.FieldLTE(FieldDifficultyLevel, v))
}

// LastSessionDateEQ applies the EQ predicate on the "last_session_date" field.
func LastSessionDateEQ(v time.Time) predicate.LearnerMetrics {
	return predicate.LearnerMetrics(sql.FieldEQ(FieldLastSessionDate, v))
}

// LastSessionDateNEQ applies the NEQ predicate on the "last_session_date" field.
func LastSessionDateNEQ(v time.Time) predicate.LearnerMetrics {
	return predicate.LearnerMetrics(sql.FieldNEQ(FieldLastSessionDate, v))
}

// LastSessionDateIn applies the In predicate on the "last_session_date" field.
func LastSessionDateIn(vs ...time.Time) predicate.LearnerMetrics {
	return predicate.LearnerMetrics(sql.FieldIn(FieldLastSessionDate, vs...))
}

// LastSessionDateNotIn applies the NotIn predicate on the "last_session_date" field.
func LastSessionDateNotIn(vs ...time.Time) predicate.LearnerMetrics {
	return predicate.LearnerMetrics(sql.FieldNotIn(FieldLastSessionDate, vs...))
}

// LastSessionDateGT applies the GT predicate on the "last_session_date" field.
func LastSessionDateGT(v time.Time) predicate.LearnerMetrics {
	return predicate.LearnerMetrics(sql.FieldGT(FieldLastSessionDate, v))
}

// LastSessionDateGTE applies the GTE predicate on the "last_session_date" field.
func LastSessionDateGTE(v time.Time) predicate.LearnerMetrics {
	return predicate.LearnerMetrics(sql.FieldGTE(FieldLastSessionDate, v))
}

// LastSessionDateLT applies the LT predicate on the "last_session_date" field.
func LastSessionDateLT(v time.Time) predicate.LearnerMetrics {
	return predicate.LearnerMetrics(sql.FieldLT(FieldLastSessionDate, v))
}

// LastSessionDateLTE applies the LTE predicate on the "last_session_date" field.
func LastSessionDateLTE(v time.Time) predicate.LearnerMetrics {
	return predicate.LearnerMetrics(sql.FieldLTE(FieldLastSessionDate, v))
}

// LastSessionDateIsNil applies the IsNil predicate on the "last_session_date" field.
func LastSessionDateIsNil() predicate.LearnerMetrics {
	return predicate.LearnerMetrics(sql.FieldIsNull(FieldLastSessionDate))
}

// LastSessionDateNotNil applies the NotNil predicate on the "last_session_date" field.
func LastSessionDateNotNil() predicate.LearnerMetrics {
	return predicate.LearnerMetrics(sql.FieldNotNull(FieldLastSessionDate))
}

// ConsecutiveMissedDaysEQ applies the EQ predicate on the "consecutive_missed_days" field.
func ConsecutiveMissedDaysEQ(v int) predicate.LearnerMetrics {
	return predicate.LearnerMetrics(sql.FieldEQ(FieldConsecutiveMissedDays, v))
}

// ConsecutiveMissedDaysNEQ applies the NEQ predicate on the "consecutive_missed_days" field.
func ConsecutiveMissedDaysNEQ(v int) predicate.LearnerMetrics {
	return predicate.LearnerMetrics(sql.FieldNEQ(FieldConsecutiveMissedDays, v))
}

// ConsecutiveMissedDaysIn applies the In predicate on the "consecutive_missed_days" field.
func ConsecutiveMissedDaysIn(vs ...int) predicate.LearnerMetrics {
	return predicate.LearnerMetrics(sql.FieldIn(FieldConsecutiveMissedDays, vs...))
}

// ConsecutiveMissedDaysNotIn applies the NotIn predicate on the "consecutive_missed_days" field.
func ConsecutiveMissedDaysNotIn(vs ...int) predicate.LearnerMetrics {
	return predicate.LearnerMetrics(sql.FieldNotIn(FieldConsecutiveMissedDays, vs...))
}

// ConsecutiveMissedDaysGT applies the GT predicate on the "consecutive_missed_days" field.
func ConsecutiveMissedDaysGT(v int) predicate.LearnerMetrics {
	return predicate.LearnerMetrics(sql.FieldGT(FieldConsecutiveMissedDays, v))
}

// ConsecutiveMissedDaysGTE applies the GTE predicate on the "consecutive_missed_days" field.
func ConsecutiveMissedDaysGTE(v int) predicate.LearnerMetrics {
	return predicate.LearnerMetrics(sql.FieldGTE(FieldConsecutiveMissedDays, v))
}

// ConsecutiveMissedDaysLT applies the LT predicate on the "consecutive_missed_days" field.
func ConsecutiveMissedDaysLT(v int) predicate.LearnerMetrics {
	return predicate.LearnerMetrics(sql.FieldLT(FieldConsecutiveMissedDays, v))
}

// ConsecutiveMissedDaysLTE applies the LTE predicate on the "consecutive_missed_days" field.
func ConsecutiveMissedDaysLTE(v int) predicate.LearnerMetrics {
	return predicate.LearnerMetrics(sql.FieldLTE(FieldConsecutiveMissedDays, v))
}

// CurrentStreakEQ applies the EQ predicate on the "current_streak" field.
func CurrentStreakEQ(v int) predicate.LearnerMetrics {
	return predicate.LearnerMetrics(sql.FieldEQ(FieldCurrentStreak, v))
}

// CurrentStreakNEQ applies the NEQ predicate on the "current_streak" field.
func CurrentStreakNEQ(v int) predicate.LearnerMetrics {
	return predicate.LearnerMetrics(sql.FieldNEQ(FieldCurrentStreak, v))
}

// CurrentStreakIn applies the In predicate on the "current_streak" field.
func CurrentStreakIn(vs ...int) predicate.LearnerMetrics {
	return predicate.LearnerMetrics(sql.FieldIn(FieldCurrentStreak, vs...))
}

// CurrentStreakNotIn applies the NotIn predicate on the "current_streak" field.
func CurrentStreakNotIn(vs ...int) predicate.LearnerMetrics {
	return predicate.LearnerMetrics(sql.FieldNotIn(FieldCurrentStreak, vs...))
}

// CurrentStreakGT applies the GT predicate on the "current_streak" field.
func CurrentStreakGT(v int) predicate.LearnerMetrics {
	return predicate.LearnerMetrics(sql.FieldGT(FieldCurrentStreak, v))
}

// CurrentStreakGTE applies the GTE predicate on the "current_streak" field.
func CurrentStreakGTE(v int) predicate.LearnerMetrics {
	return predicate.LearnerMetrics(sql.FieldGTE(FieldCurrentStreak, v))
}

// CurrentStreakLT applies the LT predicate on the "current_streak" field.
func CurrentStreakLT(v int) predicate.LearnerMetrics {
	return predicate.LearnerMetrics(sql.FieldLT(FieldCurrentStreak, v))
}

// CurrentStreakLTE applies the LTE predicate on the "current_streak" field.
func CurrentStreakLTE(v int) predicate.LearnerMetrics {
	return predicate.LearnerMetrics(sql.FieldLTE(FieldCurrentStreak, v))
}

// LongestStreakEQ applies the EQ predicate on the "longest_streak" field.
func LongestStreakEQ(v int) predicate.LearnerMetrics {
	return predicate.LearnerMetrics(sql.FieldEQ(FieldLongestStreak, v))
}

// LongestStreakNEQ applies the NEQ predicate on the "longest_streak" field.
func LongestStreakNEQ(v int) predicate.LearnerMetrics {
	return predicate.LearnerMetrics(sql.FieldNEQ(FieldLongestStreak, v))
}

// LongestStreakIn applies the In predicate on the "longest_streak" field.
func LongestStreakIn(vs ...int) predicate.LearnerMetrics {
	return predicate.LearnerMetrics(sql.FieldIn(FieldLongestStreak, vs...))
}

// LongestStreakNotIn applies the NotIn predicate on the "longest_streak" field.
func LongestStreakNotIn(vs ...int) predicate.LearnerMetrics {
	return predicate.LearnerMetrics(sql.FieldNotIn(FieldLongestStreak, vs...))
}

// LongestStreakGT applies the GT predicate on the "longest_streak" field.
func LongestStreakGT(v int) predicate.LearnerMetrics {
	return predicate.LearnerMetrics(sql.FieldGT(FieldLongestStreak, v))
}

// LongestStreakGTE applies the GTE predicate on the "longest_streak" field.
func LongestStreakGTE(v int) predicate.LearnerMetrics {
	return predicate.LearnerMetrics(sql.FieldGTE(FieldLongestStreak, v))
}

// LongestStreakLT applies the LT predicate on the "longest_streak" field.
func LongestStreakLT(v int) predicate.LearnerMetrics {
	return predicate.LearnerMetrics(sql.FieldLT(FieldLongestStreak, v))
}

// LongestStreakLTE applies the LTE predicate on the "longest_streak" field.
func LongestStreakLTE(v int) predicate.LearnerMetrics {
	return predicate.LearnerMetrics(sql.FieldLTE(FieldLongestStreak, v))
}

// TotalSessionsEQ applies the EQ predicate on the "total_sessions" field.
func TotalSessionsEQ(v int) predicate.LearnerMetrics {
	return predicate.LearnerMetrics(sql.FieldEQ(FieldTotalSessions, v))
}

// TotalSessionsNEQ applies the NEQ predicate on the "total_sessions" field.
func TotalSessionsNEQ(v int) predicate.LearnerMetrics {
	return predicate.LearnerMetrics(sql.FieldNEQ(FieldTotalSessions, v))
}

// TotalSessionsIn applies the In predicate on the "total_sessions" field.
func TotalSessionsIn(vs ...int) predicate.LearnerMetrics {
	return predicate.LearnerMetrics(sql.FieldIn(FieldTotalSessions, vs...))
}

// TotalSessionsNotIn applies the NotIn predicate on the "total_sessions" field.
func TotalSessionsNotIn(vs ...int) predicate.LearnerMetrics {
	return predicate.LearnerMetrics(sql.FieldNotIn(FieldTotalSessions, vs...))
}

// TotalSessionsGT applies the GT predicate on the "total_sessions" field.
func TotalSessionsGT(v int) predicate.LearnerMetrics {
	return predicate.LearnerMetrics(sql.FieldGT(FieldTotalSessions, v))
}

// TotalSessionsGTE applies the GTE predicate on the "total_sessions" field.
func TotalSessionsGTE(v int) predicate.LearnerMetrics {
	return predicate.LearnerMetrics(sql.FieldGTE(FieldTotalSessions, v))
}

// TotalSessionsLT applies the LT predicate on the "total_sessions" field.
func TotalSessionsLT(v int) predicate.LearnerMetrics {
	return predicate.LearnerMetrics(sql.FieldLT(FieldTotalSessions, v))
}

// TotalSessionsLTE applies the LTE predicate on the "total_sessions" field.
func TotalSessionsLTE(v int) predicate.LearnerMetrics {
	return predicate.LearnerMetrics(sql.FieldLTE(FieldTotalSessions, v))
}

// GapsIsNil applies the IsNil predicate on the "gaps" field.
func GapsIsNil() predicate.LearnerMetrics {
	return predicate.LearnerMetrics(sql.FieldIsNull(FieldGaps))
}

// GapsNotNil applies the NotNil predicate on the "gaps" field.
func GapsNotNil() predicate.LearnerMetrics {
	return predicate.LearnerMetrics(sql.FieldNotNull(FieldGaps))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.LearnerMetrics) predicate.LearnerMetrics {
	return predicate.LearnerMetrics(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.LearnerMetrics) predicate.LearnerMetrics {
	return predicate.LearnerMetrics(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.LearnerMetrics) predicate.LearnerMetrics {
	return predicate.LearnerMetrics(sql.NotPredicates(p))
}
