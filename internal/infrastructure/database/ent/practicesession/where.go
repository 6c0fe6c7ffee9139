// Code generated by ent, DO NOT EDIT.

package practicesession

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/eslsoft/drillnet/internal/infrastructure/database/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldLTE(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v int64) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldEQ(FieldUserID, v))
}

// TopicID applies equality check predicate on the "topic_id" field. It's identical to TopicIDEQ.
func TopicID(v int64) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldEQ(FieldTopicID, v))
}

// TargetCount applies equality check predicate on the "target_count" field. It's identical to TargetCountEQ.
func TargetCount(v int32) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldEQ(FieldTargetCount, v))
}

// IncludeReview applies equality check predicate on the "include_review" field. It's identical to IncludeReviewEQ.
func IncludeReview(v bool) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldEQ(FieldIncludeReview, v))
}

// DifficultyFilter applies equality check predicate on the "difficulty_filter" field. It's identical to DifficultyFilterEQ.
func DifficultyFilter(v int32) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldEQ(FieldDifficultyFilter, v))
}

// CompletedCount applies equality check predicate on the "completed_count" field. It's identical to CompletedCountEQ.
func CompletedCount(v int32) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldEQ(FieldCompletedCount, v))
}

// CorrectCount applies equality check predicate on the "correct_count" field. It's identical to CorrectCountEQ.
func CorrectCount(v int32) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldEQ(FieldCorrectCount, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldEQ(FieldStatus, v))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v time.Time) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldEQ(FieldStartedAt, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldEQ(FieldCompletedAt, v))
}

// TotalTimeSpentMs applies equality check predicate on the "total_time_spent_ms" field. It's identical to TotalTimeSpentMsEQ.
func TotalTimeSpentMs(v int64) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldEQ(FieldTotalTimeSpentMs, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldEQ(FieldUpdatedAt, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v int64) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v int64) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...int64) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...int64) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v int64) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v int64) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v int64) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v int64) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldLTE(FieldUserID, v))
}

// TopicIDEQ applies the EQ predicate on the "topic_id" field.
func TopicIDEQ(v int64) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldEQ(FieldTopicID, v))
}

// TopicIDNEQ applies the NEQ predicate on the "topic_id" field.
func TopicIDNEQ(v int64) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldNEQ(FieldTopicID, v))
}

// TopicIDIn applies the In predicate on the "topic_id" field.
func TopicIDIn(vs ...int64) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldIn(FieldTopicID, vs...))
}

// TopicIDNotIn applies the NotIn predicate on the "topic_id" field.
func TopicIDNotIn(vs ...int64) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldNotIn(FieldTopicID, vs...))
}

// TopicIDGT applies the GT predicate on the "topic_id" field.
func TopicIDGT(v int64) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldGT(FieldTopicID, v))
}

// TopicIDGTE applies the GTE predicate on the "topic_id" field.
func TopicIDGTE(v int64) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldGTE(FieldTopicID, v))
}

// TopicIDLT applies the LT predicate on the "topic_id" field.
func TopicIDLT(v int64) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldLT(FieldTopicID, v))
}

// TopicIDLTE applies the LTE predicate on the "topic_id" field.
func TopicIDLTE(v int64) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldLTE(FieldTopicID, v))
}

// TargetCountEQ applies the EQ predicate on the "target_count" field.
func TargetCountEQ(v int32) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldEQ(FieldTargetCount, v))
}

// TargetCountNEQ applies the NEQ predicate on the "target_count" field.
func TargetCountNEQ(v int32) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldNEQ(FieldTargetCount, v))
}

// TargetCountIn applies the In predicate on the "target_count" field.
func TargetCountIn(vs ...int32) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldIn(FieldTargetCount, vs...))
}

// TargetCountNotIn applies the NotIn predicate on the "target_count" field.
func TargetCountNotIn(vs ...int32) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldNotIn(FieldTargetCount, vs...))
}

// TargetCountGT applies the GT predicate on the "target_count" field.
func TargetCountGT(v int32) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldGT(FieldTargetCount, v))
}

// TargetCountGTE applies the GTE predicate on the "target_count" field.
func TargetCountGTE(v int32) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldGTE(FieldTargetCount, v))
}

// TargetCountLT applies the LT predicate on the "target_count" field.
func TargetCountLT(v int32) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldLT(FieldTargetCount, v))
}

// TargetCountLTE applies the LTE predicate on the "target_count" field.
func TargetCountLTE(v int32) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldLTE(FieldTargetCount, v))
}

// IncludeReviewEQ applies the EQ predicate on the "include_review" field.
func IncludeReviewEQ(v bool) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldEQ(FieldIncludeReview, v))
}

// IncludeReviewNEQ applies the NEQ predicate on the "include_review" field.
func IncludeReviewNEQ(v bool) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldNEQ(FieldIncludeReview, v))
}

// DifficultyFilterEQ applies the EQ predicate on the "difficulty_filter" field.
func DifficultyFilterEQ(v int32) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldEQ(FieldDifficultyFilter, v))
}

// DifficultyFilterNEQ applies the NEQ predicate on the "difficulty_filter" field.
func DifficultyFilterNEQ(v int32) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldNEQ(FieldDifficultyFilter, v))
}

// DifficultyFilterIn applies the In predicate on the "difficulty_filter" field.
func DifficultyFilterIn(vs ...int32) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldIn(FieldDifficultyFilter, vs...))
}

// DifficultyFilterNotIn applies the NotIn predicate on the "difficulty_filter" field.
func DifficultyFilterNotIn(vs ...int32) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldNotIn(FieldDifficultyFilter, vs...))
}

// DifficultyFilterGT applies the GT predicate on the "difficulty_filter" field.
func DifficultyFilterGT(v int32) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldGT(FieldDifficultyFilter, v))
}

// DifficultyFilterGTE applies the GTE predicate on the "difficulty_filter" field.
func DifficultyFilterGTE(v int32) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldGTE(FieldDifficultyFilter, v))
}

// DifficultyFilterLT applies the LT predicate on the "difficulty_filter" field.
func DifficultyFilterLT(v int32) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldLT(FieldDifficultyFilter, v))
}

// DifficultyFilterLTE applies the LTE predicate on the "difficulty_filter" field.
func DifficultyFilterLTE(v int32) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldLTE(FieldDifficultyFilter, v))
}

// DifficultyFilterIsNil applies the IsNil predicate on the "difficulty_filter" field.
func DifficultyFilterIsNil() predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldIsNull(FieldDifficultyFilter))
}

// DifficultyFilterNotNil applies the NotNil predicate on the "difficulty_filter" field.
func DifficultyFilterNotNil() predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldNotNull(FieldDifficultyFilter))
}

// CompletedCountEQ applies the EQ predicate on the "completed_count" field.
func CompletedCountEQ(v int32) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldEQ(FieldCompletedCount, v))
}

// CompletedCountNEQ applies the NEQ predicate on the "completed_count" field.
func CompletedCountNEQ(v int32) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldNEQ(FieldCompletedCount, v))
}

// CompletedCountIn applies the In predicate on the "completed_count" field.
func CompletedCountIn(vs ...int32) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldIn(FieldCompletedCount, vs...))
}

// CompletedCountNotIn applies the NotIn predicate on the "completed_count" field.
func CompletedCountNotIn(vs ...int32) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldNotIn(FieldCompletedCount, vs...))
}

// CompletedCountGT applies the GT predicate on the "completed_count" field.
func CompletedCountGT(v int32) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldGT(FieldCompletedCount, v))
}

// CompletedCountGTE applies the GTE predicate on the "completed_count" field.
func CompletedCountGTE(v int32) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldGTE(FieldCompletedCount, v))
}

// CompletedCountLT applies the LT predicate on the "completed_count" field.
func CompletedCountLT(v int32) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldLT(FieldCompletedCount, v))
}

// CompletedCountLTE applies the LTE predicate on the "completed_count" field.
func CompletedCountLTE(v int32) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldLTE(FieldCompletedCount, v))
}

// CorrectCountEQ applies the EQ predicate on the "correct_count" field.
func CorrectCountEQ(v int32) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldEQ(FieldCorrectCount, v))
}

// CorrectCountNEQ applies the NEQ predicate on the "correct_count" field.
func CorrectCountNEQ(v int32) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldNEQ(FieldCorrectCount, v))
}

// CorrectCountIn applies the In predicate on the "correct_count" field.
func CorrectCountIn(vs ...int32) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldIn(FieldCorrectCount, vs...))
}

// CorrectCountNotIn applies the NotIn predicate on the "correct_count" field.
func CorrectCountNotIn(vs ...int32) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldNotIn(FieldCorrectCount, vs...))
}

// CorrectCountGT applies the GT predicate on the "correct_count" field.
func CorrectCountGT(v int32) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldGT(FieldCorrectCount, v))
}

// CorrectCountGTE applies the GTE predicate on the "correct_count" field.
func CorrectCountGTE(v int32) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldGTE(FieldCorrectCount, v))
}

// CorrectCountLT applies the LT predicate on the "correct_count" field.
func CorrectCountLT(v int32) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldLT(FieldCorrectCount, v))
}

// CorrectCountLTE applies the LTE predicate on the "correct_count" field.
func CorrectCountLTE(v int32) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldLTE(FieldCorrectCount, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldContainsFold(FieldStatus, v))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v time.Time) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v time.Time) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...time.Time) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...time.Time) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v time.Time) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v time.Time) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v time.Time) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v time.Time) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldLTE(FieldStartedAt, v))
}

// StartedAtIsNil applies the IsNil predicate on the "started_at" field.
func StartedAtIsNil() predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldIsNull(FieldStartedAt))
}

// StartedAtNotNil applies the NotNil predicate on the "started_at" field.
func StartedAtNotNil() predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldNotNull(FieldStartedAt))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldLTE(FieldCompletedAt, v))
}

// CompletedAtIsNil applies the IsNil predicate on the "completed_at" field.
func CompletedAtIsNil() predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldIsNull(FieldCompletedAt))
}

// CompletedAtNotNil applies the NotNil predicate on the "completed_at" field.
func CompletedAtNotNil() predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldNotNull(FieldCompletedAt))
}

// TotalTimeSpentMsEQ applies the EQ predicate on the "total_time_spent_ms" field.
func TotalTimeSpentMsEQ(v int64) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldEQ(FieldTotalTimeSpentMs, v))
}

// TotalTimeSpentMsNEQ applies the NEQ predicate on the "total_time_spent_ms" field.
func TotalTimeSpentMsNEQ(v int64) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldNEQ(FieldTotalTimeSpentMs, v))
}

// TotalTimeSpentMsIn applies the In predicate on the "total_time_spent_ms" field.
func TotalTimeSpentMsIn(vs ...int64) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldIn(FieldTotalTimeSpentMs, vs...))
}

// TotalTimeSpentMsNotIn applies the NotIn predicate on the "total_time_spent_ms" field.
func TotalTimeSpentMsNotIn(vs ...int64) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldNotIn(FieldTotalTimeSpentMs, vs...))
}

// TotalTimeSpentMsGT applies the GT predicate on the "total_time_spent_ms" field.
func TotalTimeSpentMsGT(v int64) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldGT(FieldTotalTimeSpentMs, v))
}

// TotalTimeSpentMsGTE applies the GTE predicate on the "total_time_spent_ms" field.
func TotalTimeSpentMsGTE(v int64) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldGTE(FieldTotalTimeSpentMs, v))
}

// TotalTimeSpentMsLT applies the LT predicate on the "total_time_spent_ms" field.
func TotalTimeSpentMsLT(v int64) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldLT(FieldTotalTimeSpentMs, v))
}

// TotalTimeSpentMsLTE applies the LTE predicate on the "total_time_spent_ms" field.
func TotalTimeSpentMsLTE(v int64) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldLTE(FieldTotalTimeSpentMs, v))
}

// ResultsIsNil applies the IsNil predicate on the "results" field.
func ResultsIsNil() predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldIsNull(FieldResults))
}

// ResultsNotNil applies the NotNil predicate on the "results" field.
func ResultsNotNil() predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldNotNull(FieldResults))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.PracticeSession {
	return predicate.PracticeSession(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.PracticeSession) predicate.PracticeSession {
	return predicate.PracticeSession(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.PracticeSession) predicate.PracticeSession {
	return predicate.PracticeSession(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.PracticeSession) predicate.PracticeSession {
	return predicate.PracticeSession(sql.NotPredicates(p))
}
