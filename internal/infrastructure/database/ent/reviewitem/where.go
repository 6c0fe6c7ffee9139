// Code generated by ent, DO NOT EDIT.

package reviewitem

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/eslsoft/drillnet/internal/infrastructure/database/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldLTE(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v int64) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldEQ(FieldUserID, v))
}

// TaskID applies equality check predicate on the "task_id" field. It's identical to TaskIDEQ.
func TaskID(v int64) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldEQ(FieldTaskID, v))
}

// IntervalDays applies equality check predicate on the "interval_days" field. It's identical to IntervalDaysEQ.
func IntervalDays(v int32) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldEQ(FieldIntervalDays, v))
}

// Repetition applies equality check predicate on the "repetition" field. It's identical to RepetitionEQ.
func Repetition(v int32) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldEQ(FieldRepetition, v))
}

// Efactor applies equality check predicate on the "efactor" field. It's identical to EfactorEQ.
func Efactor(v float64) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldEQ(FieldEfactor, v))
}

// NextReview applies equality check predicate on the "next_review" field. It's identical to NextReviewEQ.
func NextReview(v time.Time) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldEQ(FieldNextReview, v))
}

// LastReviewed applies equality check predicate on the "last_reviewed" field. It's identical to LastReviewedEQ.
func LastReviewed(v time.Time) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldEQ(FieldLastReviewed, v))
}

// TotalReviews applies equality check predicate on the "total_reviews" field. It's identical to TotalReviewsEQ.
func TotalReviews(v int32) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldEQ(FieldTotalReviews, v))
}

// ConsecutiveCorrect applies equality check predicate on the "consecutive_correct" field. It's identical to ConsecutiveCorrectEQ.
func ConsecutiveCorrect(v int32) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldEQ(FieldConsecutiveCorrect, v))
}

// AverageAccuracy applies equality check predicate on the "average_accuracy" field. It's identical to AverageAccuracyEQ.
func AverageAccuracy(v float64) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldEQ(FieldAverageAccuracy, v))
}

// AverageTimeMs applies equality check predicate on the "average_time_ms" field. It's identical to AverageTimeMsEQ.
func AverageTimeMs(v float64) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldEQ(FieldAverageTimeMs, v))
}

// DifficultyRating applies equality check predicate on the "difficulty_rating" field. It's identical to DifficultyRatingEQ.
func DifficultyRating(v int32) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldEQ(FieldDifficultyRating, v))
}

// LastGrade applies equality check predicate on the "last_grade" field. It's identical to LastGradeEQ.
func LastGrade(v int32) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldEQ(FieldLastGrade, v))
}

// Introduced applies equality check predicate on the "introduced" field. It's identical to IntroducedEQ.
func Introduced(v time.Time) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldEQ(FieldIntroduced, v))
}

// Graduated applies equality check predicate on the "graduated" field. It's identical to GraduatedEQ.
func Graduated(v bool) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldEQ(FieldGraduated, v))
}

// LapseCount applies equality check predicate on the "lapse_count" field. It's identical to LapseCountEQ.
func LapseCount(v int32) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldEQ(FieldLapseCount, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldEQ(FieldUpdatedAt, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v int64) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v int64) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...int64) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...int64) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v int64) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v int64) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v int64) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v int64) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldLTE(FieldUserID, v))
}

// TaskIDEQ applies the EQ predicate on the "task_id" field.
func TaskIDEQ(v int64) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldEQ(FieldTaskID, v))
}

// TaskIDNEQ applies the NEQ predicate on the "task_id" field.
func TaskIDNEQ(v int64) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldNEQ(FieldTaskID, v))
}

// TaskIDIn applies the In predicate on the "task_id" field.
func TaskIDIn(vs ...int64) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldIn(FieldTaskID, vs...))
}

// TaskIDNotIn applies the NotIn predicate on the "task_id" field.
func TaskIDNotIn(vs ...int64) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldNotIn(FieldTaskID, vs...))
}

// TaskIDGT applies the GT predicate on the "task_id" field.
func TaskIDGT(v int64) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldGT(FieldTaskID, v))
}

// TaskIDGTE applies the GTE predicate on the "task_id" field.
func TaskIDGTE(v int64) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldGTE(FieldTaskID, v))
}

// TaskIDLT applies the LT predicate on the "task_id" field.
func TaskIDLT(v int64) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldLT(FieldTaskID, v))
}

// TaskIDLTE applies the LTE predicate on the "task_id" field.
func TaskIDLTE(v int64) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldLTE(FieldTaskID, v))
}

// IntervalDaysEQ applies the EQ predicate on the "interval_days" field.
func IntervalDaysEQ(v int32) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldEQ(FieldIntervalDays, v))
}

// IntervalDaysNEQ applies the NEQ predicate on the "interval_days" field.
func IntervalDaysNEQ(v int32) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldNEQ(FieldIntervalDays, v))
}

// IntervalDaysIn applies the In predicate on the "interval_days" field.
func IntervalDaysIn(vs ...int32) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldIn(FieldIntervalDays, vs...))
}

// IntervalDaysNotIn applies the NotIn predicate on the "interval_days" field.
func IntervalDaysNotIn(vs ...int32) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldNotIn(FieldIntervalDays, vs...))
}

// IntervalDaysGT applies the GT predicate on the "interval_days" field.
func IntervalDaysGT(v int32) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldGT(FieldIntervalDays, v))
}

// IntervalDaysGTE applies the GTE predicate on the "interval_days" field.
func IntervalDaysGTE(v int32) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldGTE(FieldIntervalDays, v))
}

// IntervalDaysLT applies the LT predicate on the "interval_days" field.
func IntervalDaysLT(v int32) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldLT(FieldIntervalDays, v))
}

// IntervalDaysLTE applies the LTE predicate on the "interval_days" field.
func IntervalDaysLTE(v int32) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldLTE(FieldIntervalDays, v))
}

// RepetitionEQ applies the EQ predicate on the "repetition" field.
func RepetitionEQ(v int32) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldEQ(FieldRepetition, v))
}

// RepetitionNEQ applies the NEQ predicate on the "repetition" field.
func RepetitionNEQ(v int32) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldNEQ(FieldRepetition, v))
}

// RepetitionIn applies the In predicate on the "repetition" field.
func RepetitionIn(vs ...int32) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldIn(FieldRepetition, vs...))
}

// RepetitionNotIn applies the NotIn predicate on the "repetition" field.
func RepetitionNotIn(vs ...int32) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldNotIn(FieldRepetition, vs...))
}

// RepetitionGT applies the GT predicate on the "repetition" field.
func RepetitionGT(v int32) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldGT(FieldRepetition, v))
}

// RepetitionGTE applies the GTE predicate on the "repetition" field.
func RepetitionGTE(v int32) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldGTE(FieldRepetition, v))
}

// RepetitionLT applies the LT predicate on the "repetition" field.
func RepetitionLT(v int32) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldLT(FieldRepetition, v))
}

// RepetitionLTE applies the LTE predicate on the "repetition" field.
func RepetitionLTE(v int32) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldLTE(FieldRepetition, v))
}

// EfactorEQ applies the EQ predicate on the "efactor" field.
func EfactorEQ(v float64) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldEQ(FieldEfactor, v))
}

// EfactorNEQ applies the NEQ predicate on the "efactor" field.
func EfactorNEQ(v float64) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldNEQ(FieldEfactor, v))
}

// EfactorIn applies the In predicate on the "efactor" field.
func EfactorIn(vs ...float64) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldIn(FieldEfactor, vs...))
}

// EfactorNotIn applies the NotIn predicate on the "efactor" field.
func EfactorNotIn(vs ...float64) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldNotIn(FieldEfactor, vs...))
}

// EfactorGT applies the GT predicate on the "efactor" field.
func EfactorGT(v float64) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldGT(FieldEfactor, v))
}

// EfactorGTE applies the GTE predicate on the "efactor" field.
func EfactorGTE(v float64) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldGTE(FieldEfactor, v))
}

// EfactorLT applies the LT predicate on the "efactor" field.
func EfactorLT(v float64) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldLT(FieldEfactor, v))
}

// EfactorLTE applies the LTE predicate on the "efactor" field.
func EfactorLTE(v float64) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldLTE(FieldEfactor, v))
}

// NextReviewEQ applies the EQ predicate on the "next_review" field.
func NextReviewEQ(v time.Time) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldEQ(FieldNextReview, v))
}

// NextReviewNEQ applies the NEQ predicate on the "next_review" field.
func NextReviewNEQ(v time.Time) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldNEQ(FieldNextReview, v))
}

// NextReviewIn applies the In predicate on the "next_review" field.
func NextReviewIn(vs ...time.Time) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldIn(FieldNextReview, vs...))
}

// NextReviewNotIn applies the NotIn predicate on the "next_review" field.
func NextReviewNotIn(vs ...time.Time) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldNotIn(FieldNextReview, vs...))
}

// NextReviewGT applies the GT predicate on the "next_review" field.
func NextReviewGT(v time.Time) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldGT(FieldNextReview, v))
}

// NextReviewGTE applies the GTE predicate on the "next_review" field.
func NextReviewGTE(v time.Time) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldGTE(FieldNextReview, v))
}

// NextReviewLT applies the LT predicate on the "next_review" field.
func NextReviewLT(v time.Time) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldLT(FieldNextReview, v))
}

// NextReviewLTE applies the LTE predicate on the "next_review" field.
func NextReviewLTE(v time.Time) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldLTE(FieldNextReview, v))
}

// LastReviewedEQ applies the EQ predicate on the "last_reviewed" field.
func LastReviewedEQ(v time.Time) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldEQ(FieldLastReviewed, v))
}

// LastReviewedNEQ applies the NEQ predicate on the "last_reviewed" field.
func LastReviewedNEQ(v time.Time) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldNEQ(FieldLastReviewed, v))
}

// LastReviewedIn applies the In predicate on the "last_reviewed" field.
func LastReviewedIn(vs ...time.Time) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldIn(FieldLastReviewed, vs...))
}

// LastReviewedNotIn applies the NotIn predicate on the "last_reviewed" field.
func LastReviewedNotIn(vs ...time.Time) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldNotIn(FieldLastReviewed, vs...))
}

// LastReviewedGT applies the GT predicate on the "last_reviewed" field.
func LastReviewedGT(v time.Time) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldGT(FieldLastReviewed, v))
}

// LastReviewedGTE applies the GTE predicate on the "last_reviewed" field.
func LastReviewedGTE(v time.Time) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldGTE(FieldLastReviewed, v))
}

// LastReviewedLT applies the LT predicate on the "last_reviewed" field.
func LastReviewedLT(v time.Time) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldLT(FieldLastReviewed, v))
}

// LastReviewedLTE applies the LTE predicate on the "last_reviewed" field.
func LastReviewedLTE(v time.Time) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldLTE(FieldLastReviewed, v))
}

// LastReviewedIsNil applies the IsNil predicate on the "last_reviewed" field.
func LastReviewedIsNil() predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldIsNull(FieldLastReviewed))
}

// LastReviewedNotNil applies the NotNil predicate on the "last_reviewed" field.
func LastReviewedNotNil() predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldNotNull(FieldLastReviewed))
}

// TotalReviewsEQ applies the EQ predicate on the "total_reviews" field.
func TotalReviewsEQ(v int32) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldEQ(FieldTotalReviews, v))
}

// TotalReviewsNEQ applies the NEQ predicate on the "total_reviews" field.
func TotalReviewsNEQ(v int32) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldNEQ(FieldTotalReviews, v))
}

// TotalReviewsIn applies the In predicate on the "total_reviews" field.
func TotalReviewsIn(vs ...int32) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldIn(FieldTotalReviews, vs...))
}

// TotalReviewsNotIn applies the NotIn predicate on the "total_reviews" field.
func TotalReviewsNotIn(vs ...int32) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldNotIn(FieldTotalReviews, vs...))
}

// TotalReviewsGT applies the GT predicate on the "total_reviews" field.
func TotalReviewsGT(v int32) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldGT(FieldTotalReviews, v))
}

// TotalReviewsGTE applies the GTE predicate on the "total_reviews" field.
func TotalReviewsGTE(v int32) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldGTE(FieldTotalReviews, v))
}

// TotalReviewsLT applies the LT predicate on the "total_reviews" field.
func TotalReviewsLT(v int32) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldLT(FieldTotalReviews, v))
}

// TotalReviewsLTE applies the LTE predicate on the "total_reviews" field.
func TotalReviewsLTE(v int32) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldLTE(FieldTotalReviews, v))
}

// ConsecutiveCorrectEQ applies the EQ predicate on the "consecutive_correct" field.
func ConsecutiveCorrectEQ(v int32) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldEQ(FieldConsecutiveCorrect, v))
}

// ConsecutiveCorrectNEQ applies the NEQ predicate on the "consecutive_correct" field.
func ConsecutiveCorrectNEQ(v int32) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldNEQ(FieldConsecutiveCorrect, v))
}

// ConsecutiveCorrectIn applies the In predicate on the "consecutive_correct" field.
func ConsecutiveCorrectIn(vs ...int32) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldIn(FieldConsecutiveCorrect, vs...))
}

// ConsecutiveCorrectNotIn applies the NotIn predicate on the "consecutive_correct" field.
func ConsecutiveCorrectNotIn(vs ...int32) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldNotIn(FieldConsecutiveCorrect, vs...))
}

// ConsecutiveCorrectGT applies the GT predicate on the "consecutive_correct" field.
func ConsecutiveCorrectGT(v int32) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldGT(FieldConsecutiveCorrect, v))
}

// ConsecutiveCorrectGTE applies the GTE predicate on the "consecutive_correct" field.
func ConsecutiveCorrectGTE(v int32) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldGTE(FieldConsecutiveCorrect, v))
}

// ConsecutiveCorrectLT applies the LT predicate on the "consecutive_correct" field.
func ConsecutiveCorrectLT(v int32) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldLT(FieldConsecutiveCorrect, v))
}

// ConsecutiveCorrectLTE applies the LTE predicate on the "consecutive_correct" field.
func ConsecutiveCorrectLTE(v int32) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldLTE(FieldConsecutiveCorrect, v))
}

// AverageAccuracyEQ applies the EQ predicate on the "average_accuracy" field.
func AverageAccuracyEQ(v float64) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldEQ(FieldAverageAccuracy, v))
}

// AverageAccuracyNEQ applies the NEQ predicate on the "average_accuracy" field.
func AverageAccuracyNEQ(v float64) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldNEQ(FieldAverageAccuracy, v))
}

// AverageAccuracyIn applies the In predicate on the "average_accuracy" field.
func AverageAccuracyIn(vs ...float64) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldIn(FieldAverageAccuracy, vs...))
}

// AverageAccuracyNotIn applies the NotIn predicate on the "average_accuracy" field.
func AverageAccuracyNotIn(vs ...float64) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldNotIn(FieldAverageAccuracy, vs...))
}

// AverageAccuracyGT applies the GT predicate on the "average_accuracy" field.
func AverageAccuracyGT(v float64) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldGT(FieldAverageAccuracy, v))
}

// AverageAccuracyGTE applies the GTE predicate on the "average_accuracy" field.
func AverageAccuracyGTE(v float64) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldGTE(FieldAverageAccuracy, v))
}

// AverageAccuracyLT applies the LT predicate on the "average_accuracy" field.
func AverageAccuracyLT(v float64) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldLT(FieldAverageAccuracy, v))
}

// AverageAccuracyLTE applies the LTE predicate on the "average_accuracy" field.
func AverageAccuracyLTE(v float64) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldLTE(FieldAverageAccuracy, v))
}

// AverageTimeMsEQ applies the EQ predicate on the "average_time_ms" field.
func AverageTimeMsEQ(v float64) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldEQ(FieldAverageTimeMs, v))
}

// AverageTimeMsNEQ applies the NEQ predicate on the "average_time_ms" field.
func AverageTimeMsNEQ(v float64) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldNEQ(FieldAverageTimeMs, v))
}

// AverageTimeMsIn applies the In predicate on the "average_time_ms" field.
func AverageTimeMsIn(vs ...float64) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldIn(FieldAverageTimeMs, vs...))
}

// AverageTimeMsNotIn applies the NotIn predicate on the "average_time_ms" field.
func AverageTimeMsNotIn(vs ...float64) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldNotIn(FieldAverageTimeMs, vs...))
}

// AverageTimeMsGT applies the GT predicate on the "average_time_ms" field.
func AverageTimeMsGT(v float64) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldGT(FieldAverageTimeMs, v))
}

// AverageTimeMsGTE applies the GTE predicate on the "average_time_ms" field.
func AverageTimeMsGTE(v float64) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldGTE(FieldAverageTimeMs, v))
}

// AverageTimeMsLT applies the LT predicate on the "average_time_ms" field.
func AverageTimeMsLT(v float64) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldLT(FieldAverageTimeMs, v))
}

// AverageTimeMsLTE applies the LTE predicate on the "average_time_ms" field.
func AverageTimeMsLTE(v float64) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldLTE(FieldAverageTimeMs, v))
}

// DifficultyRatingEQ applies the EQ predicate on the "difficulty_rating" field.
func DifficultyRatingEQ(v int32) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldEQ(FieldDifficultyRating, v))
}

// DifficultyRatingNEQ applies the NEQ predicate on the "difficulty_rating" field.
func DifficultyRatingNEQ(v int32) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldNEQ(FieldDifficultyRating, v))
}

// DifficultyRatingIn applies the In predicate on the "difficulty_rating" field.
func DifficultyRatingIn(vs ...int32) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldIn(FieldDifficultyRating, vs...))
}

// DifficultyRatingNotIn applies the NotIn predicate on the "difficulty_rating" field.
func DifficultyRatingNotIn(vs ...int32) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldNotIn(FieldDifficultyRating, vs...))
}

// DifficultyRatingGT applies the GT predicate on the "difficulty_rating" field.
func DifficultyRatingGT(v int32) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldGT(FieldDifficultyRating, v))
}

// DifficultyRatingGTE applies the GTE predicate on the "difficulty_rating" field.
func DifficultyRatingGTE(v int32) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldGTE(FieldDifficultyRating, v))
}

// DifficultyRatingLT applies the LT predicate on the "difficulty_rating" field.
func DifficultyRatingLT(v int32) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldLT(FieldDifficultyRating, v))
}

// DifficultyRatingLTE applies the LTE predicate on the "difficulty_rating" field.
func DifficultyRatingLTE(v int32) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldLTE(FieldDifficultyRating, v))
}

// LastGradeEQ applies the EQ predicate on the "last_grade" field.
func LastGradeEQ(v int32) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldEQ(FieldLastGrade, v))
}

// LastGradeNEQ applies the NEQ predicate on the "last_grade" field.
func LastGradeNEQ(v int32) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldNEQ(FieldLastGrade, v))
}

// LastGradeIn applies the In predicate on the "last_grade" field.
func LastGradeIn(vs ...int32) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldIn(FieldLastGrade, vs...))
}

// LastGradeNotIn applies the NotIn predicate on the "last_grade" field.
func LastGradeNotIn(vs ...int32) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldNotIn(FieldLastGrade, vs...))
}

// LastGradeGT applies the GT predicate on the "last_grade" field.
func LastGradeGT(v int32) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldGT(FieldLastGrade, v))
}

// LastGradeGTE applies the GTE predicate on the "last_grade" field.
func LastGradeGTE(v int32) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldGTE(FieldLastGrade, v))
}

// LastGradeLT applies the LT predicate on the "last_grade" field.
func LastGradeLT(v int32) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldLT(FieldLastGrade, v))
}

// LastGradeLTE applies the LTE predicate on the "last_grade" field.
func LastGradeLTE(v int32) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldLTE(FieldLastGrade, v))
}

// IntroducedEQ applies the EQ predicate on the "introduced" field.
func IntroducedEQ(v time.Time) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldEQ(FieldIntroduced, v))
}

// IntroducedNEQ applies the NEQ predicate on the "introduced" field.
func IntroducedNEQ(v time.Time) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldNEQ(FieldIntroduced, v))
}

// IntroducedIn applies the In predicate on the "introduced" field.
func IntroducedIn(vs ...time.Time) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldIn(FieldIntroduced, vs...))
}

// IntroducedNotIn applies the NotIn predicate on the "introduced" field.
func IntroducedNotIn(vs ...time.Time) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldNotIn(FieldIntroduced, vs...))
}

// IntroducedGT applies the GT predicate on the "introduced" field.
func IntroducedGT(v time.Time) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldGT(FieldIntroduced, v))
}

// IntroducedGTE applies the GTE predicate on the "introduced" field.
func IntroducedGTE(v time.Time) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldGTE(FieldIntroduced, v))
}

// IntroducedLT applies the LT predicate on the "introduced" field.
func IntroducedLT(v time.Time) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldLT(FieldIntroduced, v))
}

// IntroducedLTE applies the LTE predicate on the "introduced" field.
func IntroducedLTE(v time.Time) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldLTE(FieldIntroduced, v))
}

// GraduatedEQ applies the EQ predicate on the "graduated" field.
func GraduatedEQ(v bool) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldEQ(FieldGraduated, v))
}

// GraduatedNEQ applies the NEQ predicate on the "graduated" field.
func GraduatedNEQ(v bool) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldNEQ(FieldGraduated, v))
}

// LapseCountEQ applies the EQ predicate on the "lapse_count" field.
func LapseCountEQ(v int32) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldEQ(FieldLapseCount, v))
}

// LapseCountNEQ applies the NEQ predicate on the "lapse_count" field.
func LapseCountNEQ(v int32) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldNEQ(FieldLapseCount, v))
}

// LapseCountIn applies the In predicate on the "lapse_count" field.
func LapseCountIn(vs ...int32) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldIn(FieldLapseCount, vs...))
}

// LapseCountNotIn applies the NotIn predicate on the "lapse_count" field.
func LapseCountNotIn(vs ...int32) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldNotIn(FieldLapseCount, vs...))
}

// LapseCountGT applies the GT predicate on the "lapse_count" field.
func LapseCountGT(v int32) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldGT(FieldLapseCount, v))
}

// LapseCountGTE applies the GTE predicate on the "lapse_count" field.
func LapseCountGTE(v int32) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldGTE(FieldLapseCount, v))
}

// LapseCountLT applies the LT predicate on the "lapse_count" field.
func LapseCountLT(v int32) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldLT(FieldLapseCount, v))
}

// LapseCountLTE applies the LTE predicate on the "lapse_count" field.
func LapseCountLTE(v int32) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldLTE(FieldLapseCount, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.ReviewItem {
	return predicate.ReviewItem(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ReviewItem) predicate.ReviewItem {
	return predicate.ReviewItem(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ReviewItem) predicate.ReviewItem {
	return predicate.ReviewItem(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ReviewItem) predicate.ReviewItem {
	return predicate.ReviewItem(sql.NotPredicates(p))
}
