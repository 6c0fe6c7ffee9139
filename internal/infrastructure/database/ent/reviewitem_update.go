// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/eslsoft/drillnet/internal/infrastructure/database/ent/predicate"
	"github.com/eslsoft/drillnet/internal/infrastructure/database/ent/reviewitem"
)

// ReviewItemUpdate is the builder for updating ReviewItem entities.
type ReviewItemUpdate struct {
	config
	hooks    []Hook
	mutation *ReviewItemMutation
}

// Where appends a list predicates to the ReviewItemUpdate builder.
func (riu *ReviewItemUpdate) Where(ps ...predicate.ReviewItem) *ReviewItemUpdate {
	riu.mutation.Where(ps...)
	return riu
}

// SetUserID sets the "user_id" field.
func (riu *ReviewItemUpdate) SetUserID(i int64) *ReviewItemUpdate {
	riu.mutation.ResetUserID()
	riu.mutation.SetUserID(i)
	return riu
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (riu *ReviewItemUpdate) SetNillableUserID(i *int64) *ReviewItemUpdate {
	if i != nil {
		riu.SetUserID(*i)
	}
	return riu
}

// AddUserID adds i to the "user_id" field.
func (riu *ReviewItemUpdate) AddUserID(i int64) *ReviewItemUpdate {
	riu.mutation.AddUserID(i)
	return riu
}

// SetTaskID sets the "task_id" field.
func (riu *ReviewItemUpdate) SetTaskID(i int64) *ReviewItemUpdate {
	riu.mutation.ResetTaskID()
	riu.mutation.SetTaskID(i)
	return riu
}

// SetNillableTaskID sets the "task_id" field if the given value is not nil.
func (riu *ReviewItemUpdate) SetNillableTaskID(i *int64) *ReviewItemUpdate {
	if i != nil {
		riu.SetTaskID(*i)
	}
	return riu
}

// AddTaskID adds i to the "task_id" field.
func (riu *ReviewItemUpdate) AddTaskID(i int64) *ReviewItemUpdate {
	riu.mutation.AddTaskID(i)
	return riu
}

// SetIntervalDays sets the "interval_days" field.
func (riu *ReviewItemUpdate) SetIntervalDays(i int32) *ReviewItemUpdate {
	riu.mutation.ResetIntervalDays()
	riu.mutation.SetIntervalDays(i)
	return riu
}

// SetNillableIntervalDays sets the "interval_days" field if the given value is not nil.
func (riu *ReviewItemUpdate) SetNillableIntervalDays(i *int32) *ReviewItemUpdate {
	if i != nil {
		riu.SetIntervalDays(*i)
	}
	return riu
}

// AddIntervalDays adds i to the "interval_days" field.
func (riu *ReviewItemUpdate) AddIntervalDays(i int32) *ReviewItemUpdate {
	riu.mutation.AddIntervalDays(i)
	return riu
}

// SetRepetition sets the "repetition" field.
func (riu *ReviewItemUpdate) SetRepetition(i int32) *ReviewItemUpdate {
	riu.mutation.ResetRepetition()
	riu.mutation.SetRepetition(i)
	return riu
}

// SetNillableRepetition sets the "repetition" field if the given value is not nil.
func (riu *ReviewItemUpdate) SetNillableRepetition(i *int32) *ReviewItemUpdate {
	if i != nil {
		riu.SetRepetition(*i)
	}
	return riu
}

// AddRepetition adds i to the "repetition" field.
func (riu *ReviewItemUpdate) AddRepetition(i int32) *ReviewItemUpdate {
	riu.mutation.AddRepetition(i)
	return riu
}

// SetEfactor sets the "efactor" field.
func (riu *ReviewItemUpdate) SetEfactor(f float64) *ReviewItemUpdate {
	riu.mutation.ResetEfactor()
	riu.mutation.SetEfactor(f)
	return riu
}

// SetNillableEfactor sets the "efactor" field if the given value is not nil.
func (riu *ReviewItemUpdate) SetNillableEfactor(f *float64) *ReviewItemUpdate {
	if f != nil {
		riu.SetEfactor(*f)
	}
	return riu
}

// AddEfactor adds f to the "efactor" field.
func (riu *ReviewItemUpdate) AddEfactor(f float64) *ReviewItemUpdate {
	riu.mutation.AddEfactor(f)
	return riu
}

// SetNextReview sets the "next_review" field.
func (riu *ReviewItemUpdate) SetNextReview(t time.Time) *ReviewItemUpdate {
	riu.mutation.SetNextReview(t)
	return riu
}

// SetNillableNextReview sets the "next_review" field if the given value is not nil.
func (riu *ReviewItemUpdate) SetNillableNextReview(t *time.Time) *ReviewItemUpdate {
	if t != nil {
		riu.SetNextReview(*t)
	}
	return riu
}

// SetLastReviewed sets the "last_reviewed" field.
func (riu *ReviewItemUpdate) SetLastReviewed(t time.Time) *ReviewItemUpdate {
	riu.mutation.SetLastReviewed(t)
	return riu
}

// SetNillableLastReviewed sets the "last_reviewed" field if the given value is not nil.
func (riu *ReviewItemUpdate) SetNillableLastReviewed(t *time.Time) *ReviewItemUpdate {
	if t != nil {
		riu.SetLastReviewed(*t)
	}
	return riu
}

// ClearLastReviewed clears the value of the "last_reviewed" field.
func (riu *ReviewItemUpdate) ClearLastReviewed() *ReviewItemUpdate {
	riu.mutation.ClearLastReviewed()
	return riu
}

// SetTotalReviews sets the "total_reviews" field.
func (riu *ReviewItemUpdate) SetTotalReviews(i int32) *ReviewItemUpdate {
	riu.mutation.ResetTotalReviews()
	riu.mutation.SetTotalReviews(i)
	return riu
}

// SetNillableTotalReviews sets the "total_reviews" field if the given value is not nil.
func (riu *ReviewItemUpdate) SetNillableTotalReviews(i *int32) *ReviewItemUpdate {
	if i != nil {
		riu.SetTotalReviews(*i)
	}
	return riu
}

// AddTotalReviews adds i to the "total_reviews" field.
func (riu *ReviewItemUpdate) AddTotalReviews(i int32) *ReviewItemUpdate {
	riu.mutation.AddTotalReviews(i)
	return riu
}

// SetConsecutiveCorrect sets the "consecutive_correct" field.
func (riu *ReviewItemUpdate) SetConsecutiveCorrect(i int32) *ReviewItemUpdate {
	riu.mutation.ResetConsecutiveCorrect()
	riu.mutation.SetConsecutiveCorrect(i)
	return riu
}

// SetNillableConsecutiveCorrect sets the "consecutive_correct" field if the given value is not nil.
func (riu *ReviewItemUpdate) SetNillableConsecutiveCorrect(i *int32) *ReviewItemUpdate {
	if i != nil {
		riu.SetConsecutiveCorrect(*i)
	}
	return riu
}

// AddConsecutiveCorrect adds i to the "consecutive_correct" field.
func (riu *ReviewItemUpdate) AddConsecutiveCorrect(i int32) *ReviewItemUpdate {
	riu.mutation.AddConsecutiveCorrect(i)
	return riu
}

// SetAverageAccuracy sets the "average_accuracy" field.
func (riu *ReviewItemUpdate) SetAverageAccuracy(f float64) *ReviewItemUpdate {
	riu.mutation.ResetAverageAccuracy()
	riu.mutation.SetAverageAccuracy(f)
	return riu
}

// SetNillableAverageAccuracy sets the "average_accuracy" field if the given value is not nil.
func (riu *ReviewItemUpdate) SetNillableAverageAccuracy(f *float64) *ReviewItemUpdate {
	if f != nil {
		riu.SetAverageAccuracy(*f)
	}
	return riu
}

// AddAverageAccuracy adds f to the "average_accuracy" field.
func (riu *ReviewItemUpdate) AddAverageAccuracy(f float64) *ReviewItemUpdate {
	riu.mutation.AddAverageAccuracy(f)
	return riu
}

// SetAverageTimeMs sets the "average_time_ms" field.
func (riu *ReviewItemUpdate) SetAverageTimeMs(f float64) *ReviewItemUpdate {
	riu.mutation.ResetAverageTimeMs()
	riu.mutation.SetAverageTimeMs(f)
	return riu
}

// SetNillableAverageTimeMs sets the "average_time_ms" field if the given value is not nil.
func (riu *ReviewItemUpdate) SetNillableAverageTimeMs(f *float64) *ReviewItemUpdate {
	if f != nil {
		riu.SetAverageTimeMs(*f)
	}
	return riu
}

// AddAverageTimeMs adds f to the "average_time_ms" field.
func (riu *ReviewItemUpdate) AddAverageTimeMs(f float64) *ReviewItemUpdate {
	riu.mutation.AddAverageTimeMs(f)
	return riu
}

// SetDifficultyRating sets the "difficulty_rating" field.
func (riu *ReviewItemUpdate) SetDifficultyRating(i int32) *ReviewItemUpdate {
	riu.mutation.ResetDifficultyRating()
	riu.mutation.SetDifficultyRating(i)
	return riu
}

// SetNillableDifficultyRating sets the "difficulty_rating" field if the given value is not nil.
func (riu *ReviewItemUpdate) SetNillableDifficultyRating(i *int32) *ReviewItemUpdate {
	if i != nil {
		riu.SetDifficultyRating(*i)
	}
	return riu
}

// AddDifficultyRating adds i to the "difficulty_rating" field.
func (riu *ReviewItemUpdate) AddDifficultyRating(i int32) *ReviewItemUpdate {
	riu.mutation.AddDifficultyRating(i)
	return riu
}

// SetLastGrade sets the "last_grade" field.
func (riu *ReviewItemUpdate) SetLastGrade(i int32) *ReviewItemUpdate {
	riu.mutation.ResetLastGrade()
	riu.mutation.SetLastGrade(i)
	return riu
}

// SetNillableLastGrade sets the "last_grade" field if the given value is not nil.
func (riu *ReviewItemUpdate) SetNillableLastGrade(i *int32) *ReviewItemUpdate {
	if i != nil {
		riu.SetLastGrade(*i)
	}
	return riu
}

// AddLastGrade adds i to the "last_grade" field.
func (riu *ReviewItemUpdate) AddLastGrade(i int32) *ReviewItemUpdate {
	riu.mutation.AddLastGrade(i)
	return riu
}

// SetIntroduced sets the "introduced" field.
func (riu *ReviewItemUpdate) SetIntroduced(t time.Time) *ReviewItemUpdate {
	riu.mutation.SetIntroduced(t)
	return riu
}

// SetNillableIntroduced sets the "introduced" field if the given value is not nil.
func (riu *ReviewItemUpdate) SetNillableIntroduced(t *time.Time) *ReviewItemUpdate {
	if t != nil {
		riu.SetIntroduced(*t)
	}
	return riu
}

// SetGraduated sets the "graduated" field.
func (riu *ReviewItemUpdate) SetGraduated(b bool) *ReviewItemUpdate {
	riu.mutation.SetGraduated(b)
	return riu
}

// SetNillableGraduated sets the "graduated" field if the given value is not nil.
func (riu *ReviewItemUpdate) SetNillableGraduated(b *bool) *ReviewItemUpdate {
	if b != nil {
		riu.SetGraduated(*b)
	}
	return riu
}

// SetLapseCount sets the "lapse_count" field.
func (riu *ReviewItemUpdate) SetLapseCount(i int32) *ReviewItemUpdate {
	riu.mutation.ResetLapseCount()
	riu.mutation.SetLapseCount(i)
	return riu
}

// SetNillableLapseCount sets the "lapse_count" field if the given value is not nil.
func (riu *ReviewItemUpdate) SetNillableLapseCount(i *int32) *ReviewItemUpdate {
	if i != nil {
		riu.SetLapseCount(*i)
	}
	return riu
}

// AddLapseCount adds i to the "lapse_count" field.
func (riu *ReviewItemUpdate) AddLapseCount(i int32) *ReviewItemUpdate {
	riu.mutation.AddLapseCount(i)
	return riu
}

// SetUpdatedAt sets the "updated_at" field.
func (riu *ReviewItemUpdate) SetUpdatedAt(t time.Time) *ReviewItemUpdate {
	riu.mutation.SetUpdatedAt(t)
	return riu
}

// Mutation returns the ReviewItemMutation object of the builder.
func (riu *ReviewItemUpdate) Mutation() *ReviewItemMutation {
	return riu.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (riu *ReviewItemUpdate) Save(ctx context.Context) (int, error) {
	riu.defaults()
	return withHooks(ctx, riu.sqlSave, riu.mutation, riu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (riu *ReviewItemUpdate) SaveX(ctx context.Context) int {
	affected, err := riu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (riu *ReviewItemUpdate) Exec(ctx context.Context) error {
	_, err := riu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (riu *ReviewItemUpdate) ExecX(ctx context.Context) {
	if err := riu.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (riu *ReviewItemUpdate) defaults() {
	if _, ok := riu.mutation.UpdatedAt(); !ok {
		v := reviewitem.UpdateDefaultUpdatedAt()
		riu.mutation.SetUpdatedAt(v)
	}
}

func (riu *ReviewItemUpdate) sqlSave(ctx context.Context) (n int, err error) {
	_spec := sqlgraph.NewUpdateSpec(reviewitem.Table, reviewitem.Columns, sqlgraph.NewFieldSpec(reviewitem.FieldID, field.TypeInt))
	if ps := riu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := riu.mutation.UserID(); ok {
		_spec.SetField(reviewitem.FieldUserID, field.TypeInt64, value)
	}
	if value, ok := riu.mutation.AddedUserID(); ok {
		_spec.AddField(reviewitem.FieldUserID, field.TypeInt64, value)
	}
	if value, ok := riu.mutation.TaskID(); ok {
		_spec.SetField(reviewitem.FieldTaskID, field.TypeInt64, value)
	}
	if value, ok := riu.mutation.AddedTaskID(); ok {
		_spec.AddField(reviewitem.FieldTaskID, field.TypeInt64, value)
	}
	if value, ok := riu.mutation.IntervalDays(); ok {
		_spec.SetField(reviewitem.FieldIntervalDays, field.TypeInt32, value)
	}
	if value, ok := riu.mutation.AddedIntervalDays(); ok {
		_spec.AddField(reviewitem.FieldIntervalDays, field.TypeInt32, value)
	}
	if value, ok := riu.mutation.Repetition(); ok {
		_spec.SetField(reviewitem.FieldRepetition, field.TypeInt32, value)
	}
	if value, ok := riu.mutation.AddedRepetition(); ok {
		_spec.AddField(reviewitem.FieldRepetition, field.TypeInt32, value)
	}
	if value, ok := riu.mutation.Efactor(); ok {
		_spec.SetField(reviewitem.FieldEfactor, field.TypeFloat64, value)
	}
	if value, ok := riu.mutation.AddedEfactor(); ok {
		_spec.AddField(reviewitem.FieldEfactor, field.TypeFloat64, value)
	}
	if value, ok := riu.mutation.NextReview(); ok {
		_spec.SetField(reviewitem.FieldNextReview, field.TypeTime, value)
	}
	if value, ok := riu.mutation.LastReviewed(); ok {
		_spec.SetField(reviewitem.FieldLastReviewed, field.TypeTime, value)
	}
	if riu.mutation.LastReviewedCleared() {
		_spec.ClearField(reviewitem.FieldLastReviewed, field.TypeTime)
	}
	if value, ok := riu.mutation.TotalReviews(); ok {
		_spec.SetField(reviewitem.FieldTotalReviews, field.TypeInt32, value)
	}
	if value, ok := riu.mutation.AddedTotalReviews(); ok {
		_spec.AddField(reviewitem.FieldTotalReviews, field.TypeInt32, value)
	}
	if value, ok := riu.mutation.ConsecutiveCorrect(); ok {
		_spec.SetField(reviewitem.FieldConsecutiveCorrect, field.TypeInt32, value)
	}
	if value, ok := riu.mutation.AddedConsecutiveCorrect(); ok {
		_spec.AddField(reviewitem.FieldConsecutiveCorrect, field.TypeInt32, value)
	}
	if value, ok := riu.mutation.AverageAccuracy(); ok {
		_spec.SetField(reviewitem.FieldAverageAccuracy, field.TypeFloat64, value)
	}
	if value, ok := riu.mutation.AddedAverageAccuracy(); ok {
		_spec.AddField(reviewitem.FieldAverageAccuracy, field.TypeFloat64, value)
	}
	if value, ok := riu.mutation.AverageTimeMs(); ok {
		_spec.SetField(reviewitem.FieldAverageTimeMs, field.TypeFloat64, value)
	}
	if value, ok := riu.mutation.AddedAverageTimeMs(); ok {
		_spec.AddField(reviewitem.FieldAverageTimeMs, field.TypeFloat64, value)
	}
	if value, ok := riu.mutation.DifficultyRating(); ok {
		_spec.SetField(reviewitem.FieldDifficultyRating, field.TypeInt32, value)
	}
	if value, ok := riu.mutation.AddedDifficultyRating(); ok {
		_spec.AddField(reviewitem.FieldDifficultyRating, field.TypeInt32, value)
	}
	if value, ok := riu.mutation.LastGrade(); ok {
		_spec.SetField(reviewitem.FieldLastGrade, field.TypeInt32, value)
	}
	if value, ok := riu.mutation.AddedLastGrade(); ok {
		_spec.AddField(reviewitem.FieldLastGrade, field.TypeInt32, value)
	}
	if value, ok := riu.mutation.Introduced(); ok {
		_spec.SetField(reviewitem.FieldIntroduced, field.TypeTime, value)
	}
	if value, ok := riu.mutation.Graduated(); ok {
		_spec.SetField(reviewitem.FieldGraduated, field.TypeBool, value)
	}
	if value, ok := riu.mutation.LapseCount(); ok {
		_spec.SetField(reviewitem.FieldLapseCount, field.TypeInt32, value)
	}
	if value, ok := riu.mutation.AddedLapseCount(); ok {
		_spec.AddField(reviewitem.FieldLapseCount, field.TypeInt32, value)
	}
	if value, ok := riu.mutation.UpdatedAt(); ok {
		_spec.SetField(reviewitem.FieldUpdatedAt, field.TypeTime, value)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, riu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{reviewitem.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	riu.mutation.done = true
	return n, nil
}

// ReviewItemUpdateOne is the builder for updating a single ReviewItem entity.
type ReviewItemUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ReviewItemMutation
}

// SetUserID sets the "user_id" field.
func (riuo *ReviewItemUpdateOne) SetUserID(i int64) *ReviewItemUpdateOne {
	riuo.mutation.ResetUserID()
	riuo.mutation.SetUserID(i)
	return riuo
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (riuo *ReviewItemUpdateOne) SetNillableUserID(i *int64) *ReviewItemUpdateOne {
	if i != nil {
		riuo.SetUserID(*i)
	}
	return riuo
}

// AddUserID adds i to the "user_id" field.
func (riuo *ReviewItemUpdateOne) AddUserID(i int64) *ReviewItemUpdateOne {
	riuo.mutation.AddUserID(i)
	return riuo
}

// SetTaskID sets the "task_id" field.
func (riuo *ReviewItemUpdateOne) SetTaskID(i int64) *ReviewItemUpdateOne {
	riuo.mutation.ResetTaskID()
	riuo.mutation.SetTaskID(i)
	return riuo
}

// SetNillableTaskID sets the "task_id" field if the given value is not nil.
func (riuo *ReviewItemUpdateOne) SetNillableTaskID(i *int64) *ReviewItemUpdateOne {
	if i != nil {
		riuo.SetTaskID(*i)
	}
	return riuo
}

// AddTaskID adds i to the "task_id" field.
func (riuo *ReviewItemUpdateOne) AddTaskID(i int64) *ReviewItemUpdateOne {
	riuo.mutation.AddTaskID(i)
	return riuo
}

// SetIntervalDays sets the "interval_days" field.
func (riuo *ReviewItemUpdateOne) SetIntervalDays(i int32) *ReviewItemUpdateOne {
	riuo.mutation.ResetIntervalDays()
	riuo.mutation.SetIntervalDays(i)
	return riuo
}

// SetNillableIntervalDays sets the "interval_days" field if the given value is not nil.
func (riuo *ReviewItemUpdateOne) SetNillableIntervalDays(i *int32) *ReviewItemUpdateOne {
	if i != nil {
		riuo.SetIntervalDays(*i)
	}
	return riuo
}

// AddIntervalDays adds i to the "interval_days" field.
func (riuo *ReviewItemUpdateOne) AddIntervalDays(i int32) *ReviewItemUpdateOne {
	riuo.mutation.AddIntervalDays(i)
	return riuo
}

// SetRepetition sets the "repetition" field.
func (riuo *ReviewItemUpdateOne) SetRepetition(i int32) *ReviewItemUpdateOne {
	riuo.mutation.ResetRepetition()
	riuo.mutation.SetRepetition(i)
	return riuo
}

// SetNillableRepetition sets the "repetition" field if the given value is not nil.
func (riuo *ReviewItemUpdateOne) SetNillableRepetition(i *int32) *ReviewItemUpdateOne {
	if i != nil {
		riuo.SetRepetition(*i)
	}
	return riuo
}

// AddRepetition adds i to the "repetition" field.
func (riuo *ReviewItemUpdateOne) AddRepetition(i int32) *ReviewItemUpdateOne {
	riuo.mutation.AddRepetition(i)
	return riuo
}

// SetEfactor sets the "efactor" field.
func (riuo *ReviewItemUpdateOne) SetEfactor(f float64) *ReviewItemUpdateOne {
	riuo.mutation.ResetEfactor()
	riuo.mutation.SetEfactor(f)
	return riuo
}

// SetNillableEfactor sets the "efactor" field if the given value is not nil.
func (riuo *ReviewItemUpdateOne) SetNillableEfactor(f *float64) *ReviewItemUpdateOne {
	if f != nil {
		riuo.SetEfactor(*f)
	}
	return riuo
}

// AddEfactor adds f to the "efactor" field.
func (riuo *ReviewItemUpdateOne) AddEfactor(f float64) *ReviewItemUpdateOne {
	riuo.mutation.AddEfactor(f)
	return riuo
}

// SetNextReview sets the "next_review" field.
func (riuo *ReviewItemUpdateOne) SetNextReview(t time.Time) *ReviewItemUpdateOne {
	riuo.mutation.SetNextReview(t)
	return riuo
}

// SetNillableNextReview sets the "next_review" field if the given value is not nil.
func (riuo *ReviewItemUpdateOne) SetNillableNextReview(t *time.Time) *ReviewItemUpdateOne {
	if t != nil {
		riuo.SetNextReview(*t)
	}
	return riuo
}

// SetLastReviewed sets the "last_reviewed" field.
func (riuo *ReviewItemUpdateOne) SetLastReviewed(t time.Time) *ReviewItemUpdateOne {
	riuo.mutation.SetLastReviewed(t)
	return riuo
}

// SetNillableLastReviewed sets the "last_reviewed" field if the given value is not nil.
func (riuo *ReviewItemUpdateOne) SetNillableLastReviewed(t *time.Time) *ReviewItemUpdateOne {
	if t != nil {
		riuo.SetLastReviewed(*t)
	}
	return riuo
}

// ClearLastReviewed clears the value of the "last_reviewed" field.
func (riuo *ReviewItemUpdateOne) ClearLastReviewed() *ReviewItemUpdateOne {
	riuo.mutation.ClearLastReviewed()
	return riuo
}

// SetTotalReviews sets the "total_reviews" field.
func (riuo *ReviewItemUpdateOne) SetTotalReviews(i int32) *ReviewItemUpdateOne {
	riuo.mutation.ResetTotalReviews()
	riuo.mutation.SetTotalReviews(i)
	return riuo
}

// SetNillableTotalReviews sets the "total_reviews" field if the given value is not nil.
func (riuo *ReviewItemUpdateOne) SetNillableTotalReviews(i *int32) *ReviewItemUpdateOne {
	if i != nil {
		riuo.SetTotalReviews(*i)
	}
	return riuo
}

// AddTotalReviews adds i to the "total_reviews" field.
func (riuo *ReviewItemUpdateOne) AddTotalReviews(i int32) *ReviewItemUpdateOne {
	riuo.mutation.AddTotalReviews(i)
	return riuo
}

// SetConsecutiveCorrect sets the "consecutive_correct" field.
func (riuo *ReviewItemUpdateOne) SetConsecutiveCorrect(i int32) *ReviewItemUpdateOne {
	riuo.mutation.ResetConsecutiveCorrect()
	riuo.mutation.SetConsecutiveCorrect(i)
	return riuo
}

// SetNillableConsecutiveCorrect sets the "consecutive_correct" field if the given value is not nil.
func (riuo *ReviewItemUpdateOne) SetNillableConsecutiveCorrect(i *int32) *ReviewItemUpdateOne {
	if i != nil {
		riuo.SetConsecutiveCorrect(*i)
	}
	return riuo
}

// AddConsecutiveCorrect adds i to the "consecutive_correct" field.
func (riuo *ReviewItemUpdateOne) AddConsecutiveCorrect(i int32) *ReviewItemUpdateOne {
	riuo.mutation.AddConsecutiveCorrect(i)
	return riuo
}

// SetAverageAccuracy sets the "average_accuracy" field.
func (riuo *ReviewItemUpdateOne) SetAverageAccuracy(f float64) *ReviewItemUpdateOne {
	riuo.mutation.ResetAverageAccuracy()
	riuo.mutation.SetAverageAccuracy(f)
	return riuo
}

// SetNillableAverageAccuracy sets the "average_accuracy" field if the given value is not nil.
func (riuo *ReviewItemUpdateOne) SetNillableAverageAccuracy(f *float64) *ReviewItemUpdateOne {
	if f != nil {
		riuo.SetAverageAccuracy(*f)
	}
	return riuo
}

// AddAverageAccuracy adds f to the "average_accuracy" field.
func (riuo *ReviewItemUpdateOne) AddAverageAccuracy(f float64) *ReviewItemUpdateOne {
	riuo.mutation.AddAverageAccuracy(f)
	return riuo
}

// SetAverageTimeMs sets the "average_time_ms" field.
func (riuo *ReviewItemUpdateOne) SetAverageTimeMs(f float64) *ReviewItemUpdateOne {
	riuo.mutation.ResetAverageTimeMs()
	riuo.mutation.SetAverageTimeMs(f)
	return riuo
}

// SetNillableAverageTimeMs sets the "average_time_ms" field if the given value is not nil.
func (riuo *ReviewItemUpdateOne) SetNillableAverageTimeMs(f *float64) *ReviewItemUpdateOne {
	if f != nil {
		riuo.SetAverageTimeMs(*f)
	}
	return riuo
}

// AddAverageTimeMs adds f to the "average_time_ms" field.
func (riuo *ReviewItemUpdateOne) AddAverageTimeMs(f float64) *ReviewItemUpdateOne {
	riuo.mutation.AddAverageTimeMs(f)
	return riuo
}

// SetDifficultyRating sets the "difficulty_rating" field.
func (riuo *ReviewItemUpdateOne) SetDifficultyRating(i int32) *ReviewItemUpdateOne {
	riuo.mutation.ResetDifficultyRating()
	riuo.mutation.SetDifficultyRating(i)
	return riuo
}

// SetNillableDifficultyRating sets the "difficulty_rating" field if the given value is not nil.
func (riuo *ReviewItemUpdateOne) SetNillableDifficultyRating(i *int32) *ReviewItemUpdateOne {
	if i != nil {
		riuo.SetDifficultyRating(*i)
	}
	return riuo
}

// AddDifficultyRating adds i to the "difficulty_rating" field.
func (riuo *ReviewItemUpdateOne) AddDifficultyRating(i int32) *ReviewItemUpdateOne {
	riuo.mutation.AddDifficultyRating(i)
	return riuo
}

// SetLastGrade sets the "last_grade" field.
func (riuo *ReviewItemUpdateOne) SetLastGrade(i int32) *ReviewItemUpdateOne {
	riuo.mutation.ResetLastGrade()
	riuo.mutation.SetLastGrade(i)
	return riuo
}

// SetNillableLastGrade sets the "last_grade" field if the given value is not nil.
func (riuo *ReviewItemUpdateOne) SetNillableLastGrade(i *int32) *ReviewItemUpdateOne {
	if i != nil {
		riuo.SetLastGrade(*i)
	}
	return riuo
}

// AddLastGrade adds i to the "last_grade" field.
func (riuo *ReviewItemUpdateOne) AddLastGrade(i int32) *ReviewItemUpdateOne {
	riuo.mutation.AddLastGrade(i)
	return riuo
}

// SetIntroduced sets the "introduced" field.
func (riuo *ReviewItemUpdateOne) SetIntroduced(t time.Time) *ReviewItemUpdateOne {
	riuo.mutation.SetIntroduced(t)
	return riuo
}

// SetNillableIntroduced sets the "introduced" field if the given value is not nil.
func (riuo *ReviewItemUpdateOne) SetNillableIntroduced(t *time.Time) *ReviewItemUpdateOne {
	if t != nil {
		riuo.SetIntroduced(*t)
	}
	return riuo
}

// SetGraduated sets the "graduated" field.
func (riuo *ReviewItemUpdateOne) SetGraduated(b bool) *ReviewItemUpdateOne {
	riuo.mutation.SetGraduated(b)
	return riuo
}

// SetNillableGraduated sets the "graduated" field if the given value is not nil.
func (riuo *ReviewItemUpdateOne) SetNillableGraduated(b *bool) *ReviewItemUpdateOne {
	if b != nil {
		riuo.SetGraduated(*b)
	}
	return riuo
}

// SetLapseCount sets the "lapse_count" field.
func (riuo *ReviewItemUpdateOne) SetLapseCount(i int32) *ReviewItemUpdateOne {
	riuo.mutation.ResetLapseCount()
	riuo.mutation.SetLapseCount(i)
	return riuo
}

// SetNillableLapseCount sets the "lapse_count" field if the given value is not nil.
func (riuo *ReviewItemUpdateOne) SetNillableLapseCount(i *int32) *ReviewItemUpdateOne {
	if i != nil {
		riuo.SetLapseCount(*i)
	}
	return riuo
}

// AddLapseCount adds i to the "lapse_count" field.
func (riuo *ReviewItemUpdateOne) AddLapseCount(i int32) *ReviewItemUpdateOne {
	riuo.mutation.AddLapseCount(i)
	return riuo
}

// SetUpdatedAt sets the "updated_at" field.
func (riuo *ReviewItemUpdateOne) SetUpdatedAt(t time.Time) *ReviewItemUpdateOne {
	riuo.mutation.SetUpdatedAt(t)
	return riuo
}

// Mutation returns the ReviewItemMutation object of the builder.
func (riuo *ReviewItemUpdateOne) Mutation() *ReviewItemMutation {
	return riuo.mutation
}

// Where appends a list predicates to the ReviewItemUpdate builder.
func (riuo *ReviewItemUpdateOne) Where(ps ...predicate.ReviewItem) *ReviewItemUpdateOne {
	riuo.mutation.Where(ps...)
	return riuo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (riuo *ReviewItemUpdateOne) Select(field string, fields ...string) *ReviewItemUpdateOne {
	riuo.fields = append([]string{field}, fields...)
	return riuo
}

// Save executes the query and returns the updated ReviewItem entity.
func (riuo *ReviewItemUpdateOne) Save(ctx context.Context) (*ReviewItem, error) {
	riuo.defaults()
	return withHooks(ctx, riuo.sqlSave, riuo.mutation, riuo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (riuo *ReviewItemUpdateOne) SaveX(ctx context.Context) *ReviewItem {
	node, err := riuo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (riuo *ReviewItemUpdateOne) Exec(ctx context.Context) error {
	_, err := riuo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (riuo *ReviewItemUpdateOne) ExecX(ctx context.Context) {
	if err := riuo.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (riuo *ReviewItemUpdateOne) defaults() {
	if _, ok := riuo.mutation.UpdatedAt(); !ok {
		v := reviewitem.UpdateDefaultUpdatedAt()
		riuo.mutation.SetUpdatedAt(v)
	}
}

func (riuo *ReviewItemUpdateOne) sqlSave(ctx context.Context) (_node *ReviewItem, err error) {
	_spec := sqlgraph.NewUpdateSpec(reviewitem.Table, reviewitem.Columns, sqlgraph.NewFieldSpec(reviewitem.FieldID, field.TypeInt))
	id, ok := riuo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ReviewItem.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := riuo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, reviewitem.FieldID)
		for _, f := range fields {
			if !reviewitem.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != reviewitem.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := riuo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := riuo.mutation.UserID(); ok {
		_spec.SetField(reviewitem.FieldUserID, field.TypeInt64, value)
	}
	if value, ok := riuo.mutation.AddedUserID(); ok {
		_spec.AddField(reviewitem.FieldUserID, field.TypeInt64, value)
	}
	if value, ok := riuo.mutation.TaskID(); ok {
		_spec.SetField(reviewitem.FieldTaskID, field.TypeInt64, value)
	}
	if value, ok := riuo.mutation.AddedTaskID(); ok {
		_spec.AddField(reviewitem.FieldTaskID, field.TypeInt64, value)
	}
	if value, ok := riuo.mutation.IntervalDays(); ok {
		_spec.SetField(reviewitem.FieldIntervalDays, field.TypeInt32, value)
	}
	if value, ok := riuo.mutation.AddedIntervalDays(); ok {
		_spec.AddField(reviewitem.FieldIntervalDays, field.TypeInt32, value)
	}
	if value, ok := riuo.mutation.Repetition(); ok {
		_spec.SetField(reviewitem.FieldRepetition, field.TypeInt32, value)
	}
	if value, ok := riuo.mutation.AddedRepetition(); ok {
		_spec.AddField(reviewitem.FieldRepetition, field.TypeInt32, value)
	}
	if value, ok := riuo.mutation.Efactor(); ok {
		_spec.SetField(reviewitem.FieldEfactor, field.TypeFloat64, value)
	}
	if value, ok := riuo.mutation.AddedEfactor(); ok {
		_spec.AddField(reviewitem.FieldEfactor, field.TypeFloat64, value)
	}
	if value, ok := riuo.mutation.NextReview(); ok {
		_spec.SetField(reviewitem.FieldNextReview, field.TypeTime, value)
	}
	if value, ok := riuo.mutation.LastReviewed(); ok {
		_spec.SetField(reviewitem.FieldLastReviewed, field.TypeTime, value)
	}
	if riuo.mutation.LastReviewedCleared() {
		_spec.ClearField(reviewitem.FieldLastReviewed, field.TypeTime)
	}
	if value, ok := riuo.mutation.TotalReviews(); ok {
		_spec.SetField(reviewitem.FieldTotalReviews, field.TypeInt32, value)
	}
	if value, ok := riuo.mutation.AddedTotalReviews(); ok {
		_spec.AddField(reviewitem.FieldTotalReviews, field.TypeInt32, value)
	}
	if value, ok := riuo.mutation.ConsecutiveCorrect(); ok {
		_spec.SetField(reviewitem.FieldConsecutiveCorrect, field.TypeInt32, value)
	}
	if value, ok := riuo.mutation.AddedConsecutiveCorrect(); ok {
		_spec.AddField(reviewitem.FieldConsecutiveCorrect, field.TypeInt32, value)
	}
	if value, ok := riuo.mutation.AverageAccuracy(); ok {
		_spec.SetField(reviewitem.FieldAverageAccuracy, field.TypeFloat64, value)
	}
	if value, ok := riuo.mutation.AddedAverageAccuracy(); ok {
		_spec.AddField(reviewitem.FieldAverageAccuracy, field.TypeFloat64, value)
	}
	if value, ok := riuo.mutation.AverageTimeMs(); ok {
		_spec.SetField(reviewitem.FieldAverageTimeMs, field.TypeFloat64, value)
	}
	if value, ok := riuo.mutation.AddedAverageTimeMs(); ok {
		_spec.AddField(reviewitem.FieldAverageTimeMs, field.TypeFloat64, value)
	}
	if value, ok := riuo.mutation.DifficultyRating(); ok {
		_spec.SetField(reviewitem.FieldDifficultyRating, field.TypeInt32, value)
	}
	if value, ok := riuo.mutation.AddedDifficultyRating(); ok {
		_spec.AddField(reviewitem.FieldDifficultyRating, field.TypeInt32, value)
	}
	if value, ok := riuo.mutation.LastGrade(); ok {
		_spec.SetField(reviewitem.FieldLastGrade, field.TypeInt32, value)
	}
	if value, ok := riuo.mutation.AddedLastGrade(); ok {
		_spec.AddField(reviewitem.FieldLastGrade, field.TypeInt32, value)
	}
	if value, ok := riuo.mutation.Introduced(); ok {
		_spec.SetField(reviewitem.FieldIntroduced, field.TypeTime, value)
	}
	if value, ok := riuo.mutation.Graduated(); ok {
		_spec.SetField(reviewitem.FieldGraduated, field.TypeBool, value)
	}
	if value, ok := riuo.mutation.LapseCount(); ok {
		_spec.SetField(reviewitem.FieldLapseCount, field.TypeInt32, value)
	}
	if value, ok := riuo.mutation.AddedLapseCount(); ok {
		_spec.AddField(reviewitem.FieldLapseCount, field.TypeInt32, value)
	}
	if value, ok := riuo.mutation.UpdatedAt(); ok {
		_spec.SetField(reviewitem.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &ReviewItem{config: riuo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, riuo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{reviewitem.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	riuo.mutation.done = true
	return _node, nil
}
