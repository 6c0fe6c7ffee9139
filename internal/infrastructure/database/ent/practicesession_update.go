// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/eslsoft/drillnet/internal/entity"
	"github.com/eslsoft/drillnet/internal/infrastructure/database/ent/practicesession"
	"github.com/eslsoft/drillnet/internal/infrastructure/database/ent/predicate"
)

// PracticeSessionUpdate is the builder for updating PracticeSession entities.
type PracticeSessionUpdate struct {
	config
	hooks    []Hook
	mutation *PracticeSessionMutation
}

// Where appends a list predicates to the PracticeSessionUpdate builder.
func (psu *PracticeSessionUpdate) Where(ps ...predicate.PracticeSession) *PracticeSessionUpdate {
	psu.mutation.Where(ps...)
	return psu
}

// SetUserID sets the "user_id" field.
func (psu *PracticeSessionUpdate) SetUserID(i int64) *PracticeSessionUpdate {
	psu.mutation.ResetUserID()
	psu.mutation.SetUserID(i)
	return psu
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (psu *PracticeSessionUpdate) SetNillableUserID(i *int64) *PracticeSessionUpdate {
	if i != nil {
		psu.SetUserID(*i)
	}
	return psu
}

// AddUserID adds i to the "user_id" field.
func (psu *PracticeSessionUpdate) AddUserID(i int64) *PracticeSessionUpdate {
	psu.mutation.AddUserID(i)
	return psu
}

// SetTopicID sets the "topic_id" field.
func (psu *PracticeSessionUpdate) SetTopicID(i int64) *PracticeSessionUpdate {
	psu.mutation.ResetTopicID()
	psu.mutation.SetTopicID(i)
	return psu
}

// SetNillableTopicID sets the "topic_id" field if the given value is not nil.
func (psu *PracticeSessionUpdate) SetNillableTopicID(i *int64) *PracticeSessionUpdate {
	if i != nil {
		psu.SetTopicID(*i)
	}
	return psu
}

// AddTopicID adds i to the "topic_id" field.
func (psu *PracticeSessionUpdate) AddTopicID(i int64) *PracticeSessionUpdate {
	psu.mutation.AddTopicID(i)
	return psu
}

// SetLearningPaths sets the "learning_paths" field.
func (psu *PracticeSessionUpdate) SetLearningPaths(i []int64) *PracticeSessionUpdate {
	psu.mutation.SetLearningPaths(i)
	return psu
}

// AppendLearningPaths appends i to the "learning_paths" field.
func (psu *PracticeSessionUpdate) AppendLearningPaths(i []int64) *PracticeSessionUpdate {
	psu.mutation.AppendLearningPaths(i)
	return psu
}

// SetTargetCount sets the "target_count" field.
func (psu *PracticeSessionUpdate) SetTargetCount(i int32) *PracticeSessionUpdate {
	psu.mutation.ResetTargetCount()
	psu.mutation.SetTargetCount(i)
	return psu
}

// SetNillableTargetCount sets the "target_count" field if the given value is not nil.
func (psu *PracticeSessionUpdate) SetNillableTargetCount(i *int32) *PracticeSessionUpdate {
	if i != nil {
		psu.SetTargetCount(*i)
	}
	return psu
}

// AddTargetCount adds i to the "target_count" field.
func (psu *PracticeSessionUpdate) AddTargetCount(i int32) *PracticeSessionUpdate {
	psu.mutation.AddTargetCount(i)
	return psu
}

// SetIncludeReview sets the "include_review" field.
func (psu *PracticeSessionUpdate) SetIncludeReview(b bool) *PracticeSessionUpdate {
	psu.mutation.SetIncludeReview(b)
	return psu
}

// SetNillableIncludeReview sets the "include_review" field if the given value is not nil.
func (psu *PracticeSessionUpdate) SetNillableIncludeReview(b *bool) *PracticeSessionUpdate {
	if b != nil {
		psu.SetIncludeReview(*b)
	}
	return psu
}

// SetDifficultyFilter sets the "difficulty_filter" field.
func (psu *PracticeSessionUpdate) SetDifficultyFilter(i int32) *PracticeSessionUpdate {
	psu.mutation.ResetDifficultyFilter()
	psu.mutation.SetDifficultyFilter(i)
	return psu
}

// SetNillableDifficultyFilter sets the "difficulty_filter" field if the given value is not nil.
func (psu *PracticeSessionUpdate) SetNillableDifficultyFilter(i *int32) *PracticeSessionUpdate {
	if i != nil {
		psu.SetDifficultyFilter(*i)
	}
	return psu
}

// AddDifficultyFilter adds i to the "difficulty_filter" field.
func (psu *PracticeSessionUpdate) AddDifficultyFilter(i int32) *PracticeSessionUpdate {
	psu.mutation.AddDifficultyFilter(i)
	return psu
}

// ClearDifficultyFilter clears the value of the "difficulty_filter" field.
func (psu *PracticeSessionUpdate) ClearDifficultyFilter() *PracticeSessionUpdate {
	psu.mutation.ClearDifficultyFilter()
	return psu
}

// SetTasks sets the "tasks" field.
func (psu *PracticeSessionUpdate) SetTasks(i []int64) *PracticeSessionUpdate {
	psu.mutation.SetTasks(i)
	return psu
}

// AppendTasks appends i to the "tasks" field.
func (psu *PracticeSessionUpdate) AppendTasks(i []int64) *PracticeSessionUpdate {
	psu.mutation.AppendTasks(i)
	return psu
}

// SetCompletedCount sets the "completed_count" field.
func (psu *PracticeSessionUpdate) SetCompletedCount(i int32) *PracticeSessionUpdate {
	psu.mutation.ResetCompletedCount()
	psu.mutation.SetCompletedCount(i)
	return psu
}

// SetNillableCompletedCount sets the "completed_count" field if the given value is not nil.
func (psu *PracticeSessionUpdate) SetNillableCompletedCount(i *int32) *PracticeSessionUpdate {
	if i != nil {
		psu.SetCompletedCount(*i)
	}
	return psu
}

// AddCompletedCount adds i to the "completed_count" field.
func (psu *PracticeSessionUpdate) AddCompletedCount(i int32) *PracticeSessionUpdate {
	psu.mutation.AddCompletedCount(i)
	return psu
}

// SetCorrectCount sets the "correct_count" field.
func (psu *PracticeSessionUpdate) SetCorrectCount(i int32) *PracticeSessionUpdate {
	psu.mutation.ResetCorrectCount()
	psu.mutation.SetCorrectCount(i)
	return psu
}

// SetNillableCorrectCount sets the "correct_count" field if the given value is not nil.
func (psu *PracticeSessionUpdate) SetNillableCorrectCount(i *int32) *PracticeSessionUpdate {
	if i != nil {
		psu.SetCorrectCount(*i)
	}
	return psu
}

// AddCorrectCount adds i to the "correct_count" field.
func (psu *PracticeSessionUpdate) AddCorrectCount(i int32) *PracticeSessionUpdate {
	psu.mutation.AddCorrectCount(i)
	return psu
}

// SetStatus sets the "status" field.
func (psu *PracticeSessionUpdate) SetStatus(s string) *PracticeSessionUpdate {
	psu.mutation.SetStatus(s)
	return psu
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (psu *PracticeSessionUpdate) SetNillableStatus(s *string) *PracticeSessionUpdate {
	if s != nil {
		psu.SetStatus(*s)
	}
	return psu
}

// SetStartedAt sets the "started_at" field.
func (psu *PracticeSessionUpdate) SetStartedAt(t time.Time) *PracticeSessionUpdate {
	psu.mutation.SetStartedAt(t)
	return psu
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (psu *PracticeSessionUpdate) SetNillableStartedAt(t *time.Time) *PracticeSessionUpdate {
	if t != nil {
		psu.SetStartedAt(*t)
	}
	return psu
}

// ClearStartedAt clears the value of the "started_at" field.
func (psu *PracticeSessionUpdate) ClearStartedAt() *PracticeSessionUpdate {
	psu.mutation.ClearStartedAt()
	return psu
}

// SetCompletedAt sets the "completed_at" field.
func (psu *PracticeSessionUpdate) SetCompletedAt(t time.Time) *PracticeSessionUpdate {
	psu.mutation.SetCompletedAt(t)
	return psu
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (psu *PracticeSessionUpdate) SetNillableCompletedAt(t *time.Time) *PracticeSessionUpdate {
	if t != nil {
		psu.SetCompletedAt(*t)
	}
	return psu
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (psu *PracticeSessionUpdate) ClearCompletedAt() *PracticeSessionUpdate {
	psu.mutation.ClearCompletedAt()
	return psu
}

// SetTotalTimeSpentMs sets the "total_time_spent_ms" field.
func (psu *PracticeSessionUpdate) SetTotalTimeSpentMs(i int64) *PracticeSessionUpdate {
	psu.mutation.ResetTotalTimeSpentMs()
	psu.mutation.SetTotalTimeSpentMs(i)
	return psu
}

// SetNillableTotalTimeSpentMs sets the "total_time_spent_ms" field if the given value is not nil.
func (psu *PracticeSessionUpdate) SetNillableTotalTimeSpentMs(i *int64) *PracticeSessionUpdate {
	if i != nil {
		psu.SetTotalTimeSpentMs(*i)
	}
	return psu
}

// AddTotalTimeSpentMs adds i to the "total_time_spent_ms" field.
func (psu *PracticeSessionUpdate) AddTotalTimeSpentMs(i int64) *PracticeSessionUpdate {
	psu.mutation.AddTotalTimeSpentMs(i)
	return psu
}

// SetResults sets the "results" field.
func (psu *PracticeSessionUpdate) SetResults(er *entity.SessionResults) *PracticeSessionUpdate {
	psu.mutation.SetResults(er)
	return psu
}

// ClearResults clears the value of the "results" field.
func (psu *PracticeSessionUpdate) ClearResults() *PracticeSessionUpdate {
	psu.mutation.ClearResults()
	return psu
}

// SetUpdatedAt sets the "updated_at" field.
func (psu *PracticeSessionUpdate) SetUpdatedAt(t time.Time) *PracticeSessionUpdate {
	psu.mutation.SetUpdatedAt(t)
	return psu
}

// Mutation returns the PracticeSessionMutation object of the builder.
func (psu *PracticeSessionUpdate) Mutation() *PracticeSessionMutation {
	return psu.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (psu *PracticeSessionUpdate) Save(ctx context.Context) (int, error) {
	psu.defaults()
	return withHooks(ctx, psu.sqlSave, psu.mutation, psu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (psu *PracticeSessionUpdate) SaveX(ctx context.Context) int {
	affected, err := psu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (psu *PracticeSessionUpdate) Exec(ctx context.Context) error {
	_, err := psu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (psu *PracticeSessionUpdate) ExecX(ctx context.Context) {
	if err := psu.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (psu *PracticeSessionUpdate) defaults() {
	if _, ok := psu.mutation.UpdatedAt(); !ok {
		v := practicesession.UpdateDefaultUpdatedAt()
		psu.mutation.SetUpdatedAt(v)
	}
}

func (psu *PracticeSessionUpdate) sqlSave(ctx context.Context) (n int, err error) {
	_spec := sqlgraph.NewUpdateSpec(practicesession.Table, practicesession.Columns, sqlgraph.NewFieldSpec(practicesession.FieldID, field.TypeInt))
	if ps := psu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := psu.mutation.UserID(); ok {
		_spec.SetField(practicesession.FieldUserID, field.TypeInt64, value)
	}
	if value, ok := psu.mutation.AddedUserID(); ok {
		_spec.AddField(practicesession.FieldUserID, field.TypeInt64, value)
	}
	if value, ok := psu.mutation.TopicID(); ok {
		_spec.SetField(practicesession.FieldTopicID, field.TypeInt64, value)
	}
	if value, ok := psu.mutation.AddedTopicID(); ok {
		_spec.AddField(practicesession.FieldTopicID, field.TypeInt64, value)
	}
	if value, ok := psu.mutation.LearningPaths(); ok {
		_spec.SetField(practicesession.FieldLearningPaths, field.TypeJSON, value)
	}
	if value, ok := psu.mutation.AppendedLearningPaths(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, practicesession.FieldLearningPaths, value)
		})
	}
	if value, ok := psu.mutation.TargetCount(); ok {
		_spec.SetField(practicesession.FieldTargetCount, field.TypeInt32, value)
	}
	if value, ok := psu.mutation.AddedTargetCount(); ok {
		_spec.AddField(practicesession.FieldTargetCount, field.TypeInt32, value)
	}
	if value, ok := psu.mutation.IncludeReview(); ok {
		_spec.SetField(practicesession.FieldIncludeReview, field.TypeBool, value)
	}
	if value, ok := psu.mutation.DifficultyFilter(); ok {
		_spec.SetField(practicesession.FieldDifficultyFilter, field.TypeInt32, value)
	}
	if value, ok := psu.mutation.AddedDifficultyFilter(); ok {
		_spec.AddField(practicesession.FieldDifficultyFilter, field.TypeInt32, value)
	}
	if psu.mutation.DifficultyFilterCleared() {
		_spec.ClearField(practicesession.FieldDifficultyFilter, field.TypeInt32)
	}
	if value, ok := psu.mutation.Tasks(); ok {
		_spec.SetField(practicesession.FieldTasks, field.TypeJSON, value)
	}
	if value, ok := psu.mutation.AppendedTasks(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, practicesession.FieldTasks, value)
		})
	}
	if value, ok := psu.mutation.CompletedCount(); ok {
		_spec.SetField(practicesession.FieldCompletedCount, field.TypeInt32, value)
	}
	if value, ok := psu.mutation.AddedCompletedCount(); ok {
		_spec.AddField(practicesession.FieldCompletedCount, field.TypeInt32, value)
	}
	if value, ok := psu.mutation.CorrectCount(); ok {
		_spec.SetField(practicesession.FieldCorrectCount, field.TypeInt32, value)
	}
	if value, ok := psu.mutation.AddedCorrectCount(); ok {
		_spec.AddField(practicesession.FieldCorrectCount, field.TypeInt32, value)
	}
	if value, ok := psu.mutation.Status(); ok {
		_spec.SetField(practicesession.FieldStatus, field.TypeString, value)
	}
	if value, ok := psu.mutation.StartedAt(); ok {
		_spec.SetField(practicesession.FieldStartedAt, field.TypeTime, value)
	}
	if psu.mutation.StartedAtCleared() {
		_spec.ClearField(practicesession.FieldStartedAt, field.TypeTime)
	}
	if value, ok := psu.mutation.CompletedAt(); ok {
		_spec.SetField(practicesession.FieldCompletedAt, field.TypeTime, value)
	}
	if psu.mutation.CompletedAtCleared() {
		_spec.ClearField(practicesession.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := psu.mutation.TotalTimeSpentMs(); ok {
		_spec.SetField(practicesession.FieldTotalTimeSpentMs, field.TypeInt64, value)
	}
	if value, ok := psu.mutation.AddedTotalTimeSpentMs(); ok {
		_spec.AddField(practicesession.FieldTotalTimeSpentMs, field.TypeInt64, value)
	}
	if value, ok := psu.mutation.Results(); ok {
		_spec.SetField(practicesession.FieldResults, field.TypeJSON, value)
	}
	if psu.mutation.ResultsCleared() {
		_spec.ClearField(practicesession.FieldResults, field.TypeJSON)
	}
	if value, ok := psu.mutation.UpdatedAt(); ok {
		_spec.SetField(practicesession.FieldUpdatedAt, field.TypeTime, value)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, psu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{practicesession.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	psu.mutation.done = true
	return n, nil
}

// PracticeSessionUpdateOne is the builder for updating a single PracticeSession entity.
type PracticeSessionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PracticeSessionMutation
}

// SetUserID sets the "user_id" field.
func (psuo *PracticeSessionUpdateOne) SetUserID(i int64) *PracticeSessionUpdateOne {
	psuo.mutation.ResetUserID()
	psuo.mutation.SetUserID(i)
	return psuo
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (psuo *PracticeSessionUpdateOne) SetNillableUserID(i *int64) *PracticeSessionUpdateOne {
	if i != nil {
		psuo.SetUserID(*i)
	}
	return psuo
}

// AddUserID adds i to the "user_id" field.
func (psuo *PracticeSessionUpdateOne) AddUserID(i int64) *PracticeSessionUpdateOne {
	psuo.mutation.AddUserID(i)
	return psuo
}

// SetTopicID sets the "topic_id" field.
func (psuo *PracticeSessionUpdateOne) SetTopicID(i int64) *PracticeSessionUpdateOne {
	psuo.mutation.ResetTopicID()
	psuo.mutation.SetTopicID(i)
	return psuo
}

// SetNillableTopicID sets the "topic_id" field if the given value is not nil.
func (psuo *PracticeSessionUpdateOne) SetNillableTopicID(i *int64) *PracticeSessionUpdateOne {
	if i != nil {
		psuo.SetTopicID(*i)
	}
	return psuo
}

// AddTopicID adds i to the "topic_id" field.
func (psuo *PracticeSessionUpdateOne) AddTopicID(i int64) *PracticeSessionUpdateOne {
	psuo.mutation.AddTopicID(i)
	return psuo
}

// SetLearningPaths sets the "learning_paths" field.
func (psuo *PracticeSessionUpdateOne) SetLearningPaths(i []int64) *PracticeSessionUpdateOne {
	psuo.mutation.SetLearningPaths(i)
	return psuo
}

// AppendLearningPaths appends i to the "learning_paths" field.
func (psuo *PracticeSessionUpdateOne) AppendLearningPaths(i []int64) *PracticeSessionUpdateOne {
	psuo.mutation.AppendLearningPaths(i)
	return psuo
}

// SetTargetCount sets the "target_count" field.
func (psuo *PracticeSessionUpdateOne) SetTargetCount(i int32) *PracticeSessionUpdateOne {
	psuo.mutation.ResetTargetCount()
	psuo.mutation.SetTargetCount(i)
	return psuo
}

// SetNillableTargetCount sets the "target_count" field if the given value is not nil.
func (psuo *PracticeSessionUpdateOne) SetNillableTargetCount(i *int32) *PracticeSessionUpdateOne {
	if i != nil {
		psuo.SetTargetCount(*i)
	}
	return psuo
}

// AddTargetCount adds i to the "target_count" field.
func (psuo *PracticeSessionUpdateOne) AddTargetCount(i int32) *PracticeSessionUpdateOne {
	psuo.mutation.AddTargetCount(i)
	return psuo
}

// SetIncludeReview sets the "include_review" field.
func (psuo *PracticeSessionUpdateOne) SetIncludeReview(b bool) *PracticeSessionUpdateOne {
	psuo.mutation.SetIncludeReview(b)
	return psuo
}

// SetNillableIncludeReview sets the "include_review" field if the given value is not nil.
func (psuo *PracticeSessionUpdateOne) SetNillableIncludeReview(b *bool) *PracticeSessionUpdateOne {
	if b != nil {
		psuo.SetIncludeReview(*b)
	}
	return psuo
}

// SetDifficultyFilter sets the "difficulty_filter" field.
func (psuo *PracticeSessionUpdateOne) SetDifficultyFilter(i int32) *PracticeSessionUpdateOne {
	psuo.mutation.ResetDifficultyFilter()
	psuo.mutation.SetDifficultyFilter(i)
	return psuo
}

// SetNillableDifficultyFilter sets the "difficulty_filter" field if the given value is not nil.
func (psuo *PracticeSessionUpdateOne) SetNillableDifficultyFilter(i *int32) *PracticeSessionUpdateOne {
	if i != nil {
		psuo.SetDifficultyFilter(*i)
	}
	return psuo
}

// AddDifficultyFilter adds i to the "difficulty_filter" field.
func (psuo *PracticeSessionUpdateOne) AddDifficultyFilter(i int32) *PracticeSessionUpdateOne {
	psuo.mutation.AddDifficultyFilter(i)
	return psuo
}

// ClearDifficultyFilter clears the value of the "difficulty_filter" field.
func (psuo *PracticeSessionUpdateOne) ClearDifficultyFilter() *PracticeSessionUpdateOne {
	psuo.mutation.ClearDifficultyFilter()
	return psuo
}

// SetTasks sets the "tasks" field.
func (psuo *PracticeSessionUpdateOne) SetTasks(i []int64) *PracticeSessionUpdateOne {
	psuo.mutation.SetTasks(i)
	return psuo
}

// AppendTasks appends i to the "tasks" field.
func (psuo *PracticeSessionUpdateOne) AppendTasks(i []int64) *PracticeSessionUpdateOne {
	psuo.mutation.AppendTasks(i)
	return psuo
}

// SetCompletedCount sets the "completed_count" field.
func (psuo *PracticeSessionUpdateOne) SetCompletedCount(i int32) *PracticeSessionUpdateOne {
	psuo.mutation.ResetCompletedCount()
	psuo.mutation.SetCompletedCount(i)
	return psuo
}

// SetNillableCompletedCount sets the "completed_count" field if the given value is not nil.
func (psuo *PracticeSessionUpdateOne) SetNillableCompletedCount(i *int32) *PracticeSessionUpdateOne {
	if i != nil {
		psuo.SetCompletedCount(*i)
	}
	return psuo
}

// AddCompletedCount adds i to the "completed_count" field.
func (psuo *PracticeSessionUpdateOne) AddCompletedCount(i int32) *PracticeSessionUpdateOne {
	psuo.mutation.AddCompletedCount(i)
	return psuo
}

// SetCorrectCount sets the "correct_count" field.
func (psuo *PracticeSessionUpdateOne) SetCorrectCount(i int32) *PracticeSessionUpdateOne {
	psuo.mutation.ResetCorrectCount()
	psuo.mutation.SetCorrectCount(i)
	return psuo
}

// SetNillableCorrectCount sets the "correct_count" field if the given value is not nil.
func (psuo *PracticeSessionUpdateOne) SetNillableCorrectCount(i *int32) *PracticeSessionUpdateOne {
	if i != nil {
		psuo.SetCorrectCount(*i)
	}
	return psuo
}

// AddCorrectCount adds i to the "correct_count" field.
func (psuo *PracticeSessionUpdateOne) AddCorrectCount(i int32) *PracticeSessionUpdateOne {
	psuo.mutation.AddCorrectCount(i)
	return psuo
}

// SetStatus sets the "status" field.
func (psuo *PracticeSessionUpdateOne) SetStatus(s string) *PracticeSessionUpdateOne {
	psuo.mutation.SetStatus(s)
	return psuo
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (psuo *PracticeSessionUpdateOne) SetNillableStatus(s *string) *PracticeSessionUpdateOne {
	if s != nil {
		psuo.SetStatus(*s)
	}
	return psuo
}

// SetStartedAt sets the "started_at" field.
func (psuo *PracticeSessionUpdateOne) SetStartedAt(t time.Time) *PracticeSessionUpdateOne {
	psuo.mutation.SetStartedAt(t)
	return psuo
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (psuo *PracticeSessionUpdateOne) SetNillableStartedAt(t *time.Time) *PracticeSessionUpdateOne {
	if t != nil {
		psuo.SetStartedAt(*t)
	}
	return psuo
}

// ClearStartedAt clears the value of the "started_at" field.
func (psuo *PracticeSessionUpdateOne) ClearStartedAt() *PracticeSessionUpdateOne {
	psuo.mutation.ClearStartedAt()
	return psuo
}

// SetCompletedAt sets the "completed_at" field.
func (psuo *PracticeSessionUpdateOne) SetCompletedAt(t time.Time) *PracticeSessionUpdateOne {
	psuo.mutation.SetCompletedAt(t)
	return psuo
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (psuo *PracticeSessionUpdateOne) SetNillableCompletedAt(t *time.Time) *PracticeSessionUpdateOne {
	if t != nil {
		psuo.SetCompletedAt(*t)
	}
	return psuo
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (psuo *PracticeSessionUpdateOne) ClearCompletedAt() *PracticeSessionUpdateOne {
	psuo.mutation.ClearCompletedAt()
	return psuo
}

// SetTotalTimeSpentMs sets the "total_time_spent_ms" field.
func (psuo *PracticeSessionUpdateOne) SetTotalTimeSpentMs(i int64) *PracticeSessionUpdateOne {
	psuo.mutation.ResetTotalTimeSpentMs()
	psuo.mutation.SetTotalTimeSpentMs(i)
	return psuo
}

// SetNillableTotalTimeSpentMs sets the "total_time_spent_ms" field if the given value is not nil.
func (psuo *PracticeSessionUpdateOne) SetNillableTotalTimeSpentMs(i *int64) *PracticeSessionUpdateOne {
	if i != nil {
		psuo.SetTotalTimeSpentMs(*i)
	}
	return psuo
}

// AddTotalTimeSpentMs adds i to the "total_time_spent_ms" field.
func (psuo *PracticeSessionUpdateOne) AddTotalTimeSpentMs(i int64) *PracticeSessionUpdateOne {
	psuo.mutation.AddTotalTimeSpentMs(i)
	return psuo
}

// SetResults sets the "results" field.
func (psuo *PracticeSessionUpdateOne) SetResults(er *entity.SessionResults) *PracticeSessionUpdateOne {
	psuo.mutation.SetResults(er)
	return psuo
}

// ClearResults clears the value of the "results" field.
func (psuo *PracticeSessionUpdateOne) ClearResults() *PracticeSessionUpdateOne {
	psuo.mutation.ClearResults()
	return psuo
}

// SetUpdatedAt sets the "updated_at" field.
func (psuo *PracticeSessionUpdateOne) SetUpdatedAt(t time.Time) *PracticeSessionUpdateOne {
	psuo.mutation.SetUpdatedAt(t)
	return psuo
}

// Mutation returns the PracticeSessionMutation object of the builder.
func (psuo *PracticeSessionUpdateOne) Mutation() *PracticeSessionMutation {
	return psuo.mutation
}

// Where appends a list predicates to the PracticeSessionUpdate builder.
func (psuo *PracticeSessionUpdateOne) Where(ps ...predicate.PracticeSession) *PracticeSessionUpdateOne {
	psuo.mutation.Where(ps...)
	return psuo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (psuo *PracticeSessionUpdateOne) Select(field string, fields ...string) *PracticeSessionUpdateOne {
	psuo.fields = append([]string{field}, fields...)
	return psuo
}

// Save executes the query and returns the updated PracticeSession entity.
func (psuo *PracticeSessionUpdateOne) Save(ctx context.Context) (*PracticeSession, error) {
	psuo.defaults()
	return withHooks(ctx, psuo.sqlSave, psuo.mutation, psuo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (psuo *PracticeSessionUpdateOne) SaveX(ctx context.Context) *PracticeSession {
	node, err := psuo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (psuo *PracticeSessionUpdateOne) Exec(ctx context.Context) error {
	_, err := psuo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (psuo *PracticeSessionUpdateOne) ExecX(ctx context.Context) {
	if err := psuo.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (psuo *PracticeSessionUpdateOne) defaults() {
	if _, ok := psuo.mutation.UpdatedAt(); !ok {
		v := practicesession.UpdateDefaultUpdatedAt()
		psuo.mutation.SetUpdatedAt(v)
	}
}

func (psuo *PracticeSessionUpdateOne) sqlSave(ctx context.Context) (_node *PracticeSession, err error) {
	_spec := sqlgraph.NewUpdateSpec(practicesession.Table, practicesession.Columns, sqlgraph.NewFieldSpec(practicesession.FieldID, field.TypeInt))
	id, ok := psuo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "PracticeSession.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := psuo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, practicesession.FieldID)
		for _, f := range fields {
			if !practicesession.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != practicesession.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := psuo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := psuo.mutation.UserID(); ok {
		_spec.SetField(practicesession.FieldUserID, field.TypeInt64, value)
	}
	if value, ok := psuo.mutation.AddedUserID(); ok {
		_spec.AddField(practicesession.FieldUserID, field.TypeInt64, value)
	}
	if value, ok := psuo.mutation.TopicID(); ok {
		_spec.SetField(practicesession.FieldTopicID, field.TypeInt64, value)
	}
	if value, ok := psuo.mutation.AddedTopicID(); ok {
		_spec.AddField(practicesession.FieldTopicID, field.TypeInt64, value)
	}
	if value, ok := psuo.mutation.LearningPaths(); ok {
		_spec.SetField(practicesession.FieldLearningPaths, field.TypeJSON, value)
	}
	if value, ok := psuo.mutation.AppendedLearningPaths(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, practicesession.FieldLearningPaths, value)
		})
	}
	if value, ok := psuo.mutation.TargetCount(); ok {
		_spec.SetField(practicesession.FieldTargetCount, field.TypeInt32, value)
	}
	if value, ok := psuo.mutation.AddedTargetCount(); ok {
		_spec.AddField(practicesession.FieldTargetCount, field.TypeInt32, value)
	}
	if value, ok := psuo.mutation.IncludeReview(); ok {
		_spec.SetField(practicesession.FieldIncludeReview, field.TypeBool, value)
	}
	if value, ok := psuo.mutation.DifficultyFilter(); ok {
		_spec.SetField(practicesession.FieldDifficultyFilter, field.TypeInt32, value)
	}
	if value, ok := psuo.mutation.AddedDifficultyFilter(); ok {
		_spec.AddField(practicesession.FieldDifficultyFilter, field.TypeInt32, value)
	}
	if psuo.mutation.DifficultyFilterCleared() {
		_spec.ClearField(practicesession.FieldDifficultyFilter, field.TypeInt32)
	}
	if value, ok := psuo.mutation.Tasks(); ok {
		_spec.SetField(practicesession.FieldTasks, field.TypeJSON, value)
	}
	if value, ok := psuo.mutation.AppendedTasks(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, practicesession.FieldTasks, value)
		})
	}
	if value, ok := psuo.mutation.CompletedCount(); ok {
		_spec.SetField(practicesession.FieldCompletedCount, field.TypeInt32, value)
	}
	if value, ok := psuo.mutation.AddedCompletedCount(); ok {
		_spec.AddField(practicesession.FieldCompletedCount, field.TypeInt32, value)
	}
	if value, ok := psuo.mutation.CorrectCount(); ok {
		_spec.SetField(practicesession.FieldCorrectCount, field.TypeInt32, value)
	}
	if value, ok := psuo.mutation.AddedCorrectCount(); ok {
		_spec.AddField(practicesession.FieldCorrectCount, field.TypeInt32, value)
	}
	if value, ok := psuo.mutation.Status(); ok {
		_spec.SetField(practicesession.FieldStatus, field.TypeString, value)
	}
	if value, ok := psuo.mutation.StartedAt(); ok {
		_spec.SetField(practicesession.FieldStartedAt, field.TypeTime, value)
	}
	if psuo.mutation.StartedAtCleared() {
		_spec.ClearField(practicesession.FieldStartedAt, field.TypeTime)
	}
	if value, ok := psuo.mutation.CompletedAt(); ok {
		_spec.SetField(practicesession.FieldCompletedAt, field.TypeTime, value)
	}
	if psuo.mutation.CompletedAtCleared() {
		_spec.ClearField(practicesession.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := psuo.mutation.TotalTimeSpentMs(); ok {
		_spec.SetField(practicesession.FieldTotalTimeSpentMs, field.TypeInt64, value)
	}
	if value, ok := psuo.mutation.AddedTotalTimeSpentMs(); ok {
		_spec.AddField(practicesession.FieldTotalTimeSpentMs, field.TypeInt64, value)
	}
	if value, ok := psuo.mutation.Results(); ok {
		_spec.SetField(practicesession.FieldResults, field.TypeJSON, value)
	}
	if psuo.mutation.ResultsCleared() {
		_spec.ClearField(practicesession.FieldResults, field.TypeJSON)
	}
	if value, ok := psuo.mutation.UpdatedAt(); ok {
		_spec.SetField(practicesession.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &PracticeSession{config: psuo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, psuo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{practicesession.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	psuo.mutation.done = true
	return _node, nil
}
