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
	"github.com/eslsoft/drillnet/internal/infrastructure/database/ent/answerrecord"
	"github.com/eslsoft/drillnet/internal/infrastructure/database/ent/predicate"
)

// AnswerRecordUpdate is the builder for updating AnswerRecord entities.
type AnswerRecordUpdate struct {
	config
	hooks    []Hook
	mutation *AnswerRecordMutation
}

// Where appends a list predicates to the AnswerRecordUpdate builder.
func (aru *AnswerRecordUpdate) Where(ps ...predicate.AnswerRecord) *AnswerRecordUpdate {
	aru.mutation.Where(ps...)
	return aru
}

// SetSessionID sets the "session_id" field.
func (aru *AnswerRecordUpdate) SetSessionID(i int64) *AnswerRecordUpdate {
	aru.mutation.ResetSessionID()
	aru.mutation.SetSessionID(i)
	return aru
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (aru *AnswerRecordUpdate) SetNillableSessionID(i *int64) *AnswerRecordUpdate {
	if i != nil {
		aru.SetSessionID(*i)
	}
	return aru
}

// AddSessionID adds i to the "session_id" field.
func (aru *AnswerRecordUpdate) AddSessionID(i int64) *AnswerRecordUpdate {
	aru.mutation.AddSessionID(i)
	return aru
}

// SetTaskID sets the "task_id" field.
func (aru *AnswerRecordUpdate) SetTaskID(i int64) *AnswerRecordUpdate {
	aru.mutation.ResetTaskID()
	aru.mutation.SetTaskID(i)
	return aru
}

// SetNillableTaskID sets the "task_id" field if the given value is not nil.
func (aru *AnswerRecordUpdate) SetNillableTaskID(i *int64) *AnswerRecordUpdate {
	if i != nil {
		aru.SetTaskID(*i)
	}
	return aru
}

// AddTaskID adds i to the "task_id" field.
func (aru *AnswerRecordUpdate) AddTaskID(i int64) *AnswerRecordUpdate {
	aru.mutation.AddTaskID(i)
	return aru
}

// SetUserID sets the "user_id" field.
func (aru *AnswerRecordUpdate) SetUserID(i int64) *AnswerRecordUpdate {
	aru.mutation.ResetUserID()
	aru.mutation.SetUserID(i)
	return aru
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (aru *AnswerRecordUpdate) SetNillableUserID(i *int64) *AnswerRecordUpdate {
	if i != nil {
		aru.SetUserID(*i)
	}
	return aru
}

// AddUserID adds i to the "user_id" field.
func (aru *AnswerRecordUpdate) AddUserID(i int64) *AnswerRecordUpdate {
	aru.mutation.AddUserID(i)
	return aru
}

// SetUserAnswer sets the "user_answer" field.
func (aru *AnswerRecordUpdate) SetUserAnswer(s string) *AnswerRecordUpdate {
	aru.mutation.SetUserAnswer(s)
	return aru
}

// SetNillableUserAnswer sets the "user_answer" field if the given value is not nil.
func (aru *AnswerRecordUpdate) SetNillableUserAnswer(s *string) *AnswerRecordUpdate {
	if s != nil {
		aru.SetUserAnswer(*s)
	}
	return aru
}

// SetIsCorrect sets the "is_correct" field.
func (aru *AnswerRecordUpdate) SetIsCorrect(b bool) *AnswerRecordUpdate {
	aru.mutation.SetIsCorrect(b)
	return aru
}

// SetNillableIsCorrect sets the "is_correct" field if the given value is not nil.
func (aru *AnswerRecordUpdate) SetNillableIsCorrect(b *bool) *AnswerRecordUpdate {
	if b != nil {
		aru.SetIsCorrect(*b)
	}
	return aru
}

// SetGrade sets the "grade" field.
func (aru *AnswerRecordUpdate) SetGrade(i int32) *AnswerRecordUpdate {
	aru.mutation.ResetGrade()
	aru.mutation.SetGrade(i)
	return aru
}

// SetNillableGrade sets the "grade" field if the given value is not nil.
func (aru *AnswerRecordUpdate) SetNillableGrade(i *int32) *AnswerRecordUpdate {
	if i != nil {
		aru.SetGrade(*i)
	}
	return aru
}

// AddGrade adds i to the "grade" field.
func (aru *AnswerRecordUpdate) AddGrade(i int32) *AnswerRecordUpdate {
	aru.mutation.AddGrade(i)
	return aru
}

// SetTimeSpentMs sets the "time_spent_ms" field.
func (aru *AnswerRecordUpdate) SetTimeSpentMs(i int64) *AnswerRecordUpdate {
	aru.mutation.ResetTimeSpentMs()
	aru.mutation.SetTimeSpentMs(i)
	return aru
}

// SetNillableTimeSpentMs sets the "time_spent_ms" field if the given value is not nil.
func (aru *AnswerRecordUpdate) SetNillableTimeSpentMs(i *int64) *AnswerRecordUpdate {
	if i != nil {
		aru.SetTimeSpentMs(*i)
	}
	return aru
}

// AddTimeSpentMs adds i to the "time_spent_ms" field.
func (aru *AnswerRecordUpdate) AddTimeSpentMs(i int64) *AnswerRecordUpdate {
	aru.mutation.AddTimeSpentMs(i)
	return aru
}

// SetConfidence sets the "confidence" field.
func (aru *AnswerRecordUpdate) SetConfidence(i int32) *AnswerRecordUpdate {
	aru.mutation.ResetConfidence()
	aru.mutation.SetConfidence(i)
	return aru
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (aru *AnswerRecordUpdate) SetNillableConfidence(i *int32) *AnswerRecordUpdate {
	if i != nil {
		aru.SetConfidence(*i)
	}
	return aru
}

// AddConfidence adds i to the "confidence" field.
func (aru *AnswerRecordUpdate) AddConfidence(i int32) *AnswerRecordUpdate {
	aru.mutation.AddConfidence(i)
	return aru
}

// SetAttemptNumber sets the "attempt_number" field.
func (aru *AnswerRecordUpdate) SetAttemptNumber(i int32) *AnswerRecordUpdate {
	aru.mutation.ResetAttemptNumber()
	aru.mutation.SetAttemptNumber(i)
	return aru
}

// SetNillableAttemptNumber sets the "attempt_number" field if the given value is not nil.
func (aru *AnswerRecordUpdate) SetNillableAttemptNumber(i *int32) *AnswerRecordUpdate {
	if i != nil {
		aru.SetAttemptNumber(*i)
	}
	return aru
}

// AddAttemptNumber adds i to the "attempt_number" field.
func (aru *AnswerRecordUpdate) AddAttemptNumber(i int32) *AnswerRecordUpdate {
	aru.mutation.AddAttemptNumber(i)
	return aru
}

// SetAnsweredAt sets the "answered_at" field.
func (aru *AnswerRecordUpdate) SetAnsweredAt(t time.Time) *AnswerRecordUpdate {
	aru.mutation.SetAnsweredAt(t)
	return aru
}

// SetNillableAnsweredAt sets the "answered_at" field if the given value is not nil.
func (aru *AnswerRecordUpdate) SetNillableAnsweredAt(t *time.Time) *AnswerRecordUpdate {
	if t != nil {
		aru.SetAnsweredAt(*t)
	}
	return aru
}

// Mutation returns the AnswerRecordMutation object of the builder.
func (aru *AnswerRecordUpdate) Mutation() *AnswerRecordMutation {
	return aru.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (aru *AnswerRecordUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, aru.sqlSave, aru.mutation, aru.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (aru *AnswerRecordUpdate) SaveX(ctx context.Context) int {
	affected, err := aru.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (aru *AnswerRecordUpdate) Exec(ctx context.Context) error {
	_, err := aru.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (aru *AnswerRecordUpdate) ExecX(ctx context.Context) {
	if err := aru.Exec(ctx); err != nil {
		panic(err)
	}
}

func (aru *AnswerRecordUpdate) sqlSave(ctx context.Context) (n int, err error) {
	_spec := sqlgraph.NewUpdateSpec(answerrecord.Table, answerrecord.Columns, sqlgraph.NewFieldSpec(answerrecord.FieldID, field.TypeInt))
	if ps := aru.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := aru.mutation.SessionID(); ok {
		_spec.SetField(answerrecord.FieldSessionID, field.TypeInt64, value)
	}
	if value, ok := aru.mutation.AddedSessionID(); ok {
		_spec.AddField(answerrecord.FieldSessionID, field.TypeInt64, value)
	}
	if value, ok := aru.mutation.TaskID(); ok {
		_spec.SetField(answerrecord.FieldTaskID, field.TypeInt64, value)
	}
	if value, ok := aru.mutation.AddedTaskID(); ok {
		_spec.AddField(answerrecord.FieldTaskID, field.TypeInt64, value)
	}
	if value, ok := aru.mutation.UserID(); ok {
		_spec.SetField(answerrecord.FieldUserID, field.TypeInt64, value)
	}
	if value, ok := aru.mutation.AddedUserID(); ok {
		_spec.AddField(answerrecord.FieldUserID, field.TypeInt64, value)
	}
	if value, ok := aru.mutation.UserAnswer(); ok {
		_spec.SetField(answerrecord.FieldUserAnswer, field.TypeString, value)
	}
	if value, ok := aru.mutation.IsCorrect(); ok {
		_spec.SetField(answerrecord.FieldIsCorrect, field.TypeBool, value)
	}
	if value, ok := aru.mutation.Grade(); ok {
		_spec.SetField(answerrecord.FieldGrade, field.TypeInt32, value)
	}
	if value, ok := aru.mutation.AddedGrade(); ok {
		_spec.AddField(answerrecord.FieldGrade, field.TypeInt32, value)
	}
	if value, ok := aru.mutation.TimeSpentMs(); ok {
		_spec.SetField(answerrecord.FieldTimeSpentMs, field.TypeInt64, value)
	}
	if value, ok := aru.mutation.AddedTimeSpentMs(); ok {
		_spec.AddField(answerrecord.FieldTimeSpentMs, field.TypeInt64, value)
	}
	if value, ok := aru.mutation.Confidence(); ok {
		_spec.SetField(answerrecord.FieldConfidence, field.TypeInt32, value)
	}
	if value, ok := aru.mutation.AddedConfidence(); ok {
		_spec.AddField(answerrecord.FieldConfidence, field.TypeInt32, value)
	}
	if value, ok := aru.mutation.AttemptNumber(); ok {
		_spec.SetField(answerrecord.FieldAttemptNumber, field.TypeInt32, value)
	}
	if value, ok := aru.mutation.AddedAttemptNumber(); ok {
		_spec.AddField(answerrecord.FieldAttemptNumber, field.TypeInt32, value)
	}
	if value, ok := aru.mutation.AnsweredAt(); ok {
		_spec.SetField(answerrecord.FieldAnsweredAt, field.TypeTime, value)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, aru.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{answerrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	aru.mutation.done = true
	return n, nil
}

// AnswerRecordUpdateOne is the builder for updating a single AnswerRecord entity.
type AnswerRecordUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AnswerRecordMutation
}

// SetSessionID sets the "session_id" field.
func (aruo *AnswerRecordUpdateOne) SetSessionID(i int64) *AnswerRecordUpdateOne {
	aruo.mutation.ResetSessionID()
	aruo.mutation.SetSessionID(i)
	return aruo
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (aruo *AnswerRecordUpdateOne) SetNillableSessionID(i *int64) *AnswerRecordUpdateOne {
	if i != nil {
		aruo.SetSessionID(*i)
	}
	return aruo
}

// AddSessionID adds i to the "session_id" field.
func (aruo *AnswerRecordUpdateOne) AddSessionID(i int64) *AnswerRecordUpdateOne {
	aruo.mutation.AddSessionID(i)
	return aruo
}

// SetTaskID sets the "task_id" field.
func (aruo *AnswerRecordUpdateOne) SetTaskID(i int64) *AnswerRecordUpdateOne {
	aruo.mutation.ResetTaskID()
	aruo.mutation.SetTaskID(i)
	return aruo
}

// SetNillableTaskID sets the "task_id" field if the given value is not nil.
func (aruo *AnswerRecordUpdateOne) SetNillableTaskID(i *int64) *AnswerRecordUpdateOne {
	if i != nil {
		aruo.SetTaskID(*i)
	}
	return aruo
}

// AddTaskID adds i to the "task_id" field.
func (aruo *AnswerRecordUpdateOne) AddTaskID(i int64) *AnswerRecordUpdateOne {
	aruo.mutation.AddTaskID(i)
	return aruo
}

// SetUserID sets the "user_id" field.
func (aruo *AnswerRecordUpdateOne) SetUserID(i int64) *AnswerRecordUpdateOne {
	aruo.mutation.ResetUserID()
	aruo.mutation.SetUserID(i)
	return aruo
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (aruo *AnswerRecordUpdateOne) SetNillableUserID(i *int64) *AnswerRecordUpdateOne {
	if i != nil {
		aruo.SetUserID(*i)
	}
	return aruo
}

// AddUserID adds i to the "user_id" field.
func (aruo *AnswerRecordUpdateOne) AddUserID(i int64) *AnswerRecordUpdateOne {
	aruo.mutation.AddUserID(i)
	return aruo
}

// SetUserAnswer sets the "user_answer" field.
func (aruo *AnswerRecordUpdateOne) SetUserAnswer(s string) *AnswerRecordUpdateOne {
	aruo.mutation.SetUserAnswer(s)
	return aruo
}

// SetNillableUserAnswer sets the "user_answer" field if the given value is not nil.
func (aruo *AnswerRecordUpdateOne) SetNillableUserAnswer(s *string) *AnswerRecordUpdateOne {
	if s != nil {
		aruo.SetUserAnswer(*s)
	}
	return aruo
}

// SetIsCorrect sets the "is_correct" field.
func (aruo *AnswerRecordUpdateOne) SetIsCorrect(b bool) *AnswerRecordUpdateOne {
	aruo.mutation.SetIsCorrect(b)
	return aruo
}

// SetNillableIsCorrect sets the "is_correct" field if the given value is not nil.
func (aruo *AnswerRecordUpdateOne) SetNillableIsCorrect(b *bool) *AnswerRecordUpdateOne {
	if b != nil {
		aruo.SetIsCorrect(*b)
	}
	return aruo
}

// SetGrade sets the "grade" field.
func (aruo *AnswerRecordUpdateOne) SetGrade(i int32) *AnswerRecordUpdateOne {
	aruo.mutation.ResetGrade()
	aruo.mutation.SetGrade(i)
	return aruo
}

// SetNillableGrade sets the "grade" field if the given value is not nil.
func (aruo *AnswerRecordUpdateOne) SetNillableGrade(i *int32) *AnswerRecordUpdateOne {
	if i != nil {
		aruo.SetGrade(*i)
	}
	return aruo
}

// AddGrade adds i to the "grade" field.
func (aruo *AnswerRecordUpdateOne) AddGrade(i int32) *AnswerRecordUpdateOne {
	aruo.mutation.AddGrade(i)
	return aruo
}

// SetTimeSpentMs sets the "time_spent_ms" field.
func (aruo *AnswerRecordUpdateOne) SetTimeSpentMs(i int64) *AnswerRecordUpdateOne {
	aruo.mutation.ResetTimeSpentMs()
	aruo.mutation.SetTimeSpentMs(i)
	return aruo
}

// SetNillableTimeSpentMs sets the "time_spent_ms" field if the given value is not nil.
func (aruo *AnswerRecordUpdateOne) SetNillableTimeSpentMs(i *int64) *AnswerRecordUpdateOne {
	if i != nil {
		aruo.SetTimeSpentMs(*i)
	}
	return aruo
}

// AddTimeSpentMs adds i to the "time_spent_ms" field.
func (aruo *AnswerRecordUpdateOne) AddTimeSpentMs(i int64) *AnswerRecordUpdateOne {
	aruo.mutation.AddTimeSpentMs(i)
	return aruo
}

// SetConfidence sets the "confidence" field.
func (aruo *AnswerRecordUpdateOne) SetConfidence(i int32) *AnswerRecordUpdateOne {
	aruo.mutation.ResetConfidence()
	aruo.mutation.SetConfidence(i)
	return aruo
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (aruo *AnswerRecordUpdateOne) SetNillableConfidence(i *int32) *AnswerRecordUpdateOne {
	if i != nil {
		aruo.SetConfidence(*i)
	}
	return aruo
}

// AddConfidence adds i to the "confidence" field.
func (aruo *AnswerRecordUpdateOne) AddConfidence(i int32) *AnswerRecordUpdateOne {
	aruo.mutation.AddConfidence(i)
	return aruo
}

// SetAttemptNumber sets the "attempt_number" field.
func (aruo *AnswerRecordUpdateOne) SetAttemptNumber(i int32) *AnswerRecordUpdateOne {
	aruo.mutation.ResetAttemptNumber()
	aruo.mutation.SetAttemptNumber(i)
	return aruo
}

// SetNillableAttemptNumber sets the "attempt_number" field if the given value is not nil.
func (aruo *AnswerRecordUpdateOne) SetNillableAttemptNumber(i *int32) *AnswerRecordUpdateOne {
	if i != nil {
		aruo.SetAttemptNumber(*i)
	}
	return aruo
}

// AddAttemptNumber adds i to the "attempt_number" field.
func (aruo *AnswerRecordUpdateOne) AddAttemptNumber(i int32) *AnswerRecordUpdateOne {
	aruo.mutation.AddAttemptNumber(i)
	return aruo
}

// SetAnsweredAt sets the "answered_at" field.
func (aruo *AnswerRecordUpdateOne) SetAnsweredAt(t time.Time) *AnswerRecordUpdateOne {
	aruo.mutation.SetAnsweredAt(t)
	return aruo
}

// SetNillableAnsweredAt sets the "answered_at" field if the given value is not nil.
func (aruo *AnswerRecordUpdateOne) SetNillableAnsweredAt(t *time.Time) *AnswerRecordUpdateOne {
	if t != nil {
		aruo.SetAnsweredAt(*t)
	}
	return aruo
}

// Mutation returns the AnswerRecordMutation object of the builder.
func (aruo *AnswerRecordUpdateOne) Mutation() *AnswerRecordMutation {
	return aruo.mutation
}

// Where appends a list predicates to the AnswerRecordUpdate builder.
func (aruo *AnswerRecordUpdateOne) Where(ps ...predicate.AnswerRecord) *AnswerRecordUpdateOne {
	aruo.mutation.Where(ps...)
	return aruo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (aruo *AnswerRecordUpdateOne) Select(field string, fields ...string) *AnswerRecordUpdateOne {
	aruo.fields = append([]string{field}, fields...)
	return aruo
}

// Save executes the query and returns the updated AnswerRecord entity.
func (aruo *AnswerRecordUpdateOne) Save(ctx context.Context) (*AnswerRecord, error) {
	return withHooks(ctx, aruo.sqlSave, aruo.mutation, aruo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (aruo *AnswerRecordUpdateOne) SaveX(ctx context.Context) *AnswerRecord {
	node, err := aruo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (aruo *AnswerRecordUpdateOne) Exec(ctx context.Context) error {
	_, err := aruo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (aruo *AnswerRecordUpdateOne) ExecX(ctx context.Context) {
	if err := aruo.Exec(ctx); err != nil {
		panic(err)
	}
}

func (aruo *AnswerRecordUpdateOne) sqlSave(ctx context.Context) (_node *AnswerRecord, err error) {
	_spec := sqlgraph.NewUpdateSpec(answerrecord.Table, answerrecord.Columns, sqlgraph.NewFieldSpec(answerrecord.FieldID, field.TypeInt))
	id, ok := aruo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AnswerRecord.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := aruo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, answerrecord.FieldID)
		for _, f := range fields {
			if !answerrecord.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != answerrecord.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := aruo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := aruo.mutation.SessionID(); ok {
		_spec.SetField(answerrecord.FieldSessionID, field.TypeInt64, value)
	}
	if value, ok := aruo.mutation.AddedSessionID(); ok {
		_spec.AddField(answerrecord.FieldSessionID, field.TypeInt64, value)
	}
	if value, ok := aruo.mutation.TaskID(); ok {
		_spec.SetField(answerrecord.FieldTaskID, field.TypeInt64, value)
	}
	if value, ok := aruo.mutation.AddedTaskID(); ok {
		_spec.AddField(answerrecord.FieldTaskID, field.TypeInt64, value)
	}
	if value, ok := aruo.mutation.UserID(); ok {
		_spec.SetField(answerrecord.FieldUserID, field.TypeInt64, value)
	}
	if value, ok := aruo.mutation.AddedUserID(); ok {
		_spec.AddField(answerrecord.FieldUserID, field.TypeInt64, value)
	}
	if value, ok := aruo.mutation.UserAnswer(); ok {
		_spec.SetField(answerrecord.FieldUserAnswer, field.TypeString, value)
	}
	if value, ok := aruo.mutation.IsCorrect(); ok {
		_spec.SetField(answerrecord.FieldIsCorrect, field.TypeBool, value)
	}
	if value, ok := aruo.mutation.Grade(); ok {
		_spec.SetField(answerrecord.FieldGrade, field.TypeInt32, value)
	}
	if value, ok := aruo.mutation.AddedGrade(); ok {
		_spec.AddField(answerrecord.FieldGrade, field.TypeInt32, value)
	}
	if value, ok := aruo.mutation.TimeSpentMs(); ok {
		_spec.SetField(answerrecord.FieldTimeSpentMs, field.TypeInt64, value)
	}
	if value, ok := aruo.mutation.AddedTimeSpentMs(); ok {
		_spec.AddField(answerrecord.FieldTimeSpentMs, field.TypeInt64, value)
	}
	if value, ok := aruo.mutation.Confidence(); ok {
		_spec.SetField(answerrecord.FieldConfidence, field.TypeInt32, value)
	}
	if value, ok := aruo.mutation.AddedConfidence(); ok {
		_spec.AddField(answerrecord.FieldConfidence, field.TypeInt32, value)
	}
	if value, ok := aruo.mutation.AttemptNumber(); ok {
		_spec.SetField(answerrecord.FieldAttemptNumber, field.TypeInt32, value)
	}
	if value, ok := aruo.mutation.AddedAttemptNumber(); ok {
		_spec.AddField(answerrecord.FieldAttemptNumber, field.TypeInt32, value)
	}
	if value, ok := aruo.mutation.AnsweredAt(); ok {
		_spec.SetField(answerrecord.FieldAnsweredAt, field.TypeTime, value)
	}
	_node = &AnswerRecord{config: aruo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, aruo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{answerrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	aruo.mutation.done = true
	return _node, nil
}
