// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/eslsoft/drillnet/internal/infrastructure/database/ent/answerrecord"
)

// AnswerRecordCreate is the builder for creating a AnswerRecord entity.
type AnswerRecordCreate struct {
	config
	mutation *AnswerRecordMutation
	hooks    []Hook
}

// SetSessionID sets the "session_id" field.
func (arc *AnswerRecordCreate) SetSessionID(i int64) *AnswerRecordCreate {
	arc.mutation.SetSessionID(i)
	return arc
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (arc *AnswerRecordCreate) SetNillableSessionID(i *int64) *AnswerRecordCreate {
	if i != nil {
		arc.SetSessionID(*i)
	}
	return arc
}

// SetTaskID sets the "task_id" field.
func (arc *AnswerRecordCreate) SetTaskID(i int64) *AnswerRecordCreate {
	arc.mutation.SetTaskID(i)
	return arc
}

// SetUserID sets the "user_id" field.
func (arc *AnswerRecordCreate) SetUserID(i int64) *AnswerRecordCreate {
	arc.mutation.SetUserID(i)
	return arc
}

// SetUserAnswer sets the "user_answer" field.
func (arc *AnswerRecordCreate) SetUserAnswer(s string) *AnswerRecordCreate {
	arc.mutation.SetUserAnswer(s)
	return arc
}

// SetNillableUserAnswer sets the "user_answer" field if the given value is not nil.
func (arc *AnswerRecordCreate) SetNillableUserAnswer(s *string) *AnswerRecordCreate {
	if s != nil {
		arc.SetUserAnswer(*s)
	}
	return arc
}

// SetIsCorrect sets the "is_correct" field.
func (arc *AnswerRecordCreate) SetIsCorrect(b bool) *AnswerRecordCreate {
	arc.mutation.SetIsCorrect(b)
	return arc
}

// SetGrade sets the "grade" field.
func (arc *AnswerRecordCreate) SetGrade(i int32) *AnswerRecordCreate {
	arc.mutation.SetGrade(i)
	return arc
}

// SetTimeSpentMs sets the "time_spent_ms" field.
func (arc *AnswerRecordCreate) SetTimeSpentMs(i int64) *AnswerRecordCreate {
	arc.mutation.SetTimeSpentMs(i)
	return arc
}

// SetNillableTimeSpentMs sets the "time_spent_ms" field if the given value is not nil.
func (arc *AnswerRecordCreate) SetNillableTimeSpentMs(i *int64) *AnswerRecordCreate {
	if i != nil {
		arc.SetTimeSpentMs(*i)
	}
	return arc
}

// SetConfidence sets the "confidence" field.
func (arc *AnswerRecordCreate) SetConfidence(i int32) *AnswerRecordCreate {
	arc.mutation.SetConfidence(i)
	return arc
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (arc *AnswerRecordCreate) SetNillableConfidence(i *int32) *AnswerRecordCreate {
	if i != nil {
		arc.SetConfidence(*i)
	}
	return arc
}

// SetAttemptNumber sets the "attempt_number" field.
func (arc *AnswerRecordCreate) SetAttemptNumber(i int32) *AnswerRecordCreate {
	arc.mutation.SetAttemptNumber(i)
	return arc
}

// SetNillableAttemptNumber sets the "attempt_number" field if the given value is not nil.
func (arc *AnswerRecordCreate) SetNillableAttemptNumber(i *int32) *AnswerRecordCreate {
	if i != nil {
		arc.SetAttemptNumber(*i)
	}
	return arc
}

// SetAnsweredAt sets the "answered_at" field.
func (arc *AnswerRecordCreate) SetAnsweredAt(t time.Time) *AnswerRecordCreate {
	arc.mutation.SetAnsweredAt(t)
	return arc
}

// SetCreatedAt sets the "created_at" field.
func (arc *AnswerRecordCreate) SetCreatedAt(t time.Time) *AnswerRecordCreate {
	arc.mutation.SetCreatedAt(t)
	return arc
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (arc *AnswerRecordCreate) SetNillableCreatedAt(t *time.Time) *AnswerRecordCreate {
	if t != nil {
		arc.SetCreatedAt(*t)
	}
	return arc
}

// Mutation returns the AnswerRecordMutation object of the builder.
func (arc *AnswerRecordCreate) Mutation() *AnswerRecordMutation {
	return arc.mutation
}

// Save creates the AnswerRecord in the database.
func (arc *AnswerRecordCreate) Save(ctx context.Context) (*AnswerRecord, error) {
	arc.defaults()
	return withHooks(ctx, arc.sqlSave, arc.mutation, arc.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (arc *AnswerRecordCreate) SaveX(ctx context.Context) *AnswerRecord {
	v, err := arc.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (arc *AnswerRecordCreate) Exec(ctx context.Context) error {
	_, err := arc.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (arc *AnswerRecordCreate) ExecX(ctx context.Context) {
	if err := arc.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (arc *AnswerRecordCreate) defaults() {
	if _, ok := arc.mutation.SessionID(); !ok {
		v := answerrecord.DefaultSessionID
		arc.mutation.SetSessionID(v)
	}
	if _, ok := arc.mutation.UserAnswer(); !ok {
		v := answerrecord.DefaultUserAnswer
		arc.mutation.SetUserAnswer(v)
	}
	if _, ok := arc.mutation.TimeSpentMs(); !ok {
		v := answerrecord.DefaultTimeSpentMs
		arc.mutation.SetTimeSpentMs(v)
	}
	if _, ok := arc.mutation.Confidence(); !ok {
		v := answerrecord.DefaultConfidence
		arc.mutation.SetConfidence(v)
	}
	if _, ok := arc.mutation.AttemptNumber(); !ok {
		v := answerrecord.DefaultAttemptNumber
		arc.mutation.SetAttemptNumber(v)
	}
	if _, ok := arc.mutation.CreatedAt(); !ok {
		v := answerrecord.DefaultCreatedAt()
		arc.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (arc *AnswerRecordCreate) check() error {
	if _, ok := arc.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "AnswerRecord.session_id"`)}
	}
	if _, ok := arc.mutation.TaskID(); !ok {
		return &ValidationError{Name: "task_id", err: errors.New(`ent: missing required field "AnswerRecord.task_id"`)}
	}
	if _, ok := arc.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "AnswerRecord.user_id"`)}
	}
	if _, ok := arc.mutation.UserAnswer(); !ok {
		return &ValidationError{Name: "user_answer", err: errors.New(`ent: missing required field "AnswerRecord.user_answer"`)}
	}
	if _, ok := arc.mutation.IsCorrect(); !ok {
		return &ValidationError{Name: "is_correct", err: errors.New(`ent: missing required field "AnswerRecord.is_correct"`)}
	}
	if _, ok := arc.mutation.Grade(); !ok {
		return &ValidationError{Name: "grade", err: errors.New(`ent: missing required field "AnswerRecord.grade"`)}
	}
	if _, ok := arc.mutation.TimeSpentMs(); !ok {
		return &ValidationError{Name: "time_spent_ms", err: errors.New(`ent: missing required field "AnswerRecord.time_spent_ms"`)}
	}
	if _, ok := arc.mutation.Confidence(); !ok {
		return &ValidationError{Name: "confidence", err: errors.New(`ent: missing required field "AnswerRecord.confidence"`)}
	}
	if _, ok := arc.mutation.AttemptNumber(); !ok {
		return &ValidationError{Name: "attempt_number", err: errors.New(`ent: missing required field "AnswerRecord.attempt_number"`)}
	}
	if _, ok := arc.mutation.AnsweredAt(); !ok {
		return &ValidationError{Name: "answered_at", err: errors.New(`ent: missing required field "AnswerRecord.answered_at"`)}
	}
	if _, ok := arc.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "AnswerRecord.created_at"`)}
	}
	return nil
}

func (arc *AnswerRecordCreate) sqlSave(ctx context.Context) (*AnswerRecord, error) {
	if err := arc.check(); err != nil {
		return nil, err
	}
	_node, _spec := arc.createSpec()
	if err := sqlgraph.CreateNode(ctx, arc.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	arc.mutation.id = &_node.ID
	arc.mutation.done = true
	return _node, nil
}

func (arc *AnswerRecordCreate) createSpec() (*AnswerRecord, *sqlgraph.CreateSpec) {
	var (
		_node = &AnswerRecord{config: arc.config}
		_spec = sqlgraph.NewCreateSpec(answerrecord.Table, sqlgraph.NewFieldSpec(answerrecord.FieldID, field.TypeInt))
	)
	if value, ok := arc.mutation.SessionID(); ok {
		_spec.SetField(answerrecord.FieldSessionID, field.TypeInt64, value)
		_node.SessionID = value
	}
	if value, ok := arc.mutation.TaskID(); ok {
		_spec.SetField(answerrecord.FieldTaskID, field.TypeInt64, value)
		_node.TaskID = value
	}
	if value, ok := arc.mutation.UserID(); ok {
		_spec.SetField(answerrecord.FieldUserID, field.TypeInt64, value)
		_node.UserID = value
	}
	if value, ok := arc.mutation.UserAnswer(); ok {
		_spec.SetField(answerrecord.FieldUserAnswer, field.TypeString, value)
		_node.UserAnswer = value
	}
	if value, ok := arc.mutation.IsCorrect(); ok {
		_spec.SetField(answerrecord.FieldIsCorrect, field.TypeBool, value)
		_node.IsCorrect = value
	}
	if value, ok := arc.mutation.Grade(); ok {
		_spec.SetField(answerrecord.FieldGrade, field.TypeInt32, value)
		_node.Grade = value
	}
	if value, ok := arc.mutation.TimeSpentMs(); ok {
		_spec.SetField(answerrecord.FieldTimeSpentMs, field.TypeInt64, value)
		_node.TimeSpentMs = value
	}
	if value, ok := arc.mutation.Confidence(); ok {
		_spec.SetField(answerrecord.FieldConfidence, field.TypeInt32, value)
		_node.Confidence = value
	}
	if value, ok := arc.mutation.AttemptNumber(); ok {
		_spec.SetField(answerrecord.FieldAttemptNumber, field.TypeInt32, value)
		_node.AttemptNumber = value
	}
	if value, ok := arc.mutation.AnsweredAt(); ok {
		_spec.SetField(answerrecord.FieldAnsweredAt, field.TypeTime, value)
		_node.AnsweredAt = value
	}
	if value, ok := arc.mutation.CreatedAt(); ok {
		_spec.SetField(answerrecord.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// AnswerRecordCreateBulk is the builder for creating many AnswerRecord entities in bulk.
type AnswerRecordCreateBulk struct {
	config
	err      error
	builders []*AnswerRecordCreate
}

// Save creates the AnswerRecord entities in the database.
func (arcb *AnswerRecordCreateBulk) Save(ctx context.Context) ([]*AnswerRecord, error) {
	if arcb.err != nil {
		return nil, arcb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(arcb.builders))
	nodes := make([]*AnswerRecord, len(arcb.builders))
	mutators := make([]Mutator, len(arcb.builders))
	for i := range arcb.builders {
		func(i int, root context.Context) {
			builder := arcb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AnswerRecordMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, arcb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, arcb.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, arcb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (arcb *AnswerRecordCreateBulk) SaveX(ctx context.Context) []*AnswerRecord {
	v, err := arcb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (arcb *AnswerRecordCreateBulk) Exec(ctx context.Context) error {
	_, err := arcb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (arcb *AnswerRecordCreateBulk) ExecX(ctx context.Context) {
	if err := arcb.Exec(ctx); err != nil {
		panic(err)
	}
}
