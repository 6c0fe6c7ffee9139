// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/eslsoft/drillnet/internal/entity"
	"github.com/eslsoft/drillnet/internal/infrastructure/database/ent/practicesession"
)

// PracticeSessionCreate is the builder for creating a PracticeSession entity.
type PracticeSessionCreate struct {
	config
	mutation *PracticeSessionMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (psc *PracticeSessionCreate) SetUserID(i int64) *PracticeSessionCreate {
	psc.mutation.SetUserID(i)
	return psc
}

// SetTopicID sets the "topic_id" field.
func (psc *PracticeSessionCreate) SetTopicID(i int64) *PracticeSessionCreate {
	psc.mutation.SetTopicID(i)
	return psc
}

// SetNillableTopicID sets the "topic_id" field if the given value is not nil.
func (psc *PracticeSessionCreate) SetNillableTopicID(i *int64) *PracticeSessionCreate {
	if i != nil {
		psc.SetTopicID(*i)
	}
	return psc
}

// SetLearningPaths sets the "learning_paths" field.
func (psc *PracticeSessionCreate) SetLearningPaths(i []int64) *PracticeSessionCreate {
	psc.mutation.SetLearningPaths(i)
	return psc
}

// SetTargetCount sets the "target_count" field.
func (psc *PracticeSessionCreate) SetTargetCount(i int32) *PracticeSessionCreate {
	psc.mutation.SetTargetCount(i)
	return psc
}

// SetIncludeReview sets the "include_review" field.
func (psc *PracticeSessionCreate) SetIncludeReview(b bool) *PracticeSessionCreate {
	psc.mutation.SetIncludeReview(b)
	return psc
}

// SetNillableIncludeReview sets the "include_review" field if the given value is not nil.
func (psc *PracticeSessionCreate) SetNillableIncludeReview(b *bool) *PracticeSessionCreate {
	if b != nil {
		psc.SetIncludeReview(*b)
	}
	return psc
}

// SetDifficultyFilter sets the "difficulty_filter" field.
func (psc *PracticeSessionCreate) SetDifficultyFilter(i int32) *PracticeSessionCreate {
	psc.mutation.SetDifficultyFilter(i)
	return psc
}

// SetNillableDifficultyFilter sets the "difficulty_filter" field if the given value is not nil.
func (psc *PracticeSessionCreate) SetNillableDifficultyFilter(i *int32) *PracticeSessionCreate {
	if i != nil {
		psc.SetDifficultyFilter(*i)
	}
	return psc
}

// SetTasks sets the "tasks" field.
func (psc *PracticeSessionCreate) SetTasks(i []int64) *PracticeSessionCreate {
	psc.mutation.SetTasks(i)
	return psc
}

// SetCompletedCount sets the "completed_count" field.
func (psc *PracticeSessionCreate) SetCompletedCount(i int32) *PracticeSessionCreate {
	psc.mutation.SetCompletedCount(i)
	return psc
}

// SetNillableCompletedCount sets the "completed_count" field if the given value is not nil.
func (psc *PracticeSessionCreate) SetNillableCompletedCount(i *int32) *PracticeSessionCreate {
	if i != nil {
		psc.SetCompletedCount(*i)
	}
	return psc
}

// SetCorrectCount sets the "correct_count" field.
func (psc *PracticeSessionCreate) SetCorrectCount(i int32) *PracticeSessionCreate {
	psc.mutation.SetCorrectCount(i)
	return psc
}

// SetNillableCorrectCount sets the "correct_count" field if the given value is not nil.
func (psc *PracticeSessionCreate) SetNillableCorrectCount(i *int32) *PracticeSessionCreate {
	if i != nil {
		psc.SetCorrectCount(*i)
	}
	return psc
}

// SetStatus sets the "status" field.
func (psc *PracticeSessionCreate) SetStatus(s string) *PracticeSessionCreate {
	psc.mutation.SetStatus(s)
	return psc
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (psc *PracticeSessionCreate) SetNillableStatus(s *string) *PracticeSessionCreate {
	if s != nil {
		psc.SetStatus(*s)
	}
	return psc
}

// SetStartedAt sets the "started_at" field.
func (psc *PracticeSessionCreate) SetStartedAt(t time.Time) *PracticeSessionCreate {
	psc.mutation.SetStartedAt(t)
	return psc
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (psc *PracticeSessionCreate) SetNillableStartedAt(t *time.Time) *PracticeSessionCreate {
	if t != nil {
		psc.SetStartedAt(*t)
	}
	return psc
}

// SetCompletedAt sets the "completed_at" field.
func (psc *PracticeSessionCreate) SetCompletedAt(t time.Time) *PracticeSessionCreate {
	psc.mutation.SetCompletedAt(t)
	return psc
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (psc *PracticeSessionCreate) SetNillableCompletedAt(t *time.Time) *PracticeSessionCreate {
	if t != nil {
		psc.SetCompletedAt(*t)
	}
	return psc
}

// SetTotalTimeSpentMs sets the "total_time_spent_ms" field.
func (psc *PracticeSessionCreate) SetTotalTimeSpentMs(i int64) *PracticeSessionCreate {
	psc.mutation.SetTotalTimeSpentMs(i)
	return psc
}

// SetNillableTotalTimeSpentMs sets the "total_time_spent_ms" field if the given value is not nil.
func (psc *PracticeSessionCreate) SetNillableTotalTimeSpentMs(i *int64) *PracticeSessionCreate {
	if i != nil {
		psc.SetTotalTimeSpentMs(*i)
	}
	return psc
}

// SetResults sets the "results" field.
func (psc *PracticeSessionCreate) SetResults(er *entity.SessionResults) *PracticeSessionCreate {
	psc.mutation.SetResults(er)
	return psc
}

// SetCreatedAt sets the "created_at" field.
func (psc *PracticeSessionCreate) SetCreatedAt(t time.Time) *PracticeSessionCreate {
	psc.mutation.SetCreatedAt(t)
	return psc
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (psc *PracticeSessionCreate) SetNillableCreatedAt(t *time.Time) *PracticeSessionCreate {
	if t != nil {
		psc.SetCreatedAt(*t)
	}
	return psc
}

// SetUpdatedAt sets the "updated_at" field.
func (psc *PracticeSessionCreate) SetUpdatedAt(t time.Time) *PracticeSessionCreate {
	psc.mutation.SetUpdatedAt(t)
	return psc
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (psc *PracticeSessionCreate) SetNillableUpdatedAt(t *time.Time) *PracticeSessionCreate {
	if t != nil {
		psc.SetUpdatedAt(*t)
	}
	return psc
}

// Mutation returns the PracticeSessionMutation object of the builder.
func (psc *PracticeSessionCreate) Mutation() *PracticeSessionMutation {
	return psc.mutation
}

// Save creates the PracticeSession in the database.
func (psc *PracticeSessionCreate) Save(ctx context.Context) (*PracticeSession, error) {
	psc.defaults()
	return withHooks(ctx, psc.sqlSave, psc.mutation, psc.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (psc *PracticeSessionCreate) SaveX(ctx context.Context) *PracticeSession {
	v, err := psc.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (psc *PracticeSessionCreate) Exec(ctx context.Context) error {
	_, err := psc.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (psc *PracticeSessionCreate) ExecX(ctx context.Context) {
	if err := psc.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (psc *PracticeSessionCreate) defaults() {
	if _, ok := psc.mutation.TopicID(); !ok {
		v := practicesession.DefaultTopicID
		psc.mutation.SetTopicID(v)
	}
	if _, ok := psc.mutation.LearningPaths(); !ok {
		v := practicesession.DefaultLearningPaths
		psc.mutation.SetLearningPaths(v)
	}
	if _, ok := psc.mutation.IncludeReview(); !ok {
		v := practicesession.DefaultIncludeReview
		psc.mutation.SetIncludeReview(v)
	}
	if _, ok := psc.mutation.Tasks(); !ok {
		v := practicesession.DefaultTasks
		psc.mutation.SetTasks(v)
	}
	if _, ok := psc.mutation.CompletedCount(); !ok {
		v := practicesession.DefaultCompletedCount
		psc.mutation.SetCompletedCount(v)
	}
	if _, ok := psc.mutation.CorrectCount(); !ok {
		v := practicesession.DefaultCorrectCount
		psc.mutation.SetCorrectCount(v)
	}
	if _, ok := psc.mutation.Status(); !ok {
		v := practicesession.DefaultStatus
		psc.mutation.SetStatus(v)
	}
	if _, ok := psc.mutation.TotalTimeSpentMs(); !ok {
		v := practicesession.DefaultTotalTimeSpentMs
		psc.mutation.SetTotalTimeSpentMs(v)
	}
	if _, ok := psc.mutation.CreatedAt(); !ok {
		v := practicesession.DefaultCreatedAt()
		psc.mutation.SetCreatedAt(v)
	}
	if _, ok := psc.mutation.UpdatedAt(); !ok {
		v := practicesession.DefaultUpdatedAt()
		psc.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (psc *PracticeSessionCreate) check() error {
	if _, ok := psc.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "PracticeSession.user_id"`)}
	}
	if _, ok := psc.mutation.TopicID(); !ok {
		return &ValidationError{Name: "topic_id", err: errors.New(`ent: missing required field "PracticeSession.topic_id"`)}
	}
	if _, ok := psc.mutation.LearningPaths(); !ok {
		return &ValidationError{Name: "learning_paths", err: errors.New(`ent: missing required field "PracticeSession.learning_paths"`)}
	}
	if _, ok := psc.mutation.TargetCount(); !ok {
		return &ValidationError{Name: "target_count", err: errors.New(`ent: missing required field "PracticeSession.target_count"`)}
	}
	if _, ok := psc.mutation.IncludeReview(); !ok {
		return &ValidationError{Name: "include_review", err: errors.New(`ent: missing required field "PracticeSession.include_review"`)}
	}
	if _, ok := psc.mutation.Tasks(); !ok {
		return &ValidationError{Name: "tasks", err: errors.New(`ent: missing required field "PracticeSession.tasks"`)}
	}
	if _, ok := psc.mutation.CompletedCount(); !ok {
		return &ValidationError{Name: "completed_count", err: errors.New(`ent: missing required field "PracticeSession.completed_count"`)}
	}
	if _, ok := psc.mutation.CorrectCount(); !ok {
		return &ValidationError{Name: "correct_count", err: errors.New(`ent: missing required field "PracticeSession.correct_count"`)}
	}
	if _, ok := psc.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "PracticeSession.status"`)}
	}
	if _, ok := psc.mutation.TotalTimeSpentMs(); !ok {
		return &ValidationError{Name: "total_time_spent_ms", err: errors.New(`ent: missing required field "PracticeSession.total_time_spent_ms"`)}
	}
	if _, ok := psc.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "PracticeSession.created_at"`)}
	}
	if _, ok := psc.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "PracticeSession.updated_at"`)}
	}
	return nil
}

func (psc *PracticeSessionCreate) sqlSave(ctx context.Context) (*PracticeSession, error) {
	if err := psc.check(); err != nil {
		return nil, err
	}
	_node, _spec := psc.createSpec()
	if err := sqlgraph.CreateNode(ctx, psc.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	psc.mutation.id = &_node.ID
	psc.mutation.done = true
	return _node, nil
}

func (psc *PracticeSessionCreate) createSpec() (*PracticeSession, *sqlgraph.CreateSpec) {
	var (
		_node = &PracticeSession{config: psc.config}
		_spec = sqlgraph.NewCreateSpec(practicesession.Table, sqlgraph.NewFieldSpec(practicesession.FieldID, field.TypeInt))
	)
	if value, ok := psc.mutation.UserID(); ok {
		_spec.SetField(practicesession.FieldUserID, field.TypeInt64, value)
		_node.UserID = value
	}
	if value, ok := psc.mutation.TopicID(); ok {
		_spec.SetField(practicesession.FieldTopicID, field.TypeInt64, value)
		_node.TopicID = value
	}
	if value, ok := psc.mutation.LearningPaths(); ok {
		_spec.SetField(practicesession.FieldLearningPaths, field.TypeJSON, value)
		_node.LearningPaths = value
	}
	if value, ok := psc.mutation.TargetCount(); ok {
		_spec.SetField(practicesession.FieldTargetCount, field.TypeInt32, value)
		_node.TargetCount = value
	}
	if value, ok := psc.mutation.IncludeReview(); ok {
		_spec.SetField(practicesession.FieldIncludeReview, field.TypeBool, value)
		_node.IncludeReview = value
	}
	if value, ok := psc.mutation.DifficultyFilter(); ok {
		_spec.SetField(practicesession.FieldDifficultyFilter, field.TypeInt32, value)
		_node.DifficultyFilter = &value
	}
	if value, ok := psc.mutation.Tasks(); ok {
		_spec.SetField(practicesession.FieldTasks, field.TypeJSON, value)
		_node.Tasks = value
	}
	if value, ok := psc.mutation.CompletedCount(); ok {
		_spec.SetField(practicesession.FieldCompletedCount, field.TypeInt32, value)
		_node.CompletedCount = value
	}
	if value, ok := psc.mutation.CorrectCount(); ok {
		_spec.SetField(practicesession.FieldCorrectCount, field.TypeInt32, value)
		_node.CorrectCount = value
	}
	if value, ok := psc.mutation.Status(); ok {
		_spec.SetField(practicesession.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := psc.mutation.StartedAt(); ok {
		_spec.SetField(practicesession.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = &value
	}
	if value, ok := psc.mutation.CompletedAt(); ok {
		_spec.SetField(practicesession.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if value, ok := psc.mutation.TotalTimeSpentMs(); ok {
		_spec.SetField(practicesession.FieldTotalTimeSpentMs, field.TypeInt64, value)
		_node.TotalTimeSpentMs = value
	}
	if value, ok := psc.mutation.Results(); ok {
		_spec.SetField(practicesession.FieldResults, field.TypeJSON, value)
		_node.Results = value
	}
	if value, ok := psc.mutation.CreatedAt(); ok {
		_spec.SetField(practicesession.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := psc.mutation.UpdatedAt(); ok {
		_spec.SetField(practicesession.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// PracticeSessionCreateBulk is the builder for creating many PracticeSession entities in bulk.
type PracticeSessionCreateBulk struct {
	config
	err      error
	builders []*PracticeSessionCreate
}

// Save creates the PracticeSession entities in the database.
func (pscb *PracticeSessionCreateBulk) Save(ctx context.Context) ([]*PracticeSession, error) {
	if pscb.err != nil {
		return nil, pscb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(pscb.builders))
	nodes := make([]*PracticeSession, len(pscb.builders))
	mutators := make([]Mutator, len(pscb.builders))
	for i := range pscb.builders {
		func(i int, root context.Context) {
			builder := pscb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PracticeSessionMutation)
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
					_, err = mutators[i+1].Mutate(root, pscb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, pscb.driver, spec); err != nil {
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
		if _, err := mutators[0].Mutate(ctx, pscb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (pscb *PracticeSessionCreateBulk) SaveX(ctx context.Context) []*PracticeSession {
	v, err := pscb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (pscb *PracticeSessionCreateBulk) Exec(ctx context.Context) error {
	_, err := pscb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (pscb *PracticeSessionCreateBulk) ExecX(ctx context.Context) {
	if err := pscb.Exec(ctx); err != nil {
		panic(err)
	}
}
