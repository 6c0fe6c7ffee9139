// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/eslsoft/drillnet/internal/infrastructure/database/ent/task"
)

// TaskCreate is the builder for creating a Task entity.
type TaskCreate struct {
	config
	mutation *TaskMutation
	hooks    []Hook
}

// SetTopicID sets the "topic_id" field.
func (tc *TaskCreate) SetTopicID(i int64) *TaskCreate {
	tc.mutation.SetTopicID(i)
	return tc
}

// SetNillableTopicID sets the "topic_id" field if the given value is not nil.
func (tc *TaskCreate) SetNillableTopicID(i *int64) *TaskCreate {
	if i != nil {
		tc.SetTopicID(*i)
	}
	return tc
}

// SetLearningPaths sets the "learning_paths" field.
func (tc *TaskCreate) SetLearningPaths(i []int64) *TaskCreate {
	tc.mutation.SetLearningPaths(i)
	return tc
}

// SetPrompt sets the "prompt" field.
func (tc *TaskCreate) SetPrompt(s string) *TaskCreate {
	tc.mutation.SetPrompt(s)
	return tc
}

// SetAnswer sets the "answer" field.
func (tc *TaskCreate) SetAnswer(s string) *TaskCreate {
	tc.mutation.SetAnswer(s)
	return tc
}

// SetLanguage sets the "language" field.
func (tc *TaskCreate) SetLanguage(s string) *TaskCreate {
	tc.mutation.SetLanguage(s)
	return tc
}

// SetNillableLanguage sets the "language" field if the given value is not nil.
func (tc *TaskCreate) SetNillableLanguage(s *string) *TaskCreate {
	if s != nil {
		tc.SetLanguage(*s)
	}
	return tc
}

// SetDifficulty sets the "difficulty" field.
func (tc *TaskCreate) SetDifficulty(i int32) *TaskCreate {
	tc.mutation.SetDifficulty(i)
	return tc
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (tc *TaskCreate) SetNillableDifficulty(i *int32) *TaskCreate {
	if i != nil {
		tc.SetDifficulty(*i)
	}
	return tc
}

// SetTags sets the "tags" field.
func (tc *TaskCreate) SetTags(s []string) *TaskCreate {
	tc.mutation.SetTags(s)
	return tc
}

// SetCreatedAt sets the "created_at" field.
func (tc *TaskCreate) SetCreatedAt(t time.Time) *TaskCreate {
	tc.mutation.SetCreatedAt(t)
	return tc
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (tc *TaskCreate) SetNillableCreatedAt(t *time.Time) *TaskCreate {
	if t != nil {
		tc.SetCreatedAt(*t)
	}
	return tc
}

// SetUpdatedAt sets the "updated_at" field.
func (tc *TaskCreate) SetUpdatedAt(t time.Time) *TaskCreate {
	tc.mutation.SetUpdatedAt(t)
	return tc
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (tc *TaskCreate) SetNillableUpdatedAt(t *time.Time) *TaskCreate {
	if t != nil {
		tc.SetUpdatedAt(*t)
	}
	return tc
}

// Mutation returns the TaskMutation object of the builder.
func (tc *TaskCreate) Mutation() *TaskMutation {
	return tc.mutation
}

// Save creates the Task in the database.
func (tc *TaskCreate) Save(ctx context.Context) (*Task, error) {
	tc.defaults()
	return withHooks(ctx, tc.sqlSave, tc.mutation, tc.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (tc *TaskCreate) SaveX(ctx context.Context) *Task {
	v, err := tc.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (tc *TaskCreate) Exec(ctx context.Context) error {
	_, err := tc.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (tc *TaskCreate) ExecX(ctx context.Context) {
	if err := tc.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (tc *TaskCreate) defaults() {
	if _, ok := tc.mutation.TopicID(); !ok {
		v := task.DefaultTopicID
		tc.mutation.SetTopicID(v)
	}
	if _, ok := tc.mutation.LearningPaths(); !ok {
		v := task.DefaultLearningPaths
		tc.mutation.SetLearningPaths(v)
	}
	if _, ok := tc.mutation.Language(); !ok {
		v := task.DefaultLanguage
		tc.mutation.SetLanguage(v)
	}
	if _, ok := tc.mutation.Difficulty(); !ok {
		v := task.DefaultDifficulty
		tc.mutation.SetDifficulty(v)
	}
	if _, ok := tc.mutation.Tags(); !ok {
		v := task.DefaultTags
		tc.mutation.SetTags(v)
	}
	if _, ok := tc.mutation.CreatedAt(); !ok {
		v := task.DefaultCreatedAt()
		tc.mutation.SetCreatedAt(v)
	}
	if _, ok := tc.mutation.UpdatedAt(); !ok {
		v := task.DefaultUpdatedAt()
		tc.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (tc *TaskCreate) check() error {
	if _, ok := tc.mutation.TopicID(); !ok {
		return &ValidationError{Name: "topic_id", err: errors.New(`ent: missing required field "Task.topic_id"`)}
	}
	if _, ok := tc.mutation.LearningPaths(); !ok {
		return &ValidationError{Name: "learning_paths", err: errors.New(`ent: missing required field "Task.learning_paths"`)}
	}
	if _, ok := tc.mutation.Prompt(); !ok {
		return &ValidationError{Name: "prompt", err: errors.New(`ent: missing required field "Task.prompt"`)}
	}
	if v, ok := tc.mutation.Prompt(); ok {
		if err := task.PromptValidator(v); err != nil {
			return &ValidationError{Name: "prompt", err: fmt.Errorf(`ent: validator failed for field "Task.prompt": %w`, err)}
		}
	}
	if _, ok := tc.mutation.Answer(); !ok {
		return &ValidationError{Name: "answer", err: errors.New(`ent: missing required field "Task.answer"`)}
	}
	if v, ok := tc.mutation.Answer(); ok {
		if err := task.AnswerValidator(v); err != nil {
			return &ValidationError{Name: "answer", err: fmt.Errorf(`ent: validator failed for field "Task.answer": %w`, err)}
		}
	}
	if _, ok := tc.mutation.Language(); !ok {
		return &ValidationError{Name: "language", err: errors.New(`ent: missing required field "Task.language"`)}
	}
	if _, ok := tc.mutation.Difficulty(); !ok {
		return &ValidationError{Name: "difficulty", err: errors.New(`ent: missing required field "Task.difficulty"`)}
	}
	if _, ok := tc.mutation.Tags(); !ok {
		return &ValidationError{Name: "tags", err: errors.New(`ent: missing required field "Task.tags"`)}
	}
	if _, ok := tc.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Task.created_at"`)}
	}
	if _, ok := tc.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Task.updated_at"`)}
	}
	return nil
}

func (tc *TaskCreate) sqlSave(ctx context.Context) (*Task, error) {
	if err := tc.check(); err != nil {
		return nil, err
	}
	_node, _spec := tc.createSpec()
	if err := sqlgraph.CreateNode(ctx, tc.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	tc.mutation.id = &_node.ID
	tc.mutation.done = true
	return _node, nil
}

func (tc *TaskCreate) createSpec() (*Task, *sqlgraph.CreateSpec) {
	var (
		_node = &Task{config: tc.config}
		_spec = sqlgraph.NewCreateSpec(task.Table, sqlgraph.NewFieldSpec(task.FieldID, field.TypeInt))
	)
	if value, ok := tc.mutation.TopicID(); ok {
		_spec.SetField(task.FieldTopicID, field.TypeInt64, value)
		_node.TopicID = value
	}
	if value, ok := tc.mutation.LearningPaths(); ok {
		_spec.SetField(task.FieldLearningPaths, field.TypeJSON, value)
		_node.LearningPaths = value
	}
	if value, ok := tc.mutation.Prompt(); ok {
		_spec.SetField(task.FieldPrompt, field.TypeString, value)
		_node.Prompt = value
	}
	if value, ok := tc.mutation.Answer(); ok {
		_spec.SetField(task.FieldAnswer, field.TypeString, value)
		_node.Answer = value
	}
	if value, ok := tc.mutation.Language(); ok {
		_spec.SetField(task.FieldLanguage, field.TypeString, value)
		_node.Language = value
	}
	if value, ok := tc.mutation.Difficulty(); ok {
		_spec.SetField(task.FieldDifficulty, field.TypeInt32, value)
		_node.Difficulty = value
	}
	if value, ok := tc.mutation.Tags(); ok {
		_spec.SetField(task.FieldTags, field.TypeJSON, value)
		_node.Tags = value
	}
	if value, ok := tc.mutation.CreatedAt(); ok {
		_spec.SetField(task.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := tc.mutation.UpdatedAt(); ok {
		_spec.SetField(task.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// TaskCreateBulk is the builder for creating many Task entities in bulk.
type TaskCreateBulk struct {
	config
	err      error
	builders []*TaskCreate
}

// Save creates the Task entities in the database.
func (tcb *TaskCreateBulk) Save(ctx context.Context) ([]*Task, error) {
	if tcb.err != nil {
		return nil, tcb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(tcb.builders))
	nodes := make([]*Task, len(tcb.builders))
	mutators := make([]Mutator, len(tcb.builders))
	for i := range tcb.builders {
		func(i int, root context.Context) {
			builder := tcb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TaskMutation)
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
					_, err = mutators[i+1].Mutate(root, tcb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, tcb.driver, spec); err != nil {
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
		if _, err := mutators[0].Mutate(ctx, tcb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (tcb *TaskCreateBulk) SaveX(ctx context.Context) []*Task {
	v, err := tcb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (tcb *TaskCreateBulk) Exec(ctx context.Context) error {
	_, err := tcb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (tcb *TaskCreateBulk) ExecX(ctx context.Context) {
	if err := tcb.Exec(ctx); err != nil {
		panic(err)
	}
}
