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
	"github.com/eslsoft/drillnet/internal/infrastructure/database/ent/predicate"
	"github.com/eslsoft/drillnet/internal/infrastructure/database/ent/task"
)

// TaskUpdate is the builder for updating Task entities.
type TaskUpdate struct {
	config
	hooks    []Hook
	mutation *TaskMutation
}

// Where appends a list predicates to the TaskUpdate builder.
func (tu *TaskUpdate) Where(ps ...predicate.Task) *TaskUpdate {
	tu.mutation.Where(ps...)
	return tu
}

// SetTopicID sets the "topic_id" field.
func (tu *TaskUpdate) SetTopicID(i int64) *TaskUpdate {
	tu.mutation.ResetTopicID()
	tu.mutation.SetTopicID(i)
	return tu
}

// SetNillableTopicID sets the "topic_id" field if the given value is not nil.
func (tu *TaskUpdate) SetNillableTopicID(i *int64) *TaskUpdate {
	if i != nil {
		tu.SetTopicID(*i)
	}
	return tu
}

// AddTopicID adds i to the "topic_id" field.
func (tu *TaskUpdate) AddTopicID(i int64) *TaskUpdate {
	tu.mutation.AddTopicID(i)
	return tu
}

// SetLearningPaths sets the "learning_paths" field.
func (tu *TaskUpdate) SetLearningPaths(i []int64) *TaskUpdate {
	tu.mutation.SetLearningPaths(i)
	return tu
}

// AppendLearningPaths appends i to the "learning_paths" field.
func (tu *TaskUpdate) AppendLearningPaths(i []int64) *TaskUpdate {
	tu.mutation.AppendLearningPaths(i)
	return tu
}

// SetPrompt sets the "prompt" field.
func (tu *TaskUpdate) SetPrompt(s string) *TaskUpdate {
	tu.mutation.SetPrompt(s)
	return tu
}

// SetNillablePrompt sets the "prompt" field if the given value is not nil.
func (tu *TaskUpdate) SetNillablePrompt(s *string) *TaskUpdate {
	if s != nil {
		tu.SetPrompt(*s)
	}
	return tu
}

// SetAnswer sets the "answer" field.
func (tu *TaskUpdate) SetAnswer(s string) *TaskUpdate {
	tu.mutation.SetAnswer(s)
	return tu
}

// SetNillableAnswer sets the "answer" field if the given value is not nil.
func (tu *TaskUpdate) SetNillableAnswer(s *string) *TaskUpdate {
	if s != nil {
		tu.SetAnswer(*s)
	}
	return tu
}

// SetLanguage sets the "language" field.
func (tu *TaskUpdate) SetLanguage(s string) *TaskUpdate {
	tu.mutation.SetLanguage(s)
	return tu
}

// SetNillableLanguage sets the "language" field if the given value is not nil.
func (tu *TaskUpdate) SetNillableLanguage(s *string) *TaskUpdate {
	if s != nil {
		tu.SetLanguage(*s)
	}
	return tu
}

// SetDifficulty sets the "difficulty" field.
func (tu *TaskUpdate) SetDifficulty(i int32) *TaskUpdate {
	tu.mutation.ResetDifficulty()
	tu.mutation.SetDifficulty(i)
	return tu
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (tu *TaskUpdate) SetNillableDifficulty(i *int32) *TaskUpdate {
	if i != nil {
		tu.SetDifficulty(*i)
	}
	return tu
}

// AddDifficulty adds i to the "difficulty" field.
func (tu *TaskUpdate) AddDifficulty(i int32) *TaskUpdate {
	tu.mutation.AddDifficulty(i)
	return tu
}

// SetTags sets the "tags" field.
func (tu *TaskUpdate) SetTags(s []string) *TaskUpdate {
	tu.mutation.SetTags(s)
	return tu
}

// AppendTags appends s to the "tags" field.
func (tu *TaskUpdate) AppendTags(s []string) *TaskUpdate {
	tu.mutation.AppendTags(s)
	return tu
}

// SetUpdatedAt sets the "updated_at" field.
func (tu *TaskUpdate) SetUpdatedAt(t time.Time) *TaskUpdate {
	tu.mutation.SetUpdatedAt(t)
	return tu
}

// Mutation returns the TaskMutation object of the builder.
func (tu *TaskUpdate) Mutation() *TaskMutation {
	return tu.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (tu *TaskUpdate) Save(ctx context.Context) (int, error) {
	tu.defaults()
	return withHooks(ctx, tu.sqlSave, tu.mutation, tu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (tu *TaskUpdate) SaveX(ctx context.Context) int {
	affected, err := tu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (tu *TaskUpdate) Exec(ctx context.Context) error {
	_, err := tu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (tu *TaskUpdate) ExecX(ctx context.Context) {
	if err := tu.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (tu *TaskUpdate) defaults() {
	if _, ok := tu.mutation.UpdatedAt(); !ok {
		v := task.UpdateDefaultUpdatedAt()
		tu.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (tu *TaskUpdate) check() error {
	if v, ok := tu.mutation.Prompt(); ok {
		if err := task.PromptValidator(v); err != nil {
			return &ValidationError{Name: "prompt", err: fmt.Errorf(`ent: validator failed for field "Task.prompt": %w`, err)}
		}
	}
	if v, ok := tu.mutation.Answer(); ok {
		if err := task.AnswerValidator(v); err != nil {
			return &ValidationError{Name: "answer", err: fmt.Errorf(`ent: validator failed for field "Task.answer": %w`, err)}
		}
	}
	return nil
}

func (tu *TaskUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := tu.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(task.Table, task.Columns, sqlgraph.NewFieldSpec(task.FieldID, field.TypeInt))
	if ps := tu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := tu.mutation.TopicID(); ok {
		_spec.SetField(task.FieldTopicID, field.TypeInt64, value)
	}
	if value, ok := tu.mutation.AddedTopicID(); ok {
		_spec.AddField(task.FieldTopicID, field.TypeInt64, value)
	}
	if value, ok := tu.mutation.LearningPaths(); ok {
		_spec.SetField(task.FieldLearningPaths, field.TypeJSON, value)
	}
	if value, ok := tu.mutation.AppendedLearningPaths(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, task.FieldLearningPaths, value)
		})
	}
	if value, ok := tu.mutation.Prompt(); ok {
		_spec.SetField(task.FieldPrompt, field.TypeString, value)
	}
	if value, ok := tu.mutation.Answer(); ok {
		_spec.SetField(task.FieldAnswer, field.TypeString, value)
	}
	if value, ok := tu.mutation.Language(); ok {
		_spec.SetField(task.FieldLanguage, field.TypeString, value)
	}
	if value, ok := tu.mutation.Difficulty(); ok {
		_spec.SetField(task.FieldDifficulty, field.TypeInt32, value)
	}
	if value, ok := tu.mutation.AddedDifficulty(); ok {
		_spec.AddField(task.FieldDifficulty, field.TypeInt32, value)
	}
	if value, ok := tu.mutation.Tags(); ok {
		_spec.SetField(task.FieldTags, field.TypeJSON, value)
	}
	if value, ok := tu.mutation.AppendedTags(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, task.FieldTags, value)
		})
	}
	if value, ok := tu.mutation.UpdatedAt(); ok {
		_spec.SetField(task.FieldUpdatedAt, field.TypeTime, value)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, tu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{task.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	tu.mutation.done = true
	return n, nil
}

// TaskUpdateOne is the builder for updating a single Task entity.
type TaskUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TaskMutation
}

// SetTopicID sets the "topic_id" field.
func (tuo *TaskUpdateOne) SetTopicID(i int64) *TaskUpdateOne {
	tuo.mutation.ResetTopicID()
	tuo.mutation.SetTopicID(i)
	return tuo
}

// SetNillableTopicID sets the "topic_id" field if the given value is not nil.
func (tuo *TaskUpdateOne) SetNillableTopicID(i *int64) *TaskUpdateOne {
	if i != nil {
		tuo.SetTopicID(*i)
	}
	return tuo
}

// AddTopicID adds i to the "topic_id" field.
func (tuo *TaskUpdateOne) AddTopicID(i int64) *TaskUpdateOne {
	tuo.mutation.AddTopicID(i)
	return tuo
}

// SetLearningPaths sets the "learning_paths" field.
func (tuo *TaskUpdateOne) SetLearningPaths(i []int64) *TaskUpdateOne {
	tuo.mutation.SetLearningPaths(i)
	return tuo
}

// AppendLearningPaths appends i to the "learning_paths" field.
func (tuo *TaskUpdateOne) AppendLearningPaths(i []int64) *TaskUpdateOne {
	tuo.mutation.AppendLearningPaths(i)
	return tuo
}

// SetPrompt sets the "prompt" field.
func (tuo *TaskUpdateOne) SetPrompt(s string) *TaskUpdateOne {
	tuo.mutation.SetPrompt(s)
	return tuo
}

// SetNillablePrompt sets the "prompt" field if the given value is not nil.
func (tuo *TaskUpdateOne) SetNillablePrompt(s *string) *TaskUpdateOne {
	if s != nil {
		tuo.SetPrompt(*s)
	}
	return tuo
}

// SetAnswer sets the "answer" field.
func (tuo *TaskUpdateOne) SetAnswer(s string) *TaskUpdateOne {
	tuo.mutation.SetAnswer(s)
	return tuo
}

// SetNillableAnswer sets the "answer" field if the given value is not nil.
func (tuo *TaskUpdateOne) SetNillableAnswer(s *string) *TaskUpdateOne {
	if s != nil {
		tuo.SetAnswer(*s)
	}
	return tuo
}

// SetLanguage sets the "language" field.
func (tuo *TaskUpdateOne) SetLanguage(s string) *TaskUpdateOne {
	tuo.mutation.SetLanguage(s)
	return tuo
}

// SetNillableLanguage sets the "language" field if the given value is not nil.
func (tuo *TaskUpdateOne) SetNillableLanguage(s *string) *TaskUpdateOne {
	if s != nil {
		tuo.SetLanguage(*s)
	}
	return tuo
}

// SetDifficulty sets the "difficulty" field.
func (tuo *TaskUpdateOne) SetDifficulty(i int32) *TaskUpdateOne {
	tuo.mutation.ResetDifficulty()
	tuo.mutation.SetDifficulty(i)
	return tuo
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (tuo *TaskUpdateOne) SetNillableDifficulty(i *int32) *TaskUpdateOne {
	if i != nil {
		tuo.SetDifficulty(*i)
	}
	return tuo
}

// AddDifficulty adds i to the "difficulty" field.
func (tuo *TaskUpdateOne) AddDifficulty(i int32) *TaskUpdateOne {
	tuo.mutation.AddDifficulty(i)
	return tuo
}

// SetTags sets the "tags" field.
func (tuo *TaskUpdateOne) SetTags(s []string) *TaskUpdateOne {
	tuo.mutation.SetTags(s)
	return tuo
}

// AppendTags appends s to the "tags" field.
func (tuo *TaskUpdateOne) AppendTags(s []string) *TaskUpdateOne {
	tuo.mutation.AppendTags(s)
	return tuo
}

// SetUpdatedAt sets the "updated_at" field.
func (tuo *TaskUpdateOne) SetUpdatedAt(t time.Time) *TaskUpdateOne {
	tuo.mutation.SetUpdatedAt(t)
	return tuo
}

// Mutation returns the TaskMutation object of the builder.
func (tuo *TaskUpdateOne) Mutation() *TaskMutation {
	return tuo.mutation
}

// Where appends a list predicates to the TaskUpdate builder.
func (tuo *TaskUpdateOne) Where(ps ...predicate.Task) *TaskUpdateOne {
	tuo.mutation.Where(ps...)
	return tuo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (tuo *TaskUpdateOne) Select(field string, fields ...string) *TaskUpdateOne {
	tuo.fields = append([]string{field}, fields...)
	return tuo
}

// Save executes the query and returns the updated Task entity.
func (tuo *TaskUpdateOne) Save(ctx context.Context) (*Task, error) {
	tuo.defaults()
	return withHooks(ctx, tuo.sqlSave, tuo.mutation, tuo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (tuo *TaskUpdateOne) SaveX(ctx context.Context) *Task {
	node, err := tuo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (tuo *TaskUpdateOne) Exec(ctx context.Context) error {
	_, err := tuo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (tuo *TaskUpdateOne) ExecX(ctx context.Context) {
	if err := tuo.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (tuo *TaskUpdateOne) defaults() {
	if _, ok := tuo.mutation.UpdatedAt(); !ok {
		v := task.UpdateDefaultUpdatedAt()
		tuo.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (tuo *TaskUpdateOne) check() error {
	if v, ok := tuo.mutation.Prompt(); ok {
		if err := task.PromptValidator(v); err != nil {
			return &ValidationError{Name: "prompt", err: fmt.Errorf(`ent: validator failed for field "Task.prompt": %w`, err)}
		}
	}
	if v, ok := tuo.mutation.Answer(); ok {
		if err := task.AnswerValidator(v); err != nil {
			return &ValidationError{Name: "answer", err: fmt.Errorf(`ent: validator failed for field "Task.answer": %w`, err)}
		}
	}
	return nil
}

func (tuo *TaskUpdateOne) sqlSave(ctx context.Context) (_node *Task, err error) {
	if err := tuo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(task.Table, task.Columns, sqlgraph.NewFieldSpec(task.FieldID, field.TypeInt))
	id, ok := tuo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Task.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := tuo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, task.FieldID)
		for _, f := range fields {
			if !task.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != task.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := tuo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := tuo.mutation.TopicID(); ok {
		_spec.SetField(task.FieldTopicID, field.TypeInt64, value)
	}
	if value, ok := tuo.mutation.AddedTopicID(); ok {
		_spec.AddField(task.FieldTopicID, field.TypeInt64, value)
	}
	if value, ok := tuo.mutation.LearningPaths(); ok {
		_spec.SetField(task.FieldLearningPaths, field.TypeJSON, value)
	}
	if value, ok := tuo.mutation.AppendedLearningPaths(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, task.FieldLearningPaths, value)
		})
	}
	if value, ok := tuo.mutation.Prompt(); ok {
		_spec.SetField(task.FieldPrompt, field.TypeString, value)
	}
	if value, ok := tuo.mutation.Answer(); ok {
		_spec.SetField(task.FieldAnswer, field.TypeString, value)
	}
	if value, ok := tuo.mutation.Language(); ok {
		_spec.SetField(task.FieldLanguage, field.TypeString, value)
	}
	if value, ok := tuo.mutation.Difficulty(); ok {
		_spec.SetField(task.FieldDifficulty, field.TypeInt32, value)
	}
	if value, ok := tuo.mutation.AddedDifficulty(); ok {
		_spec.AddField(task.FieldDifficulty, field.TypeInt32, value)
	}
	if value, ok := tuo.mutation.Tags(); ok {
		_spec.SetField(task.FieldTags, field.TypeJSON, value)
	}
	if value, ok := tuo.mutation.AppendedTags(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, task.FieldTags, value)
		})
	}
	if value, ok := tuo.mutation.UpdatedAt(); ok {
		_spec.SetField(task.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &Task{config: tuo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, tuo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{task.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	tuo.mutation.done = true
	return _node, nil
}
