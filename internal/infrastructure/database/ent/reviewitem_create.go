// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/eslsoft/drillnet/internal/infrastructure/database/ent/reviewitem"
)

// ReviewItemCreate is the builder for creating a ReviewItem entity.
type ReviewItemCreate struct {
	config
	mutation *ReviewItemMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (ric *ReviewItemCreate) SetUserID(i int64) *ReviewItemCreate {
	ric.mutation.SetUserID(i)
	return ric
}

// SetTaskID sets the "task_id" field.
func (ric *ReviewItemCreate) SetTaskID(i int64) *ReviewItemCreate {
	ric.mutation.SetTaskID(i)
	return ric
}

// SetIntervalDays sets the "interval_days" field.
func (ric *ReviewItemCreate) SetIntervalDays(i int32) *ReviewItemCreate {
	ric.mutation.SetIntervalDays(i)
	return ric
}

// SetNillableIntervalDays sets the "interval_days" field if the given value is not nil.
func (ric *ReviewItemCreate) SetNillableIntervalDays(i *int32) *ReviewItemCreate {
	if i != nil {
		ric.SetIntervalDays(*i)
	}
	return ric
}

// SetRepetition sets the "repetition" field.
func (ric *ReviewItemCreate) SetRepetition(i int32) *ReviewItemCreate {
	ric.mutation.SetRepetition(i)
	return ric
}

// SetNillableRepetition sets the "repetition" field if the given value is not nil.
func (ric *ReviewItemCreate) SetNillableRepetition(i *int32) *ReviewItemCreate {
	if i != nil {
		ric.SetRepetition(*i)
	}
	return ric
}

// SetEfactor sets the "efactor" field.
func (ric *ReviewItemCreate) SetEfactor(f float64) *ReviewItemCreate {
	ric.mutation.SetEfactor(f)
	return ric
}

// SetNillableEfactor sets the "efactor" field if the given value is not nil.
func (ric *ReviewItemCreate) SetNillableEfactor(f *float64) *ReviewItemCreate {
	if f != nil {
		ric.SetEfactor(*f)
	}
	return ric
}

// SetNextReview sets the "next_review" field.
func (ric *ReviewItemCreate) SetNextReview(t time.Time) *ReviewItemCreate {
	ric.mutation.SetNextReview(t)
	return ric
}

// SetLastReviewed sets the "last_reviewed" field.
func (ric *ReviewItemCreate) SetLastReviewed(t time.Time) *ReviewItemCreate {
	ric.mutation.SetLastReviewed(t)
	return ric
}

// SetNillableLastReviewed sets the "last_reviewed" field if the given value is not nil.
func (ric *ReviewItemCreate) SetNillableLastReviewed(t *time.Time) *ReviewItemCreate {
	if t != nil {
		ric.SetLastReviewed(*t)
	}
	return ric
}

// SetTotalReviews sets the "total_reviews" field.
func (ric *ReviewItemCreate) SetTotalReviews(i int32) *ReviewItemCreate {
	ric.mutation.SetTotalReviews(i)
	return ric
}

// SetNillableTotalReviews sets the "total_reviews" field if the given value is not nil.
func (ric *ReviewItemCreate) SetNillableTotalReviews(i *int32) *ReviewItemCreate {
	if i != nil {
		ric.SetTotalReviews(*i)
	}
	return ric
}

// SetConsecutiveCorrect sets the "consecutive_correct" field.
func (ric *ReviewItemCreate) SetConsecutiveCorrect(i int32) *ReviewItemCreate {
	ric.mutation.SetConsecutiveCorrect(i)
	return ric
}

// SetNillableConsecutiveCorrect sets the "consecutive_correct" field if the given value is not nil.
func (ric *ReviewItemCreate) SetNillableConsecutiveCorrect(i *int32) *ReviewItemCreate {
	if i != nil {
		ric.SetConsecutiveCorrect(*i)
	}
	return ric
}

// SetAverageAccuracy sets the "average_accuracy" field.
func (ric *ReviewItemCreate) SetAverageAccuracy(f float64) *ReviewItemCreate {
	ric.mutation.SetAverageAccuracy(f)
	return ric
}

// SetNillableAverageAccuracy sets the "average_accuracy" field if the given value is not nil.
func (ric *ReviewItemCreate) SetNillableAverageAccuracy(f *float64) *ReviewItemCreate {
	if f != nil {
		ric.SetAverageAccuracy(*f)
	}
	return ric
}

// SetAverageTimeMs sets the "average_time_ms" field.
func (ric *ReviewItemCreate) SetAverageTimeMs(f float64) *ReviewItemCreate {
	ric.mutation.SetAverageTimeMs(f)
	return ric
}

// SetNillableAverageTimeMs sets the "average_time_ms" field if the given value is not nil.
func (ric *ReviewItemCreate) SetNillableAverageTimeMs(f *float64) *ReviewItemCreate {
	if f != nil {
		ric.SetAverageTimeMs(*f)
	}
	return ric
}

// SetDifficultyRating sets the "difficulty_rating" field.
func (ric *ReviewItemCreate) SetDifficultyRating(i int32) *ReviewItemCreate {
	ric.mutation.SetDifficultyRating(i)
	return ric
}

// SetNillableDifficultyRating sets the "difficulty_rating" field if the given value is not nil.
func (ric *ReviewItemCreate) SetNillableDifficultyRating(i *int32) *ReviewItemCreate {
	if i != nil {
		ric.SetDifficultyRating(*i)
	}
	return ric
}

// SetLastGrade sets the "last_grade" field.
func (ric *ReviewItemCreate) SetLastGrade(i int32) *ReviewItemCreate {
	ric.mutation.SetLastGrade(i)
	return ric
}

// SetNillableLastGrade sets the "last_grade" field if the given value is not nil.
func (ric *ReviewItemCreate) SetNillableLastGrade(i *int32) *ReviewItemCreate {
	if i != nil {
		ric.SetLastGrade(*i)
	}
	return ric
}

// SetIntroduced sets the "introduced" field.
func (ric *ReviewItemCreate) SetIntroduced(t time.Time) *ReviewItemCreate {
	ric.mutation.SetIntroduced(t)
	return ric
}

// SetGraduated sets the "graduated" field.
func (ric *ReviewItemCreate) SetGraduated(b bool) *ReviewItemCreate {
	ric.mutation.SetGraduated(b)
	return ric
}

// SetNillableGraduated sets the "graduated" field if the given value is not nil.
func (ric *ReviewItemCreate) SetNillableGraduated(b *bool) *ReviewItemCreate {
	if b != nil {
		ric.SetGraduated(*b)
	}
	return ric
}

// SetLapseCount sets the "lapse_count" field.
func (ric *ReviewItemCreate) SetLapseCount(i int32) *ReviewItemCreate {
	ric.mutation.SetLapseCount(i)
	return ric
}

// SetNillableLapseCount sets the "lapse_count" field if the given value is not nil.
func (ric *ReviewItemCreate) SetNillableLapseCount(i *int32) *ReviewItemCreate {
	if i != nil {
		ric.SetLapseCount(*i)
	}
	return ric
}

// SetCreatedAt sets the "created_at" field.
func (ric *ReviewItemCreate) SetCreatedAt(t time.Time) *ReviewItemCreate {
	ric.mutation.SetCreatedAt(t)
	return ric
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (ric *ReviewItemCreate) SetNillableCreatedAt(t *time.Time) *ReviewItemCreate {
	if t != nil {
		ric.SetCreatedAt(*t)
	}
	return ric
}

// SetUpdatedAt sets the "updated_at" field.
func (ric *ReviewItemCreate) SetUpdatedAt(t time.Time) *ReviewItemCreate {
	ric.mutation.SetUpdatedAt(t)
	return ric
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (ric *ReviewItemCreate) SetNillableUpdatedAt(t *time.Time) *ReviewItemCreate {
	if t != nil {
		ric.SetUpdatedAt(*t)
	}
	return ric
}

// Mutation returns the ReviewItemMutation object of the builder.
func (ric *ReviewItemCreate) Mutation() *ReviewItemMutation {
	return ric.mutation
}

// Save creates the ReviewItem in the database.
func (ric *ReviewItemCreate) Save(ctx context.Context) (*ReviewItem, error) {
	ric.defaults()
	return withHooks(ctx, ric.sqlSave, ric.mutation, ric.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (ric *ReviewItemCreate) SaveX(ctx context.Context) *ReviewItem {
	v, err := ric.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (ric *ReviewItemCreate) Exec(ctx context.Context) error {
	_, err := ric.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (ric *ReviewItemCreate) ExecX(ctx context.Context) {
	if err := ric.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (ric *ReviewItemCreate) defaults() {
	if _, ok := ric.mutation.IntervalDays(); !ok {
		v := reviewitem.DefaultIntervalDays
		ric.mutation.SetIntervalDays(v)
	}
	if _, ok := ric.mutation.Repetition(); !ok {
		v := reviewitem.DefaultRepetition
		ric.mutation.SetRepetition(v)
	}
	if _, ok := ric.mutation.Efactor(); !ok {
		v := reviewitem.DefaultEfactor
		ric.mutation.SetEfactor(v)
	}
	if _, ok := ric.mutation.TotalReviews(); !ok {
		v := reviewitem.DefaultTotalReviews
		ric.mutation.SetTotalReviews(v)
	}
	if _, ok := ric.mutation.ConsecutiveCorrect(); !ok {
		v := reviewitem.DefaultConsecutiveCorrect
		ric.mutation.SetConsecutiveCorrect(v)
	}
	if _, ok := ric.mutation.AverageAccuracy(); !ok {
		v := reviewitem.DefaultAverageAccuracy
		ric.mutation.SetAverageAccuracy(v)
	}
	if _, ok := ric.mutation.AverageTimeMs(); !ok {
		v := reviewitem.DefaultAverageTimeMs
		ric.mutation.SetAverageTimeMs(v)
	}
	if _, ok := ric.mutation.DifficultyRating(); !ok {
		v := reviewitem.DefaultDifficultyRating
		ric.mutation.SetDifficultyRating(v)
	}
	if _, ok := ric.mutation.LastGrade(); !ok {
		v := reviewitem.DefaultLastGrade
		ric.mutation.SetLastGrade(v)
	}
	if _, ok := ric.mutation.Graduated(); !ok {
		v := reviewitem.DefaultGraduated
		ric.mutation.SetGraduated(v)
	}
	if _, ok := ric.mutation.LapseCount(); !ok {
		v := reviewitem.DefaultLapseCount
		ric.mutation.SetLapseCount(v)
	}
	if _, ok := ric.mutation.CreatedAt(); !ok {
		v := reviewitem.DefaultCreatedAt()
		ric.mutation.SetCreatedAt(v)
	}
	if _, ok := ric.mutation.UpdatedAt(); !ok {
		v := reviewitem.DefaultUpdatedAt()
		ric.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (ric *ReviewItemCreate) check() error {
	if _, ok := ric.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "ReviewItem.user_id"`)}
	}
	if _, ok := ric.mutation.TaskID(); !ok {
		return &ValidationError{Name: "task_id", err: errors.New(`ent: missing required field "ReviewItem.task_id"`)}
	}
	if _, ok := ric.mutation.IntervalDays(); !ok {
		return &ValidationError{Name: "interval_days", err: errors.New(`ent: missing required field "ReviewItem.interval_days"`)}
	}
	if _, ok := ric.mutation.Repetition(); !ok {
		return &ValidationError{Name: "repetition", err: errors.New(`ent: missing required field "ReviewItem.repetition"`)}
	}
	if _, ok := ric.mutation.Efactor(); !ok {
		return &ValidationError{Name: "efactor", err: errors.New(`ent: missing required field "ReviewItem.efactor"`)}
	}
	if _, ok := ric.mutation.NextReview(); !ok {
		return &ValidationError{Name: "next_review", err: errors.New(`ent: missing required field "ReviewItem.next_review"`)}
	}
	if _, ok := ric.mutation.TotalReviews(); !ok {
		return &ValidationError{Name: "total_reviews", err: errors.New(`ent: missing required field "ReviewItem.total_reviews"`)}
	}
	if _, ok := ric.mutation.ConsecutiveCorrect(); !ok {
		return &ValidationError{Name: "consecutive_correct", err: errors.New(`ent: missing required field "ReviewItem.consecutive_correct"`)}
	}
	if _, ok := ric.mutation.AverageAccuracy(); !ok {
		return &ValidationError{Name: "average_accuracy", err: errors.New(`ent: missing required field "ReviewItem.average_accuracy"`)}
	}
	if _, ok := ric.mutation.AverageTimeMs(); !ok {
		return &ValidationError{Name: "average_time_ms", err: errors.New(`ent: missing required field "ReviewItem.average_time_ms"`)}
	}
	if _, ok := ric.mutation.DifficultyRating(); !ok {
		return &ValidationError{Name: "difficulty_rating", err: errors.New(`ent: missing required field "ReviewItem.difficulty_rating"`)}
	}
	if _, ok := ric.mutation.LastGrade(); !ok {
		return &ValidationError{Name: "last_grade", err: errors.New(`ent: missing required field "ReviewItem.last_grade"`)}
	}
	if _, ok := ric.mutation.Introduced(); !ok {
		return &ValidationError{Name: "introduced", err: errors.New(`ent: missing required field "ReviewItem.introduced"`)}
	}
	if _, ok := ric.mutation.Graduated(); !ok {
		return &ValidationError{Name: "graduated", err: errors.New(`ent: missing required field "ReviewItem.graduated"`)}
	}
	if _, ok := ric.mutation.LapseCount(); !ok {
		return &ValidationError{Name: "lapse_count", err: errors.New(`ent: missing required field "ReviewItem.lapse_count"`)}
	}
	if _, ok := ric.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ReviewItem.created_at"`)}
	}
	if _, ok := ric.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "ReviewItem.updated_at"`)}
	}
	return nil
}

func (ric *ReviewItemCreate) sqlSave(ctx context.Context) (*ReviewItem, error) {
	if err := ric.check(); err != nil {
		return nil, err
	}
	_node, _spec := ric.createSpec()
	if err := sqlgraph.CreateNode(ctx, ric.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	ric.mutation.id = &_node.ID
	ric.mutation.done = true
	return _node, nil
}

func (ric *ReviewItemCreate) createSpec() (*ReviewItem, *sqlgraph.CreateSpec) {
	var (
		_node = &ReviewItem{config: ric.config}
		_spec = sqlgraph.NewCreateSpec(reviewitem.Table, sqlgraph.NewFieldSpec(reviewitem.FieldID, field.TypeInt))
	)
	if value, ok := ric.mutation.UserID(); ok {
		_spec.SetField(reviewitem.FieldUserID, field.TypeInt64, value)
		_node.UserID = value
	}
	if value, ok := ric.mutation.TaskID(); ok {
		_spec.SetField(reviewitem.FieldTaskID, field.TypeInt64, value)
		_node.TaskID = value
	}
	if value, ok := ric.mutation.IntervalDays(); ok {
		_spec.SetField(reviewitem.FieldIntervalDays, field.TypeInt32, value)
		_node.IntervalDays = value
	}
	if value, ok := ric.mutation.Repetition(); ok {
		_spec.SetField(reviewitem.FieldRepetition, field.TypeInt32, value)
		_node.Repetition = value
	}
	if value, ok := ric.mutation.Efactor(); ok {
		_spec.SetField(reviewitem.FieldEfactor, field.TypeFloat64, value)
		_node.Efactor = value
	}
	if value, ok := ric.mutation.NextReview(); ok {
		_spec.SetField(reviewitem.FieldNextReview, field.TypeTime, value)
		_node.NextReview = value
	}
	if value, ok := ric.mutation.LastReviewed(); ok {
		_spec.SetField(reviewitem.FieldLastReviewed, field.TypeTime, value)
		_node.LastReviewed = &value
	}
	if value, ok := ric.mutation.TotalReviews(); ok {
		_spec.SetField(reviewitem.FieldTotalReviews, field.TypeInt32, value)
		_node.TotalReviews = value
	}
	if value, ok := ric.mutation.ConsecutiveCorrect(); ok {
		_spec.SetField(reviewitem.FieldConsecutiveCorrect, field.TypeInt32, value)
		_node.ConsecutiveCorrect = value
	}
	if value, ok := ric.mutation.AverageAccuracy(); ok {
		_spec.SetField(reviewitem.FieldAverageAccuracy, field.TypeFloat64, value)
		_node.AverageAccuracy = value
	}
	if value, ok := ric.mutation.AverageTimeMs(); ok {
		_spec.SetField(reviewitem.FieldAverageTimeMs, field.TypeFloat64, value)
		_node.AverageTimeMs = value
	}
	if value, ok := ric.mutation.DifficultyRating(); ok {
		_spec.SetField(reviewitem.FieldDifficultyRating, field.TypeInt32, value)
		_node.DifficultyRating = value
	}
	if value, ok := ric.mutation.LastGrade(); ok {
		_spec.SetField(reviewitem.FieldLastGrade, field.TypeInt32, value)
		_node.LastGrade = value
	}
	if value, ok := ric.mutation.Introduced(); ok {
		_spec.SetField(reviewitem.FieldIntroduced, field.TypeTime, value)
		_node.Introduced = value
	}
	if value, ok := ric.mutation.Graduated(); ok {
		_spec.SetField(reviewitem.FieldGraduated, field.TypeBool, value)
		_node.Graduated = value
	}
	if value, ok := ric.mutation.LapseCount(); ok {
		_spec.SetField(reviewitem.FieldLapseCount, field.TypeInt32, value)
		_node.LapseCount = value
	}
	if value, ok := ric.mutation.CreatedAt(); ok {
		_spec.SetField(reviewitem.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := ric.mutation.UpdatedAt(); ok {
		_spec.SetField(reviewitem.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// ReviewItemCreateBulk is the builder for creating many ReviewItem entities in bulk.
type ReviewItemCreateBulk struct {
	config
	err      error
	builders []*ReviewItemCreate
}

// Save creates the ReviewItem entities in the database.
func (ricb *ReviewItemCreateBulk) Save(ctx context.Context) ([]*ReviewItem, error) {
	if ricb.err != nil {
		return nil, ricb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(ricb.builders))
	nodes := make([]*ReviewItem, len(ricb.builders))
	mutators := make([]Mutator, len(ricb.builders))
	for i := range ricb.builders {
		func(i int, root context.Context) {
			builder := ricb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ReviewItemMutation)
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
					_, err = mutators[i+1].Mutate(root, ricb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, ricb.driver, spec); err != nil {
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
		if _, err := mutators[0].Mutate(ctx, ricb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (ricb *ReviewItemCreateBulk) SaveX(ctx context.Context) []*ReviewItem {
	v, err := ricb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (ricb *ReviewItemCreateBulk) Exec(ctx context.Context) error {
	_, err := ricb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (ricb *ReviewItemCreateBulk) ExecX(ctx context.Context) {
	if err := ricb.Exec(ctx); err != nil {
		panic(err)
	}
}
