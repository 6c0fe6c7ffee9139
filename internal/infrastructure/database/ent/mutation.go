// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/eslsoft/drillnet/internal/entity"
	"github.com/eslsoft/drillnet/internal/infrastructure/database/ent/answerrecord"
	"github.com/eslsoft/drillnet/internal/infrastructure/database/ent/practicesession"
	"github.com/eslsoft/drillnet/internal/infrastructure/database/ent/predicate"
	"github.com/eslsoft/drillnet/internal/infrastructure/database/ent/reviewitem"
	"github.com/eslsoft/drillnet/internal/infrastructure/database/ent/task"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAnswerRecord    = "AnswerRecord"
	TypePracticeSession = "PracticeSession"
	TypeReviewItem      = "ReviewItem"
	TypeTask            = "Task"
)

// AnswerRecordMutation represents an operation that mutates the AnswerRecord nodes in the graph.
type AnswerRecordMutation struct {
	config
	op                Op
	typ               string
	id                *int
	session_id        *int64
	addsession_id     *int64
	task_id           *int64
	addtask_id        *int64
	user_id           *int64
	adduser_id        *int64
	user_answer       *string
	is_correct        *bool
	grade             *int32
	addgrade          *int32
	time_spent_ms     *int64
	addtime_spent_ms  *int64
	confidence        *int32
	addconfidence     *int32
	attempt_number    *int32
	addattempt_number *int32
	answered_at       *time.Time
	created_at        *time.Time
	clearedFields     map[string]struct{}
	done              bool
	oldValue          func(context.Context) (*AnswerRecord, error)
	predicates        []predicate.AnswerRecord
}

var _ ent.Mutation = (*AnswerRecordMutation)(nil)

// answerrecordOption allows management of the mutation configuration using functional options.
type answerrecordOption func(*AnswerRecordMutation)

// newAnswerRecordMutation creates new mutation for the AnswerRecord entity.
func newAnswerRecordMutation(c config, op Op, opts ...answerrecordOption) *AnswerRecordMutation {
	m := &AnswerRecordMutation{
		config:        c,
		op:            op,
		typ:           TypeAnswerRecord,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAnswerRecordID sets the ID field of the mutation.
func withAnswerRecordID(id int) answerrecordOption {
	return func(m *AnswerRecordMutation) {
		var (
			err   error
			once  sync.Once
			value *AnswerRecord
		)
		m.oldValue = func(ctx context.Context) (*AnswerRecord, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AnswerRecord.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAnswerRecord sets the old AnswerRecord of the mutation.
func withAnswerRecord(node *AnswerRecord) answerrecordOption {
	return func(m *AnswerRecordMutation) {
		m.oldValue = func(context.Context) (*AnswerRecord, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AnswerRecordMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AnswerRecordMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AnswerRecordMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AnswerRecordMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AnswerRecord.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSessionID sets the "session_id" field.
func (m *AnswerRecordMutation) SetSessionID(i int64) {
	m.session_id = &i
	m.addsession_id = nil
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *AnswerRecordMutation) SessionID() (r int64, exists bool) {
	v := m.session_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the AnswerRecord entity.
// If the AnswerRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnswerRecordMutation) OldSessionID(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// AddSessionID adds i to the "session_id" field.
func (m *AnswerRecordMutation) AddSessionID(i int64) {
	if m.addsession_id != nil {
		*m.addsession_id += i
	} else {
		m.addsession_id = &i
	}
}

// AddedSessionID returns the value that was added to the "session_id" field in this mutation.
func (m *AnswerRecordMutation) AddedSessionID() (r int64, exists bool) {
	v := m.addsession_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *AnswerRecordMutation) ResetSessionID() {
	m.session_id = nil
	m.addsession_id = nil
}

// SetTaskID sets the "task_id" field.
func (m *AnswerRecordMutation) SetTaskID(i int64) {
	m.task_id = &i
	m.addtask_id = nil
}

// TaskID returns the value of the "task_id" field in the mutation.
func (m *AnswerRecordMutation) TaskID() (r int64, exists bool) {
	v := m.task_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTaskID returns the old "task_id" field's value of the AnswerRecord entity.
// If the AnswerRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnswerRecordMutation) OldTaskID(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTaskID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTaskID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTaskID: %w", err)
	}
	return oldValue.TaskID, nil
}

// AddTaskID adds i to the "task_id" field.
func (m *AnswerRecordMutation) AddTaskID(i int64) {
	if m.addtask_id != nil {
		*m.addtask_id += i
	} else {
		m.addtask_id = &i
	}
}

// AddedTaskID returns the value that was added to the "task_id" field in this mutation.
func (m *AnswerRecordMutation) AddedTaskID() (r int64, exists bool) {
	v := m.addtask_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetTaskID resets all changes to the "task_id" field.
func (m *AnswerRecordMutation) ResetTaskID() {
	m.task_id = nil
	m.addtask_id = nil
}

// SetUserID sets the "user_id" field.
func (m *AnswerRecordMutation) SetUserID(i int64) {
	m.user_id = &i
	m.adduser_id = nil
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *AnswerRecordMutation) UserID() (r int64, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the AnswerRecord entity.
// If the AnswerRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnswerRecordMutation) OldUserID(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// AddUserID adds i to the "user_id" field.
func (m *AnswerRecordMutation) AddUserID(i int64) {
	if m.adduser_id != nil {
		*m.adduser_id += i
	} else {
		m.adduser_id = &i
	}
}

// AddedUserID returns the value that was added to the "user_id" field in this mutation.
func (m *AnswerRecordMutation) AddedUserID() (r int64, exists bool) {
	v := m.adduser_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetUserID resets all changes to the "user_id" field.
func (m *AnswerRecordMutation) ResetUserID() {
	m.user_id = nil
	m.adduser_id = nil
}

// SetUserAnswer sets the "user_answer" field.
func (m *AnswerRecordMutation) SetUserAnswer(s string) {
	m.user_answer = &s
}

// UserAnswer returns the value of the "user_answer" field in the mutation.
func (m *AnswerRecordMutation) UserAnswer() (r string, exists bool) {
	v := m.user_answer
	if v == nil {
		return
	}
	return *v, true
}

// OldUserAnswer returns the old "user_answer" field's value of the AnswerRecord entity.
// If the AnswerRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnswerRecordMutation) OldUserAnswer(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserAnswer is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserAnswer requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserAnswer: %w", err)
	}
	return oldValue.UserAnswer, nil
}

// ResetUserAnswer resets all changes to the "user_answer" field.
func (m *AnswerRecordMutation) ResetUserAnswer() {
	m.user_answer = nil
}

// SetIsCorrect sets the "is_correct" field.
func (m *AnswerRecordMutation) SetIsCorrect(b bool) {
	m.is_correct = &b
}

// IsCorrect returns the value of the "is_correct" field in the mutation.
func (m *AnswerRecordMutation) IsCorrect() (r bool, exists bool) {
	v := m.is_correct
	if v == nil {
		return
	}
	return *v, true
}

// OldIsCorrect returns the old "is_correct" field's value of the AnswerRecord entity.
// If the AnswerRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnswerRecordMutation) OldIsCorrect(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsCorrect is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsCorrect requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsCorrect: %w", err)
	}
	return oldValue.IsCorrect, nil
}

// ResetIsCorrect resets all changes to the "is_correct" field.
func (m *AnswerRecordMutation) ResetIsCorrect() {
	m.is_correct = nil
}

// SetGrade sets the "grade" field.
func (m *AnswerRecordMutation) SetGrade(i int32) {
	m.grade = &i
	m.addgrade = nil
}

// Grade returns the value of the "grade" field in the mutation.
func (m *AnswerRecordMutation) Grade() (r int32, exists bool) {
	v := m.grade
	if v == nil {
		return
	}
	return *v, true
}

// OldGrade returns the old "grade" field's value of the AnswerRecord entity.
// If the AnswerRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnswerRecordMutation) OldGrade(ctx context.Context) (v int32, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGrade is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGrade requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGrade: %w", err)
	}
	return oldValue.Grade, nil
}

// AddGrade adds i to the "grade" field.
func (m *AnswerRecordMutation) AddGrade(i int32) {
	if m.addgrade != nil {
		*m.addgrade += i
	} else {
		m.addgrade = &i
	}
}

// AddedGrade returns the value that was added to the "grade" field in this mutation.
func (m *AnswerRecordMutation) AddedGrade() (r int32, exists bool) {
	v := m.addgrade
	if v == nil {
		return
	}
	return *v, true
}

// ResetGrade resets all changes to the "grade" field.
func (m *AnswerRecordMutation) ResetGrade() {
	m.grade = nil
	m.addgrade = nil
}

// SetTimeSpentMs sets the "time_spent_ms" field.
func (m *AnswerRecordMutation) SetTimeSpentMs(i int64) {
	m.time_spent_ms = &i
	m.addtime_spent_ms = nil
}

// TimeSpentMs returns the value of the "time_spent_ms" field in the mutation.
func (m *AnswerRecordMutation) TimeSpentMs() (r int64, exists bool) {
	v := m.time_spent_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldTimeSpentMs returns the old "time_spent_ms" field's value of the AnswerRecord entity.
// If the AnswerRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnswerRecordMutation) OldTimeSpentMs(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimeSpentMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimeSpentMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimeSpentMs: %w", err)
	}
	return oldValue.TimeSpentMs, nil
}

// AddTimeSpentMs adds i to the "time_spent_ms" field.
func (m *AnswerRecordMutation) AddTimeSpentMs(i int64) {
	if m.addtime_spent_ms != nil {
		*m.addtime_spent_ms += i
	} else {
		m.addtime_spent_ms = &i
	}
}

// AddedTimeSpentMs returns the value that was added to the "time_spent_ms" field in this mutation.
func (m *AnswerRecordMutation) AddedTimeSpentMs() (r int64, exists bool) {
	v := m.addtime_spent_ms
	if v == nil {
		return
	}
	return *v, true
}

// ResetTimeSpentMs resets all changes to the "time_spent_ms" field.
func (m *AnswerRecordMutation) ResetTimeSpentMs() {
	m.time_spent_ms = nil
	m.addtime_spent_ms = nil
}

// SetConfidence sets the "confidence" field.
func (m *AnswerRecordMutation) SetConfidence(i int32) {
	m.confidence = &i
	m.addconfidence = nil
}

// Confidence returns the value of the "confidence" field in the mutation.
func (m *AnswerRecordMutation) Confidence() (r int32, exists bool) {
	v := m.confidence
	if v == nil {
		return
	}
	return *v, true
}

// OldConfidence returns the old "confidence" field's value of the AnswerRecord entity.
// If the AnswerRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnswerRecordMutation) OldConfidence(ctx context.Context) (v int32, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfidence: %w", err)
	}
	return oldValue.Confidence, nil
}

// AddConfidence adds i to the "confidence" field.
func (m *AnswerRecordMutation) AddConfidence(i int32) {
	if m.addconfidence != nil {
		*m.addconfidence += i
	} else {
		m.addconfidence = &i
	}
}

// AddedConfidence returns the value that was added to the "confidence" field in this mutation.
func (m *AnswerRecordMutation) AddedConfidence() (r int32, exists bool) {
	v := m.addconfidence
	if v == nil {
		return
	}
	return *v, true
}

// ResetConfidence resets all changes to the "confidence" field.
func (m *AnswerRecordMutation) ResetConfidence() {
	m.confidence = nil
	m.addconfidence = nil
}

// SetAttemptNumber sets the "attempt_number" field.
func (m *AnswerRecordMutation) SetAttemptNumber(i int32) {
	m.attempt_number = &i
	m.addattempt_number = nil
}

// AttemptNumber returns the value of the "attempt_number" field in the mutation.
func (m *AnswerRecordMutation) AttemptNumber() (r int32, exists bool) {
	v := m.attempt_number
	if v == nil {
		return
	}
	return *v, true
}

// OldAttemptNumber returns the old "attempt_number" field's value of the AnswerRecord entity.
// If the AnswerRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnswerRecordMutation) OldAttemptNumber(ctx context.Context) (v int32, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAttemptNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAttemptNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAttemptNumber: %w", err)
	}
	return oldValue.AttemptNumber, nil
}

// AddAttemptNumber adds i to the "attempt_number" field.
func (m *AnswerRecordMutation) AddAttemptNumber(i int32) {
	if m.addattempt_number != nil {
		*m.addattempt_number += i
	} else {
		m.addattempt_number = &i
	}
}

// AddedAttemptNumber returns the value that was added to the "attempt_number" field in this mutation.
func (m *AnswerRecordMutation) AddedAttemptNumber() (r int32, exists bool) {
	v := m.addattempt_number
	if v == nil {
		return
	}
	return *v, true
}

// ResetAttemptNumber resets all changes to the "attempt_number" field.
func (m *AnswerRecordMutation) ResetAttemptNumber() {
	m.attempt_number = nil
	m.addattempt_number = nil
}

// SetAnsweredAt sets the "answered_at" field.
func (m *AnswerRecordMutation) SetAnsweredAt(t time.Time) {
	m.answered_at = &t
}

// AnsweredAt returns the value of the "answered_at" field in the mutation.
func (m *AnswerRecordMutation) AnsweredAt() (r time.Time, exists bool) {
	v := m.answered_at
	if v == nil {
		return
	}
	return *v, true
}

// OldAnsweredAt returns the old "answered_at" field's value of the AnswerRecord entity.
// If the AnswerRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnswerRecordMutation) OldAnsweredAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAnsweredAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAnsweredAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAnsweredAt: %w", err)
	}
	return oldValue.AnsweredAt, nil
}

// ResetAnsweredAt resets all changes to the "answered_at" field.
func (m *AnswerRecordMutation) ResetAnsweredAt() {
	m.answered_at = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *AnswerRecordMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AnswerRecordMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the AnswerRecord entity.
// If the AnswerRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnswerRecordMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *AnswerRecordMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the AnswerRecordMutation builder.
func (m *AnswerRecordMutation) Where(ps ...predicate.AnswerRecord) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AnswerRecordMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AnswerRecordMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AnswerRecord, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AnswerRecordMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AnswerRecordMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AnswerRecord).
func (m *AnswerRecordMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AnswerRecordMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.session_id != nil {
		fields = append(fields, answerrecord.FieldSessionID)
	}
	if m.task_id != nil {
		fields = append(fields, answerrecord.FieldTaskID)
	}
	if m.user_id != nil {
		fields = append(fields, answerrecord.FieldUserID)
	}
	if m.user_answer != nil {
		fields = append(fields, answerrecord.FieldUserAnswer)
	}
	if m.is_correct != nil {
		fields = append(fields, answerrecord.FieldIsCorrect)
	}
	if m.grade != nil {
		fields = append(fields, answerrecord.FieldGrade)
	}
	if m.time_spent_ms != nil {
		fields = append(fields, answerrecord.FieldTimeSpentMs)
	}
	if m.confidence != nil {
		fields = append(fields, answerrecord.FieldConfidence)
	}
	if m.attempt_number != nil {
		fields = append(fields, answerrecord.FieldAttemptNumber)
	}
	if m.answered_at != nil {
		fields = append(fields, answerrecord.FieldAnsweredAt)
	}
	if m.created_at != nil {
		fields = append(fields, answerrecord.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AnswerRecordMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case answerrecord.FieldSessionID:
		return m.SessionID()
	case answerrecord.FieldTaskID:
		return m.TaskID()
	case answerrecord.FieldUserID:
		return m.UserID()
	case answerrecord.FieldUserAnswer:
		return m.UserAnswer()
	case answerrecord.FieldIsCorrect:
		return m.IsCorrect()
	case answerrecord.FieldGrade:
		return m.Grade()
	case answerrecord.FieldTimeSpentMs:
		return m.TimeSpentMs()
	case answerrecord.FieldConfidence:
		return m.Confidence()
	case answerrecord.FieldAttemptNumber:
		return m.AttemptNumber()
	case answerrecord.FieldAnsweredAt:
		return m.AnsweredAt()
	case answerrecord.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AnswerRecordMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case answerrecord.FieldSessionID:
		return m.OldSessionID(ctx)
	case answerrecord.FieldTaskID:
		return m.OldTaskID(ctx)
	case answerrecord.FieldUserID:
		return m.OldUserID(ctx)
	case answerrecord.FieldUserAnswer:
		return m.OldUserAnswer(ctx)
	case answerrecord.FieldIsCorrect:
		return m.OldIsCorrect(ctx)
	case answerrecord.FieldGrade:
		return m.OldGrade(ctx)
	case answerrecord.FieldTimeSpentMs:
		return m.OldTimeSpentMs(ctx)
	case answerrecord.FieldConfidence:
		return m.OldConfidence(ctx)
	case answerrecord.FieldAttemptNumber:
		return m.OldAttemptNumber(ctx)
	case answerrecord.FieldAnsweredAt:
		return m.OldAnsweredAt(ctx)
	case answerrecord.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown AnswerRecord field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AnswerRecordMutation) SetField(name string, value ent.Value) error {
	switch name {
	case answerrecord.FieldSessionID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case answerrecord.FieldTaskID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTaskID(v)
		return nil
	case answerrecord.FieldUserID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case answerrecord.FieldUserAnswer:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserAnswer(v)
		return nil
	case answerrecord.FieldIsCorrect:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsCorrect(v)
		return nil
	case answerrecord.FieldGrade:
		v, ok := value.(int32)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGrade(v)
		return nil
	case answerrecord.FieldTimeSpentMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimeSpentMs(v)
		return nil
	case answerrecord.FieldConfidence:
		v, ok := value.(int32)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfidence(v)
		return nil
	case answerrecord.FieldAttemptNumber:
		v, ok := value.(int32)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAttemptNumber(v)
		return nil
	case answerrecord.FieldAnsweredAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAnsweredAt(v)
		return nil
	case answerrecord.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown AnswerRecord field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AnswerRecordMutation) AddedFields() []string {
	var fields []string
	if m.addsession_id != nil {
		fields = append(fields, answerrecord.FieldSessionID)
	}
	if m.addtask_id != nil {
		fields = append(fields, answerrecord.FieldTaskID)
	}
	if m.adduser_id != nil {
		fields = append(fields, answerrecord.FieldUserID)
	}
	if m.addgrade != nil {
		fields = append(fields, answerrecord.FieldGrade)
	}
	if m.addtime_spent_ms != nil {
		fields = append(fields, answerrecord.FieldTimeSpentMs)
	}
	if m.addconfidence != nil {
		fields = append(fields, answerrecord.FieldConfidence)
	}
	if m.addattempt_number != nil {
		fields = append(fields, answerrecord.FieldAttemptNumber)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AnswerRecordMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case answerrecord.FieldSessionID:
		return m.AddedSessionID()
	case answerrecord.FieldTaskID:
		return m.AddedTaskID()
	case answerrecord.FieldUserID:
		return m.AddedUserID()
	case answerrecord.FieldGrade:
		return m.AddedGrade()
	case answerrecord.FieldTimeSpentMs:
		return m.AddedTimeSpentMs()
	case answerrecord.FieldConfidence:
		return m.AddedConfidence()
	case answerrecord.FieldAttemptNumber:
		return m.AddedAttemptNumber()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AnswerRecordMutation) AddField(name string, value ent.Value) error {
	switch name {
	case answerrecord.FieldSessionID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSessionID(v)
		return nil
	case answerrecord.FieldTaskID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTaskID(v)
		return nil
	case answerrecord.FieldUserID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddUserID(v)
		return nil
	case answerrecord.FieldGrade:
		v, ok := value.(int32)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddGrade(v)
		return nil
	case answerrecord.FieldTimeSpentMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTimeSpentMs(v)
		return nil
	case answerrecord.FieldConfidence:
		v, ok := value.(int32)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddConfidence(v)
		return nil
	case answerrecord.FieldAttemptNumber:
		v, ok := value.(int32)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAttemptNumber(v)
		return nil
	}
	return fmt.Errorf("unknown AnswerRecord numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AnswerRecordMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AnswerRecordMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AnswerRecordMutation) ClearField(name string) error {
	return fmt.Errorf("unknown AnswerRecord nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AnswerRecordMutation) ResetField(name string) error {
	switch name {
	case answerrecord.FieldSessionID:
		m.ResetSessionID()
		return nil
	case answerrecord.FieldTaskID:
		m.ResetTaskID()
		return nil
	case answerrecord.FieldUserID:
		m.ResetUserID()
		return nil
	case answerrecord.FieldUserAnswer:
		m.ResetUserAnswer()
		return nil
	case answerrecord.FieldIsCorrect:
		m.ResetIsCorrect()
		return nil
	case answerrecord.FieldGrade:
		m.ResetGrade()
		return nil
	case answerrecord.FieldTimeSpentMs:
		m.ResetTimeSpentMs()
		return nil
	case answerrecord.FieldConfidence:
		m.ResetConfidence()
		return nil
	case answerrecord.FieldAttemptNumber:
		m.ResetAttemptNumber()
		return nil
	case answerrecord.FieldAnsweredAt:
		m.ResetAnsweredAt()
		return nil
	case answerrecord.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown AnswerRecord field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AnswerRecordMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AnswerRecordMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AnswerRecordMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AnswerRecordMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AnswerRecordMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AnswerRecordMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AnswerRecordMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown AnswerRecord unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AnswerRecordMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown AnswerRecord edge %s", name)
}

// PracticeSessionMutation represents an operation that mutates the PracticeSession nodes in the graph.
type PracticeSessionMutation struct {
	config
	op                     Op
	typ                    string
	id                     *int
	user_id                *int64
	adduser_id             *int64
	topic_id               *int64
	addtopic_id            *int64
	learning_paths         *[]int64
	appendlearning_paths   []int64
	target_count           *int32
	addtarget_count        *int32
	include_review         *bool
	difficulty_filter      *int32
	adddifficulty_filter   *int32
	tasks                  *[]int64
	appendtasks            []int64
	completed_count        *int32
	addcompleted_count     *int32
	correct_count          *int32
	addcorrect_count       *int32
	status                 *string
	started_at             *time.Time
	completed_at           *time.Time
	total_time_spent_ms    *int64
	addtotal_time_spent_ms *int64
	results                **entity.SessionResults
	created_at             *time.Time
	updated_at             *time.Time
	clearedFields          map[string]struct{}
	done                   bool
	oldValue               func(context.Context) (*PracticeSession, error)
	predicates             []predicate.PracticeSession
}

var _ ent.Mutation = (*PracticeSessionMutation)(nil)

// practicesessionOption allows management of the mutation configuration using functional options.
type practicesessionOption func(*PracticeSessionMutation)

// newPracticeSessionMutation creates new mutation for the PracticeSession entity.
func newPracticeSessionMutation(c config, op Op, opts ...practicesessionOption) *PracticeSessionMutation {
	m := &PracticeSessionMutation{
		config:        c,
		op:            op,
		typ:           TypePracticeSession,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPracticeSessionID sets the ID field of the mutation.
func withPracticeSessionID(id int) practicesessionOption {
	return func(m *PracticeSessionMutation) {
		var (
			err   error
			once  sync.Once
			value *PracticeSession
		)
		m.oldValue = func(ctx context.Context) (*PracticeSession, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().PracticeSession.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPracticeSession sets the old PracticeSession of the mutation.
func withPracticeSession(node *PracticeSession) practicesessionOption {
	return func(m *PracticeSessionMutation) {
		m.oldValue = func(context.Context) (*PracticeSession, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PracticeSessionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PracticeSessionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PracticeSessionMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PracticeSessionMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().PracticeSession.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *PracticeSessionMutation) SetUserID(i int64) {
	m.user_id = &i
	m.adduser_id = nil
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *PracticeSessionMutation) UserID() (r int64, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the PracticeSession entity.
// If the PracticeSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PracticeSessionMutation) OldUserID(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// AddUserID adds i to the "user_id" field.
func (m *PracticeSessionMutation) AddUserID(i int64) {
	if m.adduser_id != nil {
		*m.adduser_id += i
	} else {
		m.adduser_id = &i
	}
}

// AddedUserID returns the value that was added to the "user_id" field in this mutation.
func (m *PracticeSessionMutation) AddedUserID() (r int64, exists bool) {
	v := m.adduser_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetUserID resets all changes to the "user_id" field.
func (m *PracticeSessionMutation) ResetUserID() {
	m.user_id = nil
	m.adduser_id = nil
}

// SetTopicID sets the "topic_id" field.
func (m *PracticeSessionMutation) SetTopicID(i int64) {
	m.topic_id = &i
	m.addtopic_id = nil
}

// TopicID returns the value of the "topic_id" field in the mutation.
func (m *PracticeSessionMutation) TopicID() (r int64, exists bool) {
	v := m.topic_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTopicID returns the old "topic_id" field's value of the PracticeSession entity.
// If the PracticeSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PracticeSessionMutation) OldTopicID(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTopicID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTopicID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTopicID: %w", err)
	}
	return oldValue.TopicID, nil
}

// AddTopicID adds i to the "topic_id" field.
func (m *PracticeSessionMutation) AddTopicID(i int64) {
	if m.addtopic_id != nil {
		*m.addtopic_id += i
	} else {
		m.addtopic_id = &i
	}
}

// AddedTopicID returns the value that was added to the "topic_id" field in this mutation.
func (m *PracticeSessionMutation) AddedTopicID() (r int64, exists bool) {
	v := m.addtopic_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetTopicID resets all changes to the "topic_id" field.
func (m *PracticeSessionMutation) ResetTopicID() {
	m.topic_id = nil
	m.addtopic_id = nil
}

// SetLearningPaths sets the "learning_paths" field.
func (m *PracticeSessionMutation) SetLearningPaths(i []int64) {
	m.learning_paths = &i
	m.appendlearning_paths = nil
}

// LearningPaths returns the value of the "learning_paths" field in the mutation.
func (m *PracticeSessionMutation) LearningPaths() (r []int64, exists bool) {
	v := m.learning_paths
	if v == nil {
		return
	}
	return *v, true
}

// OldLearningPaths returns the old "learning_paths" field's value of the PracticeSession entity.
// If the PracticeSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PracticeSessionMutation) OldLearningPaths(ctx context.Context) (v []int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLearningPaths is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLearningPaths requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLearningPaths: %w", err)
	}
	return oldValue.LearningPaths, nil
}

// AppendLearningPaths adds i to the "learning_paths" field.
func (m *PracticeSessionMutation) AppendLearningPaths(i []int64) {
	m.appendlearning_paths = append(m.appendlearning_paths, i...)
}

// AppendedLearningPaths returns the list of values that were appended to the "learning_paths" field in this mutation.
func (m *PracticeSessionMutation) AppendedLearningPaths() ([]int64, bool) {
	if len(m.appendlearning_paths) == 0 {
		return nil, false
	}
	return m.appendlearning_paths, true
}

// ResetLearningPaths resets all changes to the "learning_paths" field.
func (m *PracticeSessionMutation) ResetLearningPaths() {
	m.learning_paths = nil
	m.appendlearning_paths = nil
}

// SetTargetCount sets the "target_count" field.
func (m *PracticeSessionMutation) SetTargetCount(i int32) {
	m.target_count = &i
	m.addtarget_count = nil
}

// TargetCount returns the value of the "target_count" field in the mutation.
func (m *PracticeSessionMutation) TargetCount() (r int32, exists bool) {
	v := m.target_count
	if v == nil {
		return
	}
	return *v, true
}

// OldTargetCount returns the old "target_count" field's value of the PracticeSession entity.
// If the PracticeSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PracticeSessionMutation) OldTargetCount(ctx context.Context) (v int32, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTargetCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTargetCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTargetCount: %w", err)
	}
	return oldValue.TargetCount, nil
}

// AddTargetCount adds i to the "target_count" field.
func (m *PracticeSessionMutation) AddTargetCount(i int32) {
	if m.addtarget_count != nil {
		*m.addtarget_count += i
	} else {
		m.addtarget_count = &i
	}
}

// AddedTargetCount returns the value that was added to the "target_count" field in this mutation.
func (m *PracticeSessionMutation) AddedTargetCount() (r int32, exists bool) {
	v := m.addtarget_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetTargetCount resets all changes to the "target_count" field.
func (m *PracticeSessionMutation) ResetTargetCount() {
	m.target_count = nil
	m.addtarget_count = nil
}

// SetIncludeReview sets the "include_review" field.
func (m *PracticeSessionMutation) SetIncludeReview(b bool) {
	m.include_review = &b
}

// IncludeReview returns the value of the "include_review" field in the mutation.
func (m *PracticeSessionMutation) IncludeReview() (r bool, exists bool) {
	v := m.include_review
	if v == nil {
		return
	}
	return *v, true
}

// OldIncludeReview returns the old "include_review" field's value of the PracticeSession entity.
// If the PracticeSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PracticeSessionMutation) OldIncludeReview(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIncludeReview is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIncludeReview requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIncludeReview: %w", err)
	}
	return oldValue.IncludeReview, nil
}

// ResetIncludeReview resets all changes to the "include_review" field.
func (m *PracticeSessionMutation) ResetIncludeReview() {
	m.include_review = nil
}

// SetDifficultyFilter sets the "difficulty_filter" field.
func (m *PracticeSessionMutation) SetDifficultyFilter(i int32) {
	m.difficulty_filter = &i
	m.adddifficulty_filter = nil
}

// DifficultyFilter returns the value of the "difficulty_filter" field in the mutation.
func (m *PracticeSessionMutation) DifficultyFilter() (r int32, exists bool) {
	v := m.difficulty_filter
	if v == nil {
		return
	}
	return *v, true
}

// OldDifficultyFilter returns the old "difficulty_filter" field's value of the PracticeSession entity.
// If the PracticeSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PracticeSessionMutation) OldDifficultyFilter(ctx context.Context) (v *int32, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDifficultyFilter is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDifficultyFilter requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDifficultyFilter: %w", err)
	}
	return oldValue.DifficultyFilter, nil
}

// AddDifficultyFilter adds i to the "difficulty_filter" field.
func (m *PracticeSessionMutation) AddDifficultyFilter(i int32) {
	if m.adddifficulty_filter != nil {
		*m.adddifficulty_filter += i
	} else {
		m.adddifficulty_filter = &i
	}
}

// AddedDifficultyFilter returns the value that was added to the "difficulty_filter" field in this mutation.
func (m *PracticeSessionMutation) AddedDifficultyFilter() (r int32, exists bool) {
	v := m.adddifficulty_filter
	if v == nil {
		return
	}
	return *v, true
}

// ClearDifficultyFilter clears the value of the "difficulty_filter" field.
func (m *PracticeSessionMutation) ClearDifficultyFilter() {
	m.difficulty_filter = nil
	m.adddifficulty_filter = nil
	m.clearedFields[practicesession.FieldDifficultyFilter] = struct{}{}
}

// DifficultyFilterCleared returns if the "difficulty_filter" field was cleared in this mutation.
func (m *PracticeSessionMutation) DifficultyFilterCleared() bool {
	_, ok := m.clearedFields[practicesession.FieldDifficultyFilter]
	return ok
}

// ResetDifficultyFilter resets all changes to the "difficulty_filter" field.
func (m *PracticeSessionMutation) ResetDifficultyFilter() {
	m.difficulty_filter = nil
	m.adddifficulty_filter = nil
	delete(m.clearedFields, practicesession.FieldDifficultyFilter)
}

// SetTasks sets the "tasks" field.
func (m *PracticeSessionMutation) SetTasks(i []int64) {
	m.tasks = &i
	m.appendtasks = nil
}

// Tasks returns the value of the "tasks" field in the mutation.
func (m *PracticeSessionMutation) Tasks() (r []int64, exists bool) {
	v := m.tasks
	if v == nil {
		return
	}
	return *v, true
}

// OldTasks returns the old "tasks" field's value of the PracticeSession entity.
// If the PracticeSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PracticeSessionMutation) OldTasks(ctx context.Context) (v []int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTasks is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTasks requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTasks: %w", err)
	}
	return oldValue.Tasks, nil
}

// AppendTasks adds i to the "tasks" field.
func (m *PracticeSessionMutation) AppendTasks(i []int64) {
	m.appendtasks = append(m.appendtasks, i...)
}

// AppendedTasks returns the list of values that were appended to the "tasks" field in this mutation.
func (m *PracticeSessionMutation) AppendedTasks() ([]int64, bool) {
	if len(m.appendtasks) == 0 {
		return nil, false
	}
	return m.appendtasks, true
}

// ResetTasks resets all changes to the "tasks" field.
func (m *PracticeSessionMutation) ResetTasks() {
	m.tasks = nil
	m.appendtasks = nil
}

// SetCompletedCount sets the "completed_count" field.
func (m *PracticeSessionMutation) SetCompletedCount(i int32) {
	m.completed_count = &i
	m.addcompleted_count = nil
}

// CompletedCount returns the value of the "completed_count" field in the mutation.
func (m *PracticeSessionMutation) CompletedCount() (r int32, exists bool) {
	v := m.completed_count
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedCount returns the old "completed_count" field's value of the PracticeSession entity.
// If the PracticeSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PracticeSessionMutation) OldCompletedCount(ctx context.Context) (v int32, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedCount: %w", err)
	}
	return oldValue.CompletedCount, nil
}

// AddCompletedCount adds i to the "completed_count" field.
func (m *PracticeSessionMutation) AddCompletedCount(i int32) {
	if m.addcompleted_count != nil {
		*m.addcompleted_count += i
	} else {
		m.addcompleted_count = &i
	}
}

// AddedCompletedCount returns the value that was added to the "completed_count" field in this mutation.
func (m *PracticeSessionMutation) AddedCompletedCount() (r int32, exists bool) {
	v := m.addcompleted_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetCompletedCount resets all changes to the "completed_count" field.
func (m *PracticeSessionMutation) ResetCompletedCount() {
	m.completed_count = nil
	m.addcompleted_count = nil
}

// SetCorrectCount sets the "correct_count" field.
func (m *PracticeSessionMutation) SetCorrectCount(i int32) {
	m.correct_count = &i
	m.addcorrect_count = nil
}

// CorrectCount returns the value of the "correct_count" field in the mutation.
func (m *PracticeSessionMutation) CorrectCount() (r int32, exists bool) {
	v := m.correct_count
	if v == nil {
		return
	}
	return *v, true
}

// OldCorrectCount returns the old "correct_count" field's value of the PracticeSession entity.
// If the PracticeSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PracticeSessionMutation) OldCorrectCount(ctx context.Context) (v int32, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCorrectCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCorrectCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCorrectCount: %w", err)
	}
	return oldValue.CorrectCount, nil
}

// AddCorrectCount adds i to the "correct_count" field.
func (m *PracticeSessionMutation) AddCorrectCount(i int32) {
	if m.addcorrect_count != nil {
		*m.addcorrect_count += i
	} else {
		m.addcorrect_count = &i
	}
}

// AddedCorrectCount returns the value that was added to the "correct_count" field in this mutation.
func (m *PracticeSessionMutation) AddedCorrectCount() (r int32, exists bool) {
	v := m.addcorrect_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetCorrectCount resets all changes to the "correct_count" field.
func (m *PracticeSessionMutation) ResetCorrectCount() {
	m.correct_count = nil
	m.addcorrect_count = nil
}

// SetStatus sets the "status" field.
func (m *PracticeSessionMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *PracticeSessionMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the PracticeSession entity.
// If the PracticeSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PracticeSessionMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *PracticeSessionMutation) ResetStatus() {
	m.status = nil
}

// SetStartedAt sets the "started_at" field.
func (m *PracticeSessionMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *PracticeSessionMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the PracticeSession entity.
// If the PracticeSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PracticeSessionMutation) OldStartedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ClearStartedAt clears the value of the "started_at" field.
func (m *PracticeSessionMutation) ClearStartedAt() {
	m.started_at = nil
	m.clearedFields[practicesession.FieldStartedAt] = struct{}{}
}

// StartedAtCleared returns if the "started_at" field was cleared in this mutation.
func (m *PracticeSessionMutation) StartedAtCleared() bool {
	_, ok := m.clearedFields[practicesession.FieldStartedAt]
	return ok
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *PracticeSessionMutation) ResetStartedAt() {
	m.started_at = nil
	delete(m.clearedFields, practicesession.FieldStartedAt)
}

// SetCompletedAt sets the "completed_at" field.
func (m *PracticeSessionMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *PracticeSessionMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the PracticeSession entity.
// If the PracticeSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PracticeSessionMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *PracticeSessionMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[practicesession.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *PracticeSessionMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[practicesession.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *PracticeSessionMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, practicesession.FieldCompletedAt)
}

// SetTotalTimeSpentMs sets the "total_time_spent_ms" field.
func (m *PracticeSessionMutation) SetTotalTimeSpentMs(i int64) {
	m.total_time_spent_ms = &i
	m.addtotal_time_spent_ms = nil
}

// TotalTimeSpentMs returns the value of the "total_time_spent_ms" field in the mutation.
func (m *PracticeSessionMutation) TotalTimeSpentMs() (r int64, exists bool) {
	v := m.total_time_spent_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalTimeSpentMs returns the old "total_time_spent_ms" field's value of the PracticeSession entity.
// If the PracticeSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PracticeSessionMutation) OldTotalTimeSpentMs(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalTimeSpentMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalTimeSpentMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalTimeSpentMs: %w", err)
	}
	return oldValue.TotalTimeSpentMs, nil
}

// AddTotalTimeSpentMs adds i to the "total_time_spent_ms" field.
func (m *PracticeSessionMutation) AddTotalTimeSpentMs(i int64) {
	if m.addtotal_time_spent_ms != nil {
		*m.addtotal_time_spent_ms += i
	} else {
		m.addtotal_time_spent_ms = &i
	}
}

// AddedTotalTimeSpentMs returns the value that was added to the "total_time_spent_ms" field in this mutation.
func (m *PracticeSessionMutation) AddedTotalTimeSpentMs() (r int64, exists bool) {
	v := m.addtotal_time_spent_ms
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalTimeSpentMs resets all changes to the "total_time_spent_ms" field.
func (m *PracticeSessionMutation) ResetTotalTimeSpentMs() {
	m.total_time_spent_ms = nil
	m.addtotal_time_spent_ms = nil
}

// SetResults sets the "results" field.
func (m *PracticeSessionMutation) SetResults(er *entity.SessionResults) {
	m.results = &er
}

// Results returns the value of the "results" field in the mutation.
func (m *PracticeSessionMutation) Results() (r *entity.SessionResults, exists bool) {
	v := m.results
	if v == nil {
		return
	}
	return *v, true
}

// OldResults returns the old "results" field's value of the PracticeSession entity.
// If the PracticeSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PracticeSessionMutation) OldResults(ctx context.Context) (v *entity.SessionResults, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResults is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResults requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResults: %w", err)
	}
	return oldValue.Results, nil
}

// ClearResults clears the value of the "results" field.
func (m *PracticeSessionMutation) ClearResults() {
	m.results = nil
	m.clearedFields[practicesession.FieldResults] = struct{}{}
}

// ResultsCleared returns if the "results" field was cleared in this mutation.
func (m *PracticeSessionMutation) ResultsCleared() bool {
	_, ok := m.clearedFields[practicesession.FieldResults]
	return ok
}

// ResetResults resets all changes to the "results" field.
func (m *PracticeSessionMutation) ResetResults() {
	m.results = nil
	delete(m.clearedFields, practicesession.FieldResults)
}

// SetCreatedAt sets the "created_at" field.
func (m *PracticeSessionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *PracticeSessionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the PracticeSession entity.
// If the PracticeSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PracticeSessionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *PracticeSessionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *PracticeSessionMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *PracticeSessionMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the PracticeSession entity.
// If the PracticeSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PracticeSessionMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *PracticeSessionMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the PracticeSessionMutation builder.
func (m *PracticeSessionMutation) Where(ps ...predicate.PracticeSession) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PracticeSessionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PracticeSessionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.PracticeSession, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PracticeSessionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PracticeSessionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (PracticeSession).
func (m *PracticeSessionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PracticeSessionMutation) Fields() []string {
	fields := make([]string, 0, 16)
	if m.user_id != nil {
		fields = append(fields, practicesession.FieldUserID)
	}
	if m.topic_id != nil {
		fields = append(fields, practicesession.FieldTopicID)
	}
	if m.learning_paths != nil {
		fields = append(fields, practicesession.FieldLearningPaths)
	}
	if m.target_count != nil {
		fields = append(fields, practicesession.FieldTargetCount)
	}
	if m.include_review != nil {
		fields = append(fields, practicesession.FieldIncludeReview)
	}
	if m.difficulty_filter != nil {
		fields = append(fields, practicesession.FieldDifficultyFilter)
	}
	if m.tasks != nil {
		fields = append(fields, practicesession.FieldTasks)
	}
	if m.completed_count != nil {
		fields = append(fields, practicesession.FieldCompletedCount)
	}
	if m.correct_count != nil {
		fields = append(fields, practicesession.FieldCorrectCount)
	}
	if m.status != nil {
		fields = append(fields, practicesession.FieldStatus)
	}
	if m.started_at != nil {
		fields = append(fields, practicesession.FieldStartedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, practicesession.FieldCompletedAt)
	}
	if m.total_time_spent_ms != nil {
		fields = append(fields, practicesession.FieldTotalTimeSpentMs)
	}
	if m.results != nil {
		fields = append(fields, practicesession.FieldResults)
	}
	if m.created_at != nil {
		fields = append(fields, practicesession.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, practicesession.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PracticeSessionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case practicesession.FieldUserID:
		return m.UserID()
	case practicesession.FieldTopicID:
		return m.TopicID()
	case practicesession.FieldLearningPaths:
		return m.LearningPaths()
	case practicesession.FieldTargetCount:
		return m.TargetCount()
	case practicesession.FieldIncludeReview:
		return m.IncludeReview()
	case practicesession.FieldDifficultyFilter:
		return m.DifficultyFilter()
	case practicesession.FieldTasks:
		return m.Tasks()
	case practicesession.FieldCompletedCount:
		return m.CompletedCount()
	case practicesession.FieldCorrectCount:
		return m.CorrectCount()
	case practicesession.FieldStatus:
		return m.Status()
	case practicesession.FieldStartedAt:
		return m.StartedAt()
	case practicesession.FieldCompletedAt:
		return m.CompletedAt()
	case practicesession.FieldTotalTimeSpentMs:
		return m.TotalTimeSpentMs()
	case practicesession.FieldResults:
		return m.Results()
	case practicesession.FieldCreatedAt:
		return m.CreatedAt()
	case practicesession.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PracticeSessionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case practicesession.FieldUserID:
		return m.OldUserID(ctx)
	case practicesession.FieldTopicID:
		return m.OldTopicID(ctx)
	case practicesession.FieldLearningPaths:
		return m.OldLearningPaths(ctx)
	case practicesession.FieldTargetCount:
		return m.OldTargetCount(ctx)
	case practicesession.FieldIncludeReview:
		return m.OldIncludeReview(ctx)
	case practicesession.FieldDifficultyFilter:
		return m.OldDifficultyFilter(ctx)
	case practicesession.FieldTasks:
		return m.OldTasks(ctx)
	case practicesession.FieldCompletedCount:
		return m.OldCompletedCount(ctx)
	case practicesession.FieldCorrectCount:
		return m.OldCorrectCount(ctx)
	case practicesession.FieldStatus:
		return m.OldStatus(ctx)
	case practicesession.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case practicesession.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	case practicesession.FieldTotalTimeSpentMs:
		return m.OldTotalTimeSpentMs(ctx)
	case practicesession.FieldResults:
		return m.OldResults(ctx)
	case practicesession.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case practicesession.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown PracticeSession field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PracticeSessionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case practicesession.FieldUserID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case practicesession.FieldTopicID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTopicID(v)
		return nil
	case practicesession.FieldLearningPaths:
		v, ok := value.([]int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLearningPaths(v)
		return nil
	case practicesession.FieldTargetCount:
		v, ok := value.(int32)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTargetCount(v)
		return nil
	case practicesession.FieldIncludeReview:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIncludeReview(v)
		return nil
	case practicesession.FieldDifficultyFilter:
		v, ok := value.(int32)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDifficultyFilter(v)
		return nil
	case practicesession.FieldTasks:
		v, ok := value.([]int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTasks(v)
		return nil
	case practicesession.FieldCompletedCount:
		v, ok := value.(int32)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedCount(v)
		return nil
	case practicesession.FieldCorrectCount:
		v, ok := value.(int32)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCorrectCount(v)
		return nil
	case practicesession.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case practicesession.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case practicesession.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	case practicesession.FieldTotalTimeSpentMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalTimeSpentMs(v)
		return nil
	case practicesession.FieldResults:
		v, ok := value.(*entity.SessionResults)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResults(v)
		return nil
	case practicesession.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case practicesession.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown PracticeSession field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PracticeSessionMutation) AddedFields() []string {
	var fields []string
	if m.adduser_id != nil {
		fields = append(fields, practicesession.FieldUserID)
	}
	if m.addtopic_id != nil {
		fields = append(fields, practicesession.FieldTopicID)
	}
	if m.addtarget_count != nil {
		fields = append(fields, practicesession.FieldTargetCount)
	}
	if m.adddifficulty_filter != nil {
		fields = append(fields, practicesession.FieldDifficultyFilter)
	}
	if m.addcompleted_count != nil {
		fields = append(fields, practicesession.FieldCompletedCount)
	}
	if m.addcorrect_count != nil {
		fields = append(fields, practicesession.FieldCorrectCount)
	}
	if m.addtotal_time_spent_ms != nil {
		fields = append(fields, practicesession.FieldTotalTimeSpentMs)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PracticeSessionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case practicesession.FieldUserID:
		return m.AddedUserID()
	case practicesession.FieldTopicID:
		return m.AddedTopicID()
	case practicesession.FieldTargetCount:
		return m.AddedTargetCount()
	case practicesession.FieldDifficultyFilter:
		return m.AddedDifficultyFilter()
	case practicesession.FieldCompletedCount:
		return m.AddedCompletedCount()
	case practicesession.FieldCorrectCount:
		return m.AddedCorrectCount()
	case practicesession.FieldTotalTimeSpentMs:
		return m.AddedTotalTimeSpentMs()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PracticeSessionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case practicesession.FieldUserID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddUserID(v)
		return nil
	case practicesession.FieldTopicID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTopicID(v)
		return nil
	case practicesession.FieldTargetCount:
		v, ok := value.(int32)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTargetCount(v)
		return nil
	case practicesession.FieldDifficultyFilter:
		v, ok := value.(int32)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDifficultyFilter(v)
		return nil
	case practicesession.FieldCompletedCount:
		v, ok := value.(int32)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCompletedCount(v)
		return nil
	case practicesession.FieldCorrectCount:
		v, ok := value.(int32)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCorrectCount(v)
		return nil
	case practicesession.FieldTotalTimeSpentMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalTimeSpentMs(v)
		return nil
	}
	return fmt.Errorf("unknown PracticeSession numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PracticeSessionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(practicesession.FieldDifficultyFilter) {
		fields = append(fields, practicesession.FieldDifficultyFilter)
	}
	if m.FieldCleared(practicesession.FieldStartedAt) {
		fields = append(fields, practicesession.FieldStartedAt)
	}
	if m.FieldCleared(practicesession.FieldCompletedAt) {
		fields = append(fields, practicesession.FieldCompletedAt)
	}
	if m.FieldCleared(practicesession.FieldResults) {
		fields = append(fields, practicesession.FieldResults)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PracticeSessionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PracticeSessionMutation) ClearField(name string) error {
	switch name {
	case practicesession.FieldDifficultyFilter:
		m.ClearDifficultyFilter()
		return nil
	case practicesession.FieldStartedAt:
		m.ClearStartedAt()
		return nil
	case practicesession.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	case practicesession.FieldResults:
		m.ClearResults()
		return nil
	}
	return fmt.Errorf("unknown PracticeSession nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PracticeSessionMutation) ResetField(name string) error {
	switch name {
	case practicesession.FieldUserID:
		m.ResetUserID()
		return nil
	case practicesession.FieldTopicID:
		m.ResetTopicID()
		return nil
	case practicesession.FieldLearningPaths:
		m.ResetLearningPaths()
		return nil
	case practicesession.FieldTargetCount:
		m.ResetTargetCount()
		return nil
	case practicesession.FieldIncludeReview:
		m.ResetIncludeReview()
		return nil
	case practicesession.FieldDifficultyFilter:
		m.ResetDifficultyFilter()
		return nil
	case practicesession.FieldTasks:
		m.ResetTasks()
		return nil
	case practicesession.FieldCompletedCount:
		m.ResetCompletedCount()
		return nil
	case practicesession.FieldCorrectCount:
		m.ResetCorrectCount()
		return nil
	case practicesession.FieldStatus:
		m.ResetStatus()
		return nil
	case practicesession.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case practicesession.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	case practicesession.FieldTotalTimeSpentMs:
		m.ResetTotalTimeSpentMs()
		return nil
	case practicesession.FieldResults:
		m.ResetResults()
		return nil
	case practicesession.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case practicesession.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown PracticeSession field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PracticeSessionMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PracticeSessionMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PracticeSessionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PracticeSessionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PracticeSessionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PracticeSessionMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PracticeSessionMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown PracticeSession unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PracticeSessionMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown PracticeSession edge %s", name)
}

// ReviewItemMutation represents an operation that mutates the ReviewItem nodes in the graph.
type ReviewItemMutation struct {
	config
	op                     Op
	typ                    string
	id                     *int
	user_id                *int64
	adduser_id             *int64
	task_id                *int64
	addtask_id             *int64
	interval_days          *int32
	addinterval_days       *int32
	repetition             *int32
	addrepetition          *int32
	efactor                *float64
	addefactor             *float64
	next_review            *time.Time
	last_reviewed          *time.Time
	total_reviews          *int32
	addtotal_reviews       *int32
	consecutive_correct    *int32
	addconsecutive_correct *int32
	average_accuracy       *float64
	addaverage_accuracy    *float64
	average_time_ms        *float64
	addaverage_time_ms     *float64
	difficulty_rating      *int32
	adddifficulty_rating   *int32
	last_grade             *int32
	addlast_grade          *int32
	introduced             *time.Time
	graduated              *bool
	lapse_count            *int32
	addlapse_count         *int32
	created_at             *time.Time
	updated_at             *time.Time
	clearedFields          map[string]struct{}
	done                   bool
	oldValue               func(context.Context) (*ReviewItem, error)
	predicates             []predicate.ReviewItem
}

var _ ent.Mutation = (*ReviewItemMutation)(nil)

// reviewitemOption allows management of the mutation configuration using functional options.
type reviewitemOption func(*ReviewItemMutation)

// newReviewItemMutation creates new mutation for the ReviewItem entity.
func newReviewItemMutation(c config, op Op, opts ...reviewitemOption) *ReviewItemMutation {
	m := &ReviewItemMutation{
		config:        c,
		op:            op,
		typ:           TypeReviewItem,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withReviewItemID sets the ID field of the mutation.
func withReviewItemID(id int) reviewitemOption {
	return func(m *ReviewItemMutation) {
		var (
			err   error
			once  sync.Once
			value *ReviewItem
		)
		m.oldValue = func(ctx context.Context) (*ReviewItem, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ReviewItem.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withReviewItem sets the old ReviewItem of the mutation.
func withReviewItem(node *ReviewItem) reviewitemOption {
	return func(m *ReviewItemMutation) {
		m.oldValue = func(context.Context) (*ReviewItem, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ReviewItemMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ReviewItemMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ReviewItemMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ReviewItemMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ReviewItem.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *ReviewItemMutation) SetUserID(i int64) {
	m.user_id = &i
	m.adduser_id = nil
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *ReviewItemMutation) UserID() (r int64, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the ReviewItem entity.
// If the ReviewItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReviewItemMutation) OldUserID(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// AddUserID adds i to the "user_id" field.
func (m *ReviewItemMutation) AddUserID(i int64) {
	if m.adduser_id != nil {
		*m.adduser_id += i
	} else {
		m.adduser_id = &i
	}
}

// AddedUserID returns the value that was added to the "user_id" field in this mutation.
func (m *ReviewItemMutation) AddedUserID() (r int64, exists bool) {
	v := m.adduser_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetUserID resets all changes to the "user_id" field.
func (m *ReviewItemMutation) ResetUserID() {
	m.user_id = nil
	m.adduser_id = nil
}

// SetTaskID sets the "task_id" field.
func (m *ReviewItemMutation) SetTaskID(i int64) {
	m.task_id = &i
	m.addtask_id = nil
}

// TaskID returns the value of the "task_id" field in the mutation.
func (m *ReviewItemMutation) TaskID() (r int64, exists bool) {
	v := m.task_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTaskID returns the old "task_id" field's value of the ReviewItem entity.
// If the ReviewItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReviewItemMutation) OldTaskID(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTaskID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTaskID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTaskID: %w", err)
	}
	return oldValue.TaskID, nil
}

// AddTaskID adds i to the "task_id" field.
func (m *ReviewItemMutation) AddTaskID(i int64) {
	if m.addtask_id != nil {
		*m.addtask_id += i
	} else {
		m.addtask_id = &i
	}
}

// AddedTaskID returns the value that was added to the "task_id" field in this mutation.
func (m *ReviewItemMutation) AddedTaskID() (r int64, exists bool) {
	v := m.addtask_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetTaskID resets all changes to the "task_id" field.
func (m *ReviewItemMutation) ResetTaskID() {
	m.task_id = nil
	m.addtask_id = nil
}

// SetIntervalDays sets the "interval_days" field.
func (m *ReviewItemMutation) SetIntervalDays(i int32) {
	m.interval_days = &i
	m.addinterval_days = nil
}

// IntervalDays returns the value of the "interval_days" field in the mutation.
func (m *ReviewItemMutation) IntervalDays() (r int32, exists bool) {
	v := m.interval_days
	if v == nil {
		return
	}
	return *v, true
}

// OldIntervalDays returns the old "interval_days" field's value of the ReviewItem entity.
// If the ReviewItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReviewItemMutation) OldIntervalDays(ctx context.Context) (v int32, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIntervalDays is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIntervalDays requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIntervalDays: %w", err)
	}
	return oldValue.IntervalDays, nil
}

// AddIntervalDays adds i to the "interval_days" field.
func (m *ReviewItemMutation) AddIntervalDays(i int32) {
	if m.addinterval_days != nil {
		*m.addinterval_days += i
	} else {
		m.addinterval_days = &i
	}
}

// AddedIntervalDays returns the value that was added to the "interval_days" field in this mutation.
func (m *ReviewItemMutation) AddedIntervalDays() (r int32, exists bool) {
	v := m.addinterval_days
	if v == nil {
		return
	}
	return *v, true
}

// ResetIntervalDays resets all changes to the "interval_days" field.
func (m *ReviewItemMutation) ResetIntervalDays() {
	m.interval_days = nil
	m.addinterval_days = nil
}

// SetRepetition sets the "repetition" field.
func (m *ReviewItemMutation) SetRepetition(i int32) {
	m.repetition = &i
	m.addrepetition = nil
}

// Repetition returns the value of the "repetition" field in the mutation.
func (m *ReviewItemMutation) Repetition() (r int32, exists bool) {
	v := m.repetition
	if v == nil {
		return
	}
	return *v, true
}

// OldRepetition returns the old "repetition" field's value of the ReviewItem entity.
// If the ReviewItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReviewItemMutation) OldRepetition(ctx context.Context) (v int32, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRepetition is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRepetition requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRepetition: %w", err)
	}
	return oldValue.Repetition, nil
}

// AddRepetition adds i to the "repetition" field.
func (m *ReviewItemMutation) AddRepetition(i int32) {
	if m.addrepetition != nil {
		*m.addrepetition += i
	} else {
		m.addrepetition = &i
	}
}

// AddedRepetition returns the value that was added to the "repetition" field in this mutation.
func (m *ReviewItemMutation) AddedRepetition() (r int32, exists bool) {
	v := m.addrepetition
	if v == nil {
		return
	}
	return *v, true
}

// ResetRepetition resets all changes to the "repetition" field.
func (m *ReviewItemMutation) ResetRepetition() {
	m.repetition = nil
	m.addrepetition = nil
}

// SetEfactor sets the "efactor" field.
func (m *ReviewItemMutation) SetEfactor(f float64) {
	m.efactor = &f
	m.addefactor = nil
}

// Efactor returns the value of the "efactor" field in the mutation.
func (m *ReviewItemMutation) Efactor() (r float64, exists bool) {
	v := m.efactor
	if v == nil {
		return
	}
	return *v, true
}

// OldEfactor returns the old "efactor" field's value of the ReviewItem entity.
// If the ReviewItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReviewItemMutation) OldEfactor(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEfactor is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEfactor requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEfactor: %w", err)
	}
	return oldValue.Efactor, nil
}

// AddEfactor adds f to the "efactor" field.
func (m *ReviewItemMutation) AddEfactor(f float64) {
	if m.addefactor != nil {
		*m.addefactor += f
	} else {
		m.addefactor = &f
	}
}

// AddedEfactor returns the value that was added to the "efactor" field in this mutation.
func (m *ReviewItemMutation) AddedEfactor() (r float64, exists bool) {
	v := m.addefactor
	if v == nil {
		return
	}
	return *v, true
}

// ResetEfactor resets all changes to the "efactor" field.
func (m *ReviewItemMutation) ResetEfactor() {
	m.efactor = nil
	m.addefactor = nil
}

// SetNextReview sets the "next_review" field.
func (m *ReviewItemMutation) SetNextReview(t time.Time) {
	m.next_review = &t
}

// NextReview returns the value of the "next_review" field in the mutation.
func (m *ReviewItemMutation) NextReview() (r time.Time, exists bool) {
	v := m.next_review
	if v == nil {
		return
	}
	return *v, true
}

// OldNextReview returns the old "next_review" field's value of the ReviewItem entity.
// If the ReviewItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReviewItemMutation) OldNextReview(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNextReview is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNextReview requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNextReview: %w", err)
	}
	return oldValue.NextReview, nil
}

// ResetNextReview resets all changes to the "next_review" field.
func (m *ReviewItemMutation) ResetNextReview() {
	m.next_review = nil
}

// SetLastReviewed sets the "last_reviewed" field.
func (m *ReviewItemMutation) SetLastReviewed(t time.Time) {
	m.last_reviewed = &t
}

// LastReviewed returns the value of the "last_reviewed" field in the mutation.
func (m *ReviewItemMutation) LastReviewed() (r time.Time, exists bool) {
	v := m.last_reviewed
	if v == nil {
		return
	}
	return *v, true
}

// OldLastReviewed returns the old "last_reviewed" field's value of the ReviewItem entity.
// If the ReviewItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReviewItemMutation) OldLastReviewed(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastReviewed is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastReviewed requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastReviewed: %w", err)
	}
	return oldValue.LastReviewed, nil
}

// ClearLastReviewed clears the value of the "last_reviewed" field.
func (m *ReviewItemMutation) ClearLastReviewed() {
	m.last_reviewed = nil
	m.clearedFields[reviewitem.FieldLastReviewed] = struct{}{}
}

// LastReviewedCleared returns if the "last_reviewed" field was cleared in this mutation.
func (m *ReviewItemMutation) LastReviewedCleared() bool {
	_, ok := m.clearedFields[reviewitem.FieldLastReviewed]
	return ok
}

// ResetLastReviewed resets all changes to the "last_reviewed" field.
func (m *ReviewItemMutation) ResetLastReviewed() {
	m.last_reviewed = nil
	delete(m.clearedFields, reviewitem.FieldLastReviewed)
}

// SetTotalReviews sets the "total_reviews" field.
func (m *ReviewItemMutation) SetTotalReviews(i int32) {
	m.total_reviews = &i
	m.addtotal_reviews = nil
}

// TotalReviews returns the value of the "total_reviews" field in the mutation.
func (m *ReviewItemMutation) TotalReviews() (r int32, exists bool) {
	v := m.total_reviews
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalReviews returns the old "total_reviews" field's value of the ReviewItem entity.
// If the ReviewItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReviewItemMutation) OldTotalReviews(ctx context.Context) (v int32, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalReviews is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalReviews requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalReviews: %w", err)
	}
	return oldValue.TotalReviews, nil
}

// AddTotalReviews adds i to the "total_reviews" field.
func (m *ReviewItemMutation) AddTotalReviews(i int32) {
	if m.addtotal_reviews != nil {
		*m.addtotal_reviews += i
	} else {
		m.addtotal_reviews = &i
	}
}

// AddedTotalReviews returns the value that was added to the "total_reviews" field in this mutation.
func (m *ReviewItemMutation) AddedTotalReviews() (r int32, exists bool) {
	v := m.addtotal_reviews
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalReviews resets all changes to the "total_reviews" field.
func (m *ReviewItemMutation) ResetTotalReviews() {
	m.total_reviews = nil
	m.addtotal_reviews = nil
}

// SetConsecutiveCorrect sets the "consecutive_correct" field.
func (m *ReviewItemMutation) SetConsecutiveCorrect(i int32) {
	m.consecutive_correct = &i
	m.addconsecutive_correct = nil
}

// ConsecutiveCorrect returns the value of the "consecutive_correct" field in the mutation.
func (m *ReviewItemMutation) ConsecutiveCorrect() (r int32, exists bool) {
	v := m.consecutive_correct
	if v == nil {
		return
	}
	return *v, true
}

// OldConsecutiveCorrect returns the old "consecutive_correct" field's value of the ReviewItem entity.
// If the ReviewItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReviewItemMutation) OldConsecutiveCorrect(ctx context.Context) (v int32, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConsecutiveCorrect is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConsecutiveCorrect requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConsecutiveCorrect: %w", err)
	}
	return oldValue.ConsecutiveCorrect, nil
}

// AddConsecutiveCorrect adds i to the "consecutive_correct" field.
func (m *ReviewItemMutation) AddConsecutiveCorrect(i int32) {
	if m.addconsecutive_correct != nil {
		*m.addconsecutive_correct += i
	} else {
		m.addconsecutive_correct = &i
	}
}

// AddedConsecutiveCorrect returns the value that was added to the "consecutive_correct" field in this mutation.
func (m *ReviewItemMutation) AddedConsecutiveCorrect() (r int32, exists bool) {
	v := m.addconsecutive_correct
	if v == nil {
		return
	}
	return *v, true
}

// ResetConsecutiveCorrect resets all changes to the "consecutive_correct" field.
func (m *ReviewItemMutation) ResetConsecutiveCorrect() {
	m.consecutive_correct = nil
	m.addconsecutive_correct = nil
}

// SetAverageAccuracy sets the "average_accuracy" field.
func (m *ReviewItemMutation) SetAverageAccuracy(f float64) {
	m.average_accuracy = &f
	m.addaverage_accuracy = nil
}

// AverageAccuracy returns the value of the "average_accuracy" field in the mutation.
func (m *ReviewItemMutation) AverageAccuracy() (r float64, exists bool) {
	v := m.average_accuracy
	if v == nil {
		return
	}
	return *v, true
}

// OldAverageAccuracy returns the old "average_accuracy" field's value of the ReviewItem entity.
// If the ReviewItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReviewItemMutation) OldAverageAccuracy(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAverageAccuracy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAverageAccuracy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAverageAccuracy: %w", err)
	}
	return oldValue.AverageAccuracy, nil
}

// AddAverageAccuracy adds f to the "average_accuracy" field.
func (m *ReviewItemMutation) AddAverageAccuracy(f float64) {
	if m.addaverage_accuracy != nil {
		*m.addaverage_accuracy += f
	} else {
		m.addaverage_accuracy = &f
	}
}

// AddedAverageAccuracy returns the value that was added to the "average_accuracy" field in this mutation.
func (m *ReviewItemMutation) AddedAverageAccuracy() (r float64, exists bool) {
	v := m.addaverage_accuracy
	if v == nil {
		return
	}
	return *v, true
}

// ResetAverageAccuracy resets all changes to the "average_accuracy" field.
func (m *ReviewItemMutation) ResetAverageAccuracy() {
	m.average_accuracy = nil
	m.addaverage_accuracy = nil
}

// SetAverageTimeMs sets the "average_time_ms" field.
func (m *ReviewItemMutation) SetAverageTimeMs(f float64) {
	m.average_time_ms = &f
	m.addaverage_time_ms = nil
}

// AverageTimeMs returns the value of the "average_time_ms" field in the mutation.
func (m *ReviewItemMutation) AverageTimeMs() (r float64, exists bool) {
	v := m.average_time_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldAverageTimeMs returns the old "average_time_ms" field's value of the ReviewItem entity.
// If the ReviewItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReviewItemMutation) OldAverageTimeMs(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAverageTimeMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAverageTimeMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAverageTimeMs: %w", err)
	}
	return oldValue.AverageTimeMs, nil
}

// AddAverageTimeMs adds f to the "average_time_ms" field.
func (m *ReviewItemMutation) AddAverageTimeMs(f float64) {
	if m.addaverage_time_ms != nil {
		*m.addaverage_time_ms += f
	} else {
		m.addaverage_time_ms = &f
	}
}

// AddedAverageTimeMs returns the value that was added to the "average_time_ms" field in this mutation.
func (m *ReviewItemMutation) AddedAverageTimeMs() (r float64, exists bool) {
	v := m.addaverage_time_ms
	if v == nil {
		return
	}
	return *v, true
}

// ResetAverageTimeMs resets all changes to the "average_time_ms" field.
func (m *ReviewItemMutation) ResetAverageTimeMs() {
	m.average_time_ms = nil
	m.addaverage_time_ms = nil
}

// SetDifficultyRating sets the "difficulty_rating" field.
func (m *ReviewItemMutation) SetDifficultyRating(i int32) {
	m.difficulty_rating = &i
	m.adddifficulty_rating = nil
}

// DifficultyRating returns the value of the "difficulty_rating" field in the mutation.
func (m *ReviewItemMutation) DifficultyRating() (r int32, exists bool) {
	v := m.difficulty_rating
	if v == nil {
		return
	}
	return *v, true
}

// OldDifficultyRating returns the old "difficulty_rating" field's value of the ReviewItem entity.
// If the ReviewItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReviewItemMutation) OldDifficultyRating(ctx context.Context) (v int32, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDifficultyRating is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDifficultyRating requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDifficultyRating: %w", err)
	}
	return oldValue.DifficultyRating, nil
}

// AddDifficultyRating adds i to the "difficulty_rating" field.
func (m *ReviewItemMutation) AddDifficultyRating(i int32) {
	if m.adddifficulty_rating != nil {
		*m.adddifficulty_rating += i
	} else {
		m.adddifficulty_rating = &i
	}
}

// AddedDifficultyRating returns the value that was added to the "difficulty_rating" field in this mutation.
func (m *ReviewItemMutation) AddedDifficultyRating() (r int32, exists bool) {
	v := m.adddifficulty_rating
	if v == nil {
		return
	}
	return *v, true
}

// ResetDifficultyRating resets all changes to the "difficulty_rating" field.
func (m *ReviewItemMutation) ResetDifficultyRating() {
	m.difficulty_rating = nil
	m.adddifficulty_rating = nil
}

// SetLastGrade sets the "last_grade" field.
func (m *ReviewItemMutation) SetLastGrade(i int32) {
	m.last_grade = &i
	m.addlast_grade = nil
}

// LastGrade returns the value of the "last_grade" field in the mutation.
func (m *ReviewItemMutation) LastGrade() (r int32, exists bool) {
	v := m.last_grade
	if v == nil {
		return
	}
	return *v, true
}

// OldLastGrade returns the old "last_grade" field's value of the ReviewItem entity.
// If the ReviewItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReviewItemMutation) OldLastGrade(ctx context.Context) (v int32, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastGrade is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastGrade requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastGrade: %w", err)
	}
	return oldValue.LastGrade, nil
}

// AddLastGrade adds i to the "last_grade" field.
func (m *ReviewItemMutation) AddLastGrade(i int32) {
	if m.addlast_grade != nil {
		*m.addlast_grade += i
	} else {
		m.addlast_grade = &i
	}
}

// AddedLastGrade returns the value that was added to the "last_grade" field in this mutation.
func (m *ReviewItemMutation) AddedLastGrade() (r int32, exists bool) {
	v := m.addlast_grade
	if v == nil {
		return
	}
	return *v, true
}

// ResetLastGrade resets all changes to the "last_grade" field.
func (m *ReviewItemMutation) ResetLastGrade() {
	m.last_grade = nil
	m.addlast_grade = nil
}

// SetIntroduced sets the "introduced" field.
func (m *ReviewItemMutation) SetIntroduced(t time.Time) {
	m.introduced = &t
}

// Introduced returns the value of the "introduced" field in the mutation.
func (m *ReviewItemMutation) Introduced() (r time.Time, exists bool) {
	v := m.introduced
	if v == nil {
		return
	}
	return *v, true
}

// OldIntroduced returns the old "introduced" field's value of the ReviewItem entity.
// If the ReviewItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReviewItemMutation) OldIntroduced(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIntroduced is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIntroduced requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIntroduced: %w", err)
	}
	return oldValue.Introduced, nil
}

// ResetIntroduced resets all changes to the "introduced" field.
func (m *ReviewItemMutation) ResetIntroduced() {
	m.introduced = nil
}

// SetGraduated sets the "graduated" field.
func (m *ReviewItemMutation) SetGraduated(b bool) {
	m.graduated = &b
}

// Graduated returns the value of the "graduated" field in the mutation.
func (m *ReviewItemMutation) Graduated() (r bool, exists bool) {
	v := m.graduated
	if v == nil {
		return
	}
	return *v, true
}

// OldGraduated returns the old "graduated" field's value of the ReviewItem entity.
// If the ReviewItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReviewItemMutation) OldGraduated(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGraduated is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGraduated requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGraduated: %w", err)
	}
	return oldValue.Graduated, nil
}

// ResetGraduated resets all changes to the "graduated" field.
func (m *ReviewItemMutation) ResetGraduated() {
	m.graduated = nil
}

// SetLapseCount sets the "lapse_count" field.
func (m *ReviewItemMutation) SetLapseCount(i int32) {
	m.lapse_count = &i
	m.addlapse_count = nil
}

// LapseCount returns the value of the "lapse_count" field in the mutation.
func (m *ReviewItemMutation) LapseCount() (r int32, exists bool) {
	v := m.lapse_count
	if v == nil {
		return
	}
	return *v, true
}

// OldLapseCount returns the old "lapse_count" field's value of the ReviewItem entity.
// If the ReviewItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReviewItemMutation) OldLapseCount(ctx context.Context) (v int32, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLapseCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLapseCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLapseCount: %w", err)
	}
	return oldValue.LapseCount, nil
}

// AddLapseCount adds i to the "lapse_count" field.
func (m *ReviewItemMutation) AddLapseCount(i int32) {
	if m.addlapse_count != nil {
		*m.addlapse_count += i
	} else {
		m.addlapse_count = &i
	}
}

// AddedLapseCount returns the value that was added to the "lapse_count" field in this mutation.
func (m *ReviewItemMutation) AddedLapseCount() (r int32, exists bool) {
	v := m.addlapse_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetLapseCount resets all changes to the "lapse_count" field.
func (m *ReviewItemMutation) ResetLapseCount() {
	m.lapse_count = nil
	m.addlapse_count = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *ReviewItemMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ReviewItemMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ReviewItem entity.
// If the ReviewItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReviewItemMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ReviewItemMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ReviewItemMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ReviewItemMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the ReviewItem entity.
// If the ReviewItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReviewItemMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ReviewItemMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the ReviewItemMutation builder.
func (m *ReviewItemMutation) Where(ps ...predicate.ReviewItem) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ReviewItemMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ReviewItemMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ReviewItem, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ReviewItemMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ReviewItemMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ReviewItem).
func (m *ReviewItemMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ReviewItemMutation) Fields() []string {
	fields := make([]string, 0, 18)
	if m.user_id != nil {
		fields = append(fields, reviewitem.FieldUserID)
	}
	if m.task_id != nil {
		fields = append(fields, reviewitem.FieldTaskID)
	}
	if m.interval_days != nil {
		fields = append(fields, reviewitem.FieldIntervalDays)
	}
	if m.repetition != nil {
		fields = append(fields, reviewitem.FieldRepetition)
	}
	if m.efactor != nil {
		fields = append(fields, reviewitem.FieldEfactor)
	}
	if m.next_review != nil {
		fields = append(fields, reviewitem.FieldNextReview)
	}
	if m.last_reviewed != nil {
		fields = append(fields, reviewitem.FieldLastReviewed)
	}
	if m.total_reviews != nil {
		fields = append(fields, reviewitem.FieldTotalReviews)
	}
	if m.consecutive_correct != nil {
		fields = append(fields, reviewitem.FieldConsecutiveCorrect)
	}
	if m.average_accuracy != nil {
		fields = append(fields, reviewitem.FieldAverageAccuracy)
	}
	if m.average_time_ms != nil {
		fields = append(fields, reviewitem.FieldAverageTimeMs)
	}
	if m.difficulty_rating != nil {
		fields = append(fields, reviewitem.FieldDifficultyRating)
	}
	if m.last_grade != nil {
		fields = append(fields, reviewitem.FieldLastGrade)
	}
	if m.introduced != nil {
		fields = append(fields, reviewitem.FieldIntroduced)
	}
	if m.graduated != nil {
		fields = append(fields, reviewitem.FieldGraduated)
	}
	if m.lapse_count != nil {
		fields = append(fields, reviewitem.FieldLapseCount)
	}
	if m.created_at != nil {
		fields = append(fields, reviewitem.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, reviewitem.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ReviewItemMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case reviewitem.FieldUserID:
		return m.UserID()
	case reviewitem.FieldTaskID:
		return m.TaskID()
	case reviewitem.FieldIntervalDays:
		return m.IntervalDays()
	case reviewitem.FieldRepetition:
		return m.Repetition()
	case reviewitem.FieldEfactor:
		return m.Efactor()
	case reviewitem.FieldNextReview:
		return m.NextReview()
	case reviewitem.FieldLastReviewed:
		return m.LastReviewed()
	case reviewitem.FieldTotalReviews:
		return m.TotalReviews()
	case reviewitem.FieldConsecutiveCorrect:
		return m.ConsecutiveCorrect()
	case reviewitem.FieldAverageAccuracy:
		return m.AverageAccuracy()
	case reviewitem.FieldAverageTimeMs:
		return m.AverageTimeMs()
	case reviewitem.FieldDifficultyRating:
		return m.DifficultyRating()
	case reviewitem.FieldLastGrade:
		return m.LastGrade()
	case reviewitem.FieldIntroduced:
		return m.Introduced()
	case reviewitem.FieldGraduated:
		return m.Graduated()
	case reviewitem.FieldLapseCount:
		return m.LapseCount()
	case reviewitem.FieldCreatedAt:
		return m.CreatedAt()
	case reviewitem.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ReviewItemMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case reviewitem.FieldUserID:
		return m.OldUserID(ctx)
	case reviewitem.FieldTaskID:
		return m.OldTaskID(ctx)
	case reviewitem.FieldIntervalDays:
		return m.OldIntervalDays(ctx)
	case reviewitem.FieldRepetition:
		return m.OldRepetition(ctx)
	case reviewitem.FieldEfactor:
		return m.OldEfactor(ctx)
	case reviewitem.FieldNextReview:
		return m.OldNextReview(ctx)
	case reviewitem.FieldLastReviewed:
		return m.OldLastReviewed(ctx)
	case reviewitem.FieldTotalReviews:
		return m.OldTotalReviews(ctx)
	case reviewitem.FieldConsecutiveCorrect:
		return m.OldConsecutiveCorrect(ctx)
	case reviewitem.FieldAverageAccuracy:
		return m.OldAverageAccuracy(ctx)
	case reviewitem.FieldAverageTimeMs:
		return m.OldAverageTimeMs(ctx)
	case reviewitem.FieldDifficultyRating:
		return m.OldDifficultyRating(ctx)
	case reviewitem.FieldLastGrade:
		return m.OldLastGrade(ctx)
	case reviewitem.FieldIntroduced:
		return m.OldIntroduced(ctx)
	case reviewitem.FieldGraduated:
		return m.OldGraduated(ctx)
	case reviewitem.FieldLapseCount:
		return m.OldLapseCount(ctx)
	case reviewitem.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case reviewitem.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ReviewItem field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ReviewItemMutation) SetField(name string, value ent.Value) error {
	switch name {
	case reviewitem.FieldUserID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case reviewitem.FieldTaskID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTaskID(v)
		return nil
	case reviewitem.FieldIntervalDays:
		v, ok := value.(int32)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIntervalDays(v)
		return nil
	case reviewitem.FieldRepetition:
		v, ok := value.(int32)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRepetition(v)
		return nil
	case reviewitem.FieldEfactor:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEfactor(v)
		return nil
	case reviewitem.FieldNextReview:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNextReview(v)
		return nil
	case reviewitem.FieldLastReviewed:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastReviewed(v)
		return nil
	case reviewitem.FieldTotalReviews:
		v, ok := value.(int32)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalReviews(v)
		return nil
	case reviewitem.FieldConsecutiveCorrect:
		v, ok := value.(int32)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConsecutiveCorrect(v)
		return nil
	case reviewitem.FieldAverageAccuracy:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAverageAccuracy(v)
		return nil
	case reviewitem.FieldAverageTimeMs:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAverageTimeMs(v)
		return nil
	case reviewitem.FieldDifficultyRating:
		v, ok := value.(int32)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDifficultyRating(v)
		return nil
	case reviewitem.FieldLastGrade:
		v, ok := value.(int32)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastGrade(v)
		return nil
	case reviewitem.FieldIntroduced:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIntroduced(v)
		return nil
	case reviewitem.FieldGraduated:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGraduated(v)
		return nil
	case reviewitem.FieldLapseCount:
		v, ok := value.(int32)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLapseCount(v)
		return nil
	case reviewitem.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case reviewitem.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ReviewItem field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ReviewItemMutation) AddedFields() []string {
	var fields []string
	if m.adduser_id != nil {
		fields = append(fields, reviewitem.FieldUserID)
	}
	if m.addtask_id != nil {
		fields = append(fields, reviewitem.FieldTaskID)
	}
	if m.addinterval_days != nil {
		fields = append(fields, reviewitem.FieldIntervalDays)
	}
	if m.addrepetition != nil {
		fields = append(fields, reviewitem.FieldRepetition)
	}
	if m.addefactor != nil {
		fields = append(fields, reviewitem.FieldEfactor)
	}
	if m.addtotal_reviews != nil {
		fields = append(fields, reviewitem.FieldTotalReviews)
	}
	if m.addconsecutive_correct != nil {
		fields = append(fields, reviewitem.FieldConsecutiveCorrect)
	}
	if m.addaverage_accuracy != nil {
		fields = append(fields, reviewitem.FieldAverageAccuracy)
	}
	if m.addaverage_time_ms != nil {
		fields = append(fields, reviewitem.FieldAverageTimeMs)
	}
	if m.adddifficulty_rating != nil {
		fields = append(fields, reviewitem.FieldDifficultyRating)
	}
	if m.addlast_grade != nil {
		fields = append(fields, reviewitem.FieldLastGrade)
	}
	if m.addlapse_count != nil {
		fields = append(fields, reviewitem.FieldLapseCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ReviewItemMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case reviewitem.FieldUserID:
		return m.AddedUserID()
	case reviewitem.FieldTaskID:
		return m.AddedTaskID()
	case reviewitem.FieldIntervalDays:
		return m.AddedIntervalDays()
	case reviewitem.FieldRepetition:
		return m.AddedRepetition()
	case reviewitem.FieldEfactor:
		return m.AddedEfactor()
	case reviewitem.FieldTotalReviews:
		return m.AddedTotalReviews()
	case reviewitem.FieldConsecutiveCorrect:
		return m.AddedConsecutiveCorrect()
	case reviewitem.FieldAverageAccuracy:
		return m.AddedAverageAccuracy()
	case reviewitem.FieldAverageTimeMs:
		return m.AddedAverageTimeMs()
	case reviewitem.FieldDifficultyRating:
		return m.AddedDifficultyRating()
	case reviewitem.FieldLastGrade:
		return m.AddedLastGrade()
	case reviewitem.FieldLapseCount:
		return m.AddedLapseCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ReviewItemMutation) AddField(name string, value ent.Value) error {
	switch name {
	case reviewitem.FieldUserID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddUserID(v)
		return nil
	case reviewitem.FieldTaskID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTaskID(v)
		return nil
	case reviewitem.FieldIntervalDays:
		v, ok := value.(int32)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddIntervalDays(v)
		return nil
	case reviewitem.FieldRepetition:
		v, ok := value.(int32)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRepetition(v)
		return nil
	case reviewitem.FieldEfactor:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddEfactor(v)
		return nil
	case reviewitem.FieldTotalReviews:
		v, ok := value.(int32)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalReviews(v)
		return nil
	case reviewitem.FieldConsecutiveCorrect:
		v, ok := value.(int32)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddConsecutiveCorrect(v)
		return nil
	case reviewitem.FieldAverageAccuracy:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAverageAccuracy(v)
		return nil
	case reviewitem.FieldAverageTimeMs:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAverageTimeMs(v)
		return nil
	case reviewitem.FieldDifficultyRating:
		v, ok := value.(int32)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDifficultyRating(v)
		return nil
	case reviewitem.FieldLastGrade:
		v, ok := value.(int32)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLastGrade(v)
		return nil
	case reviewitem.FieldLapseCount:
		v, ok := value.(int32)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLapseCount(v)
		return nil
	}
	return fmt.Errorf("unknown ReviewItem numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ReviewItemMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(reviewitem.FieldLastReviewed) {
		fields = append(fields, reviewitem.FieldLastReviewed)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ReviewItemMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ReviewItemMutation) ClearField(name string) error {
	switch name {
	case reviewitem.FieldLastReviewed:
		m.ClearLastReviewed()
		return nil
	}
	return fmt.Errorf("unknown ReviewItem nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ReviewItemMutation) ResetField(name string) error {
	switch name {
	case reviewitem.FieldUserID:
		m.ResetUserID()
		return nil
	case reviewitem.FieldTaskID:
		m.ResetTaskID()
		return nil
	case reviewitem.FieldIntervalDays:
		m.ResetIntervalDays()
		return nil
	case reviewitem.FieldRepetition:
		m.ResetRepetition()
		return nil
	case reviewitem.FieldEfactor:
		m.ResetEfactor()
		return nil
	case reviewitem.FieldNextReview:
		m.ResetNextReview()
		return nil
	case reviewitem.FieldLastReviewed:
		m.ResetLastReviewed()
		return nil
	case reviewitem.FieldTotalReviews:
		m.ResetTotalReviews()
		return nil
	case reviewitem.FieldConsecutiveCorrect:
		m.ResetConsecutiveCorrect()
		return nil
	case reviewitem.FieldAverageAccuracy:
		m.ResetAverageAccuracy()
		return nil
	case reviewitem.FieldAverageTimeMs:
		m.ResetAverageTimeMs()
		return nil
	case reviewitem.FieldDifficultyRating:
		m.ResetDifficultyRating()
		return nil
	case reviewitem.FieldLastGrade:
		m.ResetLastGrade()
		return nil
	case reviewitem.FieldIntroduced:
		m.ResetIntroduced()
		return nil
	case reviewitem.FieldGraduated:
		m.ResetGraduated()
		return nil
	case reviewitem.FieldLapseCount:
		m.ResetLapseCount()
		return nil
	case reviewitem.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case reviewitem.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown ReviewItem field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ReviewItemMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ReviewItemMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ReviewItemMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ReviewItemMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ReviewItemMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ReviewItemMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ReviewItemMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ReviewItem unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ReviewItemMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ReviewItem edge %s", name)
}

// TaskMutation represents an operation that mutates the Task nodes in the graph.
type TaskMutation struct {
	config
	op                   Op
	typ                  string
	id                   *int
	topic_id             *int64
	addtopic_id          *int64
	learning_paths       *[]int64
	appendlearning_paths []int64
	prompt               *string
	answer               *string
	language             *string
	difficulty           *int32
	adddifficulty        *int32
	tags                 *[]string
	appendtags           []string
	created_at           *time.Time
	updated_at           *time.Time
	clearedFields        map[string]struct{}
	done                 bool
	oldValue             func(context.Context) (*Task, error)
	predicates           []predicate.Task
}

var _ ent.Mutation = (*TaskMutation)(nil)

// taskOption allows management of the mutation configuration using functional options.
type taskOption func(*TaskMutation)

// newTaskMutation creates new mutation for the Task entity.
func newTaskMutation(c config, op Op, opts ...taskOption) *TaskMutation {
	m := &TaskMutation{
		config:        c,
		op:            op,
		typ:           TypeTask,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTaskID sets the ID field of the mutation.
func withTaskID(id int) taskOption {
	return func(m *TaskMutation) {
		var (
			err   error
			once  sync.Once
			value *Task
		)
		m.oldValue = func(ctx context.Context) (*Task, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Task.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTask sets the old Task of the mutation.
func withTask(node *Task) taskOption {
	return func(m *TaskMutation) {
		m.oldValue = func(context.Context) (*Task, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TaskMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TaskMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TaskMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TaskMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Task.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTopicID sets the "topic_id" field.
func (m *TaskMutation) SetTopicID(i int64) {
	m.topic_id = &i
	m.addtopic_id = nil
}

// TopicID returns the value of the "topic_id" field in the mutation.
func (m *TaskMutation) TopicID() (r int64, exists bool) {
	v := m.topic_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTopicID returns the old "topic_id" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldTopicID(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTopicID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTopicID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTopicID: %w", err)
	}
	return oldValue.TopicID, nil
}

// AddTopicID adds i to the "topic_id" field.
func (m *TaskMutation) AddTopicID(i int64) {
	if m.addtopic_id != nil {
		*m.addtopic_id += i
	} else {
		m.addtopic_id = &i
	}
}

// AddedTopicID returns the value that was added to the "topic_id" field in this mutation.
func (m *TaskMutation) AddedTopicID() (r int64, exists bool) {
	v := m.addtopic_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetTopicID resets all changes to the "topic_id" field.
func (m *TaskMutation) ResetTopicID() {
	m.topic_id = nil
	m.addtopic_id = nil
}

// SetLearningPaths sets the "learning_paths" field.
func (m *TaskMutation) SetLearningPaths(i []int64) {
	m.learning_paths = &i
	m.appendlearning_paths = nil
}

// LearningPaths returns the value of the "learning_paths" field in the mutation.
func (m *TaskMutation) LearningPaths() (r []int64, exists bool) {
	v := m.learning_paths
	if v == nil {
		return
	}
	return *v, true
}

// OldLearningPaths returns the old "learning_paths" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldLearningPaths(ctx context.Context) (v []int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLearningPaths is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLearningPaths requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLearningPaths: %w", err)
	}
	return oldValue.LearningPaths, nil
}

// AppendLearningPaths adds i to the "learning_paths" field.
func (m *TaskMutation) AppendLearningPaths(i []int64) {
	m.appendlearning_paths = append(m.appendlearning_paths, i...)
}

// AppendedLearningPaths returns the list of values that were appended to the "learning_paths" field in this mutation.
func (m *TaskMutation) AppendedLearningPaths() ([]int64, bool) {
	if len(m.appendlearning_paths) == 0 {
		return nil, false
	}
	return m.appendlearning_paths, true
}

// ResetLearningPaths resets all changes to the "learning_paths" field.
func (m *TaskMutation) ResetLearningPaths() {
	m.learning_paths = nil
	m.appendlearning_paths = nil
}

// SetPrompt sets the "prompt" field.
func (m *TaskMutation) SetPrompt(s string) {
	m.prompt = &s
}

// Prompt returns the value of the "prompt" field in the mutation.
func (m *TaskMutation) Prompt() (r string, exists bool) {
	v := m.prompt
	if v == nil {
		return
	}
	return *v, true
}

// OldPrompt returns the old "prompt" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldPrompt(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPrompt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPrompt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPrompt: %w", err)
	}
	return oldValue.Prompt, nil
}

// ResetPrompt resets all changes to the "prompt" field.
func (m *TaskMutation) ResetPrompt() {
	m.prompt = nil
}

// SetAnswer sets the "answer" field.
func (m *TaskMutation) SetAnswer(s string) {
	m.answer = &s
}

// Answer returns the value of the "answer" field in the mutation.
func (m *TaskMutation) Answer() (r string, exists bool) {
	v := m.answer
	if v == nil {
		return
	}
	return *v, true
}

// OldAnswer returns the old "answer" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldAnswer(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAnswer is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAnswer requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAnswer: %w", err)
	}
	return oldValue.Answer, nil
}

// ResetAnswer resets all changes to the "answer" field.
func (m *TaskMutation) ResetAnswer() {
	m.answer = nil
}

// SetLanguage sets the "language" field.
func (m *TaskMutation) SetLanguage(s string) {
	m.language = &s
}

// Language returns the value of the "language" field in the mutation.
func (m *TaskMutation) Language() (r string, exists bool) {
	v := m.language
	if v == nil {
		return
	}
	return *v, true
}

// OldLanguage returns the old "language" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldLanguage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLanguage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLanguage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLanguage: %w", err)
	}
	return oldValue.Language, nil
}

// ResetLanguage resets all changes to the "language" field.
func (m *TaskMutation) ResetLanguage() {
	m.language = nil
}

// SetDifficulty sets the "difficulty" field.
func (m *TaskMutation) SetDifficulty(i int32) {
	m.difficulty = &i
	m.adddifficulty = nil
}

// Difficulty returns the value of the "difficulty" field in the mutation.
func (m *TaskMutation) Difficulty() (r int32, exists bool) {
	v := m.difficulty
	if v == nil {
		return
	}
	return *v, true
}

// OldDifficulty returns the old "difficulty" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldDifficulty(ctx context.Context) (v int32, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDifficulty is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDifficulty requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDifficulty: %w", err)
	}
	return oldValue.Difficulty, nil
}

// AddDifficulty adds i to the "difficulty" field.
func (m *TaskMutation) AddDifficulty(i int32) {
	if m.adddifficulty != nil {
		*m.adddifficulty += i
	} else {
		m.adddifficulty = &i
	}
}

// AddedDifficulty returns the value that was added to the "difficulty" field in this mutation.
func (m *TaskMutation) AddedDifficulty() (r int32, exists bool) {
	v := m.adddifficulty
	if v == nil {
		return
	}
	return *v, true
}

// ResetDifficulty resets all changes to the "difficulty" field.
func (m *TaskMutation) ResetDifficulty() {
	m.difficulty = nil
	m.adddifficulty = nil
}

// SetTags sets the "tags" field.
func (m *TaskMutation) SetTags(s []string) {
	m.tags = &s
	m.appendtags = nil
}

// Tags returns the value of the "tags" field in the mutation.
func (m *TaskMutation) Tags() (r []string, exists bool) {
	v := m.tags
	if v == nil {
		return
	}
	return *v, true
}

// OldTags returns the old "tags" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldTags(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTags is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTags requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTags: %w", err)
	}
	return oldValue.Tags, nil
}

// AppendTags adds s to the "tags" field.
func (m *TaskMutation) AppendTags(s []string) {
	m.appendtags = append(m.appendtags, s...)
}

// AppendedTags returns the list of values that were appended to the "tags" field in this mutation.
func (m *TaskMutation) AppendedTags() ([]string, bool) {
	if len(m.appendtags) == 0 {
		return nil, false
	}
	return m.appendtags, true
}

// ResetTags resets all changes to the "tags" field.
func (m *TaskMutation) ResetTags() {
	m.tags = nil
	m.appendtags = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *TaskMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *TaskMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *TaskMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *TaskMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *TaskMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *TaskMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the TaskMutation builder.
func (m *TaskMutation) Where(ps ...predicate.Task) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TaskMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TaskMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Task, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TaskMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TaskMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Task).
func (m *TaskMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TaskMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.topic_id != nil {
		fields = append(fields, task.FieldTopicID)
	}
	if m.learning_paths != nil {
		fields = append(fields, task.FieldLearningPaths)
	}
	if m.prompt != nil {
		fields = append(fields, task.FieldPrompt)
	}
	if m.answer != nil {
		fields = append(fields, task.FieldAnswer)
	}
	if m.language != nil {
		fields = append(fields, task.FieldLanguage)
	}
	if m.difficulty != nil {
		fields = append(fields, task.FieldDifficulty)
	}
	if m.tags != nil {
		fields = append(fields, task.FieldTags)
	}
	if m.created_at != nil {
		fields = append(fields, task.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, task.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TaskMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case task.FieldTopicID:
		return m.TopicID()
	case task.FieldLearningPaths:
		return m.LearningPaths()
	case task.FieldPrompt:
		return m.Prompt()
	case task.FieldAnswer:
		return m.Answer()
	case task.FieldLanguage:
		return m.Language()
	case task.FieldDifficulty:
		return m.Difficulty()
	case task.FieldTags:
		return m.Tags()
	case task.FieldCreatedAt:
		return m.CreatedAt()
	case task.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TaskMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case task.FieldTopicID:
		return m.OldTopicID(ctx)
	case task.FieldLearningPaths:
		return m.OldLearningPaths(ctx)
	case task.FieldPrompt:
		return m.OldPrompt(ctx)
	case task.FieldAnswer:
		return m.OldAnswer(ctx)
	case task.FieldLanguage:
		return m.OldLanguage(ctx)
	case task.FieldDifficulty:
		return m.OldDifficulty(ctx)
	case task.FieldTags:
		return m.OldTags(ctx)
	case task.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case task.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Task field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TaskMutation) SetField(name string, value ent.Value) error {
	switch name {
	case task.FieldTopicID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTopicID(v)
		return nil
	case task.FieldLearningPaths:
		v, ok := value.([]int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLearningPaths(v)
		return nil
	case task.FieldPrompt:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPrompt(v)
		return nil
	case task.FieldAnswer:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAnswer(v)
		return nil
	case task.FieldLanguage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLanguage(v)
		return nil
	case task.FieldDifficulty:
		v, ok := value.(int32)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDifficulty(v)
		return nil
	case task.FieldTags:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTags(v)
		return nil
	case task.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case task.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Task field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TaskMutation) AddedFields() []string {
	var fields []string
	if m.addtopic_id != nil {
		fields = append(fields, task.FieldTopicID)
	}
	if m.adddifficulty != nil {
		fields = append(fields, task.FieldDifficulty)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TaskMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case task.FieldTopicID:
		return m.AddedTopicID()
	case task.FieldDifficulty:
		return m.AddedDifficulty()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TaskMutation) AddField(name string, value ent.Value) error {
	switch name {
	case task.FieldTopicID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTopicID(v)
		return nil
	case task.FieldDifficulty:
		v, ok := value.(int32)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDifficulty(v)
		return nil
	}
	return fmt.Errorf("unknown Task numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TaskMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TaskMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TaskMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Task nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TaskMutation) ResetField(name string) error {
	switch name {
	case task.FieldTopicID:
		m.ResetTopicID()
		return nil
	case task.FieldLearningPaths:
		m.ResetLearningPaths()
		return nil
	case task.FieldPrompt:
		m.ResetPrompt()
		return nil
	case task.FieldAnswer:
		m.ResetAnswer()
		return nil
	case task.FieldLanguage:
		m.ResetLanguage()
		return nil
	case task.FieldDifficulty:
		m.ResetDifficulty()
		return nil
	case task.FieldTags:
		m.ResetTags()
		return nil
	case task.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case task.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Task field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TaskMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TaskMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TaskMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TaskMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TaskMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TaskMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TaskMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Task unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TaskMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Task edge %s", name)
}
