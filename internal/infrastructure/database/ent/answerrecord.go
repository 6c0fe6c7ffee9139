// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/eslsoft/drillnet/internal/infrastructure/database/ent/answerrecord"
)

// AnswerRecord is the model entity for the AnswerRecord schema.
type AnswerRecord struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// SessionID holds the value of the "session_id" field.
	SessionID int64 `json:"session_id,omitempty"`
	// TaskID holds the value of the "task_id" field.
	TaskID int64 `json:"task_id,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID int64 `json:"user_id,omitempty"`
	// UserAnswer holds the value of the "user_answer" field.
	UserAnswer string `json:"user_answer,omitempty"`
	// IsCorrect holds the value of the "is_correct" field.
	IsCorrect bool `json:"is_correct,omitempty"`
	// Grade holds the value of the "grade" field.
	Grade int32 `json:"grade,omitempty"`
	// TimeSpentMs holds the value of the "time_spent_ms" field.
	TimeSpentMs int64 `json:"time_spent_ms,omitempty"`
	// Confidence holds the value of the "confidence" field.
	Confidence int32 `json:"confidence,omitempty"`
	// AttemptNumber holds the value of the "attempt_number" field.
	AttemptNumber int32 `json:"attempt_number,omitempty"`
	// AnsweredAt holds the value of the "answered_at" field.
	AnsweredAt time.Time `json:"answered_at,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*AnswerRecord) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case answerrecord.FieldIsCorrect:
			values[i] = new(sql.NullBool)
		case answerrecord.FieldID, answerrecord.FieldSessionID, answerrecord.FieldTaskID, answerrecord.FieldUserID, answerrecord.FieldGrade, answerrecord.FieldTimeSpentMs, answerrecord.FieldConfidence, answerrecord.FieldAttemptNumber:
			values[i] = new(sql.NullInt64)
		case answerrecord.FieldUserAnswer:
			values[i] = new(sql.NullString)
		case answerrecord.FieldAnsweredAt, answerrecord.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the AnswerRecord fields.
func (ar *AnswerRecord) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case answerrecord.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			ar.ID = int(value.Int64)
		case answerrecord.FieldSessionID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				ar.SessionID = value.Int64
			}
		case answerrecord.FieldTaskID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field task_id", values[i])
			} else if value.Valid {
				ar.TaskID = value.Int64
			}
		case answerrecord.FieldUserID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				ar.UserID = value.Int64
			}
		case answerrecord.FieldUserAnswer:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_answer", values[i])
			} else if value.Valid {
				ar.UserAnswer = value.String
			}
		case answerrecord.FieldIsCorrect:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_correct", values[i])
			} else if value.Valid {
				ar.IsCorrect = value.Bool
			}
		case answerrecord.FieldGrade:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field grade", values[i])
			} else if value.Valid {
				ar.Grade = int32(value.Int64)
			}
		case answerrecord.FieldTimeSpentMs:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field time_spent_ms", values[i])
			} else if value.Valid {
				ar.TimeSpentMs = value.Int64
			}
		case answerrecord.FieldConfidence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field confidence", values[i])
			} else if value.Valid {
				ar.Confidence = int32(value.Int64)
			}
		case answerrecord.FieldAttemptNumber:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field attempt_number", values[i])
			} else if value.Valid {
				ar.AttemptNumber = int32(value.Int64)
			}
		case answerrecord.FieldAnsweredAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field answered_at", values[i])
			} else if value.Valid {
				ar.AnsweredAt = value.Time
			}
		case answerrecord.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				ar.CreatedAt = value.Time
			}
		default:
			ar.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the AnswerRecord.
// This includes values selected through modifiers, order, etc.
func (ar *AnswerRecord) Value(name string) (ent.Value, error) {
	return ar.selectValues.Get(name)
}

// Update returns a builder for updating this AnswerRecord.
// Note that you need to call AnswerRecord.Unwrap() before calling this method if this AnswerRecord
// was returned from a transaction, and the transaction was committed or rolled back.
func (ar *AnswerRecord) Update() *AnswerRecordUpdateOne {
	return NewAnswerRecordClient(ar.config).UpdateOne(ar)
}

// Unwrap unwraps the AnswerRecord entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (ar *AnswerRecord) Unwrap() *AnswerRecord {
	_tx, ok := ar.config.driver.(*txDriver)
	if !ok {
		panic("ent: AnswerRecord is not a transactional entity")
	}
	ar.config.driver = _tx.drv
	return ar
}

// String implements the fmt.Stringer.
func (ar *AnswerRecord) String() string {
	var builder strings.Builder
	builder.WriteString("AnswerRecord(")
	builder.WriteString(fmt.Sprintf("id=%v, ", ar.ID))
	builder.WriteString("session_id=")
	builder.WriteString(fmt.Sprintf("%v", ar.SessionID))
	builder.WriteString(", ")
	builder.WriteString("task_id=")
	builder.WriteString(fmt.Sprintf("%v", ar.TaskID))
	builder.WriteString(", ")
	builder.WriteString("user_id=")
	builder.WriteString(fmt.Sprintf("%v", ar.UserID))
	builder.WriteString(", ")
	builder.WriteString("user_answer=")
	builder.WriteString(ar.UserAnswer)
	builder.WriteString(", ")
	builder.WriteString("is_correct=")
	builder.WriteString(fmt.Sprintf("%v", ar.IsCorrect))
	builder.WriteString(", ")
	builder.WriteString("grade=")
	builder.WriteString(fmt.Sprintf("%v", ar.Grade))
	builder.WriteString(", ")
	builder.WriteString("time_spent_ms=")
	builder.WriteString(fmt.Sprintf("%v", ar.TimeSpentMs))
	builder.WriteString(", ")
	builder.WriteString("confidence=")
	builder.WriteString(fmt.Sprintf("%v", ar.Confidence))
	builder.WriteString(", ")
	builder.WriteString("attempt_number=")
	builder.WriteString(fmt.Sprintf("%v", ar.AttemptNumber))
	builder.WriteString(", ")
	builder.WriteString("answered_at=")
	builder.WriteString(ar.AnsweredAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(ar.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// AnswerRecords is a parsable slice of AnswerRecord.
type AnswerRecords []*AnswerRecord
