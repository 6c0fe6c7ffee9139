// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/eslsoft/drillnet/internal/entity"
	"github.com/eslsoft/drillnet/internal/infrastructure/database/ent/practicesession"
)

// PracticeSession is the model entity for the PracticeSession schema.
type PracticeSession struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID int64 `json:"user_id,omitempty"`
	// TopicID holds the value of the "topic_id" field.
	TopicID int64 `json:"topic_id,omitempty"`
	// LearningPaths holds the value of the "learning_paths" field.
	LearningPaths []int64 `json:"learning_paths,omitempty"`
	// TargetCount holds the value of the "target_count" field.
	TargetCount int32 `json:"target_count,omitempty"`
	// IncludeReview holds the value of the "include_review" field.
	IncludeReview bool `json:"include_review,omitempty"`
	// DifficultyFilter holds the value of the "difficulty_filter" field.
	DifficultyFilter *int32 `json:"difficulty_filter,omitempty"`
	// Tasks holds the value of the "tasks" field.
	Tasks []int64 `json:"tasks,omitempty"`
	// CompletedCount holds the value of the "completed_count" field.
	CompletedCount int32 `json:"completed_count,omitempty"`
	// CorrectCount holds the value of the "correct_count" field.
	CorrectCount int32 `json:"correct_count,omitempty"`
	// Status holds the value of the "status" field.
	Status string `json:"status,omitempty"`
	// StartedAt holds the value of the "started_at" field.
	StartedAt *time.Time `json:"started_at,omitempty"`
	// CompletedAt holds the value of the "completed_at" field.
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	// TotalTimeSpentMs holds the value of the "total_time_spent_ms" field.
	TotalTimeSpentMs int64 `json:"total_time_spent_ms,omitempty"`
	// Results holds the value of the "results" field.
	Results *entity.SessionResults `json:"results,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*PracticeSession) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case practicesession.FieldLearningPaths, practicesession.FieldTasks, practicesession.FieldResults:
			values[i] = new([]byte)
		case practicesession.FieldIncludeReview:
			values[i] = new(sql.NullBool)
		case practicesession.FieldID, practicesession.FieldUserID, practicesession.FieldTopicID, practicesession.FieldTargetCount, practicesession.FieldDifficultyFilter, practicesession.FieldCompletedCount, practicesession.FieldCorrectCount, practicesession.FieldTotalTimeSpentMs:
			values[i] = new(sql.NullInt64)
		case practicesession.FieldStatus:
			values[i] = new(sql.NullString)
		case practicesession.FieldStartedAt, practicesession.FieldCompletedAt, practicesession.FieldCreatedAt, practicesession.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the PracticeSession fields.
func (ps *PracticeSession) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case practicesession.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			ps.ID = int(value.Int64)
		case practicesession.FieldUserID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				ps.UserID = value.Int64
			}
		case practicesession.FieldTopicID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field topic_id", values[i])
			} else if value.Valid {
				ps.TopicID = value.Int64
			}
		case practicesession.FieldLearningPaths:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field learning_paths", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &ps.LearningPaths); err != nil {
					return fmt.Errorf("unmarshal field learning_paths: %w", err)
				}
			}
		case practicesession.FieldTargetCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field target_count", values[i])
			} else if value.Valid {
				ps.TargetCount = int32(value.Int64)
			}
		case practicesession.FieldIncludeReview:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field include_review", values[i])
			} else if value.Valid {
				ps.IncludeReview = value.Bool
			}
		case practicesession.FieldDifficultyFilter:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field difficulty_filter", values[i])
			} else if value.Valid {
				ps.DifficultyFilter = new(int32)
				*ps.DifficultyFilter = int32(value.Int64)
			}
		case practicesession.FieldTasks:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field tasks", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &ps.Tasks); err != nil {
					return fmt.Errorf("unmarshal field tasks: %w", err)
				}
			}
		case practicesession.FieldCompletedCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field completed_count", values[i])
			} else if value.Valid {
				ps.CompletedCount = int32(value.Int64)
			}
		case practicesession.FieldCorrectCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field correct_count", values[i])
			} else if value.Valid {
				ps.CorrectCount = int32(value.Int64)
			}
		case practicesession.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				ps.Status = value.String
			}
		case practicesession.FieldStartedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field started_at", values[i])
			} else if value.Valid {
				ps.StartedAt = new(time.Time)
				*ps.StartedAt = value.Time
			}
		case practicesession.FieldCompletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field completed_at", values[i])
			} else if value.Valid {
				ps.CompletedAt = new(time.Time)
				*ps.CompletedAt = value.Time
			}
		case practicesession.FieldTotalTimeSpentMs:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_time_spent_ms", values[i])
			} else if value.Valid {
				ps.TotalTimeSpentMs = value.Int64
			}
		case practicesession.FieldResults:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field results", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &ps.Results); err != nil {
					return fmt.Errorf("unmarshal field results: %w", err)
				}
			}
		case practicesession.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				ps.CreatedAt = value.Time
			}
		case practicesession.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				ps.UpdatedAt = value.Time
			}
		default:
			ps.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the PracticeSession.
// This includes values selected through modifiers, order, etc.
func (ps *PracticeSession) Value(name string) (ent.Value, error) {
	return ps.selectValues.Get(name)
}

// Update returns a builder for updating this PracticeSession.
// Note that you need to call PracticeSession.Unwrap() before calling this method if this PracticeSession
// was returned from a transaction, and the transaction was committed or rolled back.
func (ps *PracticeSession) Update() *PracticeSessionUpdateOne {
	return NewPracticeSessionClient(ps.config).UpdateOne(ps)
}

// Unwrap unwraps the PracticeSession entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (ps *PracticeSession) Unwrap() *PracticeSession {
	_tx, ok := ps.config.driver.(*txDriver)
	if !ok {
		panic("ent: PracticeSession is not a transactional entity")
	}
	ps.config.driver = _tx.drv
	return ps
}

// String implements the fmt.Stringer.
func (ps *PracticeSession) String() string {
	var builder strings.Builder
	builder.WriteString("PracticeSession(")
	builder.WriteString(fmt.Sprintf("id=%v, ", ps.ID))
	builder.WriteString("user_id=")
	builder.WriteString(fmt.Sprintf("%v", ps.UserID))
	builder.WriteString(", ")
	builder.WriteString("topic_id=")
	builder.WriteString(fmt.Sprintf("%v", ps.TopicID))
	builder.WriteString(", ")
	builder.WriteString("learning_paths=")
	builder.WriteString(fmt.Sprintf("%v", ps.LearningPaths))
	builder.WriteString(", ")
	builder.WriteString("target_count=")
	builder.WriteString(fmt.Sprintf("%v", ps.TargetCount))
	builder.WriteString(", ")
	builder.WriteString("include_review=")
	builder.WriteString(fmt.Sprintf("%v", ps.IncludeReview))
	builder.WriteString(", ")
	if v := ps.DifficultyFilter; v != nil {
		builder.WriteString("difficulty_filter=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("tasks=")
	builder.WriteString(fmt.Sprintf("%v", ps.Tasks))
	builder.WriteString(", ")
	builder.WriteString("completed_count=")
	builder.WriteString(fmt.Sprintf("%v", ps.CompletedCount))
	builder.WriteString(", ")
	builder.WriteString("correct_count=")
	builder.WriteString(fmt.Sprintf("%v", ps.CorrectCount))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(ps.Status)
	builder.WriteString(", ")
	if v := ps.StartedAt; v != nil {
		builder.WriteString("started_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := ps.CompletedAt; v != nil {
		builder.WriteString("completed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("total_time_spent_ms=")
	builder.WriteString(fmt.Sprintf("%v", ps.TotalTimeSpentMs))
	builder.WriteString(", ")
	builder.WriteString("results=")
	builder.WriteString(fmt.Sprintf("%v", ps.Results))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(ps.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(ps.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// PracticeSessions is a parsable slice of PracticeSession.
type PracticeSessions []*PracticeSession
