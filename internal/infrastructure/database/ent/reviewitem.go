// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/eslsoft/drillnet/internal/infrastructure/database/ent/reviewitem"
)

// ReviewItem is the model entity for the ReviewItem schema.
type ReviewItem struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID int64 `json:"user_id,omitempty"`
	// TaskID holds the value of the "task_id" field.
	TaskID int64 `json:"task_id,omitempty"`
	// IntervalDays holds the value of the "interval_days" field.
	IntervalDays int32 `json:"interval_days,omitempty"`
	// Repetition holds the value of the "repetition" field.
	Repetition int32 `json:"repetition,omitempty"`
	// Efactor holds the value of the "efactor" field.
	Efactor float64 `json:"efactor,omitempty"`
	// NextReview holds the value of the "next_review" field.
	NextReview time.Time `json:"next_review,omitempty"`
	// LastReviewed holds the value of the "last_reviewed" field.
	LastReviewed *time.Time `json:"last_reviewed,omitempty"`
	// TotalReviews holds the value of the "total_reviews" field.
	TotalReviews int32 `json:"total_reviews,omitempty"`
	// ConsecutiveCorrect holds the value of the "consecutive_correct" field.
	ConsecutiveCorrect int32 `json:"consecutive_correct,omitempty"`
	// AverageAccuracy holds the value of the "average_accuracy" field.
	AverageAccuracy float64 `json:"average_accuracy,omitempty"`
	// AverageTimeMs holds the value of the "average_time_ms" field.
	AverageTimeMs float64 `json:"average_time_ms,omitempty"`
	// DifficultyRating holds the value of the "difficulty_rating" field.
	DifficultyRating int32 `json:"difficulty_rating,omitempty"`
	// LastGrade holds the value of the "last_grade" field.
	LastGrade int32 `json:"last_grade,omitempty"`
	// Introduced holds the value of the "introduced" field.
	Introduced time.Time `json:"introduced,omitempty"`
	// Graduated holds the value of the "graduated" field.
	Graduated bool `json:"graduated,omitempty"`
	// LapseCount holds the value of the "lapse_count" field.
	LapseCount int32 `json:"lapse_count,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ReviewItem) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case reviewitem.FieldGraduated:
			values[i] = new(sql.NullBool)
		case reviewitem.FieldEfactor, reviewitem.FieldAverageAccuracy, reviewitem.FieldAverageTimeMs:
			values[i] = new(sql.NullFloat64)
		case reviewitem.FieldID, reviewitem.FieldUserID, reviewitem.FieldTaskID, reviewitem.FieldIntervalDays, reviewitem.FieldRepetition, reviewitem.FieldTotalReviews, reviewitem.FieldConsecutiveCorrect, reviewitem.FieldDifficultyRating, reviewitem.FieldLastGrade, reviewitem.FieldLapseCount:
			values[i] = new(sql.NullInt64)
		case reviewitem.FieldNextReview, reviewitem.FieldLastReviewed, reviewitem.FieldIntroduced, reviewitem.FieldCreatedAt, reviewitem.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ReviewItem fields.
func (ri *ReviewItem) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case reviewitem.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			ri.ID = int(value.Int64)
		case reviewitem.FieldUserID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				ri.UserID = value.Int64
			}
		case reviewitem.FieldTaskID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field task_id", values[i])
			} else if value.Valid {
				ri.TaskID = value.Int64
			}
		case reviewitem.FieldIntervalDays:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field interval_days", values[i])
			} else if value.Valid {
				ri.IntervalDays = int32(value.Int64)
			}
		case reviewitem.FieldRepetition:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field repetition", values[i])
			} else if value.Valid {
				ri.Repetition = int32(value.Int64)
			}
		case reviewitem.FieldEfactor:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field efactor", values[i])
			} else if value.Valid {
				ri.Efactor = value.Float64
			}
		case reviewitem.FieldNextReview:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field next_review", values[i])
			} else if value.Valid {
				ri.NextReview = value.Time
			}
		case reviewitem.FieldLastReviewed:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_reviewed", values[i])
			} else if value.Valid {
				ri.LastReviewed = new(time.Time)
				*ri.LastReviewed = value.Time
			}
		case reviewitem.FieldTotalReviews:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_reviews", values[i])
			} else if value.Valid {
				ri.TotalReviews = int32(value.Int64)
			}
		case reviewitem.FieldConsecutiveCorrect:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field consecutive_correct", values[i])
			} else if value.Valid {
				ri.ConsecutiveCorrect = int32(value.Int64)
			}
		case reviewitem.FieldAverageAccuracy:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field average_accuracy", values[i])
			} else if value.Valid {
				ri.AverageAccuracy = value.Float64
			}
		case reviewitem.FieldAverageTimeMs:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field average_time_ms", values[i])
			} else if value.Valid {
				ri.AverageTimeMs = value.Float64
			}
		case reviewitem.FieldDifficultyRating:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field difficulty_rating", values[i])
			} else if value.Valid {
				ri.DifficultyRating = int32(value.Int64)
			}
		case reviewitem.FieldLastGrade:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field last_grade", values[i])
			} else if value.Valid {
				ri.LastGrade = int32(value.Int64)
			}
		case reviewitem.FieldIntroduced:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field introduced", values[i])
			} else if value.Valid {
				ri.Introduced = value.Time
			}
		case reviewitem.FieldGraduated:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field graduated", values[i])
			} else if value.Valid {
				ri.Graduated = value.Bool
			}
		case reviewitem.FieldLapseCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field lapse_count", values[i])
			} else if value.Valid {
				ri.LapseCount = int32(value.Int64)
			}
		case reviewitem.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				ri.CreatedAt = value.Time
			}
		case reviewitem.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				ri.UpdatedAt = value.Time
			}
		default:
			ri.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ReviewItem.
// This includes values selected through modifiers, order, etc.
func (ri *ReviewItem) Value(name string) (ent.Value, error) {
	return ri.selectValues.Get(name)
}

// Update returns a builder for updating this ReviewItem.
// Note that you need to call ReviewItem.Unwrap() before calling this method if this ReviewItem
// was returned from a transaction, and the transaction was committed or rolled back.
func (ri *ReviewItem) Update() *ReviewItemUpdateOne {
	return NewReviewItemClient(ri.config).UpdateOne(ri)
}

// Unwrap unwraps the ReviewItem entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (ri *ReviewItem) Unwrap() *ReviewItem {
	_tx, ok := ri.config.driver.(*txDriver)
	if !ok {
		panic("ent: ReviewItem is not a transactional entity")
	}
	ri.config.driver = _tx.drv
	return ri
}

// String implements the fmt.Stringer.
func (ri *ReviewItem) String() string {
	var builder strings.Builder
	builder.WriteString("ReviewItem(")
	builder.WriteString(fmt.Sprintf("id=%v, ", ri.ID))
	builder.WriteString("user_id=")
	builder.WriteString(fmt.Sprintf("%v", ri.UserID))
	builder.WriteString(", ")
	builder.WriteString("task_id=")
	builder.WriteString(fmt.Sprintf("%v", ri.TaskID))
	builder.WriteString(", ")
	builder.WriteString("interval_days=")
	builder.WriteString(fmt.Sprintf("%v", ri.IntervalDays))
	builder.WriteString(", ")
	builder.WriteString("repetition=")
	builder.WriteString(fmt.Sprintf("%v", ri.Repetition))
	builder.WriteString(", ")
	builder.WriteString("efactor=")
	builder.WriteString(fmt.Sprintf("%v", ri.Efactor))
	builder.WriteString(", ")
	builder.WriteString("next_review=")
	builder.WriteString(ri.NextReview.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := ri.LastReviewed; v != nil {
		builder.WriteString("last_reviewed=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("total_reviews=")
	builder.WriteString(fmt.Sprintf("%v", ri.TotalReviews))
	builder.WriteString(", ")
	builder.WriteString("consecutive_correct=")
	builder.WriteString(fmt.Sprintf("%v", ri.ConsecutiveCorrect))
	builder.WriteString(", ")
	builder.WriteString("average_accuracy=")
	builder.WriteString(fmt.Sprintf("%v", ri.AverageAccuracy))
	builder.WriteString(", ")
	builder.WriteString("average_time_ms=")
	builder.WriteString(fmt.Sprintf("%v", ri.AverageTimeMs))
	builder.WriteString(", ")
	builder.WriteString("difficulty_rating=")
	builder.WriteString(fmt.Sprintf("%v", ri.DifficultyRating))
	builder.WriteString(", ")
	builder.WriteString("last_grade=")
	builder.WriteString(fmt.Sprintf("%v", ri.LastGrade))
	builder.WriteString(", ")
	builder.WriteString("introduced=")
	builder.WriteString(ri.Introduced.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("graduated=")
	builder.WriteString(fmt.Sprintf("%v", ri.Graduated))
	builder.WriteString(", ")
	builder.WriteString("lapse_count=")
	builder.WriteString(fmt.Sprintf("%v", ri.LapseCount))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(ri.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(ri.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// ReviewItems is a parsable slice of ReviewItem.
type ReviewItems []*ReviewItem
