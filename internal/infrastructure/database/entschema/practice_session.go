package entschema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/eslsoft/drillnet/internal/entity"
)

// PracticeSession holds the schema definition for the practice_sessions table.
type PracticeSession struct {
	ent.Schema
}

// Fields of the PracticeSession.
func (PracticeSession) Fields() []ent.Field {
	return []ent.Field{
		field.Int64("user_id"),
		field.Int64("topic_id").Default(0),
		field.JSON("learning_paths", []int64{}).
			Default([]int64{}),
		field.Int32("target_count"),
		field.Bool("include_review").Default(false),
		field.Int32("difficulty_filter").Optional().Nillable(),
		field.JSON("tasks", []int64{}).
			Default([]int64{}),
		field.Int32("completed_count").Default(0),
		field.Int32("correct_count").Default(0),
		field.String("status").Default(string(entity.SessionPlanned)),
		field.Time("started_at").Optional().Nillable(),
		field.Time("completed_at").Optional().Nillable(),
		field.Int64("total_time_spent_ms").Default(0),
		field.JSON("results", &entity.SessionResults{}).Optional(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the PracticeSession.
func (PracticeSession) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "status"),
		index.Fields("user_id", "completed_at"),
	}
}

// Annotations of the PracticeSession.
func (PracticeSession) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{
			Table: "practice_sessions",
		},
	}
}
