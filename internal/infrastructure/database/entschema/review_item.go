package entschema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ReviewItem holds the schema definition for the review_items table.
type ReviewItem struct {
	ent.Schema
}

// Fields of the ReviewItem.
func (ReviewItem) Fields() []ent.Field {
	return []ent.Field{
		field.Int64("user_id"),
		field.Int64("task_id"),
		field.Int32("interval_days").Default(0),
		field.Int32("repetition").Default(0),
		field.Float("efactor").Default(2.5),
		field.Time("next_review"),
		field.Time("last_reviewed").Optional().Nillable(),
		field.Int32("total_reviews").Default(0),
		field.Int32("consecutive_correct").Default(0),
		field.Float("average_accuracy").Default(0),
		field.Float("average_time_ms").Default(0),
		field.Int32("difficulty_rating").Default(1),
		field.Int32("last_grade").Default(0),
		field.Time("introduced"),
		field.Bool("graduated").Default(false),
		field.Int32("lapse_count").Default(0),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the ReviewItem.
func (ReviewItem) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "task_id").Unique(),
		index.Fields("user_id", "next_review"),
	}
}

// Annotations of the ReviewItem.
func (ReviewItem) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{
			Table: "review_items",
		},
	}
}
