package entschema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AnswerRecord holds the schema definition for the answer_records table.
// Rows are append-only; there is no update path.
type AnswerRecord struct {
	ent.Schema
}

// Fields of the AnswerRecord.
func (AnswerRecord) Fields() []ent.Field {
	return []ent.Field{
		field.Int64("session_id").Default(0),
		field.Int64("task_id"),
		field.Int64("user_id"),
		field.String("user_answer").Default(""),
		field.Bool("is_correct"),
		field.Int32("grade"),
		field.Int64("time_spent_ms").Default(0),
		field.Int32("confidence").Default(3),
		field.Int32("attempt_number").Default(0),
		field.Time("answered_at"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the AnswerRecord.
func (AnswerRecord) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("user_id", "task_id"),
	}
}

// Annotations of the AnswerRecord.
func (AnswerRecord) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{
			Table: "answer_records",
		},
	}
}
