// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AnswerRecordsColumns holds the columns for the "answer_records" table.
	AnswerRecordsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "session_id", Type: field.TypeInt64, Default: 0},
		{Name: "task_id", Type: field.TypeInt64},
		{Name: "user_id", Type: field.TypeInt64},
		{Name: "user_answer", Type: field.TypeString, Default: ""},
		{Name: "is_correct", Type: field.TypeBool},
		{Name: "grade", Type: field.TypeInt32},
		{Name: "time_spent_ms", Type: field.TypeInt64, Default: 0},
		{Name: "confidence", Type: field.TypeInt32, Default: 3},
		{Name: "attempt_number", Type: field.TypeInt32, Default: 0},
		{Name: "answered_at", Type: field.TypeTime},
		{Name: "created_at", Type: field.TypeTime},
	}
	// AnswerRecordsTable holds the schema information for the "answer_records" table.
	AnswerRecordsTable = &schema.Table{
		Name:       "answer_records",
		Columns:    AnswerRecordsColumns,
		PrimaryKey: []*schema.Column{AnswerRecordsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "answerrecord_session_id",
				Unique:  false,
				Columns: []*schema.Column{AnswerRecordsColumns[1]},
			},
			{
				Name:    "answerrecord_user_id_task_id",
				Unique:  false,
				Columns: []*schema.Column{AnswerRecordsColumns[3], AnswerRecordsColumns[2]},
			},
		},
	}
	// PracticeSessionsColumns holds the columns for the "practice_sessions" table.
	PracticeSessionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "user_id", Type: field.TypeInt64},
		{Name: "topic_id", Type: field.TypeInt64, Default: 0},
		{Name: "learning_paths", Type: field.TypeJSON},
		{Name: "target_count", Type: field.TypeInt32},
		{Name: "include_review", Type: field.TypeBool, Default: false},
		{Name: "difficulty_filter", Type: field.TypeInt32, Nullable: true},
		{Name: "tasks", Type: field.TypeJSON},
		{Name: "completed_count", Type: field.TypeInt32, Default: 0},
		{Name: "correct_count", Type: field.TypeInt32, Default: 0},
		{Name: "status", Type: field.TypeString, Default: "planned"},
		{Name: "started_at", Type: field.TypeTime, Nullable: true},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "total_time_spent_ms", Type: field.TypeInt64, Default: 0},
		{Name: "results", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// PracticeSessionsTable holds the schema information for the "practice_sessions" table.
	PracticeSessionsTable = &schema.Table{
		Name:       "practice_sessions",
		Columns:    PracticeSessionsColumns,
		PrimaryKey: []*schema.Column{PracticeSessionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "practicesession_user_id_status",
				Unique:  false,
				Columns: []*schema.Column{PracticeSessionsColumns[1], PracticeSessionsColumns[10]},
			},
			{
				Name:    "practicesession_user_id_completed_at",
				Unique:  false,
				Columns: []*schema.Column{PracticeSessionsColumns[1], PracticeSessionsColumns[12]},
			},
		},
	}
	// ReviewItemsColumns holds the columns for the "review_items" table.
	ReviewItemsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "user_id", Type: field.TypeInt64},
		{Name: "task_id", Type: field.TypeInt64},
		{Name: "interval_days", Type: field.TypeInt32, Default: 0},
		{Name: "repetition", Type: field.TypeInt32, Default: 0},
		{Name: "efactor", Type: field.TypeFloat64, Default: 2.5},
		{Name: "next_review", Type: field.TypeTime},
		{Name: "last_reviewed", Type: field.TypeTime, Nullable: true},
		{Name: "total_reviews", Type: field.TypeInt32, Default: 0},
		{Name: "consecutive_correct", Type: field.TypeInt32, Default: 0},
		{Name: "average_accuracy", Type: field.TypeFloat64, Default: 0},
		{Name: "average_time_ms", Type: field.TypeFloat64, Default: 0},
		{Name: "difficulty_rating", Type: field.TypeInt32, Default: 1},
		{Name: "last_grade", Type: field.TypeInt32, Default: 0},
		{Name: "introduced", Type: field.TypeTime},
		{Name: "graduated", Type: field.TypeBool, Default: false},
		{Name: "lapse_count", Type: field.TypeInt32, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ReviewItemsTable holds the schema information for the "review_items" table.
	ReviewItemsTable = &schema.Table{
		Name:       "review_items",
		Columns:    ReviewItemsColumns,
		PrimaryKey: []*schema.Column{ReviewItemsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "reviewitem_user_id_task_id",
				Unique:  true,
				Columns: []*schema.Column{ReviewItemsColumns[1], ReviewItemsColumns[2]},
			},
			{
				Name:    "reviewitem_user_id_next_review",
				Unique:  false,
				Columns: []*schema.Column{ReviewItemsColumns[1], ReviewItemsColumns[6]},
			},
		},
	}
	// TasksColumns holds the columns for the "tasks" table.
	TasksColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "topic_id", Type: field.TypeInt64, Default: 0},
		{Name: "learning_paths", Type: field.TypeJSON},
		{Name: "prompt", Type: field.TypeString},
		{Name: "answer", Type: field.TypeString},
		{Name: "language", Type: field.TypeString, Default: "en"},
		{Name: "difficulty", Type: field.TypeInt32, Default: 1},
		{Name: "tags", Type: field.TypeJSON},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// TasksTable holds the schema information for the "tasks" table.
	TasksTable = &schema.Table{
		Name:       "tasks",
		Columns:    TasksColumns,
		PrimaryKey: []*schema.Column{TasksColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "task_topic_id",
				Unique:  false,
				Columns: []*schema.Column{TasksColumns[1]},
			},
			{
				Name:    "task_difficulty",
				Unique:  false,
				Columns: []*schema.Column{TasksColumns[6]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AnswerRecordsTable,
		PracticeSessionsTable,
		ReviewItemsTable,
		TasksTable,
	}
)

func init() {
	AnswerRecordsTable.Annotation = &entsql.Annotation{
		Table: "answer_records",
	}
	PracticeSessionsTable.Annotation = &entsql.Annotation{
		Table: "practice_sessions",
	}
	ReviewItemsTable.Annotation = &entsql.Annotation{
		Table: "review_items",
	}
	TasksTable.Annotation = &entsql.Annotation{
		Table: "tasks",
	}
}
