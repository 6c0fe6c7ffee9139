// Code generated by ent, DO NOT EDIT.

package practicesession

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the practicesession type in the database.
	Label = "practice_session"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldTopicID holds the string denoting the topic_id field in the database.
	FieldTopicID = "topic_id"
	// FieldLearningPaths holds the string denoting the learning_paths field in the database.
	FieldLearningPaths = "learning_paths"
	// FieldTargetCount holds the string denoting the target_count field in the database.
	FieldTargetCount = "target_count"
	// FieldIncludeReview holds the string denoting the include_review field in the database.
	FieldIncludeReview = "include_review"
	// FieldDifficultyFilter holds the string denoting the difficulty_filter field in the database.
	FieldDifficultyFilter = "difficulty_filter"
	// FieldTasks holds the string denoting the tasks field in the database.
	FieldTasks = "tasks"
	// FieldCompletedCount holds the string denoting the completed_count field in the database.
	FieldCompletedCount = "completed_count"
	// FieldCorrectCount holds the string denoting the correct_count field in the database.
	FieldCorrectCount = "correct_count"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldStartedAt holds the string denoting the started_at field in the database.
	FieldStartedAt = "started_at"
	// FieldCompletedAt holds the string denoting the completed_at field in the database.
	FieldCompletedAt = "completed_at"
	// FieldTotalTimeSpentMs holds the string denoting the total_time_spent_ms field in the database.
	FieldTotalTimeSpentMs = "total_time_spent_ms"
	// FieldResults holds the string denoting the results field in the database.
	FieldResults = "results"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the practicesession in the database.
	Table = "practice_sessions"
)

// Columns holds all SQL columns for practicesession fields.
var Columns = []string{
	FieldID,
	FieldUserID,
	FieldTopicID,
	FieldLearningPaths,
	FieldTargetCount,
	FieldIncludeReview,
	FieldDifficultyFilter,
	FieldTasks,
	FieldCompletedCount,
	FieldCorrectCount,
	FieldStatus,
	FieldStartedAt,
	FieldCompletedAt,
	FieldTotalTimeSpentMs,
	FieldResults,
	FieldCreatedAt,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultTopicID holds the default value on creation for the "topic_id" field.
	DefaultTopicID int64
	// DefaultLearningPaths holds the default value on creation for the "learning_paths" field.
	DefaultLearningPaths []int64
	// DefaultIncludeReview holds the default value on creation for the "include_review" field.
	DefaultIncludeReview bool
	// DefaultTasks holds the default value on creation for the "tasks" field.
	DefaultTasks []int64
	// DefaultCompletedCount holds the default value on creation for the "completed_count" field.
	DefaultCompletedCount int32
	// DefaultCorrectCount holds the default value on creation for the "correct_count" field.
	DefaultCorrectCount int32
	// DefaultStatus holds the default value on creation for the "status" field.
	DefaultStatus string
	// DefaultTotalTimeSpentMs holds the default value on creation for the "total_time_spent_ms" field.
	DefaultTotalTimeSpentMs int64
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// OrderOption defines the ordering options for the PracticeSession queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByTopicID orders the results by the topic_id field.
func ByTopicID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTopicID, opts...).ToFunc()
}

// ByTargetCount orders the results by the target_count field.
func ByTargetCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTargetCount, opts...).ToFunc()
}

// ByIncludeReview orders the results by the include_review field.
func ByIncludeReview(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIncludeReview, opts...).ToFunc()
}

// ByDifficultyFilter orders the results by the difficulty_filter field.
func ByDifficultyFilter(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDifficultyFilter, opts...).ToFunc()
}

// ByCompletedCount orders the results by the completed_count field.
func ByCompletedCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletedCount, opts...).ToFunc()
}

// ByCorrectCount orders the results by the correct_count field.
func ByCorrectCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCorrectCount, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByStartedAt orders the results by the started_at field.
func ByStartedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartedAt, opts...).ToFunc()
}

// ByCompletedAt orders the results by the completed_at field.
func ByCompletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletedAt, opts...).ToFunc()
}

// ByTotalTimeSpentMs orders the results by the total_time_spent_ms field.
func ByTotalTimeSpentMs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalTimeSpentMs, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
