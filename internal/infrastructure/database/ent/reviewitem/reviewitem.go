// Code generated by ent, DO NOT EDIT.

package reviewitem

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the reviewitem type in the database.
	Label = "review_item"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldTaskID holds the string denoting the task_id field in the database.
	FieldTaskID = "task_id"
	// FieldIntervalDays holds the string denoting the interval_days field in the database.
	FieldIntervalDays = "interval_days"
	// FieldRepetition holds the string denoting the repetition field in the database.
	FieldRepetition = "repetition"
	// FieldEfactor holds the string denoting the efactor field in the database.
	FieldEfactor = "efactor"
	// FieldNextReview holds the string denoting the next_review field in the database.
	FieldNextReview = "next_review"
	// FieldLastReviewed holds the string denoting the last_reviewed field in the database.
	FieldLastReviewed = "last_reviewed"
	// FieldTotalReviews holds the string denoting the total_reviews field in the database.
	FieldTotalReviews = "total_reviews"
	// FieldConsecutiveCorrect holds the string denoting the consecutive_correct field in the database.
	FieldConsecutiveCorrect = "consecutive_correct"
	// FieldAverageAccuracy holds the string denoting the average_accuracy field in the database.
	FieldAverageAccuracy = "average_accuracy"
	// FieldAverageTimeMs holds the string denoting the average_time_ms field in the database.
	FieldAverageTimeMs = "average_time_ms"
	// FieldDifficultyRating holds the string denoting the difficulty_rating field in the database.
	FieldDifficultyRating = "difficulty_rating"
	// FieldLastGrade holds the string denoting the last_grade field in the database.
	FieldLastGrade = "last_grade"
	// FieldIntroduced holds the string denoting the introduced field in the database.
	FieldIntroduced = "introduced"
	// FieldGraduated holds the string denoting the graduated field in the database.
	FieldGraduated = "graduated"
	// FieldLapseCount holds the string denoting the lapse_count field in the database.
	FieldLapseCount = "lapse_count"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the reviewitem in the database.
	Table = "review_items"
)

// Columns holds all SQL columns for reviewitem fields.
var Columns = []string{
	FieldID,
	FieldUserID,
	FieldTaskID,
	FieldIntervalDays,
	FieldRepetition,
	FieldEfactor,
	FieldNextReview,
	FieldLastReviewed,
	FieldTotalReviews,
	FieldConsecutiveCorrect,
	FieldAverageAccuracy,
	FieldAverageTimeMs,
	FieldDifficultyRating,
	FieldLastGrade,
	FieldIntroduced,
	FieldGraduated,
	FieldLapseCount,
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
	// DefaultIntervalDays holds the default value on creation for the "interval_days" field.
	DefaultIntervalDays int32
	// DefaultRepetition holds the default value on creation for the "repetition" field.
	DefaultRepetition int32
	// DefaultEfactor holds the default value on creation for the "efactor" field.
	DefaultEfactor float64
	// DefaultTotalReviews holds the default value on creation for the "total_reviews" field.
	DefaultTotalReviews int32
	// DefaultConsecutiveCorrect holds the default value on creation for the "consecutive_correct" field.
	DefaultConsecutiveCorrect int32
	// DefaultAverageAccuracy holds the default value on creation for the "average_accuracy" field.
	DefaultAverageAccuracy float64
	// DefaultAverageTimeMs holds the default value on creation for the "average_time_ms" field.
	DefaultAverageTimeMs float64
	// DefaultDifficultyRating holds the default value on creation for the "difficulty_rating" field.
	DefaultDifficultyRating int32
	// DefaultLastGrade holds the default value on creation for the "last_grade" field.
	DefaultLastGrade int32
	// DefaultGraduated holds the default value on creation for the "graduated" field.
	DefaultGraduated bool
	// DefaultLapseCount holds the default value on creation for the "lapse_count" field.
	DefaultLapseCount int32
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// OrderOption defines the ordering options for the ReviewItem queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByTaskID orders the results by the task_id field.
func ByTaskID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTaskID, opts...).ToFunc()
}

// ByIntervalDays orders the results by the interval_days field.
func ByIntervalDays(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIntervalDays, opts...).ToFunc()
}

// ByRepetition orders the results by the repetition field.
func ByRepetition(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRepetition, opts...).ToFunc()
}

// ByEfactor orders the results by the efactor field.
func ByEfactor(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEfactor, opts...).ToFunc()
}

// ByNextReview orders the results by the next_review field.
func ByNextReview(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNextReview, opts...).ToFunc()
}

// ByLastReviewed orders the results by the last_reviewed field.
func ByLastReviewed(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastReviewed, opts...).ToFunc()
}

// ByTotalReviews orders the results by the total_reviews field.
func ByTotalReviews(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalReviews, opts...).ToFunc()
}

// ByConsecutiveCorrect orders the results by the consecutive_correct field.
func ByConsecutiveCorrect(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConsecutiveCorrect, opts...).ToFunc()
}

// ByAverageAccuracy orders the results by the average_accuracy field.
func ByAverageAccuracy(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAverageAccuracy, opts...).ToFunc()
}

// ByAverageTimeMs orders the results by the average_time_ms field.
func ByAverageTimeMs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAverageTimeMs, opts...).ToFunc()
}

// ByDifficultyRating orders the results by the difficulty_rating field.
func ByDifficultyRating(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDifficultyRating, opts...).ToFunc()
}

// ByLastGrade orders the results by the last_grade field.
func ByLastGrade(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastGrade, opts...).ToFunc()
}

// ByIntroduced orders the results by the introduced field.
func ByIntroduced(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIntroduced, opts...).ToFunc()
}

// ByGraduated orders the results by the graduated field.
func ByGraduated(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGraduated, opts...).ToFunc()
}

// ByLapseCount orders the results by the lapse_count field.
func ByLapseCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLapseCount, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
