// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/eslsoft/drillnet/internal/infrastructure/database/ent/answerrecord"
	"github.com/eslsoft/drillnet/internal/infrastructure/database/ent/practicesession"
	"github.com/eslsoft/drillnet/internal/infrastructure/database/ent/reviewitem"
	"github.com/eslsoft/drillnet/internal/infrastructure/database/ent/task"
	"github.com/eslsoft/drillnet/internal/infrastructure/database/entschema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	answerrecordFields := entschema.AnswerRecord{}.Fields()
	_ = answerrecordFields
	// answerrecordDescSessionID is the schema descriptor for session_id field.
	answerrecordDescSessionID := answerrecordFields[0].Descriptor()
	// answerrecord.DefaultSessionID holds the default value on creation for the session_id field.
	answerrecord.DefaultSessionID = answerrecordDescSessionID.Default.(int64)
	// answerrecordDescUserAnswer is the schema descriptor for user_answer field.
	answerrecordDescUserAnswer := answerrecordFields[3].Descriptor()
	// answerrecord.DefaultUserAnswer holds the default value on creation for the user_answer field.
	answerrecord.DefaultUserAnswer = answerrecordDescUserAnswer.Default.(string)
	// answerrecordDescTimeSpentMs is the schema descriptor for time_spent_ms field.
	answerrecordDescTimeSpentMs := answerrecordFields[6].Descriptor()
	// answerrecord.DefaultTimeSpentMs holds the default value on creation for the time_spent_ms field.
	answerrecord.DefaultTimeSpentMs = answerrecordDescTimeSpentMs.Default.(int64)
	// answerrecordDescConfidence is the schema descriptor for confidence field.
	answerrecordDescConfidence := answerrecordFields[7].Descriptor()
	// answerrecord.DefaultConfidence holds the default value on creation for the confidence field.
	answerrecord.DefaultConfidence = answerrecordDescConfidence.Default.(int32)
	// answerrecordDescAttemptNumber is the schema descriptor for attempt_number field.
	answerrecordDescAttemptNumber := answerrecordFields[8].Descriptor()
	// answerrecord.DefaultAttemptNumber holds the default value on creation for the attempt_number field.
	answerrecord.DefaultAttemptNumber = answerrecordDescAttemptNumber.Default.(int32)
	// answerrecordDescCreatedAt is the schema descriptor for created_at field.
	answerrecordDescCreatedAt := answerrecordFields[10].Descriptor()
	// answerrecord.DefaultCreatedAt holds the default value on creation for the created_at field.
	answerrecord.DefaultCreatedAt = answerrecordDescCreatedAt.Default.(func() time.Time)
	practicesessionFields := entschema.PracticeSession{}.Fields()
	_ = practicesessionFields
	// practicesessionDescTopicID is the schema descriptor for topic_id field.
	practicesessionDescTopicID := practicesessionFields[1].Descriptor()
	// practicesession.DefaultTopicID holds the default value on creation for the topic_id field.
	practicesession.DefaultTopicID = practicesessionDescTopicID.Default.(int64)
	// practicesessionDescLearningPaths is the schema descriptor for learning_paths field.
	practicesessionDescLearningPaths := practicesessionFields[2].Descriptor()
	// practicesession.DefaultLearningPaths holds the default value on creation for the learning_paths field.
	practicesession.DefaultLearningPaths = practicesessionDescLearningPaths.Default.([]int64)
	// practicesessionDescIncludeReview is the schema descriptor for include_review field.
	practicesessionDescIncludeReview := practicesessionFields[4].Descriptor()
	// practicesession.DefaultIncludeReview holds the default value on creation for the include_review field.
	practicesession.DefaultIncludeReview = practicesessionDescIncludeReview.Default.(bool)
	// practicesessionDescTasks is the schema descriptor for tasks field.
	practicesessionDescTasks := practicesessionFields[6].Descriptor()
	// practicesession.DefaultTasks holds the default value on creation for the tasks field.
	practicesession.DefaultTasks = practicesessionDescTasks.Default.([]int64)
	// practicesessionDescCompletedCount is the schema descriptor for completed_count field.
	practicesessionDescCompletedCount := practicesessionFields[7].Descriptor()
	// practicesession.DefaultCompletedCount holds the default value on creation for the completed_count field.
	practicesession.DefaultCompletedCount = practicesessionDescCompletedCount.Default.(int32)
	// practicesessionDescCorrectCount is the schema descriptor for correct_count field.
	practicesessionDescCorrectCount := practicesessionFields[8].Descriptor()
	// practicesession.DefaultCorrectCount holds the default value on creation for the correct_count field.
	practicesession.DefaultCorrectCount = practicesessionDescCorrectCount.Default.(int32)
	// practicesessionDescStatus is the schema descriptor for status field.
	practicesessionDescStatus := practicesessionFields[9].Descriptor()
	// practicesession.DefaultStatus holds the default value on creation for the status field.
	practicesession.DefaultStatus = practicesessionDescStatus.Default.(string)
	// practicesessionDescTotalTimeSpentMs is the schema descriptor for total_time_spent_ms field.
	practicesessionDescTotalTimeSpentMs := practicesessionFields[12].Descriptor()
	// practicesession.DefaultTotalTimeSpentMs holds the default value on creation for the total_time_spent_ms field.
	practicesession.DefaultTotalTimeSpentMs = practicesessionDescTotalTimeSpentMs.Default.(int64)
	// practicesessionDescCreatedAt is the schema descriptor for created_at field.
	practicesessionDescCreatedAt := practicesessionFields[14].Descriptor()
	// practicesession.DefaultCreatedAt holds the default value on creation for the created_at field.
	practicesession.DefaultCreatedAt = practicesessionDescCreatedAt.Default.(func() time.Time)
	// practicesessionDescUpdatedAt is the schema descriptor for updated_at field.
	practicesessionDescUpdatedAt := practicesessionFields[15].Descriptor()
	// practicesession.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	practicesession.DefaultUpdatedAt = practicesessionDescUpdatedAt.Default.(func() time.Time)
	// practicesession.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	practicesession.UpdateDefaultUpdatedAt = practicesessionDescUpdatedAt.UpdateDefault.(func() time.Time)
	reviewitemFields := entschema.ReviewItem{}.Fields()
	_ = reviewitemFields
	// reviewitemDescIntervalDays is the schema descriptor for interval_days field.
	reviewitemDescIntervalDays := reviewitemFields[2].Descriptor()
	// reviewitem.DefaultIntervalDays holds the default value on creation for the interval_days field.
	reviewitem.DefaultIntervalDays = reviewitemDescIntervalDays.Default.(int32)
	// reviewitemDescRepetition is the schema descriptor for repetition field.
	reviewitemDescRepetition := reviewitemFields[3].Descriptor()
	// reviewitem.DefaultRepetition holds the default value on creation for the repetition field.
	reviewitem.DefaultRepetition = reviewitemDescRepetition.Default.(int32)
	// reviewitemDescEfactor is the schema descriptor for efactor field.
	reviewitemDescEfactor := reviewitemFields[4].Descriptor()
	// reviewitem.DefaultEfactor holds the default value on creation for the efactor field.
	reviewitem.DefaultEfactor = reviewitemDescEfactor.Default.(float64)
	// reviewitemDescTotalReviews is the schema descriptor for total_reviews field.
	reviewitemDescTotalReviews := reviewitemFields[7].Descriptor()
	// reviewitem.DefaultTotalReviews holds the default value on creation for the total_reviews field.
	reviewitem.DefaultTotalReviews = reviewitemDescTotalReviews.Default.(int32)
	// reviewitemDescConsecutiveCorrect is the schema descriptor for consecutive_correct field.
	reviewitemDescConsecutiveCorrect := reviewitemFields[8].Descriptor()
	// reviewitem.DefaultConsecutiveCorrect holds the default value on creation for the consecutive_correct field.
	reviewitem.DefaultConsecutiveCorrect = reviewitemDescConsecutiveCorrect.Default.(int32)
	// reviewitemDescAverageAccuracy is the schema descriptor for average_accuracy field.
	reviewitemDescAverageAccuracy := reviewitemFields[9].Descriptor()
	// reviewitem.DefaultAverageAccuracy holds the default value on creation for the average_accuracy field.
	reviewitem.DefaultAverageAccuracy = reviewitemDescAverageAccuracy.Default.(float64)
	// reviewitemDescAverageTimeMs is the schema descriptor for average_time_ms field.
	reviewitemDescAverageTimeMs := reviewitemFields[10].Descriptor()
	// reviewitem.DefaultAverageTimeMs holds the default value on creation for the average_time_ms field.
	reviewitem.DefaultAverageTimeMs = reviewitemDescAverageTimeMs.Default.(float64)
	// reviewitemDescDifficultyRating is the schema descriptor for difficulty_rating field.
	reviewitemDescDifficultyRating := reviewitemFields[11].Descriptor()
	// reviewitem.DefaultDifficultyRating holds the default value on creation for the difficulty_rating field.
	reviewitem.DefaultDifficultyRating = reviewitemDescDifficultyRating.Default.(int32)
	// reviewitemDescLastGrade is the schema descriptor for last_grade field.
	reviewitemDescLastGrade := reviewitemFields[12].Descriptor()
	// reviewitem.DefaultLastGrade holds the default value on creation for the last_grade field.
	reviewitem.DefaultLastGrade = reviewitemDescLastGrade.Default.(int32)
	// reviewitemDescGraduated is the schema descriptor for graduated field.
	reviewitemDescGraduated := reviewitemFields[14].Descriptor()
	// reviewitem.DefaultGraduated holds the default value on creation for the graduated field.
	reviewitem.DefaultGraduated = reviewitemDescGraduated.Default.(bool)
	// reviewitemDescLapseCount is the schema descriptor for lapse_count field.
	reviewitemDescLapseCount := reviewitemFields[15].Descriptor()
	// reviewitem.DefaultLapseCount holds the default value on creation for the lapse_count field.
	reviewitem.DefaultLapseCount = reviewitemDescLapseCount.Default.(int32)
	// reviewitemDescCreatedAt is the schema descriptor for created_at field.
	reviewitemDescCreatedAt := reviewitemFields[16].Descriptor()
	// reviewitem.DefaultCreatedAt holds the default value on creation for the created_at field.
	reviewitem.DefaultCreatedAt = reviewitemDescCreatedAt.Default.(func() time.Time)
	// reviewitemDescUpdatedAt is the schema descriptor for updated_at field.
	reviewitemDescUpdatedAt := reviewitemFields[17].Descriptor()
	// reviewitem.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	reviewitem.DefaultUpdatedAt = reviewitemDescUpdatedAt.Default.(func() time.Time)
	// reviewitem.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	reviewitem.UpdateDefaultUpdatedAt = reviewitemDescUpdatedAt.UpdateDefault.(func() time.Time)
	taskFields := entschema.Task{}.Fields()
	_ = taskFields
	// taskDescTopicID is the schema descriptor for topic_id field.
	taskDescTopicID := taskFields[0].Descriptor()
	// task.DefaultTopicID holds the default value on creation for the topic_id field.
	task.DefaultTopicID = taskDescTopicID.Default.(int64)
	// taskDescLearningPaths is the schema descriptor for learning_paths field.
	taskDescLearningPaths := taskFields[1].Descriptor()
	// task.DefaultLearningPaths holds the default value on creation for the learning_paths field.
	task.DefaultLearningPaths = taskDescLearningPaths.Default.([]int64)
	// taskDescPrompt is the schema descriptor for prompt field.
	taskDescPrompt := taskFields[2].Descriptor()
	// task.PromptValidator is a validator for the "prompt" field. It is called by the builders before save.
	task.PromptValidator = taskDescPrompt.Validators[0].(func(string) error)
	// taskDescAnswer is the schema descriptor for answer field.
	taskDescAnswer := taskFields[3].Descriptor()
	// task.AnswerValidator is a validator for the "answer" field. It is called by the builders before save.
	task.AnswerValidator = taskDescAnswer.Validators[0].(func(string) error)
	// taskDescLanguage is the schema descriptor for language field.
	taskDescLanguage := taskFields[4].Descriptor()
	// task.DefaultLanguage holds the default value on creation for the language field.
	task.DefaultLanguage = taskDescLanguage.Default.(string)
	// taskDescDifficulty is the schema descriptor for difficulty field.
	taskDescDifficulty := taskFields[5].Descriptor()
	// task.DefaultDifficulty holds the default value on creation for the difficulty field.
	task.DefaultDifficulty = taskDescDifficulty.Default.(int32)
	// taskDescTags is the schema descriptor for tags field.
	taskDescTags := taskFields[6].Descriptor()
	// task.DefaultTags holds the default value on creation for the tags field.
	task.DefaultTags = taskDescTags.Default.([]string)
	// taskDescCreatedAt is the schema descriptor for created_at field.
	taskDescCreatedAt := taskFields[7].Descriptor()
	// task.DefaultCreatedAt holds the default value on creation for the created_at field.
	task.DefaultCreatedAt = taskDescCreatedAt.Default.(func() time.Time)
	// taskDescUpdatedAt is the schema descriptor for updated_at field.
	taskDescUpdatedAt := taskFields[8].Descriptor()
	// task.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	task.DefaultUpdatedAt = taskDescUpdatedAt.Default.(func() time.Time)
	// task.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	task.UpdateDefaultUpdatedAt = taskDescUpdatedAt.UpdateDefault.(func() time.Time)
}
