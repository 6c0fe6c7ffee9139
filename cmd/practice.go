package cmd

import (
	"bufio"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/eslsoft/drillnet/internal/entity"
)

// practiceCmd runs one interactive practice session in the terminal: it
// composes a session from due reviews and unseen tasks, prompts for each
// answer, and records every answer against the scheduler.
var practiceCmd = &cobra.Command{
	Use:   "practice",
	Short: "Run an interactive practice session",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		count, _ := cmd.Flags().GetInt32("count")
		topicID, _ := cmd.Flags().GetInt64("topic")
		includeReview, _ := cmd.Flags().GetBool("review")
		difficulty, _ := cmd.Flags().GetInt32("difficulty")

		deps, cleanup, err := buildDeps()
		if err != nil {
			return err
		}
		defer cleanup()

		userID := userIDFromFlags(cmd)
		if count <= 0 {
			count = deps.cfg.Practice.DefaultSessionSize
		}

		config := entity.SessionConfig{
			TopicID:       topicID,
			TargetCount:   count,
			IncludeReview: includeReview,
		}
		if difficulty > 0 {
			config.DifficultyFilter = &difficulty
		}

		session, err := deps.sessionUC.CreateSession(ctx, userID, config)
		if err != nil {
			return err
		}
		deps.logger.WithField("session_id", session.ID).
			WithField("tasks", len(session.Execution.TaskIDs)).
			Info("session created")

		reader := bufio.NewReader(cmd.InOrStdin())
		for i, taskID := range session.Execution.TaskIDs {
			task, err := deps.tasks.GetByID(ctx, taskID)
			if err != nil {
				return err
			}

			cmd.Printf("\n[%d/%d] %s\n> ", i+1, len(session.Execution.TaskIDs), task.Prompt)
			started := time.Now()
			line, err := reader.ReadString('\n')
			if err != nil {
				return fmt.Errorf("read answer: %w", err)
			}
			elapsed := time.Since(started)

			answer := strings.TrimSpace(line)
			correct := strings.EqualFold(answer, strings.TrimSpace(task.Answer))

			record := &entity.AnswerRecord{
				SessionID:   session.ID,
				TaskID:      taskID,
				UserID:      userID,
				UserAnswer:  answer,
				IsCorrect:   correct,
				Grade:       gradeFor(correct, elapsed),
				TimeSpentMs: clampTimeSpent(elapsed),
				Confidence:  3,
			}
			item, err := deps.answers.RecordAnswer(ctx, record)
			if err != nil {
				return err
			}

			if correct {
				cmd.Printf("correct! next review %s\n", item.Schedule.NextReview.Format("2006-01-02"))
			} else {
				cmd.Printf("expected: %s (next review %s)\n", task.Answer, item.Schedule.NextReview.Format("2006-01-02"))
			}
		}

		completed, err := deps.sessionUC.CompleteSession(ctx, userID, session.ID)
		if err != nil {
			return err
		}

		cmd.Println()
		if completed.Results != nil {
			cmd.Printf("session complete: %d%% accuracy, avg %.1fs per task\n",
				completed.Results.Accuracy,
				completed.Results.AverageTimeMs/1000,
			)
			if len(completed.Results.ImprovementAreas) > 0 {
				cmd.Printf("worth revisiting: %s\n", strings.Join(completed.Results.ImprovementAreas, ", "))
			}
		}
		return nil
	},
}

// clampTimeSpent bounds wall-clock answer time to the range AnswerRecord
// accepts, so a learner who walks away from the terminal does not abort the
// session on the next prompt.
func clampTimeSpent(elapsed time.Duration) int64 {
	ms := elapsed.Milliseconds()
	if ms < 0 {
		return 0
	}
	if ms > entity.MaxAnswerTimeMs {
		return entity.MaxAnswerTimeMs
	}
	return ms
}

// gradeFor maps a terminal answer onto the 0-5 recall scale. Wrong answers
// land at 1 (recognized but failed) since the learner saw the prompt; timing
// splits the passing grades.
func gradeFor(correct bool, elapsed time.Duration) int32 {
	if !correct {
		return 1
	}
	switch {
	case elapsed < 5*time.Second:
		return 5
	case elapsed < 15*time.Second:
		return 4
	default:
		return 3
	}
}

func init() {
	rootCmd.AddCommand(practiceCmd)

	practiceCmd.Flags().Int32P("count", "c", 0, "number of tasks in the session (defaults to practice.default_session_size)")
	practiceCmd.Flags().Int64("topic", 0, "restrict tasks to one topic")
	practiceCmd.Flags().Bool("review", true, "mix due reviews into the session")
	practiceCmd.Flags().Int32("difficulty", 0, "only tasks at this difficulty (1-5)")
}
