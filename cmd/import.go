package cmd

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	adapterrepo "github.com/eslsoft/drillnet/internal/adapter/repository"
	"github.com/eslsoft/drillnet/internal/entity"
	"github.com/eslsoft/drillnet/internal/infrastructure/config"
	"github.com/eslsoft/drillnet/internal/infrastructure/database"
)

const (
	importInputKey = "tasks.import.input"
)

// importCmd bulk-loads practice tasks from newline-delimited JSON. On
// PostgreSQL the rows go through the COPY protocol; on SQLite they are
// inserted one by one through ent.
var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Import practice tasks from an NDJSON file",
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		inputPath := viper.GetString(importInputKey)
		if inputPath == "" {
			return fmt.Errorf("use --input to name the NDJSON file, or - for stdin")
		}

		var reader io.Reader = cmd.InOrStdin()
		if inputPath != "-" {
			file, openErr := os.Open(filepath.Clean(inputPath))
			if openErr != nil {
				return fmt.Errorf("open input file: %w", openErr)
			}
			defer func() {
				if cerr := file.Close(); cerr != nil && err == nil {
					err = cerr
				}
			}()
			reader = file
		}

		tasks, err := decodeTaskLines(reader)
		if err != nil {
			return err
		}
		if len(tasks) == 0 {
			cmd.Println("nothing to import")
			return nil
		}

		driver, err := cfg.DatabaseDriver()
		if err != nil {
			return err
		}

		var inserted int64
		if driver == "postgres" {
			inserted, err = copyTasksPostgres(cmd, cfg, tasks)
		} else {
			inserted, err = insertTasksEnt(cmd, cfg, tasks)
		}
		if err != nil {
			return err
		}

		cmd.Printf("imported %d tasks\n", inserted)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(importCmd)

	importCmd.Flags().StringP("input", "i", "", "NDJSON file path, or - for stdin")

	bindFlagToViper(importInputKey, importCmd.Flags().Lookup("input"))
}

func bindFlagToViper(key string, flag *pflag.Flag) {
	if err := viper.BindPFlag(key, flag); err != nil {
		panic(err)
	}
}

type taskLine struct {
	TopicID       int64    `json:"topic_id"`
	LearningPaths []int64  `json:"learning_paths"`
	Prompt        string   `json:"prompt"`
	Answer        string   `json:"answer"`
	Language      string   `json:"language"`
	Difficulty    int32    `json:"difficulty"`
	Tags          []string `json:"tags"`
}

func decodeTaskLines(reader io.Reader) ([]entity.Task, error) {
	var tasks []entity.Task
	now := time.Now()

	scanner := bufio.NewScanner(reader)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		var row taskLine
		if err := json.Unmarshal(line, &row); err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		if row.Prompt == "" || row.Answer == "" {
			return nil, fmt.Errorf("line %d: prompt and answer are required", lineNo)
		}

		task := entity.Task{
			TopicID:         row.TopicID,
			LearningPathIDs: row.LearningPaths,
			Prompt:          row.Prompt,
			Answer:          row.Answer,
			Language:        entity.NormalizeLanguage(entity.Language(row.Language)),
			Difficulty:      row.Difficulty,
			Tags:            row.Tags,
		}
		task.Normalize(now)
		tasks = append(tasks, task)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	return tasks, nil
}

func copyTasksPostgres(cmd *cobra.Command, cfg *config.Config, tasks []entity.Task) (int64, error) {
	pool, closePool, err := database.NewConnection(cfg)
	if err != nil {
		return 0, err
	}
	defer closePool()

	rows := make([][]any, 0, len(tasks))
	for _, task := range tasks {
		paths, err := json.Marshal(task.LearningPathIDs)
		if err != nil {
			return 0, fmt.Errorf("marshal learning paths: %w", err)
		}
		tags, err := json.Marshal(task.Tags)
		if err != nil {
			return 0, fmt.Errorf("marshal tags: %w", err)
		}
		rows = append(rows, []any{
			task.TopicID,
			string(paths),
			task.Prompt,
			task.Answer,
			task.Language.Code(),
			task.Difficulty,
			string(tags),
			task.CreatedAt,
			task.UpdatedAt,
		})
	}

	inserted, err := pool.CopyFrom(
		cmd.Context(),
		pgx.Identifier{"tasks"},
		[]string{"topic_id", "learning_paths", "prompt", "answer", "language", "difficulty", "tags", "created_at", "updated_at"},
		pgx.CopyFromRows(rows),
	)
	if err != nil {
		return 0, fmt.Errorf("copy tasks: %w", err)
	}
	return inserted, nil
}

func insertTasksEnt(cmd *cobra.Command, cfg *config.Config, tasks []entity.Task) (int64, error) {
	client, cleanup, err := database.NewEntClient(cfg)
	if err != nil {
		return 0, fmt.Errorf("connect database: %w", err)
	}
	defer cleanup()

	repo := adapterrepo.NewTaskRepository(client)
	var inserted int64
	for i := range tasks {
		if _, err := repo.Create(cmd.Context(), &tasks[i]); err != nil {
			return inserted, fmt.Errorf("insert task %d: %w", i+1, err)
		}
		inserted++
	}
	return inserted, nil
}
