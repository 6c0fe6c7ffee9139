package repository

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqljson"
	"github.com/samber/lo"

	"github.com/eslsoft/drillnet/internal/entity"
	entdb "github.com/eslsoft/drillnet/internal/infrastructure/database/ent"
	"github.com/eslsoft/drillnet/internal/infrastructure/database/ent/predicate"
	entreviewitem "github.com/eslsoft/drillnet/internal/infrastructure/database/ent/reviewitem"
	enttask "github.com/eslsoft/drillnet/internal/infrastructure/database/ent/task"
	"github.com/eslsoft/drillnet/internal/repository"
)

type TaskRepository struct {
	client *entdb.Client
}

// NewTaskRepository constructs an ent-backed repository.
func NewTaskRepository(client *entdb.Client) repository.TaskRepository {
	return &TaskRepository{client: client}
}

func (r *TaskRepository) GetByID(ctx context.Context, id int64) (*entity.Task, error) {
	rec, err := r.client.Task.Query().
		Where(enttask.IDEQ(int(id))).
		First(ctx)
	if err != nil {
		if entdb.IsNotFound(err) {
			return nil, entity.ErrTaskNotFound
		}
		return nil, fmt.Errorf("get task: %w", err)
	}
	return mapEntTask(rec), nil
}

func (r *TaskRepository) ListByIDs(ctx context.Context, ids []int64) ([]entity.Task, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	rows, err := r.client.Task.Query().
		Where(enttask.IDIn(lo.Map(ids, func(id int64, _ int) int { return int(id) })...)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list tasks by ids: %w", err)
	}
	return mapEntTasks(rows), nil
}

func (r *TaskRepository) ListUnseen(ctx context.Context, query *repository.UnseenTaskQuery) ([]entity.Task, error) {
	q := r.client.Task.Query().
		Where(notScheduledFor(query.UserID))

	if query.TopicID > 0 {
		q.Where(enttask.TopicIDEQ(query.TopicID))
	}
	if len(query.LearningPathIDs) > 0 {
		paths := lo.Map(query.LearningPathIDs, func(id int64, _ int) predicate.Task {
			return func(s *sql.Selector) {
				s.Where(sqljson.ValueContains(enttask.FieldLearningPaths, id))
			}
		})
		q.Where(enttask.Or(paths...))
	}
	if query.Difficulty != nil {
		q.Where(enttask.DifficultyEQ(*query.Difficulty))
	}

	q.Order(enttask.ByID())
	if query.Limit > 0 {
		q.Limit(int(query.Limit))
	}

	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list unseen tasks: %w", err)
	}
	return mapEntTasks(rows), nil
}

func (r *TaskRepository) Create(ctx context.Context, task *entity.Task) (*entity.Task, error) {
	tags := task.Tags
	if tags == nil {
		tags = []string{}
	}

	builder := r.client.Task.Create().
		SetTopicID(task.TopicID).
		SetLearningPaths(emptyWhenNil(task.LearningPathIDs)).
		SetPrompt(task.Prompt).
		SetAnswer(task.Answer).
		SetLanguage(entity.NormalizeLanguage(task.Language).Code()).
		SetDifficulty(task.Difficulty).
		SetTags(tags)

	if !task.CreatedAt.IsZero() {
		builder.SetCreatedAt(task.CreatedAt)
	}
	if !task.UpdatedAt.IsZero() {
		builder.SetUpdatedAt(task.UpdatedAt)
	}

	rec, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create task: %w", err)
	}
	return mapEntTask(rec), nil
}

// notScheduledFor excludes tasks the learner already has scheduling state
// for, via an anti-join on review_items.
func notScheduledFor(userID int64) predicate.Task {
	return func(s *sql.Selector) {
		sub := sql.Select(entreviewitem.FieldTaskID).
			From(sql.Table(entreviewitem.Table)).
			Where(sql.EQ(entreviewitem.FieldUserID, userID))
		s.Where(sql.NotIn(s.C(enttask.FieldID), sub))
	}
}

func mapEntTasks(rows []*entdb.Task) []entity.Task {
	tasks := make([]entity.Task, 0, len(rows))
	for _, row := range rows {
		if mapped := mapEntTask(row); mapped != nil {
			tasks = append(tasks, *mapped)
		}
	}
	return tasks
}

func mapEntTask(rec *entdb.Task) *entity.Task {
	if rec == nil {
		return nil
	}

	return &entity.Task{
		ID:              int64(rec.ID),
		TopicID:         rec.TopicID,
		LearningPathIDs: rec.LearningPaths,
		Prompt:          rec.Prompt,
		Answer:          rec.Answer,
		Language:        entity.Language(rec.Language),
		Difficulty:      rec.Difficulty,
		Tags:            rec.Tags,
		CreatedAt:       rec.CreatedAt,
		UpdatedAt:       rec.UpdatedAt,
	}
}
