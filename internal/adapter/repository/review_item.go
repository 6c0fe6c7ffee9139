package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/eslsoft/drillnet/internal/entity"
	entdb "github.com/eslsoft/drillnet/internal/infrastructure/database/ent"
	entreviewitem "github.com/eslsoft/drillnet/internal/infrastructure/database/ent/reviewitem"
	"github.com/eslsoft/drillnet/internal/repository"
)

type ReviewItemRepository struct {
	client *entdb.Client
}

// NewReviewItemRepository constructs an ent-backed repository.
func NewReviewItemRepository(client *entdb.Client) repository.ReviewItemRepository {
	return &ReviewItemRepository{client: client}
}

func (r *ReviewItemRepository) Create(ctx context.Context, item *entity.SpacedRepetitionItem) (*entity.SpacedRepetitionItem, error) {
	builder := txClient(ctx, r.client).ReviewItem.Create().
		SetUserID(item.UserID).
		SetTaskID(item.TaskID).
		SetIntervalDays(item.Algorithm.IntervalDays).
		SetRepetition(item.Algorithm.Repetition).
		SetEfactor(item.Algorithm.EFactor).
		SetNextReview(item.Schedule.NextReview).
		SetNillableLastReviewed(item.Schedule.LastReviewed).
		SetTotalReviews(item.Schedule.TotalReviews).
		SetConsecutiveCorrect(item.Schedule.ConsecutiveCorrect).
		SetAverageAccuracy(item.Performance.AverageAccuracy).
		SetAverageTimeMs(item.Performance.AverageTimeMs).
		SetDifficultyRating(item.Performance.DifficultyRating).
		SetLastGrade(item.Performance.LastGrade).
		SetIntroduced(item.Metadata.Introduced).
		SetGraduated(item.Metadata.Graduated).
		SetLapseCount(item.Metadata.LapseCount)

	if !item.CreatedAt.IsZero() {
		builder.SetCreatedAt(item.CreatedAt)
	}
	if !item.UpdatedAt.IsZero() {
		builder.SetUpdatedAt(item.UpdatedAt)
	}

	rec, err := builder.Save(ctx)
	if err != nil {
		return nil, translateReviewItemError(err)
	}
	return mapEntReviewItem(rec), nil
}

func (r *ReviewItemRepository) Update(ctx context.Context, item *entity.SpacedRepetitionItem, expectedTotalReviews int32) (*entity.SpacedRepetitionItem, error) {
	// The TotalReviews predicate makes this a compare-and-swap: a concurrent
	// writer bumps the counter first and this mutation matches zero rows.
	mutation := txClient(ctx, r.client).ReviewItem.UpdateOneID(int(item.ID)).
		Where(
			entreviewitem.UserIDEQ(item.UserID),
			entreviewitem.TotalReviewsEQ(expectedTotalReviews),
		).
		SetIntervalDays(item.Algorithm.IntervalDays).
		SetRepetition(item.Algorithm.Repetition).
		SetEfactor(item.Algorithm.EFactor).
		SetNextReview(item.Schedule.NextReview).
		SetNillableLastReviewed(item.Schedule.LastReviewed).
		SetTotalReviews(item.Schedule.TotalReviews).
		SetConsecutiveCorrect(item.Schedule.ConsecutiveCorrect).
		SetAverageAccuracy(item.Performance.AverageAccuracy).
		SetAverageTimeMs(item.Performance.AverageTimeMs).
		SetDifficultyRating(item.Performance.DifficultyRating).
		SetLastGrade(item.Performance.LastGrade).
		SetGraduated(item.Metadata.Graduated).
		SetLapseCount(item.Metadata.LapseCount).
		SetUpdatedAt(item.UpdatedAt)

	rec, err := mutation.Save(ctx)
	if err != nil {
		if entdb.IsNotFound(err) {
			return nil, entity.ErrConcurrentUpdate
		}
		return nil, fmt.Errorf("update review item: %w", err)
	}
	return mapEntReviewItem(rec), nil
}

func (r *ReviewItemRepository) UpdateSchedule(ctx context.Context, userID, taskID int64, nextReview time.Time) error {
	affected, err := txClient(ctx, r.client).ReviewItem.Update().
		Where(
			entreviewitem.UserIDEQ(userID),
			entreviewitem.TaskIDEQ(taskID),
		).
		SetNextReview(nextReview).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("update review schedule: %w", err)
	}
	if affected == 0 {
		return entity.ErrReviewItemNotFound
	}
	return nil
}

func (r *ReviewItemRepository) FindByTaskID(ctx context.Context, userID, taskID int64) (*entity.SpacedRepetitionItem, error) {
	rec, err := txClient(ctx, r.client).ReviewItem.Query().
		Where(
			entreviewitem.UserIDEQ(userID),
			entreviewitem.TaskIDEQ(taskID),
		).
		First(ctx)
	if err != nil {
		if entdb.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("find review item: %w", err)
	}
	return mapEntReviewItem(rec), nil
}

func (r *ReviewItemRepository) ListDue(ctx context.Context, userID int64, now time.Time) ([]entity.SpacedRepetitionItem, error) {
	rows, err := txClient(ctx, r.client).ReviewItem.Query().
		Where(
			entreviewitem.UserIDEQ(userID),
			entreviewitem.NextReviewLTE(now),
		).
		Order(entreviewitem.ByNextReview(), entreviewitem.ByTaskID()).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list due review items: %w", err)
	}
	return mapEntReviewItems(rows), nil
}

func (r *ReviewItemRepository) ListScheduledBetween(ctx context.Context, userID int64, from, to time.Time) ([]entity.SpacedRepetitionItem, error) {
	rows, err := txClient(ctx, r.client).ReviewItem.Query().
		Where(
			entreviewitem.UserIDEQ(userID),
			entreviewitem.NextReviewGTE(from),
			entreviewitem.NextReviewLT(to),
		).
		Order(entreviewitem.ByNextReview(), entreviewitem.ByTaskID()).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list scheduled review items: %w", err)
	}
	return mapEntReviewItems(rows), nil
}

func (r *ReviewItemRepository) Stats(ctx context.Context, userID int64, now time.Time) (*entity.SchedulingStatistics, error) {
	base := txClient(ctx, r.client).ReviewItem.Query().Where(entreviewitem.UserIDEQ(userID))

	total, err := base.Clone().Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count review items: %w", err)
	}
	if total == 0 {
		return &entity.SchedulingStatistics{}, nil
	}

	due, err := base.Clone().Where(entreviewitem.NextReviewLTE(now)).Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count due review items: %w", err)
	}

	graduated, err := base.Clone().Where(entreviewitem.GraduatedEQ(true)).Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count graduated review items: %w", err)
	}

	lapses, err := base.Clone().Aggregate(entdb.Sum(entreviewitem.FieldLapseCount)).Int(ctx)
	if err != nil {
		return nil, fmt.Errorf("sum lapses: %w", err)
	}

	avgEase, err := base.Clone().Aggregate(entdb.Mean(entreviewitem.FieldEfactor)).Float64(ctx)
	if err != nil {
		return nil, fmt.Errorf("average ease factor: %w", err)
	}

	avgAccuracy, err := base.Clone().Aggregate(entdb.Mean(entreviewitem.FieldAverageAccuracy)).Float64(ctx)
	if err != nil {
		return nil, fmt.Errorf("average accuracy: %w", err)
	}

	return &entity.SchedulingStatistics{
		TotalItems:        int64(total),
		DueItems:          int64(due),
		GraduatedItems:    int64(graduated),
		TotalLapses:       int64(lapses),
		AverageEaseFactor: avgEase,
		AverageAccuracy:   avgAccuracy,
	}, nil
}

func mapEntReviewItems(rows []*entdb.ReviewItem) []entity.SpacedRepetitionItem {
	items := make([]entity.SpacedRepetitionItem, 0, len(rows))
	for _, row := range rows {
		if mapped := mapEntReviewItem(row); mapped != nil {
			items = append(items, *mapped)
		}
	}
	return items
}

func mapEntReviewItem(rec *entdb.ReviewItem) *entity.SpacedRepetitionItem {
	if rec == nil {
		return nil
	}

	return &entity.SpacedRepetitionItem{
		ID:     int64(rec.ID),
		UserID: rec.UserID,
		TaskID: rec.TaskID,
		Algorithm: entity.ReviewAlgorithm{
			IntervalDays: rec.IntervalDays,
			Repetition:   rec.Repetition,
			EFactor:      rec.Efactor,
		},
		Schedule: entity.ReviewSchedule{
			NextReview:         rec.NextReview,
			LastReviewed:       rec.LastReviewed,
			TotalReviews:       rec.TotalReviews,
			ConsecutiveCorrect: rec.ConsecutiveCorrect,
		},
		Performance: entity.ReviewPerformance{
			AverageAccuracy:  rec.AverageAccuracy,
			AverageTimeMs:    rec.AverageTimeMs,
			DifficultyRating: rec.DifficultyRating,
			LastGrade:        rec.LastGrade,
		},
		Metadata: entity.ReviewMetadata{
			Introduced: rec.Introduced,
			Graduated:  rec.Graduated,
			LapseCount: rec.LapseCount,
		},
		CreatedAt: rec.CreatedAt,
		UpdatedAt: rec.UpdatedAt,
	}
}

// translateReviewItemError folds a unique (user_id, task_id) violation into
// ErrConcurrentUpdate so callers re-read and retry the same way they do for a
// lost compare-and-swap.
func translateReviewItemError(err error) error {
	if err == nil {
		return nil
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return entity.ErrConcurrentUpdate
	}
	if entdb.IsConstraintError(err) {
		return entity.ErrConcurrentUpdate
	}
	return err
}
