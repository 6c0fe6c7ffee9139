package repository

import (
	"context"
	"fmt"

	"github.com/eslsoft/drillnet/internal/entity"
	entdb "github.com/eslsoft/drillnet/internal/infrastructure/database/ent"
	entanswerrecord "github.com/eslsoft/drillnet/internal/infrastructure/database/ent/answerrecord"
	"github.com/eslsoft/drillnet/internal/repository"
)

type AnswerRecordRepository struct {
	client *entdb.Client
}

// NewAnswerRecordRepository constructs an ent-backed repository.
func NewAnswerRecordRepository(client *entdb.Client) repository.AnswerRecordRepository {
	return &AnswerRecordRepository{client: client}
}

func (r *AnswerRecordRepository) Create(ctx context.Context, record *entity.AnswerRecord) (*entity.AnswerRecord, error) {
	rec, err := txClient(ctx, r.client).AnswerRecord.Create().
		SetSessionID(record.SessionID).
		SetTaskID(record.TaskID).
		SetUserID(record.UserID).
		SetUserAnswer(record.UserAnswer).
		SetIsCorrect(record.IsCorrect).
		SetGrade(record.Grade).
		SetTimeSpentMs(record.TimeSpentMs).
		SetConfidence(record.Confidence).
		SetAttemptNumber(record.AttemptNumber).
		SetAnsweredAt(record.AnsweredAt).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create answer record: %w", err)
	}
	return mapEntAnswerRecord(rec), nil
}

func (r *AnswerRecordRepository) ListBySession(ctx context.Context, sessionID int64) ([]entity.AnswerRecord, error) {
	rows, err := txClient(ctx, r.client).AnswerRecord.Query().
		Where(entanswerrecord.SessionIDEQ(sessionID)).
		Order(entanswerrecord.ByAttemptNumber(), entanswerrecord.ByID()).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list answer records: %w", err)
	}

	records := make([]entity.AnswerRecord, 0, len(rows))
	for _, row := range rows {
		if mapped := mapEntAnswerRecord(row); mapped != nil {
			records = append(records, *mapped)
		}
	}
	return records, nil
}

func mapEntAnswerRecord(rec *entdb.AnswerRecord) *entity.AnswerRecord {
	if rec == nil {
		return nil
	}

	return &entity.AnswerRecord{
		ID:            int64(rec.ID),
		SessionID:     rec.SessionID,
		TaskID:        rec.TaskID,
		UserID:        rec.UserID,
		UserAnswer:    rec.UserAnswer,
		IsCorrect:     rec.IsCorrect,
		Grade:         rec.Grade,
		TimeSpentMs:   rec.TimeSpentMs,
		Confidence:    rec.Confidence,
		AttemptNumber: rec.AttemptNumber,
		AnsweredAt:    rec.AnsweredAt,
	}
}
