package repository

import (
	"context"

	"github.com/eslsoft/drillnet/internal/entity"
)

// AnswerRecordRepository persists submitted answers. Records are append-only.
type AnswerRecordRepository interface {
	Create(ctx context.Context, record *entity.AnswerRecord) (*entity.AnswerRecord, error)
	ListBySession(ctx context.Context, sessionID int64) ([]entity.AnswerRecord, error)
}
