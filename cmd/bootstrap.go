package cmd

import (
	"fmt"

	"github.com/sirupsen/logrus"

	adapterrepo "github.com/eslsoft/drillnet/internal/adapter/repository"
	"github.com/eslsoft/drillnet/internal/infrastructure/config"
	"github.com/eslsoft/drillnet/internal/infrastructure/database"
	"github.com/eslsoft/drillnet/internal/infrastructure/server"
	"github.com/eslsoft/drillnet/internal/repository"
	"github.com/eslsoft/drillnet/internal/usecase"
)

// runtimeDeps is the manually wired equivalent of app.Container for CLI
// commands, with the repositories exposed for maintenance paths that bypass
// the usecases.
type runtimeDeps struct {
	cfg    *config.Config
	logger *logrus.Logger

	tasks    repository.TaskRepository
	sessions repository.PracticeSessionRepository

	scheduling usecase.SchedulingUsecase
	sessionUC  usecase.SessionUsecase
	answers    usecase.AnswerUsecase
	streaks    usecase.StreakUsecase
}

func buildDeps() (*runtimeDeps, func(), error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}

	logger, err := server.NewLogger(cfg)
	if err != nil {
		return nil, nil, err
	}

	client, cleanup, err := database.NewEntClient(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("connect database: %w", err)
	}

	items := adapterrepo.NewReviewItemRepository(client)
	tasks := adapterrepo.NewTaskRepository(client)
	sessions := adapterrepo.NewPracticeSessionRepository(client)
	answers := adapterrepo.NewAnswerRecordRepository(client)
	tx := adapterrepo.NewTransactor(client)

	return &runtimeDeps{
		cfg:        cfg,
		logger:     logger,
		tasks:      tasks,
		sessions:   sessions,
		scheduling: usecase.NewSchedulingUsecase(items, tasks),
		sessionUC:  usecase.NewSessionUsecase(sessions, items, tasks, answers),
		answers:    usecase.NewAnswerUsecase(answers, items, sessions, tx),
		streaks:    usecase.NewStreakUsecase(sessions),
	}, cleanup, nil
}
