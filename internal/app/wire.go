//go:build wireinject
// +build wireinject

package app

import (
	"github.com/google/wire"

	"github.com/eslsoft/drillnet/internal/adapter/repository"
	"github.com/eslsoft/drillnet/internal/infrastructure/config"
	"github.com/eslsoft/drillnet/internal/infrastructure/database"
	"github.com/eslsoft/drillnet/internal/infrastructure/server"
	"github.com/eslsoft/drillnet/internal/usecase"
)

var configSet = wire.NewSet(
	config.Load,
)

var databaseSet = wire.NewSet(
	database.NewEntClient,
)

var repositorySet = wire.NewSet(
	repository.NewReviewItemRepository,
	repository.NewPracticeSessionRepository,
	repository.NewAnswerRecordRepository,
	repository.NewTaskRepository,
	repository.NewTransactor,
)

var usecaseSet = wire.NewSet(
	usecase.NewSchedulingUsecase,
	usecase.NewSessionUsecase,
	usecase.NewAnswerUsecase,
	usecase.NewStreakUsecase,
)

var serverSet = wire.NewSet(
	server.NewLogger,
)

// Initialize builds the application container using Wire.
func Initialize() (*Container, func(), error) {
	wire.Build(
		configSet,
		databaseSet,
		repositorySet,
		usecaseSet,
		serverSet,
		wire.Struct(new(Container), "Logger", "Scheduling", "Sessions", "Answers", "Streaks"),
	)
	return nil, nil, nil
}
