package app

import (
	"github.com/sirupsen/logrus"

	"github.com/eslsoft/drillnet/internal/usecase"
)

// Container aggregates the application dependencies produced by Wire.
type Container struct {
	Logger     *logrus.Logger
	Scheduling usecase.SchedulingUsecase
	Sessions   usecase.SessionUsecase
	Answers    usecase.AnswerUsecase
	Streaks    usecase.StreakUsecase
}
