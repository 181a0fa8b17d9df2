package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/buildwise/buildwise-backend/models"
	"github.com/buildwise/buildwise-backend/repositories"
)

type ClassTargetRepository struct {
	mock.Mock
}

func (r *ClassTargetRepository) ListClassTargets(ctx context.Context, exec repositories.Executor) ([]models.ClassTarget, error) {
	args := r.Called(exec)
	return args.Get(0).([]models.ClassTarget), args.Error(1)
}
