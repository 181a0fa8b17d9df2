package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/buildwise/buildwise-backend/models"
	"github.com/buildwise/buildwise-backend/repositories"
)

type ConflictRepository struct {
	mock.Mock
}

func (r *ConflictRepository) ListConflictsAmong(ctx context.Context, exec repositories.Executor,
	interventionIds []int64,
) ([]models.Conflict, error) {
	args := r.Called(exec, interventionIds)
	return args.Get(0).([]models.Conflict), args.Error(1)
}
