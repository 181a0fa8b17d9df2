package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/buildwise/buildwise-backend/repositories"
)

type SelectionRepository struct {
	mock.Mock
}

func (r *SelectionRepository) ListSelectedInterventionIds(ctx context.Context, exec repositories.Executor,
	projectId string, forUpdate ...bool,
) ([]int64, error) {
	args := r.Called(exec, projectId, forUpdate)
	return args.Get(0).([]int64), args.Error(1)
}

func (r *SelectionRepository) InsertSelectedInterventions(ctx context.Context, exec repositories.Executor,
	projectId string, interventionIds []int64,
) error {
	args := r.Called(exec, projectId, interventionIds)
	return args.Error(0)
}

func (r *SelectionRepository) DeleteSelectedInterventions(ctx context.Context, exec repositories.Executor,
	projectId string, interventionIds []int64,
) error {
	args := r.Called(exec, projectId, interventionIds)
	return args.Error(0)
}
