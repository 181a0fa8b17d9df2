package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/buildwise/buildwise-backend/models"
	"github.com/buildwise/buildwise-backend/repositories"
)

type InterventionRepository struct {
	mock.Mock
}

func (r *InterventionRepository) ListInterventions(ctx context.Context, exec repositories.Executor,
	filters models.ListInterventionsFilters,
) ([]models.Intervention, error) {
	args := r.Called(exec, filters)
	return args.Get(0).([]models.Intervention), args.Error(1)
}

func (r *InterventionRepository) GetInterventionById(ctx context.Context, exec repositories.Executor,
	id int64,
) (models.Intervention, error) {
	args := r.Called(exec, id)
	return args.Get(0).(models.Intervention), args.Error(1)
}

func (r *InterventionRepository) GetInterventionByName(ctx context.Context, exec repositories.Executor,
	name string,
) (*models.Intervention, error) {
	args := r.Called(exec, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Intervention), args.Error(1)
}

func (r *InterventionRepository) ListRules(ctx context.Context, exec repositories.Executor) ([]models.Rule, error) {
	args := r.Called(exec)
	return args.Get(0).([]models.Rule), args.Error(1)
}

func (r *InterventionRepository) ListDependencies(ctx context.Context, exec repositories.Executor) ([]models.Dependency, error) {
	args := r.Called(exec)
	return args.Get(0).([]models.Dependency), args.Error(1)
}

func (r *InterventionRepository) UpdateInterventionRating(ctx context.Context, exec repositories.Executor,
	id int64, rating float64,
) error {
	args := r.Called(exec, id, rating)
	return args.Error(0)
}
