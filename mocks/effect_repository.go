package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/buildwise/buildwise-backend/models"
	"github.com/buildwise/buildwise-backend/repositories"
)

type EffectRepository struct {
	mock.Mock
}

func (r *EffectRepository) ListEffectsBySource(ctx context.Context, exec repositories.Executor,
	sourceName string,
) ([]models.Effect, error) {
	args := r.Called(exec, sourceName)
	return args.Get(0).([]models.Effect), args.Error(1)
}
