package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/buildwise/buildwise-backend/mocks"
	"github.com/buildwise/buildwise-backend/models"
)

func TestListInterventions_class_keys(t *testing.T) {
	cases := []struct {
		classKey string
		wantErr  bool
	}{
		{"", false},
		{"carbon", false},
		{"Embodied Carbon", false},
		{"water use", false},
		{"other", false},
		{"vibes", true},
	}
	for _, c := range cases {
		t.Run("class "+c.classKey, func(t *testing.T) {
			transactor := mocks.NewTransactor()
			interventionRepo := new(mocks.InterventionRepository)
			filters := models.ListInterventionsFilters{ClassKey: c.classKey}
			if !c.wantErr {
				interventionRepo.On("ListInterventions", transactor.ExecMock, filters).
					Return([]models.Intervention{}, nil)
			}

			usecase := InterventionUsecase{
				executorGetter:         transactor,
				interventionRepository: interventionRepo,
			}
			_, err := usecase.ListInterventions(context.Background(), filters)

			if c.wantErr {
				assert.ErrorIs(t, err, models.ErrUnknownInterventionClass)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestGetIntervention_unknown_id(t *testing.T) {
	transactor := mocks.NewTransactor()
	interventionRepo := new(mocks.InterventionRepository)
	interventionRepo.On("GetInterventionById", transactor.ExecMock, int64(99)).
		Return(models.Intervention{}, models.NotFoundError)

	usecase := InterventionUsecase{
		executorGetter:         transactor,
		interventionRepository: interventionRepo,
	}
	_, err := usecase.GetIntervention(context.Background(), 99)

	assert.ErrorIs(t, err, models.ErrUnknownIntervention)
}
