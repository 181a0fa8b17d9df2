package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/buildwise/buildwise-backend/mocks"
	"github.com/buildwise/buildwise-backend/models"
)

func TestEffectsFor_unknown_source(t *testing.T) {
	transactor := mocks.NewTransactor()
	interventionRepo := new(mocks.InterventionRepository)
	interventionRepo.On("GetInterventionByName", transactor.ExecMock, "Unknown").
		Return(nil, nil)

	usecase := EffectUsecase{
		executorGetter:         transactor,
		effectRepository:       new(mocks.EffectRepository),
		interventionRepository: interventionRepo,
	}
	_, err := usecase.EffectsFor(context.Background(), "Unknown")

	assert.ErrorIs(t, err, models.ErrUnknownIntervention)
}

func TestEffectsFor_previews_without_persisting(t *testing.T) {
	transactor := mocks.NewTransactor()
	exec := transactor.ExecMock
	interventionRepo := new(mocks.InterventionRepository)
	effectRepo := new(mocks.EffectRepository)

	effectValue := 5.0
	source := models.Intervention{Id: 1, Name: "Solar PV", InterventionRating: 4.0}
	target := models.Intervention{Id: 2, Name: "Battery Storage", InterventionRating: 3.0}

	interventionRepo.On("GetInterventionByName", exec, "Solar PV").Return(&source, nil)
	interventionRepo.On("GetInterventionByName", exec, "Battery Storage").Return(&target, nil)
	interventionRepo.On("GetInterventionByName", exec, "Retired Measure").Return(nil, nil)
	effectRepo.On("ListEffectsBySource", exec, "Solar PV").Return([]models.Effect{
		{SourceName: "Solar PV", TargetName: "Battery Storage", EffectValue: &effectValue, Note: "pairs well"},
		{SourceName: "Solar PV", TargetName: "Retired Measure", EffectValue: &effectValue},
	}, nil)

	usecase := EffectUsecase{
		executorGetter:         transactor,
		effectRepository:       effectRepo,
		interventionRepository: interventionRepo,
	}
	results, err := usecase.EffectsFor(context.Background(), "Solar PV")

	require.NoError(t, err)
	// the edge pointing at a name no longer in the catalog is skipped
	require.Len(t, results, 1)
	assert.Equal(t, models.EffectResult{
		Target:         "Battery Storage",
		AdjustedRating: 3.3,
		Note:           "pairs well",
	}, results[0])
	interventionRepo.AssertNotCalled(t, "UpdateInterventionRating")
}

func TestApplyEffects_persists_the_adjusted_ratings(t *testing.T) {
	transactor := mocks.NewTransactor()
	exec := transactor.ExecMock
	interventionRepo := new(mocks.InterventionRepository)
	effectRepo := new(mocks.EffectRepository)

	effectValue := -10.0
	source := models.Intervention{Id: 1, Name: "Solar PV", InterventionRating: 4.0}
	target := models.Intervention{Id: 2, Name: "Battery Storage", InterventionRating: 3.0}

	interventionRepo.On("GetInterventionByName", exec, "Solar PV").Return(&source, nil)
	interventionRepo.On("GetInterventionByName", exec, "Battery Storage").Return(&target, nil)
	effectRepo.On("ListEffectsBySource", exec, "Solar PV").Return([]models.Effect{
		{SourceName: "Solar PV", TargetName: "Battery Storage", EffectValue: &effectValue},
	}, nil)
	interventionRepo.On("UpdateInterventionRating", exec, int64(2), 2.4).Return(nil)

	usecase := EffectUsecase{
		executorGetter:         transactor,
		effectRepository:       effectRepo,
		interventionRepository: interventionRepo,
	}
	results, err := usecase.ApplyEffects(context.Background(), "Solar PV")

	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, 2.4, results[0].AdjustedRating)
	interventionRepo.AssertExpectations(t)
}
