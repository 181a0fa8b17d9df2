package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/buildwise/buildwise-backend/mocks"
	"github.com/buildwise/buildwise-backend/models"
)

func newSelectionUsecase(
	transactor *mocks.Transactor,
	selectionRepo *mocks.SelectionRepository,
	projectRepo *mocks.ProjectRepository,
	interventionRepo *mocks.InterventionRepository,
) SelectionUsecase {
	return SelectionUsecase{
		executorGetter:         transactor,
		selectionRepository:    selectionRepo,
		projectRepository:      projectRepo,
		interventionRepository: interventionRepo,
	}
}

func TestSaveSelection_writes_only_the_difference(t *testing.T) {
	transactor := mocks.NewTransactor()
	exec := transactor.ExecMock
	selectionRepo := new(mocks.SelectionRepository)
	projectRepo := new(mocks.ProjectRepository)
	interventionRepo := new(mocks.InterventionRepository)

	projectRepo.On("GetProjectById", exec, "project-1").
		Return(models.Project{Id: "project-1"}, nil)
	interventionRepo.On("ListInterventions", exec, models.ListInterventionsFilters{}).
		Return([]models.Intervention{{Id: 1}, {Id: 2}, {Id: 3}}, nil)
	selectionRepo.On("ListSelectedInterventionIds", exec, "project-1", []bool{true}).
		Return([]int64{1, 2}, nil)
	selectionRepo.On("InsertSelectedInterventions", exec, "project-1", []int64{3}).
		Return(nil)
	selectionRepo.On("DeleteSelectedInterventions", exec, "project-1", []int64{2}).
		Return(nil)

	usecase := newSelectionUsecase(transactor, selectionRepo, projectRepo, interventionRepo)
	change, err := usecase.SaveSelection(context.Background(), "project-1", []int64{1, 3})

	assert.NoError(t, err)
	assert.Equal(t, models.SelectionChange{Added: 1, Removed: 1, Total: 2}, change)
	selectionRepo.AssertExpectations(t)
}

func TestSaveSelection_same_set_is_a_noop(t *testing.T) {
	transactor := mocks.NewTransactor()
	exec := transactor.ExecMock
	selectionRepo := new(mocks.SelectionRepository)
	projectRepo := new(mocks.ProjectRepository)
	interventionRepo := new(mocks.InterventionRepository)

	projectRepo.On("GetProjectById", exec, "project-1").
		Return(models.Project{Id: "project-1"}, nil)
	interventionRepo.On("ListInterventions", exec, models.ListInterventionsFilters{}).
		Return([]models.Intervention{{Id: 1}, {Id: 2}}, nil)
	selectionRepo.On("ListSelectedInterventionIds", exec, "project-1", []bool{true}).
		Return([]int64{1, 2}, nil)
	selectionRepo.On("InsertSelectedInterventions", exec, "project-1", []int64{}).
		Return(nil)
	selectionRepo.On("DeleteSelectedInterventions", exec, "project-1", []int64{}).
		Return(nil)

	usecase := newSelectionUsecase(transactor, selectionRepo, projectRepo, interventionRepo)
	change, err := usecase.SaveSelection(context.Background(), "project-1", []int64{2, 1})

	assert.NoError(t, err)
	assert.Equal(t, models.SelectionChange{Added: 0, Removed: 0, Total: 2}, change)
}

func TestSaveSelection_unknown_project(t *testing.T) {
	transactor := mocks.NewTransactor()
	projectRepo := new(mocks.ProjectRepository)
	projectRepo.On("GetProjectById", transactor.ExecMock, "missing").
		Return(models.Project{}, models.NotFoundError)

	usecase := newSelectionUsecase(transactor, new(mocks.SelectionRepository),
		projectRepo, new(mocks.InterventionRepository))
	_, err := usecase.SaveSelection(context.Background(), "missing", []int64{1})

	assert.ErrorIs(t, err, models.ErrUnknownProject)
}

func TestSaveSelection_unknown_intervention_id(t *testing.T) {
	transactor := mocks.NewTransactor()
	exec := transactor.ExecMock
	projectRepo := new(mocks.ProjectRepository)
	interventionRepo := new(mocks.InterventionRepository)

	projectRepo.On("GetProjectById", exec, "project-1").
		Return(models.Project{Id: "project-1"}, nil)
	interventionRepo.On("ListInterventions", exec, mock.Anything).
		Return([]models.Intervention{{Id: 1}}, nil)

	usecase := newSelectionUsecase(transactor, new(mocks.SelectionRepository),
		projectRepo, interventionRepo)
	_, err := usecase.SaveSelection(context.Background(), "project-1", []int64{1, 99})

	assert.ErrorIs(t, err, models.ErrUnknownIntervention)
}
