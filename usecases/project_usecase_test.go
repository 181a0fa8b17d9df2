package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/buildwise/buildwise-backend/mocks"
	"github.com/buildwise/buildwise-backend/models"
)

func TestCreateProject_requires_a_name(t *testing.T) {
	usecase := ProjectUsecase{
		executorGetter:    mocks.NewTransactor(),
		projectRepository: new(mocks.ProjectRepository),
	}

	_, err := usecase.CreateProject(context.Background(), models.CreateProjectInput{
		ProjectName: "   ",
	})

	assert.ErrorIs(t, err, models.ErrProjectNameRequired)
	assert.ErrorIs(t, err, models.BadParameterError)
}

func TestCreateProject_slugs_the_project_code(t *testing.T) {
	transactor := mocks.NewTransactor()
	exec := transactor.ExecMock
	projectRepo := new(mocks.ProjectRepository)

	input := models.CreateProjectInput{ProjectName: "Harbour View Tower", Location: "Sydney"}

	projectRepo.On("ProjectCodeExists", exec, "harbour-view-tower").Return(false, nil)
	projectRepo.On("CreateProject", exec, input, mock.Anything, "harbour-view-tower").
		Return(nil)
	projectRepo.On("GetProjectById", exec, mock.Anything).
		Return(models.Project{ProjectCode: "harbour-view-tower"}, nil)

	usecase := ProjectUsecase{executorGetter: transactor, projectRepository: projectRepo}
	project, err := usecase.CreateProject(context.Background(), input)

	assert.NoError(t, err)
	assert.Equal(t, "harbour-view-tower", project.ProjectCode)
	projectRepo.AssertExpectations(t)
}

func TestCreateProject_suffixes_taken_codes(t *testing.T) {
	transactor := mocks.NewTransactor()
	exec := transactor.ExecMock
	projectRepo := new(mocks.ProjectRepository)

	input := models.CreateProjectInput{ProjectName: "Harbour View Tower"}

	projectRepo.On("ProjectCodeExists", exec, "harbour-view-tower").Return(true, nil)
	projectRepo.On("ProjectCodeExists", exec, "harbour-view-tower-2").Return(true, nil)
	projectRepo.On("ProjectCodeExists", exec, "harbour-view-tower-3").Return(false, nil)
	projectRepo.On("CreateProject", exec, input, mock.Anything, "harbour-view-tower-3").
		Return(nil)
	projectRepo.On("GetProjectById", exec, mock.Anything).
		Return(models.Project{ProjectCode: "harbour-view-tower-3"}, nil)

	usecase := ProjectUsecase{executorGetter: transactor, projectRepository: projectRepo}
	project, err := usecase.CreateProject(context.Background(), input)

	assert.NoError(t, err)
	assert.Equal(t, "harbour-view-tower-3", project.ProjectCode)
}

func TestGetProject_unknown_id(t *testing.T) {
	transactor := mocks.NewTransactor()
	projectRepo := new(mocks.ProjectRepository)
	projectRepo.On("GetProjectById", transactor.ExecMock, "missing").
		Return(models.Project{}, models.NotFoundError)

	usecase := ProjectUsecase{executorGetter: transactor, projectRepository: projectRepo}
	_, err := usecase.GetProject(context.Background(), "missing")

	assert.ErrorIs(t, err, models.ErrUnknownProject)
}

func TestUpdateProjectMetrics_rejects_blank_name(t *testing.T) {
	transactor := mocks.NewTransactor()
	projectRepo := new(mocks.ProjectRepository)
	projectRepo.On("GetProjectById", transactor.ExecMock, "project-1").
		Return(models.Project{Id: "project-1"}, nil)

	blank := ""
	usecase := ProjectUsecase{executorGetter: transactor, projectRepository: projectRepo}
	_, err := usecase.UpdateProjectMetrics(context.Background(), models.UpdateProjectMetricsInput{
		Id:          "project-1",
		ProjectName: &blank,
	})

	assert.ErrorIs(t, err, models.ErrProjectNameRequired)
}
