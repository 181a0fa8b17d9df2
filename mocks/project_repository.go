package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/buildwise/buildwise-backend/models"
	"github.com/buildwise/buildwise-backend/repositories"
)

type ProjectRepository struct {
	mock.Mock
}

func (r *ProjectRepository) ListProjects(ctx context.Context, exec repositories.Executor,
	filters models.ListProjectsFilters,
) ([]models.Project, error) {
	args := r.Called(exec, filters)
	return args.Get(0).([]models.Project), args.Error(1)
}

func (r *ProjectRepository) ListLatestProjects(ctx context.Context, exec repositories.Executor,
	limit int,
) ([]models.Project, error) {
	args := r.Called(exec, limit)
	return args.Get(0).([]models.Project), args.Error(1)
}

func (r *ProjectRepository) CountProjects(ctx context.Context, exec repositories.Executor) (int, error) {
	args := r.Called(exec)
	return args.Int(0), args.Error(1)
}

func (r *ProjectRepository) GetProjectById(ctx context.Context, exec repositories.Executor,
	id string,
) (models.Project, error) {
	args := r.Called(exec, id)
	return args.Get(0).(models.Project), args.Error(1)
}

func (r *ProjectRepository) ProjectCodeExists(ctx context.Context, exec repositories.Executor,
	code string,
) (bool, error) {
	args := r.Called(exec, code)
	return args.Bool(0), args.Error(1)
}

func (r *ProjectRepository) CreateProject(ctx context.Context, exec repositories.Executor,
	input models.CreateProjectInput, newProjectId, projectCode string,
) error {
	args := r.Called(exec, input, newProjectId, projectCode)
	return args.Error(0)
}

func (r *ProjectRepository) UpdateProjectMetrics(ctx context.Context, exec repositories.Executor,
	input models.UpdateProjectMetricsInput,
) error {
	args := r.Called(exec, input)
	return args.Error(0)
}
