package usecases

import (
	"context"
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"

	"github.com/buildwise/buildwise-backend/models"
	"github.com/buildwise/buildwise-backend/pure_utils"
	"github.com/buildwise/buildwise-backend/repositories"
)

type ProjectUsecase struct {
	executorGetter    repositories.Transactor
	projectRepository repositories.ProjectRepository
}

// CreateProject creates a project with a unique code slugged from its name.
// When the slug is taken, a numeric suffix is appended (-2, -3, ...), the way
// URL slugs usually disambiguate.
func (usecase ProjectUsecase) CreateProject(
	ctx context.Context,
	input models.CreateProjectInput,
) (models.Project, error) {
	if strings.TrimSpace(input.ProjectName) == "" {
		return models.Project{}, models.ErrProjectNameRequired
	}

	exec := usecase.executorGetter.GetExecutor()

	projectCode, err := usecase.uniqueProjectCode(ctx, exec, pure_utils.Slugify(input.ProjectName))
	if err != nil {
		return models.Project{}, err
	}

	newProjectId := uuid.NewString()
	if err := usecase.projectRepository.CreateProject(ctx, exec, input, newProjectId, projectCode); err != nil {
		if repositories.IsUniqueViolationError(err) {
			return models.Project{}, errors.Wrap(models.ConflictError, "project code already taken")
		}
		return models.Project{}, err
	}

	return usecase.projectRepository.GetProjectById(ctx, exec, newProjectId)
}

func (usecase ProjectUsecase) GetProject(ctx context.Context, projectId string) (models.Project, error) {
	exec := usecase.executorGetter.GetExecutor()
	project, err := usecase.projectRepository.GetProjectById(ctx, exec, projectId)
	if errors.Is(err, models.NotFoundError) {
		return models.Project{}, errors.WithDetailf(models.ErrUnknownProject,
			"project id %s", projectId)
	}
	return project, err
}

func (usecase ProjectUsecase) ListProjects(
	ctx context.Context,
	filters models.ListProjectsFilters,
) ([]models.Project, error) {
	exec := usecase.executorGetter.GetExecutor()
	return usecase.projectRepository.ListProjects(ctx, exec, filters)
}

// UpdateProjectMetrics applies one incremental metrics save and returns the
// fresh project. Fields left nil in the input are untouched.
func (usecase ProjectUsecase) UpdateProjectMetrics(
	ctx context.Context,
	input models.UpdateProjectMetricsInput,
) (models.Project, error) {
	exec := usecase.executorGetter.GetExecutor()

	if _, err := usecase.projectRepository.GetProjectById(ctx, exec, input.Id); err != nil {
		if errors.Is(err, models.NotFoundError) {
			return models.Project{}, errors.WithDetailf(models.ErrUnknownProject,
				"project id %s", input.Id)
		}
		return models.Project{}, err
	}

	if input.ProjectName != nil && strings.TrimSpace(*input.ProjectName) == "" {
		return models.Project{}, models.ErrProjectNameRequired
	}

	if err := usecase.projectRepository.UpdateProjectMetrics(ctx, exec, input); err != nil {
		return models.Project{}, err
	}
	return usecase.projectRepository.GetProjectById(ctx, exec, input.Id)
}

func (usecase ProjectUsecase) uniqueProjectCode(
	ctx context.Context,
	exec repositories.Executor,
	slug string,
) (string, error) {
	if slug == "" {
		slug = "project"
	}
	code := slug
	for suffix := 2; ; suffix++ {
		exists, err := usecase.projectRepository.ProjectCodeExists(ctx, exec, code)
		if err != nil {
			return "", err
		}
		if !exists {
			return code, nil
		}
		code = fmt.Sprintf("%s-%d", slug, suffix)
	}
}
