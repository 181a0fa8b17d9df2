package repositories

import (
	"context"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/buildwise/buildwise-backend/models"
	"github.com/buildwise/buildwise-backend/repositories/dbmodels"
)

type ProjectRepository interface {
	ListProjects(ctx context.Context, exec Executor, filters models.ListProjectsFilters) ([]models.Project, error)
	ListLatestProjects(ctx context.Context, exec Executor, limit int) ([]models.Project, error)
	CountProjects(ctx context.Context, exec Executor) (int, error)
	GetProjectById(ctx context.Context, exec Executor, id string) (models.Project, error)
	ProjectCodeExists(ctx context.Context, exec Executor, code string) (bool, error)
	CreateProject(ctx context.Context, exec Executor, input models.CreateProjectInput, newProjectId, projectCode string) error
	UpdateProjectMetrics(ctx context.Context, exec Executor, input models.UpdateProjectMetricsInput) error
}

type ProjectRepositoryPostgresql struct{}

func (repo *ProjectRepositoryPostgresql) ListProjects(
	ctx context.Context,
	exec Executor,
	filters models.ListProjectsFilters,
) ([]models.Project, error) {
	query := NewQueryBuilder().
		Select(dbmodels.ColumnsSelectProject...).
		From(dbmodels.TABLE_PROJECTS).
		OrderBy("updated_at DESC", "created_at DESC")

	if filters.Query != "" {
		pattern := "%" + filters.Query + "%"
		query = query.Where(squirrel.Or{
			squirrel.ILike{"project_name": pattern},
			squirrel.ILike{"building_type": pattern},
			squirrel.ILike{"location": pattern},
		})
	}

	return SqlToListOfModels(ctx, exec, query, dbmodels.AdaptProject)
}

func (repo *ProjectRepositoryPostgresql) ListLatestProjects(
	ctx context.Context,
	exec Executor,
	limit int,
) ([]models.Project, error) {
	return SqlToListOfModels(
		ctx,
		exec,
		NewQueryBuilder().
			Select(dbmodels.ColumnsSelectProject...).
			From(dbmodels.TABLE_PROJECTS).
			OrderBy("updated_at DESC", "created_at DESC").
			Limit(uint64(limit)),
		dbmodels.AdaptProject,
	)
}

func (repo *ProjectRepositoryPostgresql) CountProjects(ctx context.Context, exec Executor) (int, error) {
	sql, args, err := NewQueryBuilder().
		Select("COUNT(*)").
		From(dbmodels.TABLE_PROJECTS).
		ToSql()
	if err != nil {
		return 0, err
	}
	var count int
	if err := exec.QueryRow(ctx, sql, args...).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func (repo *ProjectRepositoryPostgresql) GetProjectById(
	ctx context.Context,
	exec Executor,
	id string,
) (models.Project, error) {
	return SqlToModel(
		ctx,
		exec,
		NewQueryBuilder().
			Select(dbmodels.ColumnsSelectProject...).
			From(dbmodels.TABLE_PROJECTS).
			Where(squirrel.Eq{"id": id}),
		dbmodels.AdaptProject,
	)
}

func (repo *ProjectRepositoryPostgresql) ProjectCodeExists(
	ctx context.Context,
	exec Executor,
	code string,
) (bool, error) {
	sql, args, err := NewQueryBuilder().
		Select("COUNT(*)").
		From(dbmodels.TABLE_PROJECTS).
		Where(squirrel.Eq{"project_code": code}).
		ToSql()
	if err != nil {
		return false, err
	}
	var count int
	if err := exec.QueryRow(ctx, sql, args...).Scan(&count); err != nil {
		return false, err
	}
	return count > 0, nil
}

func (repo *ProjectRepositoryPostgresql) CreateProject(
	ctx context.Context,
	exec Executor,
	input models.CreateProjectInput,
	newProjectId, projectCode string,
) error {
	return ExecBuilder(
		ctx,
		exec,
		NewQueryBuilder().
			Insert(dbmodels.TABLE_PROJECTS).
			Columns("id", "project_code", "project_name", "location", "building_type").
			Values(newProjectId, projectCode, input.ProjectName, input.Location, input.BuildingType),
	)
}

func (repo *ProjectRepositoryPostgresql) UpdateProjectMetrics(
	ctx context.Context,
	exec Executor,
	input models.UpdateProjectMetricsInput,
) error {
	query := NewQueryBuilder().
		Update(dbmodels.TABLE_PROJECTS).
		Where(squirrel.Eq{"id": input.Id}).
		Set("updated_at", time.Now().UTC())

	if input.ProjectName != nil {
		query = query.Set("project_name", *input.ProjectName)
	}
	if input.Location != nil {
		query = query.Set("location", *input.Location)
	}
	if input.BuildingType != nil {
		query = query.Set("building_type", *input.BuildingType)
	}
	if input.GifaM2 != nil {
		query = query.Set("gifa_m2", *input.GifaM2)
	}
	if input.RoofAreaM2 != nil {
		query = query.Set("roof_area_m2", *input.RoofAreaM2)
	}
	if input.RoofPercentGifa != nil {
		query = query.Set("roof_percent_gifa", *input.RoofPercentGifa)
	}
	if input.ExternalWallAreaM2 != nil {
		query = query.Set("external_wall_area_m2", *input.ExternalWallAreaM2)
	}
	if input.ExternalOpeningsM2 != nil {
		query = query.Set("external_openings_m2", *input.ExternalOpeningsM2)
	}
	if input.BuildingFootprintM2 != nil {
		query = query.Set("building_footprint_m2", *input.BuildingFootprintM2)
	}
	if input.BasementSizeM2 != nil {
		query = query.Set("basement_size_m2", *input.BasementSizeM2)
	}
	if input.BasementPercentGifa != nil {
		query = query.Set("basement_percent_gifa", *input.BasementPercentGifa)
	}
	if input.NumApartments != nil {
		query = query.Set("num_apartments", *input.NumApartments)
	}
	if input.NumKeys != nil {
		query = query.Set("num_keys", *input.NumKeys)
	}
	if input.NumWcs != nil {
		query = query.Set("num_wcs", *input.NumWcs)
	}
	if input.EstimatedAutoBudgetAud != nil {
		query = query.Set("estimated_auto_budget_aud", *input.EstimatedAutoBudgetAud)
	}
	if input.BasementPresent != nil {
		query = query.Set("basement_present", *input.BasementPresent)
	}

	return ExecBuilder(ctx, exec, query)
}
