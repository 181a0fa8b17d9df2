package repositories

import (
	"context"
	"strings"

	"github.com/Masterminds/squirrel"

	"github.com/buildwise/buildwise-backend/models"
	"github.com/buildwise/buildwise-backend/repositories/dbmodels"
)

type InterventionRepository interface {
	ListInterventions(ctx context.Context, exec Executor, filters models.ListInterventionsFilters) ([]models.Intervention, error)
	GetInterventionById(ctx context.Context, exec Executor, id int64) (models.Intervention, error)
	GetInterventionByName(ctx context.Context, exec Executor, name string) (*models.Intervention, error)
	ListRules(ctx context.Context, exec Executor) ([]models.Rule, error)
	ListDependencies(ctx context.Context, exec Executor) ([]models.Dependency, error)
	UpdateInterventionRating(ctx context.Context, exec Executor, id int64, rating float64) error
}

type InterventionRepositoryPostgresql struct{}

func (repo *InterventionRepositoryPostgresql) ListInterventions(
	ctx context.Context,
	exec Executor,
	filters models.ListInterventionsFilters,
) ([]models.Intervention, error) {
	query := NewQueryBuilder().
		Select(dbmodels.ColumnsSelectIntervention...).
		From(dbmodels.TABLE_INTERVENTIONS).
		OrderBy("theme", "name", "id")

	if filters.ClassKey != "" {
		aliases := models.ThemeAliasesFor(filters.ClassKey)
		like := make(squirrel.Or, 0, len(aliases))
		for _, alias := range aliases {
			like = append(like,
				squirrel.Like{`LOWER("class")`: "%" + strings.ToLower(alias) + "%"})
		}
		query = query.Where(like)
	}

	return SqlToListOfModels(ctx, exec, query, dbmodels.AdaptIntervention)
}

func (repo *InterventionRepositoryPostgresql) GetInterventionById(
	ctx context.Context,
	exec Executor,
	id int64,
) (models.Intervention, error) {
	return SqlToModel(
		ctx,
		exec,
		NewQueryBuilder().
			Select(dbmodels.ColumnsSelectIntervention...).
			From(dbmodels.TABLE_INTERVENTIONS).
			Where(squirrel.Eq{"id": id}),
		dbmodels.AdaptIntervention,
	)
}

func (repo *InterventionRepositoryPostgresql) GetInterventionByName(
	ctx context.Context,
	exec Executor,
	name string,
) (*models.Intervention, error) {
	return SqlToOptionalModel(
		ctx,
		exec,
		NewQueryBuilder().
			Select(dbmodels.ColumnsSelectIntervention...).
			From(dbmodels.TABLE_INTERVENTIONS).
			Where(squirrel.Eq{"name": name}),
		dbmodels.AdaptIntervention,
	)
}

func (repo *InterventionRepositoryPostgresql) ListRules(
	ctx context.Context,
	exec Executor,
) ([]models.Rule, error) {
	return SqlToListOfModels(
		ctx,
		exec,
		NewQueryBuilder().
			Select(dbmodels.ColumnsSelectRule...).
			From(dbmodels.TABLE_INTERVENTION_RULES).
			OrderBy("intervention_id", "id"),
		dbmodels.AdaptRule,
	)
}

func (repo *InterventionRepositoryPostgresql) ListDependencies(
	ctx context.Context,
	exec Executor,
) ([]models.Dependency, error) {
	return SqlToListOfModels(
		ctx,
		exec,
		NewQueryBuilder().
			Select(dbmodels.ColumnsSelectDependency...).
			From(dbmodels.TABLE_INTERVENTION_DEPENDENCIES).
			OrderBy("intervention_id", "id"),
		dbmodels.AdaptDependency,
	)
}

func (repo *InterventionRepositoryPostgresql) UpdateInterventionRating(
	ctx context.Context,
	exec Executor,
	id int64,
	rating float64,
) error {
	return ExecBuilder(
		ctx,
		exec,
		NewQueryBuilder().
			Update(dbmodels.TABLE_INTERVENTIONS).
			Set("intervention_rating", rating).
			Where(squirrel.Eq{"id": id}),
	)
}
