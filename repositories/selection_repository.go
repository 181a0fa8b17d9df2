package repositories

import (
	"context"

	"github.com/Masterminds/squirrel"

	"github.com/buildwise/buildwise-backend/repositories/dbmodels"
)

type SelectionRepository interface {
	ListSelectedInterventionIds(ctx context.Context, exec Executor, projectId string, forUpdate ...bool) ([]int64, error)
	InsertSelectedInterventions(ctx context.Context, exec Executor, projectId string, interventionIds []int64) error
	DeleteSelectedInterventions(ctx context.Context, exec Executor, projectId string, interventionIds []int64) error
}

type SelectionRepositoryPostgresql struct{}

func (repo *SelectionRepositoryPostgresql) ListSelectedInterventionIds(
	ctx context.Context,
	exec Executor,
	projectId string,
	forUpdate ...bool,
) ([]int64, error) {
	query := NewQueryBuilder().
		Select(dbmodels.ColumnsSelectProjectSelection...).
		From(dbmodels.TABLE_PROJECT_SELECTIONS).
		Where(squirrel.Eq{"project_id": projectId}).
		OrderBy("intervention_id")

	if len(forUpdate) > 0 && forUpdate[0] {
		query = query.Suffix("FOR UPDATE")
	}

	return SqlToListOfModels(ctx, exec, query, dbmodels.AdaptSelectedInterventionId)
}

func (repo *SelectionRepositoryPostgresql) InsertSelectedInterventions(
	ctx context.Context,
	exec Executor,
	projectId string,
	interventionIds []int64,
) error {
	if len(interventionIds) == 0 {
		return nil
	}
	query := NewQueryBuilder().
		Insert(dbmodels.TABLE_PROJECT_SELECTIONS).
		Columns("project_id", "intervention_id")
	for _, id := range interventionIds {
		query = query.Values(projectId, id)
	}
	return ExecBuilder(ctx, exec, query)
}

func (repo *SelectionRepositoryPostgresql) DeleteSelectedInterventions(
	ctx context.Context,
	exec Executor,
	projectId string,
	interventionIds []int64,
) error {
	if len(interventionIds) == 0 {
		return nil
	}
	return ExecBuilder(
		ctx,
		exec,
		NewQueryBuilder().
			Delete(dbmodels.TABLE_PROJECT_SELECTIONS).
			Where(squirrel.Eq{"project_id": projectId}).
			Where(squirrel.Eq{"intervention_id": interventionIds}),
	)
}
