package repositories

import (
	"context"

	"github.com/Masterminds/squirrel"

	"github.com/buildwise/buildwise-backend/models"
	"github.com/buildwise/buildwise-backend/repositories/dbmodels"
)

type ConflictRepository interface {
	ListConflictsAmong(ctx context.Context, exec Executor, interventionIds []int64) ([]models.Conflict, error)
}

type ConflictRepositoryPostgresql struct{}

// ListConflictsAmong returns conflicts whose both endpoints are in
// interventionIds. Pairs are stored canonically (a_id < b_id), so each
// unordered pair comes back exactly once.
func (repo *ConflictRepositoryPostgresql) ListConflictsAmong(
	ctx context.Context,
	exec Executor,
	interventionIds []int64,
) ([]models.Conflict, error) {
	if len(interventionIds) == 0 {
		return []models.Conflict{}, nil
	}
	return SqlToListOfModels(
		ctx,
		exec,
		NewQueryBuilder().
			Select(dbmodels.ColumnsSelectConflict...).
			From(dbmodels.TABLE_INTERVENTION_CONFLICTS).
			Where(squirrel.Eq{"a_id": interventionIds}).
			Where(squirrel.Eq{"b_id": interventionIds}).
			OrderBy("a_id", "b_id"),
		dbmodels.AdaptConflict,
	)
}
