package repositories

import (
	"context"

	"github.com/Masterminds/squirrel"

	"github.com/buildwise/buildwise-backend/models"
	"github.com/buildwise/buildwise-backend/repositories/dbmodels"
)

type EffectRepository interface {
	ListEffectsBySource(ctx context.Context, exec Executor, sourceName string) ([]models.Effect, error)
}

type EffectRepositoryPostgresql struct{}

func (repo *EffectRepositoryPostgresql) ListEffectsBySource(
	ctx context.Context,
	exec Executor,
	sourceName string,
) ([]models.Effect, error) {
	return SqlToListOfModels(
		ctx,
		exec,
		NewQueryBuilder().
			Select(dbmodels.ColumnsSelectEffect...).
			From(dbmodels.TABLE_INTERVENTION_EFFECTS).
			Where(squirrel.Eq{"source_name": sourceName}).
			OrderBy("id"),
		dbmodels.AdaptEffect,
	)
}
