package repositories

import (
	"context"

	"github.com/buildwise/buildwise-backend/models"
	"github.com/buildwise/buildwise-backend/repositories/dbmodels"
)

type ClassTargetRepository interface {
	ListClassTargets(ctx context.Context, exec Executor) ([]models.ClassTarget, error)
}

type ClassTargetRepositoryPostgresql struct{}

func (repo *ClassTargetRepositoryPostgresql) ListClassTargets(
	ctx context.Context,
	exec Executor,
) ([]models.ClassTarget, error) {
	return SqlToListOfModels(
		ctx,
		exec,
		NewQueryBuilder().
			Select(dbmodels.ColumnsSelectClassTarget...).
			From(dbmodels.TABLE_CLASS_TARGETS).
			OrderBy("class_name"),
		dbmodels.AdaptClassTarget,
	)
}
