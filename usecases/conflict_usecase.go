package usecases

import (
	"context"

	"github.com/hashicorp/go-set/v2"

	"github.com/buildwise/buildwise-backend/models"
	"github.com/buildwise/buildwise-backend/pure_utils"
	"github.com/buildwise/buildwise-backend/repositories"
)

type ConflictUsecase struct {
	executorGetter     repositories.Transactor
	conflictRepository repositories.ConflictRepository
}

// ConflictsAmong reports every stored conflict pair whose both endpoints are
// in interventionIds. Duplicate ids in the input are ignored; the result is
// advisory and never shrinks the candidate set.
func (usecase ConflictUsecase) ConflictsAmong(
	ctx context.Context,
	interventionIds []int64,
) ([]models.ConflictResult, error) {
	exec := usecase.executorGetter.GetExecutor()

	conflicts, err := usecase.conflictRepository.ListConflictsAmong(ctx, exec,
		set.From(interventionIds).Slice())
	if err != nil {
		return nil, err
	}

	return pure_utils.Map(conflicts, func(conflict models.Conflict) models.ConflictResult {
		return models.ConflictResult{
			AId:          conflict.AId,
			BId:          conflict.BId,
			ConflictType: conflict.ConflictType,
			Reason:       conflict.Reason,
		}
	}), nil
}
