package usecases

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/hashicorp/go-set/v2"

	"github.com/buildwise/buildwise-backend/models"
	"github.com/buildwise/buildwise-backend/repositories"
)

type SelectionUsecase struct {
	executorGetter         repositories.Transactor
	selectionRepository    repositories.SelectionRepository
	projectRepository      repositories.ProjectRepository
	interventionRepository repositories.InterventionRepository
}

func (usecase SelectionUsecase) GetSelection(ctx context.Context, projectId string) ([]int64, error) {
	exec := usecase.executorGetter.GetExecutor()
	if err := usecase.checkProjectExists(ctx, exec, projectId); err != nil {
		return nil, err
	}
	return usecase.selectionRepository.ListSelectedInterventionIds(ctx, exec, projectId)
}

// SaveSelection replaces the project's selection with interventionIds,
// writing only the difference. It runs in one transaction with the current
// rows locked, so concurrent saves serialize instead of interleaving. Saving
// the same set twice is a no-op.
func (usecase SelectionUsecase) SaveSelection(
	ctx context.Context,
	projectId string,
	interventionIds []int64,
) (models.SelectionChange, error) {
	exec := usecase.executorGetter.GetExecutor()
	if err := usecase.checkProjectExists(ctx, exec, projectId); err != nil {
		return models.SelectionChange{}, err
	}
	if err := usecase.checkInterventionsExist(ctx, exec, interventionIds); err != nil {
		return models.SelectionChange{}, err
	}

	desired := set.From(interventionIds)

	return repositories.TransactionReturnValue(ctx, usecase.executorGetter,
		func(tx repositories.Executor) (models.SelectionChange, error) {
			currentIds, err := usecase.selectionRepository.ListSelectedInterventionIds(
				ctx, tx, projectId, true)
			if err != nil {
				return models.SelectionChange{}, err
			}
			current := set.From(currentIds)

			toAdd := desired.Difference(current).Slice()
			toRemove := current.Difference(desired).Slice()

			if err := usecase.selectionRepository.InsertSelectedInterventions(
				ctx, tx, projectId, toAdd); err != nil {
				return models.SelectionChange{}, err
			}
			if err := usecase.selectionRepository.DeleteSelectedInterventions(
				ctx, tx, projectId, toRemove); err != nil {
				return models.SelectionChange{}, err
			}

			return models.SelectionChange{
				Added:   len(toAdd),
				Removed: len(toRemove),
				Total:   desired.Size(),
			}, nil
		})
}

func (usecase SelectionUsecase) checkProjectExists(
	ctx context.Context,
	exec repositories.Executor,
	projectId string,
) error {
	_, err := usecase.projectRepository.GetProjectById(ctx, exec, projectId)
	if errors.Is(err, models.NotFoundError) {
		return errors.WithDetailf(models.ErrUnknownProject, "project id %s", projectId)
	}
	return err
}

func (usecase SelectionUsecase) checkInterventionsExist(
	ctx context.Context,
	exec repositories.Executor,
	interventionIds []int64,
) error {
	if len(interventionIds) == 0 {
		return nil
	}
	catalog, err := usecase.interventionRepository.ListInterventions(ctx, exec,
		models.ListInterventionsFilters{})
	if err != nil {
		return err
	}
	known := set.New[int64](len(catalog))
	for _, intervention := range catalog {
		known.Insert(intervention.Id)
	}
	for _, id := range interventionIds {
		if !known.Contains(id) {
			return errors.WithDetailf(models.ErrUnknownIntervention, "intervention id %d", id)
		}
	}
	return nil
}
