package usecases

import (
	"context"

	"github.com/cockroachdb/errors"

	"github.com/buildwise/buildwise-backend/models"
	"github.com/buildwise/buildwise-backend/repositories"
	"github.com/buildwise/buildwise-backend/usecases/recommend"
)

type EffectUsecase struct {
	executorGetter         repositories.Transactor
	effectRepository       repositories.EffectRepository
	interventionRepository repositories.InterventionRepository
}

// EffectsFor previews the rating adjustments the named intervention would
// propagate to its targets. Nothing is persisted. Effect edges whose target
// name matches no stored intervention are skipped.
func (usecase EffectUsecase) EffectsFor(ctx context.Context, sourceName string) ([]models.EffectResult, error) {
	exec := usecase.executorGetter.GetExecutor()
	return usecase.computeEffects(ctx, exec, sourceName, false)
}

// ApplyEffects persists the adjustments of EffectsFor on the target
// interventions' stored ratings, all in one transaction.
func (usecase EffectUsecase) ApplyEffects(ctx context.Context, sourceName string) ([]models.EffectResult, error) {
	return repositories.TransactionReturnValue(ctx, usecase.executorGetter,
		func(tx repositories.Executor) ([]models.EffectResult, error) {
			return usecase.computeEffects(ctx, tx, sourceName, true)
		})
}

func (usecase EffectUsecase) computeEffects(
	ctx context.Context,
	exec repositories.Executor,
	sourceName string,
	persist bool,
) ([]models.EffectResult, error) {
	source, err := usecase.interventionRepository.GetInterventionByName(ctx, exec, sourceName)
	if err != nil {
		return nil, err
	}
	if source == nil {
		return nil, errors.WithDetailf(models.ErrUnknownIntervention,
			"intervention %q", sourceName)
	}

	effects, err := usecase.effectRepository.ListEffectsBySource(ctx, exec, sourceName)
	if err != nil {
		return nil, err
	}

	results := make([]models.EffectResult, 0, len(effects))
	for _, effect := range effects {
		target, err := usecase.interventionRepository.GetInterventionByName(ctx, exec, effect.TargetName)
		if err != nil {
			return nil, err
		}
		if target == nil {
			continue
		}

		adjusted := recommend.AdjustedRating(target.InterventionRating, effect.EffectValue)
		if persist {
			if err := usecase.interventionRepository.UpdateInterventionRating(
				ctx, exec, target.Id, adjusted); err != nil {
				return nil, err
			}
		}
		results = append(results, models.EffectResult{
			Target:         effect.TargetName,
			AdjustedRating: adjusted,
			Note:           effect.Note,
		})
	}
	return results, nil
}
