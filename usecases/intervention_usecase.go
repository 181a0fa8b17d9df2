package usecases

import (
	"context"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/buildwise/buildwise-backend/models"
	"github.com/buildwise/buildwise-backend/repositories"
)

type InterventionUsecase struct {
	executorGetter         repositories.Transactor
	interventionRepository repositories.InterventionRepository
}

// ListInterventions returns the catalog, optionally narrowed to one UI class.
// The class key goes through the theme alias table, so both "carbon" and an
// imported label like "Embodied Carbon" work.
func (usecase InterventionUsecase) ListInterventions(
	ctx context.Context,
	filters models.ListInterventionsFilters,
) ([]models.Intervention, error) {
	if err := validateClassKey(filters.ClassKey); err != nil {
		return nil, err
	}
	exec := usecase.executorGetter.GetExecutor()
	return usecase.interventionRepository.ListInterventions(ctx, exec, filters)
}

func (usecase InterventionUsecase) GetIntervention(ctx context.Context, id int64) (models.Intervention, error) {
	exec := usecase.executorGetter.GetExecutor()
	intervention, err := usecase.interventionRepository.GetInterventionById(ctx, exec, id)
	if errors.Is(err, models.NotFoundError) {
		return models.Intervention{}, errors.WithDetailf(models.ErrUnknownIntervention,
			"intervention id %d", id)
	}
	return intervention, err
}

func validateClassKey(classKey string) error {
	if classKey == "" {
		return nil
	}
	if strings.EqualFold(classKey, models.ThemeOther) {
		return nil
	}
	if models.ThemeClassKey(classKey) == models.ThemeOther {
		return errors.WithDetailf(models.ErrUnknownInterventionClass,
			"class %q", classKey)
	}
	return nil
}
