package usecases

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/hashicorp/go-set/v2"
	"golang.org/x/sync/errgroup"

	"github.com/buildwise/buildwise-backend/models"
	"github.com/buildwise/buildwise-backend/repositories"
	"github.com/buildwise/buildwise-backend/usecases/recommend"
)

type RecommendationUsecase struct {
	executorGetter         repositories.Transactor
	interventionRepository repositories.InterventionRepository
	selectionRepository    repositories.SelectionRepository
	projectRepository      repositories.ProjectRepository
	engine                 recommend.Engine
}

// RecommendForProject runs the full pipeline against a stored project: its
// entered metrics and the catalog narrowed to classKey when one is given.
// A nil selectedIds falls back to the project's saved selection; a non-nil
// one overrides it, so a client can preview a selection before saving it.
func (usecase RecommendationUsecase) RecommendForProject(
	ctx context.Context,
	projectId string,
	selectedIds []int64,
	classKey string,
) (models.RecommendationSet, error) {
	exec := usecase.executorGetter.GetExecutor()

	project, err := usecase.projectRepository.GetProjectById(ctx, exec, projectId)
	if errors.Is(err, models.NotFoundError) {
		return models.RecommendationSet{}, errors.WithDetailf(models.ErrUnknownProject,
			"project id %s", projectId)
	} else if err != nil {
		return models.RecommendationSet{}, err
	}

	if selectedIds == nil {
		selectedIds, err = usecase.selectionRepository.ListSelectedInterventionIds(ctx, exec, projectId)
		if err != nil {
			return models.RecommendationSet{}, err
		}
	}

	return usecase.recommend(ctx, models.ProjectMetrics(project), selectedIds, classKey)
}

// RecommendForMetrics runs the pipeline against a transient metrics payload
// that was never persisted, e.g. a what-if request.
func (usecase RecommendationUsecase) RecommendForMetrics(
	ctx context.Context,
	metrics models.MapMetrics,
	selectedIds []int64,
	classKey string,
) (models.RecommendationSet, error) {
	return usecase.recommend(ctx, metrics, selectedIds, classKey)
}

func (usecase RecommendationUsecase) recommend(
	ctx context.Context,
	metrics models.MetricsContext,
	selectedIds []int64,
	classKey string,
) (models.RecommendationSet, error) {
	if err := validateClassKey(classKey); err != nil {
		return models.RecommendationSet{}, err
	}
	exec := usecase.executorGetter.GetExecutor()

	var (
		catalog      []models.Intervention
		rules        []models.Rule
		dependencies []models.Dependency
	)
	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		var err error
		catalog, err = usecase.interventionRepository.ListInterventions(groupCtx, exec,
			models.ListInterventionsFilters{ClassKey: classKey})
		return err
	})
	group.Go(func() error {
		var err error
		rules, err = usecase.interventionRepository.ListRules(groupCtx, exec)
		return err
	})
	group.Go(func() error {
		var err error
		dependencies, err = usecase.interventionRepository.ListDependencies(groupCtx, exec)
		return err
	})
	if err := group.Wait(); err != nil {
		return models.RecommendationSet{}, errors.Wrap(err, "error while loading the intervention catalog")
	}

	return usecase.engine.Recommend(
		metrics,
		catalog,
		recommend.GroupRulesByIntervention(rules),
		recommend.GroupDependenciesByIntervention(dependencies),
		set.From(selectedIds),
	), nil
}
