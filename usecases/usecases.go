package usecases

import (
	"github.com/buildwise/buildwise-backend/repositories"
	"github.com/buildwise/buildwise-backend/usecases/recommend"
)

type Usecases struct {
	Repositories repositories.Repositories
	engine       recommend.Engine
}

type Option func(*Usecases)

// WithRecommendationEngine replaces the default engine, e.g. to disable the
// keyword fallback for catalogs that carry full rule sets.
func WithRecommendationEngine(engine recommend.Engine) Option {
	return func(u *Usecases) {
		u.engine = engine
	}
}

func NewUsecases(repos repositories.Repositories, opts ...Option) Usecases {
	usecases := Usecases{
		Repositories: repos,
		engine: recommend.NewEngine(
			recommend.WithFallbackPolicy(recommend.DefaultKeywordFallback())),
	}
	for _, opt := range opts {
		opt(&usecases)
	}
	return usecases
}

func (usecases *Usecases) NewLivenessUsecase() LivenessUsecase {
	return LivenessUsecase{
		executorGetter: usecases.Repositories.ExecutorGetter,
	}
}

func (usecases *Usecases) NewInterventionUsecase() InterventionUsecase {
	return InterventionUsecase{
		executorGetter:         usecases.Repositories.ExecutorGetter,
		interventionRepository: usecases.Repositories.InterventionRepository,
	}
}

func (usecases *Usecases) NewRecommendationUsecase() RecommendationUsecase {
	return RecommendationUsecase{
		executorGetter:         usecases.Repositories.ExecutorGetter,
		interventionRepository: usecases.Repositories.InterventionRepository,
		selectionRepository:    usecases.Repositories.SelectionRepository,
		projectRepository:      usecases.Repositories.ProjectRepository,
		engine:                 usecases.engine,
	}
}

func (usecases *Usecases) NewEffectUsecase() EffectUsecase {
	return EffectUsecase{
		executorGetter:         usecases.Repositories.ExecutorGetter,
		effectRepository:       usecases.Repositories.EffectRepository,
		interventionRepository: usecases.Repositories.InterventionRepository,
	}
}

func (usecases *Usecases) NewConflictUsecase() ConflictUsecase {
	return ConflictUsecase{
		executorGetter:     usecases.Repositories.ExecutorGetter,
		conflictRepository: usecases.Repositories.ConflictRepository,
	}
}

func (usecases *Usecases) NewSelectionUsecase() SelectionUsecase {
	return SelectionUsecase{
		executorGetter:         usecases.Repositories.ExecutorGetter,
		selectionRepository:    usecases.Repositories.SelectionRepository,
		projectRepository:      usecases.Repositories.ProjectRepository,
		interventionRepository: usecases.Repositories.InterventionRepository,
	}
}

func (usecases *Usecases) NewProjectUsecase() ProjectUsecase {
	return ProjectUsecase{
		executorGetter:    usecases.Repositories.ExecutorGetter,
		projectRepository: usecases.Repositories.ProjectRepository,
	}
}

func (usecases *Usecases) NewDashboardUsecase() DashboardUsecase {
	return DashboardUsecase{
		executorGetter:        usecases.Repositories.ExecutorGetter,
		projectRepository:     usecases.Repositories.ProjectRepository,
		classTargetRepository: usecases.Repositories.ClassTargetRepository,
	}
}
