package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repositories struct {
	ExecutorGetter         ExecutorGetter
	InterventionRepository InterventionRepository
	EffectRepository       EffectRepository
	ConflictRepository     ConflictRepository
	ClassTargetRepository  ClassTargetRepository
	ProjectRepository      ProjectRepository
	SelectionRepository    SelectionRepository
}

func NewRepositories(pool *pgxpool.Pool) Repositories {
	return Repositories{
		ExecutorGetter:         NewExecutorGetter(pool),
		InterventionRepository: &InterventionRepositoryPostgresql{},
		EffectRepository:       &EffectRepositoryPostgresql{},
		ConflictRepository:     &ConflictRepositoryPostgresql{},
		ClassTargetRepository:  &ClassTargetRepositoryPostgresql{},
		ProjectRepository:      &ProjectRepositoryPostgresql{},
		SelectionRepository:    &SelectionRepositoryPostgresql{},
	}
}
