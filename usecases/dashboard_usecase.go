package usecases

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/buildwise/buildwise-backend/models"
	"github.com/buildwise/buildwise-backend/repositories"
)

// latestProjectsCount is how many recent projects the dashboard shows.
const latestProjectsCount = 3

type DashboardUsecase struct {
	executorGetter        repositories.Transactor
	projectRepository     repositories.ProjectRepository
	classTargetRepository repositories.ClassTargetRepository
}

func (usecase DashboardUsecase) Summary(ctx context.Context) (models.DashboardSummary, error) {
	exec := usecase.executorGetter.GetExecutor()

	var summary models.DashboardSummary
	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		var err error
		summary.TotalProjects, err = usecase.projectRepository.CountProjects(groupCtx, exec)
		return err
	})
	group.Go(func() error {
		var err error
		summary.LatestProjects, err = usecase.projectRepository.ListLatestProjects(
			groupCtx, exec, latestProjectsCount)
		return err
	})
	group.Go(func() error {
		var err error
		summary.ClassTargets, err = usecase.classTargetRepository.ListClassTargets(groupCtx, exec)
		return err
	})
	if err := group.Wait(); err != nil {
		return models.DashboardSummary{}, err
	}
	return summary, nil
}
