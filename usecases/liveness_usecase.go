package usecases

import (
	"context"

	"github.com/cockroachdb/errors"

	"github.com/buildwise/buildwise-backend/repositories"
)

type LivenessUsecase struct {
	executorGetter repositories.Transactor
}

// Liveness checks that the database answers.
func (usecase LivenessUsecase) Liveness(ctx context.Context) error {
	exec := usecase.executorGetter.GetExecutor()
	var one int
	if err := exec.QueryRow(ctx, "SELECT 1").Scan(&one); err != nil {
		return errors.Wrap(err, "error while checking database liveness")
	}
	return nil
}
