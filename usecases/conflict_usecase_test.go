package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/buildwise/buildwise-backend/mocks"
	"github.com/buildwise/buildwise-backend/models"
)

func TestConflictsAmong(t *testing.T) {
	transactor := mocks.NewTransactor()
	conflictRepo := new(mocks.ConflictRepository)
	conflictRepo.On("ListConflictsAmong", transactor.ExecMock, mock.Anything).
		Return([]models.Conflict{
			{AId: 1, BId: 3, ConflictType: "roof space", Reason: "both need the full roof"},
		}, nil)

	usecase := ConflictUsecase{executorGetter: transactor, conflictRepository: conflictRepo}
	results, err := usecase.ConflictsAmong(context.Background(), []int64{1, 3, 3, 5})

	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, models.ConflictResult{
		AId: 1, BId: 3, ConflictType: "roof space", Reason: "both need the full roof",
	}, results[0])
}

func TestConflictsAmong_empty_input(t *testing.T) {
	transactor := mocks.NewTransactor()
	conflictRepo := new(mocks.ConflictRepository)
	conflictRepo.On("ListConflictsAmong", transactor.ExecMock, mock.Anything).
		Return([]models.Conflict{}, nil)

	usecase := ConflictUsecase{executorGetter: transactor, conflictRepository: conflictRepo}
	results, err := usecase.ConflictsAmong(context.Background(), nil)

	require.NoError(t, err)
	assert.Empty(t, results)
}
