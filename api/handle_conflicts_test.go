package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/buildwise/buildwise-backend/mocks"
	"github.com/buildwise/buildwise-backend/models"
	"github.com/buildwise/buildwise-backend/repositories"
	"github.com/buildwise/buildwise-backend/usecases"
)

func newTestRouter(repos repositories.Repositories) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	AddRoutes(router, usecases.NewUsecases(repos))
	return router
}

func TestHandleConflicts(t *testing.T) {
	conflictRepo := new(mocks.ConflictRepository)
	conflictRepo.On("ListConflictsAmong", mock.Anything, mock.Anything).
		Return([]models.Conflict{
			{AId: 1, BId: 3, ConflictType: "roof space"},
		}, nil)

	router := newTestRouter(repositories.Repositories{ConflictRepository: conflictRepo})

	request := httptest.NewRequest(http.MethodPost, "/conflicts",
		strings.NewReader(`{"intervention_ids": [1, 3, 5]}`))
	r := httptest.NewRecorder()
	router.ServeHTTP(r, request)

	assert.Equal(t, http.StatusOK, r.Code)
	assert.JSONEq(t,
		`{"conflicts": [{"a_id": 1, "b_id": 3, "conflict_type": "roof space"}]}`,
		r.Body.String())
	conflictRepo.AssertExpectations(t)
}

func TestHandleConflicts_bad_payload(t *testing.T) {
	router := newTestRouter(repositories.Repositories{})

	request := httptest.NewRequest(http.MethodPost, "/conflicts",
		strings.NewReader(`{"intervention_ids": "not a list"}`))
	r := httptest.NewRecorder()
	router.ServeHTTP(r, request)

	assert.Equal(t, http.StatusBadRequest, r.Code)
}

func TestHandleListInterventions_unknown_class(t *testing.T) {
	router := newTestRouter(repositories.Repositories{
		InterventionRepository: new(mocks.InterventionRepository),
	})

	request := httptest.NewRequest(http.MethodGet, "/interventions?class=vibes", nil)
	r := httptest.NewRecorder()
	router.ServeHTTP(r, request)

	assert.Equal(t, http.StatusBadRequest, r.Code)
}

func TestHandleRecommendations_for_metrics(t *testing.T) {
	interventionRepo := new(mocks.InterventionRepository)
	interventionRepo.On("ListInterventions", mock.Anything, models.ListInterventionsFilters{}).
		Return([]models.Intervention{
			{Id: 1, Name: "Solar PV", Theme: "Operational Carbon", InterventionRating: 4.0},
		}, nil)
	interventionRepo.On("ListRules", mock.Anything).Return([]models.Rule{}, nil)
	interventionRepo.On("ListDependencies", mock.Anything).Return([]models.Dependency{}, nil)

	router := newTestRouter(repositories.Repositories{InterventionRepository: interventionRepo})

	request := httptest.NewRequest(http.MethodPost, "/recommendations",
		strings.NewReader(`{"metrics": {"gifa_m2": 1200}}`))
	r := httptest.NewRecorder()
	router.ServeHTTP(r, request)

	assert.Equal(t, http.StatusOK, r.Code)
	assert.Contains(t, r.Body.String(), `"Solar PV"`)
}

func TestHandleRecommendations_empty_body(t *testing.T) {
	router := newTestRouter(repositories.Repositories{})

	request := httptest.NewRequest(http.MethodPost, "/recommendations",
		strings.NewReader(`{}`))
	r := httptest.NewRecorder()
	router.ServeHTTP(r, request)

	assert.Equal(t, http.StatusBadRequest, r.Code)
}
