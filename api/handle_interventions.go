package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/buildwise/buildwise-backend/dto"
	"github.com/buildwise/buildwise-backend/models"
	"github.com/buildwise/buildwise-backend/pure_utils"
	"github.com/buildwise/buildwise-backend/usecases"
)

// handleListInterventions serves the catalog. With a project_id the list goes
// through the eligibility pipeline against the project's metrics; without one
// it is the raw catalog, optionally narrowed by class.
func handleListInterventions(uc usecases.Usecases) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		classKey := c.Query("class")
		projectId := c.Query("project_id")

		if projectId != "" {
			usecase := uc.NewRecommendationUsecase()
			result, err := usecase.RecommendForProject(ctx, projectId, nil, classKey)
			if presentError(c, err) {
				return
			}
			interventions := make([]dto.RecommendedInterventionDto, 0)
			for _, group := range dto.AdaptRecommendationSetDto(result).Groups {
				interventions = append(interventions, group.Interventions...)
			}
			c.JSON(http.StatusOK, gin.H{"interventions": interventions})
			return
		}

		usecase := uc.NewInterventionUsecase()
		interventions, err := usecase.ListInterventions(ctx,
			models.ListInterventionsFilters{ClassKey: classKey})
		if presentError(c, err) {
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"interventions": pure_utils.Map(interventions, dto.AdaptInterventionDto),
		})
	}
}

func handleGetIntervention(uc usecases.Usecases) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseInt(c.Param("intervention_id"), 10, 64)
		if err != nil {
			presentError(c, models.BadParameterError)
			return
		}

		usecase := uc.NewInterventionUsecase()
		intervention, err := usecase.GetIntervention(c.Request.Context(), id)
		if presentError(c, err) {
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"intervention": dto.AdaptInterventionDto(intervention),
		})
	}
}
