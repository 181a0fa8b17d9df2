package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/buildwise/buildwise-backend/dto"
	"github.com/buildwise/buildwise-backend/models"
	"github.com/buildwise/buildwise-backend/usecases"
)

// handleRecommendations computes the themed recommendation set, either for a
// stored project or for an inline metrics payload.
func handleRecommendations(uc usecases.Usecases) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		var body dto.RecommendationsBody
		if err := c.ShouldBindJSON(&body); err != nil {
			presentError(c, models.BadParameterError)
			return
		}

		usecase := uc.NewRecommendationUsecase()

		var result models.RecommendationSet
		var err error
		switch {
		case body.ProjectId != "":
			result, err = usecase.RecommendForProject(ctx, body.ProjectId,
				body.SelectedIds, body.Class)
		case body.Metrics != nil:
			result, err = usecase.RecommendForMetrics(ctx, body.Metrics,
				body.SelectedIds, body.Class)
		default:
			presentError(c, models.BadParameterError)
			return
		}
		if presentError(c, err) {
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"recommendations": dto.AdaptRecommendationSetDto(result),
		})
	}
}
