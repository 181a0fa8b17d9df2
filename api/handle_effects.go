package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/buildwise/buildwise-backend/dto"
	"github.com/buildwise/buildwise-backend/models"
	"github.com/buildwise/buildwise-backend/pure_utils"
	"github.com/buildwise/buildwise-backend/usecases"
)

type applyEffectsBody struct {
	Source string `json:"source" binding:"required"`
}

// handleGetEffects previews the rating adjustments propagated by the source
// intervention, without persisting anything.
func handleGetEffects(uc usecases.Usecases) gin.HandlerFunc {
	return func(c *gin.Context) {
		source := c.Query("source")
		if source == "" {
			presentError(c, models.BadParameterError)
			return
		}

		usecase := uc.NewEffectUsecase()
		results, err := usecase.EffectsFor(c.Request.Context(), source)
		if presentError(c, err) {
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"effects": pure_utils.Map(results, dto.AdaptEffectResultDto),
		})
	}
}

// handleApplyEffects persists the propagated adjustments on the targets'
// stored ratings.
func handleApplyEffects(uc usecases.Usecases) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body applyEffectsBody
		if err := c.ShouldBindJSON(&body); err != nil {
			presentError(c, models.BadParameterError)
			return
		}

		usecase := uc.NewEffectUsecase()
		results, err := usecase.ApplyEffects(c.Request.Context(), body.Source)
		if presentError(c, err) {
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"effects": pure_utils.Map(results, dto.AdaptEffectResultDto),
		})
	}
}
