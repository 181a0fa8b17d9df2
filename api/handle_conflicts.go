package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/buildwise/buildwise-backend/dto"
	"github.com/buildwise/buildwise-backend/models"
	"github.com/buildwise/buildwise-backend/pure_utils"
	"github.com/buildwise/buildwise-backend/usecases"
)

func handleConflicts(uc usecases.Usecases) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body dto.ConflictsBody
		if err := c.ShouldBindJSON(&body); err != nil {
			presentError(c, models.ErrInvalidSelectionPayload)
			return
		}

		usecase := uc.NewConflictUsecase()
		results, err := usecase.ConflictsAmong(c.Request.Context(), body.InterventionIds)
		if presentError(c, err) {
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"conflicts": pure_utils.Map(results, dto.AdaptConflictResultDto),
		})
	}
}
