package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/buildwise/buildwise-backend/dto"
	"github.com/buildwise/buildwise-backend/models"
	"github.com/buildwise/buildwise-backend/usecases"
)

func handleGetSelection(uc usecases.Usecases) gin.HandlerFunc {
	return func(c *gin.Context) {
		usecase := uc.NewSelectionUsecase()
		ids, err := usecase.GetSelection(c.Request.Context(), c.Param("project_id"))
		if presentError(c, err) {
			return
		}
		c.JSON(http.StatusOK, gin.H{"intervention_ids": ids})
	}
}

// handleSaveSelection replaces the project's selection with the posted set.
func handleSaveSelection(uc usecases.Usecases) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body dto.SaveSelectionBody
		if err := c.ShouldBindJSON(&body); err != nil {
			presentError(c, models.ErrInvalidSelectionPayload)
			return
		}

		usecase := uc.NewSelectionUsecase()
		change, err := usecase.SaveSelection(c.Request.Context(),
			c.Param("project_id"), body.InterventionIds)
		if presentError(c, err) {
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"selection": dto.AdaptSelectionChangeDto(change),
		})
	}
}
