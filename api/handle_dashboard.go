package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/buildwise/buildwise-backend/dto"
	"github.com/buildwise/buildwise-backend/usecases"
)

func handleDashboard(uc usecases.Usecases) gin.HandlerFunc {
	return func(c *gin.Context) {
		usecase := uc.NewDashboardUsecase()
		summary, err := usecase.Summary(c.Request.Context())
		if presentError(c, err) {
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"dashboard": dto.AdaptDashboardSummaryDto(summary),
		})
	}
}
