package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/buildwise/buildwise-backend/usecases"
)

func HandleLivenessProbe(uc usecases.Usecases) gin.HandlerFunc {
	return func(c *gin.Context) {
		usecase := uc.NewLivenessUsecase()
		if presentError(c, usecase.Liveness(c.Request.Context())) {
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
		})
	}
}
