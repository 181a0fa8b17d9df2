package api

import (
	"github.com/gin-gonic/gin"

	"github.com/buildwise/buildwise-backend/usecases"
)

func AddRoutes(r *gin.Engine, uc usecases.Usecases) {
	r.GET("/liveness", HandleLivenessProbe(uc))

	r.GET("/interventions", handleListInterventions(uc))
	r.GET("/interventions/effects", handleGetEffects(uc))
	r.POST("/interventions/effects/apply", handleApplyEffects(uc))
	r.GET("/interventions/:intervention_id", handleGetIntervention(uc))

	r.POST("/recommendations", handleRecommendations(uc))
	r.POST("/conflicts", handleConflicts(uc))

	r.POST("/projects", handleCreateProject(uc))
	r.GET("/projects", handleListProjects(uc))
	r.GET("/projects/:project_id", handleGetProject(uc))
	r.PATCH("/projects/:project_id/metrics", handleUpdateProjectMetrics(uc))
	r.GET("/projects/:project_id/selection", handleGetSelection(uc))
	r.PUT("/projects/:project_id/selection", handleSaveSelection(uc))

	r.GET("/dashboard", handleDashboard(uc))
}
