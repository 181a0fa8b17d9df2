package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/buildwise/buildwise-backend/dto"
	"github.com/buildwise/buildwise-backend/models"
	"github.com/buildwise/buildwise-backend/pure_utils"
	"github.com/buildwise/buildwise-backend/usecases"
)

func handleCreateProject(uc usecases.Usecases) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body dto.CreateProjectBody
		if err := c.ShouldBindJSON(&body); err != nil {
			presentError(c, models.ErrProjectNameRequired)
			return
		}

		usecase := uc.NewProjectUsecase()
		project, err := usecase.CreateProject(c.Request.Context(), models.CreateProjectInput{
			ProjectName:  body.ProjectName,
			Location:     body.Location,
			BuildingType: body.BuildingType,
		})
		if presentError(c, err) {
			return
		}
		c.JSON(http.StatusCreated, gin.H{"project": dto.AdaptProjectDto(project)})
	}
}

func handleListProjects(uc usecases.Usecases) gin.HandlerFunc {
	return func(c *gin.Context) {
		usecase := uc.NewProjectUsecase()
		projects, err := usecase.ListProjects(c.Request.Context(),
			models.ListProjectsFilters{Query: c.Query("q")})
		if presentError(c, err) {
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"projects": pure_utils.Map(projects, dto.AdaptProjectDto),
		})
	}
}

func handleGetProject(uc usecases.Usecases) gin.HandlerFunc {
	return func(c *gin.Context) {
		usecase := uc.NewProjectUsecase()
		project, err := usecase.GetProject(c.Request.Context(), c.Param("project_id"))
		if presentError(c, err) {
			return
		}
		c.JSON(http.StatusOK, gin.H{"project": dto.AdaptProjectDto(project)})
	}
}

// handleUpdateProjectMetrics applies one incremental data entry step.
func handleUpdateProjectMetrics(uc usecases.Usecases) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body dto.UpdateProjectMetricsBody
		if err := c.ShouldBindJSON(&body); err != nil {
			presentError(c, models.BadParameterError)
			return
		}

		usecase := uc.NewProjectUsecase()
		project, err := usecase.UpdateProjectMetrics(c.Request.Context(),
			dto.AdaptUpdateProjectMetricsInput(c.Param("project_id"), body))
		if presentError(c, err) {
			return
		}
		c.JSON(http.StatusOK, gin.H{"project": dto.AdaptProjectDto(project)})
	}
}
