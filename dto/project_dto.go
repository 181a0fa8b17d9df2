package dto

import (
	"time"

	"github.com/guregu/null/v5"

	"github.com/buildwise/buildwise-backend/models"
)

type ProjectDto struct {
	Id           string `json:"id"`
	ProjectCode  string `json:"project_code"`
	ProjectName  string `json:"project_name"`
	Location     string `json:"location"`
	BuildingType string `json:"building_type"`

	GifaM2                 null.Float `json:"gifa_m2"`
	RoofAreaM2             null.Float `json:"roof_area_m2"`
	RoofPercentGifa        null.Float `json:"roof_percent_gifa"`
	ExternalWallAreaM2     null.Float `json:"external_wall_area_m2"`
	ExternalOpeningsM2     null.Float `json:"external_openings_m2"`
	BuildingFootprintM2    null.Float `json:"building_footprint_m2"`
	BasementSizeM2         null.Float `json:"basement_size_m2"`
	BasementPercentGifa    null.Float `json:"basement_percent_gifa"`
	NumApartments          null.Int   `json:"num_apartments"`
	NumKeys                null.Int   `json:"num_keys"`
	NumWcs                 null.Int   `json:"num_wcs"`
	EstimatedAutoBudgetAud null.Float `json:"estimated_auto_budget_aud"`
	BasementPresent        bool       `json:"basement_present"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func AdaptProjectDto(project models.Project) ProjectDto {
	return ProjectDto{
		Id:                     project.Id,
		ProjectCode:            project.ProjectCode,
		ProjectName:            project.ProjectName,
		Location:               project.Location,
		BuildingType:           project.BuildingType,
		GifaM2:                 project.GifaM2,
		RoofAreaM2:             project.RoofAreaM2,
		RoofPercentGifa:        project.RoofPercentGifa,
		ExternalWallAreaM2:     project.ExternalWallAreaM2,
		ExternalOpeningsM2:     project.ExternalOpeningsM2,
		BuildingFootprintM2:    project.BuildingFootprintM2,
		BasementSizeM2:         project.BasementSizeM2,
		BasementPercentGifa:    project.BasementPercentGifa,
		NumApartments:          project.NumApartments,
		NumKeys:                project.NumKeys,
		NumWcs:                 project.NumWcs,
		EstimatedAutoBudgetAud: project.EstimatedAutoBudgetAud,
		BasementPresent:        project.BasementPresent,
		CreatedAt:              project.CreatedAt,
		UpdatedAt:              project.UpdatedAt,
	}
}

type CreateProjectBody struct {
	ProjectName  string `json:"project_name" binding:"required"`
	Location     string `json:"location"`
	BuildingType string `json:"building_type"`
}

// UpdateProjectMetricsBody is a partial update: absent or null fields are
// left unchanged.
type UpdateProjectMetricsBody struct {
	ProjectName  *string `json:"project_name"`
	Location     *string `json:"location"`
	BuildingType *string `json:"building_type"`

	GifaM2                 *null.Float `json:"gifa_m2"`
	RoofAreaM2             *null.Float `json:"roof_area_m2"`
	RoofPercentGifa        *null.Float `json:"roof_percent_gifa"`
	ExternalWallAreaM2     *null.Float `json:"external_wall_area_m2"`
	ExternalOpeningsM2     *null.Float `json:"external_openings_m2"`
	BuildingFootprintM2    *null.Float `json:"building_footprint_m2"`
	BasementSizeM2         *null.Float `json:"basement_size_m2"`
	BasementPercentGifa    *null.Float `json:"basement_percent_gifa"`
	NumApartments          *null.Int   `json:"num_apartments"`
	NumKeys                *null.Int   `json:"num_keys"`
	NumWcs                 *null.Int   `json:"num_wcs"`
	EstimatedAutoBudgetAud *null.Float `json:"estimated_auto_budget_aud"`
	BasementPresent        *bool       `json:"basement_present"`
}

func AdaptUpdateProjectMetricsInput(projectId string, body UpdateProjectMetricsBody) models.UpdateProjectMetricsInput {
	return models.UpdateProjectMetricsInput{
		Id:                     projectId,
		ProjectName:            body.ProjectName,
		Location:               body.Location,
		BuildingType:           body.BuildingType,
		GifaM2:                 body.GifaM2,
		RoofAreaM2:             body.RoofAreaM2,
		RoofPercentGifa:        body.RoofPercentGifa,
		ExternalWallAreaM2:     body.ExternalWallAreaM2,
		ExternalOpeningsM2:     body.ExternalOpeningsM2,
		BuildingFootprintM2:    body.BuildingFootprintM2,
		BasementSizeM2:         body.BasementSizeM2,
		BasementPercentGifa:    body.BasementPercentGifa,
		NumApartments:          body.NumApartments,
		NumKeys:                body.NumKeys,
		NumWcs:                 body.NumWcs,
		EstimatedAutoBudgetAud: body.EstimatedAutoBudgetAud,
		BasementPresent:        body.BasementPresent,
	}
}
