package models

import (
	"time"

	"github.com/guregu/null/v5"
)

// Project holds one building project's entered metrics. It is created when
// the project is started and filled in incrementally as the user goes through
// the data entry steps, so any numeric field can still be null when the
// engine runs.
type Project struct {
	Id           string
	ProjectCode  string
	ProjectName  string
	Location     string
	BuildingType string

	GifaM2                 null.Float
	RoofAreaM2             null.Float
	RoofPercentGifa        null.Float
	ExternalWallAreaM2     null.Float
	ExternalOpeningsM2     null.Float
	BuildingFootprintM2    null.Float
	BasementSizeM2         null.Float
	BasementPercentGifa    null.Float
	NumApartments          null.Int
	NumKeys                null.Int
	NumWcs                 null.Int
	EstimatedAutoBudgetAud null.Float
	BasementPresent        bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

type CreateProjectInput struct {
	ProjectName  string
	Location     string
	BuildingType string
}

// UpdateProjectMetricsInput carries one incremental metrics save. Nil
// pointers mean "leave unchanged"; a present null.Float/null.Int with
// Valid=false clears the field.
type UpdateProjectMetricsInput struct {
	Id string

	ProjectName  *string
	Location     *string
	BuildingType *string

	GifaM2                 *null.Float
	RoofAreaM2             *null.Float
	RoofPercentGifa        *null.Float
	ExternalWallAreaM2     *null.Float
	ExternalOpeningsM2     *null.Float
	BuildingFootprintM2    *null.Float
	BasementSizeM2         *null.Float
	BasementPercentGifa    *null.Float
	NumApartments          *null.Int
	NumKeys                *null.Int
	NumWcs                 *null.Int
	EstimatedAutoBudgetAud *null.Float
	BasementPresent        *bool
}

type ListProjectsFilters struct {
	Query string
}
