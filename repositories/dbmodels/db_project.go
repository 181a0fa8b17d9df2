package dbmodels

import (
	"time"

	"github.com/guregu/null/v5"

	"github.com/buildwise/buildwise-backend/models"
	"github.com/buildwise/buildwise-backend/utils"
)

type DBProject struct {
	Id           string      `db:"id"`
	ProjectCode  string      `db:"project_code"`
	ProjectName  string      `db:"project_name"`
	Location     null.String `db:"location"`
	BuildingType null.String `db:"building_type"`

	GifaM2                 null.Float `db:"gifa_m2"`
	RoofAreaM2             null.Float `db:"roof_area_m2"`
	RoofPercentGifa        null.Float `db:"roof_percent_gifa"`
	ExternalWallAreaM2     null.Float `db:"external_wall_area_m2"`
	ExternalOpeningsM2     null.Float `db:"external_openings_m2"`
	BuildingFootprintM2    null.Float `db:"building_footprint_m2"`
	BasementSizeM2         null.Float `db:"basement_size_m2"`
	BasementPercentGifa    null.Float `db:"basement_percent_gifa"`
	NumApartments          null.Int   `db:"num_apartments"`
	NumKeys                null.Int   `db:"num_keys"`
	NumWcs                 null.Int   `db:"num_wcs"`
	EstimatedAutoBudgetAud null.Float `db:"estimated_auto_budget_aud"`
	BasementPresent        bool       `db:"basement_present"`

	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

const TABLE_PROJECTS = "projects"

var ColumnsSelectProject = utils.ColumnList[DBProject]()

func AdaptProject(db DBProject) (models.Project, error) {
	return models.Project{
		Id:           db.Id,
		ProjectCode:  db.ProjectCode,
		ProjectName:  db.ProjectName,
		Location:     db.Location.ValueOrZero(),
		BuildingType: db.BuildingType.ValueOrZero(),

		GifaM2:                 db.GifaM2,
		RoofAreaM2:             db.RoofAreaM2,
		RoofPercentGifa:        db.RoofPercentGifa,
		ExternalWallAreaM2:     db.ExternalWallAreaM2,
		ExternalOpeningsM2:     db.ExternalOpeningsM2,
		BuildingFootprintM2:    db.BuildingFootprintM2,
		BasementSizeM2:         db.BasementSizeM2,
		BasementPercentGifa:    db.BasementPercentGifa,
		NumApartments:          db.NumApartments,
		NumKeys:                db.NumKeys,
		NumWcs:                 db.NumWcs,
		EstimatedAutoBudgetAud: db.EstimatedAutoBudgetAud,
		BasementPresent:        db.BasementPresent,

		CreatedAt: db.CreatedAt,
		UpdatedAt: db.UpdatedAt,
	}, nil
}
