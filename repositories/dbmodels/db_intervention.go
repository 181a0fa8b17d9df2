package dbmodels

import (
	"github.com/guregu/null/v5"

	"github.com/buildwise/buildwise-backend/models"
	"github.com/buildwise/buildwise-backend/utils"
)

type DBIntervention struct {
	Id                 int64      `db:"id"`
	ClassName          null.String `db:"class"`
	Theme              null.String `db:"theme"`
	Name               null.String `db:"name"`
	Description        null.String `db:"description"`
	CostLevel          null.Int    `db:"cost_level"`
	CostRange          null.String `db:"cost_range"`
	InterventionRating null.Float  `db:"intervention_rating"`
	Stage              null.Int    `db:"stage"`
}

const TABLE_INTERVENTIONS = "interventions"

var ColumnsSelectIntervention = utils.ColumnList[DBIntervention]()

func AdaptIntervention(db DBIntervention) (models.Intervention, error) {
	return models.Intervention{
		Id:                 db.Id,
		ClassName:          db.ClassName.ValueOrZero(),
		Theme:              db.Theme.ValueOrZero(),
		Name:               db.Name.ValueOrZero(),
		Description:        db.Description.ValueOrZero(),
		CostLevel:          int(db.CostLevel.ValueOrZero()),
		CostRange:          db.CostRange.ValueOrZero(),
		InterventionRating: db.InterventionRating.ValueOrZero(),
		Stage:              int(db.Stage.ValueOrZero()),
	}, nil
}
