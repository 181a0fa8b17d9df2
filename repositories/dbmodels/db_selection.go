package dbmodels

import "github.com/buildwise/buildwise-backend/utils"

type DBProjectSelection struct {
	ProjectId      string `db:"project_id"`
	InterventionId int64  `db:"intervention_id"`
}

const TABLE_PROJECT_SELECTIONS = "project_selections"

var ColumnsSelectProjectSelection = utils.ColumnList[DBProjectSelection]()

func AdaptSelectedInterventionId(db DBProjectSelection) (int64, error) {
	return db.InterventionId, nil
}
