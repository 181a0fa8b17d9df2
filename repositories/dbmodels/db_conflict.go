package dbmodels

import (
	"github.com/guregu/null/v5"

	"github.com/buildwise/buildwise-backend/models"
	"github.com/buildwise/buildwise-backend/utils"
)

type DBConflict struct {
	Id           int64       `db:"id"`
	AId          int64       `db:"a_id"`
	BId          int64       `db:"b_id"`
	ConflictType null.String `db:"conflict_type"`
	Reason       null.String `db:"reason"`
}

const TABLE_INTERVENTION_CONFLICTS = "intervention_conflicts"

var ColumnsSelectConflict = utils.ColumnList[DBConflict]()

func AdaptConflict(db DBConflict) (models.Conflict, error) {
	return models.Conflict{
		Id:           db.Id,
		AId:          db.AId,
		BId:          db.BId,
		ConflictType: db.ConflictType.ValueOrZero(),
		Reason:       db.Reason.ValueOrZero(),
	}, nil
}
