package dbmodels

import (
	"github.com/guregu/null/v5"

	"github.com/buildwise/buildwise-backend/models"
	"github.com/buildwise/buildwise-backend/utils"
)

type DBEffect struct {
	Id          int64       `db:"id"`
	SourceName  string      `db:"source_name"`
	TargetName  string      `db:"target_name"`
	EffectValue null.Float  `db:"effect_value"`
	Note        null.String `db:"note"`
}

const TABLE_INTERVENTION_EFFECTS = "intervention_effects"

var ColumnsSelectEffect = utils.ColumnList[DBEffect]()

func AdaptEffect(db DBEffect) (models.Effect, error) {
	return models.Effect{
		Id:          db.Id,
		SourceName:  db.SourceName,
		TargetName:  db.TargetName,
		EffectValue: db.EffectValue.Ptr(),
		Note:        db.Note.ValueOrZero(),
	}, nil
}
