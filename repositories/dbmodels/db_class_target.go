package dbmodels

import (
	"github.com/buildwise/buildwise-backend/models"
	"github.com/buildwise/buildwise-backend/utils"
)

type DBClassTarget struct {
	ClassName    string  `db:"class_name"`
	TargetRating float64 `db:"target_rating"`
}

const TABLE_CLASS_TARGETS = "class_targets"

var ColumnsSelectClassTarget = utils.ColumnList[DBClassTarget]()

func AdaptClassTarget(db DBClassTarget) (models.ClassTarget, error) {
	return models.ClassTarget{
		ClassName:    db.ClassName,
		TargetRating: db.TargetRating,
	}, nil
}
