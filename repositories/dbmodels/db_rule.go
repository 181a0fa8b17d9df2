package dbmodels

import (
	"github.com/guregu/null/v5"

	"github.com/buildwise/buildwise-backend/models"
	"github.com/buildwise/buildwise-backend/utils"
)

type DBRule struct {
	Id             int64       `db:"id"`
	InterventionId int64       `db:"intervention_id"`
	FieldName      string      `db:"field_name"`
	Operator       string      `db:"operator"`
	Value          null.String `db:"value"`
}

const TABLE_INTERVENTION_RULES = "intervention_rules"

var ColumnsSelectRule = utils.ColumnList[DBRule]()

func AdaptRule(db DBRule) (models.Rule, error) {
	return models.Rule{
		Id:             db.Id,
		InterventionId: db.InterventionId,
		FieldName:      db.FieldName,
		Operator:       models.RuleOperator(db.Operator),
		Value:          db.Value.ValueOrZero(),
	}, nil
}

type DBDependency struct {
	Id             int64      `db:"id"`
	InterventionId int64      `db:"intervention_id"`
	MetricName     string     `db:"metric_name"`
	MinValue       null.Float `db:"min_value"`
	MaxValue       null.Float `db:"max_value"`
}

const TABLE_INTERVENTION_DEPENDENCIES = "intervention_dependencies"

var ColumnsSelectDependency = utils.ColumnList[DBDependency]()

func AdaptDependency(db DBDependency) (models.Dependency, error) {
	return models.Dependency{
		Id:             db.Id,
		InterventionId: db.InterventionId,
		MetricName:     db.MetricName,
		MinValue:       db.MinValue.Ptr(),
		MaxValue:       db.MaxValue.Ptr(),
	}, nil
}
