package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/cockroachdb/errors"
	"github.com/jackc/pgx/v5"

	"github.com/buildwise/buildwise-backend/models"
)

// executes the sql query and returns a list of models using the provided adapter
func SqlToListOfModels[DBModel, Model any](
	ctx context.Context,
	exec Executor,
	query squirrel.Sqlizer,
	adapter func(dbModel DBModel) (Model, error),
) ([]Model, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "can't build sql query")
	}

	rows, err := exec.Query(ctx, sql, args...)
	if err != nil {
		return nil, errors.Wrap(err, "error executing sql query")
	}
	defer rows.Close()

	out := make([]Model, 0)
	for rows.Next() {
		dbModel, err := pgx.RowToStructByName[DBModel](rows)
		if err != nil {
			return nil, errors.Wrap(err, fmt.Sprintf("error scanning row to struct %T", dbModel))
		}
		model, err := adapter(dbModel)
		if err != nil {
			return nil, err
		}
		out = append(out, model)
	}
	return out, errors.Wrap(rows.Err(), "error iterating over rows")
}

// executes the sql query and returns a model using the provided adapter
// Returns a models.NotFoundError if the query has no result.
func SqlToModel[DBModel, Model any](
	ctx context.Context,
	exec Executor,
	query squirrel.Sqlizer,
	adapter func(dbModel DBModel) (Model, error),
) (Model, error) {
	var zero Model
	model, err := SqlToOptionalModel(ctx, exec, query, adapter)
	if err != nil {
		return zero, err
	}
	if model == nil {
		return zero, errors.Wrap(models.NotFoundError, fmt.Sprintf("found no object of type %T", zero))
	}
	return *model, nil
}

// executes the sql query and returns a model using the provided adapter
// If no result is returned by the query, returns nil
func SqlToOptionalModel[DBModel, Model any](
	ctx context.Context,
	exec Executor,
	query squirrel.Sqlizer,
	adapter func(dbModel DBModel) (Model, error),
) (*Model, error) {
	results, err := SqlToListOfModels(ctx, exec, query, adapter)
	if err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return nil, nil
	}
	if len(results) > 1 {
		return nil, errors.Errorf("expected at most one result, got %d", len(results))
	}
	return &results[0], nil
}

// ExecBuilder builds and executes a non-returning statement.
func ExecBuilder(ctx context.Context, exec Executor, query squirrel.Sqlizer) error {
	sql, args, err := query.ToSql()
	if err != nil {
		return errors.Wrap(err, "can't build sql query")
	}
	_, err = exec.Exec(ctx, sql, args...)
	return errors.Wrap(err, "error executing sql query")
}
