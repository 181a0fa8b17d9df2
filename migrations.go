package main

import (
	"context"

	"github.com/buildwise/buildwise-backend/infra"
	"github.com/buildwise/buildwise-backend/repositories"
	"github.com/buildwise/buildwise-backend/utils"
)

func runMigrations(ctx context.Context, pgConfig infra.PgConfig) error {
	logger := utils.LoggerFromContext(ctx)
	return repositories.RunMigrations(pgConfig, logger)
}
