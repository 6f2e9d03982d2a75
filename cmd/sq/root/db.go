package root

import (
	"context"

	"go.uber.org/zap"

	"studyquest/internal/engine"
	"studyquest/internal/storage"
)

func openRepo(ctx context.Context) (*engine.Repository, func(), error) {
	path, err := storage.ResolveDBPath()
	if err != nil {
		return nil, nil, err
	}
	db, err := storage.Open(ctx, path)
	if err != nil {
		return nil, nil, err
	}

	logger, err := zap.NewProduction()
	if err != nil {
		logger = zap.NewNop()
	}

	cleanup := func() {
		_ = logger.Sync()
		_ = db.Close()
	}
	return engine.NewRepository(storage.NewSQLiteStore(db, logger)), cleanup, nil
}
