package store

import (
	"database/sql"

	"github.com/haneefojay/flashai-client/internal/logger"
	"github.com/haneefojay/flashai-client/migrations"
)

type DB struct {
	*sql.DB
	logger *logger.Logger
}

func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}
