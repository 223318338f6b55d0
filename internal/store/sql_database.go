package store

import (
	"database/sql"

	"github.com/MKhiriev/go-cred-store/internal/logger"
	"github.com/MKhiriev/go-cred-store/migrations"
)

type DB struct {
	*sql.DB
	logger *logger.Logger
}

func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}
