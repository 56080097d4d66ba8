package db

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// DefaultSQLitePath is the file-backed store used when no DATABASE_URL is set.
const DefaultSQLitePath = "data/pushuplog.db"

// Open returns a connected GORM DB instance. databaseURL selects the backing
// engine: a MySQL DSN (optionally with a mysql:// prefix) opens MySQL,
// anything else is treated as a SQLite path. An empty value falls back to a
// local SQLite file.
func Open(databaseURL string) (*gorm.DB, error) {
	cfg := &gorm.Config{TranslateError: true}

	if isMySQLDSN(databaseURL) {
		dsn := strings.TrimPrefix(databaseURL, "mysql://")
		db, err := gorm.Open(mysql.Open(dsn), cfg)
		if err != nil {
			return nil, fmt.Errorf("connect mysql: %w", err)
		}
		return db, nil
	}

	path := databaseURL
	if path == "" {
		path = DefaultSQLitePath
	}
	path = strings.TrimPrefix(path, "sqlite://")
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create sqlite dir: %w", err)
		}
	}
	db, err := gorm.Open(sqlite.Open(path), cfg)
	if err != nil {
		return nil, fmt.Errorf("connect sqlite: %w", err)
	}
	return db, nil
}

func isMySQLDSN(u string) bool {
	return strings.HasPrefix(u, "mysql://") || strings.Contains(u, "@tcp(")
}
