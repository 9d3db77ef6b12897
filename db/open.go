package db

import (
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// MemoryPath opens a private in-memory database.
const MemoryPath = ":memory:"

// busyTimeoutMS is how long a writer waits for a competing write transaction.
const busyTimeoutMS = 5000

// DSN builds the go-sqlite3 data source name for a database file.
// Write transactions take the RESERVED lock at BEGIN so concurrent writers
// queue on the busy timeout instead of failing on lock upgrade.
func DSN(path string) string {
	params := fmt.Sprintf("_busy_timeout=%d&_txlock=immediate&_foreign_keys=on", busyTimeoutMS)
	if strings.Contains(path, "?") {
		return "file:" + path + "&" + params
	}
	return "file:" + path + "?" + params
}

// Open opens (or creates) the SQLite database at path through database/sql and
// wraps the handle in GORM. The returned *gorm.DB is safe for concurrent use and
// should be shared for the lifetime of the process.
func Open(path string, log zerolog.Logger) (*gorm.DB, error) {
	sqlDB, err := sql.Open("sqlite3", DSN(path))
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if path == MemoryPath {
		// every connection to :memory: is a separate database
		sqlDB.SetMaxOpenConns(1)
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	gdb, err := gorm.Open(sqlite.Dialector{Conn: sqlDB}, &gorm.Config{
		Logger: NewLogger(log),
	})
	if err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("init gorm: %w", err)
	}
	return gdb, nil
}

// Close closes the connection pool behind gdb.
func Close(gdb *gorm.DB) error {
	sqlDB, err := gdb.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
