package store

import (
	"errors"
	"fmt"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/rs/zerolog"
	"gorm.io/datatypes"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

// Driver names accepted by Open
const (
	DriverMemory   = "memory"
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Record is one row of the key-value table
type Record struct {
	Name      string         `gorm:"primaryKey;size:64"`
	Value     datatypes.JSON `gorm:"not null"`
	UpdatedAt time.Time
}

func (Record) TableName() string { return "rally_records" }

// SQL is a KV backed by a gorm connection
type SQL struct {
	db  *gorm.DB
	log zerolog.Logger
}

// Open returns the backend named by driver
// dsn is a file path for sqlite (empty for a private in-memory database) and a connection string for postgres
func Open(driver, dsn string, log zerolog.Logger) (KV, error) {
	switch driver {
	case DriverMemory, "":
		return NewMemory(), nil
	case DriverSQLite:
		return OpenSQLite(dsn, log)
	case DriverPostgres:
		return OpenPostgres(dsn, log)
	default:
		return nil, fmt.Errorf("unknown store driver %q", driver)
	}
}

// OpenSQLite opens or creates a sqlite database file
func OpenSQLite(path string, log zerolog.Logger) (*SQL, error) {
	memory := path == ""
	if memory {
		path = "file::memory:"
	}
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite %s: %w", path, err)
	}
	if memory {
		// Every pooled connection would otherwise see its own empty database
		sqlDB, err := db.DB()
		if err != nil {
			return nil, fmt.Errorf("failed to access sql interface: %w", err)
		}
		sqlDB.SetMaxOpenConns(1)
	}
	log.Info().Str("path", path).Msg("Using SQLite rank store")
	return newSQL(db, log)
}

// OpenPostgres connects to a postgres server
func OpenPostgres(dsn string, log zerolog.Logger) (*SQL, error) {
	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to postgres: %w", err)
	}
	log.Info().Msg("Connected to Postgres rank store")
	return newSQL(db, log)
}

func newSQL(db *gorm.DB, log zerolog.Logger) (*SQL, error) {
	if err := db.AutoMigrate(&Record{}); err != nil {
		return nil, fmt.Errorf("failed to migrate records table: %w", err)
	}
	return &SQL{db: db, log: log}, nil
}

func (s *SQL) Get(key string) ([]byte, error) {
	var rec Record
	err := s.db.Take(&rec, "name = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", key, err)
	}
	return []byte(rec.Value), nil
}

// Put upserts the record, the value must be valid JSON for the postgres column type
func (s *SQL) Put(key string, value []byte) error {
	rec := Record{Name: key, Value: datatypes.JSON(value), UpdatedAt: time.Now()}
	err := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&rec).Error
	if err != nil {
		return fmt.Errorf("failed to write %s: %w", key, err)
	}
	s.log.Debug().Str("key", key).Int("bytes", len(value)).Msg("Record stored")
	return nil
}

func (s *SQL) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return fmt.Errorf("failed to access sql interface: %w", err)
	}
	return sqlDB.Close()
}
