package cmd

import (
	"database/sql"

	_ "github.com/lib/pq"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// OpenDatabase connects through lib/pq and hands the pool to gorm.
func OpenDatabase(config Config) (*gorm.DB, error) {
	sqlDB, err := sql.Open("postgres", config.DSN())
	if err != nil {
		return nil, err
	}

	if err = sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, err
	}

	return gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{})
}
