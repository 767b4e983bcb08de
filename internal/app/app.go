package app

import (
	"database/sql"
	"log"
	"os"

	"timetrack/internal/administrator"
	"timetrack/internal/company"
	"timetrack/internal/department"
	"timetrack/internal/project"
	"timetrack/internal/shared/connection"
	"timetrack/internal/timeentry"
	"timetrack/internal/user"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func BuildApp(router *gin.Engine) error {
	gormDB, err := connection.ConnectGORMWithRetry(
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_SSLMODE"),
		5,
	)
	if err != nil {
		return err
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return err
	}

	redisClient, err := connection.ConnectRedisWithRetry(os.Getenv("REDIS_ADDR"), 5)
	if err != nil {
		return err
	}

	if err := migrate(gormDB, sqlDB); err != nil {
		return err
	}
	log.Println("Database schema is up to date")

	return registerModules(router, sqlDB, gormDB, redisClient)
}

// migrate keeps the directory order: companies before projects and
// departments, both before the tables referencing them.
func migrate(gormDB *gorm.DB, sqlDB *sql.DB) error {
	if err := gormDB.AutoMigrate(
		&company.Company{},
		&project.Project{},
		&department.Department{},
		&user.User{},
		&administrator.Invitation{},
		&timeentry.TimeEntry{},
	); err != nil {
		return err
	}
	return ensureOutboxTable(sqlDB)
}

// ensureOutboxTable owns the outbox DDL; the table is driven by raw SQL
// rather than the ORM.
func ensureOutboxTable(db *sql.DB) error {
	ddl := `
CREATE TABLE IF NOT EXISTS outbox_events (
    id UUID PRIMARY KEY,
    request_id TEXT,
    aggregate_type TEXT NOT NULL,
    aggregate_id UUID NOT NULL,
    event_type TEXT NOT NULL,
    topic TEXT NOT NULL,
    payload JSONB NOT NULL,
    status TEXT NOT NULL DEFAULT 'pending',
    retry_count INT NOT NULL DEFAULT 0,
    error_message TEXT,
    next_retry_at TIMESTAMPTZ,
    processed_at TIMESTAMPTZ,
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
)`
	_, err := db.Exec(ddl)
	return err
}
