package test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
	"gorm.io/gorm/schema"

	"student-portal-system/config"
	"student-portal-system/internal/global/database"
)

// SetupDB points the global store at a fresh in-memory database and loads a
// test configuration. Each test gets its own database, so no cleanup is
// needed between cases.
func SetupDB(t *testing.T) {
	t.Helper()

	config.Set(&config.Config{
		Mode:   config.ModeDebug,
		Prefix: "api",
		JWT: config.JWT{
			AccessSecret: "test-secret",
			AccessExpire: 3600,
		},
		Superadmin: config.Superadmin{
			Username: "admin",
			Password: "admin123",
		},
	})

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
		NamingStrategy: schema.NamingStrategy{
			SingularTable: true,
		},
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	database.DB = db
}
