package database

import (
	"fmt"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"gorm.io/gorm/schema"

	"student-portal-system/config"
	"student-portal-system/internal/model"
	"student-portal-system/tools"
)

var DB *gorm.DB

// autoMigrateModels lists every persisted record type. The unique index on
// Student.RegNumber is created here, which is what makes reg numbers a
// reliable login key.
var autoMigrateModels = []any{
	&model.Student{},
	&model.Admin{},
	&model.Post{},
}

func Init() {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		config.Get().Mysql.Username,
		config.Get().Mysql.Password,
		config.Get().Mysql.Host,
		config.Get().Mysql.Port,
		config.Get().Mysql.DBName,
	)
	gormConfig := &gorm.Config{
		NamingStrategy: schema.NamingStrategy{SingularTable: true},
	}

	switch config.Get().Mode {
	case config.ModeDebug:
		gormConfig.Logger = logger.Default.LogMode(logger.Info)
	case config.ModeRelease:
		gormConfig.Logger = logger.Discard
	}

	db, err := gorm.Open(mysql.Open(dsn), gormConfig)
	tools.PanicOnErr(err)
	DB = db

	tools.PanicOnErr(DB.AutoMigrate(autoMigrateModels...))
}

// Migrate runs the model migrations against an arbitrary gorm DB. Tests use
// it to prepare an in-memory database.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(autoMigrateModels...)
}
