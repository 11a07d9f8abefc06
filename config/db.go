package config

import (
	"log"
	"time"

	"authorshaven/global"
	"authorshaven/models"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func initDB() {
	db, err := gorm.Open(mysql.Open(AppConfig.Database.Dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("Failed to initialize database, got error: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("Failed to get database instance: %v", err)
	}
	sqlDB.SetMaxIdleConns(AppConfig.Database.MaxIdleConns)
	sqlDB.SetMaxOpenConns(AppConfig.Database.MaxOpenConns)
	sqlDB.SetConnMaxLifetime(time.Hour)

	if err := db.AutoMigrate(
		&models.User{},
		&models.Article{},
		&models.Comment{},
		&models.Like{},
		&models.Category{},
		&models.Tag{},
	); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	// The ledger keys reactions by resource id alone, so article and
	// comment ids must never collide. Offsetting the comment sequence
	// keeps the id spaces disjoint.
	if err := db.Exec("ALTER TABLE comments AUTO_INCREMENT = 1000000000").Error; err != nil {
		log.Fatalf("Failed to offset comment ids: %v", err)
	}

	global.Db = db
}
