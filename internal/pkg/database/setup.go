package database

import (
	"fmt"
	"log"
	"time"

	"github.com/ManuelReschke/Folio/app/models"
	"github.com/ManuelReschke/Folio/internal/pkg/env"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

const maxRetries = 5
const retryDelay = 5 * time.Second

// DB is the process wide connection, set by SetupDatabase
var DB *gorm.DB

// GetDB returns the shared connection or nil before SetupDatabase ran
func GetDB() *gorm.DB {
	return DB
}

// Models lists every table the application owns
func Models() []interface{} {
	return []interface{}{
		&models.Post{},
		&models.Resource{},
		&models.Subscriber{},
	}
}

// Config is shared by production and test connections. TranslateError makes
// unique index violations surface as gorm.ErrDuplicatedKey.
func Config() *gorm.Config {
	return &gorm.Config{TranslateError: true}
}

// subscriberEmailColumn matches emails byte for byte, so addresses that
// differ only in case are separate subscribers
const subscriberEmailColumn = "VARCHAR(255) CHARACTER SET utf8mb4 COLLATE utf8mb4_bin NOT NULL"

// BinaryEmailCollation switches subscribers.email to a binary collation on
// MySQL. AutoMigrate creates the column with the database default, which is
// case-insensitive. Other dialects compare exactly already.
func BinaryEmailCollation(db *gorm.DB) error {
	if db.Dialector.Name() != "mysql" {
		return nil
	}
	return db.Exec("ALTER TABLE subscribers MODIFY email " + subscriberEmailColumn).Error
}

func SetupDatabase() {
	var err error
	// "user:pass@tcp(127.0.0.1:3306)/dbname?charset=utf8mb4&parseTime=True&loc=Local"
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		env.GetEnv("DB_USER", ""),
		env.GetEnv("DB_PASSWORD", ""),
		env.GetEnv("DB_HOST", "127.0.0.1"),
		env.GetEnv("DB_PORT", "3306"),
		env.GetEnv("DB_NAME", ""),
	)

	for i := 0; i < maxRetries; i++ {
		DB, err = gorm.Open(mysql.New(mysql.Config{
			DSN:                       dsn,
			DefaultStringSize:         256,
			DisableDatetimePrecision:  true,
			DontSupportRenameIndex:    true,
			DontSupportRenameColumn:   true,
			SkipInitializeWithVersion: false,
		}), Config())
		if err == nil {
			if err = DB.AutoMigrate(Models()...); err != nil {
				log.Printf("Auto migration failed: %v", err)
			}
			if err = BinaryEmailCollation(DB); err != nil {
				log.Printf("Setting subscriber email collation failed: %v", err)
			}
			return
		}

		log.Printf("Failed to connect to database (try %d/%d): %v", i+1, maxRetries, err)
		if i < maxRetries-1 {
			log.Printf("Retrying in %v...", retryDelay)
			time.Sleep(retryDelay)
		}
	}

	if err != nil {
		panic(err)
	}
}
