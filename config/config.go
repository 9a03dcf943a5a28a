package config

import (
	"fmt"
	"os"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// InitDB opens the database selected by DB_DRIVER. MySQL is the
// production driver; sqlite keeps local development and CI working
// without a server.
func InitDB() (*gorm.DB, error) {
	switch driver := envOr("DB_DRIVER", "mysql"); driver {
	case "mysql":
		dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
			envOr("DB_USER", "root"),
			os.Getenv("DB_PASSWORD"),
			envOr("DB_HOST", "127.0.0.1"),
			envOr("DB_PORT", "3306"),
			envOr("DB_NAME", "nush_storefront"),
		)
		return gorm.Open(mysql.Open(dsn), &gorm.Config{})
	case "sqlite":
		return gorm.Open(sqlite.Open(envOr("DB_PATH", "nush_storefront.db")), &gorm.Config{})
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", driver)
	}
}
