package repo

import (
	"strings"

	gormpostgres "gorm.io/driver/postgres"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	_ "modernc.org/sqlite"

	"folkers/internal/model"
)

// InitDB открывает соединение и прогоняет автомиграции.
// Postgres для боевых DSN, иначе SQLite-файл (локальный запуск, тесты).
func InitDB(dsn string) (*gorm.DB, error) {
	var dial gorm.Dialector
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") || strings.Contains(dsn, "host=") {
		dial = gormpostgres.Open(dsn)
	} else {
		if dsn == "" {
			dsn = "folkers.db"
		}
		// чистый Go-драйвер modernc, без cgo
		dial = gormsqlite.Dialector{DriverName: "sqlite", DSN: dsn}
	}

	db, err := gorm.Open(dial, &gorm.Config{})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(&model.User{}, &model.Person{}, &model.Signature{}); err != nil {
		return nil, err
	}

	return db, nil
}
