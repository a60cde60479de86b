package database

import (
	"fmt"
	"strings"

	sqlite "github.com/glebarez/sqlite" // CGO-free driver
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"silage/entities"
)

// Models is every table the service owns, in migration order.
var Models = []any{
	&entities.Farm{},
	&entities.Trench{},
	&entities.Harvest{},
	&entities.Crop{},
	&entities.WeatherCondition{},
	&entities.TrenchControl{},
	&entities.FossSample{},
	&entities.SieveSample{},
	&entities.CropFossNorm{},
	&entities.CropSieveNorm{},
	&entities.FossTemplate{},
	&entities.SieveTemplate{},
	&entities.LabEntry{},
}

// Open connects to sqlite (dsn is a file path) or postgres and migrates the
// schema.
func Open(driver, dsn string, log *zap.Logger) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch driver {
	case "postgres":
		dialector = postgres.Open(dsn)
	case "sqlite", "":
		dialector = sqlite.Open(dsn)
	default:
		return nil, fmt.Errorf("unsupported db driver %q", driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{Logger: gormlogger.Default.LogMode(gormlogger.Silent)})
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", driver, err)
	}

	// every new connection to :memory: is a fresh database
	if strings.Contains(dsn, ":memory:") {
		sqlDB, err := db.DB()
		if err != nil {
			return nil, err
		}
		sqlDB.SetMaxOpenConns(1)
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}
	log.Info("database ready", zap.String("driver", db.Dialector.Name()))
	return db, nil
}

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(Models...); err != nil {
		return fmt.Errorf("automigrate: %w", err)
	}
	return nil
}
