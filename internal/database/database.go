package database

import (
	"strings"

	"photoorders/internal/domain"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	_ "modernc.org/sqlite"
)

func Connect(dsn string) (*gorm.DB, error) {
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		logrus.Info("connecting to PostgreSQL")
		return gorm.Open(postgres.Open(dsn), &gorm.Config{})
	}

	logrus.WithField("dsn", dsn).Info("using SQLite")

	return gorm.Open(
		gormsqlite.New(gormsqlite.Config{
			DriverName: "sqlite",
			DSN:        dsn,
		}),
		&gorm.Config{},
	)
}

// Migrate brings the schema up to date for every persisted model.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&domain.PaperSize{},
		&domain.ServiceAddition{},
		&domain.Package{},
		&domain.Theme{},
		&domain.ServiceType{},
		&domain.Costume{},
		&domain.StudioSample{},
		&domain.Kindergarten{},
		&domain.KindergartenClass{},
		&domain.Preschool{},
		&domain.AppConfig{},
		&domain.User{},
		&domain.UserOrder{},
		&domain.KindergartenRequest{},
		&domain.ServiceRequest{},
	)
}
