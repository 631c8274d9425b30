package infra

import (
	"fmt"

	"github.com/MugaboVedaste/e-comerce-Kush/internal/model"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDatabase establishes a GORM connection backed by pgx, runs AutoMigrate to
// create / update all tables, then applies idempotent SQL patches for the
// constraints AutoMigrate cannot express reliably.
func NewDatabase(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)

	if err := Migrate(db); err != nil {
		return nil, err
	}

	return db, nil
}

// Migrate runs AutoMigrate for all entities plus the schema patches.
// Exposed separately so seed commands and tests can reuse it.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&model.User{},
		&model.ManagerProfile{},
		&model.Category{},
		&model.Cloth{},
		&model.SiteRating{},
		&model.SiteReview{},
	); err != nil {
		return fmt.Errorf("AutoMigrate: %w", err)
	}
	return applySchemaPatches(db)
}

// applySchemaPatches runs idempotent DDL that AutoMigrate may skip on
// existing databases. Postgres-only statements are guarded so the sqlite
// test driver ignores them.
func applySchemaPatches(db *gorm.DB) error {
	if db.Dialector.Name() != "postgres" {
		return nil
	}
	patches := []string{
		// Ratings outside 1..5 must be impossible even via direct SQL.
		`DO $$ BEGIN
		  IF NOT EXISTS (SELECT 1 FROM pg_constraint WHERE conname = 'chk_site_ratings_range') THEN
		    ALTER TABLE site_ratings ADD CONSTRAINT chk_site_ratings_range CHECK (rating >= 1 AND rating <= 5);
		  END IF;
		END $$`,
		// The like counter never goes negative.
		`DO $$ BEGIN
		  IF NOT EXISTS (SELECT 1 FROM pg_constraint WHERE conname = 'chk_clothes_likes_nonneg') THEN
		    ALTER TABLE clothes ADD CONSTRAINT chk_clothes_likes_nonneg CHECK (likes >= 0);
		  END IF;
		END $$`,
	}
	for _, sql := range patches {
		if err := db.Exec(sql).Error; err != nil {
			return fmt.Errorf("schema patch: %w", err)
		}
	}
	return nil
}
