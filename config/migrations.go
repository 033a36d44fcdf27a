package config

import (
	"github.com/go-gormigrate/gormigrate/v2"
	"gorm.io/gorm"
	"p9e.in/landreg/models"
)

func Migrations(db *gorm.DB) error {
	m := gormigrate.New(db, gormigrate.DefaultOptions, []*gormigrate.Migration{
		{
			ID: "20250110_create_admin_hierarchy",
			Migrate: func(tx *gorm.DB) error {
				return tx.AutoMigrate(&models.Region{}, &models.Zone{},
					&models.Woreda{}, &models.OversightOffice{})
			},
		},
		{
			ID: "20250110_create_users",
			Migrate: func(tx *gorm.DB) error {
				return tx.AutoMigrate(&models.User{})
			},
		},
		{
			ID: "20250112_create_land_registry_tables",
			Migrate: func(tx *gorm.DB) error {
				return tx.AutoMigrate(&models.LandRecord{}, &models.Owner{},
					&models.LandDocument{}, &models.OwnershipTransfer{})
			},
		},
		{
			ID: "20250118_create_geo_points",
			Migrate: func(tx *gorm.DB) error {
				return tx.AutoMigrate(&models.GeoPoint{})
			},
		},
		{
			// One live point per sequence slot per parcel. Partial so that
			// soft-deleted rings from earlier replacements do not collide.
			ID: "20250120_geo_points_ring_unique",
			Migrate: func(tx *gorm.DB) error {
				return tx.Exec(`CREATE UNIQUE INDEX IF NOT EXISTS idx_geo_points_ring_live
					ON geo_points (land_record_id, sequence) WHERE deleted_at IS NULL`).Error
			},
		},
	})
	return m.Migrate()
}
