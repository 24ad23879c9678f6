package config

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/ian-shakespeare/tapster/models"
)

// InitDB opens the connection pool, migrates the schema and seeds the unit
// reference table.
func InitDB(cfg *Config) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	err = db.AutoMigrate(
		&models.User{},
		&models.Media{},
		&models.Bar{},
		&models.Ingredient{},
		&models.SubIngredient{},
		&models.Unit{},
	)
	if err != nil {
		return nil, fmt.Errorf("automigrate failed: %w", err)
	}

	if err := seedUnits(db); err != nil {
		return nil, fmt.Errorf("unit seed failed: %w", err)
	}

	return db, nil
}

func strPtr(s string) *string {
	return &s
}

// seedUnits populates the read-only unit table on first boot.
func seedUnits(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Unit{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	metric := strPtr("metric")
	imperial := strPtr("imperial")
	units := []models.Unit{
		{Name: "milliliter", Abbreviation: "ml", System: metric},
		{Name: "centiliter", Abbreviation: "cl", System: metric},
		{Name: "liter", Abbreviation: "l", System: metric},
		{Name: "fluid ounce", Abbreviation: "fl oz", System: imperial},
		{Name: "teaspoon", Abbreviation: "tsp", System: imperial},
		{Name: "tablespoon", Abbreviation: "tbsp", System: imperial},
		{Name: "cup", Abbreviation: "c", System: imperial},
		{Name: "dash", Abbreviation: "ds"},
		{Name: "splash", Abbreviation: "spl"},
		{Name: "drop", Abbreviation: "dr"},
		{Name: "barspoon", Abbreviation: "bsp"},
		{Name: "part", Abbreviation: "pt"},
	}

	return db.Create(&units).Error
}
