package utils

import (
	"encoding/csv"
	"fmt"
	"log"
	"os"

	"foodgram/internal/models"

	"github.com/gosimple/slug"
	"gorm.io/gorm"
)

// Seed tags mirror the reference data the service ships with.
var seedTags = []models.Tag{
	{Name: "Завтрак", Color: "#DA15E8", Slug: "breakfast"},
	{Name: "Обед", Color: "#05F210", Slug: "dinner"},
	{Name: "Ужин", Color: "#D64A27", Slug: "supper"},
}

func SeedTags(db *gorm.DB) error {
	for _, tag := range seedTags {
		if tag.Slug == "" {
			tag.Slug = slug.Make(tag.Name)
		}
		var count int64
		if err := db.Model(&models.Tag{}).Where("slug = ?", tag.Slug).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			continue
		}
		if err := db.Create(&tag).Error; err != nil {
			return fmt.Errorf("failed to seed tag %q: %w", tag.Name, err)
		}
	}
	log.Printf("Seeded %d tags", len(seedTags))
	return nil
}

// SeedIngredients loads "name,measurement_unit" rows from a CSV file.
// Existing (name, unit) pairs are skipped so reseeding is safe.
func SeedIngredients(db *gorm.DB, csvPath string) error {
	file, err := os.Open(csvPath)
	if err != nil {
		return fmt.Errorf("failed to open ingredients file: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = 2

	records, err := reader.ReadAll()
	if err != nil {
		return fmt.Errorf("failed to parse ingredients file: %w", err)
	}

	seeded := 0
	for _, record := range records {
		name, unit := record[0], record[1]
		var count int64
		if err := db.Model(&models.Ingredient{}).
			Where("name = ? AND measurement_unit = ?", name, unit).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			continue
		}
		if err := db.Create(&models.Ingredient{Name: name, MeasurementUnit: unit}).Error; err != nil {
			return fmt.Errorf("failed to seed ingredient %q: %w", name, err)
		}
		seeded++
	}

	log.Printf("Seeded %d ingredients from %s", seeded, csvPath)
	return nil
}
