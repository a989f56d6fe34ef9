package models

// Ingredient names are not unique on their own: the same product can be
// listed with different measurement units.
type Ingredient struct {
	ID              uint   `gorm:"primaryKey" json:"id" example:"1"`
	Name            string `gorm:"size:200;not null;uniqueIndex:idx_ingredients_name_unit" json:"name" example:"Соль"`
	MeasurementUnit string `gorm:"size:200;not null;uniqueIndex:idx_ingredients_name_unit" json:"measurement_unit" example:"г"`
}
