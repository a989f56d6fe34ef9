package models

// Tag is reference data seeded at startup and managed by admins only.
type Tag struct {
	ID    uint   `gorm:"primaryKey" json:"id" example:"1"`
	Name  string `gorm:"size:200;uniqueIndex;not null" json:"name" example:"Завтрак"`
	Color string `gorm:"size:7;uniqueIndex;not null" json:"color" example:"#DA15E8"`
	Slug  string `gorm:"size:200;uniqueIndex;not null" json:"slug" example:"breakfast"`
}
