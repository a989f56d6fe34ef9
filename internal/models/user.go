package models

import "time"

type User struct {
	ID        uint      `gorm:"primaryKey" json:"id" example:"1"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
	Email     string    `gorm:"size:254;uniqueIndex;not null" json:"email" example:"user@example.com"`
	Username  string    `gorm:"size:150;uniqueIndex;not null" json:"username" example:"vasya"`
	FirstName string    `gorm:"size:150" json:"first_name" example:"Vasya"`
	LastName  string    `gorm:"size:150" json:"last_name" example:"Pupkin"`
	Password  string    `gorm:"size:128;not null" json:"-"`
	IsAdmin   bool      `gorm:"default:false" json:"-"`
}
