package models

import "gorm.io/gorm"

type User struct {
	gorm.Model
	Firstname string `gorm:"not null" json:"firstname"`
	Lastname  string `gorm:"not null" json:"lastname"`
	Username  string `gorm:"unique;not null" json:"username"`
	Email     string `gorm:"unique;not null" json:"email"`
	Password  string `gorm:"not null" json:"-"`
	Bio       string `json:"bio"`
	Image     string `json:"image"`
}
