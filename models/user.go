package models

import "time"

const (
	RoleAdmin  = "admin"
	RoleAuthor = "author"
)

type User struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Email        string `json:"email" gorm:"uniqueIndex;size:255;not null"`
	PasswordHash string `json:"-" gorm:"not null"`
	Name         string `json:"name"`
	Role         string `json:"role" gorm:"default:'author'"`
}

func (User) TableName() string { return "users" }
