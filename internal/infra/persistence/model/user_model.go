// Package model holds the GORM persistence models.
package model

import "time"

// UserModel mirrors the 'users' table. The ID is a bigserial in PostgreSQL.
type UserModel struct {
	ID           uint64 `gorm:"primaryKey;autoIncrement"`
	FirstName    string `gorm:"type:varchar(30);not null"`
	LastName     string `gorm:"type:varchar(30);not null"`
	Email        string `gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash string `gorm:"column:password_hash;type:varchar(255);not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
