package models

import (
	"time"
)

type User struct {
	ID           uint       `gorm:"primaryKey"`
	Email        string     `gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash string     `gorm:"type:varchar(512);not null"`
	Name         *string    `gorm:"type:varchar(255)"`
	Birthdate    *time.Time `gorm:"type:date"`
	IsAdmin      bool       `gorm:"not null;default:false"`
	IsSuperuser  bool       `gorm:"not null;default:false"`

	DepartmentID *uint
	Department   *Department `gorm:"foreignKey:DepartmentID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL"`
}
