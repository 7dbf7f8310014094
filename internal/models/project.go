package models

import (
	"time"
)

type Project struct {
	ID         uint       `gorm:"primaryKey"`
	Name       *string    `gorm:"type:varchar(255);uniqueIndex"`
	StartDate  *time.Time `gorm:"type:date"`
	FinishDate *time.Time `gorm:"type:date"`

	ChiefID *uint
	Chief   *User `gorm:"foreignKey:ChiefID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL"`

	GroupID *uint
	Group   *Group `gorm:"foreignKey:GroupID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL"`
}
