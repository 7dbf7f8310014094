package models

import (
	"time"
)

// Assignment event rows are an append-only log: one row per change of the
// owner's current-peer pointer. is_assigned=true records a peer becoming
// current, is_assigned=false records it ceasing to be. Rows are never
// updated or deleted.

type ContractChiefAssignment struct {
	ID             uint      `gorm:"primaryKey"`
	ContractID     uint      `gorm:"not null;index"`
	UserID         uint      `gorm:"not null"`
	AssignmentDate time.Time `gorm:"type:date;not null"`
	IsAssigned     bool      `gorm:"not null"`

	User *User `gorm:"foreignKey:UserID"`
}

type DepartmentChiefAssignment struct {
	ID             uint      `gorm:"primaryKey"`
	DepartmentID   uint      `gorm:"not null;index"`
	UserID         uint      `gorm:"not null"`
	AssignmentDate time.Time `gorm:"type:date;not null"`
	IsAssigned     bool      `gorm:"not null"`

	User *User `gorm:"foreignKey:UserID"`
}

type ProjectChiefAssignment struct {
	ID             uint      `gorm:"primaryKey"`
	ProjectID      uint      `gorm:"not null;index"`
	UserID         uint      `gorm:"not null"`
	AssignmentDate time.Time `gorm:"type:date;not null"`
	IsAssigned     bool      `gorm:"not null"`

	User *User `gorm:"foreignKey:UserID"`
}

type UserDepartmentAssignment struct {
	ID             uint      `gorm:"primaryKey"`
	UserID         uint      `gorm:"not null;index"`
	DepartmentID   uint      `gorm:"not null"`
	AssignmentDate time.Time `gorm:"type:date;not null"`
	IsAssigned     bool      `gorm:"not null"`

	Department *Department `gorm:"foreignKey:DepartmentID"`
}

type EquipmentDepartmentAssignment struct {
	ID             uint      `gorm:"primaryKey"`
	EquipmentID    uint      `gorm:"not null;index"`
	DepartmentID   uint      `gorm:"not null"`
	AssignmentDate time.Time `gorm:"type:date;not null"`
	IsAssigned     bool      `gorm:"not null"`

	Department *Department `gorm:"foreignKey:DepartmentID"`
}

type EquipmentGroupAssignment struct {
	ID             uint      `gorm:"primaryKey"`
	EquipmentID    uint      `gorm:"not null;index"`
	GroupID        uint      `gorm:"not null"`
	AssignmentDate time.Time `gorm:"type:date;not null"`
	IsAssigned     bool      `gorm:"not null"`

	Group *Group `gorm:"foreignKey:GroupID"`
}
