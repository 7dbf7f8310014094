package models

// Plain many-to-many links. A row's existence is the only state: no
// "current" pointer, no history. Composite primary keys make duplicate
// pairs impossible at the store level.

type GroupUser struct {
	GroupID uint `gorm:"primaryKey"`
	UserID  uint `gorm:"primaryKey"`

	Group Group `gorm:"foreignKey:GroupID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	User  User  `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

type ContractProject struct {
	ContractID uint `gorm:"primaryKey"`
	ProjectID  uint `gorm:"primaryKey"`

	Contract Contract `gorm:"foreignKey:ContractID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	Project  Project  `gorm:"foreignKey:ProjectID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}
