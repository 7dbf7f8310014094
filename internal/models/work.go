package models

type Work struct {
	ID   uint    `gorm:"primaryKey"`
	Name *string `gorm:"type:varchar(255)"`
	Cost float64 `gorm:"not null;default:0"`

	ContractID *uint
	Contract   *Contract `gorm:"foreignKey:ContractID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL"`

	ProjectID *uint
	Project   *Project `gorm:"foreignKey:ProjectID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL"`
}

func (Work) TableName() string {
	return "works"
}
