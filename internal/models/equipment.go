package models

type Equipment struct {
	ID   uint    `gorm:"primaryKey"`
	Name *string `gorm:"type:varchar(255);uniqueIndex"`

	DepartmentID *uint
	Department   *Department `gorm:"foreignKey:DepartmentID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL"`

	GroupID *uint
	Group   *Group `gorm:"foreignKey:GroupID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL"`
}

func (Equipment) TableName() string {
	return "equipment"
}
