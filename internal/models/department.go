package models

type Department struct {
	ID   uint    `gorm:"primaryKey"`
	Name *string `gorm:"type:varchar(255);uniqueIndex"`

	ChiefID *uint
	Chief   *User `gorm:"foreignKey:ChiefID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL"`
}
