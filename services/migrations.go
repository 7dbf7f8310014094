package services

import (
	"github.com/g-vinokurov/interstellarium/internal/models"
	"gorm.io/gorm"
)

func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Department{},
		&models.Group{},
		&models.Contract{},
		&models.Project{},
		&models.Equipment{},
		&models.Work{},
		&models.GroupUser{},
		&models.ContractProject{},
		&models.ContractChiefAssignment{},
		&models.DepartmentChiefAssignment{},
		&models.ProjectChiefAssignment{},
		&models.UserDepartmentAssignment{},
		&models.EquipmentDepartmentAssignment{},
		&models.EquipmentGroupAssignment{},
	)
}
