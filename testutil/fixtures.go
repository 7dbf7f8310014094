package testutil

import (
	"github.com/g-vinokurov/interstellarium/internal/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func CreateTestUser(db *gorm.DB, email, password string, isAdmin, isSuperuser bool) (*models.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	name := email
	user := &models.User{
		Email:        email,
		PasswordHash: string(hash),
		Name:         &name,
		IsAdmin:      isAdmin,
		IsSuperuser:  isSuperuser,
	}

	if err := db.Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

func CreateTestDepartment(db *gorm.DB, name string) (*models.Department, error) {
	department := &models.Department{Name: &name}
	if err := db.Create(department).Error; err != nil {
		return nil, err
	}
	return department, nil
}

func CreateTestGroup(db *gorm.DB, name string) (*models.Group, error) {
	group := &models.Group{Name: &name}
	if err := db.Create(group).Error; err != nil {
		return nil, err
	}
	return group, nil
}

func CreateTestContract(db *gorm.DB, name string) (*models.Contract, error) {
	contract := &models.Contract{Name: &name}
	if err := db.Create(contract).Error; err != nil {
		return nil, err
	}
	return contract, nil
}

func CreateTestProject(db *gorm.DB, name string) (*models.Project, error) {
	project := &models.Project{Name: &name}
	if err := db.Create(project).Error; err != nil {
		return nil, err
	}
	return project, nil
}

func CreateTestEquipment(db *gorm.DB, name string) (*models.Equipment, error) {
	item := &models.Equipment{Name: &name}
	if err := db.Create(item).Error; err != nil {
		return nil, err
	}
	return item, nil
}

func CreateTestWork(db *gorm.DB, name string, cost float64) (*models.Work, error) {
	work := &models.Work{Name: &name, Cost: cost}
	if err := db.Create(work).Error; err != nil {
		return nil, err
	}
	return work, nil
}
