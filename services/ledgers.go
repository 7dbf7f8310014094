package services

import (
	"time"

	"github.com/g-vinokurov/interstellarium/internal/models"
	"gorm.io/gorm"
)

// One ledger per relation kind. The generic LedgerService carries the
// algorithm; these constructors bind it to the concrete owner pointer and
// event table.

type ContractChiefLedger = LedgerService[models.Contract, models.ContractChiefAssignment]

func NewContractChiefLedger(db *gorm.DB) ContractChiefLedger {
	return NewLedgerService(db, LedgerConfig[models.Contract, models.ContractChiefAssignment]{
		PeerModel:      &models.User{},
		OwnerColumn:    "contract_id",
		HistoryPreload: "User",
		CurrentPeer:    func(c *models.Contract) *uint { return c.ChiefID },
		SetPeer:        func(c *models.Contract, id *uint) { c.ChiefID = id },
		NewEvent: func(ownerID, peerID uint, date time.Time, assigned bool) *models.ContractChiefAssignment {
			return &models.ContractChiefAssignment{
				ContractID:     ownerID,
				UserID:         peerID,
				AssignmentDate: date,
				IsAssigned:     assigned,
			}
		},
	}).Build()
}

type DepartmentChiefLedger = LedgerService[models.Department, models.DepartmentChiefAssignment]

func NewDepartmentChiefLedger(db *gorm.DB) DepartmentChiefLedger {
	return NewLedgerService(db, LedgerConfig[models.Department, models.DepartmentChiefAssignment]{
		PeerModel:      &models.User{},
		OwnerColumn:    "department_id",
		HistoryPreload: "User",
		CurrentPeer:    func(d *models.Department) *uint { return d.ChiefID },
		SetPeer:        func(d *models.Department, id *uint) { d.ChiefID = id },
		NewEvent: func(ownerID, peerID uint, date time.Time, assigned bool) *models.DepartmentChiefAssignment {
			return &models.DepartmentChiefAssignment{
				DepartmentID:   ownerID,
				UserID:         peerID,
				AssignmentDate: date,
				IsAssigned:     assigned,
			}
		},
	}).Build()
}

type ProjectChiefLedger = LedgerService[models.Project, models.ProjectChiefAssignment]

func NewProjectChiefLedger(db *gorm.DB) ProjectChiefLedger {
	return NewLedgerService(db, LedgerConfig[models.Project, models.ProjectChiefAssignment]{
		PeerModel:      &models.User{},
		OwnerColumn:    "project_id",
		HistoryPreload: "User",
		CurrentPeer:    func(p *models.Project) *uint { return p.ChiefID },
		SetPeer:        func(p *models.Project, id *uint) { p.ChiefID = id },
		NewEvent: func(ownerID, peerID uint, date time.Time, assigned bool) *models.ProjectChiefAssignment {
			return &models.ProjectChiefAssignment{
				ProjectID:      ownerID,
				UserID:         peerID,
				AssignmentDate: date,
				IsAssigned:     assigned,
			}
		},
	}).Build()
}

type UserDepartmentLedger = LedgerService[models.User, models.UserDepartmentAssignment]

func NewUserDepartmentLedger(db *gorm.DB) UserDepartmentLedger {
	return NewLedgerService(db, LedgerConfig[models.User, models.UserDepartmentAssignment]{
		PeerModel:      &models.Department{},
		OwnerColumn:    "user_id",
		HistoryPreload: "Department",
		CurrentPeer:    func(u *models.User) *uint { return u.DepartmentID },
		SetPeer:        func(u *models.User, id *uint) { u.DepartmentID = id },
		NewEvent: func(ownerID, peerID uint, date time.Time, assigned bool) *models.UserDepartmentAssignment {
			return &models.UserDepartmentAssignment{
				UserID:         ownerID,
				DepartmentID:   peerID,
				AssignmentDate: date,
				IsAssigned:     assigned,
			}
		},
	}).Build()
}

type EquipmentDepartmentLedger = LedgerService[models.Equipment, models.EquipmentDepartmentAssignment]

func NewEquipmentDepartmentLedger(db *gorm.DB) EquipmentDepartmentLedger {
	return NewLedgerService(db, LedgerConfig[models.Equipment, models.EquipmentDepartmentAssignment]{
		PeerModel:      &models.Department{},
		OwnerColumn:    "equipment_id",
		HistoryPreload: "Department",
		CurrentPeer:    func(e *models.Equipment) *uint { return e.DepartmentID },
		SetPeer:        func(e *models.Equipment, id *uint) { e.DepartmentID = id },
		NewEvent: func(ownerID, peerID uint, date time.Time, assigned bool) *models.EquipmentDepartmentAssignment {
			return &models.EquipmentDepartmentAssignment{
				EquipmentID:    ownerID,
				DepartmentID:   peerID,
				AssignmentDate: date,
				IsAssigned:     assigned,
			}
		},
	}).Build()
}

type EquipmentGroupLedger = LedgerService[models.Equipment, models.EquipmentGroupAssignment]

func NewEquipmentGroupLedger(db *gorm.DB) EquipmentGroupLedger {
	return NewLedgerService(db, LedgerConfig[models.Equipment, models.EquipmentGroupAssignment]{
		PeerModel:      &models.Group{},
		OwnerColumn:    "equipment_id",
		HistoryPreload: "Group",
		CurrentPeer:    func(e *models.Equipment) *uint { return e.GroupID },
		SetPeer:        func(e *models.Equipment, id *uint) { e.GroupID = id },
		NewEvent: func(ownerID, peerID uint, date time.Time, assigned bool) *models.EquipmentGroupAssignment {
			return &models.EquipmentGroupAssignment{
				EquipmentID:    ownerID,
				GroupID:        peerID,
				AssignmentDate: date,
				IsAssigned:     assigned,
			}
		},
	}).Build()
}

type GroupUserLinks = AssociationService[models.GroupUser]

func NewGroupUserLinks(db *gorm.DB) GroupUserLinks {
	return NewAssociationService(db, AssociationConfig[models.GroupUser]{
		OwnerModel:  &models.Group{},
		PeerModel:   &models.User{},
		OwnerColumn: "group_id",
		PeerColumn:  "user_id",
		NewLink: func(ownerID, peerID uint) *models.GroupUser {
			return &models.GroupUser{GroupID: ownerID, UserID: peerID}
		},
	}).Build()
}

type ContractProjectLinks = AssociationService[models.ContractProject]

func NewContractProjectLinks(db *gorm.DB) ContractProjectLinks {
	return NewAssociationService(db, AssociationConfig[models.ContractProject]{
		OwnerModel:  &models.Contract{},
		PeerModel:   &models.Project{},
		OwnerColumn: "contract_id",
		PeerColumn:  "project_id",
		NewLink: func(ownerID, peerID uint) *models.ContractProject {
			return &models.ContractProject{ContractID: ownerID, ProjectID: peerID}
		},
	}).Build()
}
