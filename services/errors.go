package services

import "errors"

var (
	ErrInvalidPassword = errors.New("invalid password")
	ErrTokenInvalid    = errors.New("token is invalid")
	ErrAccessDenied    = errors.New("access denied")

	ErrUserNotFound       = errors.New("user not found")
	ErrUserExists         = errors.New("user exists")
	ErrDepartmentNotFound = errors.New("department not found")
	ErrDepartmentExists   = errors.New("department exists")
	ErrGroupNotFound      = errors.New("group not found")
	ErrGroupExists        = errors.New("group exists")
	ErrContractNotFound   = errors.New("contract not found")
	ErrContractExists     = errors.New("contract exists")
	ErrProjectNotFound    = errors.New("project not found")
	ErrProjectExists      = errors.New("project exists")
	ErrEquipmentNotFound  = errors.New("equipment not found")
	ErrEquipmentExists    = errors.New("equipment exists")
	ErrWorkNotFound       = errors.New("work not found")

	// Ledger and association errors. ErrOwnerNotFound covers the entity
	// holding the pointer, ErrPeerNotFound an explicitly supplied peer id
	// that does not resolve.
	ErrOwnerNotFound = errors.New("owner not found")
	ErrPeerNotFound  = errors.New("peer not found")
	ErrAlreadyLinked = errors.New("already linked")
	ErrLinkNotFound  = errors.New("link not found")

	ErrInvalidDateRange = errors.New("start date cannot be greater than finish date")
)
