package services

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

type PasswordService interface {
	HashPassword(password string) (string, error)
	VerifyPassword(hash, password string) error
}

type passwordService struct {
	cost int
}

type passwordServiceBuilder struct {
	cost int
}

func NewPasswordService() *passwordServiceBuilder {
	return &passwordServiceBuilder{cost: bcrypt.DefaultCost}
}

func (b *passwordServiceBuilder) WithCost(cost int) *passwordServiceBuilder {
	b.cost = cost
	return b
}

func (b *passwordServiceBuilder) Build() PasswordService {
	return &passwordService{cost: b.cost}
}

func (s *passwordService) HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

func (s *passwordService) VerifyPassword(hash, password string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		return ErrInvalidPassword
	}
	return nil
}
