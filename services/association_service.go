package services

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// AssociationService manages a plain many-to-many link table. Unlike the
// assignment ledger there is no current pointer and no history: a row's
// existence is the only state.
type AssociationService[L any] interface {
	// Link inserts the (owner, peer) pair. A pair that already exists is
	// rejected with ErrAlreadyLinked, not silently merged.
	Link(ctx context.Context, ownerID, peerID uint) error

	// Unlink removes the pair; ErrLinkNotFound if it was never linked.
	Unlink(ctx context.Context, ownerID, peerID uint) error
}

type AssociationConfig[L any] struct {
	OwnerModel any
	PeerModel  any

	OwnerColumn string
	PeerColumn  string

	NewLink func(ownerID, peerID uint) *L
}

type associationService[L any] struct {
	db  *gorm.DB
	cfg AssociationConfig[L]
}

type associationServiceBuilder[L any] struct {
	db  *gorm.DB
	cfg AssociationConfig[L]
}

func NewAssociationService[L any](db *gorm.DB, cfg AssociationConfig[L]) *associationServiceBuilder[L] {
	return &associationServiceBuilder[L]{db: db, cfg: cfg}
}

func (b *associationServiceBuilder[L]) Build() AssociationService[L] {
	return &associationService[L]{db: b.db, cfg: b.cfg}
}

func (s *associationService[L]) Link(ctx context.Context, ownerID, peerID uint) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(s.cfg.OwnerModel).Where("id = ?", ownerID).Count(&count).Error; err != nil {
			return fmt.Errorf("find owner: %w", err)
		}
		if count == 0 {
			return ErrOwnerNotFound
		}

		if err := tx.Model(s.cfg.PeerModel).Where("id = ?", peerID).Count(&count).Error; err != nil {
			return fmt.Errorf("find peer: %w", err)
		}
		if count == 0 {
			return ErrPeerNotFound
		}

		var zero L
		if err := tx.Model(&zero).
			Where(s.cfg.OwnerColumn+" = ? AND "+s.cfg.PeerColumn+" = ?", ownerID, peerID).
			Count(&count).Error; err != nil {
			return fmt.Errorf("find link: %w", err)
		}
		if count > 0 {
			return ErrAlreadyLinked
		}

		if err := tx.Omit(clause.Associations).Create(s.cfg.NewLink(ownerID, peerID)).Error; err != nil {
			return fmt.Errorf("create link: %w", err)
		}

		return nil
	})
}

func (s *associationService[L]) Unlink(ctx context.Context, ownerID, peerID uint) error {
	var zero L
	result := s.db.WithContext(ctx).
		Where(s.cfg.OwnerColumn+" = ? AND "+s.cfg.PeerColumn+" = ?", ownerID, peerID).
		Delete(&zero)

	if result.Error != nil {
		return fmt.Errorf("delete link: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrLinkNotFound
	}

	return nil
}
