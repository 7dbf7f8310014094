package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// LedgerService maintains one relation kind: a nullable current-peer pointer
// on the owner plus an append-only log of assignment events. O is the owner
// model, E the event model for this relation kind.
type LedgerService[O any, E any] interface {
	// Reassign points the owner at a new peer (or clears the pointer when
	// peerID is nil) and records the change in the event log. The whole
	// operation runs in one transaction: a failure midway leaves no partial
	// audit trail. Within the transaction the unassignment of the old peer
	// is written before the assignment of the new one, so event ids keep
	// the unassign-before-assign order.
	Reassign(ctx context.Context, ownerID uint, peerID *uint) (*O, error)

	// History returns every event for the owner in ascending id order,
	// which is creation order.
	History(ctx context.Context, ownerID uint) ([]E, error)
}

// LedgerConfig binds a LedgerService to a concrete relation kind.
type LedgerConfig[O any, E any] struct {
	// PeerModel is a pointer to the zero value of the peer model, used for
	// existence checks, e.g. &models.User{}.
	PeerModel any

	// OwnerColumn is the event table column referencing the owner,
	// e.g. "contract_id".
	OwnerColumn string

	// HistoryPreload names the peer association to load on history rows,
	// e.g. "User". Empty means no preload.
	HistoryPreload string

	CurrentPeer func(owner *O) *uint
	SetPeer     func(owner *O, peerID *uint)
	NewEvent    func(ownerID, peerID uint, date time.Time, assigned bool) *E
}

type ledgerService[O any, E any] struct {
	db  *gorm.DB
	cfg LedgerConfig[O, E]
}

type ledgerServiceBuilder[O any, E any] struct {
	db  *gorm.DB
	cfg LedgerConfig[O, E]
}

func NewLedgerService[O any, E any](db *gorm.DB, cfg LedgerConfig[O, E]) *ledgerServiceBuilder[O, E] {
	return &ledgerServiceBuilder[O, E]{db: db, cfg: cfg}
}

func (b *ledgerServiceBuilder[O, E]) Build() LedgerService[O, E] {
	return &ledgerService[O, E]{db: b.db, cfg: b.cfg}
}

func (s *ledgerService[O, E]) Reassign(ctx context.Context, ownerID uint, peerID *uint) (*O, error) {
	var owner O

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&owner, ownerID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrOwnerNotFound
			}
			return fmt.Errorf("find owner: %w", err)
		}

		today := Today()

		if current := s.cfg.CurrentPeer(&owner); current != nil {
			event := s.cfg.NewEvent(ownerID, *current, today, false)
			if err := tx.Create(event).Error; err != nil {
				return fmt.Errorf("record unassignment: %w", err)
			}
		}

		if peerID != nil {
			var count int64
			if err := tx.Model(s.cfg.PeerModel).Where("id = ?", *peerID).Count(&count).Error; err != nil {
				return fmt.Errorf("find peer: %w", err)
			}
			if count == 0 {
				return ErrPeerNotFound
			}

			event := s.cfg.NewEvent(ownerID, *peerID, today, true)
			if err := tx.Create(event).Error; err != nil {
				return fmt.Errorf("record assignment: %w", err)
			}
		}

		s.cfg.SetPeer(&owner, peerID)
		if err := tx.Omit(clause.Associations).Save(&owner).Error; err != nil {
			return fmt.Errorf("update owner: %w", err)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	return &owner, nil
}

func (s *ledgerService[O, E]) History(ctx context.Context, ownerID uint) ([]E, error) {
	var owner O
	if err := s.db.WithContext(ctx).First(&owner, ownerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOwnerNotFound
		}
		return nil, fmt.Errorf("find owner: %w", err)
	}

	query := s.db.WithContext(ctx).
		Where(s.cfg.OwnerColumn+" = ?", ownerID).
		Order("id ASC")
	if s.cfg.HistoryPreload != "" {
		query = query.Preload(s.cfg.HistoryPreload)
	}

	var events []E
	if err := query.Find(&events).Error; err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}

	return events, nil
}

// Today is the assignment date stamped on new events: a calendar date in
// UTC, no time of day.
func Today() time.Time {
	return time.Now().UTC().Truncate(24 * time.Hour)
}
