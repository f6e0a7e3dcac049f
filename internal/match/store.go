package match

import (
	"context"

	"github.com/DhavalSuthar-24/kickoff/internal/user"
	"github.com/DhavalSuthar-24/kickoff/internal/venue"
	"gorm.io/gorm"
)

// Store groups the repositories a match operation touches, so a multi-step change
// can run against one transaction.
type Store interface {
	Matches() MatchRepository
	Slots() venue.VenueRepository
	Users() user.UserRepository
	WithTransaction(ctx context.Context, txFunc func(Store) error) error
}

type gormStore struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) Store {
	return &gormStore{db: db}
}

func (s *gormStore) Matches() MatchRepository     { return NewGormMatchRepository(s.db) }
func (s *gormStore) Slots() venue.VenueRepository { return venue.NewVenueRepository(s.db) }
func (s *gormStore) Users() user.UserRepository   { return user.NewUserRepository(s.db) }

// WithTransaction runs txFunc in a transaction; any returned error rolls back every step.
func (s *gormStore) WithTransaction(ctx context.Context, txFunc func(Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return txFunc(&gormStore{db: tx})
	})
}
