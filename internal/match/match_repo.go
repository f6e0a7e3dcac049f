package match

import (
	"context"
	"errors"

	"github.com/DhavalSuthar-24/kickoff/internal/common"
	"github.com/DhavalSuthar-24/kickoff/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// MatchRepository defines methods to interact with match and roster data
type MatchRepository interface {
	// Match methods
	CreateMatch(ctx context.Context, match *Match) error
	GetMatchByID(ctx context.Context, id uint) (*Match, error)
	GetMatchForUpdate(ctx context.Context, id uint) (*Match, error)
	GetMatchDetail(ctx context.Context, id uint) (*Match, error)
	GetMatchIDByInviteCode(ctx context.Context, code string) (uint, error)
	InviteCodeExists(ctx context.Context, code string) (bool, error)
	SlotBound(ctx context.Context, slotID uint) (bool, error)
	ListActivePublic(ctx context.Context, page, pageSize int) ([]Match, int64, error)
	UpdateMatchStatus(ctx context.Context, id uint, from, to MatchStatus) (bool, error)
	ClearMatchSlot(ctx context.Context, id uint) error

	// Roster methods
	GetPlayer(ctx context.Context, matchID, userID uint) (*MatchPlayer, error)
	AddPlayer(ctx context.Context, player *MatchPlayer) error
	DeletePlayer(ctx context.Context, id uint) error
	CountPlayers(ctx context.Context, matchID uint, status PlayerStatus) (int64, error)
	RosterCounts(ctx context.Context, matchIDs []uint) (map[uint]map[PlayerStatus]int, error)
	MatchIDsForPlayers(ctx context.Context, userIDs []uint) ([]uint, error)
	NextWaitlisted(ctx context.Context, matchID uint) (*MatchPlayer, error)
	UpdatePlayerStatus(ctx context.Context, matchID, userID uint, from, to PlayerStatus) (bool, error)
}

// errDuplicateMatch reports that a new match collided with a unique index, either the
// slot binding or the invite code. Postgres aborts the transaction on the violation, so
// the caller tells the two apart after rolling back.
var errDuplicateMatch = errors.New("match conflicts with an existing match")

// GormMatchRepository implements MatchRepository using GORM
type GormMatchRepository struct {
	db *gorm.DB
}

// NewGormMatchRepository creates a new GormMatchRepository. db may be an open transaction.
func NewGormMatchRepository(db *gorm.DB) *GormMatchRepository {
	return &GormMatchRepository{db: db}
}

func (r *GormMatchRepository) CreateMatch(ctx context.Context, match *Match) error {
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(match).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errDuplicateMatch
		}
		return err
	}
	return nil
}

func (r *GormMatchRepository) GetMatchByID(ctx context.Context, id uint) (*Match, error) {
	var match Match
	if err := r.db.WithContext(ctx).First(&match, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.ErrMatchNotFound
		}
		return nil, err
	}
	return &match, nil
}

// GetMatchForUpdate reads the match holding a row lock, serializing roster and
// lifecycle changes on it until the surrounding transaction ends.
func (r *GormMatchRepository) GetMatchForUpdate(ctx context.Context, id uint) (*Match, error) {
	var match Match
	if err := r.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}).First(&match, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.ErrMatchNotFound
		}
		return nil, err
	}
	return &match, nil
}

// GetMatchDetail loads the match with captain, field, slot and roster users.
func (r *GormMatchRepository) GetMatchDetail(ctx context.Context, id uint) (*Match, error) {
	var match Match
	err := r.db.WithContext(ctx).
		Preload("Captain").
		Preload("Field").
		Preload("Slot").
		Preload("Players", func(db *gorm.DB) *gorm.DB {
			return db.Order("joined_at asc, id asc")
		}).
		Preload("Players.User").
		First(&match, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.ErrMatchNotFound
		}
		return nil, err
	}
	return &match, nil
}

func (r *GormMatchRepository) GetMatchIDByInviteCode(ctx context.Context, code string) (uint, error) {
	var match Match
	if err := r.db.WithContext(ctx).Select("id").Where("invite_code = ?", code).First(&match).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, common.ErrMatchNotFound
		}
		return 0, err
	}
	return match.ID, nil
}

func (r *GormMatchRepository) InviteCodeExists(ctx context.Context, code string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Unscoped().Model(&Match{}).Where("invite_code = ?", code).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// SlotBound reports whether any match, deleted ones included, holds slotID.
func (r *GormMatchRepository) SlotBound(ctx context.Context, slotID uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Unscoped().Model(&Match{}).Where("slot_id = ?", slotID).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// ListActivePublic lists active, non-private matches, soonest first.
func (r *GormMatchRepository) ListActivePublic(ctx context.Context, page, pageSize int) ([]Match, int64, error) {
	var matches []Match
	var total int64

	offset, limit := models.Page(page, pageSize)
	query := r.db.WithContext(ctx).Model(&Match{}).
		Where("status = ? AND is_private = ?", StatusActive, false)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := query.Preload("Captain").Preload("Field").Preload("Slot").
		Order("starts_at asc, id asc").
		Offset(offset).Limit(limit).
		Find(&matches).Error
	if err != nil {
		return nil, 0, err
	}
	return matches, total, nil
}

// UpdateMatchStatus moves the match from one status to another, reporting whether it was in from.
func (r *GormMatchRepository) UpdateMatchStatus(ctx context.Context, id uint, from, to MatchStatus) (bool, error) {
	res := r.db.WithContext(ctx).Model(&Match{}).
		Where("id = ? AND status = ?", id, from).
		Update("status", to)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

func (r *GormMatchRepository) ClearMatchSlot(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Model(&Match{}).Where("id = ?", id).Update("slot_id", nil).Error
}

// GetPlayer returns the roster entry, or nil if the user is not on the roster.
func (r *GormMatchRepository) GetPlayer(ctx context.Context, matchID, userID uint) (*MatchPlayer, error) {
	var player MatchPlayer
	err := r.db.WithContext(ctx).Where("match_id = ? AND user_id = ?", matchID, userID).First(&player).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &player, nil
}

func (r *GormMatchRepository) AddPlayer(ctx context.Context, player *MatchPlayer) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(player).Error
}

func (r *GormMatchRepository) DeletePlayer(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&MatchPlayer{}, id).Error
}

func (r *GormMatchRepository) CountPlayers(ctx context.Context, matchID uint, status PlayerStatus) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&MatchPlayer{}).
		Where("match_id = ? AND status = ?", matchID, status).
		Count(&count).Error
	return count, err
}

// RosterCounts returns per-status entry counts for each match.
// MatchIDsForPlayers lists the matches whose roster holds any of userIDs.
func (r *GormMatchRepository) MatchIDsForPlayers(ctx context.Context, userIDs []uint) ([]uint, error) {
	var ids []uint
	if len(userIDs) == 0 {
		return ids, nil
	}
	err := r.db.WithContext(ctx).Model(&MatchPlayer{}).
		Distinct("match_id").
		Where("user_id IN ?", userIDs).
		Pluck("match_id", &ids).Error
	return ids, err
}

func (r *GormMatchRepository) RosterCounts(ctx context.Context, matchIDs []uint) (map[uint]map[PlayerStatus]int, error) {
	counts := make(map[uint]map[PlayerStatus]int, len(matchIDs))
	if len(matchIDs) == 0 {
		return counts, nil
	}

	var rows []struct {
		MatchID uint
		Status  PlayerStatus
		N       int
	}
	err := r.db.WithContext(ctx).Model(&MatchPlayer{}).
		Select("match_id, status, count(*) as n").
		Where("match_id IN ?", matchIDs).
		Group("match_id, status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		if counts[row.MatchID] == nil {
			counts[row.MatchID] = make(map[PlayerStatus]int)
		}
		counts[row.MatchID][row.Status] = row.N
	}
	return counts, nil
}

// NextWaitlisted returns the earliest-joined waitlist entry, or nil when the waitlist is empty.
func (r *GormMatchRepository) NextWaitlisted(ctx context.Context, matchID uint) (*MatchPlayer, error) {
	var player MatchPlayer
	err := r.db.WithContext(ctx).
		Where("match_id = ? AND status = ?", matchID, PlayerWaitlist).
		Order("joined_at asc, id asc").
		First(&player).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &player, nil
}

// UpdatePlayerStatus changes a roster entry's status only if it is currently from.
func (r *GormMatchRepository) UpdatePlayerStatus(ctx context.Context, matchID, userID uint, from, to PlayerStatus) (bool, error) {
	res := r.db.WithContext(ctx).Model(&MatchPlayer{}).
		Where("match_id = ? AND user_id = ? AND status = ?", matchID, userID, from).
		Update("status", to)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}
