package match

import (
	"context"

	"github.com/DhavalSuthar-24/kickoff/internal/common"
	"github.com/DhavalSuthar-24/kickoff/internal/metrics"
	"go.uber.org/zap"
)

// Join seats the user as confirmed while there is room, otherwise on the waitlist.
// The capacity count and insert run under the match row lock. A user already on the
// roster gets their current state back unchanged.
func (s *Service) Join(ctx context.Context, matchID, userID uint) (*RosterResult, error) {
	var result *RosterResult
	err := s.store.WithTransaction(ctx, func(tx Store) error {
		match, err := tx.Matches().GetMatchForUpdate(ctx, matchID)
		if err != nil {
			return err
		}

		existing, err := tx.Matches().GetPlayer(ctx, matchID, userID)
		if err != nil {
			return err
		}
		if existing != nil {
			result = &RosterResult{MatchID: matchID, SeatedAs: existing.Status, AlreadyMember: true}
			return nil
		}
		if match.Status != StatusActive {
			return common.ErrMatchNotActive
		}

		confirmed, err := tx.Matches().CountPlayers(ctx, matchID, PlayerConfirmed)
		if err != nil {
			return err
		}
		seat := PlayerConfirmed
		if confirmed >= int64(match.MaxPlayers) {
			if !match.WaitlistEnabled {
				return common.ErrWaitlistClosed
			}
			seat = PlayerWaitlist
		}

		player := &MatchPlayer{MatchID: matchID, UserID: userID, Status: seat, JoinedAt: s.now()}
		if err := tx.Matches().AddPlayer(ctx, player); err != nil {
			return err
		}
		result = &RosterResult{MatchID: matchID, SeatedAs: seat}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if !result.AlreadyMember {
		s.Invalidate(ctx, matchID)
		metrics.RosterJoins.WithLabelValues(string(result.SeatedAs)).Inc()
		s.logger.Info("player seated",
			zap.Uint("match_id", matchID),
			zap.Uint("user_id", userID),
			zap.String("seat", string(result.SeatedAs)))
	}
	return result, nil
}

// Leave removes the user from the roster. When a confirmed player leaves a match with
// a waitlist, the earliest waitlisted entry is promoted in the same transaction.
// Leaving a match the user is not on succeeds without changes.
func (s *Service) Leave(ctx context.Context, matchID, userID uint) (*Match, error) {
	var (
		result   *Match
		removed  bool
		promoted uint
	)
	err := s.store.WithTransaction(ctx, func(tx Store) error {
		match, err := tx.Matches().GetMatchForUpdate(ctx, matchID)
		if err != nil {
			return err
		}
		result = match
		if match.CaptainID == userID {
			return common.ErrCaptainCannotLeave
		}
		if match.Status != StatusActive {
			return common.ErrMatchNotActive
		}

		player, err := tx.Matches().GetPlayer(ctx, matchID, userID)
		if err != nil {
			return err
		}
		if player == nil {
			return nil
		}
		if err := tx.Matches().DeletePlayer(ctx, player.ID); err != nil {
			return err
		}
		removed = true

		if player.Status != PlayerConfirmed || !match.WaitlistEnabled {
			return nil
		}
		next, err := tx.Matches().NextWaitlisted(ctx, matchID)
		if err != nil || next == nil {
			return err
		}
		ok, err := tx.Matches().UpdatePlayerStatus(ctx, matchID, next.UserID, PlayerWaitlist, PlayerConfirmed)
		if err != nil {
			return err
		}
		if ok {
			promoted = next.UserID
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if removed {
		s.Invalidate(ctx, matchID)
		s.logger.Info("player removed", zap.Uint("match_id", matchID), zap.Uint("user_id", userID))
	}
	if promoted != 0 {
		metrics.WaitlistPromotions.Inc()
		s.logger.Info("waitlisted player promoted", zap.Uint("match_id", matchID), zap.Uint("user_id", promoted))
	}
	return result, nil
}

// MarkNoShow flags a confirmed player of a completed match as a no-show and counts it
// on their profile. It reports false when nothing changed: the player is already
// flagged, waitlisted, or not on the roster.
func (s *Service) MarkNoShow(ctx context.Context, matchID, userID uint) (bool, error) {
	var flagged bool
	err := s.store.WithTransaction(ctx, func(tx Store) error {
		match, err := tx.Matches().GetMatchForUpdate(ctx, matchID)
		if err != nil {
			return err
		}
		if match.Status != StatusCompleted {
			return common.ErrMatchNotCompleted
		}

		flagged, err = tx.Matches().UpdatePlayerStatus(ctx, matchID, userID, PlayerConfirmed, PlayerNoShow)
		if err != nil || !flagged {
			return err
		}
		return tx.Users().IncrementNoShow(ctx, userID)
	})
	if err != nil {
		return false, err
	}

	if flagged {
		s.Invalidate(ctx, matchID)
		metrics.NoShowsApplied.Inc()
		s.logger.Info("no-show flagged", zap.Uint("match_id", matchID), zap.Uint("user_id", userID))
	}
	return flagged, nil
}
