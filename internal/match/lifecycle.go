package match

import (
	"context"
	"errors"
	"fmt"

	"github.com/DhavalSuthar-24/kickoff/internal/common"
	"github.com/DhavalSuthar-24/kickoff/internal/metrics"
	"github.com/DhavalSuthar-24/kickoff/internal/venue"
	"go.uber.org/zap"
)

const maxInviteCodeAttempts = 5

// Create books the slot, creates the match bound to it and seats the captain, all in
// one transaction. A failed reservation leaves no match behind.
func (s *Service) Create(ctx context.Context, captainID uint, input CreateMatchInput) (*Match, error) {
	maxPlayers := DefaultMaxPlayers
	if input.MaxPlayers != nil {
		maxPlayers = *input.MaxPlayers
	}
	if maxPlayers < 1 {
		return nil, common.ErrInvalidCapacity
	}
	waitlist := true
	if input.WaitlistEnabled != nil {
		waitlist = *input.WaitlistEnabled
	}

	var created *Match
	for attempt := 1; ; attempt++ {
		code, err := s.newInviteCode(ctx)
		if err != nil {
			return nil, err
		}
		created, err = s.create(ctx, captainID, input, code, maxPlayers, waitlist)
		if err == nil {
			break
		}
		if !errors.Is(err, errDuplicateMatch) {
			return nil, err
		}

		bound, lookupErr := s.store.Matches().SlotBound(ctx, input.SlotID)
		if lookupErr != nil {
			return nil, lookupErr
		}
		if bound {
			return nil, common.ErrSlotNotAvailable
		}
		if attempt == maxInviteCodeAttempts {
			return nil, fmt.Errorf("invite code kept colliding after %d attempts: %w", attempt, err)
		}
		s.logger.Warn("invite code collided, retrying", zap.String("invite_code", code), zap.Int("attempt", attempt))
	}

	metrics.RosterJoins.WithLabelValues(string(PlayerConfirmed)).Inc()
	s.logger.Info("match created",
		zap.Uint("match_id", created.ID),
		zap.Uint("slot_id", input.SlotID),
		zap.Uint("captain_id", captainID))
	return created, nil
}

// create runs the booking transaction for one invite code.
func (s *Service) create(ctx context.Context, captainID uint, input CreateMatchInput, code string, maxPlayers int, waitlist bool) (*Match, error) {
	var created *Match
	err := s.store.WithTransaction(ctx, func(tx Store) error {
		ok, err := tx.Users().Exists(ctx, captainID)
		if err != nil {
			return err
		}
		if !ok {
			return common.ErrUserNotFound
		}

		slot, err := tx.Slots().GetSlotForUpdate(ctx, input.SlotID)
		if err != nil {
			return err
		}
		if slot.Status != venue.SlotAvailable {
			return common.ErrSlotNotAvailable
		}

		fieldID := slot.FieldID
		slotID := slot.ID
		match := &Match{
			Title:           input.Title,
			FieldID:         &fieldID,
			CaptainID:       captainID,
			StartsAt:        slot.StartTime,
			MaxPlayers:      maxPlayers,
			Status:          StatusActive,
			IsPrivate:       input.IsPrivate,
			WaitlistEnabled: waitlist,
			SlotID:          &slotID,
			InviteCode:      code,
		}
		if err := tx.Matches().CreateMatch(ctx, match); err != nil {
			return err
		}
		if _, err := tx.Slots().ReserveSlot(ctx, slot.ID, match.ID); err != nil {
			return err
		}
		captain := &MatchPlayer{
			MatchID:  match.ID,
			UserID:   captainID,
			Status:   PlayerConfirmed,
			JoinedAt: s.now(),
		}
		if err := tx.Matches().AddPlayer(ctx, captain); err != nil {
			return err
		}
		created = match
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// Transition moves an active match to completed or cancelled. Only the captain may do
// so. Cancelling releases the booked slot in the same transaction; completing keeps it.
func (s *Service) Transition(ctx context.Context, matchID, actingUserID uint, to MatchStatus) (*Match, error) {
	if to != StatusCompleted && to != StatusCancelled {
		return nil, common.ErrInvalidTransition
	}

	var result *Match
	err := s.store.WithTransaction(ctx, func(tx Store) error {
		match, err := tx.Matches().GetMatchForUpdate(ctx, matchID)
		if err != nil {
			return err
		}
		if match.CaptainID != actingUserID {
			return common.ErrForbidden
		}
		if match.Status != StatusActive {
			return common.ErrInvalidTransition
		}

		moved, err := tx.Matches().UpdateMatchStatus(ctx, matchID, StatusActive, to)
		if err != nil {
			return err
		}
		if !moved {
			return common.ErrInvalidTransition
		}

		if to == StatusCancelled && match.SlotID != nil {
			if err := tx.Slots().ReleaseSlot(ctx, *match.SlotID); err != nil {
				return fmt.Errorf("release slot %d: %w", *match.SlotID, err)
			}
			if err := tx.Matches().ClearMatchSlot(ctx, matchID); err != nil {
				return err
			}
		}

		result, err = tx.Matches().GetMatchByID(ctx, matchID)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.Invalidate(ctx, matchID)
	metrics.MatchTransitions.WithLabelValues(string(to)).Inc()
	s.logger.Info("match status changed", zap.Uint("match_id", matchID), zap.String("status", string(to)))
	return result, nil
}

func (s *Service) Complete(ctx context.Context, matchID, actingUserID uint) (*Match, error) {
	return s.Transition(ctx, matchID, actingUserID, StatusCompleted)
}

func (s *Service) Cancel(ctx context.Context, matchID, actingUserID uint) (*Match, error) {
	return s.Transition(ctx, matchID, actingUserID, StatusCancelled)
}

func (s *Service) newInviteCode(ctx context.Context) (string, error) {
	for i := 0; i < maxInviteCodeAttempts; i++ {
		code, err := s.newCode()
		if err != nil {
			return "", err
		}
		taken, err := s.store.Matches().InviteCodeExists(ctx, code)
		if err != nil {
			return "", err
		}
		if !taken {
			return code, nil
		}
	}
	return "", fmt.Errorf("could not generate a unique invite code after %d attempts", maxInviteCodeAttempts)
}
