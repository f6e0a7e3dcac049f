package review

import (
	"context"
	"errors"
	"fmt"

	"github.com/DhavalSuthar-24/kickoff/internal/common"
	"github.com/DhavalSuthar-24/kickoff/internal/match"
	"github.com/DhavalSuthar-24/kickoff/internal/metrics"
	"go.uber.org/zap"
)

// MatchReader is the match lookup settlement needs.
type MatchReader interface {
	GetMatchByID(ctx context.Context, id uint) (*match.Match, error)
}

// NoShowMarker flags no-shows and drops stale match views. *match.Service implements it.
type NoShowMarker interface {
	MarkNoShow(ctx context.Context, matchID, userID uint) (bool, error)
	Invalidate(ctx context.Context, matchID uint)
	InvalidatePlayers(ctx context.Context, userIDs []uint)
}

// Settler applies a captain's post-match reviews and no-show flags.
type Settler struct {
	reviews ReviewRepository
	matches MatchReader
	noShows NoShowMarker
	logger  *zap.Logger
}

func NewSettler(reviews ReviewRepository, matches MatchReader, noShows NoShowMarker, logger *zap.Logger) *Settler {
	return &Settler{reviews: reviews, matches: matches, noShows: noShows, logger: logger}
}

// Settle records the batch for a completed match. Each review is stored and rated in
// its own transaction and skipped if it was recorded before, so a resubmitted or
// partially applied batch only applies what is missing. A review of an unknown user is
// stored without touching any aggregate. Any other failing item stops the batch;
// everything before it stays applied.
func (s *Settler) Settle(ctx context.Context, matchID, reviewerID uint, batch Batch) (*SettlementResult, error) {
	m, err := s.matches.GetMatchByID(ctx, matchID)
	if err != nil {
		return nil, err
	}
	if m.CaptainID != reviewerID {
		return nil, common.ErrForbidden
	}
	if m.Status != match.StatusCompleted {
		return nil, common.ErrMatchNotCompleted
	}
	for _, e := range batch.Reviews {
		if _, err := e.Category.column(); err != nil {
			return nil, err
		}
		if e.Rating < MinRating || e.Rating > MaxRating {
			return nil, common.ErrInvalidRating
		}
	}

	result := &SettlementResult{MatchID: matchID}
	var rated []uint
	defer func() {
		s.noShows.Invalidate(ctx, matchID)
		s.noShows.InvalidatePlayers(ctx, rated)
	}()

	for _, e := range batch.Reviews {
		outcome, err := s.applyReview(ctx, matchID, reviewerID, e)
		if err != nil {
			return result, fmt.Errorf("review of user %d (%s): %w", e.SubjectID, e.Category, err)
		}
		switch outcome {
		case reviewApplied:
			result.ReviewsApplied++
			rated = append(rated, e.SubjectID)
		case reviewUnrated:
			result.ReviewsUnrated++
		default:
			result.ReviewsSkipped++
		}
		metrics.ReviewsProcessed.WithLabelValues(string(outcome)).Inc()
	}

	for _, subjectID := range batch.NoShows {
		flagged, err := s.noShows.MarkNoShow(ctx, matchID, subjectID)
		if err != nil {
			return result, fmt.Errorf("no-show of user %d: %w", subjectID, err)
		}
		if flagged {
			result.NoShowsApplied++
		} else {
			result.NoShowsSkipped++
		}
	}

	s.logger.Info("match settled",
		zap.Uint("match_id", matchID),
		zap.Int("reviews_applied", result.ReviewsApplied),
		zap.Int("reviews_skipped", result.ReviewsSkipped),
		zap.Int("no_shows_applied", result.NoShowsApplied))
	return result, nil
}

type reviewOutcome string

const (
	reviewApplied reviewOutcome = "applied"
	reviewSkipped reviewOutcome = "skipped"
	reviewUnrated reviewOutcome = "unrated"
)

func (s *Settler) applyReview(ctx context.Context, matchID, reviewerID uint, e Entry) (reviewOutcome, error) {
	outcome := reviewSkipped
	err := s.reviews.WithTransaction(ctx, func(tx ReviewRepository) error {
		inserted, err := tx.InsertIfAbsent(ctx, &PlayerReview{
			MatchID:    matchID,
			ReviewerID: reviewerID,
			SubjectID:  e.SubjectID,
			Category:   e.Category,
			Rating:     e.Rating,
		})
		if err != nil || !inserted {
			return err
		}
		err = tx.ApplyRating(ctx, e.SubjectID, e.Category, e.Rating)
		switch {
		case errors.Is(err, common.ErrUserNotFound):
			outcome = reviewUnrated
			return nil
		case err != nil:
			return err
		}
		outcome = reviewApplied
		return nil
	})
	if err != nil {
		return reviewSkipped, err
	}
	switch outcome {
	case reviewApplied:
		s.logger.Debug("review applied",
			zap.Uint("match_id", matchID),
			zap.Uint("subject_id", e.SubjectID),
			zap.String("category", string(e.Category)),
			zap.Int("rating", e.Rating))
	case reviewUnrated:
		s.logger.Warn("review stored for unknown user",
			zap.Uint("match_id", matchID),
			zap.Uint("subject_id", e.SubjectID))
	}
	return outcome, nil
}
