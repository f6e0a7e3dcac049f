package match

import (
	"context"
	"fmt"
	"time"

	"github.com/DhavalSuthar-24/kickoff/internal/cache"
	"github.com/DhavalSuthar-24/kickoff/pkg/utils"
	"go.uber.org/zap"
)

// Service runs match lifecycle and roster changes as single transactions and
// serves match views through the cache.
type Service struct {
	store    Store
	cache    cache.Store
	cacheTTL time.Duration
	logger   *zap.Logger
	now      func() time.Time
	newCode  func() (string, error)
}

func NewService(store Store, cacheStore cache.Store, cacheTTL time.Duration, logger *zap.Logger) *Service {
	if cacheStore == nil {
		cacheStore = cache.Noop{}
	}
	return &Service{
		store:    store,
		cache:    cacheStore,
		cacheTTL: cacheTTL,
		logger:   logger,
		now:      func() time.Time { return time.Now().UTC() },
		newCode:  utils.GenerateInviteCode,
	}
}

func detailKey(matchID uint) string {
	return fmt.Sprintf("match:%d", matchID)
}

func inviteKey(code string) string {
	return "match:invite:" + code
}

// Invalidate drops the cached detail view of a match. Failures are logged only;
// the entry expires on its own.
func (s *Service) Invalidate(ctx context.Context, matchID uint) {
	if err := s.cache.Delete(ctx, detailKey(matchID)); err != nil {
		s.logger.Warn("failed to invalidate match cache", zap.Uint("match_id", matchID), zap.Error(err))
	}
}

// InvalidatePlayers drops the cached detail of every match that lists one of userIDs,
// since each detail embeds the players' ratings.
func (s *Service) InvalidatePlayers(ctx context.Context, userIDs []uint) {
	if len(userIDs) == 0 {
		return
	}
	matchIDs, err := s.store.Matches().MatchIDsForPlayers(ctx, userIDs)
	if err != nil {
		s.logger.Warn("failed to look up matches for cache invalidation", zap.Uints("user_ids", userIDs), zap.Error(err))
		return
	}
	if len(matchIDs) == 0 {
		return
	}
	keys := make([]string, len(matchIDs))
	for i, id := range matchIDs {
		keys[i] = detailKey(id)
	}
	if err := s.cache.Delete(ctx, keys...); err != nil {
		s.logger.Warn("failed to invalidate match cache", zap.Uints("match_ids", matchIDs), zap.Error(err))
	}
}
