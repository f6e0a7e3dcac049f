package match

import (
	"context"

	"go.uber.org/zap"
)

// GetDetail returns the match with its roster split by status. Reads go through the
// cache; cache failures fall back to the database.
func (s *Service) GetDetail(ctx context.Context, matchID uint) (*MatchDetail, error) {
	var cached MatchDetail
	hit, err := s.cache.GetJSON(ctx, detailKey(matchID), &cached)
	if err != nil {
		s.logger.Warn("match cache read failed", zap.Uint("match_id", matchID), zap.Error(err))
	}
	if hit {
		return &cached, nil
	}

	match, err := s.store.Matches().GetMatchDetail(ctx, matchID)
	if err != nil {
		return nil, err
	}
	detail := buildDetail(match)

	if err := s.cache.SetJSON(ctx, detailKey(matchID), detail, s.cacheTTL); err != nil {
		s.logger.Warn("match cache write failed", zap.Uint("match_id", matchID), zap.Error(err))
	}
	return detail, nil
}

// GetDetailByInviteCode resolves an invite code, including for private matches.
func (s *Service) GetDetailByInviteCode(ctx context.Context, code string) (*MatchDetail, error) {
	var matchID uint
	hit, err := s.cache.GetJSON(ctx, inviteKey(code), &matchID)
	if err != nil {
		s.logger.Warn("invite cache read failed", zap.String("invite_code", code), zap.Error(err))
	}
	if !hit {
		matchID, err = s.store.Matches().GetMatchIDByInviteCode(ctx, code)
		if err != nil {
			return nil, err
		}
		// invite codes never change, so the mapping only expires with the TTL
		if err := s.cache.SetJSON(ctx, inviteKey(code), matchID, s.cacheTTL); err != nil {
			s.logger.Warn("invite cache write failed", zap.String("invite_code", code), zap.Error(err))
		}
	}
	return s.GetDetail(ctx, matchID)
}

// ListActive lists public active matches, soonest first, with roster counts.
func (s *Service) ListActive(ctx context.Context, page, pageSize int) ([]MatchSummary, int64, error) {
	matches, total, err := s.store.Matches().ListActivePublic(ctx, page, pageSize)
	if err != nil {
		return nil, 0, err
	}

	ids := make([]uint, len(matches))
	for i := range matches {
		ids[i] = matches[i].ID
	}
	counts, err := s.store.Matches().RosterCounts(ctx, ids)
	if err != nil {
		return nil, 0, err
	}

	summaries := make([]MatchSummary, 0, len(matches))
	for i := range matches {
		c := counts[matches[i].ID]
		summary := buildSummary(&matches[i])
		summary.ConfirmedCount = c[PlayerConfirmed]
		summary.WaitlistCount = c[PlayerWaitlist]
		summary.NoShowCount = c[PlayerNoShow]
		summaries = append(summaries, summary)
	}
	return summaries, total, nil
}

func buildSummary(m *Match) MatchSummary {
	summary := MatchSummary{
		ID:              m.ID,
		Title:           m.Title,
		StartsAt:        m.StartsAt,
		MaxPlayers:      m.MaxPlayers,
		Status:          m.Status,
		IsPrivate:       m.IsPrivate,
		WaitlistEnabled: m.WaitlistEnabled,
		InviteCode:      m.InviteCode,
		SlotID:          m.SlotID,
		Field:           m.Field,
		Price:           matchPrice(m),
	}
	if m.Captain != nil {
		captain := m.Captain.Public()
		summary.Captain = &captain
	}
	return summary
}

func buildDetail(m *Match) *MatchDetail {
	detail := &MatchDetail{
		MatchSummary: buildSummary(m),
		Players:      []PlayerView{},
		Waitlist:     []PlayerView{},
		NoShows:      []PlayerView{},
	}
	for _, p := range m.Players {
		view := playerView(p)
		switch p.Status {
		case PlayerConfirmed:
			detail.Players = append(detail.Players, view)
		case PlayerWaitlist:
			detail.Waitlist = append(detail.Waitlist, view)
		case PlayerNoShow:
			detail.NoShows = append(detail.NoShows, view)
		}
	}
	detail.ConfirmedCount = len(detail.Players)
	detail.WaitlistCount = len(detail.Waitlist)
	detail.NoShowCount = len(detail.NoShows)
	return detail
}

func playerView(p MatchPlayer) PlayerView {
	view := PlayerView{UserID: p.UserID, Status: p.Status, JoinedAt: p.JoinedAt}
	if p.User != nil {
		view.FullName = p.User.FullName
		view.PhotoURL = p.User.PhotoURL
		view.Level = p.User.Level
		view.Position = p.User.Position
		view.SkillRating = p.User.SkillRating
		view.SportsmanshipRating = p.User.SportsmanshipRating
	}
	return view
}

// matchPrice is the bound slot's price, the field's base price once the slot is
// released, or nil when the match has neither.
func matchPrice(m *Match) *int {
	switch {
	case m.Slot != nil:
		price := m.Slot.Price(m.Field)
		return &price
	case m.Field != nil:
		price := m.Field.PricePerHour
		return &price
	default:
		return nil
	}
}
