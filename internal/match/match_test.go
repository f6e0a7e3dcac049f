package match

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/DhavalSuthar-24/kickoff/internal/cache"
	"github.com/DhavalSuthar-24/kickoff/internal/common"
	"github.com/DhavalSuthar-24/kickoff/internal/testhelpers"
	"github.com/DhavalSuthar-24/kickoff/internal/user"
	"github.com/DhavalSuthar-24/kickoff/internal/venue"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type fixture struct {
	db      *gorm.DB
	service *Service
	slots   venue.VenueRepository
	field   *venue.Field
	captain *user.User
}

func setup(t *testing.T, cacheStore cache.Store) *fixture {
	t.Helper()
	ctx := context.Background()
	db := testhelpers.SetupTestDB(t,
		&user.User{}, &venue.VenueProfile{}, &venue.Field{}, &venue.TimeSlot{}, &Match{}, &MatchPlayer{})

	users := user.NewUserRepository(db)
	owner := &user.User{Email: "owner@example.com", PassHash: "x"}
	require.NoError(t, users.Create(ctx, owner))
	captain := &user.User{Email: "captain@example.com", PassHash: "x", FullName: "Cap"}
	require.NoError(t, users.Create(ctx, captain))

	slots := venue.NewVenueRepository(db)
	profile := &venue.VenueProfile{OwnerID: owner.ID, IINBIN: "123456789012", Title: "Arena"}
	require.NoError(t, slots.CreateVenueForOwner(ctx, profile))
	field := &venue.Field{VenueID: profile.ID, Sport: "football", Address: "1 Main St", PricePerHour: 5000}
	require.NoError(t, slots.CreateField(ctx, field))

	return &fixture{
		db:      db,
		service: NewService(NewStore(db), cacheStore, time.Minute, zap.NewNop()),
		slots:   slots,
		field:   field,
		captain: captain,
	}
}

func (f *fixture) addSlot(t *testing.T, hour int, priceOverride *int) *venue.TimeSlot {
	t.Helper()
	start := time.Date(2025, 7, 1, hour, 0, 0, 0, time.UTC)
	_, err := f.slots.CreateSlots(context.Background(), []venue.TimeSlot{{
		FieldID: f.field.ID, StartTime: start, EndTime: start.Add(time.Hour),
		Status: venue.SlotAvailable, PriceOverride: priceOverride,
	}})
	require.NoError(t, err)

	var slot venue.TimeSlot
	require.NoError(t, f.db.Where("field_id = ? AND start_time = ?", f.field.ID, start).First(&slot).Error)
	return &slot
}

func (f *fixture) addUsers(t *testing.T, n int) []*user.User {
	t.Helper()
	users := make([]*user.User, n)
	for i := range users {
		u := &user.User{Email: fmt.Sprintf("player%d@example.com", i), PassHash: "x"}
		require.NoError(t, user.NewUserRepository(f.db).Create(context.Background(), u))
		users[i] = u
	}
	return users
}

func (f *fixture) createMatch(t *testing.T, maxPlayers int, waitlist bool) *Match {
	t.Helper()
	slot := f.addSlot(t, 18, nil)
	m, err := f.service.Create(context.Background(), f.captain.ID, CreateMatchInput{
		Title: "Evening game", SlotID: slot.ID, MaxPlayers: &maxPlayers, WaitlistEnabled: &waitlist,
	})
	require.NoError(t, err)
	return m
}

func (f *fixture) statusOf(t *testing.T, matchID, userID uint) PlayerStatus {
	t.Helper()
	p, err := NewGormMatchRepository(f.db).GetPlayer(context.Background(), matchID, userID)
	require.NoError(t, err)
	if p == nil {
		return ""
	}
	return p.Status
}

func (f *fixture) count(t *testing.T, matchID uint, status PlayerStatus) int64 {
	t.Helper()
	n, err := NewGormMatchRepository(f.db).CountPlayers(context.Background(), matchID, status)
	require.NoError(t, err)
	return n
}

func TestCreate_BooksSlotAndSeatsCaptain(t *testing.T) {
	ctx := context.Background()
	f := setup(t, nil)
	slot := f.addSlot(t, 10, nil)

	m, err := f.service.Create(ctx, f.captain.ID, CreateMatchInput{Title: "Morning", SlotID: slot.ID})
	require.NoError(t, err)
	assert.Equal(t, StatusActive, m.Status)
	assert.Equal(t, DefaultMaxPlayers, m.MaxPlayers)
	assert.True(t, m.WaitlistEnabled)
	assert.Len(t, m.InviteCode, 8)
	assert.True(t, m.StartsAt.Equal(slot.StartTime))
	require.NotNil(t, m.FieldID)
	assert.Equal(t, f.field.ID, *m.FieldID)

	booked, err := f.slots.GetSlotByID(ctx, slot.ID)
	require.NoError(t, err)
	assert.Equal(t, venue.SlotBooked, booked.Status)
	require.NotNil(t, booked.MatchID)
	assert.Equal(t, m.ID, *booked.MatchID)

	assert.Equal(t, PlayerConfirmed, f.statusOf(t, m.ID, f.captain.ID))

	_, err = f.service.Create(ctx, f.captain.ID, CreateMatchInput{Title: "Again", SlotID: slot.ID})
	assert.ErrorIs(t, err, common.ErrSlotNotAvailable)
}

func TestCreate_Failures(t *testing.T) {
	ctx := context.Background()
	f := setup(t, nil)
	slot := f.addSlot(t, 10, nil)

	_, err := f.service.Create(ctx, f.captain.ID, CreateMatchInput{Title: "x", SlotID: 9999})
	assert.ErrorIs(t, err, common.ErrSlotNotFound)

	zero := 0
	_, err = f.service.Create(ctx, f.captain.ID, CreateMatchInput{Title: "x", SlotID: slot.ID, MaxPlayers: &zero})
	assert.ErrorIs(t, err, common.ErrInvalidCapacity)

	_, err = f.service.Create(ctx, 9999, CreateMatchInput{Title: "x", SlotID: slot.ID})
	assert.ErrorIs(t, err, common.ErrUserNotFound)

	_, err = f.slots.SetSlotAvailability(ctx, slot.ID, false)
	require.NoError(t, err)
	_, err = f.service.Create(ctx, f.captain.ID, CreateMatchInput{Title: "x", SlotID: slot.ID})
	assert.ErrorIs(t, err, common.ErrSlotNotAvailable)

	var matches int64
	require.NoError(t, f.db.Model(&Match{}).Count(&matches).Error)
	assert.Zero(t, matches)
}

func TestCreate_ConcurrentSameSlotHasOneWinner(t *testing.T) {
	ctx := context.Background()
	f := setup(t, nil)
	slot := f.addSlot(t, 12, nil)
	captains := f.addUsers(t, 2)

	var wg sync.WaitGroup
	errs := make([]error, len(captains))
	for i, c := range captains {
		wg.Add(1)
		go func(i int, captainID uint) {
			defer wg.Done()
			_, errs[i] = f.service.Create(ctx, captainID, CreateMatchInput{Title: "Race", SlotID: slot.ID})
		}(i, c.ID)
	}
	wg.Wait()

	var won, lost int
	for _, err := range errs {
		switch {
		case err == nil:
			won++
		case errors.Is(err, common.ErrSlotNotAvailable):
			lost++
		}
	}
	assert.Equal(t, 1, won)
	assert.Equal(t, 1, lost)

	var matches int64
	require.NoError(t, f.db.Model(&Match{}).Count(&matches).Error)
	assert.EqualValues(t, 1, matches)
}

// staleCodes hides taken invite codes from the lookup before insert, the way a
// concurrent create committing in between would.
type staleCodes struct{ Store }

func (s staleCodes) Matches() MatchRepository { return staleCodeRepo{s.Store.Matches()} }

type staleCodeRepo struct{ MatchRepository }

func (staleCodeRepo) InviteCodeExists(context.Context, string) (bool, error) { return false, nil }

func TestCreate_InviteCodeCollisionRetries(t *testing.T) {
	ctx := context.Background()
	f := setup(t, nil)
	svc := NewService(staleCodes{NewStore(f.db)}, nil, time.Minute, zap.NewNop())
	codes := []string{"samecode", "samecode", "freshone"}
	svc.newCode = func() (string, error) {
		code := codes[0]
		codes = codes[1:]
		return code, nil
	}

	first, err := svc.Create(ctx, f.captain.ID, CreateMatchInput{Title: "First", SlotID: f.addSlot(t, 18, nil).ID})
	require.NoError(t, err)
	assert.Equal(t, "samecode", first.InviteCode)

	slot := f.addSlot(t, 19, nil)
	second, err := svc.Create(ctx, f.captain.ID, CreateMatchInput{Title: "Second", SlotID: slot.ID})
	require.NoError(t, err)
	assert.Equal(t, "freshone", second.InviteCode)
	assert.Empty(t, codes)

	booked, err := f.slots.GetSlotByID(ctx, slot.ID)
	require.NoError(t, err)
	assert.Equal(t, venue.SlotBooked, booked.Status)

	svc.newCode = func() (string, error) { return "samecode", nil }
	third := f.addSlot(t, 20, nil)
	_, err = svc.Create(ctx, f.captain.ID, CreateMatchInput{Title: "Third", SlotID: third.ID})
	require.Error(t, err)
	assert.NotErrorIs(t, err, common.ErrSlotNotAvailable)

	free, err := f.slots.GetSlotByID(ctx, third.ID)
	require.NoError(t, err)
	assert.Equal(t, venue.SlotAvailable, free.Status)
}

func TestJoin_ConcurrentRespectsCapacity(t *testing.T) {
	ctx := context.Background()
	f := setup(t, nil)
	m := f.createMatch(t, 5, true)
	players := f.addUsers(t, 7)

	var wg sync.WaitGroup
	for _, p := range players {
		wg.Add(1)
		go func(userID uint) {
			defer wg.Done()
			_, err := f.service.Join(ctx, m.ID, userID)
			assert.NoError(t, err)
		}(p.ID)
	}
	wg.Wait()

	assert.EqualValues(t, 5, f.count(t, m.ID, PlayerConfirmed))
	assert.EqualValues(t, 3, f.count(t, m.ID, PlayerWaitlist))

	var entries int64
	require.NoError(t, f.db.Model(&MatchPlayer{}).Where("match_id = ?", m.ID).Count(&entries).Error)
	assert.EqualValues(t, 8, entries)
}

func TestJoin_IdempotentAndWaitlistClosed(t *testing.T) {
	ctx := context.Background()
	f := setup(t, nil)
	m := f.createMatch(t, 2, false)
	players := f.addUsers(t, 2)

	res, err := f.service.Join(ctx, m.ID, players[0].ID)
	require.NoError(t, err)
	assert.Equal(t, PlayerConfirmed, res.SeatedAs)
	assert.False(t, res.AlreadyMember)

	again, err := f.service.Join(ctx, m.ID, players[0].ID)
	require.NoError(t, err)
	assert.Equal(t, PlayerConfirmed, again.SeatedAs)
	assert.True(t, again.AlreadyMember)

	_, err = f.service.Join(ctx, m.ID, players[1].ID)
	assert.ErrorIs(t, err, common.ErrWaitlistClosed)
	assert.EqualValues(t, 2, f.count(t, m.ID, PlayerConfirmed))

	_, err = f.service.Join(ctx, 9999, players[1].ID)
	assert.ErrorIs(t, err, common.ErrMatchNotFound)
}

func TestLeave_PromotesEarliestWaitlisted(t *testing.T) {
	ctx := context.Background()
	f := setup(t, nil)
	m := f.createMatch(t, 2, true)
	players := f.addUsers(t, 3)
	b, c, d := players[0], players[1], players[2]

	for _, p := range players {
		_, err := f.service.Join(ctx, m.ID, p.ID)
		require.NoError(t, err)
	}
	assert.Equal(t, PlayerConfirmed, f.statusOf(t, m.ID, b.ID))
	assert.Equal(t, PlayerWaitlist, f.statusOf(t, m.ID, c.ID))
	assert.Equal(t, PlayerWaitlist, f.statusOf(t, m.ID, d.ID))

	_, err := f.service.Leave(ctx, m.ID, b.ID)
	require.NoError(t, err)

	assert.Equal(t, PlayerStatus(""), f.statusOf(t, m.ID, b.ID))
	assert.Equal(t, PlayerConfirmed, f.statusOf(t, m.ID, c.ID))
	assert.Equal(t, PlayerWaitlist, f.statusOf(t, m.ID, d.ID))
	assert.EqualValues(t, 2, f.count(t, m.ID, PlayerConfirmed))

	// a waitlisted player leaving promotes nobody
	_, err = f.service.Leave(ctx, m.ID, d.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 2, f.count(t, m.ID, PlayerConfirmed))
	assert.Zero(t, f.count(t, m.ID, PlayerWaitlist))

	// leaving twice is a no-op
	_, err = f.service.Leave(ctx, m.ID, d.ID)
	require.NoError(t, err)

	// rejoin creates a fresh entry at the back of the line
	res, err := f.service.Join(ctx, m.ID, b.ID)
	require.NoError(t, err)
	assert.Equal(t, PlayerWaitlist, res.SeatedAs)
}

func TestLeave_ConcurrentPromotesInOrder(t *testing.T) {
	ctx := context.Background()
	f := setup(t, nil)
	m := f.createMatch(t, 3, true)
	players := f.addUsers(t, 5)

	for _, p := range players {
		_, err := f.service.Join(ctx, m.ID, p.ID)
		require.NoError(t, err)
	}
	require.EqualValues(t, 3, f.count(t, m.ID, PlayerConfirmed))
	require.EqualValues(t, 3, f.count(t, m.ID, PlayerWaitlist))

	var wg sync.WaitGroup
	for _, p := range players[:2] {
		wg.Add(1)
		go func(userID uint) {
			defer wg.Done()
			_, err := f.service.Leave(ctx, m.ID, userID)
			assert.NoError(t, err)
		}(p.ID)
	}
	wg.Wait()

	assert.EqualValues(t, 3, f.count(t, m.ID, PlayerConfirmed))
	assert.EqualValues(t, 1, f.count(t, m.ID, PlayerWaitlist))
	assert.Equal(t, PlayerConfirmed, f.statusOf(t, m.ID, players[2].ID))
	assert.Equal(t, PlayerConfirmed, f.statusOf(t, m.ID, players[3].ID))
	assert.Equal(t, PlayerWaitlist, f.statusOf(t, m.ID, players[4].ID))
}

func TestLeave_CaptainRejected(t *testing.T) {
	ctx := context.Background()
	f := setup(t, nil)
	m := f.createMatch(t, 5, true)

	_, err := f.service.Leave(ctx, m.ID, f.captain.ID)
	assert.ErrorIs(t, err, common.ErrCaptainCannotLeave)
	assert.Equal(t, PlayerConfirmed, f.statusOf(t, m.ID, f.captain.ID))
}

func TestTransition(t *testing.T) {
	ctx := context.Background()
	f := setup(t, nil)
	m := f.createMatch(t, 5, true)
	players := f.addUsers(t, 1)

	_, err := f.service.Complete(ctx, m.ID, players[0].ID)
	assert.ErrorIs(t, err, common.ErrForbidden)

	_, err = f.service.Transition(ctx, m.ID, f.captain.ID, StatusActive)
	assert.ErrorIs(t, err, common.ErrInvalidTransition)

	done, err := f.service.Complete(ctx, m.ID, f.captain.ID)
	require.NoError(t, err)
	assert.Equal(t, StatusCompleted, done.Status)

	slot, err := f.slots.GetSlotByID(ctx, *done.SlotID)
	require.NoError(t, err)
	assert.Equal(t, venue.SlotBooked, slot.Status)

	_, err = f.service.Cancel(ctx, m.ID, f.captain.ID)
	assert.ErrorIs(t, err, common.ErrInvalidTransition)
	_, err = f.service.Complete(ctx, m.ID, f.captain.ID)
	assert.ErrorIs(t, err, common.ErrInvalidTransition)

	_, err = f.service.Join(ctx, m.ID, players[0].ID)
	assert.ErrorIs(t, err, common.ErrMatchNotActive)

	still, err := NewGormMatchRepository(f.db).GetMatchByID(ctx, m.ID)
	require.NoError(t, err)
	assert.Equal(t, StatusCompleted, still.Status)
}

func TestCancel_ReleasesSlotForRebooking(t *testing.T) {
	ctx := context.Background()
	f := setup(t, nil)
	m := f.createMatch(t, 5, true)
	slotID := *m.SlotID

	cancelled, err := f.service.Cancel(ctx, m.ID, f.captain.ID)
	require.NoError(t, err)
	assert.Equal(t, StatusCancelled, cancelled.Status)
	assert.Nil(t, cancelled.SlotID)

	slot, err := f.slots.GetSlotByID(ctx, slotID)
	require.NoError(t, err)
	assert.Equal(t, venue.SlotAvailable, slot.Status)
	assert.Nil(t, slot.MatchID)

	again, err := f.service.Create(ctx, f.captain.ID, CreateMatchInput{Title: "Rebooked", SlotID: slotID})
	require.NoError(t, err)
	assert.NotEqual(t, m.ID, again.ID)
}

func TestMarkNoShow(t *testing.T) {
	ctx := context.Background()
	f := setup(t, nil)
	m := f.createMatch(t, 1, true)
	players := f.addUsers(t, 1)
	_, err := f.service.Join(ctx, m.ID, players[0].ID)
	require.NoError(t, err)

	_, err = f.service.MarkNoShow(ctx, m.ID, f.captain.ID)
	assert.ErrorIs(t, err, common.ErrMatchNotCompleted)

	_, err = f.service.Complete(ctx, m.ID, f.captain.ID)
	require.NoError(t, err)

	flagged, err := f.service.MarkNoShow(ctx, m.ID, f.captain.ID)
	require.NoError(t, err)
	assert.True(t, flagged)

	flagged, err = f.service.MarkNoShow(ctx, m.ID, f.captain.ID)
	require.NoError(t, err)
	assert.False(t, flagged)

	// waitlisted players are never flagged
	flagged, err = f.service.MarkNoShow(ctx, m.ID, players[0].ID)
	require.NoError(t, err)
	assert.False(t, flagged)

	captain, err := user.NewUserRepository(f.db).GetByID(ctx, f.captain.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, captain.NoShowCount)
	assert.Equal(t, PlayerNoShow, f.statusOf(t, m.ID, f.captain.ID))
}

func TestViews_CountsAndPrice(t *testing.T) {
	ctx := context.Background()
	f := setup(t, nil)
	m := f.createMatch(t, 2, true)
	players := f.addUsers(t, 2)
	for _, p := range players {
		_, err := f.service.Join(ctx, m.ID, p.ID)
		require.NoError(t, err)
	}

	override := 7000
	privateSlot := f.addSlot(t, 20, &override)
	private, err := f.service.Create(ctx, f.captain.ID, CreateMatchInput{Title: "Private", SlotID: privateSlot.ID, IsPrivate: true})
	require.NoError(t, err)

	detail, err := f.service.GetDetail(ctx, m.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, detail.ConfirmedCount)
	assert.Equal(t, 1, detail.WaitlistCount)
	require.Len(t, detail.Waitlist, 1)
	assert.Equal(t, players[1].ID, detail.Waitlist[0].UserID)
	require.NotNil(t, detail.Price)
	assert.Equal(t, 5000, *detail.Price)
	require.NotNil(t, detail.Captain)
	assert.Equal(t, "Cap", detail.Captain.FullName)

	byCode, err := f.service.GetDetailByInviteCode(ctx, private.InviteCode)
	require.NoError(t, err)
	assert.Equal(t, private.ID, byCode.ID)
	require.NotNil(t, byCode.Price)
	assert.Equal(t, 7000, *byCode.Price)

	_, err = f.service.GetDetailByInviteCode(ctx, "nope")
	assert.ErrorIs(t, err, common.ErrMatchNotFound)

	list, total, err := f.service.ListActive(ctx, 1, 20)
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	require.Len(t, list, 1)
	assert.Equal(t, m.ID, list[0].ID)
	assert.Equal(t, 2, list[0].ConfirmedCount)
	assert.Equal(t, 1, list[0].WaitlistCount)
}

func TestGetDetail_CachedAndInvalidated(t *testing.T) {
	ctx := context.Background()
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })

	f := setup(t, cache.NewRedisStore(rdb, "test:"))
	m := f.createMatch(t, 5, true)
	key := fmt.Sprintf("test:match:%d", m.ID)

	detail, err := f.service.GetDetail(ctx, m.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, detail.ConfirmedCount)
	assert.True(t, mr.Exists(key))

	players := f.addUsers(t, 1)
	_, err = f.service.Join(ctx, m.ID, players[0].ID)
	require.NoError(t, err)
	assert.False(t, mr.Exists(key))

	detail, err = f.service.GetDetail(ctx, m.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, detail.ConfirmedCount)

	// a stale entry is served until something invalidates it
	require.NoError(t, f.db.Model(&Match{}).Where("id = ?", m.ID).Update("title", "Changed").Error)
	cached, err := f.service.GetDetail(ctx, m.ID)
	require.NoError(t, err)
	assert.Equal(t, "Evening game", cached.Title)

	_, err = f.service.Cancel(ctx, m.ID, f.captain.ID)
	require.NoError(t, err)
	fresh, err := f.service.GetDetail(ctx, m.ID)
	require.NoError(t, err)
	assert.Equal(t, StatusCancelled, fresh.Status)
	assert.Equal(t, "Changed", fresh.Title)
	require.NotNil(t, fresh.Price)
	assert.Equal(t, 5000, *fresh.Price)
}

func TestInvalidatePlayers_DropsEveryMatchListingThem(t *testing.T) {
	ctx := context.Background()
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })

	f := setup(t, cache.NewRedisStore(rdb, "test:"))
	first := f.createMatch(t, 5, true)
	second, err := f.service.Create(ctx, f.captain.ID, CreateMatchInput{Title: "Late game", SlotID: f.addSlot(t, 20, nil).ID})
	require.NoError(t, err)
	other, err := f.service.Create(ctx, f.captain.ID, CreateMatchInput{Title: "Other", SlotID: f.addSlot(t, 21, nil).ID})
	require.NoError(t, err)

	players := f.addUsers(t, 1)
	for _, m := range []*Match{first, second} {
		_, err := f.service.Join(ctx, m.ID, players[0].ID)
		require.NoError(t, err)
	}
	for _, m := range []*Match{first, second, other} {
		_, err := f.service.GetDetail(ctx, m.ID)
		require.NoError(t, err)
		require.True(t, mr.Exists(fmt.Sprintf("test:match:%d", m.ID)))
	}

	require.NoError(t, f.db.Model(&user.User{}).Where("id = ?", players[0].ID).Update("skill_rating", 9.0).Error)
	f.service.InvalidatePlayers(ctx, []uint{players[0].ID})

	assert.False(t, mr.Exists(fmt.Sprintf("test:match:%d", first.ID)))
	assert.False(t, mr.Exists(fmt.Sprintf("test:match:%d", second.ID)))
	assert.True(t, mr.Exists(fmt.Sprintf("test:match:%d", other.ID)))

	detail, err := f.service.GetDetail(ctx, second.ID)
	require.NoError(t, err)
	var rating float64
	for _, p := range detail.Players {
		if p.UserID == players[0].ID {
			rating = p.SkillRating
		}
	}
	assert.InDelta(t, 9.0, rating, 1e-9)

	f.service.InvalidatePlayers(ctx, nil)
}
