package venue

import (
	"context"
	"fmt"
	"time"

	"github.com/DhavalSuthar-24/kickoff/internal/common"
	"github.com/DhavalSuthar-24/kickoff/internal/metrics"
	"github.com/DhavalSuthar-24/kickoff/internal/models"
	"go.uber.org/zap"
)

const (
	dateLayout          = "2006-01-02"
	clockLayout         = "15:04"
	defaultSlotDuration = 60
	maxScheduleDays     = 366
)

// Service applies ownership rules on top of the venue repository.
type Service struct {
	repo   VenueRepository
	logger *zap.Logger
}

func NewService(repo VenueRepository, logger *zap.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

func (s *Service) CreateVenue(ctx context.Context, ownerID uint, input CreateVenueInput) (*VenueProfile, error) {
	venue := &VenueProfile{
		OwnerID:     ownerID,
		IINBIN:      input.IINBIN,
		Title:       input.Title,
		Description: input.Description,
		PhoneNumber: input.PhoneNumber,
	}
	if err := s.repo.CreateVenueForOwner(ctx, venue); err != nil {
		return nil, err
	}
	s.logger.Info("venue profile created", zap.Uint("venue_id", venue.ID), zap.Uint("owner_id", ownerID))
	return venue, nil
}

func (s *Service) GetVenue(ctx context.Context, id uint) (*VenueProfile, error) {
	return s.repo.GetVenueByID(ctx, id)
}

// GetOwnVenue returns the venue profile owned by ownerID.
func (s *Service) GetOwnVenue(ctx context.Context, ownerID uint) (*VenueProfile, error) {
	return s.repo.GetVenueByOwner(ctx, ownerID)
}

func (s *Service) ListVenues(ctx context.Context, page, pageSize int) ([]VenueProfile, int64, error) {
	return s.repo.ListVenues(ctx, page, pageSize)
}

func (s *Service) UpdateVenue(ctx context.Context, actingUserID, venueID uint, input UpdateVenueInput) (*VenueProfile, error) {
	if _, err := s.ownedVenue(ctx, actingUserID, venueID); err != nil {
		return nil, err
	}
	return s.repo.UpdateVenue(ctx, venueID, input)
}

func (s *Service) CreateField(ctx context.Context, actingUserID, venueID uint, input FieldInput) (*Field, error) {
	if _, err := s.ownedVenue(ctx, actingUserID, venueID); err != nil {
		return nil, err
	}
	field := &Field{
		VenueID:      venueID,
		Sport:        input.Sport,
		Address:      input.Address,
		PricePerHour: input.PricePerHour,
		Description:  input.Description,
		Amenities:    models.StringSlice(input.Amenities),
	}
	if err := s.repo.CreateField(ctx, field); err != nil {
		return nil, err
	}
	return field, nil
}

func (s *Service) GetField(ctx context.Context, id uint) (*Field, error) {
	return s.repo.GetFieldByID(ctx, id)
}

func (s *Service) ListFields(ctx context.Context) ([]Field, error) {
	return s.repo.ListFields(ctx)
}

func (s *Service) UpdateField(ctx context.Context, actingUserID, fieldID uint, input FieldInput) (*Field, error) {
	if _, err := s.ownedField(ctx, actingUserID, fieldID); err != nil {
		return nil, err
	}
	return s.repo.UpdateUnreferencedField(ctx, fieldID, input)
}

// GenerateSchedule creates the slots described by input that do not exist yet and
// returns how many were created.
func (s *Service) GenerateSchedule(ctx context.Context, actingUserID, fieldID uint, input ScheduleInput) (int64, error) {
	field, err := s.ownedField(ctx, actingUserID, fieldID)
	if err != nil {
		return 0, err
	}

	plan, err := planSchedule(input)
	if err != nil {
		return 0, err
	}

	existing, err := s.repo.ExistingSlotStarts(ctx, field.ID, plan.from, plan.to)
	if err != nil {
		return 0, err
	}

	var slots []TimeSlot
	for _, w := range plan.windows {
		if _, ok := existing[w.start.Unix()]; ok {
			continue
		}
		slots = append(slots, TimeSlot{FieldID: field.ID, StartTime: w.start, EndTime: w.end, Status: SlotAvailable})
	}

	created, err := s.repo.CreateSlots(ctx, slots)
	if err != nil {
		return 0, err
	}
	metrics.SlotsGenerated.Add(float64(created))
	s.logger.Info("schedule generated",
		zap.Uint("field_id", field.ID),
		zap.Int64("created", created),
		zap.Int("skipped", len(plan.windows)-len(slots)))
	return created, nil
}

// ListSlotsOnDate returns the field's slots starting on the given UTC day, with prices.
func (s *Service) ListSlotsOnDate(ctx context.Context, fieldID uint, onDate string) ([]SlotView, error) {
	day, err := time.ParseInLocation(dateLayout, onDate, time.UTC)
	if err != nil {
		return nil, fmt.Errorf("%w: on_date must be YYYY-MM-DD", common.ErrInvalidSchedule)
	}
	if _, err := s.repo.GetFieldByID(ctx, fieldID); err != nil {
		return nil, err
	}

	slots, err := s.repo.ListSlotsForFieldBetween(ctx, fieldID, day, day.AddDate(0, 0, 1))
	if err != nil {
		return nil, err
	}
	views := make([]SlotView, 0, len(slots))
	for _, slot := range slots {
		views = append(views, NewSlotView(slot))
	}
	return views, nil
}

func (s *Service) SetSlotAvailability(ctx context.Context, actingUserID, slotID uint, available bool) (*SlotView, error) {
	slot, err := s.repo.GetSlotByID(ctx, slotID)
	if err != nil {
		return nil, err
	}
	if _, err := s.ownedField(ctx, actingUserID, slot.FieldID); err != nil {
		return nil, err
	}

	updated, err := s.repo.SetSlotAvailability(ctx, slotID, available)
	if err != nil {
		return nil, err
	}
	s.logger.Info("slot availability changed", zap.Uint("slot_id", slotID), zap.String("status", string(updated.Status)))
	view := NewSlotView(*updated)
	return &view, nil
}

func (s *Service) ownedVenue(ctx context.Context, actingUserID, venueID uint) (*VenueProfile, error) {
	venue, err := s.repo.GetVenueByID(ctx, venueID)
	if err != nil {
		return nil, err
	}
	if venue.OwnerID != actingUserID {
		return nil, common.ErrForbidden
	}
	return venue, nil
}

func (s *Service) ownedField(ctx context.Context, actingUserID, fieldID uint) (*Field, error) {
	field, err := s.repo.GetFieldByID(ctx, fieldID)
	if err != nil {
		return nil, err
	}
	if field.Venue == nil || field.Venue.OwnerID != actingUserID {
		return nil, common.ErrForbidden
	}
	return field, nil
}

type slotWindow struct {
	start, end time.Time
}

type schedulePlan struct {
	from, to time.Time
	windows  []slotWindow
}

func planSchedule(input ScheduleInput) (*schedulePlan, error) {
	startDate, err := time.ParseInLocation(dateLayout, input.StartDate, time.UTC)
	if err != nil {
		return nil, fmt.Errorf("%w: start_date must be YYYY-MM-DD", common.ErrInvalidSchedule)
	}
	endDate, err := time.ParseInLocation(dateLayout, input.EndDate, time.UTC)
	if err != nil {
		return nil, fmt.Errorf("%w: end_date must be YYYY-MM-DD", common.ErrInvalidSchedule)
	}
	dayStart, err := parseClock(input.StartTime)
	if err != nil {
		return nil, fmt.Errorf("%w: start_time must be HH:MM", common.ErrInvalidSchedule)
	}
	dayEnd, err := parseClock(input.EndTime)
	if err != nil {
		return nil, fmt.Errorf("%w: end_time must be HH:MM", common.ErrInvalidSchedule)
	}

	duration := defaultSlotDuration
	if input.SlotDurationMinutes != nil {
		duration = *input.SlotDurationMinutes
	}

	switch {
	case endDate.Before(startDate):
		return nil, fmt.Errorf("%w: start_date is after end_date", common.ErrInvalidSchedule)
	case endDate.Sub(startDate) > maxScheduleDays*24*time.Hour:
		return nil, fmt.Errorf("%w: range exceeds %d days", common.ErrInvalidSchedule, maxScheduleDays)
	case dayEnd <= dayStart:
		return nil, fmt.Errorf("%w: end_time must be after start_time", common.ErrInvalidSchedule)
	case duration <= 0:
		return nil, fmt.Errorf("%w: slot_duration_minutes must be positive", common.ErrInvalidSchedule)
	}

	step := time.Duration(duration) * time.Minute
	plan := &schedulePlan{from: startDate, to: endDate.AddDate(0, 0, 1)}
	for day := startDate; !day.After(endDate); day = day.AddDate(0, 0, 1) {
		closing := day.Add(dayEnd)
		for t := day.Add(dayStart); !t.Add(step).After(closing); t = t.Add(step) {
			plan.windows = append(plan.windows, slotWindow{start: t, end: t.Add(step)})
		}
	}
	return plan, nil
}

// parseClock parses HH:MM into an offset from midnight.
func parseClock(v string) (time.Duration, error) {
	t, err := time.Parse(clockLayout, v)
	if err != nil {
		return 0, err
	}
	return time.Duration(t.Hour())*time.Hour + time.Duration(t.Minute())*time.Minute, nil
}
