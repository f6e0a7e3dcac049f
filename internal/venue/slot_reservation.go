package venue

import (
	"context"

	"github.com/DhavalSuthar-24/kickoff/internal/common"
	"github.com/DhavalSuthar-24/kickoff/internal/metrics"
)

// ReserveSlot books an available slot for matchID. Status and binding change in one
// conditional UPDATE, so of two concurrent reservations only one matches the row.
func (r *venueRepository) ReserveSlot(ctx context.Context, slotID, matchID uint) (*TimeSlot, error) {
	res := r.db.WithContext(ctx).Model(&TimeSlot{}).
		Where("id = ? AND status = ?", slotID, SlotAvailable).
		Updates(map[string]interface{}{"status": SlotBooked, "match_id": matchID})
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		if _, err := r.GetSlotByID(ctx, slotID); err != nil {
			metrics.SlotReservations.WithLabelValues("not_found").Inc()
			return nil, err
		}
		metrics.SlotReservations.WithLabelValues("not_available").Inc()
		return nil, common.ErrSlotNotAvailable
	}
	metrics.SlotReservations.WithLabelValues("reserved").Inc()
	return r.GetSlotByID(ctx, slotID)
}

// ReleaseSlot makes the slot available again and clears its match binding.
// Releasing an already available slot succeeds.
func (r *venueRepository) ReleaseSlot(ctx context.Context, slotID uint) error {
	res := r.db.WithContext(ctx).Model(&TimeSlot{}).
		Where("id = ?", slotID).
		Updates(map[string]interface{}{"status": SlotAvailable, "match_id": nil})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return common.ErrSlotNotFound
	}
	return nil
}

// SetSlotAvailability toggles an unbooked slot between available and unavailable.
func (r *venueRepository) SetSlotAvailability(ctx context.Context, slotID uint, available bool) (*TimeSlot, error) {
	target := SlotUnavailable
	if available {
		target = SlotAvailable
	}
	res := r.db.WithContext(ctx).Model(&TimeSlot{}).
		Where("id = ? AND status IN ?", slotID, []SlotStatus{SlotAvailable, SlotUnavailable}).
		Update("status", target)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		if _, err := r.GetSlotByID(ctx, slotID); err != nil {
			return nil, err
		}
		return nil, common.ErrSlotNotAvailable
	}
	return r.GetSlotByID(ctx, slotID)
}
