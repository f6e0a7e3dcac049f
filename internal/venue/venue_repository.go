package venue

import (
	"context"
	"errors"
	"time"

	"github.com/DhavalSuthar-24/kickoff/internal/common"
	"github.com/DhavalSuthar-24/kickoff/internal/models"
	"github.com/DhavalSuthar-24/kickoff/internal/user"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrIINBINTaken = common.NewAppError(common.KindConflict, "iin_bin_taken", "IIN/BIN is already registered")

// VenueRepository interface defines all database operations for venue management
type VenueRepository interface {
	// Venue operations
	CreateVenueForOwner(ctx context.Context, venue *VenueProfile) error
	GetVenueByID(ctx context.Context, id uint) (*VenueProfile, error)
	GetVenueByOwner(ctx context.Context, ownerID uint) (*VenueProfile, error)
	ListVenues(ctx context.Context, page, pageSize int) ([]VenueProfile, int64, error)
	UpdateVenue(ctx context.Context, id uint, input UpdateVenueInput) (*VenueProfile, error)

	// Field operations
	CreateField(ctx context.Context, field *Field) error
	GetFieldByID(ctx context.Context, id uint) (*Field, error)
	ListFields(ctx context.Context) ([]Field, error)
	UpdateUnreferencedField(ctx context.Context, id uint, input FieldInput) (*Field, error)

	// TimeSlot operations
	CreateSlots(ctx context.Context, slots []TimeSlot) (int64, error)
	ExistingSlotStarts(ctx context.Context, fieldID uint, from, to time.Time) (map[int64]struct{}, error)
	ListSlotsForFieldBetween(ctx context.Context, fieldID uint, from, to time.Time) ([]TimeSlot, error)
	GetSlotByID(ctx context.Context, id uint) (*TimeSlot, error)
	GetSlotForUpdate(ctx context.Context, id uint) (*TimeSlot, error)
	ReserveSlot(ctx context.Context, slotID, matchID uint) (*TimeSlot, error)
	ReleaseSlot(ctx context.Context, slotID uint) error
	SetSlotAvailability(ctx context.Context, slotID uint, available bool) (*TimeSlot, error)
}

// venueRepository implements VenueRepository interface
type venueRepository struct {
	db *gorm.DB
}

// NewVenueRepository creates a new venue repository. db may be an open transaction.
func NewVenueRepository(db *gorm.DB) VenueRepository {
	return &venueRepository{db: db}
}

// CreateVenueForOwner stores the owner's only venue profile and promotes the owner to the venue role.
func (r *venueRepository) CreateVenueForOwner(ctx context.Context, venue *VenueProfile) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&VenueProfile{}).Where("owner_id = ?", venue.OwnerID).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return common.ErrVenueExists
		}

		if err := tx.Create(venue).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrIINBINTaken
			}
			return err
		}
		return user.NewUserRepository(tx).SetRole(ctx, venue.OwnerID, user.RoleVenue)
	})
}

// GetVenueByID retrieves a venue with its fields
func (r *venueRepository) GetVenueByID(ctx context.Context, id uint) (*VenueProfile, error) {
	var venue VenueProfile
	if err := r.db.WithContext(ctx).Preload("Fields").First(&venue, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.ErrVenueNotFound
		}
		return nil, err
	}
	return &venue, nil
}

func (r *venueRepository) GetVenueByOwner(ctx context.Context, ownerID uint) (*VenueProfile, error) {
	var venue VenueProfile
	if err := r.db.WithContext(ctx).Preload("Fields").Where("owner_id = ?", ownerID).First(&venue).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.ErrVenueNotFound
		}
		return nil, err
	}
	return &venue, nil
}

// ListVenues retrieves venues with their fields, paginated
func (r *venueRepository) ListVenues(ctx context.Context, page, pageSize int) ([]VenueProfile, int64, error) {
	var venues []VenueProfile
	var totalCount int64

	offset, limit := models.Page(page, pageSize)
	query := r.db.WithContext(ctx).Model(&VenueProfile{})

	if err := query.Count(&totalCount).Error; err != nil {
		return nil, 0, err
	}
	if err := query.Preload("Fields").Order("id asc").Offset(offset).Limit(limit).Find(&venues).Error; err != nil {
		return nil, 0, err
	}
	return venues, totalCount, nil
}

func (r *venueRepository) UpdateVenue(ctx context.Context, id uint, input UpdateVenueInput) (*VenueProfile, error) {
	updates := map[string]interface{}{}
	if input.Title != nil {
		updates["title"] = *input.Title
	}
	if input.Description != nil {
		updates["description"] = *input.Description
	}
	if input.PhoneNumber != nil {
		updates["phone_number"] = *input.PhoneNumber
	}
	if len(updates) > 0 {
		res := r.db.WithContext(ctx).Model(&VenueProfile{}).Where("id = ?", id).Updates(updates)
		if res.Error != nil {
			return nil, res.Error
		}
		if res.RowsAffected == 0 {
			return nil, common.ErrVenueNotFound
		}
	}
	return r.GetVenueByID(ctx, id)
}

func (r *venueRepository) CreateField(ctx context.Context, field *Field) error {
	return r.db.WithContext(ctx).Create(field).Error
}

// GetFieldByID retrieves a field with its venue loaded
func (r *venueRepository) GetFieldByID(ctx context.Context, id uint) (*Field, error) {
	var field Field
	if err := r.db.WithContext(ctx).Preload("Venue").First(&field, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.ErrFieldNotFound
		}
		return nil, err
	}
	return &field, nil
}

func (r *venueRepository) ListFields(ctx context.Context) ([]Field, error) {
	var fields []Field
	if err := r.db.WithContext(ctx).Order("id asc").Find(&fields).Error; err != nil {
		return nil, err
	}
	return fields, nil
}

// UpdateUnreferencedField rewrites a field unless any slot already references it.
func (r *venueRepository) UpdateUnreferencedField(ctx context.Context, id uint, input FieldInput) (*Field, error) {
	var field Field
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&field, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return common.ErrFieldNotFound
			}
			return err
		}

		var slots int64
		if err := tx.Model(&TimeSlot{}).Where("field_id = ?", id).Count(&slots).Error; err != nil {
			return err
		}
		if slots > 0 {
			return common.ErrFieldLocked
		}

		field.Sport = input.Sport
		field.Address = input.Address
		field.PricePerHour = input.PricePerHour
		field.Description = input.Description
		field.Amenities = models.StringSlice(input.Amenities)
		return tx.Save(&field).Error
	})
	if err != nil {
		return nil, err
	}
	return &field, nil
}

// CreateSlots inserts slots, ignoring any whose (field, start_time) already exists.
// It returns the number of rows actually inserted.
func (r *venueRepository) CreateSlots(ctx context.Context, slots []TimeSlot) (int64, error) {
	if len(slots) == 0 {
		return 0, nil
	}
	res := r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).CreateInBatches(slots, 200)
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}

// ExistingSlotStarts returns the unix start times of the field's slots in [from, to).
func (r *venueRepository) ExistingSlotStarts(ctx context.Context, fieldID uint, from, to time.Time) (map[int64]struct{}, error) {
	var starts []time.Time
	err := r.db.WithContext(ctx).Model(&TimeSlot{}).
		Where("field_id = ? AND start_time >= ? AND start_time < ?", fieldID, from, to).
		Pluck("start_time", &starts).Error
	if err != nil {
		return nil, err
	}
	set := make(map[int64]struct{}, len(starts))
	for _, s := range starts {
		set[s.Unix()] = struct{}{}
	}
	return set, nil
}

// ListSlotsForFieldBetween lists the field's slots starting in [from, to), earliest first.
func (r *venueRepository) ListSlotsForFieldBetween(ctx context.Context, fieldID uint, from, to time.Time) ([]TimeSlot, error) {
	var slots []TimeSlot
	err := r.db.WithContext(ctx).Preload("Field").
		Where("field_id = ? AND start_time >= ? AND start_time < ?", fieldID, from, to).
		Order("start_time asc").
		Find(&slots).Error
	if err != nil {
		return nil, err
	}
	return slots, nil
}

func (r *venueRepository) GetSlotByID(ctx context.Context, id uint) (*TimeSlot, error) {
	var slot TimeSlot
	if err := r.db.WithContext(ctx).Preload("Field").First(&slot, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.ErrSlotNotFound
		}
		return nil, err
	}
	return &slot, nil
}

// GetSlotForUpdate reads the slot holding a row lock until the surrounding transaction ends.
func (r *venueRepository) GetSlotForUpdate(ctx context.Context, id uint) (*TimeSlot, error) {
	var slot TimeSlot
	if err := r.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}).First(&slot, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.ErrSlotNotFound
		}
		return nil, err
	}
	return &slot, nil
}
