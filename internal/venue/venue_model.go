package venue

import (
	"time"

	"github.com/DhavalSuthar-24/kickoff/internal/models"
	"github.com/DhavalSuthar-24/kickoff/internal/user"
	"gorm.io/gorm"
)

type SlotStatus string

const (
	SlotAvailable   SlotStatus = "available"
	SlotBooked      SlotStatus = "booked"
	SlotUnavailable SlotStatus = "unavailable"
)

// VenueProfile is the single business profile a venue owner publishes fields under.
type VenueProfile struct {
	gorm.Model
	OwnerID     uint       `gorm:"uniqueIndex;not null" json:"owner_id"`
	Owner       *user.User `gorm:"foreignKey:OwnerID" json:"-"`
	IINBIN      string     `gorm:"column:iin_bin;size:12;uniqueIndex;not null" json:"iin_bin"`
	Title       string     `gorm:"size:255;not null" json:"title"`
	Description string     `gorm:"type:text" json:"description"`
	PhoneNumber string     `gorm:"size:50" json:"phone_number"`
	Fields      []Field    `gorm:"foreignKey:VenueID" json:"fields"`
}

// Field is a bookable pitch or court. It becomes read-only once slots reference it.
type Field struct {
	gorm.Model
	VenueID      uint               `gorm:"index;not null" json:"venue_id"`
	Venue        *VenueProfile      `gorm:"foreignKey:VenueID" json:"-"`
	Sport        string             `gorm:"size:100;not null" json:"sport"`
	Address      string             `gorm:"size:512;not null" json:"address"`
	PricePerHour int                `gorm:"not null" json:"price_per_hour"`
	Description  string             `gorm:"type:text" json:"description"`
	Amenities    models.StringSlice `gorm:"type:text" json:"amenities"`
}

// TimeSlot is a bookable interval on a field. MatchID is set iff Status is booked.
type TimeSlot struct {
	ID            uint       `gorm:"primarykey" json:"id"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
	FieldID       uint       `gorm:"not null;uniqueIndex:idx_slot_field_start" json:"field_id"`
	Field         *Field     `gorm:"foreignKey:FieldID" json:"-"`
	StartTime     time.Time  `gorm:"not null;uniqueIndex:idx_slot_field_start" json:"start_time"`
	EndTime       time.Time  `gorm:"not null" json:"end_time"`
	PriceOverride *int       `json:"price_override,omitempty"`
	Status        SlotStatus `gorm:"type:varchar(20);default:'available';not null;index" json:"status"`
	MatchID       *uint      `gorm:"index" json:"match_id,omitempty"`
}

// Price returns the slot's override price, falling back to the field's hourly price.
func (s *TimeSlot) Price(field *Field) int {
	if s.PriceOverride != nil {
		return *s.PriceOverride
	}
	if field == nil {
		return 0
	}
	return field.PricePerHour
}

// SlotView is a slot with its derived price.
type SlotView struct {
	TimeSlot
	Price int `json:"price"`
}

func NewSlotView(s TimeSlot) SlotView {
	return SlotView{TimeSlot: s, Price: s.Price(s.Field)}
}

type CreateVenueInput struct {
	Title       string `json:"title" binding:"required,max=255"`
	IINBIN      string `json:"iin_bin" binding:"required,len=12,numeric"`
	Description string `json:"description"`
	PhoneNumber string `json:"phone_number" binding:"omitempty,max=50"`
}

type UpdateVenueInput struct {
	Title       *string `json:"title" binding:"omitempty,max=255"`
	Description *string `json:"description"`
	PhoneNumber *string `json:"phone_number" binding:"omitempty,max=50"`
}

type FieldInput struct {
	Sport        string   `json:"sport" binding:"required,max=100"`
	Address      string   `json:"address" binding:"required,max=512"`
	PricePerHour int      `json:"price_per_hour" binding:"gte=0"`
	Description  string   `json:"description"`
	Amenities    []string `json:"amenities"`
}

// ScheduleInput describes slots to generate: every day in [StartDate, EndDate],
// back-to-back slots of SlotDurationMinutes between StartTime and EndTime (UTC).
type ScheduleInput struct {
	StartDate           string `json:"start_date" binding:"required" example:"2025-07-01"`
	EndDate             string `json:"end_date" binding:"required" example:"2025-07-07"`
	StartTime           string `json:"start_time" binding:"required" example:"09:00"`
	EndTime             string `json:"end_time" binding:"required" example:"22:00"`
	SlotDurationMinutes *int   `json:"slot_duration_minutes" example:"60"`
}

type AvailabilityInput struct {
	Available *bool `json:"available" binding:"required"`
}
