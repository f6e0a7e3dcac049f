package match

import (
	"time"

	"github.com/DhavalSuthar-24/kickoff/internal/user"
	"github.com/DhavalSuthar-24/kickoff/internal/venue"
	"gorm.io/gorm"
)

type MatchStatus string

const (
	StatusActive    MatchStatus = "active"
	StatusCompleted MatchStatus = "completed"
	StatusCancelled MatchStatus = "cancelled"
)

// PlayerStatus is a roster entry's state. confirmed may become noshow after completion;
// waitlist may become confirmed through promotion.
type PlayerStatus string

const (
	PlayerConfirmed PlayerStatus = "confirmed"
	PlayerWaitlist  PlayerStatus = "waitlist"
	PlayerNoShow    PlayerStatus = "noshow"
)

const (
	DefaultMaxPlayers = 10
)

// Match is a pickup game bound to one booked slot. Terminal statuses never return to active.
type Match struct {
	gorm.Model
	Title           string          `gorm:"size:255;not null" json:"title"`
	FieldID         *uint           `gorm:"index" json:"field_id"`
	Field           *venue.Field    `gorm:"foreignKey:FieldID" json:"field,omitempty"`
	CaptainID       uint            `gorm:"index;not null" json:"captain_id"`
	Captain         *user.User      `gorm:"foreignKey:CaptainID" json:"-"`
	StartsAt        time.Time       `gorm:"not null;index" json:"starts_at"`
	MaxPlayers      int             `gorm:"not null" json:"max_players"`
	Status          MatchStatus     `gorm:"type:varchar(20);default:'active';not null;index" json:"status"`
	IsPrivate       bool            `gorm:"not null" json:"is_private"`
	WaitlistEnabled bool            `gorm:"not null" json:"waitlist_enabled"`
	SlotID          *uint           `gorm:"uniqueIndex" json:"slot_id"`
	Slot            *venue.TimeSlot `gorm:"foreignKey:SlotID" json:"-"`
	InviteCode      string          `gorm:"size:10;uniqueIndex;not null" json:"invite_code"`
	Players         []MatchPlayer   `gorm:"foreignKey:MatchID" json:"-"`
}

// MatchPlayer is a roster entry. Leaving deletes the row; a rejoin creates a fresh one.
type MatchPlayer struct {
	ID        uint         `gorm:"primarykey" json:"id"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
	MatchID   uint         `gorm:"not null;uniqueIndex:idx_match_player" json:"match_id"`
	UserID    uint         `gorm:"not null;uniqueIndex:idx_match_player;index" json:"user_id"`
	User      *user.User   `gorm:"foreignKey:UserID" json:"-"`
	Status    PlayerStatus `gorm:"type:varchar(20);not null;index" json:"status"`
	JoinedAt  time.Time    `gorm:"not null;index" json:"joined_at"`
}

// RosterResult reports where a join left the user.
type RosterResult struct {
	MatchID       uint         `json:"match_id"`
	SeatedAs      PlayerStatus `json:"seated_as"`
	AlreadyMember bool         `json:"already_member"`
}

type CreateMatchInput struct {
	Title           string `json:"title" binding:"required,max=255"`
	SlotID          uint   `json:"slot_id" binding:"required"`
	MaxPlayers      *int   `json:"max_players"`
	WaitlistEnabled *bool  `json:"waitlist_enabled"`
	IsPrivate       bool   `json:"is_private"`
}

type ListMatchesInput struct {
	Page  int `form:"page,default=1" binding:"min=1"`
	Limit int `form:"limit,default=20" binding:"min=1,max=100"`
}

// PlayerView is a roster entry as shown to clients.
type PlayerView struct {
	UserID              uint         `json:"user_id"`
	FullName            string       `json:"full_name"`
	PhotoURL            string       `json:"photo_url"`
	Level               string       `json:"level"`
	Position            string       `json:"position"`
	SkillRating         float64      `json:"skill_rating"`
	SportsmanshipRating float64      `json:"sportsmanship_rating"`
	Status              PlayerStatus `json:"status"`
	JoinedAt            time.Time    `json:"joined_at"`
}

// MatchSummary is a match with its derived roster counts and price.
type MatchSummary struct {
	ID              uint                `json:"id"`
	Title           string              `json:"title"`
	StartsAt        time.Time           `json:"starts_at"`
	MaxPlayers      int                 `json:"max_players"`
	Status          MatchStatus         `json:"status"`
	IsPrivate       bool                `json:"is_private"`
	WaitlistEnabled bool                `json:"waitlist_enabled"`
	InviteCode      string              `json:"invite_code"`
	SlotID          *uint               `json:"slot_id"`
	Captain         *user.PublicProfile `json:"captain,omitempty"`
	Field           *venue.Field        `json:"field,omitempty"`
	Price           *int                `json:"price"`
	ConfirmedCount  int                 `json:"confirmed_count"`
	WaitlistCount   int                 `json:"waitlist_count"`
	NoShowCount     int                 `json:"noshow_count"`
}

// MatchDetail adds the roster, waitlist in promotion order, and no-shows.
type MatchDetail struct {
	MatchSummary
	Players  []PlayerView `json:"players"`
	Waitlist []PlayerView `json:"waitlist"`
	NoShows  []PlayerView `json:"no_shows"`
}
