package sport

import (
	"github.com/DhavalSuthar-24/kickoff/internal/common"
	"gorm.io/gorm"
)

var (
	ErrSportNotFound = common.NewAppError(common.KindNotFound, "sport_not_found", "sport not found")
	ErrSportExists   = common.NewAppError(common.KindConflict, "sport_exists", "a sport with this name already exists")
)

// Sport is a catalog entry venue owners pick from when describing a field.
type Sport struct {
	gorm.Model
	Name              string `json:"name" gorm:"uniqueIndex;size:100;not null"`
	Description       string `json:"description"`
	Icon              string `json:"icon" gorm:"size:255"`
	DefaultMaxPlayers int    `json:"default_max_players" gorm:"not null"`
}

type CreateSportRequest struct {
	Name              string `json:"name" binding:"required,min=3,max=100"`
	Description       string `json:"description" binding:"omitempty,max=5000"`
	Icon              string `json:"icon" binding:"omitempty,url,max=255"`
	DefaultMaxPlayers int    `json:"default_max_players" binding:"required,min=1,max=100"`
}

type ListSportsInput struct {
	Page   int    `form:"page,default=1" binding:"min=1"`
	Limit  int    `form:"limit,default=20" binding:"min=1,max=100"`
	Search string `form:"search" binding:"omitempty,max=100"`
}

// DefaultCatalog is seeded on startup when missing.
var DefaultCatalog = []Sport{
	{Name: "football", Description: "Eleven-a-side or small-sided football", DefaultMaxPlayers: 14},
	{Name: "futsal", Description: "Five-a-side indoor football", DefaultMaxPlayers: 10},
	{Name: "basketball", Description: "Full or half court basketball", DefaultMaxPlayers: 10},
	{Name: "volleyball", Description: "Indoor or beach volleyball", DefaultMaxPlayers: 12},
	{Name: "tennis", Description: "Singles or doubles tennis", DefaultMaxPlayers: 4},
}
