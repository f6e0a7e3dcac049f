package user

import "gorm.io/gorm"

type Role string

const (
	RoleAthlete Role = "athlete"
	RoleVenue   Role = "venue"
	RoleAdmin   Role = "admin"
)

// User is an account plus its review aggregates. SportsmanshipRating and SkillRating
// are running means that share ReviewsCount as their denominator.
type User struct {
	gorm.Model
	Email               string  `gorm:"uniqueIndex;size:255;not null" json:"email"`
	PassHash            string  `gorm:"size:255;not null" json:"-"`
	Role                Role    `gorm:"type:varchar(20);default:'athlete';not null" json:"role"`
	FullName            string  `gorm:"size:255" json:"full_name"`
	PhotoURL            string  `gorm:"size:1024" json:"photo_url"`
	Level               string  `gorm:"size:100" json:"level"`
	Position            string  `gorm:"size:100" json:"position"`
	SportsmanshipRating float64 `gorm:"not null;default:0" json:"sportsmanship_rating"`
	SkillRating         float64 `gorm:"not null;default:0" json:"skill_rating"`
	NoShowCount         int     `gorm:"not null;default:0" json:"no_show_count"`
	ReviewsCount        int     `gorm:"not null;default:0" json:"reviews_count"`
}

// UpdateProfileInput is the editable part of a user's own profile.
type UpdateProfileInput struct {
	FullName *string `json:"full_name" binding:"omitempty,max=255"`
	PhotoURL *string `json:"photo_url" binding:"omitempty,url,max=1024"`
	Level    *string `json:"level" binding:"omitempty,max=100"`
	Position *string `json:"position" binding:"omitempty,max=100"`
}

// PublicProfile is what other users see.
type PublicProfile struct {
	ID                  uint    `json:"id"`
	FullName            string  `json:"full_name"`
	PhotoURL            string  `json:"photo_url"`
	Level               string  `json:"level"`
	Position            string  `json:"position"`
	SportsmanshipRating float64 `json:"sportsmanship_rating"`
	SkillRating         float64 `json:"skill_rating"`
	NoShowCount         int     `json:"no_show_count"`
	ReviewsCount        int     `json:"reviews_count"`
}

func (u *User) Public() PublicProfile {
	return PublicProfile{
		ID:                  u.ID,
		FullName:            u.FullName,
		PhotoURL:            u.PhotoURL,
		Level:               u.Level,
		Position:            u.Position,
		SportsmanshipRating: u.SportsmanshipRating,
		SkillRating:         u.SkillRating,
		NoShowCount:         u.NoShowCount,
		ReviewsCount:        u.ReviewsCount,
	}
}
