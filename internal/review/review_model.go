package review

import (
	"strings"
	"time"

	"github.com/DhavalSuthar-24/kickoff/internal/common"
)

// ReviewCategory is the rating dimension a review feeds.
type ReviewCategory string

const (
	CategorySportsmanship ReviewCategory = "sportsmanship"
	CategorySkill         ReviewCategory = "skill"
)

const (
	MinRating = 1
	MaxRating = 10
)

// ParseCategory maps a request string onto a category. Unknown names are rejected.
func ParseCategory(v string) (ReviewCategory, error) {
	switch ReviewCategory(strings.ToLower(strings.TrimSpace(v))) {
	case CategorySportsmanship:
		return CategorySportsmanship, nil
	case CategorySkill:
		return CategorySkill, nil
	default:
		return "", common.ErrInvalidCategory
	}
}

// column is the users column holding the category's running mean.
func (c ReviewCategory) column() (string, error) {
	switch c {
	case CategorySportsmanship:
		return "sportsmanship_rating", nil
	case CategorySkill:
		return "skill_rating", nil
	default:
		return "", common.ErrInvalidCategory
	}
}

// PlayerReview is one captain's rating of one player in one category for one match.
type PlayerReview struct {
	ID         uint           `gorm:"primarykey" json:"id"`
	CreatedAt  time.Time      `json:"created_at"`
	MatchID    uint           `gorm:"not null;uniqueIndex:idx_review_tuple" json:"match_id"`
	ReviewerID uint           `gorm:"not null;uniqueIndex:idx_review_tuple" json:"reviewer_id"`
	SubjectID  uint           `gorm:"not null;uniqueIndex:idx_review_tuple;index" json:"subject_id"`
	Category   ReviewCategory `gorm:"type:varchar(20);not null;uniqueIndex:idx_review_tuple" json:"category"`
	Rating     int            `gorm:"not null" json:"rating"`
}

// Entry is a validated review inside a settlement batch.
type Entry struct {
	SubjectID uint
	Category  ReviewCategory
	Rating    int
}

// Batch is everything a captain submits when settling a match.
type Batch struct {
	Reviews []Entry
	NoShows []uint
}

// SettlementResult reports which items of a batch changed anything.
type SettlementResult struct {
	MatchID        uint `json:"match_id"`
	ReviewsApplied int  `json:"reviews_applied"`
	ReviewsSkipped int  `json:"reviews_skipped"`
	ReviewsUnrated int  `json:"reviews_unrated"`
	NoShowsApplied int  `json:"no_shows_applied"`
	NoShowsSkipped int  `json:"no_shows_skipped"`
}

type ReviewInput struct {
	SubjectID  uint   `json:"subject_id" binding:"required"`
	ReviewType string `json:"review_type" binding:"required"`
	Rating     int    `json:"rating" binding:"required"`
}

type NoShowInput struct {
	SubjectID uint `json:"subject_id" binding:"required"`
}

type SettlementInput struct {
	Reviews []ReviewInput `json:"reviews" binding:"dive"`
	NoShows []NoShowInput `json:"no_shows" binding:"dive"`
}

// Batch converts the request into a batch, rejecting unknown review types.
func (in SettlementInput) Batch() (Batch, error) {
	batch := Batch{
		Reviews: make([]Entry, 0, len(in.Reviews)),
		NoShows: make([]uint, 0, len(in.NoShows)),
	}
	for _, r := range in.Reviews {
		category, err := ParseCategory(r.ReviewType)
		if err != nil {
			return Batch{}, err
		}
		batch.Reviews = append(batch.Reviews, Entry{SubjectID: r.SubjectID, Category: category, Rating: r.Rating})
	}
	for _, n := range in.NoShows {
		batch.NoShows = append(batch.NoShows, n.SubjectID)
	}
	return batch, nil
}
