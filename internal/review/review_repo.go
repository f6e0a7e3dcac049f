package review

import (
	"context"

	"github.com/DhavalSuthar-24/kickoff/internal/common"
	"github.com/DhavalSuthar-24/kickoff/internal/user"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ReviewRepository stores reviews and folds them into user rating aggregates
type ReviewRepository interface {
	InsertIfAbsent(ctx context.Context, review *PlayerReview) (bool, error)
	ApplyRating(ctx context.Context, subjectID uint, category ReviewCategory, rating int) error
	ListForMatch(ctx context.Context, matchID uint) ([]PlayerReview, error)
	WithTransaction(ctx context.Context, txFunc func(ReviewRepository) error) error
}

type reviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) ReviewRepository {
	return &reviewRepository{db: db}
}

func (r *reviewRepository) WithTransaction(ctx context.Context, txFunc func(ReviewRepository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return txFunc(&reviewRepository{db: tx})
	})
}

// InsertIfAbsent stores the review unless one already exists for the same match,
// reviewer, subject and category. It reports whether a row was written.
func (r *reviewRepository) InsertIfAbsent(ctx context.Context, review *PlayerReview) (bool, error) {
	res := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(review)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

// ApplyRating folds one rating into the subject's running mean for the category and
// bumps the review counter shared by both categories. Both columns are computed from
// the row's current values in a single UPDATE, so concurrent settlements for the same
// subject cannot lose an update.
func (r *reviewRepository) ApplyRating(ctx context.Context, subjectID uint, category ReviewCategory, rating int) error {
	if rating < MinRating || rating > MaxRating {
		return common.ErrInvalidRating
	}
	column, err := category.column()
	if err != nil {
		return err
	}

	res := r.db.WithContext(ctx).Model(&user.User{}).
		Where("id = ?", subjectID).
		UpdateColumns(map[string]interface{}{
			column:          gorm.Expr("("+column+" * reviews_count + ?) / (reviews_count + 1)", float64(rating)),
			"reviews_count": gorm.Expr("reviews_count + 1"),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return common.ErrUserNotFound
	}
	return nil
}

func (r *reviewRepository) ListForMatch(ctx context.Context, matchID uint) ([]PlayerReview, error) {
	var reviews []PlayerReview
	err := r.db.WithContext(ctx).
		Where("match_id = ?", matchID).
		Order("id asc").
		Find(&reviews).Error
	return reviews, err
}
