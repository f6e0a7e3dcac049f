package user

import (
	"context"
	"errors"

	"github.com/DhavalSuthar-24/kickoff/internal/common"
	"gorm.io/gorm"
)

// UserRepository defines persistence operations for users.
type UserRepository interface {
	Create(ctx context.Context, u *User) error
	GetByID(ctx context.Context, id uint) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	Exists(ctx context.Context, id uint) (bool, error)
	RoleOf(ctx context.Context, id uint) (string, error)
	SetRole(ctx context.Context, id uint, role Role) error
	UpdateProfile(ctx context.Context, id uint, input UpdateProfileInput) (*User, error)
	IncrementNoShow(ctx context.Context, id uint) error
}

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a repository bound to db, which may be a transaction.
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, u *User) error {
	if u.Role == "" {
		u.Role = RoleAthlete
	}
	if err := r.db.WithContext(ctx).Create(u).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return common.ErrEmailTaken
		}
		return err
	}
	return nil
}

func (r *userRepository) GetByID(ctx context.Context, id uint) (*User, error) {
	var u User
	if err := r.db.WithContext(ctx).First(&u, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*User, error) {
	var u User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (r *userRepository) Exists(ctx context.Context, id uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&User{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *userRepository) RoleOf(ctx context.Context, id uint) (string, error) {
	u, err := r.GetByID(ctx, id)
	if err != nil {
		return "", err
	}
	return string(u.Role), nil
}

func (r *userRepository) SetRole(ctx context.Context, id uint, role Role) error {
	res := r.db.WithContext(ctx).Model(&User{}).Where("id = ?", id).Update("role", role)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return common.ErrUserNotFound
	}
	return nil
}

func (r *userRepository) UpdateProfile(ctx context.Context, id uint, input UpdateProfileInput) (*User, error) {
	updates := map[string]interface{}{}
	if input.FullName != nil {
		updates["full_name"] = *input.FullName
	}
	if input.PhotoURL != nil {
		updates["photo_url"] = *input.PhotoURL
	}
	if input.Level != nil {
		updates["level"] = *input.Level
	}
	if input.Position != nil {
		updates["position"] = *input.Position
	}

	if len(updates) > 0 {
		res := r.db.WithContext(ctx).Model(&User{}).Where("id = ?", id).Updates(updates)
		if res.Error != nil {
			return nil, res.Error
		}
		if res.RowsAffected == 0 {
			return nil, common.ErrUserNotFound
		}
	}
	return r.GetByID(ctx, id)
}

// IncrementNoShow adds one to the user's no-show counter in a single UPDATE.
func (r *userRepository) IncrementNoShow(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Model(&User{}).Where("id = ?", id).
		UpdateColumn("no_show_count", gorm.Expr("no_show_count + ?", 1))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return common.ErrUserNotFound
	}
	return nil
}
