package sport

import (
	"context"
	"errors"
	"strings"

	"github.com/DhavalSuthar-24/kickoff/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SportRepository interface {
	CreateSport(ctx context.Context, sport *Sport) error
	GetSportByID(ctx context.Context, id uint) (*Sport, error)
	FindSportByName(ctx context.Context, name string) (*Sport, error)
	GetAllSports(ctx context.Context, page, pageSize int, searchTerm string) ([]Sport, int64, error)
	SeedDefaults(ctx context.Context) (int64, error)
}

type sportRepository struct {
	db *gorm.DB
}

// NewSportRepository creates a new instance of SportRepository.
func NewSportRepository(db *gorm.DB) SportRepository {
	return &sportRepository{db: db}
}

func (r *sportRepository) CreateSport(ctx context.Context, sport *Sport) error {
	sport.Name = normalizeName(sport.Name)
	if err := r.db.WithContext(ctx).Create(sport).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrSportExists
		}
		return err
	}
	return nil
}

func (r *sportRepository) GetSportByID(ctx context.Context, id uint) (*Sport, error) {
	var sport Sport
	if err := r.db.WithContext(ctx).First(&sport, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSportNotFound
		}
		return nil, err
	}
	return &sport, nil
}

func (r *sportRepository) FindSportByName(ctx context.Context, name string) (*Sport, error) {
	var sport Sport
	if err := r.db.WithContext(ctx).Where("name = ?", normalizeName(name)).First(&sport).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSportNotFound
		}
		return nil, err
	}
	return &sport, nil
}

func (r *sportRepository) GetAllSports(ctx context.Context, page, pageSize int, searchTerm string) ([]Sport, int64, error) {
	var sports []Sport
	var total int64

	query := r.db.WithContext(ctx).Model(&Sport{})
	if searchTerm != "" {
		like := "%" + strings.ToLower(searchTerm) + "%"
		query = query.Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", like, like)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset, limit := models.Page(page, pageSize)
	if err := query.Order("name asc").Offset(offset).Limit(limit).Find(&sports).Error; err != nil {
		return nil, 0, err
	}
	return sports, total, nil
}

// SeedDefaults inserts the catalog entries that do not exist yet and returns how
// many were added.
func (r *sportRepository) SeedDefaults(ctx context.Context) (int64, error) {
	sports := make([]Sport, len(DefaultCatalog))
	copy(sports, DefaultCatalog)
	res := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "name"}}, DoNothing: true}).
		Create(&sports)
	return res.RowsAffected, res.Error
}

func normalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
