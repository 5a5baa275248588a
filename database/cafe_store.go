package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/yeremiapane/cafe-api/models"
	"gorm.io/gorm"
)

var (
	ErrNotFound            = errors.New("record not found")
	ErrConstraintViolation = errors.New("constraint violation")
	ErrEmptyCollection     = errors.New("no cafes in the database")
)

// CafeStore is the persistence contract for cafe listings.
type CafeStore interface {
	GetByID(ctx context.Context, id uint) (*models.Cafe, error)
	GetAll(ctx context.Context) ([]models.Cafe, error)
	GetByLocation(ctx context.Context, location string) ([]models.Cafe, error)
	Random(ctx context.Context, pick func(n int) int) (*models.Cafe, error)
	Insert(ctx context.Context, in models.CafeInput) (*models.Cafe, error)
	UpdatePrice(ctx context.Context, id uint, newPrice *string) error
	Delete(ctx context.Context, id uint) error
}

type GormCafeStore struct {
	DB *gorm.DB
}

func NewCafeStore(db *gorm.DB) *GormCafeStore {
	return &GormCafeStore{DB: db}
}

func (s *GormCafeStore) GetByID(ctx context.Context, id uint) (*models.Cafe, error) {
	var cafe models.Cafe
	if err := s.DB.WithContext(ctx).First(&cafe, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("cafe %d: %w", id, ErrNotFound)
		}
		return nil, err
	}
	return &cafe, nil
}

func (s *GormCafeStore) GetAll(ctx context.Context) ([]models.Cafe, error) {
	var cafes []models.Cafe
	if err := s.DB.WithContext(ctx).Order("id").Find(&cafes).Error; err != nil {
		return nil, err
	}
	return cafes, nil
}

func (s *GormCafeStore) GetByLocation(ctx context.Context, location string) ([]models.Cafe, error) {
	var cafes []models.Cafe
	err := s.DB.WithContext(ctx).
		Where("location = ?", location).
		Order("id").
		Find(&cafes).Error
	if err != nil {
		return nil, err
	}
	return cafes, nil
}

// Random scans the whole table and returns the cafe at index pick(n).
func (s *GormCafeStore) Random(ctx context.Context, pick func(n int) int) (*models.Cafe, error) {
	cafes, err := s.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	if len(cafes) == 0 {
		return nil, ErrEmptyCollection
	}
	return &cafes[pick(len(cafes))], nil
}

func (s *GormCafeStore) Insert(ctx context.Context, in models.CafeInput) (*models.Cafe, error) {
	if col := in.MissingColumn(); col != "" {
		return nil, fmt.Errorf("%w: NOT NULL constraint failed: cafe.%s", ErrConstraintViolation, col)
	}

	cafe := in.Cafe()
	if err := s.DB.WithContext(ctx).Create(&cafe).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("%w: %v", ErrConstraintViolation, err)
		}
		return nil, err
	}
	return &cafe, nil
}

// UpdatePrice sets coffee_price on one cafe. A nil price stores NULL.
func (s *GormCafeStore) UpdatePrice(ctx context.Context, id uint, newPrice *string) error {
	db := s.DB.WithContext(ctx)
	res := db.Model(&models.Cafe{}).Where("id = ?", id).Update("coffee_price", newPrice)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected > 0 {
		return nil
	}

	// MySQL reports zero affected rows when the value is unchanged.
	var n int64
	if err := db.Model(&models.Cafe{}).Where("id = ?", id).Count(&n).Error; err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("cafe %d: %w", id, ErrNotFound)
	}
	return nil
}

func (s *GormCafeStore) Delete(ctx context.Context, id uint) error {
	res := s.DB.WithContext(ctx).Delete(&models.Cafe{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("cafe %d: %w", id, ErrNotFound)
	}
	return nil
}
