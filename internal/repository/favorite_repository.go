package repository

import (
	"context"

	"gorestaurant/internal/models"

	"gorm.io/gorm"
)

type FavoriteRepository interface {
	Create(ctx context.Context, favorite *models.Favorite) error
	FindByName(ctx context.Context, name string) ([]models.Favorite, error)
	GetAll(ctx context.Context) ([]models.Favorite, error)
	Delete(ctx context.Context, id uint) error
}

type favoriteRepository struct {
	db *gorm.DB
}

func NewFavoriteRepository(db *gorm.DB) FavoriteRepository {
	return &favoriteRepository{db: db}
}

func (r *favoriteRepository) Create(ctx context.Context, favorite *models.Favorite) error {
	return r.db.WithContext(ctx).Create(favorite).Error
}

func (r *favoriteRepository) FindByName(ctx context.Context, name string) ([]models.Favorite, error) {
	var favorites []models.Favorite
	err := r.db.WithContext(ctx).Where("name = ?", name).Order("id").Find(&favorites).Error
	return favorites, err
}

func (r *favoriteRepository) GetAll(ctx context.Context) ([]models.Favorite, error) {
	var favorites []models.Favorite
	err := r.db.WithContext(ctx).Order("id").Find(&favorites).Error
	return favorites, err
}

func (r *favoriteRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.Favorite{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
