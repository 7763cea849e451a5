package services

import (
	"context"

	"gorestaurant/internal/models"
	"gorestaurant/internal/repository"
	"gorestaurant/pkg/logger"
)

type FavoriteService interface {
	// CreateFavorite stores favorite unless one with the same name exists,
	// in which case the existing record is returned and created is false.
	CreateFavorite(ctx context.Context, favorite *models.Favorite) (result *models.Favorite, created bool, err error)
	FindByName(ctx context.Context, name string) ([]models.Favorite, error)
	GetAllFavorites(ctx context.Context) ([]models.Favorite, error)
	DeleteFavorite(ctx context.Context, id uint) error
}

type favoriteService struct {
	favoriteRepo repository.FavoriteRepository
	logger       *logger.Logger
}

func NewFavoriteService(favoriteRepo repository.FavoriteRepository, log *logger.Logger) FavoriteService {
	return &favoriteService{
		favoriteRepo: favoriteRepo,
		logger:       log.WithComponent("favorite_service"),
	}
}

func (s *favoriteService) CreateFavorite(ctx context.Context, favorite *models.Favorite) (*models.Favorite, bool, error) {
	existing, err := s.favoriteRepo.FindByName(ctx, favorite.Name)
	if err != nil {
		return nil, false, err
	}
	if len(existing) > 0 {
		return &existing[0], false, nil
	}

	if err := s.favoriteRepo.Create(ctx, favorite); err != nil {
		// A concurrent request may have won the unique index on name.
		existing, findErr := s.favoriteRepo.FindByName(ctx, favorite.Name)
		if findErr == nil && len(existing) > 0 {
			return &existing[0], false, nil
		}
		return nil, false, err
	}

	s.logger.Info("Favorite created", "favorite_id", favorite.ID, "name", favorite.Name)
	return favorite, true, nil
}

func (s *favoriteService) FindByName(ctx context.Context, name string) ([]models.Favorite, error) {
	return s.favoriteRepo.FindByName(ctx, name)
}

func (s *favoriteService) GetAllFavorites(ctx context.Context) ([]models.Favorite, error) {
	return s.favoriteRepo.GetAll(ctx)
}

func (s *favoriteService) DeleteFavorite(ctx context.Context, id uint) error {
	if err := s.favoriteRepo.Delete(ctx, id); err != nil {
		return translate(err)
	}
	s.logger.Info("Favorite deleted", "favorite_id", id)
	return nil
}
