package repository

import (
	"context"

	"github.com/snnyvrz/shelfshare-catalog/internal/model"
	"gorm.io/gorm"
)

type GenreRepository interface {
	List(ctx context.Context) ([]model.Genre, error)
}

type GormGenreRepository struct {
	db *gorm.DB
}

func NewGormGenreRepository(db *gorm.DB) *GormGenreRepository {
	return &GormGenreRepository{db: db}
}

// List returns every genre ordered by name.
func (r *GormGenreRepository) List(ctx context.Context) ([]model.Genre, error) {
	var genres []model.Genre
	if err := r.db.WithContext(ctx).
		Order("nomedogenero ASC").
		Find(&genres).Error; err != nil {

		return nil, err
	}
	return genres, nil
}
