package repository

import (
	"context"

	"github.com/snnyvrz/shelfshare-catalog/internal/model"
	"gorm.io/gorm"
)

type AuthorRepository interface {
	List(ctx context.Context) ([]model.Author, error)
}

type GormAuthorRepository struct {
	db *gorm.DB
}

func NewGormAuthorRepository(db *gorm.DB) *GormAuthorRepository {
	return &GormAuthorRepository{db: db}
}

func (r *GormAuthorRepository) List(ctx context.Context) ([]model.Author, error) {
	var authors []model.Author
	if err := r.db.WithContext(ctx).
		Order("nome ASC").
		Find(&authors).Error; err != nil {

		return nil, err
	}
	return authors, nil
}
