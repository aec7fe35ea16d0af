package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/snnyvrz/shelfshare-catalog/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type BookRepository interface {
	List(ctx context.Context) ([]model.BookDetail, error)
	FindByID(ctx context.Context, id uint) (*model.BookDetail, error)
	Create(ctx context.Context, book model.NewBook) (uint, error)
	UpdateMetadata(ctx context.Context, id uint, fields model.BookFields) error
	UpsertStock(ctx context.Context, id uint, quantity int) error
	Delete(ctx context.Context, id uint) error
}

type GormBookRepository struct {
	db *gorm.DB
}

func NewGormBookRepository(db *gorm.DB) *GormBookRepository {
	return &GormBookRepository{db: db}
}

func (r *GormBookRepository) List(ctx context.Context) ([]model.BookDetail, error) {
	var books []model.Book
	if err := r.db.WithContext(ctx).
		Preload("Stock").
		Order("idlivro ASC").
		Find(&books).Error; err != nil {

		return nil, err
	}

	return r.withNames(ctx, books)
}

func (r *GormBookRepository) FindByID(ctx context.Context, id uint) (*model.BookDetail, error) {
	var book model.Book
	if err := r.db.WithContext(ctx).
		Preload("Stock").
		First(&book, "idlivro = ?", id).Error; err != nil {

		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("book %d: %w", id, ErrNotFound)
		}
		return nil, err
	}

	details, err := r.withNames(ctx, []model.Book{book})
	if err != nil {
		return nil, err
	}
	return &details[0], nil
}

// Create inserts the book, its optional stock row and its author and genre
// links in one transaction. Nothing is persisted if any insert fails.
func (r *GormBookRepository) Create(ctx context.Context, nb model.NewBook) (uint, error) {
	book := model.Book{
		Title:     nb.Title,
		Year:      nb.Year,
		Edition:   nb.Edition,
		Publisher: nb.Publisher,
		ISBN:      nb.ISBN,
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(&book).Error; err != nil {
			return fmt.Errorf("insert book: %w", err)
		}

		if nb.InitialStock != nil {
			stock := model.Stock{BookID: book.ID, Quantity: *nb.InitialStock}
			if err := tx.Create(&stock).Error; err != nil {
				return fmt.Errorf("insert stock: %w", err)
			}
		}

		if ids := uniqueIDs(nb.AuthorIDs); len(ids) > 0 {
			links := make([]model.BookAuthor, 0, len(ids))
			for _, authorID := range ids {
				links = append(links, model.BookAuthor{BookID: book.ID, AuthorID: authorID})
			}
			if err := tx.Omit(clause.Associations).Create(&links).Error; err != nil {
				return fmt.Errorf("link authors: %w", err)
			}
		}

		if ids := uniqueIDs(nb.GenreIDs); len(ids) > 0 {
			links := make([]model.BookGenre, 0, len(ids))
			for _, genreID := range ids {
				links = append(links, model.BookGenre{BookID: book.ID, GenreID: genreID})
			}
			if err := tx.Omit(clause.Associations).Create(&links).Error; err != nil {
				return fmt.Errorf("link genres: %w", err)
			}
		}

		return nil
	})
	if err != nil {
		return 0, classifyWrite(err)
	}

	return book.ID, nil
}

// UpdateMetadata overwrites the scalar columns of a book. Stock and links
// are left alone.
func (r *GormBookRepository) UpdateMetadata(ctx context.Context, id uint, f model.BookFields) error {
	result := r.db.WithContext(ctx).
		Model(&model.Book{}).
		Where("idlivro = ?", id).
		Updates(map[string]any{
			"titulo":  f.Title,
			"ano":     f.Year,
			"edicao":  f.Edition,
			"editora": f.Publisher,
			"isbn":    f.ISBN,
		})
	if result.Error != nil {
		return classifyWrite(result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("book %d: %w", id, ErrNotFound)
	}
	return nil
}

// UpsertStock sets the quantity of a book, creating its stock row if it
// has none. It is a single INSERT ... ON CONFLICT statement, so concurrent
// callers can never create two rows for the same book.
func (r *GormBookRepository) UpsertStock(ctx context.Context, id uint, quantity int) error {
	stock := model.Stock{BookID: id, Quantity: quantity}

	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "idlivro"}},
			DoUpdates: clause.AssignmentColumns([]string{"quantidade"}),
		}).
		Create(&stock).Error
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("book %d: %w: %w", id, ErrNotFound, err)
		}
		return classifyWrite(err)
	}
	return nil
}

// Delete removes the stock row and links of a book and then the book
// itself, in one transaction. When the book does not exist the whole
// transaction is rolled back and ErrNotFound is returned.
func (r *GormBookRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("idlivro = ?", id).Delete(&model.Stock{}).Error; err != nil {
			return fmt.Errorf("delete stock: %w", err)
		}
		if err := tx.Where("idlivro = ?", id).Delete(&model.BookAuthor{}).Error; err != nil {
			return fmt.Errorf("delete author links: %w", err)
		}
		if err := tx.Where("idlivro = ?", id).Delete(&model.BookGenre{}).Error; err != nil {
			return fmt.Errorf("delete genre links: %w", err)
		}

		result := tx.Where("idlivro = ?", id).Delete(&model.Book{})
		if result.Error != nil {
			if isForeignKeyViolation(result.Error) {
				return fmt.Errorf("book %d: %w: %w", id, ErrReferentialConflict, result.Error)
			}
			return fmt.Errorf("delete book: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return fmt.Errorf("book %d: %w", id, ErrNotFound)
		}
		return nil
	})
}

type linkedName struct {
	BookID uint
	Name   string
}

func (r *GormBookRepository) withNames(ctx context.Context, books []model.Book) ([]model.BookDetail, error) {
	details := make([]model.BookDetail, 0, len(books))
	if len(books) == 0 {
		return details, nil
	}

	ids := make([]uint, 0, len(books))
	for _, b := range books {
		ids = append(ids, b.ID)
	}

	authors, err := r.linkedNames(ctx, "livroautor", "autor", "idautor", "nome", ids)
	if err != nil {
		return nil, fmt.Errorf("load authors: %w", err)
	}

	genres, err := r.linkedNames(ctx, "livrogenero", "genero", "idgenero", "nomedogenero", ids)
	if err != nil {
		return nil, fmt.Errorf("load genres: %w", err)
	}

	for _, b := range books {
		d := model.BookDetail{
			Book:    b,
			Authors: authors[b.ID],
			Genres:  genres[b.ID],
		}
		if b.Stock != nil {
			q := b.Stock.Quantity
			d.Quantity = &q
		}
		details = append(details, d)
	}

	return details, nil
}

// linkedNames returns, per book id, the distinct names reached through a
// junction table. Table and column names are fixed by the callers above.
func (r *GormBookRepository) linkedNames(ctx context.Context, linkTable, refTable, refKey, nameColumn string, ids []uint) (map[uint][]string, error) {
	var rows []linkedName
	if err := r.db.WithContext(ctx).
		Table(linkTable+" AS link").
		Select("link.idlivro AS book_id, ref."+nameColumn+" AS name").
		Joins("JOIN "+refTable+" AS ref ON ref."+refKey+" = link."+refKey).
		Where("link.idlivro IN ?", ids).
		Order("link.idlivro ASC, ref." + nameColumn + " ASC").
		Scan(&rows).Error; err != nil {

		return nil, err
	}

	names := make(map[uint][]string, len(ids))
	seen := make(map[uint]map[string]struct{}, len(ids))
	for _, row := range rows {
		if seen[row.BookID] == nil {
			seen[row.BookID] = make(map[string]struct{})
		}
		if _, dup := seen[row.BookID][row.Name]; dup {
			continue
		}
		seen[row.BookID][row.Name] = struct{}{}
		names[row.BookID] = append(names[row.BookID], row.Name)
	}
	return names, nil
}

func uniqueIDs(ids []uint) []uint {
	out := make([]uint, 0, len(ids))
	seen := make(map[uint]struct{}, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
