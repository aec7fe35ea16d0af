package testutil

import (
	"testing"

	"github.com/google/uuid"
	"github.com/snnyvrz/shelfshare-catalog/internal/db"
	"github.com/snnyvrz/shelfshare-catalog/internal/model"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewTestDB returns a migrated in-memory SQLite database with foreign keys
// enforced. A single connection is kept so every query sees the same
// in-memory database and writes are serialized.
func NewTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := "file:testdb_" + uuid.New().String() + "?mode=memory&cache=shared&_foreign_keys=1"

	database, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}

	sqlDB, err := database.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB from gorm: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	if err := db.Migrate(database); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return database
}

// NewErrorDB returns a database without any catalog tables, so every
// catalog query fails.
func NewErrorDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := "file:errdb_" + uuid.New().String() + "?mode=memory&cache=shared"

	database, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to connect to error test database: %v", err)
	}

	sqlDB, err := database.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB from gorm: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	return database
}

func SeedAuthor(t *testing.T, database *gorm.DB, name string) model.Author {
	t.Helper()

	author := model.Author{Name: name}
	if err := database.Create(&author).Error; err != nil {
		t.Fatalf("failed to seed author %q: %v", name, err)
	}
	return author
}

func SeedGenre(t *testing.T, database *gorm.DB, name string) model.Genre {
	t.Helper()

	genre := model.Genre{Name: name}
	if err := database.Create(&genre).Error; err != nil {
		t.Fatalf("failed to seed genre %q: %v", name, err)
	}
	return genre
}

// SeedBook inserts a bare book row with no stock and no links.
func SeedBook(t *testing.T, database *gorm.DB, title, isbn string) model.Book {
	t.Helper()

	book := model.Book{
		Title:     title,
		Year:      2000,
		Edition:   "1st",
		Publisher: "Test Press",
		ISBN:      isbn,
	}
	if err := database.Omit("Stock").Create(&book).Error; err != nil {
		t.Fatalf("failed to seed book %q: %v", title, err)
	}
	return book
}

// CreateLoanTable adds a table that references livro from outside the
// catalog, the way a lending service would.
func CreateLoanTable(t *testing.T, database *gorm.DB) {
	t.Helper()

	if err := database.Exec(`CREATE TABLE emprestimo (
		idemprestimo INTEGER PRIMARY KEY AUTOINCREMENT,
		idlivro INTEGER NOT NULL REFERENCES livro(idlivro)
	)`).Error; err != nil {
		t.Fatalf("failed to create loan table: %v", err)
	}
}

func SeedLoan(t *testing.T, database *gorm.DB, bookID uint) {
	t.Helper()

	if err := database.Exec("INSERT INTO emprestimo (idlivro) VALUES (?)", bookID).Error; err != nil {
		t.Fatalf("failed to seed loan for book %d: %v", bookID, err)
	}
}

func CountRows(t *testing.T, database *gorm.DB, table string, bookID uint) int64 {
	t.Helper()

	var n int64
	if err := database.Table(table).Where("idlivro = ?", bookID).Count(&n).Error; err != nil {
		t.Fatalf("failed to count %s rows: %v", table, err)
	}
	return n
}
