package model

// Book is a catalog entry (table livro). Column names are lower case so the
// same schema works unquoted on PostgreSQL and SQLite.
type Book struct {
	ID        uint   `gorm:"column:idlivro;primaryKey;autoIncrement"`
	Title     string `gorm:"column:titulo;not null"`
	Year      int    `gorm:"column:ano;not null"`
	Edition   string `gorm:"column:edicao;not null"`
	Publisher string `gorm:"column:editora;not null"`
	ISBN      string `gorm:"column:isbn;not null;uniqueIndex"`
	Stock     *Stock `gorm:"foreignKey:BookID;references:ID;constraint:OnUpdate:RESTRICT,OnDelete:RESTRICT"`
}

func (Book) TableName() string { return "livro" }

// BookFields are the scalar columns a client may set on a book.
type BookFields struct {
	Title     string
	Year      int
	Edition   string
	Publisher string
	ISBN      string
}

// NewBook is everything needed to create a book in one transaction.
// InitialStock is nil when the client did not send one; a pointer to zero
// still creates a stock row.
type NewBook struct {
	BookFields
	InitialStock *int
	AuthorIDs    []uint
	GenreIDs     []uint
}

// BookDetail is a book joined with its stock quantity and the distinct
// names of its authors and genres.
type BookDetail struct {
	Book
	Quantity *int
	Authors  []string
	Genres   []string
}
