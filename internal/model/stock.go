package model

// Stock holds the number of copies of a book (table estoque). The book id is
// the primary key, so a book has at most one stock row.
type Stock struct {
	BookID   uint `gorm:"column:idlivro;primaryKey;autoIncrement:false"`
	Quantity int  `gorm:"column:quantidade;not null"`
}

func (Stock) TableName() string { return "estoque" }
