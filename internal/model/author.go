package model

type Author struct {
	ID   uint   `gorm:"column:idautor;primaryKey;autoIncrement"`
	Name string `gorm:"column:nome;not null;index"`
}

func (Author) TableName() string { return "autor" }

// BookAuthor links a book to one of its authors (table livroautor).
type BookAuthor struct {
	BookID   uint    `gorm:"column:idlivro;primaryKey;autoIncrement:false"`
	AuthorID uint    `gorm:"column:idautor;primaryKey;autoIncrement:false"`
	Book     *Book   `gorm:"foreignKey:BookID;references:ID;constraint:OnUpdate:RESTRICT,OnDelete:RESTRICT"`
	Author   *Author `gorm:"foreignKey:AuthorID;references:ID;constraint:OnUpdate:RESTRICT,OnDelete:RESTRICT"`
}

func (BookAuthor) TableName() string { return "livroautor" }
