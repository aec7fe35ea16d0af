package model

type Genre struct {
	ID   uint   `gorm:"column:idgenero;primaryKey;autoIncrement"`
	Name string `gorm:"column:nomedogenero;not null;index"`
}

func (Genre) TableName() string { return "genero" }

// BookGenre links a book to one of its genres (table livrogenero).
type BookGenre struct {
	BookID  uint   `gorm:"column:idlivro;primaryKey;autoIncrement:false"`
	GenreID uint   `gorm:"column:idgenero;primaryKey;autoIncrement:false"`
	Book    *Book  `gorm:"foreignKey:BookID;references:ID;constraint:OnUpdate:RESTRICT,OnDelete:RESTRICT"`
	Genre   *Genre `gorm:"foreignKey:GenreID;references:ID;constraint:OnUpdate:RESTRICT,OnDelete:RESTRICT"`
}

func (BookGenre) TableName() string { return "livrogenero" }
