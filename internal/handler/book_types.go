package handler

type CreateBookRequest struct {
	Title        string `json:"titulo" binding:"required"`
	Year         int    `json:"ano" binding:"required"`
	Edition      string `json:"edicao" binding:"required"`
	Publisher    string `json:"editora" binding:"required"`
	ISBN         string `json:"isbn" binding:"required"`
	InitialStock *int   `json:"estoqueInicial,omitempty" example:"5"`
	AuthorIDs    []uint `json:"autoresIds,omitempty"`
	GenreIDs     []uint `json:"generosIds,omitempty"`
}

type UpdateBookRequest struct {
	Title     string `json:"titulo" binding:"required"`
	Year      int    `json:"ano" binding:"required"`
	Edition   string `json:"edicao" binding:"required"`
	Publisher string `json:"editora" binding:"required"`
	ISBN      string `json:"isbn" binding:"required"`
}

// UpdateStockRequest uses a pointer so that zero is a valid quantity.
type UpdateStockRequest struct {
	NewQuantity *int `json:"novaQuantidade" binding:"required" example:"3"`
}

type Book struct {
	ID        uint    `json:"idLivro"`
	Title     string  `json:"titulo"`
	Year      int     `json:"ano"`
	Edition   string  `json:"edicao"`
	Publisher string  `json:"editora"`
	ISBN      string  `json:"isbn"`
	Stock     *int    `json:"estoque"`
	Authors   *string `json:"autores"`
	Genres    *string `json:"generos"`
}

type Genre struct {
	ID   uint   `json:"idGenero"`
	Name string `json:"nomeDoGenero"`
}

type Author struct {
	ID   uint   `json:"idAutor"`
	Name string `json:"nome"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type CreateBookResponse struct {
	Message string `json:"message"`
	ID      uint   `json:"id"`
}
