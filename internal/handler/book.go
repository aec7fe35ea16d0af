package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/snnyvrz/shelfshare-catalog/internal/model"
	"github.com/snnyvrz/shelfshare-catalog/internal/repository"
	"github.com/snnyvrz/shelfshare-catalog/internal/validation"
)

type BookHandler struct {
	books   repository.BookRepository
	genres  repository.GenreRepository
	authors repository.AuthorRepository
}

func NewBookHandler(
	books repository.BookRepository,
	genres repository.GenreRepository,
	authors repository.AuthorRepository,
) *BookHandler {
	return &BookHandler{
		books:   books,
		genres:  genres,
		authors: authors,
	}
}

func (h *BookHandler) RegisterRoutes(r *gin.RouterGroup) {
	books := r.Group("/books")
	{
		books.GET("", h.ListBooks)
		books.GET("/genres", h.ListGenres)
		books.GET("/authors", h.ListAuthors)
		books.GET("/:id", h.GetBookByID)
		books.POST("", h.CreateBook)
		books.PUT("/:id", h.UpdateBook)
		books.PUT("/:id/stock", h.UpdateStock)
		books.DELETE("/:id", h.DeleteBook)
	}
}

// ListBooks godoc
// @Summary      List books
// @Description  Every book with its stock and comma-separated author and genre names
// @Tags         books
// @Produce      json
// @Success      200  {array}   Book
// @Failure      500  {object}  validation.ErrorResponse   "Internal server error"
// @Router       /books [get]
func (h *BookHandler) ListBooks(c *gin.Context) {
	books, err := h.books.List(c.Request.Context())
	if err != nil {
		logFailure(c, "list_books", err)
		writeError(c, http.StatusInternalServerError,
			"BOOK_LIST_FAILED",
			"failed to fetch books",
		)
		return
	}

	res := make([]Book, 0, len(books))
	for _, b := range books {
		res = append(res, toBookResponse(b))
	}

	c.JSON(http.StatusOK, res)
}

// GetBookByID godoc
// @Summary      Get a book by ID
// @Tags         books
// @Produce      json
// @Param        id   path      int  true  "Book ID"
// @Success      200  {object}  Book
// @Failure      400  {object}  validation.ErrorResponse   "Invalid ID"
// @Failure      404  {object}  validation.ErrorResponse   "Book not found"
// @Failure      500  {object}  validation.ErrorResponse   "Internal server error"
// @Router       /books/{id} [get]
func (h *BookHandler) GetBookByID(c *gin.Context) {
	id, ok := parseBookID(c)
	if !ok {
		return
	}

	book, err := h.books.FindByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeError(c, http.StatusNotFound,
				"BOOK_NOT_FOUND",
				"book not found",
			)
			return
		}

		logFailure(c, "get_book", err, "book_id", id)
		writeError(c, http.StatusInternalServerError,
			"BOOK_FETCH_FAILED",
			"failed to fetch book",
		)
		return
	}

	c.JSON(http.StatusOK, toBookResponse(*book))
}

// CreateBook godoc
// @Summary      Create a book
// @Description  Creates the book, its optional initial stock and its author and genre links in one transaction
// @Tags         books
// @Accept       json
// @Produce      json
// @Param        payload  body      CreateBookRequest          true  "Book to create"
// @Success      201      {object}  CreateBookResponse
// @Failure      400      {object}  validation.ErrorResponse   "Validation error"
// @Failure      500      {object}  validation.ErrorResponse   "Book could not be created"
// @Router       /books [post]
func (h *BookHandler) CreateBook(c *gin.Context) {
	var req CreateBookRequest
	if !validation.BindAndValidateJSON(c, &req) {
		return
	}

	nb := model.NewBook{
		BookFields: model.BookFields{
			Title:     req.Title,
			Year:      req.Year,
			Edition:   req.Edition,
			Publisher: req.Publisher,
			ISBN:      req.ISBN,
		},
		InitialStock: req.InitialStock,
		AuthorIDs:    req.AuthorIDs,
		GenreIDs:     req.GenreIDs,
	}

	id, err := h.books.Create(c.Request.Context(), nb)
	if err != nil {
		logFailure(c, "create_book", err,
			"constraint_violation", errors.Is(err, repository.ErrConstraint),
		)
		writeError(c, http.StatusInternalServerError,
			"BOOK_CREATE_FAILED",
			"failed to create book, check the submitted data",
		)
		return
	}

	c.JSON(http.StatusCreated, CreateBookResponse{
		Message: "book created successfully",
		ID:      id,
	})
}

// UpdateBook godoc
// @Summary      Update book data
// @Description  Overwrites title, year, edition, publisher and ISBN. Stock and links are untouched.
// @Tags         books
// @Accept       json
// @Produce      json
// @Param        id       path      int                 true  "Book ID"
// @Param        payload  body      UpdateBookRequest   true  "New book data"
// @Success      200      {object}  MessageResponse
// @Failure      400      {object}  validation.ErrorResponse   "Invalid ID or payload"
// @Failure      404      {object}  validation.ErrorResponse   "Book not found"
// @Failure      500      {object}  validation.ErrorResponse   "Internal server error"
// @Router       /books/{id} [put]
func (h *BookHandler) UpdateBook(c *gin.Context) {
	id, ok := parseBookID(c)
	if !ok {
		return
	}

	var req UpdateBookRequest
	if !validation.BindAndValidateJSON(c, &req) {
		return
	}

	err := h.books.UpdateMetadata(c.Request.Context(), id, model.BookFields{
		Title:     req.Title,
		Year:      req.Year,
		Edition:   req.Edition,
		Publisher: req.Publisher,
		ISBN:      req.ISBN,
	})
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeError(c, http.StatusNotFound,
				"BOOK_NOT_FOUND",
				"book not found",
			)
			return
		}

		logFailure(c, "update_book", err, "book_id", id)
		writeError(c, http.StatusInternalServerError,
			"BOOK_UPDATE_FAILED",
			"failed to update book",
		)
		return
	}

	c.JSON(http.StatusOK, MessageResponse{Message: "book data updated successfully"})
}

// UpdateStock godoc
// @Summary      Set stock quantity
// @Description  Sets the number of copies of a book, creating its stock row if needed
// @Tags         books
// @Accept       json
// @Produce      json
// @Param        id       path      int                  true  "Book ID"
// @Param        payload  body      UpdateStockRequest   true  "New quantity"
// @Success      200      {object}  MessageResponse
// @Failure      400      {object}  validation.ErrorResponse   "Invalid ID or payload"
// @Failure      404      {object}  validation.ErrorResponse   "Book not found"
// @Failure      500      {object}  validation.ErrorResponse   "Internal server error"
// @Router       /books/{id}/stock [put]
func (h *BookHandler) UpdateStock(c *gin.Context) {
	id, ok := parseBookID(c)
	if !ok {
		return
	}

	var req UpdateStockRequest
	if !validation.BindAndValidateJSON(c, &req) {
		return
	}

	if err := h.books.UpsertStock(c.Request.Context(), id, *req.NewQuantity); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeError(c, http.StatusNotFound,
				"BOOK_NOT_FOUND",
				"book not found",
			)
			return
		}

		logFailure(c, "update_stock", err, "book_id", id)
		writeError(c, http.StatusInternalServerError,
			"STOCK_UPDATE_FAILED",
			"failed to update stock",
		)
		return
	}

	c.JSON(http.StatusOK, MessageResponse{Message: "stock updated"})
}

// DeleteBook godoc
// @Summary      Delete a book
// @Description  Deletes the book together with its stock row and author and genre links
// @Tags         books
// @Produce      json
// @Param        id   path      int  true  "Book ID"
// @Success      200  {object}  MessageResponse
// @Failure      400  {object}  validation.ErrorResponse   "Invalid ID"
// @Failure      404  {object}  validation.ErrorResponse   "Book not found"
// @Failure      500  {object}  validation.ErrorResponse   "Book is still referenced or internal error"
// @Router       /books/{id} [delete]
func (h *BookHandler) DeleteBook(c *gin.Context) {
	id, ok := parseBookID(c)
	if !ok {
		return
	}

	if err := h.books.Delete(c.Request.Context(), id); err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			writeError(c, http.StatusNotFound,
				"BOOK_NOT_FOUND",
				"book not found",
			)
		case errors.Is(err, repository.ErrReferentialConflict):
			logFailure(c, "delete_book", err, "book_id", id)
			writeError(c, http.StatusInternalServerError,
				"BOOK_DELETE_CONFLICT",
				"book cannot be deleted while other records reference it (there may be active loans)",
			)
		default:
			logFailure(c, "delete_book", err, "book_id", id)
			writeError(c, http.StatusInternalServerError,
				"BOOK_DELETE_FAILED",
				"failed to delete book",
			)
		}
		return
	}

	c.JSON(http.StatusOK, MessageResponse{Message: "book deleted successfully"})
}

// ListGenres godoc
// @Summary      List genres
// @Description  All genres ordered by name
// @Tags         genres
// @Produce      json
// @Success      200  {array}   Genre
// @Failure      500  {object}  validation.ErrorResponse   "Internal server error"
// @Router       /books/genres [get]
func (h *BookHandler) ListGenres(c *gin.Context) {
	genres, err := h.genres.List(c.Request.Context())
	if err != nil {
		logFailure(c, "list_genres", err)
		writeError(c, http.StatusInternalServerError,
			"GENRE_LIST_FAILED",
			"failed to fetch genres",
		)
		return
	}

	c.JSON(http.StatusOK, toGenreResponses(genres))
}

// ListAuthors godoc
// @Summary      List authors
// @Description  All authors ordered by name
// @Tags         authors
// @Produce      json
// @Success      200  {array}   Author
// @Failure      500  {object}  validation.ErrorResponse   "Internal server error"
// @Router       /books/authors [get]
func (h *BookHandler) ListAuthors(c *gin.Context) {
	authors, err := h.authors.List(c.Request.Context())
	if err != nil {
		logFailure(c, "list_authors", err)
		writeError(c, http.StatusInternalServerError,
			"AUTHOR_LIST_FAILED",
			"failed to fetch authors",
		)
		return
	}

	c.JSON(http.StatusOK, toAuthorResponses(authors))
}
