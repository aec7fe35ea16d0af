package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/snnyvrz/shelfshare-catalog/internal/model"
)

// parseBookID reads the :id path parameter.
func parseBookID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		writeError(c, http.StatusBadRequest,
			"INVALID_BOOK_ID",
			"invalid book id",
		)
		return 0, false
	}
	return uint(id), true
}

func joinNames(names []string) *string {
	if len(names) == 0 {
		return nil
	}
	s := strings.Join(names, ", ")
	return &s
}

func toBookResponse(b model.BookDetail) Book {
	return Book{
		ID:        b.ID,
		Title:     b.Title,
		Year:      b.Year,
		Edition:   b.Edition,
		Publisher: b.Publisher,
		ISBN:      b.ISBN,
		Stock:     b.Quantity,
		Authors:   joinNames(b.Authors),
		Genres:    joinNames(b.Genres),
	}
}

func toGenreResponses(genres []model.Genre) []Genre {
	res := make([]Genre, 0, len(genres))
	for _, g := range genres {
		res = append(res, Genre{ID: g.ID, Name: g.Name})
	}
	return res
}

func toAuthorResponses(authors []model.Author) []Author {
	res := make([]Author, 0, len(authors))
	for _, a := range authors {
		res = append(res, Author{ID: a.ID, Name: a.Name})
	}
	return res
}
