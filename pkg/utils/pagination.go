package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

const maxPageSize = 100

// Page selects a window of a list. The zero value means "everything".
type Page struct {
	Number int
	Size   int
}

func (p Page) IsAll() bool {
	return p.Number == 0
}

func (p Page) Offset() int {
	return (p.Number - 1) * p.Size
}

// ParsePage reads the optional page/pageSize query parameters. Without
// "page" the whole collection is selected.
func ParsePage(c *gin.Context) (Page, error) {
	pageStr, ok := c.GetQuery("page")
	if !ok {
		return Page{}, nil
	}

	page, err := strconv.Atoi(pageStr)
	if err != nil || page < 1 {
		return Page{}, ErrInvalidPage
	}

	pageSize, err := strconv.Atoi(c.DefaultQuery("pageSize", "20"))
	if err != nil || pageSize < 1 || pageSize > maxPageSize {
		return Page{}, ErrInvalidPageSize
	}

	return Page{Number: page, Size: pageSize}, nil
}
