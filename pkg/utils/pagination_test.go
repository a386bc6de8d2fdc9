package utils

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pageFor(t *testing.T, query string) (Page, error) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/api/places/"+query, nil)
	return ParsePage(c)
}

func TestParsePage(t *testing.T) {
	p, err := pageFor(t, "")
	require.NoError(t, err)
	assert.True(t, p.IsAll())

	p, err = pageFor(t, "?page=3")
	require.NoError(t, err)
	assert.Equal(t, Page{Number: 3, Size: 20}, p)
	assert.Equal(t, 40, p.Offset())

	p, err = pageFor(t, "?page=1&pageSize=100")
	require.NoError(t, err)
	assert.Equal(t, 100, p.Size)

	_, err = pageFor(t, "?page=0")
	assert.ErrorIs(t, err, ErrInvalidPage)

	_, err = pageFor(t, "?page=1&pageSize=101")
	assert.ErrorIs(t, err, ErrInvalidPageSize)
}
