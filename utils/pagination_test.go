package utils

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/stretchr/testify/assert"
)

func ginContext(t *testing.T, query string) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/?"+query, nil)
	return c
}

func TestParsePageParams(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		p := ParsePageParams(ginContext(t, ""), "created_at")
		assert.Equal(t, 1, p.Page)
		assert.Equal(t, 10, p.Limit)
		assert.Equal(t, bson.D{{Key: "created_at", Value: -1}}, p.Sort)
		assert.Equal(t, int64(0), p.Skip())
	})

	t.Run("ExplicitValues", func(t *testing.T) {
		p := ParsePageParams(ginContext(t, "page=3&limit=20&sort=name&order=asc"), "created_at")
		assert.Equal(t, 3, p.Page)
		assert.Equal(t, 20, p.Limit)
		assert.Equal(t, bson.D{{Key: "name", Value: 1}}, p.Sort)
		assert.Equal(t, int64(40), p.Skip())
	})

	t.Run("LimitCapped", func(t *testing.T) {
		p := ParsePageParams(ginContext(t, "limit=500"), "created_at")
		assert.Equal(t, 100, p.Limit)
	})

	t.Run("InvalidFallsBack", func(t *testing.T) {
		p := ParsePageParams(ginContext(t, "page=-4&limit=abc"), "created_at")
		assert.Equal(t, 1, p.Page)
		assert.Equal(t, 10, p.Limit)
	})
}

func TestBuildPagination(t *testing.T) {
	t.Run("MiddlePage", func(t *testing.T) {
		p := BuildPagination(2, 10, 25)
		assert.Equal(t, 2, p.CurrentPage)
		assert.Equal(t, 3, p.TotalPages)
		assert.Equal(t, int64(25), p.Total)
		assert.True(t, p.HasNext)
		assert.True(t, p.HasPrev)
	})

	t.Run("LastPage", func(t *testing.T) {
		p := BuildPagination(3, 10, 25)
		assert.False(t, p.HasNext)
		assert.True(t, p.HasPrev)
	})

	t.Run("Empty", func(t *testing.T) {
		p := BuildPagination(1, 10, 0)
		assert.Equal(t, 0, p.TotalPages)
		assert.False(t, p.HasNext)
		assert.False(t, p.HasPrev)
	})
}
