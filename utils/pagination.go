package utils

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"

	"petshop-admin/models"
)

type PageParams struct {
	Page  int
	Limit int
	Sort  bson.D
}

// ParsePageParams reads page/limit/sort/order query params. Page is 1-based.
func ParsePageParams(c *gin.Context, defaultSort string) PageParams {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	if limit > 100 {
		limit = 100
	}

	sortField := strings.TrimSpace(c.DefaultQuery("sort", defaultSort))
	direction := 1
	if strings.EqualFold(c.DefaultQuery("order", "desc"), "desc") {
		direction = -1
	}

	return PageParams{
		Page:  page,
		Limit: limit,
		Sort:  bson.D{{Key: sortField, Value: direction}},
	}
}

func (p PageParams) Skip() int64 {
	return int64((p.Page - 1) * p.Limit)
}

// BuildPagination computes the pagination block for a total document count.
func BuildPagination(page, limit int, total int64) *models.Pagination {
	totalPages := 0
	if total > 0 {
		totalPages = int((total + int64(limit) - 1) / int64(limit))
	}

	return &models.Pagination{
		CurrentPage: page,
		TotalPages:  totalPages,
		Total:       total,
		HasNext:     page < totalPages,
		HasPrev:     page > 1 && total > 0,
	}
}
