package utils

import (
	"errors"
	"fmt"
	"net/http"
	"regexp"
	"strings"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"petshop-admin/config"
	"petshop-admin/models"
)

// ValidationError carries per-field messages for a 400 response.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for field, msg := range e.Fields {
		parts = append(parts, fmt.Sprintf("%s: %s", field, msg))
	}
	return strings.Join(parts, "; ")
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: message}}
}

// ErrInvalidID marks a malformed identifier (the cast-error case).
var ErrInvalidID = errors.New("invalid id")

// ParseObjectID converts a hex path param, folding parse failures into the
// cast-error category.
func ParseObjectID(hex string) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(hex)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w: %s", ErrInvalidID, hex)
	}
	return id, nil
}

var dupIndexRe = regexp.MustCompile(`index: (\w+)_1`)

// duplicateField pulls the conflicting field name out of a duplicate-key
// error message.
func duplicateField(err error) string {
	if m := dupIndexRe.FindStringSubmatch(err.Error()); len(m) == 2 {
		return m[1]
	}
	return ""
}

// RespondError maps an error kind to an HTTP status and writes the envelope.
// Controllers call this with whatever the data or storage layer propagated.
func RespondError(c *gin.Context, err error) {
	var vErr *ValidationError

	switch {
	case errors.As(err, &vErr):
		c.JSON(http.StatusBadRequest, models.Response{
			Success: false,
			Message: "Validation failed",
			Error:   vErr.Error(),
		})
	case mongo.IsDuplicateKeyError(err):
		msg := "Duplicate value"
		if field := duplicateField(err); field != "" {
			msg = fmt.Sprintf("Duplicate value for field '%s'", field)
		}
		c.JSON(http.StatusBadRequest, models.Response{
			Success: false,
			Message: msg,
		})
	case errors.Is(err, ErrInvalidID):
		c.JSON(http.StatusBadRequest, models.Response{
			Success: false,
			Message: "Invalid identifier",
		})
	case errors.Is(err, mongo.ErrNoDocuments):
		c.JSON(http.StatusNotFound, models.Response{
			Success: false,
			Message: "Resource not found",
		})
	default:
		resp := models.Response{
			Success: false,
			Message: "Internal server error",
		}
		if config.AppConfig == nil || config.AppConfig.AppEnv != "production" {
			resp.Error = err.Error()
		}
		c.JSON(http.StatusInternalServerError, resp)
	}
}
