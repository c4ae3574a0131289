package middleware

import (
	"fmt"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	"petshop-admin/config"
	"petshop-admin/models"
)

// FileRule constrains one multipart field.
type FileRule struct {
	MaxCount    int
	AllowedExts []string
	MaxSize     int64
}

// UploadSchema declares, per entity, which multipart fields carry files and
// what each accepts. One generic validator consumes it; no per-route filter
// callbacks.
type UploadSchema map[string]FileRule

var imageExts = []string{".jpg", ".jpeg", ".png", ".gif", ".webp"}

var (
	ProductUploads = UploadSchema{
		"images": {MaxCount: 5, AllowedExts: imageExts},
	}
	CategoryUploads = UploadSchema{
		"image": {MaxCount: 1, AllowedExts: imageExts},
	}
	RiderUploads = UploadSchema{
		"image":          {MaxCount: 1, AllowedExts: imageExts},
		"cnicFrontImage": {MaxCount: 1, AllowedExts: imageExts},
		"cnicBackImage":  {MaxCount: 1, AllowedExts: imageExts},
		"bikeDocument":   {MaxCount: 1, AllowedExts: append([]string{".pdf"}, imageExts...)},
	}
	CMSUploads = UploadSchema{
		"bannerImages": {MaxCount: 5, AllowedExts: imageExts},
		"logoImage":    {MaxCount: 1, AllowedExts: imageExts},
		"faviconImage": {MaxCount: 1, AllowedExts: append([]string{".ico", ".svg"}, imageExts...)},
	}
)

// Validate checks a parsed multipart form against the schema. Fields not in
// the schema are rejected; fields under it are checked for count, extension
// and size.
func (s UploadSchema) Validate(form *multipart.Form) error {
	if form == nil {
		return nil
	}

	for field, files := range form.File {
		rule, ok := s[field]
		if !ok {
			return fmt.Errorf("unexpected file field %q", field)
		}
		if len(files) > rule.MaxCount {
			return fmt.Errorf("field %q accepts at most %d file(s)", field, rule.MaxCount)
		}

		maxSize := rule.MaxSize
		if maxSize == 0 {
			maxSize = config.AppConfig.MaxUploadSize
		}

		for _, file := range files {
			if file.Size > maxSize {
				return fmt.Errorf("file %q exceeds the %d byte limit", file.Filename, maxSize)
			}
			ext := strings.ToLower(filepath.Ext(file.Filename))
			if !contains(rule.AllowedExts, ext) {
				return fmt.Errorf("file %q has disallowed type %q", file.Filename, ext)
			}
		}
	}
	return nil
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}

// ValidateUploads parses the multipart form (when present) and runs the
// schema check before the handler executes.
func ValidateUploads(schema UploadSchema) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !strings.HasPrefix(c.ContentType(), "multipart/form-data") {
			c.Next()
			return
		}

		form, err := c.MultipartForm()
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, models.ErrorResponse{
				Success: false,
				Message: "Invalid multipart form",
				Error:   err.Error(),
			})
			return
		}

		if err := schema.Validate(form); err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, models.ErrorResponse{
				Success: false,
				Message: err.Error(),
			})
			return
		}

		c.Next()
	}
}
