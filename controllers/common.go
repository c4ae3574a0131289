package controllers

import (
	"context"
	"mime/multipart"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"

	"petshop-admin/libs"
	"petshop-admin/logger"
)

// ImageStorage is the slice of the object storage adapter the controllers
// use. Uploads return errors; deletes are best-effort and never do.
type ImageStorage interface {
	UploadSingleImage(ctx context.Context, file *multipart.FileHeader, category, subCategory string) (*libs.UploadResult, error)
	UploadMultipleImages(ctx context.Context, files []*multipart.FileHeader, category, subCategory string) ([]*libs.UploadResult, error)
	DeleteImage(ctx context.Context, urlOrKey string) bool
	DeleteMultipleImages(ctx context.Context, urls []string) (succeeded, failed int)
}

var _ ImageStorage = (*libs.StorageService)(nil)

func logFailure(c *gin.Context, msg string, err error) {
	logger.FromCtx(c).Warn(msg, zap.Error(err))
}

// formFile returns the first file for a multipart field, or nil when the
// request carries none.
func formFile(c *gin.Context, field string) *multipart.FileHeader {
	form, err := c.MultipartForm()
	if err != nil || form == nil {
		return nil
	}
	files := form.File[field]
	if len(files) == 0 {
		return nil
	}
	return files[0]
}

// stampUpdatedAt covers updates assembled outside the builders, such as
// file-only writes, so every non-empty set bumps the audit field.
func stampUpdatedAt(set bson.M) {
	if len(set) == 0 {
		return
	}
	if _, ok := set["updated_at"]; !ok {
		set["updated_at"] = time.Now()
	}
}

func formFiles(c *gin.Context, field string) []*multipart.FileHeader {
	form, err := c.MultipartForm()
	if err != nil || form == nil {
		return nil
	}
	return form.File[field]
}
