package libs

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"net/url"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"petshop-admin/config"
	"petshop-admin/logger"
)

// Upload failure kinds, distinguishable so callers can react differently.
var (
	ErrStorageAuth      = errors.New("storage: access denied")
	ErrBucketNotFound   = errors.New("storage: bucket not found")
	ErrSignatureInvalid = errors.New("storage: signature mismatch")
	ErrStorageNetwork   = errors.New("storage: network failure")
)

type UploadResult struct {
	URL string
	Key string
}

// StorageService talks to an S3-compatible object store. Uploads throw;
// deletes are best-effort cleanup and only ever report a boolean.
type StorageService struct {
	client  *minio.Client
	bucket  string
	baseURL string
}

func NewStorageService(cfg *config.Config) (*StorageService, error) {
	client, err := minio.New(cfg.StorageEndpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.StorageAccessKey, cfg.StorageSecretKey, ""),
		Secure: cfg.StorageUseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage client: %w", err)
	}

	baseURL := cfg.StorageBaseURL
	if baseURL == "" {
		scheme := "http"
		if cfg.StorageUseSSL {
			scheme = "https"
		}
		baseURL = fmt.Sprintf("%s://%s/%s", scheme, cfg.StorageEndpoint, cfg.StorageBucket)
	}

	return &StorageService{
		client:  client,
		bucket:  cfg.StorageBucket,
		baseURL: strings.TrimRight(baseURL, "/"),
	}, nil
}

var unsafeChars = regexp.MustCompile(`[^a-zA-Z0-9._-]+`)

// ObjectKey derives a collision-resistant key:
// {category}/{subCategory_}{epochMs}_{randomId}_{sanitizedName}{ext}
func ObjectKey(category, subCategory, originalName string) string {
	ext := strings.ToLower(filepath.Ext(originalName))
	base := strings.TrimSuffix(originalName, filepath.Ext(originalName))
	base = unsafeChars.ReplaceAllString(strings.ReplaceAll(base, " ", "_"), "")

	prefix := ""
	if subCategory != "" {
		prefix = subCategory + "_"
	}

	return fmt.Sprintf("%s/%s%d_%s_%s%s",
		category, prefix, time.Now().UnixMilli(), uuid.NewString()[:8], base, ext)
}

func (s *StorageService) UploadSingleImage(ctx context.Context, file *multipart.FileHeader, category, subCategory string) (*UploadResult, error) {
	src, err := file.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	key := ObjectKey(category, subCategory, file.Filename)
	contentType := file.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	_, err = s.client.PutObject(ctx, s.bucket, key, src, file.Size, minio.PutObjectOptions{
		ContentType: contentType,
		UserMetadata: map[string]string{
			"category":     category,
			"sub-category": subCategory,
			"originalname": file.Filename,
			"uploadedat":   time.Now().UTC().Format(time.RFC3339),
		},
	})
	if err != nil {
		return nil, classifyStorageError(err)
	}

	return &UploadResult{
		URL: s.baseURL + "/" + key,
		Key: key,
	}, nil
}

// UploadMultipleImages uploads every file concurrently; any single failure
// aborts the whole batch.
func (s *StorageService) UploadMultipleImages(ctx context.Context, files []*multipart.FileHeader, category, subCategory string) ([]*UploadResult, error) {
	results := make([]*UploadResult, len(files))
	g, gctx := errgroup.WithContext(ctx)

	for i, file := range files {
		i, file := i, file
		g.Go(func() error {
			res, err := s.UploadSingleImage(gctx, file, category, subCategory)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// KeyFromURL strips the known base URL prefix from a full object URL, or
// returns a bare key untouched.
func (s *StorageService) KeyFromURL(urlOrKey string) string {
	if strings.HasPrefix(urlOrKey, s.baseURL) {
		key := strings.TrimPrefix(urlOrKey, s.baseURL)
		if decoded, err := url.PathUnescape(key); err == nil {
			key = decoded
		}
		return strings.TrimPrefix(key, "/")
	}
	return strings.TrimPrefix(urlOrKey, "/")
}

// DeleteImage is best-effort: failures are logged and reported as false,
// never thrown. A failed delete must not block the primary write.
func (s *StorageService) DeleteImage(ctx context.Context, urlOrKey string) bool {
	if urlOrKey == "" {
		return false
	}

	key := s.KeyFromURL(urlOrKey)
	if err := s.client.RemoveObject(ctx, s.bucket, key, minio.RemoveObjectOptions{}); err != nil {
		logger.L().Warn("best-effort image delete failed",
			zap.String("key", key),
			zap.Error(err),
		)
		return false
	}
	return true
}

// DeleteMultipleImages best-effort deletes a batch, returning how many
// succeeded and how many failed.
func (s *StorageService) DeleteMultipleImages(ctx context.Context, urls []string) (succeeded, failed int) {
	for _, u := range urls {
		if s.DeleteImage(ctx, u) {
			succeeded++
		} else {
			failed++
		}
	}
	return succeeded, failed
}

// classifyStorageError folds S3 error codes into the sentinel kinds.
func classifyStorageError(err error) error {
	resp := minio.ToErrorResponse(err)
	switch resp.Code {
	case "AccessDenied", "InvalidAccessKeyId":
		return fmt.Errorf("%w: %v", ErrStorageAuth, err)
	case "NoSuchBucket":
		return fmt.Errorf("%w: %v", ErrBucketNotFound, err)
	case "SignatureDoesNotMatch":
		return fmt.Errorf("%w: %v", ErrSignatureInvalid, err)
	case "":
		return fmt.Errorf("%w: %v", ErrStorageNetwork, err)
	default:
		return fmt.Errorf("storage: upload failed: %w", err)
	}
}
