package controllers

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"petshop-admin/config"
	"petshop-admin/libs"
	"petshop-admin/models"
	"petshop-admin/repositories"
)

// --- Stubs ---

type categoryStoreStub struct {
	doc     *models.Category
	updates []bson.M
}

func (s *categoryStoreStub) FindAll(ctx context.Context, filter bson.M, opts repositories.FindOptions) ([]models.Category, error) {
	return []models.Category{*s.doc}, nil
}

func (s *categoryStoreStub) FindOne(ctx context.Context, filter bson.M) (*models.Category, error) {
	if s.doc == nil {
		return nil, mongo.ErrNoDocuments
	}
	out := *s.doc
	return &out, nil
}

func (s *categoryStoreStub) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Category, error) {
	return s.FindOne(ctx, bson.M{"_id": id})
}

func (s *categoryStoreStub) InsertOne(ctx context.Context, doc *models.Category) (primitive.ObjectID, error) {
	return primitive.NewObjectID(), nil
}

func (s *categoryStoreStub) UpdateOne(ctx context.Context, filter bson.M, update interface{}, upsert bool) (*mongo.UpdateResult, error) {
	return &mongo.UpdateResult{MatchedCount: 1}, nil
}

func (s *categoryStoreStub) UpdateByID(ctx context.Context, id primitive.ObjectID, update interface{}) (*mongo.UpdateResult, error) {
	set := update.(bson.M)["$set"].(bson.M)
	s.updates = append(s.updates, set)
	if img, ok := set["image"].(string); ok {
		s.doc.Image = img
	}
	return &mongo.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
}

func (s *categoryStoreStub) UpdateMany(ctx context.Context, filter bson.M, update interface{}) (int64, error) {
	return 0, nil
}

func (s *categoryStoreStub) DeleteOne(ctx context.Context, filter bson.M) (int64, error) {
	return 1, nil
}

func (s *categoryStoreStub) DeleteByID(ctx context.Context, id primitive.ObjectID) (int64, error) {
	return 1, nil
}

func (s *categoryStoreStub) Count(ctx context.Context, filter bson.M) (int64, error) {
	return 1, nil
}

func (s *categoryStoreStub) Exists(ctx context.Context, filter bson.M) (bool, error) {
	return false, nil
}

func (s *categoryStoreStub) Distinct(ctx context.Context, field string, filter bson.M) ([]interface{}, error) {
	return nil, nil
}

// storageStub uploads succeed with a canned URL; deletes always fail the way
// an unreachable backend would, reporting false without an error.
type storageStub struct {
	uploadErr error
	deleted   []string
}

func (s *storageStub) UploadSingleImage(ctx context.Context, file *multipart.FileHeader, category, subCategory string) (*libs.UploadResult, error) {
	if s.uploadErr != nil {
		return nil, s.uploadErr
	}
	return &libs.UploadResult{
		URL: "https://cdn.example.com/petshop/" + category + "/replacement.jpg",
		Key: category + "/replacement.jpg",
	}, nil
}

func (s *storageStub) UploadMultipleImages(ctx context.Context, files []*multipart.FileHeader, category, subCategory string) ([]*libs.UploadResult, error) {
	results := make([]*libs.UploadResult, len(files))
	for i := range files {
		res, err := s.UploadSingleImage(ctx, files[i], category, subCategory)
		if err != nil {
			return nil, err
		}
		results[i] = res
	}
	return results, nil
}

func (s *storageStub) DeleteImage(ctx context.Context, urlOrKey string) bool {
	s.deleted = append(s.deleted, urlOrKey)
	return false
}

func (s *storageStub) DeleteMultipleImages(ctx context.Context, urls []string) (succeeded, failed int) {
	for _, u := range urls {
		s.DeleteImage(ctx, u)
	}
	return 0, len(urls)
}

// --- Tests ---

func imageUploadRequest(t *testing.T, url, field string) *http.Request {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile(field, "replacement.jpg")
	require.NoError(t, err)
	_, err = part.Write([]byte("jpeg-bytes"))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPut, url, body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

// Replacing an image must persist the new URL even when removing the old
// asset fails: the delete runs after the write and only best-effort.
func TestCategoryUpdateImageReplaceOrdering(t *testing.T) {
	gin.SetMode(gin.TestMode)

	prev := config.AppConfig
	config.AppConfig = &config.Config{AppEnv: "test", MaxUploadSize: 5 * 1024 * 1024}
	t.Cleanup(func() { config.AppConfig = prev })

	id := primitive.NewObjectID()
	store := &categoryStoreStub{doc: &models.Category{
		ID:    id,
		Name:  "Dogs",
		Slug:  "dogs",
		Image: "https://cdn.example.com/petshop/categories/old.jpg",
	}}
	storage := &storageStub{}
	ctrl := &CategoryController{categories: store, storage: storage}

	router := gin.New()
	router.PUT("/categories/:id", ctrl.Update)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, imageUploadRequest(t, "/categories/"+id.Hex(), "image"))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "categories/replacement.jpg")

	require.Len(t, store.updates, 1)
	set := store.updates[0]
	assert.Equal(t, "https://cdn.example.com/petshop/categories/replacement.jpg", set["image"])
	assert.Contains(t, set, "updated_at")

	// The old asset was handed to the failing delete after the write, and
	// the failure did not surface.
	assert.Equal(t, []string{"https://cdn.example.com/petshop/categories/old.jpg"}, storage.deleted)
}

// A failed upload aborts before anything is written.
func TestCategoryUpdateUploadFailureWritesNothing(t *testing.T) {
	gin.SetMode(gin.TestMode)

	prev := config.AppConfig
	config.AppConfig = &config.Config{AppEnv: "test", MaxUploadSize: 5 * 1024 * 1024}
	t.Cleanup(func() { config.AppConfig = prev })

	id := primitive.NewObjectID()
	store := &categoryStoreStub{doc: &models.Category{ID: id, Name: "Dogs", Slug: "dogs"}}
	storage := &storageStub{uploadErr: libs.ErrStorageNetwork}
	ctrl := &CategoryController{categories: store, storage: storage}

	router := gin.New()
	router.PUT("/categories/:id", ctrl.Update)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, imageUploadRequest(t, "/categories/"+id.Hex(), "image"))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Empty(t, store.updates)
	assert.Empty(t, storage.deleted)
}
