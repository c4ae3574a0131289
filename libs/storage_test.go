package libs

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"petshop-admin/config"
)

func testStorage(t *testing.T) *StorageService {
	t.Helper()
	svc, err := NewStorageService(&config.Config{
		StorageEndpoint:  "localhost:9000",
		StorageAccessKey: "test",
		StorageSecretKey: "test",
		StorageBucket:    "petshop",
		StorageBaseURL:   "https://cdn.example.com/petshop",
	})
	require.NoError(t, err)
	return svc
}

func TestObjectKey(t *testing.T) {
	t.Run("WithSubCategory", func(t *testing.T) {
		key := ObjectKey("products", "toys", "My Photo (1).JPG")
		assert.Regexp(t, `^products/toys_\d+_[0-9a-f-]{8}_My_Photo_1\.jpg$`, key)
	})

	t.Run("WithoutSubCategory", func(t *testing.T) {
		key := ObjectKey("categories", "", "banner.png")
		assert.Regexp(t, `^categories/\d+_[0-9a-f-]{8}_banner\.png$`, key)
	})

	t.Run("KeysAreUnique", func(t *testing.T) {
		a := ObjectKey("products", "", "same.jpg")
		b := ObjectKey("products", "", "same.jpg")
		assert.NotEqual(t, a, b)
	})
}

func TestKeyFromURL(t *testing.T) {
	svc := testStorage(t)

	t.Run("FullURL", func(t *testing.T) {
		key := svc.KeyFromURL("https://cdn.example.com/petshop/products/123_abc_leash.jpg")
		assert.Equal(t, "products/123_abc_leash.jpg", key)
	})

	t.Run("BareKeyPassesThrough", func(t *testing.T) {
		key := svc.KeyFromURL("products/123_abc_leash.jpg")
		assert.Equal(t, "products/123_abc_leash.jpg", key)
	})

	t.Run("LeadingSlashStripped", func(t *testing.T) {
		key := svc.KeyFromURL("/products/123_abc_leash.jpg")
		assert.Equal(t, "products/123_abc_leash.jpg", key)
	})

	t.Run("EscapedURLDecoded", func(t *testing.T) {
		key := svc.KeyFromURL("https://cdn.example.com/petshop/products/my%20photo.jpg")
		assert.Equal(t, "products/my photo.jpg", key)
	})
}

// DeleteImage reports failure, it never propagates one. Pointing the client
// at a closed port makes every remove fail fast with a connection error.
func TestDeleteImageSwallowsBackendFailure(t *testing.T) {
	svc, err := NewStorageService(&config.Config{
		StorageEndpoint:  "localhost:1",
		StorageAccessKey: "test",
		StorageSecretKey: "test",
		StorageBucket:    "petshop",
		StorageBaseURL:   "https://cdn.example.com/petshop",
	})
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	assert.False(t, svc.DeleteImage(ctx, "products/ghost.jpg"))
	assert.False(t, svc.DeleteImage(ctx, "https://cdn.example.com/petshop/products/ghost.jpg"))
}
