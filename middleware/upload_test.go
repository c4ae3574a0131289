package middleware

import (
	"mime/multipart"
	"testing"

	"github.com/stretchr/testify/assert"

	"petshop-admin/config"
)

func fileHeader(name string, size int64) *multipart.FileHeader {
	return &multipart.FileHeader{Filename: name, Size: size}
}

func TestUploadSchemaValidate(t *testing.T) {
	prev := config.AppConfig
	config.AppConfig = &config.Config{MaxUploadSize: 5 * 1024 * 1024}
	t.Cleanup(func() { config.AppConfig = prev })

	t.Run("NilFormPasses", func(t *testing.T) {
		assert.NoError(t, ProductUploads.Validate(nil))
	})

	t.Run("ValidProductImages", func(t *testing.T) {
		form := &multipart.Form{File: map[string][]*multipart.FileHeader{
			"images": {fileHeader("a.jpg", 1024), fileHeader("b.png", 2048)},
		}}
		assert.NoError(t, ProductUploads.Validate(form))
	})

	t.Run("UnknownFieldRejected", func(t *testing.T) {
		form := &multipart.Form{File: map[string][]*multipart.FileHeader{
			"avatar": {fileHeader("a.jpg", 1024)},
		}}
		err := ProductUploads.Validate(form)
		assert.ErrorContains(t, err, "unexpected file field")
	})

	t.Run("TooManyFilesRejected", func(t *testing.T) {
		files := make([]*multipart.FileHeader, 6)
		for i := range files {
			files[i] = fileHeader("a.jpg", 1024)
		}
		form := &multipart.Form{File: map[string][]*multipart.FileHeader{"images": files}}
		err := ProductUploads.Validate(form)
		assert.ErrorContains(t, err, "at most")
	})

	t.Run("DisallowedExtensionRejected", func(t *testing.T) {
		form := &multipart.Form{File: map[string][]*multipart.FileHeader{
			"image": {fileHeader("malware.exe", 1024)},
		}}
		err := CategoryUploads.Validate(form)
		assert.ErrorContains(t, err, "disallowed type")
	})

	t.Run("OversizedFileRejected", func(t *testing.T) {
		form := &multipart.Form{File: map[string][]*multipart.FileHeader{
			"image": {fileHeader("huge.jpg", 50*1024*1024)},
		}}
		err := CategoryUploads.Validate(form)
		assert.ErrorContains(t, err, "byte limit")
	})

	t.Run("RiderDocumentAcceptsPDF", func(t *testing.T) {
		form := &multipart.Form{File: map[string][]*multipart.FileHeader{
			"bikeDocument": {fileHeader("registration.pdf", 1024)},
		}}
		assert.NoError(t, RiderUploads.Validate(form))
	})

	t.Run("RiderProfileRejectsPDF", func(t *testing.T) {
		form := &multipart.Form{File: map[string][]*multipart.FileHeader{
			"image": {fileHeader("photo.pdf", 1024)},
		}}
		assert.Error(t, RiderUploads.Validate(form))
	})

	t.Run("FaviconAcceptsIco", func(t *testing.T) {
		form := &multipart.Form{File: map[string][]*multipart.FileHeader{
			"faviconImage": {fileHeader("favicon.ico", 512)},
		}}
		assert.NoError(t, CMSUploads.Validate(form))
	})
}
