package storage

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"spark-playhouse/app/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fileHeader builds a real multipart.FileHeader from an in-memory form.
func fileHeader(t *testing.T, filename string, content []byte) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("document", filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req, err := http.NewRequest("POST", "/", &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(32<<20))

	return req.MultipartForm.File["document"][0]
}

func TestValidateUploadAllowedExtensions(t *testing.T) {
	for _, name := range []string{"scan.pdf", "photo.jpg", "photo.JPEG", "id.png"} {
		fh := fileHeader(t, name, []byte("content"))
		assert.NoError(t, ValidateUpload("document", fh), name)
	}
}

func TestValidateUploadRejectsExtension(t *testing.T) {
	fh := fileHeader(t, "malware.exe", []byte("content"))
	err := ValidateUpload("document", fh)
	require.Error(t, err)
	vErr, ok := err.(*models.ValidationError)
	require.True(t, ok)
	assert.Equal(t, "document", vErr.Field)
	assert.Contains(t, vErr.Message, "File type not allowed")
}

func TestValidateUploadRejectsOversize(t *testing.T) {
	fh := fileHeader(t, "scan.pdf", []byte("content"))
	fh.Size = MaxUploadSize + 1

	err := ValidateUpload("document", fh)
	require.Error(t, err)
	vErr, ok := err.(*models.ValidationError)
	require.True(t, ok)
	assert.Equal(t, "document", vErr.Field)
	assert.Contains(t, vErr.Message, "File size cannot exceed 5MB")
}

func TestSaveUploadAndRemove(t *testing.T) {
	orig := BaseDir
	BaseDir = t.TempDir()
	defer func() { BaseDir = orig }()

	fh := fileHeader(t, "birth-cert.pdf", []byte("certificate content"))
	path, err := SaveUpload("birth_certificate", "learners/birth_certificates", fh)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(path, filepath.Join(BaseDir, "learners/birth_certificates")))
	assert.Equal(t, ".pdf", filepath.Ext(path))

	saved, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "certificate content", string(saved))

	require.NoError(t, Remove(path))
	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))

	// Removing an already-gone file is not an error.
	assert.NoError(t, Remove(path))
	assert.NoError(t, Remove(""))
}
