// Package storage saves uploaded documents to local disk and enforces
// the upload rules: at most 5MB, PDF or image formats only.
package storage

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"spark-playhouse/app/models"

	"github.com/google/uuid"
)

// MaxUploadSize is the upload cap in bytes (5MB).
const MaxUploadSize = 5 * 1024 * 1024

var allowedExtensions = map[string]bool{
	".pdf":  true,
	".jpg":  true,
	".jpeg": true,
	".png":  true,
}

// BaseDir is where uploads land; overridable for tests.
var BaseDir = "./uploads"

// ValidateUpload checks an upload's size and extension before anything
// is written. Errors are field-scoped so handlers can surface them as
// validation failures.
func ValidateUpload(field string, file *multipart.FileHeader) error {
	if file.Size > MaxUploadSize {
		return models.NewValidationError(field,
			fmt.Sprintf("File size cannot exceed 5MB. Current size: %.1fMB", float64(file.Size)/(1024*1024)))
	}
	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedExtensions[ext] {
		return models.NewValidationError(field,
			"File type not allowed. Upload a PDF, JPG, JPEG or PNG document.")
	}
	return nil
}

// SaveUpload validates and stores an upload under
// <BaseDir>/<bucket>/<year>/ with a random filename, returning the
// stored path.
func SaveUpload(field, bucket string, file *multipart.FileHeader) (string, error) {
	if err := ValidateUpload(field, file); err != nil {
		return "", err
	}

	dir := filepath.Join(BaseDir, bucket, fmt.Sprintf("%d", time.Now().Year()))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	path := filepath.Join(dir, uuid.New().String()+ext)

	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	dst, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		os.Remove(path)
		return "", err
	}
	return path, nil
}

// Remove deletes a stored file. A missing file is not an error; the
// record pointing at it is already being replaced or removed.
func Remove(path string) error {
	if path == "" {
		return nil
	}
	err := os.Remove(path)
	if os.IsNotExist(err) {
		return nil
	}
	return err
}
