// utils/upload.go - Multipart upload handling
package utils

import (
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Extension allow-lists per upload kind.
var (
	DocumentExtensions = []string{".pdf", ".doc", ".docx"}
	ImageExtensions    = []string{".jpg", ".jpeg", ".png", ".webp", ".gif"}
)

// Size caps.
const (
	MaxDocumentSize int64 = 10 * 1024 * 1024 // 10MB
	MaxImageSize    int64 = 5 * 1024 * 1024  // 5MB
)

// UploadOptions describes where and what a form file may be saved as.
type UploadOptions struct {
	Subdir     string   // directory under the upload root, e.g. "gallery"
	Prefix     string   // stored filename prefix, e.g. "news"
	Extensions []string // allowed extensions, lowercase with dot
	MaxSize    int64
}

// SavedFile describes a stored upload. Path is relative to the working
// directory and is what gets persisted in the database.
type SavedFile struct {
	Path         string
	OriginalName string
	Size         int64
}

// UploadRoot returns the base directory for stored files.
func UploadRoot() string {
	root := os.Getenv("UPLOAD_PATH")
	if root == "" {
		root = "./uploads"
	}
	return root
}

// SaveFormFile stores the named multipart file under the upload root with a
// randomized filename. Returns (nil, nil) when the field carries no file;
// validation failures return an error the caller maps to 400.
func SaveFormFile(c *gin.Context, field string, opts UploadOptions) (*SavedFile, error) {
	header, err := c.FormFile(field)
	if err != nil {
		// No file attached is not an error for optional uploads.
		return nil, nil
	}

	if err := ValidateFileHeader(header, opts); err != nil {
		return nil, err
	}

	ext := strings.ToLower(filepath.Ext(header.Filename))
	dir := filepath.Join(UploadRoot(), opts.Subdir)
	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}

	name := uuid.New().String() + ext
	if opts.Prefix != "" {
		name = opts.Prefix + "-" + name
	}
	dst := filepath.Join(dir, name)

	if err := c.SaveUploadedFile(header, dst); err != nil {
		return nil, fmt.Errorf("failed to store uploaded file: %w", err)
	}

	return &SavedFile{
		Path:         filepath.ToSlash(dst),
		OriginalName: header.Filename,
		Size:         header.Size,
	}, nil
}

// ValidateFileHeader checks extension and size against the options.
func ValidateFileHeader(header *multipart.FileHeader, opts UploadOptions) error {
	ext := strings.ToLower(filepath.Ext(header.Filename))
	if !extensionAllowed(ext, opts.Extensions) {
		return fmt.Errorf("file type %s is not allowed", ext)
	}
	if opts.MaxSize > 0 && header.Size > opts.MaxSize {
		return fmt.Errorf("file exceeds the %dMB size limit", opts.MaxSize/(1024*1024))
	}
	return nil
}

func extensionAllowed(ext string, allowed []string) bool {
	for _, a := range allowed {
		if ext == a {
			return true
		}
	}
	return false
}

// RemoveStoredFile best-effort deletes a stored upload. A missing file is not
// an error.
func RemoveStoredFile(path string) error {
	if path == "" {
		return nil
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
