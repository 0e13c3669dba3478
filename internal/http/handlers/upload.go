package handlers

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"
)

const maxUploadBytes = 10 << 20

var errMissingPhoto = errors.New("photo is required")

// savePhoto stores the "photo" form file under uploadDir and returns the
// public path it is served from.
func savePhoto(form *multipart.Form) (string, error) {
	files := form.File["photo"]
	if len(files) == 0 {
		return "", errMissingPhoto
	}
	header := files[0]

	src, err := header.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open upload: %w", err)
	}
	defer src.Close()

	if err := os.MkdirAll(uploadDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create upload dir: %w", err)
	}
	name := fmt.Sprintf("%d-%s", time.Now().UnixNano(), filepath.Base(header.Filename))
	dst, err := os.Create(filepath.Join(uploadDir, name))
	if err != nil {
		return "", fmt.Errorf("failed to create upload: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("failed to store upload: %w", err)
	}
	return path.Join("uploads", name), nil
}

// removePhoto deletes a file previously returned by savePhoto.
func removePhoto(photo string) {
	name, ok := strings.CutPrefix(photo, "uploads/")
	if !ok || name == "" {
		return
	}
	if err := os.Remove(filepath.Join(uploadDir, filepath.Base(name))); err != nil && !errors.Is(err, os.ErrNotExist) {
		logger.WithError(err).WithField("photo", photo).Warn("could not remove photo")
	}
}
