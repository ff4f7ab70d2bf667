package service

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStorage(t *testing.T) *StorageService {
	t.Helper()
	s, err := NewStorageService(t.TempDir(), "http://localhost:3000")
	require.NoError(t, err)
	return s
}

func TestSaveImageValidatesBeforeWriting(t *testing.T) {
	s := newTestStorage(t)

	tests := []struct {
		name        string
		contentType string
		size        int64
		wantErr     error
	}{
		{"not an image", "application/pdf", 100, ErrNotAnImage},
		{"text file", "text/plain", 100, ErrNotAnImage},
		{"too big", "image/png", maxImageSize + 1, ErrImageTooBig},
		{"empty", "image/png", 0, ErrEmptyUpload},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.SaveImage(tt.contentType, "x.png", tt.size, strings.NewReader("data"))
			assert.ErrorIs(t, err, tt.wantErr)

			entries, readErr := os.ReadDir(s.Dir())
			require.NoError(t, readErr)
			assert.Empty(t, entries, "nothing may hit the disk on validation failure")
		})
	}
}

func TestSaveImageReturnsPublicURL(t *testing.T) {
	s := newTestStorage(t)

	url, err := s.SaveImage("image/jpeg", "photo.JPG", 4, strings.NewReader("data"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(url, "http://localhost:3000/images/"))

	key := strings.TrimPrefix(url, "http://localhost:3000/images/")
	// random token + "_" + millis + lowercased original extension
	assert.Regexp(t, regexp.MustCompile(`^[0-9a-f]{16}_\d+\.jpg$`), key)

	data, err := os.ReadFile(filepath.Join(s.Dir(), key))
	require.NoError(t, err)
	assert.Equal(t, "data", string(data))
}

func TestSaveImageKeysDoNotCollide(t *testing.T) {
	s := newTestStorage(t)

	seen := make(map[string]bool)
	for i := 0; i < 20; i++ {
		url, err := s.SaveImage("image/png", "same.png", 1, strings.NewReader("x"))
		require.NoError(t, err)
		require.False(t, seen[url], "duplicate key generated")
		seen[url] = true
	}
}

func TestDeleteImageByURL(t *testing.T) {
	s := newTestStorage(t)

	url, err := s.SaveImage("image/png", "a.png", 4, strings.NewReader("data"))
	require.NoError(t, err)

	require.NoError(t, s.DeleteImage(url))

	entries, err := os.ReadDir(s.Dir())
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestDeleteImageMissingFileIsIgnored(t *testing.T) {
	s := newTestStorage(t)
	assert.NoError(t, s.DeleteImage("http://localhost:3000/images/gone_123.png"))
}

func TestDeleteImageRejectsTraversal(t *testing.T) {
	s := newTestStorage(t)
	assert.ErrorIs(t, s.DeleteImage("http://localhost:3000/images/..%2fetc"), ErrInvalidImage)
}
