package storage

import (
	"bytes"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeFilename(t *testing.T) {
	at := time.Date(2025, time.March, 21, 6, 0, 0, 0, time.UTC)

	tests := []struct {
		in   string
		want string
	}{
		{"Eid Prayer!.JPG", "Eid_Prayer_20250321_060000.jpg"},
		{"../../etc/passwd.png", "passwd_20250321_060000.png"},
		{"!!!.webp", "slide_20250321_060000.webp"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, normalizeFilename(tt.in, at))
		})
	}
}

func TestGetContentType(t *testing.T) {
	assert.Equal(t, "image/jpeg", getContentType("a.JPEG"))
	assert.Equal(t, "image/webp", getContentType("a.webp"))
	assert.Equal(t, "", getContentType("a.mp4"))
}

func fileHeader(t *testing.T, name string, content []byte) *multipart.FileHeader {
	t.Helper()

	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	part, err := w.CreateFormFile("image", name)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	form, err := multipart.NewReader(&body, w.Boundary()).ReadForm(1 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { _ = form.RemoveAll() })
	return form.File["image"][0]
}

func TestLocalStorage_SaveFile(t *testing.T) {
	dir := t.TempDir()
	ls := NewLocalStorage(dir, "/uploads/")

	url, err := ls.SaveFile(fileHeader(t, "hero 1.png", []byte("png-bytes")), "hero 1.png")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(url, "/uploads/hero_1_"), url)
	assert.True(t, strings.HasSuffix(url, ".png"), url)

	saved, err := os.ReadFile(filepath.Join(dir, filepath.Base(url)))
	require.NoError(t, err)
	assert.Equal(t, "png-bytes", string(saved))
}

func TestLocalStorage_RejectsNonImages(t *testing.T) {
	ls := NewLocalStorage(t.TempDir(), "/uploads")

	_, err := ls.SaveFile(fileHeader(t, "sermon.pdf", []byte("%PDF")), "sermon.pdf")
	assert.ErrorIs(t, err, ErrUnsupportedType)
}
