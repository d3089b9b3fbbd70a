package storage

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUniqueName(t *testing.T) {
	tests := []struct {
		original string
		pattern  string
	}{
		{original: "nasi.jpg", pattern: `^nasi_[0-9a-f]{8}\.jpg$`},
		{original: "photo.final.PNG", pattern: `^photo\.final_[0-9a-f]{8}\.PNG$`},
		{original: "noext", pattern: `^noext_[0-9a-f]{8}$`},
		{original: "../../etc/passwd", pattern: `^passwd_[0-9a-f]{8}$`},
		{original: `C:\Users\me\rendang.jpeg`, pattern: `^rendang_[0-9a-f]{8}\.jpeg$`},
	}

	for _, tt := range tests {
		t.Run(tt.original, func(t *testing.T) {
			name, err := UniqueName(tt.original)
			require.NoError(t, err)
			assert.Regexp(t, regexp.MustCompile(tt.pattern), name)
		})
	}
}

func TestUniqueName_Distinct(t *testing.T) {
	a, err := UniqueName("nasi.jpg")
	require.NoError(t, err)
	b, err := UniqueName("nasi.jpg")
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestUploadStore_SaveReader(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "static", "uploads")
	store := NewUploadStore(dir)

	name, path, err := store.SaveReader("nasi.jpg", strings.NewReader("image bytes"))
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, name), path)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "image bytes", string(data))
}
