package utils

import (
	"encoding/base64"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"foodgram/internal/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeRecipeImage(t *testing.T) {
	t.Setenv("MEDIA_ROOT", t.TempDir())

	payload := []byte("not really a png, but bytes are bytes")
	data := "data:image/png;base64," + base64.StdEncoding.EncodeToString(payload)

	relPath, err := DecodeRecipeImage(data)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(relPath, "recipes/images/"))
	assert.True(t, strings.HasSuffix(relPath, ".png"))

	stored, err := os.ReadFile(filepath.Join(MediaRoot(), filepath.FromSlash(relPath)))
	require.NoError(t, err)
	assert.Equal(t, payload, stored)
}

func TestDecodeRecipeImageFormatDeterminesExtension(t *testing.T) {
	t.Setenv("MEDIA_ROOT", t.TempDir())

	data := "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString([]byte{0xff, 0xd8})
	relPath, err := DecodeRecipeImage(data)
	require.NoError(t, err)

	assert.True(t, strings.HasSuffix(relPath, ".jpeg"))
}

func TestDecodeRecipeImageRejectsBadInput(t *testing.T) {
	t.Setenv("MEDIA_ROOT", t.TempDir())

	tests := []struct {
		name string
		data string
	}{
		{"not a data uri", "just a string"},
		{"missing base64 marker", "data:image/png,abcdef"},
		{"invalid base64 payload", "data:image/png;base64,!!!not-base64!!!"},
		{"path traversal in format", "data:image/../evil;base64,AAAA"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeRecipeImage(tt.data)
			assert.Error(t, err)
			assert.True(t, apperrors.IsValidation(err))
		})
	}
}
