package utils

import (
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"foodgram/internal/apperrors"

	"github.com/google/uuid"
)

const recipeImageDir = "recipes/images"

// MediaRoot is where decoded image assets land; overridable via env.
func MediaRoot() string {
	if root := os.Getenv("MEDIA_ROOT"); root != "" {
		return root
	}
	return "media"
}

// DecodeRecipeImage accepts a "data:image/<format>;base64,<payload>" string,
// writes the decoded bytes under the media root and returns the stored
// file's path relative to it. The format tag determines the extension.
func DecodeRecipeImage(data string) (string, error) {
	if !strings.HasPrefix(data, "data:image/") {
		return "", fmt.Errorf("%w: image must be a base64 data URI", apperrors.ErrValidation)
	}

	parts := strings.SplitN(data, ";base64,", 2)
	if len(parts) != 2 {
		return "", fmt.Errorf("%w: malformed image data URI", apperrors.ErrValidation)
	}

	ext := strings.TrimPrefix(parts[0], "data:image/")
	if ext == "" || strings.ContainsAny(ext, "/\\.") {
		return "", fmt.Errorf("%w: unsupported image format %q", apperrors.ErrValidation, ext)
	}

	raw, err := base64.StdEncoding.DecodeString(parts[1])
	if err != nil {
		return "", fmt.Errorf("%w: invalid base64 image payload", apperrors.ErrValidation)
	}

	relPath := filepath.Join(recipeImageDir, uuid.NewString()+"."+ext)
	fullPath := filepath.Join(MediaRoot(), relPath)

	if err := os.MkdirAll(filepath.Dir(fullPath), 0o755); err != nil {
		return "", fmt.Errorf("failed to create media directory: %w", err)
	}
	if err := os.WriteFile(fullPath, raw, 0o644); err != nil {
		return "", fmt.Errorf("failed to store image: %w", err)
	}

	return filepath.ToSlash(relPath), nil
}
