package services

import (
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// Uploads are written beneath uploadsRoot under a generated key scoped by
// account id and served statically. Superseded uploads are never cleaned up.
const uploadsRoot = "uploads"

func uploadExt(filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".jpg", ".jpeg", ".png", ".gif", ".webp":
		return ext
	}
	return ".jpg"
}

// SaveUpload stores a blob under uploads/<accountID>/<uuid><ext> and returns
// the key relative to the uploads root.
func SaveUpload(accountID string, data []byte, filename string) (string, error) {
	accountID = strings.TrimSpace(accountID)
	if accountID == "" {
		return "", fmt.Errorf("validation: account id is required")
	}
	if len(data) == 0 {
		return "", fmt.Errorf("validation: empty upload")
	}

	dir := filepath.Join(uploadsRoot, accountID)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("mkdir uploads dir: %w", err)
	}

	key := filepath.Join(accountID, uuid.NewString()+uploadExt(filename))
	if err := os.WriteFile(filepath.Join(uploadsRoot, key), data, 0644); err != nil {
		return "", fmt.Errorf("write file: %w", err)
	}
	return filepath.ToSlash(key), nil
}

// SaveBase64Upload accepts a raw or data-URL base64 payload.
func SaveBase64Upload(accountID string, b64 string, filename string) (string, error) {
	if idx := strings.Index(b64, "base64,"); idx >= 0 {
		b64 = b64[idx+7:]
	}
	data, err := base64.StdEncoding.DecodeString(b64)
	if err != nil {
		return "", fmt.Errorf("decode base64: %w", err)
	}
	return SaveUpload(accountID, data, filename)
}

// PublicURL resolves the externally visible URL for an upload key.
func PublicURL(key string) string {
	base := strings.TrimRight(os.Getenv("BASE_URL"), "/")
	return base + "/" + uploadsRoot + "/" + key
}
