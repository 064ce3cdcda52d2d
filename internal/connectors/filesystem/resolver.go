package filesystem

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/custodia-labs/idms-console/internal/core/domain"
)

// ResolveLocalPath converts user input to an absolute path of a regular file.
// Handles file:// URIs, a leading ~/ and bare paths.
func ResolveLocalPath(input string) (string, error) {
	path := strings.TrimSpace(input)
	if path == "" {
		return "", fmt.Errorf("%w: empty path", domain.ErrInvalidInput)
	}

	if strings.HasPrefix(path, "file://") {
		u, err := url.Parse(path)
		if err != nil {
			return "", fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
		}
		path = u.Path
	}

	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("getting home directory: %w", err)
		}
		path = filepath.Join(home, strings.TrimPrefix(path, "~"))
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	info, err := os.Stat(abs)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	if !info.Mode().IsRegular() {
		return "", fmt.Errorf("%w: %s is not a regular file", domain.ErrInvalidInput, abs)
	}
	return abs, nil
}

// ResolveUploadFile resolves input and returns the file to upload.
func ResolveUploadFile(input string) (*domain.UploadFile, error) {
	path, err := ResolveLocalPath(input)
	if err != nil {
		return nil, err
	}
	return domain.NewUploadFile(path), nil
}
