package saver

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

const (
	Extension     = ".md"
	DefaultFolder = "gpts"
)

// Options is passed once per save. Empty strings mean "not supplied".
type Options struct {
	CustomName string
	SourceURL  string
	Folder     string
}

// Compose prepends the source URL line when one is given.
func Compose(document, sourceURL string) string {
	if sourceURL == "" {
		return document
	}
	return fmt.Sprintf("Video URL: %s\n\n\n%s", sourceURL, document)
}

// FileName picks the name a document is saved under inside folder. A custom
// name is used verbatim. Otherwise the first line's heading becomes a slug,
// and a random UUID replaces it when the slug is empty or already taken.
// The existence check is not atomic with the later write.
func FileName(folder, document, customName string) string {
	if customName != "" {
		return customName
	}

	name := slug(firstLine(document))
	if name == "" || exists(filepath.Join(folder, name+Extension)) {
		name = uuid.NewString()
	}
	return name + Extension
}

func firstLine(document string) string {
	line, _, _ := strings.Cut(document, "\n")
	return line
}

func slug(line string) string {
	title := strings.TrimSpace(line)
	if title == "#" {
		return ""
	}
	title = strings.TrimSpace(strings.TrimPrefix(title, "# "))
	return strings.ToLower(strings.ReplaceAll(title, " ", "-"))
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return !errors.Is(err, fs.ErrNotExist)
}

// PrepareFolder creates folder and its parents when missing.
func PrepareFolder(folder string) error {
	if folder == "" {
		return nil
	}
	if err := os.MkdirAll(folder, 0755); err != nil {
		return fmt.Errorf("create directory %s: %w", folder, err)
	}
	return nil
}

// Write resolves the path for document and writes content there once,
// overwriting whatever is there. The resolved path is returned even when the
// write fails so callers can still report it.
func Write(document, content string, opts Options) (string, error) {
	if err := PrepareFolder(opts.Folder); err != nil {
		return "", err
	}

	path := FileName(opts.Folder, document, opts.CustomName)
	if opts.Folder != "" {
		path = filepath.Join(opts.Folder, path)
	}

	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return path, fmt.Errorf("write %s: %w", path, err)
	}
	return path, nil
}
