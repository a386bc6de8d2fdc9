package storage

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
)

type LocalStore struct {
	root      string
	urlPrefix string
}

func NewLocalStore(root, urlPrefix string) (*LocalStore, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("create media root: %w", err)
	}
	prefix := "/" + strings.Trim(urlPrefix, "/") + "/"
	return &LocalStore{root: root, urlPrefix: prefix}, nil
}

func (s *LocalStore) Root() string {
	return s.root
}

// URLPrefix is the path under which the root is served, e.g. /media/.
func (s *LocalStore) URLPrefix() string {
	return s.urlPrefix
}

func (s *LocalStore) Put(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	full, err := s.resolve(key)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return "", err
	}
	if err := os.WriteFile(full, data, 0o644); err != nil {
		return "", err
	}
	return s.urlPrefix + strings.TrimPrefix(path.Clean("/"+key), "/"), nil
}

func (s *LocalStore) Remove(ctx context.Context, ref string) error {
	key := strings.TrimPrefix(ref, s.urlPrefix)
	if key == ref {
		return fmt.Errorf("reference %q is outside %s", ref, s.urlPrefix)
	}
	full, err := s.resolve(key)
	if err != nil {
		return err
	}
	if err := os.Remove(full); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

func (s *LocalStore) resolve(key string) (string, error) {
	clean := path.Clean("/" + key)
	if clean == "/" {
		return "", fmt.Errorf("empty media key")
	}
	return filepath.Join(s.root, filepath.FromSlash(clean)), nil
}
