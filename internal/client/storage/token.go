// Package storage persists the credential token across process restarts.
// The only persisted state of the client is this single string, kept under
// one well-known file in the user's configuration directory.
package storage

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/dmitrijs2005/userdir/internal/common"
)

const (
	appDirName    = "userdir"
	tokenFileName = "token"
)

// FileTokenStore keeps the token in a 0600 file inside dir.
type FileTokenStore struct {
	dir string
}

// NewFileTokenStore constructs a store rooted at dir. The directory is
// created lazily on the first Save.
func NewFileTokenStore(dir string) *FileTokenStore {
	return &FileTokenStore{dir: dir}
}

// DefaultDir resolves the per-user configuration directory for the client,
// e.g. ~/.config/userdir on Linux.
func DefaultDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve config dir: %w", err)
	}
	return filepath.Join(base, appDirName), nil
}

func (s *FileTokenStore) path() string {
	return filepath.Join(s.dir, tokenFileName)
}

// Load reads the stored token. A missing file means no token was ever
// saved and yields common.ErrTokenNotFound.
func (s *FileTokenStore) Load() (string, error) {
	data, err := os.ReadFile(s.path())
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", common.ErrTokenNotFound
		}
		return "", fmt.Errorf("read token: %w", err)
	}

	token := strings.TrimSpace(string(data))
	if token == "" {
		return "", common.ErrTokenNotFound
	}
	return token, nil
}

// Save writes the token, replacing any previous value.
func (s *FileTokenStore) Save(token string) error {
	if err := os.MkdirAll(s.dir, 0o700); err != nil {
		return fmt.Errorf("mkdir %s: %w", s.dir, err)
	}
	if err := os.WriteFile(s.path(), []byte(token), 0o600); err != nil {
		return fmt.Errorf("write token: %w", err)
	}
	return nil
}

// Clear removes the stored token. Clearing an absent token is not an error.
func (s *FileTokenStore) Clear() error {
	if err := os.Remove(s.path()); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove token: %w", err)
	}
	return nil
}
