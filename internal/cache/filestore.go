package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// fileEntry is the on-disk record for one key. The key is stored inside the
// payload because file names are digests, not keys.
type fileEntry struct {
	Key     string        `json:"key"`
	Value   []byte        `json:"value"`
	SavedAt time.Time     `json:"saved_at"`
	TTL     time.Duration `json:"ttl"`
}

// FileStore keeps one JSON file per entry under Dir, named by the sha256 of
// the key. Simple and deterministic; no eviction beyond TTL and PurgeByAge.
type FileStore struct {
	Dir string
}

func (c *FileStore) ensureDir() error {
	if c == nil || c.Dir == "" {
		return errors.New("cache dir not configured")
	}
	return os.MkdirAll(c.Dir, 0o755)
}

func (c *FileStore) pathFor(key string) string {
	h := sha256.Sum256([]byte(key))
	return filepath.Join(c.Dir, hex.EncodeToString(h[:])+".json")
}

func (c *FileStore) Get(_ context.Context, key string) ([]byte, bool, error) {
	if err := c.ensureDir(); err != nil {
		return nil, false, err
	}
	p := c.pathFor(key)
	b, err := os.ReadFile(p)
	if err != nil {
		return nil, false, nil
	}
	var e fileEntry
	if err := json.Unmarshal(b, &e); err != nil {
		// Unreadable entry: drop it and report a miss.
		_ = os.Remove(p)
		return nil, false, nil
	}
	if e.TTL > 0 && time.Now().UTC().Sub(e.SavedAt) > e.TTL {
		_ = os.Remove(p)
		return nil, false, nil
	}
	return e.Value, true, nil
}

func (c *FileStore) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	if err := c.ensureDir(); err != nil {
		return err
	}
	e := fileEntry{
		Key:     key,
		Value:   value,
		SavedAt: time.Now().UTC(),
		TTL:     ttl,
	}
	b, err := json.Marshal(&e)
	if err != nil {
		return fmt.Errorf("encode entry: %w", err)
	}
	p := c.pathFor(key)
	tmp := p + ".tmp"
	if err := os.WriteFile(tmp, b, 0o644); err != nil {
		return fmt.Errorf("write entry: %w", err)
	}
	return os.Rename(tmp, p)
}

func (c *FileStore) Delete(_ context.Context, key string) error {
	if err := c.ensureDir(); err != nil {
		return err
	}
	err := os.Remove(c.pathFor(key))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

// DeletePrefix walks only this store's entry files and removes those whose
// recorded key starts with prefix.
func (c *FileStore) DeletePrefix(_ context.Context, prefix string) error {
	if err := c.ensureDir(); err != nil {
		return err
	}
	return filepath.WalkDir(c.Dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(d.Name(), ".json") {
			return nil
		}
		b, err := os.ReadFile(path)
		if err != nil {
			return nil // skip unreadable
		}
		var e fileEntry
		if err := json.Unmarshal(b, &e); err != nil {
			return nil // skip malformed
		}
		if strings.HasPrefix(e.Key, prefix) {
			_ = os.Remove(path)
		}
		return nil
	})
}

// PurgeByAge removes entries whose SavedAt is older than maxAge, regardless
// of their own TTL. Returns how many were removed.
func (c *FileStore) PurgeByAge(maxAge time.Duration) (int, error) {
	if maxAge <= 0 {
		return 0, nil
	}
	if err := c.ensureDir(); err != nil {
		return 0, err
	}
	now := time.Now().UTC()
	removed := 0
	err := filepath.WalkDir(c.Dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(d.Name(), ".json") {
			return nil
		}
		b, err := os.ReadFile(path)
		if err != nil {
			return nil
		}
		var e fileEntry
		if err := json.Unmarshal(b, &e); err != nil {
			return nil
		}
		if now.Sub(e.SavedAt) <= maxAge {
			return nil
		}
		removed++
		_ = os.Remove(path)
		return nil
	})
	return removed, err
}
