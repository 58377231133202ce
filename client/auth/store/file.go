package store

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/viant/afs"
)

// FileStore persists tokens as a JSON snapshot at an afs URL (file path,
// file://, mem://, gs://, s3://...). The snapshot is loaded on first use and
// rewritten on every mutation.
type FileStore struct {
	mu     sync.RWMutex
	URL    string
	fs     afs.Service
	loaded bool
	tokens map[string]string
}

type fileSnapshot struct {
	Tokens map[string]string `json:"tokens"`
}

// NewFileStore creates a Store that persists tokens at the given URL.
func NewFileStore(URL string) *FileStore {
	return &FileStore{URL: URL, fs: afs.New(), tokens: map[string]string{}}
}

func (f *FileStore) Get(ctx context.Context, key string) (string, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.ensureLoaded(ctx); err != nil {
		return "", false
	}
	value, ok := f.tokens[key]
	return value, ok
}

func (f *FileStore) Set(ctx context.Context, key, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.ensureLoaded(ctx); err != nil {
		return err
	}
	f.tokens[key] = value
	return f.save(ctx)
}

func (f *FileStore) Remove(ctx context.Context, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.ensureLoaded(ctx); err != nil {
		return err
	}
	if _, ok := f.tokens[key]; !ok {
		return nil
	}
	delete(f.tokens, key)
	return f.save(ctx)
}

// ---- persistence ----

func (f *FileStore) ensureLoaded(ctx context.Context) error {
	if f.loaded {
		return nil
	}
	if err := f.load(ctx); err != nil {
		return err
	}
	f.loaded = true
	return nil
}

func (f *FileStore) save(ctx context.Context) error {
	data, err := json.MarshalIndent(fileSnapshot{Tokens: f.tokens}, "", "  ")
	if err != nil {
		return err
	}
	if err = f.fs.Upload(ctx, f.URL, 0o600, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("failed to save tokens to %v: %w", f.URL, err)
	}
	return nil
}

func (f *FileStore) load(ctx context.Context) error {
	f.tokens = map[string]string{}
	ok, err := f.fs.Exists(ctx, f.URL)
	if err != nil || !ok {
		return nil
	}
	data, err := f.fs.DownloadWithURL(ctx, f.URL)
	if err != nil {
		return fmt.Errorf("failed to load tokens from %v: %w", f.URL, err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	var snap fileSnapshot
	if err = json.Unmarshal(data, &snap); err != nil {
		return fmt.Errorf("invalid token file %v: %w", f.URL, err)
	}
	for k, v := range snap.Tokens {
		f.tokens[k] = v
	}
	return nil
}
