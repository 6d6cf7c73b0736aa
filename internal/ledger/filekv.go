package ledger

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// FileKV is the local KV backend: a single JSON document on disk
// mapping keys to raw values.  It is the default for single-device
// operation.  Writes go through a temp file and rename so a crash never
// leaves a truncated store behind.
type FileKV struct {
	mu   sync.Mutex
	path string
}

// NewFileKV returns a FileKV persisted at the given path.  The file is
// created lazily on first Put.
func NewFileKV(path string) *FileKV {
	return &FileKV{path: path}
}

// Get returns the value stored under key, or (nil, nil) when the store
// or the key does not exist yet.
func (f *FileKV) Get(ctx context.Context, key string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	entries, err := f.load()
	if err != nil {
		return nil, err
	}
	return entries[key], nil
}

// Put replaces the value under key and rewrites the document
// atomically.
func (f *FileKV) Put(ctx context.Context, key string, value []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	entries, err := f.load()
	if err != nil {
		return err
	}
	entries[key] = json.RawMessage(value)
	data, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("encode kv store: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(f.path), 0o755); err != nil {
		return fmt.Errorf("create kv dir: %w", err)
	}
	tmp, err := os.CreateTemp(filepath.Dir(f.path), ".kv-*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), f.path)
}

// load reads the backing document.  Callers must hold f.mu.
func (f *FileKV) load() (map[string]json.RawMessage, error) {
	data, err := os.ReadFile(f.path)
	if os.IsNotExist(err) {
		return map[string]json.RawMessage{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read kv store: %w", err)
	}
	entries := map[string]json.RawMessage{}
	if len(data) > 0 {
		if err := json.Unmarshal(data, &entries); err != nil {
			return nil, fmt.Errorf("decode kv store: %w", err)
		}
	}
	return entries, nil
}
