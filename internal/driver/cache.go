package driver

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"os"
	"path/filepath"
	"sync"

	"github.com/vmihailenco/msgpack/v5"

	"protogen/internal/ir"
)

// Current cache schema version - increment when the stored format changes.
const cacheSchemaVersion uint16 = 2

// Digest is a sha256 content hash.
type Digest [sha256.Size]byte

// DiskCache stores emitted IR documents keyed by a digest of the schema
// and manifest content, so unchanged inputs skip the whole build.
// Thread-safe for concurrent access.
type DiskCache struct {
	mu  sync.RWMutex
	dir string
}

// cachePayload wraps a document with the version stamp used for safe
// invalidation.
type cachePayload struct {
	Schema   uint16       `msgpack:"schema"`
	Document *ir.Document `msgpack:"document"`
}

// OpenDiskCache initializes a cache under the standard user cache
// location ($XDG_CACHE_HOME or ~/.cache).
func OpenDiskCache(app string) (*DiskCache, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		base = filepath.Join(home, ".cache")
	}
	return OpenDiskCacheAt(filepath.Join(base, app))
}

// OpenDiskCacheAt initializes a cache rooted at dir.
func OpenDiskCacheAt(dir string) (*DiskCache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &DiskCache{dir: dir}, nil
}

// CacheKey digests the inputs that shape one run's output: raw schema
// bytes, raw manifest bytes and the strategy name.
func CacheKey(schemaData, manifestData []byte, strategy string) Digest {
	h := sha256.New()
	h.Write(schemaData)
	h.Write([]byte{0})
	h.Write(manifestData)
	h.Write([]byte{0})
	h.Write([]byte(strategy))
	var d Digest
	copy(d[:], h.Sum(nil))
	return d
}

func (c *DiskCache) pathFor(key Digest) string {
	return filepath.Join(c.dir, "ir", hex.EncodeToString(key[:])+".mp")
}

// Put serializes and writes a document to the cache, replacing the file
// atomically.
func (c *DiskCache) Put(key Digest, doc *ir.Document) error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	p := c.pathFor(key)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(filepath.Dir(p), "tmp-*")
	if err != nil {
		return err
	}
	defer os.Remove(f.Name())

	if err := msgpack.NewEncoder(f).Encode(&cachePayload{
		Schema:   cacheSchemaVersion,
		Document: doc,
	}); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	return os.Rename(f.Name(), p)
}

// Get reads a cached document. A missing entry or a version mismatch is
// a miss, not an error.
func (c *DiskCache) Get(key Digest) (*ir.Document, bool, error) {
	if c == nil {
		return nil, false, nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	f, err := os.Open(c.pathFor(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, err
	}
	defer f.Close()

	var payload cachePayload
	if err := msgpack.NewDecoder(f).Decode(&payload); err != nil {
		return nil, false, err
	}
	if payload.Schema != cacheSchemaVersion || payload.Document == nil {
		return nil, false, nil
	}
	return payload.Document, true, nil
}

// DropAll invalidates the cache, useful after format changes.
func (c *DiskCache) DropAll() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return os.RemoveAll(filepath.Join(c.dir, "ir"))
}
