package driver

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/vmihailenco/msgpack/v5"

	"pal/internal/diag"
	"pal/internal/source"
)

// Bump when DiskPayload changes shape.
const diskCacheSchemaVersion uint16 = 1

// DiskCache stores the diagnostics of already analyzed file contents.
// Safe for concurrent use.
type DiskCache struct {
	mu  sync.RWMutex
	dir string
}

type CachedDiagnostic struct {
	Severity uint8
	Code     uint16
	Message  string
	Line     uint32
	Column   uint32
	Length   uint32
	Start    uint32
	End      uint32
}

// DiskPayload is the msgpack record written per cache key.
type DiskPayload struct {
	Schema      uint16
	Path        string // informational, the key does not depend on it
	Tokens      int
	Diagnostics []CachedDiagnostic
}

// OpenDiskCache opens (creating if needed) a cache rooted at dir, or at
// the user cache directory when dir is empty.
func OpenDiskCache(dir string) (*DiskCache, error) {
	if dir == "" {
		base := os.Getenv("XDG_CACHE_HOME")
		if base == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return nil, fmt.Errorf("locate cache directory: %w", err)
			}
			base = filepath.Join(home, ".cache")
		}
		dir = filepath.Join(base, "pal")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create cache directory: %w", err)
	}
	return &DiskCache{dir: dir}, nil
}

func (c *DiskCache) Dir() string {
	if c == nil {
		return ""
	}
	return c.dir
}

// CacheKey mixes the content hash with everything else that changes the
// diagnostics of a file: the schema and the diagnostic limit.
func CacheKey(contentHash [32]byte, maxDiagnostics int) [32]byte {
	var hdr [10]byte
	binary.LittleEndian.PutUint16(hdr[:2], diskCacheSchemaVersion)
	binary.LittleEndian.PutUint64(hdr[2:], uint64(max(maxDiagnostics, 0)))
	h := sha256.New()
	_, _ = h.Write(hdr[:])
	_, _ = h.Write(contentHash[:])
	var out [32]byte
	copy(out[:], h.Sum(nil))
	return out
}

func (c *DiskCache) pathFor(key [32]byte) string {
	return filepath.Join(c.dir, "diag", hex.EncodeToString(key[:])+".mp")
}

// Put writes payload atomically under key.
func (c *DiskCache) Put(key [32]byte, payload *DiskPayload) (err error) {
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
	defer func() {
		if err != nil {
			_ = f.Close()
			_ = os.Remove(f.Name())
		}
	}()

	payload.Schema = diskCacheSchemaVersion
	if err = msgpack.NewEncoder(f).Encode(payload); err != nil {
		return fmt.Errorf("encode cache entry: %w", err)
	}
	if err = f.Close(); err != nil {
		return err
	}
	return os.Rename(f.Name(), p)
}

// Get reports false for a missing entry or one written by another schema.
func (c *DiskCache) Get(key [32]byte, out *DiskPayload) (bool, error) {
	if c == nil {
		return false, nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	f, err := os.Open(c.pathFor(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	defer f.Close()

	if err := msgpack.NewDecoder(f).Decode(out); err != nil {
		return false, fmt.Errorf("decode cache entry: %w", err)
	}
	if out.Schema != diskCacheSchemaVersion {
		return false, nil
	}
	return true, nil
}

// DropAll removes every entry.
func (c *DiskCache) DropAll() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	old := c.dir + ".old-" + time.Now().Format("20060102150405")
	if err := os.Rename(c.dir, old); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	if err := os.RemoveAll(old); err != nil {
		return err
	}
	return os.MkdirAll(c.dir, 0o755)
}

func payloadFromBag(path string, tokens int, bag *diag.Bag) *DiskPayload {
	items := bag.Items()
	p := &DiskPayload{Path: path, Tokens: tokens, Diagnostics: make([]CachedDiagnostic, len(items))}
	for i, d := range items {
		p.Diagnostics[i] = CachedDiagnostic{
			Severity: uint8(d.Severity),
			Code:     uint16(d.Code),
			Message:  d.Message,
			Line:     d.Line,
			Column:   d.Column,
			Length:   d.Length,
			Start:    d.Span.Start,
			End:      d.Span.End,
		}
	}
	return p
}

// restore replays the cached diagnostics into bag, labelled with filename.
func (p *DiskPayload) restore(bag *diag.Bag, filename string, file source.FileID) {
	for _, cd := range p.Diagnostics {
		bag.Add(diag.New(diag.Severity(cd.Severity), diag.Code(cd.Code), diag.Location{
			Filename: filename,
			Line:     cd.Line,
			Column:   cd.Column,
			Length:   cd.Length,
			Span:     source.Span{File: file, Start: cd.Start, End: cd.End},
		}, cd.Message))
	}
}
