package store

import (
	"os"
	"sync"
	"time"

	"github.com/swatchfile/swatch/internal/model"
)

// Default TTLs. The fingerprint outlives the data cache so a stale data
// entry can still be revalidated cheaply against the file.
const (
	DefaultDataTTL        = 10 * time.Minute
	DefaultFingerprintTTL = 30 * time.Minute
)

// Fingerprint identifies an on-disk file state cheaply: modification time
// and size. Matching fingerprints are treated as "unchanged"; this is
// opportunistic change detection, not a consistency guarantee.
type Fingerprint struct {
	MtimeMillis int64
	SizeBytes   int64
}

// ReadFingerprint stats a file and returns its fingerprint.
func ReadFingerprint(path string) (Fingerprint, error) {
	info, err := os.Stat(path)
	if err != nil {
		return Fingerprint{}, err
	}
	return Fingerprint{
		MtimeMillis: info.ModTime().UnixMilli(),
		SizeBytes:   info.Size(),
	}, nil
}

// Cache memoizes the last-loaded collection plus the file fingerprint it
// was loaded from, each under its own TTL. It is advisory only: the store
// must always be able to fall back to disk or defaults when the cache is
// cold.
type Cache struct {
	mu sync.RWMutex

	dataTTL time.Duration
	fpTTL   time.Duration

	records         []model.ColorRecord
	recordsCached   bool
	recordsCachedAt time.Time

	fp         Fingerprint
	fpCached   bool
	fpCachedAt time.Time
}

// NewCache creates a cache with the default TTLs.
func NewCache() *Cache {
	return &Cache{dataTTL: DefaultDataTTL, fpTTL: DefaultFingerprintTTL}
}

// SetTTL overrides the cache lifetimes. Zero disables expiry for that
// entry.
func (c *Cache) SetTTL(data, fingerprint time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.dataTTL = data
	c.fpTTL = fingerprint
}

// Records returns the cached collection and whether it was cached.
// Returns not-cached once the data TTL has expired.
func (c *Cache) Records() ([]model.ColorRecord, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if !c.recordsCached {
		return nil, false
	}
	if c.dataTTL > 0 && time.Since(c.recordsCachedAt) > c.dataTTL {
		return nil, false
	}
	return model.CloneRecords(c.records), true
}

// HasChanged reports whether the file differs from the cached
// fingerprint. No cached (or expired) fingerprint counts as changed.
func (c *Cache) HasChanged(current Fingerprint) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if !c.fpCached {
		return true
	}
	if c.fpTTL > 0 && time.Since(c.fpCachedAt) > c.fpTTL {
		return true
	}
	return current != c.fp
}

// Set refreshes both the data cache and the fingerprint cache. Every
// successful load and save passes through here.
func (c *Cache) Set(records []model.ColorRecord, fp Fingerprint) {
	now := time.Now()
	c.mu.Lock()
	defer c.mu.Unlock()
	c.records = model.CloneRecords(records)
	c.recordsCached = true
	c.recordsCachedAt = now
	c.fp = fp
	c.fpCached = true
	c.fpCachedAt = now
}

// Reset clears all cached data, forcing the next load to hit disk.
func (c *Cache) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.records = nil
	c.recordsCached = false
	c.fpCached = false
}
