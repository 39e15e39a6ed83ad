package recommend

import (
	"encoding/json"
	"log"
	"os"
	"path/filepath"
	"sort"
	"sync"

	mapset "github.com/deckarep/golang-set/v2"
)

// SeenCache remembers internships already shown or applied to, so repeated
// notifier runs don't resend them. Backed by a JSON file in the cache dir.
type SeenCache struct {
	mu       sync.Mutex
	filePath string
	seen     mapset.Set[string]
}

// NewSeenCache creates or loads the cache.
func NewSeenCache(cacheDir string) *SeenCache {
	if err := os.MkdirAll(cacheDir, 0755); err != nil {
		log.Printf("⚠️ Failed to create cache directory: %v", err)
	}
	cache := &SeenCache{
		filePath: filepath.Join(cacheDir, "seen_internships.json"),
		seen:     mapset.NewSet[string](),
	}
	cache.load()
	return cache
}

func (c *SeenCache) IsSeen(internshipID string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.seen.Contains(internshipID)
}

func (c *SeenCache) Add(internshipIDs []string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	changed := false
	for _, id := range internshipIDs {
		if c.seen.Add(id) {
			changed = true
		}
	}
	if changed {
		c.save()
	}
}

func (c *SeenCache) load() {
	data, err := os.ReadFile(c.filePath)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("⚠️ Failed to read seen_internships.json: %v", err)
		}
		return
	}

	var ids []string
	if err := json.Unmarshal(data, &ids); err != nil {
		log.Printf("⚠️ Failed to parse seen_internships.json: %v", err)
		return
	}
	c.seen.Append(ids...)
	log.Printf("📋 Loaded %d previously seen internships", len(ids))
}

// save writes the current set to disk, sorted for stable files.
func (c *SeenCache) save() {
	ids := c.seen.ToSlice()
	sort.Strings(ids)
	data, err := json.MarshalIndent(ids, "", "  ")
	if err != nil {
		log.Printf("⚠️ Failed to marshal seen internships: %v", err)
		return
	}
	if err := os.WriteFile(c.filePath, data, 0644); err != nil {
		log.Printf("⚠️ Failed to write seen_internships.json: %v", err)
	}
}
