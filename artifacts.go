package main

import (
	"fmt"
	"log/slog"
	"os"
	"sync"
	"time"

	"osintbot/internal/model"
)

// ArtifactCache maps each user to their cached uploads, one per slot.
// Storing into an occupied slot replaces the reference and releases the
// file it pointed at, so uploads never accumulate on disk.
type ArtifactCache struct {
	mu     sync.Mutex
	byUser map[int64]map[string]model.ArtifactRef
}

func NewArtifactCache() *ArtifactCache {
	return &ArtifactCache{byUser: make(map[int64]map[string]model.ArtifactRef)}
}

func validSlot(slot string) bool {
	return slot == model.SlotImage || slot == model.SlotDocument
}

// Store caches a downloaded upload under the given slot. The slot set is
// fixed; anything else is a programming error surfaced at the call site.
func (c *ArtifactCache) Store(userID int64, slot, path string) error {
	if !validSlot(slot) {
		return fmt.Errorf("unknown artifact slot %q", slot)
	}

	c.mu.Lock()
	slots, ok := c.byUser[userID]
	if !ok {
		slots = make(map[string]model.ArtifactRef, 2)
		c.byUser[userID] = slots
	}
	prev, hadPrev := slots[slot]
	slots[slot] = model.ArtifactRef{Slot: slot, Path: path, CreatedAt: time.Now()}
	c.mu.Unlock()

	if hadPrev {
		releaseArtifact(prev)
	}
	return nil
}

func (c *ArtifactCache) Fetch(userID int64, slot string) (model.ArtifactRef, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	ref, ok := c.byUser[userID][slot]
	return ref, ok
}

// Release drops and deletes everything cached for one user.
func (c *ArtifactCache) Release(userID int64) {
	c.mu.Lock()
	slots := c.byUser[userID]
	delete(c.byUser, userID)
	c.mu.Unlock()

	for _, ref := range slots {
		releaseArtifact(ref)
	}
}

// EvictOlderThan releases artifacts past their TTL and reports how many.
func (c *ArtifactCache) EvictOlderThan(age time.Duration) int {
	cutoff := time.Now().Add(-age)

	c.mu.Lock()
	var victims []model.ArtifactRef
	for userID, slots := range c.byUser {
		for slot, ref := range slots {
			if ref.CreatedAt.Before(cutoff) {
				victims = append(victims, ref)
				delete(slots, slot)
			}
		}
		if len(slots) == 0 {
			delete(c.byUser, userID)
		}
	}
	c.mu.Unlock()

	for _, ref := range victims {
		releaseArtifact(ref)
	}
	return len(victims)
}

func releaseArtifact(ref model.ArtifactRef) {
	if ref.Path == "" {
		return
	}
	if err := os.Remove(ref.Path); err != nil && !os.IsNotExist(err) {
		slog.Warn("Failed to release artifact file", "path", ref.Path, "err", err)
	}
}
