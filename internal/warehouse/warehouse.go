package warehouse

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"agropulse/internal/model"
)

// Warehouse maps commodity ids to their trained model bundles. It is built
// once at startup and read-only afterwards, so concurrent reads need no
// locking.
type Warehouse struct {
	bundles map[string]model.Bundle
}

// Load reads the serialized model warehouse from path.
//
// A missing file yields an empty warehouse and no error: the service stays
// reachable for health checks and every prediction fails with not-found.
// Any other failure (unreadable file, bad JSON, inconsistent bundle) is a
// startup error and is propagated.
func Load(path string) (*Warehouse, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return New(nil), nil
		}
		return nil, fmt.Errorf("read model warehouse %s: %w", path, err)
	}
	var bundles map[string]model.Bundle
	if err := json.Unmarshal(raw, &bundles); err != nil {
		return nil, fmt.Errorf("parse model warehouse %s: %w", path, err)
	}
	for id, b := range bundles {
		if err := b.Validate(); err != nil {
			return nil, fmt.Errorf("model warehouse %s: bundle %q: %w", path, id, err)
		}
	}
	return New(bundles), nil
}

// New builds a warehouse from an in-memory bundle map. The map is not
// copied; callers must not mutate it afterwards.
func New(bundles map[string]model.Bundle) *Warehouse {
	if bundles == nil {
		bundles = map[string]model.Bundle{}
	}
	return &Warehouse{bundles: bundles}
}

// Get returns the bundle for itemID, if one was loaded.
func (w *Warehouse) Get(itemID string) (model.Bundle, bool) {
	b, ok := w.bundles[itemID]
	return b, ok
}

// Items returns the sorted ids of all commodities with a trained model.
func (w *Warehouse) Items() []string {
	items := make([]string, 0, len(w.bundles))
	for id := range w.bundles {
		items = append(items, id)
	}
	sort.Strings(items)
	return items
}

// Len reports how many models were loaded.
func (w *Warehouse) Len() int {
	return len(w.bundles)
}
