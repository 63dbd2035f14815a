// Package resolver maps part business keys to storage identifiers.
//
// A Map is a snapshot: it is built once from the part keys read at the start
// of a dialog session and is never refreshed. Build a new one after any part
// mutation that can change the key set.
package resolver

import (
	"fmt"
	"sort"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"github.com/you-humble/kicad-dblib/internal/model"
)

type Map struct {
	byKey map[string]uuid.UUID
	byID  map[uuid.UUID]string
}

// New indexes keys in both directions. When a business key repeats, the
// first pair wins, matching the order the gateway returned.
func New(keys []model.PartKey) Map {
	m := Map{
		byKey: make(map[string]uuid.UUID, len(keys)),
		byID:  make(map[uuid.UUID]string, len(keys)),
	}

	for _, k := range keys {
		if _, seen := m.byKey[k.KicadPartNumber]; !seen {
			m.byKey[k.KicadPartNumber] = k.ID
		}
		m.byID[k.ID] = k.KicadPartNumber
	}

	return m
}

func (m Map) Len() int { return len(m.byKey) }

func (m Map) ID(key string) (uuid.UUID, bool) {
	id, ok := m.byKey[key]
	return id, ok
}

func (m Map) Key(id uuid.UUID) (string, bool) {
	key, ok := m.byID[id]
	return key, ok
}

// Keys returns the selectable business keys, sorted.
func (m Map) Keys() []string {
	keys := lo.Keys(m.byKey)
	sort.Strings(keys)
	return keys
}

// Resolve translates keys into storage ids, keeping order and duplicates.
func (m Map) Resolve(keys []string) ([]uuid.UUID, error) {
	ids := make([]uuid.UUID, 0, len(keys))
	for _, k := range keys {
		id, ok := m.byKey[k]
		if !ok {
			return nil, fmt.Errorf("%w: %q", model.ErrUnknownPart, k)
		}
		ids = append(ids, id)
	}
	return ids, nil
}
