// Package index keeps the full inventory snapshot in memory and answers
// filtered, sorted, paginated searches over it.
package index

import (
	"fmt"
	"sync"

	"github.com/sunrise-ims/inventory-finder/pkg/filter"
	"github.com/sunrise-ims/inventory-finder/pkg/params"
	"github.com/sunrise-ims/inventory-finder/pkg/types"
)

type Index struct {
	mu      sync.RWMutex
	records []*types.InventoryRecord
	byID    map[string]int
}

func NewIndex() *Index {
	return &Index{
		records: make([]*types.InventoryRecord, 0),
		byID:    make(map[string]int),
	}
}

// Upsert inserts or replaces a record by id. Insertion order is preserved so
// unfiltered searches stay stable across upserts.
func (i *Index) Upsert(r *types.InventoryRecord) {
	i.mu.Lock()
	defer i.mu.Unlock()
	if pos, ok := i.byID[r.ID]; ok {
		i.records[pos] = r
		return
	}
	i.byID[r.ID] = len(i.records)
	i.records = append(i.records, r)
}

func (i *Index) Delete(id string) {
	i.mu.Lock()
	defer i.mu.Unlock()
	pos, ok := i.byID[id]
	if !ok {
		return
	}
	i.records = append(i.records[:pos], i.records[pos+1:]...)
	delete(i.byID, id)
	for idx := pos; idx < len(i.records); idx++ {
		i.byID[i.records[idx].ID] = idx
	}
}

func (i *Index) Get(id string) (*types.InventoryRecord, bool) {
	i.mu.RLock()
	defer i.mu.RUnlock()
	pos, ok := i.byID[id]
	if !ok {
		return nil, false
	}
	return i.records[pos], true
}

func (i *Index) Len() int {
	i.mu.RLock()
	defer i.mu.RUnlock()
	return len(i.records)
}

// All returns a snapshot of every record in insertion order.
func (i *Index) All() []*types.InventoryRecord {
	i.mu.RLock()
	defer i.mu.RUnlock()
	out := make([]*types.InventoryRecord, len(i.records))
	copy(out, i.records)
	return out
}

// PageMeta mirrors the page envelope the original API serves.
type PageMeta struct {
	Size          int `json:"size"`
	Number        int `json:"number"`
	TotalElements int `json:"totalElements"`
	TotalPages    int `json:"totalPages"`
}

type Page struct {
	Content []*types.InventoryRecord `json:"content"`
	Page    PageMeta                 `json:"page"`
}

// Search runs the filter/sort/page pipeline for the list endpoint.
func (i *Index) Search(sr *params.SearchRequest) *Page {
	matching := i.SearchAll(&sr.Criteria, sr.Sort)

	total := len(matching)
	totalPages := (total + sr.Size - 1) / sr.Size

	start := sr.Page * sr.Size
	if start > total {
		start = total
	}
	end := start + sr.Size
	if end > total {
		end = total
	}

	return &Page{
		Content: matching[start:end],
		Page: PageMeta{
			Size:          sr.Size,
			Number:        sr.Page,
			TotalElements: total,
			TotalPages:    totalPages,
		},
	}
}

// SearchAll returns every matching record, sorted but unpaginated. The export
// path uses it with the same criteria the list endpoint decodes, so an export
// always covers the visible result set.
func (i *Index) SearchAll(c *params.Criteria, sort string) []*types.InventoryRecord {
	state := c.FilterState()
	matching := filter.Apply(i.All(), state)
	SortRecords(matching, types.ParseSort(sort))
	return matching
}

// GetByPan looks up a record by pan id with optional disambiguators, falling
// back to the first pan match when the specific combination is absent.
func (i *Index) GetByPan(panID int64, polymer, form, folder, lotName string) (*types.InventoryRecord, error) {
	i.mu.RLock()
	defer i.mu.RUnlock()

	if polymer != "" && form != "" {
		for _, r := range i.records {
			if r.PanID == panID && r.PolymerCode == polymer && r.FormCode == form &&
				r.FolderCode == folder && r.LotName == lotName {
				return r, nil
			}
		}
	}
	for _, r := range i.records {
		if r.PanID == panID {
			return r, nil
		}
	}
	return nil, fmt.Errorf("inventory item not found with pan id %d", panID)
}
