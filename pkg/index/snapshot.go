package index

import (
	"encoding/json"
	"os"

	"github.com/sunrise-ims/inventory-finder/pkg/types"
)

// LoadSnapshot seeds the index from a JSON record dump on disk. Missing files
// are not an error; the service then starts empty and fills from the update
// feed.
func (i *Index) LoadSnapshot(path string) error {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	defer file.Close()

	var records []*types.InventoryRecord
	if err := json.NewDecoder(file).Decode(&records); err != nil {
		return err
	}
	for _, r := range records {
		i.Upsert(r)
	}
	return nil
}

// SaveSnapshot writes the current records to disk, used as a shutdown hook.
func (i *Index) SaveSnapshot(path string) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	return json.NewEncoder(file).Encode(i.All())
}
