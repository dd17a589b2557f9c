package messaging

import (
	"encoding/json"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/sunrise-ims/inventory-finder/pkg/index"
	"github.com/sunrise-ims/inventory-finder/pkg/types"
)

// InventoryFeed keeps an index current from the inventory change topics. The
// warehouse system publishes upserts and deletes; each consumer instance gets
// its own exclusive queue so every instance sees every change.
type InventoryFeed struct {
	conn   *amqp.Connection
	prefix string
	index  *index.Index
}

func NewInventoryFeed(url, prefix string, idx *index.Index) (*InventoryFeed, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, err
	}
	return &InventoryFeed{conn: conn, prefix: prefix, index: idx}, nil
}

// Listen subscribes to both topics. Each topic consumes on its own channel.
func (f *InventoryFeed) Listen() error {
	upsertCh, err := f.conn.Channel()
	if err != nil {
		return err
	}
	if err := ListenToTopic(upsertCh, f.prefix, InventoryUpserted, f.handleUpserted); err != nil {
		return err
	}

	deleteCh, err := f.conn.Channel()
	if err != nil {
		return err
	}
	return ListenToTopic(deleteCh, f.prefix, InventoryDeleted, f.handleDeleted)
}

func (f *InventoryFeed) handleUpserted(d amqp.Delivery) error {
	records := make([]*types.InventoryRecord, 0)
	if err := json.Unmarshal(d.Body, &records); err != nil {
		return err
	}
	for _, r := range records {
		f.index.Upsert(r)
	}
	return nil
}

func (f *InventoryFeed) handleDeleted(d amqp.Delivery) error {
	var id string
	if err := json.Unmarshal(d.Body, &id); err != nil {
		return err
	}
	f.index.Delete(id)
	return nil
}

func (f *InventoryFeed) Close() error {
	return f.conn.Close()
}
