package messaging

import (
	"testing"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/sunrise-ims/inventory-finder/pkg/index"
	"github.com/sunrise-ims/inventory-finder/pkg/types"
)

// delivery builds the message a publisher would put on the wire, so these
// tests cover the publish/consume encoding round trip without a broker.
func delivery(t *testing.T, payload any) amqp.Delivery {
	t.Helper()
	msg, err := newMessage(payload)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	return amqp.Delivery{ContentType: msg.ContentType, Body: msg.Body}
}

func testFeed() *InventoryFeed {
	return &InventoryFeed{prefix: "warehouse", index: index.NewIndex()}
}

func TestFeedUpsertsRecordsIntoIndex(t *testing.T) {
	feed := testFeed()

	records := []*types.InventoryRecord{
		{ID: "1", PanID: 1001, SupplierCode: "SUP-A", AvailableQty: 500},
		{ID: "2", PanID: 1002, SupplierCode: "SUP-B", AvailableQty: 120},
	}
	if err := feed.handleUpserted(delivery(t, records)); err != nil {
		t.Fatalf("upsert: %v", err)
	}
	if feed.index.Len() != 2 {
		t.Fatalf("unexpected count: %d", feed.index.Len())
	}
	r, ok := feed.index.Get("1")
	if !ok || r.SupplierCode != "SUP-A" {
		t.Fatalf("record missing after upsert: %+v", r)
	}

	// a second upsert for a known id replaces, not duplicates
	update := []*types.InventoryRecord{{ID: "1", PanID: 1001, AvailableQty: 80}}
	if err := feed.handleUpserted(delivery(t, update)); err != nil {
		t.Fatalf("upsert: %v", err)
	}
	if feed.index.Len() != 2 {
		t.Fatalf("replacement changed the count: %d", feed.index.Len())
	}
	if r, _ := feed.index.Get("1"); r.AvailableQty != 80 {
		t.Fatalf("record not replaced: %+v", r)
	}
}

func TestFeedDeletesFromIndex(t *testing.T) {
	feed := testFeed()
	feed.index.Upsert(&types.InventoryRecord{ID: "1", PanID: 1001})
	feed.index.Upsert(&types.InventoryRecord{ID: "2", PanID: 1002})

	if err := feed.handleDeleted(delivery(t, "1")); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if feed.index.Len() != 1 {
		t.Fatalf("unexpected count: %d", feed.index.Len())
	}
	if _, ok := feed.index.Get("1"); ok {
		t.Fatal("record still resolvable after delete")
	}

	// deleting an unknown id is a no-op, not an error
	if err := feed.handleDeleted(delivery(t, "nope")); err != nil {
		t.Fatalf("unknown delete: %v", err)
	}
	if feed.index.Len() != 1 {
		t.Fatalf("unknown delete changed the count: %d", feed.index.Len())
	}
}

func TestFeedRejectsMalformedPayloads(t *testing.T) {
	feed := testFeed()
	feed.index.Upsert(&types.InventoryRecord{ID: "1", PanID: 1001})

	if err := feed.handleUpserted(amqp.Delivery{Body: []byte("{")}); err == nil {
		t.Fatal("expected an error for a malformed upsert body")
	}
	if err := feed.handleDeleted(amqp.Delivery{Body: []byte("{")}); err == nil {
		t.Fatal("expected an error for a malformed delete body")
	}
	if feed.index.Len() != 1 {
		t.Fatalf("malformed payload changed the index: %d", feed.index.Len())
	}
}

func TestTopicNames(t *testing.T) {
	if got := getName("warehouse", InventoryUpserted); got != "warehouse_inventory_upserted" {
		t.Fatalf("unexpected topic name: %s", got)
	}
	if got := getName("warehouse", InventoryDeleted); got != "warehouse_inventory_deleted" {
		t.Fatalf("unexpected topic name: %s", got)
	}
}
