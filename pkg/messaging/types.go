package messaging

type ChangeTopic string

const (
	InventoryUpserted ChangeTopic = "inventory_upserted"
	InventoryDeleted  ChangeTopic = "inventory_deleted"
)
