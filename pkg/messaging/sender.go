package messaging

import (
	"encoding/json"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/sunrise-ims/inventory-finder/pkg/types"
)

func getName(prefix string, topic ChangeTopic) string {
	return fmt.Sprintf("%s_%s", prefix, topic)
}

// newMessage encodes a change payload; the feed handlers decode this exact
// shape on the consuming side.
func newMessage[V any](data V) (amqp.Publishing, error) {
	bytes, err := json.Marshal(data)
	if err != nil {
		return amqp.Publishing{}, err
	}
	return amqp.Publishing{
		ContentType: "application/json",
		Body:        bytes,
	}, nil
}

func DefineTopic(ch *amqp.Channel, prefix string, topic ChangeTopic) error {
	name := getName(prefix, topic)
	if err := ch.ExchangeDeclare(
		name,    // name
		"topic", // type
		true,    // durable
		false,   // auto-delete
		false,   // internal
		false,   // noWait
		nil,     // arguments
	); err != nil {
		return err
	}
	if _, err := ch.QueueDeclare(
		name,  // name of the queue
		true,  // durable
		false, // delete when unused
		false, // exclusive
		false, // noWait
		nil,   // arguments
	); err != nil {
		return err
	}
	return nil
}

func SendChange[V any](c *amqp.Connection, prefix string, topic ChangeTopic, data V) error {
	msg, err := newMessage(data)
	if err != nil {
		return err
	}
	ch, err := c.Channel()
	if err != nil {
		return err
	}
	defer ch.Close()
	name := getName(prefix, topic)
	return ch.Publish(
		name,
		name,
		true,
		false,
		msg,
	)
}

// Publisher is the sender side of the update feed, for the process that owns
// the inventory data. It declares both topics up front so consumers can bind
// before the first change is published.
type Publisher struct {
	conn   *amqp.Connection
	prefix string
}

func NewPublisher(url, prefix string) (*Publisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, err
	}
	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, err
	}
	defer ch.Close()
	for _, topic := range []ChangeTopic{InventoryUpserted, InventoryDeleted} {
		if err := DefineTopic(ch, prefix, topic); err != nil {
			conn.Close()
			return nil, err
		}
	}
	return &Publisher{conn: conn, prefix: prefix}, nil
}

// Upserted publishes new or changed records.
func (p *Publisher) Upserted(records ...*types.InventoryRecord) error {
	return SendChange(p.conn, p.prefix, InventoryUpserted, records)
}

// Deleted publishes the removal of a record by id.
func (p *Publisher) Deleted(id string) error {
	return SendChange(p.conn, p.prefix, InventoryDeleted, id)
}

func (p *Publisher) Close() error {
	return p.conn.Close()
}
