// Package cart stores the side-by-side comparison carts. A cart is a small,
// capped selection of inventory entries; all comparison logic lives in the
// client, this is keyed storage with the cap and duplicate rules enforced.
package cart

import (
	"errors"

	"github.com/google/uuid"
)

// MaxItems caps a comparison cart; the compare view renders at most four
// columns.
const MaxItems = 4

var (
	ErrCartFull  = errors.New("comparison cart is full")
	ErrDuplicate = errors.New("item is already in the cart")
	ErrNotFound  = errors.New("cart item not found")
)

type Item struct {
	ID       string  `json:"id"`
	PanID    string  `json:"panId"`
	Polymer  string  `json:"polymer,omitempty"`
	Form     string  `json:"form,omitempty"`
	Folder   string  `json:"folder,omitempty"`
	LotName  string  `json:"lotName,omitempty"`
	Lot      string  `json:"lot"`
	Grade    string  `json:"grade"`
	Quantity float64 `json:"quantity"`
}

type Cart struct {
	ID    string `json:"id"`
	Items []Item `json:"items"`
}

type Storage interface {
	GetCart(cartID string) (*Cart, error)
	AddItem(cartID string, item Item) (*Cart, error)
	RemoveItem(cartID string, itemID string) (*Cart, error)
	ClearCart(cartID string) error
}

// add applies the cap and duplicate rules shared by every storage backend.
// Two entries are duplicates when they reference the same pan and lot.
func (c *Cart) add(item Item) (Item, error) {
	if len(c.Items) >= MaxItems {
		return Item{}, ErrCartFull
	}
	for _, existing := range c.Items {
		if existing.PanID == item.PanID && existing.Lot == item.Lot {
			return Item{}, ErrDuplicate
		}
	}
	if item.ID == "" {
		item.ID = uuid.NewString()
	}
	c.Items = append(c.Items, item)
	return item, nil
}

func (c *Cart) remove(itemID string) error {
	for i, item := range c.Items {
		if item.ID == itemID {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}
