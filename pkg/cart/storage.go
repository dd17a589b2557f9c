package cart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/redis/go-redis/v9"
)

// DiskStorage keeps one JSON file per cart under Path. Carts are tiny (at
// most MaxItems entries) so every mutation rewrites the whole file.
type DiskStorage struct {
	Path string
}

func NewDiskStorage(path string) *DiskStorage {
	return &DiskStorage{Path: path}
}

func (s *DiskStorage) readFile(path string, dest any) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()
	return json.NewDecoder(file).Decode(dest)
}

func (s *DiskStorage) writeFile(path string, src any) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	return json.NewEncoder(file).Encode(src)
}

func (s *DiskStorage) cartPath(cartID string) string {
	return filepath.Join(s.Path, cartID+".json")
}

// GetCart returns the stored cart, or an empty one when no file exists yet.
func (s *DiskStorage) GetCart(cartID string) (*Cart, error) {
	var cart Cart
	err := s.readFile(s.cartPath(cartID), &cart)
	if errors.Is(err, os.ErrNotExist) {
		return &Cart{ID: cartID}, nil
	}
	if err != nil {
		return nil, err
	}
	return &cart, nil
}

func (s *DiskStorage) AddItem(cartID string, item Item) (*Cart, error) {
	cart, err := s.GetCart(cartID)
	if err != nil {
		return nil, err
	}
	if _, err := cart.add(item); err != nil {
		return nil, err
	}
	if err := s.saveCart(cart); err != nil {
		return nil, err
	}
	return cart, nil
}

func (s *DiskStorage) RemoveItem(cartID string, itemID string) (*Cart, error) {
	cart, err := s.GetCart(cartID)
	if err != nil {
		return nil, err
	}
	if err := cart.remove(itemID); err != nil {
		return nil, fmt.Errorf("cart %s: %w", cartID, err)
	}
	if err := s.saveCart(cart); err != nil {
		return nil, err
	}
	return cart, nil
}

func (s *DiskStorage) ClearCart(cartID string) error {
	err := os.Remove(s.cartPath(cartID))
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}

func (s *DiskStorage) saveCart(cart *Cart) error {
	if err := os.MkdirAll(s.Path, 0755); err != nil {
		return err
	}
	return s.writeFile(s.cartPath(cart.ID), cart)
}

// RedisStorage keeps carts as JSON values with a sliding expiry, for running
// more than one API instance against shared state.
type RedisStorage struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisStorage(addr, password string, db int, ttl time.Duration) *RedisStorage {
	if ttl <= 0 {
		ttl = 30 * 24 * time.Hour
	}
	return &RedisStorage{
		client: redis.NewClient(&redis.Options{
			Addr:     addr,
			Password: password,
			DB:       db,
		}),
		ttl: ttl,
	}
}

func cartKey(cartID string) string {
	return "cart:" + cartID
}

func (s *RedisStorage) GetCart(cartID string) (*Cart, error) {
	data, err := s.client.Get(context.Background(), cartKey(cartID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return &Cart{ID: cartID}, nil
	}
	if err != nil {
		return nil, err
	}
	var cart Cart
	if err := json.Unmarshal(data, &cart); err != nil {
		return nil, err
	}
	return &cart, nil
}

func (s *RedisStorage) AddItem(cartID string, item Item) (*Cart, error) {
	cart, err := s.GetCart(cartID)
	if err != nil {
		return nil, err
	}
	if _, err := cart.add(item); err != nil {
		return nil, err
	}
	if err := s.saveCart(cart); err != nil {
		return nil, err
	}
	return cart, nil
}

func (s *RedisStorage) RemoveItem(cartID string, itemID string) (*Cart, error) {
	cart, err := s.GetCart(cartID)
	if err != nil {
		return nil, err
	}
	if err := cart.remove(itemID); err != nil {
		return nil, fmt.Errorf("cart %s: %w", cartID, err)
	}
	if err := s.saveCart(cart); err != nil {
		return nil, err
	}
	return cart, nil
}

func (s *RedisStorage) ClearCart(cartID string) error {
	return s.client.Del(context.Background(), cartKey(cartID)).Err()
}

func (s *RedisStorage) saveCart(cart *Cart) error {
	data, err := json.Marshal(cart)
	if err != nil {
		return err
	}
	return s.client.Set(context.Background(), cartKey(cart.ID), data, s.ttl).Err()
}
