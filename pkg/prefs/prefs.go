// Package prefs stores per-user UI preferences as small keyed JSON blobs in
// redis: which fields the inventory cards show and the order of the filter
// sidebar sections. Reads fall back to defaults when nothing is stored.
package prefs

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/redis/go-redis/v9"
)

// DefaultFilterOrder is the sidebar section order shipped to new users.
var DefaultFilterOrder = []string{
	"supplier",
	"polymer",
	"form",
	"date",
	"mi",
	"folder",
	"lot",
	"grade",
	"warehouse",
	"density",
	"izod",
	"quantity",
	"qualityControl",
}

// DefaultCardFields are the record fields visible on a card by default.
var DefaultCardFields = []string{
	"panDate",
	"lotName",
	"availableQty",
	"warehouseName",
	"meltIndex",
	"density",
}

type Preferences struct {
	FilterOrder []string `json:"filterOrder"`
	CardFields  []string `json:"cardFields"`
}

// Defaults returns a fresh preference set; callers may mutate the result.
func Defaults() *Preferences {
	return &Preferences{
		FilterOrder: append([]string(nil), DefaultFilterOrder...),
		CardFields:  append([]string(nil), DefaultCardFields...),
	}
}

type Store struct {
	client *redis.Client
}

func NewStore(addr, password string, db int) *Store {
	return &Store{client: redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})}
}

func prefKey(userID string) string {
	return "prefs:" + userID
}

// Get returns the stored preferences for userID, or defaults when unset.
func (s *Store) Get(ctx context.Context, userID string) (*Preferences, error) {
	data, err := s.client.Get(ctx, prefKey(userID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return Defaults(), nil
	}
	if err != nil {
		return nil, err
	}
	var p Preferences
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, err
	}
	if len(p.FilterOrder) == 0 {
		p.FilterOrder = append([]string(nil), DefaultFilterOrder...)
	}
	if len(p.CardFields) == 0 {
		p.CardFields = append([]string(nil), DefaultCardFields...)
	}
	return &p, nil
}

func (s *Store) Set(ctx context.Context, userID string, p *Preferences) error {
	data, err := json.Marshal(p)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, prefKey(userID), data, 0).Err()
}

func (s *Store) Reset(ctx context.Context, userID string) error {
	return s.client.Del(ctx, prefKey(userID)).Err()
}

func (s *Store) Close() error {
	return s.client.Close()
}
