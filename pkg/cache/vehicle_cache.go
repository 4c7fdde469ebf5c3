package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

const (
	// VehicleCacheTTL is the time-to-live for cached vehicle records.
	VehicleCacheTTL = 24 * time.Hour

	vehicleCacheKeyPrefix = "vehicle"
)

// CachedVehicle is the denormalized read model stored in Redis. It carries
// the fields the list and detail views render most often; the authoritative
// record always lives in the store.
type CachedVehicle struct {
	ID            uuid.UUID  `json:"id"`
	ChassisNumber string     `json:"chassis_number"`
	Manufacturer  string     `json:"manufacturer"`
	Category      string     `json:"category"`
	Year          int        `json:"year"`
	Status        string     `json:"status"`
	Location      string     `json:"location"`
	Price         *float64   `json:"price,omitempty"`
	EntryDate     time.Time  `json:"entry_date"`
	SoldDate      *time.Time `json:"sold_date,omitempty"`
}

// VehicleCache provides read-through caching for vehicle detail lookups.
// Entries are JSON blobs under "vehicle:{id}" with a 24h TTL; every mutation
// and lifecycle transition invalidates the entry. Returns redis.Nil on miss.
type VehicleCache struct {
	client *RedisClient
}

// NewVehicleCache creates a VehicleCache backed by the given RedisClient.
func NewVehicleCache(r *RedisClient) *VehicleCache {
	return &VehicleCache{client: r}
}

// Get retrieves a cached vehicle. Returns redis.Nil when the key does not
// exist or has expired.
func (c *VehicleCache) Get(ctx context.Context, id uuid.UUID) (*CachedVehicle, error) {
	data, err := c.client.Client().Get(ctx, c.key(id)).Bytes()
	if err != nil {
		return nil, err
	}
	var v CachedVehicle
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("cache decode vehicle: %w", err)
	}
	return &v, nil
}

// Set writes a cached vehicle with the standard TTL.
func (c *VehicleCache) Set(ctx context.Context, v *CachedVehicle) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("cache encode vehicle: %w", err)
	}
	if err := c.client.Client().Set(ctx, c.key(v.ID), data, VehicleCacheTTL).Err(); err != nil {
		return fmt.Errorf("cache set: %w", err)
	}
	return nil
}

// Delete invalidates a cached vehicle.
func (c *VehicleCache) Delete(ctx context.Context, id uuid.UUID) error {
	if err := c.client.Client().Del(ctx, c.key(id)).Err(); err != nil {
		return fmt.Errorf("cache delete: %w", err)
	}
	return nil
}

func (c *VehicleCache) key(id uuid.UUID) string {
	return fmt.Sprintf("%s:%s", vehicleCacheKeyPrefix, id)
}
