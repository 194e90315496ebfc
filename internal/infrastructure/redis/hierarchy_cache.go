// Package redis implementa el caché de jerarquías de actividades sobre Redis.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/jhoicas/directorio-api/internal/application/directory"
	"github.com/jhoicas/directorio-api/internal/infrastructure/metrics"
)

var _ directory.HierarchyCache = (*HierarchyCache)(nil)

const keyPrefix = "directorio:activity-tree:"

// HierarchyCache guarda conjuntos de IDs de actividades como JSON bajo una clave con prefijo.
type HierarchyCache struct {
	client  *goredis.Client
	metrics *metrics.Metrics
}

// NewHierarchyCache construye el caché. m puede ser nil.
func NewHierarchyCache(client *goredis.Client, m *metrics.Metrics) *HierarchyCache {
	return &HierarchyCache{client: client, metrics: m}
}

// Get devuelve (ids, true, nil) si la clave existe.
func (c *HierarchyCache) Get(ctx context.Context, key string) ([]int64, bool, error) {
	raw, err := c.client.Get(ctx, keyPrefix+key).Bytes()
	if errors.Is(err, goredis.Nil) {
		c.metrics.CacheMiss()
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis get: %w", err)
	}
	var ids []int64
	if err := json.Unmarshal(raw, &ids); err != nil {
		return nil, false, fmt.Errorf("decodificar jerarquía en caché: %w", err)
	}
	c.metrics.CacheHit()
	return ids, true, nil
}

// Set guarda ids con expiración ttl (0 = sin expiración).
func (c *HierarchyCache) Set(ctx context.Context, key string, ids []int64, ttl time.Duration) error {
	raw, err := json.Marshal(ids)
	if err != nil {
		return fmt.Errorf("codificar jerarquía: %w", err)
	}
	if err := c.client.Set(ctx, keyPrefix+key, raw, ttl).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}

// Open crea el cliente y verifica la conexión con PING.
func Open(ctx context.Context, addr, password string, db int) (*goredis.Client, error) {
	client := goredis.NewClient(&goredis.Options{Addr: addr, Password: password, DB: db})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis %s: %w", addr, err)
	}
	return client, nil
}
