package directory

import (
	"context"
	"time"
)

// HierarchyCache memoriza conjuntos de IDs de actividades ya resueltos.
// Es opcional: el resolvedor funciona igual sin caché.
type HierarchyCache interface {
	// Get devuelve (ids, true, nil) si hay entrada; (nil, false, nil) si no existe.
	Get(ctx context.Context, key string) ([]int64, bool, error)
	Set(ctx context.Context, key string, ids []int64, ttl time.Duration) error
}
