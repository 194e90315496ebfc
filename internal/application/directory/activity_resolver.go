package directory

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"github.com/jhoicas/directorio-api/internal/domain/repository"
)

// MaxActivityDepth niveles de la jerarquía que se consideran al filtrar organizaciones
// por una actividad ancestro: la propia actividad, sus hijos y sus nietos.
const MaxActivityDepth = 3

// ActivityResolver calcula el conjunto de actividades descendientes de una raíz.
type ActivityResolver struct {
	repo     repository.ActivityRepository
	cache    HierarchyCache
	cacheTTL time.Duration
	log      zerolog.Logger
}

// ResolverOption configura el resolvedor.
type ResolverOption func(*ActivityResolver)

// WithHierarchyCache activa el caché de conjuntos resueltos por nombre.
func WithHierarchyCache(c HierarchyCache, ttl time.Duration) ResolverOption {
	return func(r *ActivityResolver) {
		r.cache = c
		r.cacheTTL = ttl
	}
}

// WithResolverLogger define el logger del resolvedor (por defecto, Nop).
func WithResolverLogger(l zerolog.Logger) ResolverOption {
	return func(r *ActivityResolver) { r.log = l }
}

// NewActivityResolver construye el resolvedor sobre el puerto de actividades.
func NewActivityResolver(repo repository.ActivityRepository, opts ...ResolverOption) *ActivityResolver {
	r := &ActivityResolver{repo: repo, log: zerolog.Nop()}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// ResolveByName toma la primera actividad (menor ID) cuyo nombre contiene name y
// devuelve su ID más los de sus descendientes hasta maxDepth niveles (maxDepth <= 0 = sin límite).
// Sin coincidencias devuelve un conjunto vacío, no un error.
func (r *ActivityResolver) ResolveByName(ctx context.Context, name string, maxDepth int) ([]int64, error) {
	key := cacheKey(name, maxDepth)
	if ids, ok := r.fromCache(ctx, key); ok {
		return ids, nil
	}

	root, err := r.repo.FindFirstByName(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("resolver actividad %q: %w", name, err)
	}
	if root == nil {
		r.log.Debug().Str("activity", name).Msg("actividad no encontrada")
		return []int64{}, nil
	}

	ids, err := r.descendants(ctx, root.ID, maxDepth)
	if err != nil {
		return nil, err
	}
	r.toCache(ctx, key, ids)
	return ids, nil
}

// ResolveByID igual que ResolveByName partiendo de un ID concreto.
func (r *ActivityResolver) ResolveByID(ctx context.Context, id int64, maxDepth int) ([]int64, error) {
	root, err := r.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("resolver actividad %d: %w", id, err)
	}
	if root == nil {
		return []int64{}, nil
	}
	return r.descendants(ctx, root.ID, maxDepth)
}

// descendants recorre la jerarquía por niveles (una consulta por nivel).
// visited evita duplicados y ciclos aunque los datos estén corruptos.
func (r *ActivityResolver) descendants(ctx context.Context, rootID int64, maxDepth int) ([]int64, error) {
	visited := map[int64]struct{}{rootID: {}}
	frontier := []int64{rootID}

	for level := 1; len(frontier) > 0 && (maxDepth <= 0 || level < maxDepth); level++ {
		children, err := r.repo.ListChildren(ctx, frontier)
		if err != nil {
			return nil, fmt.Errorf("listar hijos de actividades %v: %w", frontier, err)
		}
		next := make([]int64, 0, len(children))
		for _, c := range children {
			if _, seen := visited[c.ID]; seen {
				continue
			}
			visited[c.ID] = struct{}{}
			next = append(next, c.ID)
		}
		frontier = next
	}

	ids := make([]int64, 0, len(visited))
	for id := range visited {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids, nil
}

func (r *ActivityResolver) fromCache(ctx context.Context, key string) ([]int64, bool) {
	if r.cache == nil {
		return nil, false
	}
	ids, ok, err := r.cache.Get(ctx, key)
	if err != nil {
		r.log.Warn().Err(err).Str("key", key).Msg("caché de jerarquía no disponible")
		return nil, false
	}
	return ids, ok
}

func (r *ActivityResolver) toCache(ctx context.Context, key string, ids []int64) {
	if r.cache == nil {
		return
	}
	if err := r.cache.Set(ctx, key, ids, r.cacheTTL); err != nil {
		r.log.Warn().Err(err).Str("key", key).Msg("no se pudo guardar en caché de jerarquía")
	}
}

func cacheKey(name string, maxDepth int) string {
	return strconv.Itoa(maxDepth) + ":" + name
}
