// Package memory implementa los puertos de lectura del directorio sobre datos en memoria.
// Se usa en pruebas y con STORE_DRIVER=memory cargando un snapshot JSON.
package memory

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/jhoicas/directorio-api/internal/domain/entity"
	"github.com/jhoicas/directorio-api/internal/domain/repository"
)

var (
	_ repository.BuildingRepository     = (*BuildingRepo)(nil)
	_ repository.ActivityRepository     = (*ActivityRepo)(nil)
	_ repository.OrganizationRepository = (*OrganizationRepo)(nil)
)

// Link vínculo organización–actividad (tabla activity_organization).
type Link struct {
	OrganizationID int64 `json:"organization_id"`
	ActivityID     int64 `json:"activity_id"`
}

// BuildingRecord fila de buildings.
type BuildingRecord struct {
	ID        int64   `json:"id"`
	Address   string  `json:"address"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// ActivityRecord fila de activities.
type ActivityRecord struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	ParentID *int64 `json:"parent_id"`
}

// OrganizationRecord fila de organizations.
type OrganizationRecord struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	BuildingID int64  `json:"building_id"`
}

// PhoneNumberRecord fila de phone_numbers.
type PhoneNumberRecord struct {
	ID             int64  `json:"id"`
	OrganizationID int64  `json:"organization_id"`
	Number         string `json:"number"`
}

// Snapshot contenido completo del almacén.
type Snapshot struct {
	Buildings     []BuildingRecord     `json:"buildings"`
	Activities    []ActivityRecord     `json:"activities"`
	Organizations []OrganizationRecord `json:"organizations"`
	PhoneNumbers  []PhoneNumberRecord  `json:"phone_numbers"`
	Links         []Link               `json:"activity_organization"`
}

// Store datos indexados por ID. Tras construirse solo se lee, por lo que admite
// lecturas concurrentes sin bloqueo.
type Store struct {
	buildings  map[int64]entity.Building
	activities map[int64]entity.Activity
	orgs       map[int64]entity.Organization
	phones     map[int64][]entity.PhoneNumber
	orgActs    map[int64]map[int64]struct{} // org -> set de actividades
}

// NewStore indexa el snapshot. Los vínculos duplicados se ignoran (par único).
func NewStore(s Snapshot) (*Store, error) {
	st := &Store{
		buildings:  make(map[int64]entity.Building, len(s.Buildings)),
		activities: make(map[int64]entity.Activity, len(s.Activities)),
		orgs:       make(map[int64]entity.Organization, len(s.Organizations)),
		phones:     make(map[int64][]entity.PhoneNumber),
		orgActs:    make(map[int64]map[int64]struct{}),
	}
	for _, b := range s.Buildings {
		st.buildings[b.ID] = entity.Building{ID: b.ID, Address: b.Address, Latitude: b.Latitude, Longitude: b.Longitude}
	}
	for _, a := range s.Activities {
		st.activities[a.ID] = entity.Activity{ID: a.ID, Name: a.Name, ParentID: a.ParentID}
	}
	for _, o := range s.Organizations {
		if _, ok := st.buildings[o.BuildingID]; !ok {
			return nil, fmt.Errorf("organización %d: edificio %d inexistente", o.ID, o.BuildingID)
		}
		st.orgs[o.ID] = entity.Organization{ID: o.ID, Name: o.Name, BuildingID: o.BuildingID}
	}
	for _, p := range s.PhoneNumbers {
		if _, ok := st.orgs[p.OrganizationID]; !ok {
			return nil, fmt.Errorf("teléfono %d: organización %d inexistente", p.ID, p.OrganizationID)
		}
		st.phones[p.OrganizationID] = append(st.phones[p.OrganizationID],
			entity.PhoneNumber{ID: p.ID, OrganizationID: p.OrganizationID, Number: p.Number})
	}
	for _, l := range s.Links {
		if _, ok := st.orgs[l.OrganizationID]; !ok {
			return nil, fmt.Errorf("vínculo: organización %d inexistente", l.OrganizationID)
		}
		if _, ok := st.activities[l.ActivityID]; !ok {
			return nil, fmt.Errorf("vínculo: actividad %d inexistente", l.ActivityID)
		}
		if st.orgActs[l.OrganizationID] == nil {
			st.orgActs[l.OrganizationID] = make(map[int64]struct{})
		}
		st.orgActs[l.OrganizationID][l.ActivityID] = struct{}{}
	}
	for id := range st.phones {
		ps := st.phones[id]
		sort.Slice(ps, func(i, j int) bool { return ps[i].ID < ps[j].ID })
	}
	return st, nil
}

// LoadFile lee un snapshot JSON desde disco.
func LoadFile(path string) (*Store, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("leer snapshot: %w", err)
	}
	var s Snapshot
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil, fmt.Errorf("decodificar snapshot: %w", err)
	}
	return NewStore(s)
}

// Buildings adaptador BuildingRepository.
func (s *Store) Buildings() *BuildingRepo { return &BuildingRepo{s: s} }

// Activities adaptador ActivityRepository.
func (s *Store) Activities() *ActivityRepo { return &ActivityRepo{s: s} }

// Organizations adaptador OrganizationRepository.
func (s *Store) Organizations() *OrganizationRepo { return &OrganizationRepo{s: s} }

// BuildingRepo implementación en memoria de BuildingRepository.
type BuildingRepo struct{ s *Store }

// GetByID obtiene un edificio por ID.
func (r *BuildingRepo) GetByID(_ context.Context, id int64) (*entity.Building, error) {
	b, ok := r.s.buildings[id]
	if !ok {
		return nil, nil
	}
	return &b, nil
}

// List todos los edificios ordenados por ID.
func (r *BuildingRepo) List(_ context.Context) ([]*entity.Building, error) {
	list := make([]*entity.Building, 0, len(r.s.buildings))
	for _, id := range sortedKeys(r.s.buildings) {
		b := r.s.buildings[id]
		list = append(list, &b)
	}
	return list, nil
}

// ActivityRepo implementación en memoria de ActivityRepository.
type ActivityRepo struct{ s *Store }

// GetByID obtiene una actividad por ID.
func (r *ActivityRepo) GetByID(_ context.Context, id int64) (*entity.Activity, error) {
	a, ok := r.s.activities[id]
	if !ok {
		return nil, nil
	}
	return &a, nil
}

// FindFirstByName actividad de menor ID cuyo nombre contiene name.
func (r *ActivityRepo) FindFirstByName(_ context.Context, name string) (*entity.Activity, error) {
	for _, id := range sortedKeys(r.s.activities) {
		a := r.s.activities[id]
		if strings.Contains(a.Name, name) {
			return &a, nil
		}
	}
	return nil, nil
}

// ListChildren hijos directos de los padres indicados, ordenados por ID.
func (r *ActivityRepo) ListChildren(_ context.Context, parentIDs []int64) ([]*entity.Activity, error) {
	parents := make(map[int64]struct{}, len(parentIDs))
	for _, id := range parentIDs {
		parents[id] = struct{}{}
	}
	var list []*entity.Activity
	for _, id := range sortedKeys(r.s.activities) {
		a := r.s.activities[id]
		if a.ParentID == nil {
			continue
		}
		if _, ok := parents[*a.ParentID]; ok {
			list = append(list, &a)
		}
	}
	return list, nil
}

// OrganizationRepo implementación en memoria de OrganizationRepository.
type OrganizationRepo struct{ s *Store }

// GetByID obtiene una organización con sus relaciones.
func (r *OrganizationRepo) GetByID(_ context.Context, id int64) (*entity.Organization, error) {
	if _, ok := r.s.orgs[id]; !ok {
		return nil, nil
	}
	return r.s.hydrate(id), nil
}

// List organizaciones que cumplen todos los predicados del filtro, ordenadas por ID.
func (r *OrganizationRepo) List(_ context.Context, f repository.OrganizationFilter) ([]*entity.Organization, error) {
	list := make([]*entity.Organization, 0)
	for _, id := range sortedKeys(r.s.orgs) {
		if r.s.matches(id, f) {
			list = append(list, r.s.hydrate(id))
		}
	}
	return list, nil
}

func (s *Store) matches(id int64, f repository.OrganizationFilter) bool {
	o := s.orgs[id]
	if f.BuildingID != nil && o.BuildingID != *f.BuildingID {
		return false
	}
	if f.NameContains != "" && !strings.Contains(o.Name, f.NameContains) {
		return false
	}
	if f.Box != nil {
		b := s.buildings[o.BuildingID]
		if !f.Box.Contains(b.Latitude, b.Longitude) {
			return false
		}
	}
	if f.ActivityIDs != nil {
		linked := false
		for _, aid := range f.ActivityIDs {
			if _, ok := s.orgActs[id][aid]; ok {
				linked = true
				break
			}
		}
		if !linked {
			return false
		}
	}
	return true
}

// hydrate copia la organización con Building, PhoneNumbers y Activities.
func (s *Store) hydrate(id int64) *entity.Organization {
	o := s.orgs[id]
	b := s.buildings[o.BuildingID]
	o.Building = &b
	o.PhoneNumbers = append([]entity.PhoneNumber{}, s.phones[id]...)
	o.Activities = []entity.Activity{}
	for _, aid := range sortedKeys(s.orgActs[id]) {
		o.Activities = append(o.Activities, s.activities[aid])
	}
	return &o
}

func sortedKeys[V any](m map[int64]V) []int64 {
	keys := make([]int64, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}
