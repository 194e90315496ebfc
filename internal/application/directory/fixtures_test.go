package directory_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jhoicas/directorio-api/internal/application/directory"
	"github.com/jhoicas/directorio-api/internal/domain/entity"
	"github.com/jhoicas/directorio-api/internal/infrastructure/memory"
)

// ──────────────────────────────────────────────────────────────────────────────
// Datos de prueba
//
//	Technology (1)
//	└── Software (2)
//	    └── Web Development (3)
//	        └── Frontend Frameworks (4)   ← bisnieto: fuera del límite de 3 niveles
//	Food (5)
//	└── Meat (6)
//
// Edificios: 1 y 2 en Nueva York (~5 km), 3 en Londres, 4 sin organizaciones.
// ──────────────────────────────────────────────────────────────────────────────

const (
	actTechnology int64 = 1
	actSoftware   int64 = 2
	actWeb        int64 = 3
	actFrontend   int64 = 4
	actFood       int64 = 5
	actMeat       int64 = 6

	bldNYDowntown int64 = 1
	bldNYMidtown  int64 = 2
	bldLondon     int64 = 3
	bldEmpty      int64 = 4

	orgTechCorp      int64 = 1
	orgSoftwareHouse int64 = 2
	orgTechWeb       int64 = 3
	orgDeepFrontend  int64 = 4
	orgTechFoods     int64 = 5
	orgButcher       int64 = 6
)

func ptr(v int64) *int64 { return &v }

func testSnapshot() memory.Snapshot {
	return memory.Snapshot{
		Buildings: []memory.BuildingRecord{
			{ID: bldNYDowntown, Address: "Broadway 1, New York", Latitude: 40.7128, Longitude: -74.0060},
			{ID: bldNYMidtown, Address: "5th Ave 700, New York", Latitude: 40.7589, Longitude: -73.9851},
			{ID: bldLondon, Address: "Strand 10, London", Latitude: 51.5074, Longitude: -0.1278},
			{ID: bldEmpty, Address: "Null Island", Latitude: 0, Longitude: 0},
		},
		Activities: []memory.ActivityRecord{
			{ID: actTechnology, Name: "Technology"},
			{ID: actSoftware, Name: "Software", ParentID: ptr(actTechnology)},
			{ID: actWeb, Name: "Web Development", ParentID: ptr(actSoftware)},
			{ID: actFrontend, Name: "Frontend Frameworks", ParentID: ptr(actWeb)},
			{ID: actFood, Name: "Food"},
			{ID: actMeat, Name: "Meat", ParentID: ptr(actFood)},
		},
		Organizations: []memory.OrganizationRecord{
			{ID: orgTechCorp, Name: "Tech Corp", BuildingID: bldNYDowntown},
			{ID: orgSoftwareHouse, Name: "Software House", BuildingID: bldNYMidtown},
			{ID: orgTechWeb, Name: "Tech Web Studio", BuildingID: bldLondon},
			{ID: orgDeepFrontend, Name: "Deep Frontend Tech", BuildingID: bldNYDowntown},
			{ID: orgTechFoods, Name: "Tech Foods", BuildingID: bldNYMidtown},
			{ID: orgButcher, Name: "Butcher", BuildingID: bldLondon},
		},
		PhoneNumbers: []memory.PhoneNumberRecord{
			{ID: 1, OrganizationID: orgTechCorp, Number: "2-222-222"},
			{ID: 2, OrganizationID: orgTechCorp, Number: "3-333-333"},
			{ID: 3, OrganizationID: orgButcher, Number: "8-923-666-13-13"},
		},
		Links: []memory.Link{
			{OrganizationID: orgTechCorp, ActivityID: actTechnology},
			{OrganizationID: orgSoftwareHouse, ActivityID: actSoftware},
			{OrganizationID: orgTechWeb, ActivityID: actWeb},
			{OrganizationID: orgDeepFrontend, ActivityID: actFrontend},
			{OrganizationID: orgTechFoods, ActivityID: actMeat},
			{OrganizationID: orgButcher, ActivityID: actFood},
			{OrganizationID: orgButcher, ActivityID: actMeat},
		},
	}
}

func newTestStore(t *testing.T) *memory.Store {
	t.Helper()
	store, err := memory.NewStore(testSnapshot())
	require.NoError(t, err)
	return store
}

func newTestEngine(t *testing.T, cfg directory.EngineConfig) *directory.QueryEngine {
	t.Helper()
	store := newTestStore(t)
	resolver := directory.NewActivityResolver(store.Activities())
	return directory.NewQueryEngine(store.Organizations(), resolver, cfg)
}

func orgIDs(orgs []*entity.Organization) []int64 {
	ids := make([]int64, 0, len(orgs))
	for _, o := range orgs {
		ids = append(ids, o.ID)
	}
	return ids
}
