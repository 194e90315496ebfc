package dto

import "github.com/jhoicas/directorio-api/internal/domain/entity"

// NearbyRequest parámetros de GET /api/organizations/nearby.
type NearbyRequest struct {
	Lat    *float64 `query:"lat" validate:"required,gte=-90,lte=90"`
	Lng    *float64 `query:"lng" validate:"required,gte=-180,lte=180"`
	Radius *float64 `query:"radius" validate:"omitempty,gte=0.1,lte=1000"`
}

// AreaRequest parámetros de GET /api/organizations/area.
type AreaRequest struct {
	Lat1 *float64 `query:"lat1" validate:"required,gte=-90,lte=90"`
	Lng1 *float64 `query:"lng1" validate:"required,gte=-180,lte=180"`
	Lat2 *float64 `query:"lat2" validate:"required,gte=-90,lte=90"`
	Lng2 *float64 `query:"lng2" validate:"required,gte=-180,lte=180"`
}

// SearchRequest parámetros de GET /api/organizations/search. Al menos uno es obligatorio.
type SearchRequest struct {
	Activity string `query:"activity" validate:"required_without=Name,max=255"`
	Name     string `query:"name" validate:"required_without=Activity,max=255"`
}

// Normalize aplica fn a los textos de búsqueda.
func (r *SearchRequest) Normalize(fn func(string) string) {
	r.Activity = fn(r.Activity)
	r.Name = fn(r.Name)
}

// BuildingResponse edificio en respuestas.
type BuildingResponse struct {
	ID        int64   `json:"id"`
	Address   string  `json:"address"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// PhoneNumberResponse teléfono de una organización.
type PhoneNumberResponse struct {
	ID     int64  `json:"id"`
	Number string `json:"number"`
}

// ActivityResponse actividad vinculada.
type ActivityResponse struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	ParentID *int64 `json:"parent_id"`
}

// OrganizationResponse organización con sus relaciones.
type OrganizationResponse struct {
	ID           int64                 `json:"id"`
	Name         string                `json:"name"`
	BuildingID   int64                 `json:"building_id"`
	Building     *BuildingResponse     `json:"building,omitempty"`
	PhoneNumbers []PhoneNumberResponse `json:"phone_numbers"`
	Activities   []ActivityResponse    `json:"activities"`
}

// OrganizationSummary organización sin relaciones, usada dentro de BuildingWithOrganizations.
type OrganizationSummary struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// BuildingWithOrganizations edificio con las organizaciones que aloja.
type BuildingWithOrganizations struct {
	BuildingResponse
	Organizations []OrganizationSummary `json:"organizations"`
}

// OrganizationEnvelope respuesta de una organización (documentación Swagger).
type OrganizationEnvelope = Envelope[OrganizationResponse]

// OrganizationListEnvelope respuesta de lista de organizaciones (documentación Swagger).
type OrganizationListEnvelope = Envelope[[]OrganizationResponse]

// BuildingListEnvelope respuesta de GET /api/buildings (documentación Swagger).
type BuildingListEnvelope = Envelope[[]BuildingWithOrganizations]

// ToBuildingResponse mapea la entidad.
func ToBuildingResponse(b *entity.Building) BuildingResponse {
	return BuildingResponse{ID: b.ID, Address: b.Address, Latitude: b.Latitude, Longitude: b.Longitude}
}

// ToOrganizationResponse mapea la entidad con sus relaciones.
func ToOrganizationResponse(o *entity.Organization) OrganizationResponse {
	out := OrganizationResponse{
		ID:           o.ID,
		Name:         o.Name,
		BuildingID:   o.BuildingID,
		PhoneNumbers: make([]PhoneNumberResponse, 0, len(o.PhoneNumbers)),
		Activities:   make([]ActivityResponse, 0, len(o.Activities)),
	}
	if o.Building != nil {
		b := ToBuildingResponse(o.Building)
		out.Building = &b
	}
	for _, p := range o.PhoneNumbers {
		out.PhoneNumbers = append(out.PhoneNumbers, PhoneNumberResponse{ID: p.ID, Number: p.Number})
	}
	for _, a := range o.Activities {
		out.Activities = append(out.Activities, ActivityResponse{ID: a.ID, Name: a.Name, ParentID: a.ParentID})
	}
	return out
}

// ToOrganizationList mapea una lista; nunca devuelve nil.
func ToOrganizationList(orgs []*entity.Organization) []OrganizationResponse {
	out := make([]OrganizationResponse, 0, len(orgs))
	for _, o := range orgs {
		out = append(out, ToOrganizationResponse(o))
	}
	return out
}
