package entity

// Organization representa una organización del directorio.
// Building, PhoneNumbers y Activities se cargan junto con la organización (relaciones).
type Organization struct {
	ID         int64
	Name       string
	BuildingID int64

	Building     *Building
	PhoneNumbers []PhoneNumber
	Activities   []Activity
}

// PhoneNumber teléfono de una organización; no tiene ciclo de vida propio.
type PhoneNumber struct {
	ID             int64
	OrganizationID int64
	Number         string
}
