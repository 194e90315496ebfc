package entity

// Activity representa una categoría de actividad. Las actividades forman un bosque
// mediante ParentID (nil si es raíz).
type Activity struct {
	ID       int64
	Name     string
	ParentID *int64
}

// IsRoot indica si la actividad no tiene padre.
func (a Activity) IsRoot() bool {
	return a.ParentID == nil
}
