package dto

// Códigos de error devueltos en ErrorResponse.Code.
const (
	CodeNotFound   = "NOT_FOUND"
	CodeValidation = "VALIDATION"
	CodeInvalidID  = "INVALID_ID"
	CodeInternal   = "INTERNAL"
)

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string       `json:"code"`
	Message string       `json:"message"`
	Fields  []FieldError `json:"fields,omitempty"`
}

// FieldError detalle de validación por parámetro.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Envelope respuesta exitosa: {"success": true, "data": ...}.
type Envelope[T any] struct {
	Success bool `json:"success"`
	Data    T    `json:"data"`
}

// OK envuelve data en una respuesta exitosa.
func OK[T any](data T) Envelope[T] {
	return Envelope[T]{Success: true, Data: data}
}
