package http

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"golang.org/x/text/unicode/norm"

	"github.com/jhoicas/directorio-api/internal/application/dto"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Los errores se reportan con el nombre del parámetro de query, no del campo Go.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("query"), ",", 2)[0]
		if name == "" || name == "-" {
			return f.Name
		}
		return name
	})
	return v
}

// normalizer lo implementan los DTOs cuyos textos se normalizan antes de validar.
type normalizer interface {
	Normalize(func(string) string)
}

// bindQuery parsea, normaliza y valida los parámetros de query en out. Devuelve
// una respuesta 422 ya escrita (y handled=true) si algo falla.
func bindQuery(c *fiber.Ctx, out any) (handled bool, err error) {
	if err := c.QueryParser(out); err != nil {
		return true, c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{
			Code:    dto.CodeValidation,
			Message: "parámetros de consulta inválidos",
		})
	}
	if n, ok := out.(normalizer); ok {
		n.Normalize(normalizeText)
	}
	if err := validate.Struct(out); err != nil {
		verrs, ok := err.(validator.ValidationErrors)
		if !ok {
			return true, err
		}
		fields := make([]dto.FieldError, 0, len(verrs))
		for _, fe := range verrs {
			fields = append(fields, dto.FieldError{Field: fe.Field(), Message: fieldMessage(fe)})
		}
		return true, c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{
			Code:    dto.CodeValidation,
			Message: "error de validación",
			Fields:  fields,
		})
	}
	return false, nil
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s es obligatorio", fe.Field())
	case "required_without":
		return "se requiere al menos un criterio de búsqueda (activity o name)"
	case "gte":
		return fmt.Sprintf("%s debe ser mayor o igual a %s", fe.Field(), fe.Param())
	case "lte":
		return fmt.Sprintf("%s debe ser menor o igual a %s", fe.Field(), fe.Param())
	case "max":
		return fmt.Sprintf("%s no puede superar %s caracteres", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s no es válido", fe.Field())
	}
}

// normalizeText recorta espacios y normaliza a NFC para que la búsqueda por
// subcadena compare la misma secuencia de bytes que guarda el almacén.
func normalizeText(s string) string {
	return norm.NFC.String(strings.TrimSpace(s))
}

// pathID lee un ID entero positivo de la ruta.
func pathID(c *fiber.Ctx, name string) (int64, bool) {
	id, err := c.ParamsInt(name)
	if err != nil || id <= 0 {
		return 0, false
	}
	return int64(id), true
}

func invalidID(c *fiber.Ctx, name string) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
		Code:    dto.CodeInvalidID,
		Message: name + " debe ser un entero positivo",
	})
}
