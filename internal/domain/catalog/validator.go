// Package catalog contiene las reglas puras de la carga masiva de inventario:
// qué columnas son obligatorias y cómo una fila se proyecta a un Product.
package catalog

import "strings"

// Nombres de columna del archivo de inventario.
const (
	ColStockID    = "Stock ID"
	ColModelNo    = "Model No"
	ColBrand      = "Brand"
	ColGender     = "Gender"
	ColMetalType  = "Metal Type"
	ColCaseSize   = "Case Size (MM)"
	ColCondition  = "Condition"
	ColBox        = "Box"
	ColPaper      = "Paper"
	ColTotalPrice = "Total Price ($US)"
	ColLaunchYear = "Launch Year"
	ColImageLink  = "Image Link"
	ColVideoLink  = "Video Link"
	ColLocation   = "Location"
)

// Record una fila del archivo: nombre de columna → valor de celda.
type Record map[string]string

// RequiredFields lista ordenada de columnas obligatorias.
var RequiredFields = []string{
	ColStockID, ColModelNo, ColBrand, ColGender, ColMetalType, ColCaseSize,
	ColCondition, ColBox, ColPaper, ColTotalPrice, ColLaunchYear,
	ColImageLink, ColVideoLink, ColLocation,
}

// ValidationResult resultado de validar una fila.
// MissingFields conserva el orden de RequiredFields.
type ValidationResult struct {
	Valid         bool
	MissingFields []string
}

// Validate revisa que todas las columnas obligatorias estén presentes y no vacías.
// Devuelve todas las faltantes, no solo la primera.
func Validate(r Record) ValidationResult {
	var missing []string
	for _, f := range RequiredFields {
		if strings.TrimSpace(r[f]) == "" {
			missing = append(missing, f)
		}
	}
	if len(missing) > 0 {
		return ValidationResult{Valid: false, MissingFields: missing}
	}
	return ValidationResult{Valid: true}
}
