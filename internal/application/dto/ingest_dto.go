package dto

// RowError fila rechazada por la validación, con sus columnas faltantes.
type RowError struct {
	Record        map[string]string `json:"record"`
	MissingFields []string          `json:"missingFields"`
}

// IngestResult resumen de una carga de inventario.
type IngestResult struct {
	TotalEntries      int        `json:"totalEntries"`
	SuccessfulEntries int        `json:"successfulEntries"`
	FailedEntries     int        `json:"failedEntries"`
	Errors            []RowError `json:"errors"`
}
