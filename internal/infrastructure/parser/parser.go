// Package parser lee archivos de inventario (CSV y XLSX) y los entrega como
// filas indexadas por el nombre de columna de la primera fila.
package parser

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/jhoicas/Marketplace-api/internal/domain"
	"github.com/jhoicas/Marketplace-api/internal/domain/catalog"
)

// Parser convierte el contenido de un archivo en filas.
type Parser interface {
	Parse(ctx context.Context, r io.Reader) ([]catalog.Record, error)
}

// ForFilename elige el parser por la extensión del nombre original (sin distinguir mayúsculas).
func ForFilename(name string) (Parser, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".csv":
		return NewCSVParser(), nil
	case ".xlsx":
		return NewXLSXParser(), nil
	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrUnsupportedFile, filepath.Ext(name))
	}
}

// toRecords arma los Record a partir de una matriz cuya primera fila es el encabezado.
// Las filas totalmente vacías se descartan; las celdas que faltan al final de una
// fila corta no aparecen en el Record.
func toRecords(rows [][]string) []catalog.Record {
	if len(rows) == 0 {
		return nil
	}
	header := make([]string, len(rows[0]))
	for i, h := range rows[0] {
		header[i] = strings.TrimSpace(h)
	}
	out := make([]catalog.Record, 0, len(rows)-1)
	for _, row := range rows[1:] {
		if isBlank(row) {
			continue
		}
		rec := make(catalog.Record, len(header))
		for i, h := range header {
			if h == "" {
				continue
			}
			if i >= len(row) {
				break
			}
			rec[h] = row[i]
		}
		out = append(out, rec)
	}
	return out
}

func isBlank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
