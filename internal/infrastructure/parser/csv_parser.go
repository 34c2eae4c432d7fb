package parser

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/jhoicas/Marketplace-api/internal/domain"
	"github.com/jhoicas/Marketplace-api/internal/domain/catalog"
)

type csvParser struct{}

// NewCSVParser crea un parser de CSV. Acepta UTF-8 con o sin BOM y UTF-16 con BOM.
func NewCSVParser() Parser {
	return &csvParser{}
}

func (p *csvParser) Parse(ctx context.Context, r io.Reader) ([]catalog.Record, error) {
	decoded := transform.NewReader(r, unicode.BOMOverride(unicode.UTF8.NewDecoder()))
	cr := csv.NewReader(decoded)
	cr.FieldsPerRecord = -1

	var rows [][]string
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: csv: %v", domain.ErrParse, err)
		}
		rows = append(rows, row)
	}
	return toRecords(rows), nil
}
