package parser

import (
	"context"
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/Marketplace-api/internal/domain"
	"github.com/jhoicas/Marketplace-api/internal/domain/catalog"
)

type xlsxParser struct{}

// NewXLSXParser crea un parser que lee sólo la primera hoja del libro.
func NewXLSXParser() Parser {
	return &xlsxParser{}
}

func (p *xlsxParser) Parse(ctx context.Context, r io.Reader) ([]catalog.Record, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: xlsx: %v", domain.ErrParse, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("%w: xlsx sin hojas", domain.ErrParse)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("%w: xlsx: %v", domain.ErrParse, err)
	}
	return toRecords(rows), nil
}
