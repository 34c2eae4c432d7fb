package parser_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/Marketplace-api/internal/domain"
	"github.com/jhoicas/Marketplace-api/internal/domain/catalog"
	"github.com/jhoicas/Marketplace-api/internal/infrastructure/parser"
)

func TestForFilename(t *testing.T) {
	for _, name := range []string{"stock.csv", "STOCK.CSV", "inv.xlsx", "Inv.XLSX"} {
		p, err := parser.ForFilename(name)
		require.NoError(t, err, name)
		assert.NotNil(t, p, name)
	}
	for _, name := range []string{"stock.txt", "stock.xls", "stock"} {
		_, err := parser.ForFilename(name)
		assert.ErrorIs(t, err, domain.ErrUnsupportedFile, name)
	}
}

func TestCSVParser_ConBOMYFilasVacias(t *testing.T) {
	data := "\ufeffStock ID, Brand ,Location\nA1,Rolex,Geneva\n\n,,\nA2,Omega\n"
	recs, err := parser.NewCSVParser().Parse(context.Background(), strings.NewReader(data))
	require.NoError(t, err)
	require.Len(t, recs, 2)

	assert.Equal(t, "A1", recs[0][catalog.ColStockID])
	assert.Equal(t, "Rolex", recs[0][catalog.ColBrand])
	assert.Equal(t, "Geneva", recs[0][catalog.ColLocation])
	// fila corta: la celda faltante no aparece
	_, ok := recs[1][catalog.ColLocation]
	assert.False(t, ok)
	assert.Len(t, recs[1], 2)

	res := catalog.Validate(catalog.Record{catalog.ColStockID: "A2"})
	assert.Contains(t, res.MissingFields, catalog.ColLocation)
}

func TestCSVParser_SoloEncabezado(t *testing.T) {
	recs, err := parser.NewCSVParser().Parse(context.Background(), strings.NewReader("Stock ID,Brand\n"))
	require.NoError(t, err)
	assert.Empty(t, recs)
}

func TestCSVParser_Malformado(t *testing.T) {
	_, err := parser.NewCSVParser().Parse(context.Background(), strings.NewReader("a,b\n\"x\"y,z\n"))
	assert.ErrorIs(t, err, domain.ErrParse)
}

func TestXLSXParser_PrimeraHoja(t *testing.T) {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	require.NoError(t, f.SetSheetRow(sheet, "A1", &[]string{"Stock ID", "Brand", "Launch Year"}))
	require.NoError(t, f.SetSheetRow(sheet, "A2", &[]interface{}{"X9", "Patek", 2019}))
	require.NoError(t, f.SetSheetRow(sheet, "A4", &[]interface{}{"X10", "Cartier", 2021}))
	_, err := f.NewSheet("Otra")
	require.NoError(t, err)
	require.NoError(t, f.SetSheetRow("Otra", "A1", &[]string{"ignorada"}))

	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))

	recs, err := parser.NewXLSXParser().Parse(context.Background(), &buf)
	require.NoError(t, err)
	require.Len(t, recs, 2)
	assert.Equal(t, "X9", recs[0][catalog.ColStockID])
	assert.Equal(t, "Patek", recs[0][catalog.ColBrand])
	assert.Equal(t, "2019", recs[0][catalog.ColLaunchYear])
	assert.Equal(t, "Cartier", recs[1][catalog.ColBrand])
}

func TestXLSXParser_ArchivoInvalido(t *testing.T) {
	_, err := parser.NewXLSXParser().Parse(context.Background(), strings.NewReader("no es un zip"))
	assert.ErrorIs(t, err, domain.ErrParse)
}
