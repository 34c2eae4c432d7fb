package catalog

import (
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Marketplace-api/internal/domain/entity"
)

// Project convierte una fila válida en un Product del dueño userID.
// Valores ausentes reciben defaults explícitos: Stock ID → DefaultStockID,
// precio → 0, visibilidad → true. Numéricos no parseables o un año fuera de
// rango quedan en nil.
func Project(r Record, userID int64, now time.Time) *entity.Product {
	stockID := cell(r, ColStockID)
	if stockID == "" {
		stockID = entity.DefaultStockID
	}
	return &entity.Product{
		UserID:     userID,
		StockID:    stockID,
		ModelNo:    cell(r, ColModelNo),
		Brand:      cell(r, ColBrand),
		Gender:     cell(r, ColGender),
		MetalType:  cell(r, ColMetalType),
		CaseSize:   parseDecimal(cell(r, ColCaseSize)),
		Condition:  cell(r, ColCondition),
		Box:        cell(r, ColBox),
		Paper:      cell(r, ColPaper),
		TotalPrice: parsePrice(cell(r, ColTotalPrice)),
		LaunchYear: parseYear(cell(r, ColLaunchYear)),
		ImageLink:  cell(r, ColImageLink),
		VideoLink:  cell(r, ColVideoLink),
		Location:   cell(r, ColLocation),
		Visibility: true,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

func cell(r Record, col string) string {
	return strings.TrimSpace(r[col])
}

// parsePrice acepta "$12,500.00" o "12500"; cualquier otra cosa es 0.
func parsePrice(s string) decimal.Decimal {
	if d := parseDecimal(s); d != nil {
		return *d
	}
	return decimal.Zero
}

func parseDecimal(s string) *decimal.Decimal {
	s = strings.NewReplacer("$", "", ",", "", " ", "").Replace(s)
	if s == "" {
		return nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return nil
	}
	return &d
}

// Rango aceptado para Launch Year; fuera de él el año queda en nil.
const (
	minLaunchYear = 1
	maxLaunchYear = 9999
)

func parseYear(s string) *int {
	if s == "" {
		return nil
	}
	// Las hojas de cálculo suelen entregar "2019.0".
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f < minLaunchYear || f > maxLaunchYear {
		return nil
	}
	y := int(f)
	return &y
}
