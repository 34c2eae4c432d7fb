package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// DefaultStockID se asigna cuando la fila cargada no trae Stock ID.
const DefaultStockID = "DEFAULT_VALUE"

// Product representa una entrada del catálogo (un reloj) de un vendedor.
// Solo se crea por carga masiva; una nueva carga reemplaza todo el catálogo del dueño.
// Después de creado, el único campo mutable es Visibility.
type Product struct {
	ID         int64
	UserID     int64 // dueño del catálogo
	StockID    string
	ModelNo    string
	Brand      string
	Gender     string
	MetalType  string
	CaseSize   *decimal.Decimal // mm; nil si la celda no era numérica
	Condition  string
	Box        string
	Paper      string
	TotalPrice decimal.Decimal // USD, 0 por defecto
	LaunchYear *int
	ImageLink  string
	VideoLink  string
	Location   string
	Visibility bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
