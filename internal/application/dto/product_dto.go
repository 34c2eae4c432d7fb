package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Marketplace-api/internal/domain/entity"
)

// UpdateVisibilityRequest entrada para mostrar u ocultar un producto propio.
type UpdateVisibilityRequest struct {
	ID         int64 `json:"id" validate:"required,gt=0"`
	Visibility *bool `json:"visibility" validate:"required"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID         int64            `json:"id"`
	UserID     int64            `json:"user_id"`
	StockID    string           `json:"stock_id"`
	ModelNo    string           `json:"model_no"`
	Brand      string           `json:"brand"`
	Gender     string           `json:"gender"`
	MetalType  string           `json:"metal_type"`
	CaseSize   *decimal.Decimal `json:"case_size"`
	Condition  string           `json:"condition"`
	Box        string           `json:"box"`
	Paper      string           `json:"paper"`
	TotalPrice decimal.Decimal  `json:"total_price"`
	LaunchYear *int             `json:"launch_year"`
	ImageLink  string           `json:"image_link"`
	VideoLink  string           `json:"video_link"`
	Location   string           `json:"location"`
	Visibility bool             `json:"visibility"`
	CreatedAt  time.Time        `json:"created_at"`
	UpdatedAt  time.Time        `json:"updated_at"`
}

// ToProductResponse mapea la entidad a su salida JSON.
func ToProductResponse(p *entity.Product) ProductResponse {
	return ProductResponse{
		ID:         p.ID,
		UserID:     p.UserID,
		StockID:    p.StockID,
		ModelNo:    p.ModelNo,
		Brand:      p.Brand,
		Gender:     p.Gender,
		MetalType:  p.MetalType,
		CaseSize:   p.CaseSize,
		Condition:  p.Condition,
		Box:        p.Box,
		Paper:      p.Paper,
		TotalPrice: p.TotalPrice,
		LaunchYear: p.LaunchYear,
		ImageLink:  p.ImageLink,
		VideoLink:  p.VideoLink,
		Location:   p.Location,
		Visibility: p.Visibility,
		CreatedAt:  p.CreatedAt,
		UpdatedAt:  p.UpdatedAt,
	}
}

// ToProductResponses mapea una lista; nunca devuelve nil.
func ToProductResponses(list []*entity.Product) []ProductResponse {
	out := make([]ProductResponse, 0, len(list))
	for _, p := range list {
		out = append(out, ToProductResponse(p))
	}
	return out
}
