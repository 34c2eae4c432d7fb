package dto

import (
	"time"

	"github.com/jhoicas/Marketplace-api/internal/domain/entity"
)

// CreateInquiryRequest entrada para consultar por un producto (con o sin sesión).
type CreateInquiryRequest struct {
	ProductID int64  `json:"product_id" validate:"required,gt=0"`
	Note      string `json:"note" validate:"max=2000"`
}

// UpdateInquiryNoteRequest entrada para editar la nota de una consulta propia.
type UpdateInquiryNoteRequest struct {
	Note string `json:"note" validate:"max=2000"`
}

// UpdateInquiryStatusRequest entrada del dueño del producto para aceptar o rechazar.
// El estado se valida contra el enum en el caso de uso.
type UpdateInquiryStatusRequest struct {
	ID     int64  `json:"id" validate:"required,gt=0"`
	Status string `json:"status" validate:"required"`
}

// InquiryResponse salida de una consulta.
type InquiryResponse struct {
	ID         int64     `json:"id"`
	ProductID  int64     `json:"product_id"`
	UserID     *int64    `json:"user_id"`
	Note       string    `json:"note"`
	Status     string    `json:"status"`
	CreateTime time.Time `json:"create_time"`
}

// InquiryViewResponse fila de los listados enviadas/recibidas.
type InquiryViewResponse struct {
	InquiryResponse
	Brand          string  `json:"brand"`
	Gender         string  `json:"gender"`
	TotalPrice     string  `json:"total_price"`
	LaunchYear     *int    `json:"launch_year"`
	ModelNo        string  `json:"model_no"`
	MetalType      string  `json:"metal_type"`
	CaseSize       *string `json:"case_size"`
	Condition      string  `json:"condition"`
	ImageLink      string  `json:"image_link"`
	Location       string  `json:"location"`
	Username       string  `json:"username"`
	Email          string  `json:"email"`
	CompanyName    string  `json:"company_name"`
	CompanyAddress string  `json:"company_address"`
}

// ToInquiryResponse mapea la entidad a su salida JSON.
func ToInquiryResponse(i *entity.Inquiry) InquiryResponse {
	return InquiryResponse{
		ID:         i.ID,
		ProductID:  i.ProductID,
		UserID:     i.UserID,
		Note:       i.Note,
		Status:     string(i.Status),
		CreateTime: i.CreateTime,
	}
}

// ToInquiryResponses mapea una lista; nunca devuelve nil.
func ToInquiryResponses(list []*entity.Inquiry) []InquiryResponse {
	out := make([]InquiryResponse, 0, len(list))
	for _, i := range list {
		out = append(out, ToInquiryResponse(i))
	}
	return out
}

// ToInquiryViewResponses mapea los listados con datos de producto y contraparte.
func ToInquiryViewResponses(list []*entity.InquiryView) []InquiryViewResponse {
	out := make([]InquiryViewResponse, 0, len(list))
	for _, v := range list {
		out = append(out, InquiryViewResponse{
			InquiryResponse: ToInquiryResponse(&v.Inquiry),
			Brand:           v.Brand,
			Gender:          v.Gender,
			TotalPrice:      v.TotalPrice,
			LaunchYear:      v.LaunchYear,
			ModelNo:         v.ModelNo,
			MetalType:       v.MetalType,
			CaseSize:        v.CaseSize,
			Condition:       v.Condition,
			ImageLink:       v.ImageLink,
			Location:        v.Location,
			Username:        v.Username,
			Email:           v.Email,
			CompanyName:     v.CompanyName,
			CompanyAddress:  v.CompanyAddress,
		})
	}
	return out
}
