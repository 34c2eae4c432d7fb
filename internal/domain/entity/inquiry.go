package entity

import "time"

// InquiryStatus estado de una consulta de compra.
type InquiryStatus string

const (
	InquiryPending InquiryStatus = "Pending"
	InquiryAccept  InquiryStatus = "Accept"
	InquiryReject  InquiryStatus = "Reject"
)

// Valid informa si el estado pertenece al enum.
func (s InquiryStatus) Valid() bool {
	switch s {
	case InquiryPending, InquiryAccept, InquiryReject:
		return true
	}
	return false
}

// Inquiry consulta sobre un producto. UserID es nil cuando el interesado no inició sesión.
type Inquiry struct {
	ID         int64
	ProductID  int64
	UserID     *int64
	Note       string
	Status     InquiryStatus
	CreateTime time.Time
}

// InquiryView fila de los listados "enviadas" / "recibidas": la consulta más
// los datos del producto y del usuario contraparte.
type InquiryView struct {
	Inquiry
	Brand          string
	Gender         string
	TotalPrice     string
	LaunchYear     *int
	ModelNo        string
	MetalType      string
	CaseSize       *string
	Condition      string
	ImageLink      string
	Location       string
	Username       string
	Email          string
	CompanyName    string
	CompanyAddress string
}
