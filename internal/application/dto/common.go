package dto

// PageRequest paginación para listados.
type PageRequest struct {
	Limit  int `json:"limit" query:"limit" validate:"omitempty,min=1,max=100"`
	Offset int `json:"offset" query:"offset" validate:"omitempty,min=0"`
}

// DefaultPage aplica valores por defecto si Limit/Offset son cero.
func (p *PageRequest) DefaultPage() {
	if p.Limit <= 0 {
		p.Limit = 20
	}
	if p.Offset < 0 {
		p.Offset = 0
	}
}

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// MessageResponse confirmación simple.
type MessageResponse struct {
	Message string `json:"message"`
}

// UserIDRequest cuerpo {user_id} usado por los listados por usuario.
type UserIDRequest struct {
	UserID int64 `json:"user_id" validate:"required,gt=0"`
}
