package dto

import (
	"time"

	"github.com/jhoicas/Marketplace-api/internal/domain/entity"
)

// UploadHistoryResponse salida de una corrida de ingesta.
type UploadHistoryResponse struct {
	ID                int64     `json:"id"`
	UserID            int64     `json:"user_id"`
	FileName          string    `json:"file_name"`
	UploadDate        time.Time `json:"upload_date"`
	TotalEntries      int       `json:"total_entries"`
	SuccessfulEntries int       `json:"successful_entries"`
	ErroredEntries    int       `json:"errored_entries"`
}

// ToUploadHistoryResponses mapea una lista conservando el orden.
func ToUploadHistoryResponses(list []*entity.UploadHistory) []UploadHistoryResponse {
	out := make([]UploadHistoryResponse, 0, len(list))
	for _, h := range list {
		out = append(out, UploadHistoryResponse{
			ID:                h.ID,
			UserID:            h.UserID,
			FileName:          h.FileName,
			UploadDate:        h.UploadDate,
			TotalEntries:      h.TotalEntries,
			SuccessfulEntries: h.SuccessfulEntries,
			ErroredEntries:    h.ErroredEntries,
		})
	}
	return out
}
