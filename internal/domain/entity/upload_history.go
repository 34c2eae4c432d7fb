package entity

import "time"

// UploadHistory registro inmutable de una corrida de ingesta.
type UploadHistory struct {
	ID                int64
	UserID            int64
	FileName          string
	UploadDate        time.Time
	TotalEntries      int
	SuccessfulEntries int
	ErroredEntries    int
}
