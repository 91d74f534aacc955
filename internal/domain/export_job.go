package domain

import (
	"time"

	"github.com/google/uuid"
)

const (
	ExportPending   = "pending"
	ExportCompleted = "completed"
	ExportFailed    = "failed"
)

// ExportJob records one attempt to turn a session's page frames into a file.
type ExportJob struct {
	ID        uuid.UUID `json:"id"`
	SessionID uuid.UUID `json:"session_id"`
	FileName  string    `json:"file_name"`
	Theme     string    `json:"theme"`
	Exporter  string    `json:"exporter"`
	Pages     int       `json:"pages"`
	Bytes     int       `json:"bytes"`
	Attempts  int       `json:"attempts"`
	Status    string    `json:"status"`
	Error     string    `json:"error,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
