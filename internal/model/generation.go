package model

import "time"

// GenerationRecord is the audit trail of one batch. It never holds passwords.
type GenerationRecord struct {
	ID          string
	Length      int
	Count       int
	SymbolCount int
	Hashed      bool
	ClientIP    string
	CreatedAt   time.Time
}

// GenerationRecordResponse represents an audit record in API responses.
type GenerationRecordResponse struct {
	ID          string    `json:"id"`
	Length      int       `json:"length"`
	Count       int       `json:"count"`
	SymbolCount int       `json:"symbol_count"`
	Hashed      bool      `json:"hashed"`
	ClientIP    string    `json:"client_ip"`
	CreatedAt   time.Time `json:"created_at"`
}
