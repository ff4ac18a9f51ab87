package service

import (
	"context"
	"errors"

	"github.com/vaultpass/pwgen-go/internal/model"
)

const (
	DefaultAuditLimit = 50
	MaxAuditLimit     = 500
)

var ErrInvalidLimit = errors.New("limit must be between 1 and 500")

// GenerationLister reads generation audit records.
type GenerationLister interface {
	ListRecent(ctx context.Context, limit int) ([]model.GenerationRecord, error)
}

// AuditService exposes the generation audit log.
type AuditService struct {
	repo GenerationLister
}

// NewAuditService creates a new AuditService.
func NewAuditService(repo GenerationLister) *AuditService {
	return &AuditService{repo: repo}
}

// ListRecent returns the newest records. A zero limit means DefaultAuditLimit.
func (s *AuditService) ListRecent(ctx context.Context, limit int) ([]model.GenerationRecordResponse, error) {
	if limit == 0 {
		limit = DefaultAuditLimit
	}
	if limit < 0 || limit > MaxAuditLimit {
		return nil, ErrInvalidLimit
	}

	records, err := s.repo.ListRecent(ctx, limit)
	if err != nil {
		return nil, err
	}

	return recordsToResponse(records), nil
}

func recordsToResponse(records []model.GenerationRecord) []model.GenerationRecordResponse {
	result := make([]model.GenerationRecordResponse, len(records))
	for i, r := range records {
		result[i] = model.GenerationRecordResponse{
			ID:          r.ID,
			Length:      r.Length,
			Count:       r.Count,
			SymbolCount: r.SymbolCount,
			Hashed:      r.Hashed,
			ClientIP:    r.ClientIP,
			CreatedAt:   r.CreatedAt,
		}
	}
	return result
}
