package service

import (
	"context"

	"studyaid/internal/domain"
	"studyaid/internal/dto"
	"studyaid/internal/logger"

	"go.uber.org/zap"
)

// HistoryService defines the interface for history operations
type HistoryService interface {
	List(ctx context.Context) ([]dto.HistoryResponse, error)
	Save(ctx context.Context, req *dto.SaveHistoryRequest) (*dto.HistoryResponse, error)
	Delete(ctx context.Context, id int64) error
}

// historyService implements HistoryService
type historyService struct {
	repo domain.HistoryRepository
}

// NewHistoryService creates a new instance of historyService.
func NewHistoryService(repo domain.HistoryRepository) HistoryService {
	return &historyService{repo: repo}
}

func toHistoryResponse(record *domain.HistoryRecord) dto.HistoryResponse {
	return dto.HistoryResponse{
		ID:           record.ID,
		Type:         record.Type,
		OriginalText: record.OriginalText,
		Content:      record.Content,
		CreatedAt:    record.CreatedAt,
	}
}

// List returns all saved records, newest first.
func (s *historyService) List(ctx context.Context) ([]dto.HistoryResponse, error) {
	records, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.HistoryResponse, 0, len(records))
	for i := range records {
		responses = append(responses, toHistoryResponse(&records[i]))
	}
	return responses, nil
}

// Save appends a record to the history store.
func (s *historyService) Save(ctx context.Context, req *dto.SaveHistoryRequest) (*dto.HistoryResponse, error) {
	record, err := s.repo.Save(ctx, req.Type, req.OriginalText, req.Content)
	if err != nil {
		return nil, err
	}

	logger.Get().Info("Saved generation result to history",
		zap.Int64("id", record.ID),
		zap.String("type", record.Type))

	response := toHistoryResponse(record)
	return &response, nil
}

// Delete removes a record. Deleting an id that does not exist succeeds.
func (s *historyService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
