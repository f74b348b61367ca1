package repository

import (
	"context"
	"time"

	"studyaid/internal/domain"
	"studyaid/internal/repository/models"
	"studyaid/internal/util"

	"github.com/jmoiron/sqlx"
)

// sqlxHistoryRepository implements domain.HistoryRepository using sqlx.
type sqlxHistoryRepository struct {
	db *sqlx.DB
}

// NewSQLXHistoryRepository creates a new instance of sqlxHistoryRepository.
func NewSQLXHistoryRepository(db *sqlx.DB) domain.HistoryRepository {
	return &sqlxHistoryRepository{db: db}
}

func toDomainHistory(model *models.History) *domain.HistoryRecord {
	if model == nil {
		return nil
	}
	return &domain.HistoryRecord{
		ID:           model.ID,
		Type:         model.Type,
		OriginalText: model.OriginalText.String,
		Content:      model.Content,
		CreatedAt:    model.CreatedAt,
	}
}

// List returns all saved records, newest first.
func (r *sqlxHistoryRepository) List(ctx context.Context) ([]domain.HistoryRecord, error) {
	query := `SELECT id, type, original_text, content, created_at FROM history ORDER BY created_at DESC`

	var modelRecords []models.History
	if err := r.db.SelectContext(ctx, &modelRecords, query); err != nil {
		return nil, domain.NewHistoryOperationError("failed to list history", err)
	}

	records := make([]domain.HistoryRecord, 0, len(modelRecords))
	for i := range modelRecords {
		records = append(records, *toDomainHistory(&modelRecords[i]))
	}
	return records, nil
}

// Save appends a record and returns it with the store-assigned id.
func (r *sqlxHistoryRepository) Save(ctx context.Context, recordType, originalText, content string) (*domain.HistoryRecord, error) {
	model := &models.History{
		Type:         recordType,
		OriginalText: util.StringToNullString(originalText),
		Content:      content,
		CreatedAt:    time.Now().UTC(),
	}

	query := `INSERT INTO history (type, original_text, content, created_at) VALUES (?, ?, ?, ?)`
	result, err := r.db.ExecContext(ctx, query, model.Type, model.OriginalText, model.Content, model.CreatedAt)
	if err != nil {
		return nil, domain.NewHistoryOperationError("failed to save history record", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, domain.NewHistoryOperationError("failed to read inserted history id", err)
	}
	model.ID = id

	return toDomainHistory(model), nil
}

// Delete removes a record by id. A missing id is not an error; the
// statement simply affects zero rows.
func (r *sqlxHistoryRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM history WHERE id = ?`
	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		return domain.NewHistoryOperationError("failed to delete history record", err)
	}
	return nil
}
