package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"studyaid/internal/domain"
	"studyaid/internal/dto"
	"studyaid/internal/handler"
	"studyaid/internal/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// MockHistoryService
type MockHistoryService struct {
	ListFunc   func(ctx context.Context) ([]dto.HistoryResponse, error)
	SaveFunc   func(ctx context.Context, req *dto.SaveHistoryRequest) (*dto.HistoryResponse, error)
	DeleteFunc func(ctx context.Context, id int64) error
}

func (m *MockHistoryService) List(ctx context.Context) ([]dto.HistoryResponse, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	panic("MockHistoryService.ListFunc not implemented")
}
func (m *MockHistoryService) Save(ctx context.Context, req *dto.SaveHistoryRequest) (*dto.HistoryResponse, error) {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, req)
	}
	panic("MockHistoryService.SaveFunc not implemented")
}
func (m *MockHistoryService) Delete(ctx context.Context, id int64) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	panic("MockHistoryService.DeleteFunc not implemented")
}

func newHistoryTestApp(h *handler.HistoryHandler) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: middleware.ErrorHandler(),
	})
	app.Get("/api/history", h.List)
	app.Post("/api/save", h.Save)
	app.Delete("/api/history/:id", h.Delete)
	return app
}

func TestHistoryHandler_List(t *testing.T) {
	mockSvc := &MockHistoryService{}
	mockSvc.ListFunc = func(ctx context.Context) ([]dto.HistoryResponse, error) {
		return []dto.HistoryResponse{
			{ID: 2, Type: "flashcards", Content: "Q: a\nA: b", CreatedAt: time.Now().UTC()},
			{ID: 1, Type: "short_summary", Content: "# Summary", CreatedAt: time.Now().UTC().Add(-time.Hour)},
		}, nil
	}
	app := newHistoryTestApp(handler.NewHistoryHandler(mockSvc))

	req := httptest.NewRequest("GET", "/api/history", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var got []dto.HistoryResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	require.Len(t, got, 2)
	assert.Equal(t, int64(2), got[0].ID)
}

func TestHistoryHandler_ListError(t *testing.T) {
	mockSvc := &MockHistoryService{}
	mockSvc.ListFunc = func(ctx context.Context) ([]dto.HistoryResponse, error) {
		return nil, domain.NewHistoryOperationError("failed to list history", errors.New("disk I/O error"))
	}
	app := newHistoryTestApp(handler.NewHistoryHandler(mockSvc))

	req := httptest.NewRequest("GET", "/api/history", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
}

func TestHistoryHandler_Save(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockSvc := &MockHistoryService{}
		mockSvc.SaveFunc = func(ctx context.Context, req *dto.SaveHistoryRequest) (*dto.HistoryResponse, error) {
			assert.Equal(t, "mcq", req.Type)
			assert.Equal(t, "original input", req.OriginalText)
			return &dto.HistoryResponse{
				ID:           3,
				Type:         req.Type,
				OriginalText: req.OriginalText,
				Content:      req.Content,
				CreatedAt:    time.Now().UTC(),
			}, nil
		}
		app := newHistoryTestApp(handler.NewHistoryHandler(mockSvc))

		body, _ := json.Marshal(dto.SaveHistoryRequest{
			Type:         "mcq",
			OriginalText: "original input",
			Content:      "1. Q?\nA) x\nAnswer: A",
		})
		req := httptest.NewRequest("POST", "/api/save", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)

		var got dto.HistoryResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
		assert.Equal(t, int64(3), got.ID)
	})

	t.Run("Missing Content", func(t *testing.T) {
		mockSvc := &MockHistoryService{}
		mockSvc.SaveFunc = func(ctx context.Context, req *dto.SaveHistoryRequest) (*dto.HistoryResponse, error) {
			assert.Fail(t, "service should not be called when validation fails")
			return nil, errors.New("should not be called")
		}
		app := newHistoryTestApp(handler.NewHistoryHandler(mockSvc))

		body, _ := json.Marshal(dto.SaveHistoryRequest{Type: "mcq"})
		req := httptest.NewRequest("POST", "/api/save", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

		raw, _ := io.ReadAll(resp.Body)
		assert.Contains(t, string(raw), "content")
	})
}

func TestHistoryHandler_Delete(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		var deletedID int64
		mockSvc := &MockHistoryService{}
		mockSvc.DeleteFunc = func(ctx context.Context, id int64) error {
			deletedID = id
			return nil
		}
		app := newHistoryTestApp(handler.NewHistoryHandler(mockSvc))

		req := httptest.NewRequest("DELETE", "/api/history/42", nil)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
		assert.Equal(t, int64(42), deletedID)

		var got dto.DeleteHistoryResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
		assert.True(t, got.Success)
	})

	t.Run("Missing ID Still Succeeds", func(t *testing.T) {
		mockSvc := &MockHistoryService{}
		mockSvc.DeleteFunc = func(ctx context.Context, id int64) error {
			return nil
		}
		app := newHistoryTestApp(handler.NewHistoryHandler(mockSvc))

		req := httptest.NewRequest("DELETE", "/api/history/999", nil)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})

	t.Run("Invalid ID", func(t *testing.T) {
		mockSvc := &MockHistoryService{}
		mockSvc.DeleteFunc = func(ctx context.Context, id int64) error {
			assert.Fail(t, "service should not be called for an invalid id")
			return nil
		}
		app := newHistoryTestApp(handler.NewHistoryHandler(mockSvc))

		req := httptest.NewRequest("DELETE", "/api/history/abc", nil)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})
}
