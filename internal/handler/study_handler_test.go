package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"strings"
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

// --- Manual Mocks ---

// MockStudyService
type MockStudyService struct {
	GenerateFunc func(ctx context.Context, req *dto.GenerateRequest) (*dto.GenerateResponse, error)
	LabelsFunc   func() map[string]string
}

func (m *MockStudyService) Generate(ctx context.Context, req *dto.GenerateRequest) (*dto.GenerateResponse, error) {
	if m.GenerateFunc != nil {
		return m.GenerateFunc(ctx, req)
	}
	panic("MockStudyService.GenerateFunc not implemented")
}
func (m *MockStudyService) Labels() map[string]string {
	if m.LabelsFunc != nil {
		return m.LabelsFunc()
	}
	panic("MockStudyService.LabelsFunc not implemented")
}

func newStudyTestApp(h *handler.StudyHandler) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: middleware.ErrorHandler(),
	})
	app.Post("/api/generate", h.Generate)
	app.Get("/api/labels", h.Labels)
	return app
}

func TestStudyHandler_Generate(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockSvc := &MockStudyService{}
		mockSvc.GenerateFunc = func(ctx context.Context, req *dto.GenerateRequest) (*dto.GenerateResponse, error) {
			assert.Equal(t, "short_summary", req.Type)
			assert.Equal(t, "The sky is blue.", req.Text)
			return &dto.GenerateResponse{
				Type:    "short_summary",
				Content: "# Summary\nSky is blue.",
				Parsed: domain.ParsedOutput{
					Kind: domain.OutputPlainText,
					Nodes: []domain.TextNode{
						{Kind: domain.NodeHeading, Text: "Summary"},
						{Kind: domain.NodeParagraph, Text: "Sky is blue."},
					},
				},
			}, nil
		}
		app := newStudyTestApp(handler.NewStudyHandler(mockSvc))

		body, _ := json.Marshal(dto.GenerateRequest{Type: "short_summary", Text: "The sky is blue."})
		req := httptest.NewRequest("POST", "/api/generate", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)

		var got dto.GenerateResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
		assert.Equal(t, "short_summary", got.Type)
		assert.Equal(t, "# Summary\nSky is blue.", got.Content)
		assert.Equal(t, domain.OutputPlainText, got.Parsed.Kind)
		assert.Len(t, got.Parsed.Nodes, 2)
	})

	t.Run("Missing Text", func(t *testing.T) {
		mockSvc := &MockStudyService{}
		mockSvc.GenerateFunc = func(ctx context.Context, req *dto.GenerateRequest) (*dto.GenerateResponse, error) {
			assert.Fail(t, "service should not be called when validation fails")
			return nil, errors.New("should not be called")
		}
		app := newStudyTestApp(handler.NewStudyHandler(mockSvc))

		body, _ := json.Marshal(dto.GenerateRequest{Type: "short_summary"})
		req := httptest.NewRequest("POST", "/api/generate", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

		raw, _ := io.ReadAll(resp.Body)
		assert.Contains(t, string(raw), string(domain.CodeValidation))
		assert.Contains(t, string(raw), "text")
	})

	t.Run("Malformed Body", func(t *testing.T) {
		app := newStudyTestApp(handler.NewStudyHandler(&MockStudyService{}))

		req := httptest.NewRequest("POST", "/api/generate", strings.NewReader("{not json"))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})

	t.Run("Unknown Type", func(t *testing.T) {
		mockSvc := &MockStudyService{}
		mockSvc.GenerateFunc = func(ctx context.Context, req *dto.GenerateRequest) (*dto.GenerateResponse, error) {
			return nil, domain.NewUnknownPromptTypeError(req.Type)
		}
		app := newStudyTestApp(handler.NewStudyHandler(mockSvc))

		body, _ := json.Marshal(dto.GenerateRequest{Type: "mystery_mode", Text: "text"})
		req := httptest.NewRequest("POST", "/api/generate", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

		raw, _ := io.ReadAll(resp.Body)
		assert.Contains(t, string(raw), string(domain.CodeUnknownPromptType))
	})

	t.Run("Gateway Failure", func(t *testing.T) {
		mockSvc := &MockStudyService{}
		mockSvc.GenerateFunc = func(ctx context.Context, req *dto.GenerateRequest) (*dto.GenerateResponse, error) {
			return nil, domain.NewGenerationFailedError(errors.New("upstream timeout"))
		}
		app := newStudyTestApp(handler.NewStudyHandler(mockSvc))

		body, _ := json.Marshal(dto.GenerateRequest{Type: "mcq", Text: "text"})
		req := httptest.NewRequest("POST", "/api/generate", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusServiceUnavailable, resp.StatusCode)
	})

	t.Run("Rejects While Busy", func(t *testing.T) {
		started := make(chan struct{})
		release := make(chan struct{})

		mockSvc := &MockStudyService{}
		mockSvc.GenerateFunc = func(ctx context.Context, req *dto.GenerateRequest) (*dto.GenerateResponse, error) {
			close(started)
			<-release
			return &dto.GenerateResponse{Type: req.Type, Content: "done"}, nil
		}
		app := newStudyTestApp(handler.NewStudyHandler(mockSvc))

		body, _ := json.Marshal(dto.GenerateRequest{Type: "flashcards", Text: "text"})

		firstDone := make(chan error, 1)
		go func() {
			req := httptest.NewRequest("POST", "/api/generate", bytes.NewReader(body))
			req.Header.Set("Content-Type", "application/json")
			resp, err := app.Test(req, -1)
			if err == nil {
				assert.Equal(t, fiber.StatusOK, resp.StatusCode)
			}
			firstDone <- err
		}()

		select {
		case <-started:
		case <-time.After(2 * time.Second):
			t.Fatal("first request never reached the service")
		}

		req := httptest.NewRequest("POST", "/api/generate", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusConflict, resp.StatusCode)

		raw, _ := io.ReadAll(resp.Body)
		assert.Contains(t, string(raw), string(domain.CodeGenerationBusy))

		close(release)
		require.NoError(t, <-firstDone)
	})
}

func TestStudyHandler_Labels(t *testing.T) {
	mockSvc := &MockStudyService{}
	mockSvc.LabelsFunc = func() map[string]string {
		return map[string]string{
			"short_summary": "Summarize",
			"flashcards":    "Flashcards",
		}
	}
	app := newStudyTestApp(handler.NewStudyHandler(mockSvc))

	req := httptest.NewRequest("GET", "/api/labels", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var got dto.LabelsResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	assert.Equal(t, "Summarize", got.Labels["short_summary"])
}
