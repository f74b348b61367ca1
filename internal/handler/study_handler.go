package handler

import (
	"sync/atomic"

	"studyaid/internal/domain"
	"studyaid/internal/dto"
	"studyaid/internal/logger"
	"studyaid/internal/middleware"
	"studyaid/internal/service"
	"studyaid/internal/validation"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// StudyHandler handles generation-related HTTP requests
type StudyHandler struct {
	service   service.StudyService
	validator *validation.Validator

	// busy implements reject-while-busy: one generation may be in flight
	// at a time, a second request gets GENERATION_BUSY instead of queuing.
	busy atomic.Bool
}

// NewStudyHandler creates a new StudyHandler instance
func NewStudyHandler(service service.StudyService) *StudyHandler {
	return &StudyHandler{
		service:   service,
		validator: validation.NewValidator(),
	}
}

// Generate handles POST /api/generate
func (h *StudyHandler) Generate(c *fiber.Ctx) error {
	var req dto.GenerateRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("invalid request body")
	}

	if errs := h.validator.ValidateGenerateRequest(req.Type, req.Text); len(errs) > 0 {
		return errs
	}

	if !h.busy.CompareAndSwap(false, true) {
		return domain.NewGenerationBusyError()
	}
	defer h.busy.Store(false)

	logger.Get().Info("Generating response",
		zap.String("type", req.Type),
		zap.Int("text_length", len(req.Text)),
		zap.String("request_id", middleware.GetRequestID(c)),
	)

	resp, err := h.service.Generate(c.Context(), &req)
	if err != nil {
		return err
	}

	return c.JSON(resp)
}

// Labels handles GET /api/labels
func (h *StudyHandler) Labels(c *fiber.Ctx) error {
	return c.JSON(dto.LabelsResponse{Labels: h.service.Labels()})
}
