package handler

import (
	"studyaid/internal/domain"
	"studyaid/internal/dto"
	"studyaid/internal/service"
	"studyaid/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// HistoryHandler handles history-related HTTP requests
type HistoryHandler struct {
	service   service.HistoryService
	validator *validation.Validator
}

// NewHistoryHandler creates a new HistoryHandler instance
func NewHistoryHandler(service service.HistoryService) *HistoryHandler {
	return &HistoryHandler{
		service:   service,
		validator: validation.NewValidator(),
	}
}

// List handles GET /api/history
func (h *HistoryHandler) List(c *fiber.Ctx) error {
	records, err := h.service.List(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(records)
}

// Save handles POST /api/save
func (h *HistoryHandler) Save(c *fiber.Ctx) error {
	var req dto.SaveHistoryRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("invalid request body")
	}

	if errs := h.validator.ValidateSaveHistoryRequest(req.Type, req.Content); len(errs) > 0 {
		return errs
	}

	record, err := h.service.Save(c.Context(), &req)
	if err != nil {
		return err
	}
	return c.JSON(record)
}

// Delete handles DELETE /api/history/:id
func (h *HistoryHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return domain.ValidationErrors{
			domain.NewInvalidFormatError("id", c.Params("id")),
		}
	}

	// Deleting an id that no longer exists still succeeds.
	if err := h.service.Delete(c.Context(), int64(id)); err != nil {
		return err
	}
	return c.JSON(dto.DeleteHistoryResponse{Success: true})
}
