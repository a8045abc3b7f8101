package handlers

import (
	"errors"

	"pocketsmart/internal/dto"
	"pocketsmart/internal/models"
	"pocketsmart/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// AnalysisHandler serves the stateless one-shot endpoints: the caller
// submits a full budget snapshot (or chat message) and gets the AI
// commentary back; nothing is stored.
type AnalysisHandler struct {
	analysisService *service.AnalysisService
	logger          *zap.Logger
}

func NewAnalysisHandler(analysisService *service.AnalysisService, logger *zap.Logger) *AnalysisHandler {
	return &AnalysisHandler{
		analysisService: analysisService,
		logger:          logger,
	}
}

// Analyze godoc
// @Summary Analyze a budget snapshot
// @Description Build a prompt from the submitted income/expenses, query the AI model and normalize its reply
// @Tags analysis
// @Accept json
// @Produce json
// @Param request body dto.AnalyzeRequest true "Budget snapshot"
// @Success 200 {object} dto.AnalyzeResponse
// @Failure 400 {object} map[string]string
// @Router /analyze [post]
func (h *AnalysisHandler) Analyze(c *fiber.Ctx) error {
	var req dto.AnalyzeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body: income and amounts must be numeric",
		})
	}

	result, err := h.analysisService.AnalyzeSnapshot(c.Context(), snapshotFromRequest(&req), req.Focus)
	if err != nil {
		if errors.Is(err, service.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		h.logger.Error("Analysis failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Analysis failed",
		})
	}

	return c.JSON(dto.AnalyzeResponse{
		HealthScore: result.HealthScore,
		Narrative:   result.Narrative,
		Suggestions: result.Suggestions,
		Unavailable: result.Unavailable,
	})
}

// Chat godoc
// @Summary One-shot chat
// @Description Answer a free-form message, optionally grounded in a submitted budget snapshot
// @Tags analysis
// @Accept json
// @Produce json
// @Param request body dto.ChatRequest true "Chat message with optional budget context"
// @Success 200 {object} dto.ChatResponse
// @Failure 400 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /chat [post]
func (h *AnalysisHandler) Chat(c *fiber.Ctx) error {
	var req dto.ChatRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}
	if req.Message == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "message required",
		})
	}

	var system string
	if req.Context != nil {
		system = service.ChatSystemFromSnapshot(snapshotFromRequest(req.Context))
	}

	reply, err := h.analysisService.Chat(c.Context(), system, nil, req.Message)
	if err != nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"error": service.FriendlyError(err),
		})
	}

	return c.JSON(dto.ChatResponse{Reply: reply})
}

func snapshotFromRequest(req *dto.AnalyzeRequest) models.BudgetSnapshot {
	currency := req.Currency
	if currency == "" {
		currency = "$"
	}
	expenses := make([]models.ExpenseEntry, 0, len(req.Expenses))
	for _, e := range req.Expenses {
		expenses = append(expenses, models.ExpenseEntry{
			Category:    e.Category,
			Amount:      e.Amount,
			Description: e.Description,
		})
	}
	return models.BudgetSnapshot{
		Income:      req.Income,
		Expenses:    expenses,
		SavingsGoal: req.SavingsGoal,
		Currency:    currency,
	}
}
