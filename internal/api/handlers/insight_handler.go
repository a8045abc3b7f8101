package handlers

import (
	"errors"

	"pocketsmart/internal/dto"
	"pocketsmart/internal/service"
	"pocketsmart/internal/store"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// InsightHandler serves the profile-based AI endpoints: dashboard,
// analysis over stored expenses, chat with history, recommendations
// and the spending forecast.
type InsightHandler struct {
	store           *store.MemoryStore
	analysisService *service.AnalysisService
	recService      *service.RecommendationService
	forecastService *service.ForecastService
	logger          *zap.Logger
}

func NewInsightHandler(
	st *store.MemoryStore,
	analysisService *service.AnalysisService,
	recService *service.RecommendationService,
	forecastService *service.ForecastService,
	logger *zap.Logger,
) *InsightHandler {
	return &InsightHandler{
		store:           st,
		analysisService: analysisService,
		recService:      recService,
		forecastService: forecastService,
		logger:          logger,
	}
}

// Dashboard godoc
// @Summary Budget dashboard
// @Description Summary, top categories and the deterministic health score
// @Tags insights
// @Produce json
// @Security Bearer
// @Success 200 {object} dto.DashboardResponse
// @Router /api/v1/dashboard [get]
func (h *InsightHandler) Dashboard(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	profile := h.store.GetProfile(userID)
	summary := service.BuildSummary(&profile)
	score := service.HeuristicHealthScore(summary)

	top := make([]dto.CategoryAmount, 0, 5)
	for _, ca := range service.TopCategories(summary, 5) {
		top = append(top, dto.CategoryAmount{Category: ca.Category, Amount: ca.Amount})
	}

	return c.JSON(dto.DashboardResponse{
		Summary:              summary,
		TopCategories:        top,
		FinancialHealthScore: score,
		HealthLabel:          service.HealthLabel(score),
		TotalExpensesCount:   len(profile.Expenses),
	})
}

// Analyze godoc
// @Summary Analyze stored spending
// @Description Run the AI analysis over the profile's stored expenses
// @Tags insights
// @Accept json
// @Produce json
// @Param request body dto.ProfileAnalyzeRequest false "Focus area"
// @Security Bearer
// @Success 200 {object} dto.AnalyzeResponse
// @Router /api/v1/analyze [post]
func (h *InsightHandler) Analyze(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	var req dto.ProfileAnalyzeRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid request body",
			})
		}
	}

	profile := h.store.GetProfile(userID)
	result, err := h.analysisService.AnalyzeSnapshot(c.Context(), profile.Snapshot(), req.Focus)
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
// @Summary Chat with conversation history
// @Description Answer a message grounded in the stored budget and recent turns
// @Tags insights
// @Accept json
// @Produce json
// @Param request body dto.ChatRequest true "Chat message"
// @Security Bearer
// @Success 200 {object} dto.ChatResponse
// @Failure 503 {object} map[string]string
// @Router /api/v1/chat [post]
func (h *InsightHandler) Chat(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return unauthorized(c)
	}

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

	profile := h.store.GetProfile(userID)
	history := h.store.ChatHistory(userID)

	// Only the first turn carries the full budget preamble; afterwards
	// history provides the context.
	var system string
	if len(history) == 0 {
		system = service.BuildChatSystemPrompt(profile.Name, service.BuildSummary(&profile))
	}

	reply, err := h.analysisService.Chat(c.Context(), system, history, req.Message)
	if err != nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"error": service.FriendlyError(err),
		})
	}

	h.store.AppendChat(userID, req.Message, reply)
	return c.JSON(dto.ChatResponse{Reply: reply})
}

// Recommendations godoc
// @Summary AI shopping/saving recommendations
// @Description Type-keyed recommendations (general, home, party, jewelry) parsed from the model's JSON reply
// @Tags insights
// @Produce json
// @Param type query string false "Recommendation type" default(general)
// @Security Bearer
// @Success 200 {object} map[string]interface{}
// @Failure 503 {object} map[string]string
// @Router /api/v1/recommendations [get]
func (h *InsightHandler) Recommendations(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	recType := c.Query("type", "general")
	profile := h.store.GetProfile(userID)
	summary := service.BuildSummary(&profile)

	set, err := h.recService.Generate(c.Context(), recType, summary)
	if err != nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"error": service.FriendlyError(err),
		})
	}

	if set.Items == nil {
		return c.JSON(fiber.Map{
			"recommendations_text": set.RawText,
			"type":                 set.Type,
		})
	}
	return c.JSON(fiber.Map{
		"recommendations": set.Items,
		"type":            set.Type,
	})
}

// Forecast godoc
// @Summary Spending forecast
// @Description Project month-end spending from the pace so far, with an AI assessment
// @Tags insights
// @Accept json
// @Produce json
// @Param request body dto.ForecastRequest true "Elapsed and total days"
// @Security Bearer
// @Success 200 {object} service.Forecast
// @Failure 400 {object} map[string]string
// @Router /api/v1/forecast [post]
func (h *InsightHandler) Forecast(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	req := dto.ForecastRequest{DaysElapsed: 15, TotalDays: 30}
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid request body",
			})
		}
	}

	profile := h.store.GetProfile(userID)
	summary := service.BuildSummary(&profile)

	fc, err := h.forecastService.Forecast(c.Context(), summary, req.DaysElapsed, req.TotalDays)
	if err != nil {
		if errors.Is(err, service.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		h.logger.Error("Forecast failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Forecast failed",
		})
	}

	return c.JSON(fc)
}
