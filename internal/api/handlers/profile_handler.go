package handlers

import (
	"pocketsmart/internal/dto"
	"pocketsmart/internal/store"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// ProfileHandler manages the session-scoped profile: base fields,
// budget limits and savings progress.
type ProfileHandler struct {
	store  *store.MemoryStore
	logger *zap.Logger
}

func NewProfileHandler(st *store.MemoryStore, logger *zap.Logger) *ProfileHandler {
	return &ProfileHandler{
		store:  st,
		logger: logger,
	}
}

// Setup godoc
// @Summary Set up the profile
// @Description Update name, income, currency and savings goal; omitted fields are kept
// @Tags profile
// @Accept json
// @Produce json
// @Param request body dto.SetupRequest true "Profile fields"
// @Security Bearer
// @Success 200 {object} dto.ProfileResponse
// @Router /api/v1/user/setup [post]
func (h *ProfileHandler) Setup(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	var req dto.SetupRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}
	if (req.MonthlyIncome != nil && *req.MonthlyIncome < 0) ||
		(req.SavingsGoal != nil && *req.SavingsGoal < 0) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "income and savings goal must be non-negative",
		})
	}

	profile := h.store.Setup(userID, req.Name, req.Currency, req.MonthlyIncome, req.SavingsGoal)
	return c.JSON(dto.ProfileResponse{Profile: profile})
}

// GetProfile godoc
// @Summary Get the profile
// @Tags profile
// @Produce json
// @Security Bearer
// @Success 200 {object} dto.ProfileResponse
// @Router /api/v1/user/profile [get]
func (h *ProfileHandler) GetProfile(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return unauthorized(c)
	}
	return c.JSON(dto.ProfileResponse{Profile: h.store.GetProfile(userID)})
}

// Reset godoc
// @Summary Reset the profile
// @Description Drop all session data for the demo user
// @Tags profile
// @Produce json
// @Security Bearer
// @Success 200 {object} map[string]string
// @Router /api/v1/user/reset [delete]
func (h *ProfileHandler) Reset(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return unauthorized(c)
	}
	h.store.Reset(userID)
	h.logger.Info("Profile reset", zap.String("user_id", userID))
	return c.JSON(fiber.Map{"message": "Reset."})
}

// SetBudgetLimits godoc
// @Summary Set per-category budget limits
// @Tags profile
// @Accept json
// @Produce json
// @Param request body dto.SetLimitsRequest true "Category limits"
// @Security Bearer
// @Success 200 {object} map[string]interface{}
// @Router /api/v1/budget/limits [post]
func (h *ProfileHandler) SetBudgetLimits(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	var req dto.SetLimitsRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}
	for cat, lim := range req.Limits {
		if lim < 0 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "limit for " + cat + " must be non-negative",
			})
		}
	}

	limits := h.store.SetBudgetLimits(userID, req.Limits)
	return c.JSON(fiber.Map{"message": "Updated.", "limits": limits})
}

// UpdateSavings godoc
// @Summary Update savings progress
// @Tags profile
// @Accept json
// @Produce json
// @Param request body dto.UpdateSavingsRequest true "Savings fields"
// @Security Bearer
// @Success 200 {object} dto.ProfileResponse
// @Router /api/v1/savings [post]
func (h *ProfileHandler) UpdateSavings(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	var req dto.UpdateSavingsRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}
	if (req.SavingsSaved != nil && *req.SavingsSaved < 0) ||
		(req.SavingsGoal != nil && *req.SavingsGoal < 0) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "savings values must be non-negative",
		})
	}

	profile := h.store.UpdateSavings(userID, req.SavingsSaved, req.SavingsGoal)
	return c.JSON(dto.ProfileResponse{Profile: profile})
}

func getUserID(c *fiber.Ctx) (string, error) {
	userID, ok := c.Locals("userID").(string)
	if !ok || userID == "" {
		return "", fiber.ErrUnauthorized
	}
	return userID, nil
}

func unauthorized(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
		"error": "Unauthorized",
	})
}
