package handlers

import (
	"errors"

	"pocketsmart/internal/dto"
	"pocketsmart/internal/service"
	"pocketsmart/internal/store"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ExpenseHandler struct {
	store  *store.MemoryStore
	logger *zap.Logger
}

func NewExpenseHandler(st *store.MemoryStore, logger *zap.Logger) *ExpenseHandler {
	return &ExpenseHandler{
		store:  st,
		logger: logger,
	}
}

// AddExpense godoc
// @Summary Record an expense
// @Tags expenses
// @Accept json
// @Produce json
// @Param request body dto.AddExpenseRequest true "Expense"
// @Security Bearer
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Router /api/v1/expenses [post]
func (h *ExpenseHandler) AddExpense(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	var req dto.AddExpenseRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body: amount must be numeric",
		})
	}
	if req.Amount <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Amount must be > 0",
		})
	}

	entry := h.store.AddExpense(userID, req.Category, req.Amount, req.Description, req.Date)

	// Flag a limit violation for the entry's category right away so
	// the client can surface it as an alert.
	profile := h.store.GetProfile(userID)
	summary := service.BuildSummary(&profile)
	var alert string
	if limit, ok := profile.BudgetLimits[entry.Category]; ok {
		if spent := summary.SpendingByCategory[entry.Category]; spent > limit {
			alert = "Over budget in " + entry.Category
		}
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Added.",
		"expense": entry,
		"alert":   alert,
		"summary": summary,
	})
}

// ListExpenses godoc
// @Summary List expenses
// @Tags expenses
// @Produce json
// @Param category query string false "Filter by category"
// @Security Bearer
// @Success 200 {object} dto.ExpenseListResponse
// @Router /api/v1/expenses [get]
func (h *ExpenseHandler) ListExpenses(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	expenses := h.store.ListExpenses(userID, c.Query("category"))
	return c.JSON(dto.ExpenseListResponse{
		Expenses: expenses,
		Count:    len(expenses),
	})
}

// DeleteExpense godoc
// @Summary Delete an expense
// @Tags expenses
// @Produce json
// @Param id path string true "Expense ID"
// @Security Bearer
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/v1/expenses/{id} [delete]
func (h *ExpenseHandler) DeleteExpense(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	expenseID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid expense ID",
		})
	}

	if err := h.store.DeleteExpense(userID, expenseID); err != nil {
		if errors.Is(err, store.ErrExpenseNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Not found",
			})
		}
		h.logger.Error("Failed to delete expense", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to delete expense",
		})
	}

	return c.JSON(fiber.Map{"message": "Deleted."})
}
