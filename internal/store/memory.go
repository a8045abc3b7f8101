package store

import (
	"errors"
	"strings"
	"sync"
	"time"

	"pocketsmart/internal/models"

	"github.com/google/uuid"
)

var ErrExpenseNotFound = errors.New("expense not found")

const maxChatHistory = 20

// MemoryStore keeps per-user profiles for the lifetime of the process.
// Nothing is persisted; a restart wipes all state, which is the
// intended behavior for the demo account.
type MemoryStore struct {
	mu       sync.RWMutex
	profiles map[string]*models.Profile
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		profiles: make(map[string]*models.Profile),
	}
}

func (s *MemoryStore) getOrCreate(userID string) *models.Profile {
	p, ok := s.profiles[userID]
	if !ok {
		p = &models.Profile{
			UserID:       userID,
			Name:         "User",
			Currency:     "USD",
			BudgetLimits: make(map[string]float64),
			Expenses:     []models.ExpenseEntry{},
			CreatedAt:    time.Now(),
		}
		s.profiles[userID] = p
	}
	return p
}

// GetProfile returns a copy of the user's profile, creating it on
// first access.
func (s *MemoryStore) GetProfile(userID string) models.Profile {
	s.mu.Lock()
	defer s.mu.Unlock()
	return copyProfile(s.getOrCreate(userID))
}

// Setup updates the profile's base fields. Zero-valued inputs leave the
// existing values untouched so partial setup calls are safe.
func (s *MemoryStore) Setup(userID, name, currency string, income, savingsGoal *float64) models.Profile {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.getOrCreate(userID)
	if name != "" {
		p.Name = name
	}
	if currency != "" {
		p.Currency = currency
	}
	if income != nil {
		p.MonthlyIncome = *income
	}
	if savingsGoal != nil {
		p.SavingsGoal = *savingsGoal
	}
	return copyProfile(p)
}

func (s *MemoryStore) AddExpense(userID string, category string, amount float64, description, date string) models.ExpenseEntry {
	s.mu.Lock()
	defer s.mu.Unlock()

	if category == "" {
		category = "Other"
	}
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}
	entry := models.ExpenseEntry{
		ID:          uuid.New(),
		Category:    category,
		Amount:      amount,
		Description: description,
		Date:        date,
		AddedAt:     time.Now(),
	}

	p := s.getOrCreate(userID)
	p.Expenses = append(p.Expenses, entry)
	return entry
}

// ListExpenses returns the user's expenses, optionally filtered by
// category (case-insensitive).
func (s *MemoryStore) ListExpenses(userID, category string) []models.ExpenseEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.profiles[userID]
	if !ok {
		return []models.ExpenseEntry{}
	}

	out := make([]models.ExpenseEntry, 0, len(p.Expenses))
	for _, e := range p.Expenses {
		if category != "" && !strings.EqualFold(e.Category, category) {
			continue
		}
		out = append(out, e)
	}
	return out
}

func (s *MemoryStore) DeleteExpense(userID string, expenseID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.getOrCreate(userID)
	for i, e := range p.Expenses {
		if e.ID == expenseID {
			p.Expenses = append(p.Expenses[:i], p.Expenses[i+1:]...)
			return nil
		}
	}
	return ErrExpenseNotFound
}

func (s *MemoryStore) SetBudgetLimits(userID string, limits map[string]float64) map[string]float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.getOrCreate(userID)
	for cat, lim := range limits {
		p.BudgetLimits[cat] = lim
	}

	out := make(map[string]float64, len(p.BudgetLimits))
	for cat, lim := range p.BudgetLimits {
		out[cat] = lim
	}
	return out
}

func (s *MemoryStore) UpdateSavings(userID string, saved, goal *float64) models.Profile {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.getOrCreate(userID)
	if saved != nil {
		p.SavingsSaved = *saved
	}
	if goal != nil {
		p.SavingsGoal = *goal
	}
	return copyProfile(p)
}

// AppendChat records one user/assistant exchange, keeping only the most
// recent turns as conversation context.
func (s *MemoryStore) AppendChat(userID, userMessage, assistantReply string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.getOrCreate(userID)
	p.ChatHistory = append(p.ChatHistory,
		models.ChatTurn{Role: models.ChatRoleUser, Content: userMessage},
		models.ChatTurn{Role: models.ChatRoleAssistant, Content: assistantReply},
	)
	if len(p.ChatHistory) > maxChatHistory {
		p.ChatHistory = p.ChatHistory[len(p.ChatHistory)-maxChatHistory:]
	}
}

func (s *MemoryStore) ChatHistory(userID string) []models.ChatTurn {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.profiles[userID]
	if !ok {
		return nil
	}
	out := make([]models.ChatTurn, len(p.ChatHistory))
	copy(out, p.ChatHistory)
	return out
}

// Reset drops the user's profile entirely.
func (s *MemoryStore) Reset(userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.profiles, userID)
}

func copyProfile(p *models.Profile) models.Profile {
	out := *p
	out.Expenses = make([]models.ExpenseEntry, len(p.Expenses))
	copy(out.Expenses, p.Expenses)
	out.BudgetLimits = make(map[string]float64, len(p.BudgetLimits))
	for cat, lim := range p.BudgetLimits {
		out.BudgetLimits[cat] = lim
	}
	out.ChatHistory = make([]models.ChatTurn, len(p.ChatHistory))
	copy(out.ChatHistory, p.ChatHistory)
	return out
}
