package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"pocketsmart/pkg/config"

	"github.com/Role1776/gigago"
	"go.uber.org/zap"
)

// ErrProviderUnavailable means the external model could not produce a
// reply after the fallback attempt. Callers render the user-safe
// sentinel instead of the provider's raw error.
var ErrProviderUnavailable = errors.New("provider unavailable")

// AnalysisUnavailableText is the user-safe placeholder returned when
// the provider fails.
const AnalysisUnavailableText = "analysis unavailable"

const modelTemperature = 0.6

// textGenerator is the single outbound operation the gateway needs,
// kept narrow so tests can stub the provider.
type textGenerator interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}

type gigaModel struct {
	model *gigago.GenerativeModel
}

func (g *gigaModel) GenerateText(ctx context.Context, prompt string) (string, error) {
	resp, err := g.model.Generate(ctx, []gigago.Message{
		{Role: gigago.RoleUser, Content: prompt},
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no response from LLM")
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

// LLMService is the AI gateway: it relays prompts to the external
// generative model, retrying once against the fallback model when the
// primary is rejected, under a per-call timeout and a global rate
// limit. It never makes more than two outbound attempts per call.
type LLMService struct {
	client       *gigago.Client
	primary      textGenerator
	fallback     textGenerator
	primaryName  string
	fallbackName string
	timeout      time.Duration
	limiter      *rateLimiter
	logger       *zap.Logger
}

func NewLLMService(cfg *config.LLMConfig, logger *zap.Logger) (*LLMService, error) {
	s := &LLMService{
		primaryName:  cfg.PrimaryModel,
		fallbackName: cfg.FallbackModel,
		timeout:      cfg.RequestTimeout,
		limiter:      newRateLimiter(cfg.MaxRequestsPerMin, time.Minute),
		logger:       logger,
	}

	// Without an API key the service starts degraded: every request
	// resolves to the unavailable sentinel instead of failing startup.
	if cfg.APIKey == "" {
		logger.Warn("GIGACHAT_API_KEY not set, AI endpoints will report analysis unavailable")
		return s, nil
	}

	opts := []gigago.Option{
		gigago.WithCustomScope(cfg.Scope),
	}
	if cfg.InsecureSkipVerify {
		opts = append(opts, gigago.WithCustomInsecureSkipVerify(true))
		logger.Warn("GigaChat TLS certificate verification is disabled")
	}

	client, err := gigago.NewClient(context.Background(), cfg.APIKey, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create GigaChat client: %w", err)
	}
	s.client = client

	primary := client.GenerativeModel(cfg.PrimaryModel)
	primary.Temperature = modelTemperature
	s.primary = &gigaModel{model: primary}

	if cfg.FallbackModel != "" && cfg.FallbackModel != cfg.PrimaryModel {
		fallback := client.GenerativeModel(cfg.FallbackModel)
		fallback.Temperature = modelTemperature
		s.fallback = &gigaModel{model: fallback}
	}

	logger.Info("LLM gateway ready",
		zap.String("primary_model", cfg.PrimaryModel),
		zap.String("fallback_model", cfg.FallbackModel),
	)
	return s, nil
}

// Available reports whether the provider is configured at all.
func (s *LLMService) Available() bool {
	return s.primary != nil
}

// ActiveModel names the model requests go to first.
func (s *LLMService) ActiveModel() string {
	if !s.Available() {
		return ""
	}
	return s.primaryName
}

// Generate sends the prompt to the primary model and, if that fails,
// makes exactly one more attempt against the fallback. Both attempts
// share the per-call timeout. On failure the provider's error is
// logged, never returned: callers see ErrProviderUnavailable.
func (s *LLMService) Generate(ctx context.Context, prompt string) (string, error) {
	if !s.Available() {
		return "", ErrProviderUnavailable
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	if err := s.limiter.wait(ctx); err != nil {
		return "", ErrProviderUnavailable
	}

	text, err := s.primary.GenerateText(ctx, prompt)
	if err == nil {
		return text, nil
	}
	s.logger.Warn("Primary model failed",
		zap.String("model", s.primaryName),
		zap.Error(err),
	)

	if s.fallback == nil {
		return "", ErrProviderUnavailable
	}

	if err := s.limiter.wait(ctx); err != nil {
		return "", ErrProviderUnavailable
	}

	text, err = s.fallback.GenerateText(ctx, prompt)
	if err != nil {
		s.logger.Error("Fallback model failed",
			zap.String("model", s.fallbackName),
			zap.Error(err),
		)
		return "", ErrProviderUnavailable
	}

	s.logger.Info("Fallback model answered", zap.String("model", s.fallbackName))
	return text, nil
}

// FriendlyError maps provider failures to a message safe to show users.
func FriendlyError(err error) string {
	msg := err.Error()
	lower := strings.ToLower(msg)
	switch {
	case strings.Contains(msg, "429") || strings.Contains(lower, "quota") || strings.Contains(msg, "RESOURCE_EXHAUSTED"):
		return "Rate limit reached. Please wait about a minute and try again."
	case strings.Contains(lower, "api key"):
		return "API key is invalid. Check your .env file."
	default:
		return AnalysisUnavailableText
	}
}

func (s *LLMService) Close() error {
	if s.client != nil {
		s.client.Close()
	}
	return nil
}
