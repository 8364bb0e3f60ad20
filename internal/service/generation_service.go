package service

import (
	"bytes"
	"content_calendar/internal/config"
	"content_calendar/pkg/logger"
	"content_calendar/pkg/monitoring"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Generator 将一段提示词转换为模型生成的文本
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// FailureReason 生成失败的分类
type FailureReason string

const (
	ReasonNetwork FailureReason = "network"
	ReasonStatus  FailureReason = "status"
	ReasonShape   FailureReason = "shape"
)

// GenerationError 上游调用失败时返回，调用方通过 errors.As 区分原因
type GenerationError struct {
	Reason     FailureReason
	StatusCode int
	Err        error
}

func (e *GenerationError) Error() string {
	switch e.Reason {
	case ReasonStatus:
		return fmt.Sprintf("generation failed: upstream status %d: %v", e.StatusCode, e.Err)
	default:
		return fmt.Sprintf("generation failed (%s): %v", e.Reason, e.Err)
	}
}

func (e *GenerationError) Unwrap() error { return e.Err }

// ReasonOf 非 GenerationError 时返回空字符串
func ReasonOf(err error) FailureReason {
	var genErr *GenerationError
	if errors.As(err, &genErr) {
		return genErr.Reason
	}
	return ""
}

type MessagesRequest struct {
	Model     string         `json:"model"`
	MaxTokens int            `json:"max_tokens"`
	Messages  []AIChatMessage `json:"messages"`
}

type AIChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type MessagesResponse struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
	Error *struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// GenerationService 无状态代理：单轮请求上游 messages 接口，返回第一段文本
type GenerationService struct {
	mu     sync.RWMutex
	config config.AIConfig
	client *http.Client
}

func NewGenerationService(cfg config.AIConfig) *GenerationService {
	return NewGenerationServiceWithClient(cfg, &http.Client{Timeout: cfg.Timeout()})
}

func NewGenerationServiceWithClient(cfg config.AIConfig, client *http.Client) *GenerationService {
	return &GenerationService{config: cfg, client: client}
}

// UpdateConfig 配置热更新时替换模型参数，已在进行中的请求不受影响
func (s *GenerationService) UpdateConfig(cfg config.AIConfig) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.config = cfg
	s.client = &http.Client{Transport: s.client.Transport, Timeout: cfg.Timeout()}
}

// Config 返回当前生效的配置副本
func (s *GenerationService) Config() config.AIConfig {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.config
}

func (s *GenerationService) Generate(ctx context.Context, prompt string) (string, error) {
	start := time.Now()
	text, err := s.generate(ctx, prompt)

	outcome := "success"
	if err != nil {
		outcome = string(ReasonOf(err))
		if outcome == "" {
			outcome = "error"
		}
		logger.Log.Error("Generation request failed",
			zap.String("reason", outcome),
			zap.Duration("elapsed", time.Since(start)),
			zap.Error(err))
	} else {
		logger.Log.Debug("Generation request completed",
			zap.Int("prompt_len", len(prompt)),
			zap.Int("response_len", len(text)),
			zap.Duration("elapsed", time.Since(start)))
	}
	monitoring.GenerationRequests.WithLabelValues(outcome).Inc()
	monitoring.GenerationDuration.Observe(time.Since(start).Seconds())

	return text, err
}

func (s *GenerationService) generate(ctx context.Context, prompt string) (string, error) {
	s.mu.RLock()
	cfg, client := s.config, s.client
	s.mu.RUnlock()

	reqBody := MessagesRequest{
		Model:     cfg.Model,
		MaxTokens: cfg.MaxTokens,
		Messages:  []AIChatMessage{{Role: "user", Content: prompt}},
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, strings.TrimRight(cfg.BaseURL, "/")+"/messages", bytes.NewReader(jsonData))
	if err != nil {
		return "", err
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", cfg.APIKey)
	req.Header.Set("anthropic-version", cfg.Version)

	resp, err := client.Do(req)
	if err != nil {
		return "", &GenerationError{Reason: ReasonNetwork, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &GenerationError{Reason: ReasonNetwork, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", &GenerationError{
			Reason:     ReasonStatus,
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("AI API error: %s", truncate(string(body), 512)),
		}
	}

	var result MessagesResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return "", &GenerationError{Reason: ReasonShape, Err: err}
	}

	if result.Error != nil {
		return "", &GenerationError{Reason: ReasonShape, Err: fmt.Errorf("AI API error: %s", result.Error.Message)}
	}

	if len(result.Content) == 0 {
		return "", &GenerationError{Reason: ReasonShape, Err: errors.New("AI returned no content")}
	}

	return result.Content[0].Text, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
