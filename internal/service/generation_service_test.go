package service

import (
	"bytes"
	"content_calendar/internal/config"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type roundTripperFunc func(req *http.Request) (*http.Response, error)

func (f roundTripperFunc) RoundTrip(req *http.Request) (*http.Response, error) { return f(req) }

func jsonResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Header:     http.Header{"Content-Type": []string{"application/json"}},
		Body:       io.NopCloser(bytes.NewBufferString(body)),
	}
}

func testAIConfig() config.AIConfig {
	return config.AIConfig{
		BaseURL:   "http://upstream/v1/",
		APIKey:    "test-key",
		Model:     "claude-sonnet-4-20250514",
		Version:   "2023-06-01",
		MaxTokens: 8000,
	}
}

func newTestGenerationService(fn roundTripperFunc) *GenerationService {
	return NewGenerationServiceWithClient(testAIConfig(), &http.Client{Transport: fn})
}

func TestGenerationServiceForwardsPrompt(t *testing.T) {
	svc := newTestGenerationService(func(req *http.Request) (*http.Response, error) {
		assert.Equal(t, http.MethodPost, req.Method)
		assert.Equal(t, "/v1/messages", req.URL.Path)
		assert.Equal(t, "test-key", req.Header.Get("x-api-key"))
		assert.Equal(t, "2023-06-01", req.Header.Get("anthropic-version"))
		assert.Equal(t, "application/json", req.Header.Get("Content-Type"))

		var in MessagesRequest
		require.NoError(t, json.NewDecoder(req.Body).Decode(&in))
		assert.Equal(t, "claude-sonnet-4-20250514", in.Model)
		assert.Equal(t, 8000, in.MaxTokens)
		require.Len(t, in.Messages, 1)
		assert.Equal(t, "user", in.Messages[0].Role)
		assert.Equal(t, "hello", in.Messages[0].Content)

		return jsonResponse(http.StatusOK, `{"content":[{"type":"text","text":"**Week 1: Educational**"},{"type":"text","text":"ignored"}]}`), nil
	})

	text, err := svc.Generate(context.Background(), "hello")
	require.NoError(t, err)
	assert.Equal(t, "**Week 1: Educational**", text)
}

func TestGenerationServiceFailureReasons(t *testing.T) {
	cases := []struct {
		name   string
		rt     roundTripperFunc
		reason FailureReason
		status int
	}{
		{
			name: "transport error",
			rt: func(*http.Request) (*http.Response, error) {
				return nil, errors.New("connection refused")
			},
			reason: ReasonNetwork,
		},
		{
			name: "non-success status",
			rt: func(*http.Request) (*http.Response, error) {
				return jsonResponse(http.StatusUnauthorized, `{"error":{"message":"invalid x-api-key"}}`), nil
			},
			reason: ReasonStatus,
			status: http.StatusUnauthorized,
		},
		{
			name: "invalid json",
			rt: func(*http.Request) (*http.Response, error) {
				return jsonResponse(http.StatusOK, `not json`), nil
			},
			reason: ReasonShape,
		},
		{
			name: "missing content",
			rt: func(*http.Request) (*http.Response, error) {
				return jsonResponse(http.StatusOK, `{"id":"msg_1"}`), nil
			},
			reason: ReasonShape,
		},
		{
			name: "empty content",
			rt: func(*http.Request) (*http.Response, error) {
				return jsonResponse(http.StatusOK, `{"content":[]}`), nil
			},
			reason: ReasonShape,
		},
		{
			name: "error body with success status",
			rt: func(*http.Request) (*http.Response, error) {
				return jsonResponse(http.StatusOK, `{"error":{"type":"overloaded_error","message":"Overloaded"}}`), nil
			},
			reason: ReasonShape,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc := newTestGenerationService(tc.rt)

			text, err := svc.Generate(context.Background(), "prompt")
			require.Error(t, err)
			assert.Empty(t, text)

			var genErr *GenerationError
			require.ErrorAs(t, err, &genErr)
			assert.Equal(t, tc.reason, genErr.Reason)
			assert.Equal(t, tc.status, genErr.StatusCode)
			assert.Equal(t, tc.reason, ReasonOf(err))
		})
	}
}

func TestGenerationServiceUpdateConfig(t *testing.T) {
	var gotModel string
	var gotMaxTokens int
	svc := newTestGenerationService(func(req *http.Request) (*http.Response, error) {
		var in MessagesRequest
		require.NoError(t, json.NewDecoder(req.Body).Decode(&in))
		gotModel = in.Model
		gotMaxTokens = in.MaxTokens
		return jsonResponse(http.StatusOK, `{"content":[{"type":"text","text":"ok"}]}`), nil
	})

	cfg := testAIConfig()
	cfg.Model = "claude-opus-4-20250514"
	cfg.MaxTokens = 4000
	svc.UpdateConfig(cfg)

	_, err := svc.Generate(context.Background(), "prompt")
	require.NoError(t, err)
	assert.Equal(t, "claude-opus-4-20250514", gotModel)
	assert.Equal(t, 4000, gotMaxTokens)
	assert.Equal(t, cfg, svc.Config())
}
