package controller

import (
	"bytes"
	"content_calendar/internal/service"
	"content_calendar/internal/util"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubGenerator struct {
	text    string
	err     error
	prompts []string
}

func (s *stubGenerator) Generate(_ context.Context, prompt string) (string, error) {
	s.prompts = append(s.prompts, prompt)
	return s.text, s.err
}

func newGenerateRouter(gen service.Generator) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Any("/api/generate", NewGenerateController(gen).Generate)
	return r
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) util.ErrorResponse {
	t.Helper()
	var body util.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestGenerateReturnsIdeas(t *testing.T) {
	gen := &stubGenerator{text: "**Week 1: EDUCATIONAL**"}
	r := newGenerateRouter(gen)

	req := httptest.NewRequest(http.MethodPost, "/api/generate", bytes.NewBufferString(`{"prompt":"hello"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var body GenerateResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "**Week 1: EDUCATIONAL**", body.Ideas)
	assert.Equal(t, []string{"hello"}, gen.prompts)
}

func TestGenerateRejectsUnsupportedMethods(t *testing.T) {
	for _, method := range []string{http.MethodGet, http.MethodPut, http.MethodDelete, http.MethodPatch, http.MethodOptions} {
		t.Run(method, func(t *testing.T) {
			gen := &stubGenerator{text: "unused"}
			r := newGenerateRouter(gen)

			req := httptest.NewRequest(method, "/api/generate", bytes.NewBufferString(`{"prompt":"hello"}`))
			req.Header.Set("Content-Type", "application/json")
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
			assert.Equal(t, util.MsgMethodNotAllowed, decodeError(t, rec).Error)
			assert.Empty(t, gen.prompts)
		})
	}
}

func TestGenerateRejectsMissingPrompt(t *testing.T) {
	for _, body := range []string{`{}`, `{"prompt":"   "}`, `not json`} {
		gen := &stubGenerator{}
		r := newGenerateRouter(gen)

		req := httptest.NewRequest(http.MethodPost, "/api/generate", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code, body)
		assert.NotEmpty(t, decodeError(t, rec).Error)
		assert.Empty(t, gen.prompts)
	}
}

func TestGenerateMapsUpstreamFailure(t *testing.T) {
	gen := &stubGenerator{err: &service.GenerationError{Reason: service.ReasonShape, Err: errors.New("no content")}}
	r := newGenerateRouter(gen)

	req := httptest.NewRequest(http.MethodPost, "/api/generate", bytes.NewBufferString(`{"prompt":"hello"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadGateway, rec.Code)
	body := decodeError(t, rec)
	assert.Equal(t, util.MsgGenerationFailed, body.Error)
	assert.Equal(t, "shape", body.Reason)
}

func TestGenerateMapsUnknownFailure(t *testing.T) {
	gen := &stubGenerator{err: errors.New("boom")}
	r := newGenerateRouter(gen)

	req := httptest.NewRequest(http.MethodPost, "/api/generate", bytes.NewBufferString(`{"prompt":"hello"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, util.MsgGenerationFailed, decodeError(t, rec).Error)
}
