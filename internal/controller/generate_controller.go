package controller

import (
	"content_calendar/internal/service"
	"content_calendar/internal/util"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

type GenerateController struct {
	generator service.Generator
}

func NewGenerateController(generator service.Generator) *GenerateController {
	return &GenerateController{generator: generator}
}

type GenerateRequest struct {
	Prompt string `json:"prompt" binding:"required"`
}

type GenerateResponse struct {
	Ideas string `json:"ideas"`
}

// Generate godoc
// @Summary 生成代理
// @Description 将提示词转发给大模型，返回第一段文本。非 POST 请求返回 405
// @Tags 生成
// @Accept json
// @Produce json
// @Param body body GenerateRequest true "提示词"
// @Success 200 {object} GenerateResponse
// @Failure 400 {object} util.ErrorResponse
// @Failure 405 {object} util.ErrorResponse
// @Failure 502 {object} util.ErrorResponse
// @Router /generate [post]
func (c *GenerateController) Generate(ctx *gin.Context) {
	if ctx.Request.Method != http.MethodPost {
		util.MethodNotAllowed(ctx)
		return
	}

	var req GenerateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.ProxyError(ctx, http.StatusBadRequest, err.Error(), "")
		return
	}
	if strings.TrimSpace(req.Prompt) == "" {
		util.ProxyError(ctx, http.StatusBadRequest, util.ErrEmptyPrompt.Error(), "")
		return
	}

	text, err := c.generator.Generate(ctx.Request.Context(), req.Prompt)
	if err != nil {
		respondGenerationError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, GenerateResponse{Ideas: text})
}

// respondGenerationError 上游失败统一为 502 并附带原因，其余为 500
func respondGenerationError(ctx *gin.Context, err error) {
	var genErr *service.GenerationError
	if errors.As(err, &genErr) {
		util.ProxyError(ctx, http.StatusBadGateway, util.MsgGenerationFailed, string(genErr.Reason))
		return
	}
	util.ProxyError(ctx, http.StatusInternalServerError, util.MsgGenerationFailed, "")
}
