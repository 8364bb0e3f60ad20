package controller

import (
	"content_calendar/internal/service"
	"content_calendar/internal/util"

	"github.com/gin-gonic/gin"
)

type HealthController struct {
	Generation *service.GenerationService
	Sessions   *service.SessionStore
}

func NewHealthController(generation *service.GenerationService, sessions *service.SessionStore) *HealthController {
	return &HealthController{Generation: generation, Sessions: sessions}
}

// @Summary 健康检查
// @Description 检查服务状态
// @Tags 系统
// @Produce json
// @Success 200 {object} util.Response
// @Router /health [get]
func (c *HealthController) HealthCheck(ctx *gin.Context) {
	aiCfg := c.Generation.Config()
	upstream := "configured"
	if aiCfg.APIKey == "" {
		upstream = "missing_api_key"
	}

	util.Success(ctx, gin.H{
		"status": "ok",
		"components": gin.H{
			"upstream": upstream,
			"model":    aiCfg.Model,
			"sessions": c.Sessions.Len(),
		},
	})
}
