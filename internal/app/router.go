package app

import (
	"content_calendar/docs"
	"content_calendar/internal/config"
	"content_calendar/internal/middleware"
	"content_calendar/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	// 1. JSON 接口
	a.registerAPIRoutes(router, c)

	// 2. 问卷页面
	a.registerWizardRoutes(router, c, cfg)
}

func (a *App) registerAPIRoutes(router *gin.Engine, c *controllers) {
	api := router.Group("/api")
	{
		api.GET("/health", c.health.HealthCheck)

		// 非 POST 方法在控制器内返回 405
		api.Any("/generate", c.generate.Generate)

		api.POST("/calendar", c.calendar.GenerateCalendar)
		api.GET("/options", c.calendar.GetOptions)
		api.GET("/quarters", c.calendar.GetQuarters)
	}
}

func (a *App) registerWizardRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	wizard := router.Group("/")
	wizard.Use(middleware.SessionMiddleware(a.services.sessions, cfg.Session.CookieName, cfg.Session.TTL()))
	{
		wizard.GET("/", c.wizard.Show)
		wizard.POST("/start", c.wizard.Start)
		wizard.GET("/questions", c.wizard.Show)
		wizard.POST("/questions", c.wizard.SaveAnswers)
		wizard.POST("/questions/toggle", c.wizard.Toggle)
		wizard.POST("/generate", c.wizard.Generate)
		wizard.GET("/results", c.wizard.Results)
	}
}
