package app

import (
	"content_calendar/internal/config"
	"content_calendar/internal/controller"
	"content_calendar/internal/service"
	"content_calendar/internal/util"
	"content_calendar/internal/view"
	"content_calendar/pkg/configwatcher"
	"content_calendar/pkg/logger"
	"content_calendar/pkg/monitoring"
	"content_calendar/pkg/security"
	"content_calendar/pkg/tracing"
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/zap"
)

const sessionSweepInterval = time.Minute

type App struct {
	Config    *config.Config
	Router    *gin.Engine
	ConfigDir string

	services       *services
	tracerProvider *sdktrace.TracerProvider
	stop           chan struct{}
}

type services struct {
	generation *service.GenerationService
	calendar   *service.CalendarService
	sessions   *service.SessionStore
}

type controllers struct {
	generate *controller.GenerateController
	calendar *controller.CalendarController
	wizard   *controller.WizardController
	health   *controller.HealthController
}

func (a *App) initServices(cfg *config.Config, client *http.Client) *services {
	s := &services{}

	s.generation = service.NewGenerationServiceWithClient(cfg.AI, client)
	s.calendar = service.NewCalendarService(s.generation)
	s.sessions = service.NewSessionStore(cfg.Session.TTL())

	return s
}

func (a *App) initControllers(s *services) *controllers {
	return &controllers{
		generate: controller.NewGenerateController(s.generation),
		calendar: controller.NewCalendarController(s.calendar),
		wizard:   controller.NewWizardController(s.calendar),
		health:   controller.NewHealthController(s.generation, s.sessions),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	// 预检请求在 CORS 中直接返回，安全响应头需先写入
	router.Use(security.Secure())
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))

	// 分布式追踪中间件
	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

// reloadConfig 只热更新上游模型参数，端口等其余配置需要重启
func (a *App) reloadConfig(cfg *config.Config) {
	a.services.generation.UpdateConfig(cfg.AI)
	logger.Log.Info("Config reloaded",
		zap.String("model", cfg.AI.Model),
		zap.Int("max_tokens", cfg.AI.MaxTokens))
}

func NewApp(cfg *config.Config, configDir string) *App {
	logger.InitLogger(cfg)
	defer logger.Log.Sync()

	logger.Log.Info("Logger initialized successfully")

	// 监控初始化
	monitoring.Init()

	var tp *sdktrace.TracerProvider
	if cfg.Tracing.Enabled {
		var err error
		tp, err = tracing.InitTracer(tracing.ServiceName, cfg.Tracing.CollectorEndpoint)
		if err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
	}

	if cfg.AI.APIKey == "" {
		logger.Log.Warn("ANTHROPIC_API_KEY is not set, generation requests will be rejected upstream")
	}

	app := newApp(cfg, &http.Client{Timeout: cfg.AI.Timeout()})
	app.ConfigDir = configDir
	app.tracerProvider = tp
	return app
}

func newApp(cfg *config.Config, client *http.Client) *App {
	switch cfg.Server.Mode {
	case util.ModeRelease:
		gin.SetMode(gin.ReleaseMode)
	case util.ModeTest:
		gin.SetMode(gin.TestMode)
	}

	app := &App{
		Config: cfg,
		stop:   make(chan struct{}),
	}

	app.services = app.initServices(cfg, client)
	controllers := app.initControllers(app.services)

	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())
	router.SetHTMLTemplate(view.Templates())
	app.Router = router

	app.setupMiddlewares(router, cfg)
	app.registerRoutes(router, controllers, cfg)

	return app
}

func (a *App) startBackgroundTasks() {
	go a.services.sessions.Run(sessionSweepInterval)

	if a.ConfigDir != "" {
		if err := configwatcher.WatchConfig(a.ConfigDir, a.reloadConfig, a.stop); err != nil {
			logger.Log.Warn("Config hot reload disabled", zap.Error(err))
		}
	}
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	a.startBackgroundTasks()

	// 启动服务器
	go func() {
		log.Printf("Server running on port %s", a.Config.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// 等待中断信号优雅地关闭服务器（设置5秒的超时时间）
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	close(a.stop)
	a.services.sessions.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	if a.tracerProvider != nil {
		if err := a.tracerProvider.Shutdown(ctx); err != nil {
			logger.Log.Error("Failed to shutdown tracer provider", zap.Error(err))
		}
	}

	log.Println("Server exiting")
}
