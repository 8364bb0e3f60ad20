// @title Content Calendar API
// @version 1.0
// @description 52周社交媒体内容日历生成服务。

// @host localhost:8080
// @BasePath /api

package main

import (
	"content_calendar/internal/app"
	"content_calendar/internal/config"
	"content_calendar/pkg/logger"
	"flag"
	"log"
)

func main() {
	// 命令行参数
	configDir := flag.String("config", "configs", "配置文件目录")
	flag.Parse()

	cfg, err := config.LoadConfig(*configDir)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	application := app.NewApp(cfg, *configDir)
	defer logger.Log.Sync()

	application.Run()
}
